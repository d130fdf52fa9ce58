package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlashKindValid(t *testing.T) {
	for _, k := range []FlashKind{FlashInfo, FlashSuccess, FlashWarning, FlashError} {
		assert.True(t, k.Valid(), string(k))
	}
	assert.False(t, FlashKind("sparkly").Valid())
	assert.False(t, FlashKind("").Valid())
}

func TestFlashAutoClear(t *testing.T) {
	assert.True(t, Flash{Kind: FlashSuccess}.AutoClear())
	assert.True(t, Flash{Kind: FlashInfo}.AutoClear())
	assert.False(t, Flash{Kind: FlashWarning}.AutoClear(), "warnings stay until navigation")
	assert.False(t, Flash{Kind: FlashError}.AutoClear(), "errors stay until navigation")
}
