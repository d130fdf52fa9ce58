package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"New Ethiopian Single Origin!", "new-ethiopian-single-origin"},
		{"  Brewing 101: V60  ", "brewing-101-v60"},
		{"---", "post"},
		{"", "post"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FromName(tt.in), "input %q", tt.in)
	}
}
