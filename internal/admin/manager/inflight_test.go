package manager

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInflightBeginEnd(t *testing.T) {
	inf := NewInflight()

	assert.True(t, inf.Begin("Category:1"))
	assert.False(t, inf.Begin("Category:1"), "second begin for the same key is rejected")
	assert.True(t, inf.Begin("Category:2"), "other records proceed freely")
	assert.True(t, inf.Active("Category:1"))

	inf.End("Category:1")
	assert.False(t, inf.Active("Category:1"))
	assert.True(t, inf.Begin("Category:1"))
}

func TestInflightConcurrentBegin(t *testing.T) {
	inf := NewInflight()

	var wg sync.WaitGroup
	wins := make(chan struct{}, 50)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if inf.Begin("Order:7") {
				wins <- struct{}{}
			}
		}()
	}
	wg.Wait()
	close(wins)

	assert.Len(t, wins, 1, "exactly one goroutine may hold the key")
}
