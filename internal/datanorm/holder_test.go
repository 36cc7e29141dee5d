package datanorm

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHolder_LastWriteWins(t *testing.T) {
	h := NewHolder()
	assert.Nil(t, h.Current())

	first := &Snapshot{Brand: "first"}
	second := &Snapshot{Brand: "second"}

	assert.Nil(t, h.Commit(first))
	assert.Same(t, first, h.Commit(second))
	assert.Same(t, second, h.Current())
}

func TestHolder_ConcurrentReaders(t *testing.T) {
	h := NewHolder()
	h.Commit(&Snapshot{Brand: "seed"})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			h.Commit(&Snapshot{Brand: "next"})
		}()
		go func() {
			defer wg.Done()
			s := h.Current()
			assert.NotNil(t, s)
		}()
	}
	wg.Wait()
	assert.Equal(t, "next", h.Current().Brand)
}
