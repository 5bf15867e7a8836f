package randutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewIsDeterministic(t *testing.T) {
	a := New(42)
	b := New(42)
	for i := 0; i < 16; i++ {
		assert.Equal(t, a.Uint64(), b.Uint64(), "draw %d", i)
	}
}

func TestAdjacentSeedsDiverge(t *testing.T) {
	a := New(42)
	b := New(43)
	same := 0
	for i := 0; i < 16; i++ {
		if a.Uint64() == b.Uint64() {
			same++
		}
	}
	assert.Less(t, same, 16, "seeds 42 and 43 produced identical streams")
}
