package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRNG_Deterministic(t *testing.T) {
	a := NewRNG(42)
	b := NewRNG(42)

	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Uint64(), b.Uint64())
	}
}

func TestRNG_Reset(t *testing.T) {
	r := NewRNG(7)
	assert.Equal(t, int64(7), r.Seed())

	first := make([]int, 10)
	for i := range first {
		first[i] = r.Intn(1000)
	}

	r.Reset()
	for i := range first {
		assert.Equal(t, first[i], r.Intn(1000))
	}
}

func TestRNG_Weight(t *testing.T) {
	r := NewRNG(1)
	for i := 0; i < 1000; i++ {
		w := r.Weight(16)
		assert.GreaterOrEqual(t, w, int64(1))
		assert.LessOrEqual(t, w, int64(16))
	}
}
