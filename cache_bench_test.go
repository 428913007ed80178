package wlru

import (
	"testing"
)

func BenchmarkCache_Put(b *testing.B) {
	c, err := New[int, int](1 << 16)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = c.Put(i&1023, i, 64)
	}
}

func BenchmarkCache_Get(b *testing.B) {
	c, err := New[int, int](1 << 16)
	if err != nil {
		b.Fatal(err)
	}
	for i := 0; i < 1024; i++ {
		_ = c.Put(i, i, 64)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Get(i & 1023)
	}
}

func BenchmarkCache_PutEvicting(b *testing.B) {
	// Every insert displaces an older entry.
	c, err := New[int, int](1<<10*64)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = c.Put(i, i, 64)
	}
}
