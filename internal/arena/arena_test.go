package arena

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestList_PushPopOrder(t *testing.T) {
	l := New[string](4)

	l.PushBack("a")
	l.PushBack("b")
	l.PushBack("c")
	assert.Equal(t, 3, l.Len())

	v, ok := l.PopFront()
	require.True(t, ok)
	assert.Equal(t, "a", v)

	v, ok = l.PopFront()
	require.True(t, ok)
	assert.Equal(t, "b", v)

	v, ok = l.PopFront()
	require.True(t, ok)
	assert.Equal(t, "c", v)

	_, ok = l.PopFront()
	assert.False(t, ok)
	assert.Equal(t, 0, l.Len())
}

func TestList_MoveToBack(t *testing.T) {
	l := New[string](0)

	ha := l.PushBack("a")
	l.PushBack("b")
	l.PushBack("c")

	// a becomes most recent; pop order is now b, c, a.
	l.MoveToBack(ha)

	var got []string
	l.Each(func(v string) bool {
		got = append(got, v)
		return true
	})
	assert.Equal(t, []string{"b", "c", "a"}, got)

	// Promoting the back node is a no-op.
	l.MoveToBack(ha)
	v, ok := l.PopFront()
	require.True(t, ok)
	assert.Equal(t, "b", v)
}

func TestList_RemoveArbitrary(t *testing.T) {
	l := New[int](0)

	l.PushBack(1)
	h2 := l.PushBack(2)
	l.PushBack(3)

	v := l.Remove(h2)
	assert.Equal(t, 2, v)
	assert.Equal(t, 2, l.Len())

	var got []int
	l.Each(func(v int) bool {
		got = append(got, v)
		return true
	})
	assert.Equal(t, []int{1, 3}, got)
}

func TestList_RemoveEnds(t *testing.T) {
	l := New[int](0)

	h1 := l.PushBack(1)
	l.PushBack(2)
	h3 := l.PushBack(3)

	assert.Equal(t, 3, l.Remove(h3))
	assert.Equal(t, 1, l.Remove(h1))

	v, ok := l.PopFront()
	require.True(t, ok)
	assert.Equal(t, 2, v)
	assert.Equal(t, 0, l.Len())
}

func TestList_SlotReuse(t *testing.T) {
	l := New[int](0)

	h1 := l.PushBack(1)
	l.PushBack(2)
	l.PushBack(3)
	assert.Equal(t, 3, l.Slots())

	l.Remove(h1)
	l.PushBack(4)

	// The freed slot was recycled; no new slot was allocated.
	assert.Equal(t, 3, l.Slots())
	assert.Equal(t, 3, l.Len())

	var got []int
	l.Each(func(v int) bool {
		got = append(got, v)
		return true
	})
	assert.Equal(t, []int{2, 3, 4}, got)
}

func TestList_StaleHandlePanics(t *testing.T) {
	l := New[int](0)

	h := l.PushBack(1)
	l.Remove(h)

	assert.Panics(t, func() { l.At(h) })
	assert.Panics(t, func() { l.At(Handle(99)) })
	assert.Panics(t, func() { l.At(none) })
	assert.Panics(t, func() { l.MoveToBack(h) })
	assert.Panics(t, func() { l.Remove(h) })
}

func TestList_EachEarlyStop(t *testing.T) {
	l := New[int](0)
	l.PushBack(1)
	l.PushBack(2)
	l.PushBack(3)

	var got []int
	l.Each(func(v int) bool {
		got = append(got, v)
		return len(got) < 2
	})
	assert.Equal(t, []int{1, 2}, got)
}

func TestList_Reset(t *testing.T) {
	l := New[int](0)
	l.PushBack(1)
	l.PushBack(2)

	l.Reset()
	assert.Equal(t, 0, l.Len())
	_, ok := l.PopFront()
	assert.False(t, ok)

	l.PushBack(7)
	v, ok := l.PopFront()
	require.True(t, ok)
	assert.Equal(t, 7, v)
}
