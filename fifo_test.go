package gosched

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFIFO_EmptyByDefault(t *testing.T) {
	f := newFIFO[int]()
	assert.True(t, f.IsEmpty())
	assert.Equal(t, 0, f.Len())
}

func TestFIFO_PushPopOrder(t *testing.T) {
	f := newFIFO[string]()
	f.PushBack("a")
	f.PushBack("b")
	f.PushBack("c")

	require.Equal(t, 3, f.Len())
	require.Equal(t, "a", f.Front())

	assert.Equal(t, "a", f.PopFront())
	assert.Equal(t, "b", f.PopFront())
	assert.Equal(t, "c", f.PopFront())
	assert.True(t, f.IsEmpty())
}

func TestFIFO_GrowsPastInitialCapacity(t *testing.T) {
	f := newFIFO[int]()
	const n = fifoInitialCap * 3
	for i := 0; i < n; i++ {
		f.PushBack(i)
	}
	require.Equal(t, n, f.Len())
	for i := 0; i < n; i++ {
		assert.Equal(t, i, f.PopFront())
	}
	assert.True(t, f.IsEmpty())
}

func TestFIFO_WrapsAroundAfterPartialDrain(t *testing.T) {
	f := newFIFO[int]()
	for i := 0; i < fifoInitialCap; i++ {
		f.PushBack(i)
	}
	for i := 0; i < fifoInitialCap-1; i++ {
		f.PopFront()
	}
	// head is now near the end of the backing array; push enough to
	// wrap the write cursor around without growing.
	f.PushBack(100)
	f.PushBack(101)

	assert.Equal(t, []int{fifoInitialCap - 1, 100, 101}, drainAll(f))
}

func TestFIFO_PanicsOnEmptyFrontAndPop(t *testing.T) {
	f := newFIFO[int]()
	assert.Panics(t, func() { f.Front() })
	assert.Panics(t, func() { f.PopFront() })
}

func drainAll[T any](f *fifo[T]) []T {
	out := make([]T, 0, f.Len())
	for !f.IsEmpty() {
		out = append(out, f.PopFront())
	}
	return out
}
