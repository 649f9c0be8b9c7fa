package gosched

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriorityQueue_EmptyByDefault(t *testing.T) {
	pq := newPriorityQueue[string](5)
	assert.True(t, pq.IsEmpty())
	assert.Equal(t, 0, pq.Len())
}

func TestPriorityQueue_HighestPriorityFirst(t *testing.T) {
	pq := newPriorityQueue[string](5)
	pq.Enqueue("low", 1)
	pq.Enqueue("high", 4)
	pq.Enqueue("mid", 2)

	require.Equal(t, "high", pq.Front())
	assert.Equal(t, "high", pq.Dequeue())
	assert.Equal(t, "mid", pq.Dequeue())
	assert.Equal(t, "low", pq.Dequeue())
	assert.True(t, pq.IsEmpty())
}

func TestPriorityQueue_FIFOWithinLevel(t *testing.T) {
	pq := newPriorityQueue[string](5)
	pq.Enqueue("first", 2)
	pq.Enqueue("second", 2)
	pq.Enqueue("third", 2)

	assert.Equal(t, "first", pq.Dequeue())
	assert.Equal(t, "second", pq.Dequeue())
	assert.Equal(t, "third", pq.Dequeue())
}

func TestPriorityQueue_ZeroLevelIsValid(t *testing.T) {
	pq := newPriorityQueue[int](5)
	pq.Enqueue(42, 0)
	assert.Equal(t, 42, pq.Dequeue())
}

func TestPriorityQueue_PanicsOnEmptyFrontAndDequeue(t *testing.T) {
	pq := newPriorityQueue[int](5)
	assert.Panics(t, func() { pq.Front() })
	assert.Panics(t, func() { pq.Dequeue() })
}
