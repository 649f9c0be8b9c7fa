package gosched

// priorityQueue is a bounded array of FIFOs, one per priority level
// 0..=maxPrio, dequeuing from the highest non-empty level first and
// FIFO within a level. Component C2 of the scheduler specification.
//
// Grounded on original_source/util/prio_queue.c, with its two flagged
// defects corrected per spec section 9: pq_get_size there iterates
// with an uninitialised loop counter, and pq_front/pq_dequeue there
// walk priorities from 0 upward on an unsigned counter that never goes
// negative, which (combined with the off-by-one on max_prio) returns
// the *lowest* non-empty level instead of the highest. This
// implementation iterates from maxPrio down to 0 inclusive, as
// required.
type priorityQueue[T any] struct {
	levels []fifo[T]
}

func newPriorityQueue[T any](maxPrio int) *priorityQueue[T] {
	pq := &priorityQueue[T]{levels: make([]fifo[T], maxPrio+1)}
	for i := range pq.levels {
		pq.levels[i] = *newFIFO[T]()
	}
	return pq
}

// Enqueue places v at the tail of the FIFO for priority prio.
func (pq *priorityQueue[T]) Enqueue(v T, prio int) {
	pq.levels[prio].PushBack(v)
}

// IsEmpty reports whether every priority level is empty.
func (pq *priorityQueue[T]) IsEmpty() bool {
	for i := len(pq.levels) - 1; i >= 0; i-- {
		if !pq.levels[i].IsEmpty() {
			return false
		}
	}
	return true
}

// Len reports the total number of queued items across all levels.
func (pq *priorityQueue[T]) Len() int {
	n := 0
	for i := range pq.levels {
		n += pq.levels[i].Len()
	}
	return n
}

// Front returns, without removing it, the head of the highest
// non-empty priority level. Calling it while empty is a programming
// error (mirrors fifo.Front / the reference pq_front contract).
func (pq *priorityQueue[T]) Front() T {
	for i := len(pq.levels) - 1; i >= 0; i-- {
		if !pq.levels[i].IsEmpty() {
			return pq.levels[i].Front()
		}
	}
	panic("gosched: priority queue: front of empty queue")
}

// Dequeue removes and returns the head of the highest non-empty
// priority level, FIFO within that level. Calling it while empty is a
// programming error.
func (pq *priorityQueue[T]) Dequeue() T {
	for i := len(pq.levels) - 1; i >= 0; i-- {
		if !pq.levels[i].IsEmpty() {
			return pq.levels[i].PopFront()
		}
	}
	panic("gosched: priority queue: dequeue of empty queue")
}
