package gosched

import (
	"context"

	"golang.org/x/sync/semaphore"
)

// TID identifies the goroutine backing a logical thread. Section 6
// leaves the tid type to "whatever opaque identifier the underlying
// OS-thread facility uses"; gosched hands out a monotonically
// increasing sequence number rather than exposing a runtime goroutine
// id (which Go does not make available as a stable public API).
type TID uint64

// InvalidTID is the sentinel returned by a failed Fork (spec section 6).
const InvalidTID TID = 0

// ThreadStatus is the lifecycle state of a logical thread (spec
// section 3).
type ThreadStatus int32

const (
	// StatusAlive is the initial status of every forked thread.
	StatusAlive ThreadStatus = iota
	// StatusTerminated is set once the thread's start routine returns.
	StatusTerminated
)

func (s ThreadStatus) String() string {
	switch s {
	case StatusAlive:
		return "alive"
	case StatusTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// Handler is the function a forked logical thread runs, receiving its
// own priority per spec section 3.
type Handler func(priority int)

// thread is the per-logical-thread record, component C3 of the
// specification: priority, remaining quantum, lifecycle status, and
// the two binary handoff primitives run/planned. run/planned are
// implemented with golang.org/x/sync/semaphore.Weighted at weight 1,
// drained to empty at construction (see newZeroSemaphore) so they
// start in the same state as a POSIX sem_init(&sem, 0, 0): the first
// Acquire blocks until something Releases it. That polarity is the
// direct analogue of the reference sem_t run/planned pair, and is why
// a hand-rolled channel-based semaphore was not used instead — this
// gets the same zero-initial-value semantics from the teacher's own
// dependency.
type thread struct {
	tid           TID
	priority      int
	startRoutine  Handler
	timeRemaining int
	status        ThreadStatus

	run     *semaphore.Weighted
	planned *semaphore.Weighted

	// joined is closed once the goroutine backing this thread returns,
	// letting End join every roster entry the way the reference
	// implementation pthread_joins each thread_ids entry.
	joined chan struct{}
}

func newThread(tid TID, priority int, handler Handler) *thread {
	return &thread{
		tid:          tid,
		priority:     priority,
		startRoutine: handler,
		status:       StatusAlive,
		run:          newZeroSemaphore(),
		planned:      newZeroSemaphore(),
		joined:       make(chan struct{}),
	}
}

// newZeroSemaphore returns a weight-1 semaphore.Weighted with its
// single unit of capacity immediately drained, so it starts in the
// "acquired" state matching sem_init(&sem, 0, 0): the next Acquire
// blocks until a Release posts it. semaphore.Weighted has no
// zero-value-initial-state constructor of its own — NewWeighted(1)
// alone starts available, the opposite polarity — so the drain has to
// be done explicitly at construction.
func newZeroSemaphore() *semaphore.Weighted {
	sem := semaphore.NewWeighted(1)
	if !sem.TryAcquire(1) {
		panic("gosched: newZeroSemaphore: unreachable, fresh semaphore must have capacity")
	}
	return sem
}

// releaseRun grants the right to execute on the CPU. Called at most
// once per scheduling interval (invariant I5).
func (t *thread) releaseRun() {
	t.run.Release(1)
}

// acquireRun blocks the calling goroutine until releaseRun is called.
func (t *thread) acquireRun() {
	_ = t.run.Acquire(context.Background(), 1)
}

// releasePlanned acknowledges that plan_thread has decided this
// thread's placement (runner or ready-queue member).
func (t *thread) releasePlanned() {
	t.planned.Release(1)
}

// acquirePlanned blocks until releasePlanned is called for this thread.
func (t *thread) acquirePlanned() {
	_ = t.planned.Acquire(context.Background(), 1)
}

// ThreadInfo is a read-only snapshot of a thread record, exposed via
// Scheduler.Roster for introspection and tests. It has no effect on
// scheduling and is a library addition beyond the original so_scheduler
// API, in the spirit of the teacher package's own registry snapshot view.
type ThreadInfo struct {
	TID      TID
	Priority int
	Status   ThreadStatus
}
