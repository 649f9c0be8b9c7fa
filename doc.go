// Package gosched implements a user-space preemptive thread scheduler:
// client code forks logical threads with assigned priorities, the
// scheduler multiplexes them over goroutines so that at any instant
// exactly one logical thread executes, and it decides — based on
// priority, quantum expiry, and simulated I/O events — which logical
// thread runs next.
//
// # Scheduling model
//
// Preemption is cooperative: it is only evaluated inside [Scheduler.Fork],
// [Scheduler.Exec], [Scheduler.Wait], and [Scheduler.Signal], never via a
// timer or OS signal. Among threads of equal priority, scheduling is
// round-robin with a fixed quantum, charged one tick per call a thread
// makes to those four methods. There is no multiprocessor parallelism
// among logical threads, no dynamic priority adjustment or aging, and
// no cancellation of a running thread.
//
// # Usage
//
//	s, err := gosched.New(2, 1)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	var log []string
//	var mu sync.Mutex
//	record := func(id string) {
//		mu.Lock()
//		log = append(log, id)
//		mu.Unlock()
//	}
//
//	s.Fork(func(priority int) {
//		for i := 0; i < 4; i++ {
//			record("A")
//			s.Exec()
//		}
//	}, 2)
//	s.Fork(func(priority int) {
//		for i := 0; i < 4; i++ {
//			record("B")
//			s.Exec()
//		}
//	}, 2)
//
//	s.End()
//	// log == []string{"A", "A", "B", "B", "A", "A", "B", "B"}
//
// # Identity
//
// Unlike the reference implementation's free functions (which relied on
// pthread_self() to recover which OS thread called so_exec/so_wait/
// so_signal), [Scheduler.Exec], [Scheduler.Wait], and [Scheduler.Signal]
// take no thread argument. Go exposes no public, stable current-goroutine
// identity, but none is needed: the single-runner invariant guarantees
// the calling goroutine is always the one the scheduler currently
// considers "running" — no other logical thread can be executing
// concurrently to call them.
package gosched
