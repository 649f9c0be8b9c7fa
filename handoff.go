package gosched

// This file implements the two procedures that govern every
// scheduling decision (spec section 4.2.2), extracted from Scheduler's
// public methods the way the teacher package keeps its poll/registry
// orchestration in files separate from the Loop type itself.
//
// Both planThread and runNextThread assume the caller holds s.mu and
// never block: every semaphore operation they perform is a release,
// or an acquire on a semaphore that has already been released
// synchronously within the same call stack (the bounded-depth-1
// recursion of planThread). The genuinely blocking acquires — waiting
// to actually be scheduled — live in the public entry points, outside
// the lock.

// planThread places th into the schedulable set with correct priority
// semantics, deciding who will run next without yet handing over the
// CPU. It mutates s.running but never posts a thread's run primitive.
func (s *Scheduler) planThread(th *thread) {
	switch {
	case s.running == nil:
		// Bootstrap: no current runner, install th directly.
		s.running = th
		th.timeRemaining = s.quantum
	case s.running.priority < th.priority:
		// th strictly outranks the current runner: demote the runner
		// into the ready queue first, then install th.
		old := s.running
		s.planThread(old)
		old.acquirePlanned()
		s.running = th
		th.timeRemaining = s.quantum
	default:
		s.ready.Enqueue(th, th.priority)
	}
	th.releasePlanned()
}

// runNextThread gives the CPU to whoever planThread has selected. If
// nothing is schedulable, the CPU goes idle: either the current runner
// has terminated and the scheduler has fully drained (the has_finished
// latch is released, once), or it has merely parked on I/O and the
// next runner will be installed later, by whichever call eventually
// plans a thread while s.running is nil (a fresh top-level Fork;
// Signal needs a running caller, so it never finds s.running nil).
func (s *Scheduler) runNextThread() {
	if s.ready.IsEmpty() {
		if s.running != nil && s.running.status == StatusTerminated && !s.drained {
			s.drained = true
			close(s.hasFinished)
		}
		s.running = nil
		return
	}

	next := s.ready.Dequeue()
	s.running = next
	next.timeRemaining = s.quantum
	next.status = StatusAlive
	s.recordReadyDepth()
	next.releaseRun()
}

// preempt runs the protocol idiom of spec section 4.2.2 on r, the
// thread currently giving up the CPU (but neither blocking on I/O nor
// terminating): replan it, wait for that placement to be acknowledged,
// hand the CPU to whoever is now highest priority (possibly r itself),
// then block r until its next turn.
func (s *Scheduler) preempt(r *thread) {
	s.mu.Lock()
	s.planThread(r)
	s.mu.Unlock()

	r.acquirePlanned()
	s.recordPreempt()

	s.mu.Lock()
	s.runNextThread()
	s.mu.Unlock()

	r.acquireRun()
}
