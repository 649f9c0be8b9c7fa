package gosched

import (
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// MaxPrio is the maximum legal priority, inclusive.
const MaxPrio = 5

// MaxNumEvents is the upper bound on the io device count accepted by New.
const MaxNumEvents = 256

// Scheduler is the scheduling core: the singleton state machine of
// spec component C5, encapsulated as an injectable handle rather than
// file-scope global state. The zero value is not usable; construct
// one with New.
type Scheduler struct {
	mu sync.Mutex

	quantum int
	ioCount int

	running *thread
	ready   *priorityQueue[*thread]
	io      *ioTable
	roster  []*thread
	nextTID uint64

	hasFinished chan struct{}
	drained     bool

	log     zerolog.Logger
	metrics *metricsCollector
	clock   func() time.Time
}

// New constructs a scheduler, the equivalent of the reference so_init.
// It fails precisely when section 4.2.1's preconditions are violated:
// quantum must be positive, and ioCount must be non-negative and must
// not exceed MaxNumEvents.
func New(quantum, ioCount int, opts ...Option) (*Scheduler, error) {
	if quantum <= 0 || ioCount < 0 || ioCount > MaxNumEvents {
		return nil, ErrSchedInit
	}

	cfg := resolveOptions(opts)

	s := &Scheduler{
		quantum:     quantum,
		ioCount:     ioCount,
		ready:       newPriorityQueue[*thread](MaxPrio),
		io:          newIOTable(ioCount),
		hasFinished: make(chan struct{}),
		log:         cfg.logger,
		clock:       cfg.clock,
	}
	if cfg.metrics {
		s.metrics = newMetricsCollector()
	}

	s.log.Debug().Int("quantum", quantum).Int("io_count", ioCount).Msg("gosched: scheduler initialised")

	return s, nil
}

// Fork creates a logical thread running handler at the given priority
// and returns its tid. It may be called before any logical thread
// exists (bootstrap) or by the currently running logical thread. By
// the time Fork returns, the new thread has been placed — either
// installed as the runner or enqueued — per spec section 4.2.1.
func (s *Scheduler) Fork(handler Handler, priority int) (TID, error) {
	if handler == nil || priority < 0 || priority > MaxPrio {
		return InvalidTID, ErrInvalidTid
	}

	s.mu.Lock()
	s.nextTID++
	th := newThread(TID(s.nextTID), priority, handler)
	s.roster = append(s.roster, th)
	old := s.running
	s.mu.Unlock()

	s.log.Trace().Uint64("tid", uint64(th.tid)).Int("priority", priority).Msg("gosched: fork")
	s.recordFork()

	go s.runLogicalThread(th)

	// Guaranteed to return promptly: planThread always releases
	// th.planned exactly once before the goroutine above blocks on
	// anything else.
	th.acquirePlanned()

	if old == nil {
		// Bootstrap fork: the caller is not a logical thread, so it
		// never blocks — it only boots the new thread.
		th.releaseRun()
		return th.tid, nil
	}

	s.mu.Lock()
	old.timeRemaining--
	stillRunner := s.running == old
	needsPreempt := stillRunner && old.timeRemaining <= 0
	s.mu.Unlock()

	switch {
	case stillRunner && needsPreempt:
		s.preempt(old)
	case stillRunner:
		// old keeps the CPU with quantum to spare; return immediately.
	default:
		// The new thread has strictly higher priority and stole the
		// runner slot from old.
		th.releaseRun()
		old.acquireRun()
	}

	return th.tid, nil
}

// Exec charges one tick to the running thread and preempts it if its
// quantum is exhausted.
func (s *Scheduler) Exec() {
	s.mu.Lock()
	r := s.running
	r.timeRemaining--
	needsPreempt := r.timeRemaining <= 0
	s.mu.Unlock()

	s.log.Trace().Uint64("tid", uint64(r.tid)).Int("remaining", r.timeRemaining).Msg("gosched: exec")

	if needsPreempt {
		s.preempt(r)
	}
}

// Wait charges one tick, parks the running thread on device io's FIFO,
// and hands the CPU to the next runnable thread. It returns once the
// caller has been resumed by a matching Signal.
func (s *Scheduler) Wait(io int) error {
	if !s.io.valid(io) {
		return ErrWait
	}

	s.mu.Lock()
	r := s.running
	r.timeRemaining--
	s.io.park(io, r)
	s.log.Trace().Uint64("tid", uint64(r.tid)).Int("io", io).Msg("gosched: wait")
	s.recordWait()
	s.runNextThread()
	s.mu.Unlock()

	r.acquireRun()
	return nil
}

// Signal moves every thread parked on device io back onto the
// schedulable set and returns how many were woken. If a woken thread
// has strictly higher priority than the caller, the caller is
// preempted before Signal returns.
func (s *Scheduler) Signal(io int) (int, error) {
	if !s.io.valid(io) {
		return 0, ErrSignal
	}

	s.mu.Lock()
	current := s.running
	current.timeRemaining--

	woken := s.io.drain(io)
	for _, w := range woken {
		s.planThread(w)
		// Consume the acknowledgement planThread just posted, so w's
		// planned primitive is back at zero for its next placement.
		w.acquirePlanned()
	}

	demoted := s.running != current
	needsPreempt := !demoted && current.timeRemaining <= 0
	s.mu.Unlock()

	s.log.Trace().Uint64("tid", uint64(current.tid)).Int("io", io).Int("woken", len(woken)).Msg("gosched: signal")
	s.recordSignal(io, len(woken))

	switch {
	case demoted:
		s.mu.Lock()
		newRunner := s.running
		s.mu.Unlock()
		newRunner.releaseRun()
		current.acquireRun()
	case needsPreempt:
		s.preempt(current)
	}

	return len(woken), nil
}

// End blocks until every forked thread has terminated, joins every
// goroutine backing them, and releases the scheduler's resources. It
// must be called exactly once, after New succeeded.
func (s *Scheduler) End() {
	s.mu.Lock()
	roster := s.roster
	s.mu.Unlock()

	if len(roster) > 0 {
		<-s.hasFinished
		// Threads forked by logical threads after the snapshot above
		// are in the roster by now; join them too.
		s.mu.Lock()
		roster = s.roster
		s.mu.Unlock()
		for _, th := range roster {
			<-th.joined
		}
	}

	s.log.Debug().Int("threads", len(roster)).Msg("gosched: end")
}

// Roster returns a snapshot of every thread created since New, in
// creation order. It never reflects future forks.
func (s *Scheduler) Roster() []ThreadInfo {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]ThreadInfo, len(s.roster))
	for i, th := range s.roster {
		out[i] = ThreadInfo{TID: th.tid, Priority: th.priority, Status: th.status}
	}
	return out
}

// Metrics returns a snapshot of the scheduler's runtime counters, or
// the zero value if WithMetrics(true) was not supplied to New.
func (s *Scheduler) Metrics() Metrics {
	if s.metrics == nil {
		return Metrics{}
	}
	return s.metrics.snapshot(s.clock())
}

// runLogicalThread is the goroutine body for a forked logical thread,
// the analogue of the reference start_thread: plan itself, wait for
// the CPU, run the handler, then terminate and hand the CPU onward.
func (s *Scheduler) runLogicalThread(th *thread) {
	defer close(th.joined)

	s.mu.Lock()
	s.planThread(th)
	s.mu.Unlock()

	th.acquireRun()

	th.startRoutine(th.priority)

	s.mu.Lock()
	th.status = StatusTerminated
	s.log.Trace().Uint64("tid", uint64(th.tid)).Msg("gosched: thread terminated")
	s.runNextThread()
	s.mu.Unlock()
}
