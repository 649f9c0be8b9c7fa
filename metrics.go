package gosched

import (
	"sync/atomic"
	"time"
)

// Metrics is a point-in-time snapshot of the scheduler's runtime
// counters. Grounded on the teacher's eventloop.Metrics: a small,
// low-overhead struct returned by value, safe to read after the fact.
// Unlike the teacher's LatencyMetrics (which estimates wall-clock
// percentiles with a P-square quantile sketch), gosched's ticks are
// logical, not wall-clock, so there is nothing to estimate — counts
// only.
type Metrics struct {
	Forks         uint64
	Preemptions   uint64
	WaitCalls     uint64
	SignalCalls   uint64
	ThreadsWoken  uint64
	MaxReadyDepth uint64
	SampledAt     time.Time
}

// metricsCollector holds the live atomic counters behind Metrics. It
// is nil on a Scheduler unless WithMetrics(true) was supplied to New.
type metricsCollector struct {
	forks         atomic.Uint64
	preemptions   atomic.Uint64
	waitCalls     atomic.Uint64
	signalCalls   atomic.Uint64
	threadsWoken  atomic.Uint64
	maxReadyDepth atomic.Uint64
}

func newMetricsCollector() *metricsCollector {
	return &metricsCollector{}
}

func (m *metricsCollector) snapshot(now time.Time) Metrics {
	return Metrics{
		Forks:         m.forks.Load(),
		Preemptions:   m.preemptions.Load(),
		WaitCalls:     m.waitCalls.Load(),
		SignalCalls:   m.signalCalls.Load(),
		ThreadsWoken:  m.threadsWoken.Load(),
		MaxReadyDepth: m.maxReadyDepth.Load(),
		SampledAt:     now,
	}
}

func (s *Scheduler) recordFork() {
	if s.metrics != nil {
		s.metrics.forks.Add(1)
	}
}

func (s *Scheduler) recordWait() {
	if s.metrics != nil {
		s.metrics.waitCalls.Add(1)
	}
}

func (s *Scheduler) recordPreempt() {
	if s.metrics != nil {
		s.metrics.preemptions.Add(1)
	}
}

func (s *Scheduler) recordSignal(io int, woken int) {
	if s.metrics == nil {
		return
	}
	s.metrics.signalCalls.Add(1)
	s.metrics.threadsWoken.Add(uint64(woken))
}

// recordReadyDepth updates the high-water mark of ready-queue depth as
// sampled right after runNextThread dequeues the next runner; depths
// between those samples are not observed.
// Called from runNextThread while s.mu is held, so the read-modify-write
// on the ready queue length is consistent.
func (s *Scheduler) recordReadyDepth() {
	if s.metrics == nil {
		return
	}
	depth := uint64(s.ready.Len())
	for {
		cur := s.metrics.maxReadyDepth.Load()
		if depth <= cur || s.metrics.maxReadyDepth.CompareAndSwap(cur, depth) {
			return
		}
	}
}
