package gosched

import (
	"time"

	"github.com/rs/zerolog"
)

// schedulerOptions holds configuration accepted by New.
type schedulerOptions struct {
	logger  zerolog.Logger
	metrics bool
	clock   func() time.Time
}

// Option configures a Scheduler. Mirrors the functional-options shape
// used throughout this module's ecosystem (logger/metrics/clock knobs
// that never affect scheduling semantics, only observability).
type Option interface {
	apply(*schedulerOptions)
}

type optionFunc func(*schedulerOptions)

func (f optionFunc) apply(o *schedulerOptions) { f(o) }

// WithLogger attaches a structured logger. Every entry point and
// thread termination emit debug/trace events through it; the plan/run
// handoff internals do not log. The
// zero value (a disabled logger) is used when this option is omitted,
// so logging is strictly opt-in overhead.
func WithLogger(logger zerolog.Logger) Option {
	return optionFunc(func(o *schedulerOptions) {
		o.logger = logger
	})
}

// WithMetrics enables the counters exposed by Scheduler.Metrics.
func WithMetrics(enabled bool) Option {
	return optionFunc(func(o *schedulerOptions) {
		o.metrics = enabled
	})
}

// WithClock overrides the time source used to stamp metric snapshots
// (Metrics.SampledAt); log timestamps come from the logger itself. It
// has no bearing on scheduling decisions, which are driven
// entirely by the logical tick count of section 4.2.4, never by wall
// clock time.
func WithClock(clock func() time.Time) Option {
	return optionFunc(func(o *schedulerOptions) {
		if clock != nil {
			o.clock = clock
		}
	})
}

func resolveOptions(opts []Option) *schedulerOptions {
	cfg := &schedulerOptions{
		logger: zerolog.Nop(),
		clock:  time.Now,
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt.apply(cfg)
	}
	return cfg
}
