package gosched

import "fmt"

// Legacy numeric codes from the reference so_scheduler implementation,
// preserved for callers that still want to switch on an integer.
const (
	CodeSchedInitErr = -1
	CodeWaitErr      = -3
	CodeSignalErr    = -4
)

// SchedulerError wraps one of the legacy negative codes with a Go error,
// so callers can either errors.Is/As against the sentinels below or
// fall back to reading Code directly.
type SchedulerError struct {
	Code int
	Err  error
}

func (e *SchedulerError) Error() string {
	return fmt.Sprintf("gosched: %s (code %d)", e.Err, e.Code)
}

func (e *SchedulerError) Unwrap() error {
	return e.Err
}

var (
	// ErrSchedInit is returned by New when the precondition checks
	// in spec section 4.2.1 fail: a quantum that is not positive, or an
	// io count that is negative or over MaxNumEvents. Every New call
	// returns an independent Scheduler, so there is no
	// already-initialised case.
	ErrSchedInit = &SchedulerError{Code: CodeSchedInitErr, Err: errString("scheduler init failed")}

	// ErrInvalidTid is returned by Fork for a nil handler or an
	// out-of-range priority.
	ErrInvalidTid = errString("invalid tid")

	// ErrWait is returned by Wait for an out-of-range device.
	ErrWait = &SchedulerError{Code: CodeWaitErr, Err: errString("wait error")}

	// ErrSignal is returned by Signal for an out-of-range device.
	ErrSignal = &SchedulerError{Code: CodeSignalErr, Err: errString("signal error")}
)

// errString is a trivial error implementation so the sentinels above
// can be compared with errors.Is without allocating at call sites.
type errString string

func (e errString) Error() string { return string(e) }
