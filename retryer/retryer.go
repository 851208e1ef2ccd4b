package retryer

import (
	"math"
)

// Logger receives the warning emitted for a base that cannot grow exponentially
type Logger interface {
	Warningf(format string, a ...interface{}) error
}

// NopLogger discards every warning
type NopLogger struct{}

// Warningf does nothing
func (NopLogger) Warningf(string, ...interface{}) error { return nil }

// RetryTime returns the delay before the next attempt, in the unit of base.
// With exponential backoff and base > 1 it is base^ntries. A base <= 1 cannot
// back off exponentially, so a warning is logged and abs(base) is returned,
// which is also the result for fixed backoff.
func RetryTime(exponential bool, base float64, ntries int, logger Logger) float64 {
	if exponential {
		if base > 1 {
			return math.Pow(base, float64(ntries))
		}
		warn(logger, "Base %f incompatible with exponential backoff", base)
	}
	return math.Abs(base)
}

// warn never lets the logger fail the caller
func warn(logger Logger, format string, a ...interface{}) {
	if logger == nil {
		return
	}
	defer func() {
		_ = recover()
	}()
	_ = logger.Warningf(format, a...)
}
