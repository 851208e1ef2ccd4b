package retryer

import (
	"errors"
	"math"
	"time"
)

const maxDuration = time.Duration(math.MaxInt64)

// Policy holds the retry settings a caller passes to RetryTime on every attempt
type Policy struct {
	Exponential bool
	Base        float64 // seconds
	MaxRetries  int
	MaxDelay    time.Duration // 0 means uncapped
}

// Validate checks the settings that RetryTime itself does not care about
func (p Policy) Validate() error {
	if math.IsNaN(p.Base) {
		return errors.New("retry interval is not a number")
	}
	if p.MaxRetries < 0 {
		return errors.New("max retries must not be negative")
	}
	if p.MaxDelay < 0 {
		return errors.New("max delay must not be negative")
	}
	return nil
}

// Delay returns the delay in seconds for the given attempt
func (p Policy) Delay(ntries int, logger Logger) float64 {
	return RetryTime(p.Exponential, p.Base, ntries, logger)
}

// Duration returns the delay for the given attempt, capped at MaxDelay
func (p Policy) Duration(ntries int, logger Logger) time.Duration {
	d := Seconds(p.Delay(ntries, logger))
	if p.MaxDelay > 0 && d > p.MaxDelay {
		return p.MaxDelay
	}
	return d
}

// Schedule returns the delays for attempts 0 through MaxRetries-1
func (p Policy) Schedule(logger Logger) []time.Duration {
	if p.MaxRetries <= 0 {
		return []time.Duration{}
	}
	delays := make([]time.Duration, p.MaxRetries)
	for i := range delays {
		delays[i] = p.Duration(i, logger)
	}
	return delays
}

// Seconds converts seconds to a duration, saturating instead of overflowing
func Seconds(s float64) time.Duration {
	if math.IsNaN(s) || s <= 0 {
		return 0
	}
	ns := s * float64(time.Second)
	if ns >= float64(maxDuration) {
		return maxDuration
	}
	return time.Duration(ns)
}
