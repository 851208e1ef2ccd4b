package config

import (
	"time"

	"github.com/mingrammer/backoff-toolkit/retryer"
)

// Defaults of the backoff policy
const (
	DefaultExponential = true
	DefaultBase        = 2.0
	DefaultMaxRetries  = 10
)

// Config holds the backoff policy and the warning sink
type Config struct {
	policy retryer.Policy
	logger retryer.Logger
}

var config *Config

func init() {
	Reset()
}

// GetPolicy returns the backoff policy
func GetPolicy() retryer.Policy {
	return config.policy
}

// GetLogger returns the logger receiving backoff warnings
func GetLogger() retryer.Logger {
	return config.logger
}

// SetExponential enables or disables exponential backoff
func SetExponential(exponential bool) {
	config.policy.Exponential = exponential
}

// SetBase sets the retry interval in seconds
func SetBase(base float64) {
	config.policy.Base = base
}

// SetMaxRetries sets the number of retries
func SetMaxRetries(maxRetries int) {
	config.policy.MaxRetries = maxRetries
}

// SetMaxDelay caps the delay between retries. Zero disables the cap.
func SetMaxDelay(maxDelay time.Duration) {
	config.policy.MaxDelay = maxDelay
}

// SetLogger sets the logger receiving backoff warnings
func SetLogger(logger retryer.Logger) {
	if logger != nil {
		config.logger = logger
	}
}

// Reset resets the global configuration
func Reset() {
	config = &Config{
		policy: retryer.Policy{
			Exponential: DefaultExponential,
			Base:        DefaultBase,
			MaxRetries:  DefaultMaxRetries,
		},
		logger: retryer.NopLogger{},
	}
}
