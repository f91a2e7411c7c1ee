package common

import (
	"context"
	"strings"
	"time"
)

const (
	DefaultMaxAttempts  = 3
	DefaultInitialDelay = time.Second
)

// RetryConfig controls the bounded-retry behavior of Invoke.
// MaxAttempts counts every attempt including the first; MaxAttempts = 1
// performs no retries.
type RetryConfig struct {
	MaxAttempts  int
	InitialDelay time.Duration
}

// DefaultRetryConfig returns the standard 3-attempt, 1s-base configuration.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts:  DefaultMaxAttempts,
		InitialDelay: DefaultInitialDelay,
	}
}

func (c RetryConfig) normalized() RetryConfig {
	if c.MaxAttempts < 1 {
		c.MaxAttempts = DefaultMaxAttempts
	}
	if c.InitialDelay <= 0 {
		c.InitialDelay = DefaultInitialDelay
	}
	return c
}

// retryableMarkers are substrings of error messages that indicate a
// transient transport or service condition worth retrying: rate limiting,
// server-side failures, and network-level faults.
var retryableMarkers = []string{
	"429",
	"500",
	"503",
	"network",
	"fetch",
	"unavailable",
	"connection refused",
	"connection reset",
	"broken pipe",
	"timeout",
	"eof",
}

// IsRetryable classifies an error as transient by inspecting its message.
// An error without a message classifies as not retryable.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	if msg == "" {
		return false
	}
	for _, marker := range retryableMarkers {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}

// Invoke runs op with bounded retry and exponential backoff. Retryable
// failures delay InitialDelay * 2^i before attempt i+1; non-retryable
// failures propagate immediately. After MaxAttempts total attempts the last
// error is returned verbatim, never wrapped. Each invocation is independent:
// no retry budget or circuit state is shared across calls.
//
// Once started, an invocation runs to completion or exhaustion; a context
// cancellation only cuts the current backoff delay short, returning the last
// attempt's error.
func Invoke[T any](ctx context.Context, logger *Logger, cfg RetryConfig, op func(ctx context.Context) (T, error)) (T, error) {
	cfg = cfg.normalized()
	if logger == nil {
		logger = NewSilentLogger()
	}

	var zero T
	var lastErr error

	for attempt := 0; attempt < cfg.MaxAttempts; attempt++ {
		result, err := op(ctx)
		if err == nil {
			return result, nil
		}
		lastErr = err

		if !IsRetryable(err) {
			logger.Warn().
				Err(err).
				Int("attempt", attempt+1).
				Msg("Invocation failed with non-retryable error")
			return zero, err
		}

		if attempt == cfg.MaxAttempts-1 {
			break
		}

		delay := cfg.InitialDelay << attempt
		logger.Warn().
			Err(err).
			Int("attempt", attempt+1).
			Int("max_attempts", cfg.MaxAttempts).
			Dur("delay", delay).
			Msg("Invocation failed, retrying after backoff")

		timer := time.NewTimer(delay)
		select {
		case <-timer.C:
		case <-ctx.Done():
			timer.Stop()
			logger.Warn().
				Err(ctx.Err()).
				Msg("Backoff interrupted by context cancellation")
			return zero, lastErr
		}
	}

	logger.Error().
		Err(lastErr).
		Int("attempts", cfg.MaxAttempts).
		Msg("Invocation exhausted all attempts")
	return zero, lastErr
}
