package domain

import (
	"errors"
	"fmt"
	"time"
)

// TransientError wraps a network or timeout failure on an external call.
// Callers retry it with bounded backoff before degrading.
type TransientError struct {
	Op  string
	Err error
}

func (e *TransientError) Error() string {
	return fmt.Sprintf("%s: transient failure: %v", e.Op, e.Err)
}

func (e *TransientError) Unwrap() error { return e.Err }

// RateLimitError signals the external service asked us to slow down.
// RetryAfter is zero when no hint was provided.
type RateLimitError struct {
	Op         string
	RetryAfter time.Duration
	Err        error
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("%s: rate limited (retry after %s): %v", e.Op, e.RetryAfter, e.Err)
}

func (e *RateLimitError) Unwrap() error { return e.Err }

// MalformedResponseError signals a response that arrived but failed shape
// or identifier validation. Never retried; the affected entry falls back.
type MalformedResponseError struct {
	Op     string
	Reason string
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("%s: malformed response: %s", e.Op, e.Reason)
}

// ConfigurationError is the only cycle-fatal error: a required external
// capability is not configured and no fallback exists.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error: %s", e.Reason)
}

// IsRetryable reports whether the error is worth another attempt.
func IsRetryable(err error) bool {
	var transient *TransientError
	var rateLimit *RateLimitError
	return errors.As(err, &transient) || errors.As(err, &rateLimit)
}

// RetryAfterHint extracts a rate-limit backoff hint, if any.
func RetryAfterHint(err error) (time.Duration, bool) {
	var rateLimit *RateLimitError
	if errors.As(err, &rateLimit) && rateLimit.RetryAfter > 0 {
		return rateLimit.RetryAfter, true
	}
	return 0, false
}
