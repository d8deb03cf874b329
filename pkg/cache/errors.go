package cache

import (
	"context"
	"errors"
	"time"
)

// Sentinel errors reported by artifact cache backends.
var (
	// ErrNetwork means the Redis backend could not be reached.
	ErrNetwork = errors.New("network error")

	// ErrClosed is returned by operations on a closed backend.
	ErrClosed = errors.New("cache closed")
)

// RetryableError marks a backend failure worth another attempt.
type RetryableError struct{ Err error }

// Retryable wraps an error as a RetryableError.
func Retryable(err error) error {
	if err == nil {
		return nil
	}
	return &RetryableError{Err: err}
}

// Error returns the error message of the wrapped error.
func (e *RetryableError) Error() string { return e.Err.Error() }

// Unwrap returns the wrapped error.
func (e *RetryableError) Unwrap() error { return e.Err }

// IsRetryable reports whether err carries a RetryableError.
func IsRetryable(err error) bool {
	var re *RetryableError
	return errors.As(err, &re)
}

// retryDelay is the first backoff step. Tests shorten it.
var retryDelay = 200 * time.Millisecond

// RetryWithBackoff runs fn up to 3 times, doubling the wait each time. The
// pipeline wraps cache reads in it so a dropped Redis connection does not
// force a re-render. Non-retryable errors return at once.
func RetryWithBackoff(ctx context.Context, fn func() error) error {
	const attempts = 3
	delay := retryDelay
	var lastErr error

	for i := 0; i < attempts; i++ {
		if err := fn(); err == nil {
			return nil
		} else if lastErr = err; !IsRetryable(err) {
			return err
		}

		if i < attempts-1 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
				delay *= 2
			}
		}
	}
	return lastErr
}
