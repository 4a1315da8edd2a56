package faults

import (
	"context"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// Retry policy constants.
const (
	// MaxRetries is the number of retry attempts after the initial failure.
	MaxRetries = 3

	// RetryBaseInterval is the first backoff interval.
	RetryBaseInterval = 1 * time.Second

	// RetryMaxInterval caps the exponential growth.
	RetryMaxInterval = 30 * time.Second
)

// Handler applies the retry policy to operations. One Handler is shared
// process-wide; it carries the mock-mode flag so mocked runs never retry
// (mock failures are deterministic — repeating them wastes time in tests).
type Handler struct {
	mockMode   bool
	maxRetries uint64
	base       time.Duration
	cap        time.Duration
}

// NewHandler creates a Handler with the standard policy.
func NewHandler(mockMode bool) *Handler {
	return &Handler{
		mockMode:   mockMode,
		maxRetries: MaxRetries,
		base:       RetryBaseInterval,
		cap:        RetryMaxInterval,
	}
}

// Retry runs op, retrying transient failures with jittered exponential
// backoff (base 1s, doubling, capped at 30s, at most MaxRetries retries).
// Authoritative, fatal, and cancellation faults abort immediately. The
// returned error is the last attempt's error.
func (h *Handler) Retry(ctx context.Context, label string, op func() error) error {
	if h.mockMode {
		return op()
	}

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = h.base
	policy.Multiplier = 2
	policy.MaxInterval = h.cap
	policy.MaxElapsedTime = 0 // retry count is the only limit

	wrapped := func() error {
		err := op()
		if err == nil {
			return nil
		}
		if Classify(err) != KindTransient {
			return backoff.Permanent(err)
		}
		return err
	}

	notify := func(err error, wait time.Duration) {
		slog.Warn("Transient failure, retrying",
			"operation", label,
			"wait", wait,
			"error", err)
	}

	err := backoff.RetryNotify(wrapped,
		backoff.WithContext(backoff.WithMaxRetries(policy, h.maxRetries), ctx),
		notify)

	// backoff.Permanent unwraps itself on return; context cancellation
	// surfaces as ctx.Err().
	return err
}
