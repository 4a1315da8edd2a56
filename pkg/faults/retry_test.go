package faults

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fastHandler returns a handler with millisecond backoff so tests stay quick.
func fastHandler() *Handler {
	return &Handler{
		mockMode:   false,
		maxRetries: 3,
		base:       1 * time.Millisecond,
		cap:        5 * time.Millisecond,
	}
}

func TestRetrySucceedsAfterTransientFailures(t *testing.T) {
	h := fastHandler()

	attempts := 0
	err := h.Retry(context.Background(), "test-op", func() error {
		attempts++
		if attempts < 3 {
			return Transient(errors.New("flaky"))
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, attempts)
}

func TestRetryExhaustsTransientFailures(t *testing.T) {
	h := fastHandler()

	attempts := 0
	err := h.Retry(context.Background(), "test-op", func() error {
		attempts++
		return Transient(errors.New("always flaky"))
	})

	require.Error(t, err)
	// Initial attempt + MaxRetries retries.
	assert.Equal(t, 4, attempts)
}

func TestRetryStopsOnAuthoritative(t *testing.T) {
	h := fastHandler()

	attempts := 0
	err := h.Retry(context.Background(), "test-op", func() error {
		attempts++
		return Authoritative(errors.New("rejected"))
	})

	require.Error(t, err)
	assert.Equal(t, 1, attempts)
	assert.Equal(t, KindAuthoritative, Classify(err))
}

func TestRetryStopsOnCancellation(t *testing.T) {
	h := fastHandler()
	ctx, cancel := context.WithCancel(context.Background())

	attempts := 0
	err := h.Retry(ctx, "test-op", func() error {
		attempts++
		cancel()
		return Transient(errors.New("flaky"))
	})

	require.Error(t, err)
	assert.Equal(t, 1, attempts)
}

func TestRetryMockModeNeverRetries(t *testing.T) {
	h := NewHandler(true)

	attempts := 0
	err := h.Retry(context.Background(), "test-op", func() error {
		attempts++
		return Transient(errors.New("mock failure"))
	})

	require.Error(t, err)
	assert.Equal(t, 1, attempts)
}
