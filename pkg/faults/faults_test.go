package faults

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyExplicitMarks(t *testing.T) {
	base := errors.New("boom")

	assert.Equal(t, KindTransient, Classify(Transient(base)))
	assert.Equal(t, KindAuthoritative, Classify(Authoritative(base)))
	assert.Equal(t, KindFatal, Classify(Fatal(base)))

	// Marks survive wrapping.
	wrapped := fmt.Errorf("calling tool: %w", Transient(base))
	assert.Equal(t, KindTransient, Classify(wrapped))
}

func TestClassifyContextErrors(t *testing.T) {
	assert.Equal(t, KindCancellation, Classify(context.Canceled))
	assert.Equal(t, KindCancellation, Classify(context.DeadlineExceeded))
	assert.Equal(t, KindCancellation, Classify(fmt.Errorf("step aborted: %w", context.Canceled)))
}

func TestClassifyHeuristics(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"connection refused", errors.New("dial tcp: connection refused"), KindTransient},
		{"connection reset", errors.New("read: connection reset by peer"), KindTransient},
		{"rate limit", errors.New("gateway returned status 429: rate limit exceeded"), KindTransient},
		{"server error", errors.New("unexpected status 503 from upstream"), KindTransient},
		{"bad request", errors.New("invalid invoice id"), KindAuthoritative},
		{"not found", errors.New("record not found"), KindAuthoritative},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.err))
		})
	}
}

func TestMarkNilIsNil(t *testing.T) {
	assert.NoError(t, Transient(nil))
	assert.NoError(t, Authoritative(nil))
	assert.NoError(t, Fatal(nil))
}

func TestFaultUnwrap(t *testing.T) {
	sentinel := errors.New("sentinel")
	err := Authoritative(fmt.Errorf("context: %w", sentinel))

	require.Error(t, err)
	assert.True(t, errors.Is(err, sentinel))
	assert.Contains(t, err.Error(), "authoritative")
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "transient", KindTransient.String())
	assert.Equal(t, "authoritative", KindAuthoritative.String())
	assert.Equal(t, "fatal", KindFatal.String())
	assert.Equal(t, "cancellation", KindCancellation.String())
}
