// Package faults classifies workflow errors and drives the retry policy.
//
// Every error crossing an agent or infrastructure boundary falls into one of
// four kinds: transient (retry), authoritative (the external system said no —
// do not retry), fatal (programming or configuration error — fail the plan),
// or cancellation (context cancel — never retried, never counted as failure).
package faults

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
)

// Kind is the fault classification of an error.
type Kind int

const (
	// KindTransient — temporary condition (network blip, 429/5xx). Retryable.
	KindTransient Kind = iota
	// KindAuthoritative — the external system rejected the request. Retrying
	// would produce the same answer.
	KindAuthoritative
	// KindFatal — programming or configuration error. Fails the plan.
	KindFatal
	// KindCancellation — context cancel or deadline. Never retried and never
	// recorded as an agent failure.
	KindCancellation
)

// String returns the lowercase label used in logs and error envelopes.
func (k Kind) String() string {
	switch k {
	case KindTransient:
		return "transient"
	case KindAuthoritative:
		return "authoritative"
	case KindFatal:
		return "fatal"
	case KindCancellation:
		return "cancellation"
	default:
		return "unknown"
	}
}

// Fault wraps an error with an explicit classification. Producers that know
// the nature of a failure mark it at the source; Classify falls back to
// heuristics for unmarked errors.
type Fault struct {
	kind Kind
	err  error
}

func (f *Fault) Error() string {
	return fmt.Sprintf("%s: %s", f.kind, f.err)
}

func (f *Fault) Unwrap() error { return f.err }

// Kind returns the classification.
func (f *Fault) Kind() Kind { return f.kind }

// Mark wraps err with an explicit kind. A nil err returns nil.
func Mark(kind Kind, err error) error {
	if err == nil {
		return nil
	}
	return &Fault{kind: kind, err: err}
}

// Transient marks err as retryable.
func Transient(err error) error { return Mark(KindTransient, err) }

// Authoritative marks err as a definitive external rejection.
func Authoritative(err error) error { return Mark(KindAuthoritative, err) }

// Fatal marks err as a programming/configuration error.
func Fatal(err error) error { return Mark(KindFatal, err) }

// Classify determines the fault kind of an error.
//
// Explicit marks win. Context errors are cancellation. Network errors are
// transient except timeouts, which bubble up as cancellation (the deadline
// already fired; retrying inside it is pointless). Everything else defaults
// to authoritative — unknown errors are not safe to retry.
func Classify(err error) Kind {
	if err == nil {
		return KindTransient
	}

	var f *Fault
	if errors.As(err, &f) {
		return f.kind
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return KindCancellation
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		if netErr.Timeout() {
			return KindCancellation
		}
		return KindTransient
	}

	if isConnectionError(err) {
		return KindTransient
	}

	if isOverloadError(err) {
		return KindTransient
	}

	return KindAuthoritative
}

// IsRetryable reports whether err should be retried under the policy.
func IsRetryable(err error) bool {
	return Classify(err) == KindTransient
}

// isConnectionError detects connection-level transport failures.
func isConnectionError(err error) bool {
	msg := strings.ToLower(err.Error())
	connectionErrors := []string{
		"connection refused",
		"connection reset",
		"broken pipe",
		"connection closed",
		"no such host",
		"unexpected eof",
	}
	for _, e := range connectionErrors {
		if strings.Contains(msg, e) {
			return true
		}
	}
	return false
}

// isOverloadError detects rate-limit and server-side overload responses that
// arrive as string-typed errors from tool gateways.
func isOverloadError(err error) bool {
	msg := strings.ToLower(err.Error())
	overloadIndicators := []string{
		"rate limit",
		"too many requests",
		"status 429",
		"status 500",
		"status 502",
		"status 503",
		"status 504",
		"service unavailable",
		"temporarily unavailable",
	}
	for _, indicator := range overloadIndicators {
		if strings.Contains(msg, indicator) {
			return true
		}
	}
	return false
}
