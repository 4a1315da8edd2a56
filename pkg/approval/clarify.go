package approval

import "strings"

// Verdict is the interpretation of a free-text clarification answer.
type Verdict int

const (
	// VerdictRestart requests a fresh workflow. It is the fallback for any
	// answer that is not an unambiguous approval.
	VerdictRestart Verdict = iota
	// VerdictApprove accepts the pending checkpoint.
	VerdictApprove
)

func (v Verdict) String() string {
	if v == VerdictApprove {
		return "approve"
	}
	return "restart"
}

var approveKeywords = []string{
	"ok", "yes", "approve", "approved", "good", "correct", "fine", "proceed",
}

var rejectKeywords = []string{
	"no", "reject", "wrong", "incorrect", "restart", "start over", "new task",
}

// InterpretClarification maps an operator's free-text answer to a verdict.
// The answer is lower-cased and trimmed, then scanned for keywords: it is an
// approval only when an approve keyword matches and no reject keyword does.
// Everything else, including answers matching neither set, is a restart
// request.
func InterpretClarification(answer string) Verdict {
	normalized := strings.ToLower(strings.TrimSpace(answer))
	for _, kw := range rejectKeywords {
		if strings.Contains(normalized, kw) {
			return VerdictRestart
		}
	}
	for _, kw := range approveKeywords {
		if strings.Contains(normalized, kw) {
			return VerdictApprove
		}
	}
	return VerdictRestart
}
