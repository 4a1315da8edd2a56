package approval

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInterpretClarification(t *testing.T) {
	tests := []struct {
		name   string
		answer string
		want   Verdict
	}{
		{"plain yes", "yes", VerdictApprove},
		{"uppercase", "OK", VerdictApprove},
		{"padded", "  Approved.  ", VerdictApprove},
		{"sentence approval", "looks good to me", VerdictApprove},
		{"proceed", "please proceed", VerdictApprove},
		{"plain no", "no", VerdictRestart},
		{"reject", "reject this plan", VerdictRestart},
		{"start over phrase", "let's start over", VerdictRestart},
		{"new task phrase", "give me a new task instead", VerdictRestart},
		{"both sets reject wins", "good work but the total is wrong", VerdictRestart},
		{"incorrect contains correct", "incorrect", VerdictRestart},
		{"neither set", "hmm", VerdictRestart},
		{"empty answer", "", VerdictRestart},
		{"unrelated text", "what do the figures mean?", VerdictRestart},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, InterpretClarification(tt.answer))
		})
	}
}

func TestVerdictString(t *testing.T) {
	assert.Equal(t, "approve", VerdictApprove.String())
	assert.Equal(t, "restart", VerdictRestart.String())
}
