// Package workflow defines the evolving state a workflow carries between
// agent steps, and the registry of agents that can act on it.
package workflow

import (
	"time"

	"github.com/finovant/macaw/pkg/models"
)

// StepStatus is the outcome classification of one agent step.
type StepStatus string

const (
	StepCompleted StepStatus = "completed"
	StepFailed    StepStatus = "failed"
	StepSkipped   StepStatus = "skipped"
)

// StepOutcome is what an agent returns from Execute. The executor merges it
// into the State; agents never mutate the State they receive.
type StepOutcome struct {
	// Status classifies the step. Agents normally return StepCompleted;
	// StepFailed with a nil error means the agent handled a domain-level
	// failure itself (transport failures are returned as errors instead).
	Status StepStatus

	// Summary is the one-line outcome shown in step listings.
	Summary string

	// Content is the full message recorded in the plan conversation.
	// Empty falls back to Summary.
	Content string

	// Kind classifies the recorded message (plan, progress, result, error).
	// Empty defaults to progress.
	Kind string

	// Output is structured data for downstream agents, keyed by whatever
	// vocabulary the agents share (e.g. "invoices", "emails").
	Output map[string]any

	// Collected holds extraction-style fields subject to human review,
	// merged into State.Collected under the agent's name.
	Collected map[string]any
}

// StepResult is the recorded form of a StepOutcome inside the State.
type StepResult struct {
	Agent    string
	Status   StepStatus
	Summary  string
	Output   map[string]any
	Error    string
	Duration time.Duration
}

// State is the workflow context passed from agent to agent. The executor owns
// the cursor and all mutation; agents receive a Clone and return deltas.
type State struct {
	PlanID          string
	SessionID       string
	TaskDescription string
	AgentSequence   []string
	CurrentStep     int
	Results         map[string]StepResult
	Collected       map[string]map[string]any
	FinalResult     string
	RequireApproval bool
	AwaitingInput   bool
	StartedAt       time.Time
}

// NewState creates the initial state for a planned workflow.
func NewState(planID, sessionID, task string, sequence []string, requireApproval bool) *State {
	seq := make([]string, len(sequence))
	copy(seq, sequence)
	return &State{
		PlanID:          planID,
		SessionID:       sessionID,
		TaskDescription: task,
		AgentSequence:   seq,
		Results:         make(map[string]StepResult),
		Collected:       make(map[string]map[string]any),
		RequireApproval: requireApproval,
		StartedAt:       time.Now(),
	}
}

// Clone returns a deep copy. Agents act on clones so a failed or abandoned
// step can never corrupt the authoritative state.
func (s *State) Clone() *State {
	c := *s
	c.AgentSequence = make([]string, len(s.AgentSequence))
	copy(c.AgentSequence, s.AgentSequence)

	c.Results = make(map[string]StepResult, len(s.Results))
	for agent, res := range s.Results {
		res.Output = copyMap(res.Output)
		c.Results[agent] = res
	}

	c.Collected = make(map[string]map[string]any, len(s.Collected))
	for agent, fields := range s.Collected {
		c.Collected[agent] = copyMap(fields)
	}
	return &c
}

// Merge records one agent's outcome. The result is written exactly once per
// run; a second merge for the same agent replaces the first only on restart.
func (s *State) Merge(agent string, res StepResult, collected map[string]any) {
	res.Agent = agent
	res.Output = copyMap(res.Output)
	s.Results[agent] = res

	if len(collected) > 0 {
		existing := s.Collected[agent]
		if existing == nil {
			existing = make(map[string]any, len(collected))
		}
		for k, v := range collected {
			existing[k] = v
		}
		s.Collected[agent] = existing
	}
}

// ApplyCollectedEdits overlays human corrections onto an agent's collected
// fields (extraction approval with edits).
func (s *State) ApplyCollectedEdits(agent string, edits map[string]any) {
	if len(edits) == 0 {
		return
	}
	fields := s.Collected[agent]
	if fields == nil {
		fields = make(map[string]any, len(edits))
	}
	for k, v := range edits {
		fields[k] = v
	}
	s.Collected[agent] = fields
}

// Advance moves the cursor past the step at index i. The cursor only ever
// increases, one step at a time.
func (s *State) Advance(i int) {
	if i+1 > s.CurrentStep {
		s.CurrentStep = i + 1
	}
}

// Snapshot returns the API-facing read-only view.
func (s *State) Snapshot() models.WorkflowSnapshot {
	snap := models.WorkflowSnapshot{
		PlanID:          s.PlanID,
		SessionID:       s.SessionID,
		TaskDescription: s.TaskDescription,
		AgentSequence:   append([]string(nil), s.AgentSequence...),
		CurrentStep:     s.CurrentStep,
		FinalResult:     s.FinalResult,
		RequireApproval: s.RequireApproval,
		AwaitingInput:   s.AwaitingInput,
		StartedAt:       s.StartedAt,
	}

	// Results in sequence order for stable presentation.
	for _, agent := range s.AgentSequence {
		res, ok := s.Results[agent]
		if !ok {
			continue
		}
		snap.Results = append(snap.Results, models.StepResultView{
			Agent:      res.Agent,
			Status:     string(res.Status),
			Summary:    res.Summary,
			Error:      res.Error,
			DurationMS: res.Duration.Milliseconds(),
		})
	}

	if len(s.Collected) > 0 {
		snap.Collected = make(map[string]any, len(s.Collected))
		for agent, fields := range s.Collected {
			snap.Collected[agent] = copyMap(fields)
		}
	}
	return snap
}

func copyMap(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
