package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/finovant/macaw/pkg/workflow"
)

// PlannerAgent narrates the approved plan as the first step of every
// workflow. The sequence itself was produced before execution started; this
// agent's step turns it into a human-readable opening message so the plan
// appears in the durable conversation.
type PlannerAgent struct {
	registry *workflow.Registry
}

// NewPlannerAgent creates the planner narration agent. Panics if registry is
// nil (programming error in wiring).
func NewPlannerAgent(registry *workflow.Registry) *PlannerAgent {
	if registry == nil {
		panic("NewPlannerAgent: registry must not be nil")
	}
	return &PlannerAgent{registry: registry}
}

func (a *PlannerAgent) Name() string { return "planner" }

func (a *PlannerAgent) Describe() workflow.Metadata {
	return workflow.Metadata{
		Name:        "planner",
		Type:        "orchestration",
		Description: "Narrates the approved agent sequence as the workflow's opening message",
		Capabilities: []string{
			"plan_narration",
		},
	}
}

// Execute composes the plan narrative from the state's agent sequence and the
// registry's agent descriptions.
func (a *PlannerAgent) Execute(ctx context.Context, st *workflow.State) (*workflow.StepOutcome, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(st.AgentSequence) == 0 {
		return nil, fmt.Errorf("no agent sequence to narrate")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Execution plan for: %s\n", st.TaskDescription)
	steps := 0
	for _, name := range st.AgentSequence {
		if name == a.Name() {
			continue
		}
		steps++
		description := "specialized step"
		if agent, ok := a.registry.Get(name); ok {
			description = agent.Describe().Description
		}
		fmt.Fprintf(&b, "%d. %s — %s\n", steps, name, description)
	}

	return &workflow.StepOutcome{
		Status:  workflow.StepCompleted,
		Kind:    "plan",
		Summary: fmt.Sprintf("Planned %d steps", steps),
		Content: b.String(),
		Output: map[string]any{
			"steps": steps,
		},
	}, nil
}
