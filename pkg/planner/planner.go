// Package planner turns a natural-language task into an ordered agent
// sequence. The primary path asks the LLM for a strict-JSON plan; on any
// failure it falls back deterministically to keyword templates, then to the
// minimum viable sequence. Every candidate passes the same sanitizer.
package planner

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/finovant/macaw/ent"
	"github.com/finovant/macaw/pkg/llm"
	"github.com/finovant/macaw/pkg/workflow"
)

// PlannerAgent leads every sequence; it narrates the plan as the first step.
const PlannerAgent = "planner"

// ErrNotActionable is returned when no usable agent sequence can be produced
// for a task, even from the fallbacks.
var ErrNotActionable = errors.New("task is not actionable: no usable agent sequence")

// PlanSource records which path produced a sequence.
type PlanSource string

const (
	SourceLLM      PlanSource = "llm"
	SourceTemplate PlanSource = "template"
	SourceDefault  PlanSource = "default"
	// SourceUser marks sequences edited by an operator at plan approval.
	SourceUser PlanSource = "user"
)

// PlanResult is the planner's output for one task.
type PlanResult struct {
	Sequence          []string
	Reasoning         map[string]string
	Summary           string
	Complexity        float64
	EstimatedDuration time.Duration
	Source            PlanSource
}

// TeamSource lists stored team definitions for planning-prompt hints.
// Satisfied by services.TeamService.
type TeamSource interface {
	ListTeams(ctx context.Context) ([]*ent.Team, error)
}

// Planner builds agent sequences. Safe for concurrent use.
type Planner struct {
	llm      llm.Client
	registry *workflow.Registry
	teams    TeamSource
	maxSteps int
}

// New creates a Planner over the given registry. maxSteps clamps sequence
// length.
func New(llmClient llm.Client, registry *workflow.Registry, maxSteps int) *Planner {
	return &Planner{
		llm:      llmClient,
		registry: registry,
		maxSteps: maxSteps,
	}
}

// SetTeamSource enables team hints in the planning prompt. Wire it before the
// first BuildPlan; the planner works without one.
func (p *Planner) SetTeamSource(teams TeamSource) {
	p.teams = teams
}

// BuildPlan produces a sanitized plan for the task. LLM failures and
// unparseable output degrade to templates, then to the default sequence;
// ErrNotActionable is returned only when even the default cannot survive
// sanitization (registry missing the core agents).
func (p *Planner) BuildPlan(ctx context.Context, planID, task string) (*PlanResult, error) {
	if result := p.planWithLLM(ctx, planID, task); result != nil {
		return result, nil
	}
	if result := p.planFromTemplate(task); result != nil {
		return result, nil
	}
	return p.planDefault()
}

// SanitizeSequence validates an externally supplied sequence (an
// operator-modified plan) against the registry and step clamp.
func (p *Planner) SanitizeSequence(seq []string) ([]string, error) {
	out := p.sanitize(seq)
	if len(out) == 0 {
		return nil, ErrNotActionable
	}
	return out, nil
}

// EstimateDuration sums per-agent base costs for a sequence.
func (p *Planner) EstimateDuration(seq []string) time.Duration {
	var total time.Duration
	for _, name := range seq {
		if cost, ok := agentBaseCost[name]; ok {
			total += cost
		} else {
			total += defaultAgentCost
		}
	}
	return total
}

var agentBaseCost = map[string]time.Duration{
	PlannerAgent: 5 * time.Second,
	"invoice":    20 * time.Second,
	"gmail":      15 * time.Second,
	"salesforce": 15 * time.Second,
	"analysis":   30 * time.Second,
}

const defaultAgentCost = 15 * time.Second

func (p *Planner) planWithLLM(ctx context.Context, planID, task string) *PlanResult {
	raw, err := p.llm.Complete(ctx, &llm.Request{
		PlanID:   planID,
		Messages: p.buildMessages(ctx, task),
	})
	if err != nil {
		slog.Warn("Planner LLM call failed, falling back to templates",
			"plan_id", planID, "error", err)
		return nil
	}

	parsed, err := parsePlanResponse(raw)
	if err != nil {
		slog.Warn("Planner LLM output unparseable, falling back to templates",
			"plan_id", planID, "error", err)
		return nil
	}

	seq := p.sanitize(parsed.Agents)
	if len(seq) == 0 {
		slog.Warn("Planner LLM sequence unusable after sanitization, falling back to templates",
			"plan_id", planID, "proposed", parsed.Agents)
		return nil
	}

	summary := strings.TrimSpace(parsed.Summary)
	if summary == "" {
		summary = "Planned task"
	}

	return &PlanResult{
		Sequence:          seq,
		Reasoning:         parsed.Reasoning,
		Summary:           summary,
		Complexity:        clampComplexity(parsed.Complexity),
		EstimatedDuration: p.EstimateDuration(seq),
		Source:            SourceLLM,
	}
}

func (p *Planner) planFromTemplate(task string) *PlanResult {
	tpl, ok := matchTemplate(task)
	if !ok {
		return nil
	}

	seq := p.sanitize(tpl.sequence)
	if len(seq) == 0 {
		return nil
	}

	reasoning := make(map[string]string, len(seq))
	for _, name := range seq {
		reasoning[name] = fmt.Sprintf("selected by %s template", tpl.name)
	}

	return &PlanResult{
		Sequence:          seq,
		Reasoning:         reasoning,
		Summary:           tpl.summary,
		Complexity:        tpl.complexity,
		EstimatedDuration: p.EstimateDuration(seq),
		Source:            SourceTemplate,
	}
}

func (p *Planner) planDefault() (*PlanResult, error) {
	seq := p.sanitize(defaultSequence())
	if len(seq) == 0 {
		return nil, ErrNotActionable
	}

	return &PlanResult{
		Sequence:          seq,
		Summary:           "General task review",
		Complexity:        0.2,
		EstimatedDuration: p.EstimateDuration(seq),
		Source:            SourceDefault,
	}, nil
}

// sanitize drops unknown names, deduplicates keeping first occurrence, puts
// the planner first, clamps length, and rejects sequences with no non-planner
// agent. Returns nil when nothing usable survives.
func (p *Planner) sanitize(seq []string) []string {
	seen := make(map[string]bool, len(seq))
	out := make([]string, 0, len(seq))
	for _, name := range seq {
		name = strings.TrimSpace(name)
		if name == "" || seen[name] {
			continue
		}
		if !p.registry.Has(name) {
			slog.Warn("Dropping unknown agent from plan", "agent", name)
			continue
		}
		seen[name] = true
		out = append(out, name)
	}

	out = p.plannerFirst(out)

	if len(out) > p.maxSteps {
		out = out[:p.maxSteps]
	}

	if len(out) == 0 || (len(out) == 1 && out[0] == PlannerAgent) {
		return nil
	}
	return out
}

// plannerFirst moves (or inserts, if registered) the planner to the front.
func (p *Planner) plannerFirst(seq []string) []string {
	if len(seq) > 0 && seq[0] == PlannerAgent {
		return seq
	}

	rest := make([]string, 0, len(seq)+1)
	for _, name := range seq {
		if name != PlannerAgent {
			rest = append(rest, name)
		}
	}
	if !p.registry.Has(PlannerAgent) {
		return rest
	}
	return append([]string{PlannerAgent}, rest...)
}

func (p *Planner) buildMessages(ctx context.Context, task string) []llm.Message {
	var agents strings.Builder
	for _, meta := range p.registry.Metadata() {
		fmt.Fprintf(&agents, "- %s: %s\n", meta.Name, meta.Description)
	}

	system := "You are the workflow planner for a back-office finance automation " +
		"service. You select an ordered sequence of specialized agents to accomplish " +
		"the user's task. The planner agent always runs first."

	user := fmt.Sprintf(`Plan the following task: %s

Available agents:
%s
Respond with strict JSON only, no prose:
{"agents": ["planner", "..."], "reasoning": {"agent": "why it is needed"}, "summary": "one line", "complexity": 0.0}

complexity is a difficulty score between 0 and 1. Every agent name must come from the list above.`,
		task, agents.String())

	if hints := p.teamHints(ctx); hints != "" {
		user += "\n\nOperator-configured teams (prefer a matching team's agents):\n" + hints
	}

	return []llm.Message{
		{Role: llm.RoleSystem, Content: system},
		{Role: llm.RoleUser, Content: user},
	}
}

// teamHints renders the stored team definitions as prompt lines. Best-effort:
// a missing source or lookup failure just means no hints.
func (p *Planner) teamHints(ctx context.Context) string {
	if p.teams == nil {
		return ""
	}
	listCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	teams, err := p.teams.ListTeams(listCtx)
	if err != nil {
		slog.Warn("Failed to list teams for planning hints", "error", err)
		return ""
	}

	var b strings.Builder
	for _, t := range teams {
		names := make([]string, 0, len(t.Agents))
		for _, member := range t.Agents {
			if name, ok := member["name"].(string); ok && name != "" {
				names = append(names, name)
			}
		}
		fmt.Fprintf(&b, "- %s: %s (agents: %s)\n", t.Name, t.Description, strings.Join(names, ", "))
	}
	return b.String()
}

// llmPlan is the strict-JSON response shape expected from the model.
type llmPlan struct {
	Agents     []string          `json:"agents"`
	Reasoning  map[string]string `json:"reasoning"`
	Summary    string            `json:"summary"`
	Complexity float64           `json:"complexity"`
}

func parsePlanResponse(raw string) (*llmPlan, error) {
	var plan llmPlan
	if err := json.Unmarshal([]byte(stripFences(raw)), &plan); err != nil {
		return nil, fmt.Errorf("plan response is not valid JSON: %w", err)
	}
	if len(plan.Agents) == 0 {
		return nil, fmt.Errorf("plan response contains no agents")
	}
	return &plan, nil
}

// stripFences removes a surrounding markdown code fence, which models emit
// despite the strict-JSON instruction.
func stripFences(raw string) string {
	s := strings.TrimSpace(raw)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	if idx := strings.LastIndex(s, "```"); idx >= 0 {
		s = s[:idx]
	}
	return strings.TrimSpace(s)
}

func clampComplexity(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
