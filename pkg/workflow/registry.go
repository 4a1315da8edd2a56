package workflow

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// Agent is one specialized worker in the pipeline. Implementations must be
// safe for concurrent Execute calls across distinct workflows; steps within
// one workflow are never concurrent.
type Agent interface {
	// Name is the stable identifier used in planned sequences.
	Name() string

	// Describe returns static metadata for planning and the registry API.
	Describe() Metadata

	// Execute runs one step against a cloned state. Returning an error marks
	// the step failed; the error is classified by the fault handler to decide
	// retry vs. abort.
	Execute(ctx context.Context, st *State) (*StepOutcome, error)
}

// HealthChecker is implemented by agents whose dependencies can be pinged.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// Metadata describes an agent to the planner and the registry API.
type Metadata struct {
	Name         string   `json:"name"`
	Type         string   `json:"type"`
	Description  string   `json:"description"`
	Capabilities []string `json:"capabilities,omitempty"`

	// TolerateUpstreamGaps marks agents that produce useful output even when
	// earlier steps failed (e.g. the analysis agent summarizing partial data).
	TolerateUpstreamGaps bool `json:"tolerate_upstream_gaps,omitempty"`
}

// ErrAgentExists is returned when registering a duplicate agent name.
var ErrAgentExists = fmt.Errorf("agent already registered")

// Registry is the concurrency-safe name → Agent table. It is populated once
// at startup and read-only afterwards; the compile cache relies on that.
type Registry struct {
	mu     sync.RWMutex
	agents map[string]Agent
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		agents: make(map[string]Agent),
	}
}

// Register adds an agent. Duplicate names are rejected.
func (r *Registry) Register(a Agent) error {
	name := a.Name()
	if name == "" {
		return fmt.Errorf("agent name must not be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.agents[name]; exists {
		return fmt.Errorf("%w: %s", ErrAgentExists, name)
	}
	r.agents[name] = a
	return nil
}

// Get returns the agent registered under name.
func (r *Registry) Get(name string) (Agent, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.agents[name]
	return a, ok
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.Get(name)
	return ok
}

// Names returns all registered agent names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.agents))
	for name := range r.agents {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered agents.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.agents)
}

// Metadata returns descriptions of all agents, sorted by name.
func (r *Registry) Metadata() []Metadata {
	r.mu.RLock()
	defer r.mu.RUnlock()
	metas := make([]Metadata, 0, len(r.agents))
	for _, a := range r.agents {
		metas = append(metas, a.Describe())
	}
	sort.Slice(metas, func(i, j int) bool { return metas[i].Name < metas[j].Name })
	return metas
}

// Healthy pings every agent that exposes a health check. The returned map has
// one entry per checked agent; a nil value means healthy.
func (r *Registry) Healthy(ctx context.Context) map[string]error {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[string]error)
	for name, a := range r.agents {
		hc, ok := a.(HealthChecker)
		if !ok {
			continue
		}
		out[name] = hc.HealthCheck(ctx)
	}
	return out
}
