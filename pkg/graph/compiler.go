package graph

import (
	"context"
	"fmt"
	"log/slog"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/finovant/macaw/pkg/workflow"
)

// CacheMetrics receives compile cache hit/miss signals.
type CacheMetrics interface {
	RecordCacheHit()
	RecordCacheMiss()
}

// CompilerOption customizes a Compiler.
type CompilerOption func(*Compiler)

// WithDuplicatesAllowed permits repeated agents in one sequence.
func WithDuplicatesAllowed() CompilerOption {
	return func(c *Compiler) {
		c.allowDuplicates = true
	}
}

// Compiler builds graphs from validated sequences, memoizing by Graph.ID.
// Safe for concurrent use. The cache is never invalidated: the registry is
// fixed after startup, so a compiled graph stays valid for the process
// lifetime.
type Compiler struct {
	registry        *workflow.Registry
	cache           *lru.Cache[string, *Graph]
	metrics         CacheMetrics
	allowDuplicates bool
}

// NewCompiler creates a Compiler with a bounded LRU cache. metrics may be
// nil.
func NewCompiler(registry *workflow.Registry, cacheSize int, metrics CacheMetrics, opts ...CompilerOption) *Compiler {
	if cacheSize < 1 {
		cacheSize = 1
	}
	// lru.New errors only on non-positive sizes, clamped above.
	cache, _ := lru.New[string, *Graph](cacheSize)

	c := &Compiler{
		registry: registry,
		cache:    cache,
		metrics:  metrics,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Compile validates the sequence and returns its graph, from cache when the
// same (sequence, type, hitl) input was compiled before.
func (c *Compiler) Compile(ctx context.Context, seq []string, typ GraphType, hitl bool) (*Graph, error) {
	if len(seq) == 0 {
		return nil, ErrEmptySequence
	}

	id := ID(seq, typ, hitl)
	if g, ok := c.cache.Get(id); ok {
		if c.metrics != nil {
			c.metrics.RecordCacheHit()
		}
		return g, nil
	}
	if c.metrics != nil {
		c.metrics.RecordCacheMiss()
	}

	if err := c.validate(seq); err != nil {
		return nil, err
	}

	interrupts := hitl || typ == TypeHITLEnabled
	nodes := make([]Node, len(seq))
	for i, agent := range seq {
		nodes[i] = Node{
			Agent: agent,
			// The first node (the planner narration) never interrupts.
			InterruptBefore: interrupts && i > 0,
		}
	}

	g := &Graph{
		ID:    id,
		Type:  typ,
		Nodes: nodes,
		HITL:  interrupts,
	}
	c.cache.Add(id, g)

	slog.Debug("Compiled execution graph",
		"graph_id", id, "type", typ, "nodes", len(nodes), "hitl", interrupts)
	return g, nil
}

// CacheLen returns the number of cached graphs.
func (c *Compiler) CacheLen() int {
	return c.cache.Len()
}

func (c *Compiler) validate(seq []string) error {
	seen := make(map[string]bool, len(seq))
	for _, name := range seq {
		if !c.registry.Has(name) {
			return &UnknownAgentError{Agent: name}
		}
		if seen[name] && !c.allowDuplicates {
			return fmt.Errorf("%w: %s", ErrDuplicateAgent, name)
		}
		seen[name] = true
	}
	return nil
}
