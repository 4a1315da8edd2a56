// Package graph compiles agent sequences into linear execution graphs and
// memoizes compilation results. Graphs are deliberately simple: one node per
// agent, implicit edges from each node to the next, no branching. Deviation
// from the planned sequence is not representable.
package graph

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// GraphType affects interrupt placement only; every type compiles to the same
// linear chain.
type GraphType string

const (
	TypeSimple      GraphType = "simple"
	TypeDefault     GraphType = "default"
	TypeAIDriven    GraphType = "ai_driven"
	TypeHITLEnabled GraphType = "hitl_enabled"
)

// Node is one step in the chain.
type Node struct {
	Agent string `json:"agent"`

	// InterruptBefore suspends execution before this node until the pending
	// approval checkpoint is granted.
	InterruptBefore bool `json:"interrupt_before"`
}

// Graph is a compiled linear execution graph. Cached graphs are shared across
// plans; callers must not mutate them.
type Graph struct {
	ID    string    `json:"id"`
	Type  GraphType `json:"type"`
	Nodes []Node    `json:"nodes"`
	HITL  bool      `json:"hitl"`
}

// Len returns the number of nodes.
func (g *Graph) Len() int {
	return len(g.Nodes)
}

// AgentAt returns the agent name at step i.
func (g *Graph) AgentAt(i int) (string, bool) {
	if i < 0 || i >= len(g.Nodes) {
		return "", false
	}
	return g.Nodes[i].Agent, true
}

// Sequence returns the agent names in order.
func (g *Graph) Sequence() []string {
	seq := make([]string, len(g.Nodes))
	for i, n := range g.Nodes {
		seq[i] = n.Agent
	}
	return seq
}

// ID computes the cache identity of a compilation input.
func ID(seq []string, typ GraphType, hitl bool) string {
	sum := sha256.Sum256([]byte(strings.Join(seq, "|") + "|" + string(typ) + "|" + strconv.FormatBool(hitl)))
	return hex.EncodeToString(sum[:])
}

// ErrEmptySequence is returned when compiling an empty sequence.
var ErrEmptySequence = errors.New("cannot compile an empty agent sequence")

// ErrDuplicateAgent is returned when a sequence repeats an agent and the
// compiler does not allow duplicates.
var ErrDuplicateAgent = errors.New("duplicate agent in sequence")

// UnknownAgentError reports a sequence entry missing from the registry.
type UnknownAgentError struct {
	Agent string
}

func (e *UnknownAgentError) Error() string {
	return fmt.Sprintf("unknown agent %q in sequence", e.Agent)
}
