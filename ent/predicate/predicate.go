// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AgentMessage is the predicate function for agentmessage builders.
type AgentMessage func(*sql.Selector)

// Event is the predicate function for event builders.
type Event func(*sql.Selector)

// Extraction is the predicate function for extraction builders.
type Extraction func(*sql.Selector)

// Plan is the predicate function for plan builders.
type Plan func(*sql.Selector)

// PlanStep is the predicate function for planstep builders.
type PlanStep func(*sql.Selector)

// Team is the predicate function for team builders.
type Team func(*sql.Selector)
