package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AgentMessage holds the schema definition for the AgentMessage entity.
// The durable conversation record of a workflow: everything an agent said,
// in plan-scoped sequence order. The live WebSocket stream mirrors these rows;
// this table is the source of truth.
type AgentMessage struct {
	ent.Schema
}

// Fields of the AgentMessage.
func (AgentMessage) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("message_id").
			Unique().
			Immutable(),
		field.String("plan_id").
			Immutable(),
		field.String("agent_name").
			Immutable(),
		field.Int("sequence_number").
			Immutable().
			Comment("Plan-scoped order, strictly increasing from 1 with no gaps"),
		field.Enum("kind").
			Values("plan", "progress", "result", "clarification", "error").
			Default("progress"),
		field.Text("content").
			Comment("Message text"),
		field.JSON("message_metadata", map[string]interface{}{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the AgentMessage.
func (AgentMessage) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("plan", Plan.Type).
			Ref("messages").
			Field("plan_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the AgentMessage.
func (AgentMessage) Indexes() []ent.Index {
	return []ent.Index{
		// Plan conversation order; uniqueness backs the no-gaps discipline
		index.Fields("plan_id", "sequence_number").
			Unique(),
		index.Fields("plan_id", "agent_name"),
	}
}
