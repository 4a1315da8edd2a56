package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PlanStep holds the schema definition for the PlanStep entity.
// One row per node of a compiled graph, written when execution begins and
// updated as the executor advances.
type PlanStep struct {
	ent.Schema
}

// Fields of the PlanStep.
func (PlanStep) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("step_id").
			Unique().
			Immutable(),
		field.String("plan_id").
			Immutable(),
		field.Int("step_index").
			Immutable().
			Comment("Position in the compiled node list (0-based)"),
		field.String("agent_name").
			Immutable(),
		field.Bool("interrupt_before").
			Default(false).
			Comment("Approval gate in front of this step"),
		field.Enum("status").
			Values("pending", "running", "completed", "failed", "skipped").
			Default("pending"),
		field.Text("summary").
			Optional().
			Nillable().
			Comment("Agent's one-line outcome"),
		field.JSON("output", map[string]interface{}{}).
			Optional().
			Comment("Structured agent output merged into workflow state"),
		field.String("error_message").
			Optional().
			Nillable(),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Int64("duration_ms").
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the PlanStep.
func (PlanStep) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("plan", Plan.Type).
			Ref("steps").
			Field("plan_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the PlanStep.
func (PlanStep) Indexes() []ent.Index {
	return []ent.Index{
		// Step order within a plan
		index.Fields("plan_id", "step_index").
			Unique(),
		index.Fields("plan_id", "status"),
	}
}
