package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Plan holds the schema definition for the Plan entity.
// One Plan is one orchestrated workflow: the user's task, the planned agent
// sequence, the execution cursor, and the terminal outcome.
type Plan struct {
	ent.Schema
}

// Fields of the Plan.
func (Plan) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("plan_id").
			Unique().
			Immutable(),
		field.String("session_id").
			Comment("Groups plans submitted from the same user session"),
		field.Text("task_description").
			Comment("Original natural-language request (full-text searchable)"),
		field.Enum("status").
			Values("pending", "pending_approval", "in_progress", "completed", "failed", "rejected", "restarted").
			Default("pending"),
		field.JSON("agent_sequence", []string{}).
			Optional().
			Comment("Planned agent order after sanitization"),
		field.String("graph_type").
			Optional().
			Comment("Compilation mode (simple, default, ai_driven, hitl_enabled)"),
		field.String("graph_id").
			Optional().
			Nillable().
			Comment("Content hash of the compiled graph"),
		field.Bool("require_approval").
			Default(true),
		field.Int("current_step").
			Default(0).
			Comment("Resume cursor into the compiled node list"),
		field.Text("plan_summary").
			Optional().
			Nillable().
			Comment("Human-readable plan narrative shown at the approval gate"),
		field.Float("complexity").
			Optional().
			Comment("Planner complexity estimate in [0,1]"),
		field.String("plan_source").
			Optional().
			Comment("llm, template, or default"),
		field.Text("final_result").
			Optional().
			Nillable().
			Comment("Workflow outcome (full-text searchable)"),
		field.String("error_message").
			Optional().
			Nillable(),
		field.Text("human_feedback").
			Optional().
			Nillable().
			Comment("Latest approval/rejection feedback"),
		field.String("restarted_from").
			Optional().
			Nillable().
			Comment("Plan this one was cloned from on result rejection"),
		field.JSON("plan_metadata", map[string]interface{}{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Comment("When the request was submitted"),
		field.Time("started_at").
			Optional().
			Nillable().
			Comment("When execution began (transitioned to in_progress)"),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Time("deleted_at").
			Optional().
			Nillable().
			Comment("Soft delete for retention policy"),
	}
}

// Edges of the Plan.
func (Plan) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("steps", PlanStep.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("messages", AgentMessage.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("events", Event.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("extractions", Extraction.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Plan.
func (Plan) Indexes() []ent.Index {
	return []ent.Index{
		// Single field indexes
		index.Fields("status"),
		index.Fields("session_id"),

		// Composite indexes
		index.Fields("session_id", "created_at"),
		index.Fields("status", "created_at"),

		// Partial index for soft deletes
		index.Fields("deleted_at").
			Annotations(entsql.IndexWhere("deleted_at IS NOT NULL")),
	}
}

// Annotations for PostgreSQL-specific features.
// Note: GIN indexes for full-text search are created via migration hooks
// in pkg/database/migrations.go
func (Plan) Annotations() []schema.Annotation {
	return []schema.Annotation{}
}
