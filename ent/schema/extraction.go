package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Extraction holds the schema definition for the Extraction entity.
// Structured fields an agent pulled out of a source document (e.g. invoice
// totals), held for human review. The approval outcome and any human edits are
// recorded here before the workflow resumes.
type Extraction struct {
	ent.Schema
}

// Fields of the Extraction.
func (Extraction) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("extraction_id").
			Unique().
			Immutable(),
		field.String("plan_id").
			Immutable(),
		field.String("agent_name").
			Immutable().
			Comment("Agent that produced the extraction"),
		field.JSON("fields", map[string]interface{}{}).
			Comment("Extracted field → value map as produced by the agent"),
		field.JSON("edited_fields", map[string]interface{}{}).
			Optional().
			Comment("Human corrections applied on approval"),
		field.Enum("status").
			Values("pending", "approved", "rejected").
			Default("pending"),
		field.Text("feedback").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("reviewed_at").
			Optional().
			Nillable(),
	}
}

// Edges of the Extraction.
func (Extraction) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("plan", Plan.Type).
			Ref("extractions").
			Field("plan_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Extraction.
func (Extraction) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("plan_id", "status"),
	}
}
