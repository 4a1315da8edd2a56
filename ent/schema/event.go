package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Event holds the schema definition for the Event entity.
// Durable copy of every persisted WebSocket envelope, used for catchup after
// reconnects. Rows are short-lived (TTL cleanup); the auto-increment ID is the
// catchup watermark.
type Event struct {
	ent.Schema
}

// Fields of the Event.
// The default int ID (bigserial) is kept intentionally: clients use it as a
// monotonic last_event_id cursor.
func (Event) Fields() []ent.Field {
	return []ent.Field{
		field.String("plan_id").
			Immutable(),
		field.String("channel").
			Immutable().
			Comment("Distribution channel, e.g. plan:<id> or plans"),
		field.Text("payload").
			Immutable().
			Comment("Full JSON envelope (never truncated, unlike the NOTIFY copy)"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Event.
func (Event) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("plan", Plan.Type).
			Ref("events").
			Field("plan_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Event.
func (Event) Indexes() []ent.Index {
	return []ent.Index{
		// Catchup scans: WHERE channel = $1 AND id > $2 ORDER BY id
		index.Fields("channel"),
		index.Fields("plan_id"),
		// TTL cleanup
		index.Fields("created_at"),
	}
}
