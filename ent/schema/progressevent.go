package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ProgressEvent holds the schema definition for the ProgressEvent entity.
// Durable progress events for WebSocket catchup after reconnect. The
// default integer id doubles as the catchup cursor: clients resend the
// last id they saw and receive everything after it.
//
// Rows are written by EventPublisher.persistAndNotify via direct SQL so
// the INSERT and pg_notify share one transaction; this schema exists for
// reads and for schema management.
type ProgressEvent struct {
	ent.Schema
}

// Fields of the ProgressEvent.
func (ProgressEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			Immutable(),
		field.String("channel").
			Immutable().
			Comment("NOTIFY channel the event was broadcast on"),
		field.String("event_type").
			Immutable(),
		field.JSON("payload", map[string]interface{}{}),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the ProgressEvent.
func (ProgressEvent) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", ReconSession.Type).
			Ref("progress_events").
			Field("session_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the ProgressEvent.
func (ProgressEvent) Indexes() []ent.Index {
	return []ent.Index{
		// Catchup queries scan (channel, id > cursor)
		index.Fields("channel", "id"),
		index.Fields("session_id"),
		// Retention pruning
		index.Fields("created_at"),
	}
}
