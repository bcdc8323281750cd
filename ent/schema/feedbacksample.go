package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// FeedbackSample holds the schema definition for the FeedbackSample entity.
// One divergence observation per session, captured when the guard runs and
// labeled later by reviewer feedback. Labeled samples are the training
// window for per-tenant threshold adaptation.
type FeedbackSample struct {
	ent.Schema
}

// Fields of the FeedbackSample.
func (FeedbackSample) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("sample_id").
			Unique().
			Immutable(),
		field.String("session_id").
			Unique().
			Immutable(),
		field.String("tenant_id").
			Immutable(),
		field.Float("similarity"),
		field.Float("threshold").
			Comment("Tenant threshold in force when the guard ran"),
		field.Bool("was_alert").
			Default(false),
		field.Enum("outcome").
			Values("unlabeled", "correct", "false_positive", "false_negative").
			Default("unlabeled"),
		field.String("reviewer").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("labeled_at").
			Optional().
			Nillable(),
	}
}

// Edges of the FeedbackSample.
func (FeedbackSample) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", ReconSession.Type).
			Ref("feedback_samples").
			Field("session_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the FeedbackSample.
func (FeedbackSample) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id").
			Unique(),
		// Rehydration loads a tenant's labeled window in insertion order
		index.Fields("tenant_id", "created_at"),
		index.Fields("outcome"),
	}
}
