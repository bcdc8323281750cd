package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// StageExecution holds the schema definition for the StageExecution entity.
// One supervisor-driven run of a pipeline stage within a session.
type StageExecution struct {
	ent.Schema
}

// Fields of the StageExecution.
func (StageExecution) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("execution_id").
			Unique().
			Immutable(),
		field.String("session_id").
			Immutable(),
		field.String("stage").
			Comment("Pipeline stage: extraction, quantitative, compliance, divergence_guard, reconciliation, drafting"),
		field.Int("stage_index").
			Comment("Position in the pipeline: 0..5"),
		field.Enum("status").
			Values("pending", "active", "completed", "failed", "timed_out", "cancelled", "skipped").
			Default("pending"),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Int("duration_ms").
			Optional().
			Nillable(),
		field.Bool("degraded").
			Default(false).
			Comment("Stage output came from a fallback path (terminal provider, neutral report)"),
		field.String("error_message").
			Optional().
			Nillable(),
		field.Text("summary").
			Optional().
			Nillable().
			Comment("One-line stage result, e.g. 'extracted 3 of 3 documents'"),
	}
}

// Edges of the StageExecution.
func (StageExecution) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", ReconSession.Type).
			Ref("stage_executions").
			Field("session_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the StageExecution.
func (StageExecution) Indexes() []ent.Index {
	return []ent.Index{
		// Unique constraint for stage ordering within session
		index.Fields("session_id", "stage_index").
			Unique(),
		index.Fields("session_id", "stage"),
		index.Fields("status"),
	}
}
