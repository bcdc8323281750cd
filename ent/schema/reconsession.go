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

// ReconSession holds the schema definition for the ReconSession entity.
// One submitted three-way reconciliation (PO + GRN + invoice) and its
// lifecycle from submission to terminal verdict.
type ReconSession struct {
	ent.Schema
}

// Fields of the ReconSession.
func (ReconSession) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("session_id").
			Unique().
			Immutable(),
		field.String("tenant_id").
			Immutable(),
		field.Text("document_bundle").
			Comment("Submitted document bundle JSON (full-text searchable)"),
		field.String("vendor_name").
			Optional().
			Nillable().
			Comment("Denormalized from extraction for list filters"),
		field.String("invoice_number").
			Optional().
			Nillable().
			Comment("Denormalized from extraction; feeds the duplicate-invoice probe of later sessions"),
		field.Enum("status").
			Values("pending", "in_progress", "cancelling", "matched",
				"discrepancy_found", "divergence_alert", "exception",
				"failed", "cancelled").
			Default("pending"),
		field.Time("created_at").
			Default(time.Now).
			Comment("When the reconciliation was submitted"),
		field.Time("started_at").
			Optional().
			Nillable().
			Comment("When a worker claimed the session (pending to in_progress)"),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.String("error_message").
			Optional().
			Nillable(),
		field.String("current_stage").
			Optional().
			Nillable().
			Comment("Stage the supervisor is executing, cleared on terminal"),
		field.JSON("verdict", map[string]interface{}{}).
			Optional().
			Comment("Terminal verdict document (status, confidence, matches, summary)"),
		field.Text("verdict_summary").
			Optional().
			Nillable().
			Comment("Discrepancy summary lines joined for list views"),
		field.JSON("state_errors", []map[string]interface{}{}).
			Optional().
			Comment("Stage errors accumulated on the pipeline state"),
		field.JSON("session_metadata", map[string]interface{}{}).
			Optional(),
		field.String("pod_id").
			Optional().
			Nillable().
			Comment("For multi-replica coordination"),
		field.Time("last_heartbeat_at").
			Optional().
			Nillable().
			Comment("For orphan detection"),
		field.Time("deleted_at").
			Optional().
			Nillable().
			Comment("Soft delete for retention policy"),
	}
}

// Edges of the ReconSession.
func (ReconSession) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("stage_executions", StageExecution.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("divergence_records", DivergenceRecord.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("workpaper", Workpaper.Type).
			Unique().
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("progress_events", ProgressEvent.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("feedback_samples", FeedbackSample.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the ReconSession.
func (ReconSession) Indexes() []ent.Index {
	return []ent.Index{
		// Single field indexes
		index.Fields("status"),
		index.Fields("tenant_id"),

		// Composite indexes
		index.Fields("status", "created_at"),
		index.Fields("tenant_id", "status"),
		index.Fields("status", "last_heartbeat_at"),

		// Duplicate-invoice probe lookups
		index.Fields("tenant_id", "invoice_number"),

		// Partial index for soft deletes
		index.Fields("deleted_at").
			Annotations(entsql.IndexWhere("deleted_at IS NOT NULL")),
	}
}

// Annotations for PostgreSQL-specific features.
// Note: the GIN index for document_bundle full-text search is created in
// pkg/database/migrations.go
func (ReconSession) Annotations() []schema.Annotation {
	return []schema.Annotation{}
}
