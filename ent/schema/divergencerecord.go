package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// DivergenceRecord holds the schema definition for the DivergenceRecord
// entity. Audit trail of one hallucination-guard measurement: the
// primary/shadow similarity, the threshold in force, and the perturbations
// applied to the shadow context.
type DivergenceRecord struct {
	ent.Schema
}

// Fields of the DivergenceRecord.
func (DivergenceRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("record_id").
			Unique().
			Immutable(),
		field.String("session_id").
			Immutable(),
		field.String("tenant_id").
			Immutable().
			Comment("Denormalized for per-tenant threshold review queries"),
		field.Float("similarity"),
		field.Float("threshold").
			Comment("Tenant threshold in force when the measurement ran"),
		field.Bool("alert_triggered").
			Default(false),
		field.String("reason").
			Optional().
			Nillable().
			Comment("Why the alert fired or was withheld, e.g. SIMILARITY_BELOW_THRESHOLD"),
		field.Bool("degraded").
			Default(false).
			Comment("Vectors came from the deterministic fallback provider"),
		field.JSON("perturbations", []map[string]interface{}{}).
			Optional().
			Comment("Literal rewrites applied to the shadow context"),
		field.Text("primary_summary").
			Optional().
			Nillable().
			Comment("First line of the primary reasoning, for audit display"),
		field.Text("shadow_summary").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the DivergenceRecord.
func (DivergenceRecord) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", ReconSession.Type).
			Ref("divergence_records").
			Field("session_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the DivergenceRecord.
func (DivergenceRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("tenant_id", "created_at"),
		index.Fields("alert_triggered"),
	}
}
