package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Workpaper holds the schema definition for the Workpaper entity.
// The composed audit deliverable for one session, at most one per session.
type Workpaper struct {
	ent.Schema
}

// Fields of the Workpaper.
func (Workpaper) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("workpaper_id").
			Unique().
			Immutable(),
		field.String("session_id").
			Unique().
			Immutable(),
		field.Text("html").
			Comment("Rendered workpaper document"),
		field.JSON("sections", map[string]interface{}{}).
			Optional().
			Comment("Narrative sections keyed by name (objective, procedure, ...)"),
		field.Int("citation_count").
			Default(0),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Workpaper.
func (Workpaper) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", ReconSession.Type).
			Ref("workpaper").
			Field("session_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Workpaper.
func (Workpaper) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id").
			Unique(),
		index.Fields("created_at"),
	}
}
