// Code generated by ent, DO NOT EDIT.

package workpaper

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/procureguard/trimatch/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Workpaper {
	return predicate.Workpaper(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Workpaper {
	return predicate.Workpaper(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Workpaper {
	return predicate.Workpaper(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Workpaper {
	return predicate.Workpaper(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Workpaper {
	return predicate.Workpaper(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Workpaper {
	return predicate.Workpaper(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Workpaper {
	return predicate.Workpaper(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Workpaper {
	return predicate.Workpaper(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Workpaper {
	return predicate.Workpaper(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Workpaper {
	return predicate.Workpaper(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Workpaper {
	return predicate.Workpaper(sql.FieldContainsFold(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.Workpaper {
	return predicate.Workpaper(sql.FieldEQ(FieldSessionID, v))
}

// HTML applies equality check predicate on the "html" field. It's identical to HTMLEQ.
func HTML(v string) predicate.Workpaper {
	return predicate.Workpaper(sql.FieldEQ(FieldHTML, v))
}

// CitationCount applies equality check predicate on the "citation_count" field. It's identical to CitationCountEQ.
func CitationCount(v int) predicate.Workpaper {
	return predicate.Workpaper(sql.FieldEQ(FieldCitationCount, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Workpaper {
	return predicate.Workpaper(sql.FieldEQ(FieldCreatedAt, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.Workpaper {
	return predicate.Workpaper(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.Workpaper {
	return predicate.Workpaper(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.Workpaper {
	return predicate.Workpaper(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.Workpaper {
	return predicate.Workpaper(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.Workpaper {
	return predicate.Workpaper(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.Workpaper {
	return predicate.Workpaper(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.Workpaper {
	return predicate.Workpaper(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.Workpaper {
	return predicate.Workpaper(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.Workpaper {
	return predicate.Workpaper(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.Workpaper {
	return predicate.Workpaper(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.Workpaper {
	return predicate.Workpaper(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.Workpaper {
	return predicate.Workpaper(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.Workpaper {
	return predicate.Workpaper(sql.FieldContainsFold(FieldSessionID, v))
}

// HTMLEQ applies the EQ predicate on the "html" field.
func HTMLEQ(v string) predicate.Workpaper {
	return predicate.Workpaper(sql.FieldEQ(FieldHTML, v))
}

// HTMLNEQ applies the NEQ predicate on the "html" field.
func HTMLNEQ(v string) predicate.Workpaper {
	return predicate.Workpaper(sql.FieldNEQ(FieldHTML, v))
}

// HTMLIn applies the In predicate on the "html" field.
func HTMLIn(vs ...string) predicate.Workpaper {
	return predicate.Workpaper(sql.FieldIn(FieldHTML, vs...))
}

// HTMLNotIn applies the NotIn predicate on the "html" field.
func HTMLNotIn(vs ...string) predicate.Workpaper {
	return predicate.Workpaper(sql.FieldNotIn(FieldHTML, vs...))
}

// HTMLGT applies the GT predicate on the "html" field.
func HTMLGT(v string) predicate.Workpaper {
	return predicate.Workpaper(sql.FieldGT(FieldHTML, v))
}

// HTMLGTE applies the GTE predicate on the "html" field.
func HTMLGTE(v string) predicate.Workpaper {
	return predicate.Workpaper(sql.FieldGTE(FieldHTML, v))
}

// HTMLLT applies the LT predicate on the "html" field.
func HTMLLT(v string) predicate.Workpaper {
	return predicate.Workpaper(sql.FieldLT(FieldHTML, v))
}

// HTMLLTE applies the LTE predicate on the "html" field.
func HTMLLTE(v string) predicate.Workpaper {
	return predicate.Workpaper(sql.FieldLTE(FieldHTML, v))
}

// HTMLContains applies the Contains predicate on the "html" field.
func HTMLContains(v string) predicate.Workpaper {
	return predicate.Workpaper(sql.FieldContains(FieldHTML, v))
}

// HTMLHasPrefix applies the HasPrefix predicate on the "html" field.
func HTMLHasPrefix(v string) predicate.Workpaper {
	return predicate.Workpaper(sql.FieldHasPrefix(FieldHTML, v))
}

// HTMLHasSuffix applies the HasSuffix predicate on the "html" field.
func HTMLHasSuffix(v string) predicate.Workpaper {
	return predicate.Workpaper(sql.FieldHasSuffix(FieldHTML, v))
}

// HTMLEqualFold applies the EqualFold predicate on the "html" field.
func HTMLEqualFold(v string) predicate.Workpaper {
	return predicate.Workpaper(sql.FieldEqualFold(FieldHTML, v))
}

// HTMLContainsFold applies the ContainsFold predicate on the "html" field.
func HTMLContainsFold(v string) predicate.Workpaper {
	return predicate.Workpaper(sql.FieldContainsFold(FieldHTML, v))
}

// SectionsIsNil applies the IsNil predicate on the "sections" field.
func SectionsIsNil() predicate.Workpaper {
	return predicate.Workpaper(sql.FieldIsNull(FieldSections))
}

// SectionsNotNil applies the NotNil predicate on the "sections" field.
func SectionsNotNil() predicate.Workpaper {
	return predicate.Workpaper(sql.FieldNotNull(FieldSections))
}

// CitationCountEQ applies the EQ predicate on the "citation_count" field.
func CitationCountEQ(v int) predicate.Workpaper {
	return predicate.Workpaper(sql.FieldEQ(FieldCitationCount, v))
}

// CitationCountNEQ applies the NEQ predicate on the "citation_count" field.
func CitationCountNEQ(v int) predicate.Workpaper {
	return predicate.Workpaper(sql.FieldNEQ(FieldCitationCount, v))
}

// CitationCountIn applies the In predicate on the "citation_count" field.
func CitationCountIn(vs ...int) predicate.Workpaper {
	return predicate.Workpaper(sql.FieldIn(FieldCitationCount, vs...))
}

// CitationCountNotIn applies the NotIn predicate on the "citation_count" field.
func CitationCountNotIn(vs ...int) predicate.Workpaper {
	return predicate.Workpaper(sql.FieldNotIn(FieldCitationCount, vs...))
}

// CitationCountGT applies the GT predicate on the "citation_count" field.
func CitationCountGT(v int) predicate.Workpaper {
	return predicate.Workpaper(sql.FieldGT(FieldCitationCount, v))
}

// CitationCountGTE applies the GTE predicate on the "citation_count" field.
func CitationCountGTE(v int) predicate.Workpaper {
	return predicate.Workpaper(sql.FieldGTE(FieldCitationCount, v))
}

// CitationCountLT applies the LT predicate on the "citation_count" field.
func CitationCountLT(v int) predicate.Workpaper {
	return predicate.Workpaper(sql.FieldLT(FieldCitationCount, v))
}

// CitationCountLTE applies the LTE predicate on the "citation_count" field.
func CitationCountLTE(v int) predicate.Workpaper {
	return predicate.Workpaper(sql.FieldLTE(FieldCitationCount, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Workpaper {
	return predicate.Workpaper(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Workpaper {
	return predicate.Workpaper(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Workpaper {
	return predicate.Workpaper(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Workpaper {
	return predicate.Workpaper(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Workpaper {
	return predicate.Workpaper(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Workpaper {
	return predicate.Workpaper(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Workpaper {
	return predicate.Workpaper(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Workpaper {
	return predicate.Workpaper(sql.FieldLTE(FieldCreatedAt, v))
}

// HasSession applies the HasEdge predicate on the "session" edge.
func HasSession() predicate.Workpaper {
	return predicate.Workpaper(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, SessionTable, SessionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSessionWith applies the HasEdge predicate on the "session" edge with a given conditions (other predicates).
func HasSessionWith(preds ...predicate.ReconSession) predicate.Workpaper {
	return predicate.Workpaper(func(s *sql.Selector) {
		step := newSessionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Workpaper) predicate.Workpaper {
	return predicate.Workpaper(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Workpaper) predicate.Workpaper {
	return predicate.Workpaper(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Workpaper) predicate.Workpaper {
	return predicate.Workpaper(sql.NotPredicates(p))
}
