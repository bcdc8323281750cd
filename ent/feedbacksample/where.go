// Code generated by ent, DO NOT EDIT.

package feedbacksample

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/procureguard/trimatch/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.FeedbackSample {
	return predicate.FeedbackSample(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.FeedbackSample {
	return predicate.FeedbackSample(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.FeedbackSample {
	return predicate.FeedbackSample(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.FeedbackSample {
	return predicate.FeedbackSample(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.FeedbackSample {
	return predicate.FeedbackSample(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.FeedbackSample {
	return predicate.FeedbackSample(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.FeedbackSample {
	return predicate.FeedbackSample(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.FeedbackSample {
	return predicate.FeedbackSample(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.FeedbackSample {
	return predicate.FeedbackSample(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.FeedbackSample {
	return predicate.FeedbackSample(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.FeedbackSample {
	return predicate.FeedbackSample(sql.FieldContainsFold(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.FeedbackSample {
	return predicate.FeedbackSample(sql.FieldEQ(FieldSessionID, v))
}

// TenantID applies equality check predicate on the "tenant_id" field. It's identical to TenantIDEQ.
func TenantID(v string) predicate.FeedbackSample {
	return predicate.FeedbackSample(sql.FieldEQ(FieldTenantID, v))
}

// Similarity applies equality check predicate on the "similarity" field. It's identical to SimilarityEQ.
func Similarity(v float64) predicate.FeedbackSample {
	return predicate.FeedbackSample(sql.FieldEQ(FieldSimilarity, v))
}

// Threshold applies equality check predicate on the "threshold" field. It's identical to ThresholdEQ.
func Threshold(v float64) predicate.FeedbackSample {
	return predicate.FeedbackSample(sql.FieldEQ(FieldThreshold, v))
}

// WasAlert applies equality check predicate on the "was_alert" field. It's identical to WasAlertEQ.
func WasAlert(v bool) predicate.FeedbackSample {
	return predicate.FeedbackSample(sql.FieldEQ(FieldWasAlert, v))
}

// Reviewer applies equality check predicate on the "reviewer" field. It's identical to ReviewerEQ.
func Reviewer(v string) predicate.FeedbackSample {
	return predicate.FeedbackSample(sql.FieldEQ(FieldReviewer, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.FeedbackSample {
	return predicate.FeedbackSample(sql.FieldEQ(FieldCreatedAt, v))
}

// LabeledAt applies equality check predicate on the "labeled_at" field. It's identical to LabeledAtEQ.
func LabeledAt(v time.Time) predicate.FeedbackSample {
	return predicate.FeedbackSample(sql.FieldEQ(FieldLabeledAt, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.FeedbackSample {
	return predicate.FeedbackSample(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.FeedbackSample {
	return predicate.FeedbackSample(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.FeedbackSample {
	return predicate.FeedbackSample(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.FeedbackSample {
	return predicate.FeedbackSample(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.FeedbackSample {
	return predicate.FeedbackSample(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.FeedbackSample {
	return predicate.FeedbackSample(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.FeedbackSample {
	return predicate.FeedbackSample(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.FeedbackSample {
	return predicate.FeedbackSample(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.FeedbackSample {
	return predicate.FeedbackSample(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.FeedbackSample {
	return predicate.FeedbackSample(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.FeedbackSample {
	return predicate.FeedbackSample(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.FeedbackSample {
	return predicate.FeedbackSample(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.FeedbackSample {
	return predicate.FeedbackSample(sql.FieldContainsFold(FieldSessionID, v))
}

// TenantIDEQ applies the EQ predicate on the "tenant_id" field.
func TenantIDEQ(v string) predicate.FeedbackSample {
	return predicate.FeedbackSample(sql.FieldEQ(FieldTenantID, v))
}

// TenantIDNEQ applies the NEQ predicate on the "tenant_id" field.
func TenantIDNEQ(v string) predicate.FeedbackSample {
	return predicate.FeedbackSample(sql.FieldNEQ(FieldTenantID, v))
}

// TenantIDIn applies the In predicate on the "tenant_id" field.
func TenantIDIn(vs ...string) predicate.FeedbackSample {
	return predicate.FeedbackSample(sql.FieldIn(FieldTenantID, vs...))
}

// TenantIDNotIn applies the NotIn predicate on the "tenant_id" field.
func TenantIDNotIn(vs ...string) predicate.FeedbackSample {
	return predicate.FeedbackSample(sql.FieldNotIn(FieldTenantID, vs...))
}

// TenantIDGT applies the GT predicate on the "tenant_id" field.
func TenantIDGT(v string) predicate.FeedbackSample {
	return predicate.FeedbackSample(sql.FieldGT(FieldTenantID, v))
}

// TenantIDGTE applies the GTE predicate on the "tenant_id" field.
func TenantIDGTE(v string) predicate.FeedbackSample {
	return predicate.FeedbackSample(sql.FieldGTE(FieldTenantID, v))
}

// TenantIDLT applies the LT predicate on the "tenant_id" field.
func TenantIDLT(v string) predicate.FeedbackSample {
	return predicate.FeedbackSample(sql.FieldLT(FieldTenantID, v))
}

// TenantIDLTE applies the LTE predicate on the "tenant_id" field.
func TenantIDLTE(v string) predicate.FeedbackSample {
	return predicate.FeedbackSample(sql.FieldLTE(FieldTenantID, v))
}

// TenantIDContains applies the Contains predicate on the "tenant_id" field.
func TenantIDContains(v string) predicate.FeedbackSample {
	return predicate.FeedbackSample(sql.FieldContains(FieldTenantID, v))
}

// TenantIDHasPrefix applies the HasPrefix predicate on the "tenant_id" field.
func TenantIDHasPrefix(v string) predicate.FeedbackSample {
	return predicate.FeedbackSample(sql.FieldHasPrefix(FieldTenantID, v))
}

// TenantIDHasSuffix applies the HasSuffix predicate on the "tenant_id" field.
func TenantIDHasSuffix(v string) predicate.FeedbackSample {
	return predicate.FeedbackSample(sql.FieldHasSuffix(FieldTenantID, v))
}

// TenantIDEqualFold applies the EqualFold predicate on the "tenant_id" field.
func TenantIDEqualFold(v string) predicate.FeedbackSample {
	return predicate.FeedbackSample(sql.FieldEqualFold(FieldTenantID, v))
}

// TenantIDContainsFold applies the ContainsFold predicate on the "tenant_id" field.
func TenantIDContainsFold(v string) predicate.FeedbackSample {
	return predicate.FeedbackSample(sql.FieldContainsFold(FieldTenantID, v))
}

// SimilarityEQ applies the EQ predicate on the "similarity" field.
func SimilarityEQ(v float64) predicate.FeedbackSample {
	return predicate.FeedbackSample(sql.FieldEQ(FieldSimilarity, v))
}

// SimilarityNEQ applies the NEQ predicate on the "similarity" field.
func SimilarityNEQ(v float64) predicate.FeedbackSample {
	return predicate.FeedbackSample(sql.FieldNEQ(FieldSimilarity, v))
}

// SimilarityIn applies the In predicate on the "similarity" field.
func SimilarityIn(vs ...float64) predicate.FeedbackSample {
	return predicate.FeedbackSample(sql.FieldIn(FieldSimilarity, vs...))
}

// SimilarityNotIn applies the NotIn predicate on the "similarity" field.
func SimilarityNotIn(vs ...float64) predicate.FeedbackSample {
	return predicate.FeedbackSample(sql.FieldNotIn(FieldSimilarity, vs...))
}

// SimilarityGT applies the GT predicate on the "similarity" field.
func SimilarityGT(v float64) predicate.FeedbackSample {
	return predicate.FeedbackSample(sql.FieldGT(FieldSimilarity, v))
}

// SimilarityGTE applies the GTE predicate on the "similarity" field.
func SimilarityGTE(v float64) predicate.FeedbackSample {
	return predicate.FeedbackSample(sql.FieldGTE(FieldSimilarity, v))
}

// SimilarityLT applies the LT predicate on the "similarity" field.
func SimilarityLT(v float64) predicate.FeedbackSample {
	return predicate.FeedbackSample(sql.FieldLT(FieldSimilarity, v))
}

// SimilarityLTE applies the LTE predicate on the "similarity" field.
func SimilarityLTE(v float64) predicate.FeedbackSample {
	return predicate.FeedbackSample(sql.FieldLTE(FieldSimilarity, v))
}

// ThresholdEQ applies the EQ predicate on the "threshold" field.
func ThresholdEQ(v float64) predicate.FeedbackSample {
	return predicate.FeedbackSample(sql.FieldEQ(FieldThreshold, v))
}

// ThresholdNEQ applies the NEQ predicate on the "threshold" field.
func ThresholdNEQ(v float64) predicate.FeedbackSample {
	return predicate.FeedbackSample(sql.FieldNEQ(FieldThreshold, v))
}

// ThresholdIn applies the In predicate on the "threshold" field.
func ThresholdIn(vs ...float64) predicate.FeedbackSample {
	return predicate.FeedbackSample(sql.FieldIn(FieldThreshold, vs...))
}

// ThresholdNotIn applies the NotIn predicate on the "threshold" field.
func ThresholdNotIn(vs ...float64) predicate.FeedbackSample {
	return predicate.FeedbackSample(sql.FieldNotIn(FieldThreshold, vs...))
}

// ThresholdGT applies the GT predicate on the "threshold" field.
func ThresholdGT(v float64) predicate.FeedbackSample {
	return predicate.FeedbackSample(sql.FieldGT(FieldThreshold, v))
}

// ThresholdGTE applies the GTE predicate on the "threshold" field.
func ThresholdGTE(v float64) predicate.FeedbackSample {
	return predicate.FeedbackSample(sql.FieldGTE(FieldThreshold, v))
}

// ThresholdLT applies the LT predicate on the "threshold" field.
func ThresholdLT(v float64) predicate.FeedbackSample {
	return predicate.FeedbackSample(sql.FieldLT(FieldThreshold, v))
}

// ThresholdLTE applies the LTE predicate on the "threshold" field.
func ThresholdLTE(v float64) predicate.FeedbackSample {
	return predicate.FeedbackSample(sql.FieldLTE(FieldThreshold, v))
}

// WasAlertEQ applies the EQ predicate on the "was_alert" field.
func WasAlertEQ(v bool) predicate.FeedbackSample {
	return predicate.FeedbackSample(sql.FieldEQ(FieldWasAlert, v))
}

// WasAlertNEQ applies the NEQ predicate on the "was_alert" field.
func WasAlertNEQ(v bool) predicate.FeedbackSample {
	return predicate.FeedbackSample(sql.FieldNEQ(FieldWasAlert, v))
}

// OutcomeEQ applies the EQ predicate on the "outcome" field.
func OutcomeEQ(v Outcome) predicate.FeedbackSample {
	return predicate.FeedbackSample(sql.FieldEQ(FieldOutcome, v))
}

// OutcomeNEQ applies the NEQ predicate on the "outcome" field.
func OutcomeNEQ(v Outcome) predicate.FeedbackSample {
	return predicate.FeedbackSample(sql.FieldNEQ(FieldOutcome, v))
}

// OutcomeIn applies the In predicate on the "outcome" field.
func OutcomeIn(vs ...Outcome) predicate.FeedbackSample {
	return predicate.FeedbackSample(sql.FieldIn(FieldOutcome, vs...))
}

// OutcomeNotIn applies the NotIn predicate on the "outcome" field.
func OutcomeNotIn(vs ...Outcome) predicate.FeedbackSample {
	return predicate.FeedbackSample(sql.FieldNotIn(FieldOutcome, vs...))
}

// ReviewerEQ applies the EQ predicate on the "reviewer" field.
func ReviewerEQ(v string) predicate.FeedbackSample {
	return predicate.FeedbackSample(sql.FieldEQ(FieldReviewer, v))
}

// ReviewerNEQ applies the NEQ predicate on the "reviewer" field.
func ReviewerNEQ(v string) predicate.FeedbackSample {
	return predicate.FeedbackSample(sql.FieldNEQ(FieldReviewer, v))
}

// ReviewerIn applies the In predicate on the "reviewer" field.
func ReviewerIn(vs ...string) predicate.FeedbackSample {
	return predicate.FeedbackSample(sql.FieldIn(FieldReviewer, vs...))
}

// ReviewerNotIn applies the NotIn predicate on the "reviewer" field.
func ReviewerNotIn(vs ...string) predicate.FeedbackSample {
	return predicate.FeedbackSample(sql.FieldNotIn(FieldReviewer, vs...))
}

// ReviewerGT applies the GT predicate on the "reviewer" field.
func ReviewerGT(v string) predicate.FeedbackSample {
	return predicate.FeedbackSample(sql.FieldGT(FieldReviewer, v))
}

// ReviewerGTE applies the GTE predicate on the "reviewer" field.
func ReviewerGTE(v string) predicate.FeedbackSample {
	return predicate.FeedbackSample(sql.FieldGTE(FieldReviewer, v))
}

// ReviewerLT applies the LT predicate on the "reviewer" field.
func ReviewerLT(v string) predicate.FeedbackSample {
	return predicate.FeedbackSample(sql.FieldLT(FieldReviewer, v))
}

// ReviewerLTE applies the LTE predicate on the "reviewer" field.
func ReviewerLTE(v string) predicate.FeedbackSample {
	return predicate.FeedbackSample(sql.FieldLTE(FieldReviewer, v))
}

// ReviewerContains applies the Contains predicate on the "reviewer" field.
func ReviewerContains(v string) predicate.FeedbackSample {
	return predicate.FeedbackSample(sql.FieldContains(FieldReviewer, v))
}

// ReviewerHasPrefix applies the HasPrefix predicate on the "reviewer" field.
func ReviewerHasPrefix(v string) predicate.FeedbackSample {
	return predicate.FeedbackSample(sql.FieldHasPrefix(FieldReviewer, v))
}

// ReviewerHasSuffix applies the HasSuffix predicate on the "reviewer" field.
func ReviewerHasSuffix(v string) predicate.FeedbackSample {
	return predicate.FeedbackSample(sql.FieldHasSuffix(FieldReviewer, v))
}

// ReviewerIsNil applies the IsNil predicate on the "reviewer" field.
func ReviewerIsNil() predicate.FeedbackSample {
	return predicate.FeedbackSample(sql.FieldIsNull(FieldReviewer))
}

// ReviewerNotNil applies the NotNil predicate on the "reviewer" field.
func ReviewerNotNil() predicate.FeedbackSample {
	return predicate.FeedbackSample(sql.FieldNotNull(FieldReviewer))
}

// ReviewerEqualFold applies the EqualFold predicate on the "reviewer" field.
func ReviewerEqualFold(v string) predicate.FeedbackSample {
	return predicate.FeedbackSample(sql.FieldEqualFold(FieldReviewer, v))
}

// ReviewerContainsFold applies the ContainsFold predicate on the "reviewer" field.
func ReviewerContainsFold(v string) predicate.FeedbackSample {
	return predicate.FeedbackSample(sql.FieldContainsFold(FieldReviewer, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.FeedbackSample {
	return predicate.FeedbackSample(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.FeedbackSample {
	return predicate.FeedbackSample(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.FeedbackSample {
	return predicate.FeedbackSample(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.FeedbackSample {
	return predicate.FeedbackSample(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.FeedbackSample {
	return predicate.FeedbackSample(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.FeedbackSample {
	return predicate.FeedbackSample(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.FeedbackSample {
	return predicate.FeedbackSample(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.FeedbackSample {
	return predicate.FeedbackSample(sql.FieldLTE(FieldCreatedAt, v))
}

// LabeledAtEQ applies the EQ predicate on the "labeled_at" field.
func LabeledAtEQ(v time.Time) predicate.FeedbackSample {
	return predicate.FeedbackSample(sql.FieldEQ(FieldLabeledAt, v))
}

// LabeledAtNEQ applies the NEQ predicate on the "labeled_at" field.
func LabeledAtNEQ(v time.Time) predicate.FeedbackSample {
	return predicate.FeedbackSample(sql.FieldNEQ(FieldLabeledAt, v))
}

// LabeledAtIn applies the In predicate on the "labeled_at" field.
func LabeledAtIn(vs ...time.Time) predicate.FeedbackSample {
	return predicate.FeedbackSample(sql.FieldIn(FieldLabeledAt, vs...))
}

// LabeledAtNotIn applies the NotIn predicate on the "labeled_at" field.
func LabeledAtNotIn(vs ...time.Time) predicate.FeedbackSample {
	return predicate.FeedbackSample(sql.FieldNotIn(FieldLabeledAt, vs...))
}

// LabeledAtGT applies the GT predicate on the "labeled_at" field.
func LabeledAtGT(v time.Time) predicate.FeedbackSample {
	return predicate.FeedbackSample(sql.FieldGT(FieldLabeledAt, v))
}

// LabeledAtGTE applies the GTE predicate on the "labeled_at" field.
func LabeledAtGTE(v time.Time) predicate.FeedbackSample {
	return predicate.FeedbackSample(sql.FieldGTE(FieldLabeledAt, v))
}

// LabeledAtLT applies the LT predicate on the "labeled_at" field.
func LabeledAtLT(v time.Time) predicate.FeedbackSample {
	return predicate.FeedbackSample(sql.FieldLT(FieldLabeledAt, v))
}

// LabeledAtLTE applies the LTE predicate on the "labeled_at" field.
func LabeledAtLTE(v time.Time) predicate.FeedbackSample {
	return predicate.FeedbackSample(sql.FieldLTE(FieldLabeledAt, v))
}

// LabeledAtIsNil applies the IsNil predicate on the "labeled_at" field.
func LabeledAtIsNil() predicate.FeedbackSample {
	return predicate.FeedbackSample(sql.FieldIsNull(FieldLabeledAt))
}

// LabeledAtNotNil applies the NotNil predicate on the "labeled_at" field.
func LabeledAtNotNil() predicate.FeedbackSample {
	return predicate.FeedbackSample(sql.FieldNotNull(FieldLabeledAt))
}

// HasSession applies the HasEdge predicate on the "session" edge.
func HasSession() predicate.FeedbackSample {
	return predicate.FeedbackSample(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SessionTable, SessionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSessionWith applies the HasEdge predicate on the "session" edge with a given conditions (other predicates).
func HasSessionWith(preds ...predicate.ReconSession) predicate.FeedbackSample {
	return predicate.FeedbackSample(func(s *sql.Selector) {
		step := newSessionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.FeedbackSample) predicate.FeedbackSample {
	return predicate.FeedbackSample(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.FeedbackSample) predicate.FeedbackSample {
	return predicate.FeedbackSample(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.FeedbackSample) predicate.FeedbackSample {
	return predicate.FeedbackSample(sql.NotPredicates(p))
}
