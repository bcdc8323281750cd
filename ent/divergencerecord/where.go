// Code generated by ent, DO NOT EDIT.

package divergencerecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/procureguard/trimatch/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.DivergenceRecord {
	return predicate.DivergenceRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.DivergenceRecord {
	return predicate.DivergenceRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.DivergenceRecord {
	return predicate.DivergenceRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.DivergenceRecord {
	return predicate.DivergenceRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.DivergenceRecord {
	return predicate.DivergenceRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.DivergenceRecord {
	return predicate.DivergenceRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.DivergenceRecord {
	return predicate.DivergenceRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.DivergenceRecord {
	return predicate.DivergenceRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.DivergenceRecord {
	return predicate.DivergenceRecord(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.DivergenceRecord {
	return predicate.DivergenceRecord(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.DivergenceRecord {
	return predicate.DivergenceRecord(sql.FieldContainsFold(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.DivergenceRecord {
	return predicate.DivergenceRecord(sql.FieldEQ(FieldSessionID, v))
}

// TenantID applies equality check predicate on the "tenant_id" field. It's identical to TenantIDEQ.
func TenantID(v string) predicate.DivergenceRecord {
	return predicate.DivergenceRecord(sql.FieldEQ(FieldTenantID, v))
}

// Similarity applies equality check predicate on the "similarity" field. It's identical to SimilarityEQ.
func Similarity(v float64) predicate.DivergenceRecord {
	return predicate.DivergenceRecord(sql.FieldEQ(FieldSimilarity, v))
}

// Threshold applies equality check predicate on the "threshold" field. It's identical to ThresholdEQ.
func Threshold(v float64) predicate.DivergenceRecord {
	return predicate.DivergenceRecord(sql.FieldEQ(FieldThreshold, v))
}

// AlertTriggered applies equality check predicate on the "alert_triggered" field. It's identical to AlertTriggeredEQ.
func AlertTriggered(v bool) predicate.DivergenceRecord {
	return predicate.DivergenceRecord(sql.FieldEQ(FieldAlertTriggered, v))
}

// Reason applies equality check predicate on the "reason" field. It's identical to ReasonEQ.
func Reason(v string) predicate.DivergenceRecord {
	return predicate.DivergenceRecord(sql.FieldEQ(FieldReason, v))
}

// Degraded applies equality check predicate on the "degraded" field. It's identical to DegradedEQ.
func Degraded(v bool) predicate.DivergenceRecord {
	return predicate.DivergenceRecord(sql.FieldEQ(FieldDegraded, v))
}

// PrimarySummary applies equality check predicate on the "primary_summary" field. It's identical to PrimarySummaryEQ.
func PrimarySummary(v string) predicate.DivergenceRecord {
	return predicate.DivergenceRecord(sql.FieldEQ(FieldPrimarySummary, v))
}

// ShadowSummary applies equality check predicate on the "shadow_summary" field. It's identical to ShadowSummaryEQ.
func ShadowSummary(v string) predicate.DivergenceRecord {
	return predicate.DivergenceRecord(sql.FieldEQ(FieldShadowSummary, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.DivergenceRecord {
	return predicate.DivergenceRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.DivergenceRecord {
	return predicate.DivergenceRecord(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.DivergenceRecord {
	return predicate.DivergenceRecord(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.DivergenceRecord {
	return predicate.DivergenceRecord(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.DivergenceRecord {
	return predicate.DivergenceRecord(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.DivergenceRecord {
	return predicate.DivergenceRecord(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.DivergenceRecord {
	return predicate.DivergenceRecord(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.DivergenceRecord {
	return predicate.DivergenceRecord(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.DivergenceRecord {
	return predicate.DivergenceRecord(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.DivergenceRecord {
	return predicate.DivergenceRecord(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.DivergenceRecord {
	return predicate.DivergenceRecord(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.DivergenceRecord {
	return predicate.DivergenceRecord(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.DivergenceRecord {
	return predicate.DivergenceRecord(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.DivergenceRecord {
	return predicate.DivergenceRecord(sql.FieldContainsFold(FieldSessionID, v))
}

// TenantIDEQ applies the EQ predicate on the "tenant_id" field.
func TenantIDEQ(v string) predicate.DivergenceRecord {
	return predicate.DivergenceRecord(sql.FieldEQ(FieldTenantID, v))
}

// TenantIDNEQ applies the NEQ predicate on the "tenant_id" field.
func TenantIDNEQ(v string) predicate.DivergenceRecord {
	return predicate.DivergenceRecord(sql.FieldNEQ(FieldTenantID, v))
}

// TenantIDIn applies the In predicate on the "tenant_id" field.
func TenantIDIn(vs ...string) predicate.DivergenceRecord {
	return predicate.DivergenceRecord(sql.FieldIn(FieldTenantID, vs...))
}

// TenantIDNotIn applies the NotIn predicate on the "tenant_id" field.
func TenantIDNotIn(vs ...string) predicate.DivergenceRecord {
	return predicate.DivergenceRecord(sql.FieldNotIn(FieldTenantID, vs...))
}

// TenantIDGT applies the GT predicate on the "tenant_id" field.
func TenantIDGT(v string) predicate.DivergenceRecord {
	return predicate.DivergenceRecord(sql.FieldGT(FieldTenantID, v))
}

// TenantIDGTE applies the GTE predicate on the "tenant_id" field.
func TenantIDGTE(v string) predicate.DivergenceRecord {
	return predicate.DivergenceRecord(sql.FieldGTE(FieldTenantID, v))
}

// TenantIDLT applies the LT predicate on the "tenant_id" field.
func TenantIDLT(v string) predicate.DivergenceRecord {
	return predicate.DivergenceRecord(sql.FieldLT(FieldTenantID, v))
}

// TenantIDLTE applies the LTE predicate on the "tenant_id" field.
func TenantIDLTE(v string) predicate.DivergenceRecord {
	return predicate.DivergenceRecord(sql.FieldLTE(FieldTenantID, v))
}

// TenantIDContains applies the Contains predicate on the "tenant_id" field.
func TenantIDContains(v string) predicate.DivergenceRecord {
	return predicate.DivergenceRecord(sql.FieldContains(FieldTenantID, v))
}

// TenantIDHasPrefix applies the HasPrefix predicate on the "tenant_id" field.
func TenantIDHasPrefix(v string) predicate.DivergenceRecord {
	return predicate.DivergenceRecord(sql.FieldHasPrefix(FieldTenantID, v))
}

// TenantIDHasSuffix applies the HasSuffix predicate on the "tenant_id" field.
func TenantIDHasSuffix(v string) predicate.DivergenceRecord {
	return predicate.DivergenceRecord(sql.FieldHasSuffix(FieldTenantID, v))
}

// TenantIDEqualFold applies the EqualFold predicate on the "tenant_id" field.
func TenantIDEqualFold(v string) predicate.DivergenceRecord {
	return predicate.DivergenceRecord(sql.FieldEqualFold(FieldTenantID, v))
}

// TenantIDContainsFold applies the ContainsFold predicate on the "tenant_id" field.
func TenantIDContainsFold(v string) predicate.DivergenceRecord {
	return predicate.DivergenceRecord(sql.FieldContainsFold(FieldTenantID, v))
}

// SimilarityEQ applies the EQ predicate on the "similarity" field.
func SimilarityEQ(v float64) predicate.DivergenceRecord {
	return predicate.DivergenceRecord(sql.FieldEQ(FieldSimilarity, v))
}

// SimilarityNEQ applies the NEQ predicate on the "similarity" field.
func SimilarityNEQ(v float64) predicate.DivergenceRecord {
	return predicate.DivergenceRecord(sql.FieldNEQ(FieldSimilarity, v))
}

// SimilarityIn applies the In predicate on the "similarity" field.
func SimilarityIn(vs ...float64) predicate.DivergenceRecord {
	return predicate.DivergenceRecord(sql.FieldIn(FieldSimilarity, vs...))
}

// SimilarityNotIn applies the NotIn predicate on the "similarity" field.
func SimilarityNotIn(vs ...float64) predicate.DivergenceRecord {
	return predicate.DivergenceRecord(sql.FieldNotIn(FieldSimilarity, vs...))
}

// SimilarityGT applies the GT predicate on the "similarity" field.
func SimilarityGT(v float64) predicate.DivergenceRecord {
	return predicate.DivergenceRecord(sql.FieldGT(FieldSimilarity, v))
}

// SimilarityGTE applies the GTE predicate on the "similarity" field.
func SimilarityGTE(v float64) predicate.DivergenceRecord {
	return predicate.DivergenceRecord(sql.FieldGTE(FieldSimilarity, v))
}

// SimilarityLT applies the LT predicate on the "similarity" field.
func SimilarityLT(v float64) predicate.DivergenceRecord {
	return predicate.DivergenceRecord(sql.FieldLT(FieldSimilarity, v))
}

// SimilarityLTE applies the LTE predicate on the "similarity" field.
func SimilarityLTE(v float64) predicate.DivergenceRecord {
	return predicate.DivergenceRecord(sql.FieldLTE(FieldSimilarity, v))
}

// ThresholdEQ applies the EQ predicate on the "threshold" field.
func ThresholdEQ(v float64) predicate.DivergenceRecord {
	return predicate.DivergenceRecord(sql.FieldEQ(FieldThreshold, v))
}

// ThresholdNEQ applies the NEQ predicate on the "threshold" field.
func ThresholdNEQ(v float64) predicate.DivergenceRecord {
	return predicate.DivergenceRecord(sql.FieldNEQ(FieldThreshold, v))
}

// ThresholdIn applies the In predicate on the "threshold" field.
func ThresholdIn(vs ...float64) predicate.DivergenceRecord {
	return predicate.DivergenceRecord(sql.FieldIn(FieldThreshold, vs...))
}

// ThresholdNotIn applies the NotIn predicate on the "threshold" field.
func ThresholdNotIn(vs ...float64) predicate.DivergenceRecord {
	return predicate.DivergenceRecord(sql.FieldNotIn(FieldThreshold, vs...))
}

// ThresholdGT applies the GT predicate on the "threshold" field.
func ThresholdGT(v float64) predicate.DivergenceRecord {
	return predicate.DivergenceRecord(sql.FieldGT(FieldThreshold, v))
}

// ThresholdGTE applies the GTE predicate on the "threshold" field.
func ThresholdGTE(v float64) predicate.DivergenceRecord {
	return predicate.DivergenceRecord(sql.FieldGTE(FieldThreshold, v))
}

// ThresholdLT applies the LT predicate on the "threshold" field.
func ThresholdLT(v float64) predicate.DivergenceRecord {
	return predicate.DivergenceRecord(sql.FieldLT(FieldThreshold, v))
}

// ThresholdLTE applies the LTE predicate on the "threshold" field.
func ThresholdLTE(v float64) predicate.DivergenceRecord {
	return predicate.DivergenceRecord(sql.FieldLTE(FieldThreshold, v))
}

// AlertTriggeredEQ applies the EQ predicate on the "alert_triggered" field.
func AlertTriggeredEQ(v bool) predicate.DivergenceRecord {
	return predicate.DivergenceRecord(sql.FieldEQ(FieldAlertTriggered, v))
}

// AlertTriggeredNEQ applies the NEQ predicate on the "alert_triggered" field.
func AlertTriggeredNEQ(v bool) predicate.DivergenceRecord {
	return predicate.DivergenceRecord(sql.FieldNEQ(FieldAlertTriggered, v))
}

// ReasonEQ applies the EQ predicate on the "reason" field.
func ReasonEQ(v string) predicate.DivergenceRecord {
	return predicate.DivergenceRecord(sql.FieldEQ(FieldReason, v))
}

// ReasonNEQ applies the NEQ predicate on the "reason" field.
func ReasonNEQ(v string) predicate.DivergenceRecord {
	return predicate.DivergenceRecord(sql.FieldNEQ(FieldReason, v))
}

// ReasonIn applies the In predicate on the "reason" field.
func ReasonIn(vs ...string) predicate.DivergenceRecord {
	return predicate.DivergenceRecord(sql.FieldIn(FieldReason, vs...))
}

// ReasonNotIn applies the NotIn predicate on the "reason" field.
func ReasonNotIn(vs ...string) predicate.DivergenceRecord {
	return predicate.DivergenceRecord(sql.FieldNotIn(FieldReason, vs...))
}

// ReasonGT applies the GT predicate on the "reason" field.
func ReasonGT(v string) predicate.DivergenceRecord {
	return predicate.DivergenceRecord(sql.FieldGT(FieldReason, v))
}

// ReasonGTE applies the GTE predicate on the "reason" field.
func ReasonGTE(v string) predicate.DivergenceRecord {
	return predicate.DivergenceRecord(sql.FieldGTE(FieldReason, v))
}

// ReasonLT applies the LT predicate on the "reason" field.
func ReasonLT(v string) predicate.DivergenceRecord {
	return predicate.DivergenceRecord(sql.FieldLT(FieldReason, v))
}

// ReasonLTE applies the LTE predicate on the "reason" field.
func ReasonLTE(v string) predicate.DivergenceRecord {
	return predicate.DivergenceRecord(sql.FieldLTE(FieldReason, v))
}

// ReasonContains applies the Contains predicate on the "reason" field.
func ReasonContains(v string) predicate.DivergenceRecord {
	return predicate.DivergenceRecord(sql.FieldContains(FieldReason, v))
}

// ReasonHasPrefix applies the HasPrefix predicate on the "reason" field.
func ReasonHasPrefix(v string) predicate.DivergenceRecord {
	return predicate.DivergenceRecord(sql.FieldHasPrefix(FieldReason, v))
}

// ReasonHasSuffix applies the HasSuffix predicate on the "reason" field.
func ReasonHasSuffix(v string) predicate.DivergenceRecord {
	return predicate.DivergenceRecord(sql.FieldHasSuffix(FieldReason, v))
}

// ReasonIsNil applies the IsNil predicate on the "reason" field.
func ReasonIsNil() predicate.DivergenceRecord {
	return predicate.DivergenceRecord(sql.FieldIsNull(FieldReason))
}

// ReasonNotNil applies the NotNil predicate on the "reason" field.
func ReasonNotNil() predicate.DivergenceRecord {
	return predicate.DivergenceRecord(sql.FieldNotNull(FieldReason))
}

// ReasonEqualFold applies the EqualFold predicate on the "reason" field.
func ReasonEqualFold(v string) predicate.DivergenceRecord {
	return predicate.DivergenceRecord(sql.FieldEqualFold(FieldReason, v))
}

// ReasonContainsFold applies the ContainsFold predicate on the "reason" field.
func ReasonContainsFold(v string) predicate.DivergenceRecord {
	return predicate.DivergenceRecord(sql.FieldContainsFold(FieldReason, v))
}

// DegradedEQ applies the EQ predicate on the "degraded" field.
func DegradedEQ(v bool) predicate.DivergenceRecord {
	return predicate.DivergenceRecord(sql.FieldEQ(FieldDegraded, v))
}

// DegradedNEQ applies the NEQ predicate on the "degraded" field.
func DegradedNEQ(v bool) predicate.DivergenceRecord {
	return predicate.DivergenceRecord(sql.FieldNEQ(FieldDegraded, v))
}

// PerturbationsIsNil applies the IsNil predicate on the "perturbations" field.
func PerturbationsIsNil() predicate.DivergenceRecord {
	return predicate.DivergenceRecord(sql.FieldIsNull(FieldPerturbations))
}

// PerturbationsNotNil applies the NotNil predicate on the "perturbations" field.
func PerturbationsNotNil() predicate.DivergenceRecord {
	return predicate.DivergenceRecord(sql.FieldNotNull(FieldPerturbations))
}

// PrimarySummaryEQ applies the EQ predicate on the "primary_summary" field.
func PrimarySummaryEQ(v string) predicate.DivergenceRecord {
	return predicate.DivergenceRecord(sql.FieldEQ(FieldPrimarySummary, v))
}

// PrimarySummaryNEQ applies the NEQ predicate on the "primary_summary" field.
func PrimarySummaryNEQ(v string) predicate.DivergenceRecord {
	return predicate.DivergenceRecord(sql.FieldNEQ(FieldPrimarySummary, v))
}

// PrimarySummaryIn applies the In predicate on the "primary_summary" field.
func PrimarySummaryIn(vs ...string) predicate.DivergenceRecord {
	return predicate.DivergenceRecord(sql.FieldIn(FieldPrimarySummary, vs...))
}

// PrimarySummaryNotIn applies the NotIn predicate on the "primary_summary" field.
func PrimarySummaryNotIn(vs ...string) predicate.DivergenceRecord {
	return predicate.DivergenceRecord(sql.FieldNotIn(FieldPrimarySummary, vs...))
}

// PrimarySummaryGT applies the GT predicate on the "primary_summary" field.
func PrimarySummaryGT(v string) predicate.DivergenceRecord {
	return predicate.DivergenceRecord(sql.FieldGT(FieldPrimarySummary, v))
}

// PrimarySummaryGTE applies the GTE predicate on the "primary_summary" field.
func PrimarySummaryGTE(v string) predicate.DivergenceRecord {
	return predicate.DivergenceRecord(sql.FieldGTE(FieldPrimarySummary, v))
}

// PrimarySummaryLT applies the LT predicate on the "primary_summary" field.
func PrimarySummaryLT(v string) predicate.DivergenceRecord {
	return predicate.DivergenceRecord(sql.FieldLT(FieldPrimarySummary, v))
}

// PrimarySummaryLTE applies the LTE predicate on the "primary_summary" field.
func PrimarySummaryLTE(v string) predicate.DivergenceRecord {
	return predicate.DivergenceRecord(sql.FieldLTE(FieldPrimarySummary, v))
}

// PrimarySummaryContains applies the Contains predicate on the "primary_summary" field.
func PrimarySummaryContains(v string) predicate.DivergenceRecord {
	return predicate.DivergenceRecord(sql.FieldContains(FieldPrimarySummary, v))
}

// PrimarySummaryHasPrefix applies the HasPrefix predicate on the "primary_summary" field.
func PrimarySummaryHasPrefix(v string) predicate.DivergenceRecord {
	return predicate.DivergenceRecord(sql.FieldHasPrefix(FieldPrimarySummary, v))
}

// PrimarySummaryHasSuffix applies the HasSuffix predicate on the "primary_summary" field.
func PrimarySummaryHasSuffix(v string) predicate.DivergenceRecord {
	return predicate.DivergenceRecord(sql.FieldHasSuffix(FieldPrimarySummary, v))
}

// PrimarySummaryIsNil applies the IsNil predicate on the "primary_summary" field.
func PrimarySummaryIsNil() predicate.DivergenceRecord {
	return predicate.DivergenceRecord(sql.FieldIsNull(FieldPrimarySummary))
}

// PrimarySummaryNotNil applies the NotNil predicate on the "primary_summary" field.
func PrimarySummaryNotNil() predicate.DivergenceRecord {
	return predicate.DivergenceRecord(sql.FieldNotNull(FieldPrimarySummary))
}

// PrimarySummaryEqualFold applies the EqualFold predicate on the "primary_summary" field.
func PrimarySummaryEqualFold(v string) predicate.DivergenceRecord {
	return predicate.DivergenceRecord(sql.FieldEqualFold(FieldPrimarySummary, v))
}

// PrimarySummaryContainsFold applies the ContainsFold predicate on the "primary_summary" field.
func PrimarySummaryContainsFold(v string) predicate.DivergenceRecord {
	return predicate.DivergenceRecord(sql.FieldContainsFold(FieldPrimarySummary, v))
}

// ShadowSummaryEQ applies the EQ predicate on the "shadow_summary" field.
func ShadowSummaryEQ(v string) predicate.DivergenceRecord {
	return predicate.DivergenceRecord(sql.FieldEQ(FieldShadowSummary, v))
}

// ShadowSummaryNEQ applies the NEQ predicate on the "shadow_summary" field.
func ShadowSummaryNEQ(v string) predicate.DivergenceRecord {
	return predicate.DivergenceRecord(sql.FieldNEQ(FieldShadowSummary, v))
}

// ShadowSummaryIn applies the In predicate on the "shadow_summary" field.
func ShadowSummaryIn(vs ...string) predicate.DivergenceRecord {
	return predicate.DivergenceRecord(sql.FieldIn(FieldShadowSummary, vs...))
}

// ShadowSummaryNotIn applies the NotIn predicate on the "shadow_summary" field.
func ShadowSummaryNotIn(vs ...string) predicate.DivergenceRecord {
	return predicate.DivergenceRecord(sql.FieldNotIn(FieldShadowSummary, vs...))
}

// ShadowSummaryGT applies the GT predicate on the "shadow_summary" field.
func ShadowSummaryGT(v string) predicate.DivergenceRecord {
	return predicate.DivergenceRecord(sql.FieldGT(FieldShadowSummary, v))
}

// ShadowSummaryGTE applies the GTE predicate on the "shadow_summary" field.
func ShadowSummaryGTE(v string) predicate.DivergenceRecord {
	return predicate.DivergenceRecord(sql.FieldGTE(FieldShadowSummary, v))
}

// ShadowSummaryLT applies the LT predicate on the "shadow_summary" field.
func ShadowSummaryLT(v string) predicate.DivergenceRecord {
	return predicate.DivergenceRecord(sql.FieldLT(FieldShadowSummary, v))
}

// ShadowSummaryLTE applies the LTE predicate on the "shadow_summary" field.
func ShadowSummaryLTE(v string) predicate.DivergenceRecord {
	return predicate.DivergenceRecord(sql.FieldLTE(FieldShadowSummary, v))
}

// ShadowSummaryContains applies the Contains predicate on the "shadow_summary" field.
func ShadowSummaryContains(v string) predicate.DivergenceRecord {
	return predicate.DivergenceRecord(sql.FieldContains(FieldShadowSummary, v))
}

// ShadowSummaryHasPrefix applies the HasPrefix predicate on the "shadow_summary" field.
func ShadowSummaryHasPrefix(v string) predicate.DivergenceRecord {
	return predicate.DivergenceRecord(sql.FieldHasPrefix(FieldShadowSummary, v))
}

// ShadowSummaryHasSuffix applies the HasSuffix predicate on the "shadow_summary" field.
func ShadowSummaryHasSuffix(v string) predicate.DivergenceRecord {
	return predicate.DivergenceRecord(sql.FieldHasSuffix(FieldShadowSummary, v))
}

// ShadowSummaryIsNil applies the IsNil predicate on the "shadow_summary" field.
func ShadowSummaryIsNil() predicate.DivergenceRecord {
	return predicate.DivergenceRecord(sql.FieldIsNull(FieldShadowSummary))
}

// ShadowSummaryNotNil applies the NotNil predicate on the "shadow_summary" field.
func ShadowSummaryNotNil() predicate.DivergenceRecord {
	return predicate.DivergenceRecord(sql.FieldNotNull(FieldShadowSummary))
}

// ShadowSummaryEqualFold applies the EqualFold predicate on the "shadow_summary" field.
func ShadowSummaryEqualFold(v string) predicate.DivergenceRecord {
	return predicate.DivergenceRecord(sql.FieldEqualFold(FieldShadowSummary, v))
}

// ShadowSummaryContainsFold applies the ContainsFold predicate on the "shadow_summary" field.
func ShadowSummaryContainsFold(v string) predicate.DivergenceRecord {
	return predicate.DivergenceRecord(sql.FieldContainsFold(FieldShadowSummary, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.DivergenceRecord {
	return predicate.DivergenceRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.DivergenceRecord {
	return predicate.DivergenceRecord(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.DivergenceRecord {
	return predicate.DivergenceRecord(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.DivergenceRecord {
	return predicate.DivergenceRecord(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.DivergenceRecord {
	return predicate.DivergenceRecord(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.DivergenceRecord {
	return predicate.DivergenceRecord(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.DivergenceRecord {
	return predicate.DivergenceRecord(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.DivergenceRecord {
	return predicate.DivergenceRecord(sql.FieldLTE(FieldCreatedAt, v))
}

// HasSession applies the HasEdge predicate on the "session" edge.
func HasSession() predicate.DivergenceRecord {
	return predicate.DivergenceRecord(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SessionTable, SessionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSessionWith applies the HasEdge predicate on the "session" edge with a given conditions (other predicates).
func HasSessionWith(preds ...predicate.ReconSession) predicate.DivergenceRecord {
	return predicate.DivergenceRecord(func(s *sql.Selector) {
		step := newSessionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DivergenceRecord) predicate.DivergenceRecord {
	return predicate.DivergenceRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DivergenceRecord) predicate.DivergenceRecord {
	return predicate.DivergenceRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DivergenceRecord) predicate.DivergenceRecord {
	return predicate.DivergenceRecord(sql.NotPredicates(p))
}
