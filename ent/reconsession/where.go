// Code generated by ent, DO NOT EDIT.

package reconsession

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/procureguard/trimatch/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ReconSession {
	return predicate.ReconSession(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ReconSession {
	return predicate.ReconSession(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ReconSession {
	return predicate.ReconSession(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ReconSession {
	return predicate.ReconSession(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ReconSession {
	return predicate.ReconSession(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ReconSession {
	return predicate.ReconSession(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ReconSession {
	return predicate.ReconSession(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ReconSession {
	return predicate.ReconSession(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ReconSession {
	return predicate.ReconSession(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ReconSession {
	return predicate.ReconSession(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ReconSession {
	return predicate.ReconSession(sql.FieldContainsFold(FieldID, id))
}

// TenantID applies equality check predicate on the "tenant_id" field. It's identical to TenantIDEQ.
func TenantID(v string) predicate.ReconSession {
	return predicate.ReconSession(sql.FieldEQ(FieldTenantID, v))
}

// DocumentBundle applies equality check predicate on the "document_bundle" field. It's identical to DocumentBundleEQ.
func DocumentBundle(v string) predicate.ReconSession {
	return predicate.ReconSession(sql.FieldEQ(FieldDocumentBundle, v))
}

// VendorName applies equality check predicate on the "vendor_name" field. It's identical to VendorNameEQ.
func VendorName(v string) predicate.ReconSession {
	return predicate.ReconSession(sql.FieldEQ(FieldVendorName, v))
}

// InvoiceNumber applies equality check predicate on the "invoice_number" field. It's identical to InvoiceNumberEQ.
func InvoiceNumber(v string) predicate.ReconSession {
	return predicate.ReconSession(sql.FieldEQ(FieldInvoiceNumber, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ReconSession {
	return predicate.ReconSession(sql.FieldEQ(FieldCreatedAt, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.ReconSession {
	return predicate.ReconSession(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.ReconSession {
	return predicate.ReconSession(sql.FieldEQ(FieldCompletedAt, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.ReconSession {
	return predicate.ReconSession(sql.FieldEQ(FieldErrorMessage, v))
}

// CurrentStage applies equality check predicate on the "current_stage" field. It's identical to CurrentStageEQ.
func CurrentStage(v string) predicate.ReconSession {
	return predicate.ReconSession(sql.FieldEQ(FieldCurrentStage, v))
}

// VerdictSummary applies equality check predicate on the "verdict_summary" field. It's identical to VerdictSummaryEQ.
func VerdictSummary(v string) predicate.ReconSession {
	return predicate.ReconSession(sql.FieldEQ(FieldVerdictSummary, v))
}

// PodID applies equality check predicate on the "pod_id" field. It's identical to PodIDEQ.
func PodID(v string) predicate.ReconSession {
	return predicate.ReconSession(sql.FieldEQ(FieldPodID, v))
}

// LastHeartbeatAt applies equality check predicate on the "last_heartbeat_at" field. It's identical to LastHeartbeatAtEQ.
func LastHeartbeatAt(v time.Time) predicate.ReconSession {
	return predicate.ReconSession(sql.FieldEQ(FieldLastHeartbeatAt, v))
}

// DeletedAt applies equality check predicate on the "deleted_at" field. It's identical to DeletedAtEQ.
func DeletedAt(v time.Time) predicate.ReconSession {
	return predicate.ReconSession(sql.FieldEQ(FieldDeletedAt, v))
}

// TenantIDEQ applies the EQ predicate on the "tenant_id" field.
func TenantIDEQ(v string) predicate.ReconSession {
	return predicate.ReconSession(sql.FieldEQ(FieldTenantID, v))
}

// TenantIDNEQ applies the NEQ predicate on the "tenant_id" field.
func TenantIDNEQ(v string) predicate.ReconSession {
	return predicate.ReconSession(sql.FieldNEQ(FieldTenantID, v))
}

// TenantIDIn applies the In predicate on the "tenant_id" field.
func TenantIDIn(vs ...string) predicate.ReconSession {
	return predicate.ReconSession(sql.FieldIn(FieldTenantID, vs...))
}

// TenantIDNotIn applies the NotIn predicate on the "tenant_id" field.
func TenantIDNotIn(vs ...string) predicate.ReconSession {
	return predicate.ReconSession(sql.FieldNotIn(FieldTenantID, vs...))
}

// TenantIDGT applies the GT predicate on the "tenant_id" field.
func TenantIDGT(v string) predicate.ReconSession {
	return predicate.ReconSession(sql.FieldGT(FieldTenantID, v))
}

// TenantIDGTE applies the GTE predicate on the "tenant_id" field.
func TenantIDGTE(v string) predicate.ReconSession {
	return predicate.ReconSession(sql.FieldGTE(FieldTenantID, v))
}

// TenantIDLT applies the LT predicate on the "tenant_id" field.
func TenantIDLT(v string) predicate.ReconSession {
	return predicate.ReconSession(sql.FieldLT(FieldTenantID, v))
}

// TenantIDLTE applies the LTE predicate on the "tenant_id" field.
func TenantIDLTE(v string) predicate.ReconSession {
	return predicate.ReconSession(sql.FieldLTE(FieldTenantID, v))
}

// TenantIDContains applies the Contains predicate on the "tenant_id" field.
func TenantIDContains(v string) predicate.ReconSession {
	return predicate.ReconSession(sql.FieldContains(FieldTenantID, v))
}

// TenantIDHasPrefix applies the HasPrefix predicate on the "tenant_id" field.
func TenantIDHasPrefix(v string) predicate.ReconSession {
	return predicate.ReconSession(sql.FieldHasPrefix(FieldTenantID, v))
}

// TenantIDHasSuffix applies the HasSuffix predicate on the "tenant_id" field.
func TenantIDHasSuffix(v string) predicate.ReconSession {
	return predicate.ReconSession(sql.FieldHasSuffix(FieldTenantID, v))
}

// TenantIDEqualFold applies the EqualFold predicate on the "tenant_id" field.
func TenantIDEqualFold(v string) predicate.ReconSession {
	return predicate.ReconSession(sql.FieldEqualFold(FieldTenantID, v))
}

// TenantIDContainsFold applies the ContainsFold predicate on the "tenant_id" field.
func TenantIDContainsFold(v string) predicate.ReconSession {
	return predicate.ReconSession(sql.FieldContainsFold(FieldTenantID, v))
}

// DocumentBundleEQ applies the EQ predicate on the "document_bundle" field.
func DocumentBundleEQ(v string) predicate.ReconSession {
	return predicate.ReconSession(sql.FieldEQ(FieldDocumentBundle, v))
}

// DocumentBundleNEQ applies the NEQ predicate on the "document_bundle" field.
func DocumentBundleNEQ(v string) predicate.ReconSession {
	return predicate.ReconSession(sql.FieldNEQ(FieldDocumentBundle, v))
}

// DocumentBundleIn applies the In predicate on the "document_bundle" field.
func DocumentBundleIn(vs ...string) predicate.ReconSession {
	return predicate.ReconSession(sql.FieldIn(FieldDocumentBundle, vs...))
}

// DocumentBundleNotIn applies the NotIn predicate on the "document_bundle" field.
func DocumentBundleNotIn(vs ...string) predicate.ReconSession {
	return predicate.ReconSession(sql.FieldNotIn(FieldDocumentBundle, vs...))
}

// DocumentBundleGT applies the GT predicate on the "document_bundle" field.
func DocumentBundleGT(v string) predicate.ReconSession {
	return predicate.ReconSession(sql.FieldGT(FieldDocumentBundle, v))
}

// DocumentBundleGTE applies the GTE predicate on the "document_bundle" field.
func DocumentBundleGTE(v string) predicate.ReconSession {
	return predicate.ReconSession(sql.FieldGTE(FieldDocumentBundle, v))
}

// DocumentBundleLT applies the LT predicate on the "document_bundle" field.
func DocumentBundleLT(v string) predicate.ReconSession {
	return predicate.ReconSession(sql.FieldLT(FieldDocumentBundle, v))
}

// DocumentBundleLTE applies the LTE predicate on the "document_bundle" field.
func DocumentBundleLTE(v string) predicate.ReconSession {
	return predicate.ReconSession(sql.FieldLTE(FieldDocumentBundle, v))
}

// DocumentBundleContains applies the Contains predicate on the "document_bundle" field.
func DocumentBundleContains(v string) predicate.ReconSession {
	return predicate.ReconSession(sql.FieldContains(FieldDocumentBundle, v))
}

// DocumentBundleHasPrefix applies the HasPrefix predicate on the "document_bundle" field.
func DocumentBundleHasPrefix(v string) predicate.ReconSession {
	return predicate.ReconSession(sql.FieldHasPrefix(FieldDocumentBundle, v))
}

// DocumentBundleHasSuffix applies the HasSuffix predicate on the "document_bundle" field.
func DocumentBundleHasSuffix(v string) predicate.ReconSession {
	return predicate.ReconSession(sql.FieldHasSuffix(FieldDocumentBundle, v))
}

// DocumentBundleEqualFold applies the EqualFold predicate on the "document_bundle" field.
func DocumentBundleEqualFold(v string) predicate.ReconSession {
	return predicate.ReconSession(sql.FieldEqualFold(FieldDocumentBundle, v))
}

// DocumentBundleContainsFold applies the ContainsFold predicate on the "document_bundle" field.
func DocumentBundleContainsFold(v string) predicate.ReconSession {
	return predicate.ReconSession(sql.FieldContainsFold(FieldDocumentBundle, v))
}

// VendorNameEQ applies the EQ predicate on the "vendor_name" field.
func VendorNameEQ(v string) predicate.ReconSession {
	return predicate.ReconSession(sql.FieldEQ(FieldVendorName, v))
}

// VendorNameNEQ applies the NEQ predicate on the "vendor_name" field.
func VendorNameNEQ(v string) predicate.ReconSession {
	return predicate.ReconSession(sql.FieldNEQ(FieldVendorName, v))
}

// VendorNameIn applies the In predicate on the "vendor_name" field.
func VendorNameIn(vs ...string) predicate.ReconSession {
	return predicate.ReconSession(sql.FieldIn(FieldVendorName, vs...))
}

// VendorNameNotIn applies the NotIn predicate on the "vendor_name" field.
func VendorNameNotIn(vs ...string) predicate.ReconSession {
	return predicate.ReconSession(sql.FieldNotIn(FieldVendorName, vs...))
}

// VendorNameGT applies the GT predicate on the "vendor_name" field.
func VendorNameGT(v string) predicate.ReconSession {
	return predicate.ReconSession(sql.FieldGT(FieldVendorName, v))
}

// VendorNameGTE applies the GTE predicate on the "vendor_name" field.
func VendorNameGTE(v string) predicate.ReconSession {
	return predicate.ReconSession(sql.FieldGTE(FieldVendorName, v))
}

// VendorNameLT applies the LT predicate on the "vendor_name" field.
func VendorNameLT(v string) predicate.ReconSession {
	return predicate.ReconSession(sql.FieldLT(FieldVendorName, v))
}

// VendorNameLTE applies the LTE predicate on the "vendor_name" field.
func VendorNameLTE(v string) predicate.ReconSession {
	return predicate.ReconSession(sql.FieldLTE(FieldVendorName, v))
}

// VendorNameContains applies the Contains predicate on the "vendor_name" field.
func VendorNameContains(v string) predicate.ReconSession {
	return predicate.ReconSession(sql.FieldContains(FieldVendorName, v))
}

// VendorNameHasPrefix applies the HasPrefix predicate on the "vendor_name" field.
func VendorNameHasPrefix(v string) predicate.ReconSession {
	return predicate.ReconSession(sql.FieldHasPrefix(FieldVendorName, v))
}

// VendorNameHasSuffix applies the HasSuffix predicate on the "vendor_name" field.
func VendorNameHasSuffix(v string) predicate.ReconSession {
	return predicate.ReconSession(sql.FieldHasSuffix(FieldVendorName, v))
}

// VendorNameIsNil applies the IsNil predicate on the "vendor_name" field.
func VendorNameIsNil() predicate.ReconSession {
	return predicate.ReconSession(sql.FieldIsNull(FieldVendorName))
}

// VendorNameNotNil applies the NotNil predicate on the "vendor_name" field.
func VendorNameNotNil() predicate.ReconSession {
	return predicate.ReconSession(sql.FieldNotNull(FieldVendorName))
}

// VendorNameEqualFold applies the EqualFold predicate on the "vendor_name" field.
func VendorNameEqualFold(v string) predicate.ReconSession {
	return predicate.ReconSession(sql.FieldEqualFold(FieldVendorName, v))
}

// VendorNameContainsFold applies the ContainsFold predicate on the "vendor_name" field.
func VendorNameContainsFold(v string) predicate.ReconSession {
	return predicate.ReconSession(sql.FieldContainsFold(FieldVendorName, v))
}

// InvoiceNumberEQ applies the EQ predicate on the "invoice_number" field.
func InvoiceNumberEQ(v string) predicate.ReconSession {
	return predicate.ReconSession(sql.FieldEQ(FieldInvoiceNumber, v))
}

// InvoiceNumberNEQ applies the NEQ predicate on the "invoice_number" field.
func InvoiceNumberNEQ(v string) predicate.ReconSession {
	return predicate.ReconSession(sql.FieldNEQ(FieldInvoiceNumber, v))
}

// InvoiceNumberIn applies the In predicate on the "invoice_number" field.
func InvoiceNumberIn(vs ...string) predicate.ReconSession {
	return predicate.ReconSession(sql.FieldIn(FieldInvoiceNumber, vs...))
}

// InvoiceNumberNotIn applies the NotIn predicate on the "invoice_number" field.
func InvoiceNumberNotIn(vs ...string) predicate.ReconSession {
	return predicate.ReconSession(sql.FieldNotIn(FieldInvoiceNumber, vs...))
}

// InvoiceNumberGT applies the GT predicate on the "invoice_number" field.
func InvoiceNumberGT(v string) predicate.ReconSession {
	return predicate.ReconSession(sql.FieldGT(FieldInvoiceNumber, v))
}

// InvoiceNumberGTE applies the GTE predicate on the "invoice_number" field.
func InvoiceNumberGTE(v string) predicate.ReconSession {
	return predicate.ReconSession(sql.FieldGTE(FieldInvoiceNumber, v))
}

// InvoiceNumberLT applies the LT predicate on the "invoice_number" field.
func InvoiceNumberLT(v string) predicate.ReconSession {
	return predicate.ReconSession(sql.FieldLT(FieldInvoiceNumber, v))
}

// InvoiceNumberLTE applies the LTE predicate on the "invoice_number" field.
func InvoiceNumberLTE(v string) predicate.ReconSession {
	return predicate.ReconSession(sql.FieldLTE(FieldInvoiceNumber, v))
}

// InvoiceNumberContains applies the Contains predicate on the "invoice_number" field.
func InvoiceNumberContains(v string) predicate.ReconSession {
	return predicate.ReconSession(sql.FieldContains(FieldInvoiceNumber, v))
}

// InvoiceNumberHasPrefix applies the HasPrefix predicate on the "invoice_number" field.
func InvoiceNumberHasPrefix(v string) predicate.ReconSession {
	return predicate.ReconSession(sql.FieldHasPrefix(FieldInvoiceNumber, v))
}

// InvoiceNumberHasSuffix applies the HasSuffix predicate on the "invoice_number" field.
func InvoiceNumberHasSuffix(v string) predicate.ReconSession {
	return predicate.ReconSession(sql.FieldHasSuffix(FieldInvoiceNumber, v))
}

// InvoiceNumberIsNil applies the IsNil predicate on the "invoice_number" field.
func InvoiceNumberIsNil() predicate.ReconSession {
	return predicate.ReconSession(sql.FieldIsNull(FieldInvoiceNumber))
}

// InvoiceNumberNotNil applies the NotNil predicate on the "invoice_number" field.
func InvoiceNumberNotNil() predicate.ReconSession {
	return predicate.ReconSession(sql.FieldNotNull(FieldInvoiceNumber))
}

// InvoiceNumberEqualFold applies the EqualFold predicate on the "invoice_number" field.
func InvoiceNumberEqualFold(v string) predicate.ReconSession {
	return predicate.ReconSession(sql.FieldEqualFold(FieldInvoiceNumber, v))
}

// InvoiceNumberContainsFold applies the ContainsFold predicate on the "invoice_number" field.
func InvoiceNumberContainsFold(v string) predicate.ReconSession {
	return predicate.ReconSession(sql.FieldContainsFold(FieldInvoiceNumber, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.ReconSession {
	return predicate.ReconSession(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.ReconSession {
	return predicate.ReconSession(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.ReconSession {
	return predicate.ReconSession(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.ReconSession {
	return predicate.ReconSession(sql.FieldNotIn(FieldStatus, vs...))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ReconSession {
	return predicate.ReconSession(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ReconSession {
	return predicate.ReconSession(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ReconSession {
	return predicate.ReconSession(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ReconSession {
	return predicate.ReconSession(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ReconSession {
	return predicate.ReconSession(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ReconSession {
	return predicate.ReconSession(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ReconSession {
	return predicate.ReconSession(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ReconSession {
	return predicate.ReconSession(sql.FieldLTE(FieldCreatedAt, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.ReconSession {
	return predicate.ReconSession(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.ReconSession {
	return predicate.ReconSession(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.ReconSession {
	return predicate.ReconSession(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.ReconSession {
	return predicate.ReconSession(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.ReconSession {
	return predicate.ReconSession(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.ReconSession {
	return predicate.ReconSession(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.ReconSession {
	return predicate.ReconSession(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.ReconSession {
	return predicate.ReconSession(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.ReconSession {
	return predicate.ReconSession(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.ReconSession {
	return predicate.ReconSession(sql.FieldNotNull(FieldStartedAt))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.ReconSession {
	return predicate.ReconSession(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.ReconSession {
	return predicate.ReconSession(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.ReconSession {
	return predicate.ReconSession(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.ReconSession {
	return predicate.ReconSession(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.ReconSession {
	return predicate.ReconSession(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.ReconSession {
	return predicate.ReconSession(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.ReconSession {
	return predicate.ReconSession(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.ReconSession {
	return predicate.ReconSession(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.ReconSession {
	return predicate.ReconSession(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.ReconSession {
	return predicate.ReconSession(sql.FieldNotNull(FieldCompletedAt))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.ReconSession {
	return predicate.ReconSession(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.ReconSession {
	return predicate.ReconSession(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.ReconSession {
	return predicate.ReconSession(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.ReconSession {
	return predicate.ReconSession(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.ReconSession {
	return predicate.ReconSession(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.ReconSession {
	return predicate.ReconSession(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.ReconSession {
	return predicate.ReconSession(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.ReconSession {
	return predicate.ReconSession(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.ReconSession {
	return predicate.ReconSession(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.ReconSession {
	return predicate.ReconSession(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.ReconSession {
	return predicate.ReconSession(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.ReconSession {
	return predicate.ReconSession(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.ReconSession {
	return predicate.ReconSession(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.ReconSession {
	return predicate.ReconSession(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.ReconSession {
	return predicate.ReconSession(sql.FieldContainsFold(FieldErrorMessage, v))
}

// CurrentStageEQ applies the EQ predicate on the "current_stage" field.
func CurrentStageEQ(v string) predicate.ReconSession {
	return predicate.ReconSession(sql.FieldEQ(FieldCurrentStage, v))
}

// CurrentStageNEQ applies the NEQ predicate on the "current_stage" field.
func CurrentStageNEQ(v string) predicate.ReconSession {
	return predicate.ReconSession(sql.FieldNEQ(FieldCurrentStage, v))
}

// CurrentStageIn applies the In predicate on the "current_stage" field.
func CurrentStageIn(vs ...string) predicate.ReconSession {
	return predicate.ReconSession(sql.FieldIn(FieldCurrentStage, vs...))
}

// CurrentStageNotIn applies the NotIn predicate on the "current_stage" field.
func CurrentStageNotIn(vs ...string) predicate.ReconSession {
	return predicate.ReconSession(sql.FieldNotIn(FieldCurrentStage, vs...))
}

// CurrentStageGT applies the GT predicate on the "current_stage" field.
func CurrentStageGT(v string) predicate.ReconSession {
	return predicate.ReconSession(sql.FieldGT(FieldCurrentStage, v))
}

// CurrentStageGTE applies the GTE predicate on the "current_stage" field.
func CurrentStageGTE(v string) predicate.ReconSession {
	return predicate.ReconSession(sql.FieldGTE(FieldCurrentStage, v))
}

// CurrentStageLT applies the LT predicate on the "current_stage" field.
func CurrentStageLT(v string) predicate.ReconSession {
	return predicate.ReconSession(sql.FieldLT(FieldCurrentStage, v))
}

// CurrentStageLTE applies the LTE predicate on the "current_stage" field.
func CurrentStageLTE(v string) predicate.ReconSession {
	return predicate.ReconSession(sql.FieldLTE(FieldCurrentStage, v))
}

// CurrentStageContains applies the Contains predicate on the "current_stage" field.
func CurrentStageContains(v string) predicate.ReconSession {
	return predicate.ReconSession(sql.FieldContains(FieldCurrentStage, v))
}

// CurrentStageHasPrefix applies the HasPrefix predicate on the "current_stage" field.
func CurrentStageHasPrefix(v string) predicate.ReconSession {
	return predicate.ReconSession(sql.FieldHasPrefix(FieldCurrentStage, v))
}

// CurrentStageHasSuffix applies the HasSuffix predicate on the "current_stage" field.
func CurrentStageHasSuffix(v string) predicate.ReconSession {
	return predicate.ReconSession(sql.FieldHasSuffix(FieldCurrentStage, v))
}

// CurrentStageIsNil applies the IsNil predicate on the "current_stage" field.
func CurrentStageIsNil() predicate.ReconSession {
	return predicate.ReconSession(sql.FieldIsNull(FieldCurrentStage))
}

// CurrentStageNotNil applies the NotNil predicate on the "current_stage" field.
func CurrentStageNotNil() predicate.ReconSession {
	return predicate.ReconSession(sql.FieldNotNull(FieldCurrentStage))
}

// CurrentStageEqualFold applies the EqualFold predicate on the "current_stage" field.
func CurrentStageEqualFold(v string) predicate.ReconSession {
	return predicate.ReconSession(sql.FieldEqualFold(FieldCurrentStage, v))
}

// CurrentStageContainsFold applies the ContainsFold predicate on the "current_stage" field.
func CurrentStageContainsFold(v string) predicate.ReconSession {
	return predicate.ReconSession(sql.FieldContainsFold(FieldCurrentStage, v))
}

// VerdictIsNil applies the IsNil predicate on the "verdict" field.
func VerdictIsNil() predicate.ReconSession {
	return predicate.ReconSession(sql.FieldIsNull(FieldVerdict))
}

// VerdictNotNil applies the NotNil predicate on the "verdict" field.
func VerdictNotNil() predicate.ReconSession {
	return predicate.ReconSession(sql.FieldNotNull(FieldVerdict))
}

// VerdictSummaryEQ applies the EQ predicate on the "verdict_summary" field.
func VerdictSummaryEQ(v string) predicate.ReconSession {
	return predicate.ReconSession(sql.FieldEQ(FieldVerdictSummary, v))
}

// VerdictSummaryNEQ applies the NEQ predicate on the "verdict_summary" field.
func VerdictSummaryNEQ(v string) predicate.ReconSession {
	return predicate.ReconSession(sql.FieldNEQ(FieldVerdictSummary, v))
}

// VerdictSummaryIn applies the In predicate on the "verdict_summary" field.
func VerdictSummaryIn(vs ...string) predicate.ReconSession {
	return predicate.ReconSession(sql.FieldIn(FieldVerdictSummary, vs...))
}

// VerdictSummaryNotIn applies the NotIn predicate on the "verdict_summary" field.
func VerdictSummaryNotIn(vs ...string) predicate.ReconSession {
	return predicate.ReconSession(sql.FieldNotIn(FieldVerdictSummary, vs...))
}

// VerdictSummaryGT applies the GT predicate on the "verdict_summary" field.
func VerdictSummaryGT(v string) predicate.ReconSession {
	return predicate.ReconSession(sql.FieldGT(FieldVerdictSummary, v))
}

// VerdictSummaryGTE applies the GTE predicate on the "verdict_summary" field.
func VerdictSummaryGTE(v string) predicate.ReconSession {
	return predicate.ReconSession(sql.FieldGTE(FieldVerdictSummary, v))
}

// VerdictSummaryLT applies the LT predicate on the "verdict_summary" field.
func VerdictSummaryLT(v string) predicate.ReconSession {
	return predicate.ReconSession(sql.FieldLT(FieldVerdictSummary, v))
}

// VerdictSummaryLTE applies the LTE predicate on the "verdict_summary" field.
func VerdictSummaryLTE(v string) predicate.ReconSession {
	return predicate.ReconSession(sql.FieldLTE(FieldVerdictSummary, v))
}

// VerdictSummaryContains applies the Contains predicate on the "verdict_summary" field.
func VerdictSummaryContains(v string) predicate.ReconSession {
	return predicate.ReconSession(sql.FieldContains(FieldVerdictSummary, v))
}

// VerdictSummaryHasPrefix applies the HasPrefix predicate on the "verdict_summary" field.
func VerdictSummaryHasPrefix(v string) predicate.ReconSession {
	return predicate.ReconSession(sql.FieldHasPrefix(FieldVerdictSummary, v))
}

// VerdictSummaryHasSuffix applies the HasSuffix predicate on the "verdict_summary" field.
func VerdictSummaryHasSuffix(v string) predicate.ReconSession {
	return predicate.ReconSession(sql.FieldHasSuffix(FieldVerdictSummary, v))
}

// VerdictSummaryIsNil applies the IsNil predicate on the "verdict_summary" field.
func VerdictSummaryIsNil() predicate.ReconSession {
	return predicate.ReconSession(sql.FieldIsNull(FieldVerdictSummary))
}

// VerdictSummaryNotNil applies the NotNil predicate on the "verdict_summary" field.
func VerdictSummaryNotNil() predicate.ReconSession {
	return predicate.ReconSession(sql.FieldNotNull(FieldVerdictSummary))
}

// VerdictSummaryEqualFold applies the EqualFold predicate on the "verdict_summary" field.
func VerdictSummaryEqualFold(v string) predicate.ReconSession {
	return predicate.ReconSession(sql.FieldEqualFold(FieldVerdictSummary, v))
}

// VerdictSummaryContainsFold applies the ContainsFold predicate on the "verdict_summary" field.
func VerdictSummaryContainsFold(v string) predicate.ReconSession {
	return predicate.ReconSession(sql.FieldContainsFold(FieldVerdictSummary, v))
}

// StateErrorsIsNil applies the IsNil predicate on the "state_errors" field.
func StateErrorsIsNil() predicate.ReconSession {
	return predicate.ReconSession(sql.FieldIsNull(FieldStateErrors))
}

// StateErrorsNotNil applies the NotNil predicate on the "state_errors" field.
func StateErrorsNotNil() predicate.ReconSession {
	return predicate.ReconSession(sql.FieldNotNull(FieldStateErrors))
}

// SessionMetadataIsNil applies the IsNil predicate on the "session_metadata" field.
func SessionMetadataIsNil() predicate.ReconSession {
	return predicate.ReconSession(sql.FieldIsNull(FieldSessionMetadata))
}

// SessionMetadataNotNil applies the NotNil predicate on the "session_metadata" field.
func SessionMetadataNotNil() predicate.ReconSession {
	return predicate.ReconSession(sql.FieldNotNull(FieldSessionMetadata))
}

// PodIDEQ applies the EQ predicate on the "pod_id" field.
func PodIDEQ(v string) predicate.ReconSession {
	return predicate.ReconSession(sql.FieldEQ(FieldPodID, v))
}

// PodIDNEQ applies the NEQ predicate on the "pod_id" field.
func PodIDNEQ(v string) predicate.ReconSession {
	return predicate.ReconSession(sql.FieldNEQ(FieldPodID, v))
}

// PodIDIn applies the In predicate on the "pod_id" field.
func PodIDIn(vs ...string) predicate.ReconSession {
	return predicate.ReconSession(sql.FieldIn(FieldPodID, vs...))
}

// PodIDNotIn applies the NotIn predicate on the "pod_id" field.
func PodIDNotIn(vs ...string) predicate.ReconSession {
	return predicate.ReconSession(sql.FieldNotIn(FieldPodID, vs...))
}

// PodIDGT applies the GT predicate on the "pod_id" field.
func PodIDGT(v string) predicate.ReconSession {
	return predicate.ReconSession(sql.FieldGT(FieldPodID, v))
}

// PodIDGTE applies the GTE predicate on the "pod_id" field.
func PodIDGTE(v string) predicate.ReconSession {
	return predicate.ReconSession(sql.FieldGTE(FieldPodID, v))
}

// PodIDLT applies the LT predicate on the "pod_id" field.
func PodIDLT(v string) predicate.ReconSession {
	return predicate.ReconSession(sql.FieldLT(FieldPodID, v))
}

// PodIDLTE applies the LTE predicate on the "pod_id" field.
func PodIDLTE(v string) predicate.ReconSession {
	return predicate.ReconSession(sql.FieldLTE(FieldPodID, v))
}

// PodIDContains applies the Contains predicate on the "pod_id" field.
func PodIDContains(v string) predicate.ReconSession {
	return predicate.ReconSession(sql.FieldContains(FieldPodID, v))
}

// PodIDHasPrefix applies the HasPrefix predicate on the "pod_id" field.
func PodIDHasPrefix(v string) predicate.ReconSession {
	return predicate.ReconSession(sql.FieldHasPrefix(FieldPodID, v))
}

// PodIDHasSuffix applies the HasSuffix predicate on the "pod_id" field.
func PodIDHasSuffix(v string) predicate.ReconSession {
	return predicate.ReconSession(sql.FieldHasSuffix(FieldPodID, v))
}

// PodIDIsNil applies the IsNil predicate on the "pod_id" field.
func PodIDIsNil() predicate.ReconSession {
	return predicate.ReconSession(sql.FieldIsNull(FieldPodID))
}

// PodIDNotNil applies the NotNil predicate on the "pod_id" field.
func PodIDNotNil() predicate.ReconSession {
	return predicate.ReconSession(sql.FieldNotNull(FieldPodID))
}

// PodIDEqualFold applies the EqualFold predicate on the "pod_id" field.
func PodIDEqualFold(v string) predicate.ReconSession {
	return predicate.ReconSession(sql.FieldEqualFold(FieldPodID, v))
}

// PodIDContainsFold applies the ContainsFold predicate on the "pod_id" field.
func PodIDContainsFold(v string) predicate.ReconSession {
	return predicate.ReconSession(sql.FieldContainsFold(FieldPodID, v))
}

// LastHeartbeatAtEQ applies the EQ predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtEQ(v time.Time) predicate.ReconSession {
	return predicate.ReconSession(sql.FieldEQ(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtNEQ applies the NEQ predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtNEQ(v time.Time) predicate.ReconSession {
	return predicate.ReconSession(sql.FieldNEQ(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtIn applies the In predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtIn(vs ...time.Time) predicate.ReconSession {
	return predicate.ReconSession(sql.FieldIn(FieldLastHeartbeatAt, vs...))
}

// LastHeartbeatAtNotIn applies the NotIn predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtNotIn(vs ...time.Time) predicate.ReconSession {
	return predicate.ReconSession(sql.FieldNotIn(FieldLastHeartbeatAt, vs...))
}

// LastHeartbeatAtGT applies the GT predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtGT(v time.Time) predicate.ReconSession {
	return predicate.ReconSession(sql.FieldGT(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtGTE applies the GTE predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtGTE(v time.Time) predicate.ReconSession {
	return predicate.ReconSession(sql.FieldGTE(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtLT applies the LT predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtLT(v time.Time) predicate.ReconSession {
	return predicate.ReconSession(sql.FieldLT(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtLTE applies the LTE predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtLTE(v time.Time) predicate.ReconSession {
	return predicate.ReconSession(sql.FieldLTE(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtIsNil applies the IsNil predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtIsNil() predicate.ReconSession {
	return predicate.ReconSession(sql.FieldIsNull(FieldLastHeartbeatAt))
}

// LastHeartbeatAtNotNil applies the NotNil predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtNotNil() predicate.ReconSession {
	return predicate.ReconSession(sql.FieldNotNull(FieldLastHeartbeatAt))
}

// DeletedAtEQ applies the EQ predicate on the "deleted_at" field.
func DeletedAtEQ(v time.Time) predicate.ReconSession {
	return predicate.ReconSession(sql.FieldEQ(FieldDeletedAt, v))
}

// DeletedAtNEQ applies the NEQ predicate on the "deleted_at" field.
func DeletedAtNEQ(v time.Time) predicate.ReconSession {
	return predicate.ReconSession(sql.FieldNEQ(FieldDeletedAt, v))
}

// DeletedAtIn applies the In predicate on the "deleted_at" field.
func DeletedAtIn(vs ...time.Time) predicate.ReconSession {
	return predicate.ReconSession(sql.FieldIn(FieldDeletedAt, vs...))
}

// DeletedAtNotIn applies the NotIn predicate on the "deleted_at" field.
func DeletedAtNotIn(vs ...time.Time) predicate.ReconSession {
	return predicate.ReconSession(sql.FieldNotIn(FieldDeletedAt, vs...))
}

// DeletedAtGT applies the GT predicate on the "deleted_at" field.
func DeletedAtGT(v time.Time) predicate.ReconSession {
	return predicate.ReconSession(sql.FieldGT(FieldDeletedAt, v))
}

// DeletedAtGTE applies the GTE predicate on the "deleted_at" field.
func DeletedAtGTE(v time.Time) predicate.ReconSession {
	return predicate.ReconSession(sql.FieldGTE(FieldDeletedAt, v))
}

// DeletedAtLT applies the LT predicate on the "deleted_at" field.
func DeletedAtLT(v time.Time) predicate.ReconSession {
	return predicate.ReconSession(sql.FieldLT(FieldDeletedAt, v))
}

// DeletedAtLTE applies the LTE predicate on the "deleted_at" field.
func DeletedAtLTE(v time.Time) predicate.ReconSession {
	return predicate.ReconSession(sql.FieldLTE(FieldDeletedAt, v))
}

// DeletedAtIsNil applies the IsNil predicate on the "deleted_at" field.
func DeletedAtIsNil() predicate.ReconSession {
	return predicate.ReconSession(sql.FieldIsNull(FieldDeletedAt))
}

// DeletedAtNotNil applies the NotNil predicate on the "deleted_at" field.
func DeletedAtNotNil() predicate.ReconSession {
	return predicate.ReconSession(sql.FieldNotNull(FieldDeletedAt))
}

// HasStageExecutions applies the HasEdge predicate on the "stage_executions" edge.
func HasStageExecutions() predicate.ReconSession {
	return predicate.ReconSession(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, StageExecutionsTable, StageExecutionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasStageExecutionsWith applies the HasEdge predicate on the "stage_executions" edge with a given conditions (other predicates).
func HasStageExecutionsWith(preds ...predicate.StageExecution) predicate.ReconSession {
	return predicate.ReconSession(func(s *sql.Selector) {
		step := newStageExecutionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasDivergenceRecords applies the HasEdge predicate on the "divergence_records" edge.
func HasDivergenceRecords() predicate.ReconSession {
	return predicate.ReconSession(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, DivergenceRecordsTable, DivergenceRecordsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDivergenceRecordsWith applies the HasEdge predicate on the "divergence_records" edge with a given conditions (other predicates).
func HasDivergenceRecordsWith(preds ...predicate.DivergenceRecord) predicate.ReconSession {
	return predicate.ReconSession(func(s *sql.Selector) {
		step := newDivergenceRecordsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasWorkpaper applies the HasEdge predicate on the "workpaper" edge.
func HasWorkpaper() predicate.ReconSession {
	return predicate.ReconSession(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, WorkpaperTable, WorkpaperColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasWorkpaperWith applies the HasEdge predicate on the "workpaper" edge with a given conditions (other predicates).
func HasWorkpaperWith(preds ...predicate.Workpaper) predicate.ReconSession {
	return predicate.ReconSession(func(s *sql.Selector) {
		step := newWorkpaperStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasProgressEvents applies the HasEdge predicate on the "progress_events" edge.
func HasProgressEvents() predicate.ReconSession {
	return predicate.ReconSession(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ProgressEventsTable, ProgressEventsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasProgressEventsWith applies the HasEdge predicate on the "progress_events" edge with a given conditions (other predicates).
func HasProgressEventsWith(preds ...predicate.ProgressEvent) predicate.ReconSession {
	return predicate.ReconSession(func(s *sql.Selector) {
		step := newProgressEventsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasFeedbackSamples applies the HasEdge predicate on the "feedback_samples" edge.
func HasFeedbackSamples() predicate.ReconSession {
	return predicate.ReconSession(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, FeedbackSamplesTable, FeedbackSamplesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasFeedbackSamplesWith applies the HasEdge predicate on the "feedback_samples" edge with a given conditions (other predicates).
func HasFeedbackSamplesWith(preds ...predicate.FeedbackSample) predicate.ReconSession {
	return predicate.ReconSession(func(s *sql.Selector) {
		step := newFeedbackSamplesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ReconSession) predicate.ReconSession {
	return predicate.ReconSession(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ReconSession) predicate.ReconSession {
	return predicate.ReconSession(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ReconSession) predicate.ReconSession {
	return predicate.ReconSession(sql.NotPredicates(p))
}
