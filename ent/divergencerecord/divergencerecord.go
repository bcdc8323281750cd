// Code generated by ent, DO NOT EDIT.

package divergencerecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the divergencerecord type in the database.
	Label = "divergence_record"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "record_id"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldTenantID holds the string denoting the tenant_id field in the database.
	FieldTenantID = "tenant_id"
	// FieldSimilarity holds the string denoting the similarity field in the database.
	FieldSimilarity = "similarity"
	// FieldThreshold holds the string denoting the threshold field in the database.
	FieldThreshold = "threshold"
	// FieldAlertTriggered holds the string denoting the alert_triggered field in the database.
	FieldAlertTriggered = "alert_triggered"
	// FieldReason holds the string denoting the reason field in the database.
	FieldReason = "reason"
	// FieldDegraded holds the string denoting the degraded field in the database.
	FieldDegraded = "degraded"
	// FieldPerturbations holds the string denoting the perturbations field in the database.
	FieldPerturbations = "perturbations"
	// FieldPrimarySummary holds the string denoting the primary_summary field in the database.
	FieldPrimarySummary = "primary_summary"
	// FieldShadowSummary holds the string denoting the shadow_summary field in the database.
	FieldShadowSummary = "shadow_summary"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeSession holds the string denoting the session edge name in mutations.
	EdgeSession = "session"
	// ReconSessionFieldID holds the string denoting the ID field of the ReconSession.
	ReconSessionFieldID = "session_id"
	// Table holds the table name of the divergencerecord in the database.
	Table = "divergence_records"
	// SessionTable is the table that holds the session relation/edge.
	SessionTable = "divergence_records"
	// SessionInverseTable is the table name for the ReconSession entity.
	// It exists in this package in order to avoid circular dependency with the "reconsession" package.
	SessionInverseTable = "recon_sessions"
	// SessionColumn is the table column denoting the session relation/edge.
	SessionColumn = "session_id"
)

// Columns holds all SQL columns for divergencerecord fields.
var Columns = []string{
	FieldID,
	FieldSessionID,
	FieldTenantID,
	FieldSimilarity,
	FieldThreshold,
	FieldAlertTriggered,
	FieldReason,
	FieldDegraded,
	FieldPerturbations,
	FieldPrimarySummary,
	FieldShadowSummary,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultAlertTriggered holds the default value on creation for the "alert_triggered" field.
	DefaultAlertTriggered bool
	// DefaultDegraded holds the default value on creation for the "degraded" field.
	DefaultDegraded bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the DivergenceRecord queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByTenantID orders the results by the tenant_id field.
func ByTenantID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTenantID, opts...).ToFunc()
}

// BySimilarity orders the results by the similarity field.
func BySimilarity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSimilarity, opts...).ToFunc()
}

// ByThreshold orders the results by the threshold field.
func ByThreshold(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldThreshold, opts...).ToFunc()
}

// ByAlertTriggered orders the results by the alert_triggered field.
func ByAlertTriggered(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAlertTriggered, opts...).ToFunc()
}

// ByReason orders the results by the reason field.
func ByReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReason, opts...).ToFunc()
}

// ByDegraded orders the results by the degraded field.
func ByDegraded(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDegraded, opts...).ToFunc()
}

// ByPrimarySummary orders the results by the primary_summary field.
func ByPrimarySummary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPrimarySummary, opts...).ToFunc()
}

// ByShadowSummary orders the results by the shadow_summary field.
func ByShadowSummary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldShadowSummary, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// BySessionField orders the results by session field.
func BySessionField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSessionStep(), sql.OrderByField(field, opts...))
	}
}
func newSessionStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SessionInverseTable, ReconSessionFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, SessionTable, SessionColumn),
	)
}
