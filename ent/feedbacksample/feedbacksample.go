// Code generated by ent, DO NOT EDIT.

package feedbacksample

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the feedbacksample type in the database.
	Label = "feedback_sample"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "sample_id"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldTenantID holds the string denoting the tenant_id field in the database.
	FieldTenantID = "tenant_id"
	// FieldSimilarity holds the string denoting the similarity field in the database.
	FieldSimilarity = "similarity"
	// FieldThreshold holds the string denoting the threshold field in the database.
	FieldThreshold = "threshold"
	// FieldWasAlert holds the string denoting the was_alert field in the database.
	FieldWasAlert = "was_alert"
	// FieldOutcome holds the string denoting the outcome field in the database.
	FieldOutcome = "outcome"
	// FieldReviewer holds the string denoting the reviewer field in the database.
	FieldReviewer = "reviewer"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldLabeledAt holds the string denoting the labeled_at field in the database.
	FieldLabeledAt = "labeled_at"
	// EdgeSession holds the string denoting the session edge name in mutations.
	EdgeSession = "session"
	// ReconSessionFieldID holds the string denoting the ID field of the ReconSession.
	ReconSessionFieldID = "session_id"
	// Table holds the table name of the feedbacksample in the database.
	Table = "feedback_samples"
	// SessionTable is the table that holds the session relation/edge.
	SessionTable = "feedback_samples"
	// SessionInverseTable is the table name for the ReconSession entity.
	// It exists in this package in order to avoid circular dependency with the "reconsession" package.
	SessionInverseTable = "recon_sessions"
	// SessionColumn is the table column denoting the session relation/edge.
	SessionColumn = "session_id"
)

// Columns holds all SQL columns for feedbacksample fields.
var Columns = []string{
	FieldID,
	FieldSessionID,
	FieldTenantID,
	FieldSimilarity,
	FieldThreshold,
	FieldWasAlert,
	FieldOutcome,
	FieldReviewer,
	FieldCreatedAt,
	FieldLabeledAt,
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
	// DefaultWasAlert holds the default value on creation for the "was_alert" field.
	DefaultWasAlert bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Outcome defines the type for the "outcome" enum field.
type Outcome string

// OutcomeUnlabeled is the default value of the Outcome enum.
const DefaultOutcome = OutcomeUnlabeled

// Outcome values.
const (
	OutcomeUnlabeled     Outcome = "unlabeled"
	OutcomeCorrect       Outcome = "correct"
	OutcomeFalsePositive Outcome = "false_positive"
	OutcomeFalseNegative Outcome = "false_negative"
)

func (o Outcome) String() string {
	return string(o)
}

// OutcomeValidator is a validator for the "outcome" field enum values. It is called by the builders before save.
func OutcomeValidator(o Outcome) error {
	switch o {
	case OutcomeUnlabeled, OutcomeCorrect, OutcomeFalsePositive, OutcomeFalseNegative:
		return nil
	default:
		return fmt.Errorf("feedbacksample: invalid enum value for outcome field: %q", o)
	}
}

// OrderOption defines the ordering options for the FeedbackSample queries.
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

// ByWasAlert orders the results by the was_alert field.
func ByWasAlert(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWasAlert, opts...).ToFunc()
}

// ByOutcome orders the results by the outcome field.
func ByOutcome(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOutcome, opts...).ToFunc()
}

// ByReviewer orders the results by the reviewer field.
func ByReviewer(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReviewer, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByLabeledAt orders the results by the labeled_at field.
func ByLabeledAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLabeledAt, opts...).ToFunc()
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
