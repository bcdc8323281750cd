// Code generated by ent, DO NOT EDIT.

package workpaper

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the workpaper type in the database.
	Label = "workpaper"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "workpaper_id"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldHTML holds the string denoting the html field in the database.
	FieldHTML = "html"
	// FieldSections holds the string denoting the sections field in the database.
	FieldSections = "sections"
	// FieldCitationCount holds the string denoting the citation_count field in the database.
	FieldCitationCount = "citation_count"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeSession holds the string denoting the session edge name in mutations.
	EdgeSession = "session"
	// ReconSessionFieldID holds the string denoting the ID field of the ReconSession.
	ReconSessionFieldID = "session_id"
	// Table holds the table name of the workpaper in the database.
	Table = "workpapers"
	// SessionTable is the table that holds the session relation/edge.
	SessionTable = "workpapers"
	// SessionInverseTable is the table name for the ReconSession entity.
	// It exists in this package in order to avoid circular dependency with the "reconsession" package.
	SessionInverseTable = "recon_sessions"
	// SessionColumn is the table column denoting the session relation/edge.
	SessionColumn = "session_id"
)

// Columns holds all SQL columns for workpaper fields.
var Columns = []string{
	FieldID,
	FieldSessionID,
	FieldHTML,
	FieldSections,
	FieldCitationCount,
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
	// DefaultCitationCount holds the default value on creation for the "citation_count" field.
	DefaultCitationCount int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the Workpaper queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByHTML orders the results by the html field.
func ByHTML(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHTML, opts...).ToFunc()
}

// ByCitationCount orders the results by the citation_count field.
func ByCitationCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCitationCount, opts...).ToFunc()
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
		sqlgraph.Edge(sqlgraph.O2O, true, SessionTable, SessionColumn),
	)
}
