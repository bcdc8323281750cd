// Code generated by ent, DO NOT EDIT.

package reconsession

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the reconsession type in the database.
	Label = "recon_session"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "session_id"
	// FieldTenantID holds the string denoting the tenant_id field in the database.
	FieldTenantID = "tenant_id"
	// FieldDocumentBundle holds the string denoting the document_bundle field in the database.
	FieldDocumentBundle = "document_bundle"
	// FieldVendorName holds the string denoting the vendor_name field in the database.
	FieldVendorName = "vendor_name"
	// FieldInvoiceNumber holds the string denoting the invoice_number field in the database.
	FieldInvoiceNumber = "invoice_number"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldCurrentStage holds the string denoting the current_stage field in the database.
	FieldCurrentStage = "current_stage"
	// FieldVerdict holds the string denoting the verdict field in the database.
	FieldVerdict = "verdict"
	// FieldVerdictSummary holds the string denoting the verdict_summary field in the database.
	FieldVerdictSummary = "verdict_summary"
	// FieldStateErrors holds the string denoting the state_errors field in the database.
	FieldStateErrors = "state_errors"
	// FieldSessionMetadata holds the string denoting the session_metadata field in the database.
	FieldSessionMetadata = "session_metadata"
	// FieldPodID holds the string denoting the pod_id field in the database.
	FieldPodID = "pod_id"
	// FieldLastHeartbeatAt holds the string denoting the last_heartbeat_at field in the database.
	FieldLastHeartbeatAt = "last_heartbeat_at"
	// FieldDeletedAt holds the string denoting the deleted_at field in the database.
	FieldDeletedAt = "deleted_at"
	// EdgeStageExecutions holds the string denoting the stage_executions edge name in mutations.
	EdgeStageExecutions = "stage_executions"
	// EdgeDivergenceRecords holds the string denoting the divergence_records edge name in mutations.
	EdgeDivergenceRecords = "divergence_records"
	// EdgeWorkpaper holds the string denoting the workpaper edge name in mutations.
	EdgeWorkpaper = "workpaper"
	// EdgeProgressEvents holds the string denoting the progress_events edge name in mutations.
	EdgeProgressEvents = "progress_events"
	// EdgeFeedbackSamples holds the string denoting the feedback_samples edge name in mutations.
	EdgeFeedbackSamples = "feedback_samples"
	// StageExecutionFieldID holds the string denoting the ID field of the StageExecution.
	StageExecutionFieldID = "execution_id"
	// DivergenceRecordFieldID holds the string denoting the ID field of the DivergenceRecord.
	DivergenceRecordFieldID = "record_id"
	// WorkpaperFieldID holds the string denoting the ID field of the Workpaper.
	WorkpaperFieldID = "workpaper_id"
	// ProgressEventFieldID holds the string denoting the ID field of the ProgressEvent.
	ProgressEventFieldID = "id"
	// FeedbackSampleFieldID holds the string denoting the ID field of the FeedbackSample.
	FeedbackSampleFieldID = "sample_id"
	// Table holds the table name of the reconsession in the database.
	Table = "recon_sessions"
	// StageExecutionsTable is the table that holds the stage_executions relation/edge.
	StageExecutionsTable = "stage_executions"
	// StageExecutionsInverseTable is the table name for the StageExecution entity.
	// It exists in this package in order to avoid circular dependency with the "stageexecution" package.
	StageExecutionsInverseTable = "stage_executions"
	// StageExecutionsColumn is the table column denoting the stage_executions relation/edge.
	StageExecutionsColumn = "session_id"
	// DivergenceRecordsTable is the table that holds the divergence_records relation/edge.
	DivergenceRecordsTable = "divergence_records"
	// DivergenceRecordsInverseTable is the table name for the DivergenceRecord entity.
	// It exists in this package in order to avoid circular dependency with the "divergencerecord" package.
	DivergenceRecordsInverseTable = "divergence_records"
	// DivergenceRecordsColumn is the table column denoting the divergence_records relation/edge.
	DivergenceRecordsColumn = "session_id"
	// WorkpaperTable is the table that holds the workpaper relation/edge.
	WorkpaperTable = "workpapers"
	// WorkpaperInverseTable is the table name for the Workpaper entity.
	// It exists in this package in order to avoid circular dependency with the "workpaper" package.
	WorkpaperInverseTable = "workpapers"
	// WorkpaperColumn is the table column denoting the workpaper relation/edge.
	WorkpaperColumn = "session_id"
	// ProgressEventsTable is the table that holds the progress_events relation/edge.
	ProgressEventsTable = "progress_events"
	// ProgressEventsInverseTable is the table name for the ProgressEvent entity.
	// It exists in this package in order to avoid circular dependency with the "progressevent" package.
	ProgressEventsInverseTable = "progress_events"
	// ProgressEventsColumn is the table column denoting the progress_events relation/edge.
	ProgressEventsColumn = "session_id"
	// FeedbackSamplesTable is the table that holds the feedback_samples relation/edge.
	FeedbackSamplesTable = "feedback_samples"
	// FeedbackSamplesInverseTable is the table name for the FeedbackSample entity.
	// It exists in this package in order to avoid circular dependency with the "feedbacksample" package.
	FeedbackSamplesInverseTable = "feedback_samples"
	// FeedbackSamplesColumn is the table column denoting the feedback_samples relation/edge.
	FeedbackSamplesColumn = "session_id"
)

// Columns holds all SQL columns for reconsession fields.
var Columns = []string{
	FieldID,
	FieldTenantID,
	FieldDocumentBundle,
	FieldVendorName,
	FieldInvoiceNumber,
	FieldStatus,
	FieldCreatedAt,
	FieldStartedAt,
	FieldCompletedAt,
	FieldErrorMessage,
	FieldCurrentStage,
	FieldVerdict,
	FieldVerdictSummary,
	FieldStateErrors,
	FieldSessionMetadata,
	FieldPodID,
	FieldLastHeartbeatAt,
	FieldDeletedAt,
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
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending          Status = "pending"
	StatusInProgress       Status = "in_progress"
	StatusCancelling       Status = "cancelling"
	StatusMatched          Status = "matched"
	StatusDiscrepancyFound Status = "discrepancy_found"
	StatusDivergenceAlert  Status = "divergence_alert"
	StatusException        Status = "exception"
	StatusFailed           Status = "failed"
	StatusCancelled        Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusInProgress, StatusCancelling, StatusMatched, StatusDiscrepancyFound, StatusDivergenceAlert, StatusException, StatusFailed, StatusCancelled:
		return nil
	default:
		return fmt.Errorf("reconsession: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the ReconSession queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTenantID orders the results by the tenant_id field.
func ByTenantID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTenantID, opts...).ToFunc()
}

// ByDocumentBundle orders the results by the document_bundle field.
func ByDocumentBundle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDocumentBundle, opts...).ToFunc()
}

// ByVendorName orders the results by the vendor_name field.
func ByVendorName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVendorName, opts...).ToFunc()
}

// ByInvoiceNumber orders the results by the invoice_number field.
func ByInvoiceNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInvoiceNumber, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByCurrentStage orders the results by the current_stage field.
func ByCurrentStage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrentStage, opts...).ToFunc()
}

// ByVerdictSummary orders the results by the verdict_summary field.
func ByVerdictSummary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVerdictSummary, opts...).ToFunc()
}

// ByPodID orders the results by the pod_id field.
func ByPodID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPodID, opts...).ToFunc()
}

// ByLastHeartbeatAt orders the results by the last_heartbeat_at field.
func ByLastHeartbeatAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastHeartbeatAt, opts...).ToFunc()
}

// ByDeletedAt orders the results by the deleted_at field.
func ByDeletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeletedAt, opts...).ToFunc()
}

// ByStageExecutionsCount orders the results by stage_executions count.
func ByStageExecutionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newStageExecutionsStep(), opts...)
	}
}

// ByStageExecutions orders the results by stage_executions terms.
func ByStageExecutions(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newStageExecutionsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByDivergenceRecordsCount orders the results by divergence_records count.
func ByDivergenceRecordsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newDivergenceRecordsStep(), opts...)
	}
}

// ByDivergenceRecords orders the results by divergence_records terms.
func ByDivergenceRecords(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDivergenceRecordsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByWorkpaperField orders the results by workpaper field.
func ByWorkpaperField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newWorkpaperStep(), sql.OrderByField(field, opts...))
	}
}

// ByProgressEventsCount orders the results by progress_events count.
func ByProgressEventsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newProgressEventsStep(), opts...)
	}
}

// ByProgressEvents orders the results by progress_events terms.
func ByProgressEvents(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newProgressEventsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByFeedbackSamplesCount orders the results by feedback_samples count.
func ByFeedbackSamplesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newFeedbackSamplesStep(), opts...)
	}
}

// ByFeedbackSamples orders the results by feedback_samples terms.
func ByFeedbackSamples(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newFeedbackSamplesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newStageExecutionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(StageExecutionsInverseTable, StageExecutionFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, StageExecutionsTable, StageExecutionsColumn),
	)
}
func newDivergenceRecordsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DivergenceRecordsInverseTable, DivergenceRecordFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, DivergenceRecordsTable, DivergenceRecordsColumn),
	)
}
func newWorkpaperStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(WorkpaperInverseTable, WorkpaperFieldID),
		sqlgraph.Edge(sqlgraph.O2O, false, WorkpaperTable, WorkpaperColumn),
	)
}
func newProgressEventsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ProgressEventsInverseTable, ProgressEventFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ProgressEventsTable, ProgressEventsColumn),
	)
}
func newFeedbackSamplesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(FeedbackSamplesInverseTable, FeedbackSampleFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, FeedbackSamplesTable, FeedbackSamplesColumn),
	)
}
