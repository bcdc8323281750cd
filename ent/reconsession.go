// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/procureguard/trimatch/ent/reconsession"
	"github.com/procureguard/trimatch/ent/workpaper"
)

// ReconSession is the model entity for the ReconSession schema.
type ReconSession struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// TenantID holds the value of the "tenant_id" field.
	TenantID string `json:"tenant_id,omitempty"`
	// Submitted document bundle JSON (full-text searchable)
	DocumentBundle string `json:"document_bundle,omitempty"`
	// Denormalized from extraction for list filters
	VendorName *string `json:"vendor_name,omitempty"`
	// Denormalized from extraction; feeds the duplicate-invoice probe of later sessions
	InvoiceNumber *string `json:"invoice_number,omitempty"`
	// Status holds the value of the "status" field.
	Status reconsession.Status `json:"status,omitempty"`
	// When the reconciliation was submitted
	CreatedAt time.Time `json:"created_at,omitempty"`
	// When a worker claimed the session (pending to in_progress)
	StartedAt *time.Time `json:"started_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// Stage the supervisor is executing, cleared on terminal
	CurrentStage *string `json:"current_stage,omitempty"`
	// Terminal verdict document (status, confidence, matches, summary)
	Verdict map[string]interface{} `json:"verdict,omitempty"`
	// Discrepancy summary lines joined for list views
	VerdictSummary *string `json:"verdict_summary,omitempty"`
	// Stage errors accumulated on the pipeline state
	StateErrors []map[string]interface{} `json:"state_errors,omitempty"`
	// SessionMetadata holds the value of the "session_metadata" field.
	SessionMetadata map[string]interface{} `json:"session_metadata,omitempty"`
	// For multi-replica coordination
	PodID *string `json:"pod_id,omitempty"`
	// For orphan detection
	LastHeartbeatAt *time.Time `json:"last_heartbeat_at,omitempty"`
	// Soft delete for retention policy
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ReconSessionQuery when eager-loading is set.
	Edges        ReconSessionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ReconSessionEdges holds the relations/edges for other nodes in the graph.
type ReconSessionEdges struct {
	// StageExecutions holds the value of the stage_executions edge.
	StageExecutions []*StageExecution `json:"stage_executions,omitempty"`
	// DivergenceRecords holds the value of the divergence_records edge.
	DivergenceRecords []*DivergenceRecord `json:"divergence_records,omitempty"`
	// Workpaper holds the value of the workpaper edge.
	Workpaper *Workpaper `json:"workpaper,omitempty"`
	// ProgressEvents holds the value of the progress_events edge.
	ProgressEvents []*ProgressEvent `json:"progress_events,omitempty"`
	// FeedbackSamples holds the value of the feedback_samples edge.
	FeedbackSamples []*FeedbackSample `json:"feedback_samples,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [5]bool
}

// StageExecutionsOrErr returns the StageExecutions value or an error if the edge
// was not loaded in eager-loading.
func (e ReconSessionEdges) StageExecutionsOrErr() ([]*StageExecution, error) {
	if e.loadedTypes[0] {
		return e.StageExecutions, nil
	}
	return nil, &NotLoadedError{edge: "stage_executions"}
}

// DivergenceRecordsOrErr returns the DivergenceRecords value or an error if the edge
// was not loaded in eager-loading.
func (e ReconSessionEdges) DivergenceRecordsOrErr() ([]*DivergenceRecord, error) {
	if e.loadedTypes[1] {
		return e.DivergenceRecords, nil
	}
	return nil, &NotLoadedError{edge: "divergence_records"}
}

// WorkpaperOrErr returns the Workpaper value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ReconSessionEdges) WorkpaperOrErr() (*Workpaper, error) {
	if e.Workpaper != nil {
		return e.Workpaper, nil
	} else if e.loadedTypes[2] {
		return nil, &NotFoundError{label: workpaper.Label}
	}
	return nil, &NotLoadedError{edge: "workpaper"}
}

// ProgressEventsOrErr returns the ProgressEvents value or an error if the edge
// was not loaded in eager-loading.
func (e ReconSessionEdges) ProgressEventsOrErr() ([]*ProgressEvent, error) {
	if e.loadedTypes[3] {
		return e.ProgressEvents, nil
	}
	return nil, &NotLoadedError{edge: "progress_events"}
}

// FeedbackSamplesOrErr returns the FeedbackSamples value or an error if the edge
// was not loaded in eager-loading.
func (e ReconSessionEdges) FeedbackSamplesOrErr() ([]*FeedbackSample, error) {
	if e.loadedTypes[4] {
		return e.FeedbackSamples, nil
	}
	return nil, &NotLoadedError{edge: "feedback_samples"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ReconSession) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case reconsession.FieldVerdict, reconsession.FieldStateErrors, reconsession.FieldSessionMetadata:
			values[i] = new([]byte)
		case reconsession.FieldID, reconsession.FieldTenantID, reconsession.FieldDocumentBundle, reconsession.FieldVendorName, reconsession.FieldInvoiceNumber, reconsession.FieldStatus, reconsession.FieldErrorMessage, reconsession.FieldCurrentStage, reconsession.FieldVerdictSummary, reconsession.FieldPodID:
			values[i] = new(sql.NullString)
		case reconsession.FieldCreatedAt, reconsession.FieldStartedAt, reconsession.FieldCompletedAt, reconsession.FieldLastHeartbeatAt, reconsession.FieldDeletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ReconSession fields.
func (_m *ReconSession) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case reconsession.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case reconsession.FieldTenantID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tenant_id", values[i])
			} else if value.Valid {
				_m.TenantID = value.String
			}
		case reconsession.FieldDocumentBundle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field document_bundle", values[i])
			} else if value.Valid {
				_m.DocumentBundle = value.String
			}
		case reconsession.FieldVendorName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field vendor_name", values[i])
			} else if value.Valid {
				_m.VendorName = new(string)
				*_m.VendorName = value.String
			}
		case reconsession.FieldInvoiceNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field invoice_number", values[i])
			} else if value.Valid {
				_m.InvoiceNumber = new(string)
				*_m.InvoiceNumber = value.String
			}
		case reconsession.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = reconsession.Status(value.String)
			}
		case reconsession.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case reconsession.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = new(time.Time)
				*_m.StartedAt = value.Time
			}
		case reconsession.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case reconsession.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case reconsession.FieldCurrentStage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field current_stage", values[i])
			} else if value.Valid {
				_m.CurrentStage = new(string)
				*_m.CurrentStage = value.String
			}
		case reconsession.FieldVerdict:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field verdict", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Verdict); err != nil {
					return fmt.Errorf("unmarshal field verdict: %w", err)
				}
			}
		case reconsession.FieldVerdictSummary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field verdict_summary", values[i])
			} else if value.Valid {
				_m.VerdictSummary = new(string)
				*_m.VerdictSummary = value.String
			}
		case reconsession.FieldStateErrors:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field state_errors", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.StateErrors); err != nil {
					return fmt.Errorf("unmarshal field state_errors: %w", err)
				}
			}
		case reconsession.FieldSessionMetadata:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field session_metadata", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.SessionMetadata); err != nil {
					return fmt.Errorf("unmarshal field session_metadata: %w", err)
				}
			}
		case reconsession.FieldPodID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pod_id", values[i])
			} else if value.Valid {
				_m.PodID = new(string)
				*_m.PodID = value.String
			}
		case reconsession.FieldLastHeartbeatAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_heartbeat_at", values[i])
			} else if value.Valid {
				_m.LastHeartbeatAt = new(time.Time)
				*_m.LastHeartbeatAt = value.Time
			}
		case reconsession.FieldDeletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field deleted_at", values[i])
			} else if value.Valid {
				_m.DeletedAt = new(time.Time)
				*_m.DeletedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ReconSession.
// This includes values selected through modifiers, order, etc.
func (_m *ReconSession) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryStageExecutions queries the "stage_executions" edge of the ReconSession entity.
func (_m *ReconSession) QueryStageExecutions() *StageExecutionQuery {
	return NewReconSessionClient(_m.config).QueryStageExecutions(_m)
}

// QueryDivergenceRecords queries the "divergence_records" edge of the ReconSession entity.
func (_m *ReconSession) QueryDivergenceRecords() *DivergenceRecordQuery {
	return NewReconSessionClient(_m.config).QueryDivergenceRecords(_m)
}

// QueryWorkpaper queries the "workpaper" edge of the ReconSession entity.
func (_m *ReconSession) QueryWorkpaper() *WorkpaperQuery {
	return NewReconSessionClient(_m.config).QueryWorkpaper(_m)
}

// QueryProgressEvents queries the "progress_events" edge of the ReconSession entity.
func (_m *ReconSession) QueryProgressEvents() *ProgressEventQuery {
	return NewReconSessionClient(_m.config).QueryProgressEvents(_m)
}

// QueryFeedbackSamples queries the "feedback_samples" edge of the ReconSession entity.
func (_m *ReconSession) QueryFeedbackSamples() *FeedbackSampleQuery {
	return NewReconSessionClient(_m.config).QueryFeedbackSamples(_m)
}

// Update returns a builder for updating this ReconSession.
// Note that you need to call ReconSession.Unwrap() before calling this method if this ReconSession
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ReconSession) Update() *ReconSessionUpdateOne {
	return NewReconSessionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ReconSession entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ReconSession) Unwrap() *ReconSession {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ReconSession is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ReconSession) String() string {
	var builder strings.Builder
	builder.WriteString("ReconSession(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("tenant_id=")
	builder.WriteString(_m.TenantID)
	builder.WriteString(", ")
	builder.WriteString("document_bundle=")
	builder.WriteString(_m.DocumentBundle)
	builder.WriteString(", ")
	if v := _m.VendorName; v != nil {
		builder.WriteString("vendor_name=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.InvoiceNumber; v != nil {
		builder.WriteString("invoice_number=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.StartedAt; v != nil {
		builder.WriteString("started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.CurrentStage; v != nil {
		builder.WriteString("current_stage=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("verdict=")
	builder.WriteString(fmt.Sprintf("%v", _m.Verdict))
	builder.WriteString(", ")
	if v := _m.VerdictSummary; v != nil {
		builder.WriteString("verdict_summary=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("state_errors=")
	builder.WriteString(fmt.Sprintf("%v", _m.StateErrors))
	builder.WriteString(", ")
	builder.WriteString("session_metadata=")
	builder.WriteString(fmt.Sprintf("%v", _m.SessionMetadata))
	builder.WriteString(", ")
	if v := _m.PodID; v != nil {
		builder.WriteString("pod_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.LastHeartbeatAt; v != nil {
		builder.WriteString("last_heartbeat_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.DeletedAt; v != nil {
		builder.WriteString("deleted_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// ReconSessions is a parsable slice of ReconSession.
type ReconSessions []*ReconSession
