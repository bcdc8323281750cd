// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/procureguard/trimatch/ent/feedbacksample"
	"github.com/procureguard/trimatch/ent/reconsession"
)

// FeedbackSample is the model entity for the FeedbackSample schema.
type FeedbackSample struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID string `json:"session_id,omitempty"`
	// TenantID holds the value of the "tenant_id" field.
	TenantID string `json:"tenant_id,omitempty"`
	// Similarity holds the value of the "similarity" field.
	Similarity float64 `json:"similarity,omitempty"`
	// Tenant threshold in force when the guard ran
	Threshold float64 `json:"threshold,omitempty"`
	// WasAlert holds the value of the "was_alert" field.
	WasAlert bool `json:"was_alert,omitempty"`
	// Outcome holds the value of the "outcome" field.
	Outcome feedbacksample.Outcome `json:"outcome,omitempty"`
	// Reviewer holds the value of the "reviewer" field.
	Reviewer *string `json:"reviewer,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// LabeledAt holds the value of the "labeled_at" field.
	LabeledAt *time.Time `json:"labeled_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the FeedbackSampleQuery when eager-loading is set.
	Edges        FeedbackSampleEdges `json:"edges"`
	selectValues sql.SelectValues
}

// FeedbackSampleEdges holds the relations/edges for other nodes in the graph.
type FeedbackSampleEdges struct {
	// Session holds the value of the session edge.
	Session *ReconSession `json:"session,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// SessionOrErr returns the Session value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e FeedbackSampleEdges) SessionOrErr() (*ReconSession, error) {
	if e.Session != nil {
		return e.Session, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: reconsession.Label}
	}
	return nil, &NotLoadedError{edge: "session"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*FeedbackSample) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case feedbacksample.FieldWasAlert:
			values[i] = new(sql.NullBool)
		case feedbacksample.FieldSimilarity, feedbacksample.FieldThreshold:
			values[i] = new(sql.NullFloat64)
		case feedbacksample.FieldID, feedbacksample.FieldSessionID, feedbacksample.FieldTenantID, feedbacksample.FieldOutcome, feedbacksample.FieldReviewer:
			values[i] = new(sql.NullString)
		case feedbacksample.FieldCreatedAt, feedbacksample.FieldLabeledAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the FeedbackSample fields.
func (_m *FeedbackSample) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case feedbacksample.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case feedbacksample.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case feedbacksample.FieldTenantID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tenant_id", values[i])
			} else if value.Valid {
				_m.TenantID = value.String
			}
		case feedbacksample.FieldSimilarity:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field similarity", values[i])
			} else if value.Valid {
				_m.Similarity = value.Float64
			}
		case feedbacksample.FieldThreshold:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field threshold", values[i])
			} else if value.Valid {
				_m.Threshold = value.Float64
			}
		case feedbacksample.FieldWasAlert:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field was_alert", values[i])
			} else if value.Valid {
				_m.WasAlert = value.Bool
			}
		case feedbacksample.FieldOutcome:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field outcome", values[i])
			} else if value.Valid {
				_m.Outcome = feedbacksample.Outcome(value.String)
			}
		case feedbacksample.FieldReviewer:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reviewer", values[i])
			} else if value.Valid {
				_m.Reviewer = new(string)
				*_m.Reviewer = value.String
			}
		case feedbacksample.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case feedbacksample.FieldLabeledAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field labeled_at", values[i])
			} else if value.Valid {
				_m.LabeledAt = new(time.Time)
				*_m.LabeledAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the FeedbackSample.
// This includes values selected through modifiers, order, etc.
func (_m *FeedbackSample) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySession queries the "session" edge of the FeedbackSample entity.
func (_m *FeedbackSample) QuerySession() *ReconSessionQuery {
	return NewFeedbackSampleClient(_m.config).QuerySession(_m)
}

// Update returns a builder for updating this FeedbackSample.
// Note that you need to call FeedbackSample.Unwrap() before calling this method if this FeedbackSample
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *FeedbackSample) Update() *FeedbackSampleUpdateOne {
	return NewFeedbackSampleClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the FeedbackSample entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *FeedbackSample) Unwrap() *FeedbackSample {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: FeedbackSample is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *FeedbackSample) String() string {
	var builder strings.Builder
	builder.WriteString("FeedbackSample(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("tenant_id=")
	builder.WriteString(_m.TenantID)
	builder.WriteString(", ")
	builder.WriteString("similarity=")
	builder.WriteString(fmt.Sprintf("%v", _m.Similarity))
	builder.WriteString(", ")
	builder.WriteString("threshold=")
	builder.WriteString(fmt.Sprintf("%v", _m.Threshold))
	builder.WriteString(", ")
	builder.WriteString("was_alert=")
	builder.WriteString(fmt.Sprintf("%v", _m.WasAlert))
	builder.WriteString(", ")
	builder.WriteString("outcome=")
	builder.WriteString(fmt.Sprintf("%v", _m.Outcome))
	builder.WriteString(", ")
	if v := _m.Reviewer; v != nil {
		builder.WriteString("reviewer=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.LabeledAt; v != nil {
		builder.WriteString("labeled_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// FeedbackSamples is a parsable slice of FeedbackSample.
type FeedbackSamples []*FeedbackSample
