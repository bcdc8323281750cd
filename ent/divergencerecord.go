// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/procureguard/trimatch/ent/divergencerecord"
	"github.com/procureguard/trimatch/ent/reconsession"
)

// DivergenceRecord is the model entity for the DivergenceRecord schema.
type DivergenceRecord struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID string `json:"session_id,omitempty"`
	// Denormalized for per-tenant threshold review queries
	TenantID string `json:"tenant_id,omitempty"`
	// Similarity holds the value of the "similarity" field.
	Similarity float64 `json:"similarity,omitempty"`
	// Tenant threshold in force when the measurement ran
	Threshold float64 `json:"threshold,omitempty"`
	// AlertTriggered holds the value of the "alert_triggered" field.
	AlertTriggered bool `json:"alert_triggered,omitempty"`
	// Why the alert fired or was withheld, e.g. SIMILARITY_BELOW_THRESHOLD
	Reason *string `json:"reason,omitempty"`
	// Vectors came from the deterministic fallback provider
	Degraded bool `json:"degraded,omitempty"`
	// Literal rewrites applied to the shadow context
	Perturbations []map[string]interface{} `json:"perturbations,omitempty"`
	// First line of the primary reasoning, for audit display
	PrimarySummary *string `json:"primary_summary,omitempty"`
	// ShadowSummary holds the value of the "shadow_summary" field.
	ShadowSummary *string `json:"shadow_summary,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the DivergenceRecordQuery when eager-loading is set.
	Edges        DivergenceRecordEdges `json:"edges"`
	selectValues sql.SelectValues
}

// DivergenceRecordEdges holds the relations/edges for other nodes in the graph.
type DivergenceRecordEdges struct {
	// Session holds the value of the session edge.
	Session *ReconSession `json:"session,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// SessionOrErr returns the Session value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e DivergenceRecordEdges) SessionOrErr() (*ReconSession, error) {
	if e.Session != nil {
		return e.Session, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: reconsession.Label}
	}
	return nil, &NotLoadedError{edge: "session"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DivergenceRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case divergencerecord.FieldPerturbations:
			values[i] = new([]byte)
		case divergencerecord.FieldAlertTriggered, divergencerecord.FieldDegraded:
			values[i] = new(sql.NullBool)
		case divergencerecord.FieldSimilarity, divergencerecord.FieldThreshold:
			values[i] = new(sql.NullFloat64)
		case divergencerecord.FieldID, divergencerecord.FieldSessionID, divergencerecord.FieldTenantID, divergencerecord.FieldReason, divergencerecord.FieldPrimarySummary, divergencerecord.FieldShadowSummary:
			values[i] = new(sql.NullString)
		case divergencerecord.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DivergenceRecord fields.
func (_m *DivergenceRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case divergencerecord.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case divergencerecord.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case divergencerecord.FieldTenantID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tenant_id", values[i])
			} else if value.Valid {
				_m.TenantID = value.String
			}
		case divergencerecord.FieldSimilarity:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field similarity", values[i])
			} else if value.Valid {
				_m.Similarity = value.Float64
			}
		case divergencerecord.FieldThreshold:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field threshold", values[i])
			} else if value.Valid {
				_m.Threshold = value.Float64
			}
		case divergencerecord.FieldAlertTriggered:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field alert_triggered", values[i])
			} else if value.Valid {
				_m.AlertTriggered = value.Bool
			}
		case divergencerecord.FieldReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reason", values[i])
			} else if value.Valid {
				_m.Reason = new(string)
				*_m.Reason = value.String
			}
		case divergencerecord.FieldDegraded:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field degraded", values[i])
			} else if value.Valid {
				_m.Degraded = value.Bool
			}
		case divergencerecord.FieldPerturbations:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field perturbations", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Perturbations); err != nil {
					return fmt.Errorf("unmarshal field perturbations: %w", err)
				}
			}
		case divergencerecord.FieldPrimarySummary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field primary_summary", values[i])
			} else if value.Valid {
				_m.PrimarySummary = new(string)
				*_m.PrimarySummary = value.String
			}
		case divergencerecord.FieldShadowSummary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field shadow_summary", values[i])
			} else if value.Valid {
				_m.ShadowSummary = new(string)
				*_m.ShadowSummary = value.String
			}
		case divergencerecord.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the DivergenceRecord.
// This includes values selected through modifiers, order, etc.
func (_m *DivergenceRecord) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySession queries the "session" edge of the DivergenceRecord entity.
func (_m *DivergenceRecord) QuerySession() *ReconSessionQuery {
	return NewDivergenceRecordClient(_m.config).QuerySession(_m)
}

// Update returns a builder for updating this DivergenceRecord.
// Note that you need to call DivergenceRecord.Unwrap() before calling this method if this DivergenceRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DivergenceRecord) Update() *DivergenceRecordUpdateOne {
	return NewDivergenceRecordClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DivergenceRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DivergenceRecord) Unwrap() *DivergenceRecord {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: DivergenceRecord is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DivergenceRecord) String() string {
	var builder strings.Builder
	builder.WriteString("DivergenceRecord(")
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
	builder.WriteString("alert_triggered=")
	builder.WriteString(fmt.Sprintf("%v", _m.AlertTriggered))
	builder.WriteString(", ")
	if v := _m.Reason; v != nil {
		builder.WriteString("reason=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("degraded=")
	builder.WriteString(fmt.Sprintf("%v", _m.Degraded))
	builder.WriteString(", ")
	builder.WriteString("perturbations=")
	builder.WriteString(fmt.Sprintf("%v", _m.Perturbations))
	builder.WriteString(", ")
	if v := _m.PrimarySummary; v != nil {
		builder.WriteString("primary_summary=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ShadowSummary; v != nil {
		builder.WriteString("shadow_summary=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// DivergenceRecords is a parsable slice of DivergenceRecord.
type DivergenceRecords []*DivergenceRecord
