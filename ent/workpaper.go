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

// Workpaper is the model entity for the Workpaper schema.
type Workpaper struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID string `json:"session_id,omitempty"`
	// Rendered workpaper document
	HTML string `json:"html,omitempty"`
	// Narrative sections keyed by name (objective, procedure, ...)
	Sections map[string]interface{} `json:"sections,omitempty"`
	// CitationCount holds the value of the "citation_count" field.
	CitationCount int `json:"citation_count,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the WorkpaperQuery when eager-loading is set.
	Edges        WorkpaperEdges `json:"edges"`
	selectValues sql.SelectValues
}

// WorkpaperEdges holds the relations/edges for other nodes in the graph.
type WorkpaperEdges struct {
	// Session holds the value of the session edge.
	Session *ReconSession `json:"session,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// SessionOrErr returns the Session value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e WorkpaperEdges) SessionOrErr() (*ReconSession, error) {
	if e.Session != nil {
		return e.Session, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: reconsession.Label}
	}
	return nil, &NotLoadedError{edge: "session"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Workpaper) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case workpaper.FieldSections:
			values[i] = new([]byte)
		case workpaper.FieldCitationCount:
			values[i] = new(sql.NullInt64)
		case workpaper.FieldID, workpaper.FieldSessionID, workpaper.FieldHTML:
			values[i] = new(sql.NullString)
		case workpaper.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Workpaper fields.
func (_m *Workpaper) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case workpaper.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case workpaper.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case workpaper.FieldHTML:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field html", values[i])
			} else if value.Valid {
				_m.HTML = value.String
			}
		case workpaper.FieldSections:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field sections", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Sections); err != nil {
					return fmt.Errorf("unmarshal field sections: %w", err)
				}
			}
		case workpaper.FieldCitationCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field citation_count", values[i])
			} else if value.Valid {
				_m.CitationCount = int(value.Int64)
			}
		case workpaper.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Workpaper.
// This includes values selected through modifiers, order, etc.
func (_m *Workpaper) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySession queries the "session" edge of the Workpaper entity.
func (_m *Workpaper) QuerySession() *ReconSessionQuery {
	return NewWorkpaperClient(_m.config).QuerySession(_m)
}

// Update returns a builder for updating this Workpaper.
// Note that you need to call Workpaper.Unwrap() before calling this method if this Workpaper
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Workpaper) Update() *WorkpaperUpdateOne {
	return NewWorkpaperClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Workpaper entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Workpaper) Unwrap() *Workpaper {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Workpaper is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Workpaper) String() string {
	var builder strings.Builder
	builder.WriteString("Workpaper(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("html=")
	builder.WriteString(_m.HTML)
	builder.WriteString(", ")
	builder.WriteString("sections=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sections))
	builder.WriteString(", ")
	builder.WriteString("citation_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.CitationCount))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Workpapers is a parsable slice of Workpaper.
type Workpapers []*Workpaper
