// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/procureguard/trimatch/ent/divergencerecord"
	"github.com/procureguard/trimatch/ent/feedbacksample"
	"github.com/procureguard/trimatch/ent/predicate"
	"github.com/procureguard/trimatch/ent/progressevent"
	"github.com/procureguard/trimatch/ent/reconsession"
	"github.com/procureguard/trimatch/ent/stageexecution"
	"github.com/procureguard/trimatch/ent/workpaper"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeDivergenceRecord = "DivergenceRecord"
	TypeFeedbackSample   = "FeedbackSample"
	TypeProgressEvent    = "ProgressEvent"
	TypeReconSession     = "ReconSession"
	TypeStageExecution   = "StageExecution"
	TypeWorkpaper        = "Workpaper"
)

// DivergenceRecordMutation represents an operation that mutates the DivergenceRecord nodes in the graph.
type DivergenceRecordMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	tenant_id           *string
	similarity          *float64
	addsimilarity       *float64
	threshold           *float64
	addthreshold        *float64
	alert_triggered     *bool
	reason              *string
	degraded            *bool
	perturbations       *[]map[string]interface{}
	appendperturbations []map[string]interface{}
	primary_summary     *string
	shadow_summary      *string
	created_at          *time.Time
	clearedFields       map[string]struct{}
	session             *string
	clearedsession      bool
	done                bool
	oldValue            func(context.Context) (*DivergenceRecord, error)
	predicates          []predicate.DivergenceRecord
}

var _ ent.Mutation = (*DivergenceRecordMutation)(nil)

// divergencerecordOption allows management of the mutation configuration using functional options.
type divergencerecordOption func(*DivergenceRecordMutation)

// newDivergenceRecordMutation creates new mutation for the DivergenceRecord entity.
func newDivergenceRecordMutation(c config, op Op, opts ...divergencerecordOption) *DivergenceRecordMutation {
	m := &DivergenceRecordMutation{
		config:        c,
		op:            op,
		typ:           TypeDivergenceRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDivergenceRecordID sets the ID field of the mutation.
func withDivergenceRecordID(id string) divergencerecordOption {
	return func(m *DivergenceRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *DivergenceRecord
		)
		m.oldValue = func(ctx context.Context) (*DivergenceRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DivergenceRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDivergenceRecord sets the old DivergenceRecord of the mutation.
func withDivergenceRecord(node *DivergenceRecord) divergencerecordOption {
	return func(m *DivergenceRecordMutation) {
		m.oldValue = func(context.Context) (*DivergenceRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DivergenceRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DivergenceRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of DivergenceRecord entities.
func (m *DivergenceRecordMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DivergenceRecordMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DivergenceRecordMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DivergenceRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *DivergenceRecordMutation) SetSessionID(s string) {
	m.session = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *DivergenceRecordMutation) SessionID() (r string, exists bool) {
	v := m.session
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the DivergenceRecord entity.
// If the DivergenceRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DivergenceRecordMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *DivergenceRecordMutation) ResetSessionID() {
	m.session = nil
}

// SetTenantID sets the "tenant_id" field.
func (m *DivergenceRecordMutation) SetTenantID(s string) {
	m.tenant_id = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *DivergenceRecordMutation) TenantID() (r string, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the DivergenceRecord entity.
// If the DivergenceRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DivergenceRecordMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *DivergenceRecordMutation) ResetTenantID() {
	m.tenant_id = nil
}

// SetSimilarity sets the "similarity" field.
func (m *DivergenceRecordMutation) SetSimilarity(f float64) {
	m.similarity = &f
	m.addsimilarity = nil
}

// Similarity returns the value of the "similarity" field in the mutation.
func (m *DivergenceRecordMutation) Similarity() (r float64, exists bool) {
	v := m.similarity
	if v == nil {
		return
	}
	return *v, true
}

// OldSimilarity returns the old "similarity" field's value of the DivergenceRecord entity.
// If the DivergenceRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DivergenceRecordMutation) OldSimilarity(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSimilarity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSimilarity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSimilarity: %w", err)
	}
	return oldValue.Similarity, nil
}

// AddSimilarity adds f to the "similarity" field.
func (m *DivergenceRecordMutation) AddSimilarity(f float64) {
	if m.addsimilarity != nil {
		*m.addsimilarity += f
	} else {
		m.addsimilarity = &f
	}
}

// AddedSimilarity returns the value that was added to the "similarity" field in this mutation.
func (m *DivergenceRecordMutation) AddedSimilarity() (r float64, exists bool) {
	v := m.addsimilarity
	if v == nil {
		return
	}
	return *v, true
}

// ResetSimilarity resets all changes to the "similarity" field.
func (m *DivergenceRecordMutation) ResetSimilarity() {
	m.similarity = nil
	m.addsimilarity = nil
}

// SetThreshold sets the "threshold" field.
func (m *DivergenceRecordMutation) SetThreshold(f float64) {
	m.threshold = &f
	m.addthreshold = nil
}

// Threshold returns the value of the "threshold" field in the mutation.
func (m *DivergenceRecordMutation) Threshold() (r float64, exists bool) {
	v := m.threshold
	if v == nil {
		return
	}
	return *v, true
}

// OldThreshold returns the old "threshold" field's value of the DivergenceRecord entity.
// If the DivergenceRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DivergenceRecordMutation) OldThreshold(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldThreshold is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldThreshold requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldThreshold: %w", err)
	}
	return oldValue.Threshold, nil
}

// AddThreshold adds f to the "threshold" field.
func (m *DivergenceRecordMutation) AddThreshold(f float64) {
	if m.addthreshold != nil {
		*m.addthreshold += f
	} else {
		m.addthreshold = &f
	}
}

// AddedThreshold returns the value that was added to the "threshold" field in this mutation.
func (m *DivergenceRecordMutation) AddedThreshold() (r float64, exists bool) {
	v := m.addthreshold
	if v == nil {
		return
	}
	return *v, true
}

// ResetThreshold resets all changes to the "threshold" field.
func (m *DivergenceRecordMutation) ResetThreshold() {
	m.threshold = nil
	m.addthreshold = nil
}

// SetAlertTriggered sets the "alert_triggered" field.
func (m *DivergenceRecordMutation) SetAlertTriggered(b bool) {
	m.alert_triggered = &b
}

// AlertTriggered returns the value of the "alert_triggered" field in the mutation.
func (m *DivergenceRecordMutation) AlertTriggered() (r bool, exists bool) {
	v := m.alert_triggered
	if v == nil {
		return
	}
	return *v, true
}

// OldAlertTriggered returns the old "alert_triggered" field's value of the DivergenceRecord entity.
// If the DivergenceRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DivergenceRecordMutation) OldAlertTriggered(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAlertTriggered is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAlertTriggered requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAlertTriggered: %w", err)
	}
	return oldValue.AlertTriggered, nil
}

// ResetAlertTriggered resets all changes to the "alert_triggered" field.
func (m *DivergenceRecordMutation) ResetAlertTriggered() {
	m.alert_triggered = nil
}

// SetReason sets the "reason" field.
func (m *DivergenceRecordMutation) SetReason(s string) {
	m.reason = &s
}

// Reason returns the value of the "reason" field in the mutation.
func (m *DivergenceRecordMutation) Reason() (r string, exists bool) {
	v := m.reason
	if v == nil {
		return
	}
	return *v, true
}

// OldReason returns the old "reason" field's value of the DivergenceRecord entity.
// If the DivergenceRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DivergenceRecordMutation) OldReason(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReason: %w", err)
	}
	return oldValue.Reason, nil
}

// ClearReason clears the value of the "reason" field.
func (m *DivergenceRecordMutation) ClearReason() {
	m.reason = nil
	m.clearedFields[divergencerecord.FieldReason] = struct{}{}
}

// ReasonCleared returns if the "reason" field was cleared in this mutation.
func (m *DivergenceRecordMutation) ReasonCleared() bool {
	_, ok := m.clearedFields[divergencerecord.FieldReason]
	return ok
}

// ResetReason resets all changes to the "reason" field.
func (m *DivergenceRecordMutation) ResetReason() {
	m.reason = nil
	delete(m.clearedFields, divergencerecord.FieldReason)
}

// SetDegraded sets the "degraded" field.
func (m *DivergenceRecordMutation) SetDegraded(b bool) {
	m.degraded = &b
}

// Degraded returns the value of the "degraded" field in the mutation.
func (m *DivergenceRecordMutation) Degraded() (r bool, exists bool) {
	v := m.degraded
	if v == nil {
		return
	}
	return *v, true
}

// OldDegraded returns the old "degraded" field's value of the DivergenceRecord entity.
// If the DivergenceRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DivergenceRecordMutation) OldDegraded(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDegraded is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDegraded requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDegraded: %w", err)
	}
	return oldValue.Degraded, nil
}

// ResetDegraded resets all changes to the "degraded" field.
func (m *DivergenceRecordMutation) ResetDegraded() {
	m.degraded = nil
}

// SetPerturbations sets the "perturbations" field.
func (m *DivergenceRecordMutation) SetPerturbations(value []map[string]interface{}) {
	m.perturbations = &value
	m.appendperturbations = nil
}

// Perturbations returns the value of the "perturbations" field in the mutation.
func (m *DivergenceRecordMutation) Perturbations() (r []map[string]interface{}, exists bool) {
	v := m.perturbations
	if v == nil {
		return
	}
	return *v, true
}

// OldPerturbations returns the old "perturbations" field's value of the DivergenceRecord entity.
// If the DivergenceRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DivergenceRecordMutation) OldPerturbations(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPerturbations is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPerturbations requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPerturbations: %w", err)
	}
	return oldValue.Perturbations, nil
}

// AppendPerturbations adds value to the "perturbations" field.
func (m *DivergenceRecordMutation) AppendPerturbations(value []map[string]interface{}) {
	m.appendperturbations = append(m.appendperturbations, value...)
}

// AppendedPerturbations returns the list of values that were appended to the "perturbations" field in this mutation.
func (m *DivergenceRecordMutation) AppendedPerturbations() ([]map[string]interface{}, bool) {
	if len(m.appendperturbations) == 0 {
		return nil, false
	}
	return m.appendperturbations, true
}

// ClearPerturbations clears the value of the "perturbations" field.
func (m *DivergenceRecordMutation) ClearPerturbations() {
	m.perturbations = nil
	m.appendperturbations = nil
	m.clearedFields[divergencerecord.FieldPerturbations] = struct{}{}
}

// PerturbationsCleared returns if the "perturbations" field was cleared in this mutation.
func (m *DivergenceRecordMutation) PerturbationsCleared() bool {
	_, ok := m.clearedFields[divergencerecord.FieldPerturbations]
	return ok
}

// ResetPerturbations resets all changes to the "perturbations" field.
func (m *DivergenceRecordMutation) ResetPerturbations() {
	m.perturbations = nil
	m.appendperturbations = nil
	delete(m.clearedFields, divergencerecord.FieldPerturbations)
}

// SetPrimarySummary sets the "primary_summary" field.
func (m *DivergenceRecordMutation) SetPrimarySummary(s string) {
	m.primary_summary = &s
}

// PrimarySummary returns the value of the "primary_summary" field in the mutation.
func (m *DivergenceRecordMutation) PrimarySummary() (r string, exists bool) {
	v := m.primary_summary
	if v == nil {
		return
	}
	return *v, true
}

// OldPrimarySummary returns the old "primary_summary" field's value of the DivergenceRecord entity.
// If the DivergenceRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DivergenceRecordMutation) OldPrimarySummary(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrimarySummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrimarySummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrimarySummary: %w", err)
	}
	return oldValue.PrimarySummary, nil
}

// ClearPrimarySummary clears the value of the "primary_summary" field.
func (m *DivergenceRecordMutation) ClearPrimarySummary() {
	m.primary_summary = nil
	m.clearedFields[divergencerecord.FieldPrimarySummary] = struct{}{}
}

// PrimarySummaryCleared returns if the "primary_summary" field was cleared in this mutation.
func (m *DivergenceRecordMutation) PrimarySummaryCleared() bool {
	_, ok := m.clearedFields[divergencerecord.FieldPrimarySummary]
	return ok
}

// ResetPrimarySummary resets all changes to the "primary_summary" field.
func (m *DivergenceRecordMutation) ResetPrimarySummary() {
	m.primary_summary = nil
	delete(m.clearedFields, divergencerecord.FieldPrimarySummary)
}

// SetShadowSummary sets the "shadow_summary" field.
func (m *DivergenceRecordMutation) SetShadowSummary(s string) {
	m.shadow_summary = &s
}

// ShadowSummary returns the value of the "shadow_summary" field in the mutation.
func (m *DivergenceRecordMutation) ShadowSummary() (r string, exists bool) {
	v := m.shadow_summary
	if v == nil {
		return
	}
	return *v, true
}

// OldShadowSummary returns the old "shadow_summary" field's value of the DivergenceRecord entity.
// If the DivergenceRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DivergenceRecordMutation) OldShadowSummary(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldShadowSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldShadowSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldShadowSummary: %w", err)
	}
	return oldValue.ShadowSummary, nil
}

// ClearShadowSummary clears the value of the "shadow_summary" field.
func (m *DivergenceRecordMutation) ClearShadowSummary() {
	m.shadow_summary = nil
	m.clearedFields[divergencerecord.FieldShadowSummary] = struct{}{}
}

// ShadowSummaryCleared returns if the "shadow_summary" field was cleared in this mutation.
func (m *DivergenceRecordMutation) ShadowSummaryCleared() bool {
	_, ok := m.clearedFields[divergencerecord.FieldShadowSummary]
	return ok
}

// ResetShadowSummary resets all changes to the "shadow_summary" field.
func (m *DivergenceRecordMutation) ResetShadowSummary() {
	m.shadow_summary = nil
	delete(m.clearedFields, divergencerecord.FieldShadowSummary)
}

// SetCreatedAt sets the "created_at" field.
func (m *DivergenceRecordMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DivergenceRecordMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the DivergenceRecord entity.
// If the DivergenceRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DivergenceRecordMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DivergenceRecordMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearSession clears the "session" edge to the ReconSession entity.
func (m *DivergenceRecordMutation) ClearSession() {
	m.clearedsession = true
	m.clearedFields[divergencerecord.FieldSessionID] = struct{}{}
}

// SessionCleared reports if the "session" edge to the ReconSession entity was cleared.
func (m *DivergenceRecordMutation) SessionCleared() bool {
	return m.clearedsession
}

// SessionIDs returns the "session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SessionID instead. It exists only for internal usage by the builders.
func (m *DivergenceRecordMutation) SessionIDs() (ids []string) {
	if id := m.session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSession resets all changes to the "session" edge.
func (m *DivergenceRecordMutation) ResetSession() {
	m.session = nil
	m.clearedsession = false
}

// Where appends a list predicates to the DivergenceRecordMutation builder.
func (m *DivergenceRecordMutation) Where(ps ...predicate.DivergenceRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DivergenceRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DivergenceRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DivergenceRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DivergenceRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DivergenceRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DivergenceRecord).
func (m *DivergenceRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DivergenceRecordMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.session != nil {
		fields = append(fields, divergencerecord.FieldSessionID)
	}
	if m.tenant_id != nil {
		fields = append(fields, divergencerecord.FieldTenantID)
	}
	if m.similarity != nil {
		fields = append(fields, divergencerecord.FieldSimilarity)
	}
	if m.threshold != nil {
		fields = append(fields, divergencerecord.FieldThreshold)
	}
	if m.alert_triggered != nil {
		fields = append(fields, divergencerecord.FieldAlertTriggered)
	}
	if m.reason != nil {
		fields = append(fields, divergencerecord.FieldReason)
	}
	if m.degraded != nil {
		fields = append(fields, divergencerecord.FieldDegraded)
	}
	if m.perturbations != nil {
		fields = append(fields, divergencerecord.FieldPerturbations)
	}
	if m.primary_summary != nil {
		fields = append(fields, divergencerecord.FieldPrimarySummary)
	}
	if m.shadow_summary != nil {
		fields = append(fields, divergencerecord.FieldShadowSummary)
	}
	if m.created_at != nil {
		fields = append(fields, divergencerecord.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DivergenceRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case divergencerecord.FieldSessionID:
		return m.SessionID()
	case divergencerecord.FieldTenantID:
		return m.TenantID()
	case divergencerecord.FieldSimilarity:
		return m.Similarity()
	case divergencerecord.FieldThreshold:
		return m.Threshold()
	case divergencerecord.FieldAlertTriggered:
		return m.AlertTriggered()
	case divergencerecord.FieldReason:
		return m.Reason()
	case divergencerecord.FieldDegraded:
		return m.Degraded()
	case divergencerecord.FieldPerturbations:
		return m.Perturbations()
	case divergencerecord.FieldPrimarySummary:
		return m.PrimarySummary()
	case divergencerecord.FieldShadowSummary:
		return m.ShadowSummary()
	case divergencerecord.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DivergenceRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case divergencerecord.FieldSessionID:
		return m.OldSessionID(ctx)
	case divergencerecord.FieldTenantID:
		return m.OldTenantID(ctx)
	case divergencerecord.FieldSimilarity:
		return m.OldSimilarity(ctx)
	case divergencerecord.FieldThreshold:
		return m.OldThreshold(ctx)
	case divergencerecord.FieldAlertTriggered:
		return m.OldAlertTriggered(ctx)
	case divergencerecord.FieldReason:
		return m.OldReason(ctx)
	case divergencerecord.FieldDegraded:
		return m.OldDegraded(ctx)
	case divergencerecord.FieldPerturbations:
		return m.OldPerturbations(ctx)
	case divergencerecord.FieldPrimarySummary:
		return m.OldPrimarySummary(ctx)
	case divergencerecord.FieldShadowSummary:
		return m.OldShadowSummary(ctx)
	case divergencerecord.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown DivergenceRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DivergenceRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case divergencerecord.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case divergencerecord.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case divergencerecord.FieldSimilarity:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSimilarity(v)
		return nil
	case divergencerecord.FieldThreshold:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetThreshold(v)
		return nil
	case divergencerecord.FieldAlertTriggered:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAlertTriggered(v)
		return nil
	case divergencerecord.FieldReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReason(v)
		return nil
	case divergencerecord.FieldDegraded:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDegraded(v)
		return nil
	case divergencerecord.FieldPerturbations:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPerturbations(v)
		return nil
	case divergencerecord.FieldPrimarySummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrimarySummary(v)
		return nil
	case divergencerecord.FieldShadowSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetShadowSummary(v)
		return nil
	case divergencerecord.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown DivergenceRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DivergenceRecordMutation) AddedFields() []string {
	var fields []string
	if m.addsimilarity != nil {
		fields = append(fields, divergencerecord.FieldSimilarity)
	}
	if m.addthreshold != nil {
		fields = append(fields, divergencerecord.FieldThreshold)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DivergenceRecordMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case divergencerecord.FieldSimilarity:
		return m.AddedSimilarity()
	case divergencerecord.FieldThreshold:
		return m.AddedThreshold()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DivergenceRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	case divergencerecord.FieldSimilarity:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSimilarity(v)
		return nil
	case divergencerecord.FieldThreshold:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddThreshold(v)
		return nil
	}
	return fmt.Errorf("unknown DivergenceRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DivergenceRecordMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(divergencerecord.FieldReason) {
		fields = append(fields, divergencerecord.FieldReason)
	}
	if m.FieldCleared(divergencerecord.FieldPerturbations) {
		fields = append(fields, divergencerecord.FieldPerturbations)
	}
	if m.FieldCleared(divergencerecord.FieldPrimarySummary) {
		fields = append(fields, divergencerecord.FieldPrimarySummary)
	}
	if m.FieldCleared(divergencerecord.FieldShadowSummary) {
		fields = append(fields, divergencerecord.FieldShadowSummary)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DivergenceRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DivergenceRecordMutation) ClearField(name string) error {
	switch name {
	case divergencerecord.FieldReason:
		m.ClearReason()
		return nil
	case divergencerecord.FieldPerturbations:
		m.ClearPerturbations()
		return nil
	case divergencerecord.FieldPrimarySummary:
		m.ClearPrimarySummary()
		return nil
	case divergencerecord.FieldShadowSummary:
		m.ClearShadowSummary()
		return nil
	}
	return fmt.Errorf("unknown DivergenceRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DivergenceRecordMutation) ResetField(name string) error {
	switch name {
	case divergencerecord.FieldSessionID:
		m.ResetSessionID()
		return nil
	case divergencerecord.FieldTenantID:
		m.ResetTenantID()
		return nil
	case divergencerecord.FieldSimilarity:
		m.ResetSimilarity()
		return nil
	case divergencerecord.FieldThreshold:
		m.ResetThreshold()
		return nil
	case divergencerecord.FieldAlertTriggered:
		m.ResetAlertTriggered()
		return nil
	case divergencerecord.FieldReason:
		m.ResetReason()
		return nil
	case divergencerecord.FieldDegraded:
		m.ResetDegraded()
		return nil
	case divergencerecord.FieldPerturbations:
		m.ResetPerturbations()
		return nil
	case divergencerecord.FieldPrimarySummary:
		m.ResetPrimarySummary()
		return nil
	case divergencerecord.FieldShadowSummary:
		m.ResetShadowSummary()
		return nil
	case divergencerecord.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown DivergenceRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DivergenceRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.session != nil {
		edges = append(edges, divergencerecord.EdgeSession)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DivergenceRecordMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case divergencerecord.EdgeSession:
		if id := m.session; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DivergenceRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DivergenceRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DivergenceRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsession {
		edges = append(edges, divergencerecord.EdgeSession)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DivergenceRecordMutation) EdgeCleared(name string) bool {
	switch name {
	case divergencerecord.EdgeSession:
		return m.clearedsession
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DivergenceRecordMutation) ClearEdge(name string) error {
	switch name {
	case divergencerecord.EdgeSession:
		m.ClearSession()
		return nil
	}
	return fmt.Errorf("unknown DivergenceRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DivergenceRecordMutation) ResetEdge(name string) error {
	switch name {
	case divergencerecord.EdgeSession:
		m.ResetSession()
		return nil
	}
	return fmt.Errorf("unknown DivergenceRecord edge %s", name)
}

// FeedbackSampleMutation represents an operation that mutates the FeedbackSample nodes in the graph.
type FeedbackSampleMutation struct {
	config
	op             Op
	typ            string
	id             *string
	tenant_id      *string
	similarity     *float64
	addsimilarity  *float64
	threshold      *float64
	addthreshold   *float64
	was_alert      *bool
	outcome        *feedbacksample.Outcome
	reviewer       *string
	created_at     *time.Time
	labeled_at     *time.Time
	clearedFields  map[string]struct{}
	session        *string
	clearedsession bool
	done           bool
	oldValue       func(context.Context) (*FeedbackSample, error)
	predicates     []predicate.FeedbackSample
}

var _ ent.Mutation = (*FeedbackSampleMutation)(nil)

// feedbacksampleOption allows management of the mutation configuration using functional options.
type feedbacksampleOption func(*FeedbackSampleMutation)

// newFeedbackSampleMutation creates new mutation for the FeedbackSample entity.
func newFeedbackSampleMutation(c config, op Op, opts ...feedbacksampleOption) *FeedbackSampleMutation {
	m := &FeedbackSampleMutation{
		config:        c,
		op:            op,
		typ:           TypeFeedbackSample,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withFeedbackSampleID sets the ID field of the mutation.
func withFeedbackSampleID(id string) feedbacksampleOption {
	return func(m *FeedbackSampleMutation) {
		var (
			err   error
			once  sync.Once
			value *FeedbackSample
		)
		m.oldValue = func(ctx context.Context) (*FeedbackSample, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().FeedbackSample.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withFeedbackSample sets the old FeedbackSample of the mutation.
func withFeedbackSample(node *FeedbackSample) feedbacksampleOption {
	return func(m *FeedbackSampleMutation) {
		m.oldValue = func(context.Context) (*FeedbackSample, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m FeedbackSampleMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m FeedbackSampleMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of FeedbackSample entities.
func (m *FeedbackSampleMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *FeedbackSampleMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *FeedbackSampleMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().FeedbackSample.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *FeedbackSampleMutation) SetSessionID(s string) {
	m.session = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *FeedbackSampleMutation) SessionID() (r string, exists bool) {
	v := m.session
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the FeedbackSample entity.
// If the FeedbackSample object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeedbackSampleMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *FeedbackSampleMutation) ResetSessionID() {
	m.session = nil
}

// SetTenantID sets the "tenant_id" field.
func (m *FeedbackSampleMutation) SetTenantID(s string) {
	m.tenant_id = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *FeedbackSampleMutation) TenantID() (r string, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the FeedbackSample entity.
// If the FeedbackSample object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeedbackSampleMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *FeedbackSampleMutation) ResetTenantID() {
	m.tenant_id = nil
}

// SetSimilarity sets the "similarity" field.
func (m *FeedbackSampleMutation) SetSimilarity(f float64) {
	m.similarity = &f
	m.addsimilarity = nil
}

// Similarity returns the value of the "similarity" field in the mutation.
func (m *FeedbackSampleMutation) Similarity() (r float64, exists bool) {
	v := m.similarity
	if v == nil {
		return
	}
	return *v, true
}

// OldSimilarity returns the old "similarity" field's value of the FeedbackSample entity.
// If the FeedbackSample object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeedbackSampleMutation) OldSimilarity(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSimilarity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSimilarity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSimilarity: %w", err)
	}
	return oldValue.Similarity, nil
}

// AddSimilarity adds f to the "similarity" field.
func (m *FeedbackSampleMutation) AddSimilarity(f float64) {
	if m.addsimilarity != nil {
		*m.addsimilarity += f
	} else {
		m.addsimilarity = &f
	}
}

// AddedSimilarity returns the value that was added to the "similarity" field in this mutation.
func (m *FeedbackSampleMutation) AddedSimilarity() (r float64, exists bool) {
	v := m.addsimilarity
	if v == nil {
		return
	}
	return *v, true
}

// ResetSimilarity resets all changes to the "similarity" field.
func (m *FeedbackSampleMutation) ResetSimilarity() {
	m.similarity = nil
	m.addsimilarity = nil
}

// SetThreshold sets the "threshold" field.
func (m *FeedbackSampleMutation) SetThreshold(f float64) {
	m.threshold = &f
	m.addthreshold = nil
}

// Threshold returns the value of the "threshold" field in the mutation.
func (m *FeedbackSampleMutation) Threshold() (r float64, exists bool) {
	v := m.threshold
	if v == nil {
		return
	}
	return *v, true
}

// OldThreshold returns the old "threshold" field's value of the FeedbackSample entity.
// If the FeedbackSample object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeedbackSampleMutation) OldThreshold(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldThreshold is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldThreshold requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldThreshold: %w", err)
	}
	return oldValue.Threshold, nil
}

// AddThreshold adds f to the "threshold" field.
func (m *FeedbackSampleMutation) AddThreshold(f float64) {
	if m.addthreshold != nil {
		*m.addthreshold += f
	} else {
		m.addthreshold = &f
	}
}

// AddedThreshold returns the value that was added to the "threshold" field in this mutation.
func (m *FeedbackSampleMutation) AddedThreshold() (r float64, exists bool) {
	v := m.addthreshold
	if v == nil {
		return
	}
	return *v, true
}

// ResetThreshold resets all changes to the "threshold" field.
func (m *FeedbackSampleMutation) ResetThreshold() {
	m.threshold = nil
	m.addthreshold = nil
}

// SetWasAlert sets the "was_alert" field.
func (m *FeedbackSampleMutation) SetWasAlert(b bool) {
	m.was_alert = &b
}

// WasAlert returns the value of the "was_alert" field in the mutation.
func (m *FeedbackSampleMutation) WasAlert() (r bool, exists bool) {
	v := m.was_alert
	if v == nil {
		return
	}
	return *v, true
}

// OldWasAlert returns the old "was_alert" field's value of the FeedbackSample entity.
// If the FeedbackSample object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeedbackSampleMutation) OldWasAlert(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWasAlert is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWasAlert requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWasAlert: %w", err)
	}
	return oldValue.WasAlert, nil
}

// ResetWasAlert resets all changes to the "was_alert" field.
func (m *FeedbackSampleMutation) ResetWasAlert() {
	m.was_alert = nil
}

// SetOutcome sets the "outcome" field.
func (m *FeedbackSampleMutation) SetOutcome(f feedbacksample.Outcome) {
	m.outcome = &f
}

// Outcome returns the value of the "outcome" field in the mutation.
func (m *FeedbackSampleMutation) Outcome() (r feedbacksample.Outcome, exists bool) {
	v := m.outcome
	if v == nil {
		return
	}
	return *v, true
}

// OldOutcome returns the old "outcome" field's value of the FeedbackSample entity.
// If the FeedbackSample object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeedbackSampleMutation) OldOutcome(ctx context.Context) (v feedbacksample.Outcome, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutcome is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutcome requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutcome: %w", err)
	}
	return oldValue.Outcome, nil
}

// ResetOutcome resets all changes to the "outcome" field.
func (m *FeedbackSampleMutation) ResetOutcome() {
	m.outcome = nil
}

// SetReviewer sets the "reviewer" field.
func (m *FeedbackSampleMutation) SetReviewer(s string) {
	m.reviewer = &s
}

// Reviewer returns the value of the "reviewer" field in the mutation.
func (m *FeedbackSampleMutation) Reviewer() (r string, exists bool) {
	v := m.reviewer
	if v == nil {
		return
	}
	return *v, true
}

// OldReviewer returns the old "reviewer" field's value of the FeedbackSample entity.
// If the FeedbackSample object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeedbackSampleMutation) OldReviewer(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReviewer is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReviewer requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReviewer: %w", err)
	}
	return oldValue.Reviewer, nil
}

// ClearReviewer clears the value of the "reviewer" field.
func (m *FeedbackSampleMutation) ClearReviewer() {
	m.reviewer = nil
	m.clearedFields[feedbacksample.FieldReviewer] = struct{}{}
}

// ReviewerCleared returns if the "reviewer" field was cleared in this mutation.
func (m *FeedbackSampleMutation) ReviewerCleared() bool {
	_, ok := m.clearedFields[feedbacksample.FieldReviewer]
	return ok
}

// ResetReviewer resets all changes to the "reviewer" field.
func (m *FeedbackSampleMutation) ResetReviewer() {
	m.reviewer = nil
	delete(m.clearedFields, feedbacksample.FieldReviewer)
}

// SetCreatedAt sets the "created_at" field.
func (m *FeedbackSampleMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *FeedbackSampleMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the FeedbackSample entity.
// If the FeedbackSample object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeedbackSampleMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *FeedbackSampleMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetLabeledAt sets the "labeled_at" field.
func (m *FeedbackSampleMutation) SetLabeledAt(t time.Time) {
	m.labeled_at = &t
}

// LabeledAt returns the value of the "labeled_at" field in the mutation.
func (m *FeedbackSampleMutation) LabeledAt() (r time.Time, exists bool) {
	v := m.labeled_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLabeledAt returns the old "labeled_at" field's value of the FeedbackSample entity.
// If the FeedbackSample object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeedbackSampleMutation) OldLabeledAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLabeledAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLabeledAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLabeledAt: %w", err)
	}
	return oldValue.LabeledAt, nil
}

// ClearLabeledAt clears the value of the "labeled_at" field.
func (m *FeedbackSampleMutation) ClearLabeledAt() {
	m.labeled_at = nil
	m.clearedFields[feedbacksample.FieldLabeledAt] = struct{}{}
}

// LabeledAtCleared returns if the "labeled_at" field was cleared in this mutation.
func (m *FeedbackSampleMutation) LabeledAtCleared() bool {
	_, ok := m.clearedFields[feedbacksample.FieldLabeledAt]
	return ok
}

// ResetLabeledAt resets all changes to the "labeled_at" field.
func (m *FeedbackSampleMutation) ResetLabeledAt() {
	m.labeled_at = nil
	delete(m.clearedFields, feedbacksample.FieldLabeledAt)
}

// ClearSession clears the "session" edge to the ReconSession entity.
func (m *FeedbackSampleMutation) ClearSession() {
	m.clearedsession = true
	m.clearedFields[feedbacksample.FieldSessionID] = struct{}{}
}

// SessionCleared reports if the "session" edge to the ReconSession entity was cleared.
func (m *FeedbackSampleMutation) SessionCleared() bool {
	return m.clearedsession
}

// SessionIDs returns the "session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SessionID instead. It exists only for internal usage by the builders.
func (m *FeedbackSampleMutation) SessionIDs() (ids []string) {
	if id := m.session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSession resets all changes to the "session" edge.
func (m *FeedbackSampleMutation) ResetSession() {
	m.session = nil
	m.clearedsession = false
}

// Where appends a list predicates to the FeedbackSampleMutation builder.
func (m *FeedbackSampleMutation) Where(ps ...predicate.FeedbackSample) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the FeedbackSampleMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *FeedbackSampleMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.FeedbackSample, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *FeedbackSampleMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *FeedbackSampleMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (FeedbackSample).
func (m *FeedbackSampleMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *FeedbackSampleMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.session != nil {
		fields = append(fields, feedbacksample.FieldSessionID)
	}
	if m.tenant_id != nil {
		fields = append(fields, feedbacksample.FieldTenantID)
	}
	if m.similarity != nil {
		fields = append(fields, feedbacksample.FieldSimilarity)
	}
	if m.threshold != nil {
		fields = append(fields, feedbacksample.FieldThreshold)
	}
	if m.was_alert != nil {
		fields = append(fields, feedbacksample.FieldWasAlert)
	}
	if m.outcome != nil {
		fields = append(fields, feedbacksample.FieldOutcome)
	}
	if m.reviewer != nil {
		fields = append(fields, feedbacksample.FieldReviewer)
	}
	if m.created_at != nil {
		fields = append(fields, feedbacksample.FieldCreatedAt)
	}
	if m.labeled_at != nil {
		fields = append(fields, feedbacksample.FieldLabeledAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *FeedbackSampleMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case feedbacksample.FieldSessionID:
		return m.SessionID()
	case feedbacksample.FieldTenantID:
		return m.TenantID()
	case feedbacksample.FieldSimilarity:
		return m.Similarity()
	case feedbacksample.FieldThreshold:
		return m.Threshold()
	case feedbacksample.FieldWasAlert:
		return m.WasAlert()
	case feedbacksample.FieldOutcome:
		return m.Outcome()
	case feedbacksample.FieldReviewer:
		return m.Reviewer()
	case feedbacksample.FieldCreatedAt:
		return m.CreatedAt()
	case feedbacksample.FieldLabeledAt:
		return m.LabeledAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *FeedbackSampleMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case feedbacksample.FieldSessionID:
		return m.OldSessionID(ctx)
	case feedbacksample.FieldTenantID:
		return m.OldTenantID(ctx)
	case feedbacksample.FieldSimilarity:
		return m.OldSimilarity(ctx)
	case feedbacksample.FieldThreshold:
		return m.OldThreshold(ctx)
	case feedbacksample.FieldWasAlert:
		return m.OldWasAlert(ctx)
	case feedbacksample.FieldOutcome:
		return m.OldOutcome(ctx)
	case feedbacksample.FieldReviewer:
		return m.OldReviewer(ctx)
	case feedbacksample.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case feedbacksample.FieldLabeledAt:
		return m.OldLabeledAt(ctx)
	}
	return nil, fmt.Errorf("unknown FeedbackSample field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FeedbackSampleMutation) SetField(name string, value ent.Value) error {
	switch name {
	case feedbacksample.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case feedbacksample.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case feedbacksample.FieldSimilarity:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSimilarity(v)
		return nil
	case feedbacksample.FieldThreshold:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetThreshold(v)
		return nil
	case feedbacksample.FieldWasAlert:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWasAlert(v)
		return nil
	case feedbacksample.FieldOutcome:
		v, ok := value.(feedbacksample.Outcome)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutcome(v)
		return nil
	case feedbacksample.FieldReviewer:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReviewer(v)
		return nil
	case feedbacksample.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case feedbacksample.FieldLabeledAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLabeledAt(v)
		return nil
	}
	return fmt.Errorf("unknown FeedbackSample field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *FeedbackSampleMutation) AddedFields() []string {
	var fields []string
	if m.addsimilarity != nil {
		fields = append(fields, feedbacksample.FieldSimilarity)
	}
	if m.addthreshold != nil {
		fields = append(fields, feedbacksample.FieldThreshold)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *FeedbackSampleMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case feedbacksample.FieldSimilarity:
		return m.AddedSimilarity()
	case feedbacksample.FieldThreshold:
		return m.AddedThreshold()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FeedbackSampleMutation) AddField(name string, value ent.Value) error {
	switch name {
	case feedbacksample.FieldSimilarity:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSimilarity(v)
		return nil
	case feedbacksample.FieldThreshold:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddThreshold(v)
		return nil
	}
	return fmt.Errorf("unknown FeedbackSample numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *FeedbackSampleMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(feedbacksample.FieldReviewer) {
		fields = append(fields, feedbacksample.FieldReviewer)
	}
	if m.FieldCleared(feedbacksample.FieldLabeledAt) {
		fields = append(fields, feedbacksample.FieldLabeledAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *FeedbackSampleMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *FeedbackSampleMutation) ClearField(name string) error {
	switch name {
	case feedbacksample.FieldReviewer:
		m.ClearReviewer()
		return nil
	case feedbacksample.FieldLabeledAt:
		m.ClearLabeledAt()
		return nil
	}
	return fmt.Errorf("unknown FeedbackSample nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *FeedbackSampleMutation) ResetField(name string) error {
	switch name {
	case feedbacksample.FieldSessionID:
		m.ResetSessionID()
		return nil
	case feedbacksample.FieldTenantID:
		m.ResetTenantID()
		return nil
	case feedbacksample.FieldSimilarity:
		m.ResetSimilarity()
		return nil
	case feedbacksample.FieldThreshold:
		m.ResetThreshold()
		return nil
	case feedbacksample.FieldWasAlert:
		m.ResetWasAlert()
		return nil
	case feedbacksample.FieldOutcome:
		m.ResetOutcome()
		return nil
	case feedbacksample.FieldReviewer:
		m.ResetReviewer()
		return nil
	case feedbacksample.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case feedbacksample.FieldLabeledAt:
		m.ResetLabeledAt()
		return nil
	}
	return fmt.Errorf("unknown FeedbackSample field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *FeedbackSampleMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.session != nil {
		edges = append(edges, feedbacksample.EdgeSession)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *FeedbackSampleMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case feedbacksample.EdgeSession:
		if id := m.session; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *FeedbackSampleMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *FeedbackSampleMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *FeedbackSampleMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsession {
		edges = append(edges, feedbacksample.EdgeSession)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *FeedbackSampleMutation) EdgeCleared(name string) bool {
	switch name {
	case feedbacksample.EdgeSession:
		return m.clearedsession
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *FeedbackSampleMutation) ClearEdge(name string) error {
	switch name {
	case feedbacksample.EdgeSession:
		m.ClearSession()
		return nil
	}
	return fmt.Errorf("unknown FeedbackSample unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *FeedbackSampleMutation) ResetEdge(name string) error {
	switch name {
	case feedbacksample.EdgeSession:
		m.ResetSession()
		return nil
	}
	return fmt.Errorf("unknown FeedbackSample edge %s", name)
}

// ProgressEventMutation represents an operation that mutates the ProgressEvent nodes in the graph.
type ProgressEventMutation struct {
	config
	op             Op
	typ            string
	id             *int
	channel        *string
	event_type     *string
	payload        *map[string]interface{}
	created_at     *time.Time
	clearedFields  map[string]struct{}
	session        *string
	clearedsession bool
	done           bool
	oldValue       func(context.Context) (*ProgressEvent, error)
	predicates     []predicate.ProgressEvent
}

var _ ent.Mutation = (*ProgressEventMutation)(nil)

// progresseventOption allows management of the mutation configuration using functional options.
type progresseventOption func(*ProgressEventMutation)

// newProgressEventMutation creates new mutation for the ProgressEvent entity.
func newProgressEventMutation(c config, op Op, opts ...progresseventOption) *ProgressEventMutation {
	m := &ProgressEventMutation{
		config:        c,
		op:            op,
		typ:           TypeProgressEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProgressEventID sets the ID field of the mutation.
func withProgressEventID(id int) progresseventOption {
	return func(m *ProgressEventMutation) {
		var (
			err   error
			once  sync.Once
			value *ProgressEvent
		)
		m.oldValue = func(ctx context.Context) (*ProgressEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ProgressEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProgressEvent sets the old ProgressEvent of the mutation.
func withProgressEvent(node *ProgressEvent) progresseventOption {
	return func(m *ProgressEventMutation) {
		m.oldValue = func(context.Context) (*ProgressEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProgressEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProgressEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProgressEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProgressEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ProgressEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *ProgressEventMutation) SetSessionID(s string) {
	m.session = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *ProgressEventMutation) SessionID() (r string, exists bool) {
	v := m.session
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the ProgressEvent entity.
// If the ProgressEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProgressEventMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *ProgressEventMutation) ResetSessionID() {
	m.session = nil
}

// SetChannel sets the "channel" field.
func (m *ProgressEventMutation) SetChannel(s string) {
	m.channel = &s
}

// Channel returns the value of the "channel" field in the mutation.
func (m *ProgressEventMutation) Channel() (r string, exists bool) {
	v := m.channel
	if v == nil {
		return
	}
	return *v, true
}

// OldChannel returns the old "channel" field's value of the ProgressEvent entity.
// If the ProgressEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProgressEventMutation) OldChannel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChannel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChannel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChannel: %w", err)
	}
	return oldValue.Channel, nil
}

// ResetChannel resets all changes to the "channel" field.
func (m *ProgressEventMutation) ResetChannel() {
	m.channel = nil
}

// SetEventType sets the "event_type" field.
func (m *ProgressEventMutation) SetEventType(s string) {
	m.event_type = &s
}

// EventType returns the value of the "event_type" field in the mutation.
func (m *ProgressEventMutation) EventType() (r string, exists bool) {
	v := m.event_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEventType returns the old "event_type" field's value of the ProgressEvent entity.
// If the ProgressEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProgressEventMutation) OldEventType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventType: %w", err)
	}
	return oldValue.EventType, nil
}

// ResetEventType resets all changes to the "event_type" field.
func (m *ProgressEventMutation) ResetEventType() {
	m.event_type = nil
}

// SetPayload sets the "payload" field.
func (m *ProgressEventMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *ProgressEventMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the ProgressEvent entity.
// If the ProgressEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProgressEventMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ResetPayload resets all changes to the "payload" field.
func (m *ProgressEventMutation) ResetPayload() {
	m.payload = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ProgressEventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ProgressEventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ProgressEvent entity.
// If the ProgressEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProgressEventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ProgressEventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearSession clears the "session" edge to the ReconSession entity.
func (m *ProgressEventMutation) ClearSession() {
	m.clearedsession = true
	m.clearedFields[progressevent.FieldSessionID] = struct{}{}
}

// SessionCleared reports if the "session" edge to the ReconSession entity was cleared.
func (m *ProgressEventMutation) SessionCleared() bool {
	return m.clearedsession
}

// SessionIDs returns the "session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SessionID instead. It exists only for internal usage by the builders.
func (m *ProgressEventMutation) SessionIDs() (ids []string) {
	if id := m.session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSession resets all changes to the "session" edge.
func (m *ProgressEventMutation) ResetSession() {
	m.session = nil
	m.clearedsession = false
}

// Where appends a list predicates to the ProgressEventMutation builder.
func (m *ProgressEventMutation) Where(ps ...predicate.ProgressEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProgressEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProgressEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ProgressEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProgressEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProgressEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ProgressEvent).
func (m *ProgressEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProgressEventMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.session != nil {
		fields = append(fields, progressevent.FieldSessionID)
	}
	if m.channel != nil {
		fields = append(fields, progressevent.FieldChannel)
	}
	if m.event_type != nil {
		fields = append(fields, progressevent.FieldEventType)
	}
	if m.payload != nil {
		fields = append(fields, progressevent.FieldPayload)
	}
	if m.created_at != nil {
		fields = append(fields, progressevent.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProgressEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case progressevent.FieldSessionID:
		return m.SessionID()
	case progressevent.FieldChannel:
		return m.Channel()
	case progressevent.FieldEventType:
		return m.EventType()
	case progressevent.FieldPayload:
		return m.Payload()
	case progressevent.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProgressEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case progressevent.FieldSessionID:
		return m.OldSessionID(ctx)
	case progressevent.FieldChannel:
		return m.OldChannel(ctx)
	case progressevent.FieldEventType:
		return m.OldEventType(ctx)
	case progressevent.FieldPayload:
		return m.OldPayload(ctx)
	case progressevent.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ProgressEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProgressEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case progressevent.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case progressevent.FieldChannel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChannel(v)
		return nil
	case progressevent.FieldEventType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventType(v)
		return nil
	case progressevent.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case progressevent.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ProgressEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProgressEventMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProgressEventMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProgressEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ProgressEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProgressEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProgressEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProgressEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ProgressEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProgressEventMutation) ResetField(name string) error {
	switch name {
	case progressevent.FieldSessionID:
		m.ResetSessionID()
		return nil
	case progressevent.FieldChannel:
		m.ResetChannel()
		return nil
	case progressevent.FieldEventType:
		m.ResetEventType()
		return nil
	case progressevent.FieldPayload:
		m.ResetPayload()
		return nil
	case progressevent.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ProgressEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProgressEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.session != nil {
		edges = append(edges, progressevent.EdgeSession)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProgressEventMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case progressevent.EdgeSession:
		if id := m.session; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProgressEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProgressEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProgressEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsession {
		edges = append(edges, progressevent.EdgeSession)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProgressEventMutation) EdgeCleared(name string) bool {
	switch name {
	case progressevent.EdgeSession:
		return m.clearedsession
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProgressEventMutation) ClearEdge(name string) error {
	switch name {
	case progressevent.EdgeSession:
		m.ClearSession()
		return nil
	}
	return fmt.Errorf("unknown ProgressEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProgressEventMutation) ResetEdge(name string) error {
	switch name {
	case progressevent.EdgeSession:
		m.ResetSession()
		return nil
	}
	return fmt.Errorf("unknown ProgressEvent edge %s", name)
}

// ReconSessionMutation represents an operation that mutates the ReconSession nodes in the graph.
type ReconSessionMutation struct {
	config
	op                        Op
	typ                       string
	id                        *string
	tenant_id                 *string
	document_bundle           *string
	vendor_name               *string
	invoice_number            *string
	status                    *reconsession.Status
	created_at                *time.Time
	started_at                *time.Time
	completed_at              *time.Time
	error_message             *string
	current_stage             *string
	verdict                   *map[string]interface{}
	verdict_summary           *string
	state_errors              *[]map[string]interface{}
	appendstate_errors        []map[string]interface{}
	session_metadata          *map[string]interface{}
	pod_id                    *string
	last_heartbeat_at         *time.Time
	deleted_at                *time.Time
	clearedFields             map[string]struct{}
	stage_executions          map[string]struct{}
	removedstage_executions   map[string]struct{}
	clearedstage_executions   bool
	divergence_records        map[string]struct{}
	removeddivergence_records map[string]struct{}
	cleareddivergence_records bool
	workpaper                 *string
	clearedworkpaper          bool
	progress_events           map[int]struct{}
	removedprogress_events    map[int]struct{}
	clearedprogress_events    bool
	feedback_samples          map[string]struct{}
	removedfeedback_samples   map[string]struct{}
	clearedfeedback_samples   bool
	done                      bool
	oldValue                  func(context.Context) (*ReconSession, error)
	predicates                []predicate.ReconSession
}

var _ ent.Mutation = (*ReconSessionMutation)(nil)

// reconsessionOption allows management of the mutation configuration using functional options.
type reconsessionOption func(*ReconSessionMutation)

// newReconSessionMutation creates new mutation for the ReconSession entity.
func newReconSessionMutation(c config, op Op, opts ...reconsessionOption) *ReconSessionMutation {
	m := &ReconSessionMutation{
		config:        c,
		op:            op,
		typ:           TypeReconSession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withReconSessionID sets the ID field of the mutation.
func withReconSessionID(id string) reconsessionOption {
	return func(m *ReconSessionMutation) {
		var (
			err   error
			once  sync.Once
			value *ReconSession
		)
		m.oldValue = func(ctx context.Context) (*ReconSession, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ReconSession.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withReconSession sets the old ReconSession of the mutation.
func withReconSession(node *ReconSession) reconsessionOption {
	return func(m *ReconSessionMutation) {
		m.oldValue = func(context.Context) (*ReconSession, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ReconSessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ReconSessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ReconSession entities.
func (m *ReconSessionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ReconSessionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ReconSessionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ReconSession.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *ReconSessionMutation) SetTenantID(s string) {
	m.tenant_id = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *ReconSessionMutation) TenantID() (r string, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the ReconSession entity.
// If the ReconSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReconSessionMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *ReconSessionMutation) ResetTenantID() {
	m.tenant_id = nil
}

// SetDocumentBundle sets the "document_bundle" field.
func (m *ReconSessionMutation) SetDocumentBundle(s string) {
	m.document_bundle = &s
}

// DocumentBundle returns the value of the "document_bundle" field in the mutation.
func (m *ReconSessionMutation) DocumentBundle() (r string, exists bool) {
	v := m.document_bundle
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentBundle returns the old "document_bundle" field's value of the ReconSession entity.
// If the ReconSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReconSessionMutation) OldDocumentBundle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentBundle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentBundle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentBundle: %w", err)
	}
	return oldValue.DocumentBundle, nil
}

// ResetDocumentBundle resets all changes to the "document_bundle" field.
func (m *ReconSessionMutation) ResetDocumentBundle() {
	m.document_bundle = nil
}

// SetVendorName sets the "vendor_name" field.
func (m *ReconSessionMutation) SetVendorName(s string) {
	m.vendor_name = &s
}

// VendorName returns the value of the "vendor_name" field in the mutation.
func (m *ReconSessionMutation) VendorName() (r string, exists bool) {
	v := m.vendor_name
	if v == nil {
		return
	}
	return *v, true
}

// OldVendorName returns the old "vendor_name" field's value of the ReconSession entity.
// If the ReconSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReconSessionMutation) OldVendorName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVendorName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVendorName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVendorName: %w", err)
	}
	return oldValue.VendorName, nil
}

// ClearVendorName clears the value of the "vendor_name" field.
func (m *ReconSessionMutation) ClearVendorName() {
	m.vendor_name = nil
	m.clearedFields[reconsession.FieldVendorName] = struct{}{}
}

// VendorNameCleared returns if the "vendor_name" field was cleared in this mutation.
func (m *ReconSessionMutation) VendorNameCleared() bool {
	_, ok := m.clearedFields[reconsession.FieldVendorName]
	return ok
}

// ResetVendorName resets all changes to the "vendor_name" field.
func (m *ReconSessionMutation) ResetVendorName() {
	m.vendor_name = nil
	delete(m.clearedFields, reconsession.FieldVendorName)
}

// SetInvoiceNumber sets the "invoice_number" field.
func (m *ReconSessionMutation) SetInvoiceNumber(s string) {
	m.invoice_number = &s
}

// InvoiceNumber returns the value of the "invoice_number" field in the mutation.
func (m *ReconSessionMutation) InvoiceNumber() (r string, exists bool) {
	v := m.invoice_number
	if v == nil {
		return
	}
	return *v, true
}

// OldInvoiceNumber returns the old "invoice_number" field's value of the ReconSession entity.
// If the ReconSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReconSessionMutation) OldInvoiceNumber(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInvoiceNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInvoiceNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInvoiceNumber: %w", err)
	}
	return oldValue.InvoiceNumber, nil
}

// ClearInvoiceNumber clears the value of the "invoice_number" field.
func (m *ReconSessionMutation) ClearInvoiceNumber() {
	m.invoice_number = nil
	m.clearedFields[reconsession.FieldInvoiceNumber] = struct{}{}
}

// InvoiceNumberCleared returns if the "invoice_number" field was cleared in this mutation.
func (m *ReconSessionMutation) InvoiceNumberCleared() bool {
	_, ok := m.clearedFields[reconsession.FieldInvoiceNumber]
	return ok
}

// ResetInvoiceNumber resets all changes to the "invoice_number" field.
func (m *ReconSessionMutation) ResetInvoiceNumber() {
	m.invoice_number = nil
	delete(m.clearedFields, reconsession.FieldInvoiceNumber)
}

// SetStatus sets the "status" field.
func (m *ReconSessionMutation) SetStatus(r reconsession.Status) {
	m.status = &r
}

// Status returns the value of the "status" field in the mutation.
func (m *ReconSessionMutation) Status() (r reconsession.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ReconSession entity.
// If the ReconSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReconSessionMutation) OldStatus(ctx context.Context) (v reconsession.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ReconSessionMutation) ResetStatus() {
	m.status = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ReconSessionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ReconSessionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ReconSession entity.
// If the ReconSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReconSessionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ReconSessionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetStartedAt sets the "started_at" field.
func (m *ReconSessionMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *ReconSessionMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the ReconSession entity.
// If the ReconSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReconSessionMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *ReconSessionMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[reconsession.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *ReconSessionMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[reconsession.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *ReconSessionMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, reconsession.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *ReconSessionMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *ReconSessionMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the ReconSession entity.
// If the ReconSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReconSessionMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *ReconSessionMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[reconsession.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *ReconSessionMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[reconsession.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *ReconSessionMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, reconsession.FieldCompletedAt)
}

// SetErrorMessage sets the "error_message" field.
func (m *ReconSessionMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *ReconSessionMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the ReconSession entity.
// If the ReconSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReconSessionMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *ReconSessionMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[reconsession.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *ReconSessionMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[reconsession.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *ReconSessionMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, reconsession.FieldErrorMessage)
}

// SetCurrentStage sets the "current_stage" field.
func (m *ReconSessionMutation) SetCurrentStage(s string) {
	m.current_stage = &s
}

// CurrentStage returns the value of the "current_stage" field in the mutation.
func (m *ReconSessionMutation) CurrentStage() (r string, exists bool) {
	v := m.current_stage
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentStage returns the old "current_stage" field's value of the ReconSession entity.
// If the ReconSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReconSessionMutation) OldCurrentStage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentStage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentStage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentStage: %w", err)
	}
	return oldValue.CurrentStage, nil
}

// ClearCurrentStage clears the value of the "current_stage" field.
func (m *ReconSessionMutation) ClearCurrentStage() {
	m.current_stage = nil
	m.clearedFields[reconsession.FieldCurrentStage] = struct{}{}
}

// CurrentStageCleared returns if the "current_stage" field was cleared in this mutation.
func (m *ReconSessionMutation) CurrentStageCleared() bool {
	_, ok := m.clearedFields[reconsession.FieldCurrentStage]
	return ok
}

// ResetCurrentStage resets all changes to the "current_stage" field.
func (m *ReconSessionMutation) ResetCurrentStage() {
	m.current_stage = nil
	delete(m.clearedFields, reconsession.FieldCurrentStage)
}

// SetVerdict sets the "verdict" field.
func (m *ReconSessionMutation) SetVerdict(value map[string]interface{}) {
	m.verdict = &value
}

// Verdict returns the value of the "verdict" field in the mutation.
func (m *ReconSessionMutation) Verdict() (r map[string]interface{}, exists bool) {
	v := m.verdict
	if v == nil {
		return
	}
	return *v, true
}

// OldVerdict returns the old "verdict" field's value of the ReconSession entity.
// If the ReconSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReconSessionMutation) OldVerdict(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVerdict is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVerdict requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVerdict: %w", err)
	}
	return oldValue.Verdict, nil
}

// ClearVerdict clears the value of the "verdict" field.
func (m *ReconSessionMutation) ClearVerdict() {
	m.verdict = nil
	m.clearedFields[reconsession.FieldVerdict] = struct{}{}
}

// VerdictCleared returns if the "verdict" field was cleared in this mutation.
func (m *ReconSessionMutation) VerdictCleared() bool {
	_, ok := m.clearedFields[reconsession.FieldVerdict]
	return ok
}

// ResetVerdict resets all changes to the "verdict" field.
func (m *ReconSessionMutation) ResetVerdict() {
	m.verdict = nil
	delete(m.clearedFields, reconsession.FieldVerdict)
}

// SetVerdictSummary sets the "verdict_summary" field.
func (m *ReconSessionMutation) SetVerdictSummary(s string) {
	m.verdict_summary = &s
}

// VerdictSummary returns the value of the "verdict_summary" field in the mutation.
func (m *ReconSessionMutation) VerdictSummary() (r string, exists bool) {
	v := m.verdict_summary
	if v == nil {
		return
	}
	return *v, true
}

// OldVerdictSummary returns the old "verdict_summary" field's value of the ReconSession entity.
// If the ReconSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReconSessionMutation) OldVerdictSummary(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVerdictSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVerdictSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVerdictSummary: %w", err)
	}
	return oldValue.VerdictSummary, nil
}

// ClearVerdictSummary clears the value of the "verdict_summary" field.
func (m *ReconSessionMutation) ClearVerdictSummary() {
	m.verdict_summary = nil
	m.clearedFields[reconsession.FieldVerdictSummary] = struct{}{}
}

// VerdictSummaryCleared returns if the "verdict_summary" field was cleared in this mutation.
func (m *ReconSessionMutation) VerdictSummaryCleared() bool {
	_, ok := m.clearedFields[reconsession.FieldVerdictSummary]
	return ok
}

// ResetVerdictSummary resets all changes to the "verdict_summary" field.
func (m *ReconSessionMutation) ResetVerdictSummary() {
	m.verdict_summary = nil
	delete(m.clearedFields, reconsession.FieldVerdictSummary)
}

// SetStateErrors sets the "state_errors" field.
func (m *ReconSessionMutation) SetStateErrors(value []map[string]interface{}) {
	m.state_errors = &value
	m.appendstate_errors = nil
}

// StateErrors returns the value of the "state_errors" field in the mutation.
func (m *ReconSessionMutation) StateErrors() (r []map[string]interface{}, exists bool) {
	v := m.state_errors
	if v == nil {
		return
	}
	return *v, true
}

// OldStateErrors returns the old "state_errors" field's value of the ReconSession entity.
// If the ReconSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReconSessionMutation) OldStateErrors(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStateErrors is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStateErrors requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStateErrors: %w", err)
	}
	return oldValue.StateErrors, nil
}

// AppendStateErrors adds value to the "state_errors" field.
func (m *ReconSessionMutation) AppendStateErrors(value []map[string]interface{}) {
	m.appendstate_errors = append(m.appendstate_errors, value...)
}

// AppendedStateErrors returns the list of values that were appended to the "state_errors" field in this mutation.
func (m *ReconSessionMutation) AppendedStateErrors() ([]map[string]interface{}, bool) {
	if len(m.appendstate_errors) == 0 {
		return nil, false
	}
	return m.appendstate_errors, true
}

// ClearStateErrors clears the value of the "state_errors" field.
func (m *ReconSessionMutation) ClearStateErrors() {
	m.state_errors = nil
	m.appendstate_errors = nil
	m.clearedFields[reconsession.FieldStateErrors] = struct{}{}
}

// StateErrorsCleared returns if the "state_errors" field was cleared in this mutation.
func (m *ReconSessionMutation) StateErrorsCleared() bool {
	_, ok := m.clearedFields[reconsession.FieldStateErrors]
	return ok
}

// ResetStateErrors resets all changes to the "state_errors" field.
func (m *ReconSessionMutation) ResetStateErrors() {
	m.state_errors = nil
	m.appendstate_errors = nil
	delete(m.clearedFields, reconsession.FieldStateErrors)
}

// SetSessionMetadata sets the "session_metadata" field.
func (m *ReconSessionMutation) SetSessionMetadata(value map[string]interface{}) {
	m.session_metadata = &value
}

// SessionMetadata returns the value of the "session_metadata" field in the mutation.
func (m *ReconSessionMutation) SessionMetadata() (r map[string]interface{}, exists bool) {
	v := m.session_metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionMetadata returns the old "session_metadata" field's value of the ReconSession entity.
// If the ReconSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReconSessionMutation) OldSessionMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionMetadata: %w", err)
	}
	return oldValue.SessionMetadata, nil
}

// ClearSessionMetadata clears the value of the "session_metadata" field.
func (m *ReconSessionMutation) ClearSessionMetadata() {
	m.session_metadata = nil
	m.clearedFields[reconsession.FieldSessionMetadata] = struct{}{}
}

// SessionMetadataCleared returns if the "session_metadata" field was cleared in this mutation.
func (m *ReconSessionMutation) SessionMetadataCleared() bool {
	_, ok := m.clearedFields[reconsession.FieldSessionMetadata]
	return ok
}

// ResetSessionMetadata resets all changes to the "session_metadata" field.
func (m *ReconSessionMutation) ResetSessionMetadata() {
	m.session_metadata = nil
	delete(m.clearedFields, reconsession.FieldSessionMetadata)
}

// SetPodID sets the "pod_id" field.
func (m *ReconSessionMutation) SetPodID(s string) {
	m.pod_id = &s
}

// PodID returns the value of the "pod_id" field in the mutation.
func (m *ReconSessionMutation) PodID() (r string, exists bool) {
	v := m.pod_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPodID returns the old "pod_id" field's value of the ReconSession entity.
// If the ReconSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReconSessionMutation) OldPodID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPodID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPodID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPodID: %w", err)
	}
	return oldValue.PodID, nil
}

// ClearPodID clears the value of the "pod_id" field.
func (m *ReconSessionMutation) ClearPodID() {
	m.pod_id = nil
	m.clearedFields[reconsession.FieldPodID] = struct{}{}
}

// PodIDCleared returns if the "pod_id" field was cleared in this mutation.
func (m *ReconSessionMutation) PodIDCleared() bool {
	_, ok := m.clearedFields[reconsession.FieldPodID]
	return ok
}

// ResetPodID resets all changes to the "pod_id" field.
func (m *ReconSessionMutation) ResetPodID() {
	m.pod_id = nil
	delete(m.clearedFields, reconsession.FieldPodID)
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (m *ReconSessionMutation) SetLastHeartbeatAt(t time.Time) {
	m.last_heartbeat_at = &t
}

// LastHeartbeatAt returns the value of the "last_heartbeat_at" field in the mutation.
func (m *ReconSessionMutation) LastHeartbeatAt() (r time.Time, exists bool) {
	v := m.last_heartbeat_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastHeartbeatAt returns the old "last_heartbeat_at" field's value of the ReconSession entity.
// If the ReconSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReconSessionMutation) OldLastHeartbeatAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastHeartbeatAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastHeartbeatAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastHeartbeatAt: %w", err)
	}
	return oldValue.LastHeartbeatAt, nil
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (m *ReconSessionMutation) ClearLastHeartbeatAt() {
	m.last_heartbeat_at = nil
	m.clearedFields[reconsession.FieldLastHeartbeatAt] = struct{}{}
}

// LastHeartbeatAtCleared returns if the "last_heartbeat_at" field was cleared in this mutation.
func (m *ReconSessionMutation) LastHeartbeatAtCleared() bool {
	_, ok := m.clearedFields[reconsession.FieldLastHeartbeatAt]
	return ok
}

// ResetLastHeartbeatAt resets all changes to the "last_heartbeat_at" field.
func (m *ReconSessionMutation) ResetLastHeartbeatAt() {
	m.last_heartbeat_at = nil
	delete(m.clearedFields, reconsession.FieldLastHeartbeatAt)
}

// SetDeletedAt sets the "deleted_at" field.
func (m *ReconSessionMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *ReconSessionMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the ReconSession entity.
// If the ReconSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReconSessionMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *ReconSessionMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[reconsession.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *ReconSessionMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[reconsession.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *ReconSessionMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, reconsession.FieldDeletedAt)
}

// AddStageExecutionIDs adds the "stage_executions" edge to the StageExecution entity by ids.
func (m *ReconSessionMutation) AddStageExecutionIDs(ids ...string) {
	if m.stage_executions == nil {
		m.stage_executions = make(map[string]struct{})
	}
	for i := range ids {
		m.stage_executions[ids[i]] = struct{}{}
	}
}

// ClearStageExecutions clears the "stage_executions" edge to the StageExecution entity.
func (m *ReconSessionMutation) ClearStageExecutions() {
	m.clearedstage_executions = true
}

// StageExecutionsCleared reports if the "stage_executions" edge to the StageExecution entity was cleared.
func (m *ReconSessionMutation) StageExecutionsCleared() bool {
	return m.clearedstage_executions
}

// RemoveStageExecutionIDs removes the "stage_executions" edge to the StageExecution entity by IDs.
func (m *ReconSessionMutation) RemoveStageExecutionIDs(ids ...string) {
	if m.removedstage_executions == nil {
		m.removedstage_executions = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.stage_executions, ids[i])
		m.removedstage_executions[ids[i]] = struct{}{}
	}
}

// RemovedStageExecutions returns the removed IDs of the "stage_executions" edge to the StageExecution entity.
func (m *ReconSessionMutation) RemovedStageExecutionsIDs() (ids []string) {
	for id := range m.removedstage_executions {
		ids = append(ids, id)
	}
	return
}

// StageExecutionsIDs returns the "stage_executions" edge IDs in the mutation.
func (m *ReconSessionMutation) StageExecutionsIDs() (ids []string) {
	for id := range m.stage_executions {
		ids = append(ids, id)
	}
	return
}

// ResetStageExecutions resets all changes to the "stage_executions" edge.
func (m *ReconSessionMutation) ResetStageExecutions() {
	m.stage_executions = nil
	m.clearedstage_executions = false
	m.removedstage_executions = nil
}

// AddDivergenceRecordIDs adds the "divergence_records" edge to the DivergenceRecord entity by ids.
func (m *ReconSessionMutation) AddDivergenceRecordIDs(ids ...string) {
	if m.divergence_records == nil {
		m.divergence_records = make(map[string]struct{})
	}
	for i := range ids {
		m.divergence_records[ids[i]] = struct{}{}
	}
}

// ClearDivergenceRecords clears the "divergence_records" edge to the DivergenceRecord entity.
func (m *ReconSessionMutation) ClearDivergenceRecords() {
	m.cleareddivergence_records = true
}

// DivergenceRecordsCleared reports if the "divergence_records" edge to the DivergenceRecord entity was cleared.
func (m *ReconSessionMutation) DivergenceRecordsCleared() bool {
	return m.cleareddivergence_records
}

// RemoveDivergenceRecordIDs removes the "divergence_records" edge to the DivergenceRecord entity by IDs.
func (m *ReconSessionMutation) RemoveDivergenceRecordIDs(ids ...string) {
	if m.removeddivergence_records == nil {
		m.removeddivergence_records = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.divergence_records, ids[i])
		m.removeddivergence_records[ids[i]] = struct{}{}
	}
}

// RemovedDivergenceRecords returns the removed IDs of the "divergence_records" edge to the DivergenceRecord entity.
func (m *ReconSessionMutation) RemovedDivergenceRecordsIDs() (ids []string) {
	for id := range m.removeddivergence_records {
		ids = append(ids, id)
	}
	return
}

// DivergenceRecordsIDs returns the "divergence_records" edge IDs in the mutation.
func (m *ReconSessionMutation) DivergenceRecordsIDs() (ids []string) {
	for id := range m.divergence_records {
		ids = append(ids, id)
	}
	return
}

// ResetDivergenceRecords resets all changes to the "divergence_records" edge.
func (m *ReconSessionMutation) ResetDivergenceRecords() {
	m.divergence_records = nil
	m.cleareddivergence_records = false
	m.removeddivergence_records = nil
}

// SetWorkpaperID sets the "workpaper" edge to the Workpaper entity by id.
func (m *ReconSessionMutation) SetWorkpaperID(id string) {
	m.workpaper = &id
}

// ClearWorkpaper clears the "workpaper" edge to the Workpaper entity.
func (m *ReconSessionMutation) ClearWorkpaper() {
	m.clearedworkpaper = true
}

// WorkpaperCleared reports if the "workpaper" edge to the Workpaper entity was cleared.
func (m *ReconSessionMutation) WorkpaperCleared() bool {
	return m.clearedworkpaper
}

// WorkpaperID returns the "workpaper" edge ID in the mutation.
func (m *ReconSessionMutation) WorkpaperID() (id string, exists bool) {
	if m.workpaper != nil {
		return *m.workpaper, true
	}
	return
}

// WorkpaperIDs returns the "workpaper" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// WorkpaperID instead. It exists only for internal usage by the builders.
func (m *ReconSessionMutation) WorkpaperIDs() (ids []string) {
	if id := m.workpaper; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetWorkpaper resets all changes to the "workpaper" edge.
func (m *ReconSessionMutation) ResetWorkpaper() {
	m.workpaper = nil
	m.clearedworkpaper = false
}

// AddProgressEventIDs adds the "progress_events" edge to the ProgressEvent entity by ids.
func (m *ReconSessionMutation) AddProgressEventIDs(ids ...int) {
	if m.progress_events == nil {
		m.progress_events = make(map[int]struct{})
	}
	for i := range ids {
		m.progress_events[ids[i]] = struct{}{}
	}
}

// ClearProgressEvents clears the "progress_events" edge to the ProgressEvent entity.
func (m *ReconSessionMutation) ClearProgressEvents() {
	m.clearedprogress_events = true
}

// ProgressEventsCleared reports if the "progress_events" edge to the ProgressEvent entity was cleared.
func (m *ReconSessionMutation) ProgressEventsCleared() bool {
	return m.clearedprogress_events
}

// RemoveProgressEventIDs removes the "progress_events" edge to the ProgressEvent entity by IDs.
func (m *ReconSessionMutation) RemoveProgressEventIDs(ids ...int) {
	if m.removedprogress_events == nil {
		m.removedprogress_events = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.progress_events, ids[i])
		m.removedprogress_events[ids[i]] = struct{}{}
	}
}

// RemovedProgressEvents returns the removed IDs of the "progress_events" edge to the ProgressEvent entity.
func (m *ReconSessionMutation) RemovedProgressEventsIDs() (ids []int) {
	for id := range m.removedprogress_events {
		ids = append(ids, id)
	}
	return
}

// ProgressEventsIDs returns the "progress_events" edge IDs in the mutation.
func (m *ReconSessionMutation) ProgressEventsIDs() (ids []int) {
	for id := range m.progress_events {
		ids = append(ids, id)
	}
	return
}

// ResetProgressEvents resets all changes to the "progress_events" edge.
func (m *ReconSessionMutation) ResetProgressEvents() {
	m.progress_events = nil
	m.clearedprogress_events = false
	m.removedprogress_events = nil
}

// AddFeedbackSampleIDs adds the "feedback_samples" edge to the FeedbackSample entity by ids.
func (m *ReconSessionMutation) AddFeedbackSampleIDs(ids ...string) {
	if m.feedback_samples == nil {
		m.feedback_samples = make(map[string]struct{})
	}
	for i := range ids {
		m.feedback_samples[ids[i]] = struct{}{}
	}
}

// ClearFeedbackSamples clears the "feedback_samples" edge to the FeedbackSample entity.
func (m *ReconSessionMutation) ClearFeedbackSamples() {
	m.clearedfeedback_samples = true
}

// FeedbackSamplesCleared reports if the "feedback_samples" edge to the FeedbackSample entity was cleared.
func (m *ReconSessionMutation) FeedbackSamplesCleared() bool {
	return m.clearedfeedback_samples
}

// RemoveFeedbackSampleIDs removes the "feedback_samples" edge to the FeedbackSample entity by IDs.
func (m *ReconSessionMutation) RemoveFeedbackSampleIDs(ids ...string) {
	if m.removedfeedback_samples == nil {
		m.removedfeedback_samples = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.feedback_samples, ids[i])
		m.removedfeedback_samples[ids[i]] = struct{}{}
	}
}

// RemovedFeedbackSamples returns the removed IDs of the "feedback_samples" edge to the FeedbackSample entity.
func (m *ReconSessionMutation) RemovedFeedbackSamplesIDs() (ids []string) {
	for id := range m.removedfeedback_samples {
		ids = append(ids, id)
	}
	return
}

// FeedbackSamplesIDs returns the "feedback_samples" edge IDs in the mutation.
func (m *ReconSessionMutation) FeedbackSamplesIDs() (ids []string) {
	for id := range m.feedback_samples {
		ids = append(ids, id)
	}
	return
}

// ResetFeedbackSamples resets all changes to the "feedback_samples" edge.
func (m *ReconSessionMutation) ResetFeedbackSamples() {
	m.feedback_samples = nil
	m.clearedfeedback_samples = false
	m.removedfeedback_samples = nil
}

// Where appends a list predicates to the ReconSessionMutation builder.
func (m *ReconSessionMutation) Where(ps ...predicate.ReconSession) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ReconSessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ReconSessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ReconSession, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ReconSessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ReconSessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ReconSession).
func (m *ReconSessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ReconSessionMutation) Fields() []string {
	fields := make([]string, 0, 17)
	if m.tenant_id != nil {
		fields = append(fields, reconsession.FieldTenantID)
	}
	if m.document_bundle != nil {
		fields = append(fields, reconsession.FieldDocumentBundle)
	}
	if m.vendor_name != nil {
		fields = append(fields, reconsession.FieldVendorName)
	}
	if m.invoice_number != nil {
		fields = append(fields, reconsession.FieldInvoiceNumber)
	}
	if m.status != nil {
		fields = append(fields, reconsession.FieldStatus)
	}
	if m.created_at != nil {
		fields = append(fields, reconsession.FieldCreatedAt)
	}
	if m.started_at != nil {
		fields = append(fields, reconsession.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, reconsession.FieldCompletedAt)
	}
	if m.error_message != nil {
		fields = append(fields, reconsession.FieldErrorMessage)
	}
	if m.current_stage != nil {
		fields = append(fields, reconsession.FieldCurrentStage)
	}
	if m.verdict != nil {
		fields = append(fields, reconsession.FieldVerdict)
	}
	if m.verdict_summary != nil {
		fields = append(fields, reconsession.FieldVerdictSummary)
	}
	if m.state_errors != nil {
		fields = append(fields, reconsession.FieldStateErrors)
	}
	if m.session_metadata != nil {
		fields = append(fields, reconsession.FieldSessionMetadata)
	}
	if m.pod_id != nil {
		fields = append(fields, reconsession.FieldPodID)
	}
	if m.last_heartbeat_at != nil {
		fields = append(fields, reconsession.FieldLastHeartbeatAt)
	}
	if m.deleted_at != nil {
		fields = append(fields, reconsession.FieldDeletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ReconSessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case reconsession.FieldTenantID:
		return m.TenantID()
	case reconsession.FieldDocumentBundle:
		return m.DocumentBundle()
	case reconsession.FieldVendorName:
		return m.VendorName()
	case reconsession.FieldInvoiceNumber:
		return m.InvoiceNumber()
	case reconsession.FieldStatus:
		return m.Status()
	case reconsession.FieldCreatedAt:
		return m.CreatedAt()
	case reconsession.FieldStartedAt:
		return m.StartedAt()
	case reconsession.FieldCompletedAt:
		return m.CompletedAt()
	case reconsession.FieldErrorMessage:
		return m.ErrorMessage()
	case reconsession.FieldCurrentStage:
		return m.CurrentStage()
	case reconsession.FieldVerdict:
		return m.Verdict()
	case reconsession.FieldVerdictSummary:
		return m.VerdictSummary()
	case reconsession.FieldStateErrors:
		return m.StateErrors()
	case reconsession.FieldSessionMetadata:
		return m.SessionMetadata()
	case reconsession.FieldPodID:
		return m.PodID()
	case reconsession.FieldLastHeartbeatAt:
		return m.LastHeartbeatAt()
	case reconsession.FieldDeletedAt:
		return m.DeletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ReconSessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case reconsession.FieldTenantID:
		return m.OldTenantID(ctx)
	case reconsession.FieldDocumentBundle:
		return m.OldDocumentBundle(ctx)
	case reconsession.FieldVendorName:
		return m.OldVendorName(ctx)
	case reconsession.FieldInvoiceNumber:
		return m.OldInvoiceNumber(ctx)
	case reconsession.FieldStatus:
		return m.OldStatus(ctx)
	case reconsession.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case reconsession.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case reconsession.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case reconsession.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case reconsession.FieldCurrentStage:
		return m.OldCurrentStage(ctx)
	case reconsession.FieldVerdict:
		return m.OldVerdict(ctx)
	case reconsession.FieldVerdictSummary:
		return m.OldVerdictSummary(ctx)
	case reconsession.FieldStateErrors:
		return m.OldStateErrors(ctx)
	case reconsession.FieldSessionMetadata:
		return m.OldSessionMetadata(ctx)
	case reconsession.FieldPodID:
		return m.OldPodID(ctx)
	case reconsession.FieldLastHeartbeatAt:
		return m.OldLastHeartbeatAt(ctx)
	case reconsession.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ReconSession field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReconSessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case reconsession.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case reconsession.FieldDocumentBundle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentBundle(v)
		return nil
	case reconsession.FieldVendorName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVendorName(v)
		return nil
	case reconsession.FieldInvoiceNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInvoiceNumber(v)
		return nil
	case reconsession.FieldStatus:
		v, ok := value.(reconsession.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case reconsession.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case reconsession.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case reconsession.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case reconsession.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case reconsession.FieldCurrentStage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentStage(v)
		return nil
	case reconsession.FieldVerdict:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVerdict(v)
		return nil
	case reconsession.FieldVerdictSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVerdictSummary(v)
		return nil
	case reconsession.FieldStateErrors:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStateErrors(v)
		return nil
	case reconsession.FieldSessionMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionMetadata(v)
		return nil
	case reconsession.FieldPodID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPodID(v)
		return nil
	case reconsession.FieldLastHeartbeatAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastHeartbeatAt(v)
		return nil
	case reconsession.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ReconSession field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ReconSessionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ReconSessionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReconSessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ReconSession numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ReconSessionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(reconsession.FieldVendorName) {
		fields = append(fields, reconsession.FieldVendorName)
	}
	if m.FieldCleared(reconsession.FieldInvoiceNumber) {
		fields = append(fields, reconsession.FieldInvoiceNumber)
	}
	if m.FieldCleared(reconsession.FieldStartedAt) {
		fields = append(fields, reconsession.FieldStartedAt)
	}
	if m.FieldCleared(reconsession.FieldCompletedAt) {
		fields = append(fields, reconsession.FieldCompletedAt)
	}
	if m.FieldCleared(reconsession.FieldErrorMessage) {
		fields = append(fields, reconsession.FieldErrorMessage)
	}
	if m.FieldCleared(reconsession.FieldCurrentStage) {
		fields = append(fields, reconsession.FieldCurrentStage)
	}
	if m.FieldCleared(reconsession.FieldVerdict) {
		fields = append(fields, reconsession.FieldVerdict)
	}
	if m.FieldCleared(reconsession.FieldVerdictSummary) {
		fields = append(fields, reconsession.FieldVerdictSummary)
	}
	if m.FieldCleared(reconsession.FieldStateErrors) {
		fields = append(fields, reconsession.FieldStateErrors)
	}
	if m.FieldCleared(reconsession.FieldSessionMetadata) {
		fields = append(fields, reconsession.FieldSessionMetadata)
	}
	if m.FieldCleared(reconsession.FieldPodID) {
		fields = append(fields, reconsession.FieldPodID)
	}
	if m.FieldCleared(reconsession.FieldLastHeartbeatAt) {
		fields = append(fields, reconsession.FieldLastHeartbeatAt)
	}
	if m.FieldCleared(reconsession.FieldDeletedAt) {
		fields = append(fields, reconsession.FieldDeletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ReconSessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ReconSessionMutation) ClearField(name string) error {
	switch name {
	case reconsession.FieldVendorName:
		m.ClearVendorName()
		return nil
	case reconsession.FieldInvoiceNumber:
		m.ClearInvoiceNumber()
		return nil
	case reconsession.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case reconsession.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case reconsession.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case reconsession.FieldCurrentStage:
		m.ClearCurrentStage()
		return nil
	case reconsession.FieldVerdict:
		m.ClearVerdict()
		return nil
	case reconsession.FieldVerdictSummary:
		m.ClearVerdictSummary()
		return nil
	case reconsession.FieldStateErrors:
		m.ClearStateErrors()
		return nil
	case reconsession.FieldSessionMetadata:
		m.ClearSessionMetadata()
		return nil
	case reconsession.FieldPodID:
		m.ClearPodID()
		return nil
	case reconsession.FieldLastHeartbeatAt:
		m.ClearLastHeartbeatAt()
		return nil
	case reconsession.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown ReconSession nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ReconSessionMutation) ResetField(name string) error {
	switch name {
	case reconsession.FieldTenantID:
		m.ResetTenantID()
		return nil
	case reconsession.FieldDocumentBundle:
		m.ResetDocumentBundle()
		return nil
	case reconsession.FieldVendorName:
		m.ResetVendorName()
		return nil
	case reconsession.FieldInvoiceNumber:
		m.ResetInvoiceNumber()
		return nil
	case reconsession.FieldStatus:
		m.ResetStatus()
		return nil
	case reconsession.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case reconsession.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case reconsession.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case reconsession.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case reconsession.FieldCurrentStage:
		m.ResetCurrentStage()
		return nil
	case reconsession.FieldVerdict:
		m.ResetVerdict()
		return nil
	case reconsession.FieldVerdictSummary:
		m.ResetVerdictSummary()
		return nil
	case reconsession.FieldStateErrors:
		m.ResetStateErrors()
		return nil
	case reconsession.FieldSessionMetadata:
		m.ResetSessionMetadata()
		return nil
	case reconsession.FieldPodID:
		m.ResetPodID()
		return nil
	case reconsession.FieldLastHeartbeatAt:
		m.ResetLastHeartbeatAt()
		return nil
	case reconsession.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown ReconSession field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ReconSessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 5)
	if m.stage_executions != nil {
		edges = append(edges, reconsession.EdgeStageExecutions)
	}
	if m.divergence_records != nil {
		edges = append(edges, reconsession.EdgeDivergenceRecords)
	}
	if m.workpaper != nil {
		edges = append(edges, reconsession.EdgeWorkpaper)
	}
	if m.progress_events != nil {
		edges = append(edges, reconsession.EdgeProgressEvents)
	}
	if m.feedback_samples != nil {
		edges = append(edges, reconsession.EdgeFeedbackSamples)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ReconSessionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case reconsession.EdgeStageExecutions:
		ids := make([]ent.Value, 0, len(m.stage_executions))
		for id := range m.stage_executions {
			ids = append(ids, id)
		}
		return ids
	case reconsession.EdgeDivergenceRecords:
		ids := make([]ent.Value, 0, len(m.divergence_records))
		for id := range m.divergence_records {
			ids = append(ids, id)
		}
		return ids
	case reconsession.EdgeWorkpaper:
		if id := m.workpaper; id != nil {
			return []ent.Value{*id}
		}
	case reconsession.EdgeProgressEvents:
		ids := make([]ent.Value, 0, len(m.progress_events))
		for id := range m.progress_events {
			ids = append(ids, id)
		}
		return ids
	case reconsession.EdgeFeedbackSamples:
		ids := make([]ent.Value, 0, len(m.feedback_samples))
		for id := range m.feedback_samples {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ReconSessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 5)
	if m.removedstage_executions != nil {
		edges = append(edges, reconsession.EdgeStageExecutions)
	}
	if m.removeddivergence_records != nil {
		edges = append(edges, reconsession.EdgeDivergenceRecords)
	}
	if m.removedprogress_events != nil {
		edges = append(edges, reconsession.EdgeProgressEvents)
	}
	if m.removedfeedback_samples != nil {
		edges = append(edges, reconsession.EdgeFeedbackSamples)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ReconSessionMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case reconsession.EdgeStageExecutions:
		ids := make([]ent.Value, 0, len(m.removedstage_executions))
		for id := range m.removedstage_executions {
			ids = append(ids, id)
		}
		return ids
	case reconsession.EdgeDivergenceRecords:
		ids := make([]ent.Value, 0, len(m.removeddivergence_records))
		for id := range m.removeddivergence_records {
			ids = append(ids, id)
		}
		return ids
	case reconsession.EdgeProgressEvents:
		ids := make([]ent.Value, 0, len(m.removedprogress_events))
		for id := range m.removedprogress_events {
			ids = append(ids, id)
		}
		return ids
	case reconsession.EdgeFeedbackSamples:
		ids := make([]ent.Value, 0, len(m.removedfeedback_samples))
		for id := range m.removedfeedback_samples {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ReconSessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 5)
	if m.clearedstage_executions {
		edges = append(edges, reconsession.EdgeStageExecutions)
	}
	if m.cleareddivergence_records {
		edges = append(edges, reconsession.EdgeDivergenceRecords)
	}
	if m.clearedworkpaper {
		edges = append(edges, reconsession.EdgeWorkpaper)
	}
	if m.clearedprogress_events {
		edges = append(edges, reconsession.EdgeProgressEvents)
	}
	if m.clearedfeedback_samples {
		edges = append(edges, reconsession.EdgeFeedbackSamples)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ReconSessionMutation) EdgeCleared(name string) bool {
	switch name {
	case reconsession.EdgeStageExecutions:
		return m.clearedstage_executions
	case reconsession.EdgeDivergenceRecords:
		return m.cleareddivergence_records
	case reconsession.EdgeWorkpaper:
		return m.clearedworkpaper
	case reconsession.EdgeProgressEvents:
		return m.clearedprogress_events
	case reconsession.EdgeFeedbackSamples:
		return m.clearedfeedback_samples
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ReconSessionMutation) ClearEdge(name string) error {
	switch name {
	case reconsession.EdgeWorkpaper:
		m.ClearWorkpaper()
		return nil
	}
	return fmt.Errorf("unknown ReconSession unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ReconSessionMutation) ResetEdge(name string) error {
	switch name {
	case reconsession.EdgeStageExecutions:
		m.ResetStageExecutions()
		return nil
	case reconsession.EdgeDivergenceRecords:
		m.ResetDivergenceRecords()
		return nil
	case reconsession.EdgeWorkpaper:
		m.ResetWorkpaper()
		return nil
	case reconsession.EdgeProgressEvents:
		m.ResetProgressEvents()
		return nil
	case reconsession.EdgeFeedbackSamples:
		m.ResetFeedbackSamples()
		return nil
	}
	return fmt.Errorf("unknown ReconSession edge %s", name)
}

// StageExecutionMutation represents an operation that mutates the StageExecution nodes in the graph.
type StageExecutionMutation struct {
	config
	op             Op
	typ            string
	id             *string
	stage          *string
	stage_index    *int
	addstage_index *int
	status         *stageexecution.Status
	started_at     *time.Time
	completed_at   *time.Time
	duration_ms    *int
	addduration_ms *int
	degraded       *bool
	error_message  *string
	summary        *string
	clearedFields  map[string]struct{}
	session        *string
	clearedsession bool
	done           bool
	oldValue       func(context.Context) (*StageExecution, error)
	predicates     []predicate.StageExecution
}

var _ ent.Mutation = (*StageExecutionMutation)(nil)

// stageexecutionOption allows management of the mutation configuration using functional options.
type stageexecutionOption func(*StageExecutionMutation)

// newStageExecutionMutation creates new mutation for the StageExecution entity.
func newStageExecutionMutation(c config, op Op, opts ...stageexecutionOption) *StageExecutionMutation {
	m := &StageExecutionMutation{
		config:        c,
		op:            op,
		typ:           TypeStageExecution,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withStageExecutionID sets the ID field of the mutation.
func withStageExecutionID(id string) stageexecutionOption {
	return func(m *StageExecutionMutation) {
		var (
			err   error
			once  sync.Once
			value *StageExecution
		)
		m.oldValue = func(ctx context.Context) (*StageExecution, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().StageExecution.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withStageExecution sets the old StageExecution of the mutation.
func withStageExecution(node *StageExecution) stageexecutionOption {
	return func(m *StageExecutionMutation) {
		m.oldValue = func(context.Context) (*StageExecution, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m StageExecutionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m StageExecutionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of StageExecution entities.
func (m *StageExecutionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *StageExecutionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *StageExecutionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().StageExecution.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *StageExecutionMutation) SetSessionID(s string) {
	m.session = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *StageExecutionMutation) SessionID() (r string, exists bool) {
	v := m.session
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the StageExecution entity.
// If the StageExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageExecutionMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *StageExecutionMutation) ResetSessionID() {
	m.session = nil
}

// SetStage sets the "stage" field.
func (m *StageExecutionMutation) SetStage(s string) {
	m.stage = &s
}

// Stage returns the value of the "stage" field in the mutation.
func (m *StageExecutionMutation) Stage() (r string, exists bool) {
	v := m.stage
	if v == nil {
		return
	}
	return *v, true
}

// OldStage returns the old "stage" field's value of the StageExecution entity.
// If the StageExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageExecutionMutation) OldStage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStage: %w", err)
	}
	return oldValue.Stage, nil
}

// ResetStage resets all changes to the "stage" field.
func (m *StageExecutionMutation) ResetStage() {
	m.stage = nil
}

// SetStageIndex sets the "stage_index" field.
func (m *StageExecutionMutation) SetStageIndex(i int) {
	m.stage_index = &i
	m.addstage_index = nil
}

// StageIndex returns the value of the "stage_index" field in the mutation.
func (m *StageExecutionMutation) StageIndex() (r int, exists bool) {
	v := m.stage_index
	if v == nil {
		return
	}
	return *v, true
}

// OldStageIndex returns the old "stage_index" field's value of the StageExecution entity.
// If the StageExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageExecutionMutation) OldStageIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStageIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStageIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStageIndex: %w", err)
	}
	return oldValue.StageIndex, nil
}

// AddStageIndex adds i to the "stage_index" field.
func (m *StageExecutionMutation) AddStageIndex(i int) {
	if m.addstage_index != nil {
		*m.addstage_index += i
	} else {
		m.addstage_index = &i
	}
}

// AddedStageIndex returns the value that was added to the "stage_index" field in this mutation.
func (m *StageExecutionMutation) AddedStageIndex() (r int, exists bool) {
	v := m.addstage_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetStageIndex resets all changes to the "stage_index" field.
func (m *StageExecutionMutation) ResetStageIndex() {
	m.stage_index = nil
	m.addstage_index = nil
}

// SetStatus sets the "status" field.
func (m *StageExecutionMutation) SetStatus(s stageexecution.Status) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *StageExecutionMutation) Status() (r stageexecution.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the StageExecution entity.
// If the StageExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageExecutionMutation) OldStatus(ctx context.Context) (v stageexecution.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *StageExecutionMutation) ResetStatus() {
	m.status = nil
}

// SetStartedAt sets the "started_at" field.
func (m *StageExecutionMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *StageExecutionMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the StageExecution entity.
// If the StageExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageExecutionMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *StageExecutionMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[stageexecution.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *StageExecutionMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[stageexecution.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *StageExecutionMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, stageexecution.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *StageExecutionMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *StageExecutionMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the StageExecution entity.
// If the StageExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageExecutionMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *StageExecutionMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[stageexecution.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *StageExecutionMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[stageexecution.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *StageExecutionMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, stageexecution.FieldCompletedAt)
}

// SetDurationMs sets the "duration_ms" field.
func (m *StageExecutionMutation) SetDurationMs(i int) {
	m.duration_ms = &i
	m.addduration_ms = nil
}

// DurationMs returns the value of the "duration_ms" field in the mutation.
func (m *StageExecutionMutation) DurationMs() (r int, exists bool) {
	v := m.duration_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationMs returns the old "duration_ms" field's value of the StageExecution entity.
// If the StageExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageExecutionMutation) OldDurationMs(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationMs: %w", err)
	}
	return oldValue.DurationMs, nil
}

// AddDurationMs adds i to the "duration_ms" field.
func (m *StageExecutionMutation) AddDurationMs(i int) {
	if m.addduration_ms != nil {
		*m.addduration_ms += i
	} else {
		m.addduration_ms = &i
	}
}

// AddedDurationMs returns the value that was added to the "duration_ms" field in this mutation.
func (m *StageExecutionMutation) AddedDurationMs() (r int, exists bool) {
	v := m.addduration_ms
	if v == nil {
		return
	}
	return *v, true
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (m *StageExecutionMutation) ClearDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
	m.clearedFields[stageexecution.FieldDurationMs] = struct{}{}
}

// DurationMsCleared returns if the "duration_ms" field was cleared in this mutation.
func (m *StageExecutionMutation) DurationMsCleared() bool {
	_, ok := m.clearedFields[stageexecution.FieldDurationMs]
	return ok
}

// ResetDurationMs resets all changes to the "duration_ms" field.
func (m *StageExecutionMutation) ResetDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
	delete(m.clearedFields, stageexecution.FieldDurationMs)
}

// SetDegraded sets the "degraded" field.
func (m *StageExecutionMutation) SetDegraded(b bool) {
	m.degraded = &b
}

// Degraded returns the value of the "degraded" field in the mutation.
func (m *StageExecutionMutation) Degraded() (r bool, exists bool) {
	v := m.degraded
	if v == nil {
		return
	}
	return *v, true
}

// OldDegraded returns the old "degraded" field's value of the StageExecution entity.
// If the StageExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageExecutionMutation) OldDegraded(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDegraded is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDegraded requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDegraded: %w", err)
	}
	return oldValue.Degraded, nil
}

// ResetDegraded resets all changes to the "degraded" field.
func (m *StageExecutionMutation) ResetDegraded() {
	m.degraded = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *StageExecutionMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *StageExecutionMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the StageExecution entity.
// If the StageExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageExecutionMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *StageExecutionMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[stageexecution.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *StageExecutionMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[stageexecution.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *StageExecutionMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, stageexecution.FieldErrorMessage)
}

// SetSummary sets the "summary" field.
func (m *StageExecutionMutation) SetSummary(s string) {
	m.summary = &s
}

// Summary returns the value of the "summary" field in the mutation.
func (m *StageExecutionMutation) Summary() (r string, exists bool) {
	v := m.summary
	if v == nil {
		return
	}
	return *v, true
}

// OldSummary returns the old "summary" field's value of the StageExecution entity.
// If the StageExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageExecutionMutation) OldSummary(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSummary: %w", err)
	}
	return oldValue.Summary, nil
}

// ClearSummary clears the value of the "summary" field.
func (m *StageExecutionMutation) ClearSummary() {
	m.summary = nil
	m.clearedFields[stageexecution.FieldSummary] = struct{}{}
}

// SummaryCleared returns if the "summary" field was cleared in this mutation.
func (m *StageExecutionMutation) SummaryCleared() bool {
	_, ok := m.clearedFields[stageexecution.FieldSummary]
	return ok
}

// ResetSummary resets all changes to the "summary" field.
func (m *StageExecutionMutation) ResetSummary() {
	m.summary = nil
	delete(m.clearedFields, stageexecution.FieldSummary)
}

// ClearSession clears the "session" edge to the ReconSession entity.
func (m *StageExecutionMutation) ClearSession() {
	m.clearedsession = true
	m.clearedFields[stageexecution.FieldSessionID] = struct{}{}
}

// SessionCleared reports if the "session" edge to the ReconSession entity was cleared.
func (m *StageExecutionMutation) SessionCleared() bool {
	return m.clearedsession
}

// SessionIDs returns the "session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SessionID instead. It exists only for internal usage by the builders.
func (m *StageExecutionMutation) SessionIDs() (ids []string) {
	if id := m.session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSession resets all changes to the "session" edge.
func (m *StageExecutionMutation) ResetSession() {
	m.session = nil
	m.clearedsession = false
}

// Where appends a list predicates to the StageExecutionMutation builder.
func (m *StageExecutionMutation) Where(ps ...predicate.StageExecution) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the StageExecutionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *StageExecutionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.StageExecution, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *StageExecutionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *StageExecutionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (StageExecution).
func (m *StageExecutionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *StageExecutionMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.session != nil {
		fields = append(fields, stageexecution.FieldSessionID)
	}
	if m.stage != nil {
		fields = append(fields, stageexecution.FieldStage)
	}
	if m.stage_index != nil {
		fields = append(fields, stageexecution.FieldStageIndex)
	}
	if m.status != nil {
		fields = append(fields, stageexecution.FieldStatus)
	}
	if m.started_at != nil {
		fields = append(fields, stageexecution.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, stageexecution.FieldCompletedAt)
	}
	if m.duration_ms != nil {
		fields = append(fields, stageexecution.FieldDurationMs)
	}
	if m.degraded != nil {
		fields = append(fields, stageexecution.FieldDegraded)
	}
	if m.error_message != nil {
		fields = append(fields, stageexecution.FieldErrorMessage)
	}
	if m.summary != nil {
		fields = append(fields, stageexecution.FieldSummary)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *StageExecutionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case stageexecution.FieldSessionID:
		return m.SessionID()
	case stageexecution.FieldStage:
		return m.Stage()
	case stageexecution.FieldStageIndex:
		return m.StageIndex()
	case stageexecution.FieldStatus:
		return m.Status()
	case stageexecution.FieldStartedAt:
		return m.StartedAt()
	case stageexecution.FieldCompletedAt:
		return m.CompletedAt()
	case stageexecution.FieldDurationMs:
		return m.DurationMs()
	case stageexecution.FieldDegraded:
		return m.Degraded()
	case stageexecution.FieldErrorMessage:
		return m.ErrorMessage()
	case stageexecution.FieldSummary:
		return m.Summary()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *StageExecutionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case stageexecution.FieldSessionID:
		return m.OldSessionID(ctx)
	case stageexecution.FieldStage:
		return m.OldStage(ctx)
	case stageexecution.FieldStageIndex:
		return m.OldStageIndex(ctx)
	case stageexecution.FieldStatus:
		return m.OldStatus(ctx)
	case stageexecution.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case stageexecution.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case stageexecution.FieldDurationMs:
		return m.OldDurationMs(ctx)
	case stageexecution.FieldDegraded:
		return m.OldDegraded(ctx)
	case stageexecution.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case stageexecution.FieldSummary:
		return m.OldSummary(ctx)
	}
	return nil, fmt.Errorf("unknown StageExecution field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StageExecutionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case stageexecution.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case stageexecution.FieldStage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStage(v)
		return nil
	case stageexecution.FieldStageIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStageIndex(v)
		return nil
	case stageexecution.FieldStatus:
		v, ok := value.(stageexecution.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case stageexecution.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case stageexecution.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case stageexecution.FieldDurationMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationMs(v)
		return nil
	case stageexecution.FieldDegraded:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDegraded(v)
		return nil
	case stageexecution.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case stageexecution.FieldSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSummary(v)
		return nil
	}
	return fmt.Errorf("unknown StageExecution field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *StageExecutionMutation) AddedFields() []string {
	var fields []string
	if m.addstage_index != nil {
		fields = append(fields, stageexecution.FieldStageIndex)
	}
	if m.addduration_ms != nil {
		fields = append(fields, stageexecution.FieldDurationMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *StageExecutionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case stageexecution.FieldStageIndex:
		return m.AddedStageIndex()
	case stageexecution.FieldDurationMs:
		return m.AddedDurationMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StageExecutionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case stageexecution.FieldStageIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStageIndex(v)
		return nil
	case stageexecution.FieldDurationMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationMs(v)
		return nil
	}
	return fmt.Errorf("unknown StageExecution numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *StageExecutionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(stageexecution.FieldStartedAt) {
		fields = append(fields, stageexecution.FieldStartedAt)
	}
	if m.FieldCleared(stageexecution.FieldCompletedAt) {
		fields = append(fields, stageexecution.FieldCompletedAt)
	}
	if m.FieldCleared(stageexecution.FieldDurationMs) {
		fields = append(fields, stageexecution.FieldDurationMs)
	}
	if m.FieldCleared(stageexecution.FieldErrorMessage) {
		fields = append(fields, stageexecution.FieldErrorMessage)
	}
	if m.FieldCleared(stageexecution.FieldSummary) {
		fields = append(fields, stageexecution.FieldSummary)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *StageExecutionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *StageExecutionMutation) ClearField(name string) error {
	switch name {
	case stageexecution.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case stageexecution.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case stageexecution.FieldDurationMs:
		m.ClearDurationMs()
		return nil
	case stageexecution.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case stageexecution.FieldSummary:
		m.ClearSummary()
		return nil
	}
	return fmt.Errorf("unknown StageExecution nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *StageExecutionMutation) ResetField(name string) error {
	switch name {
	case stageexecution.FieldSessionID:
		m.ResetSessionID()
		return nil
	case stageexecution.FieldStage:
		m.ResetStage()
		return nil
	case stageexecution.FieldStageIndex:
		m.ResetStageIndex()
		return nil
	case stageexecution.FieldStatus:
		m.ResetStatus()
		return nil
	case stageexecution.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case stageexecution.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case stageexecution.FieldDurationMs:
		m.ResetDurationMs()
		return nil
	case stageexecution.FieldDegraded:
		m.ResetDegraded()
		return nil
	case stageexecution.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case stageexecution.FieldSummary:
		m.ResetSummary()
		return nil
	}
	return fmt.Errorf("unknown StageExecution field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *StageExecutionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.session != nil {
		edges = append(edges, stageexecution.EdgeSession)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *StageExecutionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case stageexecution.EdgeSession:
		if id := m.session; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *StageExecutionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *StageExecutionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *StageExecutionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsession {
		edges = append(edges, stageexecution.EdgeSession)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *StageExecutionMutation) EdgeCleared(name string) bool {
	switch name {
	case stageexecution.EdgeSession:
		return m.clearedsession
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *StageExecutionMutation) ClearEdge(name string) error {
	switch name {
	case stageexecution.EdgeSession:
		m.ClearSession()
		return nil
	}
	return fmt.Errorf("unknown StageExecution unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *StageExecutionMutation) ResetEdge(name string) error {
	switch name {
	case stageexecution.EdgeSession:
		m.ResetSession()
		return nil
	}
	return fmt.Errorf("unknown StageExecution edge %s", name)
}

// WorkpaperMutation represents an operation that mutates the Workpaper nodes in the graph.
type WorkpaperMutation struct {
	config
	op                Op
	typ               string
	id                *string
	html              *string
	sections          *map[string]interface{}
	citation_count    *int
	addcitation_count *int
	created_at        *time.Time
	clearedFields     map[string]struct{}
	session           *string
	clearedsession    bool
	done              bool
	oldValue          func(context.Context) (*Workpaper, error)
	predicates        []predicate.Workpaper
}

var _ ent.Mutation = (*WorkpaperMutation)(nil)

// workpaperOption allows management of the mutation configuration using functional options.
type workpaperOption func(*WorkpaperMutation)

// newWorkpaperMutation creates new mutation for the Workpaper entity.
func newWorkpaperMutation(c config, op Op, opts ...workpaperOption) *WorkpaperMutation {
	m := &WorkpaperMutation{
		config:        c,
		op:            op,
		typ:           TypeWorkpaper,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withWorkpaperID sets the ID field of the mutation.
func withWorkpaperID(id string) workpaperOption {
	return func(m *WorkpaperMutation) {
		var (
			err   error
			once  sync.Once
			value *Workpaper
		)
		m.oldValue = func(ctx context.Context) (*Workpaper, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Workpaper.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withWorkpaper sets the old Workpaper of the mutation.
func withWorkpaper(node *Workpaper) workpaperOption {
	return func(m *WorkpaperMutation) {
		m.oldValue = func(context.Context) (*Workpaper, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m WorkpaperMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m WorkpaperMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Workpaper entities.
func (m *WorkpaperMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *WorkpaperMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *WorkpaperMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Workpaper.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *WorkpaperMutation) SetSessionID(s string) {
	m.session = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *WorkpaperMutation) SessionID() (r string, exists bool) {
	v := m.session
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the Workpaper entity.
// If the Workpaper object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkpaperMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *WorkpaperMutation) ResetSessionID() {
	m.session = nil
}

// SetHTML sets the "html" field.
func (m *WorkpaperMutation) SetHTML(s string) {
	m.html = &s
}

// HTML returns the value of the "html" field in the mutation.
func (m *WorkpaperMutation) HTML() (r string, exists bool) {
	v := m.html
	if v == nil {
		return
	}
	return *v, true
}

// OldHTML returns the old "html" field's value of the Workpaper entity.
// If the Workpaper object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkpaperMutation) OldHTML(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHTML is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHTML requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHTML: %w", err)
	}
	return oldValue.HTML, nil
}

// ResetHTML resets all changes to the "html" field.
func (m *WorkpaperMutation) ResetHTML() {
	m.html = nil
}

// SetSections sets the "sections" field.
func (m *WorkpaperMutation) SetSections(value map[string]interface{}) {
	m.sections = &value
}

// Sections returns the value of the "sections" field in the mutation.
func (m *WorkpaperMutation) Sections() (r map[string]interface{}, exists bool) {
	v := m.sections
	if v == nil {
		return
	}
	return *v, true
}

// OldSections returns the old "sections" field's value of the Workpaper entity.
// If the Workpaper object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkpaperMutation) OldSections(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSections is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSections requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSections: %w", err)
	}
	return oldValue.Sections, nil
}

// ClearSections clears the value of the "sections" field.
func (m *WorkpaperMutation) ClearSections() {
	m.sections = nil
	m.clearedFields[workpaper.FieldSections] = struct{}{}
}

// SectionsCleared returns if the "sections" field was cleared in this mutation.
func (m *WorkpaperMutation) SectionsCleared() bool {
	_, ok := m.clearedFields[workpaper.FieldSections]
	return ok
}

// ResetSections resets all changes to the "sections" field.
func (m *WorkpaperMutation) ResetSections() {
	m.sections = nil
	delete(m.clearedFields, workpaper.FieldSections)
}

// SetCitationCount sets the "citation_count" field.
func (m *WorkpaperMutation) SetCitationCount(i int) {
	m.citation_count = &i
	m.addcitation_count = nil
}

// CitationCount returns the value of the "citation_count" field in the mutation.
func (m *WorkpaperMutation) CitationCount() (r int, exists bool) {
	v := m.citation_count
	if v == nil {
		return
	}
	return *v, true
}

// OldCitationCount returns the old "citation_count" field's value of the Workpaper entity.
// If the Workpaper object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkpaperMutation) OldCitationCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCitationCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCitationCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCitationCount: %w", err)
	}
	return oldValue.CitationCount, nil
}

// AddCitationCount adds i to the "citation_count" field.
func (m *WorkpaperMutation) AddCitationCount(i int) {
	if m.addcitation_count != nil {
		*m.addcitation_count += i
	} else {
		m.addcitation_count = &i
	}
}

// AddedCitationCount returns the value that was added to the "citation_count" field in this mutation.
func (m *WorkpaperMutation) AddedCitationCount() (r int, exists bool) {
	v := m.addcitation_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetCitationCount resets all changes to the "citation_count" field.
func (m *WorkpaperMutation) ResetCitationCount() {
	m.citation_count = nil
	m.addcitation_count = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *WorkpaperMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *WorkpaperMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Workpaper entity.
// If the Workpaper object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkpaperMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *WorkpaperMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearSession clears the "session" edge to the ReconSession entity.
func (m *WorkpaperMutation) ClearSession() {
	m.clearedsession = true
	m.clearedFields[workpaper.FieldSessionID] = struct{}{}
}

// SessionCleared reports if the "session" edge to the ReconSession entity was cleared.
func (m *WorkpaperMutation) SessionCleared() bool {
	return m.clearedsession
}

// SessionIDs returns the "session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SessionID instead. It exists only for internal usage by the builders.
func (m *WorkpaperMutation) SessionIDs() (ids []string) {
	if id := m.session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSession resets all changes to the "session" edge.
func (m *WorkpaperMutation) ResetSession() {
	m.session = nil
	m.clearedsession = false
}

// Where appends a list predicates to the WorkpaperMutation builder.
func (m *WorkpaperMutation) Where(ps ...predicate.Workpaper) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the WorkpaperMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *WorkpaperMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Workpaper, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *WorkpaperMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *WorkpaperMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Workpaper).
func (m *WorkpaperMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *WorkpaperMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.session != nil {
		fields = append(fields, workpaper.FieldSessionID)
	}
	if m.html != nil {
		fields = append(fields, workpaper.FieldHTML)
	}
	if m.sections != nil {
		fields = append(fields, workpaper.FieldSections)
	}
	if m.citation_count != nil {
		fields = append(fields, workpaper.FieldCitationCount)
	}
	if m.created_at != nil {
		fields = append(fields, workpaper.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *WorkpaperMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case workpaper.FieldSessionID:
		return m.SessionID()
	case workpaper.FieldHTML:
		return m.HTML()
	case workpaper.FieldSections:
		return m.Sections()
	case workpaper.FieldCitationCount:
		return m.CitationCount()
	case workpaper.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *WorkpaperMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case workpaper.FieldSessionID:
		return m.OldSessionID(ctx)
	case workpaper.FieldHTML:
		return m.OldHTML(ctx)
	case workpaper.FieldSections:
		return m.OldSections(ctx)
	case workpaper.FieldCitationCount:
		return m.OldCitationCount(ctx)
	case workpaper.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Workpaper field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WorkpaperMutation) SetField(name string, value ent.Value) error {
	switch name {
	case workpaper.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case workpaper.FieldHTML:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHTML(v)
		return nil
	case workpaper.FieldSections:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSections(v)
		return nil
	case workpaper.FieldCitationCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCitationCount(v)
		return nil
	case workpaper.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Workpaper field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *WorkpaperMutation) AddedFields() []string {
	var fields []string
	if m.addcitation_count != nil {
		fields = append(fields, workpaper.FieldCitationCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *WorkpaperMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case workpaper.FieldCitationCount:
		return m.AddedCitationCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WorkpaperMutation) AddField(name string, value ent.Value) error {
	switch name {
	case workpaper.FieldCitationCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCitationCount(v)
		return nil
	}
	return fmt.Errorf("unknown Workpaper numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *WorkpaperMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(workpaper.FieldSections) {
		fields = append(fields, workpaper.FieldSections)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *WorkpaperMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *WorkpaperMutation) ClearField(name string) error {
	switch name {
	case workpaper.FieldSections:
		m.ClearSections()
		return nil
	}
	return fmt.Errorf("unknown Workpaper nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *WorkpaperMutation) ResetField(name string) error {
	switch name {
	case workpaper.FieldSessionID:
		m.ResetSessionID()
		return nil
	case workpaper.FieldHTML:
		m.ResetHTML()
		return nil
	case workpaper.FieldSections:
		m.ResetSections()
		return nil
	case workpaper.FieldCitationCount:
		m.ResetCitationCount()
		return nil
	case workpaper.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Workpaper field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *WorkpaperMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.session != nil {
		edges = append(edges, workpaper.EdgeSession)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *WorkpaperMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case workpaper.EdgeSession:
		if id := m.session; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *WorkpaperMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *WorkpaperMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *WorkpaperMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsession {
		edges = append(edges, workpaper.EdgeSession)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *WorkpaperMutation) EdgeCleared(name string) bool {
	switch name {
	case workpaper.EdgeSession:
		return m.clearedsession
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *WorkpaperMutation) ClearEdge(name string) error {
	switch name {
	case workpaper.EdgeSession:
		m.ClearSession()
		return nil
	}
	return fmt.Errorf("unknown Workpaper unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *WorkpaperMutation) ResetEdge(name string) error {
	switch name {
	case workpaper.EdgeSession:
		m.ResetSession()
		return nil
	}
	return fmt.Errorf("unknown Workpaper edge %s", name)
}
