// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/procureguard/trimatch/ent/divergencerecord"
	"github.com/procureguard/trimatch/ent/predicate"
)

// DivergenceRecordUpdate is the builder for updating DivergenceRecord entities.
type DivergenceRecordUpdate struct {
	config
	hooks    []Hook
	mutation *DivergenceRecordMutation
}

// Where appends a list predicates to the DivergenceRecordUpdate builder.
func (_u *DivergenceRecordUpdate) Where(ps ...predicate.DivergenceRecord) *DivergenceRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSimilarity sets the "similarity" field.
func (_u *DivergenceRecordUpdate) SetSimilarity(v float64) *DivergenceRecordUpdate {
	_u.mutation.ResetSimilarity()
	_u.mutation.SetSimilarity(v)
	return _u
}

// SetNillableSimilarity sets the "similarity" field if the given value is not nil.
func (_u *DivergenceRecordUpdate) SetNillableSimilarity(v *float64) *DivergenceRecordUpdate {
	if v != nil {
		_u.SetSimilarity(*v)
	}
	return _u
}

// AddSimilarity adds value to the "similarity" field.
func (_u *DivergenceRecordUpdate) AddSimilarity(v float64) *DivergenceRecordUpdate {
	_u.mutation.AddSimilarity(v)
	return _u
}

// SetThreshold sets the "threshold" field.
func (_u *DivergenceRecordUpdate) SetThreshold(v float64) *DivergenceRecordUpdate {
	_u.mutation.ResetThreshold()
	_u.mutation.SetThreshold(v)
	return _u
}

// SetNillableThreshold sets the "threshold" field if the given value is not nil.
func (_u *DivergenceRecordUpdate) SetNillableThreshold(v *float64) *DivergenceRecordUpdate {
	if v != nil {
		_u.SetThreshold(*v)
	}
	return _u
}

// AddThreshold adds value to the "threshold" field.
func (_u *DivergenceRecordUpdate) AddThreshold(v float64) *DivergenceRecordUpdate {
	_u.mutation.AddThreshold(v)
	return _u
}

// SetAlertTriggered sets the "alert_triggered" field.
func (_u *DivergenceRecordUpdate) SetAlertTriggered(v bool) *DivergenceRecordUpdate {
	_u.mutation.SetAlertTriggered(v)
	return _u
}

// SetNillableAlertTriggered sets the "alert_triggered" field if the given value is not nil.
func (_u *DivergenceRecordUpdate) SetNillableAlertTriggered(v *bool) *DivergenceRecordUpdate {
	if v != nil {
		_u.SetAlertTriggered(*v)
	}
	return _u
}

// SetReason sets the "reason" field.
func (_u *DivergenceRecordUpdate) SetReason(v string) *DivergenceRecordUpdate {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *DivergenceRecordUpdate) SetNillableReason(v *string) *DivergenceRecordUpdate {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// ClearReason clears the value of the "reason" field.
func (_u *DivergenceRecordUpdate) ClearReason() *DivergenceRecordUpdate {
	_u.mutation.ClearReason()
	return _u
}

// SetDegraded sets the "degraded" field.
func (_u *DivergenceRecordUpdate) SetDegraded(v bool) *DivergenceRecordUpdate {
	_u.mutation.SetDegraded(v)
	return _u
}

// SetNillableDegraded sets the "degraded" field if the given value is not nil.
func (_u *DivergenceRecordUpdate) SetNillableDegraded(v *bool) *DivergenceRecordUpdate {
	if v != nil {
		_u.SetDegraded(*v)
	}
	return _u
}

// SetPerturbations sets the "perturbations" field.
func (_u *DivergenceRecordUpdate) SetPerturbations(v []map[string]interface{}) *DivergenceRecordUpdate {
	_u.mutation.SetPerturbations(v)
	return _u
}

// AppendPerturbations appends value to the "perturbations" field.
func (_u *DivergenceRecordUpdate) AppendPerturbations(v []map[string]interface{}) *DivergenceRecordUpdate {
	_u.mutation.AppendPerturbations(v)
	return _u
}

// ClearPerturbations clears the value of the "perturbations" field.
func (_u *DivergenceRecordUpdate) ClearPerturbations() *DivergenceRecordUpdate {
	_u.mutation.ClearPerturbations()
	return _u
}

// SetPrimarySummary sets the "primary_summary" field.
func (_u *DivergenceRecordUpdate) SetPrimarySummary(v string) *DivergenceRecordUpdate {
	_u.mutation.SetPrimarySummary(v)
	return _u
}

// SetNillablePrimarySummary sets the "primary_summary" field if the given value is not nil.
func (_u *DivergenceRecordUpdate) SetNillablePrimarySummary(v *string) *DivergenceRecordUpdate {
	if v != nil {
		_u.SetPrimarySummary(*v)
	}
	return _u
}

// ClearPrimarySummary clears the value of the "primary_summary" field.
func (_u *DivergenceRecordUpdate) ClearPrimarySummary() *DivergenceRecordUpdate {
	_u.mutation.ClearPrimarySummary()
	return _u
}

// SetShadowSummary sets the "shadow_summary" field.
func (_u *DivergenceRecordUpdate) SetShadowSummary(v string) *DivergenceRecordUpdate {
	_u.mutation.SetShadowSummary(v)
	return _u
}

// SetNillableShadowSummary sets the "shadow_summary" field if the given value is not nil.
func (_u *DivergenceRecordUpdate) SetNillableShadowSummary(v *string) *DivergenceRecordUpdate {
	if v != nil {
		_u.SetShadowSummary(*v)
	}
	return _u
}

// ClearShadowSummary clears the value of the "shadow_summary" field.
func (_u *DivergenceRecordUpdate) ClearShadowSummary() *DivergenceRecordUpdate {
	_u.mutation.ClearShadowSummary()
	return _u
}

// Mutation returns the DivergenceRecordMutation object of the builder.
func (_u *DivergenceRecordUpdate) Mutation() *DivergenceRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DivergenceRecordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DivergenceRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DivergenceRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DivergenceRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DivergenceRecordUpdate) check() error {
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "DivergenceRecord.session"`)
	}
	return nil
}

func (_u *DivergenceRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(divergencerecord.Table, divergencerecord.Columns, sqlgraph.NewFieldSpec(divergencerecord.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Similarity(); ok {
		_spec.SetField(divergencerecord.FieldSimilarity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSimilarity(); ok {
		_spec.AddField(divergencerecord.FieldSimilarity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Threshold(); ok {
		_spec.SetField(divergencerecord.FieldThreshold, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedThreshold(); ok {
		_spec.AddField(divergencerecord.FieldThreshold, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AlertTriggered(); ok {
		_spec.SetField(divergencerecord.FieldAlertTriggered, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(divergencerecord.FieldReason, field.TypeString, value)
	}
	if _u.mutation.ReasonCleared() {
		_spec.ClearField(divergencerecord.FieldReason, field.TypeString)
	}
	if value, ok := _u.mutation.Degraded(); ok {
		_spec.SetField(divergencerecord.FieldDegraded, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Perturbations(); ok {
		_spec.SetField(divergencerecord.FieldPerturbations, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPerturbations(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, divergencerecord.FieldPerturbations, value)
		})
	}
	if _u.mutation.PerturbationsCleared() {
		_spec.ClearField(divergencerecord.FieldPerturbations, field.TypeJSON)
	}
	if value, ok := _u.mutation.PrimarySummary(); ok {
		_spec.SetField(divergencerecord.FieldPrimarySummary, field.TypeString, value)
	}
	if _u.mutation.PrimarySummaryCleared() {
		_spec.ClearField(divergencerecord.FieldPrimarySummary, field.TypeString)
	}
	if value, ok := _u.mutation.ShadowSummary(); ok {
		_spec.SetField(divergencerecord.FieldShadowSummary, field.TypeString, value)
	}
	if _u.mutation.ShadowSummaryCleared() {
		_spec.ClearField(divergencerecord.FieldShadowSummary, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{divergencerecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DivergenceRecordUpdateOne is the builder for updating a single DivergenceRecord entity.
type DivergenceRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DivergenceRecordMutation
}

// SetSimilarity sets the "similarity" field.
func (_u *DivergenceRecordUpdateOne) SetSimilarity(v float64) *DivergenceRecordUpdateOne {
	_u.mutation.ResetSimilarity()
	_u.mutation.SetSimilarity(v)
	return _u
}

// SetNillableSimilarity sets the "similarity" field if the given value is not nil.
func (_u *DivergenceRecordUpdateOne) SetNillableSimilarity(v *float64) *DivergenceRecordUpdateOne {
	if v != nil {
		_u.SetSimilarity(*v)
	}
	return _u
}

// AddSimilarity adds value to the "similarity" field.
func (_u *DivergenceRecordUpdateOne) AddSimilarity(v float64) *DivergenceRecordUpdateOne {
	_u.mutation.AddSimilarity(v)
	return _u
}

// SetThreshold sets the "threshold" field.
func (_u *DivergenceRecordUpdateOne) SetThreshold(v float64) *DivergenceRecordUpdateOne {
	_u.mutation.ResetThreshold()
	_u.mutation.SetThreshold(v)
	return _u
}

// SetNillableThreshold sets the "threshold" field if the given value is not nil.
func (_u *DivergenceRecordUpdateOne) SetNillableThreshold(v *float64) *DivergenceRecordUpdateOne {
	if v != nil {
		_u.SetThreshold(*v)
	}
	return _u
}

// AddThreshold adds value to the "threshold" field.
func (_u *DivergenceRecordUpdateOne) AddThreshold(v float64) *DivergenceRecordUpdateOne {
	_u.mutation.AddThreshold(v)
	return _u
}

// SetAlertTriggered sets the "alert_triggered" field.
func (_u *DivergenceRecordUpdateOne) SetAlertTriggered(v bool) *DivergenceRecordUpdateOne {
	_u.mutation.SetAlertTriggered(v)
	return _u
}

// SetNillableAlertTriggered sets the "alert_triggered" field if the given value is not nil.
func (_u *DivergenceRecordUpdateOne) SetNillableAlertTriggered(v *bool) *DivergenceRecordUpdateOne {
	if v != nil {
		_u.SetAlertTriggered(*v)
	}
	return _u
}

// SetReason sets the "reason" field.
func (_u *DivergenceRecordUpdateOne) SetReason(v string) *DivergenceRecordUpdateOne {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *DivergenceRecordUpdateOne) SetNillableReason(v *string) *DivergenceRecordUpdateOne {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// ClearReason clears the value of the "reason" field.
func (_u *DivergenceRecordUpdateOne) ClearReason() *DivergenceRecordUpdateOne {
	_u.mutation.ClearReason()
	return _u
}

// SetDegraded sets the "degraded" field.
func (_u *DivergenceRecordUpdateOne) SetDegraded(v bool) *DivergenceRecordUpdateOne {
	_u.mutation.SetDegraded(v)
	return _u
}

// SetNillableDegraded sets the "degraded" field if the given value is not nil.
func (_u *DivergenceRecordUpdateOne) SetNillableDegraded(v *bool) *DivergenceRecordUpdateOne {
	if v != nil {
		_u.SetDegraded(*v)
	}
	return _u
}

// SetPerturbations sets the "perturbations" field.
func (_u *DivergenceRecordUpdateOne) SetPerturbations(v []map[string]interface{}) *DivergenceRecordUpdateOne {
	_u.mutation.SetPerturbations(v)
	return _u
}

// AppendPerturbations appends value to the "perturbations" field.
func (_u *DivergenceRecordUpdateOne) AppendPerturbations(v []map[string]interface{}) *DivergenceRecordUpdateOne {
	_u.mutation.AppendPerturbations(v)
	return _u
}

// ClearPerturbations clears the value of the "perturbations" field.
func (_u *DivergenceRecordUpdateOne) ClearPerturbations() *DivergenceRecordUpdateOne {
	_u.mutation.ClearPerturbations()
	return _u
}

// SetPrimarySummary sets the "primary_summary" field.
func (_u *DivergenceRecordUpdateOne) SetPrimarySummary(v string) *DivergenceRecordUpdateOne {
	_u.mutation.SetPrimarySummary(v)
	return _u
}

// SetNillablePrimarySummary sets the "primary_summary" field if the given value is not nil.
func (_u *DivergenceRecordUpdateOne) SetNillablePrimarySummary(v *string) *DivergenceRecordUpdateOne {
	if v != nil {
		_u.SetPrimarySummary(*v)
	}
	return _u
}

// ClearPrimarySummary clears the value of the "primary_summary" field.
func (_u *DivergenceRecordUpdateOne) ClearPrimarySummary() *DivergenceRecordUpdateOne {
	_u.mutation.ClearPrimarySummary()
	return _u
}

// SetShadowSummary sets the "shadow_summary" field.
func (_u *DivergenceRecordUpdateOne) SetShadowSummary(v string) *DivergenceRecordUpdateOne {
	_u.mutation.SetShadowSummary(v)
	return _u
}

// SetNillableShadowSummary sets the "shadow_summary" field if the given value is not nil.
func (_u *DivergenceRecordUpdateOne) SetNillableShadowSummary(v *string) *DivergenceRecordUpdateOne {
	if v != nil {
		_u.SetShadowSummary(*v)
	}
	return _u
}

// ClearShadowSummary clears the value of the "shadow_summary" field.
func (_u *DivergenceRecordUpdateOne) ClearShadowSummary() *DivergenceRecordUpdateOne {
	_u.mutation.ClearShadowSummary()
	return _u
}

// Mutation returns the DivergenceRecordMutation object of the builder.
func (_u *DivergenceRecordUpdateOne) Mutation() *DivergenceRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the DivergenceRecordUpdate builder.
func (_u *DivergenceRecordUpdateOne) Where(ps ...predicate.DivergenceRecord) *DivergenceRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DivergenceRecordUpdateOne) Select(field string, fields ...string) *DivergenceRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DivergenceRecord entity.
func (_u *DivergenceRecordUpdateOne) Save(ctx context.Context) (*DivergenceRecord, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DivergenceRecordUpdateOne) SaveX(ctx context.Context) *DivergenceRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DivergenceRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DivergenceRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DivergenceRecordUpdateOne) check() error {
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "DivergenceRecord.session"`)
	}
	return nil
}

func (_u *DivergenceRecordUpdateOne) sqlSave(ctx context.Context) (_node *DivergenceRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(divergencerecord.Table, divergencerecord.Columns, sqlgraph.NewFieldSpec(divergencerecord.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DivergenceRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, divergencerecord.FieldID)
		for _, f := range fields {
			if !divergencerecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != divergencerecord.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Similarity(); ok {
		_spec.SetField(divergencerecord.FieldSimilarity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSimilarity(); ok {
		_spec.AddField(divergencerecord.FieldSimilarity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Threshold(); ok {
		_spec.SetField(divergencerecord.FieldThreshold, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedThreshold(); ok {
		_spec.AddField(divergencerecord.FieldThreshold, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AlertTriggered(); ok {
		_spec.SetField(divergencerecord.FieldAlertTriggered, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(divergencerecord.FieldReason, field.TypeString, value)
	}
	if _u.mutation.ReasonCleared() {
		_spec.ClearField(divergencerecord.FieldReason, field.TypeString)
	}
	if value, ok := _u.mutation.Degraded(); ok {
		_spec.SetField(divergencerecord.FieldDegraded, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Perturbations(); ok {
		_spec.SetField(divergencerecord.FieldPerturbations, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPerturbations(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, divergencerecord.FieldPerturbations, value)
		})
	}
	if _u.mutation.PerturbationsCleared() {
		_spec.ClearField(divergencerecord.FieldPerturbations, field.TypeJSON)
	}
	if value, ok := _u.mutation.PrimarySummary(); ok {
		_spec.SetField(divergencerecord.FieldPrimarySummary, field.TypeString, value)
	}
	if _u.mutation.PrimarySummaryCleared() {
		_spec.ClearField(divergencerecord.FieldPrimarySummary, field.TypeString)
	}
	if value, ok := _u.mutation.ShadowSummary(); ok {
		_spec.SetField(divergencerecord.FieldShadowSummary, field.TypeString, value)
	}
	if _u.mutation.ShadowSummaryCleared() {
		_spec.ClearField(divergencerecord.FieldShadowSummary, field.TypeString)
	}
	_node = &DivergenceRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{divergencerecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
