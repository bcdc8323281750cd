// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/procureguard/trimatch/ent/feedbacksample"
	"github.com/procureguard/trimatch/ent/predicate"
)

// FeedbackSampleUpdate is the builder for updating FeedbackSample entities.
type FeedbackSampleUpdate struct {
	config
	hooks    []Hook
	mutation *FeedbackSampleMutation
}

// Where appends a list predicates to the FeedbackSampleUpdate builder.
func (_u *FeedbackSampleUpdate) Where(ps ...predicate.FeedbackSample) *FeedbackSampleUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSimilarity sets the "similarity" field.
func (_u *FeedbackSampleUpdate) SetSimilarity(v float64) *FeedbackSampleUpdate {
	_u.mutation.ResetSimilarity()
	_u.mutation.SetSimilarity(v)
	return _u
}

// SetNillableSimilarity sets the "similarity" field if the given value is not nil.
func (_u *FeedbackSampleUpdate) SetNillableSimilarity(v *float64) *FeedbackSampleUpdate {
	if v != nil {
		_u.SetSimilarity(*v)
	}
	return _u
}

// AddSimilarity adds value to the "similarity" field.
func (_u *FeedbackSampleUpdate) AddSimilarity(v float64) *FeedbackSampleUpdate {
	_u.mutation.AddSimilarity(v)
	return _u
}

// SetThreshold sets the "threshold" field.
func (_u *FeedbackSampleUpdate) SetThreshold(v float64) *FeedbackSampleUpdate {
	_u.mutation.ResetThreshold()
	_u.mutation.SetThreshold(v)
	return _u
}

// SetNillableThreshold sets the "threshold" field if the given value is not nil.
func (_u *FeedbackSampleUpdate) SetNillableThreshold(v *float64) *FeedbackSampleUpdate {
	if v != nil {
		_u.SetThreshold(*v)
	}
	return _u
}

// AddThreshold adds value to the "threshold" field.
func (_u *FeedbackSampleUpdate) AddThreshold(v float64) *FeedbackSampleUpdate {
	_u.mutation.AddThreshold(v)
	return _u
}

// SetWasAlert sets the "was_alert" field.
func (_u *FeedbackSampleUpdate) SetWasAlert(v bool) *FeedbackSampleUpdate {
	_u.mutation.SetWasAlert(v)
	return _u
}

// SetNillableWasAlert sets the "was_alert" field if the given value is not nil.
func (_u *FeedbackSampleUpdate) SetNillableWasAlert(v *bool) *FeedbackSampleUpdate {
	if v != nil {
		_u.SetWasAlert(*v)
	}
	return _u
}

// SetOutcome sets the "outcome" field.
func (_u *FeedbackSampleUpdate) SetOutcome(v feedbacksample.Outcome) *FeedbackSampleUpdate {
	_u.mutation.SetOutcome(v)
	return _u
}

// SetNillableOutcome sets the "outcome" field if the given value is not nil.
func (_u *FeedbackSampleUpdate) SetNillableOutcome(v *feedbacksample.Outcome) *FeedbackSampleUpdate {
	if v != nil {
		_u.SetOutcome(*v)
	}
	return _u
}

// SetReviewer sets the "reviewer" field.
func (_u *FeedbackSampleUpdate) SetReviewer(v string) *FeedbackSampleUpdate {
	_u.mutation.SetReviewer(v)
	return _u
}

// SetNillableReviewer sets the "reviewer" field if the given value is not nil.
func (_u *FeedbackSampleUpdate) SetNillableReviewer(v *string) *FeedbackSampleUpdate {
	if v != nil {
		_u.SetReviewer(*v)
	}
	return _u
}

// ClearReviewer clears the value of the "reviewer" field.
func (_u *FeedbackSampleUpdate) ClearReviewer() *FeedbackSampleUpdate {
	_u.mutation.ClearReviewer()
	return _u
}

// SetLabeledAt sets the "labeled_at" field.
func (_u *FeedbackSampleUpdate) SetLabeledAt(v time.Time) *FeedbackSampleUpdate {
	_u.mutation.SetLabeledAt(v)
	return _u
}

// SetNillableLabeledAt sets the "labeled_at" field if the given value is not nil.
func (_u *FeedbackSampleUpdate) SetNillableLabeledAt(v *time.Time) *FeedbackSampleUpdate {
	if v != nil {
		_u.SetLabeledAt(*v)
	}
	return _u
}

// ClearLabeledAt clears the value of the "labeled_at" field.
func (_u *FeedbackSampleUpdate) ClearLabeledAt() *FeedbackSampleUpdate {
	_u.mutation.ClearLabeledAt()
	return _u
}

// Mutation returns the FeedbackSampleMutation object of the builder.
func (_u *FeedbackSampleUpdate) Mutation() *FeedbackSampleMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *FeedbackSampleUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FeedbackSampleUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *FeedbackSampleUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FeedbackSampleUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FeedbackSampleUpdate) check() error {
	if v, ok := _u.mutation.Outcome(); ok {
		if err := feedbacksample.OutcomeValidator(v); err != nil {
			return &ValidationError{Name: "outcome", err: fmt.Errorf(`ent: validator failed for field "FeedbackSample.outcome": %w`, err)}
		}
	}
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "FeedbackSample.session"`)
	}
	return nil
}

func (_u *FeedbackSampleUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(feedbacksample.Table, feedbacksample.Columns, sqlgraph.NewFieldSpec(feedbacksample.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Similarity(); ok {
		_spec.SetField(feedbacksample.FieldSimilarity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSimilarity(); ok {
		_spec.AddField(feedbacksample.FieldSimilarity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Threshold(); ok {
		_spec.SetField(feedbacksample.FieldThreshold, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedThreshold(); ok {
		_spec.AddField(feedbacksample.FieldThreshold, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.WasAlert(); ok {
		_spec.SetField(feedbacksample.FieldWasAlert, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Outcome(); ok {
		_spec.SetField(feedbacksample.FieldOutcome, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Reviewer(); ok {
		_spec.SetField(feedbacksample.FieldReviewer, field.TypeString, value)
	}
	if _u.mutation.ReviewerCleared() {
		_spec.ClearField(feedbacksample.FieldReviewer, field.TypeString)
	}
	if value, ok := _u.mutation.LabeledAt(); ok {
		_spec.SetField(feedbacksample.FieldLabeledAt, field.TypeTime, value)
	}
	if _u.mutation.LabeledAtCleared() {
		_spec.ClearField(feedbacksample.FieldLabeledAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{feedbacksample.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// FeedbackSampleUpdateOne is the builder for updating a single FeedbackSample entity.
type FeedbackSampleUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *FeedbackSampleMutation
}

// SetSimilarity sets the "similarity" field.
func (_u *FeedbackSampleUpdateOne) SetSimilarity(v float64) *FeedbackSampleUpdateOne {
	_u.mutation.ResetSimilarity()
	_u.mutation.SetSimilarity(v)
	return _u
}

// SetNillableSimilarity sets the "similarity" field if the given value is not nil.
func (_u *FeedbackSampleUpdateOne) SetNillableSimilarity(v *float64) *FeedbackSampleUpdateOne {
	if v != nil {
		_u.SetSimilarity(*v)
	}
	return _u
}

// AddSimilarity adds value to the "similarity" field.
func (_u *FeedbackSampleUpdateOne) AddSimilarity(v float64) *FeedbackSampleUpdateOne {
	_u.mutation.AddSimilarity(v)
	return _u
}

// SetThreshold sets the "threshold" field.
func (_u *FeedbackSampleUpdateOne) SetThreshold(v float64) *FeedbackSampleUpdateOne {
	_u.mutation.ResetThreshold()
	_u.mutation.SetThreshold(v)
	return _u
}

// SetNillableThreshold sets the "threshold" field if the given value is not nil.
func (_u *FeedbackSampleUpdateOne) SetNillableThreshold(v *float64) *FeedbackSampleUpdateOne {
	if v != nil {
		_u.SetThreshold(*v)
	}
	return _u
}

// AddThreshold adds value to the "threshold" field.
func (_u *FeedbackSampleUpdateOne) AddThreshold(v float64) *FeedbackSampleUpdateOne {
	_u.mutation.AddThreshold(v)
	return _u
}

// SetWasAlert sets the "was_alert" field.
func (_u *FeedbackSampleUpdateOne) SetWasAlert(v bool) *FeedbackSampleUpdateOne {
	_u.mutation.SetWasAlert(v)
	return _u
}

// SetNillableWasAlert sets the "was_alert" field if the given value is not nil.
func (_u *FeedbackSampleUpdateOne) SetNillableWasAlert(v *bool) *FeedbackSampleUpdateOne {
	if v != nil {
		_u.SetWasAlert(*v)
	}
	return _u
}

// SetOutcome sets the "outcome" field.
func (_u *FeedbackSampleUpdateOne) SetOutcome(v feedbacksample.Outcome) *FeedbackSampleUpdateOne {
	_u.mutation.SetOutcome(v)
	return _u
}

// SetNillableOutcome sets the "outcome" field if the given value is not nil.
func (_u *FeedbackSampleUpdateOne) SetNillableOutcome(v *feedbacksample.Outcome) *FeedbackSampleUpdateOne {
	if v != nil {
		_u.SetOutcome(*v)
	}
	return _u
}

// SetReviewer sets the "reviewer" field.
func (_u *FeedbackSampleUpdateOne) SetReviewer(v string) *FeedbackSampleUpdateOne {
	_u.mutation.SetReviewer(v)
	return _u
}

// SetNillableReviewer sets the "reviewer" field if the given value is not nil.
func (_u *FeedbackSampleUpdateOne) SetNillableReviewer(v *string) *FeedbackSampleUpdateOne {
	if v != nil {
		_u.SetReviewer(*v)
	}
	return _u
}

// ClearReviewer clears the value of the "reviewer" field.
func (_u *FeedbackSampleUpdateOne) ClearReviewer() *FeedbackSampleUpdateOne {
	_u.mutation.ClearReviewer()
	return _u
}

// SetLabeledAt sets the "labeled_at" field.
func (_u *FeedbackSampleUpdateOne) SetLabeledAt(v time.Time) *FeedbackSampleUpdateOne {
	_u.mutation.SetLabeledAt(v)
	return _u
}

// SetNillableLabeledAt sets the "labeled_at" field if the given value is not nil.
func (_u *FeedbackSampleUpdateOne) SetNillableLabeledAt(v *time.Time) *FeedbackSampleUpdateOne {
	if v != nil {
		_u.SetLabeledAt(*v)
	}
	return _u
}

// ClearLabeledAt clears the value of the "labeled_at" field.
func (_u *FeedbackSampleUpdateOne) ClearLabeledAt() *FeedbackSampleUpdateOne {
	_u.mutation.ClearLabeledAt()
	return _u
}

// Mutation returns the FeedbackSampleMutation object of the builder.
func (_u *FeedbackSampleUpdateOne) Mutation() *FeedbackSampleMutation {
	return _u.mutation
}

// Where appends a list predicates to the FeedbackSampleUpdate builder.
func (_u *FeedbackSampleUpdateOne) Where(ps ...predicate.FeedbackSample) *FeedbackSampleUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *FeedbackSampleUpdateOne) Select(field string, fields ...string) *FeedbackSampleUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated FeedbackSample entity.
func (_u *FeedbackSampleUpdateOne) Save(ctx context.Context) (*FeedbackSample, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FeedbackSampleUpdateOne) SaveX(ctx context.Context) *FeedbackSample {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *FeedbackSampleUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FeedbackSampleUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FeedbackSampleUpdateOne) check() error {
	if v, ok := _u.mutation.Outcome(); ok {
		if err := feedbacksample.OutcomeValidator(v); err != nil {
			return &ValidationError{Name: "outcome", err: fmt.Errorf(`ent: validator failed for field "FeedbackSample.outcome": %w`, err)}
		}
	}
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "FeedbackSample.session"`)
	}
	return nil
}

func (_u *FeedbackSampleUpdateOne) sqlSave(ctx context.Context) (_node *FeedbackSample, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(feedbacksample.Table, feedbacksample.Columns, sqlgraph.NewFieldSpec(feedbacksample.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "FeedbackSample.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, feedbacksample.FieldID)
		for _, f := range fields {
			if !feedbacksample.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != feedbacksample.FieldID {
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
		_spec.SetField(feedbacksample.FieldSimilarity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSimilarity(); ok {
		_spec.AddField(feedbacksample.FieldSimilarity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Threshold(); ok {
		_spec.SetField(feedbacksample.FieldThreshold, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedThreshold(); ok {
		_spec.AddField(feedbacksample.FieldThreshold, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.WasAlert(); ok {
		_spec.SetField(feedbacksample.FieldWasAlert, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Outcome(); ok {
		_spec.SetField(feedbacksample.FieldOutcome, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Reviewer(); ok {
		_spec.SetField(feedbacksample.FieldReviewer, field.TypeString, value)
	}
	if _u.mutation.ReviewerCleared() {
		_spec.ClearField(feedbacksample.FieldReviewer, field.TypeString)
	}
	if value, ok := _u.mutation.LabeledAt(); ok {
		_spec.SetField(feedbacksample.FieldLabeledAt, field.TypeTime, value)
	}
	if _u.mutation.LabeledAtCleared() {
		_spec.ClearField(feedbacksample.FieldLabeledAt, field.TypeTime)
	}
	_node = &FeedbackSample{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{feedbacksample.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
