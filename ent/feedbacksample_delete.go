// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/procureguard/trimatch/ent/feedbacksample"
	"github.com/procureguard/trimatch/ent/predicate"
)

// FeedbackSampleDelete is the builder for deleting a FeedbackSample entity.
type FeedbackSampleDelete struct {
	config
	hooks    []Hook
	mutation *FeedbackSampleMutation
}

// Where appends a list predicates to the FeedbackSampleDelete builder.
func (_d *FeedbackSampleDelete) Where(ps ...predicate.FeedbackSample) *FeedbackSampleDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *FeedbackSampleDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *FeedbackSampleDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *FeedbackSampleDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(feedbacksample.Table, sqlgraph.NewFieldSpec(feedbacksample.FieldID, field.TypeString))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// FeedbackSampleDeleteOne is the builder for deleting a single FeedbackSample entity.
type FeedbackSampleDeleteOne struct {
	_d *FeedbackSampleDelete
}

// Where appends a list predicates to the FeedbackSampleDelete builder.
func (_d *FeedbackSampleDeleteOne) Where(ps ...predicate.FeedbackSample) *FeedbackSampleDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *FeedbackSampleDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{feedbacksample.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *FeedbackSampleDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
