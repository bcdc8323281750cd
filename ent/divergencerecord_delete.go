// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/procureguard/trimatch/ent/divergencerecord"
	"github.com/procureguard/trimatch/ent/predicate"
)

// DivergenceRecordDelete is the builder for deleting a DivergenceRecord entity.
type DivergenceRecordDelete struct {
	config
	hooks    []Hook
	mutation *DivergenceRecordMutation
}

// Where appends a list predicates to the DivergenceRecordDelete builder.
func (_d *DivergenceRecordDelete) Where(ps ...predicate.DivergenceRecord) *DivergenceRecordDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *DivergenceRecordDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *DivergenceRecordDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *DivergenceRecordDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(divergencerecord.Table, sqlgraph.NewFieldSpec(divergencerecord.FieldID, field.TypeString))
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

// DivergenceRecordDeleteOne is the builder for deleting a single DivergenceRecord entity.
type DivergenceRecordDeleteOne struct {
	_d *DivergenceRecordDelete
}

// Where appends a list predicates to the DivergenceRecordDelete builder.
func (_d *DivergenceRecordDeleteOne) Where(ps ...predicate.DivergenceRecord) *DivergenceRecordDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *DivergenceRecordDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{divergencerecord.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *DivergenceRecordDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
