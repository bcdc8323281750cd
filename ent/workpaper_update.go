// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/procureguard/trimatch/ent/predicate"
	"github.com/procureguard/trimatch/ent/workpaper"
)

// WorkpaperUpdate is the builder for updating Workpaper entities.
type WorkpaperUpdate struct {
	config
	hooks    []Hook
	mutation *WorkpaperMutation
}

// Where appends a list predicates to the WorkpaperUpdate builder.
func (_u *WorkpaperUpdate) Where(ps ...predicate.Workpaper) *WorkpaperUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetHTML sets the "html" field.
func (_u *WorkpaperUpdate) SetHTML(v string) *WorkpaperUpdate {
	_u.mutation.SetHTML(v)
	return _u
}

// SetNillableHTML sets the "html" field if the given value is not nil.
func (_u *WorkpaperUpdate) SetNillableHTML(v *string) *WorkpaperUpdate {
	if v != nil {
		_u.SetHTML(*v)
	}
	return _u
}

// SetSections sets the "sections" field.
func (_u *WorkpaperUpdate) SetSections(v map[string]interface{}) *WorkpaperUpdate {
	_u.mutation.SetSections(v)
	return _u
}

// ClearSections clears the value of the "sections" field.
func (_u *WorkpaperUpdate) ClearSections() *WorkpaperUpdate {
	_u.mutation.ClearSections()
	return _u
}

// SetCitationCount sets the "citation_count" field.
func (_u *WorkpaperUpdate) SetCitationCount(v int) *WorkpaperUpdate {
	_u.mutation.ResetCitationCount()
	_u.mutation.SetCitationCount(v)
	return _u
}

// SetNillableCitationCount sets the "citation_count" field if the given value is not nil.
func (_u *WorkpaperUpdate) SetNillableCitationCount(v *int) *WorkpaperUpdate {
	if v != nil {
		_u.SetCitationCount(*v)
	}
	return _u
}

// AddCitationCount adds value to the "citation_count" field.
func (_u *WorkpaperUpdate) AddCitationCount(v int) *WorkpaperUpdate {
	_u.mutation.AddCitationCount(v)
	return _u
}

// Mutation returns the WorkpaperMutation object of the builder.
func (_u *WorkpaperUpdate) Mutation() *WorkpaperMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *WorkpaperUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WorkpaperUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *WorkpaperUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WorkpaperUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WorkpaperUpdate) check() error {
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Workpaper.session"`)
	}
	return nil
}

func (_u *WorkpaperUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(workpaper.Table, workpaper.Columns, sqlgraph.NewFieldSpec(workpaper.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.HTML(); ok {
		_spec.SetField(workpaper.FieldHTML, field.TypeString, value)
	}
	if value, ok := _u.mutation.Sections(); ok {
		_spec.SetField(workpaper.FieldSections, field.TypeJSON, value)
	}
	if _u.mutation.SectionsCleared() {
		_spec.ClearField(workpaper.FieldSections, field.TypeJSON)
	}
	if value, ok := _u.mutation.CitationCount(); ok {
		_spec.SetField(workpaper.FieldCitationCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCitationCount(); ok {
		_spec.AddField(workpaper.FieldCitationCount, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{workpaper.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// WorkpaperUpdateOne is the builder for updating a single Workpaper entity.
type WorkpaperUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WorkpaperMutation
}

// SetHTML sets the "html" field.
func (_u *WorkpaperUpdateOne) SetHTML(v string) *WorkpaperUpdateOne {
	_u.mutation.SetHTML(v)
	return _u
}

// SetNillableHTML sets the "html" field if the given value is not nil.
func (_u *WorkpaperUpdateOne) SetNillableHTML(v *string) *WorkpaperUpdateOne {
	if v != nil {
		_u.SetHTML(*v)
	}
	return _u
}

// SetSections sets the "sections" field.
func (_u *WorkpaperUpdateOne) SetSections(v map[string]interface{}) *WorkpaperUpdateOne {
	_u.mutation.SetSections(v)
	return _u
}

// ClearSections clears the value of the "sections" field.
func (_u *WorkpaperUpdateOne) ClearSections() *WorkpaperUpdateOne {
	_u.mutation.ClearSections()
	return _u
}

// SetCitationCount sets the "citation_count" field.
func (_u *WorkpaperUpdateOne) SetCitationCount(v int) *WorkpaperUpdateOne {
	_u.mutation.ResetCitationCount()
	_u.mutation.SetCitationCount(v)
	return _u
}

// SetNillableCitationCount sets the "citation_count" field if the given value is not nil.
func (_u *WorkpaperUpdateOne) SetNillableCitationCount(v *int) *WorkpaperUpdateOne {
	if v != nil {
		_u.SetCitationCount(*v)
	}
	return _u
}

// AddCitationCount adds value to the "citation_count" field.
func (_u *WorkpaperUpdateOne) AddCitationCount(v int) *WorkpaperUpdateOne {
	_u.mutation.AddCitationCount(v)
	return _u
}

// Mutation returns the WorkpaperMutation object of the builder.
func (_u *WorkpaperUpdateOne) Mutation() *WorkpaperMutation {
	return _u.mutation
}

// Where appends a list predicates to the WorkpaperUpdate builder.
func (_u *WorkpaperUpdateOne) Where(ps ...predicate.Workpaper) *WorkpaperUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *WorkpaperUpdateOne) Select(field string, fields ...string) *WorkpaperUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Workpaper entity.
func (_u *WorkpaperUpdateOne) Save(ctx context.Context) (*Workpaper, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WorkpaperUpdateOne) SaveX(ctx context.Context) *Workpaper {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *WorkpaperUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WorkpaperUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WorkpaperUpdateOne) check() error {
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Workpaper.session"`)
	}
	return nil
}

func (_u *WorkpaperUpdateOne) sqlSave(ctx context.Context) (_node *Workpaper, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(workpaper.Table, workpaper.Columns, sqlgraph.NewFieldSpec(workpaper.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Workpaper.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, workpaper.FieldID)
		for _, f := range fields {
			if !workpaper.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != workpaper.FieldID {
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
	if value, ok := _u.mutation.HTML(); ok {
		_spec.SetField(workpaper.FieldHTML, field.TypeString, value)
	}
	if value, ok := _u.mutation.Sections(); ok {
		_spec.SetField(workpaper.FieldSections, field.TypeJSON, value)
	}
	if _u.mutation.SectionsCleared() {
		_spec.ClearField(workpaper.FieldSections, field.TypeJSON)
	}
	if value, ok := _u.mutation.CitationCount(); ok {
		_spec.SetField(workpaper.FieldCitationCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCitationCount(); ok {
		_spec.AddField(workpaper.FieldCitationCount, field.TypeInt, value)
	}
	_node = &Workpaper{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{workpaper.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
