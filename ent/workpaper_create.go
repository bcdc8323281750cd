// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/procureguard/trimatch/ent/reconsession"
	"github.com/procureguard/trimatch/ent/workpaper"
)

// WorkpaperCreate is the builder for creating a Workpaper entity.
type WorkpaperCreate struct {
	config
	mutation *WorkpaperMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *WorkpaperCreate) SetSessionID(v string) *WorkpaperCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetHTML sets the "html" field.
func (_c *WorkpaperCreate) SetHTML(v string) *WorkpaperCreate {
	_c.mutation.SetHTML(v)
	return _c
}

// SetSections sets the "sections" field.
func (_c *WorkpaperCreate) SetSections(v map[string]interface{}) *WorkpaperCreate {
	_c.mutation.SetSections(v)
	return _c
}

// SetCitationCount sets the "citation_count" field.
func (_c *WorkpaperCreate) SetCitationCount(v int) *WorkpaperCreate {
	_c.mutation.SetCitationCount(v)
	return _c
}

// SetNillableCitationCount sets the "citation_count" field if the given value is not nil.
func (_c *WorkpaperCreate) SetNillableCitationCount(v *int) *WorkpaperCreate {
	if v != nil {
		_c.SetCitationCount(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *WorkpaperCreate) SetCreatedAt(v time.Time) *WorkpaperCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *WorkpaperCreate) SetNillableCreatedAt(v *time.Time) *WorkpaperCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *WorkpaperCreate) SetID(v string) *WorkpaperCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetSession sets the "session" edge to the ReconSession entity.
func (_c *WorkpaperCreate) SetSession(v *ReconSession) *WorkpaperCreate {
	return _c.SetSessionID(v.ID)
}

// Mutation returns the WorkpaperMutation object of the builder.
func (_c *WorkpaperCreate) Mutation() *WorkpaperMutation {
	return _c.mutation
}

// Save creates the Workpaper in the database.
func (_c *WorkpaperCreate) Save(ctx context.Context) (*Workpaper, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *WorkpaperCreate) SaveX(ctx context.Context) *Workpaper {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WorkpaperCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WorkpaperCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *WorkpaperCreate) defaults() {
	if _, ok := _c.mutation.CitationCount(); !ok {
		v := workpaper.DefaultCitationCount
		_c.mutation.SetCitationCount(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := workpaper.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *WorkpaperCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "Workpaper.session_id"`)}
	}
	if _, ok := _c.mutation.HTML(); !ok {
		return &ValidationError{Name: "html", err: errors.New(`ent: missing required field "Workpaper.html"`)}
	}
	if _, ok := _c.mutation.CitationCount(); !ok {
		return &ValidationError{Name: "citation_count", err: errors.New(`ent: missing required field "Workpaper.citation_count"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Workpaper.created_at"`)}
	}
	if len(_c.mutation.SessionIDs()) == 0 {
		return &ValidationError{Name: "session", err: errors.New(`ent: missing required edge "Workpaper.session"`)}
	}
	return nil
}

func (_c *WorkpaperCreate) sqlSave(ctx context.Context) (*Workpaper, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Workpaper.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *WorkpaperCreate) createSpec() (*Workpaper, *sqlgraph.CreateSpec) {
	var (
		_node = &Workpaper{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(workpaper.Table, sqlgraph.NewFieldSpec(workpaper.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.HTML(); ok {
		_spec.SetField(workpaper.FieldHTML, field.TypeString, value)
		_node.HTML = value
	}
	if value, ok := _c.mutation.Sections(); ok {
		_spec.SetField(workpaper.FieldSections, field.TypeJSON, value)
		_node.Sections = value
	}
	if value, ok := _c.mutation.CitationCount(); ok {
		_spec.SetField(workpaper.FieldCitationCount, field.TypeInt, value)
		_node.CitationCount = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(workpaper.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.SessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   workpaper.SessionTable,
			Columns: []string{workpaper.SessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(reconsession.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.SessionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// WorkpaperCreateBulk is the builder for creating many Workpaper entities in bulk.
type WorkpaperCreateBulk struct {
	config
	err      error
	builders []*WorkpaperCreate
}

// Save creates the Workpaper entities in the database.
func (_c *WorkpaperCreateBulk) Save(ctx context.Context) ([]*Workpaper, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Workpaper, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*WorkpaperMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *WorkpaperCreateBulk) SaveX(ctx context.Context) []*Workpaper {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WorkpaperCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WorkpaperCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
