// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/procureguard/trimatch/ent/divergencerecord"
	"github.com/procureguard/trimatch/ent/reconsession"
)

// DivergenceRecordCreate is the builder for creating a DivergenceRecord entity.
type DivergenceRecordCreate struct {
	config
	mutation *DivergenceRecordMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *DivergenceRecordCreate) SetSessionID(v string) *DivergenceRecordCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetTenantID sets the "tenant_id" field.
func (_c *DivergenceRecordCreate) SetTenantID(v string) *DivergenceRecordCreate {
	_c.mutation.SetTenantID(v)
	return _c
}

// SetSimilarity sets the "similarity" field.
func (_c *DivergenceRecordCreate) SetSimilarity(v float64) *DivergenceRecordCreate {
	_c.mutation.SetSimilarity(v)
	return _c
}

// SetThreshold sets the "threshold" field.
func (_c *DivergenceRecordCreate) SetThreshold(v float64) *DivergenceRecordCreate {
	_c.mutation.SetThreshold(v)
	return _c
}

// SetAlertTriggered sets the "alert_triggered" field.
func (_c *DivergenceRecordCreate) SetAlertTriggered(v bool) *DivergenceRecordCreate {
	_c.mutation.SetAlertTriggered(v)
	return _c
}

// SetNillableAlertTriggered sets the "alert_triggered" field if the given value is not nil.
func (_c *DivergenceRecordCreate) SetNillableAlertTriggered(v *bool) *DivergenceRecordCreate {
	if v != nil {
		_c.SetAlertTriggered(*v)
	}
	return _c
}

// SetReason sets the "reason" field.
func (_c *DivergenceRecordCreate) SetReason(v string) *DivergenceRecordCreate {
	_c.mutation.SetReason(v)
	return _c
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_c *DivergenceRecordCreate) SetNillableReason(v *string) *DivergenceRecordCreate {
	if v != nil {
		_c.SetReason(*v)
	}
	return _c
}

// SetDegraded sets the "degraded" field.
func (_c *DivergenceRecordCreate) SetDegraded(v bool) *DivergenceRecordCreate {
	_c.mutation.SetDegraded(v)
	return _c
}

// SetNillableDegraded sets the "degraded" field if the given value is not nil.
func (_c *DivergenceRecordCreate) SetNillableDegraded(v *bool) *DivergenceRecordCreate {
	if v != nil {
		_c.SetDegraded(*v)
	}
	return _c
}

// SetPerturbations sets the "perturbations" field.
func (_c *DivergenceRecordCreate) SetPerturbations(v []map[string]interface{}) *DivergenceRecordCreate {
	_c.mutation.SetPerturbations(v)
	return _c
}

// SetPrimarySummary sets the "primary_summary" field.
func (_c *DivergenceRecordCreate) SetPrimarySummary(v string) *DivergenceRecordCreate {
	_c.mutation.SetPrimarySummary(v)
	return _c
}

// SetNillablePrimarySummary sets the "primary_summary" field if the given value is not nil.
func (_c *DivergenceRecordCreate) SetNillablePrimarySummary(v *string) *DivergenceRecordCreate {
	if v != nil {
		_c.SetPrimarySummary(*v)
	}
	return _c
}

// SetShadowSummary sets the "shadow_summary" field.
func (_c *DivergenceRecordCreate) SetShadowSummary(v string) *DivergenceRecordCreate {
	_c.mutation.SetShadowSummary(v)
	return _c
}

// SetNillableShadowSummary sets the "shadow_summary" field if the given value is not nil.
func (_c *DivergenceRecordCreate) SetNillableShadowSummary(v *string) *DivergenceRecordCreate {
	if v != nil {
		_c.SetShadowSummary(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *DivergenceRecordCreate) SetCreatedAt(v time.Time) *DivergenceRecordCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DivergenceRecordCreate) SetNillableCreatedAt(v *time.Time) *DivergenceRecordCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DivergenceRecordCreate) SetID(v string) *DivergenceRecordCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetSession sets the "session" edge to the ReconSession entity.
func (_c *DivergenceRecordCreate) SetSession(v *ReconSession) *DivergenceRecordCreate {
	return _c.SetSessionID(v.ID)
}

// Mutation returns the DivergenceRecordMutation object of the builder.
func (_c *DivergenceRecordCreate) Mutation() *DivergenceRecordMutation {
	return _c.mutation
}

// Save creates the DivergenceRecord in the database.
func (_c *DivergenceRecordCreate) Save(ctx context.Context) (*DivergenceRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DivergenceRecordCreate) SaveX(ctx context.Context) *DivergenceRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DivergenceRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DivergenceRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DivergenceRecordCreate) defaults() {
	if _, ok := _c.mutation.AlertTriggered(); !ok {
		v := divergencerecord.DefaultAlertTriggered
		_c.mutation.SetAlertTriggered(v)
	}
	if _, ok := _c.mutation.Degraded(); !ok {
		v := divergencerecord.DefaultDegraded
		_c.mutation.SetDegraded(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := divergencerecord.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DivergenceRecordCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "DivergenceRecord.session_id"`)}
	}
	if _, ok := _c.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "DivergenceRecord.tenant_id"`)}
	}
	if _, ok := _c.mutation.Similarity(); !ok {
		return &ValidationError{Name: "similarity", err: errors.New(`ent: missing required field "DivergenceRecord.similarity"`)}
	}
	if _, ok := _c.mutation.Threshold(); !ok {
		return &ValidationError{Name: "threshold", err: errors.New(`ent: missing required field "DivergenceRecord.threshold"`)}
	}
	if _, ok := _c.mutation.AlertTriggered(); !ok {
		return &ValidationError{Name: "alert_triggered", err: errors.New(`ent: missing required field "DivergenceRecord.alert_triggered"`)}
	}
	if _, ok := _c.mutation.Degraded(); !ok {
		return &ValidationError{Name: "degraded", err: errors.New(`ent: missing required field "DivergenceRecord.degraded"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "DivergenceRecord.created_at"`)}
	}
	if len(_c.mutation.SessionIDs()) == 0 {
		return &ValidationError{Name: "session", err: errors.New(`ent: missing required edge "DivergenceRecord.session"`)}
	}
	return nil
}

func (_c *DivergenceRecordCreate) sqlSave(ctx context.Context) (*DivergenceRecord, error) {
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
			return nil, fmt.Errorf("unexpected DivergenceRecord.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *DivergenceRecordCreate) createSpec() (*DivergenceRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &DivergenceRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(divergencerecord.Table, sqlgraph.NewFieldSpec(divergencerecord.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TenantID(); ok {
		_spec.SetField(divergencerecord.FieldTenantID, field.TypeString, value)
		_node.TenantID = value
	}
	if value, ok := _c.mutation.Similarity(); ok {
		_spec.SetField(divergencerecord.FieldSimilarity, field.TypeFloat64, value)
		_node.Similarity = value
	}
	if value, ok := _c.mutation.Threshold(); ok {
		_spec.SetField(divergencerecord.FieldThreshold, field.TypeFloat64, value)
		_node.Threshold = value
	}
	if value, ok := _c.mutation.AlertTriggered(); ok {
		_spec.SetField(divergencerecord.FieldAlertTriggered, field.TypeBool, value)
		_node.AlertTriggered = value
	}
	if value, ok := _c.mutation.Reason(); ok {
		_spec.SetField(divergencerecord.FieldReason, field.TypeString, value)
		_node.Reason = &value
	}
	if value, ok := _c.mutation.Degraded(); ok {
		_spec.SetField(divergencerecord.FieldDegraded, field.TypeBool, value)
		_node.Degraded = value
	}
	if value, ok := _c.mutation.Perturbations(); ok {
		_spec.SetField(divergencerecord.FieldPerturbations, field.TypeJSON, value)
		_node.Perturbations = value
	}
	if value, ok := _c.mutation.PrimarySummary(); ok {
		_spec.SetField(divergencerecord.FieldPrimarySummary, field.TypeString, value)
		_node.PrimarySummary = &value
	}
	if value, ok := _c.mutation.ShadowSummary(); ok {
		_spec.SetField(divergencerecord.FieldShadowSummary, field.TypeString, value)
		_node.ShadowSummary = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(divergencerecord.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.SessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   divergencerecord.SessionTable,
			Columns: []string{divergencerecord.SessionColumn},
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

// DivergenceRecordCreateBulk is the builder for creating many DivergenceRecord entities in bulk.
type DivergenceRecordCreateBulk struct {
	config
	err      error
	builders []*DivergenceRecordCreate
}

// Save creates the DivergenceRecord entities in the database.
func (_c *DivergenceRecordCreateBulk) Save(ctx context.Context) ([]*DivergenceRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DivergenceRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DivergenceRecordMutation)
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
func (_c *DivergenceRecordCreateBulk) SaveX(ctx context.Context) []*DivergenceRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DivergenceRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DivergenceRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
