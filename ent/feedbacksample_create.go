// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/procureguard/trimatch/ent/feedbacksample"
	"github.com/procureguard/trimatch/ent/reconsession"
)

// FeedbackSampleCreate is the builder for creating a FeedbackSample entity.
type FeedbackSampleCreate struct {
	config
	mutation *FeedbackSampleMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *FeedbackSampleCreate) SetSessionID(v string) *FeedbackSampleCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetTenantID sets the "tenant_id" field.
func (_c *FeedbackSampleCreate) SetTenantID(v string) *FeedbackSampleCreate {
	_c.mutation.SetTenantID(v)
	return _c
}

// SetSimilarity sets the "similarity" field.
func (_c *FeedbackSampleCreate) SetSimilarity(v float64) *FeedbackSampleCreate {
	_c.mutation.SetSimilarity(v)
	return _c
}

// SetThreshold sets the "threshold" field.
func (_c *FeedbackSampleCreate) SetThreshold(v float64) *FeedbackSampleCreate {
	_c.mutation.SetThreshold(v)
	return _c
}

// SetWasAlert sets the "was_alert" field.
func (_c *FeedbackSampleCreate) SetWasAlert(v bool) *FeedbackSampleCreate {
	_c.mutation.SetWasAlert(v)
	return _c
}

// SetNillableWasAlert sets the "was_alert" field if the given value is not nil.
func (_c *FeedbackSampleCreate) SetNillableWasAlert(v *bool) *FeedbackSampleCreate {
	if v != nil {
		_c.SetWasAlert(*v)
	}
	return _c
}

// SetOutcome sets the "outcome" field.
func (_c *FeedbackSampleCreate) SetOutcome(v feedbacksample.Outcome) *FeedbackSampleCreate {
	_c.mutation.SetOutcome(v)
	return _c
}

// SetNillableOutcome sets the "outcome" field if the given value is not nil.
func (_c *FeedbackSampleCreate) SetNillableOutcome(v *feedbacksample.Outcome) *FeedbackSampleCreate {
	if v != nil {
		_c.SetOutcome(*v)
	}
	return _c
}

// SetReviewer sets the "reviewer" field.
func (_c *FeedbackSampleCreate) SetReviewer(v string) *FeedbackSampleCreate {
	_c.mutation.SetReviewer(v)
	return _c
}

// SetNillableReviewer sets the "reviewer" field if the given value is not nil.
func (_c *FeedbackSampleCreate) SetNillableReviewer(v *string) *FeedbackSampleCreate {
	if v != nil {
		_c.SetReviewer(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *FeedbackSampleCreate) SetCreatedAt(v time.Time) *FeedbackSampleCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *FeedbackSampleCreate) SetNillableCreatedAt(v *time.Time) *FeedbackSampleCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetLabeledAt sets the "labeled_at" field.
func (_c *FeedbackSampleCreate) SetLabeledAt(v time.Time) *FeedbackSampleCreate {
	_c.mutation.SetLabeledAt(v)
	return _c
}

// SetNillableLabeledAt sets the "labeled_at" field if the given value is not nil.
func (_c *FeedbackSampleCreate) SetNillableLabeledAt(v *time.Time) *FeedbackSampleCreate {
	if v != nil {
		_c.SetLabeledAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *FeedbackSampleCreate) SetID(v string) *FeedbackSampleCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetSession sets the "session" edge to the ReconSession entity.
func (_c *FeedbackSampleCreate) SetSession(v *ReconSession) *FeedbackSampleCreate {
	return _c.SetSessionID(v.ID)
}

// Mutation returns the FeedbackSampleMutation object of the builder.
func (_c *FeedbackSampleCreate) Mutation() *FeedbackSampleMutation {
	return _c.mutation
}

// Save creates the FeedbackSample in the database.
func (_c *FeedbackSampleCreate) Save(ctx context.Context) (*FeedbackSample, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *FeedbackSampleCreate) SaveX(ctx context.Context) *FeedbackSample {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FeedbackSampleCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FeedbackSampleCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *FeedbackSampleCreate) defaults() {
	if _, ok := _c.mutation.WasAlert(); !ok {
		v := feedbacksample.DefaultWasAlert
		_c.mutation.SetWasAlert(v)
	}
	if _, ok := _c.mutation.Outcome(); !ok {
		v := feedbacksample.DefaultOutcome
		_c.mutation.SetOutcome(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := feedbacksample.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *FeedbackSampleCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "FeedbackSample.session_id"`)}
	}
	if _, ok := _c.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "FeedbackSample.tenant_id"`)}
	}
	if _, ok := _c.mutation.Similarity(); !ok {
		return &ValidationError{Name: "similarity", err: errors.New(`ent: missing required field "FeedbackSample.similarity"`)}
	}
	if _, ok := _c.mutation.Threshold(); !ok {
		return &ValidationError{Name: "threshold", err: errors.New(`ent: missing required field "FeedbackSample.threshold"`)}
	}
	if _, ok := _c.mutation.WasAlert(); !ok {
		return &ValidationError{Name: "was_alert", err: errors.New(`ent: missing required field "FeedbackSample.was_alert"`)}
	}
	if _, ok := _c.mutation.Outcome(); !ok {
		return &ValidationError{Name: "outcome", err: errors.New(`ent: missing required field "FeedbackSample.outcome"`)}
	}
	if v, ok := _c.mutation.Outcome(); ok {
		if err := feedbacksample.OutcomeValidator(v); err != nil {
			return &ValidationError{Name: "outcome", err: fmt.Errorf(`ent: validator failed for field "FeedbackSample.outcome": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "FeedbackSample.created_at"`)}
	}
	if len(_c.mutation.SessionIDs()) == 0 {
		return &ValidationError{Name: "session", err: errors.New(`ent: missing required edge "FeedbackSample.session"`)}
	}
	return nil
}

func (_c *FeedbackSampleCreate) sqlSave(ctx context.Context) (*FeedbackSample, error) {
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
			return nil, fmt.Errorf("unexpected FeedbackSample.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *FeedbackSampleCreate) createSpec() (*FeedbackSample, *sqlgraph.CreateSpec) {
	var (
		_node = &FeedbackSample{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(feedbacksample.Table, sqlgraph.NewFieldSpec(feedbacksample.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TenantID(); ok {
		_spec.SetField(feedbacksample.FieldTenantID, field.TypeString, value)
		_node.TenantID = value
	}
	if value, ok := _c.mutation.Similarity(); ok {
		_spec.SetField(feedbacksample.FieldSimilarity, field.TypeFloat64, value)
		_node.Similarity = value
	}
	if value, ok := _c.mutation.Threshold(); ok {
		_spec.SetField(feedbacksample.FieldThreshold, field.TypeFloat64, value)
		_node.Threshold = value
	}
	if value, ok := _c.mutation.WasAlert(); ok {
		_spec.SetField(feedbacksample.FieldWasAlert, field.TypeBool, value)
		_node.WasAlert = value
	}
	if value, ok := _c.mutation.Outcome(); ok {
		_spec.SetField(feedbacksample.FieldOutcome, field.TypeEnum, value)
		_node.Outcome = value
	}
	if value, ok := _c.mutation.Reviewer(); ok {
		_spec.SetField(feedbacksample.FieldReviewer, field.TypeString, value)
		_node.Reviewer = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(feedbacksample.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.LabeledAt(); ok {
		_spec.SetField(feedbacksample.FieldLabeledAt, field.TypeTime, value)
		_node.LabeledAt = &value
	}
	if nodes := _c.mutation.SessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   feedbacksample.SessionTable,
			Columns: []string{feedbacksample.SessionColumn},
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

// FeedbackSampleCreateBulk is the builder for creating many FeedbackSample entities in bulk.
type FeedbackSampleCreateBulk struct {
	config
	err      error
	builders []*FeedbackSampleCreate
}

// Save creates the FeedbackSample entities in the database.
func (_c *FeedbackSampleCreateBulk) Save(ctx context.Context) ([]*FeedbackSample, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*FeedbackSample, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*FeedbackSampleMutation)
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
func (_c *FeedbackSampleCreateBulk) SaveX(ctx context.Context) []*FeedbackSample {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FeedbackSampleCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FeedbackSampleCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
