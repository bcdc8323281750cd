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
	"github.com/procureguard/trimatch/ent/feedbacksample"
	"github.com/procureguard/trimatch/ent/progressevent"
	"github.com/procureguard/trimatch/ent/reconsession"
	"github.com/procureguard/trimatch/ent/stageexecution"
	"github.com/procureguard/trimatch/ent/workpaper"
)

// ReconSessionCreate is the builder for creating a ReconSession entity.
type ReconSessionCreate struct {
	config
	mutation *ReconSessionMutation
	hooks    []Hook
}

// SetTenantID sets the "tenant_id" field.
func (_c *ReconSessionCreate) SetTenantID(v string) *ReconSessionCreate {
	_c.mutation.SetTenantID(v)
	return _c
}

// SetDocumentBundle sets the "document_bundle" field.
func (_c *ReconSessionCreate) SetDocumentBundle(v string) *ReconSessionCreate {
	_c.mutation.SetDocumentBundle(v)
	return _c
}

// SetVendorName sets the "vendor_name" field.
func (_c *ReconSessionCreate) SetVendorName(v string) *ReconSessionCreate {
	_c.mutation.SetVendorName(v)
	return _c
}

// SetNillableVendorName sets the "vendor_name" field if the given value is not nil.
func (_c *ReconSessionCreate) SetNillableVendorName(v *string) *ReconSessionCreate {
	if v != nil {
		_c.SetVendorName(*v)
	}
	return _c
}

// SetInvoiceNumber sets the "invoice_number" field.
func (_c *ReconSessionCreate) SetInvoiceNumber(v string) *ReconSessionCreate {
	_c.mutation.SetInvoiceNumber(v)
	return _c
}

// SetNillableInvoiceNumber sets the "invoice_number" field if the given value is not nil.
func (_c *ReconSessionCreate) SetNillableInvoiceNumber(v *string) *ReconSessionCreate {
	if v != nil {
		_c.SetInvoiceNumber(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *ReconSessionCreate) SetStatus(v reconsession.Status) *ReconSessionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ReconSessionCreate) SetNillableStatus(v *reconsession.Status) *ReconSessionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ReconSessionCreate) SetCreatedAt(v time.Time) *ReconSessionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ReconSessionCreate) SetNillableCreatedAt(v *time.Time) *ReconSessionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *ReconSessionCreate) SetStartedAt(v time.Time) *ReconSessionCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *ReconSessionCreate) SetNillableStartedAt(v *time.Time) *ReconSessionCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *ReconSessionCreate) SetCompletedAt(v time.Time) *ReconSessionCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *ReconSessionCreate) SetNillableCompletedAt(v *time.Time) *ReconSessionCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *ReconSessionCreate) SetErrorMessage(v string) *ReconSessionCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *ReconSessionCreate) SetNillableErrorMessage(v *string) *ReconSessionCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetCurrentStage sets the "current_stage" field.
func (_c *ReconSessionCreate) SetCurrentStage(v string) *ReconSessionCreate {
	_c.mutation.SetCurrentStage(v)
	return _c
}

// SetNillableCurrentStage sets the "current_stage" field if the given value is not nil.
func (_c *ReconSessionCreate) SetNillableCurrentStage(v *string) *ReconSessionCreate {
	if v != nil {
		_c.SetCurrentStage(*v)
	}
	return _c
}

// SetVerdict sets the "verdict" field.
func (_c *ReconSessionCreate) SetVerdict(v map[string]interface{}) *ReconSessionCreate {
	_c.mutation.SetVerdict(v)
	return _c
}

// SetVerdictSummary sets the "verdict_summary" field.
func (_c *ReconSessionCreate) SetVerdictSummary(v string) *ReconSessionCreate {
	_c.mutation.SetVerdictSummary(v)
	return _c
}

// SetNillableVerdictSummary sets the "verdict_summary" field if the given value is not nil.
func (_c *ReconSessionCreate) SetNillableVerdictSummary(v *string) *ReconSessionCreate {
	if v != nil {
		_c.SetVerdictSummary(*v)
	}
	return _c
}

// SetStateErrors sets the "state_errors" field.
func (_c *ReconSessionCreate) SetStateErrors(v []map[string]interface{}) *ReconSessionCreate {
	_c.mutation.SetStateErrors(v)
	return _c
}

// SetSessionMetadata sets the "session_metadata" field.
func (_c *ReconSessionCreate) SetSessionMetadata(v map[string]interface{}) *ReconSessionCreate {
	_c.mutation.SetSessionMetadata(v)
	return _c
}

// SetPodID sets the "pod_id" field.
func (_c *ReconSessionCreate) SetPodID(v string) *ReconSessionCreate {
	_c.mutation.SetPodID(v)
	return _c
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_c *ReconSessionCreate) SetNillablePodID(v *string) *ReconSessionCreate {
	if v != nil {
		_c.SetPodID(*v)
	}
	return _c
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_c *ReconSessionCreate) SetLastHeartbeatAt(v time.Time) *ReconSessionCreate {
	_c.mutation.SetLastHeartbeatAt(v)
	return _c
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_c *ReconSessionCreate) SetNillableLastHeartbeatAt(v *time.Time) *ReconSessionCreate {
	if v != nil {
		_c.SetLastHeartbeatAt(*v)
	}
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *ReconSessionCreate) SetDeletedAt(v time.Time) *ReconSessionCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_c *ReconSessionCreate) SetNillableDeletedAt(v *time.Time) *ReconSessionCreate {
	if v != nil {
		_c.SetDeletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ReconSessionCreate) SetID(v string) *ReconSessionCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddStageExecutionIDs adds the "stage_executions" edge to the StageExecution entity by IDs.
func (_c *ReconSessionCreate) AddStageExecutionIDs(ids ...string) *ReconSessionCreate {
	_c.mutation.AddStageExecutionIDs(ids...)
	return _c
}

// AddStageExecutions adds the "stage_executions" edges to the StageExecution entity.
func (_c *ReconSessionCreate) AddStageExecutions(v ...*StageExecution) *ReconSessionCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddStageExecutionIDs(ids...)
}

// AddDivergenceRecordIDs adds the "divergence_records" edge to the DivergenceRecord entity by IDs.
func (_c *ReconSessionCreate) AddDivergenceRecordIDs(ids ...string) *ReconSessionCreate {
	_c.mutation.AddDivergenceRecordIDs(ids...)
	return _c
}

// AddDivergenceRecords adds the "divergence_records" edges to the DivergenceRecord entity.
func (_c *ReconSessionCreate) AddDivergenceRecords(v ...*DivergenceRecord) *ReconSessionCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddDivergenceRecordIDs(ids...)
}

// SetWorkpaperID sets the "workpaper" edge to the Workpaper entity by ID.
func (_c *ReconSessionCreate) SetWorkpaperID(id string) *ReconSessionCreate {
	_c.mutation.SetWorkpaperID(id)
	return _c
}

// SetNillableWorkpaperID sets the "workpaper" edge to the Workpaper entity by ID if the given value is not nil.
func (_c *ReconSessionCreate) SetNillableWorkpaperID(id *string) *ReconSessionCreate {
	if id != nil {
		_c = _c.SetWorkpaperID(*id)
	}
	return _c
}

// SetWorkpaper sets the "workpaper" edge to the Workpaper entity.
func (_c *ReconSessionCreate) SetWorkpaper(v *Workpaper) *ReconSessionCreate {
	return _c.SetWorkpaperID(v.ID)
}

// AddProgressEventIDs adds the "progress_events" edge to the ProgressEvent entity by IDs.
func (_c *ReconSessionCreate) AddProgressEventIDs(ids ...int) *ReconSessionCreate {
	_c.mutation.AddProgressEventIDs(ids...)
	return _c
}

// AddProgressEvents adds the "progress_events" edges to the ProgressEvent entity.
func (_c *ReconSessionCreate) AddProgressEvents(v ...*ProgressEvent) *ReconSessionCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddProgressEventIDs(ids...)
}

// AddFeedbackSampleIDs adds the "feedback_samples" edge to the FeedbackSample entity by IDs.
func (_c *ReconSessionCreate) AddFeedbackSampleIDs(ids ...string) *ReconSessionCreate {
	_c.mutation.AddFeedbackSampleIDs(ids...)
	return _c
}

// AddFeedbackSamples adds the "feedback_samples" edges to the FeedbackSample entity.
func (_c *ReconSessionCreate) AddFeedbackSamples(v ...*FeedbackSample) *ReconSessionCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddFeedbackSampleIDs(ids...)
}

// Mutation returns the ReconSessionMutation object of the builder.
func (_c *ReconSessionCreate) Mutation() *ReconSessionMutation {
	return _c.mutation
}

// Save creates the ReconSession in the database.
func (_c *ReconSessionCreate) Save(ctx context.Context) (*ReconSession, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ReconSessionCreate) SaveX(ctx context.Context) *ReconSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReconSessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReconSessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ReconSessionCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := reconsession.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := reconsession.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ReconSessionCreate) check() error {
	if _, ok := _c.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "ReconSession.tenant_id"`)}
	}
	if _, ok := _c.mutation.DocumentBundle(); !ok {
		return &ValidationError{Name: "document_bundle", err: errors.New(`ent: missing required field "ReconSession.document_bundle"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ReconSession.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := reconsession.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ReconSession.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ReconSession.created_at"`)}
	}
	return nil
}

func (_c *ReconSessionCreate) sqlSave(ctx context.Context) (*ReconSession, error) {
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
			return nil, fmt.Errorf("unexpected ReconSession.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ReconSessionCreate) createSpec() (*ReconSession, *sqlgraph.CreateSpec) {
	var (
		_node = &ReconSession{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(reconsession.Table, sqlgraph.NewFieldSpec(reconsession.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TenantID(); ok {
		_spec.SetField(reconsession.FieldTenantID, field.TypeString, value)
		_node.TenantID = value
	}
	if value, ok := _c.mutation.DocumentBundle(); ok {
		_spec.SetField(reconsession.FieldDocumentBundle, field.TypeString, value)
		_node.DocumentBundle = value
	}
	if value, ok := _c.mutation.VendorName(); ok {
		_spec.SetField(reconsession.FieldVendorName, field.TypeString, value)
		_node.VendorName = &value
	}
	if value, ok := _c.mutation.InvoiceNumber(); ok {
		_spec.SetField(reconsession.FieldInvoiceNumber, field.TypeString, value)
		_node.InvoiceNumber = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(reconsession.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(reconsession.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(reconsession.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(reconsession.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(reconsession.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.CurrentStage(); ok {
		_spec.SetField(reconsession.FieldCurrentStage, field.TypeString, value)
		_node.CurrentStage = &value
	}
	if value, ok := _c.mutation.Verdict(); ok {
		_spec.SetField(reconsession.FieldVerdict, field.TypeJSON, value)
		_node.Verdict = value
	}
	if value, ok := _c.mutation.VerdictSummary(); ok {
		_spec.SetField(reconsession.FieldVerdictSummary, field.TypeString, value)
		_node.VerdictSummary = &value
	}
	if value, ok := _c.mutation.StateErrors(); ok {
		_spec.SetField(reconsession.FieldStateErrors, field.TypeJSON, value)
		_node.StateErrors = value
	}
	if value, ok := _c.mutation.SessionMetadata(); ok {
		_spec.SetField(reconsession.FieldSessionMetadata, field.TypeJSON, value)
		_node.SessionMetadata = value
	}
	if value, ok := _c.mutation.PodID(); ok {
		_spec.SetField(reconsession.FieldPodID, field.TypeString, value)
		_node.PodID = &value
	}
	if value, ok := _c.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(reconsession.FieldLastHeartbeatAt, field.TypeTime, value)
		_node.LastHeartbeatAt = &value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(reconsession.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	if nodes := _c.mutation.StageExecutionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   reconsession.StageExecutionsTable,
			Columns: []string{reconsession.StageExecutionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(stageexecution.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.DivergenceRecordsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   reconsession.DivergenceRecordsTable,
			Columns: []string{reconsession.DivergenceRecordsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(divergencerecord.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.WorkpaperIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   reconsession.WorkpaperTable,
			Columns: []string{reconsession.WorkpaperColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(workpaper.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ProgressEventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   reconsession.ProgressEventsTable,
			Columns: []string{reconsession.ProgressEventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(progressevent.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.FeedbackSamplesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   reconsession.FeedbackSamplesTable,
			Columns: []string{reconsession.FeedbackSamplesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(feedbacksample.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ReconSessionCreateBulk is the builder for creating many ReconSession entities in bulk.
type ReconSessionCreateBulk struct {
	config
	err      error
	builders []*ReconSessionCreate
}

// Save creates the ReconSession entities in the database.
func (_c *ReconSessionCreateBulk) Save(ctx context.Context) ([]*ReconSession, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ReconSession, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ReconSessionMutation)
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
func (_c *ReconSessionCreateBulk) SaveX(ctx context.Context) []*ReconSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReconSessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReconSessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
