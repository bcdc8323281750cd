// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/procureguard/trimatch/ent/divergencerecord"
	"github.com/procureguard/trimatch/ent/feedbacksample"
	"github.com/procureguard/trimatch/ent/predicate"
	"github.com/procureguard/trimatch/ent/progressevent"
	"github.com/procureguard/trimatch/ent/reconsession"
	"github.com/procureguard/trimatch/ent/stageexecution"
	"github.com/procureguard/trimatch/ent/workpaper"
)

// ReconSessionUpdate is the builder for updating ReconSession entities.
type ReconSessionUpdate struct {
	config
	hooks    []Hook
	mutation *ReconSessionMutation
}

// Where appends a list predicates to the ReconSessionUpdate builder.
func (_u *ReconSessionUpdate) Where(ps ...predicate.ReconSession) *ReconSessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDocumentBundle sets the "document_bundle" field.
func (_u *ReconSessionUpdate) SetDocumentBundle(v string) *ReconSessionUpdate {
	_u.mutation.SetDocumentBundle(v)
	return _u
}

// SetNillableDocumentBundle sets the "document_bundle" field if the given value is not nil.
func (_u *ReconSessionUpdate) SetNillableDocumentBundle(v *string) *ReconSessionUpdate {
	if v != nil {
		_u.SetDocumentBundle(*v)
	}
	return _u
}

// SetVendorName sets the "vendor_name" field.
func (_u *ReconSessionUpdate) SetVendorName(v string) *ReconSessionUpdate {
	_u.mutation.SetVendorName(v)
	return _u
}

// SetNillableVendorName sets the "vendor_name" field if the given value is not nil.
func (_u *ReconSessionUpdate) SetNillableVendorName(v *string) *ReconSessionUpdate {
	if v != nil {
		_u.SetVendorName(*v)
	}
	return _u
}

// ClearVendorName clears the value of the "vendor_name" field.
func (_u *ReconSessionUpdate) ClearVendorName() *ReconSessionUpdate {
	_u.mutation.ClearVendorName()
	return _u
}

// SetInvoiceNumber sets the "invoice_number" field.
func (_u *ReconSessionUpdate) SetInvoiceNumber(v string) *ReconSessionUpdate {
	_u.mutation.SetInvoiceNumber(v)
	return _u
}

// SetNillableInvoiceNumber sets the "invoice_number" field if the given value is not nil.
func (_u *ReconSessionUpdate) SetNillableInvoiceNumber(v *string) *ReconSessionUpdate {
	if v != nil {
		_u.SetInvoiceNumber(*v)
	}
	return _u
}

// ClearInvoiceNumber clears the value of the "invoice_number" field.
func (_u *ReconSessionUpdate) ClearInvoiceNumber() *ReconSessionUpdate {
	_u.mutation.ClearInvoiceNumber()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ReconSessionUpdate) SetStatus(v reconsession.Status) *ReconSessionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ReconSessionUpdate) SetNillableStatus(v *reconsession.Status) *ReconSessionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ReconSessionUpdate) SetCreatedAt(v time.Time) *ReconSessionUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ReconSessionUpdate) SetNillableCreatedAt(v *time.Time) *ReconSessionUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *ReconSessionUpdate) SetStartedAt(v time.Time) *ReconSessionUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *ReconSessionUpdate) SetNillableStartedAt(v *time.Time) *ReconSessionUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *ReconSessionUpdate) ClearStartedAt() *ReconSessionUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *ReconSessionUpdate) SetCompletedAt(v time.Time) *ReconSessionUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *ReconSessionUpdate) SetNillableCompletedAt(v *time.Time) *ReconSessionUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *ReconSessionUpdate) ClearCompletedAt() *ReconSessionUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ReconSessionUpdate) SetErrorMessage(v string) *ReconSessionUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ReconSessionUpdate) SetNillableErrorMessage(v *string) *ReconSessionUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ReconSessionUpdate) ClearErrorMessage() *ReconSessionUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetCurrentStage sets the "current_stage" field.
func (_u *ReconSessionUpdate) SetCurrentStage(v string) *ReconSessionUpdate {
	_u.mutation.SetCurrentStage(v)
	return _u
}

// SetNillableCurrentStage sets the "current_stage" field if the given value is not nil.
func (_u *ReconSessionUpdate) SetNillableCurrentStage(v *string) *ReconSessionUpdate {
	if v != nil {
		_u.SetCurrentStage(*v)
	}
	return _u
}

// ClearCurrentStage clears the value of the "current_stage" field.
func (_u *ReconSessionUpdate) ClearCurrentStage() *ReconSessionUpdate {
	_u.mutation.ClearCurrentStage()
	return _u
}

// SetVerdict sets the "verdict" field.
func (_u *ReconSessionUpdate) SetVerdict(v map[string]interface{}) *ReconSessionUpdate {
	_u.mutation.SetVerdict(v)
	return _u
}

// ClearVerdict clears the value of the "verdict" field.
func (_u *ReconSessionUpdate) ClearVerdict() *ReconSessionUpdate {
	_u.mutation.ClearVerdict()
	return _u
}

// SetVerdictSummary sets the "verdict_summary" field.
func (_u *ReconSessionUpdate) SetVerdictSummary(v string) *ReconSessionUpdate {
	_u.mutation.SetVerdictSummary(v)
	return _u
}

// SetNillableVerdictSummary sets the "verdict_summary" field if the given value is not nil.
func (_u *ReconSessionUpdate) SetNillableVerdictSummary(v *string) *ReconSessionUpdate {
	if v != nil {
		_u.SetVerdictSummary(*v)
	}
	return _u
}

// ClearVerdictSummary clears the value of the "verdict_summary" field.
func (_u *ReconSessionUpdate) ClearVerdictSummary() *ReconSessionUpdate {
	_u.mutation.ClearVerdictSummary()
	return _u
}

// SetStateErrors sets the "state_errors" field.
func (_u *ReconSessionUpdate) SetStateErrors(v []map[string]interface{}) *ReconSessionUpdate {
	_u.mutation.SetStateErrors(v)
	return _u
}

// AppendStateErrors appends value to the "state_errors" field.
func (_u *ReconSessionUpdate) AppendStateErrors(v []map[string]interface{}) *ReconSessionUpdate {
	_u.mutation.AppendStateErrors(v)
	return _u
}

// ClearStateErrors clears the value of the "state_errors" field.
func (_u *ReconSessionUpdate) ClearStateErrors() *ReconSessionUpdate {
	_u.mutation.ClearStateErrors()
	return _u
}

// SetSessionMetadata sets the "session_metadata" field.
func (_u *ReconSessionUpdate) SetSessionMetadata(v map[string]interface{}) *ReconSessionUpdate {
	_u.mutation.SetSessionMetadata(v)
	return _u
}

// ClearSessionMetadata clears the value of the "session_metadata" field.
func (_u *ReconSessionUpdate) ClearSessionMetadata() *ReconSessionUpdate {
	_u.mutation.ClearSessionMetadata()
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *ReconSessionUpdate) SetPodID(v string) *ReconSessionUpdate {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *ReconSessionUpdate) SetNillablePodID(v *string) *ReconSessionUpdate {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *ReconSessionUpdate) ClearPodID() *ReconSessionUpdate {
	_u.mutation.ClearPodID()
	return _u
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_u *ReconSessionUpdate) SetLastHeartbeatAt(v time.Time) *ReconSessionUpdate {
	_u.mutation.SetLastHeartbeatAt(v)
	return _u
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_u *ReconSessionUpdate) SetNillableLastHeartbeatAt(v *time.Time) *ReconSessionUpdate {
	if v != nil {
		_u.SetLastHeartbeatAt(*v)
	}
	return _u
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (_u *ReconSessionUpdate) ClearLastHeartbeatAt() *ReconSessionUpdate {
	_u.mutation.ClearLastHeartbeatAt()
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *ReconSessionUpdate) SetDeletedAt(v time.Time) *ReconSessionUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *ReconSessionUpdate) SetNillableDeletedAt(v *time.Time) *ReconSessionUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *ReconSessionUpdate) ClearDeletedAt() *ReconSessionUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// AddStageExecutionIDs adds the "stage_executions" edge to the StageExecution entity by IDs.
func (_u *ReconSessionUpdate) AddStageExecutionIDs(ids ...string) *ReconSessionUpdate {
	_u.mutation.AddStageExecutionIDs(ids...)
	return _u
}

// AddStageExecutions adds the "stage_executions" edges to the StageExecution entity.
func (_u *ReconSessionUpdate) AddStageExecutions(v ...*StageExecution) *ReconSessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStageExecutionIDs(ids...)
}

// AddDivergenceRecordIDs adds the "divergence_records" edge to the DivergenceRecord entity by IDs.
func (_u *ReconSessionUpdate) AddDivergenceRecordIDs(ids ...string) *ReconSessionUpdate {
	_u.mutation.AddDivergenceRecordIDs(ids...)
	return _u
}

// AddDivergenceRecords adds the "divergence_records" edges to the DivergenceRecord entity.
func (_u *ReconSessionUpdate) AddDivergenceRecords(v ...*DivergenceRecord) *ReconSessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDivergenceRecordIDs(ids...)
}

// SetWorkpaperID sets the "workpaper" edge to the Workpaper entity by ID.
func (_u *ReconSessionUpdate) SetWorkpaperID(id string) *ReconSessionUpdate {
	_u.mutation.SetWorkpaperID(id)
	return _u
}

// SetNillableWorkpaperID sets the "workpaper" edge to the Workpaper entity by ID if the given value is not nil.
func (_u *ReconSessionUpdate) SetNillableWorkpaperID(id *string) *ReconSessionUpdate {
	if id != nil {
		_u = _u.SetWorkpaperID(*id)
	}
	return _u
}

// SetWorkpaper sets the "workpaper" edge to the Workpaper entity.
func (_u *ReconSessionUpdate) SetWorkpaper(v *Workpaper) *ReconSessionUpdate {
	return _u.SetWorkpaperID(v.ID)
}

// AddProgressEventIDs adds the "progress_events" edge to the ProgressEvent entity by IDs.
func (_u *ReconSessionUpdate) AddProgressEventIDs(ids ...int) *ReconSessionUpdate {
	_u.mutation.AddProgressEventIDs(ids...)
	return _u
}

// AddProgressEvents adds the "progress_events" edges to the ProgressEvent entity.
func (_u *ReconSessionUpdate) AddProgressEvents(v ...*ProgressEvent) *ReconSessionUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddProgressEventIDs(ids...)
}

// AddFeedbackSampleIDs adds the "feedback_samples" edge to the FeedbackSample entity by IDs.
func (_u *ReconSessionUpdate) AddFeedbackSampleIDs(ids ...string) *ReconSessionUpdate {
	_u.mutation.AddFeedbackSampleIDs(ids...)
	return _u
}

// AddFeedbackSamples adds the "feedback_samples" edges to the FeedbackSample entity.
func (_u *ReconSessionUpdate) AddFeedbackSamples(v ...*FeedbackSample) *ReconSessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFeedbackSampleIDs(ids...)
}

// Mutation returns the ReconSessionMutation object of the builder.
func (_u *ReconSessionUpdate) Mutation() *ReconSessionMutation {
	return _u.mutation
}

// ClearStageExecutions clears all "stage_executions" edges to the StageExecution entity.
func (_u *ReconSessionUpdate) ClearStageExecutions() *ReconSessionUpdate {
	_u.mutation.ClearStageExecutions()
	return _u
}

// RemoveStageExecutionIDs removes the "stage_executions" edge to StageExecution entities by IDs.
func (_u *ReconSessionUpdate) RemoveStageExecutionIDs(ids ...string) *ReconSessionUpdate {
	_u.mutation.RemoveStageExecutionIDs(ids...)
	return _u
}

// RemoveStageExecutions removes "stage_executions" edges to StageExecution entities.
func (_u *ReconSessionUpdate) RemoveStageExecutions(v ...*StageExecution) *ReconSessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStageExecutionIDs(ids...)
}

// ClearDivergenceRecords clears all "divergence_records" edges to the DivergenceRecord entity.
func (_u *ReconSessionUpdate) ClearDivergenceRecords() *ReconSessionUpdate {
	_u.mutation.ClearDivergenceRecords()
	return _u
}

// RemoveDivergenceRecordIDs removes the "divergence_records" edge to DivergenceRecord entities by IDs.
func (_u *ReconSessionUpdate) RemoveDivergenceRecordIDs(ids ...string) *ReconSessionUpdate {
	_u.mutation.RemoveDivergenceRecordIDs(ids...)
	return _u
}

// RemoveDivergenceRecords removes "divergence_records" edges to DivergenceRecord entities.
func (_u *ReconSessionUpdate) RemoveDivergenceRecords(v ...*DivergenceRecord) *ReconSessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDivergenceRecordIDs(ids...)
}

// ClearWorkpaper clears the "workpaper" edge to the Workpaper entity.
func (_u *ReconSessionUpdate) ClearWorkpaper() *ReconSessionUpdate {
	_u.mutation.ClearWorkpaper()
	return _u
}

// ClearProgressEvents clears all "progress_events" edges to the ProgressEvent entity.
func (_u *ReconSessionUpdate) ClearProgressEvents() *ReconSessionUpdate {
	_u.mutation.ClearProgressEvents()
	return _u
}

// RemoveProgressEventIDs removes the "progress_events" edge to ProgressEvent entities by IDs.
func (_u *ReconSessionUpdate) RemoveProgressEventIDs(ids ...int) *ReconSessionUpdate {
	_u.mutation.RemoveProgressEventIDs(ids...)
	return _u
}

// RemoveProgressEvents removes "progress_events" edges to ProgressEvent entities.
func (_u *ReconSessionUpdate) RemoveProgressEvents(v ...*ProgressEvent) *ReconSessionUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveProgressEventIDs(ids...)
}

// ClearFeedbackSamples clears all "feedback_samples" edges to the FeedbackSample entity.
func (_u *ReconSessionUpdate) ClearFeedbackSamples() *ReconSessionUpdate {
	_u.mutation.ClearFeedbackSamples()
	return _u
}

// RemoveFeedbackSampleIDs removes the "feedback_samples" edge to FeedbackSample entities by IDs.
func (_u *ReconSessionUpdate) RemoveFeedbackSampleIDs(ids ...string) *ReconSessionUpdate {
	_u.mutation.RemoveFeedbackSampleIDs(ids...)
	return _u
}

// RemoveFeedbackSamples removes "feedback_samples" edges to FeedbackSample entities.
func (_u *ReconSessionUpdate) RemoveFeedbackSamples(v ...*FeedbackSample) *ReconSessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFeedbackSampleIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ReconSessionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReconSessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ReconSessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReconSessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReconSessionUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := reconsession.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ReconSession.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ReconSessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reconsession.Table, reconsession.Columns, sqlgraph.NewFieldSpec(reconsession.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.DocumentBundle(); ok {
		_spec.SetField(reconsession.FieldDocumentBundle, field.TypeString, value)
	}
	if value, ok := _u.mutation.VendorName(); ok {
		_spec.SetField(reconsession.FieldVendorName, field.TypeString, value)
	}
	if _u.mutation.VendorNameCleared() {
		_spec.ClearField(reconsession.FieldVendorName, field.TypeString)
	}
	if value, ok := _u.mutation.InvoiceNumber(); ok {
		_spec.SetField(reconsession.FieldInvoiceNumber, field.TypeString, value)
	}
	if _u.mutation.InvoiceNumberCleared() {
		_spec.ClearField(reconsession.FieldInvoiceNumber, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(reconsession.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(reconsession.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(reconsession.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(reconsession.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(reconsession.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(reconsession.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(reconsession.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(reconsession.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.CurrentStage(); ok {
		_spec.SetField(reconsession.FieldCurrentStage, field.TypeString, value)
	}
	if _u.mutation.CurrentStageCleared() {
		_spec.ClearField(reconsession.FieldCurrentStage, field.TypeString)
	}
	if value, ok := _u.mutation.Verdict(); ok {
		_spec.SetField(reconsession.FieldVerdict, field.TypeJSON, value)
	}
	if _u.mutation.VerdictCleared() {
		_spec.ClearField(reconsession.FieldVerdict, field.TypeJSON)
	}
	if value, ok := _u.mutation.VerdictSummary(); ok {
		_spec.SetField(reconsession.FieldVerdictSummary, field.TypeString, value)
	}
	if _u.mutation.VerdictSummaryCleared() {
		_spec.ClearField(reconsession.FieldVerdictSummary, field.TypeString)
	}
	if value, ok := _u.mutation.StateErrors(); ok {
		_spec.SetField(reconsession.FieldStateErrors, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedStateErrors(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, reconsession.FieldStateErrors, value)
		})
	}
	if _u.mutation.StateErrorsCleared() {
		_spec.ClearField(reconsession.FieldStateErrors, field.TypeJSON)
	}
	if value, ok := _u.mutation.SessionMetadata(); ok {
		_spec.SetField(reconsession.FieldSessionMetadata, field.TypeJSON, value)
	}
	if _u.mutation.SessionMetadataCleared() {
		_spec.ClearField(reconsession.FieldSessionMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(reconsession.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(reconsession.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(reconsession.FieldLastHeartbeatAt, field.TypeTime, value)
	}
	if _u.mutation.LastHeartbeatAtCleared() {
		_spec.ClearField(reconsession.FieldLastHeartbeatAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(reconsession.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(reconsession.FieldDeletedAt, field.TypeTime)
	}
	if _u.mutation.StageExecutionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStageExecutionsIDs(); len(nodes) > 0 && !_u.mutation.StageExecutionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StageExecutionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DivergenceRecordsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDivergenceRecordsIDs(); len(nodes) > 0 && !_u.mutation.DivergenceRecordsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DivergenceRecordsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.WorkpaperCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.WorkpaperIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ProgressEventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedProgressEventsIDs(); len(nodes) > 0 && !_u.mutation.ProgressEventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProgressEventsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.FeedbackSamplesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFeedbackSamplesIDs(); len(nodes) > 0 && !_u.mutation.FeedbackSamplesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FeedbackSamplesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reconsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ReconSessionUpdateOne is the builder for updating a single ReconSession entity.
type ReconSessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ReconSessionMutation
}

// SetDocumentBundle sets the "document_bundle" field.
func (_u *ReconSessionUpdateOne) SetDocumentBundle(v string) *ReconSessionUpdateOne {
	_u.mutation.SetDocumentBundle(v)
	return _u
}

// SetNillableDocumentBundle sets the "document_bundle" field if the given value is not nil.
func (_u *ReconSessionUpdateOne) SetNillableDocumentBundle(v *string) *ReconSessionUpdateOne {
	if v != nil {
		_u.SetDocumentBundle(*v)
	}
	return _u
}

// SetVendorName sets the "vendor_name" field.
func (_u *ReconSessionUpdateOne) SetVendorName(v string) *ReconSessionUpdateOne {
	_u.mutation.SetVendorName(v)
	return _u
}

// SetNillableVendorName sets the "vendor_name" field if the given value is not nil.
func (_u *ReconSessionUpdateOne) SetNillableVendorName(v *string) *ReconSessionUpdateOne {
	if v != nil {
		_u.SetVendorName(*v)
	}
	return _u
}

// ClearVendorName clears the value of the "vendor_name" field.
func (_u *ReconSessionUpdateOne) ClearVendorName() *ReconSessionUpdateOne {
	_u.mutation.ClearVendorName()
	return _u
}

// SetInvoiceNumber sets the "invoice_number" field.
func (_u *ReconSessionUpdateOne) SetInvoiceNumber(v string) *ReconSessionUpdateOne {
	_u.mutation.SetInvoiceNumber(v)
	return _u
}

// SetNillableInvoiceNumber sets the "invoice_number" field if the given value is not nil.
func (_u *ReconSessionUpdateOne) SetNillableInvoiceNumber(v *string) *ReconSessionUpdateOne {
	if v != nil {
		_u.SetInvoiceNumber(*v)
	}
	return _u
}

// ClearInvoiceNumber clears the value of the "invoice_number" field.
func (_u *ReconSessionUpdateOne) ClearInvoiceNumber() *ReconSessionUpdateOne {
	_u.mutation.ClearInvoiceNumber()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ReconSessionUpdateOne) SetStatus(v reconsession.Status) *ReconSessionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ReconSessionUpdateOne) SetNillableStatus(v *reconsession.Status) *ReconSessionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ReconSessionUpdateOne) SetCreatedAt(v time.Time) *ReconSessionUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ReconSessionUpdateOne) SetNillableCreatedAt(v *time.Time) *ReconSessionUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *ReconSessionUpdateOne) SetStartedAt(v time.Time) *ReconSessionUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *ReconSessionUpdateOne) SetNillableStartedAt(v *time.Time) *ReconSessionUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *ReconSessionUpdateOne) ClearStartedAt() *ReconSessionUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *ReconSessionUpdateOne) SetCompletedAt(v time.Time) *ReconSessionUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *ReconSessionUpdateOne) SetNillableCompletedAt(v *time.Time) *ReconSessionUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *ReconSessionUpdateOne) ClearCompletedAt() *ReconSessionUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ReconSessionUpdateOne) SetErrorMessage(v string) *ReconSessionUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ReconSessionUpdateOne) SetNillableErrorMessage(v *string) *ReconSessionUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ReconSessionUpdateOne) ClearErrorMessage() *ReconSessionUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetCurrentStage sets the "current_stage" field.
func (_u *ReconSessionUpdateOne) SetCurrentStage(v string) *ReconSessionUpdateOne {
	_u.mutation.SetCurrentStage(v)
	return _u
}

// SetNillableCurrentStage sets the "current_stage" field if the given value is not nil.
func (_u *ReconSessionUpdateOne) SetNillableCurrentStage(v *string) *ReconSessionUpdateOne {
	if v != nil {
		_u.SetCurrentStage(*v)
	}
	return _u
}

// ClearCurrentStage clears the value of the "current_stage" field.
func (_u *ReconSessionUpdateOne) ClearCurrentStage() *ReconSessionUpdateOne {
	_u.mutation.ClearCurrentStage()
	return _u
}

// SetVerdict sets the "verdict" field.
func (_u *ReconSessionUpdateOne) SetVerdict(v map[string]interface{}) *ReconSessionUpdateOne {
	_u.mutation.SetVerdict(v)
	return _u
}

// ClearVerdict clears the value of the "verdict" field.
func (_u *ReconSessionUpdateOne) ClearVerdict() *ReconSessionUpdateOne {
	_u.mutation.ClearVerdict()
	return _u
}

// SetVerdictSummary sets the "verdict_summary" field.
func (_u *ReconSessionUpdateOne) SetVerdictSummary(v string) *ReconSessionUpdateOne {
	_u.mutation.SetVerdictSummary(v)
	return _u
}

// SetNillableVerdictSummary sets the "verdict_summary" field if the given value is not nil.
func (_u *ReconSessionUpdateOne) SetNillableVerdictSummary(v *string) *ReconSessionUpdateOne {
	if v != nil {
		_u.SetVerdictSummary(*v)
	}
	return _u
}

// ClearVerdictSummary clears the value of the "verdict_summary" field.
func (_u *ReconSessionUpdateOne) ClearVerdictSummary() *ReconSessionUpdateOne {
	_u.mutation.ClearVerdictSummary()
	return _u
}

// SetStateErrors sets the "state_errors" field.
func (_u *ReconSessionUpdateOne) SetStateErrors(v []map[string]interface{}) *ReconSessionUpdateOne {
	_u.mutation.SetStateErrors(v)
	return _u
}

// AppendStateErrors appends value to the "state_errors" field.
func (_u *ReconSessionUpdateOne) AppendStateErrors(v []map[string]interface{}) *ReconSessionUpdateOne {
	_u.mutation.AppendStateErrors(v)
	return _u
}

// ClearStateErrors clears the value of the "state_errors" field.
func (_u *ReconSessionUpdateOne) ClearStateErrors() *ReconSessionUpdateOne {
	_u.mutation.ClearStateErrors()
	return _u
}

// SetSessionMetadata sets the "session_metadata" field.
func (_u *ReconSessionUpdateOne) SetSessionMetadata(v map[string]interface{}) *ReconSessionUpdateOne {
	_u.mutation.SetSessionMetadata(v)
	return _u
}

// ClearSessionMetadata clears the value of the "session_metadata" field.
func (_u *ReconSessionUpdateOne) ClearSessionMetadata() *ReconSessionUpdateOne {
	_u.mutation.ClearSessionMetadata()
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *ReconSessionUpdateOne) SetPodID(v string) *ReconSessionUpdateOne {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *ReconSessionUpdateOne) SetNillablePodID(v *string) *ReconSessionUpdateOne {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *ReconSessionUpdateOne) ClearPodID() *ReconSessionUpdateOne {
	_u.mutation.ClearPodID()
	return _u
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_u *ReconSessionUpdateOne) SetLastHeartbeatAt(v time.Time) *ReconSessionUpdateOne {
	_u.mutation.SetLastHeartbeatAt(v)
	return _u
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_u *ReconSessionUpdateOne) SetNillableLastHeartbeatAt(v *time.Time) *ReconSessionUpdateOne {
	if v != nil {
		_u.SetLastHeartbeatAt(*v)
	}
	return _u
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (_u *ReconSessionUpdateOne) ClearLastHeartbeatAt() *ReconSessionUpdateOne {
	_u.mutation.ClearLastHeartbeatAt()
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *ReconSessionUpdateOne) SetDeletedAt(v time.Time) *ReconSessionUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *ReconSessionUpdateOne) SetNillableDeletedAt(v *time.Time) *ReconSessionUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *ReconSessionUpdateOne) ClearDeletedAt() *ReconSessionUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// AddStageExecutionIDs adds the "stage_executions" edge to the StageExecution entity by IDs.
func (_u *ReconSessionUpdateOne) AddStageExecutionIDs(ids ...string) *ReconSessionUpdateOne {
	_u.mutation.AddStageExecutionIDs(ids...)
	return _u
}

// AddStageExecutions adds the "stage_executions" edges to the StageExecution entity.
func (_u *ReconSessionUpdateOne) AddStageExecutions(v ...*StageExecution) *ReconSessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStageExecutionIDs(ids...)
}

// AddDivergenceRecordIDs adds the "divergence_records" edge to the DivergenceRecord entity by IDs.
func (_u *ReconSessionUpdateOne) AddDivergenceRecordIDs(ids ...string) *ReconSessionUpdateOne {
	_u.mutation.AddDivergenceRecordIDs(ids...)
	return _u
}

// AddDivergenceRecords adds the "divergence_records" edges to the DivergenceRecord entity.
func (_u *ReconSessionUpdateOne) AddDivergenceRecords(v ...*DivergenceRecord) *ReconSessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDivergenceRecordIDs(ids...)
}

// SetWorkpaperID sets the "workpaper" edge to the Workpaper entity by ID.
func (_u *ReconSessionUpdateOne) SetWorkpaperID(id string) *ReconSessionUpdateOne {
	_u.mutation.SetWorkpaperID(id)
	return _u
}

// SetNillableWorkpaperID sets the "workpaper" edge to the Workpaper entity by ID if the given value is not nil.
func (_u *ReconSessionUpdateOne) SetNillableWorkpaperID(id *string) *ReconSessionUpdateOne {
	if id != nil {
		_u = _u.SetWorkpaperID(*id)
	}
	return _u
}

// SetWorkpaper sets the "workpaper" edge to the Workpaper entity.
func (_u *ReconSessionUpdateOne) SetWorkpaper(v *Workpaper) *ReconSessionUpdateOne {
	return _u.SetWorkpaperID(v.ID)
}

// AddProgressEventIDs adds the "progress_events" edge to the ProgressEvent entity by IDs.
func (_u *ReconSessionUpdateOne) AddProgressEventIDs(ids ...int) *ReconSessionUpdateOne {
	_u.mutation.AddProgressEventIDs(ids...)
	return _u
}

// AddProgressEvents adds the "progress_events" edges to the ProgressEvent entity.
func (_u *ReconSessionUpdateOne) AddProgressEvents(v ...*ProgressEvent) *ReconSessionUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddProgressEventIDs(ids...)
}

// AddFeedbackSampleIDs adds the "feedback_samples" edge to the FeedbackSample entity by IDs.
func (_u *ReconSessionUpdateOne) AddFeedbackSampleIDs(ids ...string) *ReconSessionUpdateOne {
	_u.mutation.AddFeedbackSampleIDs(ids...)
	return _u
}

// AddFeedbackSamples adds the "feedback_samples" edges to the FeedbackSample entity.
func (_u *ReconSessionUpdateOne) AddFeedbackSamples(v ...*FeedbackSample) *ReconSessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFeedbackSampleIDs(ids...)
}

// Mutation returns the ReconSessionMutation object of the builder.
func (_u *ReconSessionUpdateOne) Mutation() *ReconSessionMutation {
	return _u.mutation
}

// ClearStageExecutions clears all "stage_executions" edges to the StageExecution entity.
func (_u *ReconSessionUpdateOne) ClearStageExecutions() *ReconSessionUpdateOne {
	_u.mutation.ClearStageExecutions()
	return _u
}

// RemoveStageExecutionIDs removes the "stage_executions" edge to StageExecution entities by IDs.
func (_u *ReconSessionUpdateOne) RemoveStageExecutionIDs(ids ...string) *ReconSessionUpdateOne {
	_u.mutation.RemoveStageExecutionIDs(ids...)
	return _u
}

// RemoveStageExecutions removes "stage_executions" edges to StageExecution entities.
func (_u *ReconSessionUpdateOne) RemoveStageExecutions(v ...*StageExecution) *ReconSessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStageExecutionIDs(ids...)
}

// ClearDivergenceRecords clears all "divergence_records" edges to the DivergenceRecord entity.
func (_u *ReconSessionUpdateOne) ClearDivergenceRecords() *ReconSessionUpdateOne {
	_u.mutation.ClearDivergenceRecords()
	return _u
}

// RemoveDivergenceRecordIDs removes the "divergence_records" edge to DivergenceRecord entities by IDs.
func (_u *ReconSessionUpdateOne) RemoveDivergenceRecordIDs(ids ...string) *ReconSessionUpdateOne {
	_u.mutation.RemoveDivergenceRecordIDs(ids...)
	return _u
}

// RemoveDivergenceRecords removes "divergence_records" edges to DivergenceRecord entities.
func (_u *ReconSessionUpdateOne) RemoveDivergenceRecords(v ...*DivergenceRecord) *ReconSessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDivergenceRecordIDs(ids...)
}

// ClearWorkpaper clears the "workpaper" edge to the Workpaper entity.
func (_u *ReconSessionUpdateOne) ClearWorkpaper() *ReconSessionUpdateOne {
	_u.mutation.ClearWorkpaper()
	return _u
}

// ClearProgressEvents clears all "progress_events" edges to the ProgressEvent entity.
func (_u *ReconSessionUpdateOne) ClearProgressEvents() *ReconSessionUpdateOne {
	_u.mutation.ClearProgressEvents()
	return _u
}

// RemoveProgressEventIDs removes the "progress_events" edge to ProgressEvent entities by IDs.
func (_u *ReconSessionUpdateOne) RemoveProgressEventIDs(ids ...int) *ReconSessionUpdateOne {
	_u.mutation.RemoveProgressEventIDs(ids...)
	return _u
}

// RemoveProgressEvents removes "progress_events" edges to ProgressEvent entities.
func (_u *ReconSessionUpdateOne) RemoveProgressEvents(v ...*ProgressEvent) *ReconSessionUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveProgressEventIDs(ids...)
}

// ClearFeedbackSamples clears all "feedback_samples" edges to the FeedbackSample entity.
func (_u *ReconSessionUpdateOne) ClearFeedbackSamples() *ReconSessionUpdateOne {
	_u.mutation.ClearFeedbackSamples()
	return _u
}

// RemoveFeedbackSampleIDs removes the "feedback_samples" edge to FeedbackSample entities by IDs.
func (_u *ReconSessionUpdateOne) RemoveFeedbackSampleIDs(ids ...string) *ReconSessionUpdateOne {
	_u.mutation.RemoveFeedbackSampleIDs(ids...)
	return _u
}

// RemoveFeedbackSamples removes "feedback_samples" edges to FeedbackSample entities.
func (_u *ReconSessionUpdateOne) RemoveFeedbackSamples(v ...*FeedbackSample) *ReconSessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFeedbackSampleIDs(ids...)
}

// Where appends a list predicates to the ReconSessionUpdate builder.
func (_u *ReconSessionUpdateOne) Where(ps ...predicate.ReconSession) *ReconSessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ReconSessionUpdateOne) Select(field string, fields ...string) *ReconSessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ReconSession entity.
func (_u *ReconSessionUpdateOne) Save(ctx context.Context) (*ReconSession, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReconSessionUpdateOne) SaveX(ctx context.Context) *ReconSession {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ReconSessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReconSessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReconSessionUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := reconsession.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ReconSession.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ReconSessionUpdateOne) sqlSave(ctx context.Context) (_node *ReconSession, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reconsession.Table, reconsession.Columns, sqlgraph.NewFieldSpec(reconsession.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ReconSession.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, reconsession.FieldID)
		for _, f := range fields {
			if !reconsession.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != reconsession.FieldID {
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
	if value, ok := _u.mutation.DocumentBundle(); ok {
		_spec.SetField(reconsession.FieldDocumentBundle, field.TypeString, value)
	}
	if value, ok := _u.mutation.VendorName(); ok {
		_spec.SetField(reconsession.FieldVendorName, field.TypeString, value)
	}
	if _u.mutation.VendorNameCleared() {
		_spec.ClearField(reconsession.FieldVendorName, field.TypeString)
	}
	if value, ok := _u.mutation.InvoiceNumber(); ok {
		_spec.SetField(reconsession.FieldInvoiceNumber, field.TypeString, value)
	}
	if _u.mutation.InvoiceNumberCleared() {
		_spec.ClearField(reconsession.FieldInvoiceNumber, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(reconsession.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(reconsession.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(reconsession.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(reconsession.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(reconsession.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(reconsession.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(reconsession.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(reconsession.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.CurrentStage(); ok {
		_spec.SetField(reconsession.FieldCurrentStage, field.TypeString, value)
	}
	if _u.mutation.CurrentStageCleared() {
		_spec.ClearField(reconsession.FieldCurrentStage, field.TypeString)
	}
	if value, ok := _u.mutation.Verdict(); ok {
		_spec.SetField(reconsession.FieldVerdict, field.TypeJSON, value)
	}
	if _u.mutation.VerdictCleared() {
		_spec.ClearField(reconsession.FieldVerdict, field.TypeJSON)
	}
	if value, ok := _u.mutation.VerdictSummary(); ok {
		_spec.SetField(reconsession.FieldVerdictSummary, field.TypeString, value)
	}
	if _u.mutation.VerdictSummaryCleared() {
		_spec.ClearField(reconsession.FieldVerdictSummary, field.TypeString)
	}
	if value, ok := _u.mutation.StateErrors(); ok {
		_spec.SetField(reconsession.FieldStateErrors, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedStateErrors(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, reconsession.FieldStateErrors, value)
		})
	}
	if _u.mutation.StateErrorsCleared() {
		_spec.ClearField(reconsession.FieldStateErrors, field.TypeJSON)
	}
	if value, ok := _u.mutation.SessionMetadata(); ok {
		_spec.SetField(reconsession.FieldSessionMetadata, field.TypeJSON, value)
	}
	if _u.mutation.SessionMetadataCleared() {
		_spec.ClearField(reconsession.FieldSessionMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(reconsession.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(reconsession.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(reconsession.FieldLastHeartbeatAt, field.TypeTime, value)
	}
	if _u.mutation.LastHeartbeatAtCleared() {
		_spec.ClearField(reconsession.FieldLastHeartbeatAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(reconsession.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(reconsession.FieldDeletedAt, field.TypeTime)
	}
	if _u.mutation.StageExecutionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStageExecutionsIDs(); len(nodes) > 0 && !_u.mutation.StageExecutionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StageExecutionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DivergenceRecordsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDivergenceRecordsIDs(); len(nodes) > 0 && !_u.mutation.DivergenceRecordsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DivergenceRecordsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.WorkpaperCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.WorkpaperIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ProgressEventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedProgressEventsIDs(); len(nodes) > 0 && !_u.mutation.ProgressEventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProgressEventsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.FeedbackSamplesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFeedbackSamplesIDs(); len(nodes) > 0 && !_u.mutation.FeedbackSamplesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FeedbackSamplesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ReconSession{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reconsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
