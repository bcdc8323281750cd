// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/procureguard/trimatch/ent/divergencerecord"
	"github.com/procureguard/trimatch/ent/feedbacksample"
	"github.com/procureguard/trimatch/ent/predicate"
	"github.com/procureguard/trimatch/ent/progressevent"
	"github.com/procureguard/trimatch/ent/reconsession"
	"github.com/procureguard/trimatch/ent/stageexecution"
	"github.com/procureguard/trimatch/ent/workpaper"
)

// ReconSessionQuery is the builder for querying ReconSession entities.
type ReconSessionQuery struct {
	config
	ctx                   *QueryContext
	order                 []reconsession.OrderOption
	inters                []Interceptor
	predicates            []predicate.ReconSession
	withStageExecutions   *StageExecutionQuery
	withDivergenceRecords *DivergenceRecordQuery
	withWorkpaper         *WorkpaperQuery
	withProgressEvents    *ProgressEventQuery
	withFeedbackSamples   *FeedbackSampleQuery
	modifiers             []func(*sql.Selector)
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the ReconSessionQuery builder.
func (_q *ReconSessionQuery) Where(ps ...predicate.ReconSession) *ReconSessionQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *ReconSessionQuery) Limit(limit int) *ReconSessionQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *ReconSessionQuery) Offset(offset int) *ReconSessionQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *ReconSessionQuery) Unique(unique bool) *ReconSessionQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *ReconSessionQuery) Order(o ...reconsession.OrderOption) *ReconSessionQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryStageExecutions chains the current query on the "stage_executions" edge.
func (_q *ReconSessionQuery) QueryStageExecutions() *StageExecutionQuery {
	query := (&StageExecutionClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(reconsession.Table, reconsession.FieldID, selector),
			sqlgraph.To(stageexecution.Table, stageexecution.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, reconsession.StageExecutionsTable, reconsession.StageExecutionsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryDivergenceRecords chains the current query on the "divergence_records" edge.
func (_q *ReconSessionQuery) QueryDivergenceRecords() *DivergenceRecordQuery {
	query := (&DivergenceRecordClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(reconsession.Table, reconsession.FieldID, selector),
			sqlgraph.To(divergencerecord.Table, divergencerecord.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, reconsession.DivergenceRecordsTable, reconsession.DivergenceRecordsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryWorkpaper chains the current query on the "workpaper" edge.
func (_q *ReconSessionQuery) QueryWorkpaper() *WorkpaperQuery {
	query := (&WorkpaperClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(reconsession.Table, reconsession.FieldID, selector),
			sqlgraph.To(workpaper.Table, workpaper.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, reconsession.WorkpaperTable, reconsession.WorkpaperColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryProgressEvents chains the current query on the "progress_events" edge.
func (_q *ReconSessionQuery) QueryProgressEvents() *ProgressEventQuery {
	query := (&ProgressEventClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(reconsession.Table, reconsession.FieldID, selector),
			sqlgraph.To(progressevent.Table, progressevent.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, reconsession.ProgressEventsTable, reconsession.ProgressEventsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryFeedbackSamples chains the current query on the "feedback_samples" edge.
func (_q *ReconSessionQuery) QueryFeedbackSamples() *FeedbackSampleQuery {
	query := (&FeedbackSampleClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(reconsession.Table, reconsession.FieldID, selector),
			sqlgraph.To(feedbacksample.Table, feedbacksample.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, reconsession.FeedbackSamplesTable, reconsession.FeedbackSamplesColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first ReconSession entity from the query.
// Returns a *NotFoundError when no ReconSession was found.
func (_q *ReconSessionQuery) First(ctx context.Context) (*ReconSession, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{reconsession.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *ReconSessionQuery) FirstX(ctx context.Context) *ReconSession {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first ReconSession ID from the query.
// Returns a *NotFoundError when no ReconSession ID was found.
func (_q *ReconSessionQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{reconsession.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *ReconSessionQuery) FirstIDX(ctx context.Context) string {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single ReconSession entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one ReconSession entity is found.
// Returns a *NotFoundError when no ReconSession entities are found.
func (_q *ReconSessionQuery) Only(ctx context.Context) (*ReconSession, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{reconsession.Label}
	default:
		return nil, &NotSingularError{reconsession.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *ReconSessionQuery) OnlyX(ctx context.Context) *ReconSession {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only ReconSession ID in the query.
// Returns a *NotSingularError when more than one ReconSession ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *ReconSessionQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{reconsession.Label}
	default:
		err = &NotSingularError{reconsession.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *ReconSessionQuery) OnlyIDX(ctx context.Context) string {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of ReconSessions.
func (_q *ReconSessionQuery) All(ctx context.Context) ([]*ReconSession, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*ReconSession, *ReconSessionQuery]()
	return withInterceptors[[]*ReconSession](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *ReconSessionQuery) AllX(ctx context.Context) []*ReconSession {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of ReconSession IDs.
func (_q *ReconSessionQuery) IDs(ctx context.Context) (ids []string, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(reconsession.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *ReconSessionQuery) IDsX(ctx context.Context) []string {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *ReconSessionQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*ReconSessionQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *ReconSessionQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *ReconSessionQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *ReconSessionQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the ReconSessionQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *ReconSessionQuery) Clone() *ReconSessionQuery {
	if _q == nil {
		return nil
	}
	return &ReconSessionQuery{
		config:                _q.config,
		ctx:                   _q.ctx.Clone(),
		order:                 append([]reconsession.OrderOption{}, _q.order...),
		inters:                append([]Interceptor{}, _q.inters...),
		predicates:            append([]predicate.ReconSession{}, _q.predicates...),
		withStageExecutions:   _q.withStageExecutions.Clone(),
		withDivergenceRecords: _q.withDivergenceRecords.Clone(),
		withWorkpaper:         _q.withWorkpaper.Clone(),
		withProgressEvents:    _q.withProgressEvents.Clone(),
		withFeedbackSamples:   _q.withFeedbackSamples.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithStageExecutions tells the query-builder to eager-load the nodes that are connected to
// the "stage_executions" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ReconSessionQuery) WithStageExecutions(opts ...func(*StageExecutionQuery)) *ReconSessionQuery {
	query := (&StageExecutionClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withStageExecutions = query
	return _q
}

// WithDivergenceRecords tells the query-builder to eager-load the nodes that are connected to
// the "divergence_records" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ReconSessionQuery) WithDivergenceRecords(opts ...func(*DivergenceRecordQuery)) *ReconSessionQuery {
	query := (&DivergenceRecordClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withDivergenceRecords = query
	return _q
}

// WithWorkpaper tells the query-builder to eager-load the nodes that are connected to
// the "workpaper" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ReconSessionQuery) WithWorkpaper(opts ...func(*WorkpaperQuery)) *ReconSessionQuery {
	query := (&WorkpaperClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withWorkpaper = query
	return _q
}

// WithProgressEvents tells the query-builder to eager-load the nodes that are connected to
// the "progress_events" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ReconSessionQuery) WithProgressEvents(opts ...func(*ProgressEventQuery)) *ReconSessionQuery {
	query := (&ProgressEventClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withProgressEvents = query
	return _q
}

// WithFeedbackSamples tells the query-builder to eager-load the nodes that are connected to
// the "feedback_samples" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ReconSessionQuery) WithFeedbackSamples(opts ...func(*FeedbackSampleQuery)) *ReconSessionQuery {
	query := (&FeedbackSampleClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withFeedbackSamples = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		TenantID string `json:"tenant_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.ReconSession.Query().
//		GroupBy(reconsession.FieldTenantID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *ReconSessionQuery) GroupBy(field string, fields ...string) *ReconSessionGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &ReconSessionGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = reconsession.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		TenantID string `json:"tenant_id,omitempty"`
//	}
//
//	client.ReconSession.Query().
//		Select(reconsession.FieldTenantID).
//		Scan(ctx, &v)
func (_q *ReconSessionQuery) Select(fields ...string) *ReconSessionSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &ReconSessionSelect{ReconSessionQuery: _q}
	sbuild.label = reconsession.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a ReconSessionSelect configured with the given aggregations.
func (_q *ReconSessionQuery) Aggregate(fns ...AggregateFunc) *ReconSessionSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *ReconSessionQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !reconsession.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *ReconSessionQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*ReconSession, error) {
	var (
		nodes       = []*ReconSession{}
		_spec       = _q.querySpec()
		loadedTypes = [5]bool{
			_q.withStageExecutions != nil,
			_q.withDivergenceRecords != nil,
			_q.withWorkpaper != nil,
			_q.withProgressEvents != nil,
			_q.withFeedbackSamples != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*ReconSession).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &ReconSession{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	if len(_q.modifiers) > 0 {
		_spec.Modifiers = _q.modifiers
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withStageExecutions; query != nil {
		if err := _q.loadStageExecutions(ctx, query, nodes,
			func(n *ReconSession) { n.Edges.StageExecutions = []*StageExecution{} },
			func(n *ReconSession, e *StageExecution) { n.Edges.StageExecutions = append(n.Edges.StageExecutions, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withDivergenceRecords; query != nil {
		if err := _q.loadDivergenceRecords(ctx, query, nodes,
			func(n *ReconSession) { n.Edges.DivergenceRecords = []*DivergenceRecord{} },
			func(n *ReconSession, e *DivergenceRecord) {
				n.Edges.DivergenceRecords = append(n.Edges.DivergenceRecords, e)
			}); err != nil {
			return nil, err
		}
	}
	if query := _q.withWorkpaper; query != nil {
		if err := _q.loadWorkpaper(ctx, query, nodes, nil,
			func(n *ReconSession, e *Workpaper) { n.Edges.Workpaper = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withProgressEvents; query != nil {
		if err := _q.loadProgressEvents(ctx, query, nodes,
			func(n *ReconSession) { n.Edges.ProgressEvents = []*ProgressEvent{} },
			func(n *ReconSession, e *ProgressEvent) { n.Edges.ProgressEvents = append(n.Edges.ProgressEvents, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withFeedbackSamples; query != nil {
		if err := _q.loadFeedbackSamples(ctx, query, nodes,
			func(n *ReconSession) { n.Edges.FeedbackSamples = []*FeedbackSample{} },
			func(n *ReconSession, e *FeedbackSample) { n.Edges.FeedbackSamples = append(n.Edges.FeedbackSamples, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *ReconSessionQuery) loadStageExecutions(ctx context.Context, query *StageExecutionQuery, nodes []*ReconSession, init func(*ReconSession), assign func(*ReconSession, *StageExecution)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*ReconSession)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(stageexecution.FieldSessionID)
	}
	query.Where(predicate.StageExecution(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(reconsession.StageExecutionsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.SessionID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "session_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *ReconSessionQuery) loadDivergenceRecords(ctx context.Context, query *DivergenceRecordQuery, nodes []*ReconSession, init func(*ReconSession), assign func(*ReconSession, *DivergenceRecord)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*ReconSession)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(divergencerecord.FieldSessionID)
	}
	query.Where(predicate.DivergenceRecord(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(reconsession.DivergenceRecordsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.SessionID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "session_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *ReconSessionQuery) loadWorkpaper(ctx context.Context, query *WorkpaperQuery, nodes []*ReconSession, init func(*ReconSession), assign func(*ReconSession, *Workpaper)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*ReconSession)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(workpaper.FieldSessionID)
	}
	query.Where(predicate.Workpaper(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(reconsession.WorkpaperColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.SessionID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "session_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *ReconSessionQuery) loadProgressEvents(ctx context.Context, query *ProgressEventQuery, nodes []*ReconSession, init func(*ReconSession), assign func(*ReconSession, *ProgressEvent)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*ReconSession)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(progressevent.FieldSessionID)
	}
	query.Where(predicate.ProgressEvent(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(reconsession.ProgressEventsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.SessionID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "session_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *ReconSessionQuery) loadFeedbackSamples(ctx context.Context, query *FeedbackSampleQuery, nodes []*ReconSession, init func(*ReconSession), assign func(*ReconSession, *FeedbackSample)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*ReconSession)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(feedbacksample.FieldSessionID)
	}
	query.Where(predicate.FeedbackSample(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(reconsession.FeedbackSamplesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.SessionID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "session_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *ReconSessionQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	if len(_q.modifiers) > 0 {
		_spec.Modifiers = _q.modifiers
	}
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *ReconSessionQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(reconsession.Table, reconsession.Columns, sqlgraph.NewFieldSpec(reconsession.FieldID, field.TypeString))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, reconsession.FieldID)
		for i := range fields {
			if fields[i] != reconsession.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *ReconSessionQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(reconsession.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = reconsession.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, m := range _q.modifiers {
		m(selector)
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// ForUpdate locks the selected rows against concurrent updates, and prevent them from being
// updated, deleted or "selected ... for update" by other sessions, until the transaction is
// either committed or rolled-back.
func (_q *ReconSessionQuery) ForUpdate(opts ...sql.LockOption) *ReconSessionQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForUpdate(opts...)
	})
	return _q
}

// ForShare behaves similarly to ForUpdate, except that it acquires a shared mode lock
// on any rows that are read. Other sessions can read the rows, but cannot modify them
// until your transaction commits.
func (_q *ReconSessionQuery) ForShare(opts ...sql.LockOption) *ReconSessionQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForShare(opts...)
	})
	return _q
}

// ReconSessionGroupBy is the group-by builder for ReconSession entities.
type ReconSessionGroupBy struct {
	selector
	build *ReconSessionQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *ReconSessionGroupBy) Aggregate(fns ...AggregateFunc) *ReconSessionGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *ReconSessionGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ReconSessionQuery, *ReconSessionGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *ReconSessionGroupBy) sqlScan(ctx context.Context, root *ReconSessionQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// ReconSessionSelect is the builder for selecting fields of ReconSession entities.
type ReconSessionSelect struct {
	*ReconSessionQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *ReconSessionSelect) Aggregate(fns ...AggregateFunc) *ReconSessionSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *ReconSessionSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ReconSessionQuery, *ReconSessionSelect](ctx, _s.ReconSessionQuery, _s, _s.inters, v)
}

func (_s *ReconSessionSelect) sqlScan(ctx context.Context, root *ReconSessionQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
