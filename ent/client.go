// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/procureguard/trimatch/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/procureguard/trimatch/ent/divergencerecord"
	"github.com/procureguard/trimatch/ent/feedbacksample"
	"github.com/procureguard/trimatch/ent/progressevent"
	"github.com/procureguard/trimatch/ent/reconsession"
	"github.com/procureguard/trimatch/ent/stageexecution"
	"github.com/procureguard/trimatch/ent/workpaper"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// DivergenceRecord is the client for interacting with the DivergenceRecord builders.
	DivergenceRecord *DivergenceRecordClient
	// FeedbackSample is the client for interacting with the FeedbackSample builders.
	FeedbackSample *FeedbackSampleClient
	// ProgressEvent is the client for interacting with the ProgressEvent builders.
	ProgressEvent *ProgressEventClient
	// ReconSession is the client for interacting with the ReconSession builders.
	ReconSession *ReconSessionClient
	// StageExecution is the client for interacting with the StageExecution builders.
	StageExecution *StageExecutionClient
	// Workpaper is the client for interacting with the Workpaper builders.
	Workpaper *WorkpaperClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.DivergenceRecord = NewDivergenceRecordClient(c.config)
	c.FeedbackSample = NewFeedbackSampleClient(c.config)
	c.ProgressEvent = NewProgressEventClient(c.config)
	c.ReconSession = NewReconSessionClient(c.config)
	c.StageExecution = NewStageExecutionClient(c.config)
	c.Workpaper = NewWorkpaperClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:              ctx,
		config:           cfg,
		DivergenceRecord: NewDivergenceRecordClient(cfg),
		FeedbackSample:   NewFeedbackSampleClient(cfg),
		ProgressEvent:    NewProgressEventClient(cfg),
		ReconSession:     NewReconSessionClient(cfg),
		StageExecution:   NewStageExecutionClient(cfg),
		Workpaper:        NewWorkpaperClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:              ctx,
		config:           cfg,
		DivergenceRecord: NewDivergenceRecordClient(cfg),
		FeedbackSample:   NewFeedbackSampleClient(cfg),
		ProgressEvent:    NewProgressEventClient(cfg),
		ReconSession:     NewReconSessionClient(cfg),
		StageExecution:   NewStageExecutionClient(cfg),
		Workpaper:        NewWorkpaperClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		DivergenceRecord.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	for _, n := range []interface{ Use(...Hook) }{
		c.DivergenceRecord, c.FeedbackSample, c.ProgressEvent, c.ReconSession,
		c.StageExecution, c.Workpaper,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.DivergenceRecord, c.FeedbackSample, c.ProgressEvent, c.ReconSession,
		c.StageExecution, c.Workpaper,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *DivergenceRecordMutation:
		return c.DivergenceRecord.mutate(ctx, m)
	case *FeedbackSampleMutation:
		return c.FeedbackSample.mutate(ctx, m)
	case *ProgressEventMutation:
		return c.ProgressEvent.mutate(ctx, m)
	case *ReconSessionMutation:
		return c.ReconSession.mutate(ctx, m)
	case *StageExecutionMutation:
		return c.StageExecution.mutate(ctx, m)
	case *WorkpaperMutation:
		return c.Workpaper.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// DivergenceRecordClient is a client for the DivergenceRecord schema.
type DivergenceRecordClient struct {
	config
}

// NewDivergenceRecordClient returns a client for the DivergenceRecord from the given config.
func NewDivergenceRecordClient(c config) *DivergenceRecordClient {
	return &DivergenceRecordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `divergencerecord.Hooks(f(g(h())))`.
func (c *DivergenceRecordClient) Use(hooks ...Hook) {
	c.hooks.DivergenceRecord = append(c.hooks.DivergenceRecord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `divergencerecord.Intercept(f(g(h())))`.
func (c *DivergenceRecordClient) Intercept(interceptors ...Interceptor) {
	c.inters.DivergenceRecord = append(c.inters.DivergenceRecord, interceptors...)
}

// Create returns a builder for creating a DivergenceRecord entity.
func (c *DivergenceRecordClient) Create() *DivergenceRecordCreate {
	mutation := newDivergenceRecordMutation(c.config, OpCreate)
	return &DivergenceRecordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DivergenceRecord entities.
func (c *DivergenceRecordClient) CreateBulk(builders ...*DivergenceRecordCreate) *DivergenceRecordCreateBulk {
	return &DivergenceRecordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DivergenceRecordClient) MapCreateBulk(slice any, setFunc func(*DivergenceRecordCreate, int)) *DivergenceRecordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DivergenceRecordCreateBulk{err: fmt.Errorf("calling to DivergenceRecordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DivergenceRecordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DivergenceRecordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DivergenceRecord.
func (c *DivergenceRecordClient) Update() *DivergenceRecordUpdate {
	mutation := newDivergenceRecordMutation(c.config, OpUpdate)
	return &DivergenceRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DivergenceRecordClient) UpdateOne(_m *DivergenceRecord) *DivergenceRecordUpdateOne {
	mutation := newDivergenceRecordMutation(c.config, OpUpdateOne, withDivergenceRecord(_m))
	return &DivergenceRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DivergenceRecordClient) UpdateOneID(id string) *DivergenceRecordUpdateOne {
	mutation := newDivergenceRecordMutation(c.config, OpUpdateOne, withDivergenceRecordID(id))
	return &DivergenceRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DivergenceRecord.
func (c *DivergenceRecordClient) Delete() *DivergenceRecordDelete {
	mutation := newDivergenceRecordMutation(c.config, OpDelete)
	return &DivergenceRecordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DivergenceRecordClient) DeleteOne(_m *DivergenceRecord) *DivergenceRecordDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DivergenceRecordClient) DeleteOneID(id string) *DivergenceRecordDeleteOne {
	builder := c.Delete().Where(divergencerecord.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DivergenceRecordDeleteOne{builder}
}

// Query returns a query builder for DivergenceRecord.
func (c *DivergenceRecordClient) Query() *DivergenceRecordQuery {
	return &DivergenceRecordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDivergenceRecord},
		inters: c.Interceptors(),
	}
}

// Get returns a DivergenceRecord entity by its id.
func (c *DivergenceRecordClient) Get(ctx context.Context, id string) (*DivergenceRecord, error) {
	return c.Query().Where(divergencerecord.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DivergenceRecordClient) GetX(ctx context.Context, id string) *DivergenceRecord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySession queries the session edge of a DivergenceRecord.
func (c *DivergenceRecordClient) QuerySession(_m *DivergenceRecord) *ReconSessionQuery {
	query := (&ReconSessionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(divergencerecord.Table, divergencerecord.FieldID, id),
			sqlgraph.To(reconsession.Table, reconsession.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, divergencerecord.SessionTable, divergencerecord.SessionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *DivergenceRecordClient) Hooks() []Hook {
	return c.hooks.DivergenceRecord
}

// Interceptors returns the client interceptors.
func (c *DivergenceRecordClient) Interceptors() []Interceptor {
	return c.inters.DivergenceRecord
}

func (c *DivergenceRecordClient) mutate(ctx context.Context, m *DivergenceRecordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DivergenceRecordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DivergenceRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DivergenceRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DivergenceRecordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown DivergenceRecord mutation op: %q", m.Op())
	}
}

// FeedbackSampleClient is a client for the FeedbackSample schema.
type FeedbackSampleClient struct {
	config
}

// NewFeedbackSampleClient returns a client for the FeedbackSample from the given config.
func NewFeedbackSampleClient(c config) *FeedbackSampleClient {
	return &FeedbackSampleClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `feedbacksample.Hooks(f(g(h())))`.
func (c *FeedbackSampleClient) Use(hooks ...Hook) {
	c.hooks.FeedbackSample = append(c.hooks.FeedbackSample, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `feedbacksample.Intercept(f(g(h())))`.
func (c *FeedbackSampleClient) Intercept(interceptors ...Interceptor) {
	c.inters.FeedbackSample = append(c.inters.FeedbackSample, interceptors...)
}

// Create returns a builder for creating a FeedbackSample entity.
func (c *FeedbackSampleClient) Create() *FeedbackSampleCreate {
	mutation := newFeedbackSampleMutation(c.config, OpCreate)
	return &FeedbackSampleCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of FeedbackSample entities.
func (c *FeedbackSampleClient) CreateBulk(builders ...*FeedbackSampleCreate) *FeedbackSampleCreateBulk {
	return &FeedbackSampleCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *FeedbackSampleClient) MapCreateBulk(slice any, setFunc func(*FeedbackSampleCreate, int)) *FeedbackSampleCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &FeedbackSampleCreateBulk{err: fmt.Errorf("calling to FeedbackSampleClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*FeedbackSampleCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &FeedbackSampleCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for FeedbackSample.
func (c *FeedbackSampleClient) Update() *FeedbackSampleUpdate {
	mutation := newFeedbackSampleMutation(c.config, OpUpdate)
	return &FeedbackSampleUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *FeedbackSampleClient) UpdateOne(_m *FeedbackSample) *FeedbackSampleUpdateOne {
	mutation := newFeedbackSampleMutation(c.config, OpUpdateOne, withFeedbackSample(_m))
	return &FeedbackSampleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *FeedbackSampleClient) UpdateOneID(id string) *FeedbackSampleUpdateOne {
	mutation := newFeedbackSampleMutation(c.config, OpUpdateOne, withFeedbackSampleID(id))
	return &FeedbackSampleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for FeedbackSample.
func (c *FeedbackSampleClient) Delete() *FeedbackSampleDelete {
	mutation := newFeedbackSampleMutation(c.config, OpDelete)
	return &FeedbackSampleDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *FeedbackSampleClient) DeleteOne(_m *FeedbackSample) *FeedbackSampleDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *FeedbackSampleClient) DeleteOneID(id string) *FeedbackSampleDeleteOne {
	builder := c.Delete().Where(feedbacksample.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &FeedbackSampleDeleteOne{builder}
}

// Query returns a query builder for FeedbackSample.
func (c *FeedbackSampleClient) Query() *FeedbackSampleQuery {
	return &FeedbackSampleQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeFeedbackSample},
		inters: c.Interceptors(),
	}
}

// Get returns a FeedbackSample entity by its id.
func (c *FeedbackSampleClient) Get(ctx context.Context, id string) (*FeedbackSample, error) {
	return c.Query().Where(feedbacksample.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *FeedbackSampleClient) GetX(ctx context.Context, id string) *FeedbackSample {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySession queries the session edge of a FeedbackSample.
func (c *FeedbackSampleClient) QuerySession(_m *FeedbackSample) *ReconSessionQuery {
	query := (&ReconSessionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(feedbacksample.Table, feedbacksample.FieldID, id),
			sqlgraph.To(reconsession.Table, reconsession.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, feedbacksample.SessionTable, feedbacksample.SessionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *FeedbackSampleClient) Hooks() []Hook {
	return c.hooks.FeedbackSample
}

// Interceptors returns the client interceptors.
func (c *FeedbackSampleClient) Interceptors() []Interceptor {
	return c.inters.FeedbackSample
}

func (c *FeedbackSampleClient) mutate(ctx context.Context, m *FeedbackSampleMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&FeedbackSampleCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&FeedbackSampleUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&FeedbackSampleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&FeedbackSampleDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown FeedbackSample mutation op: %q", m.Op())
	}
}

// ProgressEventClient is a client for the ProgressEvent schema.
type ProgressEventClient struct {
	config
}

// NewProgressEventClient returns a client for the ProgressEvent from the given config.
func NewProgressEventClient(c config) *ProgressEventClient {
	return &ProgressEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `progressevent.Hooks(f(g(h())))`.
func (c *ProgressEventClient) Use(hooks ...Hook) {
	c.hooks.ProgressEvent = append(c.hooks.ProgressEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `progressevent.Intercept(f(g(h())))`.
func (c *ProgressEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.ProgressEvent = append(c.inters.ProgressEvent, interceptors...)
}

// Create returns a builder for creating a ProgressEvent entity.
func (c *ProgressEventClient) Create() *ProgressEventCreate {
	mutation := newProgressEventMutation(c.config, OpCreate)
	return &ProgressEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ProgressEvent entities.
func (c *ProgressEventClient) CreateBulk(builders ...*ProgressEventCreate) *ProgressEventCreateBulk {
	return &ProgressEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ProgressEventClient) MapCreateBulk(slice any, setFunc func(*ProgressEventCreate, int)) *ProgressEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ProgressEventCreateBulk{err: fmt.Errorf("calling to ProgressEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ProgressEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ProgressEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ProgressEvent.
func (c *ProgressEventClient) Update() *ProgressEventUpdate {
	mutation := newProgressEventMutation(c.config, OpUpdate)
	return &ProgressEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ProgressEventClient) UpdateOne(_m *ProgressEvent) *ProgressEventUpdateOne {
	mutation := newProgressEventMutation(c.config, OpUpdateOne, withProgressEvent(_m))
	return &ProgressEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ProgressEventClient) UpdateOneID(id int) *ProgressEventUpdateOne {
	mutation := newProgressEventMutation(c.config, OpUpdateOne, withProgressEventID(id))
	return &ProgressEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ProgressEvent.
func (c *ProgressEventClient) Delete() *ProgressEventDelete {
	mutation := newProgressEventMutation(c.config, OpDelete)
	return &ProgressEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ProgressEventClient) DeleteOne(_m *ProgressEvent) *ProgressEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ProgressEventClient) DeleteOneID(id int) *ProgressEventDeleteOne {
	builder := c.Delete().Where(progressevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ProgressEventDeleteOne{builder}
}

// Query returns a query builder for ProgressEvent.
func (c *ProgressEventClient) Query() *ProgressEventQuery {
	return &ProgressEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeProgressEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a ProgressEvent entity by its id.
func (c *ProgressEventClient) Get(ctx context.Context, id int) (*ProgressEvent, error) {
	return c.Query().Where(progressevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ProgressEventClient) GetX(ctx context.Context, id int) *ProgressEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySession queries the session edge of a ProgressEvent.
func (c *ProgressEventClient) QuerySession(_m *ProgressEvent) *ReconSessionQuery {
	query := (&ReconSessionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(progressevent.Table, progressevent.FieldID, id),
			sqlgraph.To(reconsession.Table, reconsession.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, progressevent.SessionTable, progressevent.SessionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ProgressEventClient) Hooks() []Hook {
	return c.hooks.ProgressEvent
}

// Interceptors returns the client interceptors.
func (c *ProgressEventClient) Interceptors() []Interceptor {
	return c.inters.ProgressEvent
}

func (c *ProgressEventClient) mutate(ctx context.Context, m *ProgressEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ProgressEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ProgressEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ProgressEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ProgressEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ProgressEvent mutation op: %q", m.Op())
	}
}

// ReconSessionClient is a client for the ReconSession schema.
type ReconSessionClient struct {
	config
}

// NewReconSessionClient returns a client for the ReconSession from the given config.
func NewReconSessionClient(c config) *ReconSessionClient {
	return &ReconSessionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `reconsession.Hooks(f(g(h())))`.
func (c *ReconSessionClient) Use(hooks ...Hook) {
	c.hooks.ReconSession = append(c.hooks.ReconSession, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `reconsession.Intercept(f(g(h())))`.
func (c *ReconSessionClient) Intercept(interceptors ...Interceptor) {
	c.inters.ReconSession = append(c.inters.ReconSession, interceptors...)
}

// Create returns a builder for creating a ReconSession entity.
func (c *ReconSessionClient) Create() *ReconSessionCreate {
	mutation := newReconSessionMutation(c.config, OpCreate)
	return &ReconSessionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ReconSession entities.
func (c *ReconSessionClient) CreateBulk(builders ...*ReconSessionCreate) *ReconSessionCreateBulk {
	return &ReconSessionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ReconSessionClient) MapCreateBulk(slice any, setFunc func(*ReconSessionCreate, int)) *ReconSessionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ReconSessionCreateBulk{err: fmt.Errorf("calling to ReconSessionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ReconSessionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ReconSessionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ReconSession.
func (c *ReconSessionClient) Update() *ReconSessionUpdate {
	mutation := newReconSessionMutation(c.config, OpUpdate)
	return &ReconSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ReconSessionClient) UpdateOne(_m *ReconSession) *ReconSessionUpdateOne {
	mutation := newReconSessionMutation(c.config, OpUpdateOne, withReconSession(_m))
	return &ReconSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ReconSessionClient) UpdateOneID(id string) *ReconSessionUpdateOne {
	mutation := newReconSessionMutation(c.config, OpUpdateOne, withReconSessionID(id))
	return &ReconSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ReconSession.
func (c *ReconSessionClient) Delete() *ReconSessionDelete {
	mutation := newReconSessionMutation(c.config, OpDelete)
	return &ReconSessionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ReconSessionClient) DeleteOne(_m *ReconSession) *ReconSessionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ReconSessionClient) DeleteOneID(id string) *ReconSessionDeleteOne {
	builder := c.Delete().Where(reconsession.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ReconSessionDeleteOne{builder}
}

// Query returns a query builder for ReconSession.
func (c *ReconSessionClient) Query() *ReconSessionQuery {
	return &ReconSessionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeReconSession},
		inters: c.Interceptors(),
	}
}

// Get returns a ReconSession entity by its id.
func (c *ReconSessionClient) Get(ctx context.Context, id string) (*ReconSession, error) {
	return c.Query().Where(reconsession.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ReconSessionClient) GetX(ctx context.Context, id string) *ReconSession {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryStageExecutions queries the stage_executions edge of a ReconSession.
func (c *ReconSessionClient) QueryStageExecutions(_m *ReconSession) *StageExecutionQuery {
	query := (&StageExecutionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(reconsession.Table, reconsession.FieldID, id),
			sqlgraph.To(stageexecution.Table, stageexecution.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, reconsession.StageExecutionsTable, reconsession.StageExecutionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryDivergenceRecords queries the divergence_records edge of a ReconSession.
func (c *ReconSessionClient) QueryDivergenceRecords(_m *ReconSession) *DivergenceRecordQuery {
	query := (&DivergenceRecordClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(reconsession.Table, reconsession.FieldID, id),
			sqlgraph.To(divergencerecord.Table, divergencerecord.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, reconsession.DivergenceRecordsTable, reconsession.DivergenceRecordsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryWorkpaper queries the workpaper edge of a ReconSession.
func (c *ReconSessionClient) QueryWorkpaper(_m *ReconSession) *WorkpaperQuery {
	query := (&WorkpaperClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(reconsession.Table, reconsession.FieldID, id),
			sqlgraph.To(workpaper.Table, workpaper.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, reconsession.WorkpaperTable, reconsession.WorkpaperColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryProgressEvents queries the progress_events edge of a ReconSession.
func (c *ReconSessionClient) QueryProgressEvents(_m *ReconSession) *ProgressEventQuery {
	query := (&ProgressEventClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(reconsession.Table, reconsession.FieldID, id),
			sqlgraph.To(progressevent.Table, progressevent.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, reconsession.ProgressEventsTable, reconsession.ProgressEventsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryFeedbackSamples queries the feedback_samples edge of a ReconSession.
func (c *ReconSessionClient) QueryFeedbackSamples(_m *ReconSession) *FeedbackSampleQuery {
	query := (&FeedbackSampleClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(reconsession.Table, reconsession.FieldID, id),
			sqlgraph.To(feedbacksample.Table, feedbacksample.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, reconsession.FeedbackSamplesTable, reconsession.FeedbackSamplesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ReconSessionClient) Hooks() []Hook {
	return c.hooks.ReconSession
}

// Interceptors returns the client interceptors.
func (c *ReconSessionClient) Interceptors() []Interceptor {
	return c.inters.ReconSession
}

func (c *ReconSessionClient) mutate(ctx context.Context, m *ReconSessionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ReconSessionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ReconSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ReconSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ReconSessionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ReconSession mutation op: %q", m.Op())
	}
}

// StageExecutionClient is a client for the StageExecution schema.
type StageExecutionClient struct {
	config
}

// NewStageExecutionClient returns a client for the StageExecution from the given config.
func NewStageExecutionClient(c config) *StageExecutionClient {
	return &StageExecutionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `stageexecution.Hooks(f(g(h())))`.
func (c *StageExecutionClient) Use(hooks ...Hook) {
	c.hooks.StageExecution = append(c.hooks.StageExecution, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `stageexecution.Intercept(f(g(h())))`.
func (c *StageExecutionClient) Intercept(interceptors ...Interceptor) {
	c.inters.StageExecution = append(c.inters.StageExecution, interceptors...)
}

// Create returns a builder for creating a StageExecution entity.
func (c *StageExecutionClient) Create() *StageExecutionCreate {
	mutation := newStageExecutionMutation(c.config, OpCreate)
	return &StageExecutionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of StageExecution entities.
func (c *StageExecutionClient) CreateBulk(builders ...*StageExecutionCreate) *StageExecutionCreateBulk {
	return &StageExecutionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *StageExecutionClient) MapCreateBulk(slice any, setFunc func(*StageExecutionCreate, int)) *StageExecutionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &StageExecutionCreateBulk{err: fmt.Errorf("calling to StageExecutionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*StageExecutionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &StageExecutionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for StageExecution.
func (c *StageExecutionClient) Update() *StageExecutionUpdate {
	mutation := newStageExecutionMutation(c.config, OpUpdate)
	return &StageExecutionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *StageExecutionClient) UpdateOne(_m *StageExecution) *StageExecutionUpdateOne {
	mutation := newStageExecutionMutation(c.config, OpUpdateOne, withStageExecution(_m))
	return &StageExecutionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *StageExecutionClient) UpdateOneID(id string) *StageExecutionUpdateOne {
	mutation := newStageExecutionMutation(c.config, OpUpdateOne, withStageExecutionID(id))
	return &StageExecutionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for StageExecution.
func (c *StageExecutionClient) Delete() *StageExecutionDelete {
	mutation := newStageExecutionMutation(c.config, OpDelete)
	return &StageExecutionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *StageExecutionClient) DeleteOne(_m *StageExecution) *StageExecutionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *StageExecutionClient) DeleteOneID(id string) *StageExecutionDeleteOne {
	builder := c.Delete().Where(stageexecution.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &StageExecutionDeleteOne{builder}
}

// Query returns a query builder for StageExecution.
func (c *StageExecutionClient) Query() *StageExecutionQuery {
	return &StageExecutionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeStageExecution},
		inters: c.Interceptors(),
	}
}

// Get returns a StageExecution entity by its id.
func (c *StageExecutionClient) Get(ctx context.Context, id string) (*StageExecution, error) {
	return c.Query().Where(stageexecution.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *StageExecutionClient) GetX(ctx context.Context, id string) *StageExecution {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySession queries the session edge of a StageExecution.
func (c *StageExecutionClient) QuerySession(_m *StageExecution) *ReconSessionQuery {
	query := (&ReconSessionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(stageexecution.Table, stageexecution.FieldID, id),
			sqlgraph.To(reconsession.Table, reconsession.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, stageexecution.SessionTable, stageexecution.SessionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *StageExecutionClient) Hooks() []Hook {
	return c.hooks.StageExecution
}

// Interceptors returns the client interceptors.
func (c *StageExecutionClient) Interceptors() []Interceptor {
	return c.inters.StageExecution
}

func (c *StageExecutionClient) mutate(ctx context.Context, m *StageExecutionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&StageExecutionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&StageExecutionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&StageExecutionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&StageExecutionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown StageExecution mutation op: %q", m.Op())
	}
}

// WorkpaperClient is a client for the Workpaper schema.
type WorkpaperClient struct {
	config
}

// NewWorkpaperClient returns a client for the Workpaper from the given config.
func NewWorkpaperClient(c config) *WorkpaperClient {
	return &WorkpaperClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `workpaper.Hooks(f(g(h())))`.
func (c *WorkpaperClient) Use(hooks ...Hook) {
	c.hooks.Workpaper = append(c.hooks.Workpaper, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `workpaper.Intercept(f(g(h())))`.
func (c *WorkpaperClient) Intercept(interceptors ...Interceptor) {
	c.inters.Workpaper = append(c.inters.Workpaper, interceptors...)
}

// Create returns a builder for creating a Workpaper entity.
func (c *WorkpaperClient) Create() *WorkpaperCreate {
	mutation := newWorkpaperMutation(c.config, OpCreate)
	return &WorkpaperCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Workpaper entities.
func (c *WorkpaperClient) CreateBulk(builders ...*WorkpaperCreate) *WorkpaperCreateBulk {
	return &WorkpaperCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *WorkpaperClient) MapCreateBulk(slice any, setFunc func(*WorkpaperCreate, int)) *WorkpaperCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &WorkpaperCreateBulk{err: fmt.Errorf("calling to WorkpaperClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*WorkpaperCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &WorkpaperCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Workpaper.
func (c *WorkpaperClient) Update() *WorkpaperUpdate {
	mutation := newWorkpaperMutation(c.config, OpUpdate)
	return &WorkpaperUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *WorkpaperClient) UpdateOne(_m *Workpaper) *WorkpaperUpdateOne {
	mutation := newWorkpaperMutation(c.config, OpUpdateOne, withWorkpaper(_m))
	return &WorkpaperUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *WorkpaperClient) UpdateOneID(id string) *WorkpaperUpdateOne {
	mutation := newWorkpaperMutation(c.config, OpUpdateOne, withWorkpaperID(id))
	return &WorkpaperUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Workpaper.
func (c *WorkpaperClient) Delete() *WorkpaperDelete {
	mutation := newWorkpaperMutation(c.config, OpDelete)
	return &WorkpaperDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *WorkpaperClient) DeleteOne(_m *Workpaper) *WorkpaperDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *WorkpaperClient) DeleteOneID(id string) *WorkpaperDeleteOne {
	builder := c.Delete().Where(workpaper.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &WorkpaperDeleteOne{builder}
}

// Query returns a query builder for Workpaper.
func (c *WorkpaperClient) Query() *WorkpaperQuery {
	return &WorkpaperQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeWorkpaper},
		inters: c.Interceptors(),
	}
}

// Get returns a Workpaper entity by its id.
func (c *WorkpaperClient) Get(ctx context.Context, id string) (*Workpaper, error) {
	return c.Query().Where(workpaper.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *WorkpaperClient) GetX(ctx context.Context, id string) *Workpaper {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySession queries the session edge of a Workpaper.
func (c *WorkpaperClient) QuerySession(_m *Workpaper) *ReconSessionQuery {
	query := (&ReconSessionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(workpaper.Table, workpaper.FieldID, id),
			sqlgraph.To(reconsession.Table, reconsession.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, workpaper.SessionTable, workpaper.SessionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *WorkpaperClient) Hooks() []Hook {
	return c.hooks.Workpaper
}

// Interceptors returns the client interceptors.
func (c *WorkpaperClient) Interceptors() []Interceptor {
	return c.inters.Workpaper
}

func (c *WorkpaperClient) mutate(ctx context.Context, m *WorkpaperMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&WorkpaperCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&WorkpaperUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&WorkpaperUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&WorkpaperDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Workpaper mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		DivergenceRecord, FeedbackSample, ProgressEvent, ReconSession, StageExecution,
		Workpaper []ent.Hook
	}
	inters struct {
		DivergenceRecord, FeedbackSample, ProgressEvent, ReconSession, StageExecution,
		Workpaper []ent.Interceptor
	}
)
