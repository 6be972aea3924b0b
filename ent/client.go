// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/abhisek/skillforge/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/skillforge/ent/evaluatorrequestevent"
	"github.com/abhisek/skillforge/ent/exerciseevaluationevent"
	"github.com/abhisek/skillforge/ent/hintrequestevent"
	"github.com/abhisek/skillforge/ent/progressblob"
	"github.com/abhisek/skillforge/ent/quizsubmissionevent"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// EvaluatorRequestEvent is the client for interacting with the EvaluatorRequestEvent builders.
	EvaluatorRequestEvent *EvaluatorRequestEventClient
	// ExerciseEvaluationEvent is the client for interacting with the ExerciseEvaluationEvent builders.
	ExerciseEvaluationEvent *ExerciseEvaluationEventClient
	// HintRequestEvent is the client for interacting with the HintRequestEvent builders.
	HintRequestEvent *HintRequestEventClient
	// ProgressBlob is the client for interacting with the ProgressBlob builders.
	ProgressBlob *ProgressBlobClient
	// QuizSubmissionEvent is the client for interacting with the QuizSubmissionEvent builders.
	QuizSubmissionEvent *QuizSubmissionEventClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.EvaluatorRequestEvent = NewEvaluatorRequestEventClient(c.config)
	c.ExerciseEvaluationEvent = NewExerciseEvaluationEventClient(c.config)
	c.HintRequestEvent = NewHintRequestEventClient(c.config)
	c.ProgressBlob = NewProgressBlobClient(c.config)
	c.QuizSubmissionEvent = NewQuizSubmissionEventClient(c.config)
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
		ctx:                     ctx,
		config:                  cfg,
		EvaluatorRequestEvent:   NewEvaluatorRequestEventClient(cfg),
		ExerciseEvaluationEvent: NewExerciseEvaluationEventClient(cfg),
		HintRequestEvent:        NewHintRequestEventClient(cfg),
		ProgressBlob:            NewProgressBlobClient(cfg),
		QuizSubmissionEvent:     NewQuizSubmissionEventClient(cfg),
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
		ctx:                     ctx,
		config:                  cfg,
		EvaluatorRequestEvent:   NewEvaluatorRequestEventClient(cfg),
		ExerciseEvaluationEvent: NewExerciseEvaluationEventClient(cfg),
		HintRequestEvent:        NewHintRequestEventClient(cfg),
		ProgressBlob:            NewProgressBlobClient(cfg),
		QuizSubmissionEvent:     NewQuizSubmissionEventClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		EvaluatorRequestEvent.
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
	c.EvaluatorRequestEvent.Use(hooks...)
	c.ExerciseEvaluationEvent.Use(hooks...)
	c.HintRequestEvent.Use(hooks...)
	c.ProgressBlob.Use(hooks...)
	c.QuizSubmissionEvent.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.EvaluatorRequestEvent.Intercept(interceptors...)
	c.ExerciseEvaluationEvent.Intercept(interceptors...)
	c.HintRequestEvent.Intercept(interceptors...)
	c.ProgressBlob.Intercept(interceptors...)
	c.QuizSubmissionEvent.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *EvaluatorRequestEventMutation:
		return c.EvaluatorRequestEvent.mutate(ctx, m)
	case *ExerciseEvaluationEventMutation:
		return c.ExerciseEvaluationEvent.mutate(ctx, m)
	case *HintRequestEventMutation:
		return c.HintRequestEvent.mutate(ctx, m)
	case *ProgressBlobMutation:
		return c.ProgressBlob.mutate(ctx, m)
	case *QuizSubmissionEventMutation:
		return c.QuizSubmissionEvent.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// EvaluatorRequestEventClient is a client for the EvaluatorRequestEvent schema.
type EvaluatorRequestEventClient struct {
	config
}

// NewEvaluatorRequestEventClient returns a client for the EvaluatorRequestEvent from the given config.
func NewEvaluatorRequestEventClient(c config) *EvaluatorRequestEventClient {
	return &EvaluatorRequestEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `evaluatorrequestevent.Hooks(f(g(h())))`.
func (c *EvaluatorRequestEventClient) Use(hooks ...Hook) {
	c.hooks.EvaluatorRequestEvent = append(c.hooks.EvaluatorRequestEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `evaluatorrequestevent.Intercept(f(g(h())))`.
func (c *EvaluatorRequestEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.EvaluatorRequestEvent = append(c.inters.EvaluatorRequestEvent, interceptors...)
}

// Create returns a builder for creating a EvaluatorRequestEvent entity.
func (c *EvaluatorRequestEventClient) Create() *EvaluatorRequestEventCreate {
	mutation := newEvaluatorRequestEventMutation(c.config, OpCreate)
	return &EvaluatorRequestEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of EvaluatorRequestEvent entities.
func (c *EvaluatorRequestEventClient) CreateBulk(builders ...*EvaluatorRequestEventCreate) *EvaluatorRequestEventCreateBulk {
	return &EvaluatorRequestEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EvaluatorRequestEventClient) MapCreateBulk(slice any, setFunc func(*EvaluatorRequestEventCreate, int)) *EvaluatorRequestEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EvaluatorRequestEventCreateBulk{err: fmt.Errorf("calling to EvaluatorRequestEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EvaluatorRequestEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EvaluatorRequestEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for EvaluatorRequestEvent.
func (c *EvaluatorRequestEventClient) Update() *EvaluatorRequestEventUpdate {
	mutation := newEvaluatorRequestEventMutation(c.config, OpUpdate)
	return &EvaluatorRequestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EvaluatorRequestEventClient) UpdateOne(_m *EvaluatorRequestEvent) *EvaluatorRequestEventUpdateOne {
	mutation := newEvaluatorRequestEventMutation(c.config, OpUpdateOne, withEvaluatorRequestEvent(_m))
	return &EvaluatorRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EvaluatorRequestEventClient) UpdateOneID(id int) *EvaluatorRequestEventUpdateOne {
	mutation := newEvaluatorRequestEventMutation(c.config, OpUpdateOne, withEvaluatorRequestEventID(id))
	return &EvaluatorRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for EvaluatorRequestEvent.
func (c *EvaluatorRequestEventClient) Delete() *EvaluatorRequestEventDelete {
	mutation := newEvaluatorRequestEventMutation(c.config, OpDelete)
	return &EvaluatorRequestEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EvaluatorRequestEventClient) DeleteOne(_m *EvaluatorRequestEvent) *EvaluatorRequestEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EvaluatorRequestEventClient) DeleteOneID(id int) *EvaluatorRequestEventDeleteOne {
	builder := c.Delete().Where(evaluatorrequestevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EvaluatorRequestEventDeleteOne{builder}
}

// Query returns a query builder for EvaluatorRequestEvent.
func (c *EvaluatorRequestEventClient) Query() *EvaluatorRequestEventQuery {
	return &EvaluatorRequestEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEvaluatorRequestEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a EvaluatorRequestEvent entity by its id.
func (c *EvaluatorRequestEventClient) Get(ctx context.Context, id int) (*EvaluatorRequestEvent, error) {
	return c.Query().Where(evaluatorrequestevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EvaluatorRequestEventClient) GetX(ctx context.Context, id int) *EvaluatorRequestEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *EvaluatorRequestEventClient) Hooks() []Hook {
	return c.hooks.EvaluatorRequestEvent
}

// Interceptors returns the client interceptors.
func (c *EvaluatorRequestEventClient) Interceptors() []Interceptor {
	return c.inters.EvaluatorRequestEvent
}

func (c *EvaluatorRequestEventClient) mutate(ctx context.Context, m *EvaluatorRequestEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EvaluatorRequestEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EvaluatorRequestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EvaluatorRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EvaluatorRequestEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown EvaluatorRequestEvent mutation op: %q", m.Op())
	}
}

// ExerciseEvaluationEventClient is a client for the ExerciseEvaluationEvent schema.
type ExerciseEvaluationEventClient struct {
	config
}

// NewExerciseEvaluationEventClient returns a client for the ExerciseEvaluationEvent from the given config.
func NewExerciseEvaluationEventClient(c config) *ExerciseEvaluationEventClient {
	return &ExerciseEvaluationEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `exerciseevaluationevent.Hooks(f(g(h())))`.
func (c *ExerciseEvaluationEventClient) Use(hooks ...Hook) {
	c.hooks.ExerciseEvaluationEvent = append(c.hooks.ExerciseEvaluationEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `exerciseevaluationevent.Intercept(f(g(h())))`.
func (c *ExerciseEvaluationEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.ExerciseEvaluationEvent = append(c.inters.ExerciseEvaluationEvent, interceptors...)
}

// Create returns a builder for creating a ExerciseEvaluationEvent entity.
func (c *ExerciseEvaluationEventClient) Create() *ExerciseEvaluationEventCreate {
	mutation := newExerciseEvaluationEventMutation(c.config, OpCreate)
	return &ExerciseEvaluationEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ExerciseEvaluationEvent entities.
func (c *ExerciseEvaluationEventClient) CreateBulk(builders ...*ExerciseEvaluationEventCreate) *ExerciseEvaluationEventCreateBulk {
	return &ExerciseEvaluationEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ExerciseEvaluationEventClient) MapCreateBulk(slice any, setFunc func(*ExerciseEvaluationEventCreate, int)) *ExerciseEvaluationEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ExerciseEvaluationEventCreateBulk{err: fmt.Errorf("calling to ExerciseEvaluationEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ExerciseEvaluationEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ExerciseEvaluationEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ExerciseEvaluationEvent.
func (c *ExerciseEvaluationEventClient) Update() *ExerciseEvaluationEventUpdate {
	mutation := newExerciseEvaluationEventMutation(c.config, OpUpdate)
	return &ExerciseEvaluationEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ExerciseEvaluationEventClient) UpdateOne(_m *ExerciseEvaluationEvent) *ExerciseEvaluationEventUpdateOne {
	mutation := newExerciseEvaluationEventMutation(c.config, OpUpdateOne, withExerciseEvaluationEvent(_m))
	return &ExerciseEvaluationEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ExerciseEvaluationEventClient) UpdateOneID(id int) *ExerciseEvaluationEventUpdateOne {
	mutation := newExerciseEvaluationEventMutation(c.config, OpUpdateOne, withExerciseEvaluationEventID(id))
	return &ExerciseEvaluationEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ExerciseEvaluationEvent.
func (c *ExerciseEvaluationEventClient) Delete() *ExerciseEvaluationEventDelete {
	mutation := newExerciseEvaluationEventMutation(c.config, OpDelete)
	return &ExerciseEvaluationEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ExerciseEvaluationEventClient) DeleteOne(_m *ExerciseEvaluationEvent) *ExerciseEvaluationEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ExerciseEvaluationEventClient) DeleteOneID(id int) *ExerciseEvaluationEventDeleteOne {
	builder := c.Delete().Where(exerciseevaluationevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ExerciseEvaluationEventDeleteOne{builder}
}

// Query returns a query builder for ExerciseEvaluationEvent.
func (c *ExerciseEvaluationEventClient) Query() *ExerciseEvaluationEventQuery {
	return &ExerciseEvaluationEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeExerciseEvaluationEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a ExerciseEvaluationEvent entity by its id.
func (c *ExerciseEvaluationEventClient) Get(ctx context.Context, id int) (*ExerciseEvaluationEvent, error) {
	return c.Query().Where(exerciseevaluationevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ExerciseEvaluationEventClient) GetX(ctx context.Context, id int) *ExerciseEvaluationEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ExerciseEvaluationEventClient) Hooks() []Hook {
	return c.hooks.ExerciseEvaluationEvent
}

// Interceptors returns the client interceptors.
func (c *ExerciseEvaluationEventClient) Interceptors() []Interceptor {
	return c.inters.ExerciseEvaluationEvent
}

func (c *ExerciseEvaluationEventClient) mutate(ctx context.Context, m *ExerciseEvaluationEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ExerciseEvaluationEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ExerciseEvaluationEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ExerciseEvaluationEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ExerciseEvaluationEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ExerciseEvaluationEvent mutation op: %q", m.Op())
	}
}

// HintRequestEventClient is a client for the HintRequestEvent schema.
type HintRequestEventClient struct {
	config
}

// NewHintRequestEventClient returns a client for the HintRequestEvent from the given config.
func NewHintRequestEventClient(c config) *HintRequestEventClient {
	return &HintRequestEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `hintrequestevent.Hooks(f(g(h())))`.
func (c *HintRequestEventClient) Use(hooks ...Hook) {
	c.hooks.HintRequestEvent = append(c.hooks.HintRequestEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `hintrequestevent.Intercept(f(g(h())))`.
func (c *HintRequestEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.HintRequestEvent = append(c.inters.HintRequestEvent, interceptors...)
}

// Create returns a builder for creating a HintRequestEvent entity.
func (c *HintRequestEventClient) Create() *HintRequestEventCreate {
	mutation := newHintRequestEventMutation(c.config, OpCreate)
	return &HintRequestEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of HintRequestEvent entities.
func (c *HintRequestEventClient) CreateBulk(builders ...*HintRequestEventCreate) *HintRequestEventCreateBulk {
	return &HintRequestEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *HintRequestEventClient) MapCreateBulk(slice any, setFunc func(*HintRequestEventCreate, int)) *HintRequestEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &HintRequestEventCreateBulk{err: fmt.Errorf("calling to HintRequestEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*HintRequestEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &HintRequestEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for HintRequestEvent.
func (c *HintRequestEventClient) Update() *HintRequestEventUpdate {
	mutation := newHintRequestEventMutation(c.config, OpUpdate)
	return &HintRequestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *HintRequestEventClient) UpdateOne(_m *HintRequestEvent) *HintRequestEventUpdateOne {
	mutation := newHintRequestEventMutation(c.config, OpUpdateOne, withHintRequestEvent(_m))
	return &HintRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *HintRequestEventClient) UpdateOneID(id int) *HintRequestEventUpdateOne {
	mutation := newHintRequestEventMutation(c.config, OpUpdateOne, withHintRequestEventID(id))
	return &HintRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for HintRequestEvent.
func (c *HintRequestEventClient) Delete() *HintRequestEventDelete {
	mutation := newHintRequestEventMutation(c.config, OpDelete)
	return &HintRequestEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *HintRequestEventClient) DeleteOne(_m *HintRequestEvent) *HintRequestEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *HintRequestEventClient) DeleteOneID(id int) *HintRequestEventDeleteOne {
	builder := c.Delete().Where(hintrequestevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &HintRequestEventDeleteOne{builder}
}

// Query returns a query builder for HintRequestEvent.
func (c *HintRequestEventClient) Query() *HintRequestEventQuery {
	return &HintRequestEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeHintRequestEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a HintRequestEvent entity by its id.
func (c *HintRequestEventClient) Get(ctx context.Context, id int) (*HintRequestEvent, error) {
	return c.Query().Where(hintrequestevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *HintRequestEventClient) GetX(ctx context.Context, id int) *HintRequestEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *HintRequestEventClient) Hooks() []Hook {
	return c.hooks.HintRequestEvent
}

// Interceptors returns the client interceptors.
func (c *HintRequestEventClient) Interceptors() []Interceptor {
	return c.inters.HintRequestEvent
}

func (c *HintRequestEventClient) mutate(ctx context.Context, m *HintRequestEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&HintRequestEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&HintRequestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&HintRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&HintRequestEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown HintRequestEvent mutation op: %q", m.Op())
	}
}

// ProgressBlobClient is a client for the ProgressBlob schema.
type ProgressBlobClient struct {
	config
}

// NewProgressBlobClient returns a client for the ProgressBlob from the given config.
func NewProgressBlobClient(c config) *ProgressBlobClient {
	return &ProgressBlobClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `progressblob.Hooks(f(g(h())))`.
func (c *ProgressBlobClient) Use(hooks ...Hook) {
	c.hooks.ProgressBlob = append(c.hooks.ProgressBlob, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `progressblob.Intercept(f(g(h())))`.
func (c *ProgressBlobClient) Intercept(interceptors ...Interceptor) {
	c.inters.ProgressBlob = append(c.inters.ProgressBlob, interceptors...)
}

// Create returns a builder for creating a ProgressBlob entity.
func (c *ProgressBlobClient) Create() *ProgressBlobCreate {
	mutation := newProgressBlobMutation(c.config, OpCreate)
	return &ProgressBlobCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ProgressBlob entities.
func (c *ProgressBlobClient) CreateBulk(builders ...*ProgressBlobCreate) *ProgressBlobCreateBulk {
	return &ProgressBlobCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ProgressBlobClient) MapCreateBulk(slice any, setFunc func(*ProgressBlobCreate, int)) *ProgressBlobCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ProgressBlobCreateBulk{err: fmt.Errorf("calling to ProgressBlobClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ProgressBlobCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ProgressBlobCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ProgressBlob.
func (c *ProgressBlobClient) Update() *ProgressBlobUpdate {
	mutation := newProgressBlobMutation(c.config, OpUpdate)
	return &ProgressBlobUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ProgressBlobClient) UpdateOne(_m *ProgressBlob) *ProgressBlobUpdateOne {
	mutation := newProgressBlobMutation(c.config, OpUpdateOne, withProgressBlob(_m))
	return &ProgressBlobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ProgressBlobClient) UpdateOneID(id int) *ProgressBlobUpdateOne {
	mutation := newProgressBlobMutation(c.config, OpUpdateOne, withProgressBlobID(id))
	return &ProgressBlobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ProgressBlob.
func (c *ProgressBlobClient) Delete() *ProgressBlobDelete {
	mutation := newProgressBlobMutation(c.config, OpDelete)
	return &ProgressBlobDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ProgressBlobClient) DeleteOne(_m *ProgressBlob) *ProgressBlobDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ProgressBlobClient) DeleteOneID(id int) *ProgressBlobDeleteOne {
	builder := c.Delete().Where(progressblob.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ProgressBlobDeleteOne{builder}
}

// Query returns a query builder for ProgressBlob.
func (c *ProgressBlobClient) Query() *ProgressBlobQuery {
	return &ProgressBlobQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeProgressBlob},
		inters: c.Interceptors(),
	}
}

// Get returns a ProgressBlob entity by its id.
func (c *ProgressBlobClient) Get(ctx context.Context, id int) (*ProgressBlob, error) {
	return c.Query().Where(progressblob.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ProgressBlobClient) GetX(ctx context.Context, id int) *ProgressBlob {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ProgressBlobClient) Hooks() []Hook {
	return c.hooks.ProgressBlob
}

// Interceptors returns the client interceptors.
func (c *ProgressBlobClient) Interceptors() []Interceptor {
	return c.inters.ProgressBlob
}

func (c *ProgressBlobClient) mutate(ctx context.Context, m *ProgressBlobMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ProgressBlobCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ProgressBlobUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ProgressBlobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ProgressBlobDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ProgressBlob mutation op: %q", m.Op())
	}
}

// QuizSubmissionEventClient is a client for the QuizSubmissionEvent schema.
type QuizSubmissionEventClient struct {
	config
}

// NewQuizSubmissionEventClient returns a client for the QuizSubmissionEvent from the given config.
func NewQuizSubmissionEventClient(c config) *QuizSubmissionEventClient {
	return &QuizSubmissionEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `quizsubmissionevent.Hooks(f(g(h())))`.
func (c *QuizSubmissionEventClient) Use(hooks ...Hook) {
	c.hooks.QuizSubmissionEvent = append(c.hooks.QuizSubmissionEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `quizsubmissionevent.Intercept(f(g(h())))`.
func (c *QuizSubmissionEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.QuizSubmissionEvent = append(c.inters.QuizSubmissionEvent, interceptors...)
}

// Create returns a builder for creating a QuizSubmissionEvent entity.
func (c *QuizSubmissionEventClient) Create() *QuizSubmissionEventCreate {
	mutation := newQuizSubmissionEventMutation(c.config, OpCreate)
	return &QuizSubmissionEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of QuizSubmissionEvent entities.
func (c *QuizSubmissionEventClient) CreateBulk(builders ...*QuizSubmissionEventCreate) *QuizSubmissionEventCreateBulk {
	return &QuizSubmissionEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *QuizSubmissionEventClient) MapCreateBulk(slice any, setFunc func(*QuizSubmissionEventCreate, int)) *QuizSubmissionEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &QuizSubmissionEventCreateBulk{err: fmt.Errorf("calling to QuizSubmissionEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*QuizSubmissionEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &QuizSubmissionEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for QuizSubmissionEvent.
func (c *QuizSubmissionEventClient) Update() *QuizSubmissionEventUpdate {
	mutation := newQuizSubmissionEventMutation(c.config, OpUpdate)
	return &QuizSubmissionEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *QuizSubmissionEventClient) UpdateOne(_m *QuizSubmissionEvent) *QuizSubmissionEventUpdateOne {
	mutation := newQuizSubmissionEventMutation(c.config, OpUpdateOne, withQuizSubmissionEvent(_m))
	return &QuizSubmissionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *QuizSubmissionEventClient) UpdateOneID(id int) *QuizSubmissionEventUpdateOne {
	mutation := newQuizSubmissionEventMutation(c.config, OpUpdateOne, withQuizSubmissionEventID(id))
	return &QuizSubmissionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for QuizSubmissionEvent.
func (c *QuizSubmissionEventClient) Delete() *QuizSubmissionEventDelete {
	mutation := newQuizSubmissionEventMutation(c.config, OpDelete)
	return &QuizSubmissionEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *QuizSubmissionEventClient) DeleteOne(_m *QuizSubmissionEvent) *QuizSubmissionEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *QuizSubmissionEventClient) DeleteOneID(id int) *QuizSubmissionEventDeleteOne {
	builder := c.Delete().Where(quizsubmissionevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &QuizSubmissionEventDeleteOne{builder}
}

// Query returns a query builder for QuizSubmissionEvent.
func (c *QuizSubmissionEventClient) Query() *QuizSubmissionEventQuery {
	return &QuizSubmissionEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeQuizSubmissionEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a QuizSubmissionEvent entity by its id.
func (c *QuizSubmissionEventClient) Get(ctx context.Context, id int) (*QuizSubmissionEvent, error) {
	return c.Query().Where(quizsubmissionevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *QuizSubmissionEventClient) GetX(ctx context.Context, id int) *QuizSubmissionEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *QuizSubmissionEventClient) Hooks() []Hook {
	return c.hooks.QuizSubmissionEvent
}

// Interceptors returns the client interceptors.
func (c *QuizSubmissionEventClient) Interceptors() []Interceptor {
	return c.inters.QuizSubmissionEvent
}

func (c *QuizSubmissionEventClient) mutate(ctx context.Context, m *QuizSubmissionEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&QuizSubmissionEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&QuizSubmissionEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&QuizSubmissionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&QuizSubmissionEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown QuizSubmissionEvent mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		EvaluatorRequestEvent, ExerciseEvaluationEvent, HintRequestEvent, ProgressBlob,
		QuizSubmissionEvent []ent.Hook
	}
	inters struct {
		EvaluatorRequestEvent, ExerciseEvaluationEvent, HintRequestEvent, ProgressBlob,
		QuizSubmissionEvent []ent.Interceptor
	}
)
