// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/abhisek/inkwell/ent/migrate"
	"github.com/google/uuid"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/inkwell/ent/reviewevent"
	"github.com/abhisek/inkwell/ent/vocabentry"
	"github.com/abhisek/inkwell/ent/writing"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// ReviewEvent is the client for interacting with the ReviewEvent builders.
	ReviewEvent *ReviewEventClient
	// VocabEntry is the client for interacting with the VocabEntry builders.
	VocabEntry *VocabEntryClient
	// Writing is the client for interacting with the Writing builders.
	Writing *WritingClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.ReviewEvent = NewReviewEventClient(c.config)
	c.VocabEntry = NewVocabEntryClient(c.config)
	c.Writing = NewWritingClient(c.config)
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
		ctx:         ctx,
		config:      cfg,
		ReviewEvent: NewReviewEventClient(cfg),
		VocabEntry:  NewVocabEntryClient(cfg),
		Writing:     NewWritingClient(cfg),
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
		ctx:         ctx,
		config:      cfg,
		ReviewEvent: NewReviewEventClient(cfg),
		VocabEntry:  NewVocabEntryClient(cfg),
		Writing:     NewWritingClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		ReviewEvent.
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
	c.ReviewEvent.Use(hooks...)
	c.VocabEntry.Use(hooks...)
	c.Writing.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.ReviewEvent.Intercept(interceptors...)
	c.VocabEntry.Intercept(interceptors...)
	c.Writing.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *ReviewEventMutation:
		return c.ReviewEvent.mutate(ctx, m)
	case *VocabEntryMutation:
		return c.VocabEntry.mutate(ctx, m)
	case *WritingMutation:
		return c.Writing.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// ReviewEventClient is a client for the ReviewEvent schema.
type ReviewEventClient struct {
	config
}

// NewReviewEventClient returns a client for the ReviewEvent from the given config.
func NewReviewEventClient(c config) *ReviewEventClient {
	return &ReviewEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `reviewevent.Hooks(f(g(h())))`.
func (c *ReviewEventClient) Use(hooks ...Hook) {
	c.hooks.ReviewEvent = append(c.hooks.ReviewEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `reviewevent.Intercept(f(g(h())))`.
func (c *ReviewEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.ReviewEvent = append(c.inters.ReviewEvent, interceptors...)
}

// Create returns a builder for creating a ReviewEvent entity.
func (c *ReviewEventClient) Create() *ReviewEventCreate {
	mutation := newReviewEventMutation(c.config, OpCreate)
	return &ReviewEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ReviewEvent entities.
func (c *ReviewEventClient) CreateBulk(builders ...*ReviewEventCreate) *ReviewEventCreateBulk {
	return &ReviewEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ReviewEventClient) MapCreateBulk(slice any, setFunc func(*ReviewEventCreate, int)) *ReviewEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ReviewEventCreateBulk{err: fmt.Errorf("calling to ReviewEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ReviewEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ReviewEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ReviewEvent.
func (c *ReviewEventClient) Update() *ReviewEventUpdate {
	mutation := newReviewEventMutation(c.config, OpUpdate)
	return &ReviewEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ReviewEventClient) UpdateOne(_m *ReviewEvent) *ReviewEventUpdateOne {
	mutation := newReviewEventMutation(c.config, OpUpdateOne, withReviewEvent(_m))
	return &ReviewEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ReviewEventClient) UpdateOneID(id int) *ReviewEventUpdateOne {
	mutation := newReviewEventMutation(c.config, OpUpdateOne, withReviewEventID(id))
	return &ReviewEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ReviewEvent.
func (c *ReviewEventClient) Delete() *ReviewEventDelete {
	mutation := newReviewEventMutation(c.config, OpDelete)
	return &ReviewEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ReviewEventClient) DeleteOne(_m *ReviewEvent) *ReviewEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ReviewEventClient) DeleteOneID(id int) *ReviewEventDeleteOne {
	builder := c.Delete().Where(reviewevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ReviewEventDeleteOne{builder}
}

// Query returns a query builder for ReviewEvent.
func (c *ReviewEventClient) Query() *ReviewEventQuery {
	return &ReviewEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeReviewEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a ReviewEvent entity by its id.
func (c *ReviewEventClient) Get(ctx context.Context, id int) (*ReviewEvent, error) {
	return c.Query().Where(reviewevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ReviewEventClient) GetX(ctx context.Context, id int) *ReviewEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ReviewEventClient) Hooks() []Hook {
	return c.hooks.ReviewEvent
}

// Interceptors returns the client interceptors.
func (c *ReviewEventClient) Interceptors() []Interceptor {
	return c.inters.ReviewEvent
}

func (c *ReviewEventClient) mutate(ctx context.Context, m *ReviewEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ReviewEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ReviewEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ReviewEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ReviewEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ReviewEvent mutation op: %q", m.Op())
	}
}

// VocabEntryClient is a client for the VocabEntry schema.
type VocabEntryClient struct {
	config
}

// NewVocabEntryClient returns a client for the VocabEntry from the given config.
func NewVocabEntryClient(c config) *VocabEntryClient {
	return &VocabEntryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `vocabentry.Hooks(f(g(h())))`.
func (c *VocabEntryClient) Use(hooks ...Hook) {
	c.hooks.VocabEntry = append(c.hooks.VocabEntry, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `vocabentry.Intercept(f(g(h())))`.
func (c *VocabEntryClient) Intercept(interceptors ...Interceptor) {
	c.inters.VocabEntry = append(c.inters.VocabEntry, interceptors...)
}

// Create returns a builder for creating a VocabEntry entity.
func (c *VocabEntryClient) Create() *VocabEntryCreate {
	mutation := newVocabEntryMutation(c.config, OpCreate)
	return &VocabEntryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of VocabEntry entities.
func (c *VocabEntryClient) CreateBulk(builders ...*VocabEntryCreate) *VocabEntryCreateBulk {
	return &VocabEntryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *VocabEntryClient) MapCreateBulk(slice any, setFunc func(*VocabEntryCreate, int)) *VocabEntryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &VocabEntryCreateBulk{err: fmt.Errorf("calling to VocabEntryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*VocabEntryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &VocabEntryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for VocabEntry.
func (c *VocabEntryClient) Update() *VocabEntryUpdate {
	mutation := newVocabEntryMutation(c.config, OpUpdate)
	return &VocabEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *VocabEntryClient) UpdateOne(_m *VocabEntry) *VocabEntryUpdateOne {
	mutation := newVocabEntryMutation(c.config, OpUpdateOne, withVocabEntry(_m))
	return &VocabEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *VocabEntryClient) UpdateOneID(id uuid.UUID) *VocabEntryUpdateOne {
	mutation := newVocabEntryMutation(c.config, OpUpdateOne, withVocabEntryID(id))
	return &VocabEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for VocabEntry.
func (c *VocabEntryClient) Delete() *VocabEntryDelete {
	mutation := newVocabEntryMutation(c.config, OpDelete)
	return &VocabEntryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *VocabEntryClient) DeleteOne(_m *VocabEntry) *VocabEntryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *VocabEntryClient) DeleteOneID(id uuid.UUID) *VocabEntryDeleteOne {
	builder := c.Delete().Where(vocabentry.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &VocabEntryDeleteOne{builder}
}

// Query returns a query builder for VocabEntry.
func (c *VocabEntryClient) Query() *VocabEntryQuery {
	return &VocabEntryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeVocabEntry},
		inters: c.Interceptors(),
	}
}

// Get returns a VocabEntry entity by its id.
func (c *VocabEntryClient) Get(ctx context.Context, id uuid.UUID) (*VocabEntry, error) {
	return c.Query().Where(vocabentry.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *VocabEntryClient) GetX(ctx context.Context, id uuid.UUID) *VocabEntry {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *VocabEntryClient) Hooks() []Hook {
	return c.hooks.VocabEntry
}

// Interceptors returns the client interceptors.
func (c *VocabEntryClient) Interceptors() []Interceptor {
	return c.inters.VocabEntry
}

func (c *VocabEntryClient) mutate(ctx context.Context, m *VocabEntryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&VocabEntryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&VocabEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&VocabEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&VocabEntryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown VocabEntry mutation op: %q", m.Op())
	}
}

// WritingClient is a client for the Writing schema.
type WritingClient struct {
	config
}

// NewWritingClient returns a client for the Writing from the given config.
func NewWritingClient(c config) *WritingClient {
	return &WritingClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `writing.Hooks(f(g(h())))`.
func (c *WritingClient) Use(hooks ...Hook) {
	c.hooks.Writing = append(c.hooks.Writing, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `writing.Intercept(f(g(h())))`.
func (c *WritingClient) Intercept(interceptors ...Interceptor) {
	c.inters.Writing = append(c.inters.Writing, interceptors...)
}

// Create returns a builder for creating a Writing entity.
func (c *WritingClient) Create() *WritingCreate {
	mutation := newWritingMutation(c.config, OpCreate)
	return &WritingCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Writing entities.
func (c *WritingClient) CreateBulk(builders ...*WritingCreate) *WritingCreateBulk {
	return &WritingCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *WritingClient) MapCreateBulk(slice any, setFunc func(*WritingCreate, int)) *WritingCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &WritingCreateBulk{err: fmt.Errorf("calling to WritingClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*WritingCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &WritingCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Writing.
func (c *WritingClient) Update() *WritingUpdate {
	mutation := newWritingMutation(c.config, OpUpdate)
	return &WritingUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *WritingClient) UpdateOne(_m *Writing) *WritingUpdateOne {
	mutation := newWritingMutation(c.config, OpUpdateOne, withWriting(_m))
	return &WritingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *WritingClient) UpdateOneID(id uuid.UUID) *WritingUpdateOne {
	mutation := newWritingMutation(c.config, OpUpdateOne, withWritingID(id))
	return &WritingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Writing.
func (c *WritingClient) Delete() *WritingDelete {
	mutation := newWritingMutation(c.config, OpDelete)
	return &WritingDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *WritingClient) DeleteOne(_m *Writing) *WritingDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *WritingClient) DeleteOneID(id uuid.UUID) *WritingDeleteOne {
	builder := c.Delete().Where(writing.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &WritingDeleteOne{builder}
}

// Query returns a query builder for Writing.
func (c *WritingClient) Query() *WritingQuery {
	return &WritingQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeWriting},
		inters: c.Interceptors(),
	}
}

// Get returns a Writing entity by its id.
func (c *WritingClient) Get(ctx context.Context, id uuid.UUID) (*Writing, error) {
	return c.Query().Where(writing.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *WritingClient) GetX(ctx context.Context, id uuid.UUID) *Writing {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *WritingClient) Hooks() []Hook {
	return c.hooks.Writing
}

// Interceptors returns the client interceptors.
func (c *WritingClient) Interceptors() []Interceptor {
	return c.inters.Writing
}

func (c *WritingClient) mutate(ctx context.Context, m *WritingMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&WritingCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&WritingUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&WritingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&WritingDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Writing mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		ReviewEvent, VocabEntry, Writing []ent.Hook
	}
	inters struct {
		ReviewEvent, VocabEntry, Writing []ent.Interceptor
	}
)
