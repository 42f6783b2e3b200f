// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/google/uuid"
	"github.com/joseph-ayodele/orderflow/gen/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/joseph-ayodele/orderflow/gen/ent/deadletterentry"
	"github.com/joseph-ayodele/orderflow/gen/ent/merchant"
	"github.com/joseph-ayodele/orderflow/gen/ent/orderdocument"
	"github.com/joseph-ayodele/orderflow/gen/ent/purchaseorder"
	"github.com/joseph-ayodele/orderflow/gen/ent/workflowexecution"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// DeadLetterEntry is the client for interacting with the DeadLetterEntry builders.
	DeadLetterEntry *DeadLetterEntryClient
	// Merchant is the client for interacting with the Merchant builders.
	Merchant *MerchantClient
	// OrderDocument is the client for interacting with the OrderDocument builders.
	OrderDocument *OrderDocumentClient
	// PurchaseOrder is the client for interacting with the PurchaseOrder builders.
	PurchaseOrder *PurchaseOrderClient
	// WorkflowExecution is the client for interacting with the WorkflowExecution builders.
	WorkflowExecution *WorkflowExecutionClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.DeadLetterEntry = NewDeadLetterEntryClient(c.config)
	c.Merchant = NewMerchantClient(c.config)
	c.OrderDocument = NewOrderDocumentClient(c.config)
	c.PurchaseOrder = NewPurchaseOrderClient(c.config)
	c.WorkflowExecution = NewWorkflowExecutionClient(c.config)
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
		ctx:               ctx,
		config:            cfg,
		DeadLetterEntry:   NewDeadLetterEntryClient(cfg),
		Merchant:          NewMerchantClient(cfg),
		OrderDocument:     NewOrderDocumentClient(cfg),
		PurchaseOrder:     NewPurchaseOrderClient(cfg),
		WorkflowExecution: NewWorkflowExecutionClient(cfg),
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
		ctx:               ctx,
		config:            cfg,
		DeadLetterEntry:   NewDeadLetterEntryClient(cfg),
		Merchant:          NewMerchantClient(cfg),
		OrderDocument:     NewOrderDocumentClient(cfg),
		PurchaseOrder:     NewPurchaseOrderClient(cfg),
		WorkflowExecution: NewWorkflowExecutionClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		DeadLetterEntry.
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
	c.DeadLetterEntry.Use(hooks...)
	c.Merchant.Use(hooks...)
	c.OrderDocument.Use(hooks...)
	c.PurchaseOrder.Use(hooks...)
	c.WorkflowExecution.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.DeadLetterEntry.Intercept(interceptors...)
	c.Merchant.Intercept(interceptors...)
	c.OrderDocument.Intercept(interceptors...)
	c.PurchaseOrder.Intercept(interceptors...)
	c.WorkflowExecution.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *DeadLetterEntryMutation:
		return c.DeadLetterEntry.mutate(ctx, m)
	case *MerchantMutation:
		return c.Merchant.mutate(ctx, m)
	case *OrderDocumentMutation:
		return c.OrderDocument.mutate(ctx, m)
	case *PurchaseOrderMutation:
		return c.PurchaseOrder.mutate(ctx, m)
	case *WorkflowExecutionMutation:
		return c.WorkflowExecution.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// DeadLetterEntryClient is a client for the DeadLetterEntry schema.
type DeadLetterEntryClient struct {
	config
}

// NewDeadLetterEntryClient returns a client for the DeadLetterEntry from the given config.
func NewDeadLetterEntryClient(c config) *DeadLetterEntryClient {
	return &DeadLetterEntryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `deadletterentry.Hooks(f(g(h())))`.
func (c *DeadLetterEntryClient) Use(hooks ...Hook) {
	c.hooks.DeadLetterEntry = append(c.hooks.DeadLetterEntry, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `deadletterentry.Intercept(f(g(h())))`.
func (c *DeadLetterEntryClient) Intercept(interceptors ...Interceptor) {
	c.inters.DeadLetterEntry = append(c.inters.DeadLetterEntry, interceptors...)
}

// Create returns a builder for creating a DeadLetterEntry entity.
func (c *DeadLetterEntryClient) Create() *DeadLetterEntryCreate {
	mutation := newDeadLetterEntryMutation(c.config, OpCreate)
	return &DeadLetterEntryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DeadLetterEntry entities.
func (c *DeadLetterEntryClient) CreateBulk(builders ...*DeadLetterEntryCreate) *DeadLetterEntryCreateBulk {
	return &DeadLetterEntryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DeadLetterEntryClient) MapCreateBulk(slice any, setFunc func(*DeadLetterEntryCreate, int)) *DeadLetterEntryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DeadLetterEntryCreateBulk{err: fmt.Errorf("calling to DeadLetterEntryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DeadLetterEntryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DeadLetterEntryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DeadLetterEntry.
func (c *DeadLetterEntryClient) Update() *DeadLetterEntryUpdate {
	mutation := newDeadLetterEntryMutation(c.config, OpUpdate)
	return &DeadLetterEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DeadLetterEntryClient) UpdateOne(_m *DeadLetterEntry) *DeadLetterEntryUpdateOne {
	mutation := newDeadLetterEntryMutation(c.config, OpUpdateOne, withDeadLetterEntry(_m))
	return &DeadLetterEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DeadLetterEntryClient) UpdateOneID(id uuid.UUID) *DeadLetterEntryUpdateOne {
	mutation := newDeadLetterEntryMutation(c.config, OpUpdateOne, withDeadLetterEntryID(id))
	return &DeadLetterEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DeadLetterEntry.
func (c *DeadLetterEntryClient) Delete() *DeadLetterEntryDelete {
	mutation := newDeadLetterEntryMutation(c.config, OpDelete)
	return &DeadLetterEntryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DeadLetterEntryClient) DeleteOne(_m *DeadLetterEntry) *DeadLetterEntryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DeadLetterEntryClient) DeleteOneID(id uuid.UUID) *DeadLetterEntryDeleteOne {
	builder := c.Delete().Where(deadletterentry.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DeadLetterEntryDeleteOne{builder}
}

// Query returns a query builder for DeadLetterEntry.
func (c *DeadLetterEntryClient) Query() *DeadLetterEntryQuery {
	return &DeadLetterEntryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDeadLetterEntry},
		inters: c.Interceptors(),
	}
}

// Get returns a DeadLetterEntry entity by its id.
func (c *DeadLetterEntryClient) Get(ctx context.Context, id uuid.UUID) (*DeadLetterEntry, error) {
	return c.Query().Where(deadletterentry.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DeadLetterEntryClient) GetX(ctx context.Context, id uuid.UUID) *DeadLetterEntry {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryWorkflow queries the workflow edge of a DeadLetterEntry.
func (c *DeadLetterEntryClient) QueryWorkflow(_m *DeadLetterEntry) *WorkflowExecutionQuery {
	query := (&WorkflowExecutionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(deadletterentry.Table, deadletterentry.FieldID, id),
			sqlgraph.To(workflowexecution.Table, workflowexecution.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, deadletterentry.WorkflowTable, deadletterentry.WorkflowColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *DeadLetterEntryClient) Hooks() []Hook {
	return c.hooks.DeadLetterEntry
}

// Interceptors returns the client interceptors.
func (c *DeadLetterEntryClient) Interceptors() []Interceptor {
	return c.inters.DeadLetterEntry
}

func (c *DeadLetterEntryClient) mutate(ctx context.Context, m *DeadLetterEntryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DeadLetterEntryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DeadLetterEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DeadLetterEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DeadLetterEntryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown DeadLetterEntry mutation op: %q", m.Op())
	}
}

// MerchantClient is a client for the Merchant schema.
type MerchantClient struct {
	config
}

// NewMerchantClient returns a client for the Merchant from the given config.
func NewMerchantClient(c config) *MerchantClient {
	return &MerchantClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `merchant.Hooks(f(g(h())))`.
func (c *MerchantClient) Use(hooks ...Hook) {
	c.hooks.Merchant = append(c.hooks.Merchant, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `merchant.Intercept(f(g(h())))`.
func (c *MerchantClient) Intercept(interceptors ...Interceptor) {
	c.inters.Merchant = append(c.inters.Merchant, interceptors...)
}

// Create returns a builder for creating a Merchant entity.
func (c *MerchantClient) Create() *MerchantCreate {
	mutation := newMerchantMutation(c.config, OpCreate)
	return &MerchantCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Merchant entities.
func (c *MerchantClient) CreateBulk(builders ...*MerchantCreate) *MerchantCreateBulk {
	return &MerchantCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MerchantClient) MapCreateBulk(slice any, setFunc func(*MerchantCreate, int)) *MerchantCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MerchantCreateBulk{err: fmt.Errorf("calling to MerchantClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MerchantCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MerchantCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Merchant.
func (c *MerchantClient) Update() *MerchantUpdate {
	mutation := newMerchantMutation(c.config, OpUpdate)
	return &MerchantUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MerchantClient) UpdateOne(_m *Merchant) *MerchantUpdateOne {
	mutation := newMerchantMutation(c.config, OpUpdateOne, withMerchant(_m))
	return &MerchantUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MerchantClient) UpdateOneID(id uuid.UUID) *MerchantUpdateOne {
	mutation := newMerchantMutation(c.config, OpUpdateOne, withMerchantID(id))
	return &MerchantUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Merchant.
func (c *MerchantClient) Delete() *MerchantDelete {
	mutation := newMerchantMutation(c.config, OpDelete)
	return &MerchantDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MerchantClient) DeleteOne(_m *Merchant) *MerchantDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MerchantClient) DeleteOneID(id uuid.UUID) *MerchantDeleteOne {
	builder := c.Delete().Where(merchant.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MerchantDeleteOne{builder}
}

// Query returns a query builder for Merchant.
func (c *MerchantClient) Query() *MerchantQuery {
	return &MerchantQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMerchant},
		inters: c.Interceptors(),
	}
}

// Get returns a Merchant entity by its id.
func (c *MerchantClient) Get(ctx context.Context, id uuid.UUID) (*Merchant, error) {
	return c.Query().Where(merchant.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MerchantClient) GetX(ctx context.Context, id uuid.UUID) *Merchant {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryDocuments queries the documents edge of a Merchant.
func (c *MerchantClient) QueryDocuments(_m *Merchant) *OrderDocumentQuery {
	query := (&OrderDocumentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(merchant.Table, merchant.FieldID, id),
			sqlgraph.To(orderdocument.Table, orderdocument.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, merchant.DocumentsTable, merchant.DocumentsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryWorkflows queries the workflows edge of a Merchant.
func (c *MerchantClient) QueryWorkflows(_m *Merchant) *WorkflowExecutionQuery {
	query := (&WorkflowExecutionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(merchant.Table, merchant.FieldID, id),
			sqlgraph.To(workflowexecution.Table, workflowexecution.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, merchant.WorkflowsTable, merchant.WorkflowsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryOrders queries the orders edge of a Merchant.
func (c *MerchantClient) QueryOrders(_m *Merchant) *PurchaseOrderQuery {
	query := (&PurchaseOrderClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(merchant.Table, merchant.FieldID, id),
			sqlgraph.To(purchaseorder.Table, purchaseorder.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, merchant.OrdersTable, merchant.OrdersColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *MerchantClient) Hooks() []Hook {
	return c.hooks.Merchant
}

// Interceptors returns the client interceptors.
func (c *MerchantClient) Interceptors() []Interceptor {
	return c.inters.Merchant
}

func (c *MerchantClient) mutate(ctx context.Context, m *MerchantMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MerchantCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MerchantUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MerchantUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MerchantDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Merchant mutation op: %q", m.Op())
	}
}

// OrderDocumentClient is a client for the OrderDocument schema.
type OrderDocumentClient struct {
	config
}

// NewOrderDocumentClient returns a client for the OrderDocument from the given config.
func NewOrderDocumentClient(c config) *OrderDocumentClient {
	return &OrderDocumentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `orderdocument.Hooks(f(g(h())))`.
func (c *OrderDocumentClient) Use(hooks ...Hook) {
	c.hooks.OrderDocument = append(c.hooks.OrderDocument, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `orderdocument.Intercept(f(g(h())))`.
func (c *OrderDocumentClient) Intercept(interceptors ...Interceptor) {
	c.inters.OrderDocument = append(c.inters.OrderDocument, interceptors...)
}

// Create returns a builder for creating a OrderDocument entity.
func (c *OrderDocumentClient) Create() *OrderDocumentCreate {
	mutation := newOrderDocumentMutation(c.config, OpCreate)
	return &OrderDocumentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of OrderDocument entities.
func (c *OrderDocumentClient) CreateBulk(builders ...*OrderDocumentCreate) *OrderDocumentCreateBulk {
	return &OrderDocumentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *OrderDocumentClient) MapCreateBulk(slice any, setFunc func(*OrderDocumentCreate, int)) *OrderDocumentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &OrderDocumentCreateBulk{err: fmt.Errorf("calling to OrderDocumentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*OrderDocumentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &OrderDocumentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for OrderDocument.
func (c *OrderDocumentClient) Update() *OrderDocumentUpdate {
	mutation := newOrderDocumentMutation(c.config, OpUpdate)
	return &OrderDocumentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *OrderDocumentClient) UpdateOne(_m *OrderDocument) *OrderDocumentUpdateOne {
	mutation := newOrderDocumentMutation(c.config, OpUpdateOne, withOrderDocument(_m))
	return &OrderDocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *OrderDocumentClient) UpdateOneID(id uuid.UUID) *OrderDocumentUpdateOne {
	mutation := newOrderDocumentMutation(c.config, OpUpdateOne, withOrderDocumentID(id))
	return &OrderDocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for OrderDocument.
func (c *OrderDocumentClient) Delete() *OrderDocumentDelete {
	mutation := newOrderDocumentMutation(c.config, OpDelete)
	return &OrderDocumentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *OrderDocumentClient) DeleteOne(_m *OrderDocument) *OrderDocumentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *OrderDocumentClient) DeleteOneID(id uuid.UUID) *OrderDocumentDeleteOne {
	builder := c.Delete().Where(orderdocument.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &OrderDocumentDeleteOne{builder}
}

// Query returns a query builder for OrderDocument.
func (c *OrderDocumentClient) Query() *OrderDocumentQuery {
	return &OrderDocumentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeOrderDocument},
		inters: c.Interceptors(),
	}
}

// Get returns a OrderDocument entity by its id.
func (c *OrderDocumentClient) Get(ctx context.Context, id uuid.UUID) (*OrderDocument, error) {
	return c.Query().Where(orderdocument.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *OrderDocumentClient) GetX(ctx context.Context, id uuid.UUID) *OrderDocument {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryMerchant queries the merchant edge of a OrderDocument.
func (c *OrderDocumentClient) QueryMerchant(_m *OrderDocument) *MerchantQuery {
	query := (&MerchantClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(orderdocument.Table, orderdocument.FieldID, id),
			sqlgraph.To(merchant.Table, merchant.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, orderdocument.MerchantTable, orderdocument.MerchantColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryWorkflows queries the workflows edge of a OrderDocument.
func (c *OrderDocumentClient) QueryWorkflows(_m *OrderDocument) *WorkflowExecutionQuery {
	query := (&WorkflowExecutionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(orderdocument.Table, orderdocument.FieldID, id),
			sqlgraph.To(workflowexecution.Table, workflowexecution.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, orderdocument.WorkflowsTable, orderdocument.WorkflowsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryOrders queries the orders edge of a OrderDocument.
func (c *OrderDocumentClient) QueryOrders(_m *OrderDocument) *PurchaseOrderQuery {
	query := (&PurchaseOrderClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(orderdocument.Table, orderdocument.FieldID, id),
			sqlgraph.To(purchaseorder.Table, purchaseorder.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, orderdocument.OrdersTable, orderdocument.OrdersColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *OrderDocumentClient) Hooks() []Hook {
	return c.hooks.OrderDocument
}

// Interceptors returns the client interceptors.
func (c *OrderDocumentClient) Interceptors() []Interceptor {
	return c.inters.OrderDocument
}

func (c *OrderDocumentClient) mutate(ctx context.Context, m *OrderDocumentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&OrderDocumentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&OrderDocumentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&OrderDocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&OrderDocumentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown OrderDocument mutation op: %q", m.Op())
	}
}

// PurchaseOrderClient is a client for the PurchaseOrder schema.
type PurchaseOrderClient struct {
	config
}

// NewPurchaseOrderClient returns a client for the PurchaseOrder from the given config.
func NewPurchaseOrderClient(c config) *PurchaseOrderClient {
	return &PurchaseOrderClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `purchaseorder.Hooks(f(g(h())))`.
func (c *PurchaseOrderClient) Use(hooks ...Hook) {
	c.hooks.PurchaseOrder = append(c.hooks.PurchaseOrder, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `purchaseorder.Intercept(f(g(h())))`.
func (c *PurchaseOrderClient) Intercept(interceptors ...Interceptor) {
	c.inters.PurchaseOrder = append(c.inters.PurchaseOrder, interceptors...)
}

// Create returns a builder for creating a PurchaseOrder entity.
func (c *PurchaseOrderClient) Create() *PurchaseOrderCreate {
	mutation := newPurchaseOrderMutation(c.config, OpCreate)
	return &PurchaseOrderCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PurchaseOrder entities.
func (c *PurchaseOrderClient) CreateBulk(builders ...*PurchaseOrderCreate) *PurchaseOrderCreateBulk {
	return &PurchaseOrderCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PurchaseOrderClient) MapCreateBulk(slice any, setFunc func(*PurchaseOrderCreate, int)) *PurchaseOrderCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PurchaseOrderCreateBulk{err: fmt.Errorf("calling to PurchaseOrderClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PurchaseOrderCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PurchaseOrderCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PurchaseOrder.
func (c *PurchaseOrderClient) Update() *PurchaseOrderUpdate {
	mutation := newPurchaseOrderMutation(c.config, OpUpdate)
	return &PurchaseOrderUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PurchaseOrderClient) UpdateOne(_m *PurchaseOrder) *PurchaseOrderUpdateOne {
	mutation := newPurchaseOrderMutation(c.config, OpUpdateOne, withPurchaseOrder(_m))
	return &PurchaseOrderUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PurchaseOrderClient) UpdateOneID(id uuid.UUID) *PurchaseOrderUpdateOne {
	mutation := newPurchaseOrderMutation(c.config, OpUpdateOne, withPurchaseOrderID(id))
	return &PurchaseOrderUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PurchaseOrder.
func (c *PurchaseOrderClient) Delete() *PurchaseOrderDelete {
	mutation := newPurchaseOrderMutation(c.config, OpDelete)
	return &PurchaseOrderDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PurchaseOrderClient) DeleteOne(_m *PurchaseOrder) *PurchaseOrderDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PurchaseOrderClient) DeleteOneID(id uuid.UUID) *PurchaseOrderDeleteOne {
	builder := c.Delete().Where(purchaseorder.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PurchaseOrderDeleteOne{builder}
}

// Query returns a query builder for PurchaseOrder.
func (c *PurchaseOrderClient) Query() *PurchaseOrderQuery {
	return &PurchaseOrderQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePurchaseOrder},
		inters: c.Interceptors(),
	}
}

// Get returns a PurchaseOrder entity by its id.
func (c *PurchaseOrderClient) Get(ctx context.Context, id uuid.UUID) (*PurchaseOrder, error) {
	return c.Query().Where(purchaseorder.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PurchaseOrderClient) GetX(ctx context.Context, id uuid.UUID) *PurchaseOrder {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryMerchant queries the merchant edge of a PurchaseOrder.
func (c *PurchaseOrderClient) QueryMerchant(_m *PurchaseOrder) *MerchantQuery {
	query := (&MerchantClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(purchaseorder.Table, purchaseorder.FieldID, id),
			sqlgraph.To(merchant.Table, merchant.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, purchaseorder.MerchantTable, purchaseorder.MerchantColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryDocument queries the document edge of a PurchaseOrder.
func (c *PurchaseOrderClient) QueryDocument(_m *PurchaseOrder) *OrderDocumentQuery {
	query := (&OrderDocumentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(purchaseorder.Table, purchaseorder.FieldID, id),
			sqlgraph.To(orderdocument.Table, orderdocument.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, purchaseorder.DocumentTable, purchaseorder.DocumentColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *PurchaseOrderClient) Hooks() []Hook {
	return c.hooks.PurchaseOrder
}

// Interceptors returns the client interceptors.
func (c *PurchaseOrderClient) Interceptors() []Interceptor {
	return c.inters.PurchaseOrder
}

func (c *PurchaseOrderClient) mutate(ctx context.Context, m *PurchaseOrderMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PurchaseOrderCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PurchaseOrderUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PurchaseOrderUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PurchaseOrderDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PurchaseOrder mutation op: %q", m.Op())
	}
}

// WorkflowExecutionClient is a client for the WorkflowExecution schema.
type WorkflowExecutionClient struct {
	config
}

// NewWorkflowExecutionClient returns a client for the WorkflowExecution from the given config.
func NewWorkflowExecutionClient(c config) *WorkflowExecutionClient {
	return &WorkflowExecutionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `workflowexecution.Hooks(f(g(h())))`.
func (c *WorkflowExecutionClient) Use(hooks ...Hook) {
	c.hooks.WorkflowExecution = append(c.hooks.WorkflowExecution, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `workflowexecution.Intercept(f(g(h())))`.
func (c *WorkflowExecutionClient) Intercept(interceptors ...Interceptor) {
	c.inters.WorkflowExecution = append(c.inters.WorkflowExecution, interceptors...)
}

// Create returns a builder for creating a WorkflowExecution entity.
func (c *WorkflowExecutionClient) Create() *WorkflowExecutionCreate {
	mutation := newWorkflowExecutionMutation(c.config, OpCreate)
	return &WorkflowExecutionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of WorkflowExecution entities.
func (c *WorkflowExecutionClient) CreateBulk(builders ...*WorkflowExecutionCreate) *WorkflowExecutionCreateBulk {
	return &WorkflowExecutionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *WorkflowExecutionClient) MapCreateBulk(slice any, setFunc func(*WorkflowExecutionCreate, int)) *WorkflowExecutionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &WorkflowExecutionCreateBulk{err: fmt.Errorf("calling to WorkflowExecutionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*WorkflowExecutionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &WorkflowExecutionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for WorkflowExecution.
func (c *WorkflowExecutionClient) Update() *WorkflowExecutionUpdate {
	mutation := newWorkflowExecutionMutation(c.config, OpUpdate)
	return &WorkflowExecutionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *WorkflowExecutionClient) UpdateOne(_m *WorkflowExecution) *WorkflowExecutionUpdateOne {
	mutation := newWorkflowExecutionMutation(c.config, OpUpdateOne, withWorkflowExecution(_m))
	return &WorkflowExecutionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *WorkflowExecutionClient) UpdateOneID(id uuid.UUID) *WorkflowExecutionUpdateOne {
	mutation := newWorkflowExecutionMutation(c.config, OpUpdateOne, withWorkflowExecutionID(id))
	return &WorkflowExecutionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for WorkflowExecution.
func (c *WorkflowExecutionClient) Delete() *WorkflowExecutionDelete {
	mutation := newWorkflowExecutionMutation(c.config, OpDelete)
	return &WorkflowExecutionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *WorkflowExecutionClient) DeleteOne(_m *WorkflowExecution) *WorkflowExecutionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *WorkflowExecutionClient) DeleteOneID(id uuid.UUID) *WorkflowExecutionDeleteOne {
	builder := c.Delete().Where(workflowexecution.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &WorkflowExecutionDeleteOne{builder}
}

// Query returns a query builder for WorkflowExecution.
func (c *WorkflowExecutionClient) Query() *WorkflowExecutionQuery {
	return &WorkflowExecutionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeWorkflowExecution},
		inters: c.Interceptors(),
	}
}

// Get returns a WorkflowExecution entity by its id.
func (c *WorkflowExecutionClient) Get(ctx context.Context, id uuid.UUID) (*WorkflowExecution, error) {
	return c.Query().Where(workflowexecution.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *WorkflowExecutionClient) GetX(ctx context.Context, id uuid.UUID) *WorkflowExecution {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryMerchant queries the merchant edge of a WorkflowExecution.
func (c *WorkflowExecutionClient) QueryMerchant(_m *WorkflowExecution) *MerchantQuery {
	query := (&MerchantClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(workflowexecution.Table, workflowexecution.FieldID, id),
			sqlgraph.To(merchant.Table, merchant.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, workflowexecution.MerchantTable, workflowexecution.MerchantColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryDocument queries the document edge of a WorkflowExecution.
func (c *WorkflowExecutionClient) QueryDocument(_m *WorkflowExecution) *OrderDocumentQuery {
	query := (&OrderDocumentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(workflowexecution.Table, workflowexecution.FieldID, id),
			sqlgraph.To(orderdocument.Table, orderdocument.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, workflowexecution.DocumentTable, workflowexecution.DocumentColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryDeadLetters queries the dead_letters edge of a WorkflowExecution.
func (c *WorkflowExecutionClient) QueryDeadLetters(_m *WorkflowExecution) *DeadLetterEntryQuery {
	query := (&DeadLetterEntryClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(workflowexecution.Table, workflowexecution.FieldID, id),
			sqlgraph.To(deadletterentry.Table, deadletterentry.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, workflowexecution.DeadLettersTable, workflowexecution.DeadLettersColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *WorkflowExecutionClient) Hooks() []Hook {
	return c.hooks.WorkflowExecution
}

// Interceptors returns the client interceptors.
func (c *WorkflowExecutionClient) Interceptors() []Interceptor {
	return c.inters.WorkflowExecution
}

func (c *WorkflowExecutionClient) mutate(ctx context.Context, m *WorkflowExecutionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&WorkflowExecutionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&WorkflowExecutionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&WorkflowExecutionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&WorkflowExecutionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown WorkflowExecution mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		DeadLetterEntry, Merchant, OrderDocument, PurchaseOrder,
		WorkflowExecution []ent.Hook
	}
	inters struct {
		DeadLetterEntry, Merchant, OrderDocument, PurchaseOrder,
		WorkflowExecution []ent.Interceptor
	}
)
