// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"tora-app.io/tora/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"tora-app.io/tora/ent/devicetoken"
	"tora-app.io/tora/ent/emergencycontact"
	"tora-app.io/tora/ent/selfregulationevent"
	"tora-app.io/tora/ent/task"
	"tora-app.io/tora/ent/user"
	"tora-app.io/tora/ent/whatsappsession"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// DeviceToken is the client for interacting with the DeviceToken builders.
	DeviceToken *DeviceTokenClient
	// EmergencyContact is the client for interacting with the EmergencyContact builders.
	EmergencyContact *EmergencyContactClient
	// SelfRegulationEvent is the client for interacting with the SelfRegulationEvent builders.
	SelfRegulationEvent *SelfRegulationEventClient
	// Task is the client for interacting with the Task builders.
	Task *TaskClient
	// User is the client for interacting with the User builders.
	User *UserClient
	// WhatsAppSession is the client for interacting with the WhatsAppSession builders.
	WhatsAppSession *WhatsAppSessionClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.DeviceToken = NewDeviceTokenClient(c.config)
	c.EmergencyContact = NewEmergencyContactClient(c.config)
	c.SelfRegulationEvent = NewSelfRegulationEventClient(c.config)
	c.Task = NewTaskClient(c.config)
	c.User = NewUserClient(c.config)
	c.WhatsAppSession = NewWhatsAppSessionClient(c.config)
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
		ctx:                 ctx,
		config:              cfg,
		DeviceToken:         NewDeviceTokenClient(cfg),
		EmergencyContact:    NewEmergencyContactClient(cfg),
		SelfRegulationEvent: NewSelfRegulationEventClient(cfg),
		Task:                NewTaskClient(cfg),
		User:                NewUserClient(cfg),
		WhatsAppSession:     NewWhatsAppSessionClient(cfg),
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
		ctx:                 ctx,
		config:              cfg,
		DeviceToken:         NewDeviceTokenClient(cfg),
		EmergencyContact:    NewEmergencyContactClient(cfg),
		SelfRegulationEvent: NewSelfRegulationEventClient(cfg),
		Task:                NewTaskClient(cfg),
		User:                NewUserClient(cfg),
		WhatsAppSession:     NewWhatsAppSessionClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		DeviceToken.
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
		c.DeviceToken, c.EmergencyContact, c.SelfRegulationEvent, c.Task, c.User,
		c.WhatsAppSession,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.DeviceToken, c.EmergencyContact, c.SelfRegulationEvent, c.Task, c.User,
		c.WhatsAppSession,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *DeviceTokenMutation:
		return c.DeviceToken.mutate(ctx, m)
	case *EmergencyContactMutation:
		return c.EmergencyContact.mutate(ctx, m)
	case *SelfRegulationEventMutation:
		return c.SelfRegulationEvent.mutate(ctx, m)
	case *TaskMutation:
		return c.Task.mutate(ctx, m)
	case *UserMutation:
		return c.User.mutate(ctx, m)
	case *WhatsAppSessionMutation:
		return c.WhatsAppSession.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// DeviceTokenClient is a client for the DeviceToken schema.
type DeviceTokenClient struct {
	config
}

// NewDeviceTokenClient returns a client for the DeviceToken from the given config.
func NewDeviceTokenClient(c config) *DeviceTokenClient {
	return &DeviceTokenClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `devicetoken.Hooks(f(g(h())))`.
func (c *DeviceTokenClient) Use(hooks ...Hook) {
	c.hooks.DeviceToken = append(c.hooks.DeviceToken, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `devicetoken.Intercept(f(g(h())))`.
func (c *DeviceTokenClient) Intercept(interceptors ...Interceptor) {
	c.inters.DeviceToken = append(c.inters.DeviceToken, interceptors...)
}

// Create returns a builder for creating a DeviceToken entity.
func (c *DeviceTokenClient) Create() *DeviceTokenCreate {
	mutation := newDeviceTokenMutation(c.config, OpCreate)
	return &DeviceTokenCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DeviceToken entities.
func (c *DeviceTokenClient) CreateBulk(builders ...*DeviceTokenCreate) *DeviceTokenCreateBulk {
	return &DeviceTokenCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DeviceTokenClient) MapCreateBulk(slice any, setFunc func(*DeviceTokenCreate, int)) *DeviceTokenCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DeviceTokenCreateBulk{err: fmt.Errorf("calling to DeviceTokenClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DeviceTokenCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DeviceTokenCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DeviceToken.
func (c *DeviceTokenClient) Update() *DeviceTokenUpdate {
	mutation := newDeviceTokenMutation(c.config, OpUpdate)
	return &DeviceTokenUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DeviceTokenClient) UpdateOne(_m *DeviceToken) *DeviceTokenUpdateOne {
	mutation := newDeviceTokenMutation(c.config, OpUpdateOne, withDeviceToken(_m))
	return &DeviceTokenUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DeviceTokenClient) UpdateOneID(id string) *DeviceTokenUpdateOne {
	mutation := newDeviceTokenMutation(c.config, OpUpdateOne, withDeviceTokenID(id))
	return &DeviceTokenUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DeviceToken.
func (c *DeviceTokenClient) Delete() *DeviceTokenDelete {
	mutation := newDeviceTokenMutation(c.config, OpDelete)
	return &DeviceTokenDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DeviceTokenClient) DeleteOne(_m *DeviceToken) *DeviceTokenDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DeviceTokenClient) DeleteOneID(id string) *DeviceTokenDeleteOne {
	builder := c.Delete().Where(devicetoken.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DeviceTokenDeleteOne{builder}
}

// Query returns a query builder for DeviceToken.
func (c *DeviceTokenClient) Query() *DeviceTokenQuery {
	return &DeviceTokenQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDeviceToken},
		inters: c.Interceptors(),
	}
}

// Get returns a DeviceToken entity by its id.
func (c *DeviceTokenClient) Get(ctx context.Context, id string) (*DeviceToken, error) {
	return c.Query().Where(devicetoken.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DeviceTokenClient) GetX(ctx context.Context, id string) *DeviceToken {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *DeviceTokenClient) Hooks() []Hook {
	return c.hooks.DeviceToken
}

// Interceptors returns the client interceptors.
func (c *DeviceTokenClient) Interceptors() []Interceptor {
	return c.inters.DeviceToken
}

func (c *DeviceTokenClient) mutate(ctx context.Context, m *DeviceTokenMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DeviceTokenCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DeviceTokenUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DeviceTokenUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DeviceTokenDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown DeviceToken mutation op: %q", m.Op())
	}
}

// EmergencyContactClient is a client for the EmergencyContact schema.
type EmergencyContactClient struct {
	config
}

// NewEmergencyContactClient returns a client for the EmergencyContact from the given config.
func NewEmergencyContactClient(c config) *EmergencyContactClient {
	return &EmergencyContactClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `emergencycontact.Hooks(f(g(h())))`.
func (c *EmergencyContactClient) Use(hooks ...Hook) {
	c.hooks.EmergencyContact = append(c.hooks.EmergencyContact, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `emergencycontact.Intercept(f(g(h())))`.
func (c *EmergencyContactClient) Intercept(interceptors ...Interceptor) {
	c.inters.EmergencyContact = append(c.inters.EmergencyContact, interceptors...)
}

// Create returns a builder for creating a EmergencyContact entity.
func (c *EmergencyContactClient) Create() *EmergencyContactCreate {
	mutation := newEmergencyContactMutation(c.config, OpCreate)
	return &EmergencyContactCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of EmergencyContact entities.
func (c *EmergencyContactClient) CreateBulk(builders ...*EmergencyContactCreate) *EmergencyContactCreateBulk {
	return &EmergencyContactCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EmergencyContactClient) MapCreateBulk(slice any, setFunc func(*EmergencyContactCreate, int)) *EmergencyContactCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EmergencyContactCreateBulk{err: fmt.Errorf("calling to EmergencyContactClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EmergencyContactCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EmergencyContactCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for EmergencyContact.
func (c *EmergencyContactClient) Update() *EmergencyContactUpdate {
	mutation := newEmergencyContactMutation(c.config, OpUpdate)
	return &EmergencyContactUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EmergencyContactClient) UpdateOne(_m *EmergencyContact) *EmergencyContactUpdateOne {
	mutation := newEmergencyContactMutation(c.config, OpUpdateOne, withEmergencyContact(_m))
	return &EmergencyContactUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EmergencyContactClient) UpdateOneID(id string) *EmergencyContactUpdateOne {
	mutation := newEmergencyContactMutation(c.config, OpUpdateOne, withEmergencyContactID(id))
	return &EmergencyContactUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for EmergencyContact.
func (c *EmergencyContactClient) Delete() *EmergencyContactDelete {
	mutation := newEmergencyContactMutation(c.config, OpDelete)
	return &EmergencyContactDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EmergencyContactClient) DeleteOne(_m *EmergencyContact) *EmergencyContactDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EmergencyContactClient) DeleteOneID(id string) *EmergencyContactDeleteOne {
	builder := c.Delete().Where(emergencycontact.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EmergencyContactDeleteOne{builder}
}

// Query returns a query builder for EmergencyContact.
func (c *EmergencyContactClient) Query() *EmergencyContactQuery {
	return &EmergencyContactQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEmergencyContact},
		inters: c.Interceptors(),
	}
}

// Get returns a EmergencyContact entity by its id.
func (c *EmergencyContactClient) Get(ctx context.Context, id string) (*EmergencyContact, error) {
	return c.Query().Where(emergencycontact.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EmergencyContactClient) GetX(ctx context.Context, id string) *EmergencyContact {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *EmergencyContactClient) Hooks() []Hook {
	return c.hooks.EmergencyContact
}

// Interceptors returns the client interceptors.
func (c *EmergencyContactClient) Interceptors() []Interceptor {
	return c.inters.EmergencyContact
}

func (c *EmergencyContactClient) mutate(ctx context.Context, m *EmergencyContactMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EmergencyContactCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EmergencyContactUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EmergencyContactUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EmergencyContactDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown EmergencyContact mutation op: %q", m.Op())
	}
}

// SelfRegulationEventClient is a client for the SelfRegulationEvent schema.
type SelfRegulationEventClient struct {
	config
}

// NewSelfRegulationEventClient returns a client for the SelfRegulationEvent from the given config.
func NewSelfRegulationEventClient(c config) *SelfRegulationEventClient {
	return &SelfRegulationEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `selfregulationevent.Hooks(f(g(h())))`.
func (c *SelfRegulationEventClient) Use(hooks ...Hook) {
	c.hooks.SelfRegulationEvent = append(c.hooks.SelfRegulationEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `selfregulationevent.Intercept(f(g(h())))`.
func (c *SelfRegulationEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.SelfRegulationEvent = append(c.inters.SelfRegulationEvent, interceptors...)
}

// Create returns a builder for creating a SelfRegulationEvent entity.
func (c *SelfRegulationEventClient) Create() *SelfRegulationEventCreate {
	mutation := newSelfRegulationEventMutation(c.config, OpCreate)
	return &SelfRegulationEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SelfRegulationEvent entities.
func (c *SelfRegulationEventClient) CreateBulk(builders ...*SelfRegulationEventCreate) *SelfRegulationEventCreateBulk {
	return &SelfRegulationEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SelfRegulationEventClient) MapCreateBulk(slice any, setFunc func(*SelfRegulationEventCreate, int)) *SelfRegulationEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SelfRegulationEventCreateBulk{err: fmt.Errorf("calling to SelfRegulationEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SelfRegulationEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SelfRegulationEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SelfRegulationEvent.
func (c *SelfRegulationEventClient) Update() *SelfRegulationEventUpdate {
	mutation := newSelfRegulationEventMutation(c.config, OpUpdate)
	return &SelfRegulationEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SelfRegulationEventClient) UpdateOne(_m *SelfRegulationEvent) *SelfRegulationEventUpdateOne {
	mutation := newSelfRegulationEventMutation(c.config, OpUpdateOne, withSelfRegulationEvent(_m))
	return &SelfRegulationEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SelfRegulationEventClient) UpdateOneID(id string) *SelfRegulationEventUpdateOne {
	mutation := newSelfRegulationEventMutation(c.config, OpUpdateOne, withSelfRegulationEventID(id))
	return &SelfRegulationEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SelfRegulationEvent.
func (c *SelfRegulationEventClient) Delete() *SelfRegulationEventDelete {
	mutation := newSelfRegulationEventMutation(c.config, OpDelete)
	return &SelfRegulationEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SelfRegulationEventClient) DeleteOne(_m *SelfRegulationEvent) *SelfRegulationEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SelfRegulationEventClient) DeleteOneID(id string) *SelfRegulationEventDeleteOne {
	builder := c.Delete().Where(selfregulationevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SelfRegulationEventDeleteOne{builder}
}

// Query returns a query builder for SelfRegulationEvent.
func (c *SelfRegulationEventClient) Query() *SelfRegulationEventQuery {
	return &SelfRegulationEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSelfRegulationEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a SelfRegulationEvent entity by its id.
func (c *SelfRegulationEventClient) Get(ctx context.Context, id string) (*SelfRegulationEvent, error) {
	return c.Query().Where(selfregulationevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SelfRegulationEventClient) GetX(ctx context.Context, id string) *SelfRegulationEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SelfRegulationEventClient) Hooks() []Hook {
	return c.hooks.SelfRegulationEvent
}

// Interceptors returns the client interceptors.
func (c *SelfRegulationEventClient) Interceptors() []Interceptor {
	return c.inters.SelfRegulationEvent
}

func (c *SelfRegulationEventClient) mutate(ctx context.Context, m *SelfRegulationEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SelfRegulationEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SelfRegulationEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SelfRegulationEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SelfRegulationEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SelfRegulationEvent mutation op: %q", m.Op())
	}
}

// TaskClient is a client for the Task schema.
type TaskClient struct {
	config
}

// NewTaskClient returns a client for the Task from the given config.
func NewTaskClient(c config) *TaskClient {
	return &TaskClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `task.Hooks(f(g(h())))`.
func (c *TaskClient) Use(hooks ...Hook) {
	c.hooks.Task = append(c.hooks.Task, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `task.Intercept(f(g(h())))`.
func (c *TaskClient) Intercept(interceptors ...Interceptor) {
	c.inters.Task = append(c.inters.Task, interceptors...)
}

// Create returns a builder for creating a Task entity.
func (c *TaskClient) Create() *TaskCreate {
	mutation := newTaskMutation(c.config, OpCreate)
	return &TaskCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Task entities.
func (c *TaskClient) CreateBulk(builders ...*TaskCreate) *TaskCreateBulk {
	return &TaskCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TaskClient) MapCreateBulk(slice any, setFunc func(*TaskCreate, int)) *TaskCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TaskCreateBulk{err: fmt.Errorf("calling to TaskClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TaskCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TaskCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Task.
func (c *TaskClient) Update() *TaskUpdate {
	mutation := newTaskMutation(c.config, OpUpdate)
	return &TaskUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TaskClient) UpdateOne(_m *Task) *TaskUpdateOne {
	mutation := newTaskMutation(c.config, OpUpdateOne, withTask(_m))
	return &TaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TaskClient) UpdateOneID(id string) *TaskUpdateOne {
	mutation := newTaskMutation(c.config, OpUpdateOne, withTaskID(id))
	return &TaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Task.
func (c *TaskClient) Delete() *TaskDelete {
	mutation := newTaskMutation(c.config, OpDelete)
	return &TaskDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TaskClient) DeleteOne(_m *Task) *TaskDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TaskClient) DeleteOneID(id string) *TaskDeleteOne {
	builder := c.Delete().Where(task.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TaskDeleteOne{builder}
}

// Query returns a query builder for Task.
func (c *TaskClient) Query() *TaskQuery {
	return &TaskQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTask},
		inters: c.Interceptors(),
	}
}

// Get returns a Task entity by its id.
func (c *TaskClient) Get(ctx context.Context, id string) (*Task, error) {
	return c.Query().Where(task.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TaskClient) GetX(ctx context.Context, id string) *Task {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *TaskClient) Hooks() []Hook {
	return c.hooks.Task
}

// Interceptors returns the client interceptors.
func (c *TaskClient) Interceptors() []Interceptor {
	return c.inters.Task
}

func (c *TaskClient) mutate(ctx context.Context, m *TaskMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TaskCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TaskUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TaskDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Task mutation op: %q", m.Op())
	}
}

// UserClient is a client for the User schema.
type UserClient struct {
	config
}

// NewUserClient returns a client for the User from the given config.
func NewUserClient(c config) *UserClient {
	return &UserClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `user.Hooks(f(g(h())))`.
func (c *UserClient) Use(hooks ...Hook) {
	c.hooks.User = append(c.hooks.User, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `user.Intercept(f(g(h())))`.
func (c *UserClient) Intercept(interceptors ...Interceptor) {
	c.inters.User = append(c.inters.User, interceptors...)
}

// Create returns a builder for creating a User entity.
func (c *UserClient) Create() *UserCreate {
	mutation := newUserMutation(c.config, OpCreate)
	return &UserCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of User entities.
func (c *UserClient) CreateBulk(builders ...*UserCreate) *UserCreateBulk {
	return &UserCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UserClient) MapCreateBulk(slice any, setFunc func(*UserCreate, int)) *UserCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UserCreateBulk{err: fmt.Errorf("calling to UserClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UserCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UserCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for User.
func (c *UserClient) Update() *UserUpdate {
	mutation := newUserMutation(c.config, OpUpdate)
	return &UserUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UserClient) UpdateOne(_m *User) *UserUpdateOne {
	mutation := newUserMutation(c.config, OpUpdateOne, withUser(_m))
	return &UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UserClient) UpdateOneID(id string) *UserUpdateOne {
	mutation := newUserMutation(c.config, OpUpdateOne, withUserID(id))
	return &UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for User.
func (c *UserClient) Delete() *UserDelete {
	mutation := newUserMutation(c.config, OpDelete)
	return &UserDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UserClient) DeleteOne(_m *User) *UserDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UserClient) DeleteOneID(id string) *UserDeleteOne {
	builder := c.Delete().Where(user.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UserDeleteOne{builder}
}

// Query returns a query builder for User.
func (c *UserClient) Query() *UserQuery {
	return &UserQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUser},
		inters: c.Interceptors(),
	}
}

// Get returns a User entity by its id.
func (c *UserClient) Get(ctx context.Context, id string) (*User, error) {
	return c.Query().Where(user.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UserClient) GetX(ctx context.Context, id string) *User {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *UserClient) Hooks() []Hook {
	return c.hooks.User
}

// Interceptors returns the client interceptors.
func (c *UserClient) Interceptors() []Interceptor {
	return c.inters.User
}

func (c *UserClient) mutate(ctx context.Context, m *UserMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UserCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UserUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UserDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown User mutation op: %q", m.Op())
	}
}

// WhatsAppSessionClient is a client for the WhatsAppSession schema.
type WhatsAppSessionClient struct {
	config
}

// NewWhatsAppSessionClient returns a client for the WhatsAppSession from the given config.
func NewWhatsAppSessionClient(c config) *WhatsAppSessionClient {
	return &WhatsAppSessionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `whatsappsession.Hooks(f(g(h())))`.
func (c *WhatsAppSessionClient) Use(hooks ...Hook) {
	c.hooks.WhatsAppSession = append(c.hooks.WhatsAppSession, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `whatsappsession.Intercept(f(g(h())))`.
func (c *WhatsAppSessionClient) Intercept(interceptors ...Interceptor) {
	c.inters.WhatsAppSession = append(c.inters.WhatsAppSession, interceptors...)
}

// Create returns a builder for creating a WhatsAppSession entity.
func (c *WhatsAppSessionClient) Create() *WhatsAppSessionCreate {
	mutation := newWhatsAppSessionMutation(c.config, OpCreate)
	return &WhatsAppSessionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of WhatsAppSession entities.
func (c *WhatsAppSessionClient) CreateBulk(builders ...*WhatsAppSessionCreate) *WhatsAppSessionCreateBulk {
	return &WhatsAppSessionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *WhatsAppSessionClient) MapCreateBulk(slice any, setFunc func(*WhatsAppSessionCreate, int)) *WhatsAppSessionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &WhatsAppSessionCreateBulk{err: fmt.Errorf("calling to WhatsAppSessionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*WhatsAppSessionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &WhatsAppSessionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for WhatsAppSession.
func (c *WhatsAppSessionClient) Update() *WhatsAppSessionUpdate {
	mutation := newWhatsAppSessionMutation(c.config, OpUpdate)
	return &WhatsAppSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *WhatsAppSessionClient) UpdateOne(_m *WhatsAppSession) *WhatsAppSessionUpdateOne {
	mutation := newWhatsAppSessionMutation(c.config, OpUpdateOne, withWhatsAppSession(_m))
	return &WhatsAppSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *WhatsAppSessionClient) UpdateOneID(id string) *WhatsAppSessionUpdateOne {
	mutation := newWhatsAppSessionMutation(c.config, OpUpdateOne, withWhatsAppSessionID(id))
	return &WhatsAppSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for WhatsAppSession.
func (c *WhatsAppSessionClient) Delete() *WhatsAppSessionDelete {
	mutation := newWhatsAppSessionMutation(c.config, OpDelete)
	return &WhatsAppSessionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *WhatsAppSessionClient) DeleteOne(_m *WhatsAppSession) *WhatsAppSessionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *WhatsAppSessionClient) DeleteOneID(id string) *WhatsAppSessionDeleteOne {
	builder := c.Delete().Where(whatsappsession.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &WhatsAppSessionDeleteOne{builder}
}

// Query returns a query builder for WhatsAppSession.
func (c *WhatsAppSessionClient) Query() *WhatsAppSessionQuery {
	return &WhatsAppSessionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeWhatsAppSession},
		inters: c.Interceptors(),
	}
}

// Get returns a WhatsAppSession entity by its id.
func (c *WhatsAppSessionClient) Get(ctx context.Context, id string) (*WhatsAppSession, error) {
	return c.Query().Where(whatsappsession.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *WhatsAppSessionClient) GetX(ctx context.Context, id string) *WhatsAppSession {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *WhatsAppSessionClient) Hooks() []Hook {
	return c.hooks.WhatsAppSession
}

// Interceptors returns the client interceptors.
func (c *WhatsAppSessionClient) Interceptors() []Interceptor {
	return c.inters.WhatsAppSession
}

func (c *WhatsAppSessionClient) mutate(ctx context.Context, m *WhatsAppSessionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&WhatsAppSessionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&WhatsAppSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&WhatsAppSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&WhatsAppSessionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown WhatsAppSession mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		DeviceToken, EmergencyContact, SelfRegulationEvent, Task, User,
		WhatsAppSession []ent.Hook
	}
	inters struct {
		DeviceToken, EmergencyContact, SelfRegulationEvent, Task, User,
		WhatsAppSession []ent.Interceptor
	}
)
