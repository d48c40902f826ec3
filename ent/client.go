// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/quillgate/quillgate/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/quillgate/quillgate/ent/apikey"
	"github.com/quillgate/quillgate/ent/auditlog"
	"github.com/quillgate/quillgate/ent/contentitem"
	"github.com/quillgate/quillgate/ent/contentitemversion"
	"github.com/quillgate/quillgate/ent/contenttype"
	"github.com/quillgate/quillgate/ent/entitlement"
	"github.com/quillgate/quillgate/ent/payment"
	"github.com/quillgate/quillgate/ent/payoutbatch"
	"github.com/quillgate/quillgate/ent/payouttransfer"
	"github.com/quillgate/quillgate/ent/policydecision"
	"github.com/quillgate/quillgate/ent/revenueallocation"
	"github.com/quillgate/quillgate/ent/revenueevent"
	"github.com/quillgate/quillgate/ent/tenant"
	"github.com/quillgate/quillgate/ent/webhook"
	"github.com/quillgate/quillgate/ent/webhookdelivery"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// APIKey is the client for interacting with the APIKey builders.
	APIKey *APIKeyClient
	// AuditLog is the client for interacting with the AuditLog builders.
	AuditLog *AuditLogClient
	// ContentItem is the client for interacting with the ContentItem builders.
	ContentItem *ContentItemClient
	// ContentItemVersion is the client for interacting with the ContentItemVersion builders.
	ContentItemVersion *ContentItemVersionClient
	// ContentType is the client for interacting with the ContentType builders.
	ContentType *ContentTypeClient
	// Entitlement is the client for interacting with the Entitlement builders.
	Entitlement *EntitlementClient
	// Payment is the client for interacting with the Payment builders.
	Payment *PaymentClient
	// PayoutBatch is the client for interacting with the PayoutBatch builders.
	PayoutBatch *PayoutBatchClient
	// PayoutTransfer is the client for interacting with the PayoutTransfer builders.
	PayoutTransfer *PayoutTransferClient
	// PolicyDecision is the client for interacting with the PolicyDecision builders.
	PolicyDecision *PolicyDecisionClient
	// RevenueAllocation is the client for interacting with the RevenueAllocation builders.
	RevenueAllocation *RevenueAllocationClient
	// RevenueEvent is the client for interacting with the RevenueEvent builders.
	RevenueEvent *RevenueEventClient
	// Tenant is the client for interacting with the Tenant builders.
	Tenant *TenantClient
	// Webhook is the client for interacting with the Webhook builders.
	Webhook *WebhookClient
	// WebhookDelivery is the client for interacting with the WebhookDelivery builders.
	WebhookDelivery *WebhookDeliveryClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.APIKey = NewAPIKeyClient(c.config)
	c.AuditLog = NewAuditLogClient(c.config)
	c.ContentItem = NewContentItemClient(c.config)
	c.ContentItemVersion = NewContentItemVersionClient(c.config)
	c.ContentType = NewContentTypeClient(c.config)
	c.Entitlement = NewEntitlementClient(c.config)
	c.Payment = NewPaymentClient(c.config)
	c.PayoutBatch = NewPayoutBatchClient(c.config)
	c.PayoutTransfer = NewPayoutTransferClient(c.config)
	c.PolicyDecision = NewPolicyDecisionClient(c.config)
	c.RevenueAllocation = NewRevenueAllocationClient(c.config)
	c.RevenueEvent = NewRevenueEventClient(c.config)
	c.Tenant = NewTenantClient(c.config)
	c.Webhook = NewWebhookClient(c.config)
	c.WebhookDelivery = NewWebhookDeliveryClient(c.config)
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
		ctx:                ctx,
		config:             cfg,
		APIKey:             NewAPIKeyClient(cfg),
		AuditLog:           NewAuditLogClient(cfg),
		ContentItem:        NewContentItemClient(cfg),
		ContentItemVersion: NewContentItemVersionClient(cfg),
		ContentType:        NewContentTypeClient(cfg),
		Entitlement:        NewEntitlementClient(cfg),
		Payment:            NewPaymentClient(cfg),
		PayoutBatch:        NewPayoutBatchClient(cfg),
		PayoutTransfer:     NewPayoutTransferClient(cfg),
		PolicyDecision:     NewPolicyDecisionClient(cfg),
		RevenueAllocation:  NewRevenueAllocationClient(cfg),
		RevenueEvent:       NewRevenueEventClient(cfg),
		Tenant:             NewTenantClient(cfg),
		Webhook:            NewWebhookClient(cfg),
		WebhookDelivery:    NewWebhookDeliveryClient(cfg),
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
		ctx:                ctx,
		config:             cfg,
		APIKey:             NewAPIKeyClient(cfg),
		AuditLog:           NewAuditLogClient(cfg),
		ContentItem:        NewContentItemClient(cfg),
		ContentItemVersion: NewContentItemVersionClient(cfg),
		ContentType:        NewContentTypeClient(cfg),
		Entitlement:        NewEntitlementClient(cfg),
		Payment:            NewPaymentClient(cfg),
		PayoutBatch:        NewPayoutBatchClient(cfg),
		PayoutTransfer:     NewPayoutTransferClient(cfg),
		PolicyDecision:     NewPolicyDecisionClient(cfg),
		RevenueAllocation:  NewRevenueAllocationClient(cfg),
		RevenueEvent:       NewRevenueEventClient(cfg),
		Tenant:             NewTenantClient(cfg),
		Webhook:            NewWebhookClient(cfg),
		WebhookDelivery:    NewWebhookDeliveryClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		APIKey.
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
		c.APIKey, c.AuditLog, c.ContentItem, c.ContentItemVersion, c.ContentType,
		c.Entitlement, c.Payment, c.PayoutBatch, c.PayoutTransfer, c.PolicyDecision,
		c.RevenueAllocation, c.RevenueEvent, c.Tenant, c.Webhook, c.WebhookDelivery,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.APIKey, c.AuditLog, c.ContentItem, c.ContentItemVersion, c.ContentType,
		c.Entitlement, c.Payment, c.PayoutBatch, c.PayoutTransfer, c.PolicyDecision,
		c.RevenueAllocation, c.RevenueEvent, c.Tenant, c.Webhook, c.WebhookDelivery,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *APIKeyMutation:
		return c.APIKey.mutate(ctx, m)
	case *AuditLogMutation:
		return c.AuditLog.mutate(ctx, m)
	case *ContentItemMutation:
		return c.ContentItem.mutate(ctx, m)
	case *ContentItemVersionMutation:
		return c.ContentItemVersion.mutate(ctx, m)
	case *ContentTypeMutation:
		return c.ContentType.mutate(ctx, m)
	case *EntitlementMutation:
		return c.Entitlement.mutate(ctx, m)
	case *PaymentMutation:
		return c.Payment.mutate(ctx, m)
	case *PayoutBatchMutation:
		return c.PayoutBatch.mutate(ctx, m)
	case *PayoutTransferMutation:
		return c.PayoutTransfer.mutate(ctx, m)
	case *PolicyDecisionMutation:
		return c.PolicyDecision.mutate(ctx, m)
	case *RevenueAllocationMutation:
		return c.RevenueAllocation.mutate(ctx, m)
	case *RevenueEventMutation:
		return c.RevenueEvent.mutate(ctx, m)
	case *TenantMutation:
		return c.Tenant.mutate(ctx, m)
	case *WebhookMutation:
		return c.Webhook.mutate(ctx, m)
	case *WebhookDeliveryMutation:
		return c.WebhookDelivery.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// APIKeyClient is a client for the APIKey schema.
type APIKeyClient struct {
	config
}

// NewAPIKeyClient returns a client for the APIKey from the given config.
func NewAPIKeyClient(c config) *APIKeyClient {
	return &APIKeyClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `apikey.Hooks(f(g(h())))`.
func (c *APIKeyClient) Use(hooks ...Hook) {
	c.hooks.APIKey = append(c.hooks.APIKey, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `apikey.Intercept(f(g(h())))`.
func (c *APIKeyClient) Intercept(interceptors ...Interceptor) {
	c.inters.APIKey = append(c.inters.APIKey, interceptors...)
}

// Create returns a builder for creating a APIKey entity.
func (c *APIKeyClient) Create() *APIKeyCreate {
	mutation := newAPIKeyMutation(c.config, OpCreate)
	return &APIKeyCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of APIKey entities.
func (c *APIKeyClient) CreateBulk(builders ...*APIKeyCreate) *APIKeyCreateBulk {
	return &APIKeyCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *APIKeyClient) MapCreateBulk(slice any, setFunc func(*APIKeyCreate, int)) *APIKeyCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &APIKeyCreateBulk{err: fmt.Errorf("calling to APIKeyClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*APIKeyCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &APIKeyCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for APIKey.
func (c *APIKeyClient) Update() *APIKeyUpdate {
	mutation := newAPIKeyMutation(c.config, OpUpdate)
	return &APIKeyUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *APIKeyClient) UpdateOne(_m *APIKey) *APIKeyUpdateOne {
	mutation := newAPIKeyMutation(c.config, OpUpdateOne, withAPIKey(_m))
	return &APIKeyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *APIKeyClient) UpdateOneID(id int) *APIKeyUpdateOne {
	mutation := newAPIKeyMutation(c.config, OpUpdateOne, withAPIKeyID(id))
	return &APIKeyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for APIKey.
func (c *APIKeyClient) Delete() *APIKeyDelete {
	mutation := newAPIKeyMutation(c.config, OpDelete)
	return &APIKeyDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *APIKeyClient) DeleteOne(_m *APIKey) *APIKeyDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *APIKeyClient) DeleteOneID(id int) *APIKeyDeleteOne {
	builder := c.Delete().Where(apikey.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &APIKeyDeleteOne{builder}
}

// Query returns a query builder for APIKey.
func (c *APIKeyClient) Query() *APIKeyQuery {
	return &APIKeyQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAPIKey},
		inters: c.Interceptors(),
	}
}

// Get returns a APIKey entity by its id.
func (c *APIKeyClient) Get(ctx context.Context, id int) (*APIKey, error) {
	return c.Query().Where(apikey.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *APIKeyClient) GetX(ctx context.Context, id int) *APIKey {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *APIKeyClient) Hooks() []Hook {
	return c.hooks.APIKey
}

// Interceptors returns the client interceptors.
func (c *APIKeyClient) Interceptors() []Interceptor {
	return c.inters.APIKey
}

func (c *APIKeyClient) mutate(ctx context.Context, m *APIKeyMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&APIKeyCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&APIKeyUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&APIKeyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&APIKeyDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown APIKey mutation op: %q", m.Op())
	}
}

// AuditLogClient is a client for the AuditLog schema.
type AuditLogClient struct {
	config
}

// NewAuditLogClient returns a client for the AuditLog from the given config.
func NewAuditLogClient(c config) *AuditLogClient {
	return &AuditLogClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `auditlog.Hooks(f(g(h())))`.
func (c *AuditLogClient) Use(hooks ...Hook) {
	c.hooks.AuditLog = append(c.hooks.AuditLog, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `auditlog.Intercept(f(g(h())))`.
func (c *AuditLogClient) Intercept(interceptors ...Interceptor) {
	c.inters.AuditLog = append(c.inters.AuditLog, interceptors...)
}

// Create returns a builder for creating a AuditLog entity.
func (c *AuditLogClient) Create() *AuditLogCreate {
	mutation := newAuditLogMutation(c.config, OpCreate)
	return &AuditLogCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AuditLog entities.
func (c *AuditLogClient) CreateBulk(builders ...*AuditLogCreate) *AuditLogCreateBulk {
	return &AuditLogCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AuditLogClient) MapCreateBulk(slice any, setFunc func(*AuditLogCreate, int)) *AuditLogCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AuditLogCreateBulk{err: fmt.Errorf("calling to AuditLogClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AuditLogCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AuditLogCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AuditLog.
func (c *AuditLogClient) Update() *AuditLogUpdate {
	mutation := newAuditLogMutation(c.config, OpUpdate)
	return &AuditLogUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AuditLogClient) UpdateOne(_m *AuditLog) *AuditLogUpdateOne {
	mutation := newAuditLogMutation(c.config, OpUpdateOne, withAuditLog(_m))
	return &AuditLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AuditLogClient) UpdateOneID(id int) *AuditLogUpdateOne {
	mutation := newAuditLogMutation(c.config, OpUpdateOne, withAuditLogID(id))
	return &AuditLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AuditLog.
func (c *AuditLogClient) Delete() *AuditLogDelete {
	mutation := newAuditLogMutation(c.config, OpDelete)
	return &AuditLogDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AuditLogClient) DeleteOne(_m *AuditLog) *AuditLogDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AuditLogClient) DeleteOneID(id int) *AuditLogDeleteOne {
	builder := c.Delete().Where(auditlog.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AuditLogDeleteOne{builder}
}

// Query returns a query builder for AuditLog.
func (c *AuditLogClient) Query() *AuditLogQuery {
	return &AuditLogQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAuditLog},
		inters: c.Interceptors(),
	}
}

// Get returns a AuditLog entity by its id.
func (c *AuditLogClient) Get(ctx context.Context, id int) (*AuditLog, error) {
	return c.Query().Where(auditlog.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AuditLogClient) GetX(ctx context.Context, id int) *AuditLog {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AuditLogClient) Hooks() []Hook {
	return c.hooks.AuditLog
}

// Interceptors returns the client interceptors.
func (c *AuditLogClient) Interceptors() []Interceptor {
	return c.inters.AuditLog
}

func (c *AuditLogClient) mutate(ctx context.Context, m *AuditLogMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AuditLogCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AuditLogUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AuditLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AuditLogDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AuditLog mutation op: %q", m.Op())
	}
}

// ContentItemClient is a client for the ContentItem schema.
type ContentItemClient struct {
	config
}

// NewContentItemClient returns a client for the ContentItem from the given config.
func NewContentItemClient(c config) *ContentItemClient {
	return &ContentItemClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `contentitem.Hooks(f(g(h())))`.
func (c *ContentItemClient) Use(hooks ...Hook) {
	c.hooks.ContentItem = append(c.hooks.ContentItem, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `contentitem.Intercept(f(g(h())))`.
func (c *ContentItemClient) Intercept(interceptors ...Interceptor) {
	c.inters.ContentItem = append(c.inters.ContentItem, interceptors...)
}

// Create returns a builder for creating a ContentItem entity.
func (c *ContentItemClient) Create() *ContentItemCreate {
	mutation := newContentItemMutation(c.config, OpCreate)
	return &ContentItemCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ContentItem entities.
func (c *ContentItemClient) CreateBulk(builders ...*ContentItemCreate) *ContentItemCreateBulk {
	return &ContentItemCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ContentItemClient) MapCreateBulk(slice any, setFunc func(*ContentItemCreate, int)) *ContentItemCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ContentItemCreateBulk{err: fmt.Errorf("calling to ContentItemClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ContentItemCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ContentItemCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ContentItem.
func (c *ContentItemClient) Update() *ContentItemUpdate {
	mutation := newContentItemMutation(c.config, OpUpdate)
	return &ContentItemUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ContentItemClient) UpdateOne(_m *ContentItem) *ContentItemUpdateOne {
	mutation := newContentItemMutation(c.config, OpUpdateOne, withContentItem(_m))
	return &ContentItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ContentItemClient) UpdateOneID(id int) *ContentItemUpdateOne {
	mutation := newContentItemMutation(c.config, OpUpdateOne, withContentItemID(id))
	return &ContentItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ContentItem.
func (c *ContentItemClient) Delete() *ContentItemDelete {
	mutation := newContentItemMutation(c.config, OpDelete)
	return &ContentItemDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ContentItemClient) DeleteOne(_m *ContentItem) *ContentItemDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ContentItemClient) DeleteOneID(id int) *ContentItemDeleteOne {
	builder := c.Delete().Where(contentitem.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ContentItemDeleteOne{builder}
}

// Query returns a query builder for ContentItem.
func (c *ContentItemClient) Query() *ContentItemQuery {
	return &ContentItemQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeContentItem},
		inters: c.Interceptors(),
	}
}

// Get returns a ContentItem entity by its id.
func (c *ContentItemClient) Get(ctx context.Context, id int) (*ContentItem, error) {
	return c.Query().Where(contentitem.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ContentItemClient) GetX(ctx context.Context, id int) *ContentItem {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ContentItemClient) Hooks() []Hook {
	return c.hooks.ContentItem
}

// Interceptors returns the client interceptors.
func (c *ContentItemClient) Interceptors() []Interceptor {
	return c.inters.ContentItem
}

func (c *ContentItemClient) mutate(ctx context.Context, m *ContentItemMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ContentItemCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ContentItemUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ContentItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ContentItemDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ContentItem mutation op: %q", m.Op())
	}
}

// ContentItemVersionClient is a client for the ContentItemVersion schema.
type ContentItemVersionClient struct {
	config
}

// NewContentItemVersionClient returns a client for the ContentItemVersion from the given config.
func NewContentItemVersionClient(c config) *ContentItemVersionClient {
	return &ContentItemVersionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `contentitemversion.Hooks(f(g(h())))`.
func (c *ContentItemVersionClient) Use(hooks ...Hook) {
	c.hooks.ContentItemVersion = append(c.hooks.ContentItemVersion, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `contentitemversion.Intercept(f(g(h())))`.
func (c *ContentItemVersionClient) Intercept(interceptors ...Interceptor) {
	c.inters.ContentItemVersion = append(c.inters.ContentItemVersion, interceptors...)
}

// Create returns a builder for creating a ContentItemVersion entity.
func (c *ContentItemVersionClient) Create() *ContentItemVersionCreate {
	mutation := newContentItemVersionMutation(c.config, OpCreate)
	return &ContentItemVersionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ContentItemVersion entities.
func (c *ContentItemVersionClient) CreateBulk(builders ...*ContentItemVersionCreate) *ContentItemVersionCreateBulk {
	return &ContentItemVersionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ContentItemVersionClient) MapCreateBulk(slice any, setFunc func(*ContentItemVersionCreate, int)) *ContentItemVersionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ContentItemVersionCreateBulk{err: fmt.Errorf("calling to ContentItemVersionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ContentItemVersionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ContentItemVersionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ContentItemVersion.
func (c *ContentItemVersionClient) Update() *ContentItemVersionUpdate {
	mutation := newContentItemVersionMutation(c.config, OpUpdate)
	return &ContentItemVersionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ContentItemVersionClient) UpdateOne(_m *ContentItemVersion) *ContentItemVersionUpdateOne {
	mutation := newContentItemVersionMutation(c.config, OpUpdateOne, withContentItemVersion(_m))
	return &ContentItemVersionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ContentItemVersionClient) UpdateOneID(id int) *ContentItemVersionUpdateOne {
	mutation := newContentItemVersionMutation(c.config, OpUpdateOne, withContentItemVersionID(id))
	return &ContentItemVersionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ContentItemVersion.
func (c *ContentItemVersionClient) Delete() *ContentItemVersionDelete {
	mutation := newContentItemVersionMutation(c.config, OpDelete)
	return &ContentItemVersionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ContentItemVersionClient) DeleteOne(_m *ContentItemVersion) *ContentItemVersionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ContentItemVersionClient) DeleteOneID(id int) *ContentItemVersionDeleteOne {
	builder := c.Delete().Where(contentitemversion.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ContentItemVersionDeleteOne{builder}
}

// Query returns a query builder for ContentItemVersion.
func (c *ContentItemVersionClient) Query() *ContentItemVersionQuery {
	return &ContentItemVersionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeContentItemVersion},
		inters: c.Interceptors(),
	}
}

// Get returns a ContentItemVersion entity by its id.
func (c *ContentItemVersionClient) Get(ctx context.Context, id int) (*ContentItemVersion, error) {
	return c.Query().Where(contentitemversion.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ContentItemVersionClient) GetX(ctx context.Context, id int) *ContentItemVersion {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ContentItemVersionClient) Hooks() []Hook {
	return c.hooks.ContentItemVersion
}

// Interceptors returns the client interceptors.
func (c *ContentItemVersionClient) Interceptors() []Interceptor {
	return c.inters.ContentItemVersion
}

func (c *ContentItemVersionClient) mutate(ctx context.Context, m *ContentItemVersionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ContentItemVersionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ContentItemVersionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ContentItemVersionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ContentItemVersionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ContentItemVersion mutation op: %q", m.Op())
	}
}

// ContentTypeClient is a client for the ContentType schema.
type ContentTypeClient struct {
	config
}

// NewContentTypeClient returns a client for the ContentType from the given config.
func NewContentTypeClient(c config) *ContentTypeClient {
	return &ContentTypeClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `contenttype.Hooks(f(g(h())))`.
func (c *ContentTypeClient) Use(hooks ...Hook) {
	c.hooks.ContentType = append(c.hooks.ContentType, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `contenttype.Intercept(f(g(h())))`.
func (c *ContentTypeClient) Intercept(interceptors ...Interceptor) {
	c.inters.ContentType = append(c.inters.ContentType, interceptors...)
}

// Create returns a builder for creating a ContentType entity.
func (c *ContentTypeClient) Create() *ContentTypeCreate {
	mutation := newContentTypeMutation(c.config, OpCreate)
	return &ContentTypeCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ContentType entities.
func (c *ContentTypeClient) CreateBulk(builders ...*ContentTypeCreate) *ContentTypeCreateBulk {
	return &ContentTypeCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ContentTypeClient) MapCreateBulk(slice any, setFunc func(*ContentTypeCreate, int)) *ContentTypeCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ContentTypeCreateBulk{err: fmt.Errorf("calling to ContentTypeClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ContentTypeCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ContentTypeCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ContentType.
func (c *ContentTypeClient) Update() *ContentTypeUpdate {
	mutation := newContentTypeMutation(c.config, OpUpdate)
	return &ContentTypeUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ContentTypeClient) UpdateOne(_m *ContentType) *ContentTypeUpdateOne {
	mutation := newContentTypeMutation(c.config, OpUpdateOne, withContentType(_m))
	return &ContentTypeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ContentTypeClient) UpdateOneID(id int) *ContentTypeUpdateOne {
	mutation := newContentTypeMutation(c.config, OpUpdateOne, withContentTypeID(id))
	return &ContentTypeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ContentType.
func (c *ContentTypeClient) Delete() *ContentTypeDelete {
	mutation := newContentTypeMutation(c.config, OpDelete)
	return &ContentTypeDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ContentTypeClient) DeleteOne(_m *ContentType) *ContentTypeDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ContentTypeClient) DeleteOneID(id int) *ContentTypeDeleteOne {
	builder := c.Delete().Where(contenttype.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ContentTypeDeleteOne{builder}
}

// Query returns a query builder for ContentType.
func (c *ContentTypeClient) Query() *ContentTypeQuery {
	return &ContentTypeQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeContentType},
		inters: c.Interceptors(),
	}
}

// Get returns a ContentType entity by its id.
func (c *ContentTypeClient) Get(ctx context.Context, id int) (*ContentType, error) {
	return c.Query().Where(contenttype.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ContentTypeClient) GetX(ctx context.Context, id int) *ContentType {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ContentTypeClient) Hooks() []Hook {
	return c.hooks.ContentType
}

// Interceptors returns the client interceptors.
func (c *ContentTypeClient) Interceptors() []Interceptor {
	return c.inters.ContentType
}

func (c *ContentTypeClient) mutate(ctx context.Context, m *ContentTypeMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ContentTypeCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ContentTypeUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ContentTypeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ContentTypeDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ContentType mutation op: %q", m.Op())
	}
}

// EntitlementClient is a client for the Entitlement schema.
type EntitlementClient struct {
	config
}

// NewEntitlementClient returns a client for the Entitlement from the given config.
func NewEntitlementClient(c config) *EntitlementClient {
	return &EntitlementClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `entitlement.Hooks(f(g(h())))`.
func (c *EntitlementClient) Use(hooks ...Hook) {
	c.hooks.Entitlement = append(c.hooks.Entitlement, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `entitlement.Intercept(f(g(h())))`.
func (c *EntitlementClient) Intercept(interceptors ...Interceptor) {
	c.inters.Entitlement = append(c.inters.Entitlement, interceptors...)
}

// Create returns a builder for creating a Entitlement entity.
func (c *EntitlementClient) Create() *EntitlementCreate {
	mutation := newEntitlementMutation(c.config, OpCreate)
	return &EntitlementCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Entitlement entities.
func (c *EntitlementClient) CreateBulk(builders ...*EntitlementCreate) *EntitlementCreateBulk {
	return &EntitlementCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EntitlementClient) MapCreateBulk(slice any, setFunc func(*EntitlementCreate, int)) *EntitlementCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EntitlementCreateBulk{err: fmt.Errorf("calling to EntitlementClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EntitlementCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EntitlementCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Entitlement.
func (c *EntitlementClient) Update() *EntitlementUpdate {
	mutation := newEntitlementMutation(c.config, OpUpdate)
	return &EntitlementUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EntitlementClient) UpdateOne(_m *Entitlement) *EntitlementUpdateOne {
	mutation := newEntitlementMutation(c.config, OpUpdateOne, withEntitlement(_m))
	return &EntitlementUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EntitlementClient) UpdateOneID(id int) *EntitlementUpdateOne {
	mutation := newEntitlementMutation(c.config, OpUpdateOne, withEntitlementID(id))
	return &EntitlementUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Entitlement.
func (c *EntitlementClient) Delete() *EntitlementDelete {
	mutation := newEntitlementMutation(c.config, OpDelete)
	return &EntitlementDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EntitlementClient) DeleteOne(_m *Entitlement) *EntitlementDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EntitlementClient) DeleteOneID(id int) *EntitlementDeleteOne {
	builder := c.Delete().Where(entitlement.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EntitlementDeleteOne{builder}
}

// Query returns a query builder for Entitlement.
func (c *EntitlementClient) Query() *EntitlementQuery {
	return &EntitlementQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEntitlement},
		inters: c.Interceptors(),
	}
}

// Get returns a Entitlement entity by its id.
func (c *EntitlementClient) Get(ctx context.Context, id int) (*Entitlement, error) {
	return c.Query().Where(entitlement.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EntitlementClient) GetX(ctx context.Context, id int) *Entitlement {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *EntitlementClient) Hooks() []Hook {
	return c.hooks.Entitlement
}

// Interceptors returns the client interceptors.
func (c *EntitlementClient) Interceptors() []Interceptor {
	return c.inters.Entitlement
}

func (c *EntitlementClient) mutate(ctx context.Context, m *EntitlementMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EntitlementCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EntitlementUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EntitlementUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EntitlementDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Entitlement mutation op: %q", m.Op())
	}
}

// PaymentClient is a client for the Payment schema.
type PaymentClient struct {
	config
}

// NewPaymentClient returns a client for the Payment from the given config.
func NewPaymentClient(c config) *PaymentClient {
	return &PaymentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `payment.Hooks(f(g(h())))`.
func (c *PaymentClient) Use(hooks ...Hook) {
	c.hooks.Payment = append(c.hooks.Payment, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `payment.Intercept(f(g(h())))`.
func (c *PaymentClient) Intercept(interceptors ...Interceptor) {
	c.inters.Payment = append(c.inters.Payment, interceptors...)
}

// Create returns a builder for creating a Payment entity.
func (c *PaymentClient) Create() *PaymentCreate {
	mutation := newPaymentMutation(c.config, OpCreate)
	return &PaymentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Payment entities.
func (c *PaymentClient) CreateBulk(builders ...*PaymentCreate) *PaymentCreateBulk {
	return &PaymentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PaymentClient) MapCreateBulk(slice any, setFunc func(*PaymentCreate, int)) *PaymentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PaymentCreateBulk{err: fmt.Errorf("calling to PaymentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PaymentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PaymentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Payment.
func (c *PaymentClient) Update() *PaymentUpdate {
	mutation := newPaymentMutation(c.config, OpUpdate)
	return &PaymentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PaymentClient) UpdateOne(_m *Payment) *PaymentUpdateOne {
	mutation := newPaymentMutation(c.config, OpUpdateOne, withPayment(_m))
	return &PaymentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PaymentClient) UpdateOneID(id int) *PaymentUpdateOne {
	mutation := newPaymentMutation(c.config, OpUpdateOne, withPaymentID(id))
	return &PaymentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Payment.
func (c *PaymentClient) Delete() *PaymentDelete {
	mutation := newPaymentMutation(c.config, OpDelete)
	return &PaymentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PaymentClient) DeleteOne(_m *Payment) *PaymentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PaymentClient) DeleteOneID(id int) *PaymentDeleteOne {
	builder := c.Delete().Where(payment.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PaymentDeleteOne{builder}
}

// Query returns a query builder for Payment.
func (c *PaymentClient) Query() *PaymentQuery {
	return &PaymentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePayment},
		inters: c.Interceptors(),
	}
}

// Get returns a Payment entity by its id.
func (c *PaymentClient) Get(ctx context.Context, id int) (*Payment, error) {
	return c.Query().Where(payment.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PaymentClient) GetX(ctx context.Context, id int) *Payment {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PaymentClient) Hooks() []Hook {
	return c.hooks.Payment
}

// Interceptors returns the client interceptors.
func (c *PaymentClient) Interceptors() []Interceptor {
	return c.inters.Payment
}

func (c *PaymentClient) mutate(ctx context.Context, m *PaymentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PaymentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PaymentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PaymentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PaymentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Payment mutation op: %q", m.Op())
	}
}

// PayoutBatchClient is a client for the PayoutBatch schema.
type PayoutBatchClient struct {
	config
}

// NewPayoutBatchClient returns a client for the PayoutBatch from the given config.
func NewPayoutBatchClient(c config) *PayoutBatchClient {
	return &PayoutBatchClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `payoutbatch.Hooks(f(g(h())))`.
func (c *PayoutBatchClient) Use(hooks ...Hook) {
	c.hooks.PayoutBatch = append(c.hooks.PayoutBatch, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `payoutbatch.Intercept(f(g(h())))`.
func (c *PayoutBatchClient) Intercept(interceptors ...Interceptor) {
	c.inters.PayoutBatch = append(c.inters.PayoutBatch, interceptors...)
}

// Create returns a builder for creating a PayoutBatch entity.
func (c *PayoutBatchClient) Create() *PayoutBatchCreate {
	mutation := newPayoutBatchMutation(c.config, OpCreate)
	return &PayoutBatchCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PayoutBatch entities.
func (c *PayoutBatchClient) CreateBulk(builders ...*PayoutBatchCreate) *PayoutBatchCreateBulk {
	return &PayoutBatchCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PayoutBatchClient) MapCreateBulk(slice any, setFunc func(*PayoutBatchCreate, int)) *PayoutBatchCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PayoutBatchCreateBulk{err: fmt.Errorf("calling to PayoutBatchClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PayoutBatchCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PayoutBatchCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PayoutBatch.
func (c *PayoutBatchClient) Update() *PayoutBatchUpdate {
	mutation := newPayoutBatchMutation(c.config, OpUpdate)
	return &PayoutBatchUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PayoutBatchClient) UpdateOne(_m *PayoutBatch) *PayoutBatchUpdateOne {
	mutation := newPayoutBatchMutation(c.config, OpUpdateOne, withPayoutBatch(_m))
	return &PayoutBatchUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PayoutBatchClient) UpdateOneID(id int) *PayoutBatchUpdateOne {
	mutation := newPayoutBatchMutation(c.config, OpUpdateOne, withPayoutBatchID(id))
	return &PayoutBatchUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PayoutBatch.
func (c *PayoutBatchClient) Delete() *PayoutBatchDelete {
	mutation := newPayoutBatchMutation(c.config, OpDelete)
	return &PayoutBatchDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PayoutBatchClient) DeleteOne(_m *PayoutBatch) *PayoutBatchDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PayoutBatchClient) DeleteOneID(id int) *PayoutBatchDeleteOne {
	builder := c.Delete().Where(payoutbatch.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PayoutBatchDeleteOne{builder}
}

// Query returns a query builder for PayoutBatch.
func (c *PayoutBatchClient) Query() *PayoutBatchQuery {
	return &PayoutBatchQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePayoutBatch},
		inters: c.Interceptors(),
	}
}

// Get returns a PayoutBatch entity by its id.
func (c *PayoutBatchClient) Get(ctx context.Context, id int) (*PayoutBatch, error) {
	return c.Query().Where(payoutbatch.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PayoutBatchClient) GetX(ctx context.Context, id int) *PayoutBatch {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PayoutBatchClient) Hooks() []Hook {
	return c.hooks.PayoutBatch
}

// Interceptors returns the client interceptors.
func (c *PayoutBatchClient) Interceptors() []Interceptor {
	return c.inters.PayoutBatch
}

func (c *PayoutBatchClient) mutate(ctx context.Context, m *PayoutBatchMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PayoutBatchCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PayoutBatchUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PayoutBatchUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PayoutBatchDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PayoutBatch mutation op: %q", m.Op())
	}
}

// PayoutTransferClient is a client for the PayoutTransfer schema.
type PayoutTransferClient struct {
	config
}

// NewPayoutTransferClient returns a client for the PayoutTransfer from the given config.
func NewPayoutTransferClient(c config) *PayoutTransferClient {
	return &PayoutTransferClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `payouttransfer.Hooks(f(g(h())))`.
func (c *PayoutTransferClient) Use(hooks ...Hook) {
	c.hooks.PayoutTransfer = append(c.hooks.PayoutTransfer, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `payouttransfer.Intercept(f(g(h())))`.
func (c *PayoutTransferClient) Intercept(interceptors ...Interceptor) {
	c.inters.PayoutTransfer = append(c.inters.PayoutTransfer, interceptors...)
}

// Create returns a builder for creating a PayoutTransfer entity.
func (c *PayoutTransferClient) Create() *PayoutTransferCreate {
	mutation := newPayoutTransferMutation(c.config, OpCreate)
	return &PayoutTransferCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PayoutTransfer entities.
func (c *PayoutTransferClient) CreateBulk(builders ...*PayoutTransferCreate) *PayoutTransferCreateBulk {
	return &PayoutTransferCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PayoutTransferClient) MapCreateBulk(slice any, setFunc func(*PayoutTransferCreate, int)) *PayoutTransferCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PayoutTransferCreateBulk{err: fmt.Errorf("calling to PayoutTransferClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PayoutTransferCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PayoutTransferCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PayoutTransfer.
func (c *PayoutTransferClient) Update() *PayoutTransferUpdate {
	mutation := newPayoutTransferMutation(c.config, OpUpdate)
	return &PayoutTransferUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PayoutTransferClient) UpdateOne(_m *PayoutTransfer) *PayoutTransferUpdateOne {
	mutation := newPayoutTransferMutation(c.config, OpUpdateOne, withPayoutTransfer(_m))
	return &PayoutTransferUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PayoutTransferClient) UpdateOneID(id int) *PayoutTransferUpdateOne {
	mutation := newPayoutTransferMutation(c.config, OpUpdateOne, withPayoutTransferID(id))
	return &PayoutTransferUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PayoutTransfer.
func (c *PayoutTransferClient) Delete() *PayoutTransferDelete {
	mutation := newPayoutTransferMutation(c.config, OpDelete)
	return &PayoutTransferDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PayoutTransferClient) DeleteOne(_m *PayoutTransfer) *PayoutTransferDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PayoutTransferClient) DeleteOneID(id int) *PayoutTransferDeleteOne {
	builder := c.Delete().Where(payouttransfer.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PayoutTransferDeleteOne{builder}
}

// Query returns a query builder for PayoutTransfer.
func (c *PayoutTransferClient) Query() *PayoutTransferQuery {
	return &PayoutTransferQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePayoutTransfer},
		inters: c.Interceptors(),
	}
}

// Get returns a PayoutTransfer entity by its id.
func (c *PayoutTransferClient) Get(ctx context.Context, id int) (*PayoutTransfer, error) {
	return c.Query().Where(payouttransfer.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PayoutTransferClient) GetX(ctx context.Context, id int) *PayoutTransfer {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PayoutTransferClient) Hooks() []Hook {
	return c.hooks.PayoutTransfer
}

// Interceptors returns the client interceptors.
func (c *PayoutTransferClient) Interceptors() []Interceptor {
	return c.inters.PayoutTransfer
}

func (c *PayoutTransferClient) mutate(ctx context.Context, m *PayoutTransferMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PayoutTransferCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PayoutTransferUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PayoutTransferUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PayoutTransferDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PayoutTransfer mutation op: %q", m.Op())
	}
}

// PolicyDecisionClient is a client for the PolicyDecision schema.
type PolicyDecisionClient struct {
	config
}

// NewPolicyDecisionClient returns a client for the PolicyDecision from the given config.
func NewPolicyDecisionClient(c config) *PolicyDecisionClient {
	return &PolicyDecisionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `policydecision.Hooks(f(g(h())))`.
func (c *PolicyDecisionClient) Use(hooks ...Hook) {
	c.hooks.PolicyDecision = append(c.hooks.PolicyDecision, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `policydecision.Intercept(f(g(h())))`.
func (c *PolicyDecisionClient) Intercept(interceptors ...Interceptor) {
	c.inters.PolicyDecision = append(c.inters.PolicyDecision, interceptors...)
}

// Create returns a builder for creating a PolicyDecision entity.
func (c *PolicyDecisionClient) Create() *PolicyDecisionCreate {
	mutation := newPolicyDecisionMutation(c.config, OpCreate)
	return &PolicyDecisionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PolicyDecision entities.
func (c *PolicyDecisionClient) CreateBulk(builders ...*PolicyDecisionCreate) *PolicyDecisionCreateBulk {
	return &PolicyDecisionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PolicyDecisionClient) MapCreateBulk(slice any, setFunc func(*PolicyDecisionCreate, int)) *PolicyDecisionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PolicyDecisionCreateBulk{err: fmt.Errorf("calling to PolicyDecisionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PolicyDecisionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PolicyDecisionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PolicyDecision.
func (c *PolicyDecisionClient) Update() *PolicyDecisionUpdate {
	mutation := newPolicyDecisionMutation(c.config, OpUpdate)
	return &PolicyDecisionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PolicyDecisionClient) UpdateOne(_m *PolicyDecision) *PolicyDecisionUpdateOne {
	mutation := newPolicyDecisionMutation(c.config, OpUpdateOne, withPolicyDecision(_m))
	return &PolicyDecisionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PolicyDecisionClient) UpdateOneID(id int) *PolicyDecisionUpdateOne {
	mutation := newPolicyDecisionMutation(c.config, OpUpdateOne, withPolicyDecisionID(id))
	return &PolicyDecisionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PolicyDecision.
func (c *PolicyDecisionClient) Delete() *PolicyDecisionDelete {
	mutation := newPolicyDecisionMutation(c.config, OpDelete)
	return &PolicyDecisionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PolicyDecisionClient) DeleteOne(_m *PolicyDecision) *PolicyDecisionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PolicyDecisionClient) DeleteOneID(id int) *PolicyDecisionDeleteOne {
	builder := c.Delete().Where(policydecision.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PolicyDecisionDeleteOne{builder}
}

// Query returns a query builder for PolicyDecision.
func (c *PolicyDecisionClient) Query() *PolicyDecisionQuery {
	return &PolicyDecisionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePolicyDecision},
		inters: c.Interceptors(),
	}
}

// Get returns a PolicyDecision entity by its id.
func (c *PolicyDecisionClient) Get(ctx context.Context, id int) (*PolicyDecision, error) {
	return c.Query().Where(policydecision.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PolicyDecisionClient) GetX(ctx context.Context, id int) *PolicyDecision {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PolicyDecisionClient) Hooks() []Hook {
	return c.hooks.PolicyDecision
}

// Interceptors returns the client interceptors.
func (c *PolicyDecisionClient) Interceptors() []Interceptor {
	return c.inters.PolicyDecision
}

func (c *PolicyDecisionClient) mutate(ctx context.Context, m *PolicyDecisionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PolicyDecisionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PolicyDecisionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PolicyDecisionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PolicyDecisionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PolicyDecision mutation op: %q", m.Op())
	}
}

// RevenueAllocationClient is a client for the RevenueAllocation schema.
type RevenueAllocationClient struct {
	config
}

// NewRevenueAllocationClient returns a client for the RevenueAllocation from the given config.
func NewRevenueAllocationClient(c config) *RevenueAllocationClient {
	return &RevenueAllocationClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `revenueallocation.Hooks(f(g(h())))`.
func (c *RevenueAllocationClient) Use(hooks ...Hook) {
	c.hooks.RevenueAllocation = append(c.hooks.RevenueAllocation, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `revenueallocation.Intercept(f(g(h())))`.
func (c *RevenueAllocationClient) Intercept(interceptors ...Interceptor) {
	c.inters.RevenueAllocation = append(c.inters.RevenueAllocation, interceptors...)
}

// Create returns a builder for creating a RevenueAllocation entity.
func (c *RevenueAllocationClient) Create() *RevenueAllocationCreate {
	mutation := newRevenueAllocationMutation(c.config, OpCreate)
	return &RevenueAllocationCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of RevenueAllocation entities.
func (c *RevenueAllocationClient) CreateBulk(builders ...*RevenueAllocationCreate) *RevenueAllocationCreateBulk {
	return &RevenueAllocationCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RevenueAllocationClient) MapCreateBulk(slice any, setFunc func(*RevenueAllocationCreate, int)) *RevenueAllocationCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RevenueAllocationCreateBulk{err: fmt.Errorf("calling to RevenueAllocationClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RevenueAllocationCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RevenueAllocationCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for RevenueAllocation.
func (c *RevenueAllocationClient) Update() *RevenueAllocationUpdate {
	mutation := newRevenueAllocationMutation(c.config, OpUpdate)
	return &RevenueAllocationUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RevenueAllocationClient) UpdateOne(_m *RevenueAllocation) *RevenueAllocationUpdateOne {
	mutation := newRevenueAllocationMutation(c.config, OpUpdateOne, withRevenueAllocation(_m))
	return &RevenueAllocationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RevenueAllocationClient) UpdateOneID(id int) *RevenueAllocationUpdateOne {
	mutation := newRevenueAllocationMutation(c.config, OpUpdateOne, withRevenueAllocationID(id))
	return &RevenueAllocationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for RevenueAllocation.
func (c *RevenueAllocationClient) Delete() *RevenueAllocationDelete {
	mutation := newRevenueAllocationMutation(c.config, OpDelete)
	return &RevenueAllocationDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RevenueAllocationClient) DeleteOne(_m *RevenueAllocation) *RevenueAllocationDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RevenueAllocationClient) DeleteOneID(id int) *RevenueAllocationDeleteOne {
	builder := c.Delete().Where(revenueallocation.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RevenueAllocationDeleteOne{builder}
}

// Query returns a query builder for RevenueAllocation.
func (c *RevenueAllocationClient) Query() *RevenueAllocationQuery {
	return &RevenueAllocationQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRevenueAllocation},
		inters: c.Interceptors(),
	}
}

// Get returns a RevenueAllocation entity by its id.
func (c *RevenueAllocationClient) Get(ctx context.Context, id int) (*RevenueAllocation, error) {
	return c.Query().Where(revenueallocation.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RevenueAllocationClient) GetX(ctx context.Context, id int) *RevenueAllocation {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *RevenueAllocationClient) Hooks() []Hook {
	return c.hooks.RevenueAllocation
}

// Interceptors returns the client interceptors.
func (c *RevenueAllocationClient) Interceptors() []Interceptor {
	return c.inters.RevenueAllocation
}

func (c *RevenueAllocationClient) mutate(ctx context.Context, m *RevenueAllocationMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RevenueAllocationCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RevenueAllocationUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RevenueAllocationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RevenueAllocationDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown RevenueAllocation mutation op: %q", m.Op())
	}
}

// RevenueEventClient is a client for the RevenueEvent schema.
type RevenueEventClient struct {
	config
}

// NewRevenueEventClient returns a client for the RevenueEvent from the given config.
func NewRevenueEventClient(c config) *RevenueEventClient {
	return &RevenueEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `revenueevent.Hooks(f(g(h())))`.
func (c *RevenueEventClient) Use(hooks ...Hook) {
	c.hooks.RevenueEvent = append(c.hooks.RevenueEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `revenueevent.Intercept(f(g(h())))`.
func (c *RevenueEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.RevenueEvent = append(c.inters.RevenueEvent, interceptors...)
}

// Create returns a builder for creating a RevenueEvent entity.
func (c *RevenueEventClient) Create() *RevenueEventCreate {
	mutation := newRevenueEventMutation(c.config, OpCreate)
	return &RevenueEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of RevenueEvent entities.
func (c *RevenueEventClient) CreateBulk(builders ...*RevenueEventCreate) *RevenueEventCreateBulk {
	return &RevenueEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RevenueEventClient) MapCreateBulk(slice any, setFunc func(*RevenueEventCreate, int)) *RevenueEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RevenueEventCreateBulk{err: fmt.Errorf("calling to RevenueEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RevenueEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RevenueEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for RevenueEvent.
func (c *RevenueEventClient) Update() *RevenueEventUpdate {
	mutation := newRevenueEventMutation(c.config, OpUpdate)
	return &RevenueEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RevenueEventClient) UpdateOne(_m *RevenueEvent) *RevenueEventUpdateOne {
	mutation := newRevenueEventMutation(c.config, OpUpdateOne, withRevenueEvent(_m))
	return &RevenueEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RevenueEventClient) UpdateOneID(id int) *RevenueEventUpdateOne {
	mutation := newRevenueEventMutation(c.config, OpUpdateOne, withRevenueEventID(id))
	return &RevenueEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for RevenueEvent.
func (c *RevenueEventClient) Delete() *RevenueEventDelete {
	mutation := newRevenueEventMutation(c.config, OpDelete)
	return &RevenueEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RevenueEventClient) DeleteOne(_m *RevenueEvent) *RevenueEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RevenueEventClient) DeleteOneID(id int) *RevenueEventDeleteOne {
	builder := c.Delete().Where(revenueevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RevenueEventDeleteOne{builder}
}

// Query returns a query builder for RevenueEvent.
func (c *RevenueEventClient) Query() *RevenueEventQuery {
	return &RevenueEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRevenueEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a RevenueEvent entity by its id.
func (c *RevenueEventClient) Get(ctx context.Context, id int) (*RevenueEvent, error) {
	return c.Query().Where(revenueevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RevenueEventClient) GetX(ctx context.Context, id int) *RevenueEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *RevenueEventClient) Hooks() []Hook {
	return c.hooks.RevenueEvent
}

// Interceptors returns the client interceptors.
func (c *RevenueEventClient) Interceptors() []Interceptor {
	return c.inters.RevenueEvent
}

func (c *RevenueEventClient) mutate(ctx context.Context, m *RevenueEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RevenueEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RevenueEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RevenueEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RevenueEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown RevenueEvent mutation op: %q", m.Op())
	}
}

// TenantClient is a client for the Tenant schema.
type TenantClient struct {
	config
}

// NewTenantClient returns a client for the Tenant from the given config.
func NewTenantClient(c config) *TenantClient {
	return &TenantClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `tenant.Hooks(f(g(h())))`.
func (c *TenantClient) Use(hooks ...Hook) {
	c.hooks.Tenant = append(c.hooks.Tenant, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `tenant.Intercept(f(g(h())))`.
func (c *TenantClient) Intercept(interceptors ...Interceptor) {
	c.inters.Tenant = append(c.inters.Tenant, interceptors...)
}

// Create returns a builder for creating a Tenant entity.
func (c *TenantClient) Create() *TenantCreate {
	mutation := newTenantMutation(c.config, OpCreate)
	return &TenantCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Tenant entities.
func (c *TenantClient) CreateBulk(builders ...*TenantCreate) *TenantCreateBulk {
	return &TenantCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TenantClient) MapCreateBulk(slice any, setFunc func(*TenantCreate, int)) *TenantCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TenantCreateBulk{err: fmt.Errorf("calling to TenantClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TenantCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TenantCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Tenant.
func (c *TenantClient) Update() *TenantUpdate {
	mutation := newTenantMutation(c.config, OpUpdate)
	return &TenantUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TenantClient) UpdateOne(_m *Tenant) *TenantUpdateOne {
	mutation := newTenantMutation(c.config, OpUpdateOne, withTenant(_m))
	return &TenantUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TenantClient) UpdateOneID(id int) *TenantUpdateOne {
	mutation := newTenantMutation(c.config, OpUpdateOne, withTenantID(id))
	return &TenantUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Tenant.
func (c *TenantClient) Delete() *TenantDelete {
	mutation := newTenantMutation(c.config, OpDelete)
	return &TenantDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TenantClient) DeleteOne(_m *Tenant) *TenantDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TenantClient) DeleteOneID(id int) *TenantDeleteOne {
	builder := c.Delete().Where(tenant.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TenantDeleteOne{builder}
}

// Query returns a query builder for Tenant.
func (c *TenantClient) Query() *TenantQuery {
	return &TenantQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTenant},
		inters: c.Interceptors(),
	}
}

// Get returns a Tenant entity by its id.
func (c *TenantClient) Get(ctx context.Context, id int) (*Tenant, error) {
	return c.Query().Where(tenant.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TenantClient) GetX(ctx context.Context, id int) *Tenant {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *TenantClient) Hooks() []Hook {
	return c.hooks.Tenant
}

// Interceptors returns the client interceptors.
func (c *TenantClient) Interceptors() []Interceptor {
	return c.inters.Tenant
}

func (c *TenantClient) mutate(ctx context.Context, m *TenantMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TenantCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TenantUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TenantUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TenantDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Tenant mutation op: %q", m.Op())
	}
}

// WebhookClient is a client for the Webhook schema.
type WebhookClient struct {
	config
}

// NewWebhookClient returns a client for the Webhook from the given config.
func NewWebhookClient(c config) *WebhookClient {
	return &WebhookClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `webhook.Hooks(f(g(h())))`.
func (c *WebhookClient) Use(hooks ...Hook) {
	c.hooks.Webhook = append(c.hooks.Webhook, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `webhook.Intercept(f(g(h())))`.
func (c *WebhookClient) Intercept(interceptors ...Interceptor) {
	c.inters.Webhook = append(c.inters.Webhook, interceptors...)
}

// Create returns a builder for creating a Webhook entity.
func (c *WebhookClient) Create() *WebhookCreate {
	mutation := newWebhookMutation(c.config, OpCreate)
	return &WebhookCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Webhook entities.
func (c *WebhookClient) CreateBulk(builders ...*WebhookCreate) *WebhookCreateBulk {
	return &WebhookCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *WebhookClient) MapCreateBulk(slice any, setFunc func(*WebhookCreate, int)) *WebhookCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &WebhookCreateBulk{err: fmt.Errorf("calling to WebhookClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*WebhookCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &WebhookCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Webhook.
func (c *WebhookClient) Update() *WebhookUpdate {
	mutation := newWebhookMutation(c.config, OpUpdate)
	return &WebhookUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *WebhookClient) UpdateOne(_m *Webhook) *WebhookUpdateOne {
	mutation := newWebhookMutation(c.config, OpUpdateOne, withWebhook(_m))
	return &WebhookUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *WebhookClient) UpdateOneID(id int) *WebhookUpdateOne {
	mutation := newWebhookMutation(c.config, OpUpdateOne, withWebhookID(id))
	return &WebhookUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Webhook.
func (c *WebhookClient) Delete() *WebhookDelete {
	mutation := newWebhookMutation(c.config, OpDelete)
	return &WebhookDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *WebhookClient) DeleteOne(_m *Webhook) *WebhookDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *WebhookClient) DeleteOneID(id int) *WebhookDeleteOne {
	builder := c.Delete().Where(webhook.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &WebhookDeleteOne{builder}
}

// Query returns a query builder for Webhook.
func (c *WebhookClient) Query() *WebhookQuery {
	return &WebhookQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeWebhook},
		inters: c.Interceptors(),
	}
}

// Get returns a Webhook entity by its id.
func (c *WebhookClient) Get(ctx context.Context, id int) (*Webhook, error) {
	return c.Query().Where(webhook.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *WebhookClient) GetX(ctx context.Context, id int) *Webhook {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *WebhookClient) Hooks() []Hook {
	return c.hooks.Webhook
}

// Interceptors returns the client interceptors.
func (c *WebhookClient) Interceptors() []Interceptor {
	return c.inters.Webhook
}

func (c *WebhookClient) mutate(ctx context.Context, m *WebhookMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&WebhookCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&WebhookUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&WebhookUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&WebhookDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Webhook mutation op: %q", m.Op())
	}
}

// WebhookDeliveryClient is a client for the WebhookDelivery schema.
type WebhookDeliveryClient struct {
	config
}

// NewWebhookDeliveryClient returns a client for the WebhookDelivery from the given config.
func NewWebhookDeliveryClient(c config) *WebhookDeliveryClient {
	return &WebhookDeliveryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `webhookdelivery.Hooks(f(g(h())))`.
func (c *WebhookDeliveryClient) Use(hooks ...Hook) {
	c.hooks.WebhookDelivery = append(c.hooks.WebhookDelivery, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `webhookdelivery.Intercept(f(g(h())))`.
func (c *WebhookDeliveryClient) Intercept(interceptors ...Interceptor) {
	c.inters.WebhookDelivery = append(c.inters.WebhookDelivery, interceptors...)
}

// Create returns a builder for creating a WebhookDelivery entity.
func (c *WebhookDeliveryClient) Create() *WebhookDeliveryCreate {
	mutation := newWebhookDeliveryMutation(c.config, OpCreate)
	return &WebhookDeliveryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of WebhookDelivery entities.
func (c *WebhookDeliveryClient) CreateBulk(builders ...*WebhookDeliveryCreate) *WebhookDeliveryCreateBulk {
	return &WebhookDeliveryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *WebhookDeliveryClient) MapCreateBulk(slice any, setFunc func(*WebhookDeliveryCreate, int)) *WebhookDeliveryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &WebhookDeliveryCreateBulk{err: fmt.Errorf("calling to WebhookDeliveryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*WebhookDeliveryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &WebhookDeliveryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for WebhookDelivery.
func (c *WebhookDeliveryClient) Update() *WebhookDeliveryUpdate {
	mutation := newWebhookDeliveryMutation(c.config, OpUpdate)
	return &WebhookDeliveryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *WebhookDeliveryClient) UpdateOne(_m *WebhookDelivery) *WebhookDeliveryUpdateOne {
	mutation := newWebhookDeliveryMutation(c.config, OpUpdateOne, withWebhookDelivery(_m))
	return &WebhookDeliveryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *WebhookDeliveryClient) UpdateOneID(id int) *WebhookDeliveryUpdateOne {
	mutation := newWebhookDeliveryMutation(c.config, OpUpdateOne, withWebhookDeliveryID(id))
	return &WebhookDeliveryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for WebhookDelivery.
func (c *WebhookDeliveryClient) Delete() *WebhookDeliveryDelete {
	mutation := newWebhookDeliveryMutation(c.config, OpDelete)
	return &WebhookDeliveryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *WebhookDeliveryClient) DeleteOne(_m *WebhookDelivery) *WebhookDeliveryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *WebhookDeliveryClient) DeleteOneID(id int) *WebhookDeliveryDeleteOne {
	builder := c.Delete().Where(webhookdelivery.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &WebhookDeliveryDeleteOne{builder}
}

// Query returns a query builder for WebhookDelivery.
func (c *WebhookDeliveryClient) Query() *WebhookDeliveryQuery {
	return &WebhookDeliveryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeWebhookDelivery},
		inters: c.Interceptors(),
	}
}

// Get returns a WebhookDelivery entity by its id.
func (c *WebhookDeliveryClient) Get(ctx context.Context, id int) (*WebhookDelivery, error) {
	return c.Query().Where(webhookdelivery.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *WebhookDeliveryClient) GetX(ctx context.Context, id int) *WebhookDelivery {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *WebhookDeliveryClient) Hooks() []Hook {
	return c.hooks.WebhookDelivery
}

// Interceptors returns the client interceptors.
func (c *WebhookDeliveryClient) Interceptors() []Interceptor {
	return c.inters.WebhookDelivery
}

func (c *WebhookDeliveryClient) mutate(ctx context.Context, m *WebhookDeliveryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&WebhookDeliveryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&WebhookDeliveryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&WebhookDeliveryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&WebhookDeliveryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown WebhookDelivery mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		APIKey, AuditLog, ContentItem, ContentItemVersion, ContentType, Entitlement,
		Payment, PayoutBatch, PayoutTransfer, PolicyDecision, RevenueAllocation,
		RevenueEvent, Tenant, Webhook, WebhookDelivery []ent.Hook
	}
	inters struct {
		APIKey, AuditLog, ContentItem, ContentItemVersion, ContentType, Entitlement,
		Payment, PayoutBatch, PayoutTransfer, PolicyDecision, RevenueAllocation,
		RevenueEvent, Tenant, Webhook, WebhookDelivery []ent.Interceptor
	}
)
