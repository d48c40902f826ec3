// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/quillgate/quillgate/ent/payment"
)

// PaymentCreate is the builder for creating a Payment entity.
type PaymentCreate struct {
	config
	mutation *PaymentMutation
	hooks    []Hook
}

// SetTenantID sets the "tenant_id" field.
func (_c *PaymentCreate) SetTenantID(v int) *PaymentCreate {
	_c.mutation.SetTenantID(v)
	return _c
}

// SetPaymentHash sets the "payment_hash" field.
func (_c *PaymentCreate) SetPaymentHash(v string) *PaymentCreate {
	_c.mutation.SetPaymentHash(v)
	return _c
}

// SetProvider sets the "provider" field.
func (_c *PaymentCreate) SetProvider(v string) *PaymentCreate {
	_c.mutation.SetProvider(v)
	return _c
}

// SetProviderInvoiceID sets the "provider_invoice_id" field.
func (_c *PaymentCreate) SetProviderInvoiceID(v string) *PaymentCreate {
	_c.mutation.SetProviderInvoiceID(v)
	return _c
}

// SetNillableProviderInvoiceID sets the "provider_invoice_id" field if the given value is not nil.
func (_c *PaymentCreate) SetNillableProviderInvoiceID(v *string) *PaymentCreate {
	if v != nil {
		_c.SetProviderInvoiceID(*v)
	}
	return _c
}

// SetPaymentRequest sets the "payment_request" field.
func (_c *PaymentCreate) SetPaymentRequest(v string) *PaymentCreate {
	_c.mutation.SetPaymentRequest(v)
	return _c
}

// SetAmountSats sets the "amount_sats" field.
func (_c *PaymentCreate) SetAmountSats(v int64) *PaymentCreate {
	_c.mutation.SetAmountSats(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *PaymentCreate) SetStatus(v payment.Status) *PaymentCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *PaymentCreate) SetNillableStatus(v *payment.Status) *PaymentCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetExpiresAt sets the "expires_at" field.
func (_c *PaymentCreate) SetExpiresAt(v time.Time) *PaymentCreate {
	_c.mutation.SetExpiresAt(v)
	return _c
}

// SetSettledAt sets the "settled_at" field.
func (_c *PaymentCreate) SetSettledAt(v time.Time) *PaymentCreate {
	_c.mutation.SetSettledAt(v)
	return _c
}

// SetNillableSettledAt sets the "settled_at" field if the given value is not nil.
func (_c *PaymentCreate) SetNillableSettledAt(v *time.Time) *PaymentCreate {
	if v != nil {
		_c.SetSettledAt(*v)
	}
	return _c
}

// SetFailureReason sets the "failure_reason" field.
func (_c *PaymentCreate) SetFailureReason(v string) *PaymentCreate {
	_c.mutation.SetFailureReason(v)
	return _c
}

// SetNillableFailureReason sets the "failure_reason" field if the given value is not nil.
func (_c *PaymentCreate) SetNillableFailureReason(v *string) *PaymentCreate {
	if v != nil {
		_c.SetFailureReason(*v)
	}
	return _c
}

// SetLastEventID sets the "last_event_id" field.
func (_c *PaymentCreate) SetLastEventID(v string) *PaymentCreate {
	_c.mutation.SetLastEventID(v)
	return _c
}

// SetNillableLastEventID sets the "last_event_id" field if the given value is not nil.
func (_c *PaymentCreate) SetNillableLastEventID(v *string) *PaymentCreate {
	if v != nil {
		_c.SetLastEventID(*v)
	}
	return _c
}

// SetResourcePath sets the "resource_path" field.
func (_c *PaymentCreate) SetResourcePath(v string) *PaymentCreate {
	_c.mutation.SetResourcePath(v)
	return _c
}

// SetActorID sets the "actor_id" field.
func (_c *PaymentCreate) SetActorID(v string) *PaymentCreate {
	_c.mutation.SetActorID(v)
	return _c
}

// SetDetails sets the "details" field.
func (_c *PaymentCreate) SetDetails(v map[string]interface{}) *PaymentCreate {
	_c.mutation.SetDetails(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PaymentCreate) SetCreatedAt(v time.Time) *PaymentCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PaymentCreate) SetNillableCreatedAt(v *time.Time) *PaymentCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *PaymentCreate) SetUpdatedAt(v time.Time) *PaymentCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *PaymentCreate) SetNillableUpdatedAt(v *time.Time) *PaymentCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the PaymentMutation object of the builder.
func (_c *PaymentCreate) Mutation() *PaymentMutation {
	return _c.mutation
}

// Save creates the Payment in the database.
func (_c *PaymentCreate) Save(ctx context.Context) (*Payment, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PaymentCreate) SaveX(ctx context.Context) *Payment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PaymentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PaymentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PaymentCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := payment.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := payment.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := payment.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PaymentCreate) check() error {
	if _, ok := _c.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "Payment.tenant_id"`)}
	}
	if _, ok := _c.mutation.PaymentHash(); !ok {
		return &ValidationError{Name: "payment_hash", err: errors.New(`ent: missing required field "Payment.payment_hash"`)}
	}
	if _, ok := _c.mutation.Provider(); !ok {
		return &ValidationError{Name: "provider", err: errors.New(`ent: missing required field "Payment.provider"`)}
	}
	if _, ok := _c.mutation.PaymentRequest(); !ok {
		return &ValidationError{Name: "payment_request", err: errors.New(`ent: missing required field "Payment.payment_request"`)}
	}
	if _, ok := _c.mutation.AmountSats(); !ok {
		return &ValidationError{Name: "amount_sats", err: errors.New(`ent: missing required field "Payment.amount_sats"`)}
	}
	if v, ok := _c.mutation.AmountSats(); ok {
		if err := payment.AmountSatsValidator(v); err != nil {
			return &ValidationError{Name: "amount_sats", err: fmt.Errorf(`ent: validator failed for field "Payment.amount_sats": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Payment.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := payment.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Payment.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ExpiresAt(); !ok {
		return &ValidationError{Name: "expires_at", err: errors.New(`ent: missing required field "Payment.expires_at"`)}
	}
	if _, ok := _c.mutation.ResourcePath(); !ok {
		return &ValidationError{Name: "resource_path", err: errors.New(`ent: missing required field "Payment.resource_path"`)}
	}
	if _, ok := _c.mutation.ActorID(); !ok {
		return &ValidationError{Name: "actor_id", err: errors.New(`ent: missing required field "Payment.actor_id"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Payment.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Payment.updated_at"`)}
	}
	return nil
}

func (_c *PaymentCreate) sqlSave(ctx context.Context) (*Payment, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PaymentCreate) createSpec() (*Payment, *sqlgraph.CreateSpec) {
	var (
		_node = &Payment{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(payment.Table, sqlgraph.NewFieldSpec(payment.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.TenantID(); ok {
		_spec.SetField(payment.FieldTenantID, field.TypeInt, value)
		_node.TenantID = value
	}
	if value, ok := _c.mutation.PaymentHash(); ok {
		_spec.SetField(payment.FieldPaymentHash, field.TypeString, value)
		_node.PaymentHash = value
	}
	if value, ok := _c.mutation.Provider(); ok {
		_spec.SetField(payment.FieldProvider, field.TypeString, value)
		_node.Provider = value
	}
	if value, ok := _c.mutation.ProviderInvoiceID(); ok {
		_spec.SetField(payment.FieldProviderInvoiceID, field.TypeString, value)
		_node.ProviderInvoiceID = &value
	}
	if value, ok := _c.mutation.PaymentRequest(); ok {
		_spec.SetField(payment.FieldPaymentRequest, field.TypeString, value)
		_node.PaymentRequest = value
	}
	if value, ok := _c.mutation.AmountSats(); ok {
		_spec.SetField(payment.FieldAmountSats, field.TypeInt64, value)
		_node.AmountSats = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(payment.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ExpiresAt(); ok {
		_spec.SetField(payment.FieldExpiresAt, field.TypeTime, value)
		_node.ExpiresAt = value
	}
	if value, ok := _c.mutation.SettledAt(); ok {
		_spec.SetField(payment.FieldSettledAt, field.TypeTime, value)
		_node.SettledAt = &value
	}
	if value, ok := _c.mutation.FailureReason(); ok {
		_spec.SetField(payment.FieldFailureReason, field.TypeString, value)
		_node.FailureReason = &value
	}
	if value, ok := _c.mutation.LastEventID(); ok {
		_spec.SetField(payment.FieldLastEventID, field.TypeString, value)
		_node.LastEventID = &value
	}
	if value, ok := _c.mutation.ResourcePath(); ok {
		_spec.SetField(payment.FieldResourcePath, field.TypeString, value)
		_node.ResourcePath = value
	}
	if value, ok := _c.mutation.ActorID(); ok {
		_spec.SetField(payment.FieldActorID, field.TypeString, value)
		_node.ActorID = value
	}
	if value, ok := _c.mutation.Details(); ok {
		_spec.SetField(payment.FieldDetails, field.TypeJSON, value)
		_node.Details = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(payment.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(payment.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// PaymentCreateBulk is the builder for creating many Payment entities in bulk.
type PaymentCreateBulk struct {
	config
	err      error
	builders []*PaymentCreate
}

// Save creates the Payment entities in the database.
func (_c *PaymentCreateBulk) Save(ctx context.Context) ([]*Payment, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Payment, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PaymentMutation)
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
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
func (_c *PaymentCreateBulk) SaveX(ctx context.Context) []*Payment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PaymentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PaymentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
