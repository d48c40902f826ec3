// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/quillgate/quillgate/ent/payouttransfer"
)

// PayoutTransferCreate is the builder for creating a PayoutTransfer entity.
type PayoutTransferCreate struct {
	config
	mutation *PayoutTransferMutation
	hooks    []Hook
}

// SetTenantID sets the "tenant_id" field.
func (_c *PayoutTransferCreate) SetTenantID(v int) *PayoutTransferCreate {
	_c.mutation.SetTenantID(v)
	return _c
}

// SetBatchID sets the "batch_id" field.
func (_c *PayoutTransferCreate) SetBatchID(v int) *PayoutTransferCreate {
	_c.mutation.SetBatchID(v)
	return _c
}

// SetAgentProfileID sets the "agent_profile_id" field.
func (_c *PayoutTransferCreate) SetAgentProfileID(v string) *PayoutTransferCreate {
	_c.mutation.SetAgentProfileID(v)
	return _c
}

// SetAmountSats sets the "amount_sats" field.
func (_c *PayoutTransferCreate) SetAmountSats(v int64) *PayoutTransferCreate {
	_c.mutation.SetAmountSats(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *PayoutTransferCreate) SetStatus(v payouttransfer.Status) *PayoutTransferCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *PayoutTransferCreate) SetNillableStatus(v *payouttransfer.Status) *PayoutTransferCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetAttempts sets the "attempts" field.
func (_c *PayoutTransferCreate) SetAttempts(v int) *PayoutTransferCreate {
	_c.mutation.SetAttempts(v)
	return _c
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_c *PayoutTransferCreate) SetNillableAttempts(v *int) *PayoutTransferCreate {
	if v != nil {
		_c.SetAttempts(*v)
	}
	return _c
}

// SetLastError sets the "last_error" field.
func (_c *PayoutTransferCreate) SetLastError(v string) *PayoutTransferCreate {
	_c.mutation.SetLastError(v)
	return _c
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_c *PayoutTransferCreate) SetNillableLastError(v *string) *PayoutTransferCreate {
	if v != nil {
		_c.SetLastError(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PayoutTransferCreate) SetCreatedAt(v time.Time) *PayoutTransferCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PayoutTransferCreate) SetNillableCreatedAt(v *time.Time) *PayoutTransferCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *PayoutTransferCreate) SetUpdatedAt(v time.Time) *PayoutTransferCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *PayoutTransferCreate) SetNillableUpdatedAt(v *time.Time) *PayoutTransferCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the PayoutTransferMutation object of the builder.
func (_c *PayoutTransferCreate) Mutation() *PayoutTransferMutation {
	return _c.mutation
}

// Save creates the PayoutTransfer in the database.
func (_c *PayoutTransferCreate) Save(ctx context.Context) (*PayoutTransfer, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PayoutTransferCreate) SaveX(ctx context.Context) *PayoutTransfer {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PayoutTransferCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PayoutTransferCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PayoutTransferCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := payouttransfer.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		v := payouttransfer.DefaultAttempts
		_c.mutation.SetAttempts(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := payouttransfer.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := payouttransfer.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PayoutTransferCreate) check() error {
	if _, ok := _c.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "PayoutTransfer.tenant_id"`)}
	}
	if _, ok := _c.mutation.BatchID(); !ok {
		return &ValidationError{Name: "batch_id", err: errors.New(`ent: missing required field "PayoutTransfer.batch_id"`)}
	}
	if _, ok := _c.mutation.AgentProfileID(); !ok {
		return &ValidationError{Name: "agent_profile_id", err: errors.New(`ent: missing required field "PayoutTransfer.agent_profile_id"`)}
	}
	if _, ok := _c.mutation.AmountSats(); !ok {
		return &ValidationError{Name: "amount_sats", err: errors.New(`ent: missing required field "PayoutTransfer.amount_sats"`)}
	}
	if v, ok := _c.mutation.AmountSats(); ok {
		if err := payouttransfer.AmountSatsValidator(v); err != nil {
			return &ValidationError{Name: "amount_sats", err: fmt.Errorf(`ent: validator failed for field "PayoutTransfer.amount_sats": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "PayoutTransfer.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := payouttransfer.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PayoutTransfer.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		return &ValidationError{Name: "attempts", err: errors.New(`ent: missing required field "PayoutTransfer.attempts"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "PayoutTransfer.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "PayoutTransfer.updated_at"`)}
	}
	return nil
}

func (_c *PayoutTransferCreate) sqlSave(ctx context.Context) (*PayoutTransfer, error) {
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

func (_c *PayoutTransferCreate) createSpec() (*PayoutTransfer, *sqlgraph.CreateSpec) {
	var (
		_node = &PayoutTransfer{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(payouttransfer.Table, sqlgraph.NewFieldSpec(payouttransfer.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.TenantID(); ok {
		_spec.SetField(payouttransfer.FieldTenantID, field.TypeInt, value)
		_node.TenantID = value
	}
	if value, ok := _c.mutation.BatchID(); ok {
		_spec.SetField(payouttransfer.FieldBatchID, field.TypeInt, value)
		_node.BatchID = value
	}
	if value, ok := _c.mutation.AgentProfileID(); ok {
		_spec.SetField(payouttransfer.FieldAgentProfileID, field.TypeString, value)
		_node.AgentProfileID = value
	}
	if value, ok := _c.mutation.AmountSats(); ok {
		_spec.SetField(payouttransfer.FieldAmountSats, field.TypeInt64, value)
		_node.AmountSats = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(payouttransfer.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Attempts(); ok {
		_spec.SetField(payouttransfer.FieldAttempts, field.TypeInt, value)
		_node.Attempts = value
	}
	if value, ok := _c.mutation.LastError(); ok {
		_spec.SetField(payouttransfer.FieldLastError, field.TypeString, value)
		_node.LastError = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(payouttransfer.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(payouttransfer.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// PayoutTransferCreateBulk is the builder for creating many PayoutTransfer entities in bulk.
type PayoutTransferCreateBulk struct {
	config
	err      error
	builders []*PayoutTransferCreate
}

// Save creates the PayoutTransfer entities in the database.
func (_c *PayoutTransferCreateBulk) Save(ctx context.Context) ([]*PayoutTransfer, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PayoutTransfer, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PayoutTransferMutation)
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
func (_c *PayoutTransferCreateBulk) SaveX(ctx context.Context) []*PayoutTransfer {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PayoutTransferCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PayoutTransferCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
