// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/quillgate/quillgate/ent/revenueevent"
)

// RevenueEventCreate is the builder for creating a RevenueEvent entity.
type RevenueEventCreate struct {
	config
	mutation *RevenueEventMutation
	hooks    []Hook
}

// SetTenantID sets the "tenant_id" field.
func (_c *RevenueEventCreate) SetTenantID(v int) *RevenueEventCreate {
	_c.mutation.SetTenantID(v)
	return _c
}

// SetPaymentID sets the "payment_id" field.
func (_c *RevenueEventCreate) SetPaymentID(v int) *RevenueEventCreate {
	_c.mutation.SetPaymentID(v)
	return _c
}

// SetGrossSats sets the "gross_sats" field.
func (_c *RevenueEventCreate) SetGrossSats(v int64) *RevenueEventCreate {
	_c.mutation.SetGrossSats(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *RevenueEventCreate) SetCreatedAt(v time.Time) *RevenueEventCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *RevenueEventCreate) SetNillableCreatedAt(v *time.Time) *RevenueEventCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the RevenueEventMutation object of the builder.
func (_c *RevenueEventCreate) Mutation() *RevenueEventMutation {
	return _c.mutation
}

// Save creates the RevenueEvent in the database.
func (_c *RevenueEventCreate) Save(ctx context.Context) (*RevenueEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RevenueEventCreate) SaveX(ctx context.Context) *RevenueEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RevenueEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RevenueEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RevenueEventCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := revenueevent.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RevenueEventCreate) check() error {
	if _, ok := _c.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "RevenueEvent.tenant_id"`)}
	}
	if _, ok := _c.mutation.PaymentID(); !ok {
		return &ValidationError{Name: "payment_id", err: errors.New(`ent: missing required field "RevenueEvent.payment_id"`)}
	}
	if _, ok := _c.mutation.GrossSats(); !ok {
		return &ValidationError{Name: "gross_sats", err: errors.New(`ent: missing required field "RevenueEvent.gross_sats"`)}
	}
	if v, ok := _c.mutation.GrossSats(); ok {
		if err := revenueevent.GrossSatsValidator(v); err != nil {
			return &ValidationError{Name: "gross_sats", err: fmt.Errorf(`ent: validator failed for field "RevenueEvent.gross_sats": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "RevenueEvent.created_at"`)}
	}
	return nil
}

func (_c *RevenueEventCreate) sqlSave(ctx context.Context) (*RevenueEvent, error) {
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

func (_c *RevenueEventCreate) createSpec() (*RevenueEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &RevenueEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(revenueevent.Table, sqlgraph.NewFieldSpec(revenueevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.TenantID(); ok {
		_spec.SetField(revenueevent.FieldTenantID, field.TypeInt, value)
		_node.TenantID = value
	}
	if value, ok := _c.mutation.PaymentID(); ok {
		_spec.SetField(revenueevent.FieldPaymentID, field.TypeInt, value)
		_node.PaymentID = value
	}
	if value, ok := _c.mutation.GrossSats(); ok {
		_spec.SetField(revenueevent.FieldGrossSats, field.TypeInt64, value)
		_node.GrossSats = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(revenueevent.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// RevenueEventCreateBulk is the builder for creating many RevenueEvent entities in bulk.
type RevenueEventCreateBulk struct {
	config
	err      error
	builders []*RevenueEventCreate
}

// Save creates the RevenueEvent entities in the database.
func (_c *RevenueEventCreateBulk) Save(ctx context.Context) ([]*RevenueEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*RevenueEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RevenueEventMutation)
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
func (_c *RevenueEventCreateBulk) SaveX(ctx context.Context) []*RevenueEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RevenueEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RevenueEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
