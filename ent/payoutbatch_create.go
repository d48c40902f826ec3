// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/quillgate/quillgate/ent/payoutbatch"
)

// PayoutBatchCreate is the builder for creating a PayoutBatch entity.
type PayoutBatchCreate struct {
	config
	mutation *PayoutBatchMutation
	hooks    []Hook
}

// SetTenantID sets the "tenant_id" field.
func (_c *PayoutBatchCreate) SetTenantID(v int) *PayoutBatchCreate {
	_c.mutation.SetTenantID(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *PayoutBatchCreate) SetStatus(v payoutbatch.Status) *PayoutBatchCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *PayoutBatchCreate) SetNillableStatus(v *payoutbatch.Status) *PayoutBatchCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetTotalSats sets the "total_sats" field.
func (_c *PayoutBatchCreate) SetTotalSats(v int64) *PayoutBatchCreate {
	_c.mutation.SetTotalSats(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PayoutBatchCreate) SetCreatedAt(v time.Time) *PayoutBatchCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PayoutBatchCreate) SetNillableCreatedAt(v *time.Time) *PayoutBatchCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *PayoutBatchCreate) SetUpdatedAt(v time.Time) *PayoutBatchCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *PayoutBatchCreate) SetNillableUpdatedAt(v *time.Time) *PayoutBatchCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the PayoutBatchMutation object of the builder.
func (_c *PayoutBatchCreate) Mutation() *PayoutBatchMutation {
	return _c.mutation
}

// Save creates the PayoutBatch in the database.
func (_c *PayoutBatchCreate) Save(ctx context.Context) (*PayoutBatch, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PayoutBatchCreate) SaveX(ctx context.Context) *PayoutBatch {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PayoutBatchCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PayoutBatchCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PayoutBatchCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := payoutbatch.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := payoutbatch.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := payoutbatch.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PayoutBatchCreate) check() error {
	if _, ok := _c.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "PayoutBatch.tenant_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "PayoutBatch.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := payoutbatch.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PayoutBatch.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TotalSats(); !ok {
		return &ValidationError{Name: "total_sats", err: errors.New(`ent: missing required field "PayoutBatch.total_sats"`)}
	}
	if v, ok := _c.mutation.TotalSats(); ok {
		if err := payoutbatch.TotalSatsValidator(v); err != nil {
			return &ValidationError{Name: "total_sats", err: fmt.Errorf(`ent: validator failed for field "PayoutBatch.total_sats": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "PayoutBatch.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "PayoutBatch.updated_at"`)}
	}
	return nil
}

func (_c *PayoutBatchCreate) sqlSave(ctx context.Context) (*PayoutBatch, error) {
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

func (_c *PayoutBatchCreate) createSpec() (*PayoutBatch, *sqlgraph.CreateSpec) {
	var (
		_node = &PayoutBatch{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(payoutbatch.Table, sqlgraph.NewFieldSpec(payoutbatch.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.TenantID(); ok {
		_spec.SetField(payoutbatch.FieldTenantID, field.TypeInt, value)
		_node.TenantID = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(payoutbatch.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.TotalSats(); ok {
		_spec.SetField(payoutbatch.FieldTotalSats, field.TypeInt64, value)
		_node.TotalSats = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(payoutbatch.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(payoutbatch.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// PayoutBatchCreateBulk is the builder for creating many PayoutBatch entities in bulk.
type PayoutBatchCreateBulk struct {
	config
	err      error
	builders []*PayoutBatchCreate
}

// Save creates the PayoutBatch entities in the database.
func (_c *PayoutBatchCreateBulk) Save(ctx context.Context) ([]*PayoutBatch, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PayoutBatch, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PayoutBatchMutation)
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
func (_c *PayoutBatchCreateBulk) SaveX(ctx context.Context) []*PayoutBatch {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PayoutBatchCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PayoutBatchCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
