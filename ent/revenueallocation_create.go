// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/quillgate/quillgate/ent/revenueallocation"
)

// RevenueAllocationCreate is the builder for creating a RevenueAllocation entity.
type RevenueAllocationCreate struct {
	config
	mutation *RevenueAllocationMutation
	hooks    []Hook
}

// SetTenantID sets the "tenant_id" field.
func (_c *RevenueAllocationCreate) SetTenantID(v int) *RevenueAllocationCreate {
	_c.mutation.SetTenantID(v)
	return _c
}

// SetEventID sets the "event_id" field.
func (_c *RevenueAllocationCreate) SetEventID(v int) *RevenueAllocationCreate {
	_c.mutation.SetEventID(v)
	return _c
}

// SetAgentProfileID sets the "agent_profile_id" field.
func (_c *RevenueAllocationCreate) SetAgentProfileID(v string) *RevenueAllocationCreate {
	_c.mutation.SetAgentProfileID(v)
	return _c
}

// SetAmountSats sets the "amount_sats" field.
func (_c *RevenueAllocationCreate) SetAmountSats(v int64) *RevenueAllocationCreate {
	_c.mutation.SetAmountSats(v)
	return _c
}

// SetBasisPoints sets the "basis_points" field.
func (_c *RevenueAllocationCreate) SetBasisPoints(v int) *RevenueAllocationCreate {
	_c.mutation.SetBasisPoints(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *RevenueAllocationCreate) SetStatus(v revenueallocation.Status) *RevenueAllocationCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *RevenueAllocationCreate) SetNillableStatus(v *revenueallocation.Status) *RevenueAllocationCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetClearedAt sets the "cleared_at" field.
func (_c *RevenueAllocationCreate) SetClearedAt(v time.Time) *RevenueAllocationCreate {
	_c.mutation.SetClearedAt(v)
	return _c
}

// SetNillableClearedAt sets the "cleared_at" field if the given value is not nil.
func (_c *RevenueAllocationCreate) SetNillableClearedAt(v *time.Time) *RevenueAllocationCreate {
	if v != nil {
		_c.SetClearedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *RevenueAllocationCreate) SetCreatedAt(v time.Time) *RevenueAllocationCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *RevenueAllocationCreate) SetNillableCreatedAt(v *time.Time) *RevenueAllocationCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the RevenueAllocationMutation object of the builder.
func (_c *RevenueAllocationCreate) Mutation() *RevenueAllocationMutation {
	return _c.mutation
}

// Save creates the RevenueAllocation in the database.
func (_c *RevenueAllocationCreate) Save(ctx context.Context) (*RevenueAllocation, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RevenueAllocationCreate) SaveX(ctx context.Context) *RevenueAllocation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RevenueAllocationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RevenueAllocationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RevenueAllocationCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := revenueallocation.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := revenueallocation.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RevenueAllocationCreate) check() error {
	if _, ok := _c.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "RevenueAllocation.tenant_id"`)}
	}
	if _, ok := _c.mutation.EventID(); !ok {
		return &ValidationError{Name: "event_id", err: errors.New(`ent: missing required field "RevenueAllocation.event_id"`)}
	}
	if _, ok := _c.mutation.AgentProfileID(); !ok {
		return &ValidationError{Name: "agent_profile_id", err: errors.New(`ent: missing required field "RevenueAllocation.agent_profile_id"`)}
	}
	if _, ok := _c.mutation.AmountSats(); !ok {
		return &ValidationError{Name: "amount_sats", err: errors.New(`ent: missing required field "RevenueAllocation.amount_sats"`)}
	}
	if v, ok := _c.mutation.AmountSats(); ok {
		if err := revenueallocation.AmountSatsValidator(v); err != nil {
			return &ValidationError{Name: "amount_sats", err: fmt.Errorf(`ent: validator failed for field "RevenueAllocation.amount_sats": %w`, err)}
		}
	}
	if _, ok := _c.mutation.BasisPoints(); !ok {
		return &ValidationError{Name: "basis_points", err: errors.New(`ent: missing required field "RevenueAllocation.basis_points"`)}
	}
	if v, ok := _c.mutation.BasisPoints(); ok {
		if err := revenueallocation.BasisPointsValidator(v); err != nil {
			return &ValidationError{Name: "basis_points", err: fmt.Errorf(`ent: validator failed for field "RevenueAllocation.basis_points": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "RevenueAllocation.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := revenueallocation.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "RevenueAllocation.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "RevenueAllocation.created_at"`)}
	}
	return nil
}

func (_c *RevenueAllocationCreate) sqlSave(ctx context.Context) (*RevenueAllocation, error) {
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

func (_c *RevenueAllocationCreate) createSpec() (*RevenueAllocation, *sqlgraph.CreateSpec) {
	var (
		_node = &RevenueAllocation{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(revenueallocation.Table, sqlgraph.NewFieldSpec(revenueallocation.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.TenantID(); ok {
		_spec.SetField(revenueallocation.FieldTenantID, field.TypeInt, value)
		_node.TenantID = value
	}
	if value, ok := _c.mutation.EventID(); ok {
		_spec.SetField(revenueallocation.FieldEventID, field.TypeInt, value)
		_node.EventID = value
	}
	if value, ok := _c.mutation.AgentProfileID(); ok {
		_spec.SetField(revenueallocation.FieldAgentProfileID, field.TypeString, value)
		_node.AgentProfileID = value
	}
	if value, ok := _c.mutation.AmountSats(); ok {
		_spec.SetField(revenueallocation.FieldAmountSats, field.TypeInt64, value)
		_node.AmountSats = value
	}
	if value, ok := _c.mutation.BasisPoints(); ok {
		_spec.SetField(revenueallocation.FieldBasisPoints, field.TypeInt, value)
		_node.BasisPoints = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(revenueallocation.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ClearedAt(); ok {
		_spec.SetField(revenueallocation.FieldClearedAt, field.TypeTime, value)
		_node.ClearedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(revenueallocation.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// RevenueAllocationCreateBulk is the builder for creating many RevenueAllocation entities in bulk.
type RevenueAllocationCreateBulk struct {
	config
	err      error
	builders []*RevenueAllocationCreate
}

// Save creates the RevenueAllocation entities in the database.
func (_c *RevenueAllocationCreateBulk) Save(ctx context.Context) ([]*RevenueAllocation, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*RevenueAllocation, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RevenueAllocationMutation)
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
func (_c *RevenueAllocationCreateBulk) SaveX(ctx context.Context) []*RevenueAllocation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RevenueAllocationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RevenueAllocationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
