// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/quillgate/quillgate/ent/policydecision"
)

// PolicyDecisionCreate is the builder for creating a PolicyDecision entity.
type PolicyDecisionCreate struct {
	config
	mutation *PolicyDecisionMutation
	hooks    []Hook
}

// SetTenantID sets the "tenant_id" field.
func (_c *PolicyDecisionCreate) SetTenantID(v int) *PolicyDecisionCreate {
	_c.mutation.SetTenantID(v)
	return _c
}

// SetRequestID sets the "request_id" field.
func (_c *PolicyDecisionCreate) SetRequestID(v string) *PolicyDecisionCreate {
	_c.mutation.SetRequestID(v)
	return _c
}

// SetActorID sets the "actor_id" field.
func (_c *PolicyDecisionCreate) SetActorID(v string) *PolicyDecisionCreate {
	_c.mutation.SetActorID(v)
	return _c
}

// SetResource sets the "resource" field.
func (_c *PolicyDecisionCreate) SetResource(v string) *PolicyDecisionCreate {
	_c.mutation.SetResource(v)
	return _c
}

// SetAction sets the "action" field.
func (_c *PolicyDecisionCreate) SetAction(v string) *PolicyDecisionCreate {
	_c.mutation.SetAction(v)
	return _c
}

// SetDecision sets the "decision" field.
func (_c *PolicyDecisionCreate) SetDecision(v policydecision.Decision) *PolicyDecisionCreate {
	_c.mutation.SetDecision(v)
	return _c
}

// SetReason sets the "reason" field.
func (_c *PolicyDecisionCreate) SetReason(v string) *PolicyDecisionCreate {
	_c.mutation.SetReason(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PolicyDecisionCreate) SetCreatedAt(v time.Time) *PolicyDecisionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PolicyDecisionCreate) SetNillableCreatedAt(v *time.Time) *PolicyDecisionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the PolicyDecisionMutation object of the builder.
func (_c *PolicyDecisionCreate) Mutation() *PolicyDecisionMutation {
	return _c.mutation
}

// Save creates the PolicyDecision in the database.
func (_c *PolicyDecisionCreate) Save(ctx context.Context) (*PolicyDecision, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PolicyDecisionCreate) SaveX(ctx context.Context) *PolicyDecision {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PolicyDecisionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PolicyDecisionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PolicyDecisionCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := policydecision.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PolicyDecisionCreate) check() error {
	if _, ok := _c.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "PolicyDecision.tenant_id"`)}
	}
	if _, ok := _c.mutation.RequestID(); !ok {
		return &ValidationError{Name: "request_id", err: errors.New(`ent: missing required field "PolicyDecision.request_id"`)}
	}
	if _, ok := _c.mutation.ActorID(); !ok {
		return &ValidationError{Name: "actor_id", err: errors.New(`ent: missing required field "PolicyDecision.actor_id"`)}
	}
	if _, ok := _c.mutation.Resource(); !ok {
		return &ValidationError{Name: "resource", err: errors.New(`ent: missing required field "PolicyDecision.resource"`)}
	}
	if _, ok := _c.mutation.Action(); !ok {
		return &ValidationError{Name: "action", err: errors.New(`ent: missing required field "PolicyDecision.action"`)}
	}
	if _, ok := _c.mutation.Decision(); !ok {
		return &ValidationError{Name: "decision", err: errors.New(`ent: missing required field "PolicyDecision.decision"`)}
	}
	if v, ok := _c.mutation.Decision(); ok {
		if err := policydecision.DecisionValidator(v); err != nil {
			return &ValidationError{Name: "decision", err: fmt.Errorf(`ent: validator failed for field "PolicyDecision.decision": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Reason(); !ok {
		return &ValidationError{Name: "reason", err: errors.New(`ent: missing required field "PolicyDecision.reason"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "PolicyDecision.created_at"`)}
	}
	return nil
}

func (_c *PolicyDecisionCreate) sqlSave(ctx context.Context) (*PolicyDecision, error) {
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

func (_c *PolicyDecisionCreate) createSpec() (*PolicyDecision, *sqlgraph.CreateSpec) {
	var (
		_node = &PolicyDecision{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(policydecision.Table, sqlgraph.NewFieldSpec(policydecision.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.TenantID(); ok {
		_spec.SetField(policydecision.FieldTenantID, field.TypeInt, value)
		_node.TenantID = value
	}
	if value, ok := _c.mutation.RequestID(); ok {
		_spec.SetField(policydecision.FieldRequestID, field.TypeString, value)
		_node.RequestID = value
	}
	if value, ok := _c.mutation.ActorID(); ok {
		_spec.SetField(policydecision.FieldActorID, field.TypeString, value)
		_node.ActorID = value
	}
	if value, ok := _c.mutation.Resource(); ok {
		_spec.SetField(policydecision.FieldResource, field.TypeString, value)
		_node.Resource = value
	}
	if value, ok := _c.mutation.Action(); ok {
		_spec.SetField(policydecision.FieldAction, field.TypeString, value)
		_node.Action = value
	}
	if value, ok := _c.mutation.Decision(); ok {
		_spec.SetField(policydecision.FieldDecision, field.TypeEnum, value)
		_node.Decision = value
	}
	if value, ok := _c.mutation.Reason(); ok {
		_spec.SetField(policydecision.FieldReason, field.TypeString, value)
		_node.Reason = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(policydecision.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// PolicyDecisionCreateBulk is the builder for creating many PolicyDecision entities in bulk.
type PolicyDecisionCreateBulk struct {
	config
	err      error
	builders []*PolicyDecisionCreate
}

// Save creates the PolicyDecision entities in the database.
func (_c *PolicyDecisionCreateBulk) Save(ctx context.Context) ([]*PolicyDecision, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PolicyDecision, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PolicyDecisionMutation)
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
func (_c *PolicyDecisionCreateBulk) SaveX(ctx context.Context) []*PolicyDecision {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PolicyDecisionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PolicyDecisionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
