// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/quillgate/quillgate/ent/entitlement"
)

// EntitlementCreate is the builder for creating a Entitlement entity.
type EntitlementCreate struct {
	config
	mutation *EntitlementMutation
	hooks    []Hook
}

// SetTenantID sets the "tenant_id" field.
func (_c *EntitlementCreate) SetTenantID(v int) *EntitlementCreate {
	_c.mutation.SetTenantID(v)
	return _c
}

// SetOfferID sets the "offer_id" field.
func (_c *EntitlementCreate) SetOfferID(v int) *EntitlementCreate {
	_c.mutation.SetOfferID(v)
	return _c
}

// SetPolicyID sets the "policy_id" field.
func (_c *EntitlementCreate) SetPolicyID(v string) *EntitlementCreate {
	_c.mutation.SetPolicyID(v)
	return _c
}

// SetPolicyVersion sets the "policy_version" field.
func (_c *EntitlementCreate) SetPolicyVersion(v int) *EntitlementCreate {
	_c.mutation.SetPolicyVersion(v)
	return _c
}

// SetAgentProfileID sets the "agent_profile_id" field.
func (_c *EntitlementCreate) SetAgentProfileID(v string) *EntitlementCreate {
	_c.mutation.SetAgentProfileID(v)
	return _c
}

// SetPaymentHash sets the "payment_hash" field.
func (_c *EntitlementCreate) SetPaymentHash(v string) *EntitlementCreate {
	_c.mutation.SetPaymentHash(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *EntitlementCreate) SetStatus(v entitlement.Status) *EntitlementCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *EntitlementCreate) SetNillableStatus(v *entitlement.Status) *EntitlementCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetRemainingReads sets the "remaining_reads" field.
func (_c *EntitlementCreate) SetRemainingReads(v int) *EntitlementCreate {
	_c.mutation.SetRemainingReads(v)
	return _c
}

// SetNillableRemainingReads sets the "remaining_reads" field if the given value is not nil.
func (_c *EntitlementCreate) SetNillableRemainingReads(v *int) *EntitlementCreate {
	if v != nil {
		_c.SetRemainingReads(*v)
	}
	return _c
}

// SetExpiresAt sets the "expires_at" field.
func (_c *EntitlementCreate) SetExpiresAt(v time.Time) *EntitlementCreate {
	_c.mutation.SetExpiresAt(v)
	return _c
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_c *EntitlementCreate) SetNillableExpiresAt(v *time.Time) *EntitlementCreate {
	if v != nil {
		_c.SetExpiresAt(*v)
	}
	return _c
}

// SetActivatedAt sets the "activated_at" field.
func (_c *EntitlementCreate) SetActivatedAt(v time.Time) *EntitlementCreate {
	_c.mutation.SetActivatedAt(v)
	return _c
}

// SetNillableActivatedAt sets the "activated_at" field if the given value is not nil.
func (_c *EntitlementCreate) SetNillableActivatedAt(v *time.Time) *EntitlementCreate {
	if v != nil {
		_c.SetActivatedAt(*v)
	}
	return _c
}

// SetTerminatedAt sets the "terminated_at" field.
func (_c *EntitlementCreate) SetTerminatedAt(v time.Time) *EntitlementCreate {
	_c.mutation.SetTerminatedAt(v)
	return _c
}

// SetNillableTerminatedAt sets the "terminated_at" field if the given value is not nil.
func (_c *EntitlementCreate) SetNillableTerminatedAt(v *time.Time) *EntitlementCreate {
	if v != nil {
		_c.SetTerminatedAt(*v)
	}
	return _c
}

// SetDelegatedFrom sets the "delegated_from" field.
func (_c *EntitlementCreate) SetDelegatedFrom(v int) *EntitlementCreate {
	_c.mutation.SetDelegatedFrom(v)
	return _c
}

// SetNillableDelegatedFrom sets the "delegated_from" field if the given value is not nil.
func (_c *EntitlementCreate) SetNillableDelegatedFrom(v *int) *EntitlementCreate {
	if v != nil {
		_c.SetDelegatedFrom(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *EntitlementCreate) SetCreatedAt(v time.Time) *EntitlementCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *EntitlementCreate) SetNillableCreatedAt(v *time.Time) *EntitlementCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *EntitlementCreate) SetUpdatedAt(v time.Time) *EntitlementCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *EntitlementCreate) SetNillableUpdatedAt(v *time.Time) *EntitlementCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the EntitlementMutation object of the builder.
func (_c *EntitlementCreate) Mutation() *EntitlementMutation {
	return _c.mutation
}

// Save creates the Entitlement in the database.
func (_c *EntitlementCreate) Save(ctx context.Context) (*Entitlement, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EntitlementCreate) SaveX(ctx context.Context) *Entitlement {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EntitlementCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EntitlementCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EntitlementCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := entitlement.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := entitlement.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := entitlement.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EntitlementCreate) check() error {
	if _, ok := _c.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "Entitlement.tenant_id"`)}
	}
	if _, ok := _c.mutation.OfferID(); !ok {
		return &ValidationError{Name: "offer_id", err: errors.New(`ent: missing required field "Entitlement.offer_id"`)}
	}
	if _, ok := _c.mutation.PolicyID(); !ok {
		return &ValidationError{Name: "policy_id", err: errors.New(`ent: missing required field "Entitlement.policy_id"`)}
	}
	if _, ok := _c.mutation.PolicyVersion(); !ok {
		return &ValidationError{Name: "policy_version", err: errors.New(`ent: missing required field "Entitlement.policy_version"`)}
	}
	if _, ok := _c.mutation.AgentProfileID(); !ok {
		return &ValidationError{Name: "agent_profile_id", err: errors.New(`ent: missing required field "Entitlement.agent_profile_id"`)}
	}
	if _, ok := _c.mutation.PaymentHash(); !ok {
		return &ValidationError{Name: "payment_hash", err: errors.New(`ent: missing required field "Entitlement.payment_hash"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Entitlement.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := entitlement.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Entitlement.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Entitlement.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Entitlement.updated_at"`)}
	}
	return nil
}

func (_c *EntitlementCreate) sqlSave(ctx context.Context) (*Entitlement, error) {
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

func (_c *EntitlementCreate) createSpec() (*Entitlement, *sqlgraph.CreateSpec) {
	var (
		_node = &Entitlement{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(entitlement.Table, sqlgraph.NewFieldSpec(entitlement.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.TenantID(); ok {
		_spec.SetField(entitlement.FieldTenantID, field.TypeInt, value)
		_node.TenantID = value
	}
	if value, ok := _c.mutation.OfferID(); ok {
		_spec.SetField(entitlement.FieldOfferID, field.TypeInt, value)
		_node.OfferID = value
	}
	if value, ok := _c.mutation.PolicyID(); ok {
		_spec.SetField(entitlement.FieldPolicyID, field.TypeString, value)
		_node.PolicyID = value
	}
	if value, ok := _c.mutation.PolicyVersion(); ok {
		_spec.SetField(entitlement.FieldPolicyVersion, field.TypeInt, value)
		_node.PolicyVersion = value
	}
	if value, ok := _c.mutation.AgentProfileID(); ok {
		_spec.SetField(entitlement.FieldAgentProfileID, field.TypeString, value)
		_node.AgentProfileID = value
	}
	if value, ok := _c.mutation.PaymentHash(); ok {
		_spec.SetField(entitlement.FieldPaymentHash, field.TypeString, value)
		_node.PaymentHash = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(entitlement.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.RemainingReads(); ok {
		_spec.SetField(entitlement.FieldRemainingReads, field.TypeInt, value)
		_node.RemainingReads = &value
	}
	if value, ok := _c.mutation.ExpiresAt(); ok {
		_spec.SetField(entitlement.FieldExpiresAt, field.TypeTime, value)
		_node.ExpiresAt = &value
	}
	if value, ok := _c.mutation.ActivatedAt(); ok {
		_spec.SetField(entitlement.FieldActivatedAt, field.TypeTime, value)
		_node.ActivatedAt = &value
	}
	if value, ok := _c.mutation.TerminatedAt(); ok {
		_spec.SetField(entitlement.FieldTerminatedAt, field.TypeTime, value)
		_node.TerminatedAt = &value
	}
	if value, ok := _c.mutation.DelegatedFrom(); ok {
		_spec.SetField(entitlement.FieldDelegatedFrom, field.TypeInt, value)
		_node.DelegatedFrom = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(entitlement.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(entitlement.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// EntitlementCreateBulk is the builder for creating many Entitlement entities in bulk.
type EntitlementCreateBulk struct {
	config
	err      error
	builders []*EntitlementCreate
}

// Save creates the Entitlement entities in the database.
func (_c *EntitlementCreateBulk) Save(ctx context.Context) ([]*Entitlement, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Entitlement, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EntitlementMutation)
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
func (_c *EntitlementCreateBulk) SaveX(ctx context.Context) []*Entitlement {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EntitlementCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EntitlementCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
