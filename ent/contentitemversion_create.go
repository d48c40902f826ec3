// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/quillgate/quillgate/ent/contentitemversion"
)

// ContentItemVersionCreate is the builder for creating a ContentItemVersion entity.
type ContentItemVersionCreate struct {
	config
	mutation *ContentItemVersionMutation
	hooks    []Hook
}

// SetTenantID sets the "tenant_id" field.
func (_c *ContentItemVersionCreate) SetTenantID(v int) *ContentItemVersionCreate {
	_c.mutation.SetTenantID(v)
	return _c
}

// SetContentItemID sets the "content_item_id" field.
func (_c *ContentItemVersionCreate) SetContentItemID(v int) *ContentItemVersionCreate {
	_c.mutation.SetContentItemID(v)
	return _c
}

// SetData sets the "data" field.
func (_c *ContentItemVersionCreate) SetData(v string) *ContentItemVersionCreate {
	_c.mutation.SetData(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ContentItemVersionCreate) SetStatus(v contentitemversion.Status) *ContentItemVersionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetVersion sets the "version" field.
func (_c *ContentItemVersionCreate) SetVersion(v int) *ContentItemVersionCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ContentItemVersionCreate) SetCreatedAt(v time.Time) *ContentItemVersionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ContentItemVersionCreate) SetNillableCreatedAt(v *time.Time) *ContentItemVersionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the ContentItemVersionMutation object of the builder.
func (_c *ContentItemVersionCreate) Mutation() *ContentItemVersionMutation {
	return _c.mutation
}

// Save creates the ContentItemVersion in the database.
func (_c *ContentItemVersionCreate) Save(ctx context.Context) (*ContentItemVersion, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ContentItemVersionCreate) SaveX(ctx context.Context) *ContentItemVersion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ContentItemVersionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ContentItemVersionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ContentItemVersionCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := contentitemversion.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ContentItemVersionCreate) check() error {
	if _, ok := _c.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "ContentItemVersion.tenant_id"`)}
	}
	if _, ok := _c.mutation.ContentItemID(); !ok {
		return &ValidationError{Name: "content_item_id", err: errors.New(`ent: missing required field "ContentItemVersion.content_item_id"`)}
	}
	if _, ok := _c.mutation.Data(); !ok {
		return &ValidationError{Name: "data", err: errors.New(`ent: missing required field "ContentItemVersion.data"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ContentItemVersion.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := contentitemversion.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ContentItemVersion.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "ContentItemVersion.version"`)}
	}
	if v, ok := _c.mutation.Version(); ok {
		if err := contentitemversion.VersionValidator(v); err != nil {
			return &ValidationError{Name: "version", err: fmt.Errorf(`ent: validator failed for field "ContentItemVersion.version": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ContentItemVersion.created_at"`)}
	}
	return nil
}

func (_c *ContentItemVersionCreate) sqlSave(ctx context.Context) (*ContentItemVersion, error) {
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

func (_c *ContentItemVersionCreate) createSpec() (*ContentItemVersion, *sqlgraph.CreateSpec) {
	var (
		_node = &ContentItemVersion{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(contentitemversion.Table, sqlgraph.NewFieldSpec(contentitemversion.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.TenantID(); ok {
		_spec.SetField(contentitemversion.FieldTenantID, field.TypeInt, value)
		_node.TenantID = value
	}
	if value, ok := _c.mutation.ContentItemID(); ok {
		_spec.SetField(contentitemversion.FieldContentItemID, field.TypeInt, value)
		_node.ContentItemID = value
	}
	if value, ok := _c.mutation.Data(); ok {
		_spec.SetField(contentitemversion.FieldData, field.TypeString, value)
		_node.Data = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(contentitemversion.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(contentitemversion.FieldVersion, field.TypeInt, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(contentitemversion.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// ContentItemVersionCreateBulk is the builder for creating many ContentItemVersion entities in bulk.
type ContentItemVersionCreateBulk struct {
	config
	err      error
	builders []*ContentItemVersionCreate
}

// Save creates the ContentItemVersion entities in the database.
func (_c *ContentItemVersionCreateBulk) Save(ctx context.Context) ([]*ContentItemVersion, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ContentItemVersion, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ContentItemVersionMutation)
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
func (_c *ContentItemVersionCreateBulk) SaveX(ctx context.Context) []*ContentItemVersion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ContentItemVersionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ContentItemVersionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
