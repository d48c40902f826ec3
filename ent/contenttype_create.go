// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/quillgate/quillgate/ent/contenttype"
)

// ContentTypeCreate is the builder for creating a ContentType entity.
type ContentTypeCreate struct {
	config
	mutation *ContentTypeMutation
	hooks    []Hook
}

// SetTenantID sets the "tenant_id" field.
func (_c *ContentTypeCreate) SetTenantID(v int) *ContentTypeCreate {
	_c.mutation.SetTenantID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *ContentTypeCreate) SetName(v string) *ContentTypeCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetSlug sets the "slug" field.
func (_c *ContentTypeCreate) SetSlug(v string) *ContentTypeCreate {
	_c.mutation.SetSlug(v)
	return _c
}

// SetSchema sets the "schema" field.
func (_c *ContentTypeCreate) SetSchema(v string) *ContentTypeCreate {
	_c.mutation.SetSchema(v)
	return _c
}

// SetBasePriceSats sets the "base_price_sats" field.
func (_c *ContentTypeCreate) SetBasePriceSats(v int64) *ContentTypeCreate {
	_c.mutation.SetBasePriceSats(v)
	return _c
}

// SetNillableBasePriceSats sets the "base_price_sats" field if the given value is not nil.
func (_c *ContentTypeCreate) SetNillableBasePriceSats(v *int64) *ContentTypeCreate {
	if v != nil {
		_c.SetBasePriceSats(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ContentTypeCreate) SetCreatedAt(v time.Time) *ContentTypeCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ContentTypeCreate) SetNillableCreatedAt(v *time.Time) *ContentTypeCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ContentTypeCreate) SetUpdatedAt(v time.Time) *ContentTypeCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ContentTypeCreate) SetNillableUpdatedAt(v *time.Time) *ContentTypeCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the ContentTypeMutation object of the builder.
func (_c *ContentTypeCreate) Mutation() *ContentTypeMutation {
	return _c.mutation
}

// Save creates the ContentType in the database.
func (_c *ContentTypeCreate) Save(ctx context.Context) (*ContentType, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ContentTypeCreate) SaveX(ctx context.Context) *ContentType {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ContentTypeCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ContentTypeCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ContentTypeCreate) defaults() {
	if _, ok := _c.mutation.BasePriceSats(); !ok {
		v := contenttype.DefaultBasePriceSats
		_c.mutation.SetBasePriceSats(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := contenttype.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := contenttype.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ContentTypeCreate) check() error {
	if _, ok := _c.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "ContentType.tenant_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "ContentType.name"`)}
	}
	if _, ok := _c.mutation.Slug(); !ok {
		return &ValidationError{Name: "slug", err: errors.New(`ent: missing required field "ContentType.slug"`)}
	}
	if _, ok := _c.mutation.Schema(); !ok {
		return &ValidationError{Name: "schema", err: errors.New(`ent: missing required field "ContentType.schema"`)}
	}
	if _, ok := _c.mutation.BasePriceSats(); !ok {
		return &ValidationError{Name: "base_price_sats", err: errors.New(`ent: missing required field "ContentType.base_price_sats"`)}
	}
	if v, ok := _c.mutation.BasePriceSats(); ok {
		if err := contenttype.BasePriceSatsValidator(v); err != nil {
			return &ValidationError{Name: "base_price_sats", err: fmt.Errorf(`ent: validator failed for field "ContentType.base_price_sats": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ContentType.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ContentType.updated_at"`)}
	}
	return nil
}

func (_c *ContentTypeCreate) sqlSave(ctx context.Context) (*ContentType, error) {
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

func (_c *ContentTypeCreate) createSpec() (*ContentType, *sqlgraph.CreateSpec) {
	var (
		_node = &ContentType{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(contenttype.Table, sqlgraph.NewFieldSpec(contenttype.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.TenantID(); ok {
		_spec.SetField(contenttype.FieldTenantID, field.TypeInt, value)
		_node.TenantID = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(contenttype.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Slug(); ok {
		_spec.SetField(contenttype.FieldSlug, field.TypeString, value)
		_node.Slug = value
	}
	if value, ok := _c.mutation.Schema(); ok {
		_spec.SetField(contenttype.FieldSchema, field.TypeString, value)
		_node.Schema = value
	}
	if value, ok := _c.mutation.BasePriceSats(); ok {
		_spec.SetField(contenttype.FieldBasePriceSats, field.TypeInt64, value)
		_node.BasePriceSats = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(contenttype.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(contenttype.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// ContentTypeCreateBulk is the builder for creating many ContentType entities in bulk.
type ContentTypeCreateBulk struct {
	config
	err      error
	builders []*ContentTypeCreate
}

// Save creates the ContentType entities in the database.
func (_c *ContentTypeCreateBulk) Save(ctx context.Context) ([]*ContentType, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ContentType, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ContentTypeMutation)
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
func (_c *ContentTypeCreateBulk) SaveX(ctx context.Context) []*ContentType {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ContentTypeCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ContentTypeCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
