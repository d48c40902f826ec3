// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/quillgate/quillgate/ent/contenttype"
	"github.com/quillgate/quillgate/ent/predicate"
)

// ContentTypeUpdate is the builder for updating ContentType entities.
type ContentTypeUpdate struct {
	config
	hooks    []Hook
	mutation *ContentTypeMutation
}

// Where appends a list predicates to the ContentTypeUpdate builder.
func (_u *ContentTypeUpdate) Where(ps ...predicate.ContentType) *ContentTypeUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *ContentTypeUpdate) SetName(v string) *ContentTypeUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ContentTypeUpdate) SetNillableName(v *string) *ContentTypeUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetSlug sets the "slug" field.
func (_u *ContentTypeUpdate) SetSlug(v string) *ContentTypeUpdate {
	_u.mutation.SetSlug(v)
	return _u
}

// SetNillableSlug sets the "slug" field if the given value is not nil.
func (_u *ContentTypeUpdate) SetNillableSlug(v *string) *ContentTypeUpdate {
	if v != nil {
		_u.SetSlug(*v)
	}
	return _u
}

// SetSchema sets the "schema" field.
func (_u *ContentTypeUpdate) SetSchema(v string) *ContentTypeUpdate {
	_u.mutation.SetSchema(v)
	return _u
}

// SetNillableSchema sets the "schema" field if the given value is not nil.
func (_u *ContentTypeUpdate) SetNillableSchema(v *string) *ContentTypeUpdate {
	if v != nil {
		_u.SetSchema(*v)
	}
	return _u
}

// SetBasePriceSats sets the "base_price_sats" field.
func (_u *ContentTypeUpdate) SetBasePriceSats(v int64) *ContentTypeUpdate {
	_u.mutation.ResetBasePriceSats()
	_u.mutation.SetBasePriceSats(v)
	return _u
}

// SetNillableBasePriceSats sets the "base_price_sats" field if the given value is not nil.
func (_u *ContentTypeUpdate) SetNillableBasePriceSats(v *int64) *ContentTypeUpdate {
	if v != nil {
		_u.SetBasePriceSats(*v)
	}
	return _u
}

// AddBasePriceSats adds value to the "base_price_sats" field.
func (_u *ContentTypeUpdate) AddBasePriceSats(v int64) *ContentTypeUpdate {
	_u.mutation.AddBasePriceSats(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ContentTypeUpdate) SetUpdatedAt(v time.Time) *ContentTypeUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ContentTypeMutation object of the builder.
func (_u *ContentTypeUpdate) Mutation() *ContentTypeMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ContentTypeUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ContentTypeUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ContentTypeUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ContentTypeUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ContentTypeUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := contenttype.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ContentTypeUpdate) check() error {
	if v, ok := _u.mutation.BasePriceSats(); ok {
		if err := contenttype.BasePriceSatsValidator(v); err != nil {
			return &ValidationError{Name: "base_price_sats", err: fmt.Errorf(`ent: validator failed for field "ContentType.base_price_sats": %w`, err)}
		}
	}
	return nil
}

func (_u *ContentTypeUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(contenttype.Table, contenttype.Columns, sqlgraph.NewFieldSpec(contenttype.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(contenttype.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Slug(); ok {
		_spec.SetField(contenttype.FieldSlug, field.TypeString, value)
	}
	if value, ok := _u.mutation.Schema(); ok {
		_spec.SetField(contenttype.FieldSchema, field.TypeString, value)
	}
	if value, ok := _u.mutation.BasePriceSats(); ok {
		_spec.SetField(contenttype.FieldBasePriceSats, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedBasePriceSats(); ok {
		_spec.AddField(contenttype.FieldBasePriceSats, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(contenttype.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{contenttype.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ContentTypeUpdateOne is the builder for updating a single ContentType entity.
type ContentTypeUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ContentTypeMutation
}

// SetName sets the "name" field.
func (_u *ContentTypeUpdateOne) SetName(v string) *ContentTypeUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ContentTypeUpdateOne) SetNillableName(v *string) *ContentTypeUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetSlug sets the "slug" field.
func (_u *ContentTypeUpdateOne) SetSlug(v string) *ContentTypeUpdateOne {
	_u.mutation.SetSlug(v)
	return _u
}

// SetNillableSlug sets the "slug" field if the given value is not nil.
func (_u *ContentTypeUpdateOne) SetNillableSlug(v *string) *ContentTypeUpdateOne {
	if v != nil {
		_u.SetSlug(*v)
	}
	return _u
}

// SetSchema sets the "schema" field.
func (_u *ContentTypeUpdateOne) SetSchema(v string) *ContentTypeUpdateOne {
	_u.mutation.SetSchema(v)
	return _u
}

// SetNillableSchema sets the "schema" field if the given value is not nil.
func (_u *ContentTypeUpdateOne) SetNillableSchema(v *string) *ContentTypeUpdateOne {
	if v != nil {
		_u.SetSchema(*v)
	}
	return _u
}

// SetBasePriceSats sets the "base_price_sats" field.
func (_u *ContentTypeUpdateOne) SetBasePriceSats(v int64) *ContentTypeUpdateOne {
	_u.mutation.ResetBasePriceSats()
	_u.mutation.SetBasePriceSats(v)
	return _u
}

// SetNillableBasePriceSats sets the "base_price_sats" field if the given value is not nil.
func (_u *ContentTypeUpdateOne) SetNillableBasePriceSats(v *int64) *ContentTypeUpdateOne {
	if v != nil {
		_u.SetBasePriceSats(*v)
	}
	return _u
}

// AddBasePriceSats adds value to the "base_price_sats" field.
func (_u *ContentTypeUpdateOne) AddBasePriceSats(v int64) *ContentTypeUpdateOne {
	_u.mutation.AddBasePriceSats(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ContentTypeUpdateOne) SetUpdatedAt(v time.Time) *ContentTypeUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ContentTypeMutation object of the builder.
func (_u *ContentTypeUpdateOne) Mutation() *ContentTypeMutation {
	return _u.mutation
}

// Where appends a list predicates to the ContentTypeUpdate builder.
func (_u *ContentTypeUpdateOne) Where(ps ...predicate.ContentType) *ContentTypeUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ContentTypeUpdateOne) Select(field string, fields ...string) *ContentTypeUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ContentType entity.
func (_u *ContentTypeUpdateOne) Save(ctx context.Context) (*ContentType, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ContentTypeUpdateOne) SaveX(ctx context.Context) *ContentType {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ContentTypeUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ContentTypeUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ContentTypeUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := contenttype.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ContentTypeUpdateOne) check() error {
	if v, ok := _u.mutation.BasePriceSats(); ok {
		if err := contenttype.BasePriceSatsValidator(v); err != nil {
			return &ValidationError{Name: "base_price_sats", err: fmt.Errorf(`ent: validator failed for field "ContentType.base_price_sats": %w`, err)}
		}
	}
	return nil
}

func (_u *ContentTypeUpdateOne) sqlSave(ctx context.Context) (_node *ContentType, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(contenttype.Table, contenttype.Columns, sqlgraph.NewFieldSpec(contenttype.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ContentType.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, contenttype.FieldID)
		for _, f := range fields {
			if !contenttype.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != contenttype.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(contenttype.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Slug(); ok {
		_spec.SetField(contenttype.FieldSlug, field.TypeString, value)
	}
	if value, ok := _u.mutation.Schema(); ok {
		_spec.SetField(contenttype.FieldSchema, field.TypeString, value)
	}
	if value, ok := _u.mutation.BasePriceSats(); ok {
		_spec.SetField(contenttype.FieldBasePriceSats, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedBasePriceSats(); ok {
		_spec.AddField(contenttype.FieldBasePriceSats, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(contenttype.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &ContentType{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{contenttype.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
