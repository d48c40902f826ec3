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
	"github.com/quillgate/quillgate/ent/predicate"
	"github.com/quillgate/quillgate/ent/revenueallocation"
)

// RevenueAllocationUpdate is the builder for updating RevenueAllocation entities.
type RevenueAllocationUpdate struct {
	config
	hooks    []Hook
	mutation *RevenueAllocationMutation
}

// Where appends a list predicates to the RevenueAllocationUpdate builder.
func (_u *RevenueAllocationUpdate) Where(ps ...predicate.RevenueAllocation) *RevenueAllocationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStatus sets the "status" field.
func (_u *RevenueAllocationUpdate) SetStatus(v revenueallocation.Status) *RevenueAllocationUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *RevenueAllocationUpdate) SetNillableStatus(v *revenueallocation.Status) *RevenueAllocationUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetClearedAt sets the "cleared_at" field.
func (_u *RevenueAllocationUpdate) SetClearedAt(v time.Time) *RevenueAllocationUpdate {
	_u.mutation.SetClearedAt(v)
	return _u
}

// SetNillableClearedAt sets the "cleared_at" field if the given value is not nil.
func (_u *RevenueAllocationUpdate) SetNillableClearedAt(v *time.Time) *RevenueAllocationUpdate {
	if v != nil {
		_u.SetClearedAt(*v)
	}
	return _u
}

// ClearClearedAt clears the value of the "cleared_at" field.
func (_u *RevenueAllocationUpdate) ClearClearedAt() *RevenueAllocationUpdate {
	_u.mutation.ClearClearedAt()
	return _u
}

// Mutation returns the RevenueAllocationMutation object of the builder.
func (_u *RevenueAllocationUpdate) Mutation() *RevenueAllocationMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RevenueAllocationUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RevenueAllocationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RevenueAllocationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RevenueAllocationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RevenueAllocationUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := revenueallocation.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "RevenueAllocation.status": %w`, err)}
		}
	}
	return nil
}

func (_u *RevenueAllocationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(revenueallocation.Table, revenueallocation.Columns, sqlgraph.NewFieldSpec(revenueallocation.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(revenueallocation.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ClearedAt(); ok {
		_spec.SetField(revenueallocation.FieldClearedAt, field.TypeTime, value)
	}
	if _u.mutation.ClearedAtCleared() {
		_spec.ClearField(revenueallocation.FieldClearedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{revenueallocation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RevenueAllocationUpdateOne is the builder for updating a single RevenueAllocation entity.
type RevenueAllocationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RevenueAllocationMutation
}

// SetStatus sets the "status" field.
func (_u *RevenueAllocationUpdateOne) SetStatus(v revenueallocation.Status) *RevenueAllocationUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *RevenueAllocationUpdateOne) SetNillableStatus(v *revenueallocation.Status) *RevenueAllocationUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetClearedAt sets the "cleared_at" field.
func (_u *RevenueAllocationUpdateOne) SetClearedAt(v time.Time) *RevenueAllocationUpdateOne {
	_u.mutation.SetClearedAt(v)
	return _u
}

// SetNillableClearedAt sets the "cleared_at" field if the given value is not nil.
func (_u *RevenueAllocationUpdateOne) SetNillableClearedAt(v *time.Time) *RevenueAllocationUpdateOne {
	if v != nil {
		_u.SetClearedAt(*v)
	}
	return _u
}

// ClearClearedAt clears the value of the "cleared_at" field.
func (_u *RevenueAllocationUpdateOne) ClearClearedAt() *RevenueAllocationUpdateOne {
	_u.mutation.ClearClearedAt()
	return _u
}

// Mutation returns the RevenueAllocationMutation object of the builder.
func (_u *RevenueAllocationUpdateOne) Mutation() *RevenueAllocationMutation {
	return _u.mutation
}

// Where appends a list predicates to the RevenueAllocationUpdate builder.
func (_u *RevenueAllocationUpdateOne) Where(ps ...predicate.RevenueAllocation) *RevenueAllocationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RevenueAllocationUpdateOne) Select(field string, fields ...string) *RevenueAllocationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated RevenueAllocation entity.
func (_u *RevenueAllocationUpdateOne) Save(ctx context.Context) (*RevenueAllocation, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RevenueAllocationUpdateOne) SaveX(ctx context.Context) *RevenueAllocation {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RevenueAllocationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RevenueAllocationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RevenueAllocationUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := revenueallocation.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "RevenueAllocation.status": %w`, err)}
		}
	}
	return nil
}

func (_u *RevenueAllocationUpdateOne) sqlSave(ctx context.Context) (_node *RevenueAllocation, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(revenueallocation.Table, revenueallocation.Columns, sqlgraph.NewFieldSpec(revenueallocation.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "RevenueAllocation.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, revenueallocation.FieldID)
		for _, f := range fields {
			if !revenueallocation.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != revenueallocation.FieldID {
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
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(revenueallocation.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ClearedAt(); ok {
		_spec.SetField(revenueallocation.FieldClearedAt, field.TypeTime, value)
	}
	if _u.mutation.ClearedAtCleared() {
		_spec.ClearField(revenueallocation.FieldClearedAt, field.TypeTime)
	}
	_node = &RevenueAllocation{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{revenueallocation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
