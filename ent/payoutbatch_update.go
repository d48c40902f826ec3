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
	"github.com/quillgate/quillgate/ent/payoutbatch"
	"github.com/quillgate/quillgate/ent/predicate"
)

// PayoutBatchUpdate is the builder for updating PayoutBatch entities.
type PayoutBatchUpdate struct {
	config
	hooks    []Hook
	mutation *PayoutBatchMutation
}

// Where appends a list predicates to the PayoutBatchUpdate builder.
func (_u *PayoutBatchUpdate) Where(ps ...predicate.PayoutBatch) *PayoutBatchUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStatus sets the "status" field.
func (_u *PayoutBatchUpdate) SetStatus(v payoutbatch.Status) *PayoutBatchUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PayoutBatchUpdate) SetNillableStatus(v *payoutbatch.Status) *PayoutBatchUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTotalSats sets the "total_sats" field.
func (_u *PayoutBatchUpdate) SetTotalSats(v int64) *PayoutBatchUpdate {
	_u.mutation.ResetTotalSats()
	_u.mutation.SetTotalSats(v)
	return _u
}

// SetNillableTotalSats sets the "total_sats" field if the given value is not nil.
func (_u *PayoutBatchUpdate) SetNillableTotalSats(v *int64) *PayoutBatchUpdate {
	if v != nil {
		_u.SetTotalSats(*v)
	}
	return _u
}

// AddTotalSats adds value to the "total_sats" field.
func (_u *PayoutBatchUpdate) AddTotalSats(v int64) *PayoutBatchUpdate {
	_u.mutation.AddTotalSats(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PayoutBatchUpdate) SetUpdatedAt(v time.Time) *PayoutBatchUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the PayoutBatchMutation object of the builder.
func (_u *PayoutBatchUpdate) Mutation() *PayoutBatchMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PayoutBatchUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PayoutBatchUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PayoutBatchUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PayoutBatchUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PayoutBatchUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := payoutbatch.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PayoutBatchUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := payoutbatch.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PayoutBatch.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalSats(); ok {
		if err := payoutbatch.TotalSatsValidator(v); err != nil {
			return &ValidationError{Name: "total_sats", err: fmt.Errorf(`ent: validator failed for field "PayoutBatch.total_sats": %w`, err)}
		}
	}
	return nil
}

func (_u *PayoutBatchUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(payoutbatch.Table, payoutbatch.Columns, sqlgraph.NewFieldSpec(payoutbatch.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(payoutbatch.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TotalSats(); ok {
		_spec.SetField(payoutbatch.FieldTotalSats, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTotalSats(); ok {
		_spec.AddField(payoutbatch.FieldTotalSats, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(payoutbatch.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{payoutbatch.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PayoutBatchUpdateOne is the builder for updating a single PayoutBatch entity.
type PayoutBatchUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PayoutBatchMutation
}

// SetStatus sets the "status" field.
func (_u *PayoutBatchUpdateOne) SetStatus(v payoutbatch.Status) *PayoutBatchUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PayoutBatchUpdateOne) SetNillableStatus(v *payoutbatch.Status) *PayoutBatchUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTotalSats sets the "total_sats" field.
func (_u *PayoutBatchUpdateOne) SetTotalSats(v int64) *PayoutBatchUpdateOne {
	_u.mutation.ResetTotalSats()
	_u.mutation.SetTotalSats(v)
	return _u
}

// SetNillableTotalSats sets the "total_sats" field if the given value is not nil.
func (_u *PayoutBatchUpdateOne) SetNillableTotalSats(v *int64) *PayoutBatchUpdateOne {
	if v != nil {
		_u.SetTotalSats(*v)
	}
	return _u
}

// AddTotalSats adds value to the "total_sats" field.
func (_u *PayoutBatchUpdateOne) AddTotalSats(v int64) *PayoutBatchUpdateOne {
	_u.mutation.AddTotalSats(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PayoutBatchUpdateOne) SetUpdatedAt(v time.Time) *PayoutBatchUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the PayoutBatchMutation object of the builder.
func (_u *PayoutBatchUpdateOne) Mutation() *PayoutBatchMutation {
	return _u.mutation
}

// Where appends a list predicates to the PayoutBatchUpdate builder.
func (_u *PayoutBatchUpdateOne) Where(ps ...predicate.PayoutBatch) *PayoutBatchUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PayoutBatchUpdateOne) Select(field string, fields ...string) *PayoutBatchUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PayoutBatch entity.
func (_u *PayoutBatchUpdateOne) Save(ctx context.Context) (*PayoutBatch, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PayoutBatchUpdateOne) SaveX(ctx context.Context) *PayoutBatch {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PayoutBatchUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PayoutBatchUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PayoutBatchUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := payoutbatch.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PayoutBatchUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := payoutbatch.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PayoutBatch.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalSats(); ok {
		if err := payoutbatch.TotalSatsValidator(v); err != nil {
			return &ValidationError{Name: "total_sats", err: fmt.Errorf(`ent: validator failed for field "PayoutBatch.total_sats": %w`, err)}
		}
	}
	return nil
}

func (_u *PayoutBatchUpdateOne) sqlSave(ctx context.Context) (_node *PayoutBatch, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(payoutbatch.Table, payoutbatch.Columns, sqlgraph.NewFieldSpec(payoutbatch.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PayoutBatch.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, payoutbatch.FieldID)
		for _, f := range fields {
			if !payoutbatch.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != payoutbatch.FieldID {
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
		_spec.SetField(payoutbatch.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TotalSats(); ok {
		_spec.SetField(payoutbatch.FieldTotalSats, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTotalSats(); ok {
		_spec.AddField(payoutbatch.FieldTotalSats, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(payoutbatch.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &PayoutBatch{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{payoutbatch.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
