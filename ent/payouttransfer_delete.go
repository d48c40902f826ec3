// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/quillgate/quillgate/ent/payouttransfer"
	"github.com/quillgate/quillgate/ent/predicate"
)

// PayoutTransferDelete is the builder for deleting a PayoutTransfer entity.
type PayoutTransferDelete struct {
	config
	hooks    []Hook
	mutation *PayoutTransferMutation
}

// Where appends a list predicates to the PayoutTransferDelete builder.
func (_d *PayoutTransferDelete) Where(ps ...predicate.PayoutTransfer) *PayoutTransferDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *PayoutTransferDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *PayoutTransferDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *PayoutTransferDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(payouttransfer.Table, sqlgraph.NewFieldSpec(payouttransfer.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// PayoutTransferDeleteOne is the builder for deleting a single PayoutTransfer entity.
type PayoutTransferDeleteOne struct {
	_d *PayoutTransferDelete
}

// Where appends a list predicates to the PayoutTransferDelete builder.
func (_d *PayoutTransferDeleteOne) Where(ps ...predicate.PayoutTransfer) *PayoutTransferDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *PayoutTransferDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{payouttransfer.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *PayoutTransferDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
