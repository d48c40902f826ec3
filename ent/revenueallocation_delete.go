// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/quillgate/quillgate/ent/predicate"
	"github.com/quillgate/quillgate/ent/revenueallocation"
)

// RevenueAllocationDelete is the builder for deleting a RevenueAllocation entity.
type RevenueAllocationDelete struct {
	config
	hooks    []Hook
	mutation *RevenueAllocationMutation
}

// Where appends a list predicates to the RevenueAllocationDelete builder.
func (_d *RevenueAllocationDelete) Where(ps ...predicate.RevenueAllocation) *RevenueAllocationDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *RevenueAllocationDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *RevenueAllocationDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *RevenueAllocationDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(revenueallocation.Table, sqlgraph.NewFieldSpec(revenueallocation.FieldID, field.TypeInt))
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

// RevenueAllocationDeleteOne is the builder for deleting a single RevenueAllocation entity.
type RevenueAllocationDeleteOne struct {
	_d *RevenueAllocationDelete
}

// Where appends a list predicates to the RevenueAllocationDelete builder.
func (_d *RevenueAllocationDeleteOne) Where(ps ...predicate.RevenueAllocation) *RevenueAllocationDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *RevenueAllocationDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{revenueallocation.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *RevenueAllocationDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
