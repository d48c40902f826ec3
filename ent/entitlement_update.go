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
	"github.com/quillgate/quillgate/ent/entitlement"
	"github.com/quillgate/quillgate/ent/predicate"
)

// EntitlementUpdate is the builder for updating Entitlement entities.
type EntitlementUpdate struct {
	config
	hooks    []Hook
	mutation *EntitlementMutation
}

// Where appends a list predicates to the EntitlementUpdate builder.
func (_u *EntitlementUpdate) Where(ps ...predicate.Entitlement) *EntitlementUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStatus sets the "status" field.
func (_u *EntitlementUpdate) SetStatus(v entitlement.Status) *EntitlementUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *EntitlementUpdate) SetNillableStatus(v *entitlement.Status) *EntitlementUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetRemainingReads sets the "remaining_reads" field.
func (_u *EntitlementUpdate) SetRemainingReads(v int) *EntitlementUpdate {
	_u.mutation.ResetRemainingReads()
	_u.mutation.SetRemainingReads(v)
	return _u
}

// SetNillableRemainingReads sets the "remaining_reads" field if the given value is not nil.
func (_u *EntitlementUpdate) SetNillableRemainingReads(v *int) *EntitlementUpdate {
	if v != nil {
		_u.SetRemainingReads(*v)
	}
	return _u
}

// AddRemainingReads adds value to the "remaining_reads" field.
func (_u *EntitlementUpdate) AddRemainingReads(v int) *EntitlementUpdate {
	_u.mutation.AddRemainingReads(v)
	return _u
}

// ClearRemainingReads clears the value of the "remaining_reads" field.
func (_u *EntitlementUpdate) ClearRemainingReads() *EntitlementUpdate {
	_u.mutation.ClearRemainingReads()
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *EntitlementUpdate) SetExpiresAt(v time.Time) *EntitlementUpdate {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *EntitlementUpdate) SetNillableExpiresAt(v *time.Time) *EntitlementUpdate {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// ClearExpiresAt clears the value of the "expires_at" field.
func (_u *EntitlementUpdate) ClearExpiresAt() *EntitlementUpdate {
	_u.mutation.ClearExpiresAt()
	return _u
}

// SetActivatedAt sets the "activated_at" field.
func (_u *EntitlementUpdate) SetActivatedAt(v time.Time) *EntitlementUpdate {
	_u.mutation.SetActivatedAt(v)
	return _u
}

// SetNillableActivatedAt sets the "activated_at" field if the given value is not nil.
func (_u *EntitlementUpdate) SetNillableActivatedAt(v *time.Time) *EntitlementUpdate {
	if v != nil {
		_u.SetActivatedAt(*v)
	}
	return _u
}

// ClearActivatedAt clears the value of the "activated_at" field.
func (_u *EntitlementUpdate) ClearActivatedAt() *EntitlementUpdate {
	_u.mutation.ClearActivatedAt()
	return _u
}

// SetTerminatedAt sets the "terminated_at" field.
func (_u *EntitlementUpdate) SetTerminatedAt(v time.Time) *EntitlementUpdate {
	_u.mutation.SetTerminatedAt(v)
	return _u
}

// SetNillableTerminatedAt sets the "terminated_at" field if the given value is not nil.
func (_u *EntitlementUpdate) SetNillableTerminatedAt(v *time.Time) *EntitlementUpdate {
	if v != nil {
		_u.SetTerminatedAt(*v)
	}
	return _u
}

// ClearTerminatedAt clears the value of the "terminated_at" field.
func (_u *EntitlementUpdate) ClearTerminatedAt() *EntitlementUpdate {
	_u.mutation.ClearTerminatedAt()
	return _u
}

// SetDelegatedFrom sets the "delegated_from" field.
func (_u *EntitlementUpdate) SetDelegatedFrom(v int) *EntitlementUpdate {
	_u.mutation.ResetDelegatedFrom()
	_u.mutation.SetDelegatedFrom(v)
	return _u
}

// SetNillableDelegatedFrom sets the "delegated_from" field if the given value is not nil.
func (_u *EntitlementUpdate) SetNillableDelegatedFrom(v *int) *EntitlementUpdate {
	if v != nil {
		_u.SetDelegatedFrom(*v)
	}
	return _u
}

// AddDelegatedFrom adds value to the "delegated_from" field.
func (_u *EntitlementUpdate) AddDelegatedFrom(v int) *EntitlementUpdate {
	_u.mutation.AddDelegatedFrom(v)
	return _u
}

// ClearDelegatedFrom clears the value of the "delegated_from" field.
func (_u *EntitlementUpdate) ClearDelegatedFrom() *EntitlementUpdate {
	_u.mutation.ClearDelegatedFrom()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *EntitlementUpdate) SetUpdatedAt(v time.Time) *EntitlementUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the EntitlementMutation object of the builder.
func (_u *EntitlementUpdate) Mutation() *EntitlementMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EntitlementUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EntitlementUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EntitlementUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EntitlementUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *EntitlementUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := entitlement.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EntitlementUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := entitlement.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Entitlement.status": %w`, err)}
		}
	}
	return nil
}

func (_u *EntitlementUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(entitlement.Table, entitlement.Columns, sqlgraph.NewFieldSpec(entitlement.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(entitlement.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.RemainingReads(); ok {
		_spec.SetField(entitlement.FieldRemainingReads, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRemainingReads(); ok {
		_spec.AddField(entitlement.FieldRemainingReads, field.TypeInt, value)
	}
	if _u.mutation.RemainingReadsCleared() {
		_spec.ClearField(entitlement.FieldRemainingReads, field.TypeInt)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(entitlement.FieldExpiresAt, field.TypeTime, value)
	}
	if _u.mutation.ExpiresAtCleared() {
		_spec.ClearField(entitlement.FieldExpiresAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ActivatedAt(); ok {
		_spec.SetField(entitlement.FieldActivatedAt, field.TypeTime, value)
	}
	if _u.mutation.ActivatedAtCleared() {
		_spec.ClearField(entitlement.FieldActivatedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.TerminatedAt(); ok {
		_spec.SetField(entitlement.FieldTerminatedAt, field.TypeTime, value)
	}
	if _u.mutation.TerminatedAtCleared() {
		_spec.ClearField(entitlement.FieldTerminatedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DelegatedFrom(); ok {
		_spec.SetField(entitlement.FieldDelegatedFrom, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDelegatedFrom(); ok {
		_spec.AddField(entitlement.FieldDelegatedFrom, field.TypeInt, value)
	}
	if _u.mutation.DelegatedFromCleared() {
		_spec.ClearField(entitlement.FieldDelegatedFrom, field.TypeInt)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(entitlement.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{entitlement.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EntitlementUpdateOne is the builder for updating a single Entitlement entity.
type EntitlementUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EntitlementMutation
}

// SetStatus sets the "status" field.
func (_u *EntitlementUpdateOne) SetStatus(v entitlement.Status) *EntitlementUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *EntitlementUpdateOne) SetNillableStatus(v *entitlement.Status) *EntitlementUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetRemainingReads sets the "remaining_reads" field.
func (_u *EntitlementUpdateOne) SetRemainingReads(v int) *EntitlementUpdateOne {
	_u.mutation.ResetRemainingReads()
	_u.mutation.SetRemainingReads(v)
	return _u
}

// SetNillableRemainingReads sets the "remaining_reads" field if the given value is not nil.
func (_u *EntitlementUpdateOne) SetNillableRemainingReads(v *int) *EntitlementUpdateOne {
	if v != nil {
		_u.SetRemainingReads(*v)
	}
	return _u
}

// AddRemainingReads adds value to the "remaining_reads" field.
func (_u *EntitlementUpdateOne) AddRemainingReads(v int) *EntitlementUpdateOne {
	_u.mutation.AddRemainingReads(v)
	return _u
}

// ClearRemainingReads clears the value of the "remaining_reads" field.
func (_u *EntitlementUpdateOne) ClearRemainingReads() *EntitlementUpdateOne {
	_u.mutation.ClearRemainingReads()
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *EntitlementUpdateOne) SetExpiresAt(v time.Time) *EntitlementUpdateOne {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *EntitlementUpdateOne) SetNillableExpiresAt(v *time.Time) *EntitlementUpdateOne {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// ClearExpiresAt clears the value of the "expires_at" field.
func (_u *EntitlementUpdateOne) ClearExpiresAt() *EntitlementUpdateOne {
	_u.mutation.ClearExpiresAt()
	return _u
}

// SetActivatedAt sets the "activated_at" field.
func (_u *EntitlementUpdateOne) SetActivatedAt(v time.Time) *EntitlementUpdateOne {
	_u.mutation.SetActivatedAt(v)
	return _u
}

// SetNillableActivatedAt sets the "activated_at" field if the given value is not nil.
func (_u *EntitlementUpdateOne) SetNillableActivatedAt(v *time.Time) *EntitlementUpdateOne {
	if v != nil {
		_u.SetActivatedAt(*v)
	}
	return _u
}

// ClearActivatedAt clears the value of the "activated_at" field.
func (_u *EntitlementUpdateOne) ClearActivatedAt() *EntitlementUpdateOne {
	_u.mutation.ClearActivatedAt()
	return _u
}

// SetTerminatedAt sets the "terminated_at" field.
func (_u *EntitlementUpdateOne) SetTerminatedAt(v time.Time) *EntitlementUpdateOne {
	_u.mutation.SetTerminatedAt(v)
	return _u
}

// SetNillableTerminatedAt sets the "terminated_at" field if the given value is not nil.
func (_u *EntitlementUpdateOne) SetNillableTerminatedAt(v *time.Time) *EntitlementUpdateOne {
	if v != nil {
		_u.SetTerminatedAt(*v)
	}
	return _u
}

// ClearTerminatedAt clears the value of the "terminated_at" field.
func (_u *EntitlementUpdateOne) ClearTerminatedAt() *EntitlementUpdateOne {
	_u.mutation.ClearTerminatedAt()
	return _u
}

// SetDelegatedFrom sets the "delegated_from" field.
func (_u *EntitlementUpdateOne) SetDelegatedFrom(v int) *EntitlementUpdateOne {
	_u.mutation.ResetDelegatedFrom()
	_u.mutation.SetDelegatedFrom(v)
	return _u
}

// SetNillableDelegatedFrom sets the "delegated_from" field if the given value is not nil.
func (_u *EntitlementUpdateOne) SetNillableDelegatedFrom(v *int) *EntitlementUpdateOne {
	if v != nil {
		_u.SetDelegatedFrom(*v)
	}
	return _u
}

// AddDelegatedFrom adds value to the "delegated_from" field.
func (_u *EntitlementUpdateOne) AddDelegatedFrom(v int) *EntitlementUpdateOne {
	_u.mutation.AddDelegatedFrom(v)
	return _u
}

// ClearDelegatedFrom clears the value of the "delegated_from" field.
func (_u *EntitlementUpdateOne) ClearDelegatedFrom() *EntitlementUpdateOne {
	_u.mutation.ClearDelegatedFrom()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *EntitlementUpdateOne) SetUpdatedAt(v time.Time) *EntitlementUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the EntitlementMutation object of the builder.
func (_u *EntitlementUpdateOne) Mutation() *EntitlementMutation {
	return _u.mutation
}

// Where appends a list predicates to the EntitlementUpdate builder.
func (_u *EntitlementUpdateOne) Where(ps ...predicate.Entitlement) *EntitlementUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EntitlementUpdateOne) Select(field string, fields ...string) *EntitlementUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Entitlement entity.
func (_u *EntitlementUpdateOne) Save(ctx context.Context) (*Entitlement, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EntitlementUpdateOne) SaveX(ctx context.Context) *Entitlement {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EntitlementUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EntitlementUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *EntitlementUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := entitlement.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EntitlementUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := entitlement.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Entitlement.status": %w`, err)}
		}
	}
	return nil
}

func (_u *EntitlementUpdateOne) sqlSave(ctx context.Context) (_node *Entitlement, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(entitlement.Table, entitlement.Columns, sqlgraph.NewFieldSpec(entitlement.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Entitlement.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, entitlement.FieldID)
		for _, f := range fields {
			if !entitlement.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != entitlement.FieldID {
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
		_spec.SetField(entitlement.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.RemainingReads(); ok {
		_spec.SetField(entitlement.FieldRemainingReads, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRemainingReads(); ok {
		_spec.AddField(entitlement.FieldRemainingReads, field.TypeInt, value)
	}
	if _u.mutation.RemainingReadsCleared() {
		_spec.ClearField(entitlement.FieldRemainingReads, field.TypeInt)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(entitlement.FieldExpiresAt, field.TypeTime, value)
	}
	if _u.mutation.ExpiresAtCleared() {
		_spec.ClearField(entitlement.FieldExpiresAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ActivatedAt(); ok {
		_spec.SetField(entitlement.FieldActivatedAt, field.TypeTime, value)
	}
	if _u.mutation.ActivatedAtCleared() {
		_spec.ClearField(entitlement.FieldActivatedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.TerminatedAt(); ok {
		_spec.SetField(entitlement.FieldTerminatedAt, field.TypeTime, value)
	}
	if _u.mutation.TerminatedAtCleared() {
		_spec.ClearField(entitlement.FieldTerminatedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DelegatedFrom(); ok {
		_spec.SetField(entitlement.FieldDelegatedFrom, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDelegatedFrom(); ok {
		_spec.AddField(entitlement.FieldDelegatedFrom, field.TypeInt, value)
	}
	if _u.mutation.DelegatedFromCleared() {
		_spec.ClearField(entitlement.FieldDelegatedFrom, field.TypeInt)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(entitlement.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Entitlement{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{entitlement.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
