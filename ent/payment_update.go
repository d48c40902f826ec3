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
	"github.com/quillgate/quillgate/ent/payment"
	"github.com/quillgate/quillgate/ent/predicate"
)

// PaymentUpdate is the builder for updating Payment entities.
type PaymentUpdate struct {
	config
	hooks    []Hook
	mutation *PaymentMutation
}

// Where appends a list predicates to the PaymentUpdate builder.
func (_u *PaymentUpdate) Where(ps ...predicate.Payment) *PaymentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProviderInvoiceID sets the "provider_invoice_id" field.
func (_u *PaymentUpdate) SetProviderInvoiceID(v string) *PaymentUpdate {
	_u.mutation.SetProviderInvoiceID(v)
	return _u
}

// SetNillableProviderInvoiceID sets the "provider_invoice_id" field if the given value is not nil.
func (_u *PaymentUpdate) SetNillableProviderInvoiceID(v *string) *PaymentUpdate {
	if v != nil {
		_u.SetProviderInvoiceID(*v)
	}
	return _u
}

// ClearProviderInvoiceID clears the value of the "provider_invoice_id" field.
func (_u *PaymentUpdate) ClearProviderInvoiceID() *PaymentUpdate {
	_u.mutation.ClearProviderInvoiceID()
	return _u
}

// SetStatus sets the "status" field.
func (_u *PaymentUpdate) SetStatus(v payment.Status) *PaymentUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PaymentUpdate) SetNillableStatus(v *payment.Status) *PaymentUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetSettledAt sets the "settled_at" field.
func (_u *PaymentUpdate) SetSettledAt(v time.Time) *PaymentUpdate {
	_u.mutation.SetSettledAt(v)
	return _u
}

// SetNillableSettledAt sets the "settled_at" field if the given value is not nil.
func (_u *PaymentUpdate) SetNillableSettledAt(v *time.Time) *PaymentUpdate {
	if v != nil {
		_u.SetSettledAt(*v)
	}
	return _u
}

// ClearSettledAt clears the value of the "settled_at" field.
func (_u *PaymentUpdate) ClearSettledAt() *PaymentUpdate {
	_u.mutation.ClearSettledAt()
	return _u
}

// SetFailureReason sets the "failure_reason" field.
func (_u *PaymentUpdate) SetFailureReason(v string) *PaymentUpdate {
	_u.mutation.SetFailureReason(v)
	return _u
}

// SetNillableFailureReason sets the "failure_reason" field if the given value is not nil.
func (_u *PaymentUpdate) SetNillableFailureReason(v *string) *PaymentUpdate {
	if v != nil {
		_u.SetFailureReason(*v)
	}
	return _u
}

// ClearFailureReason clears the value of the "failure_reason" field.
func (_u *PaymentUpdate) ClearFailureReason() *PaymentUpdate {
	_u.mutation.ClearFailureReason()
	return _u
}

// SetLastEventID sets the "last_event_id" field.
func (_u *PaymentUpdate) SetLastEventID(v string) *PaymentUpdate {
	_u.mutation.SetLastEventID(v)
	return _u
}

// SetNillableLastEventID sets the "last_event_id" field if the given value is not nil.
func (_u *PaymentUpdate) SetNillableLastEventID(v *string) *PaymentUpdate {
	if v != nil {
		_u.SetLastEventID(*v)
	}
	return _u
}

// ClearLastEventID clears the value of the "last_event_id" field.
func (_u *PaymentUpdate) ClearLastEventID() *PaymentUpdate {
	_u.mutation.ClearLastEventID()
	return _u
}

// SetDetails sets the "details" field.
func (_u *PaymentUpdate) SetDetails(v map[string]interface{}) *PaymentUpdate {
	_u.mutation.SetDetails(v)
	return _u
}

// ClearDetails clears the value of the "details" field.
func (_u *PaymentUpdate) ClearDetails() *PaymentUpdate {
	_u.mutation.ClearDetails()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PaymentUpdate) SetUpdatedAt(v time.Time) *PaymentUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the PaymentMutation object of the builder.
func (_u *PaymentUpdate) Mutation() *PaymentMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PaymentUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PaymentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PaymentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PaymentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PaymentUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := payment.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PaymentUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := payment.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Payment.status": %w`, err)}
		}
	}
	return nil
}

func (_u *PaymentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(payment.Table, payment.Columns, sqlgraph.NewFieldSpec(payment.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ProviderInvoiceID(); ok {
		_spec.SetField(payment.FieldProviderInvoiceID, field.TypeString, value)
	}
	if _u.mutation.ProviderInvoiceIDCleared() {
		_spec.ClearField(payment.FieldProviderInvoiceID, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(payment.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SettledAt(); ok {
		_spec.SetField(payment.FieldSettledAt, field.TypeTime, value)
	}
	if _u.mutation.SettledAtCleared() {
		_spec.ClearField(payment.FieldSettledAt, field.TypeTime)
	}
	if value, ok := _u.mutation.FailureReason(); ok {
		_spec.SetField(payment.FieldFailureReason, field.TypeString, value)
	}
	if _u.mutation.FailureReasonCleared() {
		_spec.ClearField(payment.FieldFailureReason, field.TypeString)
	}
	if value, ok := _u.mutation.LastEventID(); ok {
		_spec.SetField(payment.FieldLastEventID, field.TypeString, value)
	}
	if _u.mutation.LastEventIDCleared() {
		_spec.ClearField(payment.FieldLastEventID, field.TypeString)
	}
	if value, ok := _u.mutation.Details(); ok {
		_spec.SetField(payment.FieldDetails, field.TypeJSON, value)
	}
	if _u.mutation.DetailsCleared() {
		_spec.ClearField(payment.FieldDetails, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(payment.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{payment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PaymentUpdateOne is the builder for updating a single Payment entity.
type PaymentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PaymentMutation
}

// SetProviderInvoiceID sets the "provider_invoice_id" field.
func (_u *PaymentUpdateOne) SetProviderInvoiceID(v string) *PaymentUpdateOne {
	_u.mutation.SetProviderInvoiceID(v)
	return _u
}

// SetNillableProviderInvoiceID sets the "provider_invoice_id" field if the given value is not nil.
func (_u *PaymentUpdateOne) SetNillableProviderInvoiceID(v *string) *PaymentUpdateOne {
	if v != nil {
		_u.SetProviderInvoiceID(*v)
	}
	return _u
}

// ClearProviderInvoiceID clears the value of the "provider_invoice_id" field.
func (_u *PaymentUpdateOne) ClearProviderInvoiceID() *PaymentUpdateOne {
	_u.mutation.ClearProviderInvoiceID()
	return _u
}

// SetStatus sets the "status" field.
func (_u *PaymentUpdateOne) SetStatus(v payment.Status) *PaymentUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PaymentUpdateOne) SetNillableStatus(v *payment.Status) *PaymentUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetSettledAt sets the "settled_at" field.
func (_u *PaymentUpdateOne) SetSettledAt(v time.Time) *PaymentUpdateOne {
	_u.mutation.SetSettledAt(v)
	return _u
}

// SetNillableSettledAt sets the "settled_at" field if the given value is not nil.
func (_u *PaymentUpdateOne) SetNillableSettledAt(v *time.Time) *PaymentUpdateOne {
	if v != nil {
		_u.SetSettledAt(*v)
	}
	return _u
}

// ClearSettledAt clears the value of the "settled_at" field.
func (_u *PaymentUpdateOne) ClearSettledAt() *PaymentUpdateOne {
	_u.mutation.ClearSettledAt()
	return _u
}

// SetFailureReason sets the "failure_reason" field.
func (_u *PaymentUpdateOne) SetFailureReason(v string) *PaymentUpdateOne {
	_u.mutation.SetFailureReason(v)
	return _u
}

// SetNillableFailureReason sets the "failure_reason" field if the given value is not nil.
func (_u *PaymentUpdateOne) SetNillableFailureReason(v *string) *PaymentUpdateOne {
	if v != nil {
		_u.SetFailureReason(*v)
	}
	return _u
}

// ClearFailureReason clears the value of the "failure_reason" field.
func (_u *PaymentUpdateOne) ClearFailureReason() *PaymentUpdateOne {
	_u.mutation.ClearFailureReason()
	return _u
}

// SetLastEventID sets the "last_event_id" field.
func (_u *PaymentUpdateOne) SetLastEventID(v string) *PaymentUpdateOne {
	_u.mutation.SetLastEventID(v)
	return _u
}

// SetNillableLastEventID sets the "last_event_id" field if the given value is not nil.
func (_u *PaymentUpdateOne) SetNillableLastEventID(v *string) *PaymentUpdateOne {
	if v != nil {
		_u.SetLastEventID(*v)
	}
	return _u
}

// ClearLastEventID clears the value of the "last_event_id" field.
func (_u *PaymentUpdateOne) ClearLastEventID() *PaymentUpdateOne {
	_u.mutation.ClearLastEventID()
	return _u
}

// SetDetails sets the "details" field.
func (_u *PaymentUpdateOne) SetDetails(v map[string]interface{}) *PaymentUpdateOne {
	_u.mutation.SetDetails(v)
	return _u
}

// ClearDetails clears the value of the "details" field.
func (_u *PaymentUpdateOne) ClearDetails() *PaymentUpdateOne {
	_u.mutation.ClearDetails()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PaymentUpdateOne) SetUpdatedAt(v time.Time) *PaymentUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the PaymentMutation object of the builder.
func (_u *PaymentUpdateOne) Mutation() *PaymentMutation {
	return _u.mutation
}

// Where appends a list predicates to the PaymentUpdate builder.
func (_u *PaymentUpdateOne) Where(ps ...predicate.Payment) *PaymentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PaymentUpdateOne) Select(field string, fields ...string) *PaymentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Payment entity.
func (_u *PaymentUpdateOne) Save(ctx context.Context) (*Payment, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PaymentUpdateOne) SaveX(ctx context.Context) *Payment {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PaymentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PaymentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PaymentUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := payment.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PaymentUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := payment.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Payment.status": %w`, err)}
		}
	}
	return nil
}

func (_u *PaymentUpdateOne) sqlSave(ctx context.Context) (_node *Payment, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(payment.Table, payment.Columns, sqlgraph.NewFieldSpec(payment.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Payment.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, payment.FieldID)
		for _, f := range fields {
			if !payment.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != payment.FieldID {
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
	if value, ok := _u.mutation.ProviderInvoiceID(); ok {
		_spec.SetField(payment.FieldProviderInvoiceID, field.TypeString, value)
	}
	if _u.mutation.ProviderInvoiceIDCleared() {
		_spec.ClearField(payment.FieldProviderInvoiceID, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(payment.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SettledAt(); ok {
		_spec.SetField(payment.FieldSettledAt, field.TypeTime, value)
	}
	if _u.mutation.SettledAtCleared() {
		_spec.ClearField(payment.FieldSettledAt, field.TypeTime)
	}
	if value, ok := _u.mutation.FailureReason(); ok {
		_spec.SetField(payment.FieldFailureReason, field.TypeString, value)
	}
	if _u.mutation.FailureReasonCleared() {
		_spec.ClearField(payment.FieldFailureReason, field.TypeString)
	}
	if value, ok := _u.mutation.LastEventID(); ok {
		_spec.SetField(payment.FieldLastEventID, field.TypeString, value)
	}
	if _u.mutation.LastEventIDCleared() {
		_spec.ClearField(payment.FieldLastEventID, field.TypeString)
	}
	if value, ok := _u.mutation.Details(); ok {
		_spec.SetField(payment.FieldDetails, field.TypeJSON, value)
	}
	if _u.mutation.DetailsCleared() {
		_spec.ClearField(payment.FieldDetails, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(payment.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Payment{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{payment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
