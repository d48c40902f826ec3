// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/quillgate/quillgate/ent/revenueevent"
)

// RevenueEvent is the model entity for the RevenueEvent schema.
type RevenueEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// TenantID holds the value of the "tenant_id" field.
	TenantID int `json:"tenant_id,omitempty"`
	// PaymentID holds the value of the "payment_id" field.
	PaymentID int `json:"payment_id,omitempty"`
	// GrossSats holds the value of the "gross_sats" field.
	GrossSats int64 `json:"gross_sats,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*RevenueEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case revenueevent.FieldID, revenueevent.FieldTenantID, revenueevent.FieldPaymentID, revenueevent.FieldGrossSats:
			values[i] = new(sql.NullInt64)
		case revenueevent.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the RevenueEvent fields.
func (_m *RevenueEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case revenueevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case revenueevent.FieldTenantID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field tenant_id", values[i])
			} else if value.Valid {
				_m.TenantID = int(value.Int64)
			}
		case revenueevent.FieldPaymentID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field payment_id", values[i])
			} else if value.Valid {
				_m.PaymentID = int(value.Int64)
			}
		case revenueevent.FieldGrossSats:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field gross_sats", values[i])
			} else if value.Valid {
				_m.GrossSats = value.Int64
			}
		case revenueevent.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the RevenueEvent.
// This includes values selected through modifiers, order, etc.
func (_m *RevenueEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this RevenueEvent.
// Note that you need to call RevenueEvent.Unwrap() before calling this method if this RevenueEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *RevenueEvent) Update() *RevenueEventUpdateOne {
	return NewRevenueEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the RevenueEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *RevenueEvent) Unwrap() *RevenueEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: RevenueEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *RevenueEvent) String() string {
	var builder strings.Builder
	builder.WriteString("RevenueEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("tenant_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.TenantID))
	builder.WriteString(", ")
	builder.WriteString("payment_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.PaymentID))
	builder.WriteString(", ")
	builder.WriteString("gross_sats=")
	builder.WriteString(fmt.Sprintf("%v", _m.GrossSats))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// RevenueEvents is a parsable slice of RevenueEvent.
type RevenueEvents []*RevenueEvent
