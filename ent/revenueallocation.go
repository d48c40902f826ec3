// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/quillgate/quillgate/ent/revenueallocation"
)

// RevenueAllocation is the model entity for the RevenueAllocation schema.
type RevenueAllocation struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// TenantID holds the value of the "tenant_id" field.
	TenantID int `json:"tenant_id,omitempty"`
	// EventID holds the value of the "event_id" field.
	EventID int `json:"event_id,omitempty"`
	// AgentProfileID holds the value of the "agent_profile_id" field.
	AgentProfileID string `json:"agent_profile_id,omitempty"`
	// AmountSats holds the value of the "amount_sats" field.
	AmountSats int64 `json:"amount_sats,omitempty"`
	// BasisPoints holds the value of the "basis_points" field.
	BasisPoints int `json:"basis_points,omitempty"`
	// Status holds the value of the "status" field.
	Status revenueallocation.Status `json:"status,omitempty"`
	// ClearedAt holds the value of the "cleared_at" field.
	ClearedAt *time.Time `json:"cleared_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*RevenueAllocation) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case revenueallocation.FieldID, revenueallocation.FieldTenantID, revenueallocation.FieldEventID, revenueallocation.FieldAmountSats, revenueallocation.FieldBasisPoints:
			values[i] = new(sql.NullInt64)
		case revenueallocation.FieldAgentProfileID, revenueallocation.FieldStatus:
			values[i] = new(sql.NullString)
		case revenueallocation.FieldClearedAt, revenueallocation.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the RevenueAllocation fields.
func (_m *RevenueAllocation) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case revenueallocation.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case revenueallocation.FieldTenantID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field tenant_id", values[i])
			} else if value.Valid {
				_m.TenantID = int(value.Int64)
			}
		case revenueallocation.FieldEventID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field event_id", values[i])
			} else if value.Valid {
				_m.EventID = int(value.Int64)
			}
		case revenueallocation.FieldAgentProfileID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field agent_profile_id", values[i])
			} else if value.Valid {
				_m.AgentProfileID = value.String
			}
		case revenueallocation.FieldAmountSats:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field amount_sats", values[i])
			} else if value.Valid {
				_m.AmountSats = value.Int64
			}
		case revenueallocation.FieldBasisPoints:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field basis_points", values[i])
			} else if value.Valid {
				_m.BasisPoints = int(value.Int64)
			}
		case revenueallocation.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = revenueallocation.Status(value.String)
			}
		case revenueallocation.FieldClearedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field cleared_at", values[i])
			} else if value.Valid {
				_m.ClearedAt = new(time.Time)
				*_m.ClearedAt = value.Time
			}
		case revenueallocation.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the RevenueAllocation.
// This includes values selected through modifiers, order, etc.
func (_m *RevenueAllocation) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this RevenueAllocation.
// Note that you need to call RevenueAllocation.Unwrap() before calling this method if this RevenueAllocation
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *RevenueAllocation) Update() *RevenueAllocationUpdateOne {
	return NewRevenueAllocationClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the RevenueAllocation entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *RevenueAllocation) Unwrap() *RevenueAllocation {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: RevenueAllocation is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *RevenueAllocation) String() string {
	var builder strings.Builder
	builder.WriteString("RevenueAllocation(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("tenant_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.TenantID))
	builder.WriteString(", ")
	builder.WriteString("event_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.EventID))
	builder.WriteString(", ")
	builder.WriteString("agent_profile_id=")
	builder.WriteString(_m.AgentProfileID)
	builder.WriteString(", ")
	builder.WriteString("amount_sats=")
	builder.WriteString(fmt.Sprintf("%v", _m.AmountSats))
	builder.WriteString(", ")
	builder.WriteString("basis_points=")
	builder.WriteString(fmt.Sprintf("%v", _m.BasisPoints))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.ClearedAt; v != nil {
		builder.WriteString("cleared_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// RevenueAllocations is a parsable slice of RevenueAllocation.
type RevenueAllocations []*RevenueAllocation
