// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/quillgate/quillgate/ent/payouttransfer"
)

// PayoutTransfer is the model entity for the PayoutTransfer schema.
type PayoutTransfer struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// TenantID holds the value of the "tenant_id" field.
	TenantID int `json:"tenant_id,omitempty"`
	// BatchID holds the value of the "batch_id" field.
	BatchID int `json:"batch_id,omitempty"`
	// AgentProfileID holds the value of the "agent_profile_id" field.
	AgentProfileID string `json:"agent_profile_id,omitempty"`
	// AmountSats holds the value of the "amount_sats" field.
	AmountSats int64 `json:"amount_sats,omitempty"`
	// Status holds the value of the "status" field.
	Status payouttransfer.Status `json:"status,omitempty"`
	// Attempts holds the value of the "attempts" field.
	Attempts int `json:"attempts,omitempty"`
	// LastError holds the value of the "last_error" field.
	LastError *string `json:"last_error,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PayoutTransfer) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case payouttransfer.FieldID, payouttransfer.FieldTenantID, payouttransfer.FieldBatchID, payouttransfer.FieldAmountSats, payouttransfer.FieldAttempts:
			values[i] = new(sql.NullInt64)
		case payouttransfer.FieldAgentProfileID, payouttransfer.FieldStatus, payouttransfer.FieldLastError:
			values[i] = new(sql.NullString)
		case payouttransfer.FieldCreatedAt, payouttransfer.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PayoutTransfer fields.
func (_m *PayoutTransfer) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case payouttransfer.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case payouttransfer.FieldTenantID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field tenant_id", values[i])
			} else if value.Valid {
				_m.TenantID = int(value.Int64)
			}
		case payouttransfer.FieldBatchID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field batch_id", values[i])
			} else if value.Valid {
				_m.BatchID = int(value.Int64)
			}
		case payouttransfer.FieldAgentProfileID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field agent_profile_id", values[i])
			} else if value.Valid {
				_m.AgentProfileID = value.String
			}
		case payouttransfer.FieldAmountSats:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field amount_sats", values[i])
			} else if value.Valid {
				_m.AmountSats = value.Int64
			}
		case payouttransfer.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = payouttransfer.Status(value.String)
			}
		case payouttransfer.FieldAttempts:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field attempts", values[i])
			} else if value.Valid {
				_m.Attempts = int(value.Int64)
			}
		case payouttransfer.FieldLastError:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field last_error", values[i])
			} else if value.Valid {
				_m.LastError = new(string)
				*_m.LastError = value.String
			}
		case payouttransfer.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case payouttransfer.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PayoutTransfer.
// This includes values selected through modifiers, order, etc.
func (_m *PayoutTransfer) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this PayoutTransfer.
// Note that you need to call PayoutTransfer.Unwrap() before calling this method if this PayoutTransfer
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PayoutTransfer) Update() *PayoutTransferUpdateOne {
	return NewPayoutTransferClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PayoutTransfer entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PayoutTransfer) Unwrap() *PayoutTransfer {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PayoutTransfer is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PayoutTransfer) String() string {
	var builder strings.Builder
	builder.WriteString("PayoutTransfer(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("tenant_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.TenantID))
	builder.WriteString(", ")
	builder.WriteString("batch_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.BatchID))
	builder.WriteString(", ")
	builder.WriteString("agent_profile_id=")
	builder.WriteString(_m.AgentProfileID)
	builder.WriteString(", ")
	builder.WriteString("amount_sats=")
	builder.WriteString(fmt.Sprintf("%v", _m.AmountSats))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("attempts=")
	builder.WriteString(fmt.Sprintf("%v", _m.Attempts))
	builder.WriteString(", ")
	if v := _m.LastError; v != nil {
		builder.WriteString("last_error=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// PayoutTransfers is a parsable slice of PayoutTransfer.
type PayoutTransfers []*PayoutTransfer
