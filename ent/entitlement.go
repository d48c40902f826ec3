// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/quillgate/quillgate/ent/entitlement"
)

// Entitlement is the model entity for the Entitlement schema.
type Entitlement struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// TenantID holds the value of the "tenant_id" field.
	TenantID int `json:"tenant_id,omitempty"`
	// Content type the grant covers
	OfferID int `json:"offer_id,omitempty"`
	// PolicyID holds the value of the "policy_id" field.
	PolicyID string `json:"policy_id,omitempty"`
	// PolicyVersion holds the value of the "policy_version" field.
	PolicyVersion int `json:"policy_version,omitempty"`
	// AgentProfileID holds the value of the "agent_profile_id" field.
	AgentProfileID string `json:"agent_profile_id,omitempty"`
	// PaymentHash holds the value of the "payment_hash" field.
	PaymentHash string `json:"payment_hash,omitempty"`
	// Status holds the value of the "status" field.
	Status entitlement.Status `json:"status,omitempty"`
	// nil = unlimited
	RemainingReads *int `json:"remaining_reads,omitempty"`
	// ExpiresAt holds the value of the "expires_at" field.
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	// ActivatedAt holds the value of the "activated_at" field.
	ActivatedAt *time.Time `json:"activated_at,omitempty"`
	// TerminatedAt holds the value of the "terminated_at" field.
	TerminatedAt *time.Time `json:"terminated_at,omitempty"`
	// DelegatedFrom holds the value of the "delegated_from" field.
	DelegatedFrom *int `json:"delegated_from,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Entitlement) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case entitlement.FieldID, entitlement.FieldTenantID, entitlement.FieldOfferID, entitlement.FieldPolicyVersion, entitlement.FieldRemainingReads, entitlement.FieldDelegatedFrom:
			values[i] = new(sql.NullInt64)
		case entitlement.FieldPolicyID, entitlement.FieldAgentProfileID, entitlement.FieldPaymentHash, entitlement.FieldStatus:
			values[i] = new(sql.NullString)
		case entitlement.FieldExpiresAt, entitlement.FieldActivatedAt, entitlement.FieldTerminatedAt, entitlement.FieldCreatedAt, entitlement.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Entitlement fields.
func (_m *Entitlement) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case entitlement.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case entitlement.FieldTenantID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field tenant_id", values[i])
			} else if value.Valid {
				_m.TenantID = int(value.Int64)
			}
		case entitlement.FieldOfferID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field offer_id", values[i])
			} else if value.Valid {
				_m.OfferID = int(value.Int64)
			}
		case entitlement.FieldPolicyID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field policy_id", values[i])
			} else if value.Valid {
				_m.PolicyID = value.String
			}
		case entitlement.FieldPolicyVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field policy_version", values[i])
			} else if value.Valid {
				_m.PolicyVersion = int(value.Int64)
			}
		case entitlement.FieldAgentProfileID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field agent_profile_id", values[i])
			} else if value.Valid {
				_m.AgentProfileID = value.String
			}
		case entitlement.FieldPaymentHash:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field payment_hash", values[i])
			} else if value.Valid {
				_m.PaymentHash = value.String
			}
		case entitlement.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = entitlement.Status(value.String)
			}
		case entitlement.FieldRemainingReads:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field remaining_reads", values[i])
			} else if value.Valid {
				_m.RemainingReads = new(int)
				*_m.RemainingReads = int(value.Int64)
			}
		case entitlement.FieldExpiresAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field expires_at", values[i])
			} else if value.Valid {
				_m.ExpiresAt = new(time.Time)
				*_m.ExpiresAt = value.Time
			}
		case entitlement.FieldActivatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field activated_at", values[i])
			} else if value.Valid {
				_m.ActivatedAt = new(time.Time)
				*_m.ActivatedAt = value.Time
			}
		case entitlement.FieldTerminatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field terminated_at", values[i])
			} else if value.Valid {
				_m.TerminatedAt = new(time.Time)
				*_m.TerminatedAt = value.Time
			}
		case entitlement.FieldDelegatedFrom:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field delegated_from", values[i])
			} else if value.Valid {
				_m.DelegatedFrom = new(int)
				*_m.DelegatedFrom = int(value.Int64)
			}
		case entitlement.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case entitlement.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Entitlement.
// This includes values selected through modifiers, order, etc.
func (_m *Entitlement) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Entitlement.
// Note that you need to call Entitlement.Unwrap() before calling this method if this Entitlement
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Entitlement) Update() *EntitlementUpdateOne {
	return NewEntitlementClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Entitlement entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Entitlement) Unwrap() *Entitlement {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Entitlement is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Entitlement) String() string {
	var builder strings.Builder
	builder.WriteString("Entitlement(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("tenant_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.TenantID))
	builder.WriteString(", ")
	builder.WriteString("offer_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.OfferID))
	builder.WriteString(", ")
	builder.WriteString("policy_id=")
	builder.WriteString(_m.PolicyID)
	builder.WriteString(", ")
	builder.WriteString("policy_version=")
	builder.WriteString(fmt.Sprintf("%v", _m.PolicyVersion))
	builder.WriteString(", ")
	builder.WriteString("agent_profile_id=")
	builder.WriteString(_m.AgentProfileID)
	builder.WriteString(", ")
	builder.WriteString("payment_hash=")
	builder.WriteString(_m.PaymentHash)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.RemainingReads; v != nil {
		builder.WriteString("remaining_reads=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.ExpiresAt; v != nil {
		builder.WriteString("expires_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.ActivatedAt; v != nil {
		builder.WriteString("activated_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.TerminatedAt; v != nil {
		builder.WriteString("terminated_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.DelegatedFrom; v != nil {
		builder.WriteString("delegated_from=")
		builder.WriteString(fmt.Sprintf("%v", *v))
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

// Entitlements is a parsable slice of Entitlement.
type Entitlements []*Entitlement
