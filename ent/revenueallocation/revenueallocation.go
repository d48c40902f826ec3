// Code generated by ent, DO NOT EDIT.

package revenueallocation

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the revenueallocation type in the database.
	Label = "revenue_allocation"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldTenantID holds the string denoting the tenant_id field in the database.
	FieldTenantID = "tenant_id"
	// FieldEventID holds the string denoting the event_id field in the database.
	FieldEventID = "event_id"
	// FieldAgentProfileID holds the string denoting the agent_profile_id field in the database.
	FieldAgentProfileID = "agent_profile_id"
	// FieldAmountSats holds the string denoting the amount_sats field in the database.
	FieldAmountSats = "amount_sats"
	// FieldBasisPoints holds the string denoting the basis_points field in the database.
	FieldBasisPoints = "basis_points"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldClearedAt holds the string denoting the cleared_at field in the database.
	FieldClearedAt = "cleared_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the revenueallocation in the database.
	Table = "revenue_allocations"
)

// Columns holds all SQL columns for revenueallocation fields.
var Columns = []string{
	FieldID,
	FieldTenantID,
	FieldEventID,
	FieldAgentProfileID,
	FieldAmountSats,
	FieldBasisPoints,
	FieldStatus,
	FieldClearedAt,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// AmountSatsValidator is a validator for the "amount_sats" field. It is called by the builders before save.
	AmountSatsValidator func(int64) error
	// BasisPointsValidator is a validator for the "basis_points" field. It is called by the builders before save.
	BasisPointsValidator func(int) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending  Status = "pending"
	StatusCleared  Status = "cleared"
	StatusReversed Status = "reversed"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusCleared, StatusReversed:
		return nil
	default:
		return fmt.Errorf("revenueallocation: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the RevenueAllocation queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTenantID orders the results by the tenant_id field.
func ByTenantID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTenantID, opts...).ToFunc()
}

// ByEventID orders the results by the event_id field.
func ByEventID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEventID, opts...).ToFunc()
}

// ByAgentProfileID orders the results by the agent_profile_id field.
func ByAgentProfileID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgentProfileID, opts...).ToFunc()
}

// ByAmountSats orders the results by the amount_sats field.
func ByAmountSats(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAmountSats, opts...).ToFunc()
}

// ByBasisPoints orders the results by the basis_points field.
func ByBasisPoints(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBasisPoints, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByClearedAt orders the results by the cleared_at field.
func ByClearedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClearedAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
