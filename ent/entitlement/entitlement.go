// Code generated by ent, DO NOT EDIT.

package entitlement

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the entitlement type in the database.
	Label = "entitlement"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldTenantID holds the string denoting the tenant_id field in the database.
	FieldTenantID = "tenant_id"
	// FieldOfferID holds the string denoting the offer_id field in the database.
	FieldOfferID = "offer_id"
	// FieldPolicyID holds the string denoting the policy_id field in the database.
	FieldPolicyID = "policy_id"
	// FieldPolicyVersion holds the string denoting the policy_version field in the database.
	FieldPolicyVersion = "policy_version"
	// FieldAgentProfileID holds the string denoting the agent_profile_id field in the database.
	FieldAgentProfileID = "agent_profile_id"
	// FieldPaymentHash holds the string denoting the payment_hash field in the database.
	FieldPaymentHash = "payment_hash"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldRemainingReads holds the string denoting the remaining_reads field in the database.
	FieldRemainingReads = "remaining_reads"
	// FieldExpiresAt holds the string denoting the expires_at field in the database.
	FieldExpiresAt = "expires_at"
	// FieldActivatedAt holds the string denoting the activated_at field in the database.
	FieldActivatedAt = "activated_at"
	// FieldTerminatedAt holds the string denoting the terminated_at field in the database.
	FieldTerminatedAt = "terminated_at"
	// FieldDelegatedFrom holds the string denoting the delegated_from field in the database.
	FieldDelegatedFrom = "delegated_from"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the entitlement in the database.
	Table = "entitlements"
)

// Columns holds all SQL columns for entitlement fields.
var Columns = []string{
	FieldID,
	FieldTenantID,
	FieldOfferID,
	FieldPolicyID,
	FieldPolicyVersion,
	FieldAgentProfileID,
	FieldPaymentHash,
	FieldStatus,
	FieldRemainingReads,
	FieldExpiresAt,
	FieldActivatedAt,
	FieldTerminatedAt,
	FieldDelegatedFrom,
	FieldCreatedAt,
	FieldUpdatedAt,
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
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusPendingPayment is the default value of the Status enum.
const DefaultStatus = StatusPendingPayment

// Status values.
const (
	StatusPendingPayment Status = "pending_payment"
	StatusActive         Status = "active"
	StatusExhausted      Status = "exhausted"
	StatusExpired        Status = "expired"
	StatusRevoked        Status = "revoked"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPendingPayment, StatusActive, StatusExhausted, StatusExpired, StatusRevoked:
		return nil
	default:
		return fmt.Errorf("entitlement: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Entitlement queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTenantID orders the results by the tenant_id field.
func ByTenantID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTenantID, opts...).ToFunc()
}

// ByOfferID orders the results by the offer_id field.
func ByOfferID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOfferID, opts...).ToFunc()
}

// ByPolicyID orders the results by the policy_id field.
func ByPolicyID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPolicyID, opts...).ToFunc()
}

// ByPolicyVersion orders the results by the policy_version field.
func ByPolicyVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPolicyVersion, opts...).ToFunc()
}

// ByAgentProfileID orders the results by the agent_profile_id field.
func ByAgentProfileID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgentProfileID, opts...).ToFunc()
}

// ByPaymentHash orders the results by the payment_hash field.
func ByPaymentHash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPaymentHash, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByRemainingReads orders the results by the remaining_reads field.
func ByRemainingReads(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRemainingReads, opts...).ToFunc()
}

// ByExpiresAt orders the results by the expires_at field.
func ByExpiresAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExpiresAt, opts...).ToFunc()
}

// ByActivatedAt orders the results by the activated_at field.
func ByActivatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActivatedAt, opts...).ToFunc()
}

// ByTerminatedAt orders the results by the terminated_at field.
func ByTerminatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTerminatedAt, opts...).ToFunc()
}

// ByDelegatedFrom orders the results by the delegated_from field.
func ByDelegatedFrom(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDelegatedFrom, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
