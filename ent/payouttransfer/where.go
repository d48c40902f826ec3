// Code generated by ent, DO NOT EDIT.

package payouttransfer

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/quillgate/quillgate/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.PayoutTransfer {
	return predicate.PayoutTransfer(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.PayoutTransfer {
	return predicate.PayoutTransfer(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.PayoutTransfer {
	return predicate.PayoutTransfer(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.PayoutTransfer {
	return predicate.PayoutTransfer(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.PayoutTransfer {
	return predicate.PayoutTransfer(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.PayoutTransfer {
	return predicate.PayoutTransfer(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.PayoutTransfer {
	return predicate.PayoutTransfer(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.PayoutTransfer {
	return predicate.PayoutTransfer(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.PayoutTransfer {
	return predicate.PayoutTransfer(sql.FieldLTE(FieldID, id))
}

// TenantID applies equality check predicate on the "tenant_id" field. It's identical to TenantIDEQ.
func TenantID(v int) predicate.PayoutTransfer {
	return predicate.PayoutTransfer(sql.FieldEQ(FieldTenantID, v))
}

// BatchID applies equality check predicate on the "batch_id" field. It's identical to BatchIDEQ.
func BatchID(v int) predicate.PayoutTransfer {
	return predicate.PayoutTransfer(sql.FieldEQ(FieldBatchID, v))
}

// AgentProfileID applies equality check predicate on the "agent_profile_id" field. It's identical to AgentProfileIDEQ.
func AgentProfileID(v string) predicate.PayoutTransfer {
	return predicate.PayoutTransfer(sql.FieldEQ(FieldAgentProfileID, v))
}

// AmountSats applies equality check predicate on the "amount_sats" field. It's identical to AmountSatsEQ.
func AmountSats(v int64) predicate.PayoutTransfer {
	return predicate.PayoutTransfer(sql.FieldEQ(FieldAmountSats, v))
}

// Attempts applies equality check predicate on the "attempts" field. It's identical to AttemptsEQ.
func Attempts(v int) predicate.PayoutTransfer {
	return predicate.PayoutTransfer(sql.FieldEQ(FieldAttempts, v))
}

// LastError applies equality check predicate on the "last_error" field. It's identical to LastErrorEQ.
func LastError(v string) predicate.PayoutTransfer {
	return predicate.PayoutTransfer(sql.FieldEQ(FieldLastError, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.PayoutTransfer {
	return predicate.PayoutTransfer(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.PayoutTransfer {
	return predicate.PayoutTransfer(sql.FieldEQ(FieldUpdatedAt, v))
}

// TenantIDEQ applies the EQ predicate on the "tenant_id" field.
func TenantIDEQ(v int) predicate.PayoutTransfer {
	return predicate.PayoutTransfer(sql.FieldEQ(FieldTenantID, v))
}

// TenantIDNEQ applies the NEQ predicate on the "tenant_id" field.
func TenantIDNEQ(v int) predicate.PayoutTransfer {
	return predicate.PayoutTransfer(sql.FieldNEQ(FieldTenantID, v))
}

// TenantIDIn applies the In predicate on the "tenant_id" field.
func TenantIDIn(vs ...int) predicate.PayoutTransfer {
	return predicate.PayoutTransfer(sql.FieldIn(FieldTenantID, vs...))
}

// TenantIDNotIn applies the NotIn predicate on the "tenant_id" field.
func TenantIDNotIn(vs ...int) predicate.PayoutTransfer {
	return predicate.PayoutTransfer(sql.FieldNotIn(FieldTenantID, vs...))
}

// TenantIDGT applies the GT predicate on the "tenant_id" field.
func TenantIDGT(v int) predicate.PayoutTransfer {
	return predicate.PayoutTransfer(sql.FieldGT(FieldTenantID, v))
}

// TenantIDGTE applies the GTE predicate on the "tenant_id" field.
func TenantIDGTE(v int) predicate.PayoutTransfer {
	return predicate.PayoutTransfer(sql.FieldGTE(FieldTenantID, v))
}

// TenantIDLT applies the LT predicate on the "tenant_id" field.
func TenantIDLT(v int) predicate.PayoutTransfer {
	return predicate.PayoutTransfer(sql.FieldLT(FieldTenantID, v))
}

// TenantIDLTE applies the LTE predicate on the "tenant_id" field.
func TenantIDLTE(v int) predicate.PayoutTransfer {
	return predicate.PayoutTransfer(sql.FieldLTE(FieldTenantID, v))
}

// BatchIDEQ applies the EQ predicate on the "batch_id" field.
func BatchIDEQ(v int) predicate.PayoutTransfer {
	return predicate.PayoutTransfer(sql.FieldEQ(FieldBatchID, v))
}

// BatchIDNEQ applies the NEQ predicate on the "batch_id" field.
func BatchIDNEQ(v int) predicate.PayoutTransfer {
	return predicate.PayoutTransfer(sql.FieldNEQ(FieldBatchID, v))
}

// BatchIDIn applies the In predicate on the "batch_id" field.
func BatchIDIn(vs ...int) predicate.PayoutTransfer {
	return predicate.PayoutTransfer(sql.FieldIn(FieldBatchID, vs...))
}

// BatchIDNotIn applies the NotIn predicate on the "batch_id" field.
func BatchIDNotIn(vs ...int) predicate.PayoutTransfer {
	return predicate.PayoutTransfer(sql.FieldNotIn(FieldBatchID, vs...))
}

// BatchIDGT applies the GT predicate on the "batch_id" field.
func BatchIDGT(v int) predicate.PayoutTransfer {
	return predicate.PayoutTransfer(sql.FieldGT(FieldBatchID, v))
}

// BatchIDGTE applies the GTE predicate on the "batch_id" field.
func BatchIDGTE(v int) predicate.PayoutTransfer {
	return predicate.PayoutTransfer(sql.FieldGTE(FieldBatchID, v))
}

// BatchIDLT applies the LT predicate on the "batch_id" field.
func BatchIDLT(v int) predicate.PayoutTransfer {
	return predicate.PayoutTransfer(sql.FieldLT(FieldBatchID, v))
}

// BatchIDLTE applies the LTE predicate on the "batch_id" field.
func BatchIDLTE(v int) predicate.PayoutTransfer {
	return predicate.PayoutTransfer(sql.FieldLTE(FieldBatchID, v))
}

// AgentProfileIDEQ applies the EQ predicate on the "agent_profile_id" field.
func AgentProfileIDEQ(v string) predicate.PayoutTransfer {
	return predicate.PayoutTransfer(sql.FieldEQ(FieldAgentProfileID, v))
}

// AgentProfileIDNEQ applies the NEQ predicate on the "agent_profile_id" field.
func AgentProfileIDNEQ(v string) predicate.PayoutTransfer {
	return predicate.PayoutTransfer(sql.FieldNEQ(FieldAgentProfileID, v))
}

// AgentProfileIDIn applies the In predicate on the "agent_profile_id" field.
func AgentProfileIDIn(vs ...string) predicate.PayoutTransfer {
	return predicate.PayoutTransfer(sql.FieldIn(FieldAgentProfileID, vs...))
}

// AgentProfileIDNotIn applies the NotIn predicate on the "agent_profile_id" field.
func AgentProfileIDNotIn(vs ...string) predicate.PayoutTransfer {
	return predicate.PayoutTransfer(sql.FieldNotIn(FieldAgentProfileID, vs...))
}

// AgentProfileIDGT applies the GT predicate on the "agent_profile_id" field.
func AgentProfileIDGT(v string) predicate.PayoutTransfer {
	return predicate.PayoutTransfer(sql.FieldGT(FieldAgentProfileID, v))
}

// AgentProfileIDGTE applies the GTE predicate on the "agent_profile_id" field.
func AgentProfileIDGTE(v string) predicate.PayoutTransfer {
	return predicate.PayoutTransfer(sql.FieldGTE(FieldAgentProfileID, v))
}

// AgentProfileIDLT applies the LT predicate on the "agent_profile_id" field.
func AgentProfileIDLT(v string) predicate.PayoutTransfer {
	return predicate.PayoutTransfer(sql.FieldLT(FieldAgentProfileID, v))
}

// AgentProfileIDLTE applies the LTE predicate on the "agent_profile_id" field.
func AgentProfileIDLTE(v string) predicate.PayoutTransfer {
	return predicate.PayoutTransfer(sql.FieldLTE(FieldAgentProfileID, v))
}

// AgentProfileIDContains applies the Contains predicate on the "agent_profile_id" field.
func AgentProfileIDContains(v string) predicate.PayoutTransfer {
	return predicate.PayoutTransfer(sql.FieldContains(FieldAgentProfileID, v))
}

// AgentProfileIDHasPrefix applies the HasPrefix predicate on the "agent_profile_id" field.
func AgentProfileIDHasPrefix(v string) predicate.PayoutTransfer {
	return predicate.PayoutTransfer(sql.FieldHasPrefix(FieldAgentProfileID, v))
}

// AgentProfileIDHasSuffix applies the HasSuffix predicate on the "agent_profile_id" field.
func AgentProfileIDHasSuffix(v string) predicate.PayoutTransfer {
	return predicate.PayoutTransfer(sql.FieldHasSuffix(FieldAgentProfileID, v))
}

// AgentProfileIDEqualFold applies the EqualFold predicate on the "agent_profile_id" field.
func AgentProfileIDEqualFold(v string) predicate.PayoutTransfer {
	return predicate.PayoutTransfer(sql.FieldEqualFold(FieldAgentProfileID, v))
}

// AgentProfileIDContainsFold applies the ContainsFold predicate on the "agent_profile_id" field.
func AgentProfileIDContainsFold(v string) predicate.PayoutTransfer {
	return predicate.PayoutTransfer(sql.FieldContainsFold(FieldAgentProfileID, v))
}

// AmountSatsEQ applies the EQ predicate on the "amount_sats" field.
func AmountSatsEQ(v int64) predicate.PayoutTransfer {
	return predicate.PayoutTransfer(sql.FieldEQ(FieldAmountSats, v))
}

// AmountSatsNEQ applies the NEQ predicate on the "amount_sats" field.
func AmountSatsNEQ(v int64) predicate.PayoutTransfer {
	return predicate.PayoutTransfer(sql.FieldNEQ(FieldAmountSats, v))
}

// AmountSatsIn applies the In predicate on the "amount_sats" field.
func AmountSatsIn(vs ...int64) predicate.PayoutTransfer {
	return predicate.PayoutTransfer(sql.FieldIn(FieldAmountSats, vs...))
}

// AmountSatsNotIn applies the NotIn predicate on the "amount_sats" field.
func AmountSatsNotIn(vs ...int64) predicate.PayoutTransfer {
	return predicate.PayoutTransfer(sql.FieldNotIn(FieldAmountSats, vs...))
}

// AmountSatsGT applies the GT predicate on the "amount_sats" field.
func AmountSatsGT(v int64) predicate.PayoutTransfer {
	return predicate.PayoutTransfer(sql.FieldGT(FieldAmountSats, v))
}

// AmountSatsGTE applies the GTE predicate on the "amount_sats" field.
func AmountSatsGTE(v int64) predicate.PayoutTransfer {
	return predicate.PayoutTransfer(sql.FieldGTE(FieldAmountSats, v))
}

// AmountSatsLT applies the LT predicate on the "amount_sats" field.
func AmountSatsLT(v int64) predicate.PayoutTransfer {
	return predicate.PayoutTransfer(sql.FieldLT(FieldAmountSats, v))
}

// AmountSatsLTE applies the LTE predicate on the "amount_sats" field.
func AmountSatsLTE(v int64) predicate.PayoutTransfer {
	return predicate.PayoutTransfer(sql.FieldLTE(FieldAmountSats, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.PayoutTransfer {
	return predicate.PayoutTransfer(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.PayoutTransfer {
	return predicate.PayoutTransfer(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.PayoutTransfer {
	return predicate.PayoutTransfer(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.PayoutTransfer {
	return predicate.PayoutTransfer(sql.FieldNotIn(FieldStatus, vs...))
}

// AttemptsEQ applies the EQ predicate on the "attempts" field.
func AttemptsEQ(v int) predicate.PayoutTransfer {
	return predicate.PayoutTransfer(sql.FieldEQ(FieldAttempts, v))
}

// AttemptsNEQ applies the NEQ predicate on the "attempts" field.
func AttemptsNEQ(v int) predicate.PayoutTransfer {
	return predicate.PayoutTransfer(sql.FieldNEQ(FieldAttempts, v))
}

// AttemptsIn applies the In predicate on the "attempts" field.
func AttemptsIn(vs ...int) predicate.PayoutTransfer {
	return predicate.PayoutTransfer(sql.FieldIn(FieldAttempts, vs...))
}

// AttemptsNotIn applies the NotIn predicate on the "attempts" field.
func AttemptsNotIn(vs ...int) predicate.PayoutTransfer {
	return predicate.PayoutTransfer(sql.FieldNotIn(FieldAttempts, vs...))
}

// AttemptsGT applies the GT predicate on the "attempts" field.
func AttemptsGT(v int) predicate.PayoutTransfer {
	return predicate.PayoutTransfer(sql.FieldGT(FieldAttempts, v))
}

// AttemptsGTE applies the GTE predicate on the "attempts" field.
func AttemptsGTE(v int) predicate.PayoutTransfer {
	return predicate.PayoutTransfer(sql.FieldGTE(FieldAttempts, v))
}

// AttemptsLT applies the LT predicate on the "attempts" field.
func AttemptsLT(v int) predicate.PayoutTransfer {
	return predicate.PayoutTransfer(sql.FieldLT(FieldAttempts, v))
}

// AttemptsLTE applies the LTE predicate on the "attempts" field.
func AttemptsLTE(v int) predicate.PayoutTransfer {
	return predicate.PayoutTransfer(sql.FieldLTE(FieldAttempts, v))
}

// LastErrorEQ applies the EQ predicate on the "last_error" field.
func LastErrorEQ(v string) predicate.PayoutTransfer {
	return predicate.PayoutTransfer(sql.FieldEQ(FieldLastError, v))
}

// LastErrorNEQ applies the NEQ predicate on the "last_error" field.
func LastErrorNEQ(v string) predicate.PayoutTransfer {
	return predicate.PayoutTransfer(sql.FieldNEQ(FieldLastError, v))
}

// LastErrorIn applies the In predicate on the "last_error" field.
func LastErrorIn(vs ...string) predicate.PayoutTransfer {
	return predicate.PayoutTransfer(sql.FieldIn(FieldLastError, vs...))
}

// LastErrorNotIn applies the NotIn predicate on the "last_error" field.
func LastErrorNotIn(vs ...string) predicate.PayoutTransfer {
	return predicate.PayoutTransfer(sql.FieldNotIn(FieldLastError, vs...))
}

// LastErrorGT applies the GT predicate on the "last_error" field.
func LastErrorGT(v string) predicate.PayoutTransfer {
	return predicate.PayoutTransfer(sql.FieldGT(FieldLastError, v))
}

// LastErrorGTE applies the GTE predicate on the "last_error" field.
func LastErrorGTE(v string) predicate.PayoutTransfer {
	return predicate.PayoutTransfer(sql.FieldGTE(FieldLastError, v))
}

// LastErrorLT applies the LT predicate on the "last_error" field.
func LastErrorLT(v string) predicate.PayoutTransfer {
	return predicate.PayoutTransfer(sql.FieldLT(FieldLastError, v))
}

// LastErrorLTE applies the LTE predicate on the "last_error" field.
func LastErrorLTE(v string) predicate.PayoutTransfer {
	return predicate.PayoutTransfer(sql.FieldLTE(FieldLastError, v))
}

// LastErrorContains applies the Contains predicate on the "last_error" field.
func LastErrorContains(v string) predicate.PayoutTransfer {
	return predicate.PayoutTransfer(sql.FieldContains(FieldLastError, v))
}

// LastErrorHasPrefix applies the HasPrefix predicate on the "last_error" field.
func LastErrorHasPrefix(v string) predicate.PayoutTransfer {
	return predicate.PayoutTransfer(sql.FieldHasPrefix(FieldLastError, v))
}

// LastErrorHasSuffix applies the HasSuffix predicate on the "last_error" field.
func LastErrorHasSuffix(v string) predicate.PayoutTransfer {
	return predicate.PayoutTransfer(sql.FieldHasSuffix(FieldLastError, v))
}

// LastErrorIsNil applies the IsNil predicate on the "last_error" field.
func LastErrorIsNil() predicate.PayoutTransfer {
	return predicate.PayoutTransfer(sql.FieldIsNull(FieldLastError))
}

// LastErrorNotNil applies the NotNil predicate on the "last_error" field.
func LastErrorNotNil() predicate.PayoutTransfer {
	return predicate.PayoutTransfer(sql.FieldNotNull(FieldLastError))
}

// LastErrorEqualFold applies the EqualFold predicate on the "last_error" field.
func LastErrorEqualFold(v string) predicate.PayoutTransfer {
	return predicate.PayoutTransfer(sql.FieldEqualFold(FieldLastError, v))
}

// LastErrorContainsFold applies the ContainsFold predicate on the "last_error" field.
func LastErrorContainsFold(v string) predicate.PayoutTransfer {
	return predicate.PayoutTransfer(sql.FieldContainsFold(FieldLastError, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.PayoutTransfer {
	return predicate.PayoutTransfer(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.PayoutTransfer {
	return predicate.PayoutTransfer(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.PayoutTransfer {
	return predicate.PayoutTransfer(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.PayoutTransfer {
	return predicate.PayoutTransfer(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.PayoutTransfer {
	return predicate.PayoutTransfer(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.PayoutTransfer {
	return predicate.PayoutTransfer(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.PayoutTransfer {
	return predicate.PayoutTransfer(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.PayoutTransfer {
	return predicate.PayoutTransfer(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.PayoutTransfer {
	return predicate.PayoutTransfer(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.PayoutTransfer {
	return predicate.PayoutTransfer(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.PayoutTransfer {
	return predicate.PayoutTransfer(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.PayoutTransfer {
	return predicate.PayoutTransfer(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.PayoutTransfer {
	return predicate.PayoutTransfer(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.PayoutTransfer {
	return predicate.PayoutTransfer(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.PayoutTransfer {
	return predicate.PayoutTransfer(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.PayoutTransfer {
	return predicate.PayoutTransfer(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PayoutTransfer) predicate.PayoutTransfer {
	return predicate.PayoutTransfer(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PayoutTransfer) predicate.PayoutTransfer {
	return predicate.PayoutTransfer(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PayoutTransfer) predicate.PayoutTransfer {
	return predicate.PayoutTransfer(sql.NotPredicates(p))
}
