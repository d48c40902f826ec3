// Code generated by ent, DO NOT EDIT.

package entitlement

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/quillgate/quillgate/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Entitlement {
	return predicate.Entitlement(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Entitlement {
	return predicate.Entitlement(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Entitlement {
	return predicate.Entitlement(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Entitlement {
	return predicate.Entitlement(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Entitlement {
	return predicate.Entitlement(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Entitlement {
	return predicate.Entitlement(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Entitlement {
	return predicate.Entitlement(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Entitlement {
	return predicate.Entitlement(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Entitlement {
	return predicate.Entitlement(sql.FieldLTE(FieldID, id))
}

// TenantID applies equality check predicate on the "tenant_id" field. It's identical to TenantIDEQ.
func TenantID(v int) predicate.Entitlement {
	return predicate.Entitlement(sql.FieldEQ(FieldTenantID, v))
}

// OfferID applies equality check predicate on the "offer_id" field. It's identical to OfferIDEQ.
func OfferID(v int) predicate.Entitlement {
	return predicate.Entitlement(sql.FieldEQ(FieldOfferID, v))
}

// PolicyID applies equality check predicate on the "policy_id" field. It's identical to PolicyIDEQ.
func PolicyID(v string) predicate.Entitlement {
	return predicate.Entitlement(sql.FieldEQ(FieldPolicyID, v))
}

// PolicyVersion applies equality check predicate on the "policy_version" field. It's identical to PolicyVersionEQ.
func PolicyVersion(v int) predicate.Entitlement {
	return predicate.Entitlement(sql.FieldEQ(FieldPolicyVersion, v))
}

// AgentProfileID applies equality check predicate on the "agent_profile_id" field. It's identical to AgentProfileIDEQ.
func AgentProfileID(v string) predicate.Entitlement {
	return predicate.Entitlement(sql.FieldEQ(FieldAgentProfileID, v))
}

// PaymentHash applies equality check predicate on the "payment_hash" field. It's identical to PaymentHashEQ.
func PaymentHash(v string) predicate.Entitlement {
	return predicate.Entitlement(sql.FieldEQ(FieldPaymentHash, v))
}

// RemainingReads applies equality check predicate on the "remaining_reads" field. It's identical to RemainingReadsEQ.
func RemainingReads(v int) predicate.Entitlement {
	return predicate.Entitlement(sql.FieldEQ(FieldRemainingReads, v))
}

// ExpiresAt applies equality check predicate on the "expires_at" field. It's identical to ExpiresAtEQ.
func ExpiresAt(v time.Time) predicate.Entitlement {
	return predicate.Entitlement(sql.FieldEQ(FieldExpiresAt, v))
}

// ActivatedAt applies equality check predicate on the "activated_at" field. It's identical to ActivatedAtEQ.
func ActivatedAt(v time.Time) predicate.Entitlement {
	return predicate.Entitlement(sql.FieldEQ(FieldActivatedAt, v))
}

// TerminatedAt applies equality check predicate on the "terminated_at" field. It's identical to TerminatedAtEQ.
func TerminatedAt(v time.Time) predicate.Entitlement {
	return predicate.Entitlement(sql.FieldEQ(FieldTerminatedAt, v))
}

// DelegatedFrom applies equality check predicate on the "delegated_from" field. It's identical to DelegatedFromEQ.
func DelegatedFrom(v int) predicate.Entitlement {
	return predicate.Entitlement(sql.FieldEQ(FieldDelegatedFrom, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Entitlement {
	return predicate.Entitlement(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Entitlement {
	return predicate.Entitlement(sql.FieldEQ(FieldUpdatedAt, v))
}

// TenantIDEQ applies the EQ predicate on the "tenant_id" field.
func TenantIDEQ(v int) predicate.Entitlement {
	return predicate.Entitlement(sql.FieldEQ(FieldTenantID, v))
}

// TenantIDNEQ applies the NEQ predicate on the "tenant_id" field.
func TenantIDNEQ(v int) predicate.Entitlement {
	return predicate.Entitlement(sql.FieldNEQ(FieldTenantID, v))
}

// TenantIDIn applies the In predicate on the "tenant_id" field.
func TenantIDIn(vs ...int) predicate.Entitlement {
	return predicate.Entitlement(sql.FieldIn(FieldTenantID, vs...))
}

// TenantIDNotIn applies the NotIn predicate on the "tenant_id" field.
func TenantIDNotIn(vs ...int) predicate.Entitlement {
	return predicate.Entitlement(sql.FieldNotIn(FieldTenantID, vs...))
}

// TenantIDGT applies the GT predicate on the "tenant_id" field.
func TenantIDGT(v int) predicate.Entitlement {
	return predicate.Entitlement(sql.FieldGT(FieldTenantID, v))
}

// TenantIDGTE applies the GTE predicate on the "tenant_id" field.
func TenantIDGTE(v int) predicate.Entitlement {
	return predicate.Entitlement(sql.FieldGTE(FieldTenantID, v))
}

// TenantIDLT applies the LT predicate on the "tenant_id" field.
func TenantIDLT(v int) predicate.Entitlement {
	return predicate.Entitlement(sql.FieldLT(FieldTenantID, v))
}

// TenantIDLTE applies the LTE predicate on the "tenant_id" field.
func TenantIDLTE(v int) predicate.Entitlement {
	return predicate.Entitlement(sql.FieldLTE(FieldTenantID, v))
}

// OfferIDEQ applies the EQ predicate on the "offer_id" field.
func OfferIDEQ(v int) predicate.Entitlement {
	return predicate.Entitlement(sql.FieldEQ(FieldOfferID, v))
}

// OfferIDNEQ applies the NEQ predicate on the "offer_id" field.
func OfferIDNEQ(v int) predicate.Entitlement {
	return predicate.Entitlement(sql.FieldNEQ(FieldOfferID, v))
}

// OfferIDIn applies the In predicate on the "offer_id" field.
func OfferIDIn(vs ...int) predicate.Entitlement {
	return predicate.Entitlement(sql.FieldIn(FieldOfferID, vs...))
}

// OfferIDNotIn applies the NotIn predicate on the "offer_id" field.
func OfferIDNotIn(vs ...int) predicate.Entitlement {
	return predicate.Entitlement(sql.FieldNotIn(FieldOfferID, vs...))
}

// OfferIDGT applies the GT predicate on the "offer_id" field.
func OfferIDGT(v int) predicate.Entitlement {
	return predicate.Entitlement(sql.FieldGT(FieldOfferID, v))
}

// OfferIDGTE applies the GTE predicate on the "offer_id" field.
func OfferIDGTE(v int) predicate.Entitlement {
	return predicate.Entitlement(sql.FieldGTE(FieldOfferID, v))
}

// OfferIDLT applies the LT predicate on the "offer_id" field.
func OfferIDLT(v int) predicate.Entitlement {
	return predicate.Entitlement(sql.FieldLT(FieldOfferID, v))
}

// OfferIDLTE applies the LTE predicate on the "offer_id" field.
func OfferIDLTE(v int) predicate.Entitlement {
	return predicate.Entitlement(sql.FieldLTE(FieldOfferID, v))
}

// PolicyIDEQ applies the EQ predicate on the "policy_id" field.
func PolicyIDEQ(v string) predicate.Entitlement {
	return predicate.Entitlement(sql.FieldEQ(FieldPolicyID, v))
}

// PolicyIDNEQ applies the NEQ predicate on the "policy_id" field.
func PolicyIDNEQ(v string) predicate.Entitlement {
	return predicate.Entitlement(sql.FieldNEQ(FieldPolicyID, v))
}

// PolicyIDIn applies the In predicate on the "policy_id" field.
func PolicyIDIn(vs ...string) predicate.Entitlement {
	return predicate.Entitlement(sql.FieldIn(FieldPolicyID, vs...))
}

// PolicyIDNotIn applies the NotIn predicate on the "policy_id" field.
func PolicyIDNotIn(vs ...string) predicate.Entitlement {
	return predicate.Entitlement(sql.FieldNotIn(FieldPolicyID, vs...))
}

// PolicyIDGT applies the GT predicate on the "policy_id" field.
func PolicyIDGT(v string) predicate.Entitlement {
	return predicate.Entitlement(sql.FieldGT(FieldPolicyID, v))
}

// PolicyIDGTE applies the GTE predicate on the "policy_id" field.
func PolicyIDGTE(v string) predicate.Entitlement {
	return predicate.Entitlement(sql.FieldGTE(FieldPolicyID, v))
}

// PolicyIDLT applies the LT predicate on the "policy_id" field.
func PolicyIDLT(v string) predicate.Entitlement {
	return predicate.Entitlement(sql.FieldLT(FieldPolicyID, v))
}

// PolicyIDLTE applies the LTE predicate on the "policy_id" field.
func PolicyIDLTE(v string) predicate.Entitlement {
	return predicate.Entitlement(sql.FieldLTE(FieldPolicyID, v))
}

// PolicyIDContains applies the Contains predicate on the "policy_id" field.
func PolicyIDContains(v string) predicate.Entitlement {
	return predicate.Entitlement(sql.FieldContains(FieldPolicyID, v))
}

// PolicyIDHasPrefix applies the HasPrefix predicate on the "policy_id" field.
func PolicyIDHasPrefix(v string) predicate.Entitlement {
	return predicate.Entitlement(sql.FieldHasPrefix(FieldPolicyID, v))
}

// PolicyIDHasSuffix applies the HasSuffix predicate on the "policy_id" field.
func PolicyIDHasSuffix(v string) predicate.Entitlement {
	return predicate.Entitlement(sql.FieldHasSuffix(FieldPolicyID, v))
}

// PolicyIDEqualFold applies the EqualFold predicate on the "policy_id" field.
func PolicyIDEqualFold(v string) predicate.Entitlement {
	return predicate.Entitlement(sql.FieldEqualFold(FieldPolicyID, v))
}

// PolicyIDContainsFold applies the ContainsFold predicate on the "policy_id" field.
func PolicyIDContainsFold(v string) predicate.Entitlement {
	return predicate.Entitlement(sql.FieldContainsFold(FieldPolicyID, v))
}

// PolicyVersionEQ applies the EQ predicate on the "policy_version" field.
func PolicyVersionEQ(v int) predicate.Entitlement {
	return predicate.Entitlement(sql.FieldEQ(FieldPolicyVersion, v))
}

// PolicyVersionNEQ applies the NEQ predicate on the "policy_version" field.
func PolicyVersionNEQ(v int) predicate.Entitlement {
	return predicate.Entitlement(sql.FieldNEQ(FieldPolicyVersion, v))
}

// PolicyVersionIn applies the In predicate on the "policy_version" field.
func PolicyVersionIn(vs ...int) predicate.Entitlement {
	return predicate.Entitlement(sql.FieldIn(FieldPolicyVersion, vs...))
}

// PolicyVersionNotIn applies the NotIn predicate on the "policy_version" field.
func PolicyVersionNotIn(vs ...int) predicate.Entitlement {
	return predicate.Entitlement(sql.FieldNotIn(FieldPolicyVersion, vs...))
}

// PolicyVersionGT applies the GT predicate on the "policy_version" field.
func PolicyVersionGT(v int) predicate.Entitlement {
	return predicate.Entitlement(sql.FieldGT(FieldPolicyVersion, v))
}

// PolicyVersionGTE applies the GTE predicate on the "policy_version" field.
func PolicyVersionGTE(v int) predicate.Entitlement {
	return predicate.Entitlement(sql.FieldGTE(FieldPolicyVersion, v))
}

// PolicyVersionLT applies the LT predicate on the "policy_version" field.
func PolicyVersionLT(v int) predicate.Entitlement {
	return predicate.Entitlement(sql.FieldLT(FieldPolicyVersion, v))
}

// PolicyVersionLTE applies the LTE predicate on the "policy_version" field.
func PolicyVersionLTE(v int) predicate.Entitlement {
	return predicate.Entitlement(sql.FieldLTE(FieldPolicyVersion, v))
}

// AgentProfileIDEQ applies the EQ predicate on the "agent_profile_id" field.
func AgentProfileIDEQ(v string) predicate.Entitlement {
	return predicate.Entitlement(sql.FieldEQ(FieldAgentProfileID, v))
}

// AgentProfileIDNEQ applies the NEQ predicate on the "agent_profile_id" field.
func AgentProfileIDNEQ(v string) predicate.Entitlement {
	return predicate.Entitlement(sql.FieldNEQ(FieldAgentProfileID, v))
}

// AgentProfileIDIn applies the In predicate on the "agent_profile_id" field.
func AgentProfileIDIn(vs ...string) predicate.Entitlement {
	return predicate.Entitlement(sql.FieldIn(FieldAgentProfileID, vs...))
}

// AgentProfileIDNotIn applies the NotIn predicate on the "agent_profile_id" field.
func AgentProfileIDNotIn(vs ...string) predicate.Entitlement {
	return predicate.Entitlement(sql.FieldNotIn(FieldAgentProfileID, vs...))
}

// AgentProfileIDGT applies the GT predicate on the "agent_profile_id" field.
func AgentProfileIDGT(v string) predicate.Entitlement {
	return predicate.Entitlement(sql.FieldGT(FieldAgentProfileID, v))
}

// AgentProfileIDGTE applies the GTE predicate on the "agent_profile_id" field.
func AgentProfileIDGTE(v string) predicate.Entitlement {
	return predicate.Entitlement(sql.FieldGTE(FieldAgentProfileID, v))
}

// AgentProfileIDLT applies the LT predicate on the "agent_profile_id" field.
func AgentProfileIDLT(v string) predicate.Entitlement {
	return predicate.Entitlement(sql.FieldLT(FieldAgentProfileID, v))
}

// AgentProfileIDLTE applies the LTE predicate on the "agent_profile_id" field.
func AgentProfileIDLTE(v string) predicate.Entitlement {
	return predicate.Entitlement(sql.FieldLTE(FieldAgentProfileID, v))
}

// AgentProfileIDContains applies the Contains predicate on the "agent_profile_id" field.
func AgentProfileIDContains(v string) predicate.Entitlement {
	return predicate.Entitlement(sql.FieldContains(FieldAgentProfileID, v))
}

// AgentProfileIDHasPrefix applies the HasPrefix predicate on the "agent_profile_id" field.
func AgentProfileIDHasPrefix(v string) predicate.Entitlement {
	return predicate.Entitlement(sql.FieldHasPrefix(FieldAgentProfileID, v))
}

// AgentProfileIDHasSuffix applies the HasSuffix predicate on the "agent_profile_id" field.
func AgentProfileIDHasSuffix(v string) predicate.Entitlement {
	return predicate.Entitlement(sql.FieldHasSuffix(FieldAgentProfileID, v))
}

// AgentProfileIDEqualFold applies the EqualFold predicate on the "agent_profile_id" field.
func AgentProfileIDEqualFold(v string) predicate.Entitlement {
	return predicate.Entitlement(sql.FieldEqualFold(FieldAgentProfileID, v))
}

// AgentProfileIDContainsFold applies the ContainsFold predicate on the "agent_profile_id" field.
func AgentProfileIDContainsFold(v string) predicate.Entitlement {
	return predicate.Entitlement(sql.FieldContainsFold(FieldAgentProfileID, v))
}

// PaymentHashEQ applies the EQ predicate on the "payment_hash" field.
func PaymentHashEQ(v string) predicate.Entitlement {
	return predicate.Entitlement(sql.FieldEQ(FieldPaymentHash, v))
}

// PaymentHashNEQ applies the NEQ predicate on the "payment_hash" field.
func PaymentHashNEQ(v string) predicate.Entitlement {
	return predicate.Entitlement(sql.FieldNEQ(FieldPaymentHash, v))
}

// PaymentHashIn applies the In predicate on the "payment_hash" field.
func PaymentHashIn(vs ...string) predicate.Entitlement {
	return predicate.Entitlement(sql.FieldIn(FieldPaymentHash, vs...))
}

// PaymentHashNotIn applies the NotIn predicate on the "payment_hash" field.
func PaymentHashNotIn(vs ...string) predicate.Entitlement {
	return predicate.Entitlement(sql.FieldNotIn(FieldPaymentHash, vs...))
}

// PaymentHashGT applies the GT predicate on the "payment_hash" field.
func PaymentHashGT(v string) predicate.Entitlement {
	return predicate.Entitlement(sql.FieldGT(FieldPaymentHash, v))
}

// PaymentHashGTE applies the GTE predicate on the "payment_hash" field.
func PaymentHashGTE(v string) predicate.Entitlement {
	return predicate.Entitlement(sql.FieldGTE(FieldPaymentHash, v))
}

// PaymentHashLT applies the LT predicate on the "payment_hash" field.
func PaymentHashLT(v string) predicate.Entitlement {
	return predicate.Entitlement(sql.FieldLT(FieldPaymentHash, v))
}

// PaymentHashLTE applies the LTE predicate on the "payment_hash" field.
func PaymentHashLTE(v string) predicate.Entitlement {
	return predicate.Entitlement(sql.FieldLTE(FieldPaymentHash, v))
}

// PaymentHashContains applies the Contains predicate on the "payment_hash" field.
func PaymentHashContains(v string) predicate.Entitlement {
	return predicate.Entitlement(sql.FieldContains(FieldPaymentHash, v))
}

// PaymentHashHasPrefix applies the HasPrefix predicate on the "payment_hash" field.
func PaymentHashHasPrefix(v string) predicate.Entitlement {
	return predicate.Entitlement(sql.FieldHasPrefix(FieldPaymentHash, v))
}

// PaymentHashHasSuffix applies the HasSuffix predicate on the "payment_hash" field.
func PaymentHashHasSuffix(v string) predicate.Entitlement {
	return predicate.Entitlement(sql.FieldHasSuffix(FieldPaymentHash, v))
}

// PaymentHashEqualFold applies the EqualFold predicate on the "payment_hash" field.
func PaymentHashEqualFold(v string) predicate.Entitlement {
	return predicate.Entitlement(sql.FieldEqualFold(FieldPaymentHash, v))
}

// PaymentHashContainsFold applies the ContainsFold predicate on the "payment_hash" field.
func PaymentHashContainsFold(v string) predicate.Entitlement {
	return predicate.Entitlement(sql.FieldContainsFold(FieldPaymentHash, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Entitlement {
	return predicate.Entitlement(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Entitlement {
	return predicate.Entitlement(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Entitlement {
	return predicate.Entitlement(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Entitlement {
	return predicate.Entitlement(sql.FieldNotIn(FieldStatus, vs...))
}

// RemainingReadsEQ applies the EQ predicate on the "remaining_reads" field.
func RemainingReadsEQ(v int) predicate.Entitlement {
	return predicate.Entitlement(sql.FieldEQ(FieldRemainingReads, v))
}

// RemainingReadsNEQ applies the NEQ predicate on the "remaining_reads" field.
func RemainingReadsNEQ(v int) predicate.Entitlement {
	return predicate.Entitlement(sql.FieldNEQ(FieldRemainingReads, v))
}

// RemainingReadsIn applies the In predicate on the "remaining_reads" field.
func RemainingReadsIn(vs ...int) predicate.Entitlement {
	return predicate.Entitlement(sql.FieldIn(FieldRemainingReads, vs...))
}

// RemainingReadsNotIn applies the NotIn predicate on the "remaining_reads" field.
func RemainingReadsNotIn(vs ...int) predicate.Entitlement {
	return predicate.Entitlement(sql.FieldNotIn(FieldRemainingReads, vs...))
}

// RemainingReadsGT applies the GT predicate on the "remaining_reads" field.
func RemainingReadsGT(v int) predicate.Entitlement {
	return predicate.Entitlement(sql.FieldGT(FieldRemainingReads, v))
}

// RemainingReadsGTE applies the GTE predicate on the "remaining_reads" field.
func RemainingReadsGTE(v int) predicate.Entitlement {
	return predicate.Entitlement(sql.FieldGTE(FieldRemainingReads, v))
}

// RemainingReadsLT applies the LT predicate on the "remaining_reads" field.
func RemainingReadsLT(v int) predicate.Entitlement {
	return predicate.Entitlement(sql.FieldLT(FieldRemainingReads, v))
}

// RemainingReadsLTE applies the LTE predicate on the "remaining_reads" field.
func RemainingReadsLTE(v int) predicate.Entitlement {
	return predicate.Entitlement(sql.FieldLTE(FieldRemainingReads, v))
}

// RemainingReadsIsNil applies the IsNil predicate on the "remaining_reads" field.
func RemainingReadsIsNil() predicate.Entitlement {
	return predicate.Entitlement(sql.FieldIsNull(FieldRemainingReads))
}

// RemainingReadsNotNil applies the NotNil predicate on the "remaining_reads" field.
func RemainingReadsNotNil() predicate.Entitlement {
	return predicate.Entitlement(sql.FieldNotNull(FieldRemainingReads))
}

// ExpiresAtEQ applies the EQ predicate on the "expires_at" field.
func ExpiresAtEQ(v time.Time) predicate.Entitlement {
	return predicate.Entitlement(sql.FieldEQ(FieldExpiresAt, v))
}

// ExpiresAtNEQ applies the NEQ predicate on the "expires_at" field.
func ExpiresAtNEQ(v time.Time) predicate.Entitlement {
	return predicate.Entitlement(sql.FieldNEQ(FieldExpiresAt, v))
}

// ExpiresAtIn applies the In predicate on the "expires_at" field.
func ExpiresAtIn(vs ...time.Time) predicate.Entitlement {
	return predicate.Entitlement(sql.FieldIn(FieldExpiresAt, vs...))
}

// ExpiresAtNotIn applies the NotIn predicate on the "expires_at" field.
func ExpiresAtNotIn(vs ...time.Time) predicate.Entitlement {
	return predicate.Entitlement(sql.FieldNotIn(FieldExpiresAt, vs...))
}

// ExpiresAtGT applies the GT predicate on the "expires_at" field.
func ExpiresAtGT(v time.Time) predicate.Entitlement {
	return predicate.Entitlement(sql.FieldGT(FieldExpiresAt, v))
}

// ExpiresAtGTE applies the GTE predicate on the "expires_at" field.
func ExpiresAtGTE(v time.Time) predicate.Entitlement {
	return predicate.Entitlement(sql.FieldGTE(FieldExpiresAt, v))
}

// ExpiresAtLT applies the LT predicate on the "expires_at" field.
func ExpiresAtLT(v time.Time) predicate.Entitlement {
	return predicate.Entitlement(sql.FieldLT(FieldExpiresAt, v))
}

// ExpiresAtLTE applies the LTE predicate on the "expires_at" field.
func ExpiresAtLTE(v time.Time) predicate.Entitlement {
	return predicate.Entitlement(sql.FieldLTE(FieldExpiresAt, v))
}

// ExpiresAtIsNil applies the IsNil predicate on the "expires_at" field.
func ExpiresAtIsNil() predicate.Entitlement {
	return predicate.Entitlement(sql.FieldIsNull(FieldExpiresAt))
}

// ExpiresAtNotNil applies the NotNil predicate on the "expires_at" field.
func ExpiresAtNotNil() predicate.Entitlement {
	return predicate.Entitlement(sql.FieldNotNull(FieldExpiresAt))
}

// ActivatedAtEQ applies the EQ predicate on the "activated_at" field.
func ActivatedAtEQ(v time.Time) predicate.Entitlement {
	return predicate.Entitlement(sql.FieldEQ(FieldActivatedAt, v))
}

// ActivatedAtNEQ applies the NEQ predicate on the "activated_at" field.
func ActivatedAtNEQ(v time.Time) predicate.Entitlement {
	return predicate.Entitlement(sql.FieldNEQ(FieldActivatedAt, v))
}

// ActivatedAtIn applies the In predicate on the "activated_at" field.
func ActivatedAtIn(vs ...time.Time) predicate.Entitlement {
	return predicate.Entitlement(sql.FieldIn(FieldActivatedAt, vs...))
}

// ActivatedAtNotIn applies the NotIn predicate on the "activated_at" field.
func ActivatedAtNotIn(vs ...time.Time) predicate.Entitlement {
	return predicate.Entitlement(sql.FieldNotIn(FieldActivatedAt, vs...))
}

// ActivatedAtGT applies the GT predicate on the "activated_at" field.
func ActivatedAtGT(v time.Time) predicate.Entitlement {
	return predicate.Entitlement(sql.FieldGT(FieldActivatedAt, v))
}

// ActivatedAtGTE applies the GTE predicate on the "activated_at" field.
func ActivatedAtGTE(v time.Time) predicate.Entitlement {
	return predicate.Entitlement(sql.FieldGTE(FieldActivatedAt, v))
}

// ActivatedAtLT applies the LT predicate on the "activated_at" field.
func ActivatedAtLT(v time.Time) predicate.Entitlement {
	return predicate.Entitlement(sql.FieldLT(FieldActivatedAt, v))
}

// ActivatedAtLTE applies the LTE predicate on the "activated_at" field.
func ActivatedAtLTE(v time.Time) predicate.Entitlement {
	return predicate.Entitlement(sql.FieldLTE(FieldActivatedAt, v))
}

// ActivatedAtIsNil applies the IsNil predicate on the "activated_at" field.
func ActivatedAtIsNil() predicate.Entitlement {
	return predicate.Entitlement(sql.FieldIsNull(FieldActivatedAt))
}

// ActivatedAtNotNil applies the NotNil predicate on the "activated_at" field.
func ActivatedAtNotNil() predicate.Entitlement {
	return predicate.Entitlement(sql.FieldNotNull(FieldActivatedAt))
}

// TerminatedAtEQ applies the EQ predicate on the "terminated_at" field.
func TerminatedAtEQ(v time.Time) predicate.Entitlement {
	return predicate.Entitlement(sql.FieldEQ(FieldTerminatedAt, v))
}

// TerminatedAtNEQ applies the NEQ predicate on the "terminated_at" field.
func TerminatedAtNEQ(v time.Time) predicate.Entitlement {
	return predicate.Entitlement(sql.FieldNEQ(FieldTerminatedAt, v))
}

// TerminatedAtIn applies the In predicate on the "terminated_at" field.
func TerminatedAtIn(vs ...time.Time) predicate.Entitlement {
	return predicate.Entitlement(sql.FieldIn(FieldTerminatedAt, vs...))
}

// TerminatedAtNotIn applies the NotIn predicate on the "terminated_at" field.
func TerminatedAtNotIn(vs ...time.Time) predicate.Entitlement {
	return predicate.Entitlement(sql.FieldNotIn(FieldTerminatedAt, vs...))
}

// TerminatedAtGT applies the GT predicate on the "terminated_at" field.
func TerminatedAtGT(v time.Time) predicate.Entitlement {
	return predicate.Entitlement(sql.FieldGT(FieldTerminatedAt, v))
}

// TerminatedAtGTE applies the GTE predicate on the "terminated_at" field.
func TerminatedAtGTE(v time.Time) predicate.Entitlement {
	return predicate.Entitlement(sql.FieldGTE(FieldTerminatedAt, v))
}

// TerminatedAtLT applies the LT predicate on the "terminated_at" field.
func TerminatedAtLT(v time.Time) predicate.Entitlement {
	return predicate.Entitlement(sql.FieldLT(FieldTerminatedAt, v))
}

// TerminatedAtLTE applies the LTE predicate on the "terminated_at" field.
func TerminatedAtLTE(v time.Time) predicate.Entitlement {
	return predicate.Entitlement(sql.FieldLTE(FieldTerminatedAt, v))
}

// TerminatedAtIsNil applies the IsNil predicate on the "terminated_at" field.
func TerminatedAtIsNil() predicate.Entitlement {
	return predicate.Entitlement(sql.FieldIsNull(FieldTerminatedAt))
}

// TerminatedAtNotNil applies the NotNil predicate on the "terminated_at" field.
func TerminatedAtNotNil() predicate.Entitlement {
	return predicate.Entitlement(sql.FieldNotNull(FieldTerminatedAt))
}

// DelegatedFromEQ applies the EQ predicate on the "delegated_from" field.
func DelegatedFromEQ(v int) predicate.Entitlement {
	return predicate.Entitlement(sql.FieldEQ(FieldDelegatedFrom, v))
}

// DelegatedFromNEQ applies the NEQ predicate on the "delegated_from" field.
func DelegatedFromNEQ(v int) predicate.Entitlement {
	return predicate.Entitlement(sql.FieldNEQ(FieldDelegatedFrom, v))
}

// DelegatedFromIn applies the In predicate on the "delegated_from" field.
func DelegatedFromIn(vs ...int) predicate.Entitlement {
	return predicate.Entitlement(sql.FieldIn(FieldDelegatedFrom, vs...))
}

// DelegatedFromNotIn applies the NotIn predicate on the "delegated_from" field.
func DelegatedFromNotIn(vs ...int) predicate.Entitlement {
	return predicate.Entitlement(sql.FieldNotIn(FieldDelegatedFrom, vs...))
}

// DelegatedFromGT applies the GT predicate on the "delegated_from" field.
func DelegatedFromGT(v int) predicate.Entitlement {
	return predicate.Entitlement(sql.FieldGT(FieldDelegatedFrom, v))
}

// DelegatedFromGTE applies the GTE predicate on the "delegated_from" field.
func DelegatedFromGTE(v int) predicate.Entitlement {
	return predicate.Entitlement(sql.FieldGTE(FieldDelegatedFrom, v))
}

// DelegatedFromLT applies the LT predicate on the "delegated_from" field.
func DelegatedFromLT(v int) predicate.Entitlement {
	return predicate.Entitlement(sql.FieldLT(FieldDelegatedFrom, v))
}

// DelegatedFromLTE applies the LTE predicate on the "delegated_from" field.
func DelegatedFromLTE(v int) predicate.Entitlement {
	return predicate.Entitlement(sql.FieldLTE(FieldDelegatedFrom, v))
}

// DelegatedFromIsNil applies the IsNil predicate on the "delegated_from" field.
func DelegatedFromIsNil() predicate.Entitlement {
	return predicate.Entitlement(sql.FieldIsNull(FieldDelegatedFrom))
}

// DelegatedFromNotNil applies the NotNil predicate on the "delegated_from" field.
func DelegatedFromNotNil() predicate.Entitlement {
	return predicate.Entitlement(sql.FieldNotNull(FieldDelegatedFrom))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Entitlement {
	return predicate.Entitlement(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Entitlement {
	return predicate.Entitlement(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Entitlement {
	return predicate.Entitlement(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Entitlement {
	return predicate.Entitlement(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Entitlement {
	return predicate.Entitlement(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Entitlement {
	return predicate.Entitlement(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Entitlement {
	return predicate.Entitlement(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Entitlement {
	return predicate.Entitlement(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Entitlement {
	return predicate.Entitlement(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Entitlement {
	return predicate.Entitlement(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Entitlement {
	return predicate.Entitlement(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Entitlement {
	return predicate.Entitlement(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Entitlement {
	return predicate.Entitlement(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Entitlement {
	return predicate.Entitlement(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Entitlement {
	return predicate.Entitlement(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Entitlement {
	return predicate.Entitlement(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Entitlement) predicate.Entitlement {
	return predicate.Entitlement(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Entitlement) predicate.Entitlement {
	return predicate.Entitlement(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Entitlement) predicate.Entitlement {
	return predicate.Entitlement(sql.NotPredicates(p))
}
