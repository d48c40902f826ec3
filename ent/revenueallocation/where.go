// Code generated by ent, DO NOT EDIT.

package revenueallocation

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/quillgate/quillgate/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.RevenueAllocation {
	return predicate.RevenueAllocation(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.RevenueAllocation {
	return predicate.RevenueAllocation(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.RevenueAllocation {
	return predicate.RevenueAllocation(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.RevenueAllocation {
	return predicate.RevenueAllocation(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.RevenueAllocation {
	return predicate.RevenueAllocation(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.RevenueAllocation {
	return predicate.RevenueAllocation(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.RevenueAllocation {
	return predicate.RevenueAllocation(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.RevenueAllocation {
	return predicate.RevenueAllocation(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.RevenueAllocation {
	return predicate.RevenueAllocation(sql.FieldLTE(FieldID, id))
}

// TenantID applies equality check predicate on the "tenant_id" field. It's identical to TenantIDEQ.
func TenantID(v int) predicate.RevenueAllocation {
	return predicate.RevenueAllocation(sql.FieldEQ(FieldTenantID, v))
}

// EventID applies equality check predicate on the "event_id" field. It's identical to EventIDEQ.
func EventID(v int) predicate.RevenueAllocation {
	return predicate.RevenueAllocation(sql.FieldEQ(FieldEventID, v))
}

// AgentProfileID applies equality check predicate on the "agent_profile_id" field. It's identical to AgentProfileIDEQ.
func AgentProfileID(v string) predicate.RevenueAllocation {
	return predicate.RevenueAllocation(sql.FieldEQ(FieldAgentProfileID, v))
}

// AmountSats applies equality check predicate on the "amount_sats" field. It's identical to AmountSatsEQ.
func AmountSats(v int64) predicate.RevenueAllocation {
	return predicate.RevenueAllocation(sql.FieldEQ(FieldAmountSats, v))
}

// BasisPoints applies equality check predicate on the "basis_points" field. It's identical to BasisPointsEQ.
func BasisPoints(v int) predicate.RevenueAllocation {
	return predicate.RevenueAllocation(sql.FieldEQ(FieldBasisPoints, v))
}

// ClearedAt applies equality check predicate on the "cleared_at" field. It's identical to ClearedAtEQ.
func ClearedAt(v time.Time) predicate.RevenueAllocation {
	return predicate.RevenueAllocation(sql.FieldEQ(FieldClearedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.RevenueAllocation {
	return predicate.RevenueAllocation(sql.FieldEQ(FieldCreatedAt, v))
}

// TenantIDEQ applies the EQ predicate on the "tenant_id" field.
func TenantIDEQ(v int) predicate.RevenueAllocation {
	return predicate.RevenueAllocation(sql.FieldEQ(FieldTenantID, v))
}

// TenantIDNEQ applies the NEQ predicate on the "tenant_id" field.
func TenantIDNEQ(v int) predicate.RevenueAllocation {
	return predicate.RevenueAllocation(sql.FieldNEQ(FieldTenantID, v))
}

// TenantIDIn applies the In predicate on the "tenant_id" field.
func TenantIDIn(vs ...int) predicate.RevenueAllocation {
	return predicate.RevenueAllocation(sql.FieldIn(FieldTenantID, vs...))
}

// TenantIDNotIn applies the NotIn predicate on the "tenant_id" field.
func TenantIDNotIn(vs ...int) predicate.RevenueAllocation {
	return predicate.RevenueAllocation(sql.FieldNotIn(FieldTenantID, vs...))
}

// TenantIDGT applies the GT predicate on the "tenant_id" field.
func TenantIDGT(v int) predicate.RevenueAllocation {
	return predicate.RevenueAllocation(sql.FieldGT(FieldTenantID, v))
}

// TenantIDGTE applies the GTE predicate on the "tenant_id" field.
func TenantIDGTE(v int) predicate.RevenueAllocation {
	return predicate.RevenueAllocation(sql.FieldGTE(FieldTenantID, v))
}

// TenantIDLT applies the LT predicate on the "tenant_id" field.
func TenantIDLT(v int) predicate.RevenueAllocation {
	return predicate.RevenueAllocation(sql.FieldLT(FieldTenantID, v))
}

// TenantIDLTE applies the LTE predicate on the "tenant_id" field.
func TenantIDLTE(v int) predicate.RevenueAllocation {
	return predicate.RevenueAllocation(sql.FieldLTE(FieldTenantID, v))
}

// EventIDEQ applies the EQ predicate on the "event_id" field.
func EventIDEQ(v int) predicate.RevenueAllocation {
	return predicate.RevenueAllocation(sql.FieldEQ(FieldEventID, v))
}

// EventIDNEQ applies the NEQ predicate on the "event_id" field.
func EventIDNEQ(v int) predicate.RevenueAllocation {
	return predicate.RevenueAllocation(sql.FieldNEQ(FieldEventID, v))
}

// EventIDIn applies the In predicate on the "event_id" field.
func EventIDIn(vs ...int) predicate.RevenueAllocation {
	return predicate.RevenueAllocation(sql.FieldIn(FieldEventID, vs...))
}

// EventIDNotIn applies the NotIn predicate on the "event_id" field.
func EventIDNotIn(vs ...int) predicate.RevenueAllocation {
	return predicate.RevenueAllocation(sql.FieldNotIn(FieldEventID, vs...))
}

// EventIDGT applies the GT predicate on the "event_id" field.
func EventIDGT(v int) predicate.RevenueAllocation {
	return predicate.RevenueAllocation(sql.FieldGT(FieldEventID, v))
}

// EventIDGTE applies the GTE predicate on the "event_id" field.
func EventIDGTE(v int) predicate.RevenueAllocation {
	return predicate.RevenueAllocation(sql.FieldGTE(FieldEventID, v))
}

// EventIDLT applies the LT predicate on the "event_id" field.
func EventIDLT(v int) predicate.RevenueAllocation {
	return predicate.RevenueAllocation(sql.FieldLT(FieldEventID, v))
}

// EventIDLTE applies the LTE predicate on the "event_id" field.
func EventIDLTE(v int) predicate.RevenueAllocation {
	return predicate.RevenueAllocation(sql.FieldLTE(FieldEventID, v))
}

// AgentProfileIDEQ applies the EQ predicate on the "agent_profile_id" field.
func AgentProfileIDEQ(v string) predicate.RevenueAllocation {
	return predicate.RevenueAllocation(sql.FieldEQ(FieldAgentProfileID, v))
}

// AgentProfileIDNEQ applies the NEQ predicate on the "agent_profile_id" field.
func AgentProfileIDNEQ(v string) predicate.RevenueAllocation {
	return predicate.RevenueAllocation(sql.FieldNEQ(FieldAgentProfileID, v))
}

// AgentProfileIDIn applies the In predicate on the "agent_profile_id" field.
func AgentProfileIDIn(vs ...string) predicate.RevenueAllocation {
	return predicate.RevenueAllocation(sql.FieldIn(FieldAgentProfileID, vs...))
}

// AgentProfileIDNotIn applies the NotIn predicate on the "agent_profile_id" field.
func AgentProfileIDNotIn(vs ...string) predicate.RevenueAllocation {
	return predicate.RevenueAllocation(sql.FieldNotIn(FieldAgentProfileID, vs...))
}

// AgentProfileIDGT applies the GT predicate on the "agent_profile_id" field.
func AgentProfileIDGT(v string) predicate.RevenueAllocation {
	return predicate.RevenueAllocation(sql.FieldGT(FieldAgentProfileID, v))
}

// AgentProfileIDGTE applies the GTE predicate on the "agent_profile_id" field.
func AgentProfileIDGTE(v string) predicate.RevenueAllocation {
	return predicate.RevenueAllocation(sql.FieldGTE(FieldAgentProfileID, v))
}

// AgentProfileIDLT applies the LT predicate on the "agent_profile_id" field.
func AgentProfileIDLT(v string) predicate.RevenueAllocation {
	return predicate.RevenueAllocation(sql.FieldLT(FieldAgentProfileID, v))
}

// AgentProfileIDLTE applies the LTE predicate on the "agent_profile_id" field.
func AgentProfileIDLTE(v string) predicate.RevenueAllocation {
	return predicate.RevenueAllocation(sql.FieldLTE(FieldAgentProfileID, v))
}

// AgentProfileIDContains applies the Contains predicate on the "agent_profile_id" field.
func AgentProfileIDContains(v string) predicate.RevenueAllocation {
	return predicate.RevenueAllocation(sql.FieldContains(FieldAgentProfileID, v))
}

// AgentProfileIDHasPrefix applies the HasPrefix predicate on the "agent_profile_id" field.
func AgentProfileIDHasPrefix(v string) predicate.RevenueAllocation {
	return predicate.RevenueAllocation(sql.FieldHasPrefix(FieldAgentProfileID, v))
}

// AgentProfileIDHasSuffix applies the HasSuffix predicate on the "agent_profile_id" field.
func AgentProfileIDHasSuffix(v string) predicate.RevenueAllocation {
	return predicate.RevenueAllocation(sql.FieldHasSuffix(FieldAgentProfileID, v))
}

// AgentProfileIDEqualFold applies the EqualFold predicate on the "agent_profile_id" field.
func AgentProfileIDEqualFold(v string) predicate.RevenueAllocation {
	return predicate.RevenueAllocation(sql.FieldEqualFold(FieldAgentProfileID, v))
}

// AgentProfileIDContainsFold applies the ContainsFold predicate on the "agent_profile_id" field.
func AgentProfileIDContainsFold(v string) predicate.RevenueAllocation {
	return predicate.RevenueAllocation(sql.FieldContainsFold(FieldAgentProfileID, v))
}

// AmountSatsEQ applies the EQ predicate on the "amount_sats" field.
func AmountSatsEQ(v int64) predicate.RevenueAllocation {
	return predicate.RevenueAllocation(sql.FieldEQ(FieldAmountSats, v))
}

// AmountSatsNEQ applies the NEQ predicate on the "amount_sats" field.
func AmountSatsNEQ(v int64) predicate.RevenueAllocation {
	return predicate.RevenueAllocation(sql.FieldNEQ(FieldAmountSats, v))
}

// AmountSatsIn applies the In predicate on the "amount_sats" field.
func AmountSatsIn(vs ...int64) predicate.RevenueAllocation {
	return predicate.RevenueAllocation(sql.FieldIn(FieldAmountSats, vs...))
}

// AmountSatsNotIn applies the NotIn predicate on the "amount_sats" field.
func AmountSatsNotIn(vs ...int64) predicate.RevenueAllocation {
	return predicate.RevenueAllocation(sql.FieldNotIn(FieldAmountSats, vs...))
}

// AmountSatsGT applies the GT predicate on the "amount_sats" field.
func AmountSatsGT(v int64) predicate.RevenueAllocation {
	return predicate.RevenueAllocation(sql.FieldGT(FieldAmountSats, v))
}

// AmountSatsGTE applies the GTE predicate on the "amount_sats" field.
func AmountSatsGTE(v int64) predicate.RevenueAllocation {
	return predicate.RevenueAllocation(sql.FieldGTE(FieldAmountSats, v))
}

// AmountSatsLT applies the LT predicate on the "amount_sats" field.
func AmountSatsLT(v int64) predicate.RevenueAllocation {
	return predicate.RevenueAllocation(sql.FieldLT(FieldAmountSats, v))
}

// AmountSatsLTE applies the LTE predicate on the "amount_sats" field.
func AmountSatsLTE(v int64) predicate.RevenueAllocation {
	return predicate.RevenueAllocation(sql.FieldLTE(FieldAmountSats, v))
}

// BasisPointsEQ applies the EQ predicate on the "basis_points" field.
func BasisPointsEQ(v int) predicate.RevenueAllocation {
	return predicate.RevenueAllocation(sql.FieldEQ(FieldBasisPoints, v))
}

// BasisPointsNEQ applies the NEQ predicate on the "basis_points" field.
func BasisPointsNEQ(v int) predicate.RevenueAllocation {
	return predicate.RevenueAllocation(sql.FieldNEQ(FieldBasisPoints, v))
}

// BasisPointsIn applies the In predicate on the "basis_points" field.
func BasisPointsIn(vs ...int) predicate.RevenueAllocation {
	return predicate.RevenueAllocation(sql.FieldIn(FieldBasisPoints, vs...))
}

// BasisPointsNotIn applies the NotIn predicate on the "basis_points" field.
func BasisPointsNotIn(vs ...int) predicate.RevenueAllocation {
	return predicate.RevenueAllocation(sql.FieldNotIn(FieldBasisPoints, vs...))
}

// BasisPointsGT applies the GT predicate on the "basis_points" field.
func BasisPointsGT(v int) predicate.RevenueAllocation {
	return predicate.RevenueAllocation(sql.FieldGT(FieldBasisPoints, v))
}

// BasisPointsGTE applies the GTE predicate on the "basis_points" field.
func BasisPointsGTE(v int) predicate.RevenueAllocation {
	return predicate.RevenueAllocation(sql.FieldGTE(FieldBasisPoints, v))
}

// BasisPointsLT applies the LT predicate on the "basis_points" field.
func BasisPointsLT(v int) predicate.RevenueAllocation {
	return predicate.RevenueAllocation(sql.FieldLT(FieldBasisPoints, v))
}

// BasisPointsLTE applies the LTE predicate on the "basis_points" field.
func BasisPointsLTE(v int) predicate.RevenueAllocation {
	return predicate.RevenueAllocation(sql.FieldLTE(FieldBasisPoints, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.RevenueAllocation {
	return predicate.RevenueAllocation(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.RevenueAllocation {
	return predicate.RevenueAllocation(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.RevenueAllocation {
	return predicate.RevenueAllocation(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.RevenueAllocation {
	return predicate.RevenueAllocation(sql.FieldNotIn(FieldStatus, vs...))
}

// ClearedAtEQ applies the EQ predicate on the "cleared_at" field.
func ClearedAtEQ(v time.Time) predicate.RevenueAllocation {
	return predicate.RevenueAllocation(sql.FieldEQ(FieldClearedAt, v))
}

// ClearedAtNEQ applies the NEQ predicate on the "cleared_at" field.
func ClearedAtNEQ(v time.Time) predicate.RevenueAllocation {
	return predicate.RevenueAllocation(sql.FieldNEQ(FieldClearedAt, v))
}

// ClearedAtIn applies the In predicate on the "cleared_at" field.
func ClearedAtIn(vs ...time.Time) predicate.RevenueAllocation {
	return predicate.RevenueAllocation(sql.FieldIn(FieldClearedAt, vs...))
}

// ClearedAtNotIn applies the NotIn predicate on the "cleared_at" field.
func ClearedAtNotIn(vs ...time.Time) predicate.RevenueAllocation {
	return predicate.RevenueAllocation(sql.FieldNotIn(FieldClearedAt, vs...))
}

// ClearedAtGT applies the GT predicate on the "cleared_at" field.
func ClearedAtGT(v time.Time) predicate.RevenueAllocation {
	return predicate.RevenueAllocation(sql.FieldGT(FieldClearedAt, v))
}

// ClearedAtGTE applies the GTE predicate on the "cleared_at" field.
func ClearedAtGTE(v time.Time) predicate.RevenueAllocation {
	return predicate.RevenueAllocation(sql.FieldGTE(FieldClearedAt, v))
}

// ClearedAtLT applies the LT predicate on the "cleared_at" field.
func ClearedAtLT(v time.Time) predicate.RevenueAllocation {
	return predicate.RevenueAllocation(sql.FieldLT(FieldClearedAt, v))
}

// ClearedAtLTE applies the LTE predicate on the "cleared_at" field.
func ClearedAtLTE(v time.Time) predicate.RevenueAllocation {
	return predicate.RevenueAllocation(sql.FieldLTE(FieldClearedAt, v))
}

// ClearedAtIsNil applies the IsNil predicate on the "cleared_at" field.
func ClearedAtIsNil() predicate.RevenueAllocation {
	return predicate.RevenueAllocation(sql.FieldIsNull(FieldClearedAt))
}

// ClearedAtNotNil applies the NotNil predicate on the "cleared_at" field.
func ClearedAtNotNil() predicate.RevenueAllocation {
	return predicate.RevenueAllocation(sql.FieldNotNull(FieldClearedAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.RevenueAllocation {
	return predicate.RevenueAllocation(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.RevenueAllocation {
	return predicate.RevenueAllocation(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.RevenueAllocation {
	return predicate.RevenueAllocation(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.RevenueAllocation {
	return predicate.RevenueAllocation(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.RevenueAllocation {
	return predicate.RevenueAllocation(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.RevenueAllocation {
	return predicate.RevenueAllocation(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.RevenueAllocation {
	return predicate.RevenueAllocation(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.RevenueAllocation {
	return predicate.RevenueAllocation(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.RevenueAllocation) predicate.RevenueAllocation {
	return predicate.RevenueAllocation(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.RevenueAllocation) predicate.RevenueAllocation {
	return predicate.RevenueAllocation(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.RevenueAllocation) predicate.RevenueAllocation {
	return predicate.RevenueAllocation(sql.NotPredicates(p))
}
