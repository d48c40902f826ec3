// Code generated by ent, DO NOT EDIT.

package revenueevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/quillgate/quillgate/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.RevenueEvent {
	return predicate.RevenueEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.RevenueEvent {
	return predicate.RevenueEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.RevenueEvent {
	return predicate.RevenueEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.RevenueEvent {
	return predicate.RevenueEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.RevenueEvent {
	return predicate.RevenueEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.RevenueEvent {
	return predicate.RevenueEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.RevenueEvent {
	return predicate.RevenueEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.RevenueEvent {
	return predicate.RevenueEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.RevenueEvent {
	return predicate.RevenueEvent(sql.FieldLTE(FieldID, id))
}

// TenantID applies equality check predicate on the "tenant_id" field. It's identical to TenantIDEQ.
func TenantID(v int) predicate.RevenueEvent {
	return predicate.RevenueEvent(sql.FieldEQ(FieldTenantID, v))
}

// PaymentID applies equality check predicate on the "payment_id" field. It's identical to PaymentIDEQ.
func PaymentID(v int) predicate.RevenueEvent {
	return predicate.RevenueEvent(sql.FieldEQ(FieldPaymentID, v))
}

// GrossSats applies equality check predicate on the "gross_sats" field. It's identical to GrossSatsEQ.
func GrossSats(v int64) predicate.RevenueEvent {
	return predicate.RevenueEvent(sql.FieldEQ(FieldGrossSats, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.RevenueEvent {
	return predicate.RevenueEvent(sql.FieldEQ(FieldCreatedAt, v))
}

// TenantIDEQ applies the EQ predicate on the "tenant_id" field.
func TenantIDEQ(v int) predicate.RevenueEvent {
	return predicate.RevenueEvent(sql.FieldEQ(FieldTenantID, v))
}

// TenantIDNEQ applies the NEQ predicate on the "tenant_id" field.
func TenantIDNEQ(v int) predicate.RevenueEvent {
	return predicate.RevenueEvent(sql.FieldNEQ(FieldTenantID, v))
}

// TenantIDIn applies the In predicate on the "tenant_id" field.
func TenantIDIn(vs ...int) predicate.RevenueEvent {
	return predicate.RevenueEvent(sql.FieldIn(FieldTenantID, vs...))
}

// TenantIDNotIn applies the NotIn predicate on the "tenant_id" field.
func TenantIDNotIn(vs ...int) predicate.RevenueEvent {
	return predicate.RevenueEvent(sql.FieldNotIn(FieldTenantID, vs...))
}

// TenantIDGT applies the GT predicate on the "tenant_id" field.
func TenantIDGT(v int) predicate.RevenueEvent {
	return predicate.RevenueEvent(sql.FieldGT(FieldTenantID, v))
}

// TenantIDGTE applies the GTE predicate on the "tenant_id" field.
func TenantIDGTE(v int) predicate.RevenueEvent {
	return predicate.RevenueEvent(sql.FieldGTE(FieldTenantID, v))
}

// TenantIDLT applies the LT predicate on the "tenant_id" field.
func TenantIDLT(v int) predicate.RevenueEvent {
	return predicate.RevenueEvent(sql.FieldLT(FieldTenantID, v))
}

// TenantIDLTE applies the LTE predicate on the "tenant_id" field.
func TenantIDLTE(v int) predicate.RevenueEvent {
	return predicate.RevenueEvent(sql.FieldLTE(FieldTenantID, v))
}

// PaymentIDEQ applies the EQ predicate on the "payment_id" field.
func PaymentIDEQ(v int) predicate.RevenueEvent {
	return predicate.RevenueEvent(sql.FieldEQ(FieldPaymentID, v))
}

// PaymentIDNEQ applies the NEQ predicate on the "payment_id" field.
func PaymentIDNEQ(v int) predicate.RevenueEvent {
	return predicate.RevenueEvent(sql.FieldNEQ(FieldPaymentID, v))
}

// PaymentIDIn applies the In predicate on the "payment_id" field.
func PaymentIDIn(vs ...int) predicate.RevenueEvent {
	return predicate.RevenueEvent(sql.FieldIn(FieldPaymentID, vs...))
}

// PaymentIDNotIn applies the NotIn predicate on the "payment_id" field.
func PaymentIDNotIn(vs ...int) predicate.RevenueEvent {
	return predicate.RevenueEvent(sql.FieldNotIn(FieldPaymentID, vs...))
}

// PaymentIDGT applies the GT predicate on the "payment_id" field.
func PaymentIDGT(v int) predicate.RevenueEvent {
	return predicate.RevenueEvent(sql.FieldGT(FieldPaymentID, v))
}

// PaymentIDGTE applies the GTE predicate on the "payment_id" field.
func PaymentIDGTE(v int) predicate.RevenueEvent {
	return predicate.RevenueEvent(sql.FieldGTE(FieldPaymentID, v))
}

// PaymentIDLT applies the LT predicate on the "payment_id" field.
func PaymentIDLT(v int) predicate.RevenueEvent {
	return predicate.RevenueEvent(sql.FieldLT(FieldPaymentID, v))
}

// PaymentIDLTE applies the LTE predicate on the "payment_id" field.
func PaymentIDLTE(v int) predicate.RevenueEvent {
	return predicate.RevenueEvent(sql.FieldLTE(FieldPaymentID, v))
}

// GrossSatsEQ applies the EQ predicate on the "gross_sats" field.
func GrossSatsEQ(v int64) predicate.RevenueEvent {
	return predicate.RevenueEvent(sql.FieldEQ(FieldGrossSats, v))
}

// GrossSatsNEQ applies the NEQ predicate on the "gross_sats" field.
func GrossSatsNEQ(v int64) predicate.RevenueEvent {
	return predicate.RevenueEvent(sql.FieldNEQ(FieldGrossSats, v))
}

// GrossSatsIn applies the In predicate on the "gross_sats" field.
func GrossSatsIn(vs ...int64) predicate.RevenueEvent {
	return predicate.RevenueEvent(sql.FieldIn(FieldGrossSats, vs...))
}

// GrossSatsNotIn applies the NotIn predicate on the "gross_sats" field.
func GrossSatsNotIn(vs ...int64) predicate.RevenueEvent {
	return predicate.RevenueEvent(sql.FieldNotIn(FieldGrossSats, vs...))
}

// GrossSatsGT applies the GT predicate on the "gross_sats" field.
func GrossSatsGT(v int64) predicate.RevenueEvent {
	return predicate.RevenueEvent(sql.FieldGT(FieldGrossSats, v))
}

// GrossSatsGTE applies the GTE predicate on the "gross_sats" field.
func GrossSatsGTE(v int64) predicate.RevenueEvent {
	return predicate.RevenueEvent(sql.FieldGTE(FieldGrossSats, v))
}

// GrossSatsLT applies the LT predicate on the "gross_sats" field.
func GrossSatsLT(v int64) predicate.RevenueEvent {
	return predicate.RevenueEvent(sql.FieldLT(FieldGrossSats, v))
}

// GrossSatsLTE applies the LTE predicate on the "gross_sats" field.
func GrossSatsLTE(v int64) predicate.RevenueEvent {
	return predicate.RevenueEvent(sql.FieldLTE(FieldGrossSats, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.RevenueEvent {
	return predicate.RevenueEvent(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.RevenueEvent {
	return predicate.RevenueEvent(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.RevenueEvent {
	return predicate.RevenueEvent(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.RevenueEvent {
	return predicate.RevenueEvent(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.RevenueEvent {
	return predicate.RevenueEvent(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.RevenueEvent {
	return predicate.RevenueEvent(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.RevenueEvent {
	return predicate.RevenueEvent(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.RevenueEvent {
	return predicate.RevenueEvent(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.RevenueEvent) predicate.RevenueEvent {
	return predicate.RevenueEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.RevenueEvent) predicate.RevenueEvent {
	return predicate.RevenueEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.RevenueEvent) predicate.RevenueEvent {
	return predicate.RevenueEvent(sql.NotPredicates(p))
}
