// Code generated by ent, DO NOT EDIT.

package payoutbatch

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/quillgate/quillgate/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.PayoutBatch {
	return predicate.PayoutBatch(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.PayoutBatch {
	return predicate.PayoutBatch(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.PayoutBatch {
	return predicate.PayoutBatch(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.PayoutBatch {
	return predicate.PayoutBatch(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.PayoutBatch {
	return predicate.PayoutBatch(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.PayoutBatch {
	return predicate.PayoutBatch(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.PayoutBatch {
	return predicate.PayoutBatch(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.PayoutBatch {
	return predicate.PayoutBatch(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.PayoutBatch {
	return predicate.PayoutBatch(sql.FieldLTE(FieldID, id))
}

// TenantID applies equality check predicate on the "tenant_id" field. It's identical to TenantIDEQ.
func TenantID(v int) predicate.PayoutBatch {
	return predicate.PayoutBatch(sql.FieldEQ(FieldTenantID, v))
}

// TotalSats applies equality check predicate on the "total_sats" field. It's identical to TotalSatsEQ.
func TotalSats(v int64) predicate.PayoutBatch {
	return predicate.PayoutBatch(sql.FieldEQ(FieldTotalSats, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.PayoutBatch {
	return predicate.PayoutBatch(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.PayoutBatch {
	return predicate.PayoutBatch(sql.FieldEQ(FieldUpdatedAt, v))
}

// TenantIDEQ applies the EQ predicate on the "tenant_id" field.
func TenantIDEQ(v int) predicate.PayoutBatch {
	return predicate.PayoutBatch(sql.FieldEQ(FieldTenantID, v))
}

// TenantIDNEQ applies the NEQ predicate on the "tenant_id" field.
func TenantIDNEQ(v int) predicate.PayoutBatch {
	return predicate.PayoutBatch(sql.FieldNEQ(FieldTenantID, v))
}

// TenantIDIn applies the In predicate on the "tenant_id" field.
func TenantIDIn(vs ...int) predicate.PayoutBatch {
	return predicate.PayoutBatch(sql.FieldIn(FieldTenantID, vs...))
}

// TenantIDNotIn applies the NotIn predicate on the "tenant_id" field.
func TenantIDNotIn(vs ...int) predicate.PayoutBatch {
	return predicate.PayoutBatch(sql.FieldNotIn(FieldTenantID, vs...))
}

// TenantIDGT applies the GT predicate on the "tenant_id" field.
func TenantIDGT(v int) predicate.PayoutBatch {
	return predicate.PayoutBatch(sql.FieldGT(FieldTenantID, v))
}

// TenantIDGTE applies the GTE predicate on the "tenant_id" field.
func TenantIDGTE(v int) predicate.PayoutBatch {
	return predicate.PayoutBatch(sql.FieldGTE(FieldTenantID, v))
}

// TenantIDLT applies the LT predicate on the "tenant_id" field.
func TenantIDLT(v int) predicate.PayoutBatch {
	return predicate.PayoutBatch(sql.FieldLT(FieldTenantID, v))
}

// TenantIDLTE applies the LTE predicate on the "tenant_id" field.
func TenantIDLTE(v int) predicate.PayoutBatch {
	return predicate.PayoutBatch(sql.FieldLTE(FieldTenantID, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.PayoutBatch {
	return predicate.PayoutBatch(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.PayoutBatch {
	return predicate.PayoutBatch(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.PayoutBatch {
	return predicate.PayoutBatch(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.PayoutBatch {
	return predicate.PayoutBatch(sql.FieldNotIn(FieldStatus, vs...))
}

// TotalSatsEQ applies the EQ predicate on the "total_sats" field.
func TotalSatsEQ(v int64) predicate.PayoutBatch {
	return predicate.PayoutBatch(sql.FieldEQ(FieldTotalSats, v))
}

// TotalSatsNEQ applies the NEQ predicate on the "total_sats" field.
func TotalSatsNEQ(v int64) predicate.PayoutBatch {
	return predicate.PayoutBatch(sql.FieldNEQ(FieldTotalSats, v))
}

// TotalSatsIn applies the In predicate on the "total_sats" field.
func TotalSatsIn(vs ...int64) predicate.PayoutBatch {
	return predicate.PayoutBatch(sql.FieldIn(FieldTotalSats, vs...))
}

// TotalSatsNotIn applies the NotIn predicate on the "total_sats" field.
func TotalSatsNotIn(vs ...int64) predicate.PayoutBatch {
	return predicate.PayoutBatch(sql.FieldNotIn(FieldTotalSats, vs...))
}

// TotalSatsGT applies the GT predicate on the "total_sats" field.
func TotalSatsGT(v int64) predicate.PayoutBatch {
	return predicate.PayoutBatch(sql.FieldGT(FieldTotalSats, v))
}

// TotalSatsGTE applies the GTE predicate on the "total_sats" field.
func TotalSatsGTE(v int64) predicate.PayoutBatch {
	return predicate.PayoutBatch(sql.FieldGTE(FieldTotalSats, v))
}

// TotalSatsLT applies the LT predicate on the "total_sats" field.
func TotalSatsLT(v int64) predicate.PayoutBatch {
	return predicate.PayoutBatch(sql.FieldLT(FieldTotalSats, v))
}

// TotalSatsLTE applies the LTE predicate on the "total_sats" field.
func TotalSatsLTE(v int64) predicate.PayoutBatch {
	return predicate.PayoutBatch(sql.FieldLTE(FieldTotalSats, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.PayoutBatch {
	return predicate.PayoutBatch(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.PayoutBatch {
	return predicate.PayoutBatch(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.PayoutBatch {
	return predicate.PayoutBatch(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.PayoutBatch {
	return predicate.PayoutBatch(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.PayoutBatch {
	return predicate.PayoutBatch(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.PayoutBatch {
	return predicate.PayoutBatch(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.PayoutBatch {
	return predicate.PayoutBatch(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.PayoutBatch {
	return predicate.PayoutBatch(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.PayoutBatch {
	return predicate.PayoutBatch(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.PayoutBatch {
	return predicate.PayoutBatch(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.PayoutBatch {
	return predicate.PayoutBatch(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.PayoutBatch {
	return predicate.PayoutBatch(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.PayoutBatch {
	return predicate.PayoutBatch(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.PayoutBatch {
	return predicate.PayoutBatch(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.PayoutBatch {
	return predicate.PayoutBatch(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.PayoutBatch {
	return predicate.PayoutBatch(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PayoutBatch) predicate.PayoutBatch {
	return predicate.PayoutBatch(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PayoutBatch) predicate.PayoutBatch {
	return predicate.PayoutBatch(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PayoutBatch) predicate.PayoutBatch {
	return predicate.PayoutBatch(sql.NotPredicates(p))
}
