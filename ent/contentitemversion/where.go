// Code generated by ent, DO NOT EDIT.

package contentitemversion

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/quillgate/quillgate/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ContentItemVersion {
	return predicate.ContentItemVersion(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ContentItemVersion {
	return predicate.ContentItemVersion(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ContentItemVersion {
	return predicate.ContentItemVersion(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ContentItemVersion {
	return predicate.ContentItemVersion(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ContentItemVersion {
	return predicate.ContentItemVersion(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ContentItemVersion {
	return predicate.ContentItemVersion(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ContentItemVersion {
	return predicate.ContentItemVersion(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ContentItemVersion {
	return predicate.ContentItemVersion(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ContentItemVersion {
	return predicate.ContentItemVersion(sql.FieldLTE(FieldID, id))
}

// TenantID applies equality check predicate on the "tenant_id" field. It's identical to TenantIDEQ.
func TenantID(v int) predicate.ContentItemVersion {
	return predicate.ContentItemVersion(sql.FieldEQ(FieldTenantID, v))
}

// ContentItemID applies equality check predicate on the "content_item_id" field. It's identical to ContentItemIDEQ.
func ContentItemID(v int) predicate.ContentItemVersion {
	return predicate.ContentItemVersion(sql.FieldEQ(FieldContentItemID, v))
}

// Data applies equality check predicate on the "data" field. It's identical to DataEQ.
func Data(v string) predicate.ContentItemVersion {
	return predicate.ContentItemVersion(sql.FieldEQ(FieldData, v))
}

// Version applies equality check predicate on the "version" field. It's identical to VersionEQ.
func Version(v int) predicate.ContentItemVersion {
	return predicate.ContentItemVersion(sql.FieldEQ(FieldVersion, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ContentItemVersion {
	return predicate.ContentItemVersion(sql.FieldEQ(FieldCreatedAt, v))
}

// TenantIDEQ applies the EQ predicate on the "tenant_id" field.
func TenantIDEQ(v int) predicate.ContentItemVersion {
	return predicate.ContentItemVersion(sql.FieldEQ(FieldTenantID, v))
}

// TenantIDNEQ applies the NEQ predicate on the "tenant_id" field.
func TenantIDNEQ(v int) predicate.ContentItemVersion {
	return predicate.ContentItemVersion(sql.FieldNEQ(FieldTenantID, v))
}

// TenantIDIn applies the In predicate on the "tenant_id" field.
func TenantIDIn(vs ...int) predicate.ContentItemVersion {
	return predicate.ContentItemVersion(sql.FieldIn(FieldTenantID, vs...))
}

// TenantIDNotIn applies the NotIn predicate on the "tenant_id" field.
func TenantIDNotIn(vs ...int) predicate.ContentItemVersion {
	return predicate.ContentItemVersion(sql.FieldNotIn(FieldTenantID, vs...))
}

// TenantIDGT applies the GT predicate on the "tenant_id" field.
func TenantIDGT(v int) predicate.ContentItemVersion {
	return predicate.ContentItemVersion(sql.FieldGT(FieldTenantID, v))
}

// TenantIDGTE applies the GTE predicate on the "tenant_id" field.
func TenantIDGTE(v int) predicate.ContentItemVersion {
	return predicate.ContentItemVersion(sql.FieldGTE(FieldTenantID, v))
}

// TenantIDLT applies the LT predicate on the "tenant_id" field.
func TenantIDLT(v int) predicate.ContentItemVersion {
	return predicate.ContentItemVersion(sql.FieldLT(FieldTenantID, v))
}

// TenantIDLTE applies the LTE predicate on the "tenant_id" field.
func TenantIDLTE(v int) predicate.ContentItemVersion {
	return predicate.ContentItemVersion(sql.FieldLTE(FieldTenantID, v))
}

// ContentItemIDEQ applies the EQ predicate on the "content_item_id" field.
func ContentItemIDEQ(v int) predicate.ContentItemVersion {
	return predicate.ContentItemVersion(sql.FieldEQ(FieldContentItemID, v))
}

// ContentItemIDNEQ applies the NEQ predicate on the "content_item_id" field.
func ContentItemIDNEQ(v int) predicate.ContentItemVersion {
	return predicate.ContentItemVersion(sql.FieldNEQ(FieldContentItemID, v))
}

// ContentItemIDIn applies the In predicate on the "content_item_id" field.
func ContentItemIDIn(vs ...int) predicate.ContentItemVersion {
	return predicate.ContentItemVersion(sql.FieldIn(FieldContentItemID, vs...))
}

// ContentItemIDNotIn applies the NotIn predicate on the "content_item_id" field.
func ContentItemIDNotIn(vs ...int) predicate.ContentItemVersion {
	return predicate.ContentItemVersion(sql.FieldNotIn(FieldContentItemID, vs...))
}

// ContentItemIDGT applies the GT predicate on the "content_item_id" field.
func ContentItemIDGT(v int) predicate.ContentItemVersion {
	return predicate.ContentItemVersion(sql.FieldGT(FieldContentItemID, v))
}

// ContentItemIDGTE applies the GTE predicate on the "content_item_id" field.
func ContentItemIDGTE(v int) predicate.ContentItemVersion {
	return predicate.ContentItemVersion(sql.FieldGTE(FieldContentItemID, v))
}

// ContentItemIDLT applies the LT predicate on the "content_item_id" field.
func ContentItemIDLT(v int) predicate.ContentItemVersion {
	return predicate.ContentItemVersion(sql.FieldLT(FieldContentItemID, v))
}

// ContentItemIDLTE applies the LTE predicate on the "content_item_id" field.
func ContentItemIDLTE(v int) predicate.ContentItemVersion {
	return predicate.ContentItemVersion(sql.FieldLTE(FieldContentItemID, v))
}

// DataEQ applies the EQ predicate on the "data" field.
func DataEQ(v string) predicate.ContentItemVersion {
	return predicate.ContentItemVersion(sql.FieldEQ(FieldData, v))
}

// DataNEQ applies the NEQ predicate on the "data" field.
func DataNEQ(v string) predicate.ContentItemVersion {
	return predicate.ContentItemVersion(sql.FieldNEQ(FieldData, v))
}

// DataIn applies the In predicate on the "data" field.
func DataIn(vs ...string) predicate.ContentItemVersion {
	return predicate.ContentItemVersion(sql.FieldIn(FieldData, vs...))
}

// DataNotIn applies the NotIn predicate on the "data" field.
func DataNotIn(vs ...string) predicate.ContentItemVersion {
	return predicate.ContentItemVersion(sql.FieldNotIn(FieldData, vs...))
}

// DataGT applies the GT predicate on the "data" field.
func DataGT(v string) predicate.ContentItemVersion {
	return predicate.ContentItemVersion(sql.FieldGT(FieldData, v))
}

// DataGTE applies the GTE predicate on the "data" field.
func DataGTE(v string) predicate.ContentItemVersion {
	return predicate.ContentItemVersion(sql.FieldGTE(FieldData, v))
}

// DataLT applies the LT predicate on the "data" field.
func DataLT(v string) predicate.ContentItemVersion {
	return predicate.ContentItemVersion(sql.FieldLT(FieldData, v))
}

// DataLTE applies the LTE predicate on the "data" field.
func DataLTE(v string) predicate.ContentItemVersion {
	return predicate.ContentItemVersion(sql.FieldLTE(FieldData, v))
}

// DataContains applies the Contains predicate on the "data" field.
func DataContains(v string) predicate.ContentItemVersion {
	return predicate.ContentItemVersion(sql.FieldContains(FieldData, v))
}

// DataHasPrefix applies the HasPrefix predicate on the "data" field.
func DataHasPrefix(v string) predicate.ContentItemVersion {
	return predicate.ContentItemVersion(sql.FieldHasPrefix(FieldData, v))
}

// DataHasSuffix applies the HasSuffix predicate on the "data" field.
func DataHasSuffix(v string) predicate.ContentItemVersion {
	return predicate.ContentItemVersion(sql.FieldHasSuffix(FieldData, v))
}

// DataEqualFold applies the EqualFold predicate on the "data" field.
func DataEqualFold(v string) predicate.ContentItemVersion {
	return predicate.ContentItemVersion(sql.FieldEqualFold(FieldData, v))
}

// DataContainsFold applies the ContainsFold predicate on the "data" field.
func DataContainsFold(v string) predicate.ContentItemVersion {
	return predicate.ContentItemVersion(sql.FieldContainsFold(FieldData, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.ContentItemVersion {
	return predicate.ContentItemVersion(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.ContentItemVersion {
	return predicate.ContentItemVersion(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.ContentItemVersion {
	return predicate.ContentItemVersion(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.ContentItemVersion {
	return predicate.ContentItemVersion(sql.FieldNotIn(FieldStatus, vs...))
}

// VersionEQ applies the EQ predicate on the "version" field.
func VersionEQ(v int) predicate.ContentItemVersion {
	return predicate.ContentItemVersion(sql.FieldEQ(FieldVersion, v))
}

// VersionNEQ applies the NEQ predicate on the "version" field.
func VersionNEQ(v int) predicate.ContentItemVersion {
	return predicate.ContentItemVersion(sql.FieldNEQ(FieldVersion, v))
}

// VersionIn applies the In predicate on the "version" field.
func VersionIn(vs ...int) predicate.ContentItemVersion {
	return predicate.ContentItemVersion(sql.FieldIn(FieldVersion, vs...))
}

// VersionNotIn applies the NotIn predicate on the "version" field.
func VersionNotIn(vs ...int) predicate.ContentItemVersion {
	return predicate.ContentItemVersion(sql.FieldNotIn(FieldVersion, vs...))
}

// VersionGT applies the GT predicate on the "version" field.
func VersionGT(v int) predicate.ContentItemVersion {
	return predicate.ContentItemVersion(sql.FieldGT(FieldVersion, v))
}

// VersionGTE applies the GTE predicate on the "version" field.
func VersionGTE(v int) predicate.ContentItemVersion {
	return predicate.ContentItemVersion(sql.FieldGTE(FieldVersion, v))
}

// VersionLT applies the LT predicate on the "version" field.
func VersionLT(v int) predicate.ContentItemVersion {
	return predicate.ContentItemVersion(sql.FieldLT(FieldVersion, v))
}

// VersionLTE applies the LTE predicate on the "version" field.
func VersionLTE(v int) predicate.ContentItemVersion {
	return predicate.ContentItemVersion(sql.FieldLTE(FieldVersion, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ContentItemVersion {
	return predicate.ContentItemVersion(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ContentItemVersion {
	return predicate.ContentItemVersion(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ContentItemVersion {
	return predicate.ContentItemVersion(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ContentItemVersion {
	return predicate.ContentItemVersion(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ContentItemVersion {
	return predicate.ContentItemVersion(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ContentItemVersion {
	return predicate.ContentItemVersion(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ContentItemVersion {
	return predicate.ContentItemVersion(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ContentItemVersion {
	return predicate.ContentItemVersion(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ContentItemVersion) predicate.ContentItemVersion {
	return predicate.ContentItemVersion(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ContentItemVersion) predicate.ContentItemVersion {
	return predicate.ContentItemVersion(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ContentItemVersion) predicate.ContentItemVersion {
	return predicate.ContentItemVersion(sql.NotPredicates(p))
}
