// Code generated by ent, DO NOT EDIT.

package payment

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/quillgate/quillgate/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Payment {
	return predicate.Payment(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Payment {
	return predicate.Payment(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Payment {
	return predicate.Payment(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Payment {
	return predicate.Payment(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Payment {
	return predicate.Payment(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Payment {
	return predicate.Payment(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Payment {
	return predicate.Payment(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Payment {
	return predicate.Payment(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Payment {
	return predicate.Payment(sql.FieldLTE(FieldID, id))
}

// TenantID applies equality check predicate on the "tenant_id" field. It's identical to TenantIDEQ.
func TenantID(v int) predicate.Payment {
	return predicate.Payment(sql.FieldEQ(FieldTenantID, v))
}

// PaymentHash applies equality check predicate on the "payment_hash" field. It's identical to PaymentHashEQ.
func PaymentHash(v string) predicate.Payment {
	return predicate.Payment(sql.FieldEQ(FieldPaymentHash, v))
}

// Provider applies equality check predicate on the "provider" field. It's identical to ProviderEQ.
func Provider(v string) predicate.Payment {
	return predicate.Payment(sql.FieldEQ(FieldProvider, v))
}

// ProviderInvoiceID applies equality check predicate on the "provider_invoice_id" field. It's identical to ProviderInvoiceIDEQ.
func ProviderInvoiceID(v string) predicate.Payment {
	return predicate.Payment(sql.FieldEQ(FieldProviderInvoiceID, v))
}

// PaymentRequest applies equality check predicate on the "payment_request" field. It's identical to PaymentRequestEQ.
func PaymentRequest(v string) predicate.Payment {
	return predicate.Payment(sql.FieldEQ(FieldPaymentRequest, v))
}

// AmountSats applies equality check predicate on the "amount_sats" field. It's identical to AmountSatsEQ.
func AmountSats(v int64) predicate.Payment {
	return predicate.Payment(sql.FieldEQ(FieldAmountSats, v))
}

// ExpiresAt applies equality check predicate on the "expires_at" field. It's identical to ExpiresAtEQ.
func ExpiresAt(v time.Time) predicate.Payment {
	return predicate.Payment(sql.FieldEQ(FieldExpiresAt, v))
}

// SettledAt applies equality check predicate on the "settled_at" field. It's identical to SettledAtEQ.
func SettledAt(v time.Time) predicate.Payment {
	return predicate.Payment(sql.FieldEQ(FieldSettledAt, v))
}

// FailureReason applies equality check predicate on the "failure_reason" field. It's identical to FailureReasonEQ.
func FailureReason(v string) predicate.Payment {
	return predicate.Payment(sql.FieldEQ(FieldFailureReason, v))
}

// LastEventID applies equality check predicate on the "last_event_id" field. It's identical to LastEventIDEQ.
func LastEventID(v string) predicate.Payment {
	return predicate.Payment(sql.FieldEQ(FieldLastEventID, v))
}

// ResourcePath applies equality check predicate on the "resource_path" field. It's identical to ResourcePathEQ.
func ResourcePath(v string) predicate.Payment {
	return predicate.Payment(sql.FieldEQ(FieldResourcePath, v))
}

// ActorID applies equality check predicate on the "actor_id" field. It's identical to ActorIDEQ.
func ActorID(v string) predicate.Payment {
	return predicate.Payment(sql.FieldEQ(FieldActorID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Payment {
	return predicate.Payment(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Payment {
	return predicate.Payment(sql.FieldEQ(FieldUpdatedAt, v))
}

// TenantIDEQ applies the EQ predicate on the "tenant_id" field.
func TenantIDEQ(v int) predicate.Payment {
	return predicate.Payment(sql.FieldEQ(FieldTenantID, v))
}

// TenantIDNEQ applies the NEQ predicate on the "tenant_id" field.
func TenantIDNEQ(v int) predicate.Payment {
	return predicate.Payment(sql.FieldNEQ(FieldTenantID, v))
}

// TenantIDIn applies the In predicate on the "tenant_id" field.
func TenantIDIn(vs ...int) predicate.Payment {
	return predicate.Payment(sql.FieldIn(FieldTenantID, vs...))
}

// TenantIDNotIn applies the NotIn predicate on the "tenant_id" field.
func TenantIDNotIn(vs ...int) predicate.Payment {
	return predicate.Payment(sql.FieldNotIn(FieldTenantID, vs...))
}

// TenantIDGT applies the GT predicate on the "tenant_id" field.
func TenantIDGT(v int) predicate.Payment {
	return predicate.Payment(sql.FieldGT(FieldTenantID, v))
}

// TenantIDGTE applies the GTE predicate on the "tenant_id" field.
func TenantIDGTE(v int) predicate.Payment {
	return predicate.Payment(sql.FieldGTE(FieldTenantID, v))
}

// TenantIDLT applies the LT predicate on the "tenant_id" field.
func TenantIDLT(v int) predicate.Payment {
	return predicate.Payment(sql.FieldLT(FieldTenantID, v))
}

// TenantIDLTE applies the LTE predicate on the "tenant_id" field.
func TenantIDLTE(v int) predicate.Payment {
	return predicate.Payment(sql.FieldLTE(FieldTenantID, v))
}

// PaymentHashEQ applies the EQ predicate on the "payment_hash" field.
func PaymentHashEQ(v string) predicate.Payment {
	return predicate.Payment(sql.FieldEQ(FieldPaymentHash, v))
}

// PaymentHashNEQ applies the NEQ predicate on the "payment_hash" field.
func PaymentHashNEQ(v string) predicate.Payment {
	return predicate.Payment(sql.FieldNEQ(FieldPaymentHash, v))
}

// PaymentHashIn applies the In predicate on the "payment_hash" field.
func PaymentHashIn(vs ...string) predicate.Payment {
	return predicate.Payment(sql.FieldIn(FieldPaymentHash, vs...))
}

// PaymentHashNotIn applies the NotIn predicate on the "payment_hash" field.
func PaymentHashNotIn(vs ...string) predicate.Payment {
	return predicate.Payment(sql.FieldNotIn(FieldPaymentHash, vs...))
}

// PaymentHashGT applies the GT predicate on the "payment_hash" field.
func PaymentHashGT(v string) predicate.Payment {
	return predicate.Payment(sql.FieldGT(FieldPaymentHash, v))
}

// PaymentHashGTE applies the GTE predicate on the "payment_hash" field.
func PaymentHashGTE(v string) predicate.Payment {
	return predicate.Payment(sql.FieldGTE(FieldPaymentHash, v))
}

// PaymentHashLT applies the LT predicate on the "payment_hash" field.
func PaymentHashLT(v string) predicate.Payment {
	return predicate.Payment(sql.FieldLT(FieldPaymentHash, v))
}

// PaymentHashLTE applies the LTE predicate on the "payment_hash" field.
func PaymentHashLTE(v string) predicate.Payment {
	return predicate.Payment(sql.FieldLTE(FieldPaymentHash, v))
}

// PaymentHashContains applies the Contains predicate on the "payment_hash" field.
func PaymentHashContains(v string) predicate.Payment {
	return predicate.Payment(sql.FieldContains(FieldPaymentHash, v))
}

// PaymentHashHasPrefix applies the HasPrefix predicate on the "payment_hash" field.
func PaymentHashHasPrefix(v string) predicate.Payment {
	return predicate.Payment(sql.FieldHasPrefix(FieldPaymentHash, v))
}

// PaymentHashHasSuffix applies the HasSuffix predicate on the "payment_hash" field.
func PaymentHashHasSuffix(v string) predicate.Payment {
	return predicate.Payment(sql.FieldHasSuffix(FieldPaymentHash, v))
}

// PaymentHashEqualFold applies the EqualFold predicate on the "payment_hash" field.
func PaymentHashEqualFold(v string) predicate.Payment {
	return predicate.Payment(sql.FieldEqualFold(FieldPaymentHash, v))
}

// PaymentHashContainsFold applies the ContainsFold predicate on the "payment_hash" field.
func PaymentHashContainsFold(v string) predicate.Payment {
	return predicate.Payment(sql.FieldContainsFold(FieldPaymentHash, v))
}

// ProviderEQ applies the EQ predicate on the "provider" field.
func ProviderEQ(v string) predicate.Payment {
	return predicate.Payment(sql.FieldEQ(FieldProvider, v))
}

// ProviderNEQ applies the NEQ predicate on the "provider" field.
func ProviderNEQ(v string) predicate.Payment {
	return predicate.Payment(sql.FieldNEQ(FieldProvider, v))
}

// ProviderIn applies the In predicate on the "provider" field.
func ProviderIn(vs ...string) predicate.Payment {
	return predicate.Payment(sql.FieldIn(FieldProvider, vs...))
}

// ProviderNotIn applies the NotIn predicate on the "provider" field.
func ProviderNotIn(vs ...string) predicate.Payment {
	return predicate.Payment(sql.FieldNotIn(FieldProvider, vs...))
}

// ProviderGT applies the GT predicate on the "provider" field.
func ProviderGT(v string) predicate.Payment {
	return predicate.Payment(sql.FieldGT(FieldProvider, v))
}

// ProviderGTE applies the GTE predicate on the "provider" field.
func ProviderGTE(v string) predicate.Payment {
	return predicate.Payment(sql.FieldGTE(FieldProvider, v))
}

// ProviderLT applies the LT predicate on the "provider" field.
func ProviderLT(v string) predicate.Payment {
	return predicate.Payment(sql.FieldLT(FieldProvider, v))
}

// ProviderLTE applies the LTE predicate on the "provider" field.
func ProviderLTE(v string) predicate.Payment {
	return predicate.Payment(sql.FieldLTE(FieldProvider, v))
}

// ProviderContains applies the Contains predicate on the "provider" field.
func ProviderContains(v string) predicate.Payment {
	return predicate.Payment(sql.FieldContains(FieldProvider, v))
}

// ProviderHasPrefix applies the HasPrefix predicate on the "provider" field.
func ProviderHasPrefix(v string) predicate.Payment {
	return predicate.Payment(sql.FieldHasPrefix(FieldProvider, v))
}

// ProviderHasSuffix applies the HasSuffix predicate on the "provider" field.
func ProviderHasSuffix(v string) predicate.Payment {
	return predicate.Payment(sql.FieldHasSuffix(FieldProvider, v))
}

// ProviderEqualFold applies the EqualFold predicate on the "provider" field.
func ProviderEqualFold(v string) predicate.Payment {
	return predicate.Payment(sql.FieldEqualFold(FieldProvider, v))
}

// ProviderContainsFold applies the ContainsFold predicate on the "provider" field.
func ProviderContainsFold(v string) predicate.Payment {
	return predicate.Payment(sql.FieldContainsFold(FieldProvider, v))
}

// ProviderInvoiceIDEQ applies the EQ predicate on the "provider_invoice_id" field.
func ProviderInvoiceIDEQ(v string) predicate.Payment {
	return predicate.Payment(sql.FieldEQ(FieldProviderInvoiceID, v))
}

// ProviderInvoiceIDNEQ applies the NEQ predicate on the "provider_invoice_id" field.
func ProviderInvoiceIDNEQ(v string) predicate.Payment {
	return predicate.Payment(sql.FieldNEQ(FieldProviderInvoiceID, v))
}

// ProviderInvoiceIDIn applies the In predicate on the "provider_invoice_id" field.
func ProviderInvoiceIDIn(vs ...string) predicate.Payment {
	return predicate.Payment(sql.FieldIn(FieldProviderInvoiceID, vs...))
}

// ProviderInvoiceIDNotIn applies the NotIn predicate on the "provider_invoice_id" field.
func ProviderInvoiceIDNotIn(vs ...string) predicate.Payment {
	return predicate.Payment(sql.FieldNotIn(FieldProviderInvoiceID, vs...))
}

// ProviderInvoiceIDGT applies the GT predicate on the "provider_invoice_id" field.
func ProviderInvoiceIDGT(v string) predicate.Payment {
	return predicate.Payment(sql.FieldGT(FieldProviderInvoiceID, v))
}

// ProviderInvoiceIDGTE applies the GTE predicate on the "provider_invoice_id" field.
func ProviderInvoiceIDGTE(v string) predicate.Payment {
	return predicate.Payment(sql.FieldGTE(FieldProviderInvoiceID, v))
}

// ProviderInvoiceIDLT applies the LT predicate on the "provider_invoice_id" field.
func ProviderInvoiceIDLT(v string) predicate.Payment {
	return predicate.Payment(sql.FieldLT(FieldProviderInvoiceID, v))
}

// ProviderInvoiceIDLTE applies the LTE predicate on the "provider_invoice_id" field.
func ProviderInvoiceIDLTE(v string) predicate.Payment {
	return predicate.Payment(sql.FieldLTE(FieldProviderInvoiceID, v))
}

// ProviderInvoiceIDContains applies the Contains predicate on the "provider_invoice_id" field.
func ProviderInvoiceIDContains(v string) predicate.Payment {
	return predicate.Payment(sql.FieldContains(FieldProviderInvoiceID, v))
}

// ProviderInvoiceIDHasPrefix applies the HasPrefix predicate on the "provider_invoice_id" field.
func ProviderInvoiceIDHasPrefix(v string) predicate.Payment {
	return predicate.Payment(sql.FieldHasPrefix(FieldProviderInvoiceID, v))
}

// ProviderInvoiceIDHasSuffix applies the HasSuffix predicate on the "provider_invoice_id" field.
func ProviderInvoiceIDHasSuffix(v string) predicate.Payment {
	return predicate.Payment(sql.FieldHasSuffix(FieldProviderInvoiceID, v))
}

// ProviderInvoiceIDIsNil applies the IsNil predicate on the "provider_invoice_id" field.
func ProviderInvoiceIDIsNil() predicate.Payment {
	return predicate.Payment(sql.FieldIsNull(FieldProviderInvoiceID))
}

// ProviderInvoiceIDNotNil applies the NotNil predicate on the "provider_invoice_id" field.
func ProviderInvoiceIDNotNil() predicate.Payment {
	return predicate.Payment(sql.FieldNotNull(FieldProviderInvoiceID))
}

// ProviderInvoiceIDEqualFold applies the EqualFold predicate on the "provider_invoice_id" field.
func ProviderInvoiceIDEqualFold(v string) predicate.Payment {
	return predicate.Payment(sql.FieldEqualFold(FieldProviderInvoiceID, v))
}

// ProviderInvoiceIDContainsFold applies the ContainsFold predicate on the "provider_invoice_id" field.
func ProviderInvoiceIDContainsFold(v string) predicate.Payment {
	return predicate.Payment(sql.FieldContainsFold(FieldProviderInvoiceID, v))
}

// PaymentRequestEQ applies the EQ predicate on the "payment_request" field.
func PaymentRequestEQ(v string) predicate.Payment {
	return predicate.Payment(sql.FieldEQ(FieldPaymentRequest, v))
}

// PaymentRequestNEQ applies the NEQ predicate on the "payment_request" field.
func PaymentRequestNEQ(v string) predicate.Payment {
	return predicate.Payment(sql.FieldNEQ(FieldPaymentRequest, v))
}

// PaymentRequestIn applies the In predicate on the "payment_request" field.
func PaymentRequestIn(vs ...string) predicate.Payment {
	return predicate.Payment(sql.FieldIn(FieldPaymentRequest, vs...))
}

// PaymentRequestNotIn applies the NotIn predicate on the "payment_request" field.
func PaymentRequestNotIn(vs ...string) predicate.Payment {
	return predicate.Payment(sql.FieldNotIn(FieldPaymentRequest, vs...))
}

// PaymentRequestGT applies the GT predicate on the "payment_request" field.
func PaymentRequestGT(v string) predicate.Payment {
	return predicate.Payment(sql.FieldGT(FieldPaymentRequest, v))
}

// PaymentRequestGTE applies the GTE predicate on the "payment_request" field.
func PaymentRequestGTE(v string) predicate.Payment {
	return predicate.Payment(sql.FieldGTE(FieldPaymentRequest, v))
}

// PaymentRequestLT applies the LT predicate on the "payment_request" field.
func PaymentRequestLT(v string) predicate.Payment {
	return predicate.Payment(sql.FieldLT(FieldPaymentRequest, v))
}

// PaymentRequestLTE applies the LTE predicate on the "payment_request" field.
func PaymentRequestLTE(v string) predicate.Payment {
	return predicate.Payment(sql.FieldLTE(FieldPaymentRequest, v))
}

// PaymentRequestContains applies the Contains predicate on the "payment_request" field.
func PaymentRequestContains(v string) predicate.Payment {
	return predicate.Payment(sql.FieldContains(FieldPaymentRequest, v))
}

// PaymentRequestHasPrefix applies the HasPrefix predicate on the "payment_request" field.
func PaymentRequestHasPrefix(v string) predicate.Payment {
	return predicate.Payment(sql.FieldHasPrefix(FieldPaymentRequest, v))
}

// PaymentRequestHasSuffix applies the HasSuffix predicate on the "payment_request" field.
func PaymentRequestHasSuffix(v string) predicate.Payment {
	return predicate.Payment(sql.FieldHasSuffix(FieldPaymentRequest, v))
}

// PaymentRequestEqualFold applies the EqualFold predicate on the "payment_request" field.
func PaymentRequestEqualFold(v string) predicate.Payment {
	return predicate.Payment(sql.FieldEqualFold(FieldPaymentRequest, v))
}

// PaymentRequestContainsFold applies the ContainsFold predicate on the "payment_request" field.
func PaymentRequestContainsFold(v string) predicate.Payment {
	return predicate.Payment(sql.FieldContainsFold(FieldPaymentRequest, v))
}

// AmountSatsEQ applies the EQ predicate on the "amount_sats" field.
func AmountSatsEQ(v int64) predicate.Payment {
	return predicate.Payment(sql.FieldEQ(FieldAmountSats, v))
}

// AmountSatsNEQ applies the NEQ predicate on the "amount_sats" field.
func AmountSatsNEQ(v int64) predicate.Payment {
	return predicate.Payment(sql.FieldNEQ(FieldAmountSats, v))
}

// AmountSatsIn applies the In predicate on the "amount_sats" field.
func AmountSatsIn(vs ...int64) predicate.Payment {
	return predicate.Payment(sql.FieldIn(FieldAmountSats, vs...))
}

// AmountSatsNotIn applies the NotIn predicate on the "amount_sats" field.
func AmountSatsNotIn(vs ...int64) predicate.Payment {
	return predicate.Payment(sql.FieldNotIn(FieldAmountSats, vs...))
}

// AmountSatsGT applies the GT predicate on the "amount_sats" field.
func AmountSatsGT(v int64) predicate.Payment {
	return predicate.Payment(sql.FieldGT(FieldAmountSats, v))
}

// AmountSatsGTE applies the GTE predicate on the "amount_sats" field.
func AmountSatsGTE(v int64) predicate.Payment {
	return predicate.Payment(sql.FieldGTE(FieldAmountSats, v))
}

// AmountSatsLT applies the LT predicate on the "amount_sats" field.
func AmountSatsLT(v int64) predicate.Payment {
	return predicate.Payment(sql.FieldLT(FieldAmountSats, v))
}

// AmountSatsLTE applies the LTE predicate on the "amount_sats" field.
func AmountSatsLTE(v int64) predicate.Payment {
	return predicate.Payment(sql.FieldLTE(FieldAmountSats, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Payment {
	return predicate.Payment(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Payment {
	return predicate.Payment(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Payment {
	return predicate.Payment(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Payment {
	return predicate.Payment(sql.FieldNotIn(FieldStatus, vs...))
}

// ExpiresAtEQ applies the EQ predicate on the "expires_at" field.
func ExpiresAtEQ(v time.Time) predicate.Payment {
	return predicate.Payment(sql.FieldEQ(FieldExpiresAt, v))
}

// ExpiresAtNEQ applies the NEQ predicate on the "expires_at" field.
func ExpiresAtNEQ(v time.Time) predicate.Payment {
	return predicate.Payment(sql.FieldNEQ(FieldExpiresAt, v))
}

// ExpiresAtIn applies the In predicate on the "expires_at" field.
func ExpiresAtIn(vs ...time.Time) predicate.Payment {
	return predicate.Payment(sql.FieldIn(FieldExpiresAt, vs...))
}

// ExpiresAtNotIn applies the NotIn predicate on the "expires_at" field.
func ExpiresAtNotIn(vs ...time.Time) predicate.Payment {
	return predicate.Payment(sql.FieldNotIn(FieldExpiresAt, vs...))
}

// ExpiresAtGT applies the GT predicate on the "expires_at" field.
func ExpiresAtGT(v time.Time) predicate.Payment {
	return predicate.Payment(sql.FieldGT(FieldExpiresAt, v))
}

// ExpiresAtGTE applies the GTE predicate on the "expires_at" field.
func ExpiresAtGTE(v time.Time) predicate.Payment {
	return predicate.Payment(sql.FieldGTE(FieldExpiresAt, v))
}

// ExpiresAtLT applies the LT predicate on the "expires_at" field.
func ExpiresAtLT(v time.Time) predicate.Payment {
	return predicate.Payment(sql.FieldLT(FieldExpiresAt, v))
}

// ExpiresAtLTE applies the LTE predicate on the "expires_at" field.
func ExpiresAtLTE(v time.Time) predicate.Payment {
	return predicate.Payment(sql.FieldLTE(FieldExpiresAt, v))
}

// SettledAtEQ applies the EQ predicate on the "settled_at" field.
func SettledAtEQ(v time.Time) predicate.Payment {
	return predicate.Payment(sql.FieldEQ(FieldSettledAt, v))
}

// SettledAtNEQ applies the NEQ predicate on the "settled_at" field.
func SettledAtNEQ(v time.Time) predicate.Payment {
	return predicate.Payment(sql.FieldNEQ(FieldSettledAt, v))
}

// SettledAtIn applies the In predicate on the "settled_at" field.
func SettledAtIn(vs ...time.Time) predicate.Payment {
	return predicate.Payment(sql.FieldIn(FieldSettledAt, vs...))
}

// SettledAtNotIn applies the NotIn predicate on the "settled_at" field.
func SettledAtNotIn(vs ...time.Time) predicate.Payment {
	return predicate.Payment(sql.FieldNotIn(FieldSettledAt, vs...))
}

// SettledAtGT applies the GT predicate on the "settled_at" field.
func SettledAtGT(v time.Time) predicate.Payment {
	return predicate.Payment(sql.FieldGT(FieldSettledAt, v))
}

// SettledAtGTE applies the GTE predicate on the "settled_at" field.
func SettledAtGTE(v time.Time) predicate.Payment {
	return predicate.Payment(sql.FieldGTE(FieldSettledAt, v))
}

// SettledAtLT applies the LT predicate on the "settled_at" field.
func SettledAtLT(v time.Time) predicate.Payment {
	return predicate.Payment(sql.FieldLT(FieldSettledAt, v))
}

// SettledAtLTE applies the LTE predicate on the "settled_at" field.
func SettledAtLTE(v time.Time) predicate.Payment {
	return predicate.Payment(sql.FieldLTE(FieldSettledAt, v))
}

// SettledAtIsNil applies the IsNil predicate on the "settled_at" field.
func SettledAtIsNil() predicate.Payment {
	return predicate.Payment(sql.FieldIsNull(FieldSettledAt))
}

// SettledAtNotNil applies the NotNil predicate on the "settled_at" field.
func SettledAtNotNil() predicate.Payment {
	return predicate.Payment(sql.FieldNotNull(FieldSettledAt))
}

// FailureReasonEQ applies the EQ predicate on the "failure_reason" field.
func FailureReasonEQ(v string) predicate.Payment {
	return predicate.Payment(sql.FieldEQ(FieldFailureReason, v))
}

// FailureReasonNEQ applies the NEQ predicate on the "failure_reason" field.
func FailureReasonNEQ(v string) predicate.Payment {
	return predicate.Payment(sql.FieldNEQ(FieldFailureReason, v))
}

// FailureReasonIn applies the In predicate on the "failure_reason" field.
func FailureReasonIn(vs ...string) predicate.Payment {
	return predicate.Payment(sql.FieldIn(FieldFailureReason, vs...))
}

// FailureReasonNotIn applies the NotIn predicate on the "failure_reason" field.
func FailureReasonNotIn(vs ...string) predicate.Payment {
	return predicate.Payment(sql.FieldNotIn(FieldFailureReason, vs...))
}

// FailureReasonGT applies the GT predicate on the "failure_reason" field.
func FailureReasonGT(v string) predicate.Payment {
	return predicate.Payment(sql.FieldGT(FieldFailureReason, v))
}

// FailureReasonGTE applies the GTE predicate on the "failure_reason" field.
func FailureReasonGTE(v string) predicate.Payment {
	return predicate.Payment(sql.FieldGTE(FieldFailureReason, v))
}

// FailureReasonLT applies the LT predicate on the "failure_reason" field.
func FailureReasonLT(v string) predicate.Payment {
	return predicate.Payment(sql.FieldLT(FieldFailureReason, v))
}

// FailureReasonLTE applies the LTE predicate on the "failure_reason" field.
func FailureReasonLTE(v string) predicate.Payment {
	return predicate.Payment(sql.FieldLTE(FieldFailureReason, v))
}

// FailureReasonContains applies the Contains predicate on the "failure_reason" field.
func FailureReasonContains(v string) predicate.Payment {
	return predicate.Payment(sql.FieldContains(FieldFailureReason, v))
}

// FailureReasonHasPrefix applies the HasPrefix predicate on the "failure_reason" field.
func FailureReasonHasPrefix(v string) predicate.Payment {
	return predicate.Payment(sql.FieldHasPrefix(FieldFailureReason, v))
}

// FailureReasonHasSuffix applies the HasSuffix predicate on the "failure_reason" field.
func FailureReasonHasSuffix(v string) predicate.Payment {
	return predicate.Payment(sql.FieldHasSuffix(FieldFailureReason, v))
}

// FailureReasonIsNil applies the IsNil predicate on the "failure_reason" field.
func FailureReasonIsNil() predicate.Payment {
	return predicate.Payment(sql.FieldIsNull(FieldFailureReason))
}

// FailureReasonNotNil applies the NotNil predicate on the "failure_reason" field.
func FailureReasonNotNil() predicate.Payment {
	return predicate.Payment(sql.FieldNotNull(FieldFailureReason))
}

// FailureReasonEqualFold applies the EqualFold predicate on the "failure_reason" field.
func FailureReasonEqualFold(v string) predicate.Payment {
	return predicate.Payment(sql.FieldEqualFold(FieldFailureReason, v))
}

// FailureReasonContainsFold applies the ContainsFold predicate on the "failure_reason" field.
func FailureReasonContainsFold(v string) predicate.Payment {
	return predicate.Payment(sql.FieldContainsFold(FieldFailureReason, v))
}

// LastEventIDEQ applies the EQ predicate on the "last_event_id" field.
func LastEventIDEQ(v string) predicate.Payment {
	return predicate.Payment(sql.FieldEQ(FieldLastEventID, v))
}

// LastEventIDNEQ applies the NEQ predicate on the "last_event_id" field.
func LastEventIDNEQ(v string) predicate.Payment {
	return predicate.Payment(sql.FieldNEQ(FieldLastEventID, v))
}

// LastEventIDIn applies the In predicate on the "last_event_id" field.
func LastEventIDIn(vs ...string) predicate.Payment {
	return predicate.Payment(sql.FieldIn(FieldLastEventID, vs...))
}

// LastEventIDNotIn applies the NotIn predicate on the "last_event_id" field.
func LastEventIDNotIn(vs ...string) predicate.Payment {
	return predicate.Payment(sql.FieldNotIn(FieldLastEventID, vs...))
}

// LastEventIDGT applies the GT predicate on the "last_event_id" field.
func LastEventIDGT(v string) predicate.Payment {
	return predicate.Payment(sql.FieldGT(FieldLastEventID, v))
}

// LastEventIDGTE applies the GTE predicate on the "last_event_id" field.
func LastEventIDGTE(v string) predicate.Payment {
	return predicate.Payment(sql.FieldGTE(FieldLastEventID, v))
}

// LastEventIDLT applies the LT predicate on the "last_event_id" field.
func LastEventIDLT(v string) predicate.Payment {
	return predicate.Payment(sql.FieldLT(FieldLastEventID, v))
}

// LastEventIDLTE applies the LTE predicate on the "last_event_id" field.
func LastEventIDLTE(v string) predicate.Payment {
	return predicate.Payment(sql.FieldLTE(FieldLastEventID, v))
}

// LastEventIDContains applies the Contains predicate on the "last_event_id" field.
func LastEventIDContains(v string) predicate.Payment {
	return predicate.Payment(sql.FieldContains(FieldLastEventID, v))
}

// LastEventIDHasPrefix applies the HasPrefix predicate on the "last_event_id" field.
func LastEventIDHasPrefix(v string) predicate.Payment {
	return predicate.Payment(sql.FieldHasPrefix(FieldLastEventID, v))
}

// LastEventIDHasSuffix applies the HasSuffix predicate on the "last_event_id" field.
func LastEventIDHasSuffix(v string) predicate.Payment {
	return predicate.Payment(sql.FieldHasSuffix(FieldLastEventID, v))
}

// LastEventIDIsNil applies the IsNil predicate on the "last_event_id" field.
func LastEventIDIsNil() predicate.Payment {
	return predicate.Payment(sql.FieldIsNull(FieldLastEventID))
}

// LastEventIDNotNil applies the NotNil predicate on the "last_event_id" field.
func LastEventIDNotNil() predicate.Payment {
	return predicate.Payment(sql.FieldNotNull(FieldLastEventID))
}

// LastEventIDEqualFold applies the EqualFold predicate on the "last_event_id" field.
func LastEventIDEqualFold(v string) predicate.Payment {
	return predicate.Payment(sql.FieldEqualFold(FieldLastEventID, v))
}

// LastEventIDContainsFold applies the ContainsFold predicate on the "last_event_id" field.
func LastEventIDContainsFold(v string) predicate.Payment {
	return predicate.Payment(sql.FieldContainsFold(FieldLastEventID, v))
}

// ResourcePathEQ applies the EQ predicate on the "resource_path" field.
func ResourcePathEQ(v string) predicate.Payment {
	return predicate.Payment(sql.FieldEQ(FieldResourcePath, v))
}

// ResourcePathNEQ applies the NEQ predicate on the "resource_path" field.
func ResourcePathNEQ(v string) predicate.Payment {
	return predicate.Payment(sql.FieldNEQ(FieldResourcePath, v))
}

// ResourcePathIn applies the In predicate on the "resource_path" field.
func ResourcePathIn(vs ...string) predicate.Payment {
	return predicate.Payment(sql.FieldIn(FieldResourcePath, vs...))
}

// ResourcePathNotIn applies the NotIn predicate on the "resource_path" field.
func ResourcePathNotIn(vs ...string) predicate.Payment {
	return predicate.Payment(sql.FieldNotIn(FieldResourcePath, vs...))
}

// ResourcePathGT applies the GT predicate on the "resource_path" field.
func ResourcePathGT(v string) predicate.Payment {
	return predicate.Payment(sql.FieldGT(FieldResourcePath, v))
}

// ResourcePathGTE applies the GTE predicate on the "resource_path" field.
func ResourcePathGTE(v string) predicate.Payment {
	return predicate.Payment(sql.FieldGTE(FieldResourcePath, v))
}

// ResourcePathLT applies the LT predicate on the "resource_path" field.
func ResourcePathLT(v string) predicate.Payment {
	return predicate.Payment(sql.FieldLT(FieldResourcePath, v))
}

// ResourcePathLTE applies the LTE predicate on the "resource_path" field.
func ResourcePathLTE(v string) predicate.Payment {
	return predicate.Payment(sql.FieldLTE(FieldResourcePath, v))
}

// ResourcePathContains applies the Contains predicate on the "resource_path" field.
func ResourcePathContains(v string) predicate.Payment {
	return predicate.Payment(sql.FieldContains(FieldResourcePath, v))
}

// ResourcePathHasPrefix applies the HasPrefix predicate on the "resource_path" field.
func ResourcePathHasPrefix(v string) predicate.Payment {
	return predicate.Payment(sql.FieldHasPrefix(FieldResourcePath, v))
}

// ResourcePathHasSuffix applies the HasSuffix predicate on the "resource_path" field.
func ResourcePathHasSuffix(v string) predicate.Payment {
	return predicate.Payment(sql.FieldHasSuffix(FieldResourcePath, v))
}

// ResourcePathEqualFold applies the EqualFold predicate on the "resource_path" field.
func ResourcePathEqualFold(v string) predicate.Payment {
	return predicate.Payment(sql.FieldEqualFold(FieldResourcePath, v))
}

// ResourcePathContainsFold applies the ContainsFold predicate on the "resource_path" field.
func ResourcePathContainsFold(v string) predicate.Payment {
	return predicate.Payment(sql.FieldContainsFold(FieldResourcePath, v))
}

// ActorIDEQ applies the EQ predicate on the "actor_id" field.
func ActorIDEQ(v string) predicate.Payment {
	return predicate.Payment(sql.FieldEQ(FieldActorID, v))
}

// ActorIDNEQ applies the NEQ predicate on the "actor_id" field.
func ActorIDNEQ(v string) predicate.Payment {
	return predicate.Payment(sql.FieldNEQ(FieldActorID, v))
}

// ActorIDIn applies the In predicate on the "actor_id" field.
func ActorIDIn(vs ...string) predicate.Payment {
	return predicate.Payment(sql.FieldIn(FieldActorID, vs...))
}

// ActorIDNotIn applies the NotIn predicate on the "actor_id" field.
func ActorIDNotIn(vs ...string) predicate.Payment {
	return predicate.Payment(sql.FieldNotIn(FieldActorID, vs...))
}

// ActorIDGT applies the GT predicate on the "actor_id" field.
func ActorIDGT(v string) predicate.Payment {
	return predicate.Payment(sql.FieldGT(FieldActorID, v))
}

// ActorIDGTE applies the GTE predicate on the "actor_id" field.
func ActorIDGTE(v string) predicate.Payment {
	return predicate.Payment(sql.FieldGTE(FieldActorID, v))
}

// ActorIDLT applies the LT predicate on the "actor_id" field.
func ActorIDLT(v string) predicate.Payment {
	return predicate.Payment(sql.FieldLT(FieldActorID, v))
}

// ActorIDLTE applies the LTE predicate on the "actor_id" field.
func ActorIDLTE(v string) predicate.Payment {
	return predicate.Payment(sql.FieldLTE(FieldActorID, v))
}

// ActorIDContains applies the Contains predicate on the "actor_id" field.
func ActorIDContains(v string) predicate.Payment {
	return predicate.Payment(sql.FieldContains(FieldActorID, v))
}

// ActorIDHasPrefix applies the HasPrefix predicate on the "actor_id" field.
func ActorIDHasPrefix(v string) predicate.Payment {
	return predicate.Payment(sql.FieldHasPrefix(FieldActorID, v))
}

// ActorIDHasSuffix applies the HasSuffix predicate on the "actor_id" field.
func ActorIDHasSuffix(v string) predicate.Payment {
	return predicate.Payment(sql.FieldHasSuffix(FieldActorID, v))
}

// ActorIDEqualFold applies the EqualFold predicate on the "actor_id" field.
func ActorIDEqualFold(v string) predicate.Payment {
	return predicate.Payment(sql.FieldEqualFold(FieldActorID, v))
}

// ActorIDContainsFold applies the ContainsFold predicate on the "actor_id" field.
func ActorIDContainsFold(v string) predicate.Payment {
	return predicate.Payment(sql.FieldContainsFold(FieldActorID, v))
}

// DetailsIsNil applies the IsNil predicate on the "details" field.
func DetailsIsNil() predicate.Payment {
	return predicate.Payment(sql.FieldIsNull(FieldDetails))
}

// DetailsNotNil applies the NotNil predicate on the "details" field.
func DetailsNotNil() predicate.Payment {
	return predicate.Payment(sql.FieldNotNull(FieldDetails))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Payment {
	return predicate.Payment(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Payment {
	return predicate.Payment(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Payment {
	return predicate.Payment(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Payment {
	return predicate.Payment(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Payment {
	return predicate.Payment(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Payment {
	return predicate.Payment(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Payment {
	return predicate.Payment(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Payment {
	return predicate.Payment(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Payment {
	return predicate.Payment(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Payment {
	return predicate.Payment(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Payment {
	return predicate.Payment(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Payment {
	return predicate.Payment(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Payment {
	return predicate.Payment(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Payment {
	return predicate.Payment(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Payment {
	return predicate.Payment(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Payment {
	return predicate.Payment(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Payment) predicate.Payment {
	return predicate.Payment(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Payment) predicate.Payment {
	return predicate.Payment(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Payment) predicate.Payment {
	return predicate.Payment(sql.NotPredicates(p))
}
