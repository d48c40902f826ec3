// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/quillgate/quillgate/ent/apikey"
	"github.com/quillgate/quillgate/ent/auditlog"
	"github.com/quillgate/quillgate/ent/contentitem"
	"github.com/quillgate/quillgate/ent/contentitemversion"
	"github.com/quillgate/quillgate/ent/contenttype"
	"github.com/quillgate/quillgate/ent/entitlement"
	"github.com/quillgate/quillgate/ent/payment"
	"github.com/quillgate/quillgate/ent/payoutbatch"
	"github.com/quillgate/quillgate/ent/payouttransfer"
	"github.com/quillgate/quillgate/ent/policydecision"
	"github.com/quillgate/quillgate/ent/revenueallocation"
	"github.com/quillgate/quillgate/ent/revenueevent"
	"github.com/quillgate/quillgate/ent/schema"
	"github.com/quillgate/quillgate/ent/tenant"
	"github.com/quillgate/quillgate/ent/webhook"
	"github.com/quillgate/quillgate/ent/webhookdelivery"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	apikeyFields := schema.APIKey{}.Fields()
	_ = apikeyFields
	// apikeyDescCreatedAt is the schema descriptor for created_at field.
	apikeyDescCreatedAt := apikeyFields[9].Descriptor()
	// apikey.DefaultCreatedAt holds the default value on creation for the created_at field.
	apikey.DefaultCreatedAt = apikeyDescCreatedAt.Default.(func() time.Time)
	auditlogFields := schema.AuditLog{}.Fields()
	_ = auditlogFields
	// auditlogDescCreatedAt is the schema descriptor for created_at field.
	auditlogDescCreatedAt := auditlogFields[7].Descriptor()
	// auditlog.DefaultCreatedAt holds the default value on creation for the created_at field.
	auditlog.DefaultCreatedAt = auditlogDescCreatedAt.Default.(func() time.Time)
	contentitemFields := schema.ContentItem{}.Fields()
	_ = contentitemFields
	// contentitemDescVersion is the schema descriptor for version field.
	contentitemDescVersion := contentitemFields[4].Descriptor()
	// contentitem.DefaultVersion holds the default value on creation for the version field.
	contentitem.DefaultVersion = contentitemDescVersion.Default.(int)
	// contentitem.VersionValidator is a validator for the "version" field. It is called by the builders before save.
	contentitem.VersionValidator = contentitemDescVersion.Validators[0].(func(int) error)
	// contentitemDescCreatedAt is the schema descriptor for created_at field.
	contentitemDescCreatedAt := contentitemFields[5].Descriptor()
	// contentitem.DefaultCreatedAt holds the default value on creation for the created_at field.
	contentitem.DefaultCreatedAt = contentitemDescCreatedAt.Default.(func() time.Time)
	// contentitemDescUpdatedAt is the schema descriptor for updated_at field.
	contentitemDescUpdatedAt := contentitemFields[6].Descriptor()
	// contentitem.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	contentitem.DefaultUpdatedAt = contentitemDescUpdatedAt.Default.(func() time.Time)
	// contentitem.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	contentitem.UpdateDefaultUpdatedAt = contentitemDescUpdatedAt.UpdateDefault.(func() time.Time)
	contentitemversionFields := schema.ContentItemVersion{}.Fields()
	_ = contentitemversionFields
	// contentitemversionDescVersion is the schema descriptor for version field.
	contentitemversionDescVersion := contentitemversionFields[4].Descriptor()
	// contentitemversion.VersionValidator is a validator for the "version" field. It is called by the builders before save.
	contentitemversion.VersionValidator = contentitemversionDescVersion.Validators[0].(func(int) error)
	// contentitemversionDescCreatedAt is the schema descriptor for created_at field.
	contentitemversionDescCreatedAt := contentitemversionFields[5].Descriptor()
	// contentitemversion.DefaultCreatedAt holds the default value on creation for the created_at field.
	contentitemversion.DefaultCreatedAt = contentitemversionDescCreatedAt.Default.(func() time.Time)
	contenttypeFields := schema.ContentType{}.Fields()
	_ = contenttypeFields
	// contenttypeDescBasePriceSats is the schema descriptor for base_price_sats field.
	contenttypeDescBasePriceSats := contenttypeFields[4].Descriptor()
	// contenttype.DefaultBasePriceSats holds the default value on creation for the base_price_sats field.
	contenttype.DefaultBasePriceSats = contenttypeDescBasePriceSats.Default.(int64)
	// contenttype.BasePriceSatsValidator is a validator for the "base_price_sats" field. It is called by the builders before save.
	contenttype.BasePriceSatsValidator = contenttypeDescBasePriceSats.Validators[0].(func(int64) error)
	// contenttypeDescCreatedAt is the schema descriptor for created_at field.
	contenttypeDescCreatedAt := contenttypeFields[5].Descriptor()
	// contenttype.DefaultCreatedAt holds the default value on creation for the created_at field.
	contenttype.DefaultCreatedAt = contenttypeDescCreatedAt.Default.(func() time.Time)
	// contenttypeDescUpdatedAt is the schema descriptor for updated_at field.
	contenttypeDescUpdatedAt := contenttypeFields[6].Descriptor()
	// contenttype.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	contenttype.DefaultUpdatedAt = contenttypeDescUpdatedAt.Default.(func() time.Time)
	// contenttype.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	contenttype.UpdateDefaultUpdatedAt = contenttypeDescUpdatedAt.UpdateDefault.(func() time.Time)
	entitlementFields := schema.Entitlement{}.Fields()
	_ = entitlementFields
	// entitlementDescCreatedAt is the schema descriptor for created_at field.
	entitlementDescCreatedAt := entitlementFields[12].Descriptor()
	// entitlement.DefaultCreatedAt holds the default value on creation for the created_at field.
	entitlement.DefaultCreatedAt = entitlementDescCreatedAt.Default.(func() time.Time)
	// entitlementDescUpdatedAt is the schema descriptor for updated_at field.
	entitlementDescUpdatedAt := entitlementFields[13].Descriptor()
	// entitlement.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	entitlement.DefaultUpdatedAt = entitlementDescUpdatedAt.Default.(func() time.Time)
	// entitlement.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	entitlement.UpdateDefaultUpdatedAt = entitlementDescUpdatedAt.UpdateDefault.(func() time.Time)
	paymentFields := schema.Payment{}.Fields()
	_ = paymentFields
	// paymentDescAmountSats is the schema descriptor for amount_sats field.
	paymentDescAmountSats := paymentFields[5].Descriptor()
	// payment.AmountSatsValidator is a validator for the "amount_sats" field. It is called by the builders before save.
	payment.AmountSatsValidator = paymentDescAmountSats.Validators[0].(func(int64) error)
	// paymentDescCreatedAt is the schema descriptor for created_at field.
	paymentDescCreatedAt := paymentFields[14].Descriptor()
	// payment.DefaultCreatedAt holds the default value on creation for the created_at field.
	payment.DefaultCreatedAt = paymentDescCreatedAt.Default.(func() time.Time)
	// paymentDescUpdatedAt is the schema descriptor for updated_at field.
	paymentDescUpdatedAt := paymentFields[15].Descriptor()
	// payment.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	payment.DefaultUpdatedAt = paymentDescUpdatedAt.Default.(func() time.Time)
	// payment.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	payment.UpdateDefaultUpdatedAt = paymentDescUpdatedAt.UpdateDefault.(func() time.Time)
	payoutbatchFields := schema.PayoutBatch{}.Fields()
	_ = payoutbatchFields
	// payoutbatchDescTotalSats is the schema descriptor for total_sats field.
	payoutbatchDescTotalSats := payoutbatchFields[2].Descriptor()
	// payoutbatch.TotalSatsValidator is a validator for the "total_sats" field. It is called by the builders before save.
	payoutbatch.TotalSatsValidator = payoutbatchDescTotalSats.Validators[0].(func(int64) error)
	// payoutbatchDescCreatedAt is the schema descriptor for created_at field.
	payoutbatchDescCreatedAt := payoutbatchFields[3].Descriptor()
	// payoutbatch.DefaultCreatedAt holds the default value on creation for the created_at field.
	payoutbatch.DefaultCreatedAt = payoutbatchDescCreatedAt.Default.(func() time.Time)
	// payoutbatchDescUpdatedAt is the schema descriptor for updated_at field.
	payoutbatchDescUpdatedAt := payoutbatchFields[4].Descriptor()
	// payoutbatch.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	payoutbatch.DefaultUpdatedAt = payoutbatchDescUpdatedAt.Default.(func() time.Time)
	// payoutbatch.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	payoutbatch.UpdateDefaultUpdatedAt = payoutbatchDescUpdatedAt.UpdateDefault.(func() time.Time)
	payouttransferFields := schema.PayoutTransfer{}.Fields()
	_ = payouttransferFields
	// payouttransferDescAmountSats is the schema descriptor for amount_sats field.
	payouttransferDescAmountSats := payouttransferFields[3].Descriptor()
	// payouttransfer.AmountSatsValidator is a validator for the "amount_sats" field. It is called by the builders before save.
	payouttransfer.AmountSatsValidator = payouttransferDescAmountSats.Validators[0].(func(int64) error)
	// payouttransferDescAttempts is the schema descriptor for attempts field.
	payouttransferDescAttempts := payouttransferFields[5].Descriptor()
	// payouttransfer.DefaultAttempts holds the default value on creation for the attempts field.
	payouttransfer.DefaultAttempts = payouttransferDescAttempts.Default.(int)
	// payouttransferDescCreatedAt is the schema descriptor for created_at field.
	payouttransferDescCreatedAt := payouttransferFields[7].Descriptor()
	// payouttransfer.DefaultCreatedAt holds the default value on creation for the created_at field.
	payouttransfer.DefaultCreatedAt = payouttransferDescCreatedAt.Default.(func() time.Time)
	// payouttransferDescUpdatedAt is the schema descriptor for updated_at field.
	payouttransferDescUpdatedAt := payouttransferFields[8].Descriptor()
	// payouttransfer.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	payouttransfer.DefaultUpdatedAt = payouttransferDescUpdatedAt.Default.(func() time.Time)
	// payouttransfer.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	payouttransfer.UpdateDefaultUpdatedAt = payouttransferDescUpdatedAt.UpdateDefault.(func() time.Time)
	policydecisionFields := schema.PolicyDecision{}.Fields()
	_ = policydecisionFields
	// policydecisionDescCreatedAt is the schema descriptor for created_at field.
	policydecisionDescCreatedAt := policydecisionFields[7].Descriptor()
	// policydecision.DefaultCreatedAt holds the default value on creation for the created_at field.
	policydecision.DefaultCreatedAt = policydecisionDescCreatedAt.Default.(func() time.Time)
	revenueallocationFields := schema.RevenueAllocation{}.Fields()
	_ = revenueallocationFields
	// revenueallocationDescAmountSats is the schema descriptor for amount_sats field.
	revenueallocationDescAmountSats := revenueallocationFields[3].Descriptor()
	// revenueallocation.AmountSatsValidator is a validator for the "amount_sats" field. It is called by the builders before save.
	revenueallocation.AmountSatsValidator = revenueallocationDescAmountSats.Validators[0].(func(int64) error)
	// revenueallocationDescBasisPoints is the schema descriptor for basis_points field.
	revenueallocationDescBasisPoints := revenueallocationFields[4].Descriptor()
	// revenueallocation.BasisPointsValidator is a validator for the "basis_points" field. It is called by the builders before save.
	revenueallocation.BasisPointsValidator = revenueallocationDescBasisPoints.Validators[0].(func(int) error)
	// revenueallocationDescCreatedAt is the schema descriptor for created_at field.
	revenueallocationDescCreatedAt := revenueallocationFields[7].Descriptor()
	// revenueallocation.DefaultCreatedAt holds the default value on creation for the created_at field.
	revenueallocation.DefaultCreatedAt = revenueallocationDescCreatedAt.Default.(func() time.Time)
	revenueeventFields := schema.RevenueEvent{}.Fields()
	_ = revenueeventFields
	// revenueeventDescGrossSats is the schema descriptor for gross_sats field.
	revenueeventDescGrossSats := revenueeventFields[2].Descriptor()
	// revenueevent.GrossSatsValidator is a validator for the "gross_sats" field. It is called by the builders before save.
	revenueevent.GrossSatsValidator = revenueeventDescGrossSats.Validators[0].(func(int64) error)
	// revenueeventDescCreatedAt is the schema descriptor for created_at field.
	revenueeventDescCreatedAt := revenueeventFields[3].Descriptor()
	// revenueevent.DefaultCreatedAt holds the default value on creation for the created_at field.
	revenueevent.DefaultCreatedAt = revenueeventDescCreatedAt.Default.(func() time.Time)
	tenantFields := schema.Tenant{}.Fields()
	_ = tenantFields
	// tenantDescCreatedAt is the schema descriptor for created_at field.
	tenantDescCreatedAt := tenantFields[2].Descriptor()
	// tenant.DefaultCreatedAt holds the default value on creation for the created_at field.
	tenant.DefaultCreatedAt = tenantDescCreatedAt.Default.(func() time.Time)
	// tenantDescUpdatedAt is the schema descriptor for updated_at field.
	tenantDescUpdatedAt := tenantFields[3].Descriptor()
	// tenant.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	tenant.DefaultUpdatedAt = tenantDescUpdatedAt.Default.(func() time.Time)
	// tenant.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	tenant.UpdateDefaultUpdatedAt = tenantDescUpdatedAt.UpdateDefault.(func() time.Time)
	webhookFields := schema.Webhook{}.Fields()
	_ = webhookFields
	// webhookDescActive is the schema descriptor for active field.
	webhookDescActive := webhookFields[4].Descriptor()
	// webhook.DefaultActive holds the default value on creation for the active field.
	webhook.DefaultActive = webhookDescActive.Default.(bool)
	// webhookDescCreatedAt is the schema descriptor for created_at field.
	webhookDescCreatedAt := webhookFields[5].Descriptor()
	// webhook.DefaultCreatedAt holds the default value on creation for the created_at field.
	webhook.DefaultCreatedAt = webhookDescCreatedAt.Default.(func() time.Time)
	// webhookDescUpdatedAt is the schema descriptor for updated_at field.
	webhookDescUpdatedAt := webhookFields[6].Descriptor()
	// webhook.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	webhook.DefaultUpdatedAt = webhookDescUpdatedAt.Default.(func() time.Time)
	// webhook.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	webhook.UpdateDefaultUpdatedAt = webhookDescUpdatedAt.UpdateDefault.(func() time.Time)
	webhookdeliveryFields := schema.WebhookDelivery{}.Fields()
	_ = webhookdeliveryFields
	// webhookdeliveryDescAttempts is the schema descriptor for attempts field.
	webhookdeliveryDescAttempts := webhookdeliveryFields[5].Descriptor()
	// webhookdelivery.DefaultAttempts holds the default value on creation for the attempts field.
	webhookdelivery.DefaultAttempts = webhookdeliveryDescAttempts.Default.(int)
	// webhookdeliveryDescCreatedAt is the schema descriptor for created_at field.
	webhookdeliveryDescCreatedAt := webhookdeliveryFields[8].Descriptor()
	// webhookdelivery.DefaultCreatedAt holds the default value on creation for the created_at field.
	webhookdelivery.DefaultCreatedAt = webhookdeliveryDescCreatedAt.Default.(func() time.Time)
}
