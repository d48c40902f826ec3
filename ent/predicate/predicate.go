// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// APIKey is the predicate function for apikey builders.
type APIKey func(*sql.Selector)

// AuditLog is the predicate function for auditlog builders.
type AuditLog func(*sql.Selector)

// ContentItem is the predicate function for contentitem builders.
type ContentItem func(*sql.Selector)

// ContentItemVersion is the predicate function for contentitemversion builders.
type ContentItemVersion func(*sql.Selector)

// ContentType is the predicate function for contenttype builders.
type ContentType func(*sql.Selector)

// Entitlement is the predicate function for entitlement builders.
type Entitlement func(*sql.Selector)

// Payment is the predicate function for payment builders.
type Payment func(*sql.Selector)

// PayoutBatch is the predicate function for payoutbatch builders.
type PayoutBatch func(*sql.Selector)

// PayoutTransfer is the predicate function for payouttransfer builders.
type PayoutTransfer func(*sql.Selector)

// PolicyDecision is the predicate function for policydecision builders.
type PolicyDecision func(*sql.Selector)

// RevenueAllocation is the predicate function for revenueallocation builders.
type RevenueAllocation func(*sql.Selector)

// RevenueEvent is the predicate function for revenueevent builders.
type RevenueEvent func(*sql.Selector)

// Tenant is the predicate function for tenant builders.
type Tenant func(*sql.Selector)

// Webhook is the predicate function for webhook builders.
type Webhook func(*sql.Selector)

// WebhookDelivery is the predicate function for webhookdelivery builders.
type WebhookDelivery func(*sql.Selector)
