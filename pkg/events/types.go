package events

import "time"

// Event is a committed mutation published on the in-process bus.
// Type follows the "<entity>.<action>" convention, e.g. "content_item.create".
type Event struct {
	Type       string                 `json:"type"`
	TenantID   int                    `json:"tenant_id"`
	EntityType string                 `json:"entity_type"`
	EntityID   int                    `json:"entity_id"`
	ActorID    string                 `json:"actor_id"`
	RequestID  string                 `json:"request_id"`
	Payload    map[string]interface{} `json:"payload,omitempty"`
	CreatedAt  time.Time              `json:"created_at"`
}

// Well-known event types.
const (
	TypeContentItemCreate   = "content_item.create"
	TypeContentItemUpdate   = "content_item.update"
	TypeContentItemDelete   = "content_item.delete"
	TypeContentItemRollback = "content_item.rollback"
	TypeContentTypeCreate   = "content_type.create"
	TypeContentTypeUpdate   = "content_type.update"
	TypeContentTypeDelete   = "content_type.delete"
	TypePaymentPaid         = "payment.paid"
	TypePaymentExpired      = "payment.expired"
	TypePaymentFailed       = "payment.failed"
	TypeEntitlementActive   = "entitlement.active"
	TypeEntitlementRevoked  = "entitlement.revoked"
)
