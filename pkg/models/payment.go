package models

import "time"

// PurchaseRequest asks for an L402 challenge against a priced content type.
type PurchaseRequest struct {
	ContentTypeID  int    `json:"contentTypeId"`
	AgentProfileID string `json:"agentProfileId"`
}

// PurchaseResponse is the 402 challenge payload. The same token and invoice
// are carried in the WWW-Authenticate header.
type PurchaseResponse struct {
	PaymentHash    string    `json:"paymentHash"`
	PaymentRequest string    `json:"paymentRequest"`
	Token          string    `json:"token"`
	AmountSats     int64     `json:"amountSats"`
	ExpiresAt      time.Time `json:"expiresAt"`
}

// ConfirmPaymentRequest settles a payment with the invoice preimage.
type ConfirmPaymentRequest struct {
	PaymentHash string `json:"paymentHash"`
	Preimage    string `json:"preimage"`
}

// ProviderWebhookEvent is the settlement notification a payment provider
// posts to /payments/webhooks/:provider. EventID deduplicates redeliveries.
type ProviderWebhookEvent struct {
	EventID     string `json:"eventId"`
	PaymentHash string `json:"paymentHash"`
	Status      string `json:"status"`
	Preimage    string `json:"preimage,omitempty"`
	Reason      string `json:"reason,omitempty"`
}

// PaymentFilters narrows a payment listing.
type PaymentFilters struct {
	Status string
	Limit  int
	Offset int
}
