package l402

import (
	"context"
	"time"
)

// InvoiceStatus is the provider-reported state of an invoice.
type InvoiceStatus string

const (
	StatusPending InvoiceStatus = "pending"
	StatusPaid    InvoiceStatus = "paid"
	StatusExpired InvoiceStatus = "expired"
	StatusFailed  InvoiceStatus = "failed"
)

// Invoice is a newly created invoice.
type Invoice struct {
	PaymentHash       string
	PaymentRequest    string
	ProviderInvoiceID string
	ExpiresAt         time.Time
}

// StatusResult is the outcome of a status or verification query.
type StatusResult struct {
	Status        InvoiceStatus
	SettledAt     *time.Time
	FailureReason string
}

// Provider is the payment backend. Implementations must be safe for
// concurrent use; all methods honour context cancellation.
type Provider interface {
	// Name identifies the provider in payment rows and webhook routes.
	Name() string

	// CreateInvoice creates an invoice for the given amount.
	CreateInvoice(ctx context.Context, amountSats int64, memo string, ttl time.Duration) (*Invoice, error)

	// VerifyPayment checks whether the invoice behind hash is settled.
	// When preimage is non-empty it is cryptographic proof and the
	// provider may answer without a network round-trip.
	VerifyPayment(ctx context.Context, paymentHash, preimage string) (*StatusResult, error)

	// GetInvoiceStatus returns the authoritative state of the invoice.
	GetInvoiceStatus(ctx context.Context, paymentHash string) (*StatusResult, error)
}
