package l402

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sync"
	"time"
)

// MockProvider is an in-memory provider for development and tests. It mints
// real preimage/hash pairs so the full verification path is exercised without
// a payment backend. Rejected in production by config validation.
type MockProvider struct {
	mu       sync.Mutex
	invoices map[string]*mockInvoice
}

type mockInvoice struct {
	preimage  string
	amount    int64
	status    InvoiceStatus
	expiresAt time.Time
	settledAt *time.Time
}

// NewMockProvider creates an empty mock provider.
func NewMockProvider() *MockProvider {
	return &MockProvider{invoices: make(map[string]*mockInvoice)}
}

func (p *MockProvider) Name() string { return "mock" }

// CreateInvoice generates a random preimage and derives the payment hash
// from it, mirroring how Lightning invoices work.
func (p *MockProvider) CreateInvoice(_ context.Context, amountSats int64, memo string, ttl time.Duration) (*Invoice, error) {
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return nil, fmt.Errorf("failed to generate preimage: %w", err)
	}
	sum := sha256.Sum256(raw)
	hash := hex.EncodeToString(sum[:])
	expiresAt := time.Now().Add(ttl)

	p.mu.Lock()
	p.invoices[hash] = &mockInvoice{
		preimage:  hex.EncodeToString(raw),
		amount:    amountSats,
		status:    StatusPending,
		expiresAt: expiresAt,
	}
	p.mu.Unlock()

	return &Invoice{
		PaymentHash:       hash,
		PaymentRequest:    fmt.Sprintf("mock:%s:%d:%s", hash, amountSats, memo),
		ProviderInvoiceID: hash,
		ExpiresAt:         expiresAt,
	}, nil
}

func (p *MockProvider) VerifyPayment(_ context.Context, paymentHash, preimage string) (*StatusResult, error) {
	if preimage != "" {
		if err := VerifyPreimage(preimage, paymentHash); err != nil {
			return &StatusResult{Status: StatusFailed, FailureReason: err.Error()}, nil
		}
		// A valid preimage only circulates after settlement.
		p.settle(paymentHash)
	}
	return p.status(paymentHash)
}

func (p *MockProvider) GetInvoiceStatus(_ context.Context, paymentHash string) (*StatusResult, error) {
	return p.status(paymentHash)
}

// Settle marks the invoice as paid and returns its preimage. Test hook.
func (p *MockProvider) Settle(paymentHash string) (preimage string, err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	inv, ok := p.invoices[paymentHash]
	if !ok {
		return "", fmt.Errorf("unknown invoice %s", paymentHash)
	}
	if inv.status == StatusPending {
		now := time.Now()
		inv.status = StatusPaid
		inv.settledAt = &now
	}
	return inv.preimage, nil
}

func (p *MockProvider) settle(paymentHash string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if inv, ok := p.invoices[paymentHash]; ok && inv.status == StatusPending {
		now := time.Now()
		inv.status = StatusPaid
		inv.settledAt = &now
	}
}

func (p *MockProvider) status(paymentHash string) (*StatusResult, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	inv, ok := p.invoices[paymentHash]
	if !ok {
		return nil, fmt.Errorf("unknown invoice %s", paymentHash)
	}
	if inv.status == StatusPending && time.Now().After(inv.expiresAt) {
		inv.status = StatusExpired
	}
	return &StatusResult{Status: inv.status, SettledAt: inv.settledAt}, nil
}
