package workers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quillgate/quillgate/ent"
	"github.com/quillgate/quillgate/ent/payouttransfer"
	"github.com/quillgate/quillgate/ent/webhookdelivery"
	"github.com/quillgate/quillgate/pkg/config"
	"github.com/quillgate/quillgate/pkg/events"
	"github.com/quillgate/quillgate/pkg/l402"
	"github.com/quillgate/quillgate/pkg/models"
	"github.com/quillgate/quillgate/pkg/services"
	testdb "github.com/quillgate/quillgate/test/database"
)

type fixture struct {
	client       *ent.Client
	provider     *l402.MockProvider
	tenants      *services.TenantService
	types        *services.ContentTypeService
	webhooks     *services.WebhookService
	payments     *services.PaymentService
	entitlements *services.EntitlementService
	revenue      *services.RevenueService

	paymentCfg config.PaymentConfig
	workersCfg config.WorkersConfig
	metrics    *Metrics
}

func newFixture(t *testing.T, mutate func(*config.PaymentConfig)) *fixture {
	t.Helper()
	client := testdb.NewTestClient(t).Client

	bus := events.NewBus()
	t.Cleanup(bus.Close)

	paymentCfg := config.PaymentConfig{
		Provider:         "mock",
		TokenSecret:      "test-token-secret",
		InvoiceTTL:       15 * time.Minute,
		EntitlementTTL:   time.Hour,
		DefaultReads:     3,
		SettlementWindow: 10 * time.Minute,
		Policy: config.PolicyConfig{
			ID: "default", Version: 1, CreatorBP: 9000, PlatformBP: 1000, PlatformWallet: "platform",
		},
	}
	if mutate != nil {
		mutate(&paymentCfg)
	}

	provider := l402.NewMockProvider()
	signer := l402.NewSigner(paymentCfg.TokenSecret)

	audit := services.NewAuditService(client, bus)
	tenants := services.NewTenantService(client)
	types := services.NewContentTypeService(client, audit)
	webhooks := services.NewWebhookService(client, audit)
	entitlements := services.NewEntitlementService(client, audit, paymentCfg)
	revenue := services.NewRevenueService(client, paymentCfg)
	payments := services.NewPaymentService(client, provider, signer, audit, entitlements, revenue, paymentCfg)

	return &fixture{
		client:       client,
		provider:     provider,
		tenants:      tenants,
		types:        types,
		webhooks:     webhooks,
		payments:     payments,
		entitlements: entitlements,
		revenue:      revenue,
		paymentCfg:   paymentCfg,
		workersCfg: config.WorkersConfig{
			ReconcileInterval:   time.Minute,
			ReconcileThreshold:  0,
			SweepInterval:       time.Minute,
			PayoutInterval:      time.Minute,
			PayoutMinimumSats:   10,
			DispatchInterval:    time.Second,
			MaxDeliveryAttempts: 3,
		},
		metrics: NewMetrics(prometheus.NewRegistry()),
	}
}

// mustPendingPayment creates a challenge and returns its payment hash.
func (f *fixture) mustPendingPayment(t *testing.T) (int, string) {
	t.Helper()
	ctx := context.Background()

	tenant, err := f.tenants.CreateTenant(ctx, t.Name(), t.Name())
	require.NoError(t, err)
	ct, err := f.types.CreateContentType(ctx, tenant.ID, models.CreateContentTypeRequest{
		Name: "premium", Slug: "premium", Schema: `{"type": "object"}`, BasePriceSats: 500,
	})
	require.NoError(t, err)

	offer, err := f.payments.CreateChallenge(ctx, tenant.ID, ct, "agent-1", "GET", "/api/v1/content-items")
	require.NoError(t, err)
	return tenant.ID, offer.PaymentHash
}

func TestReconciler_SettlesMissedPayment(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	_, hash := f.mustPendingPayment(t)

	// Paid at the provider, but no webhook ever arrived.
	_, err := f.provider.Settle(hash)
	require.NoError(t, err)

	r := NewReconciler(f.payments, f.workersCfg, f.metrics)
	require.NoError(t, r.Reconcile(ctx))

	p, err := f.payments.GetPayment(ctx, hash)
	require.NoError(t, err)
	assert.Equal(t, "paid", string(p.Status))

	grant, err := f.entitlements.GetByPaymentHash(ctx, hash)
	require.NoError(t, err)
	assert.Equal(t, "active", string(grant.Status))
}

func TestReconciler_ExpiresAbandonedInvoice(t *testing.T) {
	f := newFixture(t, func(cfg *config.PaymentConfig) {
		cfg.InvoiceTTL = -time.Minute
	})
	ctx := context.Background()
	_, hash := f.mustPendingPayment(t)

	r := NewReconciler(f.payments, f.workersCfg, f.metrics)
	require.NoError(t, r.Reconcile(ctx))

	p, err := f.payments.GetPayment(ctx, hash)
	require.NoError(t, err)
	assert.Equal(t, "expired", string(p.Status))
}

func TestSweeper_ExpiresAndClears(t *testing.T) {
	f := newFixture(t, func(cfg *config.PaymentConfig) {
		cfg.SettlementWindow = 0
	})
	ctx := context.Background()

	_, settled := f.mustPendingPayment(t)
	preimage, err := f.provider.Settle(settled)
	require.NoError(t, err)
	_, err = f.payments.Confirm(ctx, models.ConfirmPaymentRequest{PaymentHash: settled, Preimage: preimage})
	require.NoError(t, err)

	s := NewSweeper(f.payments, f.entitlements, f.revenue, f.workersCfg)
	s.Sweep(ctx)

	// The settled payment's allocations matured immediately and cleared.
	balances, err := f.revenue.PayableBalances(ctx)
	require.NoError(t, err)
	var total int64
	for _, b := range balances {
		total += b.Sats
	}
	assert.Equal(t, int64(500), total)
}

func TestSweeper_ExpiresOverduePayment(t *testing.T) {
	f := newFixture(t, func(cfg *config.PaymentConfig) {
		cfg.InvoiceTTL = -time.Minute
	})
	ctx := context.Background()
	_, hash := f.mustPendingPayment(t)

	NewSweeper(f.payments, f.entitlements, f.revenue, f.workersCfg).Sweep(ctx)

	p, err := f.payments.GetPayment(ctx, hash)
	require.NoError(t, err)
	assert.Equal(t, "expired", string(p.Status))
}

// settleAndClear produces a cleared payable balance of 500 sats.
func (f *fixture) settleAndClear(t *testing.T) int {
	t.Helper()
	ctx := context.Background()

	tenantID, hash := f.mustPendingPayment(t)
	preimage, err := f.provider.Settle(hash)
	require.NoError(t, err)
	_, err = f.payments.Confirm(ctx, models.ConfirmPaymentRequest{PaymentHash: hash, Preimage: preimage})
	require.NoError(t, err)

	_, err = f.revenue.ClearMatured(ctx, time.Now())
	require.NoError(t, err)
	return tenantID
}

func TestPayoutWorker_BatchesAndExecutes(t *testing.T) {
	f := newFixture(t, func(cfg *config.PaymentConfig) {
		cfg.SettlementWindow = 0
	})
	ctx := context.Background()
	tenantID := f.settleAndClear(t)

	w := NewPayoutWorker(f.revenue, LogExecutor{}, f.workersCfg, f.metrics)
	w.Payout(ctx)

	batches, err := f.client.PayoutBatch.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, batches, 1)
	assert.Equal(t, tenantID, batches[0].TenantID)
	assert.Equal(t, int64(500), batches[0].TotalSats)
	assert.Equal(t, "completed", string(batches[0].Status))

	transfers, err := f.client.PayoutTransfer.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, transfers, 2)
	for _, tr := range transfers {
		assert.Equal(t, payouttransfer.StatusCompleted, tr.Status)
		assert.Equal(t, 1, tr.Attempts)
	}

	// Executed balances are no longer payable; another cycle is a no-op.
	w.Payout(ctx)
	batches, err = f.client.PayoutBatch.Query().All(ctx)
	require.NoError(t, err)
	assert.Len(t, batches, 1)
}

type failingExecutor struct {
	calls atomic.Int32
}

func (e *failingExecutor) Execute(context.Context, *ent.PayoutTransfer) error {
	e.calls.Add(1)
	return errors.New("node unreachable")
}

func TestPayoutWorker_PermanentFailureReturnsFunds(t *testing.T) {
	f := newFixture(t, func(cfg *config.PaymentConfig) {
		cfg.SettlementWindow = 0
	})
	f.workersCfg.MaxDeliveryAttempts = 1
	ctx := context.Background()
	f.settleAndClear(t)

	w := NewPayoutWorker(f.revenue, &failingExecutor{}, f.workersCfg, f.metrics)
	w.Payout(ctx)

	transfers, err := f.client.PayoutTransfer.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, transfers, 2)
	for _, tr := range transfers {
		assert.Equal(t, payouttransfer.StatusFailedPermanent, tr.Status)
		require.NotNil(t, tr.LastError)
	}

	batches, err := f.client.PayoutBatch.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, batches, 1)
	assert.Equal(t, "failed", string(batches[0].Status))

	// Permanently failed transfers put the funds back into the balance.
	balances, err := f.revenue.PayableBalances(ctx)
	require.NoError(t, err)
	var total int64
	for _, b := range balances {
		total += b.Sats
	}
	assert.Equal(t, int64(500), total)
}

func TestDispatcher_DeliversWithSignature(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	var gotSig atomic.Value
	var gotBody atomic.Value
	endpoint := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		gotBody.Store(body)
		gotSig.Store(r.Header.Get("X-Quillgate-Signature"))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer endpoint.Close()

	tenant, err := f.tenants.CreateTenant(ctx, "acme", "acme")
	require.NoError(t, err)
	_, err = f.webhooks.CreateWebhook(ctx, tenant.ID, models.CreateWebhookRequest{
		URL:           endpoint.URL,
		EventPatterns: []string{"content_item.*"},
		Secret:        "hook-secret",
	})
	require.NoError(t, err)

	evt := events.Event{
		Type:       events.TypeContentItemCreate,
		TenantID:   tenant.ID,
		EntityType: "content_item",
		EntityID:   1,
	}
	f.webhooks.RecordDeliveries(ctx, evt)

	d := NewDispatcher(f.webhooks, f.workersCfg, f.metrics)
	require.NoError(t, d.Dispatch(ctx))

	deliveries, err := f.client.WebhookDelivery.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, deliveries, 1)
	assert.Equal(t, webhookdelivery.StatusDelivered, deliveries[0].Status)
	assert.Equal(t, 1, deliveries[0].Attempts)

	body := gotBody.Load().([]byte)
	assert.Equal(t, Sign("hook-secret", body), gotSig.Load())

	var delivered events.Event
	require.NoError(t, json.Unmarshal(body, &delivered))
	assert.Equal(t, events.TypeContentItemCreate, delivered.Type)
}

func TestDispatcher_FailuresGoTerminalAfterBudget(t *testing.T) {
	f := newFixture(t, nil)
	f.workersCfg.MaxDeliveryAttempts = 2
	ctx := context.Background()

	endpoint := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer endpoint.Close()

	tenant, err := f.tenants.CreateTenant(ctx, "acme", "acme")
	require.NoError(t, err)
	_, err = f.webhooks.CreateWebhook(ctx, tenant.ID, models.CreateWebhookRequest{
		URL:           endpoint.URL,
		EventPatterns: []string{"*"},
		Secret:        "hook-secret",
	})
	require.NoError(t, err)
	f.webhooks.RecordDeliveries(ctx, events.Event{Type: "content_item.create", TenantID: tenant.ID})

	d := NewDispatcher(f.webhooks, f.workersCfg, f.metrics)

	// First pass: attempt 1 of 2, still pending.
	require.NoError(t, d.Dispatch(ctx))
	deliveries, err := f.client.WebhookDelivery.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, deliveries, 1)
	assert.Equal(t, webhookdelivery.StatusPending, deliveries[0].Status)
	assert.Equal(t, 1, deliveries[0].Attempts)

	// Second pass spends the budget; the delivery goes terminal.
	require.NoError(t, d.Dispatch(ctx))
	deliveries, err = f.client.WebhookDelivery.Query().All(ctx)
	require.NoError(t, err)
	assert.Equal(t, webhookdelivery.StatusFailed, deliveries[0].Status)
	require.NotNil(t, deliveries[0].LastError)
	assert.Equal(t, 2, deliveries[0].Attempts)
}
