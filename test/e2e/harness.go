// Package e2e runs the full stack over a real HTTP listener: echo server,
// services, Postgres, mock payment provider, and the background workers
// driven one pass at a time. Tests here walk complete journeys the way an
// integrating client would.
package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/quillgate/quillgate/pkg/api"
	"github.com/quillgate/quillgate/pkg/config"
	"github.com/quillgate/quillgate/pkg/events"
	"github.com/quillgate/quillgate/pkg/l402"
	"github.com/quillgate/quillgate/pkg/mcpfacade"
	"github.com/quillgate/quillgate/pkg/models"
	"github.com/quillgate/quillgate/pkg/services"
	"github.com/quillgate/quillgate/pkg/workers"
	testdb "github.com/quillgate/quillgate/test/database"
)

// Harness is a running quillgate instance bound to an ephemeral port.
type Harness struct {
	URL      string
	APIKey   string
	Provider *l402.MockProvider

	Webhooks   *services.WebhookService
	Dispatcher *workers.Dispatcher
	Reconciler *workers.Reconciler

	tenantID int
	http     *http.Client
}

// NewHarness boots the full stack and seeds one tenant with an admin key.
func NewHarness(t *testing.T) *Harness {
	t.Helper()
	db := testdb.NewTestClient(t)
	client := db.Client

	bus := events.NewBus()
	t.Cleanup(bus.Close)

	cfg := &config.Config{
		Environment: "development",
		HTTPPort:    "0",
		RateLimit:   config.RateLimitConfig{RequestsPerMinute: 6000, Burst: 1000},
		Idempotency: config.IdempotencyConfig{TTL: 5 * time.Minute},
		Payments: config.PaymentConfig{
			Provider:         "mock",
			TokenSecret:      "e2e-token-secret",
			WebhookSecret:    "e2e-webhook-secret",
			InvoiceTTL:       15 * time.Minute,
			EntitlementTTL:   time.Hour,
			DefaultReads:     3,
			SettlementWindow: 10 * time.Minute,
			Policy: config.PolicyConfig{
				ID: "default", Version: 1, CreatorBP: 9000, PlatformBP: 1000, PlatformWallet: "platform",
			},
		},
		Workers: config.WorkersConfig{
			ReconcileInterval:   time.Minute,
			ReconcileThreshold:  0,
			SweepInterval:       time.Minute,
			PayoutInterval:      time.Minute,
			PayoutMinimumSats:   10,
			DispatchInterval:    time.Second,
			MaxDeliveryAttempts: 3,
		},
	}

	provider := l402.NewMockProvider()
	signer := l402.NewSigner(cfg.Payments.TokenSecret)

	audit := services.NewAuditService(client, bus)
	tenants := services.NewTenantService(client)
	types := services.NewContentTypeService(client, audit)
	items := services.NewContentItemService(client, types, audit)
	keys := services.NewAPIKeyService(client, audit)
	webhooks := services.NewWebhookService(client, audit)
	entitlements := services.NewEntitlementService(client, audit, cfg.Payments)
	revenue := services.NewRevenueService(client, cfg.Payments)
	payments := services.NewPaymentService(client, provider, signer, audit, entitlements, revenue, cfg.Payments)
	decisions := services.NewPolicyDecisionService(client)

	// Same fanout main runs: committed mutations become webhook deliveries.
	sub := bus.Subscribe("webhook-deliveries", 0)
	fanoutDone := make(chan struct{})
	go func() {
		defer close(fanoutDone)
		for evt := range sub.C {
			webhooks.RecordDeliveries(context.Background(), evt)
		}
	}()
	t.Cleanup(func() {
		bus.Close()
		<-fanoutDone
	})

	registry := prometheus.NewRegistry()
	metrics := workers.NewMetrics(registry)

	srv := api.NewServer(cfg, db, api.Services{
		Tenants:      tenants,
		ContentTypes: types,
		ContentItems: items,
		APIKeys:      keys,
		Audit:        audit,
		Webhooks:     webhooks,
		Payments:     payments,
		Entitlements: entitlements,
		Revenue:      revenue,
		Decisions:    decisions,
	}, registry)

	facade := mcpfacade.New(keys, types, items, payments, entitlements)
	srv.MountMCP(facade.Handler())

	ts := httptest.NewServer(srv.Echo())
	t.Cleanup(ts.Close)

	ctx := context.Background()
	tenant, err := tenants.CreateTenant(ctx, "acme", "acme")
	require.NoError(t, err)
	created, err := keys.CreateAPIKey(ctx, tenant.ID, models.CreateAPIKeyRequest{
		Name: "e2e", Scopes: []string{services.ScopeAdmin},
	})
	require.NoError(t, err)

	return &Harness{
		URL:        ts.URL,
		APIKey:     created.Secret,
		Provider:   provider,
		Webhooks:   webhooks,
		Dispatcher: workers.NewDispatcher(webhooks, cfg.Workers, metrics),
		Reconciler: workers.NewReconciler(payments, cfg.Workers, metrics),
		tenantID:   tenant.ID,
		http:       ts.Client(),
	}
}

// Do sends an authenticated JSON request and returns the response.
func (h *Harness) Do(t *testing.T, method, path string, body any, headers map[string]string) *http.Response {
	t.Helper()

	var payload io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		payload = bytes.NewReader(data)
	}
	req, err := http.NewRequest(method, h.URL+path, payload)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-API-Key", h.APIKey)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := h.http.Do(req)
	require.NoError(t, err)
	return resp
}

// Decode reads and closes the response body into out.
func Decode(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

// itoa renders a decoded JSON id for use in a path.
func itoa(v any) string {
	return strconv.Itoa(int(v.(float64)))
}
