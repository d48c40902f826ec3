package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/quillgate/quillgate/ent"
	"github.com/quillgate/quillgate/pkg/config"
	"github.com/quillgate/quillgate/pkg/events"
	"github.com/quillgate/quillgate/pkg/l402"
	"github.com/quillgate/quillgate/pkg/models"
	"github.com/quillgate/quillgate/pkg/services"
	testdb "github.com/quillgate/quillgate/test/database"
)

// testServer wires a full server over a per-test database, with one tenant
// and one admin key seeded.
type testServer struct {
	srv      *Server
	provider *l402.MockProvider

	tenant   *ent.Tenant
	adminKey string

	tenants      *services.TenantService
	types        *services.ContentTypeService
	items        *services.ContentItemService
	keys         *services.APIKeyService
	payments     *services.PaymentService
	entitlements *services.EntitlementService
}

func testConfig() *config.Config {
	return &config.Config{
		Environment: "development",
		HTTPPort:    "0",
		RateLimit:   config.RateLimitConfig{RequestsPerMinute: 6000, Burst: 1000},
		Idempotency: config.IdempotencyConfig{TTL: 5 * time.Minute},
		Payments: config.PaymentConfig{
			Provider:         "mock",
			TokenSecret:      "test-token-secret",
			WebhookSecret:    "test-webhook-secret",
			InvoiceTTL:       15 * time.Minute,
			EntitlementTTL:   time.Hour,
			DefaultReads:     3,
			SettlementWindow: 10 * time.Minute,
			Policy: config.PolicyConfig{
				ID:             "default",
				Version:        1,
				CreatorBP:      9000,
				PlatformBP:     1000,
				PlatformWallet: "platform",
			},
		},
	}
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	return newTestServerWithConfig(t, testConfig())
}

func newTestServerWithConfig(t *testing.T, cfg *config.Config) *testServer {
	t.Helper()
	db := testdb.NewTestClient(t)
	client := db.Client

	bus := events.NewBus()
	t.Cleanup(bus.Close)

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

	srv := NewServer(cfg, db, Services{
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
	}, nil)

	ctx := context.Background()
	tenant, err := tenants.CreateTenant(ctx, "acme", "acme")
	require.NoError(t, err)

	created, err := keys.CreateAPIKey(ctx, tenant.ID, models.CreateAPIKeyRequest{
		Name:   "test admin",
		Scopes: []string{services.ScopeAdmin},
	})
	require.NoError(t, err)

	return &testServer{
		srv:          srv,
		provider:     provider,
		tenant:       tenant,
		adminKey:     created.Secret,
		tenants:      tenants,
		types:        types,
		items:        items,
		keys:         keys,
		payments:     payments,
		entitlements: entitlements,
	}
}

// do issues a request against the router. A non-empty key goes into the
// Bearer header; extra headers are applied last so tests can override.
func (ts *testServer) do(t *testing.T, method, path, key string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if key != "" {
		req.Header.Set("Authorization", "Bearer "+key)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	ts.srv.Echo().ServeHTTP(rec, req)
	return rec
}

func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), "body: %s", rec.Body.String())
	return out
}

func itoa(n int) string {
	return strconv.Itoa(n)
}

// mustScopedKey mints a key with exactly the given scopes.
func (ts *testServer) mustScopedKey(t *testing.T, scopes ...string) string {
	t.Helper()
	created, err := ts.keys.CreateAPIKey(context.Background(), ts.tenant.ID, models.CreateAPIKeyRequest{
		Name:   "scoped",
		Scopes: scopes,
	})
	require.NoError(t, err)
	return created.Secret
}
