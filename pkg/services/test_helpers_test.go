package services

import (
	"context"
	"testing"
	"time"

	"github.com/quillgate/quillgate/ent"
	"github.com/quillgate/quillgate/pkg/config"
	"github.com/quillgate/quillgate/pkg/events"
	"github.com/quillgate/quillgate/pkg/l402"
	"github.com/quillgate/quillgate/pkg/models"
	testdb "github.com/quillgate/quillgate/test/database"
	"github.com/stretchr/testify/require"
)

// stack bundles every service over one test database.
type stack struct {
	client       *ent.Client
	bus          *events.Bus
	provider     *l402.MockProvider
	tenants      *TenantService
	types        *ContentTypeService
	items        *ContentItemService
	keys         *APIKeyService
	audit        *AuditService
	webhooks     *WebhookService
	payments     *PaymentService
	entitlements *EntitlementService
	revenue      *RevenueService
	decisions    *PolicyDecisionService
}

func testPaymentConfig() config.PaymentConfig {
	return config.PaymentConfig{
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
	}
}

func newStack(t *testing.T) *stack {
	t.Helper()
	client := testdb.NewTestClient(t).Client

	bus := events.NewBus()
	t.Cleanup(bus.Close)

	cfg := testPaymentConfig()
	provider := l402.NewMockProvider()
	signer := l402.NewSigner(cfg.TokenSecret)

	audit := NewAuditService(client, bus)
	tenants := NewTenantService(client)
	types := NewContentTypeService(client, audit)
	items := NewContentItemService(client, types, audit)
	keys := NewAPIKeyService(client, audit)
	webhooks := NewWebhookService(client, audit)
	entitlements := NewEntitlementService(client, audit, cfg)
	revenue := NewRevenueService(client, cfg)
	payments := NewPaymentService(client, provider, signer, audit, entitlements, revenue, cfg)
	decisions := NewPolicyDecisionService(client)

	return &stack{
		client:       client,
		bus:          bus,
		provider:     provider,
		tenants:      tenants,
		types:        types,
		items:        items,
		keys:         keys,
		audit:        audit,
		webhooks:     webhooks,
		payments:     payments,
		entitlements: entitlements,
		revenue:      revenue,
		decisions:    decisions,
	}
}

const articleSchema = `{
	"type": "object",
	"required": ["title"],
	"properties": {
		"title": {"type": "string", "minLength": 1},
		"body": {"type": "string"}
	}
}`

func (s *stack) mustTenant(t *testing.T, slug string) *ent.Tenant {
	t.Helper()
	tenant, err := s.tenants.CreateTenant(context.Background(), slug, slug)
	require.NoError(t, err)
	return tenant
}

func (s *stack) mustContentType(t *testing.T, tenantID int, slug string, priceSats int64) *ent.ContentType {
	t.Helper()
	ct, err := s.types.CreateContentType(context.Background(), tenantID, models.CreateContentTypeRequest{
		Name:          slug,
		Slug:          slug,
		Schema:        articleSchema,
		BasePriceSats: priceSats,
	})
	require.NoError(t, err)
	return ct
}

func (s *stack) mustItem(t *testing.T, tenantID, typeID int, data string) *ent.ContentItem {
	t.Helper()
	item, err := s.items.CreateContentItem(context.Background(), tenantID, models.CreateContentItemRequest{
		ContentTypeID: typeID,
		Data:          []byte(data),
	})
	require.NoError(t, err)
	return item
}
