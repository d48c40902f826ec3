package mcpfacade

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quillgate/quillgate/ent"
	"github.com/quillgate/quillgate/pkg/config"
	"github.com/quillgate/quillgate/pkg/events"
	"github.com/quillgate/quillgate/pkg/l402"
	"github.com/quillgate/quillgate/pkg/models"
	"github.com/quillgate/quillgate/pkg/services"
	testdb "github.com/quillgate/quillgate/test/database"
)

type harness struct {
	facade    *Facade
	provider  *l402.MockProvider
	payments  *services.PaymentService
	types     *services.ContentTypeService
	items     *services.ContentItemService
	tenant    *ent.Tenant
	principal *models.Principal
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	client := testdb.NewTestClient(t).Client

	bus := events.NewBus()
	t.Cleanup(bus.Close)

	cfg := config.PaymentConfig{
		Provider:         "mock",
		TokenSecret:      "test-token-secret",
		InvoiceTTL:       15 * time.Minute,
		DefaultReads:     3,
		SettlementWindow: 10 * time.Minute,
		Policy: config.PolicyConfig{
			ID: "default", Version: 1, CreatorBP: 9000, PlatformBP: 1000, PlatformWallet: "platform",
		},
	}
	provider := l402.NewMockProvider()
	signer := l402.NewSigner(cfg.TokenSecret)

	audit := services.NewAuditService(client, bus)
	tenants := services.NewTenantService(client)
	types := services.NewContentTypeService(client, audit)
	items := services.NewContentItemService(client, types, audit)
	keys := services.NewAPIKeyService(client, audit)
	entitlements := services.NewEntitlementService(client, audit, cfg)
	revenue := services.NewRevenueService(client, cfg)
	payments := services.NewPaymentService(client, provider, signer, audit, entitlements, revenue, cfg)

	ctx := context.Background()
	tenant, err := tenants.CreateTenant(ctx, "acme", "acme")
	require.NoError(t, err)
	created, err := keys.CreateAPIKey(ctx, tenant.ID, models.CreateAPIKeyRequest{
		Name: "mcp", Scopes: []string{services.ScopeAdmin},
	})
	require.NoError(t, err)
	principal, err := keys.Authenticate(ctx, created.Secret)
	require.NoError(t, err)

	return &harness{
		facade:    New(keys, types, items, payments, entitlements),
		provider:  provider,
		payments:  payments,
		types:     types,
		items:     items,
		tenant:    tenant,
		principal: principal,
	}
}

func connectClient(t *testing.T, h *harness) *mcp.ClientSession {
	t.Helper()

	srv := h.facade.serverFor(h.principal)
	serverTransport, clientTransport := mcp.NewInMemoryTransports()

	runCtx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Run(runCtx, serverTransport)
	}()

	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "test"}, nil)
	session, err := client.Connect(context.Background(), clientTransport, nil)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = session.Close()
		cancel()
		select {
		case err := <-errCh:
			if err != nil && !errors.Is(err, context.Canceled) {
				t.Logf("mcp server run exited with: %v", err)
			}
		case <-time.After(2 * time.Second):
		}
	})
	return session
}

func toolText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.NotNil(t, result)
	require.NotEmpty(t, result.Content)
	text, ok := result.Content[0].(*mcp.TextContent)
	require.True(t, ok, "unexpected content type %T", result.Content[0])
	return text.Text
}

func TestToolsRegistered(t *testing.T) {
	h := newHarness(t)
	session := connectClient(t, h)

	result, err := session.ListTools(context.Background(), &mcp.ListToolsParams{})
	require.NoError(t, err)

	names := make([]string, 0, len(result.Tools))
	for _, tool := range result.Tools {
		names = append(names, tool.Name)
	}
	sort.Strings(names)
	assert.Equal(t, []string{
		"quillgate_create_content_item",
		"quillgate_get_content_item",
		"quillgate_list_content_items",
		"quillgate_list_content_types",
		"quillgate_list_entitlements",
		"quillgate_purchase_offer",
	}, names)
}

func TestCreateAndGetContentItem(t *testing.T) {
	h := newHarness(t)
	session := connectClient(t, h)
	ctx := context.Background()

	ct, err := h.types.CreateContentType(ctx, h.tenant.ID, models.CreateContentTypeRequest{
		Name: "note", Slug: "note", Schema: `{"type": "object", "required": ["title"]}`,
	})
	require.NoError(t, err)

	result, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name: "quillgate_create_content_item",
		Arguments: map[string]any{
			"content_type_id": ct.ID,
			"data":            map[string]any{"title": "from mcp"},
		},
	})
	require.NoError(t, err)
	require.False(t, result.IsError, toolText(t, result))
	assert.Contains(t, toolText(t, result), `"version":1`)

	// Schema violations surface as tool errors.
	result, err = session.CallTool(ctx, &mcp.CallToolParams{
		Name: "quillgate_create_content_item",
		Arguments: map[string]any{
			"content_type_id": ct.ID,
			"data":            map[string]any{"body": "no title"},
		},
	})
	require.NoError(t, err)
	assert.True(t, result.IsError)
}

func TestPricedItemNeedsSettledPurchase(t *testing.T) {
	h := newHarness(t)
	session := connectClient(t, h)
	ctx := context.Background()

	ct, err := h.types.CreateContentType(ctx, h.tenant.ID, models.CreateContentTypeRequest{
		Name: "premium", Slug: "premium", Schema: `{"type": "object"}`, BasePriceSats: 500,
	})
	require.NoError(t, err)
	item, err := h.items.CreateContentItem(ctx, h.tenant.ID, models.CreateContentItemRequest{
		ContentTypeID: ct.ID, Data: []byte(`{}`),
	})
	require.NoError(t, err)

	// No payment hash: refused with a pointer at the purchase tool.
	result, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name:      "quillgate_get_content_item",
		Arguments: map[string]any{"item_id": item.ID},
	})
	require.NoError(t, err)
	require.True(t, result.IsError)
	assert.Contains(t, toolText(t, result), "quillgate_purchase_offer")

	// Purchase, settle out of band, then fetch with the hash.
	result, err = session.CallTool(ctx, &mcp.CallToolParams{
		Name:      "quillgate_purchase_offer",
		Arguments: map[string]any{"content_type_id": ct.ID, "agent_profile_id": "agent-1"},
	})
	require.NoError(t, err)
	require.False(t, result.IsError, toolText(t, result))

	var offer models.PurchaseResponse
	require.NoError(t, json.Unmarshal([]byte(toolText(t, result)), &offer))

	preimage, err := h.provider.Settle(offer.PaymentHash)
	require.NoError(t, err)
	_, err = h.payments.Confirm(ctx, models.ConfirmPaymentRequest{
		PaymentHash: offer.PaymentHash, Preimage: preimage,
	})
	require.NoError(t, err)

	result, err = session.CallTool(ctx, &mcp.CallToolParams{
		Name: "quillgate_get_content_item",
		Arguments: map[string]any{
			"item_id":      item.ID,
			"payment_hash": offer.PaymentHash,
		},
	})
	require.NoError(t, err)
	require.False(t, result.IsError, toolText(t, result))
}
