package mcpfacade

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/quillgate/quillgate/pkg/models"
	"github.com/quillgate/quillgate/pkg/services"
)

type listContentTypesInput struct{}

type listContentItemsInput struct {
	ContentTypeID int    `json:"content_type_id,omitempty" jsonschema:"optional content type filter"`
	Status        string `json:"status,omitempty" jsonschema:"optional status filter: draft, published, or archived"`
	Limit         int    `json:"limit,omitempty" jsonschema:"optional limit (default 50)"`
}

type getContentItemInput struct {
	ItemID      int    `json:"item_id" jsonschema:"content item id"`
	PaymentHash string `json:"payment_hash,omitempty" jsonschema:"payment hash of a settled purchase, required for priced content"`
}

type createContentItemInput struct {
	ContentTypeID int             `json:"content_type_id" jsonschema:"content type id"`
	Data          json.RawMessage `json:"data" jsonschema:"item payload, validated against the type's schema"`
	Status        string          `json:"status,omitempty" jsonschema:"optional initial status (default draft)"`
	PaymentHash   string          `json:"payment_hash,omitempty" jsonschema:"payment hash of a settled purchase, required when the type is priced"`
}

type purchaseOfferInput struct {
	ContentTypeID  int    `json:"content_type_id" jsonschema:"content type to purchase access to"`
	AgentProfileID string `json:"agent_profile_id,omitempty" jsonschema:"agent the entitlement is issued to (default: the API key prefix)"`
}

type listEntitlementsInput struct {
	AgentProfileID string `json:"agent_profile_id,omitempty" jsonschema:"optional agent filter"`
}

func (f *Facade) registerTools(srv *mcp.Server, principal *models.Principal) {
	mcp.AddTool(srv, &mcp.Tool{
		Name:        "quillgate_list_content_types",
		Description: "List the tenant's content types with their schemas and prices",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, _ listContentTypesInput) (*mcp.CallToolResult, any, error) {
		return f.handleListContentTypes(ctx, principal)
	})

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "quillgate_list_content_items",
		Description: "List content items, optionally filtered by type and status",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input listContentItemsInput) (*mcp.CallToolResult, any, error) {
		return f.handleListContentItems(ctx, principal, input)
	})

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "quillgate_get_content_item",
		Description: "Fetch one content item. Priced items need the payment_hash of a settled purchase; each fetch consumes one read of the entitlement",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input getContentItemInput) (*mcp.CallToolResult, any, error) {
		return f.handleGetContentItem(ctx, principal, input)
	})

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "quillgate_create_content_item",
		Description: "Create a content item validated against its type's schema. Priced types need the payment_hash of a settled purchase",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input createContentItemInput) (*mcp.CallToolResult, any, error) {
		return f.handleCreateContentItem(ctx, principal, input)
	})

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "quillgate_purchase_offer",
		Description: "Create a payment challenge for a priced content type; returns the invoice to pay and the payment hash to present afterwards",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input purchaseOfferInput) (*mcp.CallToolResult, any, error) {
		return f.handlePurchaseOffer(ctx, principal, input)
	})

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "quillgate_list_entitlements",
		Description: "List purchase entitlements and their remaining read quotas",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input listEntitlementsInput) (*mcp.CallToolResult, any, error) {
		return f.handleListEntitlements(ctx, principal, input)
	})
}

func (f *Facade) handleListContentTypes(ctx context.Context, p *models.Principal) (*mcp.CallToolResult, any, error) {
	if !p.HasScope(services.ScopeContentRead) {
		return nil, nil, fmt.Errorf("API key lacks the %s scope", services.ScopeContentRead)
	}
	types, err := f.types.ListContentTypes(ctx, p.TenantID)
	if err != nil {
		return nil, nil, err
	}
	return jsonToolResult(types)
}

func (f *Facade) handleListContentItems(ctx context.Context, p *models.Principal, input listContentItemsInput) (*mcp.CallToolResult, any, error) {
	if !p.HasScope(services.ScopeContentRead) {
		return nil, nil, fmt.Errorf("API key lacks the %s scope", services.ScopeContentRead)
	}
	items, _, err := f.items.ListContentItems(ctx, p.TenantID, models.ContentItemFilters{
		ContentTypeID: input.ContentTypeID,
		Status:        input.Status,
		Limit:         input.Limit,
	})
	if err != nil {
		return nil, nil, err
	}
	return jsonToolResult(items)
}

func (f *Facade) handleGetContentItem(ctx context.Context, p *models.Principal, input getContentItemInput) (*mcp.CallToolResult, any, error) {
	if !p.HasScope(services.ScopeContentRead) {
		return nil, nil, fmt.Errorf("API key lacks the %s scope", services.ScopeContentRead)
	}
	item, err := f.items.GetContentItem(ctx, p.TenantID, input.ItemID)
	if err != nil {
		return nil, nil, err
	}
	ct, err := f.types.GetContentType(ctx, p.TenantID, item.ContentTypeID)
	if err != nil {
		return nil, nil, err
	}
	if ct.BasePriceSats > 0 {
		if input.PaymentHash == "" {
			return nil, nil, fmt.Errorf("content type %q is priced at %d sats: purchase it with quillgate_purchase_offer and pass the payment_hash", ct.Slug, ct.BasePriceSats)
		}
		if _, err := f.entitlements.Consume(ctx, input.PaymentHash, ct.ID); err != nil {
			return nil, nil, err
		}
		if err := f.payments.MarkConsumed(ctx, input.PaymentHash); err != nil {
			return nil, nil, err
		}
	}
	return jsonToolResult(item)
}

func (f *Facade) handleCreateContentItem(ctx context.Context, p *models.Principal, input createContentItemInput) (*mcp.CallToolResult, any, error) {
	if !p.HasScope(services.ScopeContentWrite) {
		return nil, nil, fmt.Errorf("API key lacks the %s scope", services.ScopeContentWrite)
	}
	ct, err := f.types.GetContentType(ctx, p.TenantID, input.ContentTypeID)
	if err != nil {
		return nil, nil, err
	}
	if ct.BasePriceSats > 0 {
		if input.PaymentHash == "" {
			return nil, nil, fmt.Errorf("content type %q is priced at %d sats: purchase it with quillgate_purchase_offer and pass the payment_hash", ct.Slug, ct.BasePriceSats)
		}
		if _, err := f.entitlements.Consume(ctx, input.PaymentHash, ct.ID); err != nil {
			return nil, nil, err
		}
		if err := f.payments.MarkConsumed(ctx, input.PaymentHash); err != nil {
			return nil, nil, err
		}
	}
	item, err := f.items.CreateContentItem(ctx, p.TenantID, models.CreateContentItemRequest{
		ContentTypeID: input.ContentTypeID,
		Data:          input.Data,
		Status:        input.Status,
	})
	if err != nil {
		return nil, nil, err
	}
	return jsonToolResult(item)
}

func (f *Facade) handlePurchaseOffer(ctx context.Context, p *models.Principal, input purchaseOfferInput) (*mcp.CallToolResult, any, error) {
	if !p.HasScope(services.ScopePaymentsWrite) {
		return nil, nil, fmt.Errorf("API key lacks the %s scope", services.ScopePaymentsWrite)
	}
	ct, err := f.types.GetContentType(ctx, p.TenantID, input.ContentTypeID)
	if err != nil {
		return nil, nil, err
	}
	agent := input.AgentProfileID
	if agent == "" {
		agent = p.KeyPrefix
	}
	offer, err := f.payments.CreateChallenge(ctx, p.TenantID, ct, agent, "GET", "/api/v1/content-items")
	if err != nil {
		return nil, nil, err
	}
	return jsonToolResult(offer)
}

func (f *Facade) handleListEntitlements(ctx context.Context, p *models.Principal, input listEntitlementsInput) (*mcp.CallToolResult, any, error) {
	if !p.HasScope(services.ScopePaymentsRead) {
		return nil, nil, fmt.Errorf("API key lacks the %s scope", services.ScopePaymentsRead)
	}
	grants, err := f.entitlements.ListEntitlements(ctx, p.TenantID, input.AgentProfileID)
	if err != nil {
		return nil, nil, err
	}
	return jsonToolResult(grants)
}

func jsonToolResult(v any) (*mcp.CallToolResult, any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, nil, err
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(data)}},
	}, nil, nil
}
