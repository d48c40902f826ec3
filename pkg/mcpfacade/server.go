// Package mcpfacade exposes the content runtime to MCP clients. The facade
// is a thin translation layer: every tool delegates to the same services the
// HTTP handlers use, so invariants hold no matter which protocol a caller
// arrives on.
package mcpfacade

import (
	"net/http"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/quillgate/quillgate/pkg/models"
	"github.com/quillgate/quillgate/pkg/services"
	"github.com/quillgate/quillgate/pkg/version"
)

// Facade serves MCP over SSE. Each connection authenticates with the same
// API keys as the HTTP surface; the per-connection server is bound to the
// key's tenant.
type Facade struct {
	keys         *services.APIKeyService
	types        *services.ContentTypeService
	items        *services.ContentItemService
	payments     *services.PaymentService
	entitlements *services.EntitlementService
}

// New creates the facade over the shared services.
func New(keys *services.APIKeyService, types *services.ContentTypeService,
	items *services.ContentItemService, payments *services.PaymentService,
	entitlements *services.EntitlementService) *Facade {
	return &Facade{
		keys:         keys,
		types:        types,
		items:        items,
		payments:     payments,
		entitlements: entitlements,
	}
}

// Handler returns the SSE transport handler, typically mounted at /mcp.
// Requests without a valid API key get no server and the transport rejects
// them.
func (f *Facade) Handler() http.Handler {
	return mcp.NewSSEHandler(func(r *http.Request) *mcp.Server {
		principal, err := f.keys.Authenticate(r.Context(), keyFrom(r))
		if err != nil {
			return nil
		}
		return f.serverFor(principal)
	}, nil)
}

func keyFrom(r *http.Request) string {
	if auth := r.Header.Get("Authorization"); auth != "" {
		if scheme, token, ok := strings.Cut(auth, " "); ok && strings.EqualFold(scheme, "Bearer") {
			return strings.TrimSpace(token)
		}
	}
	return r.Header.Get("X-API-Key")
}

// serverFor builds an MCP server whose tools are scoped to the principal's
// tenant and scopes.
func (f *Facade) serverFor(principal *models.Principal) *mcp.Server {
	srv := mcp.NewServer(&mcp.Implementation{
		Name:    version.AppName,
		Version: version.GitCommit,
	}, nil)
	f.registerTools(srv, principal)
	return srv
}
