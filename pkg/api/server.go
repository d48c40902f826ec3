// Package api exposes the HTTP surface: the echo route table, the request
// pipeline middleware, and the handlers over the services layer.
package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/quillgate/quillgate/pkg/config"
	"github.com/quillgate/quillgate/pkg/database"
	"github.com/quillgate/quillgate/pkg/idempotency"
	"github.com/quillgate/quillgate/pkg/l402"
	"github.com/quillgate/quillgate/pkg/ratelimit"
	"github.com/quillgate/quillgate/pkg/services"
)

// Services bundles the service layer handed to the server.
type Services struct {
	Tenants      *services.TenantService
	ContentTypes *services.ContentTypeService
	ContentItems *services.ContentItemService
	APIKeys      *services.APIKeyService
	Audit        *services.AuditService
	Webhooks     *services.WebhookService
	Payments     *services.PaymentService
	Entitlements *services.EntitlementService
	Revenue      *services.RevenueService
	Decisions    *services.PolicyDecisionService
}

// Server is the HTTP server: echo for routing, wrapped in an http.Server we
// own so startup and graceful shutdown stay under our control.
type Server struct {
	echo       *echo.Echo
	httpServer *http.Server
	db         *database.Client
	cfg        *config.Config

	tenantService      *services.TenantService
	contentTypeService *services.ContentTypeService
	contentItemService *services.ContentItemService
	apiKeyService      *services.APIKeyService
	auditService       *services.AuditService
	webhookService     *services.WebhookService
	paymentService     *services.PaymentService
	entitlementService *services.EntitlementService
	revenueService     *services.RevenueService
	decisionService    *services.PolicyDecisionService

	signer      *l402.Signer
	limiter     *ratelimit.Registry
	idempotency *idempotency.Cache
	registry    *prometheus.Registry
}

// NewServer creates the server and registers all routes.
func NewServer(cfg *config.Config, db *database.Client, svcs Services, registry *prometheus.Registry) *Server {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	s := &Server{
		echo: echo.New(),
		db:   db,
		cfg:  cfg,

		tenantService:      svcs.Tenants,
		contentTypeService: svcs.ContentTypes,
		contentItemService: svcs.ContentItems,
		apiKeyService:      svcs.APIKeys,
		auditService:       svcs.Audit,
		webhookService:     svcs.Webhooks,
		paymentService:     svcs.Payments,
		entitlementService: svcs.Entitlements,
		revenueService:     svcs.Revenue,
		decisionService:    svcs.Decisions,

		signer:      l402.NewSigner(cfg.Payments.TokenSecret),
		limiter:     ratelimit.NewRegistry(cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst),
		idempotency: idempotency.NewCache(cfg.Idempotency.TTL),
		registry:    registry,
	}
	s.registerRoutes()

	s.httpServer = &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           s.echo,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

func (s *Server) registerRoutes() {
	e := s.echo
	e.Use(securityHeaders())
	e.Use(s.requestID())

	// Unauthenticated surface.
	e.GET("/health", s.healthHandler)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{})))
	e.POST("/api/v1/payments/webhooks/:provider", s.providerWebhookHandler)

	api := e.Group("/api/v1")
	api.Use(s.rateLimit())
	api.Use(s.authenticate())
	api.Use(s.idempotencyReplay())

	api.GET("/content-types", s.listContentTypesHandler)
	api.POST("/content-types", s.createContentTypeHandler)
	api.GET("/content-types/:id", s.getContentTypeHandler)
	api.PATCH("/content-types/:id", s.updateContentTypeHandler)
	api.DELETE("/content-types/:id", s.deleteContentTypeHandler)

	api.GET("/content-items", s.listContentItemsHandler)
	api.POST("/content-items", s.createContentItemHandler)
	api.POST("/content-items/batch", s.batchCreateContentItemsHandler)
	api.GET("/content-items/:id", s.getContentItemHandler)
	// Updates are partial either way; PUT is kept for clients that treat
	// the item as a replaceable document.
	api.PATCH("/content-items/:id", s.updateContentItemHandler)
	api.PUT("/content-items/:id", s.updateContentItemHandler)
	api.DELETE("/content-items/:id", s.deleteContentItemHandler)
	api.GET("/content-items/:id/versions", s.listContentItemVersionsHandler)
	api.POST("/content-items/:id/rollback", s.rollbackContentItemHandler)

	api.GET("/webhooks", s.listWebhooksHandler)
	api.POST("/webhooks", s.createWebhookHandler)
	api.GET("/webhooks/:id", s.getWebhookHandler)
	api.PATCH("/webhooks/:id", s.updateWebhookHandler)
	api.DELETE("/webhooks/:id", s.deleteWebhookHandler)
	api.GET("/webhooks/:id/deliveries", s.listWebhookDeliveriesHandler)

	api.GET("/auth/keys", s.listAPIKeysHandler)
	api.POST("/auth/keys", s.createAPIKeyHandler)
	api.POST("/auth/keys/:id/rotate", s.rotateAPIKeyHandler)
	api.DELETE("/auth/keys/:id", s.revokeAPIKeyHandler)

	api.GET("/audit-logs", s.listAuditLogsHandler)
	api.GET("/policy-decisions", s.listPolicyDecisionsHandler)

	api.POST("/offers/:contentTypeId/purchase", s.purchaseOfferHandler)
	// Confirmation is keyed by payment hash, so both spellings share a handler.
	api.POST("/offers/:contentTypeId/purchase/confirm", s.confirmPaymentHandler)
	api.POST("/payments/confirm", s.confirmPaymentHandler)
	api.GET("/payments", s.listPaymentsHandler)
	api.GET("/payments/:hash", s.getPaymentHandler)

	api.GET("/entitlements", s.listEntitlementsHandler)
	api.GET("/entitlements/:id", s.getEntitlementHandler)
	api.POST("/entitlements/:id/revoke", s.revokeEntitlementHandler)
	api.POST("/entitlements/:id/delegate", s.delegateEntitlementHandler)
}

// MountMCP attaches the MCP facade under /mcp. The facade authenticates its
// own connections, so it sits outside the API key middleware chain.
func (s *Server) MountMCP(h http.Handler) {
	s.echo.Any("/mcp", echo.WrapHandler(h))
	s.echo.Any("/mcp/*", echo.WrapHandler(h))
}

// Start begins serving. Blocks until the listener fails or Shutdown runs.
func (s *Server) Start() error {
	slog.Info("HTTP server listening", "addr", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("http server failed: %w", err)
	}
	return nil
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// Echo exposes the router for handler tests.
func (s *Server) Echo() *echo.Echo {
	return s.echo
}
