// Quillgate content runtime server: HTTP API, MCP facade, and the background
// loops that reconcile payments, sweep expirations, dispatch webhooks, and
// execute payouts.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/quillgate/quillgate/pkg/api"
	"github.com/quillgate/quillgate/pkg/config"
	"github.com/quillgate/quillgate/pkg/database"
	"github.com/quillgate/quillgate/pkg/events"
	"github.com/quillgate/quillgate/pkg/l402"
	"github.com/quillgate/quillgate/pkg/mcpfacade"
	"github.com/quillgate/quillgate/pkg/services"
	"github.com/quillgate/quillgate/pkg/workers"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment", "error", err)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("Starting quillgate",
		"environment", cfg.Environment,
		"http_port", cfg.HTTPPort,
		"payment_provider", cfg.Payments.Provider)

	ctx := context.Background()

	// Database
	dbCfg, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}
	dbClient, err := database.NewClient(ctx, dbCfg)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// Payment provider
	var provider l402.Provider
	switch cfg.Payments.Provider {
	case "mock":
		if cfg.Environment != "development" {
			slog.Warn("Mock payment provider active outside development")
		}
		provider = l402.NewMockProvider()
	case "rest":
		provider = l402.NewRESTProvider(cfg.Payments.ProviderURL, cfg.Payments.ProviderAPIKey)
	default:
		slog.Error("Unknown payment provider", "provider", cfg.Payments.Provider)
		os.Exit(1)
	}
	signer := l402.NewSigner(cfg.Payments.TokenSecret)

	// Event bus and services
	bus := events.NewBus()
	defer bus.Close()

	auditService := services.NewAuditService(dbClient.Client, bus)
	tenantService := services.NewTenantService(dbClient.Client)
	contentTypeService := services.NewContentTypeService(dbClient.Client, auditService)
	contentItemService := services.NewContentItemService(dbClient.Client, contentTypeService, auditService)
	apiKeyService := services.NewAPIKeyService(dbClient.Client, auditService)
	webhookService := services.NewWebhookService(dbClient.Client, auditService)
	entitlementService := services.NewEntitlementService(dbClient.Client, auditService, cfg.Payments)
	revenueService := services.NewRevenueService(dbClient.Client, cfg.Payments)
	paymentService := services.NewPaymentService(dbClient.Client, provider, signer,
		auditService, entitlementService, revenueService, cfg.Payments)
	decisionService := services.NewPolicyDecisionService(dbClient.Client)
	slog.Info("Services initialized")

	// Committed mutations fan out to webhook deliveries via the bus; the
	// dispatcher then posts them on its own schedule.
	sub := bus.Subscribe("webhook-deliveries", 0)
	fanoutDone := make(chan struct{})
	go func() {
		defer close(fanoutDone)
		for evt := range sub.C {
			webhookService.RecordDeliveries(ctx, evt)
		}
	}()

	// Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(prometheus.NewCounterFunc(prometheus.CounterOpts{
		Name: "quillgate_events_dropped_total",
		Help: "Events lost to event bus subscriber overflow.",
	}, func() float64 { return float64(bus.Dropped()) }))
	workerMetrics := workers.NewMetrics(registry)

	// Background loops
	reconciler := workers.NewReconciler(paymentService, cfg.Workers, workerMetrics)
	reconciler.Start(ctx)
	defer reconciler.Stop()

	sweeper := workers.NewSweeper(paymentService, entitlementService, revenueService, cfg.Workers)
	sweeper.Start(ctx)
	defer sweeper.Stop()

	payoutWorker := workers.NewPayoutWorker(revenueService, workers.LogExecutor{}, cfg.Workers, workerMetrics)
	payoutWorker.Start(ctx)
	defer payoutWorker.Stop()

	dispatcher := workers.NewDispatcher(webhookService, cfg.Workers, workerMetrics)
	dispatcher.Start(ctx)
	defer dispatcher.Stop()

	// HTTP server with the MCP facade mounted alongside the REST surface
	httpServer := api.NewServer(cfg, dbClient, api.Services{
		Tenants:      tenantService,
		ContentTypes: contentTypeService,
		ContentItems: contentItemService,
		APIKeys:      apiKeyService,
		Audit:        auditService,
		Webhooks:     webhookService,
		Payments:     paymentService,
		Entitlements: entitlementService,
		Revenue:      revenueService,
		Decisions:    decisionService,
	}, registry)

	facade := mcpfacade.New(apiKeyService, contentTypeService, contentItemService,
		paymentService, entitlementService)
	httpServer.MountMCP(facade.Handler())

	errCh := make(chan error, 1)
	go func() {
		if err := httpServer.Start(); err != nil {
			errCh <- err
		}
	}()
	slog.Info("Quillgate started")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// Drain HTTP first so no new work arrives, then let the deferred worker
	// Stops finish their in-flight passes.
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	bus.Close()
	select {
	case <-fanoutDone:
	case <-time.After(5 * time.Second):
		slog.Warn("Webhook fanout did not drain before timeout")
	}

	slog.Info("Shutdown complete")
}
