package workers

import (
	"context"
	"log/slog"
	"time"

	"github.com/quillgate/quillgate/pkg/config"
	"github.com/quillgate/quillgate/pkg/services"
)

// Sweeper enforces time-based state: overdue invoices expire, entitlements
// past their expiry lapse, and matured revenue allocations clear for payout.
// All three sweeps are idempotent bulk conditional updates.
type Sweeper struct {
	payments     *services.PaymentService
	entitlements *services.EntitlementService
	revenue      *services.RevenueService
	cfg          config.WorkersConfig

	cancel context.CancelFunc
	done   chan struct{}
}

// NewSweeper creates a new Sweeper.
func NewSweeper(payments *services.PaymentService, entitlements *services.EntitlementService,
	revenue *services.RevenueService, cfg config.WorkersConfig) *Sweeper {
	return &Sweeper{payments: payments, entitlements: entitlements, revenue: revenue, cfg: cfg}
}

// Start launches the sweep loop.
func (s *Sweeper) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Sweeper started", "interval", s.cfg.SweepInterval)
}

// Stop signals the loop to exit and waits for it to finish.
func (s *Sweeper) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Sweeper stopped")
}

func (s *Sweeper) run(ctx context.Context) {
	defer close(s.done)

	s.Sweep(ctx)

	ticker := time.NewTicker(s.cfg.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Sweep(ctx)
		}
	}
}

// Sweep runs one pass of all three sweeps. Failures are logged per sweep so
// one broken table cannot starve the others.
func (s *Sweeper) Sweep(ctx context.Context) {
	now := time.Now()

	if count, err := s.payments.ExpireOverdue(ctx, now); err != nil {
		slog.Error("Sweep: payment expiry failed", "error", err)
	} else if count > 0 {
		slog.Info("Sweep: expired overdue invoices", "count", count)
	}

	if count, err := s.entitlements.ExpireDue(ctx, now); err != nil {
		slog.Error("Sweep: entitlement expiry failed", "error", err)
	} else if count > 0 {
		slog.Info("Sweep: expired entitlements", "count", count)
	}

	if count, err := s.revenue.ClearMatured(ctx, now); err != nil {
		slog.Error("Sweep: allocation clearing failed", "error", err)
	} else if count > 0 {
		slog.Info("Sweep: cleared matured allocations", "count", count)
	}
}
