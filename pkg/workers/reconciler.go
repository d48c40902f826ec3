package workers

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/quillgate/quillgate/ent/payment"
	"github.com/quillgate/quillgate/pkg/config"
	"github.com/quillgate/quillgate/pkg/l402"
	"github.com/quillgate/quillgate/pkg/services"
)

// Reconciler periodically re-queries the payment provider for pending
// payments that have sat past the threshold, catching settlements whose
// webhook never arrived and expiring invoices the provider gave up on.
// Safe to run from multiple pods: every transition it applies is a
// conditional update.
type Reconciler struct {
	payments *services.PaymentService
	cfg      config.WorkersConfig
	metrics  *Metrics

	cancel context.CancelFunc
	done   chan struct{}
}

// NewReconciler creates a new Reconciler.
func NewReconciler(payments *services.PaymentService, cfg config.WorkersConfig, metrics *Metrics) *Reconciler {
	return &Reconciler{payments: payments, cfg: cfg, metrics: metrics}
}

// Start launches the reconcile loop.
func (r *Reconciler) Start(ctx context.Context) {
	if r.cancel != nil {
		return
	}
	ctx, r.cancel = context.WithCancel(ctx)
	r.done = make(chan struct{})

	go r.run(ctx)

	slog.Info("Payment reconciler started",
		"interval", r.cfg.ReconcileInterval, "threshold", r.cfg.ReconcileThreshold)
}

// Stop signals the loop to exit and waits for it to finish.
func (r *Reconciler) Stop() {
	if r.cancel == nil {
		return
	}
	r.cancel()
	<-r.done
	slog.Info("Payment reconciler stopped")
}

func (r *Reconciler) run(ctx context.Context) {
	defer close(r.done)

	ticker := time.NewTicker(r.cfg.ReconcileInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := r.Reconcile(ctx); err != nil {
				slog.Error("Reconcile pass failed", "error", err)
			}
		}
	}
}

// Reconcile runs one pass: for every overdue pending payment, ask the
// provider for the invoice's actual state and apply it.
func (r *Reconciler) Reconcile(ctx context.Context) error {
	cutoff := time.Now().Add(-r.cfg.ReconcileThreshold)
	overdue, err := r.payments.PendingOlderThan(ctx, cutoff, 100)
	if err != nil {
		return err
	}
	r.metrics.PendingPayments.Set(float64(len(overdue)))

	for _, p := range overdue {
		if err := r.reconcileOne(ctx, p.PaymentHash); err != nil {
			slog.Error("Failed to reconcile payment", "payment_hash", p.PaymentHash, "error", err)
		}
	}
	return nil
}

func (r *Reconciler) reconcileOne(ctx context.Context, hash string) error {
	status, err := r.payments.Provider().GetInvoiceStatus(ctx, hash)
	if err != nil {
		return fmt.Errorf("provider lookup failed: %w", err)
	}

	eventID := "reconcile:" + hash
	switch status.Status {
	case l402.StatusPaid:
		if _, err := r.payments.Settle(ctx, hash, eventID); err != nil {
			return err
		}
		r.metrics.ReconcileCorrections.WithLabelValues("settled").Inc()
		slog.Info("Reconciler settled payment missed by webhook", "payment_hash", hash)
	case l402.StatusExpired:
		if err := r.payments.Fail(ctx, hash, payment.StatusExpired, "invoice expired at provider", eventID); err != nil {
			return err
		}
		r.metrics.ReconcileCorrections.WithLabelValues("expired").Inc()
	case l402.StatusFailed:
		if err := r.payments.Fail(ctx, hash, payment.StatusFailed, "provider reported failure", eventID); err != nil {
			return err
		}
		r.metrics.ReconcileCorrections.WithLabelValues("failed").Inc()
	}
	// Still pending at the provider: leave it for the next pass.
	return nil
}
