package workers

import (
	"context"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/quillgate/quillgate/ent"
	"github.com/quillgate/quillgate/pkg/config"
	"github.com/quillgate/quillgate/pkg/services"
)

// TransferExecutor moves sats to a party. Implementations are expected to be
// idempotent per transfer id; the worker may retry after a crash.
type TransferExecutor interface {
	Execute(ctx context.Context, transfer *ent.PayoutTransfer) error
}

// LogExecutor records transfers in the log instead of moving funds. Used in
// development and as the stand-in until a Lightning payout backend is wired.
type LogExecutor struct{}

// Execute implements TransferExecutor.
func (LogExecutor) Execute(_ context.Context, t *ent.PayoutTransfer) error {
	slog.Info("Payout transfer executed (log only)",
		"transfer_id", t.ID, "party", t.AgentProfileID, "amount_sats", t.AmountSats)
	return nil
}

// PayoutWorker sweeps cleared balances into payout batches and executes the
// resulting transfers with bounded retries.
type PayoutWorker struct {
	revenue  *services.RevenueService
	executor TransferExecutor
	cfg      config.WorkersConfig
	metrics  *Metrics

	cancel context.CancelFunc
	done   chan struct{}
}

// NewPayoutWorker creates a new PayoutWorker.
func NewPayoutWorker(revenue *services.RevenueService, executor TransferExecutor,
	cfg config.WorkersConfig, metrics *Metrics) *PayoutWorker {
	return &PayoutWorker{revenue: revenue, executor: executor, cfg: cfg, metrics: metrics}
}

// Start launches the payout loop.
func (w *PayoutWorker) Start(ctx context.Context) {
	if w.cancel != nil {
		return
	}
	ctx, w.cancel = context.WithCancel(ctx)
	w.done = make(chan struct{})

	go w.run(ctx)

	slog.Info("Payout worker started",
		"interval", w.cfg.PayoutInterval, "minimum_sats", w.cfg.PayoutMinimumSats)
}

// Stop signals the loop to exit and waits for it to finish.
func (w *PayoutWorker) Stop() {
	if w.cancel == nil {
		return
	}
	w.cancel()
	<-w.done
	slog.Info("Payout worker stopped")
}

func (w *PayoutWorker) run(ctx context.Context) {
	defer close(w.done)

	ticker := time.NewTicker(w.cfg.PayoutInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.Payout(ctx)
		}
	}
}

// Payout runs one cycle: batch every balance at or above the minimum, then
// execute whatever transfers are pending, including leftovers from earlier
// cycles.
func (w *PayoutWorker) Payout(ctx context.Context) {
	if err := w.createBatches(ctx); err != nil {
		slog.Error("Payout batching failed", "error", err)
	}
	if err := w.executePending(ctx); err != nil {
		slog.Error("Payout execution failed", "error", err)
	}
}

func (w *PayoutWorker) createBatches(ctx context.Context) error {
	balances, err := w.revenue.PayableBalances(ctx)
	if err != nil {
		return err
	}

	shares := make(map[int]map[string]int64)
	for _, b := range balances {
		if b.Sats < w.cfg.PayoutMinimumSats {
			continue
		}
		if shares[b.TenantID] == nil {
			shares[b.TenantID] = make(map[string]int64)
		}
		shares[b.TenantID][b.AgentProfileID] = b.Sats
	}

	for tenantID, tenantShares := range shares {
		batch, err := w.revenue.CreatePayoutBatch(ctx, tenantID, tenantShares)
		if err != nil {
			slog.Error("Failed to create payout batch", "tenant_id", tenantID, "error", err)
			continue
		}
		slog.Info("Payout batch created",
			"batch_id", batch.ID, "tenant_id", tenantID, "total_sats", batch.TotalSats)
	}
	return nil
}

func (w *PayoutWorker) executePending(ctx context.Context) error {
	transfers, err := w.revenue.PendingTransfers(ctx, 100)
	if err != nil {
		return err
	}

	for _, t := range transfers {
		attempt := t.Attempts + 1

		// Retry transient executor errors in place before burning one of
		// the transfer's persistent attempts.
		policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 2), ctx)
		execErr := backoff.Retry(func() error {
			return w.executor.Execute(ctx, t)
		}, policy)

		if execErr != nil {
			w.metrics.PayoutTransfers.WithLabelValues("failed").Inc()
			if err := w.revenue.FailTransfer(ctx, t.ID, attempt, w.cfg.MaxDeliveryAttempts, execErr.Error()); err != nil {
				slog.Error("Failed to record transfer failure", "transfer_id", t.ID, "error", err)
			}
			continue
		}

		w.metrics.PayoutTransfers.WithLabelValues("completed").Inc()
		if err := w.revenue.CompleteTransfer(ctx, t.ID, attempt); err != nil {
			slog.Error("Failed to record transfer completion", "transfer_id", t.ID, "error", err)
		}
	}
	return nil
}
