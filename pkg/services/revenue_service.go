package services

import (
	"context"
	"fmt"
	"time"

	"github.com/quillgate/quillgate/ent"
	"github.com/quillgate/quillgate/ent/payoutbatch"
	"github.com/quillgate/quillgate/ent/payouttransfer"
	"github.com/quillgate/quillgate/ent/revenueallocation"
	"github.com/quillgate/quillgate/pkg/config"
)

// RevenueService keeps the revenue ledger: one event per settled payment,
// split into allocations by the pinned basis-point policy. Allocations sum
// to the gross exactly; the integer-division residual goes to the creator.
type RevenueService struct {
	client *ent.Client
	cfg    config.PaymentConfig
}

// NewRevenueService creates a new RevenueService
func NewRevenueService(client *ent.Client, cfg config.PaymentConfig) *RevenueService {
	return &RevenueService{client: client, cfg: cfg}
}

// CreatorParty names the party a tenant's creator share accrues to.
func CreatorParty(tenantID int) string {
	return fmt.Sprintf("creator:tenant:%d", tenantID)
}

// Split divides gross by the policy's basis points. creator + platform ==
// gross always; the rounding residual lands on the creator share.
func (s *RevenueService) Split(gross int64) (creator, platform int64) {
	platform = gross * int64(s.cfg.Policy.PlatformBP) / 10000
	creator = gross - platform
	return creator, platform
}

// AllocateTx writes the revenue event and its allocations for a settled
// payment, inside the settlement transaction. The unique payment_id index
// makes a second allocation attempt for the same payment a constraint
// error, which the caller treats as already-done.
func (s *RevenueService) AllocateTx(ctx context.Context, tx *ent.Tx, tenantID, paymentID int, grossSats int64) error {
	event, err := tx.RevenueEvent.Create().
		SetTenantID(tenantID).
		SetPaymentID(paymentID).
		SetGrossSats(grossSats).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			// Already allocated by an earlier settlement of this payment.
			return nil
		}
		return fmt.Errorf("failed to create revenue event: %w", err)
	}

	creator, platform := s.Split(grossSats)
	_, err = tx.RevenueAllocation.Create().
		SetTenantID(tenantID).
		SetEventID(event.ID).
		SetAgentProfileID(CreatorParty(tenantID)).
		SetAmountSats(creator).
		SetBasisPoints(s.cfg.Policy.CreatorBP).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to create creator allocation: %w", err)
	}
	_, err = tx.RevenueAllocation.Create().
		SetTenantID(tenantID).
		SetEventID(event.ID).
		SetAgentProfileID(s.cfg.Policy.PlatformWallet).
		SetAmountSats(platform).
		SetBasisPoints(s.cfg.Policy.PlatformBP).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to create platform allocation: %w", err)
	}
	return nil
}

// ClearMatured flips pending allocations older than the settlement window
// to cleared, making them payable. Returns the number cleared.
func (s *RevenueService) ClearMatured(ctx context.Context, now time.Time) (int, error) {
	cutoff := now.Add(-s.cfg.SettlementWindow)
	affected, err := s.client.RevenueAllocation.Update().
		Where(
			revenueallocation.StatusEQ(revenueallocation.StatusPending),
			revenueallocation.CreatedAtLT(cutoff),
		).
		SetStatus(revenueallocation.StatusCleared).
		SetClearedAt(now).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to clear matured allocations: %w", err)
	}
	return affected, nil
}

// PartyBalance is one party's payable position.
type PartyBalance struct {
	TenantID       int
	AgentProfileID string
	Sats           int64
}

// PayableBalances computes cleared-minus-paid per (tenant, party). A party
// appears only when its balance is positive. Transfers still pending or
// retrying count as paid so a crashed payout cycle can never double-pay.
func (s *RevenueService) PayableBalances(ctx context.Context) ([]PartyBalance, error) {
	var cleared []struct {
		TenantID       int    `json:"tenant_id"`
		AgentProfileID string `json:"agent_profile_id"`
		Sum            int64  `json:"sum"`
	}
	err := s.client.RevenueAllocation.Query().
		Where(revenueallocation.StatusEQ(revenueallocation.StatusCleared)).
		GroupBy(revenueallocation.FieldTenantID, revenueallocation.FieldAgentProfileID).
		Aggregate(ent.Sum(revenueallocation.FieldAmountSats)).
		Scan(ctx, &cleared)
	if err != nil {
		return nil, fmt.Errorf("failed to sum cleared allocations: %w", err)
	}

	var paid []struct {
		TenantID       int    `json:"tenant_id"`
		AgentProfileID string `json:"agent_profile_id"`
		Sum            int64  `json:"sum"`
	}
	err = s.client.PayoutTransfer.Query().
		Where(payouttransfer.StatusNEQ(payouttransfer.StatusFailedPermanent)).
		GroupBy(payouttransfer.FieldTenantID, payouttransfer.FieldAgentProfileID).
		Aggregate(ent.Sum(payouttransfer.FieldAmountSats)).
		Scan(ctx, &paid)
	if err != nil {
		return nil, fmt.Errorf("failed to sum payout transfers: %w", err)
	}

	paidBy := make(map[string]int64, len(paid))
	for _, row := range paid {
		paidBy[fmt.Sprintf("%d/%s", row.TenantID, row.AgentProfileID)] = row.Sum
	}

	balances := make([]PartyBalance, 0, len(cleared))
	for _, row := range cleared {
		net := row.Sum - paidBy[fmt.Sprintf("%d/%s", row.TenantID, row.AgentProfileID)]
		if net > 0 {
			balances = append(balances, PartyBalance{
				TenantID:       row.TenantID,
				AgentProfileID: row.AgentProfileID,
				Sats:           net,
			})
		}
	}
	return balances, nil
}

// CreatePayoutBatch records a batch and its transfers for one tenant in a
// single transaction. Transfers start pending; the payout worker executes
// them.
func (s *RevenueService) CreatePayoutBatch(ctx context.Context, tenantID int, shares map[string]int64) (*ent.PayoutBatch, error) {
	if len(shares) == 0 {
		return nil, NewValidationError("shares", "required")
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	var total int64
	for _, sats := range shares {
		total += sats
	}
	batch, err := tx.PayoutBatch.Create().
		SetTenantID(tenantID).
		SetTotalSats(total).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create payout batch: %w", err)
	}
	for party, sats := range shares {
		if _, err := tx.PayoutTransfer.Create().
			SetTenantID(tenantID).
			SetBatchID(batch.ID).
			SetAgentProfileID(party).
			SetAmountSats(sats).
			Save(ctx); err != nil {
			return nil, fmt.Errorf("failed to create payout transfer: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return batch, nil
}

// PendingTransfers returns transfers awaiting execution, oldest first.
// Transient failures stay eligible until their attempt budget is spent.
func (s *RevenueService) PendingTransfers(ctx context.Context, limit int) ([]*ent.PayoutTransfer, error) {
	if limit <= 0 {
		limit = 100
	}
	transfers, err := s.client.PayoutTransfer.Query().
		Where(payouttransfer.StatusIn(
			payouttransfer.StatusPending,
			payouttransfer.StatusFailedTransient,
		)).
		Order(ent.Asc(payouttransfer.FieldID)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending transfers: %w", err)
	}
	return transfers, nil
}

// CompleteTransfer records a successful execution and refreshes the batch.
func (s *RevenueService) CompleteTransfer(ctx context.Context, id, attempt int) error {
	affected, err := s.client.PayoutTransfer.Update().
		Where(
			payouttransfer.IDEQ(id),
			payouttransfer.StatusIn(payouttransfer.StatusPending, payouttransfer.StatusFailedTransient),
		).
		SetStatus(payouttransfer.StatusCompleted).
		SetAttempts(attempt).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to complete transfer %d: %w", id, err)
	}
	if affected == 0 {
		return nil
	}
	return s.refreshBatch(ctx, id)
}

// FailTransfer records a failed execution attempt. Once the attempt budget
// is spent the transfer goes failed_permanent and its funds return to the
// payable balance.
func (s *RevenueService) FailTransfer(ctx context.Context, id, attempt, maxAttempts int, cause string) error {
	status := payouttransfer.StatusFailedTransient
	if attempt >= maxAttempts {
		status = payouttransfer.StatusFailedPermanent
	}
	err := s.client.PayoutTransfer.UpdateOneID(id).
		SetStatus(status).
		SetAttempts(attempt).
		SetLastError(cause).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to record transfer %d failure: %w", id, err)
	}
	if status == payouttransfer.StatusFailedPermanent {
		return s.refreshBatch(ctx, id)
	}
	return nil
}

// refreshBatch recomputes a batch's status from its transfers: completed
// when every transfer completed, failed when every transfer is permanently
// failed, partial for a terminal mix, pending otherwise.
func (s *RevenueService) refreshBatch(ctx context.Context, transferID int) error {
	tr, err := s.client.PayoutTransfer.Get(ctx, transferID)
	if err != nil {
		return fmt.Errorf("failed to load transfer %d: %w", transferID, err)
	}
	transfers, err := s.client.PayoutTransfer.Query().
		Where(payouttransfer.BatchIDEQ(tr.BatchID)).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to load batch %d transfers: %w", tr.BatchID, err)
	}

	completed, permanent := 0, 0
	for _, t := range transfers {
		switch t.Status {
		case payouttransfer.StatusCompleted:
			completed++
		case payouttransfer.StatusFailedPermanent:
			permanent++
		}
	}

	status := payoutbatch.StatusPending
	switch {
	case completed == len(transfers):
		status = payoutbatch.StatusCompleted
	case permanent == len(transfers):
		status = payoutbatch.StatusFailed
	case completed+permanent == len(transfers):
		status = payoutbatch.StatusPartial
	}
	if status == payoutbatch.StatusPending {
		return nil
	}

	err = s.client.PayoutBatch.UpdateOneID(tr.BatchID).
		SetStatus(status).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to update batch %d status: %w", tr.BatchID, err)
	}
	return nil
}
