package services

import (
	"context"
	"fmt"
	"time"

	"github.com/quillgate/quillgate/ent"
	"github.com/quillgate/quillgate/ent/payment"
	"github.com/quillgate/quillgate/pkg/config"
	"github.com/quillgate/quillgate/pkg/events"
	"github.com/quillgate/quillgate/pkg/l402"
	"github.com/quillgate/quillgate/pkg/models"
)

// PaymentService owns the payment lifecycle. All status changes funnel
// through conditional single-statement transitions: pending → paid is the
// linearization point, applied at most once no matter how many of webhook,
// confirm, and reconciler race to report the same settlement.
type PaymentService struct {
	client       *ent.Client
	provider     l402.Provider
	signer       *l402.Signer
	audit        *AuditService
	entitlements *EntitlementService
	revenue      *RevenueService
	cfg          config.PaymentConfig
}

// NewPaymentService creates a new PaymentService
func NewPaymentService(client *ent.Client, provider l402.Provider, signer *l402.Signer, audit *AuditService, entitlements *EntitlementService, revenue *RevenueService, cfg config.PaymentConfig) *PaymentService {
	return &PaymentService{
		client:       client,
		provider:     provider,
		signer:       signer,
		audit:        audit,
		entitlements: entitlements,
		revenue:      revenue,
		cfg:          cfg,
	}
}

// Provider exposes the configured payment backend.
func (s *PaymentService) Provider() l402.Provider {
	return s.provider
}

// CreateChallenge creates the invoice, the pending payment row, the
// pending_payment entitlement, and the capability token for one purchase of
// a priced content type.
func (s *PaymentService) CreateChallenge(ctx context.Context, tenantID int, ct *ent.ContentType, agentProfileID, method, path string) (*models.PurchaseResponse, error) {
	if ct.BasePriceSats <= 0 {
		return nil, NewValidationError("contentTypeId", "content type is not priced")
	}
	if agentProfileID == "" {
		agentProfileID = ActorFrom(ctx)
	}

	invoice, err := s.provider.CreateInvoice(ctx, ct.BasePriceSats,
		fmt.Sprintf("quillgate: %s", ct.Slug), s.cfg.InvoiceTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to create invoice: %w", err)
	}

	token, err := s.signer.Mint(l402.Caveats{
		PaymentHash:   invoice.PaymentHash,
		Method:        method,
		Path:          path,
		TenantID:      tenantID,
		ContentTypeID: ct.ID,
		AmountSats:    ct.BasePriceSats,
	}, invoice.ExpiresAt)
	if err != nil {
		return nil, err
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	builder := tx.Payment.Create().
		SetTenantID(tenantID).
		SetPaymentHash(invoice.PaymentHash).
		SetProvider(s.provider.Name()).
		SetPaymentRequest(invoice.PaymentRequest).
		SetAmountSats(ct.BasePriceSats).
		SetExpiresAt(invoice.ExpiresAt).
		SetResourcePath(path).
		SetActorID(agentProfileID).
		SetDetails(map[string]interface{}{
			"content_type_id": ct.ID,
		})
	if invoice.ProviderInvoiceID != "" {
		builder.SetProviderInvoiceID(invoice.ProviderInvoiceID)
	}
	p, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment: %w", err)
	}

	if _, err := s.entitlements.CreatePendingTx(ctx, tx, tenantID, ct.ID, agentProfileID, invoice.PaymentHash); err != nil {
		return nil, err
	}
	if err := s.audit.RecordTx(ctx, tx, tenantID, ActionCreate, "payment", p.ID, map[string]any{
		"payment_hash": invoice.PaymentHash,
		"amount_sats":  ct.BasePriceSats,
	}); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return &models.PurchaseResponse{
		PaymentHash:    invoice.PaymentHash,
		PaymentRequest: invoice.PaymentRequest,
		Token:          token,
		AmountSats:     ct.BasePriceSats,
		ExpiresAt:      invoice.ExpiresAt,
	}, nil
}

// GetPayment retrieves a payment by hash.
func (s *PaymentService) GetPayment(ctx context.Context, paymentHash string) (*ent.Payment, error) {
	p, err := s.client.Payment.Query().
		Where(payment.PaymentHashEQ(paymentHash)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, NewError(ErrNotFound, CodePaymentNotFound,
				"payment not found", "check the payment hash")
		}
		return nil, fmt.Errorf("failed to get payment: %w", err)
	}
	return p, nil
}

// ListPayments lists the tenant's payments, newest first.
func (s *PaymentService) ListPayments(ctx context.Context, tenantID int, filters models.PaymentFilters) ([]*ent.Payment, int, error) {
	query := s.client.Payment.Query().
		Where(payment.TenantIDEQ(tenantID))
	if filters.Status != "" {
		query = query.Where(payment.StatusEQ(payment.Status(filters.Status)))
	}

	total, err := query.Clone().Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count payments: %w", err)
	}

	limit := filters.Limit
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	payments, err := query.
		Order(ent.Desc(payment.FieldID)).
		Limit(limit).
		Offset(filters.Offset).
		All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list payments: %w", err)
	}
	return payments, total, nil
}

// Settle moves a pending payment to paid and, in the same transaction,
// activates its entitlement and writes the revenue ledger rows. Replays
// and races collapse on the conditional pending → paid update: only the
// transition that claims it does the side effects, everyone else sees an
// already-paid row and succeeds as a no-op.
func (s *PaymentService) Settle(ctx context.Context, paymentHash, eventID string) (*ent.Payment, error) {
	p, err := s.GetPayment(ctx, paymentHash)
	if err != nil {
		return nil, err
	}

	switch p.Status {
	case payment.StatusPending:
	case payment.StatusPaid, payment.StatusConsumed:
		return p, nil
	default:
		return nil, NewError(ErrInvalidInput, CodeInvalidTransition,
			fmt.Sprintf("cannot settle a %s payment", p.Status),
			"create a new challenge")
	}

	now := time.Now()
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	builder := tx.Payment.Update().
		Where(
			payment.IDEQ(p.ID),
			payment.StatusEQ(payment.StatusPending),
		).
		SetStatus(payment.StatusPaid).
		SetSettledAt(now)
	if eventID != "" {
		builder.SetLastEventID(eventID)
	}
	affected, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to settle payment: %w", err)
	}
	if affected == 0 {
		// Lost the race to another settler; the winner did the side effects.
		return s.GetPayment(ctx, paymentHash)
	}

	if err := s.entitlements.ActivateTx(ctx, tx, paymentHash); err != nil {
		return nil, err
	}
	if err := s.revenue.AllocateTx(ctx, tx, p.TenantID, p.ID, p.AmountSats); err != nil {
		return nil, err
	}
	if err := s.audit.RecordTx(ctx, tx, p.TenantID, ActionUpdate, "payment", p.ID, map[string]any{
		"payment_hash": paymentHash,
		"status":       "paid",
	}); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	s.audit.Publish(ctx, p.TenantID, events.TypePaymentPaid, "payment", p.ID, map[string]any{
		"payment_hash": paymentHash,
		"amount_sats":  p.AmountSats,
	})
	s.audit.Publish(ctx, p.TenantID, events.TypeEntitlementActive, "entitlement", p.ID, map[string]any{
		"payment_hash": paymentHash,
	})
	return s.GetPayment(ctx, paymentHash)
}

// Confirm settles a payment from a client-presented preimage.
func (s *PaymentService) Confirm(ctx context.Context, req models.ConfirmPaymentRequest) (*ent.Payment, error) {
	if req.PaymentHash == "" {
		return nil, NewValidationError("paymentHash", "required")
	}
	if req.Preimage == "" {
		return nil, NewValidationError("preimage", "required")
	}
	if err := l402.VerifyPreimage(req.Preimage, req.PaymentHash); err != nil {
		return nil, NewError(ErrPaymentRequired, CodePaymentInvalidPreimage,
			"preimage does not match the payment hash", "present the preimage of the paid invoice")
	}
	return s.Settle(ctx, req.PaymentHash, "")
}

// MarkConsumed burns a paid payment on first read of the gated resource.
// The conditional paid → consumed update makes the burn single-shot.
func (s *PaymentService) MarkConsumed(ctx context.Context, paymentHash string) error {
	p, err := s.GetPayment(ctx, paymentHash)
	if err != nil {
		return err
	}
	if _, err := s.client.Payment.Update().
		Where(
			payment.IDEQ(p.ID),
			payment.StatusEQ(payment.StatusPaid),
		).
		SetStatus(payment.StatusConsumed).
		Save(ctx); err != nil {
		return fmt.Errorf("failed to mark payment consumed: %w", err)
	}
	return nil
}

// Fail moves a pending payment to a terminal failure state ("expired" or
// "failed"). No-op when the payment already settled.
func (s *PaymentService) Fail(ctx context.Context, paymentHash string, status payment.Status, reason, eventID string) error {
	if status != payment.StatusExpired && status != payment.StatusFailed {
		return NewError(ErrInvalidInput, CodeInvalidTransition,
			fmt.Sprintf("%s is not a failure state", status), "use expired or failed")
	}
	p, err := s.GetPayment(ctx, paymentHash)
	if err != nil {
		return err
	}

	builder := s.client.Payment.Update().
		Where(
			payment.IDEQ(p.ID),
			payment.StatusEQ(payment.StatusPending),
		).
		SetStatus(status)
	if reason != "" {
		builder.SetFailureReason(reason)
	}
	if eventID != "" {
		builder.SetLastEventID(eventID)
	}
	affected, err := builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to fail payment: %w", err)
	}
	if affected == 0 {
		return nil
	}

	eventType := events.TypePaymentFailed
	if status == payment.StatusExpired {
		eventType = events.TypePaymentExpired
	}
	s.audit.Record(ctx, p.TenantID, ActionUpdate, "payment", p.ID, map[string]any{
		"payment_hash": paymentHash,
		"status":       string(status),
		"reason":       reason,
	})
	s.audit.Publish(ctx, p.TenantID, eventType, "payment", p.ID, map[string]any{
		"payment_hash": paymentHash,
		"reason":       reason,
	})
	return nil
}

// HandleProviderEvent applies one provider settlement callback. Replays of
// the most recently applied event are acknowledged without effect.
func (s *PaymentService) HandleProviderEvent(ctx context.Context, providerName string, evt models.ProviderWebhookEvent) error {
	if evt.PaymentHash == "" {
		return NewValidationError("paymentHash", "required")
	}
	if evt.EventID == "" {
		return NewValidationError("eventId", "required")
	}

	p, err := s.GetPayment(ctx, evt.PaymentHash)
	if err != nil {
		return err
	}
	if p.Provider != providerName {
		return NewError(ErrNotFound, CodePaymentNotFound,
			"payment does not belong to this provider", "check the webhook route")
	}
	if p.LastEventID != nil && *p.LastEventID == evt.EventID {
		return NewError(ErrAlreadyExists, CodeWebhookReplay,
			"event already applied", "no action needed")
	}

	switch evt.Status {
	case "paid":
		if evt.Preimage != "" {
			if err := l402.VerifyPreimage(evt.Preimage, evt.PaymentHash); err != nil {
				return NewError(ErrPaymentRequired, CodePaymentInvalidPreimage,
					"webhook preimage does not match the payment hash", "check the provider integration")
			}
		}
		_, err := s.Settle(ctx, evt.PaymentHash, evt.EventID)
		return err
	case "expired":
		return s.Fail(ctx, evt.PaymentHash, payment.StatusExpired, evt.Reason, evt.EventID)
	case "failed":
		return s.Fail(ctx, evt.PaymentHash, payment.StatusFailed, evt.Reason, evt.EventID)
	default:
		return NewValidationError("status", "must be paid, expired, or failed")
	}
}

// PendingOlderThan returns pending payments created before the cutoff, for
// the reconciler.
func (s *PaymentService) PendingOlderThan(ctx context.Context, cutoff time.Time, limit int) ([]*ent.Payment, error) {
	if limit <= 0 {
		limit = 100
	}
	payments, err := s.client.Payment.Query().
		Where(
			payment.StatusEQ(payment.StatusPending),
			payment.CreatedAtLT(cutoff),
		).
		Order(ent.Asc(payment.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list stale pending payments: %w", err)
	}
	return payments, nil
}

// ExpireOverdue fails pending payments whose invoice expiry has passed.
// Called by the sweep worker; returns the number expired.
func (s *PaymentService) ExpireOverdue(ctx context.Context, now time.Time) (int, error) {
	overdue, err := s.client.Payment.Query().
		Where(
			payment.StatusEQ(payment.StatusPending),
			payment.ExpiresAtLT(now),
		).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list overdue payments: %w", err)
	}

	expired := 0
	for _, p := range overdue {
		if err := s.Fail(ctx, p.PaymentHash, payment.StatusExpired, "invoice expired", ""); err != nil {
			return expired, err
		}
		expired++
	}
	return expired, nil
}
