package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/quillgate/quillgate/ent"
	"github.com/quillgate/quillgate/ent/entitlement"
	"github.com/quillgate/quillgate/pkg/config"
	"github.com/quillgate/quillgate/pkg/events"
)

// EntitlementService manages the grant ledger: durable, revocable,
// quota-bounded access rights tied to payments. Quota consumption is a
// single conditional decrement so concurrent reads can never overdraw.
type EntitlementService struct {
	client *ent.Client
	audit  *AuditService
	cfg    config.PaymentConfig
}

// NewEntitlementService creates a new EntitlementService
func NewEntitlementService(client *ent.Client, audit *AuditService, cfg config.PaymentConfig) *EntitlementService {
	return &EntitlementService{client: client, audit: audit, cfg: cfg}
}

// CreatePendingTx creates the pending_payment grant for a fresh challenge,
// inside the caller's transaction. The revenue policy is pinned here, at
// challenge time; later policy changes never move an issued grant.
func (s *EntitlementService) CreatePendingTx(ctx context.Context, tx *ent.Tx, tenantID, offerID int, agentProfileID, paymentHash string) (*ent.Entitlement, error) {
	builder := tx.Entitlement.Create().
		SetTenantID(tenantID).
		SetOfferID(offerID).
		SetPolicyID(s.cfg.Policy.ID).
		SetPolicyVersion(s.cfg.Policy.Version).
		SetAgentProfileID(agentProfileID).
		SetPaymentHash(paymentHash).
		SetStatus(entitlement.StatusPendingPayment)

	grant, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create entitlement: %w", err)
	}
	return grant, nil
}

// ActivateTx flips the grant behind paymentHash to active, stamping quota
// and expiry from configuration. Idempotent: a grant already active is left
// untouched, so settlement replays are harmless.
func (s *EntitlementService) ActivateTx(ctx context.Context, tx *ent.Tx, paymentHash string) error {
	now := time.Now()
	builder := tx.Entitlement.Update().
		Where(
			entitlement.PaymentHashEQ(paymentHash),
			entitlement.StatusEQ(entitlement.StatusPendingPayment),
		).
		SetStatus(entitlement.StatusActive).
		SetActivatedAt(now)
	if s.cfg.EntitlementTTL > 0 {
		builder.SetExpiresAt(now.Add(s.cfg.EntitlementTTL))
	}
	if s.cfg.DefaultReads > 0 {
		builder.SetRemainingReads(s.cfg.DefaultReads)
	}

	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("failed to activate entitlement: %w", err)
	}
	return nil
}

// GetByPaymentHash returns the grant tied to a payment.
func (s *EntitlementService) GetByPaymentHash(ctx context.Context, paymentHash string) (*ent.Entitlement, error) {
	e, err := s.client.Entitlement.Query().
		Where(entitlement.PaymentHashEQ(paymentHash)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, NewError(ErrNotFound, CodeEntitlementNotFound,
				"no entitlement for this payment", "purchase the offer first")
		}
		return nil, fmt.Errorf("failed to get entitlement: %w", err)
	}
	return e, nil
}

// GetEntitlement retrieves a grant by ID within the tenant.
func (s *EntitlementService) GetEntitlement(ctx context.Context, tenantID, id int) (*ent.Entitlement, error) {
	e, err := s.client.Entitlement.Query().
		Where(entitlement.IDEQ(id), entitlement.TenantIDEQ(tenantID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, NewError(ErrNotFound, CodeEntitlementNotFound,
				fmt.Sprintf("entitlement %d not found", id), "check the entitlement id")
		}
		return nil, fmt.Errorf("failed to get entitlement: %w", err)
	}
	return e, nil
}

// ListEntitlements lists an agent's grants within the tenant.
func (s *EntitlementService) ListEntitlements(ctx context.Context, tenantID int, agentProfileID string) ([]*ent.Entitlement, error) {
	query := s.client.Entitlement.Query().
		Where(entitlement.TenantIDEQ(tenantID))
	if agentProfileID != "" {
		query = query.Where(entitlement.AgentProfileIDEQ(agentProfileID))
	}
	grants, err := query.Order(ent.Desc(entitlement.FieldID)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list entitlements: %w", err)
	}
	return grants, nil
}

// Consume spends one read from the grant behind paymentHash, after checking
// the grant was bought for offerID. The decrement is a single conditional
// UPDATE, so two concurrent reads on a one-read grant resolve to exactly one
// success. Unlimited grants (nil quota) always pass. A grant that just hit
// zero flips to exhausted.
func (s *EntitlementService) Consume(ctx context.Context, paymentHash string, offerID int) (*ent.Entitlement, error) {
	e, err := s.GetByPaymentHash(ctx, paymentHash)
	if err != nil {
		return nil, err
	}
	if offerID != 0 && e.OfferID != offerID {
		return nil, NewError(ErrPaymentRequired, CodeEntitlementWrongOffer,
			"entitlement was bought for a different content type", "purchase this offer")
	}

	switch e.Status {
	case entitlement.StatusActive:
	case entitlement.StatusExhausted:
		return nil, NewError(ErrPaymentRequired, CodeEntitlementExhausted,
			"entitlement quota is exhausted", "purchase the offer again")
	default:
		return nil, NewError(ErrPaymentRequired, CodeEntitlementNotActive,
			fmt.Sprintf("entitlement is %s", e.Status), "purchase the offer again")
	}
	if e.ExpiresAt != nil && e.ExpiresAt.Before(time.Now()) {
		return nil, NewError(ErrPaymentRequired, CodeEntitlementNotActive,
			"entitlement has expired", "purchase the offer again")
	}

	if e.RemainingReads == nil {
		return e, nil
	}

	affected, err := s.client.Entitlement.Update().
		Where(
			entitlement.IDEQ(e.ID),
			entitlement.StatusEQ(entitlement.StatusActive),
			entitlement.RemainingReadsGT(0),
		).
		AddRemainingReads(-1).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to consume entitlement read: %w", err)
	}
	if affected == 0 {
		return nil, NewError(ErrPaymentRequired, CodeEntitlementExhausted,
			"entitlement quota is exhausted", "purchase the offer again")
	}

	// Flip to exhausted if that decrement took the quota to zero. Losing
	// this race to another writer is fine; the conditional guard keeps the
	// transition single-shot.
	if _, err := s.client.Entitlement.Update().
		Where(
			entitlement.IDEQ(e.ID),
			entitlement.StatusEQ(entitlement.StatusActive),
			entitlement.RemainingReadsLTE(0),
		).
		SetStatus(entitlement.StatusExhausted).
		SetTerminatedAt(time.Now()).
		Save(ctx); err != nil {
		return nil, fmt.Errorf("failed to mark entitlement exhausted: %w", err)
	}

	return s.GetEntitlement(ctx, e.TenantID, e.ID)
}

// Revoke terminates a grant immediately. Idempotent on already-terminated
// grants.
func (s *EntitlementService) Revoke(ctx context.Context, tenantID, id int, reason string) error {
	e, err := s.GetEntitlement(ctx, tenantID, id)
	if err != nil {
		return err
	}

	affected, err := s.client.Entitlement.Update().
		Where(
			entitlement.IDEQ(e.ID),
			entitlement.StatusIn(entitlement.StatusPendingPayment, entitlement.StatusActive),
		).
		SetStatus(entitlement.StatusRevoked).
		SetTerminatedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to revoke entitlement: %w", err)
	}
	if affected == 0 {
		return nil
	}

	s.audit.Record(ctx, tenantID, ActionUpdate, "entitlement", id, map[string]any{
		"revoked": true,
		"reason":  reason,
	})
	s.audit.Publish(ctx, tenantID, events.TypeEntitlementRevoked, "entitlement", id, map[string]any{
		"reason": reason,
	})
	return nil
}

// Delegate carves a child grant for another agent out of a parent grant's
// quota. The transferred reads are debited from the parent in the same
// transaction; the child inherits the parent's expiry and offer, and its
// chain can never exceed what the original payment bought.
func (s *EntitlementService) Delegate(ctx context.Context, tenantID, parentID int, toAgentProfileID string, reads int) (*ent.Entitlement, error) {
	if toAgentProfileID == "" {
		return nil, NewValidationError("agentProfileId", "required")
	}
	if reads <= 0 {
		return nil, NewValidationError("reads", "must be > 0")
	}

	parent, err := s.GetEntitlement(ctx, tenantID, parentID)
	if err != nil {
		return nil, err
	}
	if parent.Status != entitlement.StatusActive {
		return nil, NewError(ErrInvalidInput, CodeDelegationSourceInactive,
			fmt.Sprintf("parent entitlement is %s", parent.Status),
			"only active entitlements can delegate")
	}
	if parent.RemainingReads == nil {
		return nil, NewError(ErrInvalidInput, CodeDelegationSourceInactive,
			"unlimited entitlements cannot delegate a bounded quota",
			"delegation requires a read-bounded parent")
	}
	if *parent.RemainingReads < reads {
		return nil, NewError(ErrInvalidInput, CodeEntitlementExhausted,
			fmt.Sprintf("parent has %d reads remaining, %d requested", *parent.RemainingReads, reads),
			"delegate at most the parent's remaining quota")
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	// Debit the parent with a conditional update; quota conservation holds
	// even when two delegations race.
	affected, err := tx.Entitlement.Update().
		Where(
			entitlement.IDEQ(parent.ID),
			entitlement.StatusEQ(entitlement.StatusActive),
			entitlement.RemainingReadsGTE(reads),
		).
		AddRemainingReads(-reads).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to debit parent entitlement: %w", err)
	}
	if affected == 0 {
		return nil, NewError(ErrConcurrentModification, CodeEntitlementExhausted,
			"parent entitlement no longer has the requested quota", "re-read the parent and retry")
	}

	now := time.Now()
	builder := tx.Entitlement.Create().
		SetTenantID(tenantID).
		SetOfferID(parent.OfferID).
		SetPolicyID(parent.PolicyID).
		SetPolicyVersion(parent.PolicyVersion).
		SetAgentProfileID(toAgentProfileID).
		SetPaymentHash("delegated:" + uuid.New().String()).
		SetStatus(entitlement.StatusActive).
		SetRemainingReads(reads).
		SetActivatedAt(now).
		SetDelegatedFrom(parent.ID)
	if parent.ExpiresAt != nil {
		builder.SetExpiresAt(*parent.ExpiresAt)
	}

	child, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create delegated entitlement: %w", err)
	}
	if err := s.audit.RecordTx(ctx, tx, tenantID, ActionCreate, "entitlement", child.ID, map[string]any{
		"delegated_from": parent.ID,
		"reads":          reads,
		"to":             toAgentProfileID,
	}); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	s.audit.Publish(ctx, tenantID, events.TypeEntitlementActive, "entitlement", child.ID, map[string]any{
		"delegated_from": parent.ID,
	})
	return child, nil
}

// ExpireDue terminates active grants whose expiry has passed. Called by the
// sweep worker; returns the number of grants expired.
func (s *EntitlementService) ExpireDue(ctx context.Context, now time.Time) (int, error) {
	affected, err := s.client.Entitlement.Update().
		Where(
			entitlement.StatusEQ(entitlement.StatusActive),
			entitlement.ExpiresAtNotNil(),
			entitlement.ExpiresAtLT(now),
		).
		SetStatus(entitlement.StatusExpired).
		SetTerminatedAt(now).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to expire entitlements: %w", err)
	}
	return affected, nil
}
