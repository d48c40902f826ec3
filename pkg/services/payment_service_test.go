package services

import (
	"context"
	"testing"
	"time"

	"github.com/quillgate/quillgate/ent"
	"github.com/quillgate/quillgate/ent/entitlement"
	"github.com/quillgate/quillgate/ent/payment"
	"github.com/quillgate/quillgate/ent/revenueallocation"
	"github.com/quillgate/quillgate/ent/revenueevent"
	"github.com/quillgate/quillgate/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (s *stack) mustChallenge(t *testing.T, tenantID int, ct *ent.ContentType) *models.PurchaseResponse {
	t.Helper()
	resp, err := s.payments.CreateChallenge(context.Background(), tenantID, ct,
		"agent-1", "GET", "/api/v1/content-items/1")
	require.NoError(t, err)
	return resp
}

func TestPaymentService_CreateChallenge(t *testing.T) {
	s := newStack(t)
	ctx := context.Background()
	tenant := s.mustTenant(t, "acme")
	ct := s.mustContentType(t, tenant.ID, "premium", 500)

	resp := s.mustChallenge(t, tenant.ID, ct)
	assert.NotEmpty(t, resp.PaymentHash)
	assert.NotEmpty(t, resp.PaymentRequest)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, int64(500), resp.AmountSats)

	p, err := s.payments.GetPayment(ctx, resp.PaymentHash)
	require.NoError(t, err)
	assert.Equal(t, payment.StatusPending, p.Status)

	grant, err := s.entitlements.GetByPaymentHash(ctx, resp.PaymentHash)
	require.NoError(t, err)
	assert.Equal(t, entitlement.StatusPendingPayment, grant.Status)
	assert.Equal(t, "agent-1", grant.AgentProfileID)
}

func TestPaymentService_CreateChallenge_UnpricedType(t *testing.T) {
	s := newStack(t)
	tenant := s.mustTenant(t, "acme")
	ct := s.mustContentType(t, tenant.ID, "free", 0)

	_, err := s.payments.CreateChallenge(context.Background(), tenant.ID, ct, "agent-1", "GET", "/x")
	assert.Error(t, err)
}

func TestPaymentService_Settle_ActivatesEntitlementAndLedger(t *testing.T) {
	s := newStack(t)
	ctx := context.Background()
	tenant := s.mustTenant(t, "acme")
	ct := s.mustContentType(t, tenant.ID, "premium", 501)
	resp := s.mustChallenge(t, tenant.ID, ct)

	_, err := s.provider.Settle(resp.PaymentHash)
	require.NoError(t, err)

	p, err := s.payments.Settle(ctx, resp.PaymentHash, "evt-1")
	require.NoError(t, err)
	assert.Equal(t, payment.StatusPaid, p.Status)
	require.NotNil(t, p.SettledAt)

	grant, err := s.entitlements.GetByPaymentHash(ctx, resp.PaymentHash)
	require.NoError(t, err)
	assert.Equal(t, entitlement.StatusActive, grant.Status)
	require.NotNil(t, grant.RemainingReads)
	assert.Equal(t, 3, *grant.RemainingReads)

	event, err := s.client.RevenueEvent.Query().
		Where(revenueevent.PaymentIDEQ(p.ID)).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(501), event.GrossSats)

	allocs, err := s.client.RevenueAllocation.Query().
		Where(revenueallocation.EventIDEQ(event.ID)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, allocs, 2)
	var sum int64
	for _, a := range allocs {
		sum += a.AmountSats
	}
	// Allocations sum to the gross exactly; residual went to the creator.
	assert.Equal(t, int64(501), sum)
}

func TestPaymentService_Settle_Idempotent(t *testing.T) {
	s := newStack(t)
	ctx := context.Background()
	tenant := s.mustTenant(t, "acme")
	ct := s.mustContentType(t, tenant.ID, "premium", 500)
	resp := s.mustChallenge(t, tenant.ID, ct)

	_, err := s.payments.Settle(ctx, resp.PaymentHash, "evt-1")
	require.NoError(t, err)
	_, err = s.payments.Settle(ctx, resp.PaymentHash, "evt-2")
	require.NoError(t, err)

	// One ledger event, one activation, no matter how often settled.
	count, err := s.client.RevenueEvent.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestPaymentService_Confirm(t *testing.T) {
	s := newStack(t)
	ctx := context.Background()
	tenant := s.mustTenant(t, "acme")
	ct := s.mustContentType(t, tenant.ID, "premium", 500)
	resp := s.mustChallenge(t, tenant.ID, ct)

	preimage, err := s.provider.Settle(resp.PaymentHash)
	require.NoError(t, err)

	p, err := s.payments.Confirm(ctx, models.ConfirmPaymentRequest{
		PaymentHash: resp.PaymentHash,
		Preimage:    preimage,
	})
	require.NoError(t, err)
	assert.Equal(t, payment.StatusPaid, p.Status)
}

func TestPaymentService_Confirm_BadPreimage(t *testing.T) {
	s := newStack(t)
	tenant := s.mustTenant(t, "acme")
	ct := s.mustContentType(t, tenant.ID, "premium", 500)
	resp := s.mustChallenge(t, tenant.ID, ct)

	_, err := s.payments.Confirm(context.Background(), models.ConfirmPaymentRequest{
		PaymentHash: resp.PaymentHash,
		Preimage:    "deadbeef",
	})
	require.Error(t, err)
	se, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, CodePaymentInvalidPreimage, se.Code)
}

func TestPaymentService_HandleProviderEvent_ReplayIsRejected(t *testing.T) {
	s := newStack(t)
	ctx := context.Background()
	tenant := s.mustTenant(t, "acme")
	ct := s.mustContentType(t, tenant.ID, "premium", 500)
	resp := s.mustChallenge(t, tenant.ID, ct)

	evt := models.ProviderWebhookEvent{
		EventID:     "evt-1",
		PaymentHash: resp.PaymentHash,
		Status:      "paid",
	}
	require.NoError(t, s.payments.HandleProviderEvent(ctx, "mock", evt))

	err := s.payments.HandleProviderEvent(ctx, "mock", evt)
	require.Error(t, err)
	se, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, CodeWebhookReplay, se.Code)

	// State is unchanged by the replay.
	p, err := s.payments.GetPayment(ctx, resp.PaymentHash)
	require.NoError(t, err)
	assert.Equal(t, payment.StatusPaid, p.Status)
}

func TestPaymentService_HandleProviderEvent_WrongProvider(t *testing.T) {
	s := newStack(t)
	tenant := s.mustTenant(t, "acme")
	ct := s.mustContentType(t, tenant.ID, "premium", 500)
	resp := s.mustChallenge(t, tenant.ID, ct)

	err := s.payments.HandleProviderEvent(context.Background(), "other", models.ProviderWebhookEvent{
		EventID:     "evt-1",
		PaymentHash: resp.PaymentHash,
		Status:      "paid",
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPaymentService_Fail_NoOpAfterSettlement(t *testing.T) {
	s := newStack(t)
	ctx := context.Background()
	tenant := s.mustTenant(t, "acme")
	ct := s.mustContentType(t, tenant.ID, "premium", 500)
	resp := s.mustChallenge(t, tenant.ID, ct)

	_, err := s.payments.Settle(ctx, resp.PaymentHash, "evt-1")
	require.NoError(t, err)

	// A late expiry report must not claw back a settled payment.
	require.NoError(t, s.payments.Fail(ctx, resp.PaymentHash, payment.StatusExpired, "late", ""))

	p, err := s.payments.GetPayment(ctx, resp.PaymentHash)
	require.NoError(t, err)
	assert.Equal(t, payment.StatusPaid, p.Status)
}

func TestPaymentService_MarkConsumed_SingleShot(t *testing.T) {
	s := newStack(t)
	ctx := context.Background()
	tenant := s.mustTenant(t, "acme")
	ct := s.mustContentType(t, tenant.ID, "premium", 500)
	resp := s.mustChallenge(t, tenant.ID, ct)

	_, err := s.payments.Settle(ctx, resp.PaymentHash, "evt-1")
	require.NoError(t, err)

	require.NoError(t, s.payments.MarkConsumed(ctx, resp.PaymentHash))
	require.NoError(t, s.payments.MarkConsumed(ctx, resp.PaymentHash))

	p, err := s.payments.GetPayment(ctx, resp.PaymentHash)
	require.NoError(t, err)
	assert.Equal(t, payment.StatusConsumed, p.Status)
}

func TestPaymentService_ExpireOverdue(t *testing.T) {
	s := newStack(t)
	ctx := context.Background()
	tenant := s.mustTenant(t, "acme")
	ct := s.mustContentType(t, tenant.ID, "premium", 500)
	resp := s.mustChallenge(t, tenant.ID, ct)

	expired, err := s.payments.ExpireOverdue(ctx, time.Now().Add(24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1, expired)

	p, err := s.payments.GetPayment(ctx, resp.PaymentHash)
	require.NoError(t, err)
	assert.Equal(t, payment.StatusExpired, p.Status)

	// Settling an expired invoice is an invalid transition.
	_, err = s.payments.Settle(ctx, resp.PaymentHash, "evt-late")
	require.Error(t, err)
	se, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, CodeInvalidTransition, se.Code)
}
