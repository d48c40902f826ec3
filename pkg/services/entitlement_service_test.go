package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/quillgate/quillgate/ent"
	"github.com/quillgate/quillgate/ent/entitlement"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// activeGrant buys and settles a grant, returning it active.
func (s *stack) activeGrant(t *testing.T, tenantID int, ct *ent.ContentType) *ent.Entitlement {
	t.Helper()
	ctx := context.Background()
	resp := s.mustChallenge(t, tenantID, ct)
	_, err := s.payments.Settle(ctx, resp.PaymentHash, "evt-1")
	require.NoError(t, err)
	grant, err := s.entitlements.GetByPaymentHash(ctx, resp.PaymentHash)
	require.NoError(t, err)
	require.Equal(t, entitlement.StatusActive, grant.Status)
	return grant
}

func TestEntitlementService_Consume_DecrementsQuota(t *testing.T) {
	s := newStack(t)
	ctx := context.Background()
	tenant := s.mustTenant(t, "acme")
	ct := s.mustContentType(t, tenant.ID, "premium", 500)
	grant := s.activeGrant(t, tenant.ID, ct)

	for want := 2; want >= 0; want-- {
		got, err := s.entitlements.Consume(ctx, grant.PaymentHash, ct.ID)
		require.NoError(t, err)
		require.NotNil(t, got.RemainingReads)
		assert.Equal(t, want, *got.RemainingReads)
	}

	// Quota spent: the grant is exhausted and further reads fail.
	_, err := s.entitlements.Consume(ctx, grant.PaymentHash, ct.ID)
	require.Error(t, err)
	se, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, CodeEntitlementExhausted, se.Code)
}

func TestEntitlementService_Consume_ConcurrentNeverOverdraws(t *testing.T) {
	s := newStack(t)
	ctx := context.Background()
	tenant := s.mustTenant(t, "acme")
	ct := s.mustContentType(t, tenant.ID, "premium", 500)
	grant := s.activeGrant(t, tenant.ID, ct) // quota 3

	const readers = 10
	var wg sync.WaitGroup
	results := make([]error, readers)
	for i := 0; i < readers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, results[i] = s.entitlements.Consume(ctx, grant.PaymentHash, ct.ID)
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range results {
		if err == nil {
			succeeded++
		}
	}
	assert.Equal(t, 3, succeeded, "exactly the quota may succeed")

	final, err := s.entitlements.GetEntitlement(ctx, tenant.ID, grant.ID)
	require.NoError(t, err)
	require.NotNil(t, final.RemainingReads)
	assert.Equal(t, 0, *final.RemainingReads)
}

func TestEntitlementService_Consume_WrongOfferRefused(t *testing.T) {
	s := newStack(t)
	ctx := context.Background()
	tenant := s.mustTenant(t, "acme")
	cheap := s.mustContentType(t, tenant.ID, "cheap", 1)
	premium := s.mustContentType(t, tenant.ID, "premium", 500)
	grant := s.activeGrant(t, tenant.ID, cheap)

	// A grant bought for one offer never spends against another.
	_, err := s.entitlements.Consume(ctx, grant.PaymentHash, premium.ID)
	require.Error(t, err)
	se, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, CodeEntitlementWrongOffer, se.Code)

	// The refusal spent no quota.
	got, err := s.entitlements.Consume(ctx, grant.PaymentHash, cheap.ID)
	require.NoError(t, err)
	require.NotNil(t, got.RemainingReads)
	assert.Equal(t, 2, *got.RemainingReads)
}

func TestEntitlementService_Consume_PendingGrantFails(t *testing.T) {
	s := newStack(t)
	tenant := s.mustTenant(t, "acme")
	ct := s.mustContentType(t, tenant.ID, "premium", 500)
	resp := s.mustChallenge(t, tenant.ID, ct)

	_, err := s.entitlements.Consume(context.Background(), resp.PaymentHash, ct.ID)
	require.Error(t, err)
	se, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, CodeEntitlementNotActive, se.Code)
}

func TestEntitlementService_Revoke(t *testing.T) {
	s := newStack(t)
	ctx := context.Background()
	tenant := s.mustTenant(t, "acme")
	ct := s.mustContentType(t, tenant.ID, "premium", 500)
	grant := s.activeGrant(t, tenant.ID, ct)

	require.NoError(t, s.entitlements.Revoke(ctx, tenant.ID, grant.ID, "abuse"))
	// Idempotent.
	require.NoError(t, s.entitlements.Revoke(ctx, tenant.ID, grant.ID, "abuse"))

	_, err := s.entitlements.Consume(ctx, grant.PaymentHash, ct.ID)
	require.Error(t, err)
	se, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, CodeEntitlementNotActive, se.Code)
}

func TestEntitlementService_Delegate_ConservesQuota(t *testing.T) {
	s := newStack(t)
	ctx := context.Background()
	tenant := s.mustTenant(t, "acme")
	ct := s.mustContentType(t, tenant.ID, "premium", 500)
	grant := s.activeGrant(t, tenant.ID, ct) // quota 3

	child, err := s.entitlements.Delegate(ctx, tenant.ID, grant.ID, "agent-2", 2)
	require.NoError(t, err)
	require.NotNil(t, child.RemainingReads)
	assert.Equal(t, 2, *child.RemainingReads)
	require.NotNil(t, child.DelegatedFrom)
	assert.Equal(t, grant.ID, *child.DelegatedFrom)

	parent, err := s.entitlements.GetEntitlement(ctx, tenant.ID, grant.ID)
	require.NoError(t, err)
	require.NotNil(t, parent.RemainingReads)
	assert.Equal(t, 1, *parent.RemainingReads, "delegated reads are debited from the parent")

	// The chain cannot exceed what the payment bought.
	_, err = s.entitlements.Delegate(ctx, tenant.ID, grant.ID, "agent-3", 2)
	require.Error(t, err)
}

func TestEntitlementService_Delegate_RejectsInactiveParent(t *testing.T) {
	s := newStack(t)
	ctx := context.Background()
	tenant := s.mustTenant(t, "acme")
	ct := s.mustContentType(t, tenant.ID, "premium", 500)
	grant := s.activeGrant(t, tenant.ID, ct)
	require.NoError(t, s.entitlements.Revoke(ctx, tenant.ID, grant.ID, "done"))

	_, err := s.entitlements.Delegate(ctx, tenant.ID, grant.ID, "agent-2", 1)
	require.Error(t, err)
	se, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, CodeDelegationSourceInactive, se.Code)
}

func TestEntitlementService_ExpireDue(t *testing.T) {
	s := newStack(t)
	ctx := context.Background()
	tenant := s.mustTenant(t, "acme")
	ct := s.mustContentType(t, tenant.ID, "premium", 500)
	grant := s.activeGrant(t, tenant.ID, ct)

	expired, err := s.entitlements.ExpireDue(ctx, time.Now().Add(48*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1, expired)

	got, err := s.entitlements.GetEntitlement(ctx, tenant.ID, grant.ID)
	require.NoError(t, err)
	assert.Equal(t, entitlement.StatusExpired, got.Status)
}
