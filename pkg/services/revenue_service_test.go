package services

import (
	"context"
	"testing"
	"time"

	"github.com/quillgate/quillgate/ent/payouttransfer"
	"github.com/quillgate/quillgate/ent/revenueallocation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRevenueService_Split_ResidualGoesToCreator(t *testing.T) {
	s := newStack(t)

	tests := []struct {
		gross        int64
		wantCreator  int64
		wantPlatform int64
	}{
		{10000, 9000, 1000},
		{501, 451, 50},   // 50.1 platform rounds down, creator absorbs
		{1, 1, 0},        // too small for a platform share
		{9999, 9000, 999},
	}
	for _, tt := range tests {
		creator, platform := s.revenue.Split(tt.gross)
		assert.Equal(t, tt.wantCreator, creator, "gross %d", tt.gross)
		assert.Equal(t, tt.wantPlatform, platform, "gross %d", tt.gross)
		assert.Equal(t, tt.gross, creator+platform, "split must conserve the gross")
	}
}

func TestRevenueService_ClearMatured(t *testing.T) {
	s := newStack(t)
	ctx := context.Background()
	tenant := s.mustTenant(t, "acme")
	ct := s.mustContentType(t, tenant.ID, "premium", 500)
	resp := s.mustChallenge(t, tenant.ID, ct)
	_, err := s.payments.Settle(ctx, resp.PaymentHash, "evt-1")
	require.NoError(t, err)

	// Inside the settlement window: nothing clears.
	cleared, err := s.revenue.ClearMatured(ctx, time.Now())
	require.NoError(t, err)
	assert.Zero(t, cleared)

	// Past the window: both allocations clear.
	cleared, err = s.revenue.ClearMatured(ctx, time.Now().Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 2, cleared)

	pending, err := s.client.RevenueAllocation.Query().
		Where(revenueallocation.StatusEQ(revenueallocation.StatusPending)).
		Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, pending)
}

func TestRevenueService_PayableBalances(t *testing.T) {
	s := newStack(t)
	ctx := context.Background()
	tenant := s.mustTenant(t, "acme")
	ct := s.mustContentType(t, tenant.ID, "premium", 1000)

	for i := 0; i < 2; i++ {
		resp := s.mustChallenge(t, tenant.ID, ct)
		_, err := s.payments.Settle(ctx, resp.PaymentHash, "evt-1")
		require.NoError(t, err)
	}
	_, err := s.revenue.ClearMatured(ctx, time.Now().Add(time.Hour))
	require.NoError(t, err)

	balances, err := s.revenue.PayableBalances(ctx)
	require.NoError(t, err)
	byParty := map[string]int64{}
	for _, b := range balances {
		byParty[b.AgentProfileID] = b.Sats
	}
	assert.Equal(t, int64(1800), byParty[CreatorParty(tenant.ID)])
	assert.Equal(t, int64(200), byParty["platform"])
}

func TestRevenueService_PayableBalances_SubtractsInFlightTransfers(t *testing.T) {
	s := newStack(t)
	ctx := context.Background()
	tenant := s.mustTenant(t, "acme")
	ct := s.mustContentType(t, tenant.ID, "premium", 1000)
	resp := s.mustChallenge(t, tenant.ID, ct)
	_, err := s.payments.Settle(ctx, resp.PaymentHash, "evt-1")
	require.NoError(t, err)
	_, err = s.revenue.ClearMatured(ctx, time.Now().Add(time.Hour))
	require.NoError(t, err)

	// Pay out the full creator share; it must stop being payable even while
	// the transfer is still pending.
	batch, err := s.revenue.CreatePayoutBatch(ctx, tenant.ID, map[string]int64{
		CreatorParty(tenant.ID): 900,
	})
	require.NoError(t, err)

	balances, err := s.revenue.PayableBalances(ctx)
	require.NoError(t, err)
	for _, b := range balances {
		assert.NotEqual(t, CreatorParty(tenant.ID), b.AgentProfileID)
	}

	// A permanently failed transfer returns the funds to the payable pool.
	_, err = s.client.PayoutTransfer.Update().
		Where(payouttransfer.BatchIDEQ(batch.ID)).
		SetStatus(payouttransfer.StatusFailedPermanent).
		Save(ctx)
	require.NoError(t, err)

	balances, err = s.revenue.PayableBalances(ctx)
	require.NoError(t, err)
	found := false
	for _, b := range balances {
		if b.AgentProfileID == CreatorParty(tenant.ID) {
			found = true
			assert.Equal(t, int64(900), b.Sats)
		}
	}
	assert.True(t, found)
}

func TestRevenueService_CreatePayoutBatch(t *testing.T) {
	s := newStack(t)
	ctx := context.Background()
	tenant := s.mustTenant(t, "acme")

	batch, err := s.revenue.CreatePayoutBatch(ctx, tenant.ID, map[string]int64{
		"creator:tenant:1": 900,
		"platform":         100,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1000), batch.TotalSats)

	transfers, err := s.client.PayoutTransfer.Query().
		Where(payouttransfer.BatchIDEQ(batch.ID)).
		All(ctx)
	require.NoError(t, err)
	assert.Len(t, transfers, 2)
	for _, tr := range transfers {
		assert.Equal(t, payouttransfer.StatusPending, tr.Status)
	}
}
