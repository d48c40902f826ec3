package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntitlementAPI_RevokeAndDelegate(t *testing.T) {
	ts := newTestServer(t)
	ct := ts.mustType(t, "premium", 500)

	offer := ts.mustOffer(t, ct.ID)
	hash := offer["paymentHash"].(string)
	preimage, err := ts.provider.Settle(hash)
	require.NoError(t, err)

	rec := ts.do(t, http.MethodPost, "/api/v1/payments/confirm", ts.adminKey, map[string]any{
		"paymentHash": hash,
		"preimage":    preimage,
	}, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = ts.do(t, http.MethodGet, "/api/v1/entitlements?agent=agent-7", ts.adminKey, nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	grants := decodeJSON(t, rec)["data"].([]any)
	require.Len(t, grants, 1)
	grantID := int(grants[0].(map[string]any)["id"].(float64))

	// Delegate one read to another agent; the child shows up as its own grant.
	rec = ts.do(t, http.MethodPost, "/api/v1/entitlements/"+itoa(grantID)+"/delegate", ts.adminKey, map[string]any{
		"toAgentProfileId": "agent-8",
		"reads":            1,
	}, nil)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	child := decodeJSON(t, rec)
	assert.Equal(t, "agent-8", child["agent_profile_id"])

	rec = ts.do(t, http.MethodPost, "/api/v1/entitlements/"+itoa(grantID)+"/revoke", ts.adminKey, map[string]any{
		"reason": "abuse",
	}, nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = ts.do(t, http.MethodGet, "/api/v1/entitlements/"+itoa(grantID), ts.adminKey, nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "revoked", decodeJSON(t, rec)["status"])
}

func TestEntitlementAPI_DelegateBeyondQuota(t *testing.T) {
	ts := newTestServer(t)
	ct := ts.mustType(t, "premium", 500)

	offer := ts.mustOffer(t, ct.ID)
	hash := offer["paymentHash"].(string)
	preimage, err := ts.provider.Settle(hash)
	require.NoError(t, err)

	rec := ts.do(t, http.MethodPost, "/api/v1/payments/confirm", ts.adminKey, map[string]any{
		"paymentHash": hash,
		"preimage":    preimage,
	}, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	grant, err := ts.entitlements.GetByPaymentHash(context.Background(), hash)
	require.NoError(t, err)

	// Default quota is 3; asking for 10 is refused.
	rec = ts.do(t, http.MethodPost, "/api/v1/entitlements/"+itoa(grant.ID)+"/delegate", ts.adminKey, map[string]any{
		"toAgentProfileId": "agent-8",
		"reads":            10,
	}, nil)
	require.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
}
