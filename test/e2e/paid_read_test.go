package e2e

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPaidReadJourney walks the paywall end to end over real HTTP: discover
// the price, pay the invoice, read until the quota runs out.
func TestPaidReadJourney(t *testing.T) {
	h := NewHarness(t)

	var ct map[string]any
	resp := h.Do(t, http.MethodPost, "/api/v1/content-types", map[string]any{
		"name":   "premium",
		"slug":   "premium",
		"schema": `{"type": "object", "required": ["title"]}`,
	}, nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	Decode(t, resp, &ct)

	var item map[string]any
	resp = h.Do(t, http.MethodPost, "/api/v1/content-items", map[string]any{
		"contentTypeId": ct["id"],
		"data":          map[string]any{"title": "paywalled"},
	}, nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	Decode(t, resp, &item)
	path := "/api/v1/content-items/" + itoa(item["id"])

	// Putting the paywall up afterwards gates the reads from here on.
	resp = h.Do(t, http.MethodPatch, "/api/v1/content-types/"+itoa(ct["id"]), map[string]any{
		"basePriceSats": 500,
	}, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	// First read is refused with a challenge carrying the offer.
	resp = h.Do(t, http.MethodGet, path, nil, nil)
	require.Equal(t, http.StatusPaymentRequired, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("WWW-Authenticate"), "L402 macaroon=")

	var env map[string]any
	Decode(t, resp, &env)
	require.Equal(t, "PAYMENT_REQUIRED", env["code"])
	offer := env["meta"].(map[string]any)["offer"].(map[string]any)
	token := offer["token"].(string)
	hash := offer["paymentHash"].(string)

	preimage, err := h.Provider.Settle(hash)
	require.NoError(t, err)

	// Three reads on the default quota, then exhausted.
	auth := map[string]string{"Authorization": "L402 " + token + ":" + preimage}
	for i := 0; i < 3; i++ {
		resp = h.Do(t, http.MethodGet, path, nil, auth)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		resp.Body.Close()
	}
	resp = h.Do(t, http.MethodGet, path, nil, auth)
	require.Equal(t, http.StatusPaymentRequired, resp.StatusCode)
	Decode(t, resp, &env)
	assert.Equal(t, "ENTITLEMENT_EXHAUSTED", env["code"])

	// The payment trail is queryable afterwards.
	var payment map[string]any
	resp = h.Do(t, http.MethodGet, "/api/v1/payments/"+hash, nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	Decode(t, resp, &payment)
	assert.Equal(t, "consumed", payment["status"])
}

// TestReconcilerSettlesWithoutClientRetry covers the journey where the buyer
// pays but never retries: the reconciler notices the settled invoice and the
// entitlement appears without any further client traffic.
func TestReconcilerSettlesWithoutClientRetry(t *testing.T) {
	h := NewHarness(t)

	var ct map[string]any
	resp := h.Do(t, http.MethodPost, "/api/v1/content-types", map[string]any{
		"name":          "premium",
		"slug":          "premium",
		"schema":        `{"type": "object"}`,
		"basePriceSats": 500,
	}, nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	Decode(t, resp, &ct)

	var offer map[string]any
	resp = h.Do(t, http.MethodPost, "/api/v1/offers/"+itoa(ct["id"])+"/purchase", map[string]any{
		"agentProfileId": "agent-e2e",
	}, nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	Decode(t, resp, &offer)

	_, err := h.Provider.Settle(offer["paymentHash"].(string))
	require.NoError(t, err)
	require.NoError(t, h.Reconciler.Reconcile(context.Background()))

	var grants map[string]any
	resp = h.Do(t, http.MethodGet, "/api/v1/entitlements?agent=agent-e2e", nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	Decode(t, resp, &grants)
	data := grants["data"].([]any)
	require.Len(t, data, 1)
	assert.Equal(t, "active", data[0].(map[string]any)["status"])
}
