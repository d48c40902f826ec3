package api

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quillgate/quillgate/pkg/models"
)

// mustOffer purchases the content type up front and returns the offer.
func (ts *testServer) mustOffer(t *testing.T, ctID int) map[string]any {
	t.Helper()
	rec := ts.do(t, http.MethodPost, "/api/v1/offers/"+itoa(ctID)+"/purchase", ts.adminKey,
		map[string]any{"agentProfileId": "agent-7"}, nil)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return decodeJSON(t, rec)
}

func TestPurchaseOffer_TokenAdmitsReads(t *testing.T) {
	ts := newTestServer(t)
	ct := ts.mustType(t, "premium", 500)
	item := ts.mustItem(t, ct.ID, `{"title": "paywalled"}`)

	offer := ts.mustOffer(t, ct.ID)
	hash := offer["paymentHash"].(string)
	token := offer["token"].(string)

	preimage, err := ts.provider.Settle(hash)
	require.NoError(t, err)

	// The purchase token is scoped to the collection, so it covers the
	// item path without a per-item challenge.
	rec := ts.do(t, http.MethodGet, "/api/v1/content-items/"+itoa(item.ID), "", nil, map[string]string{
		"X-API-Key":     ts.adminKey,
		"Authorization": "L402 " + token + ":" + preimage,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = ts.do(t, http.MethodGet, "/api/v1/payments/"+hash, ts.adminKey, nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "consumed", decodeJSON(t, rec)["status"])
}

func TestConfirmPayment(t *testing.T) {
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
	assert.Equal(t, "paid", decodeJSON(t, rec)["status"])

	// The entitlement went active with it.
	grant, err := ts.entitlements.GetByPaymentHash(context.Background(), hash)
	require.NoError(t, err)
	assert.Equal(t, "active", string(grant.Status))
}

func TestConfirmPayment_BadPreimage(t *testing.T) {
	ts := newTestServer(t)
	ct := ts.mustType(t, "premium", 500)
	offer := ts.mustOffer(t, ct.ID)

	rec := ts.do(t, http.MethodPost, "/api/v1/payments/confirm", ts.adminKey, map[string]any{
		"paymentHash": offer["paymentHash"],
		"preimage":    "deadbeef",
	}, nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "PAYMENT_INVALID_PREIMAGE", decodeJSON(t, rec)["code"])
}

func signBody(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

func TestProviderWebhook(t *testing.T) {
	ts := newTestServer(t)
	ct := ts.mustType(t, "premium", 500)

	newEvent := func(t *testing.T, eventID string) (string, []byte) {
		offer := ts.mustOffer(t, ct.ID)
		hash := offer["paymentHash"].(string)
		preimage, err := ts.provider.Settle(hash)
		require.NoError(t, err)
		raw, err := json.Marshal(models.ProviderWebhookEvent{
			EventID:     eventID,
			PaymentHash: hash,
			Status:      "paid",
			Preimage:    preimage,
		})
		require.NoError(t, err)
		return hash, raw
	}

	t.Run("valid signature settles", func(t *testing.T) {
		hash, raw := newEvent(t, "evt-1")
		rec := ts.do(t, http.MethodPost, "/api/v1/payments/webhooks/mock", "", json.RawMessage(raw),
			map[string]string{"X-Provider-Signature": signBody("test-webhook-secret", raw)})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		p, err := ts.payments.GetPayment(context.Background(), hash)
		require.NoError(t, err)
		assert.Equal(t, "paid", string(p.Status))
	})

	t.Run("replayed event acknowledged without reapplying", func(t *testing.T) {
		_, raw := newEvent(t, "evt-2")
		sig := map[string]string{"X-Provider-Signature": signBody("test-webhook-secret", raw)}

		rec := ts.do(t, http.MethodPost, "/api/v1/payments/webhooks/mock", "", json.RawMessage(raw), sig)
		require.Equal(t, http.StatusOK, rec.Code)

		rec = ts.do(t, http.MethodPost, "/api/v1/payments/webhooks/mock", "", json.RawMessage(raw), sig)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "ignored", decodeJSON(t, rec)["status"])
	})

	t.Run("bad signature rejected", func(t *testing.T) {
		_, raw := newEvent(t, "evt-3")
		rec := ts.do(t, http.MethodPost, "/api/v1/payments/webhooks/mock", "", json.RawMessage(raw),
			map[string]string{"X-Provider-Signature": "0000"})
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "WEBHOOK_INVALID_SIGNATURE", decodeJSON(t, rec)["code"])
	})

	t.Run("unknown provider name rejected", func(t *testing.T) {
		_, raw := newEvent(t, "evt-4")
		rec := ts.do(t, http.MethodPost, "/api/v1/payments/webhooks/other", "", json.RawMessage(raw),
			map[string]string{"X-Provider-Signature": signBody("test-webhook-secret", raw)})
		require.Equal(t, http.StatusNotFound, rec.Code)
	})
}
