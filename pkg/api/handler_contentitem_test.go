package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quillgate/quillgate/ent"
	"github.com/quillgate/quillgate/pkg/models"
)

func (ts *testServer) mustType(t *testing.T, slug string, priceSats int64) *ent.ContentType {
	t.Helper()
	ct, err := ts.types.CreateContentType(context.Background(), ts.tenant.ID, models.CreateContentTypeRequest{
		Name:          slug,
		Slug:          slug,
		Schema:        articleSchema,
		BasePriceSats: priceSats,
	})
	require.NoError(t, err)
	return ct
}

func (ts *testServer) mustItem(t *testing.T, typeID int, data string) *ent.ContentItem {
	t.Helper()
	item, err := ts.items.CreateContentItem(context.Background(), ts.tenant.ID, models.CreateContentItemRequest{
		ContentTypeID: typeID,
		Data:          []byte(data),
	})
	require.NoError(t, err)
	return item
}

func TestContentItemAPI_FreeRead(t *testing.T) {
	ts := newTestServer(t)
	ct := ts.mustType(t, "article", 0)
	item := ts.mustItem(t, ct.ID, `{"title": "hello"}`)

	rec := ts.do(t, http.MethodGet, "/api/v1/content-items/"+itoa(item.ID), ts.adminKey, nil, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	got := decodeJSON(t, rec)
	assert.Equal(t, float64(1), got["version"])
}

func TestContentItemAPI_SchemaViolation(t *testing.T) {
	ts := newTestServer(t)
	ct := ts.mustType(t, "article", 0)

	rec := ts.do(t, http.MethodPost, "/api/v1/content-items", ts.adminKey, map[string]any{
		"contentTypeId": ct.ID,
		"data":          map[string]any{"body": "no title"},
	}, nil)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code, rec.Body.String())
	assert.Equal(t, "CONTENT_SCHEMA_VALIDATION_FAILED", decodeJSON(t, rec)["code"])
}

func TestContentItemAPI_PaymentGate(t *testing.T) {
	ts := newTestServer(t)
	ct := ts.mustType(t, "premium", 500)
	item := ts.mustItem(t, ct.ID, `{"title": "paywalled"}`)
	path := "/api/v1/content-items/" + itoa(item.ID)

	// Unpaid read gets a 402 challenge with invoice and token.
	rec := ts.do(t, http.MethodGet, path, ts.adminKey, nil, nil)
	require.Equal(t, http.StatusPaymentRequired, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Header().Get("WWW-Authenticate"), "L402 macaroon=")

	env := decodeJSON(t, rec)
	require.Equal(t, "PAYMENT_REQUIRED", env["code"])
	offer := env["meta"].(map[string]any)["offer"].(map[string]any)
	token := offer["token"].(string)
	hash := offer["paymentHash"].(string)
	require.NotEmpty(t, token)
	require.NotEmpty(t, hash)

	// Pay the invoice out of band.
	preimage, err := ts.provider.Settle(hash)
	require.NoError(t, err)

	// The L402 retry settles, consumes one read, and serves the item.
	auth := map[string]string{"Authorization": "L402 " + token + ":" + preimage}
	rec = ts.do(t, http.MethodGet, path, "", nil, auth)
	// An API key is still required alongside the payment proof.
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	auth["X-API-Key"] = ts.adminKey
	rec = ts.do(t, http.MethodGet, path, "", nil, auth)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	// Default quota is 3 reads; two more pass, the fourth is refused.
	for i := 0; i < 2; i++ {
		rec = ts.do(t, http.MethodGet, path, "", nil, auth)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	}
	rec = ts.do(t, http.MethodGet, path, "", nil, auth)
	require.Equal(t, http.StatusPaymentRequired, rec.Code)
	assert.Equal(t, "ENTITLEMENT_EXHAUSTED", decodeJSON(t, rec)["code"])
}

func TestContentItemAPI_TokenBoundToContentType(t *testing.T) {
	ts := newTestServer(t)
	cheap := ts.mustType(t, "cheap", 1)
	premium := ts.mustType(t, "premium", 500)
	item := ts.mustItem(t, premium.ID, `{"title": "expensive"}`)

	// Buy the 1-sat offer up front and settle it.
	rec := ts.do(t, http.MethodPost, "/api/v1/offers/"+itoa(cheap.ID)+"/purchase", ts.adminKey, map[string]any{}, nil)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	offer := decodeJSON(t, rec)
	preimage, err := ts.provider.Settle(offer["paymentHash"].(string))
	require.NoError(t, err)

	// Its token and entitlement must not admit a read of the pricier type;
	// the caller is re-challenged instead.
	rec = ts.do(t, http.MethodGet, "/api/v1/content-items/"+itoa(item.ID), "", nil, map[string]string{
		"X-API-Key":     ts.adminKey,
		"Authorization": "L402 " + offer["token"].(string) + ":" + preimage,
	})
	require.Equal(t, http.StatusPaymentRequired, rec.Code, rec.Body.String())
	assert.Equal(t, "PAYMENT_REQUIRED", decodeJSON(t, rec)["code"])
}

func TestContentItemAPI_PaidCreate(t *testing.T) {
	ts := newTestServer(t)
	ct := ts.mustType(t, "premium", 500)
	body := map[string]any{
		"contentTypeId": ct.ID,
		"data":          map[string]any{"title": "paid write"},
	}

	// Writing into a priced type is challenged like a read.
	rec := ts.do(t, http.MethodPost, "/api/v1/content-items", ts.adminKey, body, nil)
	require.Equal(t, http.StatusPaymentRequired, rec.Code, rec.Body.String())
	offer := decodeJSON(t, rec)["meta"].(map[string]any)["offer"].(map[string]any)

	preimage, err := ts.provider.Settle(offer["paymentHash"].(string))
	require.NoError(t, err)

	rec = ts.do(t, http.MethodPost, "/api/v1/content-items", "", body, map[string]string{
		"X-API-Key":     ts.adminKey,
		"Authorization": "L402 " + offer["token"].(string) + ":" + preimage,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
}

func TestContentItemAPI_ProposedPrice(t *testing.T) {
	ts := newTestServer(t)
	ct := ts.mustType(t, "article", 0)
	body := map[string]any{
		"contentTypeId": ct.ID,
		"data":          map[string]any{"title": "sponsored"},
	}

	// A proposed price opts a free type into the gate at that amount.
	rec := ts.do(t, http.MethodPost, "/api/v1/content-items", ts.adminKey, body, map[string]string{
		"X-Proposed-Price": "250",
	})
	require.Equal(t, http.StatusPaymentRequired, rec.Code, rec.Body.String())
	offer := decodeJSON(t, rec)["meta"].(map[string]any)["offer"].(map[string]any)
	assert.Equal(t, float64(250), offer["amountSats"])

	rec = ts.do(t, http.MethodPost, "/api/v1/content-items", ts.adminKey, body, map[string]string{
		"X-Proposed-Price": "free",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// A proposal can never undercut a priced type's base price.
	priced := ts.mustType(t, "premium", 500)
	rec = ts.do(t, http.MethodPost, "/api/v1/content-items", ts.adminKey, map[string]any{
		"contentTypeId": priced.ID,
		"data":          map[string]any{"title": "discounted"},
	}, map[string]string{
		"X-Proposed-Price": "1",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
	assert.Equal(t, "VALIDATION_FAILED", decodeJSON(t, rec)["code"])

	// Raising the price is allowed; the offer reflects the higher amount.
	rec = ts.do(t, http.MethodPost, "/api/v1/content-items", ts.adminKey, map[string]any{
		"contentTypeId": priced.ID,
		"data":          map[string]any{"title": "surge"},
	}, map[string]string{
		"X-Proposed-Price": "900",
	})
	require.Equal(t, http.StatusPaymentRequired, rec.Code, rec.Body.String())
	offer = decodeJSON(t, rec)["meta"].(map[string]any)["offer"].(map[string]any)
	assert.Equal(t, float64(900), offer["amountSats"])
}

func TestContentItemAPI_DryRunCreateIsNotCharged(t *testing.T) {
	ts := newTestServer(t)
	ct := ts.mustType(t, "premium", 500)

	// A dry run against a priced type skips the payment gate entirely.
	rec := ts.do(t, http.MethodPost, "/api/v1/content-items", ts.adminKey, map[string]any{
		"contentTypeId": ct.ID,
		"data":          map[string]any{"title": "preview"},
		"dryRun":        true,
	}, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, float64(1), decodeJSON(t, rec)["version"])

	rec = ts.do(t, http.MethodGet, "/api/v1/content-items", ts.adminKey, nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeJSON(t, rec)["data"], 0)
}

func TestContentItemAPI_BatchRejectsPricedTypes(t *testing.T) {
	ts := newTestServer(t)
	ct := ts.mustType(t, "premium", 500)

	rec := ts.do(t, http.MethodPost, "/api/v1/content-items/batch", ts.adminKey, map[string]any{
		"items": []map[string]any{
			{"contentTypeId": ct.ID, "data": map[string]any{"title": "x"}},
		},
	}, nil)
	require.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
	assert.Equal(t, "VALIDATION_FAILED", decodeJSON(t, rec)["code"])
}

func TestContentItemAPI_CreatedFilters(t *testing.T) {
	ts := newTestServer(t)
	ct := ts.mustType(t, "article", 0)
	ts.mustItem(t, ct.ID, `{"title": "one"}`)
	ts.mustItem(t, ct.ID, `{"title": "two"}`)

	rec := ts.do(t, http.MethodGet, "/api/v1/content-items?createdAfter=2000-01-01T00:00:00Z", ts.adminKey, nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeJSON(t, rec)["data"], 2)

	rec = ts.do(t, http.MethodGet, "/api/v1/content-items?createdBefore=2000-01-01T00:00:00Z", ts.adminKey, nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeJSON(t, rec)["data"], 0)

	rec = ts.do(t, http.MethodGet, "/api/v1/content-items?createdAfter=yesterday", ts.adminKey, nil, nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_CREATED_AFTER", decodeJSON(t, rec)["code"])
}

func TestContentItemAPI_BadPreimage(t *testing.T) {
	ts := newTestServer(t)
	ct := ts.mustType(t, "premium", 500)
	item := ts.mustItem(t, ct.ID, `{"title": "paywalled"}`)
	path := "/api/v1/content-items/" + itoa(item.ID)

	rec := ts.do(t, http.MethodGet, path, ts.adminKey, nil, nil)
	require.Equal(t, http.StatusPaymentRequired, rec.Code)
	offer := decodeJSON(t, rec)["meta"].(map[string]any)["offer"].(map[string]any)

	rec = ts.do(t, http.MethodGet, path, "", nil, map[string]string{
		"X-API-Key":     ts.adminKey,
		"Authorization": "L402 " + offer["token"].(string) + ":deadbeef",
	})
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "PAYMENT_INVALID_PREIMAGE", decodeJSON(t, rec)["code"])
}

func TestContentItemAPI_VersionsAndRollback(t *testing.T) {
	ts := newTestServer(t)
	ct := ts.mustType(t, "article", 0)
	item := ts.mustItem(t, ct.ID, `{"title": "v1"}`)
	base := "/api/v1/content-items/" + itoa(item.ID)

	rec := ts.do(t, http.MethodPatch, base, ts.adminKey, map[string]any{
		"data": map[string]any{"title": "v2"},
	}, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, float64(2), decodeJSON(t, rec)["version"])

	rec = ts.do(t, http.MethodGet, base+"/versions", ts.adminKey, nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeJSON(t, rec)["data"], 1)

	rec = ts.do(t, http.MethodPost, base+"/rollback", ts.adminKey, map[string]any{
		"targetVersion": 1,
	}, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	rolled := decodeJSON(t, rec)
	assert.Equal(t, float64(3), rolled["version"])

	rec = ts.do(t, http.MethodPost, base+"/rollback", ts.adminKey, map[string]any{
		"targetVersion": 99,
	}, nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "TARGET_VERSION_NOT_FOUND", decodeJSON(t, rec)["code"])
}

func TestContentItemAPI_PutUpdateAlias(t *testing.T) {
	ts := newTestServer(t)
	ct := ts.mustType(t, "article", 0)
	item := ts.mustItem(t, ct.ID, `{"title": "v1"}`)

	rec := ts.do(t, http.MethodPut, "/api/v1/content-items/"+itoa(item.ID), ts.adminKey, map[string]any{
		"data": map[string]any{"title": "v2"},
	}, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, float64(2), decodeJSON(t, rec)["version"])
}

func TestContentItemAPI_StaleVersionConflict(t *testing.T) {
	ts := newTestServer(t)
	ct := ts.mustType(t, "article", 0)
	item := ts.mustItem(t, ct.ID, `{"title": "v1"}`)
	base := "/api/v1/content-items/" + itoa(item.ID)

	rec := ts.do(t, http.MethodPatch, base, ts.adminKey, map[string]any{
		"data": map[string]any{"title": "v2"},
	}, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = ts.do(t, http.MethodPatch, base, ts.adminKey, map[string]any{
		"data":            map[string]any{"title": "stale"},
		"expectedVersion": 1,
	}, nil)
	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "VERSION_CONFLICT", decodeJSON(t, rec)["code"])
}
