package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPIKeyAPI_Lifecycle(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodPost, "/api/v1/auth/keys", ts.adminKey, map[string]any{
		"name":   "ci",
		"scopes": []string{"content:read"},
	}, nil)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decodeJSON(t, rec)
	id := int(created["id"].(float64))
	secret := created["secret"].(string)
	require.NotEmpty(t, secret)

	// The minted key authenticates.
	rec = ts.do(t, http.MethodGet, "/api/v1/content-types", secret, nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	// Rotation mints a replacement and kills the old secret.
	rec = ts.do(t, http.MethodPost, "/api/v1/auth/keys/"+itoa(id)+"/rotate", ts.adminKey, nil, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	rotated := decodeJSON(t, rec)["secret"].(string)

	rec = ts.do(t, http.MethodGet, "/api/v1/content-types", secret, nil, nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "AUTH_KEY_REVOKED", decodeJSON(t, rec)["code"])

	rec = ts.do(t, http.MethodGet, "/api/v1/content-types", rotated, nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	// Listing never exposes secret hashes or plaintext.
	rec = ts.do(t, http.MethodGet, "/api/v1/auth/keys", ts.adminKey, nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), rotated)
}

func TestAPIKeyAPI_RequiresAdmin(t *testing.T) {
	ts := newTestServer(t)
	readOnly := ts.mustScopedKey(t, "content:read")

	rec := ts.do(t, http.MethodGet, "/api/v1/auth/keys", readOnly, nil, nil)
	require.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "AUTH_INSUFFICIENT_SCOPE", decodeJSON(t, rec)["code"])
}
