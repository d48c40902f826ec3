package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const articleSchema = `{
	"type": "object",
	"required": ["title"],
	"properties": {
		"title": {"type": "string", "minLength": 1},
		"body": {"type": "string"}
	}
}`

func TestContentTypeAPI_CRUD(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodPost, "/api/v1/content-types", ts.adminKey, map[string]any{
		"name":   "Article",
		"slug":   "article",
		"schema": articleSchema,
	}, nil)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decodeJSON(t, rec)
	id := int(created["id"].(float64))
	assert.Equal(t, "article", created["slug"])

	rec = ts.do(t, http.MethodGet, "/api/v1/content-types", ts.adminKey, nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	list := decodeJSON(t, rec)
	assert.Len(t, list["data"], 1)

	rec = ts.do(t, http.MethodPatch, "/api/v1/content-types/"+itoa(id), ts.adminKey, map[string]any{
		"name": "Long-form Article",
	}, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "Long-form Article", decodeJSON(t, rec)["name"])

	rec = ts.do(t, http.MethodDelete, "/api/v1/content-types/"+itoa(id), ts.adminKey, nil, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = ts.do(t, http.MethodGet, "/api/v1/content-types/"+itoa(id), ts.adminKey, nil, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestContentTypeAPI_SlugConflict(t *testing.T) {
	ts := newTestServer(t)

	body := map[string]any{"name": "Article", "slug": "article", "schema": articleSchema}
	rec := ts.do(t, http.MethodPost, "/api/v1/content-types", ts.adminKey, body, nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = ts.do(t, http.MethodPost, "/api/v1/content-types", ts.adminKey, body, nil)
	require.Equal(t, http.StatusConflict, rec.Code)
	env := decodeJSON(t, rec)
	assert.Equal(t, "CONTENT_TYPE_SLUG_CONFLICT", env["code"])
	assert.NotEmpty(t, env["remediation"])
}

func TestContentTypeAPI_InvalidSchemaRejected(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodPost, "/api/v1/content-types", ts.adminKey, map[string]any{
		"name":   "Broken",
		"slug":   "broken",
		"schema": `{"type": [1,2]}`,
	}, nil)
	require.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
	assert.Equal(t, "INVALID_CONTENT_SCHEMA_JSON", decodeJSON(t, rec)["code"])
}

func TestAPI_AuthRejections(t *testing.T) {
	ts := newTestServer(t)

	t.Run("missing credentials", func(t *testing.T) {
		rec := ts.do(t, http.MethodGet, "/api/v1/content-types", "", nil, nil)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "AUTH_MISSING_CREDENTIALS", decodeJSON(t, rec)["code"])
	})

	t.Run("unknown key", func(t *testing.T) {
		rec := ts.do(t, http.MethodGet, "/api/v1/content-types", "qg_deadbeef_0000", nil, nil)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "AUTH_INVALID_KEY", decodeJSON(t, rec)["code"])
	})

	t.Run("insufficient scope", func(t *testing.T) {
		readOnly := ts.mustScopedKey(t, "content:read")
		rec := ts.do(t, http.MethodPost, "/api/v1/content-types", readOnly, map[string]any{
			"name": "X", "slug": "x", "schema": articleSchema,
		}, nil)
		require.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "AUTH_INSUFFICIENT_SCOPE", decodeJSON(t, rec)["code"])
	})

	t.Run("error envelope carries request id", func(t *testing.T) {
		rec := ts.do(t, http.MethodGet, "/api/v1/content-types", "", nil, nil)
		env := decodeJSON(t, rec)
		ctx := env["context"].(map[string]any)
		assert.NotEmpty(t, ctx["requestId"])
		assert.Equal(t, rec.Header().Get("X-Request-ID"), ctx["requestId"])
	})
}
