package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quillgate/quillgate/pkg/models"
	"github.com/quillgate/quillgate/pkg/services"
)

func TestRequestID(t *testing.T) {
	ts := newTestServer(t)

	t.Run("generated when absent", func(t *testing.T) {
		rec := ts.do(t, http.MethodGet, "/health", "", nil, nil)
		assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
	})

	t.Run("client value preserved", func(t *testing.T) {
		rec := ts.do(t, http.MethodGet, "/health", "", nil, map[string]string{
			"X-Request-ID": "trace-me-1",
		})
		assert.Equal(t, "trace-me-1", rec.Header().Get("X-Request-ID"))
	})
}

func TestSecurityHeaders(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodGet, "/health", "", nil, nil)
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
}

func TestIdempotencyReplay(t *testing.T) {
	ts := newTestServer(t)

	body := map[string]any{"name": "Article", "slug": "article", "schema": articleSchema}
	headers := map[string]string{"Idempotency-Key": "create-article-1"}

	first := ts.do(t, http.MethodPost, "/api/v1/content-types", ts.adminKey, body, headers)
	require.Equal(t, http.StatusCreated, first.Code, first.Body.String())
	assert.Empty(t, first.Header().Get("X-Idempotency-Replay"))

	// Same key replays the stored response instead of hitting the slug
	// conflict a real second insert would cause.
	second := ts.do(t, http.MethodPost, "/api/v1/content-types", ts.adminKey, body, headers)
	require.Equal(t, http.StatusCreated, second.Code)
	assert.Equal(t, "true", second.Header().Get("X-Idempotency-Replay"))
	assert.JSONEq(t, first.Body.String(), second.Body.String())

	// A different key goes through and is refused as a duplicate slug.
	third := ts.do(t, http.MethodPost, "/api/v1/content-types", ts.adminKey, body, map[string]string{
		"Idempotency-Key": "create-article-2",
	})
	assert.Equal(t, http.StatusConflict, third.Code)
}

func TestIdempotencyReplay_ScopedToTenant(t *testing.T) {
	ts := newTestServer(t)
	ctx := context.Background()

	other, err := ts.tenants.CreateTenant(ctx, "globex", "globex")
	require.NoError(t, err)
	otherKey, err := ts.keys.CreateAPIKey(ctx, other.ID, models.CreateAPIKeyRequest{
		Name:   "globex admin",
		Scopes: []string{services.ScopeAdmin},
	})
	require.NoError(t, err)

	body := map[string]any{"name": "Article", "slug": "article", "schema": articleSchema}
	headers := map[string]string{"Idempotency-Key": "shared-key-value"}

	first := ts.do(t, http.MethodPost, "/api/v1/content-types", ts.adminKey, body, headers)
	require.Equal(t, http.StatusCreated, first.Code, first.Body.String())

	// The same key value from another tenant must execute normally, never
	// replay the first tenant's stored response.
	second := ts.do(t, http.MethodPost, "/api/v1/content-types", otherKey.Secret, body, headers)
	require.Equal(t, http.StatusCreated, second.Code, second.Body.String())
	assert.Empty(t, second.Header().Get("X-Idempotency-Replay"))
	assert.NotEqual(t, decodeJSON(t, first)["id"], decodeJSON(t, second)["id"])
}

func TestRateLimit(t *testing.T) {
	cfg := testConfig()
	cfg.RateLimit.RequestsPerMinute = 1
	cfg.RateLimit.Burst = 2
	ts := newTestServerWithConfig(t, cfg)

	for i := 0; i < 2; i++ {
		rec := ts.do(t, http.MethodGet, "/api/v1/content-types", ts.adminKey, nil, nil)
		require.Equal(t, http.StatusOK, rec.Code, "request %d", i)
	}

	rec := ts.do(t, http.MethodGet, "/api/v1/content-types", ts.adminKey, nil, nil)
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))
	assert.Equal(t, "RATE_LIMIT_EXCEEDED", decodeJSON(t, rec)["code"])
}
