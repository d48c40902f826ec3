package e2e

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quillgate/quillgate/pkg/events"
	"github.com/quillgate/quillgate/pkg/workers"
)

// TestWebhookJourney registers an endpoint over the API, triggers an event,
// and verifies the dispatcher posts a correctly signed delivery to it.
func TestWebhookJourney(t *testing.T) {
	h := NewHarness(t)
	ctx := context.Background()

	type received struct {
		body      []byte
		signature string
		eventType string
	}
	var mu sync.Mutex
	var got []received
	receiver := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		mu.Lock()
		got = append(got, received{
			body:      body,
			signature: r.Header.Get("X-Quillgate-Signature"),
			eventType: r.Header.Get("X-Quillgate-Event"),
		})
		mu.Unlock()
		w.WriteHeader(http.StatusOK)
	}))
	defer receiver.Close()

	resp := h.Do(t, http.MethodPost, "/api/v1/webhooks", map[string]any{
		"url":           receiver.URL,
		"eventPatterns": []string{"content_item.*"},
		"secret":        "endpoint-secret",
	}, nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	var ct map[string]any
	resp = h.Do(t, http.MethodPost, "/api/v1/content-types", map[string]any{
		"name": "article", "slug": "article", "schema": `{"type": "object"}`,
	}, nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	Decode(t, resp, &ct)

	resp = h.Do(t, http.MethodPost, "/api/v1/content-items", map[string]any{
		"contentTypeId": ct["id"],
		"data":          map[string]any{"title": "hello"},
	}, nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	// The bus fanout records the delivery asynchronously.
	require.Eventually(t, func() bool {
		pending, err := h.Webhooks.PendingDeliveries(ctx, 10)
		return err == nil && len(pending) > 0
	}, 5*time.Second, 20*time.Millisecond)

	require.NoError(t, h.Dispatcher.Dispatch(ctx))

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, got, 1)
	assert.Equal(t, events.TypeContentItemCreate, got[0].eventType)
	assert.Equal(t, workers.Sign("endpoint-secret", got[0].body), got[0].signature)

	var evt events.Event
	require.NoError(t, json.Unmarshal(got[0].body, &evt))
	assert.Equal(t, events.TypeContentItemCreate, evt.Type)

	// The attempt trail is visible over the API.
	var hooks map[string]any
	resp = h.Do(t, http.MethodGet, "/api/v1/webhooks", nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	Decode(t, resp, &hooks)
	hookID := itoa(hooks["data"].([]any)[0].(map[string]any)["id"])

	var deliveries map[string]any
	resp = h.Do(t, http.MethodGet, "/api/v1/webhooks/"+hookID+"/deliveries", nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	Decode(t, resp, &deliveries)
	rows := deliveries["data"].([]any)
	require.Len(t, rows, 1)
	assert.Equal(t, "delivered", rows[0].(map[string]any)["status"])
}
