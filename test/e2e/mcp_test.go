package e2e

import (
	"context"
	"net/http"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type apiKeyTransport struct {
	key  string
	next http.RoundTripper
}

func (t apiKeyTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.Header.Set("X-API-Key", t.key)
	return t.next.RoundTrip(req)
}

// TestMCPSharesStateWithHTTP connects an MCP client over the real SSE
// endpoint and checks it sees content created through the REST surface.
func TestMCPSharesStateWithHTTP(t *testing.T) {
	h := NewHarness(t)
	ctx := context.Background()

	resp := h.Do(t, http.MethodPost, "/api/v1/content-types", map[string]any{
		"name": "article", "slug": "article", "schema": `{"type": "object"}`,
	}, nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	transport := &mcp.SSEClientTransport{
		Endpoint: h.URL + "/mcp",
		HTTPClient: &http.Client{
			Transport: apiKeyTransport{key: h.APIKey, next: http.DefaultTransport},
		},
	}
	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "test"}, nil)
	session, err := client.Connect(ctx, transport, nil)
	require.NoError(t, err)
	defer session.Close()

	result, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name:      "quillgate_list_content_types",
		Arguments: map[string]any{},
	})
	require.NoError(t, err)
	require.False(t, result.IsError)

	text, ok := result.Content[0].(*mcp.TextContent)
	require.True(t, ok)
	assert.Contains(t, text.Text, `"article"`)
}
