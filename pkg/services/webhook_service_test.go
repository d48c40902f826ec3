package services

import (
	"context"
	"testing"
	"time"

	"github.com/quillgate/quillgate/ent/webhookdelivery"
	"github.com/quillgate/quillgate/pkg/events"
	"github.com/quillgate/quillgate/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchesPattern(t *testing.T) {
	tests := []struct {
		pattern   string
		eventType string
		want      bool
	}{
		{"*", "content_item.create", true},
		{"content_item.*", "content_item.create", true},
		{"content_item.*", "content_item.delete", true},
		{"content_item.*", "payment.paid", false},
		{"content_item.create", "content_item.create", true},
		{"content_item.create", "content_item.update", false},
		{"payment.*", "payment.paid", true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, MatchesPattern(tt.pattern, tt.eventType),
			"pattern %q vs %q", tt.pattern, tt.eventType)
	}
}

func TestWebhookService_CreateValidation(t *testing.T) {
	s := newStack(t)
	ctx := context.Background()
	tenant := s.mustTenant(t, "acme")

	tests := []struct {
		name string
		req  models.CreateWebhookRequest
	}{
		{"bad url", models.CreateWebhookRequest{URL: "not-a-url", EventPatterns: []string{"*"}, Secret: "x"}},
		{"no patterns", models.CreateWebhookRequest{URL: "https://example.com/hook", Secret: "x"}},
		{"no secret", models.CreateWebhookRequest{URL: "https://example.com/hook", EventPatterns: []string{"*"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.webhooks.CreateWebhook(ctx, tenant.ID, tt.req)
			assert.Error(t, err)
		})
	}
}

func TestWebhookService_RecordDeliveries(t *testing.T) {
	s := newStack(t)
	ctx := context.Background()
	tenant := s.mustTenant(t, "acme")

	matching, err := s.webhooks.CreateWebhook(ctx, tenant.ID, models.CreateWebhookRequest{
		URL: "https://example.com/content", EventPatterns: []string{"content_item.*"}, Secret: "s1",
	})
	require.NoError(t, err)
	_, err = s.webhooks.CreateWebhook(ctx, tenant.ID, models.CreateWebhookRequest{
		URL: "https://example.com/payments", EventPatterns: []string{"payment.*"}, Secret: "s2",
	})
	require.NoError(t, err)

	inactive := false
	disabled, err := s.webhooks.CreateWebhook(ctx, tenant.ID, models.CreateWebhookRequest{
		URL: "https://example.com/all", EventPatterns: []string{"*"}, Secret: "s3",
	})
	require.NoError(t, err)
	_, err = s.webhooks.UpdateWebhook(ctx, tenant.ID, disabled.ID, models.UpdateWebhookRequest{Active: &inactive})
	require.NoError(t, err)

	s.webhooks.RecordDeliveries(ctx, events.Event{
		Type:       events.TypeContentItemCreate,
		TenantID:   tenant.ID,
		EntityType: "content_item",
		EntityID:   1,
		CreatedAt:  time.Now(),
	})

	deliveries, err := s.client.WebhookDelivery.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, deliveries, 1, "only the matching active webhook gets a delivery")
	assert.Equal(t, matching.ID, deliveries[0].WebhookID)
	assert.Equal(t, webhookdelivery.StatusPending, deliveries[0].Status)
}

func TestWebhookService_DeliveriesKeptAfterWebhookDelete(t *testing.T) {
	s := newStack(t)
	ctx := context.Background()
	tenant := s.mustTenant(t, "acme")

	wh, err := s.webhooks.CreateWebhook(ctx, tenant.ID, models.CreateWebhookRequest{
		URL: "https://example.com/hook", EventPatterns: []string{"*"}, Secret: "s",
	})
	require.NoError(t, err)

	s.webhooks.RecordDeliveries(ctx, events.Event{
		Type: events.TypeContentItemCreate, TenantID: tenant.ID, EntityType: "content_item", EntityID: 1,
	})
	require.NoError(t, s.webhooks.DeleteWebhook(ctx, tenant.ID, wh.ID))

	count, err := s.client.WebhookDelivery.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
