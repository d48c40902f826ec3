package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/quillgate/quillgate/ent"
	"github.com/quillgate/quillgate/ent/webhook"
	"github.com/quillgate/quillgate/ent/webhookdelivery"
	"github.com/quillgate/quillgate/pkg/events"
	"github.com/quillgate/quillgate/pkg/models"
)

// WebhookService manages outbound webhook endpoints and materialises event
// deliveries for the dispatch worker.
type WebhookService struct {
	client *ent.Client
	audit  *AuditService
}

// NewWebhookService creates a new WebhookService
func NewWebhookService(client *ent.Client, audit *AuditService) *WebhookService {
	return &WebhookService{client: client, audit: audit}
}

// MatchesPattern reports whether an event type matches a subscription
// pattern. "*" matches everything; "content_item.*" matches every
// content_item event; anything else is an exact match.
func MatchesPattern(pattern, eventType string) bool {
	if pattern == "*" {
		return true
	}
	if entity, ok := strings.CutSuffix(pattern, ".*"); ok {
		return strings.HasPrefix(eventType, entity+".")
	}
	return pattern == eventType
}

func validateWebhookURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return NewValidationError("url", "must be an absolute http(s) URL")
	}
	return nil
}

// CreateWebhook registers an endpoint.
func (s *WebhookService) CreateWebhook(ctx context.Context, tenantID int, req models.CreateWebhookRequest) (*ent.Webhook, error) {
	if err := validateWebhookURL(req.URL); err != nil {
		return nil, err
	}
	if len(req.EventPatterns) == 0 {
		return nil, NewValidationError("eventPatterns", "required")
	}
	if req.Secret == "" {
		return nil, NewValidationError("secret", "required")
	}

	wh, err := s.client.Webhook.Create().
		SetTenantID(tenantID).
		SetURL(req.URL).
		SetEventPatterns(req.EventPatterns).
		SetSecret(req.Secret).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create webhook: %w", err)
	}

	s.audit.Record(ctx, tenantID, ActionCreate, "webhook", wh.ID, map[string]any{
		"url": wh.URL,
	})
	return wh, nil
}

// GetWebhook retrieves a webhook by ID within the tenant.
func (s *WebhookService) GetWebhook(ctx context.Context, tenantID, id int) (*ent.Webhook, error) {
	wh, err := s.client.Webhook.Query().
		Where(webhook.IDEQ(id), webhook.TenantIDEQ(tenantID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, NewError(ErrNotFound, CodeWebhookEndpointNotFound,
				fmt.Sprintf("webhook %d not found", id), "check the webhook id")
		}
		return nil, fmt.Errorf("failed to get webhook: %w", err)
	}
	return wh, nil
}

// ListWebhooks lists the tenant's webhooks.
func (s *WebhookService) ListWebhooks(ctx context.Context, tenantID int) ([]*ent.Webhook, error) {
	hooks, err := s.client.Webhook.Query().
		Where(webhook.TenantIDEQ(tenantID)).
		Order(ent.Asc(webhook.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list webhooks: %w", err)
	}
	return hooks, nil
}

// UpdateWebhook applies a partial update.
func (s *WebhookService) UpdateWebhook(ctx context.Context, tenantID, id int, req models.UpdateWebhookRequest) (*ent.Webhook, error) {
	wh, err := s.GetWebhook(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	builder := wh.Update()
	if req.URL != nil {
		if err := validateWebhookURL(*req.URL); err != nil {
			return nil, err
		}
		builder.SetURL(*req.URL)
	}
	if req.EventPatterns != nil {
		builder.SetEventPatterns(req.EventPatterns)
	}
	if req.Secret != nil {
		if *req.Secret == "" {
			return nil, NewValidationError("secret", "must not be empty")
		}
		builder.SetSecret(*req.Secret)
	}
	if req.Active != nil {
		builder.SetActive(*req.Active)
	}

	wh, err = builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update webhook: %w", err)
	}

	s.audit.Record(ctx, tenantID, ActionUpdate, "webhook", id, map[string]any{
		"url": wh.URL,
	})
	return wh, nil
}

// DeleteWebhook removes an endpoint. Past deliveries are kept for audit.
func (s *WebhookService) DeleteWebhook(ctx context.Context, tenantID, id int) error {
	wh, err := s.GetWebhook(ctx, tenantID, id)
	if err != nil {
		return err
	}
	if err := s.client.Webhook.DeleteOne(wh).Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete webhook: %w", err)
	}
	s.audit.Record(ctx, tenantID, ActionDelete, "webhook", id, map[string]any{
		"url": wh.URL,
	})
	return nil
}

// RecordDeliveries creates one pending delivery per active webhook whose
// patterns match the event. Called from the bus consumer; failures are
// logged, a missed delivery must not fail the originating request.
func (s *WebhookService) RecordDeliveries(ctx context.Context, evt events.Event) {
	hooks, err := s.client.Webhook.Query().
		Where(
			webhook.TenantIDEQ(evt.TenantID),
			webhook.ActiveEQ(true),
		).
		All(ctx)
	if err != nil {
		slog.Error("Failed to load webhooks for event", "event_type", evt.Type, "error", err)
		return
	}

	payload, err := json.Marshal(evt)
	if err != nil {
		slog.Error("Failed to encode event payload", "event_type", evt.Type, "error", err)
		return
	}

	for _, wh := range hooks {
		matched := false
		for _, pattern := range wh.EventPatterns {
			if MatchesPattern(pattern, evt.Type) {
				matched = true
				break
			}
		}
		if !matched {
			continue
		}
		if _, err := s.client.WebhookDelivery.Create().
			SetTenantID(evt.TenantID).
			SetWebhookID(wh.ID).
			SetEventType(evt.Type).
			SetPayload(string(payload)).
			Save(ctx); err != nil {
			slog.Error("Failed to record webhook delivery",
				"webhook_id", wh.ID, "event_type", evt.Type, "error", err)
		}
	}
}

// PendingDeliveries returns up to limit undelivered rows, oldest first, for
// the dispatch worker.
func (s *WebhookService) PendingDeliveries(ctx context.Context, limit int) ([]*ent.WebhookDelivery, error) {
	if limit <= 0 {
		limit = 100
	}
	deliveries, err := s.client.WebhookDelivery.Query().
		Where(webhookdelivery.StatusEQ(webhookdelivery.StatusPending)).
		Order(ent.Asc(webhookdelivery.FieldID)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending deliveries: %w", err)
	}
	return deliveries, nil
}

// Endpoint resolves the delivery's webhook for dispatch. The webhook may have
// been deleted since the delivery was recorded.
func (s *WebhookService) Endpoint(ctx context.Context, webhookID int) (*ent.Webhook, error) {
	wh, err := s.client.Webhook.Get(ctx, webhookID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, NewError(ErrNotFound, CodeWebhookEndpointNotFound,
				fmt.Sprintf("webhook %d no longer exists", webhookID), "")
		}
		return nil, fmt.Errorf("failed to load webhook: %w", err)
	}
	return wh, nil
}

// MarkDelivered records a successful dispatch.
func (s *WebhookService) MarkDelivered(ctx context.Context, deliveryID, attempt int) error {
	err := s.client.WebhookDelivery.UpdateOneID(deliveryID).
		SetStatus(webhookdelivery.StatusDelivered).
		SetAttempts(attempt).
		SetDeliveredAt(time.Now()).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to mark delivery %d delivered: %w", deliveryID, err)
	}
	return nil
}

// MarkAttemptFailed records a failed dispatch attempt. The row stays pending
// until the attempt budget is spent, then goes terminal failed.
func (s *WebhookService) MarkAttemptFailed(ctx context.Context, deliveryID, attempt, maxAttempts int, cause string) error {
	update := s.client.WebhookDelivery.UpdateOneID(deliveryID).
		SetAttempts(attempt).
		SetLastError(cause)
	if attempt >= maxAttempts {
		update.SetStatus(webhookdelivery.StatusFailed)
	}
	if err := update.Exec(ctx); err != nil {
		return fmt.Errorf("failed to record delivery %d failure: %w", deliveryID, err)
	}
	return nil
}

// ListDeliveries lists a webhook's delivery history, newest first.
func (s *WebhookService) ListDeliveries(ctx context.Context, tenantID, webhookID int, limit int) ([]*ent.WebhookDelivery, error) {
	if _, err := s.GetWebhook(ctx, tenantID, webhookID); err != nil {
		return nil, err
	}
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	deliveries, err := s.client.WebhookDelivery.Query().
		Where(webhookdelivery.WebhookIDEQ(webhookID)).
		Order(ent.Desc(webhookdelivery.FieldID)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list deliveries: %w", err)
	}
	return deliveries, nil
}
