package workers

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/quillgate/quillgate/ent"
	"github.com/quillgate/quillgate/pkg/config"
	"github.com/quillgate/quillgate/pkg/services"
)

// headerSignature carries the HMAC-SHA256 of the delivery payload, hex
// encoded, keyed with the webhook's secret.
const headerSignature = "X-Quillgate-Signature"

// Dispatcher posts recorded webhook deliveries to their endpoints. Each
// delivery is retried across ticks until it lands or its attempt budget is
// spent; the endpoint authenticates the payload via the signature header.
type Dispatcher struct {
	webhooks *services.WebhookService
	client   *http.Client
	cfg      config.WorkersConfig
	metrics  *Metrics

	cancel context.CancelFunc
	done   chan struct{}
}

// NewDispatcher creates a new Dispatcher.
func NewDispatcher(webhooks *services.WebhookService, cfg config.WorkersConfig, metrics *Metrics) *Dispatcher {
	return &Dispatcher{
		webhooks: webhooks,
		client:   &http.Client{Timeout: 10 * time.Second},
		cfg:      cfg,
		metrics:  metrics,
	}
}

// Start launches the dispatch loop.
func (d *Dispatcher) Start(ctx context.Context) {
	if d.cancel != nil {
		return
	}
	ctx, d.cancel = context.WithCancel(ctx)
	d.done = make(chan struct{})

	go d.run(ctx)

	slog.Info("Webhook dispatcher started",
		"interval", d.cfg.DispatchInterval, "max_attempts", d.cfg.MaxDeliveryAttempts)
}

// Stop signals the loop to exit and waits for it to finish.
func (d *Dispatcher) Stop() {
	if d.cancel == nil {
		return
	}
	d.cancel()
	<-d.done
	slog.Info("Webhook dispatcher stopped")
}

func (d *Dispatcher) run(ctx context.Context) {
	defer close(d.done)

	ticker := time.NewTicker(d.cfg.DispatchInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := d.Dispatch(ctx); err != nil {
				slog.Error("Dispatch pass failed", "error", err)
			}
		}
	}
}

// Dispatch runs one pass over the pending deliveries.
func (d *Dispatcher) Dispatch(ctx context.Context) error {
	pending, err := d.webhooks.PendingDeliveries(ctx, 100)
	if err != nil {
		return err
	}

	for _, delivery := range pending {
		d.dispatchOne(ctx, delivery)
	}
	return nil
}

func (d *Dispatcher) dispatchOne(ctx context.Context, delivery *ent.WebhookDelivery) {
	attempt := delivery.Attempts + 1

	endpoint, err := d.webhooks.Endpoint(ctx, delivery.WebhookID)
	if err != nil {
		// Endpoint deleted after the delivery was recorded; terminal.
		d.metrics.WebhookDeliveries.WithLabelValues("failed").Inc()
		if err := d.webhooks.MarkAttemptFailed(ctx, delivery.ID, attempt, attempt, err.Error()); err != nil {
			slog.Error("Failed to record delivery failure", "delivery_id", delivery.ID, "error", err)
		}
		return
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 2), ctx)
	postErr := backoff.Retry(func() error {
		return d.post(ctx, endpoint, delivery)
	}, policy)

	if postErr != nil {
		d.metrics.WebhookDeliveries.WithLabelValues("retried").Inc()
		if err := d.webhooks.MarkAttemptFailed(ctx, delivery.ID, attempt, d.cfg.MaxDeliveryAttempts, postErr.Error()); err != nil {
			slog.Error("Failed to record delivery failure", "delivery_id", delivery.ID, "error", err)
		}
		return
	}

	d.metrics.WebhookDeliveries.WithLabelValues("delivered").Inc()
	if err := d.webhooks.MarkDelivered(ctx, delivery.ID, attempt); err != nil {
		slog.Error("Failed to record delivery success", "delivery_id", delivery.ID, "error", err)
	}
}

func (d *Dispatcher) post(ctx context.Context, endpoint *ent.Webhook, delivery *ent.WebhookDelivery) error {
	body := []byte(delivery.Payload)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.URL, bytes.NewReader(body))
	if err != nil {
		return backoff.Permanent(err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Quillgate-Event", delivery.EventType)
	req.Header.Set(headerSignature, Sign(endpoint.Secret, body))

	resp, err := d.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		err := fmt.Errorf("endpoint returned %d", resp.StatusCode)
		// Client errors will not heal on retry within this tick.
		if resp.StatusCode >= 400 && resp.StatusCode < 500 {
			return backoff.Permanent(err)
		}
		return err
	}
	return nil
}

// Sign computes the delivery signature subscribers verify: HMAC-SHA256 of
// the payload keyed with the webhook secret, hex encoded.
func Sign(secret string, payload []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}
