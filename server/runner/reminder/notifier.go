package reminder

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// WebhookNotifier posts deliveries as JSON to a channel adapter endpoint.
// Outgoing posts are rate limited so a backlog of late notifications cannot
// flood the adapter.
type WebhookNotifier struct {
	url     string
	client  *http.Client
	limiter *rate.Limiter
}

func NewWebhookNotifier(url string) *WebhookNotifier {
	return &WebhookNotifier{
		url:     url,
		client:  &http.Client{Timeout: 10 * time.Second},
		limiter: rate.NewLimiter(rate.Every(time.Second), 5),
	}
}

func (n *WebhookNotifier) Notify(ctx context.Context, delivery *Delivery) error {
	if err := n.limiter.Wait(ctx); err != nil {
		return err
	}
	body, err := json.Marshal(delivery)
	if err != nil {
		return fmt.Errorf("failed to marshal delivery: %w", err)
	}
	request, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build webhook request: %w", err)
	}
	request.Header.Set("Content-Type", "application/json")
	response, err := n.client.Do(request)
	if err != nil {
		return fmt.Errorf("failed to post webhook: %w", err)
	}
	defer response.Body.Close()
	if response.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("webhook answered %d", response.StatusCode)
	}
	return nil
}

// LogNotifier writes notifications to the log. Used when no webhook URL is
// configured, typically in dev mode.
type LogNotifier struct{}

func (LogNotifier) Notify(_ context.Context, delivery *Delivery) error {
	slog.Info("notification",
		"event", delivery.EventCode, "message", delivery.Message, "recipients", delivery.Recipients)
	return nil
}
