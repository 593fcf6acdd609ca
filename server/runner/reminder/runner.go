// Package reminder drives due-notification delivery: it periodically asks
// the calendar for notifications whose moment has come and hands them to a
// Notifier.
package reminder

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/zaplanuj/terminarz/calendar"
)

// Collector yields the notifications that are due right now.
// *calendar.Service satisfies it.
type Collector interface {
	CollectDueNotifications(ctx context.Context) ([]*calendar.Notification, error)
}

// Delivery is one outgoing notification with a unique delivery ID, so the
// receiving side can deduplicate retries.
type Delivery struct {
	ID         string   `json:"id"`
	EventCode  string   `json:"eventCode"`
	Message    string   `json:"message"`
	Recipients []string `json:"recipients"`
}

// Notifier delivers a notification to the channel members.
type Notifier interface {
	Notify(ctx context.Context, delivery *Delivery) error
}

type Runner struct {
	collector Collector
	notifier  Notifier
	interval  time.Duration
}

func NewRunner(collector Collector, notifier Notifier, interval time.Duration) *Runner {
	return &Runner{
		collector: collector,
		notifier:  notifier,
		interval:  interval,
	}
}

// Run starts the background task.
func (r *Runner) Run(ctx context.Context) {
	// Process once on startup, catching anything that came due while down.
	r.RunOnce(ctx)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			r.RunOnce(ctx)
		case <-ctx.Done():
			slog.Info("reminder runner stopped")
			return
		}
	}
}

// RunOnce collects and delivers due notifications once.
func (r *Runner) RunOnce(ctx context.Context) {
	notifications, err := r.collector.CollectDueNotifications(ctx)
	if err != nil {
		slog.Error("failed to collect due notifications", "error", err)
		return
	}
	for _, notification := range notifications {
		delivery := &Delivery{
			ID:         uuid.NewString(),
			EventCode:  notification.EventCode,
			Message:    notification.Message,
			Recipients: notification.Recipients,
		}
		if err := r.notifier.Notify(ctx, delivery); err != nil {
			slog.Error("failed to deliver notification",
				"event", notification.EventCode, "delivery", delivery.ID, "error", err)
			continue
		}
		slog.Info("notification delivered",
			"event", notification.EventCode, "delivery", delivery.ID, "recipients", len(delivery.Recipients))
	}
}
