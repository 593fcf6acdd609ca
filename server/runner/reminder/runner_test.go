package reminder

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zaplanuj/terminarz/calendar"
)

type stubCollector struct {
	pending []*calendar.Notification
	err     error
}

func (s *stubCollector) CollectDueNotifications(context.Context) ([]*calendar.Notification, error) {
	if s.err != nil {
		return nil, s.err
	}
	due := s.pending
	s.pending = nil
	return due, nil
}

type recordingNotifier struct {
	deliveries []*Delivery
	err        error
}

func (r *recordingNotifier) Notify(_ context.Context, delivery *Delivery) error {
	if r.err != nil {
		return r.err
	}
	r.deliveries = append(r.deliveries, delivery)
	return nil
}

func TestRunOnce_DeliversWithUniqueIDs(t *testing.T) {
	collector := &stubCollector{pending: []*calendar.Notification{
		{EventCode: "gra-1", Message: "Event granie (gra-1) is starting!", Recipients: []string{"magnus"}},
		{EventCode: "tur-2", Message: "Reminder", Recipients: []string{"magnus", "judit"}},
	}}
	notifier := &recordingNotifier{}
	runner := NewRunner(collector, notifier, 0)

	runner.RunOnce(context.Background())

	require.Len(t, notifier.deliveries, 2)
	assert.Equal(t, "gra-1", notifier.deliveries[0].EventCode)
	assert.NotEmpty(t, notifier.deliveries[0].ID)
	assert.NotEqual(t, notifier.deliveries[0].ID, notifier.deliveries[1].ID)

	// Collected once means delivered once.
	runner.RunOnce(context.Background())
	assert.Len(t, notifier.deliveries, 2)
}

func TestRunOnce_CollectorFailureDeliversNothing(t *testing.T) {
	collector := &stubCollector{err: errors.New("db down")}
	notifier := &recordingNotifier{}
	runner := NewRunner(collector, notifier, 0)

	runner.RunOnce(context.Background())
	assert.Empty(t, notifier.deliveries)
}

func TestWebhookNotifier(t *testing.T) {
	received := make(chan *Delivery, 1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		delivery := &Delivery{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(delivery))
		received <- delivery
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	notifier := NewWebhookNotifier(server.URL)
	err := notifier.Notify(context.Background(), &Delivery{
		ID: "d-1", EventCode: "gra-1", Message: "hello", Recipients: []string{"magnus"},
	})
	require.NoError(t, err)

	delivery := <-received
	assert.Equal(t, "gra-1", delivery.EventCode)
	assert.Equal(t, []string{"magnus"}, delivery.Recipients)
}

func TestWebhookNotifier_ErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	notifier := NewWebhookNotifier(server.URL)
	err := notifier.Notify(context.Background(), &Delivery{ID: "d-1"})
	require.Error(t, err)
}
