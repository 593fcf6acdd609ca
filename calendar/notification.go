package calendar

import (
	"context"
	"time"

	"github.com/zaplanuj/terminarz/store"
)

// Notification is a message ready for delivery to the channel members who
// declared YES or MAYBE.
type Notification struct {
	EventCode  string
	Message    string
	Recipients []string
}

// CollectDueNotifications returns the notifications whose moment has come
// and marks them sent, so each fires exactly once. A late reminder still
// fires as long as the event itself has not started; once it has, only the
// start notification goes out.
func (s *Service) CollectDueNotifications(ctx context.Context) ([]*Notification, error) {
	events, err := s.store.ListEvents(ctx, &store.FindEvent{ChannelHandle: &s.channelHandle})
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	nowTs := now.Unix()
	notifications := make([]*Notification, 0)
	for _, event := range events {
		var message string
		update := &store.UpdateEvent{ID: event.ID, UpdatedTs: &nowTs}
		switch {
		case event.StartTs <= nowTs && event.StartSentTs == nil:
			message = StartMessage(event.Name, event.Code)
			update.StartSentTs = &nowTs
		case event.StartTs > nowTs && event.RemindTs != nil && *event.RemindTs <= nowTs && event.RemindSentTs == nil:
			start := time.Unix(event.StartTs, 0).In(now.Location())
			message = ReminderMessage(event.Name, event.Code, start)
			update.RemindSentTs = &nowTs
		default:
			continue
		}

		recipients, err := s.positiveDeclarers(ctx, event.ID)
		if err != nil {
			return nil, err
		}
		if _, err := s.store.UpdateEvent(ctx, update); err != nil {
			return nil, err
		}
		notifications = append(notifications, &Notification{
			EventCode:  event.Code,
			Message:    message,
			Recipients: recipients,
		})
	}

	return notifications, nil
}

// positiveDeclarers lists the handles of everyone who declared YES or MAYBE.
func (s *Service) positiveDeclarers(ctx context.Context, eventID int32) ([]string, error) {
	declarations, err := s.store.ListDeclarations(ctx, &store.FindDeclaration{
		EventID:     &eventID,
		Attendances: []store.Attendance{store.AttendanceYes, store.AttendanceMaybe},
	})
	if err != nil {
		return nil, err
	}
	handles := make([]string, 0, len(declarations))
	for _, declaration := range declarations {
		handles = append(handles, declaration.UserHandle)
	}
	return handles, nil
}
