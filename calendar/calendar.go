// Package calendar implements the event scheduling rules for a single
// channel: creating events from natural-language Polish text, attendance
// declarations, reminders and due-notification collection.
package calendar

import (
	"context"
	"time"

	"github.com/lithammer/shortuuid/v4"

	"github.com/zaplanuj/terminarz/plugin/eventparse"
	"github.com/zaplanuj/terminarz/store"
)

// Store is the persistence surface the service needs. *store.Store satisfies
// it.
type Store interface {
	CreateEvent(ctx context.Context, create *store.Event) (*store.Event, error)
	ListEvents(ctx context.Context, find *store.FindEvent) ([]*store.Event, error)
	GetEvent(ctx context.Context, find *store.FindEvent) (*store.Event, error)
	UpdateEvent(ctx context.Context, update *store.UpdateEvent) (*store.Event, error)
	DeleteEvent(ctx context.Context, delete *store.DeleteEvent) error
	NextEventNumber(ctx context.Context, channelHandle string) (int64, error)

	CreateUser(ctx context.Context, create *store.User) (*store.User, error)
	GetUserByHandle(ctx context.Context, handle string) (*store.User, error)
	UpdateUser(ctx context.Context, update *store.UpdateUser) (*store.User, error)
	DeleteUser(ctx context.Context, delete *store.DeleteUser) error

	UpsertDeclaration(ctx context.Context, upsert *store.Declaration) (*store.Declaration, error)
	ListDeclarations(ctx context.Context, find *store.FindDeclaration) ([]*store.Declaration, error)
	DeleteDeclaration(ctx context.Context, delete *store.DeleteDeclaration) error
}

// Service is the calendar of one channel.
type Service struct {
	store         Store
	parser        eventparse.Parser
	clock         eventparse.Clock
	channelHandle string
}

func NewService(store Store, parser eventparse.Parser, clock eventparse.Clock, channelHandle string) *Service {
	return &Service{
		store:         store,
		parser:        parser,
		clock:         clock,
		channelHandle: channelHandle,
	}
}

// AddUser registers a channel member. Re-adding an existing handle updates
// the flags instead of failing, so membership sync can be replayed.
func (s *Service) AddUser(ctx context.Context, handle string, admin, eventCreationAllowed bool) (*store.User, error) {
	existing, err := s.store.GetUserByHandle(ctx, handle)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		if existing.Admin == admin && existing.EventCreationAllowed == eventCreationAllowed {
			return existing, nil
		}
		return s.store.UpdateUser(ctx, &store.UpdateUser{
			ID:                   existing.ID,
			Admin:                &admin,
			EventCreationAllowed: &eventCreationAllowed,
		})
	}
	return s.store.CreateUser(ctx, &store.User{
		Handle:               handle,
		Admin:                admin,
		EventCreationAllowed: eventCreationAllowed,
		CreatedTs:            s.clock.Now().Unix(),
	})
}

// RemoveUser drops a channel member together with their attendance
// declarations, the counterpart of AddUser for membership sync. The member's
// own events stay on the calendar.
func (s *Service) RemoveUser(ctx context.Context, handle string) error {
	user, err := s.store.GetUserByHandle(ctx, handle)
	if err != nil {
		return err
	}
	if user == nil {
		return &UserNotFoundError{Handle: handle}
	}
	if err := s.store.DeleteDeclaration(ctx, &store.DeleteDeclaration{UserHandle: &handle}); err != nil {
		return err
	}
	return s.store.DeleteUser(ctx, &store.DeleteUser{ID: user.ID})
}

// CreateEventFromText parses a Polish sentence like "Dodaj granie w szachy
// jutro o 18:30" and schedules the event it describes. A reminder phrase in
// the sentence becomes the event's reminder.
func (s *Service) CreateEventFromText(ctx context.Context, ownerHandle, text string) (*store.Event, error) {
	parsed, err := s.parser.Parse(text)
	if err != nil {
		return nil, err
	}
	return s.AddEvent(ctx, ownerHandle, parsed.Name, parsed.Time, parsed.ReminderDelta)
}

// AddEvent schedules an event. The owner is auto-declared YES. A non-nil
// reminderDelta sets a reminder that much before the start.
func (s *Service) AddEvent(ctx context.Context, ownerHandle, name string, at time.Time, reminderDelta *time.Duration) (*store.Event, error) {
	owner, err := s.store.GetUserByHandle(ctx, ownerHandle)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, &UserNotFoundError{Handle: ownerHandle}
	}
	if !owner.EventCreationAllowed {
		return nil, &CreationForbiddenError{Handle: ownerHandle}
	}

	now := s.clock.Now()
	if !at.After(now) {
		return nil, &EventInPastError{Now: now, Requested: at}
	}

	var remindTs *int64
	if reminderDelta != nil {
		remindAt := at.Add(-*reminderDelta)
		if !remindAt.After(now) {
			return nil, &ReminderInPastError{Now: now, Requested: remindAt}
		}
		ts := remindAt.Unix()
		remindTs = &ts
	}

	number, err := s.store.NextEventNumber(ctx, s.channelHandle)
	if err != nil {
		return nil, err
	}

	event, err := s.store.CreateEvent(ctx, &store.Event{
		UID:           shortuuid.New(),
		Code:          NewEventCode(name, number),
		ChannelHandle: s.channelHandle,
		Name:          name,
		OwnerHandle:   ownerHandle,
		StartTs:       at.Unix(),
		RemindTs:      remindTs,
		CreatedTs:     now.Unix(),
		UpdatedTs:     now.Unix(),
	})
	if err != nil {
		return nil, err
	}

	if _, err := s.store.UpsertDeclaration(ctx, &store.Declaration{
		EventID:    event.ID,
		UserHandle: ownerHandle,
		Attendance: store.AttendanceYes,
		CreatedTs:  now.Unix(),
		UpdatedTs:  now.Unix(),
	}); err != nil {
		return nil, err
	}

	return event, nil
}

// DeleteEvent removes an event. Only the owner or an admin may do so.
func (s *Service) DeleteEvent(ctx context.Context, issuerHandle, code string) error {
	issuer, err := s.store.GetUserByHandle(ctx, issuerHandle)
	if err != nil {
		return err
	}
	if issuer == nil {
		return &UserNotFoundError{Handle: issuerHandle}
	}
	event, err := s.getEventByCode(ctx, code)
	if err != nil {
		return err
	}
	if event.OwnerHandle != issuerHandle && !issuer.Admin {
		return &NotPermittedToDeleteError{Handle: issuerHandle, Code: code}
	}
	return s.store.DeleteEvent(ctx, &store.DeleteEvent{ID: event.ID})
}

// Declare records an attendance answer, replacing any earlier one.
func (s *Service) Declare(ctx context.Context, userHandle, code string, attendance store.Attendance) error {
	user, err := s.store.GetUserByHandle(ctx, userHandle)
	if err != nil {
		return err
	}
	if user == nil {
		return &UserNotFoundError{Handle: userHandle}
	}
	event, err := s.getEventByCode(ctx, code)
	if err != nil {
		return err
	}
	now := s.clock.Now().Unix()
	_, err = s.store.UpsertDeclaration(ctx, &store.Declaration{
		EventID:    event.ID,
		UserHandle: userHandle,
		Attendance: attendance,
		CreatedTs:  now,
		UpdatedTs:  now,
	})
	return err
}

func (s *Service) DeclareYes(ctx context.Context, userHandle, code string) error {
	return s.Declare(ctx, userHandle, code, store.AttendanceYes)
}

func (s *Service) DeclareNo(ctx context.Context, userHandle, code string) error {
	return s.Declare(ctx, userHandle, code, store.AttendanceNo)
}

func (s *Service) DeclareMaybe(ctx context.Context, userHandle, code string) error {
	return s.Declare(ctx, userHandle, code, store.AttendanceMaybe)
}

// SetReminder sets or moves the event's reminder to delta before the start.
// Owner only.
func (s *Service) SetReminder(ctx context.Context, userHandle, code string, delta time.Duration) error {
	event, err := s.getEventByCode(ctx, code)
	if err != nil {
		return err
	}
	if event.OwnerHandle != userHandle {
		return &NotPermittedToSetReminderError{Handle: userHandle, Code: code}
	}
	now := s.clock.Now()
	remindAt := time.Unix(event.StartTs, 0).Add(-delta)
	if !remindAt.After(now) {
		return &ReminderInPastError{Now: now, Requested: remindAt}
	}
	ts := remindAt.Unix()
	updatedTs := now.Unix()
	_, err = s.store.UpdateEvent(ctx, &store.UpdateEvent{
		ID:        event.ID,
		RemindTs:  &ts,
		UpdatedTs: &updatedTs,
	})
	return err
}

// ListUpcomingEvents returns the channel's events that have not started yet,
// soonest first.
func (s *Service) ListUpcomingEvents(ctx context.Context) ([]*store.Event, error) {
	after := s.clock.Now().Unix()
	return s.store.ListEvents(ctx, &store.FindEvent{
		ChannelHandle: &s.channelHandle,
		StartAfter:    &after,
	})
}

// GetEvent returns the event with the given code.
func (s *Service) GetEvent(ctx context.Context, code string) (*store.Event, error) {
	return s.getEventByCode(ctx, code)
}

// ListDeclarations returns the attendance answers for an event.
func (s *Service) ListDeclarations(ctx context.Context, code string) ([]*store.Declaration, error) {
	event, err := s.getEventByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	return s.store.ListDeclarations(ctx, &store.FindDeclaration{EventID: &event.ID})
}

func (s *Service) getEventByCode(ctx context.Context, code string) (*store.Event, error) {
	if err := ValidateEventCode(code); err != nil {
		return nil, err
	}
	event, err := s.store.GetEvent(ctx, &store.FindEvent{Code: &code, ChannelHandle: &s.channelHandle})
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, &EventNotFoundError{Code: code}
	}
	return event, nil
}
