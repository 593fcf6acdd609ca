package calendar

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zaplanuj/terminarz/plugin/eventparse"
	"github.com/zaplanuj/terminarz/store"
)

// memStore is an in-memory Store for service tests.
type memStore struct {
	events       []*store.Event
	users        []*store.User
	declarations []*store.Declaration
	nextID       int32
	counters     map[string]int64
}

func newMemStore() *memStore {
	return &memStore{counters: map[string]int64{}}
}

func (m *memStore) nextIDValue() int32 {
	m.nextID++
	return m.nextID
}

func (m *memStore) CreateEvent(_ context.Context, create *store.Event) (*store.Event, error) {
	create.ID = m.nextIDValue()
	m.events = append(m.events, create)
	return create, nil
}

func (m *memStore) ListEvents(_ context.Context, find *store.FindEvent) ([]*store.Event, error) {
	list := make([]*store.Event, 0)
	for _, event := range m.events {
		if find.ID != nil && event.ID != *find.ID {
			continue
		}
		if find.Code != nil && event.Code != *find.Code {
			continue
		}
		if find.ChannelHandle != nil && event.ChannelHandle != *find.ChannelHandle {
			continue
		}
		if find.StartAfter != nil && event.StartTs <= *find.StartAfter {
			continue
		}
		if find.StartBefore != nil && event.StartTs > *find.StartBefore {
			continue
		}
		list = append(list, event)
	}
	return list, nil
}

func (m *memStore) GetEvent(ctx context.Context, find *store.FindEvent) (*store.Event, error) {
	list, err := m.ListEvents(ctx, find)
	if err != nil || len(list) == 0 {
		return nil, err
	}
	return list[0], nil
}

func (m *memStore) UpdateEvent(_ context.Context, update *store.UpdateEvent) (*store.Event, error) {
	for _, event := range m.events {
		if event.ID != update.ID {
			continue
		}
		if update.Name != nil {
			event.Name = *update.Name
		}
		if update.StartTs != nil {
			event.StartTs = *update.StartTs
		}
		if update.RemindTs != nil {
			event.RemindTs = update.RemindTs
			event.RemindSentTs = nil
		} else if update.ClearRemind {
			event.RemindTs = nil
			event.RemindSentTs = nil
		}
		if update.RemindSentTs != nil {
			event.RemindSentTs = update.RemindSentTs
		}
		if update.StartSentTs != nil {
			event.StartSentTs = update.StartSentTs
		}
		if update.UpdatedTs != nil {
			event.UpdatedTs = *update.UpdatedTs
		}
		return event, nil
	}
	return nil, &EventNotFoundError{}
}

func (m *memStore) DeleteEvent(_ context.Context, delete *store.DeleteEvent) error {
	for i, event := range m.events {
		if event.ID == delete.ID {
			m.events = append(m.events[:i], m.events[i+1:]...)
			return nil
		}
	}
	return &EventNotFoundError{}
}

func (m *memStore) NextEventNumber(_ context.Context, channelHandle string) (int64, error) {
	m.counters[channelHandle]++
	return m.counters[channelHandle], nil
}

func (m *memStore) CreateUser(_ context.Context, create *store.User) (*store.User, error) {
	create.ID = m.nextIDValue()
	m.users = append(m.users, create)
	return create, nil
}

func (m *memStore) GetUserByHandle(_ context.Context, handle string) (*store.User, error) {
	for _, user := range m.users {
		if user.Handle == handle {
			return user, nil
		}
	}
	return nil, nil
}

func (m *memStore) UpdateUser(_ context.Context, update *store.UpdateUser) (*store.User, error) {
	for _, user := range m.users {
		if user.ID != update.ID {
			continue
		}
		if update.Admin != nil {
			user.Admin = *update.Admin
		}
		if update.EventCreationAllowed != nil {
			user.EventCreationAllowed = *update.EventCreationAllowed
		}
		return user, nil
	}
	return nil, &UserNotFoundError{}
}

func (m *memStore) DeleteUser(_ context.Context, delete *store.DeleteUser) error {
	for i, user := range m.users {
		if user.ID == delete.ID {
			m.users = append(m.users[:i], m.users[i+1:]...)
			return nil
		}
	}
	return &UserNotFoundError{}
}

func (m *memStore) UpsertDeclaration(_ context.Context, upsert *store.Declaration) (*store.Declaration, error) {
	for _, declaration := range m.declarations {
		if declaration.EventID == upsert.EventID && declaration.UserHandle == upsert.UserHandle {
			declaration.Attendance = upsert.Attendance
			declaration.UpdatedTs = upsert.UpdatedTs
			return declaration, nil
		}
	}
	upsert.ID = m.nextIDValue()
	m.declarations = append(m.declarations, upsert)
	return upsert, nil
}

func (m *memStore) ListDeclarations(_ context.Context, find *store.FindDeclaration) ([]*store.Declaration, error) {
	list := make([]*store.Declaration, 0)
	for _, declaration := range m.declarations {
		if find.EventID != nil && declaration.EventID != *find.EventID {
			continue
		}
		if find.UserHandle != nil && declaration.UserHandle != *find.UserHandle {
			continue
		}
		if len(find.Attendances) > 0 {
			match := false
			for _, attendance := range find.Attendances {
				if declaration.Attendance == attendance {
					match = true
					break
				}
			}
			if !match {
				continue
			}
		}
		list = append(list, declaration)
	}
	return list, nil
}

func (m *memStore) DeleteDeclaration(_ context.Context, delete *store.DeleteDeclaration) error {
	kept := m.declarations[:0]
	for _, declaration := range m.declarations {
		matches := true
		if delete.EventID != nil && declaration.EventID != *delete.EventID {
			matches = false
		}
		if delete.UserHandle != nil && declaration.UserHandle != *delete.UserHandle {
			matches = false
		}
		if !matches {
			kept = append(kept, declaration)
		}
	}
	m.declarations = kept
	return nil
}

var testNow = time.Date(2023, 8, 10, 12, 0, 0, 0, time.UTC)

func newTestService(t *testing.T) (*Service, *memStore) {
	t.Helper()
	st := newMemStore()
	svc := NewService(st, &eventparse.MockParser{}, eventparse.ClockFunc(func() time.Time { return testNow }), "szachownica")

	ctx := context.Background()
	_, err := svc.AddUser(ctx, "magnus", false, true)
	require.NoError(t, err)
	_, err = svc.AddUser(ctx, "judit", false, true)
	require.NoError(t, err)
	_, err = svc.AddUser(ctx, "arbiter", true, true)
	require.NoError(t, err)
	_, err = svc.AddUser(ctx, "kibic", false, false)
	require.NoError(t, err)
	return svc, st
}

func TestService_AddEvent(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()

	event, err := svc.AddEvent(ctx, "magnus", "granie w szachy", testNow.Add(24*time.Hour), nil)
	require.NoError(t, err)
	assert.Equal(t, "gra-1", event.Code)
	assert.Equal(t, "magnus", event.OwnerHandle)
	assert.Nil(t, event.RemindTs)

	// Owner is declared YES automatically.
	declarations, err := svc.ListDeclarations(ctx, event.Code)
	require.NoError(t, err)
	require.Len(t, declarations, 1)
	assert.Equal(t, store.AttendanceYes, declarations[0].Attendance)
	assert.Equal(t, "magnus", declarations[0].UserHandle)

	// Codes advance per channel.
	second, err := svc.AddEvent(ctx, "judit", "turniej blitz", testNow.Add(48*time.Hour), nil)
	require.NoError(t, err)
	assert.Equal(t, "tur-2", second.Code)
	assert.Len(t, st.events, 2)
}

func TestService_AddEventWithReminder(t *testing.T) {
	svc, _ := newTestService(t)
	delta := 2 * time.Hour

	event, err := svc.AddEvent(context.Background(), "magnus", "granie", testNow.Add(24*time.Hour), &delta)
	require.NoError(t, err)
	require.NotNil(t, event.RemindTs)
	assert.Equal(t, testNow.Add(22*time.Hour).Unix(), *event.RemindTs)
}

func TestService_AddEventRejections(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	t.Run("event in the past", func(t *testing.T) {
		_, err := svc.AddEvent(ctx, "magnus", "granie", testNow.Add(-time.Hour), nil)
		var pastErr *EventInPastError
		require.ErrorAs(t, err, &pastErr)
		assert.Equal(t, testNow, pastErr.Now)
	})

	t.Run("event exactly now", func(t *testing.T) {
		_, err := svc.AddEvent(ctx, "magnus", "granie", testNow, nil)
		var pastErr *EventInPastError
		require.ErrorAs(t, err, &pastErr)
	})

	t.Run("reminder already due", func(t *testing.T) {
		delta := 48 * time.Hour
		_, err := svc.AddEvent(ctx, "magnus", "granie", testNow.Add(24*time.Hour), &delta)
		var remindErr *ReminderInPastError
		require.ErrorAs(t, err, &remindErr)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := svc.AddEvent(ctx, "obcy", "granie", testNow.Add(time.Hour), nil)
		var notFound *UserNotFoundError
		require.ErrorAs(t, err, &notFound)
		assert.Equal(t, "obcy", notFound.Handle)
	})

	t.Run("creation forbidden", func(t *testing.T) {
		_, err := svc.AddEvent(ctx, "kibic", "granie", testNow.Add(time.Hour), nil)
		var forbidden *CreationForbiddenError
		require.ErrorAs(t, err, &forbidden)
	})
}

func TestService_RemoveUser(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()

	event, err := svc.AddEvent(ctx, "magnus", "granie", testNow.Add(time.Hour), nil)
	require.NoError(t, err)
	require.NoError(t, svc.DeclareYes(ctx, "judit", event.Code))

	require.NoError(t, svc.RemoveUser(ctx, "judit"))

	// The declaration goes with the membership.
	declarations, err := svc.ListDeclarations(ctx, event.Code)
	require.NoError(t, err)
	require.Len(t, declarations, 1)
	assert.Equal(t, "magnus", declarations[0].UserHandle)

	var notFound *UserNotFoundError
	err = svc.DeclareYes(ctx, "judit", event.Code)
	require.ErrorAs(t, err, &notFound)

	// The member's own events stay on the calendar.
	assert.Len(t, st.events, 1)

	err = svc.RemoveUser(ctx, "obcy")
	require.ErrorAs(t, err, &notFound)
}

func TestService_CreateEventFromText(t *testing.T) {
	st := newMemStore()
	delta := time.Hour
	parser := &eventparse.MockParser{
		Result: &eventparse.Result{
			Name:          "granie w szachy",
			Time:          testNow.Add(30 * time.Hour),
			ReminderDelta: &delta,
		},
	}
	svc := NewService(st, parser, eventparse.ClockFunc(func() time.Time { return testNow }), "szachownica")
	_, err := svc.AddUser(context.Background(), "magnus", false, true)
	require.NoError(t, err)

	event, err := svc.CreateEventFromText(context.Background(), "magnus", "Dodaj granie w szachy jutro o 18:00, przypomnij godzinę wcześniej")
	require.NoError(t, err)
	assert.Equal(t, "granie w szachy", event.Name)
	assert.Equal(t, testNow.Add(30*time.Hour).Unix(), event.StartTs)
	require.NotNil(t, event.RemindTs)
	assert.Equal(t, testNow.Add(29*time.Hour).Unix(), *event.RemindTs)
}

func TestService_CreateEventFromTextParseFailure(t *testing.T) {
	st := newMemStore()
	parser := &eventparse.MockParser{Err: &eventparse.ParseError{Text: "bzdura"}}
	svc := NewService(st, parser, eventparse.ClockFunc(func() time.Time { return testNow }), "szachownica")

	_, err := svc.CreateEventFromText(context.Background(), "magnus", "bzdura")
	var parseErr *eventparse.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Empty(t, st.events)
}

func TestService_DeleteEvent(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()

	event, err := svc.AddEvent(ctx, "magnus", "granie", testNow.Add(time.Hour), nil)
	require.NoError(t, err)

	t.Run("stranger may not delete", func(t *testing.T) {
		err := svc.DeleteEvent(ctx, "judit", event.Code)
		var notPermitted *NotPermittedToDeleteError
		require.ErrorAs(t, err, &notPermitted)
		assert.Equal(t, "judit", notPermitted.Handle)
	})

	t.Run("owner deletes", func(t *testing.T) {
		require.NoError(t, svc.DeleteEvent(ctx, "magnus", event.Code))
		assert.Empty(t, st.events)
	})

	t.Run("admin deletes someone else's event", func(t *testing.T) {
		event, err := svc.AddEvent(ctx, "judit", "turniej", testNow.Add(time.Hour), nil)
		require.NoError(t, err)
		require.NoError(t, svc.DeleteEvent(ctx, "arbiter", event.Code))
	})

	t.Run("unknown code", func(t *testing.T) {
		err := svc.DeleteEvent(ctx, "magnus", "gra-999")
		var notFound *EventNotFoundError
		require.ErrorAs(t, err, &notFound)
	})

	t.Run("malformed code", func(t *testing.T) {
		err := svc.DeleteEvent(ctx, "magnus", "zle")
		var invalid *InvalidEventCodeError
		require.ErrorAs(t, err, &invalid)
	})
}

func TestService_Declare(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	event, err := svc.AddEvent(ctx, "magnus", "granie", testNow.Add(time.Hour), nil)
	require.NoError(t, err)

	require.NoError(t, svc.DeclareMaybe(ctx, "judit", event.Code))
	declarations, err := svc.ListDeclarations(ctx, event.Code)
	require.NoError(t, err)
	require.Len(t, declarations, 2)

	// Changing the answer replaces the previous declaration.
	require.NoError(t, svc.DeclareNo(ctx, "judit", event.Code))
	declarations, err = svc.ListDeclarations(ctx, event.Code)
	require.NoError(t, err)
	require.Len(t, declarations, 2)
	for _, declaration := range declarations {
		if declaration.UserHandle == "judit" {
			assert.Equal(t, store.AttendanceNo, declaration.Attendance)
		}
	}

	err = svc.Declare(ctx, "obcy", event.Code, store.AttendanceYes)
	var notFound *UserNotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestService_SetReminder(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	event, err := svc.AddEvent(ctx, "magnus", "granie", testNow.Add(24*time.Hour), nil)
	require.NoError(t, err)

	t.Run("only the owner may set it", func(t *testing.T) {
		err := svc.SetReminder(ctx, "judit", event.Code, time.Hour)
		var notPermitted *NotPermittedToSetReminderError
		require.ErrorAs(t, err, &notPermitted)
	})

	t.Run("owner sets it", func(t *testing.T) {
		require.NoError(t, svc.SetReminder(ctx, "magnus", event.Code, 2*time.Hour))
		stored, err := svc.GetEvent(ctx, event.Code)
		require.NoError(t, err)
		require.NotNil(t, stored.RemindTs)
		assert.Equal(t, testNow.Add(22*time.Hour).Unix(), *stored.RemindTs)
	})

	t.Run("moving it re-arms a sent reminder", func(t *testing.T) {
		sent := testNow.Unix()
		_, err := svc.store.UpdateEvent(ctx, &store.UpdateEvent{ID: event.ID, RemindSentTs: &sent})
		require.NoError(t, err)
		require.NoError(t, svc.SetReminder(ctx, "magnus", event.Code, time.Hour))
		stored, err := svc.GetEvent(ctx, event.Code)
		require.NoError(t, err)
		assert.Nil(t, stored.RemindSentTs)
	})

	t.Run("reminder in the past", func(t *testing.T) {
		err := svc.SetReminder(ctx, "magnus", event.Code, 48*time.Hour)
		var remindErr *ReminderInPastError
		require.ErrorAs(t, err, &remindErr)
	})
}

func TestService_ListUpcomingEvents(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	past := &store.Event{
		UID: "past", Code: "sta-9", ChannelHandle: "szachownica",
		Name: "stare granie", OwnerHandle: "magnus", StartTs: testNow.Add(-time.Hour).Unix(),
	}
	_, err := svc.store.CreateEvent(ctx, past)
	require.NoError(t, err)
	_, err = svc.AddEvent(ctx, "magnus", "granie", testNow.Add(time.Hour), nil)
	require.NoError(t, err)

	upcoming, err := svc.ListUpcomingEvents(ctx)
	require.NoError(t, err)
	require.Len(t, upcoming, 1)
	assert.Equal(t, "granie", upcoming[0].Name)
}
