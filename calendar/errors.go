package calendar

import (
	"fmt"
	"time"
)

// EventInPastError reports an attempt to schedule an event at or before the
// current time.
type EventInPastError struct {
	Now       time.Time
	Requested time.Time
}

func (e *EventInPastError) Error() string {
	return fmt.Sprintf("event time %s is not in the future (now %s)", e.Requested.Format(time.RFC3339), e.Now.Format(time.RFC3339))
}

// ReminderInPastError reports a reminder that would already have fired.
type ReminderInPastError struct {
	Now       time.Time
	Requested time.Time
}

func (e *ReminderInPastError) Error() string {
	return fmt.Sprintf("reminder time %s is not in the future (now %s)", e.Requested.Format(time.RFC3339), e.Now.Format(time.RFC3339))
}

type EventNotFoundError struct {
	Code string
}

func (e *EventNotFoundError) Error() string {
	return fmt.Sprintf("event %q not found", e.Code)
}

type UserNotFoundError struct {
	Handle string
}

func (e *UserNotFoundError) Error() string {
	return fmt.Sprintf("user %q not found", e.Handle)
}

// NotPermittedToDeleteError reports a delete attempt by someone who is
// neither the event owner nor an admin.
type NotPermittedToDeleteError struct {
	Handle string
	Code   string
}

func (e *NotPermittedToDeleteError) Error() string {
	return fmt.Sprintf("user %q is not permitted to delete event %q", e.Handle, e.Code)
}

// NotPermittedToSetReminderError reports a reminder change by a non-owner.
type NotPermittedToSetReminderError struct {
	Handle string
	Code   string
}

func (e *NotPermittedToSetReminderError) Error() string {
	return fmt.Sprintf("user %q is not permitted to set a reminder for event %q", e.Handle, e.Code)
}

// CreationForbiddenError reports an event creation attempt by a user whose
// creation right was revoked.
type CreationForbiddenError struct {
	Handle string
}

func (e *CreationForbiddenError) Error() string {
	return fmt.Sprintf("user %q is forbidden from creating events", e.Handle)
}

// InvalidEventCodeError reports a malformed event code.
type InvalidEventCodeError struct {
	Code   string
	Reason string
}

func (e *InvalidEventCodeError) Error() string {
	return fmt.Sprintf("invalid event code %q: %s", e.Code, e.Reason)
}
