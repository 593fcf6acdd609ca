package calendar

import (
	"fmt"
	"time"
)

const messageTimeLayout = "2006-01-02 15:04"

// StartMessage is the notification text sent when an event begins.
func StartMessage(name, code string) string {
	return fmt.Sprintf("Event %s (%s) is starting!", name, code)
}

// ReminderMessage is the notification text sent when a reminder fires.
func ReminderMessage(name, code string, start time.Time) string {
	return fmt.Sprintf("Reminder: Event %q (%s) starts at %s.", name, code, start.Format(messageTimeLayout))
}

// CreationMessage is the confirmation text sent after an event is created.
func CreationMessage(name, code string, start time.Time, remindAt *time.Time) string {
	message := fmt.Sprintf("Event %q (code: %s) has been created and will start at: %s.\n", name, code, start.Format(messageTimeLayout))
	if remindAt != nil {
		message += fmt.Sprintf("Participants will be reminded at %s.\n", remindAt.Format(messageTimeLayout))
	}
	message += "To declare participation, answer: Yes, No or Maybe."
	return message
}
