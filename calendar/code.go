package calendar

import (
	"fmt"
	"strings"
	"unicode"
)

// Event codes look like "spo-17": the first three letters of the lowercased
// event name, a dash, and the per-channel sequence number. They are the
// human-facing handle users type to address an event.

const eventCodeMinLen = 5

// NewEventCode builds the code for an event name and sequence number. Names
// shorter than three runes are padded so the code always validates.
func NewEventCode(name string, number int64) string {
	prefix := []rune(strings.ToLower(name))
	if len(prefix) > 3 {
		prefix = prefix[:3]
	}
	for len(prefix) < 3 {
		prefix = append(prefix, 'x')
	}
	return fmt.Sprintf("%s-%d", string(prefix), number)
}

// ValidateEventCode checks the "xxx-N" shape: at least five characters, a
// dash after the three-rune prefix, digits to the end.
func ValidateEventCode(code string) error {
	runes := []rune(code)
	if len(runes) < eventCodeMinLen {
		return &InvalidEventCodeError{Code: code, Reason: fmt.Sprintf("shorter than %d characters", eventCodeMinLen)}
	}
	if runes[3] != '-' {
		return &InvalidEventCodeError{Code: code, Reason: `two members must be separated with "-"`}
	}
	for _, r := range runes[4:] {
		if !unicode.IsDigit(r) {
			return &InvalidEventCodeError{Code: code, Reason: `all characters after "-" must be digits`}
		}
	}
	return nil
}
