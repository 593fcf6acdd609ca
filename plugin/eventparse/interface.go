// Package eventparse resolves free-form natural-language sentences describing
// an event ("jutro o ósmej wieczorem", "22 lutego o 14:30") into a concrete
// date-time, an optional reminder offset, and the residual event title text.
//
// The engine is a multi-stage lexical pipeline: normalization, tokenization
// and tagging, phrase reduction, priority-ordered pattern extraction, and
// name recovery. It is purely computational: the only external input is the
// reference instant supplied by the Clock, read once per call.
package eventparse

import (
	"fmt"
	"time"
)

// Parser turns one sentence into a Result.
type Parser interface {
	Parse(text string) (*Result, error)
}

// Clock supplies the reference instant used to resolve relative expressions
// such as "jutro" or "w następną sobotę".
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a plain function to the Clock interface.
type ClockFunc func() time.Time

// Now implements Clock.
func (f ClockFunc) Now() time.Time { return f() }

// Result is the outcome of one successful parse. ReminderDelta is nil when
// the sentence carried no reminder phrase.
type Result struct {
	Name          string
	Time          time.Time
	ReminderDelta *time.Duration
}

// ParseError reports input that no pattern catalog could resolve. There is no
// distinction between ambiguous and absent: both surface as this one error.
type ParseError struct {
	Text string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("could not parse event description: %q", e.Text)
}
