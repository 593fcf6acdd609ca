package eventparse

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(t time.Time) Clock {
	return ClockFunc(func() time.Time { return t })
}

func TestPolishParser_Times(t *testing.T) {
	now := time.Date(2023, 8, 10, 0, 0, 0, 0, time.UTC)
	parser := NewPolishParser(fixedClock(now))

	tests := []struct {
		name  string
		input string
		want  string // "2006-01-02 15:04"
	}{
		{"next day with pm portion", "Konferencja głosowa na Google Meet. Jutro o ósmej trzydzieści pięć po południu", "2023-08-11 20:35"},
		{"next day with 24h clock", "Granie w Dotę jutro o 21:37", "2023-08-11 21:37"},
		{"next week with bare hour", "Spotkanie na głosowym za tydzień o 20", "2023-08-17 20:00"},
		{"day after next with morning", "Telefon pojutrze o 8 rano", "2023-08-12 08:00"},
		{"compound ordinal hour", "Ważne wydarzenie, jutro o dwudziestej pierwszej", "2023-08-11 21:00"},
		{"ordinal hour with single minute", "Ważne wydarzenie, jutro o dwudziestej jeden", "2023-08-11 20:01"},
		{"month name full date", "Spotkanie biznesowe 19 września 2023 o 14", "2023-09-19 14:00"},
		{"dotted date format", "Kurs angielskiego 20.08.2023, 10.30", "2023-08-20 10:30"},
		{"slash date format", "Kurs angielskiego 20/8/2023 10:30", "2023-08-20 10:30"},
		{"month as word without year", "Kurs angielskiego 20 sierpnia 10:30", "2023-08-20 10:30"},
		{"bare weekday name", "Impreza w sobotę o dwudziestej pierwszej", "2023-08-12 21:00"},
		{"next weekday", "Impreza w następną sobotę o 21", "2023-08-19 21:00"},
		{"weekday next week", "Impreza w sobotę za tydzień o 21", "2023-08-19 21:00"},
		{"weekday next week reversed", "Impreza za tydzień w sobotę o 21:00", "2023-08-19 21:00"},
		{"weekday in counted weeks", "Impreza w sobotę za 2 tygodnie o 21:00", "2023-08-26 21:00"},
		{"weekday in counted weeks reversed", "Impreza o 21:00 za dwa tygodnie w sobotę", "2023-08-26 21:00"},
		{"greedy digit grouping", "Start nocnej zmiany, 31.12.2023 23:45", "2023-12-31 23:45"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parser.Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Time.Format("2006-01-02 15:04"))
		})
	}
}

func TestPolishParser_Names(t *testing.T) {
	now := time.Date(2023, 8, 10, 0, 0, 0, 0, time.UTC)
	parser := NewPolishParser(fixedClock(now))

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"casing and diacritics recovered", "Konferencja głosowa o zgłoszeniach na Google Meet, jutro o ósmej trzydzieści pięć po południu", "Konferencja głosowa o zgłoszeniach na Google Meet"},
		{"trailing comma stripped", "Kurs angielskiego 20.08.2023, 10.30", "Kurs angielskiego"},
		{"leading command word dropped", "Dodaj spotkanie zespołu jutro o 18:30", "spotkanie zespołu"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parser.Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Name)
		})
	}
}

func TestPolishParser_Reminders(t *testing.T) {
	now := time.Date(2023, 8, 10, 0, 0, 0, 0, time.UTC)
	parser := NewPolishParser(fixedClock(now))

	tests := []struct {
		name     string
		input    string
		wantTime string
		want     time.Duration
	}{
		{"counted hours before", "Spotkanie zespołu jutro o 18, przypomnij 2 godziny wcześniej", "2023-08-11 18:00", 2 * time.Hour},
		{"counted minutes", "Wyjazd jutro o 9, powiadom 15 minut przed", "2023-08-11 09:00", 15 * time.Minute},
		{"bare unit defaults to one", "Wyjazd w piątek o 9 rano, powiadom godzinę wcześniej", "2023-08-11 09:00", time.Hour},
		{"counted days before", "Urodziny 20.08.2023 o 12, przypomnij 2 dni wcześniej", "2023-08-20 12:00", 48 * time.Hour},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parser.Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.wantTime, got.Time.Format("2006-01-02 15:04"))
			require.NotNil(t, got.ReminderDelta)
			assert.Equal(t, tt.want, *got.ReminderDelta)
		})
	}

	t.Run("no reminder phrase leaves delta nil", func(t *testing.T) {
		got, err := parser.Parse("Granie w Dotę jutro o 21:37")
		require.NoError(t, err)
		assert.Nil(t, got.ReminderDelta)
	})
}

// The explicit "next" grabber forces a full extra week only when the literal
// weekday delta has not already wrapped: on a Saturday, "next Saturday" is
// seven days out, not fourteen.
func TestPolishParser_NextWeekdayOnSameWeekday(t *testing.T) {
	now := time.Date(2023, 8, 19, 19, 0, 0, 0, time.UTC) // a Saturday
	parser := NewPolishParser(fixedClock(now))

	got, err := parser.Parse("Gierki w następną sobotę o 21")
	require.NoError(t, err)
	assert.Equal(t, "2023-08-26 21:00", got.Time.Format("2006-01-02 15:04"))
}

func TestPolishParser_WeekdayNeverResolvesToToday(t *testing.T) {
	now := time.Date(2023, 8, 12, 8, 0, 0, 0, time.UTC) // a Saturday
	parser := NewPolishParser(fixedClock(now))

	got, err := parser.Parse("Impreza w sobotę o 21")
	require.NoError(t, err)
	assert.Equal(t, "2023-08-19 21:00", got.Time.Format("2006-01-02 15:04"))
}

func TestPolishParser_Failures(t *testing.T) {
	now := time.Date(2023, 8, 10, 0, 0, 0, 0, time.UTC)
	parser := NewPolishParser(fixedClock(now))

	tests := []struct {
		name  string
		input string
	}{
		{"no date or time at all", "Zupełnie zwyczajne zdanie bez terminu"},
		{"time but no date", "Spotkanie o 18:30"},
		{"date but no time", "Spotkanie jutro"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parser.Parse(tt.input)
			require.Error(t, err)
			var parseErr *ParseError
			require.ErrorAs(t, err, &parseErr)
			assert.Equal(t, tt.input, parseErr.Text)
		})
	}
}

func TestPolishParser_TimeRangesAreValid(t *testing.T) {
	now := time.Date(2023, 8, 10, 0, 0, 0, 0, time.UTC)
	parser := NewPolishParser(fixedClock(now))

	inputs := []string{
		"Spotkanie jutro o 23:59",
		"Spotkanie jutro o ósmej wieczorem",
		"Spotkanie jutro o dwunastej",
		"Spotkanie jutro o 0:30",
	}
	for _, input := range inputs {
		got, err := parser.Parse(input)
		require.NoError(t, err, input)
		assert.GreaterOrEqual(t, got.Time.Hour(), 0, input)
		assert.LessOrEqual(t, got.Time.Hour(), 23, input)
		assert.GreaterOrEqual(t, got.Time.Minute(), 0, input)
		assert.LessOrEqual(t, got.Time.Minute(), 59, input)
	}
}
