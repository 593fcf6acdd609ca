package eventparse

import "time"

// Handlers are pure functions of the frozen reference instant and the
// matched token window. Date handlers return a day (only the Y/M/D fields
// are read by the assembler); time handlers return an offset from midnight.

func handleTime24(_ time.Time, window []Token) time.Duration {
	hour, minutes := wordValue(window[0].Word), wordValue(window[1].Word)
	return time.Duration(hour)*time.Hour + time.Duration(minutes)*time.Minute
}

func handleTime24Single(_ time.Time, window []Token) time.Duration {
	hour := wordValue(window[1].Word)
	return time.Duration(hour) * time.Hour
}

func handleTime24TwoDigitMinutes(_ time.Time, window []Token) time.Duration {
	hour := wordValue(window[0].Word)
	minutes := wordValue(window[1].Word) + wordValue(window[2].Word)
	return time.Duration(hour)*time.Hour + time.Duration(minutes)*time.Minute
}

func handleTimeAMPM(_ time.Time, window []Token) time.Duration {
	hour, minutes := wordValue(window[0].Word), wordValue(window[1].Word)
	if window[2].Word == wordPM {
		hour += 12
	}
	return time.Duration(hour)*time.Hour + time.Duration(minutes)*time.Minute
}

func handleTimeAMPMSingle(_ time.Time, window []Token) time.Duration {
	hour := wordValue(window[1].Word)
	if window[2].Word == wordPM {
		hour += 12
	}
	return time.Duration(hour) * time.Hour
}

func handleTimeAMPMTwoDigitMinutes(_ time.Time, window []Token) time.Duration {
	hour := wordValue(window[0].Word)
	minutes := wordValue(window[1].Word) + wordValue(window[2].Word)
	if window[3].Word == wordPM {
		hour += 12
	}
	return time.Duration(hour)*time.Hour + time.Duration(minutes)*time.Minute
}

func handleDateNextDay(now time.Time, _ []Token) time.Time {
	return now.AddDate(0, 0, 1)
}

func handleDateNextWeek(now time.Time, _ []Token) time.Time {
	return now.AddDate(0, 0, 7)
}

// handleDateDayAfterNextDay combines the pointer (±1 day) with the grabber
// (one more day when "next"): "pojutrze" lands two days out.
func handleDateDayAfterNextDay(now time.Time, window []Token) time.Time {
	pointer, grabber := window[1], window[2]
	days := -1
	if pointer.Word == wordAfter {
		days = 1
	}
	if grabber.Word == wordNext {
		days++
	}
	return now.AddDate(0, 0, days)
}

func handleDateScalarFull(now time.Time, window []Token) time.Time {
	day, month, year := wordValue(window[0].Word), wordValue(window[1].Word), wordValue(window[2].Word)
	return dateOf(year, month, day, now.Location())
}

func handleDateScalarFullReverse(now time.Time, window []Token) time.Time {
	year, month, day := wordValue(window[0].Word), wordValue(window[1].Word), wordValue(window[2].Word)
	return dateOf(year, month, day, now.Location())
}

func handleDateMonthNameFull(now time.Time, window []Token) time.Time {
	day, year := wordValue(window[0].Word), wordValue(window[2].Word)
	return dateOf(year, monthNumbers[window[1].Word], day, now.Location())
}

func handleDateDayMonthName(now time.Time, window []Token) time.Time {
	day := wordValue(window[0].Word)
	return dateOf(now.Year(), monthNumbers[window[1].Word], day, now.Location())
}

func handleDateWeekday(now time.Time, window []Token) time.Time {
	return now.AddDate(0, 0, daysUntilWeekday(now, window[0].Word))
}

// handleDateGrabberWeekday resolves "this/next <weekday>". When the literal
// weekday delta is already non-positive, the wrap to the following week is
// itself the "next" occurrence; the grabber adds a further week only when
// the literal delta was positive.
func handleDateGrabberWeekday(now time.Time, window []Token) time.Time {
	grabber, dayName := window[0], window[1]
	target := weekdayNumbers[dayName.Word]
	delta := target - mondayBasedWeekday(now)
	if delta <= 0 {
		delta += 7
	} else if grabber.Word == wordNext {
		delta += 7
	}
	return now.AddDate(0, 0, delta)
}

func handleDateWeekdayInWeek(now time.Time, window []Token) time.Time {
	return now.AddDate(0, 0, daysUntilWeekday(now, window[0].Word)+7)
}

func handleDateWeekdayInWeekReverse(now time.Time, window []Token) time.Time {
	return now.AddDate(0, 0, daysUntilWeekday(now, window[3].Word)+7)
}

func handleDateWeekdayCountWeeks(now time.Time, window []Token) time.Time {
	weeks := wordValue(window[2].Word)
	return now.AddDate(0, 0, daysUntilWeekday(now, window[0].Word)+weeks*7)
}

func handleDateWeekdayCountWeeksReverse(now time.Time, window []Token) time.Time {
	weeks := wordValue(window[1].Word)
	return now.AddDate(0, 0, daysUntilWeekday(now, window[4].Word)+weeks*7)
}

var unitDurations = map[string]time.Duration{
	"minute":  time.Minute,
	"minutes": time.Minute,
	"hour":    time.Hour,
	"hours":   time.Hour,
	"day":     24 * time.Hour,
	"days":    24 * time.Hour,
	"week":    7 * 24 * time.Hour,
	"weeks":   7 * 24 * time.Hour,
	"month":   30 * 24 * time.Hour,
	"months":  30 * 24 * time.Hour,
}

func handleReminderCountUnit(_ time.Time, window []Token) time.Duration {
	count := wordValue(window[1].Word)
	return time.Duration(count) * unitDurations[window[2].Word]
}

func handleReminderUnit(_ time.Time, window []Token) time.Duration {
	return unitDurations[window[1].Word]
}

// daysUntilWeekday is the strictly-forward distance to the named weekday:
// landing on today's weekday always advances a full week.
func daysUntilWeekday(now time.Time, dayName string) int {
	delta := weekdayNumbers[dayName] - mondayBasedWeekday(now)
	if delta <= 0 {
		delta += 7
	}
	return delta
}

// mondayBasedWeekday converts Go's Sunday=0 convention to Monday=0.
func mondayBasedWeekday(now time.Time) int {
	return (int(now.Weekday()) + 6) % 7
}

func dateOf(year, month, day int, loc *time.Location) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, loc)
}
