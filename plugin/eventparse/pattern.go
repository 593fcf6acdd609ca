package eventparse

import "time"

// catalogEntry pairs a named tag-sequence pattern with its handler. A pattern
// matches a contiguous token window of the same length where, positionally,
// each tag is present in the corresponding token's tag set.
type catalogEntry[T any] struct {
	name    string
	seq     []Tag
	handler func(now time.Time, window []Token) T
}

// catalog is an ordered list of entries. The declared order IS the
// disambiguation priority: it is checked before window position, and the
// first match wins outright. Never replace this with a map; unspecified
// iteration order would break the priority rule.
type catalog[T any] []catalogEntry[T]

// extract scans entries in declared order and, per entry, window start
// positions left to right. On the first match it removes the window, invokes
// the handler with the frozen reference instant, and returns. When nothing
// matches the token list is returned unchanged.
func (c catalog[T]) extract(now time.Time, tokens []Token) (T, []Token, bool) {
	for _, entry := range c {
		for start := 0; start+len(entry.seq) <= len(tokens); start++ {
			if !windowMatches(entry.seq, tokens[start:start+len(entry.seq)]) {
				continue
			}
			window := tokens[start : start+len(entry.seq)]
			value := entry.handler(now, window)
			remaining := make([]Token, 0, len(tokens)-len(entry.seq))
			remaining = append(remaining, tokens[:start]...)
			remaining = append(remaining, tokens[start+len(entry.seq):]...)
			return value, remaining, true
		}
	}
	var zero T
	return zero, tokens, false
}

func windowMatches(seq []Tag, window []Token) bool {
	for i, tag := range seq {
		if !window[i].Tags.Has(tag) {
			return false
		}
	}
	return true
}

// Time-of-day patterns. "Two-digit minutes" covers minutes spelled as a tens
// word plus a units word ("trzydzieści pięć"), summed by the handler.
var unequivocalTimeCatalog = catalog[time.Duration]{
	{"ampm-ordinal", []Tag{TagOrdinalHour, TagScalarMinute, TagRepeaterDayPortion}, handleTimeAMPM},
	{"ampm-scalar", []Tag{TagScalarHour, TagScalarMinute, TagRepeaterDayPortion}, handleTimeAMPM},
	{"ampm-ordinal-two-digit-minutes", []Tag{TagOrdinalHour, TagScalarMinute, TagScalarMinute, TagRepeaterDayPortion}, handleTimeAMPMTwoDigitMinutes},
	{"ampm-scalar-two-digit-minutes", []Tag{TagScalarHour, TagScalarMinute, TagScalarMinute, TagRepeaterDayPortion}, handleTimeAMPMTwoDigitMinutes},
	{"24-ordinal", []Tag{TagOrdinalHour, TagScalarMinute}, handleTime24},
	{"24-scalar", []Tag{TagScalarHour, TagScalarMinute}, handleTime24},
	{"24-scalar-two-digit-minutes", []Tag{TagScalarHour, TagScalarMinute, TagScalarMinute}, handleTime24TwoDigitMinutes},
	{"24-ordinal-two-digit-minutes", []Tag{TagOrdinalHour, TagScalarMinute, TagScalarMinute}, handleTime24TwoDigitMinutes},
}

// Ambiguous time patterns: a bare "at 8" is legitimate on its own but more
// likely a fragment of a longer expression, so these run only after every
// unequivocal pattern failed.
var ambiguousTimeCatalog = catalog[time.Duration]{
	{"ampm-single-scalar", []Tag{TagSeparator, TagScalarHour, TagRepeaterDayPortion}, handleTimeAMPMSingle},
	{"ampm-single-ordinal", []Tag{TagSeparator, TagOrdinalHour, TagRepeaterDayPortion}, handleTimeAMPMSingle},
	{"24-single-scalar", []Tag{TagSeparator, TagScalarHour}, handleTime24Single},
	{"24-single-ordinal", []Tag{TagSeparator, TagOrdinalHour}, handleTime24Single},
}

var unequivocalDateCatalog = catalog[time.Time]{
	{"day-after-next-day", []Tag{TagRepeaterDay, TagPointer, TagGrabber, TagRepeaterDay}, handleDateDayAfterNextDay},
	{"scalar-full", []Tag{TagScalarDay, TagScalarMonth, TagScalarYear}, handleDateScalarFull},
	{"scalar-full-reverse", []Tag{TagScalarYear, TagScalarMonth, TagScalarDay}, handleDateScalarFullReverse},
	{"month-name-full", []Tag{TagScalarDay, TagRepeaterMonthName, TagScalarYear}, handleDateMonthNameFull},
	{"next-week-day", []Tag{TagGrabber, TagRepeaterDayName}, handleDateGrabberWeekday},
	{"week-day-next-week", []Tag{TagRepeaterDayName, TagSeparator, TagRepeaterWeek}, handleDateWeekdayInWeek},
	{"week-day-next-week-reverse", []Tag{TagSeparator, TagRepeaterWeek, TagSeparator, TagRepeaterDayName}, handleDateWeekdayInWeekReverse},
	{"week-day-count-weeks", []Tag{TagRepeaterDayName, TagSeparator, TagScalar, TagRepeaterWeeks}, handleDateWeekdayCountWeeks},
	{"week-day-count-weeks-reverse", []Tag{TagSeparator, TagScalar, TagRepeaterWeeks, TagSeparator, TagRepeaterDayName}, handleDateWeekdayCountWeeksReverse},
}

var ambiguousDateCatalog = catalog[time.Time]{
	{"next-day", []Tag{TagGrabber, TagRepeaterDay}, handleDateNextDay},
	{"scalar", []Tag{TagScalarDay, TagRepeaterMonthName}, handleDateDayMonthName},
	{"ordinal", []Tag{TagOrdinalDay, TagRepeaterMonthName}, handleDateDayMonthName},
	{"week-day", []Tag{TagRepeaterDayName}, handleDateWeekday},
	{"next-week", []Tag{TagSeparator, TagRepeaterWeek}, handleDateNextWeek},
}

// Reminder-offset patterns: a time-unit-counted offset anchored on the
// canonical remind marker. The unequivocal pass runs before the date pass so
// looser date/time patterns cannot steal the counted offset.
var unequivocalReminderCatalog = catalog[time.Duration]{
	{"remind-count-unit-before", []Tag{TagRemind, TagScalar, TagRepeaterTime, TagPointer}, handleReminderCountUnit},
	{"remind-count-unit", []Tag{TagRemind, TagScalar, TagRepeaterTime}, handleReminderCountUnit},
}

var ambiguousReminderCatalog = catalog[time.Duration]{
	{"remind-unit-before", []Tag{TagRemind, TagRepeaterTime, TagPointer}, handleReminderUnit},
	{"remind-unit", []Tag{TagRemind, TagRepeaterTime}, handleReminderUnit},
}
