package eventparse

import (
	"strconv"
	"strings"
)

const (
	minYear = 2023
	maxYear = 2030
)

// Token is one word of the normalized sentence together with every semantic
// tag whose predicate holds for it. Tokens are immutable once tagged;
// reduction replaces token sequences instead of mutating them.
type Token struct {
	Word string
	Tags TagSet
}

// tagger attaches tags to normalized words. The membership sets are derived
// from the lexicon once, at parser construction.
type tagger struct {
	lexicon      *Lexicon
	weekdayNames map[string]bool
	monthNames   map[string]bool
	dayPortions  map[string]bool
	timeUnits    map[string]bool
}

func newTagger(lex *Lexicon) *tagger {
	return &tagger{
		lexicon:      lex,
		weekdayNames: valueSet(lex.Weekdays),
		monthNames:   valueSet(lex.Months),
		dayPortions:  valueSet(lex.DayPortions),
		timeUnits:    valueSet(lex.TimeUnits),
	}
}

// tokenize splits the normalized text on single spaces and tags every word.
// Tag sets are non-exclusive unions: every predicate that holds adds its tag.
// An unrecognized word simply ends up untagged and is treated as free text.
func (t *tagger) tokenize(normalized string) []Token {
	if normalized == "" {
		return nil
	}
	words := strings.Split(normalized, " ")
	tokens := make([]Token, 0, len(words))
	for _, word := range words {
		tokens = append(tokens, t.makeToken(word))
	}
	return tokens
}

func (t *tagger) makeToken(word string) Token {
	token := Token{Word: word}

	if separatorWords[word] {
		token.Tags = token.Tags.With(TagSeparator)
	}
	if value, ok := scalarValue(word); ok {
		token.Tags = token.Tags.With(scalarTags(value))
	}
	if pointerWords[word] {
		token.Tags = token.Tags.With(TagPointer)
	}
	if grabberWords[word] {
		token.Tags = token.Tags.With(TagGrabber)
	}
	if word == wordRemind {
		token.Tags = token.Tags.With(TagRemind)
	}
	token.Tags = token.Tags.With(t.repeaterTags(word)...)

	if numeric, ok := t.lexicon.OrdinalsFem[word]; ok {
		token.Word = numeric
		token.Tags = token.Tags.With(TagOrdinal, TagOrdinalFem)
		value, _ := strconv.Atoi(numeric)
		if isHour(value) {
			token.Tags = token.Tags.With(TagOrdinalHour)
		}
	}
	if numeric, ok := t.lexicon.OrdinalsMasc[word]; ok {
		token.Word = numeric
		token.Tags = token.Tags.With(TagOrdinal, TagOrdinalMasc)
		value, _ := strconv.Atoi(numeric)
		if isDay(value) {
			token.Tags = token.Tags.With(TagOrdinalDay)
		}
		if isMonth(value) {
			token.Tags = token.Tags.With(TagOrdinalMonth)
		}
	}
	return token
}

func (t *tagger) repeaterTags(word string) []Tag {
	var tags []Tag
	switch word {
	case "day":
		tags = append(tags, TagRepeaterDay)
	case "week":
		tags = append(tags, TagRepeaterWeek)
	case "weeks":
		tags = append(tags, TagRepeaterWeeks)
	case "month":
		tags = append(tags, TagRepeaterMonth)
	}
	if t.weekdayNames[word] {
		tags = append(tags, TagRepeaterDayName)
	}
	if t.monthNames[word] {
		tags = append(tags, TagRepeaterMonthName)
	}
	if t.dayPortions[word] {
		tags = append(tags, TagRepeaterDayPortion)
	}
	if t.timeUnits[word] {
		tags = append(tags, TagRepeaterTime)
	}
	if len(tags) > 0 {
		tags = append(tags, TagRepeater)
	}
	return tags
}

// scalarValue reports whether word is purely numeric and plausible for at
// least one calendar or clock field.
func scalarValue(word string) (int, bool) {
	if word == "" {
		return 0, false
	}
	for _, r := range word {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	value, err := strconv.Atoi(word)
	if err != nil {
		return 0, false
	}
	if isDay(value) || isMonth(value) || isYear(value) || isHour(value) || isMinute(value) {
		return value, true
	}
	return 0, false
}

func scalarTags(value int) Tag {
	tags := TagScalar
	if isMonth(value) {
		tags |= TagScalarMonth
	}
	if isDay(value) {
		tags |= TagScalarDay
	}
	if isHour(value) {
		tags |= TagScalarHour
	}
	if isMinute(value) {
		tags |= TagScalarMinute
	}
	if isYear(value) {
		tags |= TagScalarYear
	}
	return tags
}

func isDay(v int) bool    { return v > 0 && v <= 31 }
func isMonth(v int) bool  { return v > 0 && v <= 12 }
func isYear(v int) bool   { return v >= minYear && v <= maxYear }
func isHour(v int) bool   { return v < 24 }
func isMinute(v int) bool { return v < 60 }
