package eventparse

import "strconv"

// reducerRule merges two adjacent tokens into one. Rules run as an ordered
// pipeline, each to local fixpoint over the whole sequence before the next
// begins. Phrase coalescing must precede numeral compounding: an ordinal's
// neighbor has to still carry its tag, not have been absorbed into an
// untagged run.
type reducerRule interface {
	match(first, second Token) bool
	reduce(first, second Token) Token
}

var reducerPipeline = []reducerRule{
	separatorNoTagReducer{},
	noTagReducer{},
	dayPortionReducer{},
	mascOrdinalReducer{},
	femOrdinalReducer{},
}

// reduce applies the reducer pipeline. After a merge the scan stays on the
// merged token, so runs of three or more mergeable tokens coalesce fully
// within a single rule pass.
func reduce(tokens []Token) []Token {
	for _, rule := range reducerPipeline {
		for i := 0; i+1 < len(tokens); {
			if !rule.match(tokens[i], tokens[i+1]) {
				i++
				continue
			}
			merged := rule.reduce(tokens[i], tokens[i+1])
			tokens[i] = merged
			tokens = append(tokens[:i+1], tokens[i+2:]...)
		}
	}
	return tokens
}

// separatorNoTagReducer merges a separator with a following untagged token
// into one untagged token, recovering free-text spans that start with a
// preposition ("na Google Meet").
type separatorNoTagReducer struct{}

func (separatorNoTagReducer) match(first, second Token) bool {
	return first.Tags.Has(TagSeparator) && second.Tags.Empty()
}

func (separatorNoTagReducer) reduce(first, second Token) Token {
	return Token{Word: first.Word + " " + second.Word}
}

// noTagReducer coalesces adjacent untagged tokens into one free-text token.
type noTagReducer struct{}

func (noTagReducer) match(first, second Token) bool {
	return first.Tags.Empty() && second.Tags.Empty()
}

func (noTagReducer) reduce(first, second Token) Token {
	return Token{Word: first.Word + " " + second.Word}
}

// dayPortionReducer turns "before noon" into am and "after noon" into pm.
type dayPortionReducer struct{}

func (dayPortionReducer) match(first, second Token) bool {
	return first.Tags.Has(TagPointer) && second.Tags.Has(TagRepeaterDayPortion)
}

func (dayPortionReducer) reduce(first, second Token) Token {
	if second.Word == wordNoon {
		switch first.Word {
		case wordBefore:
			return Token{Word: wordAM, Tags: TagSet(0).With(TagRepeaterDayPortion)}
		case wordAfter:
			return Token{Word: wordPM, Tags: TagSet(0).With(TagRepeaterDayPortion)}
		}
	}
	// Unrecognized combination: keep the portion, drop the pointer.
	return second
}

// mascOrdinalReducer compounds a tens masculine ordinal (20 or 30) with a
// units one (1-9) into a single ordinal day-of-month token, e.g.
// "dwudziesty pierwszy" = 21st.
type mascOrdinalReducer struct{}

func (mascOrdinalReducer) match(first, second Token) bool {
	return first.Tags.Has(TagOrdinalMasc) && second.Tags.Has(TagOrdinalMasc) &&
		isTensPart(first.Word) && isUnitsPart(second.Word)
}

func (mascOrdinalReducer) reduce(first, second Token) Token {
	sum := wordValue(first.Word) + wordValue(second.Word)
	token := Token{Word: strconv.Itoa(sum), Tags: TagSet(0).With(TagOrdinal, TagOrdinalMasc)}
	if isDay(sum) {
		token.Tags = token.Tags.With(TagOrdinalDay)
	}
	if isMonth(sum) {
		token.Tags = token.Tags.With(TagOrdinalMonth)
	}
	return token
}

// femOrdinalReducer is the feminine counterpart, producing an ordinal hour,
// e.g. "dwudziesta pierwsza" = 21:00.
type femOrdinalReducer struct{}

func (femOrdinalReducer) match(first, second Token) bool {
	return first.Tags.Has(TagOrdinalFem) && second.Tags.Has(TagOrdinalFem) &&
		isTensPart(first.Word) && isUnitsPart(second.Word)
}

func (femOrdinalReducer) reduce(first, second Token) Token {
	sum := wordValue(first.Word) + wordValue(second.Word)
	token := Token{Word: strconv.Itoa(sum), Tags: TagSet(0).With(TagOrdinal, TagOrdinalFem)}
	if isHour(sum) {
		token.Tags = token.Tags.With(TagOrdinalHour)
	}
	return token
}

func isTensPart(word string) bool {
	v := wordValue(word)
	return v == 20 || v == 30
}

func isUnitsPart(word string) bool {
	v := wordValue(word)
	return v > 0 && v < 10
}

func wordValue(word string) int {
	v, _ := strconv.Atoi(word)
	return v
}
