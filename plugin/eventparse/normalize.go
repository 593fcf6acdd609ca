package eventparse

import (
	"strings"
	"unicode"
)

// normalize rewrites raw input into a canonical, lowercase, diacritic-free,
// single-spaced word sequence. The step order is load-bearing: later
// substitutions must never re-match strings produced by earlier ones (all
// table keys are locale words, all values canonical English forms).
func normalize(lex *Lexicon, text string) string {
	lower := strings.ToLower(text)
	lower = strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			return r
		}
		return ' '
	}, lower)

	words := strings.Fields(lower)
	if len(words) == 0 {
		return ""
	}

	for i, word := range words {
		words[i] = lex.FoldDiacritics(word)
	}
	if lex.CommandWords[words[0]] {
		words = words[1:]
	}

	substitute := func(table map[string]string) {
		for i, word := range words {
			if canonical, ok := table[word]; ok {
				words[i] = canonical
			}
		}
	}
	substitute(lex.Cardinals)
	substitute(lex.TimeRelations)
	substitute(lex.TimeUnits)
	substitute(lex.Weekdays)
	for i, word := range words {
		if lex.RemindWords[word] {
			words[i] = wordRemind
		}
	}
	substitute(lex.DayPortions)
	substitute(lex.Months)
	substitute(lex.RomanMonths)

	return strings.Join(words, " ")
}
