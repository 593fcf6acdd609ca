package eventparse

// Canonical marker words produced by normalization. The pipeline stages match
// against these, never against locale words directly.
const (
	wordThis = "this"
	wordNext = "next"

	wordBefore = "before"
	wordAfter  = "after"

	wordNoon = "noon"
	wordAM   = "am"
	wordPM   = "pm"

	wordRemind = "remind"
)

var separatorWords = map[string]bool{"at": true, "in": true, "on": true}
var pointerWords = map[string]bool{wordBefore: true, wordAfter: true}
var grabberWords = map[string]bool{wordThis: true, wordNext: true}

// Lexicon holds the word tables for one locale. Keys are lowercase and
// diacritic-free (normalization folds diacritics before any lookup). Values
// are the canonical English-keyed forms the pipeline operates on. Adding a
// locale means providing another Lexicon; the pipeline stages stay untouched.
type Lexicon struct {
	// Diacritics maps locale diacritic runes to their plain replacements.
	Diacritics map[rune]rune
	// CommandWords are leading imperatives ("add", "create") dropped when
	// they open the sentence.
	CommandWords map[string]bool
	// Cardinals maps spelled-out numerals and zero-padded digit pairs to
	// unpadded digit strings.
	Cardinals map[string]string
	// TimeRelations maps prepositions and relative markers to canonical
	// separator/pointer/grabber words, possibly multi-word ("next day").
	TimeRelations map[string]string
	// TimeUnits maps unit words to canonical singular/plural unit names.
	TimeUnits map[string]string
	// Weekdays maps weekday names to canonical English weekday names.
	Weekdays map[string]string
	// RemindWords are synonyms folded to the single canonical remind marker.
	RemindWords map[string]bool
	// DayPortions maps day-portion terms to "am", "pm" or "noon".
	DayPortions map[string]string
	// Months maps month names to canonical English month names.
	Months map[string]string
	// RomanMonths maps lowercase Roman numerals to canonical month names.
	RomanMonths map[string]string
	// OrdinalsFem and OrdinalsMasc map gender-inflected ordinal numerals to
	// digit strings.
	OrdinalsFem  map[string]string
	OrdinalsMasc map[string]string
}

// FoldDiacritics rewrites every diacritic rune of word to its plain form.
func (l *Lexicon) FoldDiacritics(word string) string {
	out := make([]rune, 0, len(word))
	for _, r := range word {
		if plain, ok := l.Diacritics[r]; ok {
			r = plain
		}
		out = append(out, r)
	}
	return string(out)
}

// Weekday numbers use the Monday=0 convention shared by the weekday handlers.
var weekdayNumbers = map[string]int{
	"monday":    0,
	"tuesday":   1,
	"wednesday": 2,
	"thursday":  3,
	"friday":    4,
	"saturday":  5,
	"sunday":    6,
}

var monthNumbers = map[string]int{
	"january":   1,
	"february":  2,
	"march":     3,
	"april":     4,
	"may":       5,
	"june":      6,
	"july":      7,
	"august":    8,
	"september": 9,
	"october":   10,
	"november":  11,
	"december":  12,
}

func valueSet(m map[string]string) map[string]bool {
	set := make(map[string]bool, len(m))
	for _, v := range m {
		set[v] = true
	}
	return set
}
