package eventparse

import (
	"strings"
	"time"
	"unicode"
)

// PolishParser is the Polish-locale Parser. Each call is independent and
// reentrant; the reference instant is read from the clock once per call and
// held fixed for the whole pipeline.
type PolishParser struct {
	lexicon *Lexicon
	tagger  *tagger
	clock   Clock
}

// NewPolishParser creates a parser resolving relative expressions against the
// given clock.
func NewPolishParser(clock Clock) *PolishParser {
	return &PolishParser{
		lexicon: Polish,
		tagger:  newTagger(Polish),
		clock:   clock,
	}
}

// Parse runs the full pipeline: normalize, tokenize and tag, reduce, extract
// reminder/date/time, recover the event name from the leftover free text.
func (p *PolishParser) Parse(text string) (*Result, error) {
	now := p.clock.Now()

	normalized := normalize(p.lexicon, text)
	tokens := reduce(p.tagger.tokenize(normalized))

	tagged := make([]Token, 0, len(tokens))
	untagged := make([]Token, 0, 1)
	for _, token := range tokens {
		if token.Tags.Empty() {
			untagged = append(untagged, token)
		} else {
			tagged = append(tagged, token)
		}
	}

	// The reminder pass runs first: its marker is unambiguous, and running
	// it early keeps counted offsets out of reach of the looser time
	// patterns. An absent reminder phrase is not an error.
	reminder, tagged, haveReminder := unequivocalReminderCatalog.extract(now, tagged)
	if !haveReminder {
		reminder, tagged, haveReminder = ambiguousReminderCatalog.extract(now, tagged)
	}

	day, tagged, haveDate := unequivocalDateCatalog.extract(now, tagged)
	offset, tagged, haveTime := unequivocalTimeCatalog.extract(now, tagged)
	if !haveDate {
		day, tagged, haveDate = ambiguousDateCatalog.extract(now, tagged)
	}
	if !haveTime {
		offset, _, haveTime = ambiguousTimeCatalog.extract(now, tagged)
	}
	if !haveDate || !haveTime {
		return nil, &ParseError{Text: text}
	}

	name, err := resolveName(p.lexicon, untagged, text)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Name: name,
		Time: time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, now.Location()).Add(offset),
	}
	if haveReminder {
		result.ReminderDelta = &reminder
	}
	return result, nil
}

// resolveName recovers the original-cased substring matching an untagged
// token. It rebuilds prefixes of the pre-normalization text word by word and
// accepts the first prefix whose re-normalized form equals the token's word,
// recovering casing and diacritics lost during normalization.
func resolveName(lex *Lexicon, untagged []Token, original string) (string, error) {
	words := strings.Split(original, " ")
	// The normalizer drops a leading command word; drop it here too so the
	// recovered name starts where the normalized text did.
	if len(words) > 0 && lex.CommandWords[lex.FoldDiacritics(strings.ToLower(words[0]))] {
		words = words[1:]
	}
	for _, token := range untagged {
		prefix := ""
		for _, word := range words {
			if prefix == "" {
				prefix = word
			} else {
				prefix += " " + word
			}
			if normalize(lex, prefix) == token.Word {
				return trimTrailingSpecial(prefix), nil
			}
		}
	}
	return "", &ParseError{Text: original}
}

// trimTrailingSpecial drops a single trailing non-alphanumeric character,
// typically the comma or period that separated the title from the date part.
func trimTrailingSpecial(text string) string {
	runes := []rune(text)
	if len(runes) == 0 {
		return text
	}
	if last := runes[len(runes)-1]; !unicode.IsLetter(last) && !unicode.IsDigit(last) {
		return string(runes[:len(runes)-1])
	}
	return text
}
