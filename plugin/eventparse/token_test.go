package eventparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A bare small number is simultaneously a plausible day, month, hour and
// minute; the union is deliberate and resolved only at pattern-match time.
func TestTagger_ScalarUnions(t *testing.T) {
	tagger := newTagger(Polish)

	tests := []struct {
		word    string
		has     []Tag
		hasNot  []Tag
	}{
		{"5", []Tag{TagScalar, TagScalarDay, TagScalarMonth, TagScalarHour, TagScalarMinute}, []Tag{TagScalarYear}},
		{"25", []Tag{TagScalar, TagScalarDay, TagScalarMinute}, []Tag{TagScalarMonth, TagScalarHour}},
		{"45", []Tag{TagScalar, TagScalarMinute}, []Tag{TagScalarDay, TagScalarHour}},
		{"2023", []Tag{TagScalar, TagScalarYear}, []Tag{TagScalarDay, TagScalarHour, TagScalarMinute}},
		{"0", []Tag{TagScalar, TagScalarHour, TagScalarMinute}, []Tag{TagScalarDay, TagScalarMonth}},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			token := tagger.makeToken(tt.word)
			for _, tag := range tt.has {
				assert.True(t, token.Tags.Has(tag), "missing tag %b", tag)
			}
			for _, tag := range tt.hasNot {
				assert.False(t, token.Tags.Has(tag), "unexpected tag %b", tag)
			}
		})
	}
}

func TestTagger_Words(t *testing.T) {
	tagger := newTagger(Polish)

	tests := []struct {
		word string
		tags []Tag
	}{
		{"at", []Tag{TagSeparator}},
		{"before", []Tag{TagPointer}},
		{"next", []Tag{TagGrabber}},
		{"remind", []Tag{TagRemind}},
		{"day", []Tag{TagRepeater, TagRepeaterDay, TagRepeaterTime}},
		{"weeks", []Tag{TagRepeater, TagRepeaterWeeks, TagRepeaterTime}},
		{"saturday", []Tag{TagRepeater, TagRepeaterDayName}},
		{"august", []Tag{TagRepeater, TagRepeaterMonthName}},
		{"pm", []Tag{TagRepeater, TagRepeaterDayPortion}},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			token := tagger.makeToken(tt.word)
			for _, tag := range tt.tags {
				assert.True(t, token.Tags.Has(tag), "missing tag %b", tag)
			}
		})
	}
}

// Ordinal words are rewritten to their numeric value at tagging time and get
// the range sub-tag matching their grammatical gender.
func TestTagger_Ordinals(t *testing.T) {
	tagger := newTagger(Polish)

	fem := tagger.makeToken("osmej")
	assert.Equal(t, "8", fem.Word)
	assert.True(t, fem.Tags.Has(TagOrdinal))
	assert.True(t, fem.Tags.Has(TagOrdinalFem))
	assert.True(t, fem.Tags.Has(TagOrdinalHour))
	assert.False(t, fem.Tags.Has(TagScalar))

	masc := tagger.makeToken("dwudziestego")
	assert.Equal(t, "20", masc.Word)
	assert.True(t, masc.Tags.Has(TagOrdinalMasc))
	assert.True(t, masc.Tags.Has(TagOrdinalDay))
	assert.False(t, masc.Tags.Has(TagOrdinalMonth))
}

func TestTagger_UnknownWordIsUntagged(t *testing.T) {
	tagger := newTagger(Polish)
	token := tagger.makeToken("dota")
	require.True(t, token.Tags.Empty())
	assert.Equal(t, "dota", token.Word)
}
