package eventparse

// Tag is a semantic category attachable to a token. A token may carry several
// tags at once: a bare "5" is simultaneously a plausible day, month, hour and
// minute value. Disambiguation happens at pattern-match time, never here.
type Tag uint32

const (
	TagSeparator Tag = 1 << iota

	TagScalar
	TagScalarHour
	TagScalarMinute
	TagScalarDay
	TagScalarMonth
	TagScalarYear

	TagPointer
	TagGrabber
	TagRemind

	TagRepeater
	TagRepeaterDay
	TagRepeaterWeek
	TagRepeaterWeeks
	TagRepeaterMonth
	TagRepeaterDayName
	TagRepeaterMonthName
	TagRepeaterDayPortion
	TagRepeaterTime

	TagOrdinal
	TagOrdinalFem
	TagOrdinalMasc
	TagOrdinalDay
	TagOrdinalMonth
	TagOrdinalHour
)

// TagSet is a bitset of Tags.
type TagSet uint32

// Has reports whether every bit of t is present in the set.
func (s TagSet) Has(t Tag) bool { return uint32(s)&uint32(t) == uint32(t) }

// Empty reports whether no tag is attached.
func (s TagSet) Empty() bool { return s == 0 }

// With returns the set extended by the given tags.
func (s TagSet) With(tags ...Tag) TagSet {
	for _, t := range tags {
		s |= TagSet(t)
	}
	return s
}
