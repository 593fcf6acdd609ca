package store

// Event is a scheduled happening inside a single channel. Times are unix
// seconds. RemindTs is nil when no reminder was requested; the *SentTs fields
// record when the corresponding notification went out, so each fires once.
type Event struct {
	ID            int32
	UID           string
	Code          string
	ChannelHandle string
	Name          string
	OwnerHandle   string
	StartTs       int64
	RemindTs      *int64
	RemindSentTs  *int64
	StartSentTs   *int64
	CreatedTs     int64
	UpdatedTs     int64
}

type FindEvent struct {
	ID            *int32
	UID           *string
	Code          *string
	ChannelHandle *string
	OwnerHandle   *string
	StartAfter    *int64
	StartBefore   *int64
	Limit         *int
}

type UpdateEvent struct {
	ID           int32
	Name         *string
	StartTs      *int64
	RemindTs     *int64
	ClearRemind  bool
	RemindSentTs *int64
	StartSentTs  *int64
	UpdatedTs    *int64
}

type DeleteEvent struct {
	ID int32
}
