package store

type Attendance string

const (
	AttendanceYes   Attendance = "YES"
	AttendanceNo    Attendance = "NO"
	AttendanceMaybe Attendance = "MAYBE"
)

// Declaration records one user's attendance answer for one event. A user has
// at most one declaration per event; changing the answer upserts in place.
type Declaration struct {
	ID         int32
	EventID    int32
	UserHandle string
	Attendance Attendance
	CreatedTs  int64
	UpdatedTs  int64
}

type FindDeclaration struct {
	EventID     *int32
	UserHandle  *string
	Attendances []Attendance
}

type DeleteDeclaration struct {
	EventID    *int32
	UserHandle *string
}
