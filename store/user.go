package store

// User is a known channel member. Handle is the channel-level identity and is
// unique. Admins may delete anyone's events; EventCreationAllowed can be
// revoked per user.
type User struct {
	ID                   int32
	Handle               string
	Admin                bool
	EventCreationAllowed bool
	CreatedTs            int64
}

type FindUser struct {
	ID     *int32
	Handle *string
}

type UpdateUser struct {
	ID                   int32
	Admin                *bool
	EventCreationAllowed *bool
}

type DeleteUser struct {
	ID int32
}
