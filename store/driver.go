package store

import (
	"context"
	"database/sql"
)

// Driver is an interface for store driver.
// It contains all methods that store database driver should implement.
type Driver interface {
	GetDB() *sql.DB
	Close() error

	IsInitialized(ctx context.Context) (bool, error)

	// Event model related methods.
	CreateEvent(ctx context.Context, create *Event) (*Event, error)
	ListEvents(ctx context.Context, find *FindEvent) ([]*Event, error)
	UpdateEvent(ctx context.Context, update *UpdateEvent) (*Event, error)
	DeleteEvent(ctx context.Context, delete *DeleteEvent) error

	// NextEventNumber advances and returns the per-channel event counter used
	// for human-readable event codes.
	NextEventNumber(ctx context.Context, channelHandle string) (int64, error)

	// User model related methods.
	CreateUser(ctx context.Context, create *User) (*User, error)
	ListUsers(ctx context.Context, find *FindUser) ([]*User, error)
	UpdateUser(ctx context.Context, update *UpdateUser) (*User, error)
	DeleteUser(ctx context.Context, delete *DeleteUser) error

	// Declaration model related methods.
	UpsertDeclaration(ctx context.Context, upsert *Declaration) (*Declaration, error)
	ListDeclarations(ctx context.Context, find *FindDeclaration) ([]*Declaration, error)
	DeleteDeclaration(ctx context.Context, delete *DeleteDeclaration) error
}
