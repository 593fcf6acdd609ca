package store

import (
	"context"
	"time"

	"github.com/zaplanuj/terminarz/internal/profile"
	"github.com/zaplanuj/terminarz/store/cache"
)

// Store provides database access to all raw objects.
type Store struct {
	profile *profile.Profile
	driver  Driver

	// Cache for users; they are read on almost every command.
	userCache *cache.Cache
}

// New creates a new instance of Store.
func New(driver Driver, profile *profile.Profile) *Store {
	return &Store{
		driver:  driver,
		profile: profile,
		userCache: cache.New(cache.Config{
			DefaultTTL:      10 * time.Minute,
			CleanupInterval: 5 * time.Minute,
			MaxItems:        1000,
		}),
	}
}

func (s *Store) GetDriver() Driver {
	return s.driver
}

func (s *Store) Close() error {
	s.userCache.Close()
	return s.driver.Close()
}

func (s *Store) CreateEvent(ctx context.Context, create *Event) (*Event, error) {
	return s.driver.CreateEvent(ctx, create)
}

func (s *Store) ListEvents(ctx context.Context, find *FindEvent) ([]*Event, error) {
	return s.driver.ListEvents(ctx, find)
}

// GetEvent returns the single event matching find, or nil when none does.
func (s *Store) GetEvent(ctx context.Context, find *FindEvent) (*Event, error) {
	list, err := s.driver.ListEvents(ctx, find)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, nil
	}
	return list[0], nil
}

func (s *Store) UpdateEvent(ctx context.Context, update *UpdateEvent) (*Event, error) {
	return s.driver.UpdateEvent(ctx, update)
}

func (s *Store) DeleteEvent(ctx context.Context, delete *DeleteEvent) error {
	return s.driver.DeleteEvent(ctx, delete)
}

func (s *Store) NextEventNumber(ctx context.Context, channelHandle string) (int64, error) {
	return s.driver.NextEventNumber(ctx, channelHandle)
}

func (s *Store) CreateUser(ctx context.Context, create *User) (*User, error) {
	user, err := s.driver.CreateUser(ctx, create)
	if err != nil {
		return nil, err
	}
	s.userCache.Set(ctx, user.Handle, user)
	return user, nil
}

func (s *Store) ListUsers(ctx context.Context, find *FindUser) ([]*User, error) {
	return s.driver.ListUsers(ctx, find)
}

// GetUserByHandle returns the user with the given handle, or nil when the
// handle is unknown. Hits the cache first.
func (s *Store) GetUserByHandle(ctx context.Context, handle string) (*User, error) {
	if cached, ok := s.userCache.Get(ctx, handle); ok {
		if user, ok := cached.(*User); ok {
			return user, nil
		}
	}
	list, err := s.driver.ListUsers(ctx, &FindUser{Handle: &handle})
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, nil
	}
	s.userCache.Set(ctx, handle, list[0])
	return list[0], nil
}

func (s *Store) UpdateUser(ctx context.Context, update *UpdateUser) (*User, error) {
	user, err := s.driver.UpdateUser(ctx, update)
	if err != nil {
		return nil, err
	}
	s.userCache.Set(ctx, user.Handle, user)
	return user, nil
}

func (s *Store) DeleteUser(ctx context.Context, delete *DeleteUser) error {
	users, err := s.driver.ListUsers(ctx, &FindUser{ID: &delete.ID})
	if err == nil {
		for _, user := range users {
			s.userCache.Delete(ctx, user.Handle)
		}
	}
	return s.driver.DeleteUser(ctx, delete)
}

func (s *Store) UpsertDeclaration(ctx context.Context, upsert *Declaration) (*Declaration, error) {
	return s.driver.UpsertDeclaration(ctx, upsert)
}

func (s *Store) ListDeclarations(ctx context.Context, find *FindDeclaration) ([]*Declaration, error) {
	return s.driver.ListDeclarations(ctx, find)
}

func (s *Store) DeleteDeclaration(ctx context.Context, delete *DeleteDeclaration) error {
	return s.driver.DeleteDeclaration(ctx, delete)
}
