package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// Store groups every repository over one connection (or one transaction).
type Store struct {
	db *gorm.DB

	Users           *UserRepository
	Courses         *CourseRepository
	Favorites       *FavoriteRepository
	TimePreferences *TimePreferenceRepository
	Matches         *BuddyMatchRepository
	Conversations   *ConversationRepository
	Messages        *MessageRepository
}

// NewStore creates a Store bound to the given DB connection.
func NewStore(database *gorm.DB) *Store {
	return &Store{
		db:              database,
		Users:           NewUserRepository(database),
		Courses:         NewCourseRepository(database),
		Favorites:       NewFavoriteRepository(database),
		TimePreferences: NewTimePreferenceRepository(database),
		Matches:         NewBuddyMatchRepository(database),
		Conversations:   NewConversationRepository(database),
		Messages:        NewMessageRepository(database),
	}
}

// Transaction runs fn against a Store bound to a single transaction.
// Returning an error from fn rolls everything back.
func (s *Store) Transaction(ctx context.Context, fn func(tx *Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewStore(tx))
	})
}

// Ping checks the underlying connection.
func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func isDuplicate(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
