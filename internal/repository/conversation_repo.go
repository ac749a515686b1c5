package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/oggyb/golf-buddy/internal/db"
	svcErr "github.com/oggyb/golf-buddy/internal/errors"
)

// ConversationRepository is the only writer of conversation rows.
type ConversationRepository struct {
	db *gorm.DB
}

func NewConversationRepository(database *gorm.DB) *ConversationRepository {
	return &ConversationRepository{db: database}
}

// GetOrCreate returns the conversation for the unordered pair {a, b},
// inserting it when missing. created reports whether this call inserted it.
//
// Behavior:
//   - The pair is normalized first, so (a, b) and (b, a) hit the same row.
//   - The insert runs in a nested transaction (a savepoint when already in
//     one). If a concurrent caller wins the unique index, the savepoint is
//     rolled back and the winner's row is returned instead. That re-read
//     is a locking read so it sees the committed winner even inside an outer
//     REPEATABLE READ transaction whose snapshot predates it.
func (r *ConversationRepository) GetOrCreate(ctx context.Context, a, b uint64) (conv *db.Conversation, created bool, err error) {
	lo, hi := db.NormalizePair(a, b)

	existing, err := r.findPair(ctx, lo, hi, false)
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		return existing, false, nil
	}

	c := db.Conversation{User1ID: lo, User2ID: hi}
	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&c).Error
	})
	if err == nil {
		return &c, true, nil
	}
	if !isDuplicate(err) {
		return nil, false, fmt.Errorf("create conversation: %w", err)
	}

	winner, err := r.findPair(ctx, lo, hi, true)
	if err != nil {
		return nil, false, err
	}
	if winner == nil {
		return nil, false, fmt.Errorf("conversation %d-%d vanished after conflict", lo, hi)
	}
	return winner, false, nil
}

// findPair looks up a normalized pair. lock takes a shared row lock, which
// MySQL and Postgres answer from the latest committed data; SQLite ignores it.
func (r *ConversationRepository) findPair(ctx context.Context, lo, hi uint64, lock bool) (*db.Conversation, error) {
	q := r.db.WithContext(ctx)
	if lock {
		q = q.Clauses(clause.Locking{Strength: "SHARE"})
	}
	var c db.Conversation
	err := q.Where("user1_id = ? AND user2_id = ?", lo, hi).First(&c).Error
	if isNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find conversation: %w", err)
	}
	return &c, nil
}

func (r *ConversationRepository) GetByID(ctx context.Context, id uint64) (*db.Conversation, error) {
	var c db.Conversation
	if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
		if isNotFound(err) {
			return nil, svcErr.ErrConversationNotFound
		}
		return nil, fmt.Errorf("get conversation: %w", err)
	}
	return &c, nil
}

// GetForParticipant loads a conversation only if userID is one of its members.
// An unknown id and a non-member are both ErrNotParticipant.
func (r *ConversationRepository) GetForParticipant(ctx context.Context, id, userID uint64) (*db.Conversation, error) {
	var c db.Conversation
	err := r.db.WithContext(ctx).
		Where("id = ? AND (user1_id = ? OR user2_id = ?)", id, userID, userID).
		First(&c).Error
	if err != nil {
		if isNotFound(err) {
			return nil, svcErr.ErrNotParticipant
		}
		return nil, fmt.Errorf("get conversation: %w", err)
	}
	return &c, nil
}

// ListForUser returns the user's conversations, most recently active first.
func (r *ConversationRepository) ListForUser(ctx context.Context, userID uint64) ([]db.Conversation, error) {
	var convs []db.Conversation
	err := r.db.WithContext(ctx).
		Where("user1_id = ? OR user2_id = ?", userID, userID).
		Order("updated_at DESC").
		Order("id DESC").
		Find(&convs).Error
	if err != nil {
		return nil, fmt.Errorf("list conversations: %w", err)
	}
	return convs, nil
}

// Touch bumps updated_at after a message is appended.
func (r *ConversationRepository) Touch(ctx context.Context, id uint64, at time.Time) error {
	err := r.db.WithContext(ctx).
		Model(&db.Conversation{}).
		Where("id = ?", id).
		UpdateColumn("updated_at", at).Error
	if err != nil {
		return fmt.Errorf("touch conversation: %w", err)
	}
	return nil
}
