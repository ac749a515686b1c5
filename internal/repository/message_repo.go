package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/oggyb/golf-buddy/internal/db"
	"github.com/oggyb/golf-buddy/internal/utils/pagination"
)

type MessageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(database *gorm.DB) *MessageRepository {
	return &MessageRepository{db: database}
}

// Create appends a message. CreatedAt is filled from the DB clock when zero.
func (r *MessageRepository) Create(ctx context.Context, m *db.Message) error {
	if m.CreatedAt.IsZero() {
		m.CreatedAt = r.db.NowFunc()
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return fmt.Errorf("create message: %w", err)
	}
	return nil
}

// List returns one window of a conversation, oldest first with id as tie-break.
//
// Example:
//
//	// messages M1..M4, window {Limit: 2, Offset: 1} -> [M2, M3]
func (r *MessageRepository) List(ctx context.Context, conversationID uint64, w pagination.Window) ([]db.Message, error) {
	var msgs []db.Message
	err := r.db.WithContext(ctx).
		Where("conversation_id = ?", conversationID).
		Order("created_at ASC").
		Order("id ASC").
		Limit(w.Limit).
		Offset(w.Offset).
		Find(&msgs).Error
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	return msgs, nil
}
