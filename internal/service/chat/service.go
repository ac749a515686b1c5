package chat

import (
	"context"
	"strings"

	"github.com/oggyb/golf-buddy/internal/app"
	"github.com/oggyb/golf-buddy/internal/db"
	svcErr "github.com/oggyb/golf-buddy/internal/errors"
	"github.com/oggyb/golf-buddy/internal/metrics"
	"github.com/oggyb/golf-buddy/internal/repository"
	"github.com/oggyb/golf-buddy/internal/utils/pagination"
)

// Service manages conversations between two golfers and their messages.
type Service struct {
	appCtx       *app.AppContext
	store        *repository.Store
	defaultLimit int
}

func NewChatService(appCtx *app.AppContext) *Service {
	limit := 100
	if appCtx.Config != nil && appCtx.Config.Messages.DefaultLimit > 0 {
		limit = appCtx.Config.Messages.DefaultLimit
	}
	return &Service{appCtx: appCtx, store: appCtx.Store, defaultLimit: limit}
}

// GetOrCreateConversation returns the single conversation for {a, b}.
//
// Behavior:
//   - a == b is ErrSelfConversation.
//   - Both users must exist (ErrUserNotFound).
//   - (a, b) and (b, a) return the same row, stored smaller id first.
func (s *Service) GetOrCreateConversation(ctx context.Context, a, b uint64) (*db.Conversation, error) {
	if a == b {
		return nil, svcErr.ErrSelfConversation
	}
	n, err := s.store.Users.CountExisting(ctx, a, b)
	if err != nil {
		return nil, err
	}
	if n != 2 {
		return nil, svcErr.ErrUserNotFound
	}

	conv, created, err := s.store.Conversations.GetOrCreate(ctx, a, b)
	if err != nil {
		return nil, err
	}
	if created {
		metrics.RecordConversationCreated()
	}
	return conv, nil
}

// ListConversations returns the user's conversations, most recently active first.
func (s *Service) ListConversations(ctx context.Context, userID uint64) ([]db.Conversation, error) {
	return s.store.Conversations.ListForUser(ctx, userID)
}

// SendMessage appends a message and bumps the conversation's updated_at,
// both in one transaction.
//
// Behavior:
//   - Blank content is rejected.
//   - The sender must be one of the two participants; an unknown
//     conversation is reported the same way (ErrNotParticipant).
//   - The message is stored with status "sent".
func (s *Service) SendMessage(ctx context.Context, conversationID, senderID uint64, content string) (*db.Message, error) {
	if strings.TrimSpace(content) == "" {
		return nil, svcErr.InvalidArgument("content must not be empty")
	}

	var msg db.Message
	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		if _, err := tx.Conversations.GetForParticipant(ctx, conversationID, senderID); err != nil {
			return err
		}

		msg = db.Message{
			ConversationID: conversationID,
			SenderID:       senderID,
			Content:        content,
			Status:         db.MessageSent,
		}
		if err := tx.Messages.Create(ctx, &msg); err != nil {
			return err
		}
		return tx.Conversations.Touch(ctx, conversationID, msg.CreatedAt)
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordMessageSent()
	return &msg, nil
}

// ListMessages returns one page of a conversation, oldest first.
// A nil limit falls back to the configured default; a nil offset is 0.
func (s *Service) ListMessages(ctx context.Context, conversationID uint64, limit, offset *int) ([]db.Message, error) {
	w, err := pagination.NewWindow(limit, offset, s.defaultLimit)
	if err != nil {
		return nil, svcErr.InvalidArgument(err.Error())
	}
	if _, err := s.store.Conversations.GetByID(ctx, conversationID); err != nil {
		return nil, err
	}
	return s.store.Messages.List(ctx, conversationID, w)
}
