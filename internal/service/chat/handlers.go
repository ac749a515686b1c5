package chat

import (
	"context"

	"github.com/oggyb/golf-buddy/internal/api"
)

// Handlers adapts Service to api.ChatServiceServer.
type Handlers struct {
	svc *Service
}

var _ api.ChatServiceServer = (*Handlers)(nil)

func NewHandlers(svc *Service) *Handlers {
	return &Handlers{svc: svc}
}

func (h *Handlers) CreateConversation(ctx context.Context, req *api.CreateConversationRequest) (*api.Conversation, error) {
	conv, err := h.svc.GetOrCreateConversation(ctx, req.User1ID, req.User2ID)
	if err != nil {
		return nil, h.svc.appCtx.Fail(ctx, "CreateConversation", err)
	}
	out := api.FromConversation(*conv)
	return &out, nil
}

func (h *Handlers) GetConversations(ctx context.Context, req *api.GetConversationsRequest) (*api.ConversationsResponse, error) {
	convs, err := h.svc.ListConversations(ctx, req.UserID)
	if err != nil {
		return nil, h.svc.appCtx.Fail(ctx, "GetConversations", err)
	}
	return &api.ConversationsResponse{Conversations: api.FromConversations(convs)}, nil
}

func (h *Handlers) SendMessage(ctx context.Context, req *api.SendMessageRequest) (*api.Message, error) {
	msg, err := h.svc.SendMessage(ctx, req.ConversationID, req.SenderID, req.Content)
	if err != nil {
		return nil, h.svc.appCtx.Fail(ctx, "SendMessage", err)
	}
	out := api.FromMessage(*msg)
	return &out, nil
}

func (h *Handlers) GetMessages(ctx context.Context, req *api.GetMessagesRequest) (*api.MessagesResponse, error) {
	msgs, err := h.svc.ListMessages(ctx, req.ConversationID, req.Limit, req.Offset)
	if err != nil {
		return nil, h.svc.appCtx.Fail(ctx, "GetMessages", err)
	}
	return &api.MessagesResponse{Messages: api.FromMessages(msgs)}, nil
}
