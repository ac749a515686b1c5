package chat_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/oggyb/golf-buddy/internal/api"
	"github.com/oggyb/golf-buddy/internal/db"
	svcErr "github.com/oggyb/golf-buddy/internal/errors"
	"github.com/oggyb/golf-buddy/internal/service/chat"
	"github.com/oggyb/golf-buddy/internal/testenv"
)

func setupService(t *testing.T) (*chat.Service, *testenv.Env) {
	t.Helper()
	env := testenv.New(t)
	return chat.NewChatService(env.App), env
}

func TestGetOrCreateConversation_PairSymmetry(t *testing.T) {
	ctx := context.Background()
	svc, env := setupService(t)
	a := env.User(t, "ann", "Austin", db.SkillPro, nil)
	b := env.User(t, "bob", "Austin", db.SkillPro, nil)

	first, err := svc.GetOrCreateConversation(ctx, b.ID, a.ID)
	require.NoError(t, err)
	second, err := svc.GetOrCreateConversation(ctx, a.ID, b.ID)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Less(t, first.User1ID, first.User2ID)
	assert.Equal(t, a.ID, first.User1ID)

	var n int64
	require.NoError(t, env.DB.Model(&db.Conversation{}).Count(&n).Error)
	assert.Equal(t, int64(1), n)
}

func TestGetOrCreateConversation_Rules(t *testing.T) {
	ctx := context.Background()
	svc, env := setupService(t)
	a := env.User(t, "ann", "Austin", db.SkillPro, nil)

	_, err := svc.GetOrCreateConversation(ctx, a.ID, a.ID)
	assert.ErrorIs(t, err, svcErr.ErrSelfConversation)

	_, err = svc.GetOrCreateConversation(ctx, a.ID, 999)
	assert.ErrorIs(t, err, svcErr.ErrUserNotFound)
}

func TestSendMessage(t *testing.T) {
	ctx := context.Background()
	svc, env := setupService(t)
	a := env.User(t, "ann", "Austin", db.SkillPro, nil)
	b := env.User(t, "bob", "Austin", db.SkillPro, nil)
	c := env.User(t, "cat", "Austin", db.SkillPro, nil)
	conv, err := svc.GetOrCreateConversation(ctx, a.ID, b.ID)
	require.NoError(t, err)

	_, err = svc.SendMessage(ctx, conv.ID, c.ID, "let me in")
	assert.ErrorIs(t, err, svcErr.ErrNotParticipant)
	_, err = svc.SendMessage(ctx, 999, a.ID, "hello?")
	assert.ErrorIs(t, err, svcErr.ErrNotParticipant)
	_, err = svc.SendMessage(ctx, conv.ID, a.ID, "   ")
	assert.Equal(t, svcErr.KindInvalidArgument, svcErr.KindOf(err))

	var n int64
	require.NoError(t, env.DB.Model(&db.Message{}).Count(&n).Error)
	assert.Zero(t, n, "rejected sends leave no rows")

	msg, err := svc.SendMessage(ctx, conv.ID, b.ID, "tee time 8am?")
	require.NoError(t, err)
	assert.Equal(t, db.MessageSent, msg.Status)
	assert.Equal(t, b.ID, msg.SenderID)

	var reloaded db.Conversation
	require.NoError(t, env.DB.First(&reloaded, conv.ID).Error)
	assert.True(t, reloaded.UpdatedAt.Equal(msg.CreatedAt), "conversation touched with the message time")
}

func TestListConversations_MostRecentFirst(t *testing.T) {
	ctx := context.Background()
	svc, env := setupService(t)
	a := env.User(t, "ann", "Austin", db.SkillPro, nil)
	b := env.User(t, "bob", "Austin", db.SkillPro, nil)
	c := env.User(t, "cat", "Austin", db.SkillPro, nil)

	ab, err := svc.GetOrCreateConversation(ctx, a.ID, b.ID)
	require.NoError(t, err)
	ac, err := svc.GetOrCreateConversation(ctx, a.ID, c.ID)
	require.NoError(t, err)

	past := time.Now().UTC().Add(-time.Hour)
	require.NoError(t, env.DB.Model(&db.Conversation{}).Where("id = ?", ab.ID).UpdateColumn("updated_at", past).Error)
	require.NoError(t, env.DB.Model(&db.Conversation{}).Where("id = ?", ac.ID).UpdateColumn("updated_at", past.Add(time.Minute)).Error)

	convs, err := svc.ListConversations(ctx, a.ID)
	require.NoError(t, err)
	require.Len(t, convs, 2)
	assert.Equal(t, ac.ID, convs[0].ID)

	_, err = svc.SendMessage(ctx, ab.ID, a.ID, "still on for Sunday?")
	require.NoError(t, err)

	convs, err = svc.ListConversations(ctx, a.ID)
	require.NoError(t, err)
	require.Len(t, convs, 2)
	assert.Equal(t, ab.ID, convs[0].ID, "a new message moves the conversation to the top")

	convs, err = svc.ListConversations(ctx, c.ID)
	require.NoError(t, err)
	require.Len(t, convs, 1)
}

func TestListMessages_OrderAndWindow(t *testing.T) {
	ctx := context.Background()
	svc, env := setupService(t)
	a := env.User(t, "ann", "Austin", db.SkillPro, nil)
	b := env.User(t, "bob", "Austin", db.SkillPro, nil)
	conv, err := svc.GetOrCreateConversation(ctx, a.ID, b.ID)
	require.NoError(t, err)

	for i := 1; i <= 5; i++ {
		sender := a.ID
		if i%2 == 0 {
			sender = b.ID
		}
		_, err := svc.SendMessage(ctx, conv.ID, sender, fmt.Sprintf("M%d", i))
		require.NoError(t, err)
	}

	all, err := svc.ListMessages(ctx, conv.ID, nil, nil)
	require.NoError(t, err)
	require.Len(t, all, 5)
	for i, m := range all {
		assert.Equal(t, fmt.Sprintf("M%d", i+1), m.Content)
	}

	limit, offset := 2, 1
	page, err := svc.ListMessages(ctx, conv.ID, &limit, &offset)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, "M2", page[0].Content)
	assert.Equal(t, "M3", page[1].Content)

	past := 10
	page, err = svc.ListMessages(ctx, conv.ID, nil, &past)
	require.NoError(t, err)
	assert.Empty(t, page)

	neg := -1
	_, err = svc.ListMessages(ctx, conv.ID, &neg, nil)
	assert.Equal(t, svcErr.KindInvalidArgument, svcErr.KindOf(err))

	_, err = svc.ListMessages(ctx, 999, nil, nil)
	assert.ErrorIs(t, err, svcErr.ErrConversationNotFound)
}

func TestListMessages_DefaultLimitFromConfig(t *testing.T) {
	ctx := context.Background()
	env := testenv.New(t)
	env.App.Config.Messages.DefaultLimit = 3
	svc := chat.NewChatService(env.App)

	a := env.User(t, "ann", "Austin", db.SkillPro, nil)
	b := env.User(t, "bob", "Austin", db.SkillPro, nil)
	conv, err := svc.GetOrCreateConversation(ctx, a.ID, b.ID)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		_, err := svc.SendMessage(ctx, conv.ID, a.ID, "ping")
		require.NoError(t, err)
	}

	msgs, err := svc.ListMessages(ctx, conv.ID, nil, nil)
	require.NoError(t, err)
	assert.Len(t, msgs, 3)
}

func TestHandlers_MapErrors(t *testing.T) {
	ctx := context.Background()
	svc, env := setupService(t)
	h := chat.NewHandlers(svc)
	a := env.User(t, "ann", "Austin", db.SkillPro, nil)
	b := env.User(t, "bob", "Austin", db.SkillPro, nil)

	_, err := h.CreateConversation(ctx, &api.CreateConversationRequest{User1ID: a.ID, User2ID: a.ID})
	assert.Equal(t, codes.FailedPrecondition, status.Code(err))

	conv, err := h.CreateConversation(ctx, &api.CreateConversationRequest{User1ID: b.ID, User2ID: a.ID})
	require.NoError(t, err)
	assert.Equal(t, a.ID, conv.User1ID)

	_, err = h.SendMessage(ctx, &api.SendMessageRequest{ConversationID: conv.ID, SenderID: 77, Content: "hi"})
	assert.Equal(t, codes.FailedPrecondition, status.Code(err))

	_, err = h.GetMessages(ctx, &api.GetMessagesRequest{ConversationID: 999})
	assert.Equal(t, codes.NotFound, status.Code(err))

	sent, err := h.SendMessage(ctx, &api.SendMessageRequest{ConversationID: conv.ID, SenderID: a.ID, Content: "hi"})
	require.NoError(t, err)
	assert.Equal(t, "sent", sent.Status)

	list, err := h.GetConversations(ctx, &api.GetConversationsRequest{UserID: b.ID})
	require.NoError(t, err)
	require.Len(t, list.Conversations, 1)
}
