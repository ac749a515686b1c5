package api

import (
	"context"

	"google.golang.org/grpc"
)

const ChatServiceName = "golfbuddy.v1.ChatService"

type ChatServiceServer interface {
	CreateConversation(context.Context, *CreateConversationRequest) (*Conversation, error)
	GetConversations(context.Context, *GetConversationsRequest) (*ConversationsResponse, error)
	SendMessage(context.Context, *SendMessageRequest) (*Message, error)
	GetMessages(context.Context, *GetMessagesRequest) (*MessagesResponse, error)
}

func chatMethod(name string) string { return fullName(ChatServiceName, name) }

var ChatServiceDesc = grpc.ServiceDesc{
	ServiceName: ChatServiceName,
	HandlerType: (*ChatServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "CreateConversation", Handler: unary(chatMethod("CreateConversation"), ChatServiceServer.CreateConversation)},
		{MethodName: "GetConversations", Handler: unary(chatMethod("GetConversations"), ChatServiceServer.GetConversations)},
		{MethodName: "SendMessage", Handler: unary(chatMethod("SendMessage"), ChatServiceServer.SendMessage)},
		{MethodName: "GetMessages", Handler: unary(chatMethod("GetMessages"), ChatServiceServer.GetMessages)},
	},
	Metadata: "golfbuddy/v1/chat",
}

func RegisterChatServiceServer(s grpc.ServiceRegistrar, srv ChatServiceServer) {
	s.RegisterService(&ChatServiceDesc, srv)
}

type ChatServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewChatServiceClient(cc grpc.ClientConnInterface) *ChatServiceClient {
	return &ChatServiceClient{cc: cc}
}

func (c *ChatServiceClient) CreateConversation(ctx context.Context, in *CreateConversationRequest, opts ...grpc.CallOption) (*Conversation, error) {
	return invoke[Conversation](ctx, c.cc, chatMethod("CreateConversation"), in, opts)
}

func (c *ChatServiceClient) GetConversations(ctx context.Context, in *GetConversationsRequest, opts ...grpc.CallOption) (*ConversationsResponse, error) {
	return invoke[ConversationsResponse](ctx, c.cc, chatMethod("GetConversations"), in, opts)
}

func (c *ChatServiceClient) SendMessage(ctx context.Context, in *SendMessageRequest, opts ...grpc.CallOption) (*Message, error) {
	return invoke[Message](ctx, c.cc, chatMethod("SendMessage"), in, opts)
}

func (c *ChatServiceClient) GetMessages(ctx context.Context, in *GetMessagesRequest, opts ...grpc.CallOption) (*MessagesResponse, error) {
	return invoke[MessagesResponse](ctx, c.cc, chatMethod("GetMessages"), in, opts)
}
