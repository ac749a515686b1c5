package server_test

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	reflectionpb "google.golang.org/grpc/reflection/grpc_reflection_v1"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"github.com/oggyb/golf-buddy/internal/api"
	"github.com/oggyb/golf-buddy/internal/logger"
	"github.com/oggyb/golf-buddy/internal/server"
	"github.com/oggyb/golf-buddy/internal/service/buddy"
	"github.com/oggyb/golf-buddy/internal/service/chat"
	"github.com/oggyb/golf-buddy/internal/service/profile"
	"github.com/oggyb/golf-buddy/internal/testenv"
	"github.com/oggyb/golf-buddy/internal/utils/optional"
)

type clients struct {
	conn    *grpc.ClientConn
	profile *api.ProfileServiceClient
	buddy   *api.BuddyServiceClient
	chat    *api.ChatServiceClient
}

// startServer runs the full gRPC stack over an in-memory listener.
func startServer(t *testing.T, extra ...server.Registrar) clients {
	t.Helper()
	env := testenv.New(t)

	registrars := append([]server.Registrar{
		profile.NewRegistrar(env.App),
		buddy.NewRegistrar(env.App),
		chat.NewRegistrar(env.App),
	}, extra...)

	lis := bufconn.Listen(1 << 20)
	srv := server.NewGRPCServer(logger.Discard(), registrars...)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- server.Serve(ctx, lis, srv) }()
	t.Cleanup(func() {
		cancel()
		<-done
	})

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return clients{
		conn:    conn,
		profile: api.NewProfileServiceClient(conn),
		buddy:   api.NewBuddyServiceClient(conn),
		chat:    api.NewChatServiceClient(conn),
	}
}

func createUser(t *testing.T, c clients, username, location, level string) *api.User {
	t.Helper()
	u, err := c.profile.CreateUser(context.Background(), &api.CreateUserRequest{
		Email:      username + "@test.com",
		Username:   username,
		FullName:   username,
		SkillLevel: level,
		Location:   location,
	})
	require.NoError(t, err)
	return u
}

func TestEndToEnd_MatchToConversation(t *testing.T) {
	ctx := context.Background()
	c := startServer(t)

	ann := createUser(t, c, "ann", "San Francisco", "intermediate")
	bob := createUser(t, c, "bob", "San Francisco", "intermediate")
	createUser(t, c, "cat", "Austin", "pro")

	found, err := c.buddy.SearchBuddies(ctx, &api.SearchBuddiesRequest{Location: testenv.StrPtr("San Francisco")})
	require.NoError(t, err)
	assert.Len(t, found.Users, 2)

	m, err := c.buddy.CreateBuddyMatch(ctx, &api.CreateBuddyMatchRequest{RequesterID: bob.ID, RecipientID: ann.ID})
	require.NoError(t, err)
	assert.Equal(t, "pending", m.Status)

	pending, err := c.buddy.CountPendingBuddyMatches(ctx, &api.CountPendingBuddyMatchesRequest{UserID: ann.ID})
	require.NoError(t, err)
	assert.Equal(t, int64(1), pending.Count)

	_, err = c.buddy.CreateBuddyMatch(ctx, &api.CreateBuddyMatchRequest{RequesterID: ann.ID, RecipientID: bob.ID})
	assert.Equal(t, codes.AlreadyExists, status.Code(err))

	accepted, err := c.buddy.UpdateBuddyMatchStatus(ctx, &api.UpdateBuddyMatchStatusRequest{MatchID: m.ID, Status: "accepted"})
	require.NoError(t, err)
	assert.Equal(t, "accepted", accepted.Status)

	convs, err := c.chat.GetConversations(ctx, &api.GetConversationsRequest{UserID: bob.ID})
	require.NoError(t, err)
	require.Len(t, convs.Conversations, 1)
	conv := convs.Conversations[0]
	assert.Equal(t, ann.ID, conv.User1ID)
	assert.Equal(t, bob.ID, conv.User2ID)

	// direct creation returns the same row
	again, err := c.chat.CreateConversation(ctx, &api.CreateConversationRequest{User1ID: bob.ID, User2ID: ann.ID})
	require.NoError(t, err)
	assert.Equal(t, conv.ID, again.ID)

	for _, text := range []string{"M1", "M2", "M3"} {
		_, err := c.chat.SendMessage(ctx, &api.SendMessageRequest{ConversationID: conv.ID, SenderID: ann.ID, Content: text})
		require.NoError(t, err)
	}
	limit, offset := 2, 1
	msgs, err := c.chat.GetMessages(ctx, &api.GetMessagesRequest{ConversationID: conv.ID, Limit: &limit, Offset: &offset})
	require.NoError(t, err)
	require.Len(t, msgs.Messages, 2)
	assert.Equal(t, "M2", msgs.Messages[0].Content)
	assert.Equal(t, "M3", msgs.Messages[1].Content)
}

func TestEndToEnd_PartialUpdateAndNulls(t *testing.T) {
	ctx := context.Background()
	c := startServer(t)

	u, err := c.profile.CreateUser(ctx, &api.CreateUserRequest{
		Email:      "ann@test.com",
		Username:   "ann",
		FullName:   "Ann",
		SkillLevel: "advanced",
		Handicap:   testenv.IntPtr(6),
		Location:   "Austin",
		Bio:        testenv.StrPtr("weekend hacker"),
	})
	require.NoError(t, err)

	updated, err := c.profile.UpdateUser(ctx, &api.UpdateUserRequest{
		UserID:   u.ID,
		Handicap: optionalNullInt(),
	})
	require.NoError(t, err)
	assert.Nil(t, updated.Handicap)
	require.NotNil(t, updated.Bio, "fields absent from the request are untouched")
	assert.Equal(t, "weekend hacker", *updated.Bio)

	missing, err := c.profile.GetUser(ctx, &api.GetUserRequest{UserID: 404})
	require.NoError(t, err)
	assert.Nil(t, missing.User)

	course, err := c.profile.CreateCourse(ctx, &api.CreateCourseRequest{Name: "Links", Location: "Austin", Par: 72})
	require.NoError(t, err)
	assert.Nil(t, course.Description)

	_, err = c.profile.AddFavoriteCourse(ctx, &api.AddFavoriteCourseRequest{UserID: u.ID, CourseID: course.ID})
	require.NoError(t, err)
	favs, err := c.profile.GetUserFavorites(ctx, &api.GetUserFavoritesRequest{UserID: u.ID})
	require.NoError(t, err)
	require.Len(t, favs.Courses, 1)

	_, err = c.profile.AddTimePreference(ctx, &api.AddTimePreferenceRequest{UserID: u.ID, TimePreference: "weekend"})
	require.NoError(t, err)
	prefs, err := c.profile.GetUserTimePreferences(ctx, &api.GetUserTimePreferencesRequest{UserID: u.ID})
	require.NoError(t, err)
	require.Len(t, prefs.TimePreferences, 1)
	assert.Equal(t, "weekend", prefs.TimePreferences[0].TimePreference)
}

func TestRequestIDHeader(t *testing.T) {
	c := startServer(t)

	var header metadata.MD
	_, err := c.profile.GetCourses(context.Background(), &api.GetCoursesRequest{}, grpc.Header(&header))
	require.NoError(t, err)
	require.Len(t, header.Get(server.RequestIDKey), 1)
	assert.NotEmpty(t, header.Get(server.RequestIDKey)[0])

	ctx := metadata.AppendToOutgoingContext(context.Background(), server.RequestIDKey, "req-123")
	_, err = c.profile.GetCourses(ctx, &api.GetCoursesRequest{}, grpc.Header(&header))
	require.NoError(t, err)
	assert.Equal(t, []string{"req-123"}, header.Get(server.RequestIDKey))
}

func TestHealthService(t *testing.T) {
	c := startServer(t)
	client := healthpb.NewHealthClient(c.conn)

	resp, err := client.Check(context.Background(), &healthpb.HealthCheckRequest{Service: api.BuddyServiceName})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.GetStatus())

	resp, err = client.Check(context.Background(), &healthpb.HealthCheckRequest{})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.GetStatus())
}

func TestReflectionListsServices(t *testing.T) {
	c := startServer(t)
	stream, err := reflectionpb.NewServerReflectionClient(c.conn).ServerReflectionInfo(context.Background())
	require.NoError(t, err)

	require.NoError(t, stream.Send(&reflectionpb.ServerReflectionRequest{
		MessageRequest: &reflectionpb.ServerReflectionRequest_ListServices{ListServices: ""},
	}))
	resp, err := stream.Recv()
	require.NoError(t, err)
	require.NoError(t, stream.CloseSend())

	var names []string
	for _, svc := range resp.GetListServicesResponse().GetService() {
		names = append(names, svc.GetName())
	}
	assert.Contains(t, names, api.ProfileServiceName)
	assert.Contains(t, names, api.BuddyServiceName)
	assert.Contains(t, names, api.ChatServiceName)
	assert.Contains(t, names, healthpb.Health_ServiceDesc.ServiceName)
}

type panicServer struct{}

func (panicServer) CreateConversation(context.Context, *api.CreateConversationRequest) (*api.Conversation, error) {
	panic("boom")
}

func (panicServer) GetConversations(context.Context, *api.GetConversationsRequest) (*api.ConversationsResponse, error) {
	return &api.ConversationsResponse{}, nil
}

func (panicServer) SendMessage(context.Context, *api.SendMessageRequest) (*api.Message, error) {
	return nil, status.Error(codes.Unimplemented, "not here")
}

func (panicServer) GetMessages(context.Context, *api.GetMessagesRequest) (*api.MessagesResponse, error) {
	return &api.MessagesResponse{}, nil
}

func TestRecoveryInterceptor(t *testing.T) {
	lis := bufconn.Listen(1 << 20)
	srv := server.NewGRPCServer(logger.Discard(), server.RegistrarFunc(func(s *grpc.Server) {
		api.RegisterChatServiceServer(s, panicServer{})
	}))
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = server.Serve(ctx, lis, srv) }()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	defer conn.Close()

	client := api.NewChatServiceClient(conn)
	_, err = client.CreateConversation(context.Background(), &api.CreateConversationRequest{User1ID: 1, User2ID: 2})
	assert.Equal(t, codes.Internal, status.Code(err))

	// the server survives the panic
	_, err = client.GetConversations(context.Background(), &api.GetConversationsRequest{UserID: 1})
	assert.NoError(t, err)
}

type fakePinger struct{ err error }

func (f fakePinger) Ping(context.Context) error { return f.err }

func TestAdminRouter(t *testing.T) {
	healthy := httptest.NewServer(server.NewAdminRouter(map[string]server.Pinger{
		"db":    fakePinger{},
		"redis": fakePinger{},
	}))
	defer healthy.Close()

	resp, err := http.Get(healthy.URL + "/healthz")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status":"ok","checks":{"db":"ok","redis":"ok"}}`, string(body))

	resp, err = http.Get(healthy.URL + "/metrics")
	require.NoError(t, err)
	body, _ = io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, strings.Contains(string(body), "go_goroutines"))

	degraded := httptest.NewServer(server.NewAdminRouter(map[string]server.Pinger{
		"db":    fakePinger{},
		"redis": fakePinger{err: errors.New("connection refused")},
	}))
	defer degraded.Close()

	resp, err = http.Get(degraded.URL + "/healthz")
	require.NoError(t, err)
	body, _ = io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	assert.Contains(t, string(body), "connection refused")
}

func optionalNullInt() optional.Field[*int] {
	return optional.Null[int]()
}
