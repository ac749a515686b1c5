package api

import (
	"context"

	"google.golang.org/grpc"
)

const BuddyServiceName = "golfbuddy.v1.BuddyService"

// BuddyServiceServer covers buddy search and the match lifecycle.
type BuddyServiceServer interface {
	SearchBuddies(context.Context, *SearchBuddiesRequest) (*UsersResponse, error)
	CreateBuddyMatch(context.Context, *CreateBuddyMatchRequest) (*BuddyMatch, error)
	UpdateBuddyMatchStatus(context.Context, *UpdateBuddyMatchStatusRequest) (*BuddyMatch, error)
	GetBuddyMatches(context.Context, *GetBuddyMatchesRequest) (*BuddyMatchesResponse, error)
	CountPendingBuddyMatches(context.Context, *CountPendingBuddyMatchesRequest) (*CountResponse, error)
}

func buddyMethod(name string) string { return fullName(BuddyServiceName, name) }

var BuddyServiceDesc = grpc.ServiceDesc{
	ServiceName: BuddyServiceName,
	HandlerType: (*BuddyServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "SearchBuddies", Handler: unary(buddyMethod("SearchBuddies"), BuddyServiceServer.SearchBuddies)},
		{MethodName: "CreateBuddyMatch", Handler: unary(buddyMethod("CreateBuddyMatch"), BuddyServiceServer.CreateBuddyMatch)},
		{MethodName: "UpdateBuddyMatchStatus", Handler: unary(buddyMethod("UpdateBuddyMatchStatus"), BuddyServiceServer.UpdateBuddyMatchStatus)},
		{MethodName: "GetBuddyMatches", Handler: unary(buddyMethod("GetBuddyMatches"), BuddyServiceServer.GetBuddyMatches)},
		{MethodName: "CountPendingBuddyMatches", Handler: unary(buddyMethod("CountPendingBuddyMatches"), BuddyServiceServer.CountPendingBuddyMatches)},
	},
	Metadata: "golfbuddy/v1/buddy",
}

func RegisterBuddyServiceServer(s grpc.ServiceRegistrar, srv BuddyServiceServer) {
	s.RegisterService(&BuddyServiceDesc, srv)
}

type BuddyServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewBuddyServiceClient(cc grpc.ClientConnInterface) *BuddyServiceClient {
	return &BuddyServiceClient{cc: cc}
}

func (c *BuddyServiceClient) SearchBuddies(ctx context.Context, in *SearchBuddiesRequest, opts ...grpc.CallOption) (*UsersResponse, error) {
	return invoke[UsersResponse](ctx, c.cc, buddyMethod("SearchBuddies"), in, opts)
}

func (c *BuddyServiceClient) CreateBuddyMatch(ctx context.Context, in *CreateBuddyMatchRequest, opts ...grpc.CallOption) (*BuddyMatch, error) {
	return invoke[BuddyMatch](ctx, c.cc, buddyMethod("CreateBuddyMatch"), in, opts)
}

func (c *BuddyServiceClient) UpdateBuddyMatchStatus(ctx context.Context, in *UpdateBuddyMatchStatusRequest, opts ...grpc.CallOption) (*BuddyMatch, error) {
	return invoke[BuddyMatch](ctx, c.cc, buddyMethod("UpdateBuddyMatchStatus"), in, opts)
}

func (c *BuddyServiceClient) GetBuddyMatches(ctx context.Context, in *GetBuddyMatchesRequest, opts ...grpc.CallOption) (*BuddyMatchesResponse, error) {
	return invoke[BuddyMatchesResponse](ctx, c.cc, buddyMethod("GetBuddyMatches"), in, opts)
}

func (c *BuddyServiceClient) CountPendingBuddyMatches(ctx context.Context, in *CountPendingBuddyMatchesRequest, opts ...grpc.CallOption) (*CountResponse, error) {
	return invoke[CountResponse](ctx, c.cc, buddyMethod("CountPendingBuddyMatches"), in, opts)
}
