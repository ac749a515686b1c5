package api

import (
	"context"

	"google.golang.org/grpc"
)

const ProfileServiceName = "golfbuddy.v1.ProfileService"

// ProfileServiceServer is implemented by the profile service.
type ProfileServiceServer interface {
	CreateUser(context.Context, *CreateUserRequest) (*User, error)
	UpdateUser(context.Context, *UpdateUserRequest) (*User, error)
	GetUser(context.Context, *GetUserRequest) (*GetUserResponse, error)
	CreateCourse(context.Context, *CreateCourseRequest) (*Course, error)
	GetCourses(context.Context, *GetCoursesRequest) (*CoursesResponse, error)
	AddFavoriteCourse(context.Context, *AddFavoriteCourseRequest) (*FavoriteCourse, error)
	GetUserFavorites(context.Context, *GetUserFavoritesRequest) (*CoursesResponse, error)
	AddTimePreference(context.Context, *AddTimePreferenceRequest) (*TimePreference, error)
	GetUserTimePreferences(context.Context, *GetUserTimePreferencesRequest) (*TimePreferencesResponse, error)
}

func profileMethod(name string) string { return fullName(ProfileServiceName, name) }

var ProfileServiceDesc = grpc.ServiceDesc{
	ServiceName: ProfileServiceName,
	HandlerType: (*ProfileServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "CreateUser", Handler: unary(profileMethod("CreateUser"), ProfileServiceServer.CreateUser)},
		{MethodName: "UpdateUser", Handler: unary(profileMethod("UpdateUser"), ProfileServiceServer.UpdateUser)},
		{MethodName: "GetUser", Handler: unary(profileMethod("GetUser"), ProfileServiceServer.GetUser)},
		{MethodName: "CreateCourse", Handler: unary(profileMethod("CreateCourse"), ProfileServiceServer.CreateCourse)},
		{MethodName: "GetCourses", Handler: unary(profileMethod("GetCourses"), ProfileServiceServer.GetCourses)},
		{MethodName: "AddFavoriteCourse", Handler: unary(profileMethod("AddFavoriteCourse"), ProfileServiceServer.AddFavoriteCourse)},
		{MethodName: "GetUserFavorites", Handler: unary(profileMethod("GetUserFavorites"), ProfileServiceServer.GetUserFavorites)},
		{MethodName: "AddTimePreference", Handler: unary(profileMethod("AddTimePreference"), ProfileServiceServer.AddTimePreference)},
		{MethodName: "GetUserTimePreferences", Handler: unary(profileMethod("GetUserTimePreferences"), ProfileServiceServer.GetUserTimePreferences)},
	},
	Metadata: "golfbuddy/v1/profile",
}

func RegisterProfileServiceServer(s grpc.ServiceRegistrar, srv ProfileServiceServer) {
	s.RegisterService(&ProfileServiceDesc, srv)
}

type ProfileServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewProfileServiceClient(cc grpc.ClientConnInterface) *ProfileServiceClient {
	return &ProfileServiceClient{cc: cc}
}

func (c *ProfileServiceClient) CreateUser(ctx context.Context, in *CreateUserRequest, opts ...grpc.CallOption) (*User, error) {
	return invoke[User](ctx, c.cc, profileMethod("CreateUser"), in, opts)
}

func (c *ProfileServiceClient) UpdateUser(ctx context.Context, in *UpdateUserRequest, opts ...grpc.CallOption) (*User, error) {
	return invoke[User](ctx, c.cc, profileMethod("UpdateUser"), in, opts)
}

func (c *ProfileServiceClient) GetUser(ctx context.Context, in *GetUserRequest, opts ...grpc.CallOption) (*GetUserResponse, error) {
	return invoke[GetUserResponse](ctx, c.cc, profileMethod("GetUser"), in, opts)
}

func (c *ProfileServiceClient) CreateCourse(ctx context.Context, in *CreateCourseRequest, opts ...grpc.CallOption) (*Course, error) {
	return invoke[Course](ctx, c.cc, profileMethod("CreateCourse"), in, opts)
}

func (c *ProfileServiceClient) GetCourses(ctx context.Context, in *GetCoursesRequest, opts ...grpc.CallOption) (*CoursesResponse, error) {
	return invoke[CoursesResponse](ctx, c.cc, profileMethod("GetCourses"), in, opts)
}

func (c *ProfileServiceClient) AddFavoriteCourse(ctx context.Context, in *AddFavoriteCourseRequest, opts ...grpc.CallOption) (*FavoriteCourse, error) {
	return invoke[FavoriteCourse](ctx, c.cc, profileMethod("AddFavoriteCourse"), in, opts)
}

func (c *ProfileServiceClient) GetUserFavorites(ctx context.Context, in *GetUserFavoritesRequest, opts ...grpc.CallOption) (*CoursesResponse, error) {
	return invoke[CoursesResponse](ctx, c.cc, profileMethod("GetUserFavorites"), in, opts)
}

func (c *ProfileServiceClient) AddTimePreference(ctx context.Context, in *AddTimePreferenceRequest, opts ...grpc.CallOption) (*TimePreference, error) {
	return invoke[TimePreference](ctx, c.cc, profileMethod("AddTimePreference"), in, opts)
}

func (c *ProfileServiceClient) GetUserTimePreferences(ctx context.Context, in *GetUserTimePreferencesRequest, opts ...grpc.CallOption) (*TimePreferencesResponse, error) {
	return invoke[TimePreferencesResponse](ctx, c.cc, profileMethod("GetUserTimePreferences"), in, opts)
}
