package profile_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/oggyb/golf-buddy/internal/api"
	"github.com/oggyb/golf-buddy/internal/db"
	svcErr "github.com/oggyb/golf-buddy/internal/errors"
	"github.com/oggyb/golf-buddy/internal/service/profile"
	"github.com/oggyb/golf-buddy/internal/testenv"
	"github.com/oggyb/golf-buddy/internal/utils/optional"
)

func setupService(t *testing.T) (*profile.Service, *testenv.Env) {
	t.Helper()
	env := testenv.New(t)
	return profile.NewProfileService(env.App), env
}

func newUser(username string) profile.NewUser {
	return profile.NewUser{
		Email:      username + "@test.com",
		Username:   username,
		FullName:   "Test " + username,
		SkillLevel: db.SkillIntermediate,
		Handicap:   testenv.IntPtr(14),
		Location:   "San Francisco",
	}
}

func TestCreateUser(t *testing.T) {
	ctx := context.Background()
	svc, _ := setupService(t)

	u, err := svc.CreateUser(ctx, newUser("ann"))
	require.NoError(t, err)
	assert.NotZero(t, u.ID)
	assert.Nil(t, u.Bio)

	dupEmail := newUser("other")
	dupEmail.Email = "ann@test.com"
	_, err = svc.CreateUser(ctx, dupEmail)
	assert.ErrorIs(t, err, svcErr.ErrDuplicateEmail)

	dupName := newUser("ann")
	dupName.Email = "fresh@test.com"
	_, err = svc.CreateUser(ctx, dupName)
	assert.ErrorIs(t, err, svcErr.ErrDuplicateUsername)

	bad := newUser("bad")
	bad.SkillLevel = "scratch"
	_, err = svc.CreateUser(ctx, bad)
	assert.Equal(t, svcErr.KindInvalidArgument, svcErr.KindOf(err))
}

func TestUpdateUser_PartialAndNull(t *testing.T) {
	ctx := context.Background()
	svc, _ := setupService(t)

	in := newUser("ann")
	in.Bio = testenv.StrPtr("likes links golf")
	u, err := svc.CreateUser(ctx, in)
	require.NoError(t, err)
	other, err := svc.CreateUser(ctx, newUser("bob"))
	require.NoError(t, err)

	updated, err := svc.UpdateUser(ctx, u.ID, profile.UserChanges{
		Location: optional.Of("Austin"),
		Bio:      optional.Null[string](),
	})
	require.NoError(t, err)
	assert.Equal(t, "Austin", updated.Location)
	assert.Nil(t, updated.Bio)
	require.NotNil(t, updated.Handicap, "untouched fields survive")
	assert.Equal(t, 14, *updated.Handicap)
	assert.Equal(t, "ann", updated.Username)
	assert.False(t, updated.UpdatedAt.Before(u.UpdatedAt))

	// keeping your own email is not a conflict
	_, err = svc.UpdateUser(ctx, u.ID, profile.UserChanges{Email: optional.Of("ann@test.com")})
	require.NoError(t, err)

	_, err = svc.UpdateUser(ctx, u.ID, profile.UserChanges{Username: optional.Of(other.Username)})
	assert.ErrorIs(t, err, svcErr.ErrDuplicateUsername)

	_, err = svc.UpdateUser(ctx, 999, profile.UserChanges{Location: optional.Of("x")})
	assert.ErrorIs(t, err, svcErr.ErrUserNotFound)

	_, err = svc.UpdateUser(ctx, u.ID, profile.UserChanges{SkillLevel: optional.Of(db.SkillLevel("scratch"))})
	assert.Equal(t, svcErr.KindInvalidArgument, svcErr.KindOf(err))
}

func TestGetUser_MissingIsNil(t *testing.T) {
	svc, _ := setupService(t)

	u, err := svc.GetUser(context.Background(), 42)
	require.NoError(t, err)
	assert.Nil(t, u)
}

func TestCourses_RoundTripAndCache(t *testing.T) {
	ctx := context.Background()
	svc, env := setupService(t)
	h := profile.NewHandlers(svc)

	created, err := h.CreateCourse(ctx, &api.CreateCourseRequest{Name: "Harding Park", Location: "San Francisco", Par: 72})
	require.NoError(t, err)
	assert.Nil(t, created.Description)

	resp, err := h.GetCourses(ctx, &api.GetCoursesRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Courses, 1)
	got := resp.Courses[0]
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "Harding Park", got.Name)
	assert.Equal(t, "San Francisco", got.Location)
	assert.Equal(t, 72, got.Par)
	assert.Nil(t, got.Description, "null description must not come back as empty string")

	// list is now cached
	assert.True(t, env.Redis.Exists("courses:all"))
	cachedResp, err := h.GetCourses(ctx, &api.GetCoursesRequest{})
	require.NoError(t, err)
	require.Len(t, cachedResp.Courses, 1)
	assert.Equal(t, got.ID, cachedResp.Courses[0].ID)
	assert.Nil(t, cachedResp.Courses[0].Description)

	// a new course drops the cache
	_, err = h.CreateCourse(ctx, &api.CreateCourseRequest{
		Name:        "Harding Park",
		Location:    "Austin",
		Description: testenv.StrPtr("same name, other city"),
		Par:         71,
	})
	require.NoError(t, err)
	assert.False(t, env.Redis.Exists("courses:all"))

	resp, err = h.GetCourses(ctx, &api.GetCoursesRequest{})
	require.NoError(t, err)
	assert.Len(t, resp.Courses, 2)

	_, err = h.CreateCourse(ctx, &api.CreateCourseRequest{Name: "Harding Park", Location: "Austin", Par: 70})
	assert.Equal(t, codes.AlreadyExists, status.Code(err))
}

func TestFavoritesAndTimePreferences(t *testing.T) {
	ctx := context.Background()
	svc, _ := setupService(t)

	u, err := svc.CreateUser(ctx, newUser("ann"))
	require.NoError(t, err)
	c, err := svc.CreateCourse(ctx, profile.NewCourse{Name: "Links", Location: "Austin", Par: 72})
	require.NoError(t, err)

	_, err = svc.AddFavoriteCourse(ctx, 999, c.ID)
	assert.ErrorIs(t, err, svcErr.ErrUserNotFound)
	_, err = svc.AddFavoriteCourse(ctx, u.ID, 999)
	assert.ErrorIs(t, err, svcErr.ErrCourseNotFound)

	fav, err := svc.AddFavoriteCourse(ctx, u.ID, c.ID)
	require.NoError(t, err)
	assert.Equal(t, c.ID, fav.CourseID)
	_, err = svc.AddFavoriteCourse(ctx, u.ID, c.ID)
	assert.ErrorIs(t, err, svcErr.ErrDuplicateFavorite)

	favs, err := svc.ListFavoriteCourses(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, favs, 1)
	assert.Equal(t, "Links", favs[0].Name)

	_, err = svc.AddTimePreference(ctx, 999, db.TimeMorning)
	assert.ErrorIs(t, err, svcErr.ErrUserNotFound)
	_, err = svc.AddTimePreference(ctx, u.ID, "midnight")
	assert.Equal(t, svcErr.KindInvalidArgument, svcErr.KindOf(err))

	_, err = svc.AddTimePreference(ctx, u.ID, db.TimeMorning)
	require.NoError(t, err)
	_, err = svc.AddTimePreference(ctx, u.ID, db.TimeMorning)
	assert.ErrorIs(t, err, svcErr.ErrDuplicateTimePreference)

	prefs, err := svc.ListTimePreferences(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, prefs, 1)
	assert.Equal(t, db.TimeMorning, prefs[0].TimePreference)
}

func TestHandlers_MapErrors(t *testing.T) {
	ctx := context.Background()
	svc, _ := setupService(t)
	h := profile.NewHandlers(svc)

	_, err := h.AddFavoriteCourse(ctx, &api.AddFavoriteCourseRequest{UserID: 1, CourseID: 1})
	assert.Equal(t, codes.NotFound, status.Code(err))

	resp, err := h.GetUser(ctx, &api.GetUserRequest{UserID: 5})
	require.NoError(t, err)
	assert.Nil(t, resp.User)

	_, err = h.CreateUser(ctx, &api.CreateUserRequest{Email: "not-an-email"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}
