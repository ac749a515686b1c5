package profile

import (
	"context"

	"github.com/oggyb/golf-buddy/internal/api"
	"github.com/oggyb/golf-buddy/internal/db"
	"github.com/oggyb/golf-buddy/internal/utils/optional"
)

// Handlers adapts Service to api.ProfileServiceServer.
type Handlers struct {
	svc *Service
}

var _ api.ProfileServiceServer = (*Handlers)(nil)

func NewHandlers(svc *Service) *Handlers {
	return &Handlers{svc: svc}
}

func (h *Handlers) CreateUser(ctx context.Context, req *api.CreateUserRequest) (*api.User, error) {
	u, err := h.svc.CreateUser(ctx, NewUser{
		Email:      req.Email,
		Username:   req.Username,
		FullName:   req.FullName,
		SkillLevel: db.SkillLevel(req.SkillLevel),
		Handicap:   req.Handicap,
		Location:   req.Location,
		Bio:        req.Bio,
		HomeCourse: req.HomeCourse,
	})
	if err != nil {
		return nil, h.svc.appCtx.Fail(ctx, "CreateUser", err)
	}
	out := api.FromUser(*u)
	return &out, nil
}

func (h *Handlers) UpdateUser(ctx context.Context, req *api.UpdateUserRequest) (*api.User, error) {
	ch := UserChanges{
		Email:      req.Email,
		Username:   req.Username,
		FullName:   req.FullName,
		Handicap:   req.Handicap,
		Location:   req.Location,
		Bio:        req.Bio,
		HomeCourse: req.HomeCourse,
	}
	if req.SkillLevel.Set {
		ch.SkillLevel = optional.Of(db.SkillLevel(req.SkillLevel.Value))
	}

	u, err := h.svc.UpdateUser(ctx, req.UserID, ch)
	if err != nil {
		return nil, h.svc.appCtx.Fail(ctx, "UpdateUser", err)
	}
	out := api.FromUser(*u)
	return &out, nil
}

func (h *Handlers) GetUser(ctx context.Context, req *api.GetUserRequest) (*api.GetUserResponse, error) {
	u, err := h.svc.GetUser(ctx, req.UserID)
	if err != nil {
		return nil, h.svc.appCtx.Fail(ctx, "GetUser", err)
	}
	resp := &api.GetUserResponse{}
	if u != nil {
		out := api.FromUser(*u)
		resp.User = &out
	}
	return resp, nil
}

func (h *Handlers) CreateCourse(ctx context.Context, req *api.CreateCourseRequest) (*api.Course, error) {
	c, err := h.svc.CreateCourse(ctx, NewCourse{
		Name:        req.Name,
		Location:    req.Location,
		Description: req.Description,
		Par:         req.Par,
	})
	if err != nil {
		return nil, h.svc.appCtx.Fail(ctx, "CreateCourse", err)
	}
	out := api.FromCourse(*c)
	return &out, nil
}

func (h *Handlers) GetCourses(ctx context.Context, _ *api.GetCoursesRequest) (*api.CoursesResponse, error) {
	courses, err := h.svc.ListCourses(ctx)
	if err != nil {
		return nil, h.svc.appCtx.Fail(ctx, "GetCourses", err)
	}
	return &api.CoursesResponse{Courses: api.FromCourses(courses)}, nil
}

func (h *Handlers) AddFavoriteCourse(ctx context.Context, req *api.AddFavoriteCourseRequest) (*api.FavoriteCourse, error) {
	f, err := h.svc.AddFavoriteCourse(ctx, req.UserID, req.CourseID)
	if err != nil {
		return nil, h.svc.appCtx.Fail(ctx, "AddFavoriteCourse", err)
	}
	out := api.FromFavorite(*f)
	return &out, nil
}

func (h *Handlers) GetUserFavorites(ctx context.Context, req *api.GetUserFavoritesRequest) (*api.CoursesResponse, error) {
	courses, err := h.svc.ListFavoriteCourses(ctx, req.UserID)
	if err != nil {
		return nil, h.svc.appCtx.Fail(ctx, "GetUserFavorites", err)
	}
	return &api.CoursesResponse{Courses: api.FromCourses(courses)}, nil
}

func (h *Handlers) AddTimePreference(ctx context.Context, req *api.AddTimePreferenceRequest) (*api.TimePreference, error) {
	p, err := h.svc.AddTimePreference(ctx, req.UserID, db.TimePreference(req.TimePreference))
	if err != nil {
		return nil, h.svc.appCtx.Fail(ctx, "AddTimePreference", err)
	}
	out := api.FromTimePreference(*p)
	return &out, nil
}

func (h *Handlers) GetUserTimePreferences(ctx context.Context, req *api.GetUserTimePreferencesRequest) (*api.TimePreferencesResponse, error) {
	prefs, err := h.svc.ListTimePreferences(ctx, req.UserID)
	if err != nil {
		return nil, h.svc.appCtx.Fail(ctx, "GetUserTimePreferences", err)
	}
	return &api.TimePreferencesResponse{TimePreferences: api.FromTimePreferences(prefs)}, nil
}
