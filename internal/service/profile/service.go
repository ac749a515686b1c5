package profile

import (
	"context"
	"errors"
	"strings"

	"github.com/oggyb/golf-buddy/internal/app"
	"github.com/oggyb/golf-buddy/internal/db"
	svcErr "github.com/oggyb/golf-buddy/internal/errors"
	"github.com/oggyb/golf-buddy/internal/metrics"
	"github.com/oggyb/golf-buddy/internal/repository"
	"github.com/oggyb/golf-buddy/internal/utils/optional"
)

// Service owns golfer profiles, courses, favorites and time preferences.
type Service struct {
	appCtx *app.AppContext
	store  *repository.Store
}

func NewProfileService(appCtx *app.AppContext) *Service {
	return &Service{appCtx: appCtx, store: appCtx.Store}
}

type NewUser struct {
	Email      string        `validate:"required,email,max=128"`
	Username   string        `validate:"required,max=64"`
	FullName   string        `validate:"required,max=128"`
	SkillLevel db.SkillLevel `validate:"required,oneof=beginner intermediate advanced pro"`
	Handicap   *int
	Location   string `validate:"required,max=128"`
	Bio        *string
	HomeCourse *string `validate:"omitempty,max=128"`
}

// UserChanges is a partial update. Unset fields are left alone; for the
// pointer fields a set nil value clears the column.
type UserChanges struct {
	Email      optional.Field[string]
	Username   optional.Field[string]
	FullName   optional.Field[string]
	SkillLevel optional.Field[db.SkillLevel]
	Handicap   optional.Field[*int]
	Location   optional.Field[string]
	Bio        optional.Field[*string]
	HomeCourse optional.Field[*string]
}

type NewCourse struct {
	Name        string `validate:"required,max=128"`
	Location    string `validate:"required,max=128"`
	Description *string
	Par         int `validate:"min=1"`
}

// CreateUser registers a golfer.
//
// Behavior:
//   - Email and username are checked up front so the caller learns which
//     one collided; a race past the checks is ErrDuplicateUser.
func (s *Service) CreateUser(ctx context.Context, in NewUser) (*db.User, error) {
	if err := s.appCtx.Validate(in); err != nil {
		return nil, err
	}
	if err := s.checkIdentity(ctx, 0, optional.Of(in.Email), optional.Of(in.Username)); err != nil {
		return nil, err
	}

	u := db.User{
		Email:      in.Email,
		Username:   in.Username,
		FullName:   in.FullName,
		SkillLevel: in.SkillLevel,
		Handicap:   in.Handicap,
		Location:   in.Location,
		Bio:        in.Bio,
		HomeCourse: in.HomeCourse,
	}
	if err := s.store.Users.Create(ctx, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// UpdateUser applies ch to user id and returns the fresh row.
// updated_at moves forward even when ch is empty.
func (s *Service) UpdateUser(ctx context.Context, id uint64, ch UserChanges) (*db.User, error) {
	if _, err := s.store.Users.GetByID(ctx, id); err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if ch.Email.Set {
		if err := s.appCtx.Validator.Var(ch.Email.Value, "required,email,max=128"); err != nil {
			return nil, svcErr.InvalidArgument("email must be a valid address")
		}
		updates["email"] = ch.Email.Value
	}
	if ch.Username.Set {
		if strings.TrimSpace(ch.Username.Value) == "" {
			return nil, svcErr.InvalidArgument("username must not be empty")
		}
		updates["username"] = ch.Username.Value
	}
	if ch.FullName.Set {
		if strings.TrimSpace(ch.FullName.Value) == "" {
			return nil, svcErr.InvalidArgument("full_name must not be empty")
		}
		updates["full_name"] = ch.FullName.Value
	}
	if ch.SkillLevel.Set {
		if !ch.SkillLevel.Value.Valid() {
			return nil, svcErr.InvalidArgument("skill_level must be one of beginner, intermediate, advanced, pro")
		}
		updates["skill_level"] = ch.SkillLevel.Value
	}
	if ch.Location.Set {
		if strings.TrimSpace(ch.Location.Value) == "" {
			return nil, svcErr.InvalidArgument("location must not be empty")
		}
		updates["location"] = ch.Location.Value
	}
	if ch.Handicap.Set {
		updates["handicap"] = ch.Handicap.Value
	}
	if ch.Bio.Set {
		updates["bio"] = ch.Bio.Value
	}
	if ch.HomeCourse.Set {
		updates["home_course"] = ch.HomeCourse.Value
	}

	if err := s.checkIdentity(ctx, id, ch.Email, ch.Username); err != nil {
		return nil, err
	}
	if err := s.store.Users.Update(ctx, id, updates); err != nil {
		return nil, err
	}
	return s.store.Users.GetByID(ctx, id)
}

func (s *Service) checkIdentity(ctx context.Context, self uint64, email, username optional.Field[string]) error {
	if email.Set {
		taken, err := s.store.Users.EmailTaken(ctx, email.Value, self)
		if err != nil {
			return err
		}
		if taken {
			return svcErr.ErrDuplicateEmail
		}
	}
	if username.Set {
		taken, err := s.store.Users.UsernameTaken(ctx, username.Value, self)
		if err != nil {
			return err
		}
		if taken {
			return svcErr.ErrDuplicateUsername
		}
	}
	return nil
}

// GetUser returns nil without an error when the user does not exist.
func (s *Service) GetUser(ctx context.Context, id uint64) (*db.User, error) {
	u, err := s.store.Users.GetByID(ctx, id)
	if errors.Is(err, svcErr.ErrUserNotFound) {
		return nil, nil
	}
	return u, err
}

// CreateCourse adds a course and drops the cached course list.
func (s *Service) CreateCourse(ctx context.Context, in NewCourse) (*db.Course, error) {
	if err := s.appCtx.Validate(in); err != nil {
		return nil, err
	}
	exists, err := s.store.Courses.ExistsByNameLocation(ctx, in.Name, in.Location)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, svcErr.ErrDuplicateCourse
	}

	c := db.Course{Name: in.Name, Location: in.Location, Description: in.Description, Par: in.Par}
	if err := s.store.Courses.Create(ctx, &c); err != nil {
		return nil, err
	}

	if err := s.appCtx.RedisCache.InvalidateCourses(ctx); err != nil {
		s.appCtx.Logger.Warn("failed to invalidate courses cache", "err", err)
	}
	return &c, nil
}

// ListCourses returns every course ordered by id.
// Cache-first strategy:
//  1. Reads the JSON list from Redis (courses:all).
//  2. On a miss or Redis error, loads from the DB.
//  3. Stores the DB result back with the configured TTL.
func (s *Service) ListCourses(ctx context.Context) ([]db.Course, error) {
	key := s.appCtx.RedisCache.CoursesKey()

	var cached []db.Course
	ok, err := s.appCtx.RedisCache.GetJSON(ctx, key, &cached)
	switch {
	case err != nil:
		metrics.RecordCacheLookup("courses", "error")
		s.appCtx.Logger.Warn("courses cache read failed", "err", err)
	case ok:
		metrics.RecordCacheLookup("courses", "hit")
		return cached, nil
	default:
		metrics.RecordCacheLookup("courses", "miss")
	}

	courses, err := s.store.Courses.List(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.appCtx.RedisCache.SetJSON(ctx, key, courses); err != nil {
		s.appCtx.Logger.Warn("courses cache write failed", "err", err)
	}
	return courses, nil
}

func (s *Service) AddFavoriteCourse(ctx context.Context, userID, courseID uint64) (*db.UserFavoriteCourse, error) {
	if _, err := s.store.Users.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	exists, err := s.store.Courses.Exists(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, svcErr.ErrCourseNotFound
	}
	dup, err := s.store.Favorites.Exists(ctx, userID, courseID)
	if err != nil {
		return nil, err
	}
	if dup {
		return nil, svcErr.ErrDuplicateFavorite
	}

	f := db.UserFavoriteCourse{UserID: userID, CourseID: courseID}
	if err := s.store.Favorites.Create(ctx, &f); err != nil {
		return nil, err
	}
	return &f, nil
}

func (s *Service) ListFavoriteCourses(ctx context.Context, userID uint64) ([]db.Course, error) {
	return s.store.Favorites.ListCourses(ctx, userID)
}

func (s *Service) AddTimePreference(ctx context.Context, userID uint64, pref db.TimePreference) (*db.UserTimePreference, error) {
	if !pref.Valid() {
		return nil, svcErr.InvalidArgument("time_preference must be one of morning, afternoon, evening, weekend")
	}
	if _, err := s.store.Users.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	dup, err := s.store.TimePreferences.Exists(ctx, userID, pref)
	if err != nil {
		return nil, err
	}
	if dup {
		return nil, svcErr.ErrDuplicateTimePreference
	}

	p := db.UserTimePreference{UserID: userID, TimePreference: pref}
	if err := s.store.TimePreferences.Create(ctx, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *Service) ListTimePreferences(ctx context.Context, userID uint64) ([]db.UserTimePreference, error) {
	return s.store.TimePreferences.ListForUser(ctx, userID)
}
