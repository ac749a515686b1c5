package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"

	"github.com/oggyb/golf-buddy/internal/db"
	svcErr "github.com/oggyb/golf-buddy/internal/errors"
)

// UserRepository provides data access for golfer profiles and buddy search.
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(database *gorm.DB) *UserRepository {
	return &UserRepository{db: database}
}

// SearchFilters are the optional buddy search criteria. Nil means "not applied".
type SearchFilters struct {
	Location        *string
	SkillLevel      *db.SkillLevel `validate:"omitempty,oneof=beginner intermediate advanced pro"`
	MaxHandicapDiff *int           `validate:"omitempty,min=0"`
	CourseID        *uint64
	TimePreference  *db.TimePreference `validate:"omitempty,oneof=morning afternoon evening weekend"`
}

// Create inserts a user. Email/username collisions that slip past the
// service pre-checks surface as ErrDuplicateUser.
func (r *UserRepository) Create(ctx context.Context, u *db.User) error {
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		if isDuplicate(err) {
			return svcErr.Wrap(svcErr.ErrDuplicateUser, err)
		}
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id uint64) (*db.User, error) {
	var u db.User
	if err := r.db.WithContext(ctx).First(&u, id).Error; err != nil {
		if isNotFound(err) {
			return nil, svcErr.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}

// CountExisting counts how many of the given distinct ids exist.
//
// Example:
//
//	repo.CountExisting(ctx, 1, 2) // -> 2 when both users exist
func (r *UserRepository) CountExisting(ctx context.Context, ids ...uint64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db.User{}).
		Where("id IN ?", ids).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return count, nil
}

// EmailTaken reports whether another user (not excludeID) owns email.
func (r *UserRepository) EmailTaken(ctx context.Context, email string, excludeID uint64) (bool, error) {
	return r.taken(ctx, "email", email, excludeID)
}

// UsernameTaken reports whether another user (not excludeID) owns username.
func (r *UserRepository) UsernameTaken(ctx context.Context, username string, excludeID uint64) (bool, error) {
	return r.taken(ctx, "username", username, excludeID)
}

func (r *UserRepository) taken(ctx context.Context, column, value string, excludeID uint64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db.User{}).
		Where(column+" = ? AND id <> ?", value, excludeID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("check %s: %w", column, err)
	}
	return count > 0, nil
}

// Update applies a column -> value change-set and always refreshes updated_at.
// Callers check that the user exists first: MySQL reports changed rows, not
// matched rows, so RowsAffected cannot tell a missing user from a no-op.
func (r *UserRepository) Update(ctx context.Context, id uint64, changes map[string]any) error {
	changes["updated_at"] = r.db.NowFunc()
	res := r.db.WithContext(ctx).
		Model(&db.User{}).
		Where("id = ?", id).
		Updates(changes)
	if res.Error != nil {
		if isDuplicate(res.Error) {
			return svcErr.Wrap(svcErr.ErrDuplicateUser, res.Error)
		}
		return fmt.Errorf("update user: %w", res.Error)
	}
	return nil
}

// Search returns the golfers matching every supplied filter.
//
// Behavior:
//   - location and skill_level are exact equality predicates.
//   - max_handicap_diff keeps users with no handicap, or |handicap| <= diff.
//     It is a magnitude threshold, not a distance from the searcher.
//   - course_id keeps users who favorited that course.
//   - time_preference keeps users who registered that slot.
//   - No filters returns every user. Reads go to a replica when configured.
//
// Example:
//
//	loc := "San Francisco"
//	repo.Search(ctx, SearchFilters{Location: &loc})
func (r *UserRepository) Search(ctx context.Context, f SearchFilters) ([]db.User, error) {
	query := r.db.WithContext(ctx).Clauses(dbresolver.Read).Model(&db.User{})

	if f.Location != nil {
		query = query.Where("location = ?", *f.Location)
	}
	if f.SkillLevel != nil {
		query = query.Where("skill_level = ?", *f.SkillLevel)
	}
	if f.MaxHandicapDiff != nil {
		query = query.Where("(handicap IS NULL OR ABS(handicap) <= ?)", *f.MaxHandicapDiff)
	}
	if f.CourseID != nil {
		favorites := r.db.Model(&db.UserFavoriteCourse{}).
			Select("user_id").
			Where("course_id = ?", *f.CourseID)
		query = query.Where("id IN (?)", favorites)
	}
	if f.TimePreference != nil {
		prefs := r.db.Model(&db.UserTimePreference{}).
			Select("user_id").
			Where("time_preference = ?", *f.TimePreference)
		query = query.Where("id IN (?)", prefs)
	}

	var users []db.User
	if err := query.Order("id ASC").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("search users: %w", err)
	}
	return users, nil
}
