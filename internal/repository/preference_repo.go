package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/oggyb/golf-buddy/internal/db"
	svcErr "github.com/oggyb/golf-buddy/internal/errors"
)

// FavoriteRepository manages the user <-> course favorites join table.
type FavoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(database *gorm.DB) *FavoriteRepository {
	return &FavoriteRepository{db: database}
}

func (r *FavoriteRepository) Create(ctx context.Context, f *db.UserFavoriteCourse) error {
	if err := r.db.WithContext(ctx).Create(f).Error; err != nil {
		if isDuplicate(err) {
			return svcErr.Wrap(svcErr.ErrDuplicateFavorite, err)
		}
		return fmt.Errorf("create favorite: %w", err)
	}
	return nil
}

func (r *FavoriteRepository) Exists(ctx context.Context, userID, courseID uint64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db.UserFavoriteCourse{}).
		Where("user_id = ? AND course_id = ?", userID, courseID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("check favorite: %w", err)
	}
	return count > 0, nil
}

// ListCourses returns the courses a user favorited, oldest favorite first.
func (r *FavoriteRepository) ListCourses(ctx context.Context, userID uint64) ([]db.Course, error) {
	var courses []db.Course
	err := r.db.WithContext(ctx).
		Model(&db.Course{}).
		Joins("JOIN user_favorite_courses ON user_favorite_courses.course_id = courses.id").
		Where("user_favorite_courses.user_id = ?", userID).
		Order("user_favorite_courses.id ASC").
		Find(&courses).Error
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}
	return courses, nil
}

// TimePreferenceRepository manages the user -> time slot table.
type TimePreferenceRepository struct {
	db *gorm.DB
}

func NewTimePreferenceRepository(database *gorm.DB) *TimePreferenceRepository {
	return &TimePreferenceRepository{db: database}
}

func (r *TimePreferenceRepository) Create(ctx context.Context, p *db.UserTimePreference) error {
	if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
		if isDuplicate(err) {
			return svcErr.Wrap(svcErr.ErrDuplicateTimePreference, err)
		}
		return fmt.Errorf("create time preference: %w", err)
	}
	return nil
}

func (r *TimePreferenceRepository) Exists(ctx context.Context, userID uint64, pref db.TimePreference) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db.UserTimePreference{}).
		Where("user_id = ? AND time_preference = ?", userID, pref).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("check time preference: %w", err)
	}
	return count > 0, nil
}

func (r *TimePreferenceRepository) ListForUser(ctx context.Context, userID uint64) ([]db.UserTimePreference, error) {
	var prefs []db.UserTimePreference
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&prefs).Error
	if err != nil {
		return nil, fmt.Errorf("list time preferences: %w", err)
	}
	return prefs, nil
}
