package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/oggyb/golf-buddy/internal/db"
	svcErr "github.com/oggyb/golf-buddy/internal/errors"
)

type CourseRepository struct {
	db *gorm.DB
}

func NewCourseRepository(database *gorm.DB) *CourseRepository {
	return &CourseRepository{db: database}
}

// Create inserts a course; (name, location) collisions are ErrDuplicateCourse.
func (r *CourseRepository) Create(ctx context.Context, c *db.Course) error {
	if err := r.db.WithContext(ctx).Create(c).Error; err != nil {
		if isDuplicate(err) {
			return svcErr.Wrap(svcErr.ErrDuplicateCourse, err)
		}
		return fmt.Errorf("create course: %w", err)
	}
	return nil
}

func (r *CourseRepository) Exists(ctx context.Context, id uint64) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&db.Course{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("check course: %w", err)
	}
	return count > 0, nil
}

// ExistsByNameLocation is the pre-check for the (name, location) uniqueness rule.
func (r *CourseRepository) ExistsByNameLocation(ctx context.Context, name, location string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db.Course{}).
		Where("name = ? AND location = ?", name, location).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("check course: %w", err)
	}
	return count > 0, nil
}

func (r *CourseRepository) List(ctx context.Context) ([]db.Course, error) {
	var courses []db.Course
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&courses).Error; err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	return courses, nil
}
