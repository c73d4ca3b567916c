package repositories

import (
	"context"

	"github.com/oguzkose/resourcehub/internal/app/models"
	"github.com/oguzkose/resourcehub/internal/kvstore"
)

// CourseRepository handles storage operations for courses
type CourseRepository struct {
	store kvstore.Store
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(store kvstore.Store) *CourseRepository {
	return &CourseRepository{store: store}
}

// GetAll retrieves all courses
func (r *CourseRepository) GetAll(ctx context.Context) ([]*models.Course, error) {
	return loadCollection[*models.Course](ctx, r.store, KeyCourses)
}

// FindByID retrieves a course by id, returning (nil, nil) when absent
func (r *CourseRepository) FindByID(ctx context.Context, id string) (*models.Course, error) {
	courses, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, course := range courses {
		if course.ID == id {
			return course, nil
		}
	}
	return nil, nil
}

// ByDepartment retrieves the courses of a department
func (r *CourseRepository) ByDepartment(ctx context.Context, departmentID string) ([]*models.Course, error) {
	courses, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	var out []*models.Course
	for _, course := range courses {
		if course.DepartmentID == departmentID {
			out = append(out, course)
		}
	}
	return out, nil
}

// SaveAll rewrites the whole course collection (seeding only)
func (r *CourseRepository) SaveAll(ctx context.Context, courses []*models.Course) error {
	return saveCollection(ctx, r.store, KeyCourses, courses)
}
