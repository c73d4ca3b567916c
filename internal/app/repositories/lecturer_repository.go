package repositories

import (
	"context"

	"github.com/oguzkose/resourcehub/internal/app/models"
	"github.com/oguzkose/resourcehub/internal/kvstore"
)

// LecturerRepository handles storage operations for lecturers
type LecturerRepository struct {
	store kvstore.Store
}

// NewLecturerRepository creates a new lecturer repository
func NewLecturerRepository(store kvstore.Store) *LecturerRepository {
	return &LecturerRepository{store: store}
}

// GetAll retrieves all lecturers
func (r *LecturerRepository) GetAll(ctx context.Context) ([]*models.Lecturer, error) {
	return loadCollection[*models.Lecturer](ctx, r.store, KeyLecturers)
}

// FindByID retrieves a lecturer by id, returning (nil, nil) when absent
func (r *LecturerRepository) FindByID(ctx context.Context, id string) (*models.Lecturer, error) {
	lecturers, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, lecturer := range lecturers {
		if lecturer.ID == id {
			return lecturer, nil
		}
	}
	return nil, nil
}

// ByDepartment retrieves the lecturers of a department
func (r *LecturerRepository) ByDepartment(ctx context.Context, departmentID string) ([]*models.Lecturer, error) {
	lecturers, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	var out []*models.Lecturer
	for _, lecturer := range lecturers {
		if lecturer.DepartmentID == departmentID {
			out = append(out, lecturer)
		}
	}
	return out, nil
}

// SaveAll rewrites the whole lecturer collection (seeding only)
func (r *LecturerRepository) SaveAll(ctx context.Context, lecturers []*models.Lecturer) error {
	return saveCollection(ctx, r.store, KeyLecturers, lecturers)
}
