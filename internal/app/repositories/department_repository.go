package repositories

import (
	"context"

	"github.com/oguzkose/resourcehub/internal/app/models"
	"github.com/oguzkose/resourcehub/internal/kvstore"
)

// DepartmentRepository handles storage operations for departments
type DepartmentRepository struct {
	store kvstore.Store
}

// NewDepartmentRepository creates a new department repository
func NewDepartmentRepository(store kvstore.Store) *DepartmentRepository {
	return &DepartmentRepository{store: store}
}

// GetAll retrieves all departments
func (r *DepartmentRepository) GetAll(ctx context.Context) ([]*models.Department, error) {
	return loadCollection[*models.Department](ctx, r.store, KeyDepartments)
}

// FindByID retrieves a department by id, returning (nil, nil) when absent
func (r *DepartmentRepository) FindByID(ctx context.Context, id string) (*models.Department, error) {
	departments, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, department := range departments {
		if department.ID == id {
			return department, nil
		}
	}
	return nil, nil
}

// SaveAll rewrites the whole department collection (seeding only)
func (r *DepartmentRepository) SaveAll(ctx context.Context, departments []*models.Department) error {
	return saveCollection(ctx, r.store, KeyDepartments, departments)
}
