package repositories

import (
	"context"
	"sort"
	"time"

	"github.com/oguzkose/resourcehub/internal/app/models"
	"github.com/oguzkose/resourcehub/internal/kvstore"
	"github.com/oguzkose/resourcehub/internal/pkg/apperrors"
)

// ResourceRepository handles storage operations for uploaded resources
type ResourceRepository struct {
	store kvstore.Store
}

// NewResourceRepository creates a new resource repository
func NewResourceRepository(store kvstore.Store) *ResourceRepository {
	return &ResourceRepository{store: store}
}

// GetAll retrieves all resources
func (r *ResourceRepository) GetAll(ctx context.Context) ([]*models.Resource, error) {
	return loadCollection[*models.Resource](ctx, r.store, KeyResources)
}

// FindByID retrieves a resource by id, returning (nil, nil) when absent
func (r *ResourceRepository) FindByID(ctx context.Context, id string) (*models.Resource, error) {
	resources, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, resource := range resources {
		if resource.ID == id {
			return resource, nil
		}
	}
	return nil, nil
}

func (r *ResourceRepository) filter(ctx context.Context, keep func(*models.Resource) bool) ([]*models.Resource, error) {
	resources, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	var out []*models.Resource
	for _, resource := range resources {
		if keep(resource) {
			out = append(out, resource)
		}
	}
	return out, nil
}

// ByDepartment retrieves the resources of a department
func (r *ResourceRepository) ByDepartment(ctx context.Context, departmentID string) ([]*models.Resource, error) {
	return r.filter(ctx, func(res *models.Resource) bool { return res.DepartmentID == departmentID })
}

// ByCourse retrieves the resources of a course
func (r *ResourceRepository) ByCourse(ctx context.Context, courseID string) ([]*models.Resource, error) {
	return r.filter(ctx, func(res *models.Resource) bool { return res.CourseID == courseID })
}

// ByLecturer retrieves the resources of a lecturer
func (r *ResourceRepository) ByLecturer(ctx context.Context, lecturerID string) ([]*models.Resource, error) {
	return r.filter(ctx, func(res *models.Resource) bool { return res.LecturerID == lecturerID })
}

// ByUploader retrieves the resources uploaded by a user
func (r *ResourceRepository) ByUploader(ctx context.Context, userID string) ([]*models.Resource, error) {
	return r.filter(ctx, func(res *models.Resource) bool { return res.UploadedBy == userID })
}

// Recent retrieves up to limit resources, newest upload first
func (r *ResourceRepository) Recent(ctx context.Context, limit int) ([]*models.Resource, error) {
	resources, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(resources, func(i, j int) bool {
		return resources[i].UploadDate.After(resources[j].UploadDate)
	})

	if limit > 0 && len(resources) > limit {
		resources = resources[:limit]
	}
	return resources, nil
}

// Add assigns a generated id, the upload timestamp and a zero download
// counter to the draft, appends it and persists the snapshot.
func (r *ResourceRepository) Add(ctx context.Context, draft *models.Resource) (*models.Resource, error) {
	resources, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	resource := *draft
	resource.ID = GenerateID()
	resource.UploadDate = time.Now().UTC()
	resource.Downloads = 0

	resources = append(resources, &resource)
	if err := saveCollection(ctx, r.store, KeyResources, resources); err != nil {
		return nil, err
	}
	return &resource, nil
}

// ResourceUpdate carries the fields a resource update may touch; nil fields
// are left unchanged.
type ResourceUpdate struct {
	Title       *string
	Description *string
	Type        *models.ResourceType
	Year        *string
}

// Update merges the given fields into the stored resource. An absent id
// reports ErrResourceNotFound and nothing is written.
func (r *ResourceRepository) Update(ctx context.Context, id string, update ResourceUpdate) error {
	resources, err := r.GetAll(ctx)
	if err != nil {
		return err
	}

	for _, resource := range resources {
		if resource.ID != id {
			continue
		}
		if update.Title != nil {
			resource.Title = *update.Title
		}
		if update.Description != nil {
			resource.Description = *update.Description
		}
		if update.Type != nil {
			resource.Type = *update.Type
		}
		if update.Year != nil {
			resource.Year = *update.Year
		}
		return saveCollection(ctx, r.store, KeyResources, resources)
	}

	return apperrors.ErrResourceNotFound
}

// IncrementDownloads adds one to the resource's download counter.
// Best-effort: an absent id is a no-op, not an error.
func (r *ResourceRepository) IncrementDownloads(ctx context.Context, id string) error {
	resources, err := r.GetAll(ctx)
	if err != nil {
		return err
	}

	for _, resource := range resources {
		if resource.ID == id {
			resource.Downloads++
			return saveCollection(ctx, r.store, KeyResources, resources)
		}
	}
	return nil
}

// Remove deletes one resource and persists the rest. An absent id reports
// ErrResourceNotFound.
func (r *ResourceRepository) Remove(ctx context.Context, id string) error {
	resources, err := r.GetAll(ctx)
	if err != nil {
		return err
	}

	kept := resources[:0]
	found := false
	for _, resource := range resources {
		if resource.ID == id {
			found = true
			continue
		}
		kept = append(kept, resource)
	}
	if !found {
		return apperrors.ErrResourceNotFound
	}

	return saveCollection(ctx, r.store, KeyResources, kept)
}
