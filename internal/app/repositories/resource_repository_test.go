package repositories

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oguzkose/resourcehub/internal/app/models"
	"github.com/oguzkose/resourcehub/internal/kvstore"
	"github.com/oguzkose/resourcehub/internal/pkg/apperrors"
)

// seedResources writes a collection snapshot directly so tests control ids
// and upload dates.
func seedResources(t *testing.T, store kvstore.Store, resources []*models.Resource) {
	t.Helper()
	raw, err := json.Marshal(resources)
	require.NoError(t, err)
	require.NoError(t, store.Set(context.Background(), KeyResources, raw))
}

func day(n int) time.Time {
	return time.Date(2026, 3, n, 0, 0, 0, 0, time.UTC)
}

func TestResourceAddAssignsIdentity(t *testing.T) {
	repo := NewResourceRepository(kvstore.NewMemoryStore())
	ctx := context.Background()

	resource, err := repo.Add(ctx, &models.Resource{
		Title:        "Sorting Lecture Notes",
		Type:         models.ResourceTypeNotes,
		DepartmentID: "comp-sci",
		CourseID:     "cs301",
		Downloads:    99,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resource.ID)
	assert.False(t, resource.UploadDate.IsZero())
	assert.Equal(t, 0, resource.Downloads, "download counter starts at zero regardless of the draft")

	stored, err := repo.FindByID(ctx, resource.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "Sorting Lecture Notes", stored.Title)
}

func TestResourceRecentOrdersNewestFirst(t *testing.T) {
	store := kvstore.NewMemoryStore()
	repo := NewResourceRepository(store)
	seedResources(t, store, []*models.Resource{
		{ID: "r1", Title: "Oldest", UploadDate: day(1)},
		{ID: "r2", Title: "Newest", UploadDate: day(9)},
		{ID: "r3", Title: "Middle", UploadDate: day(5)},
	})

	recent, err := repo.Recent(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "r2", recent[0].ID)
	assert.Equal(t, "r3", recent[1].ID)
}

func TestResourceRecentZeroLimitReturnsAll(t *testing.T) {
	store := kvstore.NewMemoryStore()
	repo := NewResourceRepository(store)
	seedResources(t, store, []*models.Resource{
		{ID: "r1", UploadDate: day(1)},
		{ID: "r2", UploadDate: day(2)},
	})

	recent, err := repo.Recent(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, recent, 2)
}

func TestResourceFilters(t *testing.T) {
	store := kvstore.NewMemoryStore()
	repo := NewResourceRepository(store)
	seedResources(t, store, []*models.Resource{
		{ID: "r1", DepartmentID: "comp-sci", CourseID: "cs101", LecturerID: "lec001", UploadedBy: "u1"},
		{ID: "r2", DepartmentID: "comp-sci", CourseID: "cs201", LecturerID: "lec002", UploadedBy: "u2"},
		{ID: "r3", DepartmentID: "physics", CourseID: "phys101", LecturerID: "lec008", UploadedBy: "u1"},
	})
	ctx := context.Background()

	byDept, err := repo.ByDepartment(ctx, "comp-sci")
	require.NoError(t, err)
	assert.Len(t, byDept, 2)

	byCourse, err := repo.ByCourse(ctx, "cs201")
	require.NoError(t, err)
	require.Len(t, byCourse, 1)
	assert.Equal(t, "r2", byCourse[0].ID)

	byLecturer, err := repo.ByLecturer(ctx, "lec008")
	require.NoError(t, err)
	require.Len(t, byLecturer, 1)
	assert.Equal(t, "r3", byLecturer[0].ID)

	byUploader, err := repo.ByUploader(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, byUploader, 2)
}

func TestResourceIncrementDownloads(t *testing.T) {
	store := kvstore.NewMemoryStore()
	repo := NewResourceRepository(store)
	seedResources(t, store, []*models.Resource{{ID: "r1", Downloads: 4}})
	ctx := context.Background()

	require.NoError(t, repo.IncrementDownloads(ctx, "r1"))
	require.NoError(t, repo.IncrementDownloads(ctx, "r1"))

	stored, err := repo.FindByID(ctx, "r1")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, 6, stored.Downloads)
}

func TestResourceIncrementDownloadsAbsentIsNoop(t *testing.T) {
	repo := NewResourceRepository(kvstore.NewMemoryStore())
	assert.NoError(t, repo.IncrementDownloads(context.Background(), "missing"))
}

func TestResourceRemove(t *testing.T) {
	store := kvstore.NewMemoryStore()
	repo := NewResourceRepository(store)
	seedResources(t, store, []*models.Resource{{ID: "r1"}, {ID: "r2"}})
	ctx := context.Background()

	require.NoError(t, repo.Remove(ctx, "r1"))

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "r2", all[0].ID)
}

func TestResourceRemoveAbsentReportsNotFound(t *testing.T) {
	repo := NewResourceRepository(kvstore.NewMemoryStore())
	err := repo.Remove(context.Background(), "missing")
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}

func TestResourceUpdateAbsentReportsNotFound(t *testing.T) {
	repo := NewResourceRepository(kvstore.NewMemoryStore())

	title := "New Title"
	err := repo.Update(context.Background(), "missing", ResourceUpdate{Title: &title})
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}
