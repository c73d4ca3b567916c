package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oguzkose/resourcehub/internal/app/models"
	"github.com/oguzkose/resourcehub/internal/app/repositories"
	"github.com/oguzkose/resourcehub/internal/kvstore"
	"github.com/oguzkose/resourcehub/internal/pkg/apperrors"
)

func newResourceService(t *testing.T) *ResourceService {
	t.Helper()
	repos := repositories.NewRepositories(kvstore.NewMemoryStore())
	return NewResourceService(repos.ResourceRepository, repos.UserRepository, repos.DepartmentRepository)
}

func validUpload() UploadInput {
	return UploadInput{
		Title:        "Calculus Midterm 2025",
		Description:  "Past exam with solutions",
		Type:         models.ResourceTypeExam,
		DepartmentID: "mathematics",
		CourseID:     "math101",
		LecturerID:   "lec006",
		Year:         "2025",
		FileName:     "midterm_2025.pdf",
		FileSize:     420_000,
		FileType:     "application/pdf",
		FileData:     "data:application/pdf;base64,JVBERi0xLjQ=",
	}
}

func TestUploadStoresResource(t *testing.T) {
	service := newResourceService(t)

	resource, err := service.Upload(context.Background(), validUpload(), "u1")
	require.NoError(t, err)

	assert.NotEmpty(t, resource.ID)
	assert.Equal(t, "u1", resource.UploadedBy)
	assert.Equal(t, 0, resource.Downloads)
	assert.False(t, resource.UploadDate.IsZero())
}

func TestUploadRejectsMissingMetadata(t *testing.T) {
	service := newResourceService(t)

	input := validUpload()
	input.Title = ""
	_, err := service.Upload(context.Background(), input, "u1")
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestUploadRejectsUnknownType(t *testing.T) {
	service := newResourceService(t)

	input := validUpload()
	input.Type = "podcast"
	_, err := service.Upload(context.Background(), input, "u1")
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestUploadRejectsDisallowedFileType(t *testing.T) {
	service := newResourceService(t)

	input := validUpload()
	input.FileType = "application/x-msdownload"
	input.FileName = "setup.exe"
	_, err := service.Upload(context.Background(), input, "u1")
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestUploadRejectsOversizedFile(t *testing.T) {
	service := newResourceService(t)

	input := validUpload()
	input.FileSize = MaxFileSize + 1
	_, err := service.Upload(context.Background(), input, "u1")
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestUploadRejectsNonDataURLPayload(t *testing.T) {
	service := newResourceService(t)

	input := validUpload()
	input.FileData = "JVBERi0xLjQ="
	_, err := service.Upload(context.Background(), input, "u1")
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestDownloadReturnsPayloadAndCountsIt(t *testing.T) {
	service := newResourceService(t)
	ctx := context.Background()

	resource, err := service.Upload(ctx, validUpload(), "u1")
	require.NoError(t, err)

	payload, err := service.Download(ctx, resource.ID)
	require.NoError(t, err)
	assert.Equal(t, "midterm_2025.pdf", payload.FileName)
	assert.Equal(t, "application/pdf", payload.FileType)
	assert.Equal(t, resource.FileData, payload.FileData)

	stored, err := service.Get(ctx, resource.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, stored.Downloads)
}

func TestDownloadAbsentResource(t *testing.T) {
	service := newResourceService(t)

	_, err := service.Download(context.Background(), "missing")
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}

func TestDeleteRequiresOwnership(t *testing.T) {
	service := newResourceService(t)
	ctx := context.Background()

	resource, err := service.Upload(ctx, validUpload(), "owner")
	require.NoError(t, err)

	err = service.Delete(ctx, resource.ID, "someone-else")
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	// Still present after the refused delete.
	_, err = service.Get(ctx, resource.ID)
	assert.NoError(t, err)
}

func TestDeleteByOwner(t *testing.T) {
	service := newResourceService(t)
	ctx := context.Background()

	resource, err := service.Upload(ctx, validUpload(), "owner")
	require.NoError(t, err)

	require.NoError(t, service.Delete(ctx, resource.ID, "owner"))

	_, err = service.Get(ctx, resource.ID)
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}

func TestDeleteAbsentResource(t *testing.T) {
	service := newResourceService(t)

	err := service.Delete(context.Background(), "missing", "u1")
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}

func TestStatsAggregateTotals(t *testing.T) {
	store := kvstore.NewMemoryStore()
	repos := repositories.NewRepositories(store)
	service := NewResourceService(repos.ResourceRepository, repos.UserRepository, repos.DepartmentRepository)
	ctx := context.Background()

	require.NoError(t, repos.DepartmentRepository.SaveAll(ctx, []*models.Department{
		{ID: "comp-sci", Name: "Computer Science"},
		{ID: "physics", Name: "Physics"},
	}))
	_, err := repos.UserRepository.Add(ctx, &models.User{Name: "Ada", Email: "ada@example.edu"})
	require.NoError(t, err)

	first, err := service.Upload(ctx, validUpload(), "u1")
	require.NoError(t, err)

	notes := validUpload()
	notes.Type = models.ResourceTypeNotes
	_, err = service.Upload(ctx, notes, "u1")
	require.NoError(t, err)

	other := validUpload()
	_, err = service.Upload(ctx, other, "u2")
	require.NoError(t, err)

	_, err = service.Download(ctx, first.ID)
	require.NoError(t, err)

	stats, err := service.Stats(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalResources)
	assert.Equal(t, 1, stats.TotalUsers)
	assert.Equal(t, 2, stats.TotalDepartments)
	assert.Equal(t, 1, stats.TotalDownloads)
	assert.Equal(t, int64(3*420_000), stats.TotalBytes)
	assert.Equal(t, 2, stats.MyUploads)
	assert.Equal(t, 2, stats.ByType[models.ResourceTypeExam])
	assert.Equal(t, 1, stats.ByType[models.ResourceTypeNotes])
}

func TestStatsWithoutUserSkipsPersonalCount(t *testing.T) {
	service := newResourceService(t)
	ctx := context.Background()

	_, err := service.Upload(ctx, validUpload(), "u1")
	require.NoError(t, err)

	stats, err := service.Stats(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, 0, stats.MyUploads)
	assert.Equal(t, 1, stats.TotalResources)
}
