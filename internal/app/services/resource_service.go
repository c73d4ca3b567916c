package services

import (
	"context"
	"strings"

	"github.com/oguzkose/resourcehub/internal/app/models"
	"github.com/oguzkose/resourcehub/internal/app/repositories"
	"github.com/oguzkose/resourcehub/internal/pkg/apperrors"
	"github.com/oguzkose/resourcehub/internal/pkg/logger"
)

// MaxFileSize is the upload size ceiling in bytes (10 MiB)
const MaxFileSize = 10 * 1024 * 1024

// allowedFileTypes lists the accepted upload MIME types
var allowedFileTypes = map[string]struct{}{
	"application/pdf":    {},
	"application/msword": {},
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": {},
	"image/jpeg": {},
	"image/png":  {},
}

// ResourceService handles resource uploads, downloads and removal
type ResourceService struct {
	resources   *repositories.ResourceRepository
	users       *repositories.UserRepository
	departments *repositories.DepartmentRepository
}

// NewResourceService creates a new resource service
func NewResourceService(
	resources *repositories.ResourceRepository,
	users *repositories.UserRepository,
	departments *repositories.DepartmentRepository,
) *ResourceService {
	return &ResourceService{
		resources:   resources,
		users:       users,
		departments: departments,
	}
}

// UploadInput carries the fields of an upload request. FileData is the
// whole file as a self-describing inline payload.
type UploadInput struct {
	Title        string
	Description  string
	Type         models.ResourceType
	DepartmentID string
	CourseID     string
	LecturerID   string
	Year         string
	FileName     string
	FileSize     int64
	FileType     string
	FileData     string
}

// Upload validates the metadata and the file payload and stores the new
// resource attributed to the uploader.
func (s *ResourceService) Upload(ctx context.Context, input UploadInput, uploaderID string) (*models.Resource, error) {
	if input.Title == "" || input.DepartmentID == "" || input.CourseID == "" {
		return nil, apperrors.NewValidationError("title, department and course are required")
	}
	if !input.Type.IsValid() {
		return nil, apperrors.NewValidationError("unknown resource type")
	}
	if input.FileName == "" || input.FileData == "" {
		return nil, apperrors.NewValidationError("a file is required")
	}
	if _, ok := allowedFileTypes[input.FileType]; !ok {
		return nil, apperrors.NewValidationError("file type is not allowed; upload PDF, Word or image files")
	}
	if input.FileSize > MaxFileSize {
		return nil, apperrors.NewValidationError("file exceeds the 10 MB size limit")
	}
	if !strings.HasPrefix(input.FileData, "data:") {
		return nil, apperrors.NewValidationError("file payload is not a data URL")
	}

	resource, err := s.resources.Add(ctx, &models.Resource{
		Title:        input.Title,
		Description:  input.Description,
		Type:         input.Type,
		DepartmentID: input.DepartmentID,
		CourseID:     input.CourseID,
		LecturerID:   input.LecturerID,
		Year:         input.Year,
		FileName:     input.FileName,
		FileSize:     input.FileSize,
		FileType:     input.FileType,
		FileData:     input.FileData,
		UploadedBy:   uploaderID,
	})
	if err != nil {
		return nil, err
	}

	logger.Info().Str("resourceId", resource.ID).Str("userId", uploaderID).Msg("Resource uploaded")
	return resource, nil
}

// DownloadPayload is what a download hands back: the file name, its MIME
// type and the inline payload.
type DownloadPayload struct {
	FileName string
	FileType string
	FileData string
}

// Download returns the stored file payload and bumps the download counter.
// The counter bump is best-effort; a failed bump does not fail the download.
func (s *ResourceService) Download(ctx context.Context, id string) (*DownloadPayload, error) {
	resource, err := s.resources.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if resource == nil {
		return nil, apperrors.NewResourceNotFoundError("resource not found")
	}

	if err := s.resources.IncrementDownloads(ctx, id); err != nil {
		logger.Warn().Err(err).Str("resourceId", id).Msg("Failed to record download")
	}

	return &DownloadPayload{
		FileName: resource.FileName,
		FileType: resource.FileType,
		FileData: resource.FileData,
	}, nil
}

// Get returns one resource by id
func (s *ResourceService) Get(ctx context.Context, id string) (*models.Resource, error) {
	resource, err := s.resources.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if resource == nil {
		return nil, apperrors.NewResourceNotFoundError("resource not found")
	}
	return resource, nil
}

// Delete removes a resource. Only the uploader may delete their own upload.
func (s *ResourceService) Delete(ctx context.Context, id, userID string) error {
	resource, err := s.resources.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if resource == nil {
		return apperrors.NewResourceNotFoundError("resource not found")
	}
	if resource.UploadedBy != userID {
		return apperrors.NewForbiddenError("only the uploader can delete a resource")
	}

	if err := s.resources.Remove(ctx, id); err != nil {
		return err
	}

	logger.Info().Str("resourceId", id).Str("userId", userID).Msg("Resource deleted")
	return nil
}

// Recent returns up to limit resources, newest upload first
func (s *ResourceService) Recent(ctx context.Context, limit int) ([]*models.Resource, error) {
	return s.resources.Recent(ctx, limit)
}

// Stats summarises the catalog for the dashboard
type Stats struct {
	TotalResources   int                         `json:"totalResources"`
	TotalUsers       int                         `json:"totalUsers"`
	TotalDepartments int                         `json:"totalDepartments"`
	TotalDownloads   int                         `json:"totalDownloads"`
	TotalBytes       int64                       `json:"totalBytes"`
	MyUploads        int                         `json:"myUploads"`
	ByType           map[models.ResourceType]int `json:"byType"`
}

// Stats computes catalog totals from the live collections. MyUploads counts
// the given user's uploads; an empty userID leaves it at zero.
func (s *ResourceService) Stats(ctx context.Context, userID string) (*Stats, error) {
	resources, err := s.resources.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	users, err := s.users.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	departments, err := s.departments.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	stats := &Stats{
		TotalResources:   len(resources),
		TotalUsers:       len(users),
		TotalDepartments: len(departments),
		ByType:           make(map[models.ResourceType]int),
	}
	for _, resource := range resources {
		stats.TotalDownloads += resource.Downloads
		stats.TotalBytes += resource.FileSize
		stats.ByType[resource.Type]++
		if userID != "" && resource.UploadedBy == userID {
			stats.MyUploads++
		}
	}
	return stats, nil
}
