package dto

import (
	"time"

	"github.com/oguzkose/resourcehub/internal/app/models"
)

// UploadResourceRequest is the upload payload. FileData carries the whole
// file as a data URL.
type UploadResourceRequest struct {
	Title        string `json:"title" binding:"required"`
	Description  string `json:"description"`
	Type         string `json:"type" binding:"required"`
	DepartmentID string `json:"departmentId" binding:"required"`
	CourseID     string `json:"courseId" binding:"required"`
	LecturerID   string `json:"lecturerId"`
	Year         string `json:"year"`
	FileName     string `json:"fileName" binding:"required"`
	FileSize     int64  `json:"fileSize"`
	FileType     string `json:"fileType" binding:"required"`
	FileData     string `json:"fileData" binding:"required"`
}

// ResourceResponse is the metadata view of a resource. The file payload is
// omitted; downloads fetch it separately.
type ResourceResponse struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Type         string    `json:"type"`
	DepartmentID string    `json:"departmentId"`
	CourseID     string    `json:"courseId"`
	LecturerID   string    `json:"lecturerId"`
	Year         string    `json:"year"`
	FileName     string    `json:"fileName"`
	FileSize     int64     `json:"fileSize"`
	FileType     string    `json:"fileType"`
	UploadedBy   string    `json:"uploadedBy"`
	UploadDate   time.Time `json:"uploadDate"`
	Downloads    int       `json:"downloads"`
}

// DownloadResponse is the file payload of a download
type DownloadResponse struct {
	FileName string `json:"fileName"`
	FileType string `json:"fileType"`
	FileData string `json:"fileData"`
}

// ToResourceResponse maps a resource to its metadata view
func ToResourceResponse(resource *models.Resource) ResourceResponse {
	return ResourceResponse{
		ID:           resource.ID,
		Title:        resource.Title,
		Description:  resource.Description,
		Type:         string(resource.Type),
		DepartmentID: resource.DepartmentID,
		CourseID:     resource.CourseID,
		LecturerID:   resource.LecturerID,
		Year:         resource.Year,
		FileName:     resource.FileName,
		FileSize:     resource.FileSize,
		FileType:     resource.FileType,
		UploadedBy:   resource.UploadedBy,
		UploadDate:   resource.UploadDate,
		Downloads:    resource.Downloads,
	}
}

// ToResourceResponses maps a resource list to its metadata views
func ToResourceResponses(resources []*models.Resource) []ResourceResponse {
	out := make([]ResourceResponse, 0, len(resources))
	for _, resource := range resources {
		out = append(out, ToResourceResponse(resource))
	}
	return out
}
