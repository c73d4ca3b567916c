package models

import "time"

// Resource is an uploaded academic file plus its descriptive metadata.
// The file itself is embedded as a self-describing inline payload in
// FileData, so a download needs no separate fetch.
type Resource struct {
	ID           string       `json:"id"`
	Title        string       `json:"title"`
	Description  string       `json:"description"`
	Type         ResourceType `json:"type"`
	DepartmentID string       `json:"departmentId"`
	CourseID     string       `json:"courseId"`
	LecturerID   string       `json:"lecturerId"`
	Year         string       `json:"year"`
	FileName     string       `json:"fileName"`
	FileSize     int64        `json:"fileSize"`
	FileType     string       `json:"fileType"`
	FileData     string       `json:"fileData"`
	UploadedBy   string       `json:"uploadedBy"`
	UploadDate   time.Time    `json:"uploadDate"`
	Downloads    int          `json:"downloads"`
}
