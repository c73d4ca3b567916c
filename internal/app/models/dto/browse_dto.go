package dto

import "github.com/oguzkose/resourcehub/internal/app/models"

// DepartmentResponse is a department tile with its live resource count
type DepartmentResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Icon          string `json:"icon"`
	ResourceCount int    `json:"resourceCount"`
}

// CourseResponse is a course card with its live resource count and contact
// lecturer
type CourseResponse struct {
	ID            string `json:"id"`
	DepartmentID  string `json:"departmentId"`
	Code          string `json:"code"`
	Name          string `json:"name"`
	Level         int    `json:"level"`
	ResourceCount int    `json:"resourceCount"`
	LecturerName  string `json:"lecturerName"`
}

// LecturerResponse is a lecturer entry in listings and filter dropdowns
type LecturerResponse struct {
	ID           string `json:"id"`
	DepartmentID string `json:"departmentId"`
	Name         string `json:"name"`
	Title        string `json:"title"`
}

// BrowseResponse is one drill-down view: the trail, the level's listings
// and the resources once a course is selected.
type BrowseResponse struct {
	Breadcrumb  []string             `json:"breadcrumb"`
	Departments []DepartmentResponse `json:"departments,omitempty"`
	Courses     []CourseResponse     `json:"courses,omitempty"`
	Lecturers   []LecturerResponse   `json:"lecturers,omitempty"`
	Resources   []ResourceResponse   `json:"resources,omitempty"`
}

// ToLecturerResponse maps a lecturer to its listing view
func ToLecturerResponse(lecturer *models.Lecturer) LecturerResponse {
	return LecturerResponse{
		ID:           lecturer.ID,
		DepartmentID: lecturer.DepartmentID,
		Name:         lecturer.Name,
		Title:        lecturer.Title,
	}
}

// ToLecturerResponses maps a lecturer list to its listing views
func ToLecturerResponses(lecturers []*models.Lecturer) []LecturerResponse {
	out := make([]LecturerResponse, 0, len(lecturers))
	for _, lecturer := range lecturers {
		out = append(out, ToLecturerResponse(lecturer))
	}
	return out
}
