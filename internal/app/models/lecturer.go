package models

// Lecturer is static reference data belonging to a department
type Lecturer struct {
	ID           string `json:"id"`
	DepartmentID string `json:"departmentId"`
	Name         string `json:"name"`
	Title        string `json:"title"`
}
