package models

// Course is static reference data belonging to a department
type Course struct {
	ID           string `json:"id"`
	DepartmentID string `json:"departmentId"`
	Code         string `json:"code"`
	Name         string `json:"name"`
	Level        int    `json:"level"`
}

// Label renders the dropdown/suggestion label for a course
func (c *Course) Label() string {
	return c.Code + " - " + c.Name
}
