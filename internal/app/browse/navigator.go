package browse

import (
	"github.com/oguzkose/resourcehub/internal/app/repositories"
)

// State is the current drill-down position: a department, optionally a
// course within it, optionally a lecturer narrowing the course view. The
// zero value is the top-level department grid.
type State struct {
	DepartmentID string
	CourseID     string
	LecturerID   string
}

// Navigator walks the department, course and resource hierarchy. Each
// navigator carries its own drill-down state, so callers hold one per
// session instead of sharing position through package globals.
type Navigator struct {
	state       State
	resources   *repositories.ResourceRepository
	departments *repositories.DepartmentRepository
	courses     *repositories.CourseRepository
	lecturers   *repositories.LecturerRepository
}

// NewNavigator creates a navigator positioned at the department grid
func NewNavigator(
	resources *repositories.ResourceRepository,
	departments *repositories.DepartmentRepository,
	courses *repositories.CourseRepository,
	lecturers *repositories.LecturerRepository,
) *Navigator {
	return &Navigator{
		resources:   resources,
		departments: departments,
		courses:     courses,
		lecturers:   lecturers,
	}
}

// State returns the current drill-down position
func (n *Navigator) State() State {
	return n.state
}

// Reset returns to the department grid, discarding the selection
func (n *Navigator) Reset() {
	n.state = State{}
}

// EnterDepartment selects a department and discards any deeper selection
func (n *Navigator) EnterDepartment(departmentID string) {
	n.state = State{DepartmentID: departmentID}
}

// EnterCourse selects a course within the current department and discards
// the lecturer narrowing
func (n *Navigator) EnterCourse(courseID string) {
	n.state.CourseID = courseID
	n.state.LecturerID = ""
}

// SetLecturer narrows the current course view to one lecturer. An empty id
// removes the narrowing.
func (n *Navigator) SetLecturer(lecturerID string) {
	n.state.LecturerID = lecturerID
}
