package browse

import (
	"context"

	"github.com/oguzkose/resourcehub/internal/app/models"
)

// DepartmentTile is a department together with its live resource count
type DepartmentTile struct {
	Department    *models.Department
	ResourceCount int
}

// CourseCard is a course together with its live resource count and the
// name of the department's first lecturer, shown as the course contact.
type CourseCard struct {
	Course        *models.Course
	ResourceCount int
	LecturerName  string
}

// DepartmentTiles returns every department with the number of resources
// filed under it. Counts are computed from the live collection on every
// call, never cached.
func (n *Navigator) DepartmentTiles(ctx context.Context) ([]DepartmentTile, error) {
	departments, err := n.departments.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	resources, err := n.resources.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int)
	for _, resource := range resources {
		counts[resource.DepartmentID]++
	}

	tiles := make([]DepartmentTile, 0, len(departments))
	for _, department := range departments {
		tiles = append(tiles, DepartmentTile{
			Department:    department,
			ResourceCount: counts[department.ID],
		})
	}
	return tiles, nil
}

// Courses returns the courses of the selected department with live resource
// counts. Without a department selection it returns nothing.
func (n *Navigator) Courses(ctx context.Context) ([]CourseCard, error) {
	if n.state.DepartmentID == "" {
		return nil, nil
	}

	courses, err := n.courses.ByDepartment(ctx, n.state.DepartmentID)
	if err != nil {
		return nil, err
	}
	resources, err := n.resources.ByDepartment(ctx, n.state.DepartmentID)
	if err != nil {
		return nil, err
	}
	lecturers, err := n.lecturers.ByDepartment(ctx, n.state.DepartmentID)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int)
	for _, resource := range resources {
		counts[resource.CourseID]++
	}

	lecturerName := ""
	if len(lecturers) > 0 {
		lecturerName = lecturers[0].Name
	}

	cards := make([]CourseCard, 0, len(courses))
	for _, course := range courses {
		cards = append(cards, CourseCard{
			Course:        course,
			ResourceCount: counts[course.ID],
			LecturerName:  lecturerName,
		})
	}
	return cards, nil
}

// Resources returns the resources of the selected course, narrowed to the
// selected lecturer when one is set. Without a course selection it returns
// nothing.
func (n *Navigator) Resources(ctx context.Context) ([]*models.Resource, error) {
	if n.state.CourseID == "" {
		return nil, nil
	}

	resources, err := n.resources.ByCourse(ctx, n.state.CourseID)
	if err != nil {
		return nil, err
	}
	if n.state.LecturerID == "" {
		return resources, nil
	}

	var narrowed []*models.Resource
	for _, resource := range resources {
		if resource.LecturerID == n.state.LecturerID {
			narrowed = append(narrowed, resource)
		}
	}
	return narrowed, nil
}

// Breadcrumb renders the current position as trail segments, starting at
// the department grid. Selections pointing at records that no longer exist
// are simply omitted.
func (n *Navigator) Breadcrumb(ctx context.Context) ([]string, error) {
	trail := []string{"All Departments"}

	if n.state.DepartmentID != "" {
		department, err := n.departments.FindByID(ctx, n.state.DepartmentID)
		if err != nil {
			return nil, err
		}
		if department != nil {
			trail = append(trail, department.Name)
		}
	}

	if n.state.CourseID != "" {
		course, err := n.courses.FindByID(ctx, n.state.CourseID)
		if err != nil {
			return nil, err
		}
		if course != nil {
			trail = append(trail, course.Label())
		}
	}

	return trail, nil
}

// FilterOptions returns the lecturers of the selected department, offered
// as the narrowing choices on the course view.
func (n *Navigator) FilterOptions(ctx context.Context) ([]*models.Lecturer, error) {
	if n.state.DepartmentID == "" {
		return nil, nil
	}
	return n.lecturers.ByDepartment(ctx, n.state.DepartmentID)
}
