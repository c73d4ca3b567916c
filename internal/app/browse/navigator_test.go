package browse

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oguzkose/resourcehub/internal/app/models"
	"github.com/oguzkose/resourcehub/internal/app/repositories"
	"github.com/oguzkose/resourcehub/internal/kvstore"
)

func newNavigator(t *testing.T, store kvstore.Store) *Navigator {
	t.Helper()
	return NewNavigator(
		repositories.NewResourceRepository(store),
		repositories.NewDepartmentRepository(store),
		repositories.NewCourseRepository(store),
		repositories.NewLecturerRepository(store),
	)
}

func seedCollection(t *testing.T, store kvstore.Store, key string, items interface{}) {
	t.Helper()
	raw, err := json.Marshal(items)
	require.NoError(t, err)
	require.NoError(t, store.Set(context.Background(), key, raw))
}

func seedCatalog(t *testing.T, store kvstore.Store) {
	t.Helper()
	seedCollection(t, store, repositories.KeyDepartments, []*models.Department{
		{ID: "comp-sci", Name: "Computer Science"},
		{ID: "physics", Name: "Physics"},
	})
	seedCollection(t, store, repositories.KeyCourses, []*models.Course{
		{ID: "cs101", DepartmentID: "comp-sci", Code: "CS101", Name: "Introduction to Programming"},
		{ID: "cs201", DepartmentID: "comp-sci", Code: "CS201", Name: "Data Structures"},
		{ID: "phys101", DepartmentID: "physics", Code: "PHYS101", Name: "General Physics I"},
	})
	seedCollection(t, store, repositories.KeyLecturers, []*models.Lecturer{
		{ID: "lec001", DepartmentID: "comp-sci", Name: "Dr. Sarah Johnson"},
		{ID: "lec002", DepartmentID: "comp-sci", Name: "Prof. Michael Chen"},
	})
	seedCollection(t, store, repositories.KeyResources, []*models.Resource{
		{ID: "r1", DepartmentID: "comp-sci", CourseID: "cs101", LecturerID: "lec001"},
		{ID: "r2", DepartmentID: "comp-sci", CourseID: "cs101", LecturerID: "lec002"},
		{ID: "r3", DepartmentID: "comp-sci", CourseID: "cs201", LecturerID: "lec001"},
		{ID: "r4", DepartmentID: "physics", CourseID: "phys101"},
	})
}

func TestTransitionsClearDeeperSelection(t *testing.T) {
	navigator := newNavigator(t, kvstore.NewMemoryStore())

	navigator.EnterDepartment("comp-sci")
	navigator.EnterCourse("cs101")
	navigator.SetLecturer("lec001")
	assert.Equal(t, State{DepartmentID: "comp-sci", CourseID: "cs101", LecturerID: "lec001"}, navigator.State())

	navigator.EnterCourse("cs201")
	assert.Equal(t, State{DepartmentID: "comp-sci", CourseID: "cs201"}, navigator.State())

	navigator.EnterDepartment("physics")
	assert.Equal(t, State{DepartmentID: "physics"}, navigator.State())

	navigator.Reset()
	assert.Equal(t, State{}, navigator.State())
}

func TestDepartmentTilesCarryLiveCounts(t *testing.T) {
	store := kvstore.NewMemoryStore()
	seedCatalog(t, store)
	navigator := newNavigator(t, store)

	tiles, err := navigator.DepartmentTiles(context.Background())
	require.NoError(t, err)
	require.Len(t, tiles, 2)

	counts := map[string]int{}
	for _, tile := range tiles {
		counts[tile.Department.ID] = tile.ResourceCount
	}
	assert.Equal(t, 3, counts["comp-sci"])
	assert.Equal(t, 1, counts["physics"])
}

func TestCoursesCarryCountsAndContactLecturer(t *testing.T) {
	store := kvstore.NewMemoryStore()
	seedCatalog(t, store)
	navigator := newNavigator(t, store)
	navigator.EnterDepartment("comp-sci")

	cards, err := navigator.Courses(context.Background())
	require.NoError(t, err)
	require.Len(t, cards, 2)

	byID := map[string]CourseCard{}
	for _, card := range cards {
		byID[card.Course.ID] = card
	}
	assert.Equal(t, 2, byID["cs101"].ResourceCount)
	assert.Equal(t, 1, byID["cs201"].ResourceCount)
	assert.Equal(t, "Dr. Sarah Johnson", byID["cs101"].LecturerName)
	assert.Equal(t, "Dr. Sarah Johnson", byID["cs201"].LecturerName)
}

func TestCoursesWithoutDepartmentSelection(t *testing.T) {
	store := kvstore.NewMemoryStore()
	seedCatalog(t, store)
	navigator := newNavigator(t, store)

	cards, err := navigator.Courses(context.Background())
	require.NoError(t, err)
	assert.Empty(t, cards)
}

func TestResourcesNarrowByLecturer(t *testing.T) {
	store := kvstore.NewMemoryStore()
	seedCatalog(t, store)
	navigator := newNavigator(t, store)
	navigator.EnterDepartment("comp-sci")
	navigator.EnterCourse("cs101")

	all, err := navigator.Resources(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 2)

	navigator.SetLecturer("lec002")
	narrowed, err := navigator.Resources(context.Background())
	require.NoError(t, err)
	require.Len(t, narrowed, 1)
	assert.Equal(t, "r2", narrowed[0].ID)

	navigator.SetLecturer("")
	widened, err := navigator.Resources(context.Background())
	require.NoError(t, err)
	assert.Len(t, widened, 2)
}

func TestBreadcrumbFollowsSelection(t *testing.T) {
	store := kvstore.NewMemoryStore()
	seedCatalog(t, store)
	navigator := newNavigator(t, store)
	ctx := context.Background()

	trail, err := navigator.Breadcrumb(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"All Departments"}, trail)

	navigator.EnterDepartment("comp-sci")
	trail, err = navigator.Breadcrumb(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"All Departments", "Computer Science"}, trail)

	navigator.EnterCourse("cs101")
	trail, err = navigator.Breadcrumb(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"All Departments", "Computer Science", "CS101 - Introduction to Programming"}, trail)
}

func TestBreadcrumbOmitsDanglingSelections(t *testing.T) {
	store := kvstore.NewMemoryStore()
	seedCatalog(t, store)
	navigator := newNavigator(t, store)

	navigator.EnterDepartment("deleted-dept")
	navigator.EnterCourse("cs101")

	trail, err := navigator.Breadcrumb(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"All Departments", "CS101 - Introduction to Programming"}, trail)
}

func TestFilterOptionsListDepartmentLecturers(t *testing.T) {
	store := kvstore.NewMemoryStore()
	seedCatalog(t, store)
	navigator := newNavigator(t, store)
	navigator.EnterDepartment("comp-sci")

	lecturers, err := navigator.FilterOptions(context.Background())
	require.NoError(t, err)
	assert.Len(t, lecturers, 2)
}
