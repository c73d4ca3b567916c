package seed

import (
	"context"

	"github.com/oguzkose/resourcehub/internal/app/models"
	"github.com/oguzkose/resourcehub/internal/app/repositories"
	"github.com/oguzkose/resourcehub/internal/kvstore"
	"github.com/oguzkose/resourcehub/internal/pkg/logger"
)

// Run seeds the static reference collections and ensures the mutable
// collections exist. Each collection is seeded only when its key is absent,
// so a restart never clobbers stored data.
func Run(ctx context.Context, store kvstore.Store, repos *repositories.Repositories) error {
	if err := seedDepartments(ctx, repos.DepartmentRepository); err != nil {
		return err
	}
	if err := seedCourses(ctx, repos.CourseRepository); err != nil {
		return err
	}
	if err := seedLecturers(ctx, repos.LecturerRepository); err != nil {
		return err
	}
	if err := repositories.EnsureCollections(ctx, store); err != nil {
		return err
	}
	logger.Info().Msg("Reference data ready")
	return nil
}

func seedDepartments(ctx context.Context, repo *repositories.DepartmentRepository) error {
	existing, err := repo.GetAll(ctx)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}
	return repo.SaveAll(ctx, departments())
}

func seedCourses(ctx context.Context, repo *repositories.CourseRepository) error {
	existing, err := repo.GetAll(ctx)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}
	return repo.SaveAll(ctx, courses())
}

func seedLecturers(ctx context.Context, repo *repositories.LecturerRepository) error {
	existing, err := repo.GetAll(ctx)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}
	return repo.SaveAll(ctx, lecturers())
}

func departments() []*models.Department {
	return []*models.Department{
		{ID: "comp-sci", Name: "Computer Science", Icon: "fas fa-laptop-code"},
		{ID: "engineering", Name: "Engineering", Icon: "fas fa-cogs"},
		{ID: "mathematics", Name: "Mathematics", Icon: "fas fa-calculator"},
		{ID: "physics", Name: "Physics", Icon: "fas fa-atom"},
		{ID: "chemistry", Name: "Chemistry", Icon: "fas fa-flask"},
		{ID: "biology", Name: "Biology", Icon: "fas fa-dna"},
		{ID: "economics", Name: "Economics", Icon: "fas fa-chart-line"},
		{ID: "business", Name: "Business Administration", Icon: "fas fa-briefcase"},
		{ID: "psychology", Name: "Psychology", Icon: "fas fa-brain"},
		{ID: "literature", Name: "Literature", Icon: "fas fa-book-open"},
	}
}

func courses() []*models.Course {
	return []*models.Course{
		{ID: "cs101", DepartmentID: "comp-sci", Code: "CS101", Name: "Introduction to Programming", Level: 100},
		{ID: "cs201", DepartmentID: "comp-sci", Code: "CS201", Name: "Data Structures", Level: 200},
		{ID: "cs301", DepartmentID: "comp-sci", Code: "CS301", Name: "Algorithms", Level: 300},
		{ID: "cs401", DepartmentID: "comp-sci", Code: "CS401", Name: "Software Engineering", Level: 400},
		{ID: "eng101", DepartmentID: "engineering", Code: "ENG101", Name: "Engineering Mathematics I", Level: 100},
		{ID: "eng201", DepartmentID: "engineering", Code: "ENG201", Name: "Thermodynamics", Level: 200},
		{ID: "eng301", DepartmentID: "engineering", Code: "ENG301", Name: "Control Systems", Level: 300},
		{ID: "math101", DepartmentID: "mathematics", Code: "MATH101", Name: "Calculus I", Level: 100},
		{ID: "math201", DepartmentID: "mathematics", Code: "MATH201", Name: "Linear Algebra", Level: 200},
		{ID: "math301", DepartmentID: "mathematics", Code: "MATH301", Name: "Abstract Algebra", Level: 300},
		{ID: "phys101", DepartmentID: "physics", Code: "PHYS101", Name: "General Physics I", Level: 100},
		{ID: "phys201", DepartmentID: "physics", Code: "PHYS201", Name: "Quantum Mechanics", Level: 200},
		{ID: "chem101", DepartmentID: "chemistry", Code: "CHEM101", Name: "General Chemistry", Level: 100},
		{ID: "chem201", DepartmentID: "chemistry", Code: "CHEM201", Name: "Organic Chemistry", Level: 200},
	}
}

func lecturers() []*models.Lecturer {
	return []*models.Lecturer{
		{ID: "lec001", DepartmentID: "comp-sci", Name: "Dr. Sarah Johnson", Title: "Professor"},
		{ID: "lec002", DepartmentID: "comp-sci", Name: "Prof. Michael Chen", Title: "Associate Professor"},
		{ID: "lec003", DepartmentID: "comp-sci", Name: "Dr. Emily Rodriguez", Title: "Assistant Professor"},
		{ID: "lec004", DepartmentID: "engineering", Name: "Prof. David Williams", Title: "Professor"},
		{ID: "lec005", DepartmentID: "engineering", Name: "Dr. Jennifer Lee", Title: "Associate Professor"},
		{ID: "lec006", DepartmentID: "mathematics", Name: "Prof. Robert Taylor", Title: "Professor"},
		{ID: "lec007", DepartmentID: "mathematics", Name: "Dr. Lisa Anderson", Title: "Assistant Professor"},
		{ID: "lec008", DepartmentID: "physics", Name: "Prof. James Wilson", Title: "Professor"},
		{ID: "lec009", DepartmentID: "physics", Name: "Dr. Maria Garcia", Title: "Associate Professor"},
		{ID: "lec010", DepartmentID: "chemistry", Name: "Prof. Thomas Brown", Title: "Professor"},
		{ID: "lec011", DepartmentID: "chemistry", Name: "Dr. Amanda Davis", Title: "Assistant Professor"},
	}
}
