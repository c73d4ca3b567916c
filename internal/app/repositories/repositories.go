package repositories

import (
	"github.com/oguzkose/resourcehub/internal/kvstore"
)

// Repositories bundles all collection repositories over one store
type Repositories struct {
	UserRepository       *UserRepository
	ResourceRepository   *ResourceRepository
	DepartmentRepository *DepartmentRepository
	CourseRepository     *CourseRepository
	LecturerRepository   *LecturerRepository
	SessionRepository    *SessionRepository
}

// NewRepositories creates the repository container
func NewRepositories(store kvstore.Store) *Repositories {
	return &Repositories{
		UserRepository:       NewUserRepository(store),
		ResourceRepository:   NewResourceRepository(store),
		DepartmentRepository: NewDepartmentRepository(store),
		CourseRepository:     NewCourseRepository(store),
		LecturerRepository:   NewLecturerRepository(store),
		SessionRepository:    NewSessionRepository(store),
	}
}
