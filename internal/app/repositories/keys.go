package repositories

// Storage keys. Each collection is stored and rewritten as a unit under its
// own key; the backup key holds a consolidated snapshot of the five
// collections.
const (
	KeyUsers       = "resourcehub_users"
	KeyResources   = "resourcehub_resources"
	KeyDepartments = "resourcehub_departments"
	KeyCourses     = "resourcehub_courses"
	KeyLecturers   = "resourcehub_lecturers"
	KeyCurrentUser = "resourcehub_currentUser"
	KeyBackup      = "resourcehub_backup"
)
