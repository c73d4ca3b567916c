package models

// ResourceType classifies an uploaded resource
type ResourceType string

const (
	ResourceTypeExam       ResourceType = "exam"
	ResourceTypeNotes      ResourceType = "notes"
	ResourceTypeAssignment ResourceType = "assignment"
	ResourceTypeTextbook   ResourceType = "textbook"
	ResourceTypeOther      ResourceType = "other"
)

// IsValid reports whether the type is one of the known resource types
func (t ResourceType) IsValid() bool {
	switch t {
	case ResourceTypeExam, ResourceTypeNotes, ResourceTypeAssignment, ResourceTypeTextbook, ResourceTypeOther:
		return true
	}
	return false
}
