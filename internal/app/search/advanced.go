package search

import (
	"context"
	"strings"
	"time"

	"github.com/oguzkose/resourcehub/internal/app/models"
)

// Criteria are the advanced search inputs. Every set field narrows the
// result; unlike Search, the text query here is strictly AND-composed with
// the structured filters and no ranking is applied.
type Criteria struct {
	Query      string
	Department string
	Course     string
	Lecturer   string
	Type       string
	Year       string
	FileType   string
	DateFrom   *time.Time
	DateTo     *time.Time
}

// Advanced filters the resource collection by every set criterion. Results
// keep their stored order.
func (e *Engine) Advanced(ctx context.Context, criteria Criteria) ([]*models.Resource, error) {
	resources, err := e.resources.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	term := strings.ToLower(strings.TrimSpace(criteria.Query))

	predicates := buildPredicates(
		textPredicate(term),
		equalsPredicate(criteria.Department, func(r *models.Resource) string { return r.DepartmentID }),
		equalsPredicate(criteria.Course, func(r *models.Resource) string { return r.CourseID }),
		equalsPredicate(criteria.Lecturer, func(r *models.Resource) string { return r.LecturerID }),
		equalsPredicate(criteria.Type, func(r *models.Resource) string { return string(r.Type) }),
		equalsPredicate(criteria.Year, func(r *models.Resource) string { return r.Year }),
		fileTypePredicate(criteria.FileType),
		dateRangePredicate(criteria.DateFrom, criteria.DateTo),
	)

	var matched []*models.Resource
	for _, resource := range resources {
		if predicates.match(resource) {
			matched = append(matched, resource)
		}
	}
	return matched, nil
}

// textPredicate wraps the shared substring primitive, or nil for an empty
// term.
func textPredicate(term string) predicate {
	if term == "" {
		return nil
	}
	return func(r *models.Resource) bool {
		return matchesTerm(r, term)
	}
}

// fileTypePredicate compares the file name extension, case-insensitively and
// without the leading dot.
func fileTypePredicate(fileType string) predicate {
	if fileType == "" {
		return nil
	}
	want := strings.ToLower(strings.TrimPrefix(fileType, "."))
	return func(r *models.Resource) bool {
		return fileExtension(r.FileName) == want
	}
}

// dateRangePredicate bounds the upload date inclusively on both ends. Either
// bound may be nil.
func dateRangePredicate(from, to *time.Time) predicate {
	if from == nil && to == nil {
		return nil
	}
	return func(r *models.Resource) bool {
		if from != nil && r.UploadDate.Before(*from) {
			return false
		}
		if to != nil && r.UploadDate.After(*to) {
			return false
		}
		return true
	}
}

// fileExtension returns the lowercased extension of a file name without the
// dot, or "" when the name has none.
func fileExtension(name string) string {
	idx := strings.LastIndex(name, ".")
	if idx < 0 || idx == len(name)-1 {
		return ""
	}
	return strings.ToLower(name[idx+1:])
}
