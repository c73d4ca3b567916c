package search

import (
	"context"
	"sort"
	"strings"

	"github.com/oguzkose/resourcehub/internal/app/models"
	"github.com/oguzkose/resourcehub/internal/app/repositories"
)

// Engine runs text search, structured filtering and relevance ranking over
// the resource collection.
type Engine struct {
	resources   *repositories.ResourceRepository
	departments *repositories.DepartmentRepository
	courses     *repositories.CourseRepository
	lecturers   *repositories.LecturerRepository
}

// NewEngine creates a new search engine
func NewEngine(
	resources *repositories.ResourceRepository,
	departments *repositories.DepartmentRepository,
	courses *repositories.CourseRepository,
	lecturers *repositories.LecturerRepository,
) *Engine {
	return &Engine{
		resources:   resources,
		departments: departments,
		courses:     courses,
		lecturers:   lecturers,
	}
}

// Filters are the structured predicates of a plain search. An empty field is
// a wildcard; a set field is an exact-equality AND predicate.
type Filters struct {
	Department string
	Type       string
	Year       string
}

// matchesTerm is the one substring primitive shared by the match predicate
// and the relevance score. Both look at title, description and file name, so
// a resource that matches a non-empty query always scores above zero.
func matchesTerm(resource *models.Resource, term string) bool {
	return strings.Contains(strings.ToLower(resource.Title), term) ||
		strings.Contains(strings.ToLower(resource.Description), term) ||
		strings.Contains(strings.ToLower(resource.FileName), term)
}

// relevanceScore computes the additive ranking score of a resource against a
// lowercased term. Scores are additive, not exclusive; the maximum is 38.
func relevanceScore(resource *models.Resource, term string) int {
	score := 0
	title := strings.ToLower(resource.Title)

	if strings.Contains(title, term) {
		score += 10
	}
	if title == term {
		score += 20
	}
	if strings.Contains(strings.ToLower(resource.Description), term) {
		score += 5
	}
	if strings.Contains(strings.ToLower(resource.FileName), term) {
		score += 3
	}
	return score
}

// Search filters the resource collection by the text predicate and the
// structured filters, then orders the result by relevance. An empty query
// matches everything and orders by upload date, newest first.
func (e *Engine) Search(ctx context.Context, query string, filters Filters) ([]*models.Resource, error) {
	resources, err := e.resources.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	term := strings.ToLower(strings.TrimSpace(query))

	predicates := buildPredicates(
		equalsPredicate(filters.Department, func(r *models.Resource) string { return r.DepartmentID }),
		equalsPredicate(filters.Type, func(r *models.Resource) string { return string(r.Type) }),
		equalsPredicate(filters.Year, func(r *models.Resource) string { return r.Year }),
	)

	var matched []*models.Resource
	for _, resource := range resources {
		if term != "" && !matchesTerm(resource, term) {
			continue
		}
		if !predicates.match(resource) {
			continue
		}
		matched = append(matched, resource)
	}

	sortByRelevance(matched, term)
	return matched, nil
}

// sortByRelevance orders resources by relevance score descending, breaking
// ties (and the whole list, for an empty term) by upload date descending.
func sortByRelevance(resources []*models.Resource, term string) {
	if term == "" {
		sort.SliceStable(resources, func(i, j int) bool {
			return resources[i].UploadDate.After(resources[j].UploadDate)
		})
		return
	}

	scores := make(map[string]int, len(resources))
	for _, resource := range resources {
		scores[resource.ID] = relevanceScore(resource, term)
	}

	sort.SliceStable(resources, func(i, j int) bool {
		si, sj := scores[resources[i].ID], scores[resources[j].ID]
		if si == sj {
			return resources[i].UploadDate.After(resources[j].UploadDate)
		}
		return si > sj
	})
}
