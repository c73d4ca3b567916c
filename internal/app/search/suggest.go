package search

import (
	"context"
	"strings"
)

const (
	suggestionMinLength = 2
	suggestionLimit     = 8
)

// Suggestions returns autocomplete candidates for a partial query: resource
// titles, department names, course labels and lecturer names that contain
// the partial, case-insensitively. Duplicates keep their first occurrence
// and the list is capped. A partial shorter than two characters yields
// nothing.
func (e *Engine) Suggestions(ctx context.Context, partial string) ([]string, error) {
	term := strings.ToLower(strings.TrimSpace(partial))
	if len(term) < suggestionMinLength {
		return nil, nil
	}

	var suggestions []string
	seen := make(map[string]struct{})
	add := func(candidate string) {
		if len(suggestions) >= suggestionLimit {
			return
		}
		if !strings.Contains(strings.ToLower(candidate), term) {
			return
		}
		if _, ok := seen[candidate]; ok {
			return
		}
		seen[candidate] = struct{}{}
		suggestions = append(suggestions, candidate)
	}

	resources, err := e.resources.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, resource := range resources {
		add(resource.Title)
	}

	departments, err := e.departments.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, department := range departments {
		add(department.Name)
	}

	courses, err := e.courses.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, course := range courses {
		add(course.Label())
	}

	lecturers, err := e.lecturers.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, lecturer := range lecturers {
		add(lecturer.Name)
	}

	return suggestions, nil
}
