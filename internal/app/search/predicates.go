package search

import (
	"github.com/oguzkose/resourcehub/internal/app/models"
)

// predicate is a single structured filter over a resource.
type predicate func(*models.Resource) bool

// predicateSet is an AND-composition of predicates, built once per query and
// applied to every candidate record.
type predicateSet []predicate

func (s predicateSet) match(resource *models.Resource) bool {
	for _, p := range s {
		if !p(resource) {
			return false
		}
	}
	return true
}

// buildPredicates assembles a predicate set, skipping nil entries. A filter
// whose value is empty contributes no predicate at all.
func buildPredicates(predicates ...predicate) predicateSet {
	set := make(predicateSet, 0, len(predicates))
	for _, p := range predicates {
		if p != nil {
			set = append(set, p)
		}
	}
	return set
}

// equalsPredicate builds an exact-equality predicate over one field, or nil
// when the wanted value is empty.
func equalsPredicate(want string, field func(*models.Resource) string) predicate {
	if want == "" {
		return nil
	}
	return func(r *models.Resource) bool {
		return field(r) == want
	}
}
