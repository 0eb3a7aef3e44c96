package workflows

import (
	"slices"
	"strings"
)

// Matches reports whether query is a substring of the workflow name, a
// substring of its command, or exactly one of its tags. Matching is
// case-sensitive. An empty query matches every workflow.
func Matches(w Workflow, query string) bool {
	return strings.Contains(w.Name, query) ||
		strings.Contains(w.Command, query) ||
		slices.Contains(w.Tags, query)
}

// Filter returns copies of the workflows matching query, in input order.
func Filter(ws []Workflow, query string) []Workflow {
	var result []Workflow
	for _, w := range ws {
		if Matches(w, query) {
			result = append(result, w.Clone())
		}
	}
	return result
}

// HasTags reports whether w carries every tag in tags (exact match).
func HasTags(w Workflow, tags ...string) bool {
	for _, tag := range tags {
		if !slices.Contains(w.Tags, tag) {
			return false
		}
	}
	return true
}
