// Package view computes derived, presentation-ready data from entity
// collections. Every function here is pure: no storage access, no mutation
// of its inputs.
package view

import (
	"sort"
	"strings"

	"admitly/pkg/model"
)

// CategoryAll matches every category in FilterSort.
const CategoryAll = "All"

// FilterSort keeps events whose category matches the filter ("All" or an
// exact category) and whose title or notes contain the query
// case-insensitively (an empty query matches everything), then sorts
// ascending by date. Ties on equal dates keep the original collection order.
func FilterSort(events []model.AdmissionEvent, category string, query string) []model.AdmissionEvent {
	q := strings.ToLower(strings.TrimSpace(query))

	kept := make([]model.AdmissionEvent, 0, len(events))
	for _, e := range events {
		if category != CategoryAll && string(e.Category) != category {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(e.Title), q) &&
			!strings.Contains(strings.ToLower(e.Notes), q) {
			continue
		}
		kept = append(kept, e)
	}

	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].Date.Before(kept[j].Date)
	})
	return kept
}

// SortedByDate orders deadlines ascending by date without mutating the input.
func SortedByDate(deadlines []model.Deadline) []model.Deadline {
	sorted := make([]model.Deadline, len(deadlines))
	copy(sorted, deadlines)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})
	return sorted
}

// TodosOn returns the todos for one calendar date, preserving storage order.
func TodosOn(todos []model.Todo, date model.Date) []model.Todo {
	kept := make([]model.Todo, 0, len(todos))
	for _, todo := range todos {
		if todo.Date == date {
			kept = append(kept, todo)
		}
	}
	return kept
}

// SubjectName resolves a session's subject id to its display name. A
// dangling id yields a placeholder rather than failing; subjects are
// deletable while their sessions remain.
func SubjectName(subjects []model.Subject, id string) string {
	for _, s := range subjects {
		if s.ID == id {
			return s.Name
		}
	}
	return "Unknown"
}
