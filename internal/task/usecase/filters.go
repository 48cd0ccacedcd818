package usecase

import (
	"strings"

	"todo-backend/internal/task/domain"
)

// TaskFilter is one predicate in the listing pipeline. Listing applies a
// fixed, ordered chain of these over the candidate set instead of building a
// dynamic query, so each predicate is testable on its own.
type TaskFilter func(*domain.Task) bool

// buildFilters assembles the pipeline for a query. Order is fixed:
// completed, priority, category, due window, text search.
func buildFilters(q TaskListQuery) []TaskFilter {
	var filters []TaskFilter

	if q.Completed != nil {
		completed := *q.Completed
		filters = append(filters, func(t *domain.Task) bool {
			return t.Completed == completed
		})
	}

	if q.Priority != "" {
		priority := domain.Priority(q.Priority)
		filters = append(filters, func(t *domain.Task) bool {
			return t.Priority == priority
		})
	}

	if q.CategoryID != "" {
		categoryID := q.CategoryID
		filters = append(filters, func(t *domain.Task) bool {
			return t.CategoryID != nil && *t.CategoryID == categoryID
		})
	}

	if q.DueBefore != nil {
		before := *q.DueBefore
		filters = append(filters, func(t *domain.Task) bool {
			return t.DueDate != nil && !t.DueDate.After(before)
		})
	}

	if q.DueAfter != nil {
		after := *q.DueAfter
		filters = append(filters, func(t *domain.Task) bool {
			return t.DueDate != nil && !t.DueDate.Before(after)
		})
	}

	if q.Search != "" {
		needle := strings.ToLower(q.Search)
		filters = append(filters, func(t *domain.Task) bool {
			return strings.Contains(strings.ToLower(t.Title), needle) ||
				strings.Contains(strings.ToLower(t.Description), needle)
		})
	}

	return filters
}

// applyFilters keeps the tasks passing every predicate, preserving order
func applyFilters(tasks []*domain.Task, filters []TaskFilter) []*domain.Task {
	if len(filters) == 0 {
		return tasks
	}
	result := make([]*domain.Task, 0, len(tasks))
outer:
	for _, task := range tasks {
		for _, keep := range filters {
			if !keep(task) {
				continue outer
			}
		}
		result = append(result, task)
	}
	return result
}
