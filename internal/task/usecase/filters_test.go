package usecase

import (
	"testing"
	"time"

	"todo-backend/internal/task/domain"
)

func boolptr(b bool) *bool { return &b }

func sampleTasks() []*domain.Task {
	categoryID := "cat-1"
	due := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	later := due.Add(72 * time.Hour)
	return []*domain.Task{
		{ID: "a", Title: "Buy groceries", Completed: false, Priority: domain.PriorityLow, DueDate: &due},
		{ID: "b", Title: "File taxes", Description: "federal and state", Completed: false, Priority: domain.PriorityUrgent, DueDate: &later, CategoryID: &categoryID},
		{ID: "c", Title: "Water plants", Completed: true, Priority: domain.PriorityLow},
	}
}

func ids(tasks []*domain.Task) []string {
	out := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = t.ID
	}
	return out
}

func assertIDs(t *testing.T, got []*domain.Task, want ...string) {
	t.Helper()
	gotIDs := ids(got)
	if len(gotIDs) != len(want) {
		t.Fatalf("got %v, want %v", gotIDs, want)
	}
	for i := range want {
		if gotIDs[i] != want[i] {
			t.Fatalf("got %v, want %v", gotIDs, want)
		}
	}
}

func TestFilters_Completed(t *testing.T) {
	tasks := sampleTasks()
	assertIDs(t, applyFilters(tasks, buildFilters(TaskListQuery{Completed: boolptr(true)})), "c")
	assertIDs(t, applyFilters(tasks, buildFilters(TaskListQuery{Completed: boolptr(false)})), "a", "b")
}

func TestFilters_Priority(t *testing.T) {
	tasks := sampleTasks()
	assertIDs(t, applyFilters(tasks, buildFilters(TaskListQuery{Priority: "URGENT"})), "b")
	assertIDs(t, applyFilters(tasks, buildFilters(TaskListQuery{Priority: "LOW"})), "a", "c")
}

func TestFilters_Category(t *testing.T) {
	tasks := sampleTasks()
	assertIDs(t, applyFilters(tasks, buildFilters(TaskListQuery{CategoryID: "cat-1"})), "b")
	assertIDs(t, applyFilters(tasks, buildFilters(TaskListQuery{CategoryID: "cat-2"})))
}

func TestFilters_DueWindow(t *testing.T) {
	tasks := sampleTasks()
	cutoff := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	// Tasks without a due date never match a due-window filter.
	assertIDs(t, applyFilters(tasks, buildFilters(TaskListQuery{DueBefore: &cutoff})), "a")
	assertIDs(t, applyFilters(tasks, buildFilters(TaskListQuery{DueAfter: &cutoff})), "b")
}

func TestFilters_SearchIsCaseInsensitive(t *testing.T) {
	tasks := sampleTasks()
	assertIDs(t, applyFilters(tasks, buildFilters(TaskListQuery{Search: "TAXES"})), "b")
	// Description participates in search.
	assertIDs(t, applyFilters(tasks, buildFilters(TaskListQuery{Search: "federal"})), "b")
	assertIDs(t, applyFilters(tasks, buildFilters(TaskListQuery{Search: "zebra"})))
}

func TestFilters_Compose(t *testing.T) {
	tasks := sampleTasks()
	q := TaskListQuery{Completed: boolptr(false), Priority: "LOW"}
	assertIDs(t, applyFilters(tasks, buildFilters(q)), "a")
}

func TestFilters_EmptyQueryKeepsOrder(t *testing.T) {
	tasks := sampleTasks()
	assertIDs(t, applyFilters(tasks, buildFilters(TaskListQuery{})), "a", "b", "c")
}
