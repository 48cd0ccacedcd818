package usecase

import (
	"errors"
	"testing"
	"time"

	"todo-backend/internal/task/domain"
)

// recordingScheduler records notification hook invocations
type recordingScheduler struct {
	scheduled []string
	cancelled []string
}

func (s *recordingScheduler) Schedule(task *domain.Task) error {
	s.scheduled = append(s.scheduled, task.ID)
	return nil
}

func (s *recordingScheduler) CancelPending(taskID string) error {
	s.cancelled = append(s.cancelled, taskID)
	return nil
}

func strptr(s string) *string { return &s }

func TestGetTask_VisibilityIsNotFoundNotForbidden(t *testing.T) {
	f := newFixture(t)
	owner := f.user(t, "alice")
	stranger := f.user(t, "carol")
	task := f.task(t, owner.ID, "Write report")

	if _, err := f.taskUc.GetTask(owner.ID, task.ID); err != nil {
		t.Fatalf("owner get: %v", err)
	}

	// A non-owner without a share gets not-found, never forbidden.
	if _, err := f.taskUc.GetTask(stranger.ID, task.ID); !errors.Is(err, ErrTaskNotFound) {
		t.Fatalf("stranger get: expected ErrTaskNotFound, got %v", err)
	}
}

func TestUpdateTask_EditShareSufficient(t *testing.T) {
	f := newFixture(t)
	owner := f.user(t, "alice")
	guest := f.user(t, "bob")
	task := f.task(t, owner.ID, "Write report")

	if _, err := f.shareUc.ShareTask(owner.ID, task.ID, guest.Username, "EDIT"); err != nil {
		t.Fatalf("share: %v", err)
	}

	updated, err := f.taskUc.UpdateTask(guest.ID, task.ID, TaskUpdateRequest{Title: strptr("Revised report")})
	if err != nil {
		t.Fatalf("guest update: %v", err)
	}
	if updated.Title != "Revised report" {
		t.Errorf("title = %q, want %q", updated.Title, "Revised report")
	}
	if updated.UserID != owner.ID {
		t.Errorf("owner changed to %s; owner is immutable", updated.UserID)
	}
}

func TestDeleteTask_EditDoesNotImplyDelete(t *testing.T) {
	f := newFixture(t)
	owner := f.user(t, "alice")
	guest := f.user(t, "bob")
	task := f.task(t, owner.ID, "Write report")

	if _, err := f.shareUc.ShareTask(owner.ID, task.ID, guest.Username, "EDIT"); err != nil {
		t.Fatalf("share: %v", err)
	}

	if err := f.taskUc.DeleteTask(guest.ID, task.ID); !errors.Is(err, ErrPermissionDenied) {
		t.Fatalf("EDIT share deleting: expected ErrPermissionDenied, got %v", err)
	}

	// Upgrading to DELETE authorizes it.
	if _, err := f.shareUc.ShareTask(owner.ID, task.ID, guest.Username, "DELETE"); err != nil {
		t.Fatalf("upgrade: %v", err)
	}
	if err := f.taskUc.DeleteTask(guest.ID, task.ID); err != nil {
		t.Fatalf("DELETE share deleting: %v", err)
	}

	gone, err := f.tasks.FindByID(task.ID)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if gone != nil {
		t.Error("task should be deleted")
	}
}

func TestUpdateTask_ViewShareCannotMutate(t *testing.T) {
	f := newFixture(t)
	owner := f.user(t, "alice")
	guest := f.user(t, "bob")
	task := f.task(t, owner.ID, "Write report")

	if _, err := f.shareUc.ShareTask(owner.ID, task.ID, guest.Username, "VIEW"); err != nil {
		t.Fatalf("share: %v", err)
	}

	// Visible but read-only: 403-shaped error, not 404.
	if _, err := f.taskUc.UpdateTask(guest.ID, task.ID, TaskUpdateRequest{Title: strptr("x")}); !errors.Is(err, ErrPermissionDenied) {
		t.Fatalf("VIEW share updating: expected ErrPermissionDenied, got %v", err)
	}

	if _, err := f.taskUc.GetTask(guest.ID, task.ID); err != nil {
		t.Fatalf("VIEW share reading: %v", err)
	}
}

func TestShareLifecycle_EndToEnd(t *testing.T) {
	f := newFixture(t)
	owner := f.user(t, "alice")
	guest := f.user(t, "bob")
	task := f.task(t, owner.ID, "Quarterly numbers")

	first, err := f.shareUc.ShareTask(owner.ID, task.ID, guest.Username, "VIEW")
	if err != nil || !first.Created {
		t.Fatalf("initial share: created=%v err=%v", first != nil && first.Created, err)
	}

	second, err := f.shareUc.ShareTask(owner.ID, task.ID, guest.Username, "EDIT")
	if err != nil || second.Created {
		t.Fatalf("re-share: created=%v err=%v", second != nil && second.Created, err)
	}
	if second.Share.Permission != domain.PermissionEdit {
		t.Fatalf("permission = %s, want EDIT", second.Share.Permission)
	}

	if _, err := f.taskUc.UpdateTask(guest.ID, task.ID, TaskUpdateRequest{Title: strptr("Q3 numbers")}); err != nil {
		t.Fatalf("guest update after upgrade: %v", err)
	}
	if err := f.taskUc.DeleteTask(guest.ID, task.ID); !errors.Is(err, ErrPermissionDenied) {
		t.Fatalf("guest delete with EDIT: expected ErrPermissionDenied, got %v", err)
	}
}

func TestTaskMutations_DriveNotificationHook(t *testing.T) {
	f := newFixture(t)
	owner := f.user(t, "alice")
	scheduler := &recordingScheduler{}
	f.taskUc.SetNotificationScheduler(scheduler)

	due := time.Now().Add(48 * time.Hour).UTC().Format(time.RFC3339)
	task, err := f.taskUc.CreateTask(owner.ID, TaskCreateRequest{Title: "Pay rent", DueDate: &due})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if len(scheduler.scheduled) != 1 {
		t.Fatalf("create with due date: expected 1 schedule call, got %d", len(scheduler.scheduled))
	}

	// Updating without touching the due date does not reschedule.
	if _, err := f.taskUc.UpdateTask(owner.ID, task.ID, TaskUpdateRequest{Title: strptr("Pay rent early")}); err != nil {
		t.Fatalf("update: %v", err)
	}
	if len(scheduler.scheduled) != 1 {
		t.Fatalf("title-only update: expected no reschedule, got %d calls", len(scheduler.scheduled))
	}

	// Changing the due date reschedules.
	newDue := time.Now().Add(72 * time.Hour).UTC().Format(time.RFC3339)
	if _, err := f.taskUc.UpdateTask(owner.ID, task.ID, TaskUpdateRequest{DueDate: &newDue}); err != nil {
		t.Fatalf("due update: %v", err)
	}
	if len(scheduler.scheduled) != 2 {
		t.Fatalf("due change: expected reschedule, got %d calls", len(scheduler.scheduled))
	}

	// Clearing it also reschedules (to nothing).
	if _, err := f.taskUc.UpdateTask(owner.ID, task.ID, TaskUpdateRequest{DueDate: strptr("")}); err != nil {
		t.Fatalf("clear due: %v", err)
	}
	if len(scheduler.scheduled) != 3 {
		t.Fatalf("due clear: expected reschedule, got %d calls", len(scheduler.scheduled))
	}

	// Deletion cancels pending notifications.
	if err := f.taskUc.DeleteTask(owner.ID, task.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if len(scheduler.cancelled) != 1 || scheduler.cancelled[0] != task.ID {
		t.Fatalf("delete: expected cancel for %s, got %v", task.ID, scheduler.cancelled)
	}
}

func TestCreateTask_RejectsBadPriority(t *testing.T) {
	f := newFixture(t)
	owner := f.user(t, "alice")

	if _, err := f.taskUc.CreateTask(owner.ID, TaskCreateRequest{Title: "x", Priority: "CRITICAL"}); err == nil {
		t.Fatal("expected error for unknown priority")
	}

	task, err := f.taskUc.CreateTask(owner.ID, TaskCreateRequest{Title: "x"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if task.Priority != domain.PriorityMedium {
		t.Errorf("priority = %s, want MEDIUM default", task.Priority)
	}
}
