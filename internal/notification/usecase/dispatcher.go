package usecase

import (
	"fmt"
	"log"
	"time"

	authrepo "todo-backend/internal/auth/repository"
	"todo-backend/internal/notification/domain"
	"todo-backend/internal/notification/repository"
	taskdomain "todo-backend/internal/task/domain"
	taskrepo "todo-backend/internal/task/repository"
	"todo-backend/pkg/mailer"
)

// duplicateMessage marks rows superseded by a sent sibling
const duplicateMessage = "duplicate notification: an earlier notification for this task was sent"

// Dispatcher delivers due notifications in batches. Safe to invoke
// repeatedly; a run with nothing due is a no-op and a completed run leaves
// no row the next run would act on. Single invocation at a time is assumed;
// concurrent dispatchers would need an exclusive claim step to keep the
// at-most-one-send-per-task guarantee.
type Dispatcher struct {
	notifRepo repository.NotificationRepository
	taskRepo  taskrepo.TaskRepository
	userRepo  authrepo.UserRepository
	mailer    mailer.Mailer
	now       func() time.Time
}

// NewDispatcher creates a new Dispatcher
func NewDispatcher(notifRepo repository.NotificationRepository, taskRepo taskrepo.TaskRepository, userRepo authrepo.UserRepository, m mailer.Mailer) *Dispatcher {
	return &Dispatcher{
		notifRepo: notifRepo,
		taskRepo:  taskRepo,
		userRepo:  userRepo,
		mailer:    m,
		now:       time.Now,
	}
}

// SetClock overrides the dispatcher's clock
func (d *Dispatcher) SetClock(now func() time.Time) {
	d.now = now
}

// Run scans PENDING notifications whose scheduled time has elapsed and sends
// at most one email per task. Within a task's batch the earliest-scheduled
// row is the primary; the rest are demoted to DUPLICATE on success or share
// the primary's FAILED status on failure. One task's error never aborts the
// remaining groups.
func (d *Dispatcher) Run() error {
	due, err := d.notifRepo.FindDue(d.now())
	if err != nil {
		return err
	}
	if len(due) == 0 {
		return nil
	}

	log.Printf("[Dispatcher] Found %d due notifications", len(due))

	// Group by task, preserving scheduled-time order within each group so
	// the first row per task is the earliest-scheduled one.
	var order []string
	groups := make(map[string][]*domain.TaskNotification)
	for _, n := range due {
		if _, seen := groups[n.TaskID]; !seen {
			order = append(order, n.TaskID)
		}
		groups[n.TaskID] = append(groups[n.TaskID], n)
	}

	for _, taskID := range order {
		if err := d.dispatchGroup(taskID, groups[taskID]); err != nil {
			log.Printf("[Dispatcher] Error dispatching notifications for task %s: %v", taskID, err)
		}
	}
	return nil
}

func (d *Dispatcher) dispatchGroup(taskID string, batch []*domain.TaskNotification) error {
	primary, duplicates := batch[0], batch[1:]

	task, err := d.taskRepo.FindByID(taskID)
	if err != nil {
		return err
	}
	if task == nil {
		// The task was deleted between scheduling and dispatch; the store's
		// cascade rules own the cleanup.
		return nil
	}

	owner, err := d.userRepo.FindByID(primary.UserID)
	if err != nil {
		return err
	}
	if owner == nil {
		return nil
	}

	if owner.Email == "" {
		return d.failBatch(batch, "user has no email address")
	}

	subject, body := composeEmail(task)
	if err := d.mailer.Send(owner.Email, subject, body); err != nil {
		return d.failBatch(batch, err.Error())
	}

	// The status write, not the mail send, is the durability boundary.
	sentAt := d.now()
	primary.Status = domain.StatusSent
	primary.SentAt = &sentAt
	if err := d.notifRepo.Update(primary); err != nil {
		return err
	}

	excludeIDs := []string{primary.ID}
	for _, dup := range duplicates {
		dup.Status = domain.StatusDuplicate
		dup.ErrorMessage = duplicateMessage
		if err := d.notifRepo.Update(dup); err != nil {
			return err
		}
		excludeIDs = append(excludeIDs, dup.ID)
	}

	// Second pass: rows sharing the primary's exact timestamp can slip in
	// between the scan and the updates above; demote them too so nothing is
	// left PENDING forever.
	return d.notifRepo.MarkPendingDuplicates(task.ID, primary.UserID, primary.ScheduledTime, excludeIDs, duplicateMessage)
}

// failBatch marks every row of the group FAILED with the same reason. Rows
// that were never individually attempted are not silently dropped. FAILED is
// terminal: no later run retries these rows.
func (d *Dispatcher) failBatch(batch []*domain.TaskNotification, reason string) error {
	for _, n := range batch {
		n.Status = domain.StatusFailed
		n.ErrorMessage = reason
		if err := d.notifRepo.Update(n); err != nil {
			return err
		}
	}
	log.Printf("[Dispatcher] Marked %d notifications FAILED for task %s: %s", len(batch), batch[0].TaskID, reason)
	return nil
}

// composeEmail builds the due-soon message for a task
func composeEmail(task *taskdomain.Task) (subject, body string) {
	subject = "Task Due Soon: " + task.Title

	description := task.Description
	if description == "" {
		description = "No description"
	}
	state := "Pending"
	if task.Completed {
		state = "Completed"
	}
	due := ""
	if task.DueDate != nil {
		due = task.DueDate.Format("2006-01-02 15:04")
	}

	body = fmt.Sprintf(
		"Your task %q is due soon.\n\nTitle: %s\nDue: %s\nPriority: %s\nStatus: %s\nDescription: %s\n",
		task.Title, task.Title, due, task.Priority, state, description,
	)
	return subject, body
}
