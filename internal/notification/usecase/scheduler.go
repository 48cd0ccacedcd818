package usecase

import (
	"todo-backend/internal/notification/domain"
	"todo-backend/internal/notification/repository"
	taskdomain "todo-backend/internal/task/domain"
)

// Scheduler computes and persists the single pending notification for a
// task's due date. Invoked whenever a task gains a due date or its due date
// changes, including being cleared.
type Scheduler struct {
	prefRepo  repository.PreferenceRepository
	notifRepo repository.NotificationRepository
}

// NewScheduler creates a new Scheduler
func NewScheduler(prefRepo repository.PreferenceRepository, notifRepo repository.NotificationRepository) *Scheduler {
	return &Scheduler{
		prefRepo:  prefRepo,
		notifRepo: notifRepo,
	}
}

// Schedule replaces the task's pending notification to match its current due
// date. All PENDING rows for the task are dropped first; SENT, FAILED and
// DUPLICATE rows are history and stay. A nil due date just clears. The new
// scheduled time may already be in the past when the due date is closer than
// the offset; the dispatcher picks it up on its next run.
func (s *Scheduler) Schedule(task *taskdomain.Task) error {
	if err := s.notifRepo.DeletePendingByTask(task.ID); err != nil {
		return err
	}
	if task.DueDate == nil {
		return nil
	}

	pref, err := getOrCreatePreference(s.prefRepo, task.UserID)
	if err != nil {
		return err
	}
	if !pref.EmailNotifications {
		return nil
	}

	notification := &domain.TaskNotification{
		TaskID:        task.ID,
		UserID:        task.UserID,
		ScheduledTime: task.DueDate.Add(-pref.NotificationTiming.Offset()),
		Status:        domain.StatusPending,
	}
	return s.notifRepo.Create(notification)
}

// CancelPending removes all pending notifications for a deleted task
func (s *Scheduler) CancelPending(taskID string) error {
	return s.notifRepo.DeletePendingByTask(taskID)
}

// getOrCreatePreference resolves a user's notification preference,
// provisioning the defaults (email on, 24H ahead) on first use. The creation
// is a documented side effect of scheduling, not an error path.
func getOrCreatePreference(prefRepo repository.PreferenceRepository, userID string) (*domain.NotificationPreference, error) {
	pref, err := prefRepo.FindByUserID(userID)
	if err != nil {
		return nil, err
	}
	if pref != nil {
		return pref, nil
	}

	pref = &domain.NotificationPreference{
		UserID:             userID,
		EmailNotifications: true,
		NotificationTiming: domain.DefaultTiming,
	}
	if err := prefRepo.Create(pref); err != nil {
		return nil, err
	}
	return pref, nil
}
