package usecase

import (
	"time"

	"todo-backend/internal/task/domain"
	"todo-backend/internal/task/repository"
)

// taskUsecase implements TaskUsecase
type taskUsecase struct {
	taskRepo  repository.TaskRepository
	shareRepo repository.ShareRepository
	tagRepo   repository.TagRepository
	scheduler NotificationScheduler
}

// NewTaskUsecase creates a new instance of taskUsecase
func NewTaskUsecase(taskRepo repository.TaskRepository, shareRepo repository.ShareRepository, tagRepo repository.TagRepository) TaskUsecase {
	return &taskUsecase{
		taskRepo:  taskRepo,
		shareRepo: shareRepo,
		tagRepo:   tagRepo,
	}
}

// SetNotificationScheduler wires the due-date notification hook
func (u *taskUsecase) SetNotificationScheduler(s NotificationScheduler) {
	u.scheduler = s
}

func (u *taskUsecase) CreateTask(actorID string, req TaskCreateRequest) (*domain.Task, error) {
	priority, err := domain.ParsePriority(req.Priority)
	if err != nil {
		return nil, err
	}

	task := &domain.Task{
		Title:       req.Title,
		Description: req.Description,
		Priority:    priority,
		UserID:      actorID,
		CategoryID:  req.CategoryID,
	}

	if req.DueDate != nil && *req.DueDate != "" {
		t, err := time.Parse(time.RFC3339, *req.DueDate)
		if err != nil {
			return nil, err
		}
		task.DueDate = &t
	}

	if len(req.TagIDs) > 0 {
		tags, err := u.tagRepo.FindByIDs(req.TagIDs, actorID)
		if err != nil {
			return nil, err
		}
		task.Tags = tags
	}

	if err := u.taskRepo.Create(task); err != nil {
		return nil, err
	}

	if task.DueDate != nil && u.scheduler != nil {
		if err := u.scheduler.Schedule(task); err != nil {
			return nil, err
		}
	}

	return task, nil
}

// visibleTask loads a task and the actor's share row, enforcing visibility:
// a non-owner without a share gets ErrTaskNotFound, never a 403.
func (u *taskUsecase) visibleTask(actorID, taskID string) (*domain.Task, *domain.TaskShare, error) {
	task, err := u.taskRepo.FindByID(taskID)
	if err != nil {
		return nil, nil, err
	}
	if task == nil {
		return nil, nil, ErrTaskNotFound
	}

	var share *domain.TaskShare
	if task.UserID != actorID {
		share, err = u.shareRepo.FindByTaskAndUser(taskID, actorID)
		if err != nil {
			return nil, nil, err
		}
	}

	if !domain.CanView(task, actorID, share) {
		return nil, nil, ErrTaskNotFound
	}
	return task, share, nil
}

func (u *taskUsecase) GetTask(actorID, taskID string) (*domain.Task, error) {
	task, _, err := u.visibleTask(actorID, taskID)
	return task, err
}

func (u *taskUsecase) ListTasks(actorID string, q TaskListQuery) ([]*domain.Task, error) {
	tasks, err := u.taskRepo.FindByOwner(actorID)
	if err != nil {
		return nil, err
	}
	return applyFilters(tasks, buildFilters(q)), nil
}

func (u *taskUsecase) ListSharedWithMe(actorID string) ([]*domain.Task, error) {
	return u.taskRepo.FindSharedWith(actorID)
}

func (u *taskUsecase) UpdateTask(actorID, taskID string, updates TaskUpdateRequest) (*domain.Task, error) {
	task, share, err := u.visibleTask(actorID, taskID)
	if err != nil {
		return nil, err
	}
	if !domain.CanEdit(task, actorID, share) {
		return nil, ErrPermissionDenied
	}

	if updates.Title != nil {
		task.Title = *updates.Title
	}
	if updates.Description != nil {
		task.Description = *updates.Description
	}
	if updates.Completed != nil {
		task.Completed = *updates.Completed
	}
	if updates.Priority != nil {
		priority, err := domain.ParsePriority(*updates.Priority)
		if err != nil {
			return nil, err
		}
		task.Priority = priority
	}
	if updates.CategoryID != nil {
		if *updates.CategoryID == "" {
			task.CategoryID = nil
		} else {
			task.CategoryID = updates.CategoryID
		}
	}

	dueChanged := false
	if updates.DueDate != nil {
		oldDue := task.DueDate
		if *updates.DueDate == "" {
			task.DueDate = nil
		} else {
			t, err := time.Parse(time.RFC3339, *updates.DueDate)
			if err != nil {
				return nil, err
			}
			task.DueDate = &t
		}
		dueChanged = !equalDue(oldDue, task.DueDate)
	}

	if err := u.taskRepo.Update(task); err != nil {
		return nil, err
	}

	if updates.TagIDs != nil {
		// Tags always belong to the owner, even when an EDIT share performs
		// the update.
		tags, err := u.tagRepo.FindByIDs(*updates.TagIDs, task.UserID)
		if err != nil {
			return nil, err
		}
		if err := u.taskRepo.ReplaceTags(task, tags); err != nil {
			return nil, err
		}
		task.Tags = tags
	}

	if dueChanged && u.scheduler != nil {
		if err := u.scheduler.Schedule(task); err != nil {
			return nil, err
		}
	}

	return task, nil
}

func (u *taskUsecase) DeleteTask(actorID, taskID string) error {
	task, share, err := u.visibleTask(actorID, taskID)
	if err != nil {
		return err
	}
	if !domain.CanDelete(task, actorID, share) {
		return ErrPermissionDenied
	}

	if err := u.taskRepo.Delete(task.ID); err != nil {
		return err
	}

	if u.scheduler != nil {
		return u.scheduler.CancelPending(task.ID)
	}
	return nil
}

func equalDue(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}
