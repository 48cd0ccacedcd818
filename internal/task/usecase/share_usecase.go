package usecase

import (
	"errors"

	authrepo "todo-backend/internal/auth/repository"
	"todo-backend/internal/task/domain"
	"todo-backend/internal/task/repository"

	"gorm.io/gorm"
)

// shareUsecase implements ShareUsecase
type shareUsecase struct {
	taskRepo  repository.TaskRepository
	shareRepo repository.ShareRepository
	userRepo  authrepo.UserRepository
}

// NewShareUsecase creates a new instance of shareUsecase
func NewShareUsecase(taskRepo repository.TaskRepository, shareRepo repository.ShareRepository, userRepo authrepo.UserRepository) ShareUsecase {
	return &shareUsecase{
		taskRepo:  taskRepo,
		shareRepo: shareRepo,
		userRepo:  userRepo,
	}
}

// ownedTask loads a task and verifies the actor owns it. A non-owner who also
// holds no share gets ErrTaskNotFound so the task's existence never leaks; a
// share holder gets ErrNotOwner.
func (u *shareUsecase) ownedTask(actorID, taskID string) (*domain.Task, error) {
	task, err := u.taskRepo.FindByID(taskID)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, ErrTaskNotFound
	}
	if task.UserID != actorID {
		share, err := u.shareRepo.FindByTaskAndUser(taskID, actorID)
		if err != nil {
			return nil, err
		}
		if share == nil {
			return nil, ErrTaskNotFound
		}
		return nil, ErrNotOwner
	}
	return task, nil
}

func (u *shareUsecase) ShareTask(actorID, taskID, targetUsername, permission string) (*ShareResult, error) {
	task, err := u.ownedTask(actorID, taskID)
	if err != nil {
		return nil, err
	}

	if targetUsername == "" {
		return nil, ErrUsernameRequired
	}

	target, err := u.userRepo.FindByUsername(targetUsername)
	if err != nil {
		return nil, err
	}
	if target == nil {
		return nil, ErrUserNotFound
	}

	perm, err := domain.ParsePermission(permission)
	if err != nil {
		return nil, ErrInvalidPermission
	}

	if target.ID == actorID {
		return nil, ErrSelfShare
	}

	existing, err := u.shareRepo.FindByTaskAndUser(taskID, target.ID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return u.regrant(task, existing, target.Username, perm)
	}

	share := &domain.TaskShare{
		TaskID:       taskID,
		SharedWithID: target.ID,
		Permission:   perm,
	}
	if err := u.shareRepo.Create(share); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Lost an insert race on (task, shared_with); the winner's row is
			// now the existing grant, so retry as an update.
			existing, ferr := u.shareRepo.FindByTaskAndUser(taskID, target.ID)
			if ferr != nil {
				return nil, ferr
			}
			if existing != nil {
				return u.regrant(task, existing, target.Username, perm)
			}
		}
		return nil, err
	}

	return &ShareResult{Share: shareResponse(share, task, target.Username), Created: true}, nil
}

// regrant handles a share call against an existing grant: the identical
// permission is rejected so accidental re-shares surface to the caller;
// anything else is an in-place upgrade or downgrade.
func (u *shareUsecase) regrant(task *domain.Task, existing *domain.TaskShare, username string, perm domain.Permission) (*ShareResult, error) {
	if existing.Permission == perm {
		return nil, ErrDuplicateShare
	}
	existing.Permission = perm
	if err := u.shareRepo.Update(existing); err != nil {
		return nil, err
	}
	return &ShareResult{Share: shareResponse(existing, task, username), Created: false}, nil
}

func (u *shareUsecase) UnshareTask(actorID, taskID, targetUserID string) error {
	if _, err := u.ownedTask(actorID, taskID); err != nil {
		return err
	}

	if targetUserID == "" {
		return ErrMissingParameter
	}

	share, err := u.shareRepo.FindByTaskAndUser(taskID, targetUserID)
	if err != nil {
		return err
	}
	if share == nil {
		return ErrShareNotFound
	}

	return u.shareRepo.Delete(share.ID)
}

func (u *shareUsecase) ListShares(actorID, taskID string) ([]*ShareResponse, error) {
	task, err := u.ownedTask(actorID, taskID)
	if err != nil {
		return nil, err
	}

	shares, err := u.shareRepo.FindByTask(taskID)
	if err != nil {
		return nil, err
	}

	responses := make([]*ShareResponse, 0, len(shares))
	for _, share := range shares {
		username := ""
		if target, err := u.userRepo.FindByID(share.SharedWithID); err == nil && target != nil {
			username = target.Username
		}
		responses = append(responses, shareResponse(share, task, username))
	}
	return responses, nil
}

func shareResponse(share *domain.TaskShare, task *domain.Task, username string) *ShareResponse {
	return &ShareResponse{
		ID:                 share.ID,
		Task:               share.TaskID,
		TaskTitle:          task.Title,
		SharedWith:         share.SharedWithID,
		SharedWithUsername: username,
		Permission:         share.Permission,
		CreatedAt:          share.CreatedAt,
		UpdatedAt:          share.UpdatedAt,
	}
}
