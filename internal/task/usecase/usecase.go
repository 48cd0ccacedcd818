package usecase

import (
	"errors"
	"time"

	"todo-backend/internal/task/domain"
)

// Sentinel errors surfaced to the delivery layer. Handlers map them to HTTP
// codes: not-found errors become 404 (a task invisible to the actor is
// reported absent, not forbidden), permission errors 403, the rest 400.
var (
	ErrTaskNotFound      = errors.New("task not found")
	ErrPermissionDenied  = errors.New("permission denied")
	ErrNotOwner          = errors.New("only the task owner can manage shares")
	ErrUsernameRequired  = errors.New("username required")
	ErrUserNotFound      = errors.New("user not found")
	ErrInvalidPermission = errors.New("invalid permission")
	ErrSelfShare         = errors.New("cannot share a task with yourself")
	ErrDuplicateShare    = errors.New("task already shared with this user at this permission")
	ErrShareNotFound     = errors.New("share not found")
	ErrMissingParameter  = errors.New("user_id required")
	ErrCategoryNotFound  = errors.New("category not found")
	ErrTagNotFound       = errors.New("tag not found")
)

// TaskUsecase defines the interface for task business logic
type TaskUsecase interface {
	CreateTask(actorID string, req TaskCreateRequest) (*domain.Task, error)
	GetTask(actorID, taskID string) (*domain.Task, error)
	ListTasks(actorID string, q TaskListQuery) ([]*domain.Task, error)
	ListSharedWithMe(actorID string) ([]*domain.Task, error)
	UpdateTask(actorID, taskID string, updates TaskUpdateRequest) (*domain.Task, error)
	DeleteTask(actorID, taskID string) error

	// SetNotificationScheduler wires the due-date notification hook
	SetNotificationScheduler(s NotificationScheduler)
}

// ShareUsecase defines the interface for share management. All mutations are
// owner-only.
type ShareUsecase interface {
	ShareTask(actorID, taskID, targetUsername, permission string) (*ShareResult, error)
	UnshareTask(actorID, taskID, targetUserID string) error
	ListShares(actorID, taskID string) ([]*ShareResponse, error)
}

// CategoryUsecase defines the interface for category management
type CategoryUsecase interface {
	CreateCategory(actorID, name, description string) (*domain.Category, error)
	GetCategory(actorID, categoryID string) (*domain.Category, error)
	ListCategories(actorID string) ([]*domain.Category, error)
	UpdateCategory(actorID, categoryID string, name, description *string) (*domain.Category, error)
	DeleteCategory(actorID, categoryID string) error
}

// TagUsecase defines the interface for tag management
type TagUsecase interface {
	CreateTag(actorID, name, color string) (*domain.Tag, error)
	GetTag(actorID, tagID string) (*domain.Tag, error)
	ListTags(actorID string) ([]*domain.Tag, error)
	UpdateTag(actorID, tagID string, name, color *string) (*domain.Tag, error)
	DeleteTag(actorID, tagID string) error
}

// NotificationScheduler recomputes a task's due-date notification. Implemented
// by the notification usecase; injected to avoid a package cycle.
type NotificationScheduler interface {
	// Schedule replaces the task's pending notification to match its due date
	Schedule(task *domain.Task) error

	// CancelPending removes all pending notifications for a deleted task
	CancelPending(taskID string) error
}

// TaskCreateRequest carries the fields accepted on task creation
type TaskCreateRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	DueDate     *string  `json:"due_date"`
	Priority    string   `json:"priority"`
	CategoryID  *string  `json:"category_id"`
	TagIDs      []string `json:"tag_ids"`
}

// TaskUpdateRequest carries the fields that can be updated. Pointer fields
// distinguish "absent" from "set to zero"; an empty due_date string clears
// the due date.
type TaskUpdateRequest struct {
	Title       *string   `json:"title,omitempty"`
	Description *string   `json:"description,omitempty"`
	Completed   *bool     `json:"completed,omitempty"`
	DueDate     *string   `json:"due_date,omitempty"`
	Priority    *string   `json:"priority,omitempty"`
	CategoryID  *string   `json:"category_id,omitempty"`
	TagIDs      *[]string `json:"tag_ids,omitempty"`
}

// TaskListQuery selects and orders the task listing
type TaskListQuery struct {
	Completed  *bool
	Priority   string
	CategoryID string
	DueBefore  *time.Time
	DueAfter   *time.Time
	Search     string
}

// ShareResult is the outcome of a share call. Created distinguishes a new
// grant (201) from a permission change on an existing one (200).
type ShareResult struct {
	Share   *ShareResponse
	Created bool
}

// ShareResponse is the client-facing shape of a TaskShare
type ShareResponse struct {
	ID                 string            `json:"id"`
	Task               string            `json:"task"`
	TaskTitle          string            `json:"task_title"`
	SharedWith         string            `json:"shared_with"`
	SharedWithUsername string            `json:"shared_with_username"`
	Permission         domain.Permission `json:"permission"`
	CreatedAt          time.Time         `json:"created_at"`
	UpdatedAt          time.Time         `json:"updated_at"`
}
