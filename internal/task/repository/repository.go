package repository

import (
	"todo-backend/internal/task/domain"
)

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// Create creates a new task
	Create(task *domain.Task) error

	// FindByID finds a task by its ID, nil if absent
	FindByID(id string) (*domain.Task, error)

	// FindByOwner finds all tasks owned by a user, newest first
	FindByOwner(userID string) ([]*domain.Task, error)

	// FindSharedWith finds all tasks shared with a user, newest first
	FindSharedWith(userID string) ([]*domain.Task, error)

	// Update updates an existing task
	Update(task *domain.Task) error

	// ReplaceTags replaces the task's tag set
	ReplaceTags(task *domain.Task, tags []domain.Tag) error

	// Delete deletes a task by ID
	Delete(id string) error
}

// ShareRepository defines the interface for task share data access
type ShareRepository interface {
	// Create creates a new share row; a duplicate-key error means a row for
	// (task, user) already exists
	Create(share *domain.TaskShare) error

	// FindByTaskAndUser finds the share row for (task, user), nil if absent
	FindByTaskAndUser(taskID, userID string) (*domain.TaskShare, error)

	// FindByTask finds all share rows for a task, newest first
	FindByTask(taskID string) ([]*domain.TaskShare, error)

	// Update updates an existing share row
	Update(share *domain.TaskShare) error

	// Delete deletes a share row by ID
	Delete(id string) error
}

// CategoryRepository defines the interface for category data access
type CategoryRepository interface {
	Create(category *domain.Category) error
	FindByID(id string) (*domain.Category, error)
	FindByUser(userID string) ([]*domain.Category, error)
	Update(category *domain.Category) error
	// Delete removes the category and clears category_id on its tasks
	Delete(id string) error
}

// TagRepository defines the interface for tag data access
type TagRepository interface {
	Create(tag *domain.Tag) error
	FindByID(id string) (*domain.Tag, error)
	// FindByIDs finds the user's tags matching the given IDs
	FindByIDs(ids []string, userID string) ([]domain.Tag, error)
	FindByUser(userID string) ([]*domain.Tag, error)
	Update(tag *domain.Tag) error
	Delete(id string) error
}
