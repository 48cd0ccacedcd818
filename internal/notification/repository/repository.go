package repository

import (
	"time"

	"todo-backend/internal/notification/domain"
)

// PreferenceRepository defines the interface for notification preference
// data access
type PreferenceRepository interface {
	// FindByUserID finds a user's preference row, nil if absent
	FindByUserID(userID string) (*domain.NotificationPreference, error)
	Create(pref *domain.NotificationPreference) error
	Update(pref *domain.NotificationPreference) error
}

// NotificationRepository defines the interface for task notification data
// access
type NotificationRepository interface {
	Create(notification *domain.TaskNotification) error

	// FindDue returns PENDING notifications scheduled at or before now,
	// earliest first
	FindDue(now time.Time) ([]*domain.TaskNotification, error)

	// FindByUserID returns a user's notifications, newest schedule first
	FindByUserID(userID string) ([]*domain.TaskNotification, error)

	// DeletePendingByTask removes all PENDING rows for a task. Terminal rows
	// are history and stay untouched.
	DeletePendingByTask(taskID string) error

	Update(notification *domain.TaskNotification) error

	// MarkPendingDuplicates demotes still-PENDING rows matching
	// (task, user, scheduledTime), except the given IDs, to DUPLICATE with
	// the given message. Safety net for rows sharing the primary's exact
	// timestamp that the in-batch pass did not see.
	MarkPendingDuplicates(taskID, userID string, scheduledTime time.Time, excludeIDs []string, message string) error
}
