package domain

import (
	"fmt"
	"time"
)

// NotificationStatus represents the lifecycle state of a TaskNotification.
// Transitions are one-way: PENDING moves to exactly one of SENT, FAILED or
// DUPLICATE and never leaves it.
type NotificationStatus string

const (
	StatusPending   NotificationStatus = "PENDING"
	StatusSent      NotificationStatus = "SENT"
	StatusFailed    NotificationStatus = "FAILED"
	StatusDuplicate NotificationStatus = "DUPLICATE"
)

// Display returns the human-readable status label
func (s NotificationStatus) Display() string {
	switch s {
	case StatusPending:
		return "Pending"
	case StatusSent:
		return "Sent"
	case StatusFailed:
		return "Failed"
	case StatusDuplicate:
		return "Duplicate"
	default:
		return string(s)
	}
}

// NotificationTiming is how far ahead of the due date a notification fires
type NotificationTiming string

const (
	Timing1Hour   NotificationTiming = "1H"
	Timing3Hours  NotificationTiming = "3H"
	Timing6Hours  NotificationTiming = "6H"
	Timing12Hours NotificationTiming = "12H"
	Timing24Hours NotificationTiming = "24H"
	Timing48Hours NotificationTiming = "48H"
	Timing1Week   NotificationTiming = "1W"
)

// DefaultTiming applies when a preference is auto-provisioned
const DefaultTiming = Timing24Hours

// Offset returns the duration subtracted from a due date to compute the
// notification's scheduled time
func (t NotificationTiming) Offset() time.Duration {
	switch t {
	case Timing1Hour:
		return time.Hour
	case Timing3Hours:
		return 3 * time.Hour
	case Timing6Hours:
		return 6 * time.Hour
	case Timing12Hours:
		return 12 * time.Hour
	case Timing48Hours:
		return 48 * time.Hour
	case Timing1Week:
		return 7 * 24 * time.Hour
	default:
		return 24 * time.Hour
	}
}

// ParseTiming validates a timing literal at the boundary
func ParseTiming(s string) (NotificationTiming, error) {
	switch NotificationTiming(s) {
	case Timing1Hour, Timing3Hours, Timing6Hours, Timing12Hours,
		Timing24Hours, Timing48Hours, Timing1Week:
		return NotificationTiming(s), nil
	default:
		return "", fmt.Errorf("invalid notification timing %q", s)
	}
}

// NotificationPreference holds a user's notification settings, at most one
// row per user. Created explicitly by the user or lazily the first time one
// of their tasks needs scheduling.
type NotificationPreference struct {
	ID                 string             `json:"id" gorm:"primaryKey"`
	UserID             string             `json:"user_id" gorm:"uniqueIndex;not null"`
	EmailNotifications bool               `json:"email_notifications" gorm:"default:true"`
	NotificationTiming NotificationTiming `json:"notification_timing" gorm:"default:24H"`
	CreatedAt          time.Time          `json:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at"`
}

// TaskNotification is one scheduled due-date notification. The storage layer
// enforces uniqueness on (task, user, scheduled_time); the dispatcher
// additionally collapses same-task PENDING rows with distinct times at send
// time.
type TaskNotification struct {
	ID            string             `json:"id" gorm:"primaryKey"`
	TaskID        string             `json:"task_id" gorm:"uniqueIndex:idx_notification_task_user_time;index;not null"`
	UserID        string             `json:"user_id" gorm:"uniqueIndex:idx_notification_task_user_time;index;not null"`
	ScheduledTime time.Time          `json:"scheduled_time" gorm:"uniqueIndex:idx_notification_task_user_time;not null"`
	Status        NotificationStatus `json:"status" gorm:"default:PENDING;index"`
	CreatedAt     time.Time          `json:"created_at"`
	SentAt        *time.Time         `json:"sent_at,omitempty"`
	ErrorMessage  string             `json:"error_message,omitempty"`
}
