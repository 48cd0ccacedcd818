package domain

import (
	"fmt"
	"time"
)

// Priority represents task priority level
type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
	PriorityUrgent Priority = "URGENT"
)

// ParsePriority validates a priority literal at the boundary. Empty input
// falls back to MEDIUM.
func ParsePriority(s string) (Priority, error) {
	switch Priority(s) {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return Priority(s), nil
	case "":
		return PriorityMedium, nil
	default:
		return "", fmt.Errorf("invalid priority %q", s)
	}
}

// Task represents a to-do item owned by a single user. The owner never
// changes after creation; non-owners act on a task only through a TaskShare.
type Task struct {
	ID          string     `json:"id" gorm:"primaryKey"`
	Title       string     `json:"title" gorm:"not null"`
	Description string     `json:"description,omitempty"`
	Completed   bool       `json:"completed" gorm:"default:false"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	Priority    Priority   `json:"priority" gorm:"default:MEDIUM"`
	UserID      string     `json:"user_id" gorm:"index;not null"`
	CategoryID  *string    `json:"category_id,omitempty" gorm:"index"`
	Tags        []Tag      `json:"tags,omitempty" gorm:"many2many:task_tags"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
