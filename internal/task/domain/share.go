package domain

import (
	"fmt"
	"time"
)

// Permission represents the access level granted by a TaskShare
type Permission string

const (
	PermissionView   Permission = "VIEW"
	PermissionEdit   Permission = "EDIT"
	PermissionDelete Permission = "DELETE"
)

// ParsePermission validates a permission literal at the boundary. Empty
// input falls back to VIEW.
func ParsePermission(s string) (Permission, error) {
	switch Permission(s) {
	case PermissionView, PermissionEdit, PermissionDelete:
		return Permission(s), nil
	case "":
		return PermissionView, nil
	default:
		return "", fmt.Errorf("invalid permission %q", s)
	}
}

// TaskShare grants one user one access level on one task. The unique index
// on (task_id, shared_with_id) is the arbiter for concurrent share requests:
// a duplicate-key error on insert means the row exists and the caller should
// retry as an update.
type TaskShare struct {
	ID           string     `json:"id" gorm:"primaryKey"`
	TaskID       string     `json:"task_id" gorm:"uniqueIndex:idx_share_task_user;not null"`
	SharedWithID string     `json:"shared_with_id" gorm:"uniqueIndex:idx_share_task_user;index;not null"`
	Permission   Permission `json:"permission" gorm:"default:VIEW"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
