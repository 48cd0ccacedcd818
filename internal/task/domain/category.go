package domain

import "time"

// Category groups a user's tasks. Names are unique per user, not globally.
type Category struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"uniqueIndex:idx_category_user_name;not null"`
	Description string    `json:"description,omitempty"`
	UserID      string    `json:"user_id" gorm:"uniqueIndex:idx_category_user_name;index;not null"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Tag labels a user's tasks. Color is stored normalized as "#" followed by
// six lowercase hex digits.
type Tag struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"uniqueIndex:idx_tag_user_name;not null"`
	Color     string    `json:"color"`
	UserID    string    `json:"user_id" gorm:"uniqueIndex:idx_tag_user_name;index;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
