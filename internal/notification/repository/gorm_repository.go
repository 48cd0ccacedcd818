package repository

import (
	"errors"
	"time"

	"todo-backend/internal/notification/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// gormPreferenceRepository implements PreferenceRepository using GORM
type gormPreferenceRepository struct {
	db *gorm.DB
}

// NewPreferenceRepository creates a new GORM-based PreferenceRepository
func NewPreferenceRepository(db *gorm.DB) PreferenceRepository {
	return &gormPreferenceRepository{db: db}
}

func (r *gormPreferenceRepository) FindByUserID(userID string) (*domain.NotificationPreference, error) {
	var pref domain.NotificationPreference
	err := r.db.Where("user_id = ?", userID).First(&pref).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &pref, nil
}

func (r *gormPreferenceRepository) Create(pref *domain.NotificationPreference) error {
	if pref.ID == "" {
		pref.ID = uuid.New().String()
	}
	pref.CreatedAt = time.Now()
	pref.UpdatedAt = time.Now()
	return r.db.Create(pref).Error
}

func (r *gormPreferenceRepository) Update(pref *domain.NotificationPreference) error {
	pref.UpdatedAt = time.Now()
	return r.db.Save(pref).Error
}

// gormNotificationRepository implements NotificationRepository using GORM
type gormNotificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository creates a new GORM-based NotificationRepository
func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &gormNotificationRepository{db: db}
}

func (r *gormNotificationRepository) Create(notification *domain.TaskNotification) error {
	if notification.ID == "" {
		notification.ID = uuid.New().String()
	}
	if notification.Status == "" {
		notification.Status = domain.StatusPending
	}
	notification.CreatedAt = time.Now()
	return r.db.Create(notification).Error
}

func (r *gormNotificationRepository) FindDue(now time.Time) ([]*domain.TaskNotification, error) {
	var notifications []*domain.TaskNotification
	err := r.db.Where("status = ? AND scheduled_time <= ?", domain.StatusPending, now).
		Order("scheduled_time ASC").Find(&notifications).Error
	return notifications, err
}

func (r *gormNotificationRepository) FindByUserID(userID string) ([]*domain.TaskNotification, error) {
	var notifications []*domain.TaskNotification
	err := r.db.Where("user_id = ?", userID).
		Order("scheduled_time DESC").Find(&notifications).Error
	return notifications, err
}

func (r *gormNotificationRepository) DeletePendingByTask(taskID string) error {
	return r.db.Where("task_id = ? AND status = ?", taskID, domain.StatusPending).
		Delete(&domain.TaskNotification{}).Error
}

func (r *gormNotificationRepository) Update(notification *domain.TaskNotification) error {
	return r.db.Save(notification).Error
}

func (r *gormNotificationRepository) MarkPendingDuplicates(taskID, userID string, scheduledTime time.Time, excludeIDs []string, message string) error {
	query := r.db.Model(&domain.TaskNotification{}).
		Where("task_id = ? AND user_id = ? AND scheduled_time = ? AND status = ?",
			taskID, userID, scheduledTime, domain.StatusPending)
	if len(excludeIDs) > 0 {
		query = query.Where("id NOT IN ?", excludeIDs)
	}
	return query.Updates(map[string]interface{}{
		"status":        domain.StatusDuplicate,
		"error_message": message,
	}).Error
}
