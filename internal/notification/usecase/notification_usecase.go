package usecase

import (
	"time"

	"todo-backend/internal/notification/domain"
	"todo-backend/internal/notification/repository"
	taskrepo "todo-backend/internal/task/repository"
)

// NotificationUsecase exposes the read surface for notifications and the
// preference get/update operations
type NotificationUsecase interface {
	ListNotifications(userID string) ([]*NotificationResponse, error)

	// GetPreference returns the user's preference, provisioning defaults on
	// first access
	GetPreference(userID string) (*domain.NotificationPreference, error)

	UpdatePreference(userID string, req PreferenceUpdateRequest) (*domain.NotificationPreference, error)
}

// PreferenceUpdateRequest carries preference fields to change
type PreferenceUpdateRequest struct {
	EmailNotifications *bool   `json:"email_notifications,omitempty"`
	NotificationTiming *string `json:"notification_timing,omitempty"`
}

// NotificationResponse is the client-facing shape of a TaskNotification
type NotificationResponse struct {
	ID            string                    `json:"id"`
	Task          string                    `json:"task"`
	TaskTitle     string                    `json:"task_title"`
	ScheduledTime time.Time                 `json:"scheduled_time"`
	Status        domain.NotificationStatus `json:"status"`
	StatusDisplay string                    `json:"status_display"`
	CreatedAt     time.Time                 `json:"created_at"`
	SentAt        *time.Time                `json:"sent_at,omitempty"`
}

// notificationUsecase implements NotificationUsecase
type notificationUsecase struct {
	notifRepo repository.NotificationRepository
	prefRepo  repository.PreferenceRepository
	taskRepo  taskrepo.TaskRepository
}

// NewNotificationUsecase creates a new instance of notificationUsecase
func NewNotificationUsecase(notifRepo repository.NotificationRepository, prefRepo repository.PreferenceRepository, taskRepo taskrepo.TaskRepository) NotificationUsecase {
	return &notificationUsecase{
		notifRepo: notifRepo,
		prefRepo:  prefRepo,
		taskRepo:  taskRepo,
	}
}

func (u *notificationUsecase) ListNotifications(userID string) ([]*NotificationResponse, error) {
	notifications, err := u.notifRepo.FindByUserID(userID)
	if err != nil {
		return nil, err
	}

	titles := make(map[string]string)
	responses := make([]*NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		title, ok := titles[n.TaskID]
		if !ok {
			if task, err := u.taskRepo.FindByID(n.TaskID); err == nil && task != nil {
				title = task.Title
			}
			titles[n.TaskID] = title
		}
		responses = append(responses, &NotificationResponse{
			ID:            n.ID,
			Task:          n.TaskID,
			TaskTitle:     title,
			ScheduledTime: n.ScheduledTime,
			Status:        n.Status,
			StatusDisplay: n.Status.Display(),
			CreatedAt:     n.CreatedAt,
			SentAt:        n.SentAt,
		})
	}
	return responses, nil
}

func (u *notificationUsecase) GetPreference(userID string) (*domain.NotificationPreference, error) {
	return getOrCreatePreference(u.prefRepo, userID)
}

func (u *notificationUsecase) UpdatePreference(userID string, req PreferenceUpdateRequest) (*domain.NotificationPreference, error) {
	pref, err := getOrCreatePreference(u.prefRepo, userID)
	if err != nil {
		return nil, err
	}

	if req.EmailNotifications != nil {
		pref.EmailNotifications = *req.EmailNotifications
	}
	if req.NotificationTiming != nil {
		timing, err := domain.ParseTiming(*req.NotificationTiming)
		if err != nil {
			return nil, err
		}
		pref.NotificationTiming = timing
	}

	if err := u.prefRepo.Update(pref); err != nil {
		return nil, err
	}
	return pref, nil
}
