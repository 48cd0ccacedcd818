package repository

import (
	"errors"
	"time"

	"todo-backend/internal/task/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// gormShareRepository implements ShareRepository using GORM
type gormShareRepository struct {
	db *gorm.DB
}

// NewShareRepository creates a new GORM-based ShareRepository
func NewShareRepository(db *gorm.DB) ShareRepository {
	return &gormShareRepository{db: db}
}

func (r *gormShareRepository) Create(share *domain.TaskShare) error {
	if share.ID == "" {
		share.ID = uuid.New().String()
	}
	share.CreatedAt = time.Now()
	share.UpdatedAt = time.Now()
	return r.db.Create(share).Error
}

func (r *gormShareRepository) FindByTaskAndUser(taskID, userID string) (*domain.TaskShare, error) {
	var share domain.TaskShare
	err := r.db.Where("task_id = ? AND shared_with_id = ?", taskID, userID).First(&share).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &share, nil
}

func (r *gormShareRepository) FindByTask(taskID string) ([]*domain.TaskShare, error) {
	var shares []*domain.TaskShare
	err := r.db.Where("task_id = ?", taskID).Order("created_at DESC").Find(&shares).Error
	return shares, err
}

func (r *gormShareRepository) Update(share *domain.TaskShare) error {
	share.UpdatedAt = time.Now()
	return r.db.Save(share).Error
}

func (r *gormShareRepository) Delete(id string) error {
	return r.db.Delete(&domain.TaskShare{}, "id = ?", id).Error
}
