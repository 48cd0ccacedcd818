package repository

import (
	"errors"
	"time"

	"todo-backend/internal/task/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// gormTaskRepository implements TaskRepository using GORM
type gormTaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new GORM-based TaskRepository
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &gormTaskRepository{db: db}
}

func (r *gormTaskRepository) Create(task *domain.Task) error {
	if task.ID == "" {
		task.ID = uuid.New().String()
	}
	task.CreatedAt = time.Now()
	task.UpdatedAt = time.Now()
	return r.db.Create(task).Error
}

func (r *gormTaskRepository) FindByID(id string) (*domain.Task, error) {
	var task domain.Task
	err := r.db.Preload("Tags").Where("id = ?", id).First(&task).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &task, nil
}

func (r *gormTaskRepository) FindByOwner(userID string) ([]*domain.Task, error) {
	var tasks []*domain.Task
	err := r.db.Preload("Tags").Where("user_id = ?", userID).
		Order("created_at DESC").Find(&tasks).Error
	return tasks, err
}

func (r *gormTaskRepository) FindSharedWith(userID string) ([]*domain.Task, error) {
	var tasks []*domain.Task
	err := r.db.Preload("Tags").
		Joins("JOIN task_shares ON task_shares.task_id = tasks.id").
		Where("task_shares.shared_with_id = ?", userID).
		Order("tasks.created_at DESC").Find(&tasks).Error
	return tasks, err
}

func (r *gormTaskRepository) Update(task *domain.Task) error {
	task.UpdatedAt = time.Now()
	return r.db.Save(task).Error
}

func (r *gormTaskRepository) ReplaceTags(task *domain.Task, tags []domain.Tag) error {
	return r.db.Model(task).Association("Tags").Replace(tags)
}

func (r *gormTaskRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		// Share rows hang off the task; remove them in the same transaction.
		if err := tx.Where("task_id = ?", id).Delete(&domain.TaskShare{}).Error; err != nil {
			return err
		}
		return tx.Delete(&domain.Task{}, "id = ?", id).Error
	})
}
