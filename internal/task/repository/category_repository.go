package repository

import (
	"errors"
	"time"

	"todo-backend/internal/task/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// gormCategoryRepository implements CategoryRepository using GORM
type gormCategoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new GORM-based CategoryRepository
func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &gormCategoryRepository{db: db}
}

func (r *gormCategoryRepository) Create(category *domain.Category) error {
	if category.ID == "" {
		category.ID = uuid.New().String()
	}
	category.CreatedAt = time.Now()
	category.UpdatedAt = time.Now()
	return r.db.Create(category).Error
}

func (r *gormCategoryRepository) FindByID(id string) (*domain.Category, error) {
	var category domain.Category
	err := r.db.Where("id = ?", id).First(&category).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

func (r *gormCategoryRepository) FindByUser(userID string) ([]*domain.Category, error) {
	var categories []*domain.Category
	err := r.db.Where("user_id = ?", userID).Order("name ASC").Find(&categories).Error
	return categories, err
}

func (r *gormCategoryRepository) Update(category *domain.Category) error {
	category.UpdatedAt = time.Now()
	return r.db.Save(category).Error
}

func (r *gormCategoryRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		// Tasks survive category deletion with a cleared category.
		if err := tx.Model(&domain.Task{}).Where("category_id = ?", id).
			Update("category_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&domain.Category{}, "id = ?", id).Error
	})
}
