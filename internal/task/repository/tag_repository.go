package repository

import (
	"errors"
	"time"

	"todo-backend/internal/task/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// gormTagRepository implements TagRepository using GORM
type gormTagRepository struct {
	db *gorm.DB
}

// NewTagRepository creates a new GORM-based TagRepository
func NewTagRepository(db *gorm.DB) TagRepository {
	return &gormTagRepository{db: db}
}

func (r *gormTagRepository) Create(tag *domain.Tag) error {
	if tag.ID == "" {
		tag.ID = uuid.New().String()
	}
	tag.CreatedAt = time.Now()
	tag.UpdatedAt = time.Now()
	return r.db.Create(tag).Error
}

func (r *gormTagRepository) FindByID(id string) (*domain.Tag, error) {
	var tag domain.Tag
	err := r.db.Where("id = ?", id).First(&tag).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &tag, nil
}

func (r *gormTagRepository) FindByIDs(ids []string, userID string) ([]domain.Tag, error) {
	var tags []domain.Tag
	err := r.db.Where("id IN ? AND user_id = ?", ids, userID).Find(&tags).Error
	return tags, err
}

func (r *gormTagRepository) FindByUser(userID string) ([]*domain.Tag, error) {
	var tags []*domain.Tag
	err := r.db.Where("user_id = ?", userID).Order("name ASC").Find(&tags).Error
	return tags, err
}

func (r *gormTagRepository) Update(tag *domain.Tag) error {
	tag.UpdatedAt = time.Now()
	return r.db.Save(tag).Error
}

func (r *gormTagRepository) Delete(id string) error {
	return r.db.Delete(&domain.Tag{}, "id = ?", id).Error
}
