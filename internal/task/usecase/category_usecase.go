package usecase

import (
	"errors"
	"regexp"
	"strings"

	"todo-backend/internal/task/domain"
	"todo-backend/internal/task/repository"

	"gorm.io/gorm"
)

// ErrDuplicateName is returned when a category or tag name collides with an
// existing one for the same user.
var ErrDuplicateName = errors.New("name already in use")

// ErrInvalidColor is returned for tag colors that are not six hex digits.
var ErrInvalidColor = errors.New("color must be a 6-digit hex value")

var colorPattern = regexp.MustCompile(`^#?[0-9a-fA-F]{6}$`)

// NormalizeColor validates a tag color and normalizes it to "#" plus six
// lowercase hex digits. Input is case-insensitive and the leading "#" is
// optional. Empty input is allowed (no color).
func NormalizeColor(color string) (string, error) {
	if color == "" {
		return "", nil
	}
	if !colorPattern.MatchString(color) {
		return "", ErrInvalidColor
	}
	return "#" + strings.ToLower(strings.TrimPrefix(color, "#")), nil
}

// categoryUsecase implements CategoryUsecase
type categoryUsecase struct {
	categoryRepo repository.CategoryRepository
}

// NewCategoryUsecase creates a new instance of categoryUsecase
func NewCategoryUsecase(categoryRepo repository.CategoryRepository) CategoryUsecase {
	return &categoryUsecase{categoryRepo: categoryRepo}
}

func (u *categoryUsecase) CreateCategory(actorID, name, description string) (*domain.Category, error) {
	category := &domain.Category{
		Name:        name,
		Description: description,
		UserID:      actorID,
	}
	if err := u.categoryRepo.Create(category); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateName
		}
		return nil, err
	}
	return category, nil
}

// owned loads a category and checks row ownership. Another user's category is
// reported absent.
func (u *categoryUsecase) owned(actorID, categoryID string) (*domain.Category, error) {
	category, err := u.categoryRepo.FindByID(categoryID)
	if err != nil {
		return nil, err
	}
	if category == nil || category.UserID != actorID {
		return nil, ErrCategoryNotFound
	}
	return category, nil
}

func (u *categoryUsecase) GetCategory(actorID, categoryID string) (*domain.Category, error) {
	return u.owned(actorID, categoryID)
}

func (u *categoryUsecase) ListCategories(actorID string) ([]*domain.Category, error) {
	return u.categoryRepo.FindByUser(actorID)
}

func (u *categoryUsecase) UpdateCategory(actorID, categoryID string, name, description *string) (*domain.Category, error) {
	category, err := u.owned(actorID, categoryID)
	if err != nil {
		return nil, err
	}
	if name != nil {
		category.Name = *name
	}
	if description != nil {
		category.Description = *description
	}
	if err := u.categoryRepo.Update(category); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateName
		}
		return nil, err
	}
	return category, nil
}

func (u *categoryUsecase) DeleteCategory(actorID, categoryID string) error {
	category, err := u.owned(actorID, categoryID)
	if err != nil {
		return err
	}
	return u.categoryRepo.Delete(category.ID)
}

// tagUsecase implements TagUsecase
type tagUsecase struct {
	tagRepo repository.TagRepository
}

// NewTagUsecase creates a new instance of tagUsecase
func NewTagUsecase(tagRepo repository.TagRepository) TagUsecase {
	return &tagUsecase{tagRepo: tagRepo}
}

func (u *tagUsecase) CreateTag(actorID, name, color string) (*domain.Tag, error) {
	normalized, err := NormalizeColor(color)
	if err != nil {
		return nil, err
	}
	tag := &domain.Tag{
		Name:   name,
		Color:  normalized,
		UserID: actorID,
	}
	if err := u.tagRepo.Create(tag); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateName
		}
		return nil, err
	}
	return tag, nil
}

func (u *tagUsecase) owned(actorID, tagID string) (*domain.Tag, error) {
	tag, err := u.tagRepo.FindByID(tagID)
	if err != nil {
		return nil, err
	}
	if tag == nil || tag.UserID != actorID {
		return nil, ErrTagNotFound
	}
	return tag, nil
}

func (u *tagUsecase) GetTag(actorID, tagID string) (*domain.Tag, error) {
	return u.owned(actorID, tagID)
}

func (u *tagUsecase) ListTags(actorID string) ([]*domain.Tag, error) {
	return u.tagRepo.FindByUser(actorID)
}

func (u *tagUsecase) UpdateTag(actorID, tagID string, name, color *string) (*domain.Tag, error) {
	tag, err := u.owned(actorID, tagID)
	if err != nil {
		return nil, err
	}
	if name != nil {
		tag.Name = *name
	}
	if color != nil {
		normalized, err := NormalizeColor(*color)
		if err != nil {
			return nil, err
		}
		tag.Color = normalized
	}
	if err := u.tagRepo.Update(tag); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateName
		}
		return nil, err
	}
	return tag, nil
}

func (u *tagUsecase) DeleteTag(actorID, tagID string) error {
	tag, err := u.owned(actorID, tagID)
	if err != nil {
		return err
	}
	return u.tagRepo.Delete(tag.ID)
}
