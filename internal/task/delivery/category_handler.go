package delivery

import (
	"net/http"

	"todo-backend/internal/task/usecase"

	"github.com/gin-gonic/gin"
)

// CategoryHandler handles category and tag HTTP requests
type CategoryHandler struct {
	categoryUsecase usecase.CategoryUsecase
	tagUsecase      usecase.TagUsecase
}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler(categoryUsecase usecase.CategoryUsecase, tagUsecase usecase.TagUsecase) *CategoryHandler {
	return &CategoryHandler{
		categoryUsecase: categoryUsecase,
		tagUsecase:      tagUsecase,
	}
}

// CategoryRequest represents the request body for creating a category
type CategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// CategoryUpdateRequest represents the fields that can be updated
type CategoryUpdateRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

// TagRequest represents the request body for creating a tag
type TagRequest struct {
	Name  string `json:"name" binding:"required"`
	Color string `json:"color"`
}

// TagUpdateRequest represents the fields that can be updated
type TagUpdateRequest struct {
	Name  *string `json:"name,omitempty"`
	Color *string `json:"color,omitempty"`
}

// GET /api/categories
func (h *CategoryHandler) GetCategories(c *gin.Context) {
	categories, err := h.categoryUsecase.ListCategories(c.GetString("userID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories, "total": len(categories)})
}

// POST /api/categories
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category, err := h.categoryUsecase.CreateCategory(c.GetString("userID"), req.Name, req.Description)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, category)
}

// GET /api/categories/:id
func (h *CategoryHandler) GetCategoryByID(c *gin.Context) {
	category, err := h.categoryUsecase.GetCategory(c.GetString("userID"), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, category)
}

// PUT /api/categories/:id
func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	var req CategoryUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category, err := h.categoryUsecase.UpdateCategory(c.GetString("userID"), c.Param("id"), req.Name, req.Description)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, category)
}

// DELETE /api/categories/:id
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	if err := h.categoryUsecase.DeleteCategory(c.GetString("userID"), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GET /api/tags
func (h *CategoryHandler) GetTags(c *gin.Context) {
	tags, err := h.tagUsecase.ListTags(c.GetString("userID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tags": tags, "total": len(tags)})
}

// POST /api/tags
func (h *CategoryHandler) CreateTag(c *gin.Context) {
	var req TagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tag, err := h.tagUsecase.CreateTag(c.GetString("userID"), req.Name, req.Color)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, tag)
}

// GET /api/tags/:id
func (h *CategoryHandler) GetTagByID(c *gin.Context) {
	tag, err := h.tagUsecase.GetTag(c.GetString("userID"), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tag)
}

// PUT /api/tags/:id
func (h *CategoryHandler) UpdateTag(c *gin.Context) {
	var req TagUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tag, err := h.tagUsecase.UpdateTag(c.GetString("userID"), c.Param("id"), req.Name, req.Color)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tag)
}

// DELETE /api/tags/:id
func (h *CategoryHandler) DeleteTag(c *gin.Context) {
	if err := h.tagUsecase.DeleteTag(c.GetString("userID"), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
