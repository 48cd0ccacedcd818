package delivery

import (
	"errors"
	"net/http"
	"time"

	"todo-backend/internal/task/usecase"

	"github.com/gin-gonic/gin"
)

// TaskHandler handles task and share HTTP requests
type TaskHandler struct {
	taskUsecase  usecase.TaskUsecase
	shareUsecase usecase.ShareUsecase
}

// NewTaskHandler creates a new TaskHandler
func NewTaskHandler(taskUsecase usecase.TaskUsecase, shareUsecase usecase.ShareUsecase) *TaskHandler {
	return &TaskHandler{
		taskUsecase:  taskUsecase,
		shareUsecase: shareUsecase,
	}
}

// ShareRequest represents the request body for sharing a task
type ShareRequest struct {
	Username   string `json:"username"`
	Permission string `json:"permission"`
}

// respondError maps usecase errors to HTTP codes. Invisible resources are
// 404, insufficient rights on a visible resource 403, bad input 400 with a
// machine-readable error key.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrTaskNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "task_not_found", "message": err.Error()})
	case errors.Is(err, usecase.ErrShareNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "share_not_found", "message": err.Error()})
	case errors.Is(err, usecase.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "user_not_found", "message": err.Error()})
	case errors.Is(err, usecase.ErrCategoryNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "category_not_found", "message": err.Error()})
	case errors.Is(err, usecase.ErrTagNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "tag_not_found", "message": err.Error()})
	case errors.Is(err, usecase.ErrNotOwner):
		c.JSON(http.StatusForbidden, gin.H{"error": "not_owner", "message": err.Error()})
	case errors.Is(err, usecase.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, gin.H{"error": "permission_denied", "message": err.Error()})
	case errors.Is(err, usecase.ErrUsernameRequired):
		c.JSON(http.StatusBadRequest, gin.H{"error": "username_required", "message": err.Error()})
	case errors.Is(err, usecase.ErrInvalidPermission):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_permission", "message": err.Error()})
	case errors.Is(err, usecase.ErrSelfShare):
		c.JSON(http.StatusBadRequest, gin.H{"error": "self_share", "message": err.Error()})
	case errors.Is(err, usecase.ErrDuplicateShare):
		c.JSON(http.StatusBadRequest, gin.H{"error": "duplicate_share", "message": err.Error()})
	case errors.Is(err, usecase.ErrMissingParameter):
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing_parameter", "message": err.Error()})
	case errors.Is(err, usecase.ErrDuplicateName):
		c.JSON(http.StatusBadRequest, gin.H{"error": "duplicate_name", "message": err.Error()})
	case errors.Is(err, usecase.ErrInvalidColor):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_color", "message": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// GetTasks returns the authenticated user's tasks
// GET /api/tasks?completed=true&priority=HIGH&category_id=...&search=...
func (h *TaskHandler) GetTasks(c *gin.Context) {
	userID := c.GetString("userID")

	q := usecase.TaskListQuery{
		Priority:   c.Query("priority"),
		CategoryID: c.Query("category_id"),
		Search:     c.Query("search"),
	}
	if v := c.Query("completed"); v != "" {
		completed := v == "true"
		q.Completed = &completed
	}
	if v := c.Query("due_before"); v != "" {
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			q.DueBefore = &t
		}
	}
	if v := c.Query("due_after"); v != "" {
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			q.DueAfter = &t
		}
	}

	tasks, err := h.taskUsecase.ListTasks(userID, q)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"tasks": tasks, "total": len(tasks)})
}

// GetCompletedTasks returns the user's completed tasks
// GET /api/tasks/completed
func (h *TaskHandler) GetCompletedTasks(c *gin.Context) {
	h.listByCompletion(c, true)
}

// GetPendingTasks returns the user's uncompleted tasks
// GET /api/tasks/pending
func (h *TaskHandler) GetPendingTasks(c *gin.Context) {
	h.listByCompletion(c, false)
}

func (h *TaskHandler) listByCompletion(c *gin.Context, completed bool) {
	userID := c.GetString("userID")
	tasks, err := h.taskUsecase.ListTasks(userID, usecase.TaskListQuery{Completed: &completed})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tasks": tasks, "total": len(tasks)})
}

// GetSharedWithMe returns tasks other users shared with the caller
// GET /api/tasks/shared-with-me
func (h *TaskHandler) GetSharedWithMe(c *gin.Context) {
	userID := c.GetString("userID")
	tasks, err := h.taskUsecase.ListSharedWithMe(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tasks": tasks, "total": len(tasks)})
}

// GetTaskByID returns a specific task
// GET /api/tasks/:id
func (h *TaskHandler) GetTaskByID(c *gin.Context) {
	userID := c.GetString("userID")
	taskID := c.Param("id")

	task, err := h.taskUsecase.GetTask(userID, taskID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

// CreateTask creates a new task
// POST /api/tasks
func (h *TaskHandler) CreateTask(c *gin.Context) {
	userID := c.GetString("userID")

	var req usecase.TaskCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := h.taskUsecase.CreateTask(userID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, task)
}

// UpdateTask updates an existing task
// PUT /api/tasks/:id
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	userID := c.GetString("userID")
	taskID := c.Param("id")

	var updates usecase.TaskUpdateRequest
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := h.taskUsecase.UpdateTask(userID, taskID, updates)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

// DeleteTask deletes a task
// DELETE /api/tasks/:id
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	userID := c.GetString("userID")
	taskID := c.Param("id")

	if err := h.taskUsecase.DeleteTask(userID, taskID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ShareTask grants or changes another user's access to a task
// POST /api/tasks/:id/share
func (h *TaskHandler) ShareTask(c *gin.Context) {
	userID := c.GetString("userID")
	taskID := c.Param("id")

	var req ShareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.shareUsecase.ShareTask(userID, taskID, req.Username, req.Permission)
	if err != nil {
		respondError(c, err)
		return
	}

	status := http.StatusOK
	if result.Created {
		status = http.StatusCreated
	}
	c.JSON(status, result.Share)
}

// UnshareTask revokes a user's access to a task
// DELETE /api/tasks/:id/share?user_id=...
func (h *TaskHandler) UnshareTask(c *gin.Context) {
	userID := c.GetString("userID")
	taskID := c.Param("id")
	targetID := c.Query("user_id")

	if err := h.shareUsecase.UnshareTask(userID, taskID, targetID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetShares lists a task's active shares, owner only
// GET /api/tasks/:id/shares
func (h *TaskHandler) GetShares(c *gin.Context) {
	userID := c.GetString("userID")
	taskID := c.Param("id")

	shares, err := h.shareUsecase.ListShares(userID, taskID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"shares": shares, "total": len(shares)})
}
