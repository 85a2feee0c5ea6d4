package handlers

import (
	"net/http"
	"strconv"

	"onboarding-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// CommentHandler handles HTTP requests for task comments
type CommentHandler struct {
	commentService service.CommentServiceInterface
}

// NewCommentHandler creates a new comment handler
func NewCommentHandler(commentService service.CommentServiceInterface) *CommentHandler {
	return &CommentHandler{
		commentService: commentService,
	}
}

// AddComment appends a comment to a task
// @Summary Comment on a task
// @Description Append a comment to a task of the new hire's plan. Comments cannot be edited.
// @Tags comments
// @Accept json
// @Produce json
// @Param id path string true "New hire ID (UUID)"
// @Param taskId path int true "Task ID"
// @Param comment body service.AddCommentRequest true "Comment"
// @Success 201 {object} service.CommentResponse "Comment added"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "New hire, plan or task not found"
// @Security BearerAuth
// @Router /new-hires/{id}/tasks/{taskId}/comments [post]
func (h *CommentHandler) AddComment(c *gin.Context) {
	id, ok := pathUUID(c, "id", "new hire")
	if !ok {
		return
	}
	taskID, ok := pathTaskID(c)
	if !ok {
		return
	}

	var req service.AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment, err := h.commentService.AddComment(c, id, taskID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, comment)
}

// ListComments lists the comments of a task
// @Summary List task comments
// @Tags comments
// @Produce json
// @Param id path string true "New hire ID (UUID)"
// @Param taskId path int true "Task ID"
// @Success 200 {object} map[string]interface{} "Comments, oldest first"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "New hire, plan or task not found"
// @Security BearerAuth
// @Router /new-hires/{id}/tasks/{taskId}/comments [get]
func (h *CommentHandler) ListComments(c *gin.Context) {
	id, ok := pathUUID(c, "id", "new hire")
	if !ok {
		return
	}
	taskID, ok := pathTaskID(c)
	if !ok {
		return
	}

	comments, err := h.commentService.ListComments(c, id, taskID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"comments": comments})
}

func pathTaskID(c *gin.Context) (int, bool) {
	taskID, err := strconv.Atoi(c.Param("taskId"))
	if err != nil || taskID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task ID"})
		return 0, false
	}
	return taskID, true
}
