package handlers

import (
	"net/http"

	"onboarding-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// FeedbackHandler handles HTTP requests for onboarding feedback
type FeedbackHandler struct {
	feedbackService service.FeedbackServiceInterface
}

// NewFeedbackHandler creates a new feedback handler
func NewFeedbackHandler(feedbackService service.FeedbackServiceInterface) *FeedbackHandler {
	return &FeedbackHandler{
		feedbackService: feedbackService,
	}
}

// SubmitFeedback stores feedback for a new hire
// @Summary Submit feedback
// @Description Submit a 1 to 5 rating with an optional message, optionally tied to a milestone
// @Tags feedback
// @Accept json
// @Produce json
// @Param id path string true "New hire ID (UUID)"
// @Param feedback body service.SubmitFeedbackRequest true "Feedback"
// @Success 201 {object} service.FeedbackResponse "Feedback stored"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "New hire not found"
// @Security BearerAuth
// @Router /new-hires/{id}/feedback [post]
func (h *FeedbackHandler) SubmitFeedback(c *gin.Context) {
	id, ok := pathUUID(c, "id", "new hire")
	if !ok {
		return
	}

	var req service.SubmitFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	feedback, err := h.feedbackService.SubmitFeedback(c, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, feedback)
}

// ListFeedback lists the feedback of a new hire
// @Summary List feedback
// @Tags feedback
// @Produce json
// @Param id path string true "New hire ID (UUID)"
// @Success 200 {object} map[string]interface{} "Feedback, newest first"
// @Failure 400 {object} ErrorResponse "Invalid new hire ID"
// @Failure 404 {object} ErrorResponse "New hire not found"
// @Security BearerAuth
// @Router /new-hires/{id}/feedback [get]
func (h *FeedbackHandler) ListFeedback(c *gin.Context) {
	id, ok := pathUUID(c, "id", "new hire")
	if !ok {
		return
	}

	feedback, err := h.feedbackService.ListFeedback(c, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"feedback": feedback})
}
