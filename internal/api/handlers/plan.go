package handlers

import (
	"net/http"

	"onboarding-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// PlanHandler handles HTTP requests for onboarding plans
type PlanHandler struct {
	planService service.PlanServiceInterface
}

// NewPlanHandler creates a new plan handler
func NewPlanHandler(planService service.PlanServiceInterface) *PlanHandler {
	return &PlanHandler{
		planService: planService,
	}
}

// GetPlan returns the plan of a new hire
// @Summary Get onboarding plan
// @Description Get the stored plan of a new hire with progress derived as of today
// @Tags plans
// @Produce json
// @Param id path string true "New hire ID (UUID)"
// @Success 200 {object} service.PlanResponse "Successfully retrieved plan"
// @Failure 400 {object} ErrorResponse "Invalid new hire ID"
// @Failure 404 {object} ErrorResponse "New hire or plan not found"
// @Security BearerAuth
// @Router /new-hires/{id}/plan [get]
func (h *PlanHandler) GetPlan(c *gin.Context) {
	id, ok := pathUUID(c, "id", "new hire")
	if !ok {
		return
	}

	plan, err := h.planService.GetPlan(c, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, plan)
}

// GetProgress returns the dashboard progress of a new hire
// @Summary Get onboarding progress
// @Description Get scheduled and actual milestone progress, derived status and task counts
// @Tags plans
// @Produce json
// @Param id path string true "New hire ID (UUID)"
// @Success 200 {object} service.ProgressResponse "Successfully retrieved progress"
// @Failure 400 {object} ErrorResponse "Invalid new hire ID"
// @Failure 404 {object} ErrorResponse "New hire or plan not found"
// @Security BearerAuth
// @Router /new-hires/{id}/progress [get]
func (h *PlanHandler) GetProgress(c *gin.Context) {
	id, ok := pathUUID(c, "id", "new hire")
	if !ok {
		return
	}

	progress, err := h.planService.GetProgress(c, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, progress)
}

// UpdateTaskStatus changes the status of one task
// @Summary Update task status
// @Description Set the status of one task. Send base_version to reject the write when the plan changed since it was read.
// @Tags plans
// @Accept json
// @Produce json
// @Param id path string true "New hire ID (UUID)"
// @Param update body service.UpdateTaskStatusRequest true "Task status change"
// @Success 200 {object} service.PlanResponse "Updated plan"
// @Failure 400 {object} ErrorResponse "Invalid milestone, status or task reference"
// @Failure 404 {object} ErrorResponse "New hire, plan, milestone or task not found"
// @Failure 409 {object} ErrorResponse "Plan was modified by another request"
// @Security BearerAuth
// @Router /new-hires/{id}/plan/tasks [patch]
func (h *PlanHandler) UpdateTaskStatus(c *gin.Context) {
	id, ok := pathUUID(c, "id", "new hire")
	if !ok {
		return
	}

	var req service.UpdateTaskStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	plan, err := h.planService.UpdateTaskStatus(c, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, plan)
}

// RegeneratePlan rebuilds the plan of a new hire
// @Summary Regenerate onboarding plan
// @Description Replace the plan with a fresh one for the new hire's current role and start date. All task statuses are reset.
// @Tags plans
// @Produce json
// @Param id path string true "New hire ID (UUID)"
// @Success 200 {object} service.PlanResponse "Regenerated plan"
// @Failure 400 {object} ErrorResponse "Invalid new hire ID"
// @Failure 404 {object} ErrorResponse "New hire not found"
// @Security BearerAuth
// @Router /new-hires/{id}/plan/regenerate [post]
func (h *PlanHandler) RegeneratePlan(c *gin.Context) {
	id, ok := pathUUID(c, "id", "new hire")
	if !ok {
		return
	}

	plan, err := h.planService.RegeneratePlan(c, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, plan)
}
