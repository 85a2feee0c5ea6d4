package handlers

import (
	"net/http"
	"strconv"

	"onboarding-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// NewHireHandler handles HTTP requests for new hires
type NewHireHandler struct {
	newHireService service.NewHireServiceInterface
}

// NewNewHireHandler creates a new new-hire handler
func NewNewHireHandler(newHireService service.NewHireServiceInterface) *NewHireHandler {
	return &NewHireHandler{
		newHireService: newHireService,
	}
}

// CreateNewHire onboards a new hire
// @Summary Create a new hire
// @Description Store a new hire and generate their 90-day onboarding plan.
// @Description
// @Description The plan comes from the role template catalog, or from the remote generator when PLAN_SOURCE=remote.
// @Description Unknown roles get the default role template. A welcome mail is sent when SMTP is configured.
// @Tags new-hires
// @Accept json
// @Produce json
// @Param new_hire body service.CreateNewHireRequest true "New hire data"
// @Success 201 {object} service.NewHireResponse "Successfully created new hire with plan"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Buddy or manager not found"
// @Failure 409 {object} ErrorResponse "New hire with this email already exists"
// @Security BearerAuth
// @Router /new-hires [post]
func (h *NewHireHandler) CreateNewHire(c *gin.Context) {
	var req service.CreateNewHireRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	hire, err := h.newHireService.CreateNewHire(c, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, hire)
}

// GetNewHire retrieves a new hire
// @Summary Get new hire by ID
// @Description Get a new hire with the status and progress derived from their plan as of today
// @Tags new-hires
// @Produce json
// @Param id path string true "New hire ID (UUID)"
// @Success 200 {object} service.NewHireResponse "Successfully retrieved new hire"
// @Failure 400 {object} ErrorResponse "Invalid new hire ID"
// @Failure 404 {object} ErrorResponse "New hire not found"
// @Security BearerAuth
// @Router /new-hires/{id} [get]
func (h *NewHireHandler) GetNewHire(c *gin.Context) {
	id, ok := pathUUID(c, "id", "new hire")
	if !ok {
		return
	}

	hire, err := h.newHireService.GetNewHire(c, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, hire)
}

// ListNewHires lists new hires
// @Summary List new hires
// @Description List new hires with pagination. The status filter matches the derived status.
// @Tags new-hires
// @Produce json
// @Param manager_id query string false "Manager ID (UUID)"
// @Param buddy_id query string false "Buddy ID (UUID)"
// @Param status query string false "Derived status (not_started, in_progress, completed, overdue)"
// @Param limit query int false "Number of items to return" default(20)
// @Param offset query int false "Number of items to skip" default(0)
// @Success 200 {object} map[string]interface{} "Successfully retrieved new hires list"
// @Failure 400 {object} ErrorResponse "Invalid parameters"
// @Security BearerAuth
// @Router /new-hires [get]
func (h *NewHireHandler) ListNewHires(c *gin.Context) {
	managerID, ok := queryUUID(c, "manager_id")
	if !ok {
		return
	}
	buddyID, ok := queryUUID(c, "buddy_id")
	if !ok {
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	filter := service.NewHireListFilter{
		ManagerID: managerID,
		BuddyID:   buddyID,
		Status:    c.Query("status"),
	}
	hires, total, err := h.newHireService.ListNewHires(c, filter, limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"new_hires": hires,
		"total":     total,
		"limit":     limit,
		"offset":    offset,
	})
}

// UpdateNewHire updates a new hire
// @Summary Update new hire
// @Description Partially update a new hire. Changing role or start date keeps the current plan; use the regenerate endpoint to rebuild it.
// @Tags new-hires
// @Accept json
// @Produce json
// @Param id path string true "New hire ID (UUID)"
// @Param new_hire body service.UpdateNewHireRequest true "Fields to update"
// @Success 200 {object} service.NewHireResponse "Successfully updated new hire"
// @Failure 400 {object} ErrorResponse "Invalid request body or new hire ID"
// @Failure 404 {object} ErrorResponse "New hire not found"
// @Security BearerAuth
// @Router /new-hires/{id} [put]
func (h *NewHireHandler) UpdateNewHire(c *gin.Context) {
	id, ok := pathUUID(c, "id", "new hire")
	if !ok {
		return
	}

	var req service.UpdateNewHireRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	hire, err := h.newHireService.UpdateNewHire(c, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, hire)
}

// DeleteNewHire deletes a new hire
// @Summary Delete new hire
// @Description Delete a new hire together with their plan, comments, feedback and documents
// @Tags new-hires
// @Param id path string true "New hire ID (UUID)"
// @Success 204 "Successfully deleted new hire"
// @Failure 400 {object} ErrorResponse "Invalid new hire ID"
// @Failure 404 {object} ErrorResponse "New hire not found"
// @Security BearerAuth
// @Router /new-hires/{id} [delete]
func (h *NewHireHandler) DeleteNewHire(c *gin.Context) {
	id, ok := pathUUID(c, "id", "new hire")
	if !ok {
		return
	}

	if err := h.newHireService.DeleteNewHire(c, id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
