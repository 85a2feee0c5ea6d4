package handlers

import (
	"net/http"

	"onboarding-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// DirectoryHandler handles people lookups in the corporate directory
type DirectoryHandler struct {
	directoryService service.DirectoryServiceInterface
}

// NewDirectoryHandler creates a new directory handler
func NewDirectoryHandler(directoryService service.DirectoryServiceInterface) *DirectoryHandler {
	return &DirectoryHandler{directoryService: directoryService}
}

// SearchPeople searches the directory
// @Summary Search the directory
// @Description Search LDAP for people by name or email prefix, for picking managers and buddies
// @Tags directory
// @Produce json
// @Param q query string true "Name or email prefix, at least 2 characters"
// @Success 200 {object} map[string]interface{} "Search results"
// @Failure 400 {object} ErrorResponse "Missing or too short query"
// @Failure 502 {object} ErrorResponse "LDAP connection or search failed"
// @Failure 503 {object} ErrorResponse "Directory lookup is not configured"
// @Security BearerAuth
// @Router /directory/search [get]
func (h *DirectoryHandler) SearchPeople(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing query parameter: q"})
		return
	}

	people, err := h.directoryService.SearchPeople(c, q)
	if err != nil {
		status := statusFor(err)
		if status == http.StatusInternalServerError {
			c.JSON(http.StatusBadGateway, gin.H{"error": "ldap search failed: " + err.Error()})
			return
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": people})
}
