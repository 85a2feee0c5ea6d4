package handlers

import (
	"fmt"
	"net/http"

	"onboarding-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ExportHandler serves plan downloads
type ExportHandler struct {
	exportService service.ExportServiceInterface
}

// NewExportHandler creates a new export handler
func NewExportHandler(exportService service.ExportServiceInterface) *ExportHandler {
	return &ExportHandler{
		exportService: exportService,
	}
}

// ExportPlan renders the plan as a spreadsheet or PDF
// @Summary Export onboarding plan
// @Description Download the plan as an Excel workbook (one sheet per milestone) or a PDF document
// @Tags plans
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Produce application/pdf
// @Param id path string true "New hire ID (UUID)"
// @Param format query string false "Export format (xlsx, pdf)" default(xlsx)
// @Success 200 {file} file "Rendered plan"
// @Failure 400 {object} ErrorResponse "Invalid new hire ID or format"
// @Failure 404 {object} ErrorResponse "New hire or plan not found"
// @Security BearerAuth
// @Router /new-hires/{id}/plan/export [get]
func (h *ExportHandler) ExportPlan(c *gin.Context) {
	id, ok := pathUUID(c, "id", "new hire")
	if !ok {
		return
	}

	file, err := h.exportService.ExportPlan(c, id, c.DefaultQuery("format", service.ExportFormatXLSX))
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Filename))
	c.Data(http.StatusOK, file.ContentType, file.Data)
}
