package handlers

import (
	"fmt"
	"io"
	"net/http"
	"strconv"

	"onboarding-backend/internal/logger"
	"onboarding-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// DocumentHandler handles document upload and download
type DocumentHandler struct {
	documentService service.DocumentServiceInterface
}

// NewDocumentHandler creates a new document handler
func NewDocumentHandler(documentService service.DocumentServiceInterface) *DocumentHandler {
	return &DocumentHandler{
		documentService: documentService,
	}
}

// UploadDocument stores a file for a new hire
// @Summary Upload a document
// @Description Upload a file (contract, checklist, ...) for a new hire as multipart form field "file"
// @Tags documents
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "New hire ID (UUID)"
// @Param file formData file true "Document"
// @Success 201 {object} service.DocumentResponse "Document stored"
// @Failure 400 {object} ErrorResponse "Missing, empty or oversized file"
// @Failure 404 {object} ErrorResponse "New hire not found"
// @Failure 503 {object} ErrorResponse "Object storage is not configured"
// @Security BearerAuth
// @Router /new-hires/{id}/documents [post]
func (h *DocumentHandler) UploadDocument(c *gin.Context) {
	id, ok := pathUUID(c, "id", "new hire")
	if !ok {
		return
	}

	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "multipart field 'file' is required"})
		return
	}
	file, err := header.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read uploaded file"})
		return
	}
	defer file.Close()

	doc, err := h.documentService.Upload(c, id, &service.DocumentUpload{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Content:     file,
		UploadedBy:  c.GetString("email"),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, doc)
}

// ListDocuments lists the documents of a new hire
// @Summary List documents
// @Tags documents
// @Produce json
// @Param id path string true "New hire ID (UUID)"
// @Success 200 {object} map[string]interface{} "Documents, newest first"
// @Failure 400 {object} ErrorResponse "Invalid new hire ID"
// @Failure 404 {object} ErrorResponse "New hire not found"
// @Security BearerAuth
// @Router /new-hires/{id}/documents [get]
func (h *DocumentHandler) ListDocuments(c *gin.Context) {
	id, ok := pathUUID(c, "id", "new hire")
	if !ok {
		return
	}

	docs, err := h.documentService.List(c, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"documents": docs})
}

// DownloadDocument streams the content of a document
// @Summary Download a document
// @Tags documents
// @Produce octet-stream
// @Param docId path string true "Document ID (UUID)"
// @Success 200 {file} file "Document content"
// @Failure 400 {object} ErrorResponse "Invalid document ID"
// @Failure 404 {object} ErrorResponse "Document not found"
// @Failure 503 {object} ErrorResponse "Object storage is not configured"
// @Security BearerAuth
// @Router /documents/{docId} [get]
func (h *DocumentHandler) DownloadDocument(c *gin.Context) {
	id, ok := pathUUID(c, "docId", "document")
	if !ok {
		return
	}

	doc, body, err := h.documentService.Download(c, id)
	if err != nil {
		respondError(c, err)
		return
	}
	defer body.Close()

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.Filename))
	c.Header("Content-Type", doc.ContentType)
	c.Header("Content-Length", strconv.FormatInt(doc.Size, 10))
	c.Status(http.StatusOK)
	if _, err := io.Copy(c.Writer, body); err != nil {
		logger.WithContext(c).Component("api").WithError(err).
			WithField("document_id", id).
			Warn("document download interrupted")
	}
}

// DeleteDocument removes a document
// @Summary Delete a document
// @Tags documents
// @Param docId path string true "Document ID (UUID)"
// @Success 204 "Document deleted"
// @Failure 400 {object} ErrorResponse "Invalid document ID"
// @Failure 404 {object} ErrorResponse "Document not found"
// @Security BearerAuth
// @Router /documents/{docId} [delete]
func (h *DocumentHandler) DeleteDocument(c *gin.Context) {
	id, ok := pathUUID(c, "docId", "document")
	if !ok {
		return
	}

	if err := h.documentService.Delete(c, id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
