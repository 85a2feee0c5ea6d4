package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"onboarding-backend/internal/database/models"
	apperrors "onboarding-backend/internal/errors"
	"onboarding-backend/internal/logger"
	"onboarding-backend/internal/storage"

	"github.com/google/uuid"
)

const defaultContentType = "application/octet-stream"

// DocumentService stores files for new hires in object storage and their
// metadata in the database
type DocumentService struct {
	repos    Repositories
	store    storage.ObjectStore
	maxBytes int64
}

var _ DocumentServiceInterface = (*DocumentService)(nil)

// NewDocumentService creates a new document service. A maxBytes of zero
// accepts uploads of any size.
func NewDocumentService(repos Repositories, store storage.ObjectStore, maxBytes int64) *DocumentService {
	return &DocumentService{repos: repos, store: store, maxBytes: maxBytes}
}

// DocumentUpload is one file to store
type DocumentUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Content     io.Reader
	UploadedBy  string
}

// DocumentResponse represents the metadata of a stored document
type DocumentResponse struct {
	ID          uuid.UUID `json:"id"`
	NewHireID   uuid.UUID `json:"new_hire_id"`
	Filename    string    `json:"filename"`
	ContentType string    `json:"content_type"`
	Size        int64     `json:"size"`
	UploadedBy  string    `json:"uploaded_by"`
	CreatedAt   string    `json:"created_at"`
}

// Upload stores the file under new-hires/<id>/<uuid>-<filename> and records it
func (s *DocumentService) Upload(ctx context.Context, newHireID uuid.UUID, upload *DocumentUpload) (*DocumentResponse, error) {
	filename := cleanFilename(upload.Filename)
	if filename == "" {
		return nil, apperrors.NewValidationError("file", "filename is required")
	}
	if upload.Size <= 0 {
		return nil, apperrors.NewValidationError("file", "file is empty")
	}
	if s.maxBytes > 0 && upload.Size > s.maxBytes {
		return nil, apperrors.NewValidationError("file", fmt.Sprintf("file exceeds %d bytes", s.maxBytes))
	}
	if _, err := s.repos.NewHires.GetByID(ctx, newHireID); err != nil {
		return nil, err
	}

	contentType := upload.ContentType
	if contentType == "" {
		contentType = defaultContentType
	}
	uploadedBy := upload.UploadedBy
	if uploadedBy == "" {
		uploadedBy = actor(ctx)
	}

	key := fmt.Sprintf("new-hires/%s/%s-%s", newHireID, uuid.New(), filename)
	if err := s.store.Put(ctx, key, upload.Content, upload.Size, contentType); err != nil {
		return nil, fmt.Errorf("failed to store document: %w", err)
	}

	doc := &models.Document{
		BaseModel:   models.BaseModel{CreatedBy: uploadedBy, UpdatedBy: uploadedBy},
		NewHireID:   newHireID,
		Filename:    filename,
		ContentType: contentType,
		Size:        upload.Size,
		ObjectKey:   key,
		UploadedBy:  uploadedBy,
	}
	if err := s.repos.Documents.Create(ctx, doc); err != nil {
		if rmErr := s.store.Remove(ctx, key); rmErr != nil {
			logger.WithContext(ctx).Component("documents").WithError(rmErr).
				WithField("object_key", key).
				Warn("failed to remove orphaned object")
		}
		return nil, fmt.Errorf("failed to record document: %w", err)
	}

	return toDocumentResponse(doc), nil
}

// List lists the documents of a new hire, newest first
func (s *DocumentService) List(ctx context.Context, newHireID uuid.UUID) ([]DocumentResponse, error) {
	if _, err := s.repos.NewHires.GetByID(ctx, newHireID); err != nil {
		return nil, err
	}

	docs, err := s.repos.Documents.ListByNewHire(ctx, newHireID)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}

	responses := make([]DocumentResponse, len(docs))
	for i := range docs {
		responses[i] = *toDocumentResponse(&docs[i])
	}
	return responses, nil
}

// Download opens the stored content of a document. The caller closes the reader.
func (s *DocumentService) Download(ctx context.Context, documentID uuid.UUID) (*DocumentResponse, io.ReadCloser, error) {
	doc, err := s.repos.Documents.GetByID(ctx, documentID)
	if err != nil {
		return nil, nil, err
	}

	body, err := s.store.Get(ctx, doc.ObjectKey)
	if err != nil {
		if apperrors.IsNotFound(err) || apperrors.IsConfiguration(err) {
			return nil, nil, err
		}
		return nil, nil, fmt.Errorf("failed to read document: %w", err)
	}
	return toDocumentResponse(doc), body, nil
}

// Delete removes the stored object and then the metadata
func (s *DocumentService) Delete(ctx context.Context, documentID uuid.UUID) error {
	doc, err := s.repos.Documents.GetByID(ctx, documentID)
	if err != nil {
		return err
	}

	if err := s.store.Remove(ctx, doc.ObjectKey); err != nil && !errors.Is(err, apperrors.ErrDocumentNotFound) {
		if apperrors.IsConfiguration(err) {
			return err
		}
		return fmt.Errorf("failed to remove document: %w", err)
	}
	return s.repos.Documents.Delete(ctx, documentID)
}

// cleanFilename keeps the base name and drops characters that do not belong in an object key
func cleanFilename(name string) string {
	name = path.Base(strings.ReplaceAll(strings.TrimSpace(name), "\\", "/"))
	if name == "." || name == "/" {
		return ""
	}
	return strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, name)
}

func toDocumentResponse(d *models.Document) *DocumentResponse {
	return &DocumentResponse{
		ID:          d.ID,
		NewHireID:   d.NewHireID,
		Filename:    d.Filename,
		ContentType: d.ContentType,
		Size:        d.Size,
		UploadedBy:  d.UploadedBy,
		CreatedAt:   formatTime(d.CreatedAt),
	}
}
