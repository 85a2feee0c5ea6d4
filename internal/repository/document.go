package repository

import (
	"context"

	"onboarding-backend/internal/database/models"
	apperrors "onboarding-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DocumentRepository handles database operations for document metadata
type DocumentRepository struct {
	db *gorm.DB
}

var _ DocumentRepositoryInterface = (*DocumentRepository)(nil)

// NewDocumentRepository creates a new document repository
func NewDocumentRepository(db *gorm.DB) *DocumentRepository {
	return &DocumentRepository{db: db}
}

// Create stores document metadata
func (r *DocumentRepository) Create(ctx context.Context, doc *models.Document) error {
	return r.db.WithContext(ctx).Create(doc).Error
}

// GetByID retrieves a document by ID
func (r *DocumentRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Document, error) {
	var doc models.Document
	err := r.db.WithContext(ctx).First(&doc, "id = ?", id).Error
	if err != nil {
		return nil, notFound(err, apperrors.ErrDocumentNotFound)
	}
	return &doc, nil
}

// ListByNewHire returns the documents of a new hire, newest first
func (r *DocumentRepository) ListByNewHire(ctx context.Context, newHireID uuid.UUID) ([]models.Document, error) {
	var docs []models.Document
	err := r.db.WithContext(ctx).
		Where("new_hire_id = ?", newHireID).
		Order("created_at DESC").
		Find(&docs).Error
	if err != nil {
		return nil, err
	}
	return docs, nil
}

// Delete removes document metadata
func (r *DocumentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.Document{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrDocumentNotFound
	}
	return nil
}
