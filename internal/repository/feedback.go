package repository

import (
	"context"

	"onboarding-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FeedbackRepository handles database operations for feedback
type FeedbackRepository struct {
	db *gorm.DB
}

var _ FeedbackRepositoryInterface = (*FeedbackRepository)(nil)

// NewFeedbackRepository creates a new feedback repository
func NewFeedbackRepository(db *gorm.DB) *FeedbackRepository {
	return &FeedbackRepository{db: db}
}

// Create stores a feedback entry
func (r *FeedbackRepository) Create(ctx context.Context, feedback *models.Feedback) error {
	return r.db.WithContext(ctx).Create(feedback).Error
}

// ListByNewHire returns feedback for a new hire, newest first
func (r *FeedbackRepository) ListByNewHire(ctx context.Context, newHireID uuid.UUID) ([]models.Feedback, error) {
	var entries []models.Feedback
	err := r.db.WithContext(ctx).
		Where("new_hire_id = ?", newHireID).
		Order("created_at DESC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// DeleteByNewHireID removes all feedback of a new hire
func (r *FeedbackRepository) DeleteByNewHireID(ctx context.Context, newHireID uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.Feedback{}, "new_hire_id = ?", newHireID).Error
}
