package repository

import (
	"context"

	"onboarding-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CommentRepository handles database operations for task comments
type CommentRepository struct {
	db *gorm.DB
}

var _ CommentRepositoryInterface = (*CommentRepository)(nil)

// NewCommentRepository creates a new comment repository
func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

// Create appends a comment
func (r *CommentRepository) Create(ctx context.Context, comment *models.TaskComment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

// ListByTask returns the comments of one task, oldest first
func (r *CommentRepository) ListByTask(ctx context.Context, newHireID uuid.UUID, taskID int) ([]models.TaskComment, error) {
	var comments []models.TaskComment
	err := r.db.WithContext(ctx).
		Where("new_hire_id = ? AND task_id = ?", newHireID, taskID).
		Order("created_at ASC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

// DeleteByNewHireID removes every comment of a new hire
func (r *CommentRepository) DeleteByNewHireID(ctx context.Context, newHireID uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.TaskComment{}, "new_hire_id = ?", newHireID).Error
}
