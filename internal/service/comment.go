package service

import (
	"context"
	"fmt"

	"onboarding-backend/internal/database/models"
	apperrors "onboarding-backend/internal/errors"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// CommentService handles append-only comments on plan tasks
type CommentService struct {
	repos     Repositories
	validator *validator.Validate
}

var _ CommentServiceInterface = (*CommentService)(nil)

// NewCommentService creates a new comment service
func NewCommentService(repos Repositories, validator *validator.Validate) *CommentService {
	return &CommentService{repos: repos, validator: validator}
}

// AddCommentRequest represents a new comment on a task
type AddCommentRequest struct {
	Body string `json:"body" validate:"required,max=4000" example:"Laptop arrived, setting up now"`
}

// CommentResponse represents the response data for a comment
type CommentResponse struct {
	ID        uuid.UUID `json:"id"`
	NewHireID uuid.UUID `json:"new_hire_id"`
	TaskID    int       `json:"task_id"`
	Author    string    `json:"author"`
	Body      string    `json:"body"`
	CreatedAt string    `json:"created_at"`
}

// AddComment appends a comment to a task of the new hire's plan
func (s *CommentService) AddComment(ctx context.Context, newHireID uuid.UUID, taskID int, req *AddCommentRequest) (*CommentResponse, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}
	if err := s.checkTask(ctx, newHireID, taskID); err != nil {
		return nil, err
	}

	comment := &models.TaskComment{
		BaseModel: models.BaseModel{CreatedBy: actor(ctx), UpdatedBy: actor(ctx)},
		NewHireID: newHireID,
		TaskID:    taskID,
		Author:    actor(ctx),
		Body:      req.Body,
	}
	if err := s.repos.Comments.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("failed to add comment: %w", err)
	}
	return toCommentResponse(comment), nil
}

// ListComments lists the comments of a task, oldest first
func (s *CommentService) ListComments(ctx context.Context, newHireID uuid.UUID, taskID int) ([]CommentResponse, error) {
	if err := s.checkTask(ctx, newHireID, taskID); err != nil {
		return nil, err
	}

	comments, err := s.repos.Comments.ListByTask(ctx, newHireID, taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}

	responses := make([]CommentResponse, len(comments))
	for i := range comments {
		responses[i] = *toCommentResponse(&comments[i])
	}
	return responses, nil
}

// checkTask makes sure the task exists in the new hire's plan
func (s *CommentService) checkTask(ctx context.Context, newHireID uuid.UUID, taskID int) error {
	if taskID <= 0 {
		return apperrors.NewValidationError("task_id", "must be a positive integer")
	}
	if _, err := s.repos.NewHires.GetByID(ctx, newHireID); err != nil {
		return err
	}
	row, err := s.repos.Plans.GetByNewHireID(ctx, newHireID)
	if err != nil {
		return err
	}
	plan := row.Plan()
	if _, _, ok := plan.FindTask(taskID); !ok {
		return apperrors.ErrTaskNotFound
	}
	return nil
}

func toCommentResponse(c *models.TaskComment) *CommentResponse {
	return &CommentResponse{
		ID:        c.ID,
		NewHireID: c.NewHireID,
		TaskID:    c.TaskID,
		Author:    c.Author,
		Body:      c.Body,
		CreatedAt: formatTime(c.CreatedAt),
	}
}
