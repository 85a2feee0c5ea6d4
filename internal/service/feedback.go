package service

import (
	"context"
	"fmt"

	"onboarding-backend/internal/database/models"
	apperrors "onboarding-backend/internal/errors"
	"onboarding-backend/internal/events"
	"onboarding-backend/internal/onboarding"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// FeedbackService collects feedback on how onboarding is going
type FeedbackService struct {
	repos     Repositories
	publisher events.Publisher
	validator *validator.Validate
}

var _ FeedbackServiceInterface = (*FeedbackService)(nil)

// NewFeedbackService creates a new feedback service
func NewFeedbackService(repos Repositories, publisher events.Publisher, validator *validator.Validate) *FeedbackService {
	return &FeedbackService{repos: repos, publisher: publisher, validator: validator}
}

// SubmitFeedbackRequest represents one piece of feedback. From defaults to the caller.
type SubmitFeedbackRequest struct {
	From        string  `json:"from" validate:"max=255" example:"ada@example.com"`
	MilestoneID *string `json:"milestone_id,omitempty" example:"week_1"`
	Rating      int     `json:"rating" validate:"required,min=1,max=5" example:"4"`
	Message     string  `json:"message" validate:"max=4000" example:"The buddy sessions help a lot"`
}

// FeedbackResponse represents the response data for feedback
type FeedbackResponse struct {
	ID          uuid.UUID `json:"id"`
	NewHireID   uuid.UUID `json:"new_hire_id"`
	From        string    `json:"from"`
	MilestoneID *string   `json:"milestone_id,omitempty"`
	Rating      int       `json:"rating"`
	Message     string    `json:"message"`
	CreatedAt   string    `json:"created_at"`
}

// SubmitFeedback stores feedback for a new hire
func (s *FeedbackService) SubmitFeedback(ctx context.Context, newHireID uuid.UUID, req *SubmitFeedbackRequest) (*FeedbackResponse, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}
	if req.MilestoneID != nil && !onboarding.MilestoneID(*req.MilestoneID).IsValid() {
		return nil, apperrors.NewValidationError("milestone_id", fmt.Sprintf("unknown milestone %q", *req.MilestoneID))
	}
	if _, err := s.repos.NewHires.GetByID(ctx, newHireID); err != nil {
		return nil, err
	}

	from := req.From
	if from == "" {
		from = actor(ctx)
	}

	entry := &models.Feedback{
		BaseModel:   models.BaseModel{CreatedBy: actor(ctx), UpdatedBy: actor(ctx)},
		NewHireID:   newHireID,
		From:        from,
		MilestoneID: req.MilestoneID,
		Rating:      req.Rating,
		Message:     req.Message,
	}
	if err := s.repos.Feedback.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to submit feedback: %w", err)
	}

	publish(ctx, s.publisher, events.FeedbackSubmitted, newHireID, map[string]interface{}{
		"rating":       entry.Rating,
		"milestone_id": entry.MilestoneID,
	})
	return toFeedbackResponse(entry), nil
}

// ListFeedback lists all feedback for a new hire, newest first
func (s *FeedbackService) ListFeedback(ctx context.Context, newHireID uuid.UUID) ([]FeedbackResponse, error) {
	if _, err := s.repos.NewHires.GetByID(ctx, newHireID); err != nil {
		return nil, err
	}

	entries, err := s.repos.Feedback.ListByNewHire(ctx, newHireID)
	if err != nil {
		return nil, fmt.Errorf("failed to list feedback: %w", err)
	}

	responses := make([]FeedbackResponse, len(entries))
	for i := range entries {
		responses[i] = *toFeedbackResponse(&entries[i])
	}
	return responses, nil
}

func toFeedbackResponse(f *models.Feedback) *FeedbackResponse {
	return &FeedbackResponse{
		ID:          f.ID,
		NewHireID:   f.NewHireID,
		From:        f.From,
		MilestoneID: f.MilestoneID,
		Rating:      f.Rating,
		Message:     f.Message,
		CreatedAt:   formatTime(f.CreatedAt),
	}
}
