package service

import (
	"context"
	"errors"
	"fmt"

	"onboarding-backend/internal/database/models"
	apperrors "onboarding-backend/internal/errors"
	"onboarding-backend/internal/events"
	"onboarding-backend/internal/logger"
	"onboarding-backend/internal/onboarding"
	"onboarding-backend/internal/plansource"
	"onboarding-backend/internal/repository"
	"onboarding-backend/internal/storage"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// NewHireService handles business logic for new hires and owns plan creation
type NewHireService struct {
	repos     Repositories
	store     storage.ObjectStore
	source    plansource.PlanSource
	publisher events.Publisher
	notifier  NotifierInterface
	clock     onboarding.Clock
	validator *validator.Validate
}

var _ NewHireServiceInterface = (*NewHireService)(nil)

// NewNewHireService creates a new new-hire service
func NewNewHireService(repos Repositories, store storage.ObjectStore, source plansource.PlanSource, publisher events.Publisher, notifier NotifierInterface, clock onboarding.Clock, validator *validator.Validate) *NewHireService {
	return &NewHireService{
		repos:     repos,
		store:     store,
		source:    source,
		publisher: publisher,
		notifier:  notifier,
		clock:     clock,
		validator: validator,
	}
}

// CreateNewHireRequest represents the data needed to onboard someone
type CreateNewHireRequest struct {
	Name      string          `json:"name" validate:"required,max=100" example:"Ada Lovelace"`
	Email     string          `json:"email" validate:"required,email,max=255" example:"ada@example.com"`
	Role      string          `json:"role" validate:"required,max=100" example:"software_engineer"`
	StartDate onboarding.Date `json:"start_date" swaggertype:"string" example:"2025-01-06"`
	BuddyID   *uuid.UUID      `json:"buddy_id,omitempty"`
	ManagerID *uuid.UUID      `json:"manager_id,omitempty"`
}

// UpdateNewHireRequest represents a partial update of a new hire.
// Changing role or start date does not regenerate the plan.
type UpdateNewHireRequest struct {
	Name      *string          `json:"name" validate:"omitempty,max=100"`
	Email     *string          `json:"email" validate:"omitempty,email,max=255"`
	Role      *string          `json:"role" validate:"omitempty,max=100"`
	StartDate *onboarding.Date `json:"start_date" swaggertype:"string" example:"2025-01-13"`
	BuddyID   *uuid.UUID       `json:"buddy_id"`
	ManagerID *uuid.UUID       `json:"manager_id"`
}

// NewHireListFilter narrows a new hire listing. Status is matched against the
// derived status.
type NewHireListFilter struct {
	ManagerID *uuid.UUID
	BuddyID   *uuid.UUID
	Status    string
}

// NewHireResponse represents the response data for a new hire
type NewHireResponse struct {
	ID               uuid.UUID                   `json:"id"`
	Name             string                      `json:"name"`
	Email            string                      `json:"email"`
	Role             string                      `json:"role"`
	StartDate        onboarding.Date             `json:"start_date" swaggertype:"string"`
	BuddyID          *uuid.UUID                  `json:"buddy_id,omitempty"`
	ManagerID        *uuid.UUID                  `json:"manager_id,omitempty"`
	CurrentMilestone string                      `json:"current_milestone"`
	CalculatedStatus onboarding.OnboardingStatus `json:"calculated_status"`
	Progress         *onboarding.Progress        `json:"progress,omitempty"`
	PlanVersion      int                         `json:"plan_version,omitempty"`
	PlanSource       string                      `json:"plan_source,omitempty"`
	CreatedAt        string                      `json:"created_at"`
	UpdatedAt        string                      `json:"updated_at"`
}

// CreateNewHire stores the new hire, generates and stores their plan, then
// announces them. If no plan can be stored the new hire is removed again.
func (s *NewHireService) CreateNewHire(ctx context.Context, req *CreateNewHireRequest) (*NewHireResponse, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}
	if req.StartDate.IsZero() {
		return nil, apperrors.NewValidationError("start_date", "is required")
	}
	if err := s.checkPeople(ctx, req.BuddyID, req.ManagerID); err != nil {
		return nil, err
	}

	log := logger.WithContext(ctx).Component("new_hire")
	hire := &models.NewHire{
		BaseModel:        models.BaseModel{CreatedBy: actor(ctx), UpdatedBy: actor(ctx)},
		Name:             req.Name,
		Email:            req.Email,
		Role:             req.Role,
		StartDate:        req.StartDate.Time,
		BuddyID:          req.BuddyID,
		ManagerID:        req.ManagerID,
		CurrentMilestone: string(onboarding.MilestoneDay1),
	}
	if err := s.repos.NewHires.Create(ctx, hire); err != nil {
		if errors.Is(err, apperrors.ErrNewHireExists) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create new hire: %w", err)
	}
	log = log.WithField("new_hire_id", hire.ID)

	plan, result, err := generatePlan(ctx, s.source, hire)
	if err != nil {
		s.rollback(ctx, hire.ID)
		return nil, err
	}

	row := &models.OnboardingPlan{
		BaseModel: models.BaseModel{CreatedBy: actor(ctx), UpdatedBy: actor(ctx)},
		NewHireID: hire.ID,
	}
	row.SetPlan(plan)
	if err := s.repos.Plans.Create(ctx, row); err != nil {
		s.rollback(ctx, hire.ID)
		return nil, fmt.Errorf("failed to save plan: %w", err)
	}

	log.WithFields(map[string]interface{}{
		"source":        result.Source,
		"role_fallback": result.RoleFallback,
		"fallback":      result.SourceFallback,
	}).Info("New hire onboarded")

	publish(ctx, s.publisher, events.NewHireCreated, hire.ID, map[string]interface{}{
		"name":       hire.Name,
		"email":      hire.Email,
		"role":       hire.Role,
		"start_date": req.StartDate.String(),
		"source":     plan.Source,
	})
	if err := s.notifier.NotifyWelcome(ctx, hire, &plan); err != nil {
		log.WithError(err).Warn("failed to send welcome mail")
	}

	return s.toResponse(hire, row), nil
}

// GetNewHire retrieves a new hire with the status derived from their plan
func (s *NewHireService) GetNewHire(ctx context.Context, id uuid.UUID) (*NewHireResponse, error) {
	hire, err := s.repos.NewHires.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	row, err := s.loadPlan(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.toResponse(hire, row), nil
}

// ListNewHires lists new hires. Manager and buddy filters go to the store; the
// status filter is applied after derivation, so pagination counts matches only.
func (s *NewHireService) ListNewHires(ctx context.Context, filter NewHireListFilter, limit, offset int) ([]NewHireResponse, int64, error) {
	if limit <= 0 || offset < 0 {
		return nil, 0, apperrors.ErrInvalidPaginationParams
	}
	if filter.Status != "" && !onboarding.OnboardingStatus(filter.Status).IsValid() {
		return nil, 0, apperrors.NewValidationError("status", "must be one of not_started, in_progress, completed, overdue")
	}

	repoFilter := repository.NewHireFilter{ManagerID: filter.ManagerID, BuddyID: filter.BuddyID}
	if filter.Status == "" {
		repoFilter.Limit = limit
		repoFilter.Offset = offset
	}

	hires, total, err := s.repos.NewHires.List(ctx, repoFilter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list new hires: %w", err)
	}

	responses := make([]NewHireResponse, 0, len(hires))
	for i := range hires {
		row, err := s.loadPlan(ctx, hires[i].ID)
		if err != nil {
			return nil, 0, err
		}
		resp := s.toResponse(&hires[i], row)
		if filter.Status != "" && string(resp.CalculatedStatus) != filter.Status {
			continue
		}
		responses = append(responses, *resp)
	}

	if filter.Status == "" {
		return responses, total, nil
	}
	total = int64(len(responses))
	if offset >= len(responses) {
		return []NewHireResponse{}, total, nil
	}
	end := offset + limit
	if end > len(responses) {
		end = len(responses)
	}
	return responses[offset:end], total, nil
}

// UpdateNewHire applies a partial update
func (s *NewHireService) UpdateNewHire(ctx context.Context, id uuid.UUID, req *UpdateNewHireRequest) (*NewHireResponse, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	hire, err := s.repos.NewHires.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.checkPeople(ctx, req.BuddyID, req.ManagerID); err != nil {
		return nil, err
	}

	if req.Name != nil {
		hire.Name = *req.Name
	}
	if req.Email != nil {
		hire.Email = *req.Email
	}
	if req.Role != nil {
		if *req.Role == "" {
			return nil, apperrors.NewValidationError("role", "must not be empty")
		}
		hire.Role = *req.Role
	}
	if req.StartDate != nil {
		if req.StartDate.IsZero() {
			return nil, apperrors.NewValidationError("start_date", "must not be empty")
		}
		hire.StartDate = req.StartDate.Time
	}
	if req.BuddyID != nil {
		hire.BuddyID = req.BuddyID
	}
	if req.ManagerID != nil {
		hire.ManagerID = req.ManagerID
	}
	hire.UpdatedBy = actor(ctx)

	if err := s.repos.NewHires.Update(ctx, hire); err != nil {
		if errors.Is(err, apperrors.ErrNewHireExists) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update new hire: %w", err)
	}

	row, err := s.loadPlan(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.toResponse(hire, row), nil
}

// DeleteNewHire removes a new hire together with their plan, comments,
// feedback and documents
func (s *NewHireService) DeleteNewHire(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repos.NewHires.GetByID(ctx, id); err != nil {
		return err
	}
	log := logger.WithContext(ctx).Component("new_hire").WithField("new_hire_id", id)

	docs, err := s.repos.Documents.ListByNewHire(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to list documents: %w", err)
	}
	if err := s.repos.NewHires.DeleteCascade(ctx, id); err != nil {
		if errors.Is(err, apperrors.ErrNewHireNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete new hire: %w", err)
	}

	// stored objects go only after the rows are gone; a leftover object is just logged
	for _, doc := range docs {
		if err := s.store.Remove(ctx, doc.ObjectKey); err != nil && !errors.Is(err, apperrors.ErrDocumentNotFound) {
			log.WithError(err).WithField("object_key", doc.ObjectKey).Warn("failed to remove stored document")
		}
	}

	log.Info("New hire deleted")
	publish(ctx, s.publisher, events.NewHireDeleted, id, nil)
	return nil
}

// checkPeople verifies that referenced buddy and manager exist
func (s *NewHireService) checkPeople(ctx context.Context, buddyID, managerID *uuid.UUID) error {
	if buddyID != nil {
		if _, err := s.repos.Users.GetByID(ctx, *buddyID); err != nil {
			if errors.Is(err, apperrors.ErrUserNotFound) {
				return apperrors.ErrBuddyNotFound
			}
			return err
		}
	}
	if managerID != nil {
		if _, err := s.repos.Users.GetByID(ctx, *managerID); err != nil {
			if errors.Is(err, apperrors.ErrUserNotFound) {
				return apperrors.ErrManagerNotFound
			}
			return err
		}
	}
	return nil
}

// loadPlan returns the plan row, or nil for a new hire that has none
func (s *NewHireService) loadPlan(ctx context.Context, id uuid.UUID) (*models.OnboardingPlan, error) {
	row, err := s.repos.Plans.GetByNewHireID(ctx, id)
	if errors.Is(err, apperrors.ErrPlanNotFound) {
		return nil, nil
	}
	return row, err
}

func (s *NewHireService) rollback(ctx context.Context, id uuid.UUID) {
	if err := s.repos.NewHires.Delete(ctx, id); err != nil {
		logger.WithContext(ctx).Component("new_hire").WithError(err).
			WithField("new_hire_id", id).
			Error("failed to roll back new hire without plan")
	}
}

func (s *NewHireService) toResponse(hire *models.NewHire, row *models.OnboardingPlan) *NewHireResponse {
	resp := &NewHireResponse{
		ID:               hire.ID,
		Name:             hire.Name,
		Email:            hire.Email,
		Role:             hire.Role,
		StartDate:        onboarding.DateOf(hire.StartDate),
		BuddyID:          hire.BuddyID,
		ManagerID:        hire.ManagerID,
		CurrentMilestone: hire.CurrentMilestone,
		CalculatedStatus: onboarding.StatusNotStarted,
		CreatedAt:        formatTime(hire.CreatedAt),
		UpdatedAt:        formatTime(hire.UpdatedAt),
	}
	if row == nil {
		return resp
	}

	plan := row.Plan()
	progress := onboarding.DeriveStatus(&plan, s.clock.Today())
	resp.CalculatedStatus = progress.Status
	resp.Progress = &progress
	resp.PlanVersion = row.Version
	resp.PlanSource = row.Source
	return resp
}
