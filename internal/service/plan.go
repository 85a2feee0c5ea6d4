package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"onboarding-backend/internal/database/models"
	apperrors "onboarding-backend/internal/errors"
	"onboarding-backend/internal/events"
	"onboarding-backend/internal/logger"
	"onboarding-backend/internal/metrics"
	"onboarding-backend/internal/onboarding"
	"onboarding-backend/internal/plansource"
	"onboarding-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// PlanService reads and mutates onboarding plans
type PlanService struct {
	repos     Repositories
	source    plansource.PlanSource
	publisher events.Publisher
	notifier  NotifierInterface
	clock     onboarding.Clock
	validator *validator.Validate
}

var _ PlanServiceInterface = (*PlanService)(nil)

// NewPlanService creates a new plan service
func NewPlanService(repos Repositories, source plansource.PlanSource, publisher events.Publisher, notifier NotifierInterface, clock onboarding.Clock, validator *validator.Validate) *PlanService {
	return &PlanService{
		repos:     repos,
		source:    source,
		publisher: publisher,
		notifier:  notifier,
		clock:     clock,
		validator: validator,
	}
}

// PlanResponse is a stored plan with the progress derived for today
type PlanResponse struct {
	NewHireID uuid.UUID           `json:"new_hire_id"`
	Version   int                 `json:"version"`
	Plan      onboarding.Plan     `json:"plan"`
	Progress  onboarding.Progress `json:"progress"`
}

// ProgressResponse is the dashboard view of a plan
type ProgressResponse struct {
	NewHireID uuid.UUID `json:"new_hire_id"`
	Version   int       `json:"version"`
	onboarding.Progress
}

// UpdateTaskStatusRequest changes the status of one task. The task is located by
// task_id, or by exact task_name for plans whose tasks carry no ids. When
// base_version is set the write is rejected if the plan has moved on.
type UpdateTaskStatusRequest struct {
	MilestoneID string `json:"milestone_id" validate:"required" example:"week_1"`
	TaskID      int    `json:"task_id" validate:"min=0" example:"3"`
	TaskName    string `json:"task_name" validate:"max=255"`
	Status      string `json:"status" validate:"required" example:"completed"`
	BaseVersion *int   `json:"base_version,omitempty" example:"1"`
}

// TaskStatusChangedEvent is the payload of task.status_changed
type TaskStatusChangedEvent struct {
	MilestoneID string `json:"milestone_id"`
	TaskID      int    `json:"task_id"`
	TaskName    string `json:"task_name"`
	Status      string `json:"status"`
	Version     int    `json:"version"`
}

// GetPlan returns the plan of a new hire
func (s *PlanService) GetPlan(ctx context.Context, newHireID uuid.UUID) (*PlanResponse, error) {
	if _, err := s.repos.NewHires.GetByID(ctx, newHireID); err != nil {
		return nil, err
	}
	row, err := s.repos.Plans.GetByNewHireID(ctx, newHireID)
	if err != nil {
		return nil, err
	}
	return s.toPlanResponse(row), nil
}

// GetProgress returns only the derived progress of a plan
func (s *PlanService) GetProgress(ctx context.Context, newHireID uuid.UUID) (*ProgressResponse, error) {
	resp, err := s.GetPlan(ctx, newHireID)
	if err != nil {
		return nil, err
	}
	return &ProgressResponse{
		NewHireID: resp.NewHireID,
		Version:   resp.Version,
		Progress:  resp.Progress,
	}, nil
}

// UpdateTaskStatus sets the status of one task and saves the plan as a new version
func (s *PlanService) UpdateTaskStatus(ctx context.Context, newHireID uuid.UUID, req *UpdateTaskStatusRequest) (*PlanResponse, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	hire, err := s.repos.NewHires.GetByID(ctx, newHireID)
	if err != nil {
		return nil, err
	}
	row, err := s.repos.Plans.GetByNewHireID(ctx, newHireID)
	if err != nil {
		return nil, err
	}

	if req.BaseVersion != nil && *req.BaseVersion != row.Version {
		metrics.IncrementPlanConflict()
		return nil, apperrors.ErrPlanVersionConflict
	}

	plan := row.Plan()
	status := onboarding.TaskStatus(req.Status)
	task, err := plan.SetTaskStatus(onboarding.MilestoneID(req.MilestoneID), onboarding.TaskRef{ID: req.TaskID, Name: req.TaskName}, status)
	if err != nil {
		return nil, err
	}
	changed := *task

	row.SetPlan(plan)
	row.UpdatedBy = actor(ctx)
	if err := s.repos.Plans.Update(ctx, row); err != nil {
		if errors.Is(err, apperrors.ErrPlanVersionConflict) {
			metrics.IncrementPlanConflict()
			return nil, err
		}
		return nil, fmt.Errorf("failed to save plan: %w", err)
	}
	metrics.IncrementTaskStatusChange(string(status))

	resp := s.toPlanResponse(row)
	syncCurrentMilestone(ctx, s.repos.NewHires, hire, resp.Progress.CurrentMilestone)

	publish(ctx, s.publisher, events.TaskStatusChanged, newHireID, TaskStatusChangedEvent{
		MilestoneID: req.MilestoneID,
		TaskID:      changed.ID,
		TaskName:    changed.Name,
		Status:      string(status),
		Version:     row.Version,
	})

	if status == onboarding.TaskStatusCompleted {
		s.notifyManager(ctx, hire, &changed)
	}

	return resp, nil
}

// RegeneratePlan replaces the plan with a fresh one for the current role and
// start date. Every task status is reset.
func (s *PlanService) RegeneratePlan(ctx context.Context, newHireID uuid.UUID) (*PlanResponse, error) {
	hire, err := s.repos.NewHires.GetByID(ctx, newHireID)
	if err != nil {
		return nil, err
	}

	plan, _, err := generatePlan(ctx, s.source, hire)
	if err != nil {
		return nil, err
	}

	row, err := s.repos.Plans.GetByNewHireID(ctx, newHireID)
	switch {
	case err == nil:
		row.SetPlan(plan)
		row.UpdatedBy = actor(ctx)
		if err := s.repos.Plans.Update(ctx, row); err != nil {
			if errors.Is(err, apperrors.ErrPlanVersionConflict) {
				metrics.IncrementPlanConflict()
				return nil, err
			}
			return nil, fmt.Errorf("failed to save plan: %w", err)
		}
	case errors.Is(err, apperrors.ErrPlanNotFound):
		row = &models.OnboardingPlan{
			BaseModel: models.BaseModel{CreatedBy: actor(ctx), UpdatedBy: actor(ctx)},
			NewHireID: newHireID,
		}
		row.SetPlan(plan)
		if err := s.repos.Plans.Create(ctx, row); err != nil {
			return nil, fmt.Errorf("failed to save plan: %w", err)
		}
	default:
		return nil, err
	}

	resp := s.toPlanResponse(row)
	syncCurrentMilestone(ctx, s.repos.NewHires, hire, resp.Progress.CurrentMilestone)
	publish(ctx, s.publisher, events.PlanRegenerated, newHireID, map[string]interface{}{
		"source":  plan.Source,
		"version": row.Version,
	})

	return resp, nil
}

func (s *PlanService) notifyManager(ctx context.Context, hire *models.NewHire, task *onboarding.Task) {
	if hire.ManagerID == nil {
		return
	}
	log := logger.WithContext(ctx).Component("plan").WithField("new_hire_id", hire.ID)

	manager, err := s.repos.Users.GetByID(ctx, *hire.ManagerID)
	if err != nil {
		log.WithError(err).Warn("could not load manager for task notification")
		return
	}
	if err := s.notifier.NotifyTaskCompleted(ctx, hire, manager, task); err != nil {
		log.WithError(err).Warn("failed to notify manager of completed task")
	}
}

func (s *PlanService) toPlanResponse(row *models.OnboardingPlan) *PlanResponse {
	plan := row.Plan()
	return &PlanResponse{
		NewHireID: row.NewHireID,
		Version:   row.Version,
		Plan:      plan,
		Progress:  onboarding.DeriveStatus(&plan, s.clock.Today()),
	}
}

// generatePlan asks the plan source for a plan and stamps when and by what it was made
func generatePlan(ctx context.Context, source plansource.PlanSource, hire *models.NewHire) (onboarding.Plan, plansource.Result, error) {
	result, err := source.Generate(ctx, plansource.Request{
		Role:        hire.Role,
		NewHireName: hire.Name,
		StartDate:   onboarding.DateOf(hire.StartDate),
	})
	if err != nil {
		return onboarding.Plan{}, result, fmt.Errorf("failed to generate plan: %w", err)
	}

	plan := result.Plan
	plan.GeneratedAt = time.Now().UTC()
	plan.Source = result.Source
	metrics.IncrementPlansGenerated(result.Source, result.SourceFallback)

	if result.RoleFallback {
		logger.WithContext(ctx).Component("plan").
			WithField("role", hire.Role).
			Warn("no template for role, default role template used")
	}
	return plan, result, nil
}

// syncCurrentMilestone stores the derived milestone on the new hire row when it moved
func syncCurrentMilestone(ctx context.Context, repo repository.NewHireRepositoryInterface, hire *models.NewHire, milestone onboarding.MilestoneID) {
	if milestone == "" || string(milestone) == hire.CurrentMilestone {
		return
	}
	if err := repo.UpdateCurrentMilestone(ctx, hire.ID, string(milestone)); err != nil {
		logger.WithContext(ctx).Component("plan").WithError(err).
			WithField("new_hire_id", hire.ID).
			Warn("failed to update current milestone")
		return
	}
	hire.CurrentMilestone = string(milestone)
}

// publish sends an event. Broker failures are logged and never fail the caller.
func publish(ctx context.Context, publisher events.Publisher, key string, newHireID uuid.UUID, data interface{}) {
	if err := publisher.Publish(ctx, key, events.NewEnvelope(key, newHireID, data)); err != nil {
		logger.WithContext(ctx).Component("events").WithError(err).
			WithField("event", key).
			Warn("failed to publish event")
	}
}
