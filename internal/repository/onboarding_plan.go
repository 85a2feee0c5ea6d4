package repository

import (
	"context"
	"errors"
	"time"

	"onboarding-backend/internal/database/models"
	apperrors "onboarding-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PlanRepository handles database operations for onboarding plans
type PlanRepository struct {
	db *gorm.DB
}

var _ PlanRepositoryInterface = (*PlanRepository)(nil)

// NewPlanRepository creates a new plan repository
func NewPlanRepository(db *gorm.DB) *PlanRepository {
	return &PlanRepository{db: db}
}

// Create stores the first version of a plan
func (r *PlanRepository) Create(ctx context.Context, plan *models.OnboardingPlan) error {
	plan.Version = 1
	err := r.db.WithContext(ctx).Create(plan).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperrors.ErrPlanExists
	}
	return err
}

// GetByNewHireID retrieves the plan of a new hire
func (r *PlanRepository) GetByNewHireID(ctx context.Context, newHireID uuid.UUID) (*models.OnboardingPlan, error) {
	var plan models.OnboardingPlan
	err := r.db.WithContext(ctx).First(&plan, "new_hire_id = ?", newHireID).Error
	if err != nil {
		return nil, notFound(err, apperrors.ErrPlanNotFound)
	}
	return &plan, nil
}

// Update writes the document only if the stored version still equals plan.Version,
// then advances plan.Version. A lost race returns ErrPlanVersionConflict.
func (r *PlanRepository) Update(ctx context.Context, plan *models.OnboardingPlan) error {
	now := time.Now()
	result := r.db.WithContext(ctx).Model(&models.OnboardingPlan{}).
		Where("id = ? AND version = ?", plan.ID, plan.Version).
		Updates(map[string]interface{}{
			"document":   plan.Document,
			"source":     plan.Source,
			"version":    gorm.Expr("version + 1"),
			"updated_at": now,
			"updated_by": plan.UpdatedBy,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&models.OnboardingPlan{}).Where("id = ?", plan.ID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return apperrors.ErrPlanNotFound
		}
		return apperrors.ErrPlanVersionConflict
	}

	plan.Version++
	plan.UpdatedAt = now
	return nil
}

// DeleteByNewHireID removes the plan of a new hire; a missing plan is not an error
func (r *PlanRepository) DeleteByNewHireID(ctx context.Context, newHireID uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.OnboardingPlan{}, "new_hire_id = ?", newHireID).Error
}
