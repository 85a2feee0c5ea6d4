package repository

import (
	"context"
	"errors"

	"onboarding-backend/internal/database/models"
	apperrors "onboarding-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NewHireRepository handles database operations for new hires
type NewHireRepository struct {
	db *gorm.DB
}

var _ NewHireRepositoryInterface = (*NewHireRepository)(nil)

// NewNewHireRepository creates a new hire repository
func NewNewHireRepository(db *gorm.DB) *NewHireRepository {
	return &NewHireRepository{db: db}
}

// Create creates a new hire
func (r *NewHireRepository) Create(ctx context.Context, hire *models.NewHire) error {
	err := r.db.WithContext(ctx).Create(hire).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperrors.ErrNewHireExists
	}
	return err
}

// GetByID retrieves a new hire by ID
func (r *NewHireRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.NewHire, error) {
	var hire models.NewHire
	err := r.db.WithContext(ctx).First(&hire, "id = ?", id).Error
	if err != nil {
		return nil, notFound(err, apperrors.ErrNewHireNotFound)
	}
	return &hire, nil
}

// List retrieves new hires matching the filter, most recent start date first
func (r *NewHireRepository) List(ctx context.Context, filter NewHireFilter) ([]models.NewHire, int64, error) {
	var hires []models.NewHire
	var total int64

	query := r.db.WithContext(ctx).Model(&models.NewHire{})
	if filter.ManagerID != nil {
		query = query.Where("manager_id = ?", *filter.ManagerID)
	}
	if filter.BuddyID != nil {
		query = query.Where("buddy_id = ?", *filter.BuddyID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = query.Order("start_date DESC").Order("name ASC")
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit).Offset(filter.Offset)
	}
	if err := query.Find(&hires).Error; err != nil {
		return nil, 0, err
	}

	return hires, total, nil
}

// Update saves every column of a new hire
func (r *NewHireRepository) Update(ctx context.Context, hire *models.NewHire) error {
	result := r.db.WithContext(ctx).Save(hire)
	if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
		return apperrors.ErrNewHireExists
	}
	return result.Error
}

// UpdateCurrentMilestone stores the milestone the new hire is working on
func (r *NewHireRepository) UpdateCurrentMilestone(ctx context.Context, id uuid.UUID, milestone string) error {
	result := r.db.WithContext(ctx).Model(&models.NewHire{}).
		Where("id = ?", id).
		Update("current_milestone", milestone)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNewHireNotFound
	}
	return nil
}

// DeleteCascade deletes documents, comments, feedback and the plan of a new
// hire, then the hire itself. Nothing is deleted unless all of it is.
func (r *NewHireRepository) DeleteCascade(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		owned := []interface{}{&models.Document{}, &models.TaskComment{}, &models.Feedback{}, &models.OnboardingPlan{}}
		for _, model := range owned {
			if err := tx.Delete(model, "new_hire_id = ?", id).Error; err != nil {
				return err
			}
		}
		result := tx.Delete(&models.NewHire{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return apperrors.ErrNewHireNotFound
		}
		return nil
	})
}

// Delete deletes a new hire
func (r *NewHireRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.NewHire{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNewHireNotFound
	}
	return nil
}
