package repository

import (
	"context"

	"onboarding-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// UserRepositoryInterface defines the interface for staff user repository operations
type UserRepositoryInterface interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	List(ctx context.Context, role models.UserRole, limit, offset int) ([]models.User, int64, error)
}

// NewHireFilter narrows a new hire listing. A zero Limit returns every match.
type NewHireFilter struct {
	ManagerID *uuid.UUID
	BuddyID   *uuid.UUID
	Limit     int
	Offset    int
}

// NewHireRepositoryInterface defines the interface for new hire repository operations
type NewHireRepositoryInterface interface {
	Create(ctx context.Context, hire *models.NewHire) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.NewHire, error)
	List(ctx context.Context, filter NewHireFilter) ([]models.NewHire, int64, error)
	Update(ctx context.Context, hire *models.NewHire) error
	UpdateCurrentMilestone(ctx context.Context, id uuid.UUID, milestone string) error
	Delete(ctx context.Context, id uuid.UUID) error
	// DeleteCascade removes the new hire and every row it owns in one transaction
	DeleteCascade(ctx context.Context, id uuid.UUID) error
}

// PlanRepositoryInterface defines the interface for onboarding plan repository operations.
// Update is a compare-and-swap on Version.
type PlanRepositoryInterface interface {
	Create(ctx context.Context, plan *models.OnboardingPlan) error
	GetByNewHireID(ctx context.Context, newHireID uuid.UUID) (*models.OnboardingPlan, error)
	Update(ctx context.Context, plan *models.OnboardingPlan) error
	DeleteByNewHireID(ctx context.Context, newHireID uuid.UUID) error
}

// CommentRepositoryInterface defines the interface for task comment repository operations
type CommentRepositoryInterface interface {
	Create(ctx context.Context, comment *models.TaskComment) error
	ListByTask(ctx context.Context, newHireID uuid.UUID, taskID int) ([]models.TaskComment, error)
	DeleteByNewHireID(ctx context.Context, newHireID uuid.UUID) error
}

// FeedbackRepositoryInterface defines the interface for feedback repository operations
type FeedbackRepositoryInterface interface {
	Create(ctx context.Context, feedback *models.Feedback) error
	ListByNewHire(ctx context.Context, newHireID uuid.UUID) ([]models.Feedback, error)
	DeleteByNewHireID(ctx context.Context, newHireID uuid.UUID) error
}

// DocumentRepositoryInterface defines the interface for document metadata repository operations
type DocumentRepositoryInterface interface {
	Create(ctx context.Context, doc *models.Document) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Document, error)
	ListByNewHire(ctx context.Context, newHireID uuid.UUID) ([]models.Document, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
