package service

import (
	"context"
	"io"

	"onboarding-backend/internal/database/models"
	"onboarding-backend/internal/onboarding"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// UserServiceInterface defines the interface for staff user service
type UserServiceInterface interface {
	CreateUser(ctx context.Context, req *CreateUserRequest) (*UserResponse, error)
	GetUser(ctx context.Context, id uuid.UUID) (*UserResponse, error)
	ListUsers(ctx context.Context, role string, limit, offset int) ([]UserResponse, int64, error)
}

// NewHireServiceInterface defines the interface for new hire service
type NewHireServiceInterface interface {
	CreateNewHire(ctx context.Context, req *CreateNewHireRequest) (*NewHireResponse, error)
	GetNewHire(ctx context.Context, id uuid.UUID) (*NewHireResponse, error)
	ListNewHires(ctx context.Context, filter NewHireListFilter, limit, offset int) ([]NewHireResponse, int64, error)
	UpdateNewHire(ctx context.Context, id uuid.UUID, req *UpdateNewHireRequest) (*NewHireResponse, error)
	DeleteNewHire(ctx context.Context, id uuid.UUID) error
}

// PlanServiceInterface defines the interface for onboarding plan service
type PlanServiceInterface interface {
	GetPlan(ctx context.Context, newHireID uuid.UUID) (*PlanResponse, error)
	GetProgress(ctx context.Context, newHireID uuid.UUID) (*ProgressResponse, error)
	UpdateTaskStatus(ctx context.Context, newHireID uuid.UUID, req *UpdateTaskStatusRequest) (*PlanResponse, error)
	RegeneratePlan(ctx context.Context, newHireID uuid.UUID) (*PlanResponse, error)
}

// CommentServiceInterface defines the interface for task comment service
type CommentServiceInterface interface {
	AddComment(ctx context.Context, newHireID uuid.UUID, taskID int, req *AddCommentRequest) (*CommentResponse, error)
	ListComments(ctx context.Context, newHireID uuid.UUID, taskID int) ([]CommentResponse, error)
}

// FeedbackServiceInterface defines the interface for feedback service
type FeedbackServiceInterface interface {
	SubmitFeedback(ctx context.Context, newHireID uuid.UUID, req *SubmitFeedbackRequest) (*FeedbackResponse, error)
	ListFeedback(ctx context.Context, newHireID uuid.UUID) ([]FeedbackResponse, error)
}

// DocumentServiceInterface defines the interface for document service
type DocumentServiceInterface interface {
	Upload(ctx context.Context, newHireID uuid.UUID, upload *DocumentUpload) (*DocumentResponse, error)
	List(ctx context.Context, newHireID uuid.UUID) ([]DocumentResponse, error)
	Download(ctx context.Context, documentID uuid.UUID) (*DocumentResponse, io.ReadCloser, error)
	Delete(ctx context.Context, documentID uuid.UUID) error
}

// ExportServiceInterface defines the interface for plan export service
type ExportServiceInterface interface {
	ExportPlan(ctx context.Context, newHireID uuid.UUID, format string) (*ExportFile, error)
}

// NotifierInterface defines the interface for outgoing notifications
type NotifierInterface interface {
	NotifyWelcome(ctx context.Context, hire *models.NewHire, plan *onboarding.Plan) error
	NotifyTaskCompleted(ctx context.Context, hire *models.NewHire, manager *models.User, task *onboarding.Task) error
}

// DirectoryServiceInterface defines the interface for people directory lookups
type DirectoryServiceInterface interface {
	SearchPeople(ctx context.Context, query string) ([]DirectoryPerson, error)
}
