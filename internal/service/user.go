package service

import (
	"context"
	"errors"
	"fmt"

	"onboarding-backend/internal/database/models"
	apperrors "onboarding-backend/internal/errors"
	"onboarding-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// UserService handles business logic for staff users: managers, buddies and HR
type UserService struct {
	repo      repository.UserRepositoryInterface
	validator *validator.Validate
}

var _ UserServiceInterface = (*UserService)(nil)

// NewUserService creates a new user service
func NewUserService(repo repository.UserRepositoryInterface, validator *validator.Validate) *UserService {
	return &UserService{
		repo:      repo,
		validator: validator,
	}
}

// CreateUserRequest represents the data needed to create a user
type CreateUserRequest struct {
	Name       string `json:"name" validate:"required,max=100" example:"Grace Hopper"`
	Email      string `json:"email" validate:"required,email,max=255" example:"grace@example.com"`
	Title      string `json:"title" validate:"max=100" example:"Engineering Manager"`
	Department string `json:"department" validate:"max=100" example:"Engineering"`
	Role       string `json:"role" validate:"required,oneof=manager buddy hr admin" example:"manager"`
}

// UserResponse represents the response data for a user
type UserResponse struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Title      string    `json:"title"`
	Department string    `json:"department"`
	Role       string    `json:"role"`
	CreatedAt  string    `json:"created_at"`
	UpdatedAt  string    `json:"updated_at"`
}

// CreateUser creates a new user
func (s *UserService) CreateUser(ctx context.Context, req *CreateUserRequest) (*UserResponse, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	user := &models.User{
		BaseModel:  models.BaseModel{CreatedBy: actor(ctx), UpdatedBy: actor(ctx)},
		Name:       req.Name,
		Email:      req.Email,
		Title:      req.Title,
		Department: req.Department,
		Role:       models.UserRole(req.Role),
	}

	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrUserExists) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return toUserResponse(user), nil
}

// GetUser retrieves a user by ID
func (s *UserService) GetUser(ctx context.Context, id uuid.UUID) (*UserResponse, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// ListUsers lists users, optionally only those with the given role
func (s *UserService) ListUsers(ctx context.Context, role string, limit, offset int) ([]UserResponse, int64, error) {
	if limit <= 0 || offset < 0 {
		return nil, 0, apperrors.ErrInvalidPaginationParams
	}
	if role != "" && !models.UserRole(role).IsValid() {
		return nil, 0, apperrors.NewValidationError("role", "must be one of manager, buddy, hr, admin")
	}

	users, total, err := s.repo.List(ctx, models.UserRole(role), limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list users: %w", err)
	}

	responses := make([]UserResponse, len(users))
	for i := range users {
		responses[i] = *toUserResponse(&users[i])
	}
	return responses, total, nil
}

func toUserResponse(user *models.User) *UserResponse {
	return &UserResponse{
		ID:         user.ID,
		Name:       user.Name,
		Email:      user.Email,
		Title:      user.Title,
		Department: user.Department,
		Role:       string(user.Role),
		CreatedAt:  formatTime(user.CreatedAt),
		UpdatedAt:  formatTime(user.UpdatedAt),
	}
}
