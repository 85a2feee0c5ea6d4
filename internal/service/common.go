package service

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"time"

	apperrors "onboarding-backend/internal/errors"
	"onboarding-backend/internal/repository"

	"github.com/go-playground/validator/v10"
)

// Repositories bundles the stores the services work on
type Repositories struct {
	Users     repository.UserRepositoryInterface
	NewHires  repository.NewHireRepositoryInterface
	Plans     repository.PlanRepositoryInterface
	Comments  repository.CommentRepositoryInterface
	Feedback  repository.FeedbackRepositoryInterface
	Documents repository.DocumentRepositoryInterface
}

// NewMemoryRepositories returns in-memory stores, used by tests and database-less runs
func NewMemoryRepositories() Repositories {
	plans := repository.NewMemoryPlanRepository()
	comments := repository.NewMemoryCommentRepository()
	feedback := repository.NewMemoryFeedbackRepository()
	documents := repository.NewMemoryDocumentRepository()
	return Repositories{
		Users:     repository.NewMemoryUserRepository(),
		NewHires:  repository.NewMemoryNewHireRepository().CascadeTo(documents, comments, feedback, plans),
		Plans:     plans,
		Comments:  comments,
		Feedback:  feedback,
		Documents: documents,
	}
}

// NewValidator returns a validator that reports fields by their JSON names
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateStruct runs struct validation and reports the first failing field
// as a ValidationError
func validateStruct(v *validator.Validate, req interface{}) error {
	err := v.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		msg := "failed on " + fe.Tag()
		if fe.Param() != "" {
			msg += "=" + fe.Param()
		}
		return apperrors.NewValidationError(fe.Field(), msg)
	}
	return apperrors.NewValidationError("", err.Error())
}

// actor names whoever is making the request, for audit columns
func actor(ctx context.Context) string {
	if ctx == nil {
		return "system"
	}
	if email, ok := ctx.Value("email").(string); ok && email != "" {
		return email
	}
	if username, ok := ctx.Value("username").(string); ok && username != "" {
		return username
	}
	return "system"
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
