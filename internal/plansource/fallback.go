package plansource

import (
	"context"
	"errors"

	apperrors "onboarding-backend/internal/errors"
	"onboarding-backend/internal/logger"
	"onboarding-backend/internal/metrics"
)

// FallbackSource tries the primary source and answers from the secondary one
// when the primary fails. The secondary error is returned if both fail.
type FallbackSource struct {
	primary   PlanSource
	secondary PlanSource
}

var _ PlanSource = (*FallbackSource)(nil)

// NewFallbackSource chains two plan sources
func NewFallbackSource(primary, secondary PlanSource) *FallbackSource {
	return &FallbackSource{
		primary:   primary,
		secondary: secondary,
	}
}

// Name reports the primary source
func (f *FallbackSource) Name() string {
	return f.primary.Name()
}

// Generate returns the primary result or, on failure, the secondary one flagged as a fallback
func (f *FallbackSource) Generate(ctx context.Context, req Request) (Result, error) {
	result, err := f.primary.Generate(ctx, req)
	if err == nil {
		return result, nil
	}

	reason := fallbackReason(err)
	logger.WithContext(ctx).Component("plansource.fallback").WithFields(map[string]interface{}{
		"primary":   f.primary.Name(),
		"secondary": f.secondary.Name(),
		"reason":    reason,
		"role":      req.Role,
	}).WithError(err).Warn("Primary plan source failed, using fallback")
	metrics.IncrementPlanSourceFallback(reason)

	result, err = f.secondary.Generate(ctx, req)
	if err != nil {
		return Result{}, err
	}
	result.SourceFallback = true
	return result, nil
}

func fallbackReason(err error) string {
	switch {
	case apperrors.IsConfiguration(err):
		return "disabled"
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	case errors.Is(err, context.Canceled):
		return "canceled"
	case errors.Is(err, apperrors.ErrEmptyRemotePlan), apperrors.IsValidation(err):
		return "invalid"
	default:
		return "error"
	}
}

// New builds the configured source. The remote source is always backed by templates.
func New(kind string, template PlanSource, remote PlanSource) PlanSource {
	if kind == SourceRemote && remote != nil {
		return NewFallbackSource(remote, template)
	}
	return template
}
