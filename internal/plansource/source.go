// Package plansource selects where onboarding plans come from: the built-in
// role templates, a remote language model, or the first one that succeeds.
package plansource

import (
	"context"

	"onboarding-backend/internal/onboarding"
)

const (
	SourceTemplate = "template"
	SourceRemote   = "remote"
)

// Request carries the inputs of plan generation
type Request struct {
	Role        string
	NewHireName string
	StartDate   onboarding.Date
}

// Result is a generated plan plus how it was produced.
// The plan's GeneratedAt and Source fields are stamped by the caller.
type Result struct {
	Plan onboarding.Plan
	// Source names the generator that produced the plan
	Source string
	// RoleFallback is set when the default role template stood in for an unknown role
	RoleFallback bool
	// SourceFallback is set when the primary source failed and the secondary one answered
	SourceFallback bool
}

// PlanSource produces onboarding plans
type PlanSource interface {
	Name() string
	Generate(ctx context.Context, req Request) (Result, error)
}

// DeterministicTemplateGenerator renders plans from the role catalog. It never fails.
type DeterministicTemplateGenerator struct {
	generator *onboarding.Generator
}

var _ PlanSource = (*DeterministicTemplateGenerator)(nil)

// NewDeterministicTemplateGenerator wraps a catalog-backed generator
func NewDeterministicTemplateGenerator(generator *onboarding.Generator) *DeterministicTemplateGenerator {
	return &DeterministicTemplateGenerator{generator: generator}
}

// Name returns "template"
func (g *DeterministicTemplateGenerator) Name() string {
	return SourceTemplate
}

// Generate renders the plan for the request
func (g *DeterministicTemplateGenerator) Generate(_ context.Context, req Request) (Result, error) {
	plan, res := g.generator.Generate(req.Role, req.StartDate, req.NewHireName)
	return Result{
		Plan:         plan,
		Source:       SourceTemplate,
		RoleFallback: res.Fallback,
	}, nil
}
