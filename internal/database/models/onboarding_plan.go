package models

import (
	"onboarding-backend/internal/onboarding"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// OnboardingPlan stores the plan document of one new hire. Version grows by one
// on every write and guards concurrent updates.
type OnboardingPlan struct {
	BaseModel
	NewHireID uuid.UUID                           `json:"new_hire_id" gorm:"type:uuid;uniqueIndex;not null"`
	Document  datatypes.JSONType[onboarding.Plan] `json:"document" gorm:"type:jsonb;not null"`
	Version   int                                 `json:"version" gorm:"not null;default:1"`
	Source    string                              `json:"source" gorm:"size:20"`
}

// TableName returns the table name for OnboardingPlan
func (OnboardingPlan) TableName() string {
	return "onboarding_plans"
}

// Plan returns a copy of the stored document
func (p *OnboardingPlan) Plan() onboarding.Plan {
	return p.Document.Data().Clone()
}

// SetPlan replaces the stored document
func (p *OnboardingPlan) SetPlan(plan onboarding.Plan) {
	p.Document = datatypes.NewJSONType(plan)
	p.Source = plan.Source
}
