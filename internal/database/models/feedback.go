package models

import "github.com/google/uuid"

// Feedback is a rated note about how onboarding is going
type Feedback struct {
	BaseModel
	NewHireID   uuid.UUID `json:"new_hire_id" gorm:"type:uuid;not null;index"`
	From        string    `json:"from" gorm:"not null;size:255"`
	MilestoneID *string   `json:"milestone_id,omitempty" gorm:"size:20"`
	Rating      int       `json:"rating" gorm:"not null" validate:"min=1,max=5"`
	Message     string    `json:"message" gorm:"type:text"`
}

// TableName returns the table name for Feedback
func (Feedback) TableName() string {
	return "feedback"
}
