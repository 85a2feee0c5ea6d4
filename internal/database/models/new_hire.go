package models

import (
	"time"

	"github.com/google/uuid"
)

// NewHire is a person being onboarded. The calculated status is derived from
// the plan on read and never stored.
type NewHire struct {
	BaseModel
	Name             string     `json:"name" gorm:"not null;size:100" validate:"required,max=100"`
	Email            string     `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	Role             string     `json:"role" gorm:"not null;size:100" validate:"required,max=100"`
	StartDate        time.Time  `json:"start_date" gorm:"type:date;not null"`
	BuddyID          *uuid.UUID `json:"buddy_id,omitempty" gorm:"type:uuid;index"`
	ManagerID        *uuid.UUID `json:"manager_id,omitempty" gorm:"type:uuid;index"`
	CurrentMilestone string     `json:"current_milestone" gorm:"size:20;not null;default:'day_1'"`
}

// TableName returns the table name for NewHire
func (NewHire) TableName() string {
	return "new_hires"
}
