package models

import "github.com/google/uuid"

// TaskComment is an append-only note on a plan task
type TaskComment struct {
	BaseModel
	NewHireID uuid.UUID `json:"new_hire_id" gorm:"type:uuid;not null;index:idx_task_comments_hire_task"`
	TaskID    int       `json:"task_id" gorm:"not null;index:idx_task_comments_hire_task"`
	Author    string    `json:"author" gorm:"not null;size:255"`
	Body      string    `json:"body" gorm:"type:text;not null" validate:"required,max=4000"`
}

// TableName returns the table name for TaskComment
func (TaskComment) TableName() string {
	return "task_comments"
}
