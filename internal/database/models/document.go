package models

import "github.com/google/uuid"

// Document is the metadata of a file kept in object storage
type Document struct {
	BaseModel
	NewHireID   uuid.UUID `json:"new_hire_id" gorm:"type:uuid;not null;index"`
	Filename    string    `json:"filename" gorm:"not null;size:255"`
	ContentType string    `json:"content_type" gorm:"size:100"`
	Size        int64     `json:"size"`
	ObjectKey   string    `json:"-" gorm:"uniqueIndex;not null;size:512"`
	UploadedBy  string    `json:"uploaded_by" gorm:"size:255"`
}

// TableName returns the table name for Document
func (Document) TableName() string {
	return "documents"
}
