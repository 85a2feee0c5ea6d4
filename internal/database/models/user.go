package models

// User is a staff member who manages, mentors or administers new hires
type User struct {
	BaseModel
	Name       string   `json:"name" gorm:"not null;size:100" validate:"required,max=100"`
	Email      string   `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	Title      string   `json:"title" gorm:"size:100" validate:"max=100"`
	Department string   `json:"department" gorm:"size:100" validate:"max=100"`
	Role       UserRole `json:"role" gorm:"type:varchar(20);not null;default:'buddy'" validate:"required"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}
