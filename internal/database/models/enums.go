package models

// UserRole is the part a staff member plays in onboarding
type UserRole string

const (
	UserRoleManager UserRole = "manager"
	UserRoleBuddy   UserRole = "buddy"
	UserRoleHR      UserRole = "hr"
	UserRoleAdmin   UserRole = "admin"
)

// IsValid checks if the UserRole is valid
func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleManager, UserRoleBuddy, UserRoleHR, UserRoleAdmin:
		return true
	}
	return false
}
