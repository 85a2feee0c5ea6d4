package testutils

import (
	"fmt"
	"time"

	"onboarding-backend/internal/database/models"
	"onboarding-backend/internal/onboarding"

	"github.com/google/uuid"
)

// DefaultStartDate is the Monday most fixtures start on
var DefaultStartDate = onboarding.MustParseDate("2025-01-06")

func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with a unique email
func (f *UserFactory) Create() *models.User {
	suffix := uniqueSuffix()
	return &models.User{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:       "Grace Hopper",
		Email:      fmt.Sprintf("grace.%s@example.com", suffix),
		Title:      "Engineering Manager",
		Department: "Engineering",
		Role:       models.UserRoleManager,
	}
}

// WithRole sets a custom role for the user
func (f *UserFactory) WithRole(role models.UserRole) *models.User {
	user := f.Create()
	user.Role = role
	return user
}

// WithEmail sets a custom email for the user
func (f *UserFactory) WithEmail(email string) *models.User {
	user := f.Create()
	user.Email = email
	return user
}

// NewHireFactory provides methods to create test NewHire data
type NewHireFactory struct{}

// NewNewHireFactory creates a new NewHireFactory
func NewNewHireFactory() *NewHireFactory {
	return &NewHireFactory{}
}

// Create creates a test NewHire starting on DefaultStartDate
func (f *NewHireFactory) Create() *models.NewHire {
	suffix := uniqueSuffix()
	return &models.NewHire{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:             "Ada Lovelace",
		Email:            fmt.Sprintf("ada.%s@example.com", suffix),
		Role:             "software_engineer",
		StartDate:        DefaultStartDate.Time,
		CurrentMilestone: string(onboarding.MilestoneDay1),
	}
}

// WithManager sets the manager of the new hire
func (f *NewHireFactory) WithManager(managerID uuid.UUID) *models.NewHire {
	hire := f.Create()
	hire.ManagerID = &managerID
	return hire
}

// WithBuddy sets the buddy of the new hire
func (f *NewHireFactory) WithBuddy(buddyID uuid.UUID) *models.NewHire {
	hire := f.Create()
	hire.BuddyID = &buddyID
	return hire
}

// WithRole sets a custom role for the new hire
func (f *NewHireFactory) WithRole(role string) *models.NewHire {
	hire := f.Create()
	hire.Role = role
	return hire
}

// PlanFactory builds plan documents and rows from the embedded role catalog
type PlanFactory struct {
	generator *onboarding.Generator
}

// NewPlanFactory creates a new PlanFactory
func NewPlanFactory() *PlanFactory {
	return &PlanFactory{generator: onboarding.NewGenerator(onboarding.MustDefaultCatalog())}
}

// Document generates a template plan for the given role and start date
func (f *PlanFactory) Document(role string, start onboarding.Date) onboarding.Plan {
	plan, _ := f.generator.Generate(role, start, "Ada Lovelace")
	plan.Source = "template"
	plan.GeneratedAt = time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)
	return plan
}

// Create builds an unsaved plan row for the new hire
func (f *PlanFactory) Create(hire *models.NewHire) *models.OnboardingPlan {
	row := &models.OnboardingPlan{NewHireID: hire.ID}
	row.SetPlan(f.Document(hire.Role, onboarding.DateOf(hire.StartDate)))
	return row
}

// FactorySet provides access to all factories
type FactorySet struct {
	User    *UserFactory
	NewHire *NewHireFactory
	Plan    *PlanFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		User:    NewUserFactory(),
		NewHire: NewNewHireFactory(),
		Plan:    NewPlanFactory(),
	}
}

// CreateTeam builds an unsaved manager, buddy and new hire wired together
func (fs *FactorySet) CreateTeam() (*models.User, *models.User, *models.NewHire) {
	manager := fs.User.WithRole(models.UserRoleManager)
	buddy := fs.User.WithRole(models.UserRoleBuddy)
	buddy.Name = "Alan Turing"
	buddy.Title = "Senior Engineer"

	hire := fs.NewHire.WithManager(manager.ID)
	hire.BuddyID = &buddy.ID
	return manager, buddy, hire
}
