package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"onboarding-backend/internal/config"
	"onboarding-backend/internal/database"
	"onboarding-backend/internal/database/models"
	apperrors "onboarding-backend/internal/errors"
	"onboarding-backend/internal/events"
	"onboarding-backend/internal/onboarding"
	"onboarding-backend/internal/plansource"
	"onboarding-backend/internal/repository"
	"onboarding-backend/internal/service"
	"onboarding-backend/internal/storage"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that match the seed file
type UserData struct {
	Name       string `yaml:"name"`
	Email      string `yaml:"email"`
	Title      string `yaml:"title"`
	Department string `yaml:"department"`
	Role       string `yaml:"role"`
}

type NewHireData struct {
	Name         string `yaml:"name"`
	Email        string `yaml:"email"`
	Role         string `yaml:"role"`
	StartDate    string `yaml:"start_date"`
	ManagerEmail string `yaml:"manager_email,omitempty"`
	BuddyEmail   string `yaml:"buddy_email,omitempty"`
}

type InitialDataFile struct {
	Users    []UserData    `yaml:"users"`
	NewHires []NewHireData `yaml:"new_hires"`
}

func main() {
	log.Println("🚀 Loading initial onboarding data...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	path := "scripts/data/initial_data.yaml"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	if err := loadInitialData(context.Background(), db, cfg, path); err != nil {
		log.Fatalf("Failed to load initial data: %v", err)
	}

	log.Println("✅ Initial data loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Suppress GORM logs including SQL queries and "record not found"
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func readInitialData(path string) (*InitialDataFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var file InitialDataFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &file, nil
}

func loadInitialData(ctx context.Context, db *gorm.DB, cfg *config.Config, path string) error {
	file, err := readInitialData(path)
	if err != nil {
		return fmt.Errorf("failed to read seed file: %w", err)
	}

	catalog, err := onboarding.DefaultCatalog()
	if cfg.RoleTemplatesPath != "" {
		catalog, err = onboarding.LoadCatalogFile(cfg.RoleTemplatesPath)
	}
	if err != nil {
		return fmt.Errorf("failed to load role templates: %w", err)
	}

	users := repository.NewUserRepository(db)
	repos := service.Repositories{
		Users:     users,
		NewHires:  repository.NewNewHireRepository(db),
		Plans:     repository.NewPlanRepository(db),
		Comments:  repository.NewCommentRepository(db),
		Feedback:  repository.NewFeedbackRepository(db),
		Documents: repository.NewDocumentRepository(db),
	}

	// Seeding never calls out to the remote generator or sends mail
	source := plansource.NewDeterministicTemplateGenerator(onboarding.NewGenerator(catalog))
	hires := service.NewNewHireService(
		repos,
		storage.DisabledStore{},
		source,
		events.NoopPublisher{},
		service.NewNotificationService(service.NoopMailer{}),
		onboarding.NewSystemClock(cfg.Timezone),
		service.NewValidator(),
	)

	userIDs := make(map[string]uuid.UUID)
	userCreated := 0
	for _, data := range file.Users {
		user, created, err := upsertUser(ctx, users, data)
		if err != nil {
			return fmt.Errorf("failed to create user %s: %w", data.Email, err)
		}
		userIDs[strings.ToLower(user.Email)] = user.ID
		if created {
			userCreated++
		}
	}
	log.Printf("👤 Users: %d created, %d total", userCreated, len(file.Users))

	hireCreated := 0
	for _, data := range file.NewHires {
		created, err := createNewHire(ctx, hires, data, userIDs)
		if err != nil {
			return fmt.Errorf("failed to create new hire %s: %w", data.Email, err)
		}
		if created {
			hireCreated++
		}
	}
	log.Printf("🧭 New hires: %d created, %d total", hireCreated, len(file.NewHires))

	return nil
}

func upsertUser(ctx context.Context, users repository.UserRepositoryInterface, data UserData) (*models.User, bool, error) {
	existing, err := users.GetByEmail(ctx, data.Email)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, apperrors.ErrUserNotFound) {
		return nil, false, fmt.Errorf("failed to query user: %w", err)
	}

	role := models.UserRole(data.Role)
	if !role.IsValid() {
		return nil, false, fmt.Errorf("invalid role %q", data.Role)
	}

	user := &models.User{
		Name:       data.Name,
		Email:      data.Email,
		Title:      data.Title,
		Department: data.Department,
		Role:       role,
	}
	if err := users.Create(ctx, user); err != nil {
		return nil, false, err
	}
	return user, true, nil
}

// createNewHire goes through the service so the hire gets a generated plan.
// A hire that already exists is left untouched.
func createNewHire(ctx context.Context, hires *service.NewHireService, data NewHireData, userIDs map[string]uuid.UUID) (bool, error) {
	start, err := onboarding.ParseDate(data.StartDate)
	if err != nil {
		return false, err
	}

	req := &service.CreateNewHireRequest{
		Name:      data.Name,
		Email:     data.Email,
		Role:      data.Role,
		StartDate: start,
	}
	if req.ManagerID, err = lookupUser(userIDs, data.ManagerEmail); err != nil {
		return false, err
	}
	if req.BuddyID, err = lookupUser(userIDs, data.BuddyEmail); err != nil {
		return false, err
	}

	if _, err := hires.CreateNewHire(ctx, req); err != nil {
		if errors.Is(err, apperrors.ErrNewHireExists) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func lookupUser(userIDs map[string]uuid.UUID, email string) (*uuid.UUID, error) {
	if email == "" {
		return nil, nil
	}
	id, ok := userIDs[strings.ToLower(email)]
	if !ok {
		return nil, fmt.Errorf("user %s is not in the seed file", email)
	}
	return &id, nil
}
