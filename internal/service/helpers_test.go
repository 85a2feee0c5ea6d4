package service_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"onboarding-backend/internal/database/models"
	"onboarding-backend/internal/events"
	"onboarding-backend/internal/onboarding"
	"onboarding-backend/internal/plansource"
	"onboarding-backend/internal/repository"
	"onboarding-backend/internal/service"
	"onboarding-backend/internal/storage"

	"github.com/stretchr/testify/require"
)

var (
	testStart = onboarding.MustParseDate("2025-01-06")
	testToday = onboarding.MustParseDate("2025-01-10")
)

// world wires the services over in-memory stores
type world struct {
	repos     service.Repositories
	store     *storage.MemoryStore
	publisher *events.RecordingPublisher
	mailer    *recordingMailer
	source    plansource.PlanSource
	clock     onboarding.FixedClock

	newHires *service.NewHireService
	plans    *service.PlanService
}

func newWorld(t *testing.T) *world {
	t.Helper()
	w := &world{
		repos:     service.NewMemoryRepositories(),
		store:     storage.NewMemoryStore(),
		publisher: &events.RecordingPublisher{},
		mailer:    &recordingMailer{},
		source:    templateSource(),
		clock:     onboarding.FixedClock{Date: testToday},
	}
	notifier := service.NewNotificationService(w.mailer)
	validate := service.NewValidator()
	w.newHires = service.NewNewHireService(w.repos, w.store, w.source, w.publisher, notifier, w.clock, validate)
	w.plans = service.NewPlanService(w.repos, w.source, w.publisher, notifier, w.clock, validate)
	return w
}

func templateSource() plansource.PlanSource {
	return plansource.NewDeterministicTemplateGenerator(onboarding.NewGenerator(onboarding.MustDefaultCatalog()))
}

// createUser stores a staff user directly
func (w *world) createUser(t *testing.T, name, email string, role models.UserRole) *models.User {
	t.Helper()
	user := &models.User{Name: name, Email: email, Role: role}
	require.NoError(t, w.repos.Users.Create(context.Background(), user))
	return user
}

// onboard creates a new hire through the service
func (w *world) onboard(t *testing.T, req *service.CreateNewHireRequest) *service.NewHireResponse {
	t.Helper()
	resp, err := w.newHires.CreateNewHire(context.Background(), req)
	require.NoError(t, err)
	return resp
}

func newHireRequest(name, email string) *service.CreateNewHireRequest {
	return &service.CreateNewHireRequest{
		Name:      name,
		Email:     email,
		Role:      "software_engineer",
		StartDate: testStart,
	}
}

type recordingMailer struct {
	mu   sync.Mutex
	sent []service.Mail
	err  error
}

func (m *recordingMailer) Send(_ context.Context, mail service.Mail) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, mail)
	return nil
}

func (m *recordingMailer) Sent() []service.Mail {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]service.Mail(nil), m.sent...)
}

type failingSource struct{}

func (failingSource) Name() string { return "broken" }

func (failingSource) Generate(context.Context, plansource.Request) (plansource.Result, error) {
	return plansource.Result{}, errors.New("generator unavailable")
}

func repositoryFilterAll() repository.NewHireFilter {
	return repository.NewHireFilter{}
}

func textUpload(name, content string) *service.DocumentUpload {
	return &service.DocumentUpload{
		Filename:    name,
		ContentType: "text/plain",
		Size:        int64(len(content)),
		Content:     strings.NewReader(content),
	}
}
