package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"onboarding-backend/internal/database/models"
	apperrors "onboarding-backend/internal/errors"
	"onboarding-backend/internal/events"
	"onboarding-backend/internal/mocks"
	"onboarding-backend/internal/onboarding"
	"onboarding-backend/internal/plansource"
	"onboarding-backend/internal/service"
	"onboarding-backend/internal/storage"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// NewHireServiceTestSuite exercises the new hire lifecycle over in-memory stores
type NewHireServiceTestSuite struct {
	suite.Suite
	ctx context.Context
	w   *world
}

func (suite *NewHireServiceTestSuite) SetupTest() {
	suite.ctx = context.WithValue(context.Background(), "email", "hr@example.com")
	suite.w = newWorld(suite.T())
}

func (suite *NewHireServiceTestSuite) TestCreateNewHire() {
	manager := suite.w.createUser(suite.T(), "Grace", "grace@example.com", models.UserRoleManager)
	buddy := suite.w.createUser(suite.T(), "Linus", "linus@example.com", models.UserRoleBuddy)

	req := newHireRequest("Ada Lovelace", "ada@example.com")
	req.ManagerID = &manager.ID
	req.BuddyID = &buddy.ID

	resp, err := suite.w.newHires.CreateNewHire(suite.ctx, req)
	suite.Require().NoError(err)

	suite.NotEqual(uuid.Nil, resp.ID)
	suite.Equal("Ada Lovelace", resp.Name)
	suite.Equal(testStart, resp.StartDate)
	suite.Equal(&manager.ID, resp.ManagerID)
	suite.Equal(1, resp.PlanVersion)
	suite.Equal(plansource.SourceTemplate, resp.PlanSource)
	suite.Require().NotNil(resp.Progress)
	// Friday of week one with nothing done
	suite.Equal(onboarding.StatusOverdue, resp.CalculatedStatus)
	suite.Equal(2, resp.Progress.ScheduledProgress)

	row, err := suite.w.repos.Plans.GetByNewHireID(suite.ctx, resp.ID)
	suite.Require().NoError(err)
	plan := row.Plan()
	suite.Equal("Ada Lovelace", plan.NewHireName)
	suite.False(plan.GeneratedAt.IsZero())
	suite.Equal(plansource.SourceTemplate, plan.Source)
	suite.Equal("hr@example.com", row.CreatedBy)

	suite.Equal([]string{events.NewHireCreated}, suite.w.publisher.Keys())

	sent := suite.w.mailer.Sent()
	suite.Require().Len(sent, 1)
	suite.Equal("ada@example.com", sent[0].To)
	suite.Contains(sent[0].Body, "On your first day:")
}

func (suite *NewHireServiceTestSuite) TestCreateNewHire_Validation() {
	tests := []struct {
		name  string
		mod   func(*service.CreateNewHireRequest)
		field string
	}{
		{"missing name", func(r *service.CreateNewHireRequest) { r.Name = "" }, "name"},
		{"bad email", func(r *service.CreateNewHireRequest) { r.Email = "not-an-email" }, "email"},
		{"missing role", func(r *service.CreateNewHireRequest) { r.Role = "" }, "role"},
		{"missing start date", func(r *service.CreateNewHireRequest) { r.StartDate = onboarding.Date{} }, "start_date"},
	}
	for _, tt := range tests {
		suite.Run(tt.name, func() {
			req := newHireRequest("Ada", "ada@example.com")
			tt.mod(req)
			_, err := suite.w.newHires.CreateNewHire(suite.ctx, req)
			suite.Require().Error(err)
			var verr *apperrors.ValidationError
			suite.Require().True(errors.As(err, &verr))
			suite.Equal(tt.field, verr.Field)
		})
	}
	suite.Empty(suite.w.publisher.Keys())
}

func (suite *NewHireServiceTestSuite) TestCreateNewHire_UnknownPeople() {
	missing := uuid.New()

	req := newHireRequest("Ada", "ada@example.com")
	req.BuddyID = &missing
	_, err := suite.w.newHires.CreateNewHire(suite.ctx, req)
	suite.ErrorIs(err, apperrors.ErrBuddyNotFound)

	req = newHireRequest("Ada", "ada@example.com")
	req.ManagerID = &missing
	_, err = suite.w.newHires.CreateNewHire(suite.ctx, req)
	suite.ErrorIs(err, apperrors.ErrManagerNotFound)
}

func (suite *NewHireServiceTestSuite) TestCreateNewHire_DuplicateEmail() {
	suite.w.onboard(suite.T(), newHireRequest("Ada", "ada@example.com"))

	_, err := suite.w.newHires.CreateNewHire(suite.ctx, newHireRequest("Other Ada", "ada@example.com"))
	suite.ErrorIs(err, apperrors.ErrNewHireExists)
	suite.True(apperrors.IsAlreadyExists(err))
}

func (suite *NewHireServiceTestSuite) TestCreateNewHire_UnknownRoleFallsBack() {
	req := newHireRequest("Ada", "ada@example.com")
	req.Role = "Underwater Basket Weaver"

	resp := suite.w.onboard(suite.T(), req)
	plan, err := suite.w.plans.GetPlan(suite.ctx, resp.ID)
	suite.Require().NoError(err)
	suite.Equal("Underwater Basket Weaver", plan.Plan.Role)
	suite.Len(plan.Plan.Milestones, onboarding.MilestoneCount)
}

func (suite *NewHireServiceTestSuite) TestCreateNewHire_GenerationFailureRollsBack() {
	svc := service.NewNewHireService(suite.w.repos, suite.w.store, failingSource{}, suite.w.publisher,
		service.NewNotificationService(suite.w.mailer), suite.w.clock, service.NewValidator())

	_, err := svc.CreateNewHire(suite.ctx, newHireRequest("Ada", "ada@example.com"))
	suite.Require().Error(err)
	suite.Contains(err.Error(), "failed to generate plan")

	hires, total, err := suite.w.repos.NewHires.List(suite.ctx, repositoryFilterAll())
	suite.Require().NoError(err)
	suite.Zero(total)
	suite.Empty(hires)
	suite.Empty(suite.w.publisher.Keys())
	suite.Empty(suite.w.mailer.Sent())
}

func (suite *NewHireServiceTestSuite) TestCreateNewHire_WelcomeMailFailureIsNotFatal() {
	suite.w.mailer.err = errors.New("relay down")

	resp, err := suite.w.newHires.CreateNewHire(suite.ctx, newHireRequest("Ada", "ada@example.com"))
	suite.Require().NoError(err)
	suite.NotNil(resp)
}

func (suite *NewHireServiceTestSuite) TestGetNewHire() {
	created := suite.w.onboard(suite.T(), newHireRequest("Ada", "ada@example.com"))

	resp, err := suite.w.newHires.GetNewHire(suite.ctx, created.ID)
	suite.Require().NoError(err)
	suite.Equal(created.ID, resp.ID)
	suite.Equal(onboarding.StatusOverdue, resp.CalculatedStatus)

	_, err = suite.w.newHires.GetNewHire(suite.ctx, uuid.New())
	suite.ErrorIs(err, apperrors.ErrNewHireNotFound)
}

func (suite *NewHireServiceTestSuite) TestListNewHires() {
	manager := suite.w.createUser(suite.T(), "Grace", "grace@example.com", models.UserRoleManager)

	early := newHireRequest("Ada", "ada@example.com")
	early.ManagerID = &manager.ID
	suite.w.onboard(suite.T(), early)

	future := newHireRequest("Alan", "alan@example.com")
	future.StartDate = onboarding.MustParseDate("2025-02-03")
	suite.w.onboard(suite.T(), future)

	suite.w.onboard(suite.T(), newHireRequest("Edsger", "edsger@example.com"))

	suite.Run("all", func() {
		list, total, err := suite.w.newHires.ListNewHires(suite.ctx, service.NewHireListFilter{}, 10, 0)
		suite.Require().NoError(err)
		suite.EqualValues(3, total)
		suite.Len(list, 3)
	})

	suite.Run("paginated", func() {
		list, total, err := suite.w.newHires.ListNewHires(suite.ctx, service.NewHireListFilter{}, 2, 2)
		suite.Require().NoError(err)
		suite.EqualValues(3, total)
		suite.Len(list, 1)
	})

	suite.Run("by manager", func() {
		list, total, err := suite.w.newHires.ListNewHires(suite.ctx, service.NewHireListFilter{ManagerID: &manager.ID}, 10, 0)
		suite.Require().NoError(err)
		suite.EqualValues(1, total)
		suite.Equal("Ada", list[0].Name)
	})

	suite.Run("by derived status", func() {
		list, total, err := suite.w.newHires.ListNewHires(suite.ctx, service.NewHireListFilter{Status: "not_started"}, 10, 0)
		suite.Require().NoError(err)
		suite.EqualValues(1, total)
		suite.Require().Len(list, 1)
		suite.Equal("Alan", list[0].Name)

		list, total, err = suite.w.newHires.ListNewHires(suite.ctx, service.NewHireListFilter{Status: "overdue"}, 1, 1)
		suite.Require().NoError(err)
		suite.EqualValues(2, total, "total counts every match, not the page")
		suite.Len(list, 1)

		list, _, err = suite.w.newHires.ListNewHires(suite.ctx, service.NewHireListFilter{Status: "overdue"}, 10, 5)
		suite.Require().NoError(err)
		suite.Empty(list)
	})

	suite.Run("invalid input", func() {
		_, _, err := suite.w.newHires.ListNewHires(suite.ctx, service.NewHireListFilter{}, 0, 0)
		suite.ErrorIs(err, apperrors.ErrInvalidPaginationParams)

		_, _, err = suite.w.newHires.ListNewHires(suite.ctx, service.NewHireListFilter{Status: "late"}, 10, 0)
		suite.True(apperrors.IsValidation(err))
	})
}

func (suite *NewHireServiceTestSuite) TestUpdateNewHire() {
	created := suite.w.onboard(suite.T(), newHireRequest("Ada", "ada@example.com"))
	buddy := suite.w.createUser(suite.T(), "Linus", "linus@example.com", models.UserRoleBuddy)

	name := "Ada King"
	role := "designer"
	resp, err := suite.w.newHires.UpdateNewHire(suite.ctx, created.ID, &service.UpdateNewHireRequest{
		Name:    &name,
		Role:    &role,
		BuddyID: &buddy.ID,
	})
	suite.Require().NoError(err)
	suite.Equal("Ada King", resp.Name)
	suite.Equal("designer", resp.Role)
	suite.Equal(&buddy.ID, resp.BuddyID)
	// the plan is kept as is
	suite.Equal(1, resp.PlanVersion)

	empty := ""
	_, err = suite.w.newHires.UpdateNewHire(suite.ctx, created.ID, &service.UpdateNewHireRequest{Role: &empty})
	suite.True(apperrors.IsValidation(err))

	bad := "nope"
	_, err = suite.w.newHires.UpdateNewHire(suite.ctx, created.ID, &service.UpdateNewHireRequest{Email: &bad})
	suite.True(apperrors.IsValidation(err))

	missing := uuid.New()
	_, err = suite.w.newHires.UpdateNewHire(suite.ctx, created.ID, &service.UpdateNewHireRequest{ManagerID: &missing})
	suite.ErrorIs(err, apperrors.ErrManagerNotFound)

	_, err = suite.w.newHires.UpdateNewHire(suite.ctx, uuid.New(), &service.UpdateNewHireRequest{Name: &name})
	suite.ErrorIs(err, apperrors.ErrNewHireNotFound)
}

func (suite *NewHireServiceTestSuite) TestDeleteNewHire_Cascades() {
	created := suite.w.onboard(suite.T(), newHireRequest("Ada", "ada@example.com"))
	other := suite.w.onboard(suite.T(), newHireRequest("Alan", "alan@example.com"))

	comments := service.NewCommentService(suite.w.repos, service.NewValidator())
	_, err := comments.AddComment(suite.ctx, created.ID, 1, &service.AddCommentRequest{Body: "hello"})
	suite.Require().NoError(err)

	feedback := service.NewFeedbackService(suite.w.repos, suite.w.publisher, service.NewValidator())
	_, err = feedback.SubmitFeedback(suite.ctx, created.ID, &service.SubmitFeedbackRequest{Rating: 5})
	suite.Require().NoError(err)

	docs := service.NewDocumentService(suite.w.repos, suite.w.store, 0)
	_, err = docs.Upload(suite.ctx, created.ID, textUpload("contract.txt", "signed"))
	suite.Require().NoError(err)
	_, err = docs.Upload(suite.ctx, other.ID, textUpload("contract.txt", "signed too"))
	suite.Require().NoError(err)
	suite.Equal(2, suite.w.store.Len())

	suite.Require().NoError(suite.w.newHires.DeleteNewHire(suite.ctx, created.ID))

	_, err = suite.w.newHires.GetNewHire(suite.ctx, created.ID)
	suite.ErrorIs(err, apperrors.ErrNewHireNotFound)
	_, err = suite.w.repos.Plans.GetByNewHireID(suite.ctx, created.ID)
	suite.ErrorIs(err, apperrors.ErrPlanNotFound)

	left, err := suite.w.repos.Comments.ListByTask(suite.ctx, created.ID, 1)
	suite.Require().NoError(err)
	suite.Empty(left)
	leftFeedback, err := suite.w.repos.Feedback.ListByNewHire(suite.ctx, created.ID)
	suite.Require().NoError(err)
	suite.Empty(leftFeedback)
	leftDocs, err := suite.w.repos.Documents.ListByNewHire(suite.ctx, created.ID)
	suite.Require().NoError(err)
	suite.Empty(leftDocs)
	suite.Equal(1, suite.w.store.Len(), "only the other new hire's object remains")

	_, err = suite.w.newHires.GetNewHire(suite.ctx, other.ID)
	suite.NoError(err)

	keys := suite.w.publisher.Keys()
	suite.Equal(events.NewHireDeleted, keys[len(keys)-1])

	suite.ErrorIs(suite.w.newHires.DeleteNewHire(suite.ctx, created.ID), apperrors.ErrNewHireNotFound)
}

func TestNewHireServiceTestSuite(t *testing.T) {
	suite.Run(t, new(NewHireServiceTestSuite))
}

func TestCreateNewHire_PlanStoreFailureRollsBack(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repos := service.NewMemoryRepositories()
	plans := mocks.NewMockPlanRepositoryInterface(ctrl)
	repos.Plans = plans
	notifier := mocks.NewMockNotifierInterface(ctrl)
	publisher := &events.RecordingPublisher{}

	plans.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(errors.New("connection reset")).
		Times(1)
	notifier.EXPECT().NotifyWelcome(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	svc := service.NewNewHireService(repos, nil, templateSource(), publisher, notifier,
		onboarding.FixedClock{Date: testToday}, service.NewValidator())

	_, err := svc.CreateNewHire(context.Background(), newHireRequest("Ada", "ada@example.com"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to save plan")

	_, total, err := repos.NewHires.List(context.Background(), repositoryFilterAll())
	assert.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, publisher.Keys())
}

func TestDeleteNewHire_FailedDeleteKeepsDocuments(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ctx := context.Background()

	repos := service.NewMemoryRepositories()
	hires := mocks.NewMockNewHireRepositoryInterface(ctrl)
	repos.NewHires = hires
	store := storage.NewMemoryStore()
	publisher := &events.RecordingPublisher{}

	hire := &models.NewHire{Name: "Ada", Email: "ada@example.com"}
	hire.ID = uuid.New()
	doc := &models.Document{NewHireID: hire.ID, Filename: "contract.txt", ObjectKey: "new-hires/" + hire.ID.String() + "/contract.txt"}
	assert.NoError(t, repos.Documents.Create(ctx, doc))
	assert.NoError(t, store.Put(ctx, doc.ObjectKey, strings.NewReader("signed"), 6, "text/plain"))

	hires.EXPECT().GetByID(gomock.Any(), hire.ID).Return(hire, nil).Times(1)
	hires.EXPECT().
		DeleteCascade(gomock.Any(), hire.ID).
		Return(errors.New("connection reset")).
		Times(1)
	hires.EXPECT().Delete(gomock.Any(), gomock.Any()).Times(0)

	svc := service.NewNewHireService(repos, store, templateSource(), publisher, service.NewNotificationService(service.NoopMailer{}),
		onboarding.FixedClock{Date: testToday}, service.NewValidator())

	err := svc.DeleteNewHire(ctx, hire.ID)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to delete new hire")

	docs, err := repos.Documents.ListByNewHire(ctx, hire.ID)
	assert.NoError(t, err)
	assert.Len(t, docs, 1)
	assert.Equal(t, 1, store.Len(), "stored objects stay while their rows do")
	assert.Empty(t, publisher.Keys())
}

func TestCreateNewHire_NotifiesWelcome(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	notifier := mocks.NewMockNotifierInterface(ctrl)
	notifier.EXPECT().
		NotifyWelcome(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, hire *models.NewHire, plan *onboarding.Plan) error {
			assert.Equal(t, "ada@example.com", hire.Email)
			assert.Equal(t, hire.Name, plan.NewHireName)
			assert.Len(t, plan.Milestones, onboarding.MilestoneCount)
			return nil
		}).
		Times(1)

	svc := service.NewNewHireService(service.NewMemoryRepositories(), nil, templateSource(), events.NoopPublisher{}, notifier,
		onboarding.FixedClock{Date: testToday}, service.NewValidator())

	_, err := svc.CreateNewHire(context.Background(), newHireRequest("Ada", "ada@example.com"))
	assert.NoError(t, err)
}
