//go:build integration
// +build integration

package repository

import (
	"context"
	"testing"

	"onboarding-backend/internal/database/models"
	apperrors "onboarding-backend/internal/errors"
	"onboarding-backend/internal/onboarding"
	"onboarding-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// NewHireRepositoryTestSuite tests the NewHireRepository together with the
// repositories that hang off a new hire
type NewHireRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *NewHireRepository
	users         *UserRepository
	comments      *CommentRepository
	feedback      *FeedbackRepository
	documents     *DocumentRepository
	factories     *testutils.FactorySet
	ctx           context.Context
}

func (suite *NewHireRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	db := suite.baseTestSuite.DB
	suite.repo = NewNewHireRepository(db)
	suite.users = NewUserRepository(db)
	suite.comments = NewCommentRepository(db)
	suite.feedback = NewFeedbackRepository(db)
	suite.documents = NewDocumentRepository(db)
	suite.factories = testutils.NewFactorySet()
	suite.ctx = context.Background()
}

func (suite *NewHireRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *NewHireRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

func (suite *NewHireRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *NewHireRepositoryTestSuite) TestCreateAndGet() {
	manager, buddy, hire := suite.factories.CreateTeam()
	suite.Require().NoError(suite.users.Create(suite.ctx, manager))
	suite.Require().NoError(suite.users.Create(suite.ctx, buddy))
	suite.Require().NoError(suite.repo.Create(suite.ctx, hire))

	found, err := suite.repo.GetByID(suite.ctx, hire.ID)
	suite.Require().NoError(err)
	suite.Equal(hire.Email, found.Email)
	suite.Equal("2025-01-06", onboarding.DateOf(found.StartDate).String())
	suite.Require().NotNil(found.ManagerID)
	suite.Equal(manager.ID, *found.ManagerID)
	suite.Equal("day_1", found.CurrentMilestone)
}

func (suite *NewHireRepositoryTestSuite) TestCreateDuplicateEmail() {
	hire := suite.factories.NewHire.Create()
	suite.Require().NoError(suite.repo.Create(suite.ctx, hire))

	dup := suite.factories.NewHire.Create()
	dup.Email = hire.Email
	suite.ErrorIs(suite.repo.Create(suite.ctx, dup), apperrors.ErrNewHireExists)
}

func (suite *NewHireRepositoryTestSuite) TestListFilters() {
	managerA, managerB := uuid.New(), uuid.New()
	buddy := uuid.New()

	first := suite.factories.NewHire.WithManager(managerA)
	first.BuddyID = &buddy
	suite.Require().NoError(suite.repo.Create(suite.ctx, first))
	suite.Require().NoError(suite.repo.Create(suite.ctx, suite.factories.NewHire.WithManager(managerA)))
	suite.Require().NoError(suite.repo.Create(suite.ctx, suite.factories.NewHire.WithManager(managerB)))

	hires, total, err := suite.repo.List(suite.ctx, NewHireFilter{ManagerID: &managerA})
	suite.NoError(err)
	suite.Equal(int64(2), total)
	suite.Len(hires, 2)

	hires, total, err = suite.repo.List(suite.ctx, NewHireFilter{BuddyID: &buddy})
	suite.NoError(err)
	suite.Equal(int64(1), total)
	suite.Equal(first.ID, hires[0].ID)

	hires, total, err = suite.repo.List(suite.ctx, NewHireFilter{Limit: 1, Offset: 1})
	suite.NoError(err)
	suite.Equal(int64(3), total)
	suite.Len(hires, 1)
}

func (suite *NewHireRepositoryTestSuite) TestUpdateCurrentMilestone() {
	hire := suite.factories.NewHire.Create()
	suite.Require().NoError(suite.repo.Create(suite.ctx, hire))

	suite.NoError(suite.repo.UpdateCurrentMilestone(suite.ctx, hire.ID, "week_1"))
	found, err := suite.repo.GetByID(suite.ctx, hire.ID)
	suite.Require().NoError(err)
	suite.Equal("week_1", found.CurrentMilestone)

	suite.ErrorIs(suite.repo.UpdateCurrentMilestone(suite.ctx, uuid.New(), "week_1"), apperrors.ErrNewHireNotFound)
}

func (suite *NewHireRepositoryTestSuite) TestDelete() {
	hire := suite.factories.NewHire.Create()
	suite.Require().NoError(suite.repo.Create(suite.ctx, hire))

	suite.NoError(suite.repo.Delete(suite.ctx, hire.ID))
	_, err := suite.repo.GetByID(suite.ctx, hire.ID)
	suite.ErrorIs(err, apperrors.ErrNewHireNotFound)
	suite.ErrorIs(suite.repo.Delete(suite.ctx, hire.ID), apperrors.ErrNewHireNotFound)
}

func (suite *NewHireRepositoryTestSuite) TestCommentsFeedbackAndDocuments() {
	hire := suite.factories.NewHire.Create()
	suite.Require().NoError(suite.repo.Create(suite.ctx, hire))

	for _, body := range []string{"first", "second"} {
		suite.Require().NoError(suite.comments.Create(suite.ctx, &models.TaskComment{
			NewHireID: hire.ID, TaskID: 1, Author: "grace@example.com", Body: body,
		}))
	}
	suite.Require().NoError(suite.comments.Create(suite.ctx, &models.TaskComment{
		NewHireID: hire.ID, TaskID: 2, Author: "grace@example.com", Body: "other task",
	}))

	comments, err := suite.comments.ListByTask(suite.ctx, hire.ID, 1)
	suite.Require().NoError(err)
	suite.Require().Len(comments, 2)
	suite.Equal("first", comments[0].Body)

	milestone := "week_1"
	suite.Require().NoError(suite.feedback.Create(suite.ctx, &models.Feedback{
		NewHireID: hire.ID, From: "ada@example.com", MilestoneID: &milestone, Rating: 4, Message: "going well",
	}))
	entries, err := suite.feedback.ListByNewHire(suite.ctx, hire.ID)
	suite.Require().NoError(err)
	suite.Len(entries, 1)

	doc := &models.Document{NewHireID: hire.ID, Filename: "contract.pdf", ContentType: "application/pdf", Size: 42, ObjectKey: "new-hires/" + hire.ID.String() + "/contract.pdf"}
	suite.Require().NoError(suite.documents.Create(suite.ctx, doc))
	docs, err := suite.documents.ListByNewHire(suite.ctx, hire.ID)
	suite.Require().NoError(err)
	suite.Len(docs, 1)

	suite.NoError(suite.comments.DeleteByNewHireID(suite.ctx, hire.ID))
	suite.NoError(suite.feedback.DeleteByNewHireID(suite.ctx, hire.ID))
	suite.NoError(suite.documents.Delete(suite.ctx, doc.ID))

	comments, err = suite.comments.ListByTask(suite.ctx, hire.ID, 1)
	suite.NoError(err)
	suite.Empty(comments)
	_, err = suite.documents.GetByID(suite.ctx, doc.ID)
	suite.ErrorIs(err, apperrors.ErrDocumentNotFound)
}

func (suite *NewHireRepositoryTestSuite) TestDeleteCascade() {
	plans := NewPlanRepository(suite.baseTestSuite.DB)
	hire := suite.factories.NewHire.Create()
	suite.Require().NoError(suite.repo.Create(suite.ctx, hire))
	other := suite.factories.NewHire.Create()
	suite.Require().NoError(suite.repo.Create(suite.ctx, other))

	for _, h := range []*models.NewHire{hire, other} {
		suite.Require().NoError(plans.Create(suite.ctx, suite.factories.Plan.Create(h)))
		suite.Require().NoError(suite.comments.Create(suite.ctx, &models.TaskComment{NewHireID: h.ID, TaskID: 1, Author: "grace@example.com", Body: "hi"}))
		suite.Require().NoError(suite.feedback.Create(suite.ctx, &models.Feedback{NewHireID: h.ID, From: "ada@example.com", Rating: 4, Message: "ok"}))
		suite.Require().NoError(suite.documents.Create(suite.ctx, &models.Document{NewHireID: h.ID, Filename: "contract.pdf", ContentType: "application/pdf", Size: 1, ObjectKey: "new-hires/" + h.ID.String() + "/contract.pdf"}))
	}

	suite.NoError(suite.repo.DeleteCascade(suite.ctx, hire.ID))

	_, err := suite.repo.GetByID(suite.ctx, hire.ID)
	suite.ErrorIs(err, apperrors.ErrNewHireNotFound)
	_, err = plans.GetByNewHireID(suite.ctx, hire.ID)
	suite.ErrorIs(err, apperrors.ErrPlanNotFound)
	comments, err := suite.comments.ListByTask(suite.ctx, hire.ID, 1)
	suite.NoError(err)
	suite.Empty(comments)
	entries, err := suite.feedback.ListByNewHire(suite.ctx, hire.ID)
	suite.NoError(err)
	suite.Empty(entries)
	docs, err := suite.documents.ListByNewHire(suite.ctx, hire.ID)
	suite.NoError(err)
	suite.Empty(docs)

	docs, err = suite.documents.ListByNewHire(suite.ctx, other.ID)
	suite.NoError(err)
	suite.Len(docs, 1)

	// a missing hire rolls the whole transaction back
	suite.ErrorIs(suite.repo.DeleteCascade(suite.ctx, uuid.New()), apperrors.ErrNewHireNotFound)
	_, err = plans.GetByNewHireID(suite.ctx, other.ID)
	suite.NoError(err)
}

func TestNewHireRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(NewHireRepositoryTestSuite))
}
