package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"onboarding-backend/internal/api/handlers"
	apperrors "onboarding-backend/internal/errors"
	"onboarding-backend/internal/mocks"
	"onboarding-backend/internal/onboarding"
	"onboarding-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type NewHireHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockNewHireServiceInterface
	router      *gin.Engine
}

func (suite *NewHireHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockNewHireServiceInterface(suite.ctrl)
	h := handlers.NewNewHireHandler(suite.mockService)

	suite.router = gin.New()
	suite.router.Use(withUser("hr@example.com"))
	suite.router.POST("/new-hires", h.CreateNewHire)
	suite.router.GET("/new-hires", h.ListNewHires)
	suite.router.GET("/new-hires/:id", h.GetNewHire)
	suite.router.PUT("/new-hires/:id", h.UpdateNewHire)
	suite.router.DELETE("/new-hires/:id", h.DeleteNewHire)
}

func (suite *NewHireHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *NewHireHandlerTestSuite) TestCreateNewHire_Success() {
	id := uuid.New()
	suite.mockService.EXPECT().
		CreateNewHire(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, req *service.CreateNewHireRequest) (*service.NewHireResponse, error) {
			suite.Equal("hr@example.com", ctx.Value("email"))
			suite.Equal("2025-01-06", req.StartDate.String())
			suite.Equal("software_engineer", req.Role)
			return &service.NewHireResponse{
				ID:               id,
				Name:             req.Name,
				StartDate:        req.StartDate,
				CalculatedStatus: onboarding.StatusNotStarted,
				PlanVersion:      1,
			}, nil
		})

	w := doJSON(suite.router, http.MethodPost, "/new-hires", map[string]interface{}{
		"name":       "Ada Lovelace",
		"email":      "ada@example.com",
		"role":       "software_engineer",
		"start_date": "2025-01-06",
	})

	suite.Equal(http.StatusCreated, w.Code)
	var resp map[string]interface{}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(id.String(), resp["id"])
	suite.Equal("2025-01-06", resp["start_date"])
	suite.Equal("not_started", resp["calculated_status"])
}

func (suite *NewHireHandlerTestSuite) TestCreateNewHire_BadStartDate() {
	w := doJSON(suite.router, http.MethodPost, "/new-hires", `{"name":"Ada","email":"ada@example.com","role":"x","start_date":"06/01/2025"}`)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *NewHireHandlerTestSuite) TestCreateNewHire_ServiceErrors() {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"validation", apperrors.NewValidationError("start_date", "is required"), http.StatusBadRequest},
		{"buddy missing", apperrors.ErrBuddyNotFound, http.StatusNotFound},
		{"duplicate", apperrors.ErrNewHireExists, http.StatusConflict},
		{"storage down", apperrors.ErrObjectStorageDisabled, http.StatusServiceUnavailable},
	}
	for _, tt := range tests {
		suite.Run(tt.name, func() {
			suite.mockService.EXPECT().CreateNewHire(gomock.Any(), gomock.Any()).Return(nil, tt.err)
			w := doJSON(suite.router, http.MethodPost, "/new-hires", `{"name":"Ada"}`)
			suite.Equal(tt.status, w.Code)
		})
	}
}

func (suite *NewHireHandlerTestSuite) TestGetNewHire() {
	id := uuid.New()
	suite.mockService.EXPECT().GetNewHire(gomock.Any(), id).Return(&service.NewHireResponse{ID: id, Name: "Ada"}, nil)

	w := doJSON(suite.router, http.MethodGet, "/new-hires/"+id.String(), nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), `"name":"Ada"`)

	w = doJSON(suite.router, http.MethodGet, "/new-hires/42", nil)
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.JSONEq(`{"error":"Invalid new hire ID"}`, w.Body.String())
}

func (suite *NewHireHandlerTestSuite) TestListNewHires_Filters() {
	managerID := uuid.New()
	suite.mockService.EXPECT().
		ListNewHires(gomock.Any(), gomock.Any(), 10, 0).
		DoAndReturn(func(_ context.Context, filter service.NewHireListFilter, limit, offset int) ([]service.NewHireResponse, int64, error) {
			suite.Require().NotNil(filter.ManagerID)
			suite.Equal(managerID, *filter.ManagerID)
			suite.Nil(filter.BuddyID)
			suite.Equal("overdue", filter.Status)
			return []service.NewHireResponse{{Name: "Ada"}}, 1, nil
		})

	w := doJSON(suite.router, http.MethodGet, "/new-hires?manager_id="+managerID.String()+"&status=overdue&limit=10", nil)
	suite.Equal(http.StatusOK, w.Code)

	var resp struct {
		NewHires []service.NewHireResponse `json:"new_hires"`
		Total    int64                     `json:"total"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp.NewHires, 1)
	suite.EqualValues(1, resp.Total)
}

func (suite *NewHireHandlerTestSuite) TestListNewHires_BadQuery() {
	w := doJSON(suite.router, http.MethodGet, "/new-hires?buddy_id=nope", nil)
	suite.Equal(http.StatusBadRequest, w.Code)

	suite.mockService.EXPECT().
		ListNewHires(gomock.Any(), gomock.Any(), 20, 0).
		Return(nil, int64(0), apperrors.NewValidationError("status", "must be one of not_started, in_progress, completed, overdue"))
	w = doJSON(suite.router, http.MethodGet, "/new-hires?status=late", nil)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *NewHireHandlerTestSuite) TestUpdateNewHire() {
	id := uuid.New()
	suite.mockService.EXPECT().
		UpdateNewHire(gomock.Any(), id, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, req *service.UpdateNewHireRequest) (*service.NewHireResponse, error) {
			suite.Require().NotNil(req.Role)
			suite.Equal("designer", *req.Role)
			suite.Nil(req.Name)
			return &service.NewHireResponse{ID: id, Role: *req.Role}, nil
		})

	w := doJSON(suite.router, http.MethodPut, "/new-hires/"+id.String(), map[string]string{"role": "designer"})
	suite.Equal(http.StatusOK, w.Code)
}

func (suite *NewHireHandlerTestSuite) TestDeleteNewHire() {
	id := uuid.New()
	suite.mockService.EXPECT().DeleteNewHire(gomock.Any(), id).Return(nil)
	w := doJSON(suite.router, http.MethodDelete, "/new-hires/"+id.String(), nil)
	suite.Equal(http.StatusNoContent, w.Code)

	suite.mockService.EXPECT().DeleteNewHire(gomock.Any(), id).Return(apperrors.ErrNewHireNotFound)
	w = doJSON(suite.router, http.MethodDelete, "/new-hires/"+id.String(), nil)
	suite.Equal(http.StatusNotFound, w.Code)
}

func TestNewHireHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(NewHireHandlerTestSuite))
}
