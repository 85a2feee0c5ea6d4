package handlers_test

import (
	"net/http"
	"testing"

	"onboarding-backend/internal/api/handlers"
	apperrors "onboarding-backend/internal/errors"
	"onboarding-backend/internal/mocks"
	"onboarding-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestCommentHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockCommentServiceInterface(ctrl)
	h := handlers.NewCommentHandler(mockService)
	router := gin.New()
	router.GET("/new-hires/:id/tasks/:taskId/comments", h.ListComments)
	router.POST("/new-hires/:id/tasks/:taskId/comments", h.AddComment)

	id := uuid.New()
	base := "/new-hires/" + id.String() + "/tasks/"

	t.Run("add", func(t *testing.T) {
		mockService.EXPECT().
			AddComment(gomock.Any(), id, 3, &service.AddCommentRequest{Body: "Laptop arrived"}).
			Return(&service.CommentResponse{NewHireID: id, TaskID: 3, Body: "Laptop arrived"}, nil)

		w := doJSON(router, http.MethodPost, base+"3/comments", map[string]string{"body": "Laptop arrived"})
		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"task_id":3`)
	})

	t.Run("list", func(t *testing.T) {
		mockService.EXPECT().
			ListComments(gomock.Any(), id, 3).
			Return([]service.CommentResponse{{Body: "a"}, {Body: "b"}}, nil)

		w := doJSON(router, http.MethodGet, base+"3/comments", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"comments":[`)
	})

	t.Run("bad task id", func(t *testing.T) {
		for _, taskID := range []string{"abc", "0", "-1"} {
			w := doJSON(router, http.MethodGet, base+taskID+"/comments", nil)
			assert.Equal(t, http.StatusBadRequest, w.Code, taskID)
		}
	})

	t.Run("unknown task", func(t *testing.T) {
		mockService.EXPECT().ListComments(gomock.Any(), id, 999).Return(nil, apperrors.ErrTaskNotFound)
		w := doJSON(router, http.MethodGet, base+"999/comments", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error":"task not found"}`, w.Body.String())
	})
}
