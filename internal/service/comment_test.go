package service_test

import (
	"context"
	"strings"
	"testing"

	apperrors "onboarding-backend/internal/errors"
	"onboarding-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentService(t *testing.T) {
	w := newWorld(t)
	hire := w.onboard(t, newHireRequest("Ada", "ada@example.com"))
	svc := service.NewCommentService(w.repos, service.NewValidator())

	t.Run("add and list in order", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), "email", "linus@example.com")
		first, err := svc.AddComment(ctx, hire.ID, 1, &service.AddCommentRequest{Body: "Laptop arrived"})
		require.NoError(t, err)
		assert.Equal(t, "linus@example.com", first.Author)
		assert.Equal(t, 1, first.TaskID)

		_, err = svc.AddComment(context.Background(), hire.ID, 1, &service.AddCommentRequest{Body: "Setup done"})
		require.NoError(t, err)

		comments, err := svc.ListComments(context.Background(), hire.ID, 1)
		require.NoError(t, err)
		require.Len(t, comments, 2)
		assert.Equal(t, "Laptop arrived", comments[0].Body)
		assert.Equal(t, "system", comments[1].Author)

		other, err := svc.ListComments(context.Background(), hire.ID, 2)
		require.NoError(t, err)
		assert.Empty(t, other)
	})

	t.Run("validation", func(t *testing.T) {
		_, err := svc.AddComment(context.Background(), hire.ID, 1, &service.AddCommentRequest{})
		assert.True(t, apperrors.IsValidation(err))

		_, err = svc.AddComment(context.Background(), hire.ID, 1, &service.AddCommentRequest{Body: strings.Repeat("x", 4001)})
		assert.True(t, apperrors.IsValidation(err))

		_, err = svc.AddComment(context.Background(), hire.ID, 0, &service.AddCommentRequest{Body: "hi"})
		assert.True(t, apperrors.IsValidation(err))
	})

	t.Run("unknown task or new hire", func(t *testing.T) {
		_, err := svc.AddComment(context.Background(), hire.ID, 999, &service.AddCommentRequest{Body: "hi"})
		assert.ErrorIs(t, err, apperrors.ErrTaskNotFound)

		_, err = svc.ListComments(context.Background(), uuid.New(), 1)
		assert.ErrorIs(t, err, apperrors.ErrNewHireNotFound)
	})
}
