package storage

import (
	"context"
	"io"
	"strings"
	"testing"

	apperrors "onboarding-backend/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	require.NoError(t, s.Put(ctx, "new-hires/1/a.txt", strings.NewReader("hello"), 5, "text/plain"))
	assert.Equal(t, 1, s.Len())

	rc, err := s.Get(ctx, "new-hires/1/a.txt")
	require.NoError(t, err)
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))

	require.NoError(t, s.Remove(ctx, "new-hires/1/a.txt"))
	_, err = s.Get(ctx, "new-hires/1/a.txt")
	assert.ErrorIs(t, err, apperrors.ErrDocumentNotFound)
}

func TestDisabledStore(t *testing.T) {
	ctx := context.Background()
	var s ObjectStore = DisabledStore{}

	assert.True(t, apperrors.IsConfiguration(s.Put(ctx, "k", strings.NewReader(""), 0, "")))
	_, err := s.Get(ctx, "k")
	assert.True(t, apperrors.IsConfiguration(err))
	assert.True(t, apperrors.IsConfiguration(s.Remove(ctx, "k")))
}

func TestNewMinioStore(t *testing.T) {
	s, err := NewMinioStore(Options{Endpoint: "localhost:9000", AccessKeyID: "key", SecretAccessKey: "secret", Bucket: "onboarding"})
	require.NoError(t, err)
	assert.Equal(t, "us-east-1", s.region)
	assert.Equal(t, "onboarding", s.bucket)

	_, err = NewMinioStore(Options{Endpoint: "http://bad endpoint"})
	assert.Error(t, err)
}
