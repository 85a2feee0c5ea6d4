package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	apperrors "onboarding-backend/internal/errors"
)

const refreshTokenPrefix = "auth:refresh:"

// RefreshToken is the session data kept for an issued refresh token
type RefreshToken struct {
	UserID      int64     `json:"user_id"`
	Username    string    `json:"username"`
	Email       string    `json:"email"`
	Provider    string    `json:"provider"`
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
	CreatedAt   time.Time `json:"created_at"`
}

// TokenStore keeps refresh tokens in a Store. Over RedisCache sessions survive
// restarts and are shared between instances.
type TokenStore struct {
	store Store
}

// NewTokenStore creates a refresh-token store on top of store
func NewTokenStore(store Store) *TokenStore {
	return &TokenStore{store: store}
}

// Save stores the token until its expiry
func (s *TokenStore) Save(ctx context.Context, token string, data RefreshToken) error {
	ttl := time.Until(data.ExpiresAt)
	if ttl <= 0 {
		return apperrors.ErrRefreshTokenExpired
	}
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to encode refresh token: %w", err)
	}
	return s.store.Set(ctx, refreshTokenPrefix+token, string(raw), ttl)
}

// Lookup returns the data of a live token
func (s *TokenStore) Lookup(ctx context.Context, token string) (*RefreshToken, error) {
	raw, ok, err := s.store.Get(ctx, refreshTokenPrefix+token)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperrors.ErrInvalidRefreshToken
	}

	var data RefreshToken
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		return nil, fmt.Errorf("failed to decode refresh token: %w", err)
	}
	if time.Now().After(data.ExpiresAt) {
		_ = s.store.Delete(ctx, refreshTokenPrefix+token)
		return nil, apperrors.ErrRefreshTokenExpired
	}
	return &data, nil
}

// Revoke deletes a token
func (s *TokenStore) Revoke(ctx context.Context, token string) error {
	return s.store.Delete(ctx, refreshTokenPrefix+token)
}
