package auth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"time"

	"onboarding-backend/internal/cache"
	"onboarding-backend/internal/database/models"
	"onboarding-backend/internal/logger"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/oauth2"
)

const (
	accessTokenTTL  = time.Hour
	refreshTokenTTL = 30 * 24 * time.Hour
	jwtIssuer       = "onboarding-backend"
)

// UserRepository is the staff-user lookup the auth service needs
type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

// AuthService provides authentication functionality
type AuthService struct {
	config        *AuthConfig
	githubClients map[string]*GitHubClient
	tokens        *cache.TokenStore
	userRepo      UserRepository
	now           func() time.Time
}

// AuthClaims represents JWT token claims
type AuthClaims struct {
	UserID               int64   `json:"user_id" example:"12345"`
	Username             string  `json:"username" example:"ada"`
	Email                string  `json:"email" example:"ada@example.com"`
	Provider             string  `json:"provider" example:"github"`
	StaffID              *string `json:"staff_id,omitempty" example:"3f0c2b1e-8f4e-4c43-9d2a-7c1e0b5f9a11"`
	jwt.RegisteredClaims `swaggerignore:"true"`
}

// AuthHandlerResponse represents the response for auth handler endpoint
type AuthHandlerResponse struct {
	AccessToken  string      `json:"accessToken"`
	TokenType    string      `json:"tokenType"`
	ExpiresIn    int64       `json:"expiresInSeconds"`
	RefreshToken string      `json:"refreshToken,omitempty"`
	Profile      UserProfile `json:"profile"`
}

// RefreshTokenRequest represents the request for token refresh and logout
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// AuthLogoutResponse represents the response from the logout endpoint
type AuthLogoutResponse struct {
	Message string `json:"message" example:"Logged out successfully"`
}

// AuthValidateResponse represents the response from the token validation endpoint
type AuthValidateResponse struct {
	Valid  bool        `json:"valid" example:"true"`
	Claims *AuthClaims `json:"claims"`
}

// NewAuthService creates a new authentication service. tokens keeps refresh
// tokens; userRepo may be nil.
func NewAuthService(config *AuthConfig, tokens *cache.TokenStore, userRepo UserRepository) (*AuthService, error) {
	if err := config.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("invalid auth config: %w", err)
	}
	if tokens == nil {
		tokens = cache.NewTokenStore(cache.NewMemoryCache())
	}

	githubClients := make(map[string]*GitHubClient, len(config.Providers))
	for providerName := range config.Providers {
		providerConfig := config.Providers[providerName]
		githubClients[providerName] = NewGitHubClient(&providerConfig)
	}

	return &AuthService{
		config:        config,
		githubClients: githubClients,
		tokens:        tokens,
		userRepo:      userRepo,
		now:           time.Now,
	}, nil
}

// HasProvider reports whether provider is configured
func (s *AuthService) HasProvider(provider string) bool {
	_, ok := s.githubClients[provider]
	return ok
}

// staffIDByEmail returns the id of the staff user with this email, if any
func (s *AuthService) staffIDByEmail(ctx context.Context, email string) *string {
	if s.userRepo == nil || email == "" {
		return nil
	}
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil || user == nil {
		return nil
	}
	id := user.ID.String()
	return &id
}

func (s *AuthService) callbackURL(provider string) string {
	return fmt.Sprintf("%s/api/auth/%s/handler/frame", s.config.RedirectURL, provider)
}

func (s *AuthService) client(provider string) (*GitHubClient, error) {
	client, ok := s.githubClients[provider]
	if !ok {
		return nil, fmt.Errorf("provider '%s' not found", provider)
	}
	return client, nil
}

// GetAuthURL generates OAuth2 authorization URL
func (s *AuthService) GetAuthURL(provider, state string) (string, error) {
	client, err := s.client(provider)
	if err != nil {
		return "", err
	}
	return client.GetOAuth2Config(s.callbackURL(provider)).AuthCodeURL(state, oauth2.AccessTypeOffline), nil
}

// HandleCallback exchanges the authorization code and issues our own tokens
func (s *AuthService) HandleCallback(ctx context.Context, provider, code string) (*AuthHandlerResponse, error) {
	client, err := s.client(provider)
	if err != nil {
		return nil, err
	}

	token, err := client.GetOAuth2Config(s.callbackURL(provider)).Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange code for token: %w", err)
	}

	profile, err := client.GetUserProfile(ctx, token.AccessToken)
	if err != nil {
		return nil, fmt.Errorf("failed to get user profile: %w", err)
	}
	profile.StaffID = s.staffIDByEmail(ctx, profile.Email)

	resp, err := s.issue(ctx, profile, provider, token.AccessToken)
	if err != nil {
		return nil, err
	}

	logger.WithContext(ctx).Component("auth").
		WithField("username", profile.Username).
		WithField("provider", provider).
		Info("user signed in")
	return resp, nil
}

// RefreshToken rotates a refresh token and issues a new access token
func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*AuthHandlerResponse, error) {
	data, err := s.tokens.Lookup(ctx, refreshToken)
	if err != nil {
		return nil, err
	}
	if err := s.tokens.Revoke(ctx, refreshToken); err != nil {
		return nil, fmt.Errorf("failed to revoke refresh token: %w", err)
	}

	profile := &UserProfile{
		ID:       data.UserID,
		Username: data.Username,
		Email:    data.Email,
	}
	profile.StaffID = s.staffIDByEmail(ctx, profile.Email)

	return s.issue(ctx, profile, data.Provider, data.AccessToken)
}

func (s *AuthService) issue(ctx context.Context, profile *UserProfile, provider, providerToken string) (*AuthHandlerResponse, error) {
	jwtToken, err := s.GenerateJWT(profile, provider)
	if err != nil {
		return nil, fmt.Errorf("failed to generate JWT: %w", err)
	}

	refreshToken, err := generateRandomString(64)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	now := s.now()
	err = s.tokens.Save(ctx, refreshToken, cache.RefreshToken{
		UserID:      profile.ID,
		Username:    profile.Username,
		Email:       profile.Email,
		Provider:    provider,
		AccessToken: providerToken,
		ExpiresAt:   now.Add(refreshTokenTTL),
		CreatedAt:   now,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to store refresh token: %w", err)
	}

	return &AuthHandlerResponse{
		AccessToken:  jwtToken,
		TokenType:    "Bearer",
		ExpiresIn:    int64(accessTokenTTL.Seconds()),
		RefreshToken: refreshToken,
		Profile:      *profile,
	}, nil
}

// GenerateJWT creates a JWT token for the user
func (s *AuthService) GenerateJWT(userProfile *UserProfile, provider string) (string, error) {
	now := s.now()
	claims := &AuthClaims{
		UserID:   userProfile.ID,
		Username: userProfile.Username,
		Email:    userProfile.Email,
		Provider: provider,
		StaffID:  userProfile.StaffID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(accessTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    jwtIssuer,
			Subject:   fmt.Sprintf("%d", userProfile.ID),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.JWTSecret))
}

// ValidateJWT validates and parses a JWT token
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.JWTSecret), nil
	}, jwt.WithIssuer(jwtIssuer), jwt.WithTimeFunc(s.now))
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*AuthClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}

// GenerateState generates a random state parameter for OAuth2
func (s *AuthService) GenerateState() (string, error) {
	return generateRandomString(32)
}

// Logout revokes the refresh token. Access tokens expire on their own.
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	return s.tokens.Revoke(ctx, refreshToken)
}

func generateRandomString(length int) (string, error) {
	bytes := make([]byte, length)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(bytes), nil
}
