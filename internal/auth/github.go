package auth

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/go-github/v57/github"
	"golang.org/x/oauth2"
)

// GitHubClient wraps the GitHub API client with authentication support
type GitHubClient struct {
	config *ProviderConfig
}

// UserProfile represents a GitHub user profile
type UserProfile struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatarUrl"`
	// StaffID is the id of the staff user with a matching email
	StaffID *string `json:"staffId,omitempty"`
}

// NewGitHubClient creates a new GitHub API client
func NewGitHubClient(config *ProviderConfig) *GitHubClient {
	return &GitHubClient{config: config}
}

func (c *GitHubClient) apiClient(httpClient *http.Client) (*github.Client, error) {
	if base := c.GetEnterpriseBaseURL(); base != "" {
		return github.NewEnterpriseClient(base, base, httpClient)
	}
	return github.NewClient(httpClient), nil
}

// GetUserProfile fetches user profile information from GitHub API
func (c *GitHubClient) GetUserProfile(ctx context.Context, accessToken string) (*UserProfile, error) {
	tc := oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken}))
	client, err := c.apiClient(tc)
	if err != nil {
		return nil, fmt.Errorf("failed to create GitHub client: %w", err)
	}

	user, resp, err := client.Users.Get(ctx, "")
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusUnauthorized {
			return nil, fmt.Errorf("invalid access token")
		}
		return nil, fmt.Errorf("failed to get user profile: %w", err)
	}

	// The email list needs the user:email scope; the profile email is the fallback
	emails, _, err := client.Users.ListEmails(ctx, nil)
	if err != nil {
		emails = nil
	}

	return &UserProfile{
		ID:        user.GetID(),
		Username:  user.GetLogin(),
		Email:     pickEmail(emails, user.GetEmail()),
		Name:      user.GetName(),
		AvatarURL: user.GetAvatarURL(),
	}, nil
}

// pickEmail prefers the primary address, then any verified one, then the public profile email
func pickEmail(emails []*github.UserEmail, profileEmail string) string {
	for _, email := range emails {
		if email.GetPrimary() {
			return email.GetEmail()
		}
	}
	for _, email := range emails {
		if email.GetVerified() {
			return email.GetEmail()
		}
	}
	return profileEmail
}

// GetOAuth2Config returns the OAuth2 configuration for this GitHub client
func (c *GitHubClient) GetOAuth2Config(redirectURL string) *oauth2.Config {
	endpoint := oauth2.Endpoint{
		AuthURL:  "https://github.com/login/oauth/authorize",
		TokenURL: "https://github.com/login/oauth/access_token",
	}
	if base := c.GetEnterpriseBaseURL(); base != "" {
		endpoint = oauth2.Endpoint{
			AuthURL:  base + "/login/oauth/authorize",
			TokenURL: base + "/login/oauth/access_token",
		}
	}

	return &oauth2.Config{
		ClientID:     c.config.ClientID,
		ClientSecret: c.config.ClientSecret,
		RedirectURL:  redirectURL,
		Scopes:       []string{"user:email", "read:user"},
		Endpoint:     endpoint,
	}
}

// GetEnterpriseBaseURL returns the enterprise base URL if configured
func (c *GitHubClient) GetEnterpriseBaseURL() string {
	if c.config == nil {
		return ""
	}
	return strings.TrimSuffix(c.config.EnterpriseBaseURL, "/")
}
