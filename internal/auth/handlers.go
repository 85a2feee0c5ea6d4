package auth

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	apperrors "onboarding-backend/internal/errors"
	"onboarding-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

const (
	stateCookie   = "oauth_state"
	tokenCookie   = "auth_token"
	refreshCookie = "refresh_token"
)

// AuthHandler handles HTTP requests for authentication
type AuthHandler struct {
	service *AuthService
	secure  bool
}

// NewAuthHandler creates a new authentication handler. secure marks cookies Secure.
func NewAuthHandler(service *AuthService, secure bool) *AuthHandler {
	return &AuthHandler{service: service, secure: secure}
}

// framePage renders a page that posts msg to the opener window and closes.
// json.Marshal escapes <, > and & so the payload cannot end the script block.
func framePage(c *gin.Context, msg gin.H) {
	payload, err := json.Marshal(msg)
	if err != nil {
		payload = []byte(`{"type":"authorization_response","error":{"name":"Error","message":"encoding failed"}}`)
	}
	page := `<!doctype html><html><body><script>
(function(){
  var msg = ` + string(payload) + `;
  try { if (window.opener) window.opener.postMessage(msg, "*"); } finally { window.close(); }
})();
</script></body></html>`
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.String(http.StatusOK, page)
}

func frameError(c *gin.Context, name, message string) {
	framePage(c, gin.H{
		"type":  "authorization_response",
		"error": gin.H{"name": name, "message": message},
	})
}

// Start handles GET /api/auth/{provider}/start
// @Summary Start OAuth authentication
// @Description Redirects to the provider's authorization page
// @Tags authentication
// @Param provider path string true "OAuth provider" default(github)
// @Success 302 {string} string "Redirect to OAuth provider authorization URL"
// @Failure 400 {object} map[string]interface{} "Unsupported provider"
// @Failure 500 {object} map[string]interface{} "Failed to generate authorization URL"
// @Router /api/auth/{provider}/start [get]
func (h *AuthHandler) Start(c *gin.Context) {
	provider := c.Param("provider")
	if !h.service.HasProvider(provider) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unsupported provider"})
		return
	}

	state, err := h.service.GenerateState()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate state parameter"})
		return
	}

	authURL, err := h.service.GetAuthURL(provider, state)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate authorization URL", "details": err.Error()})
		return
	}

	c.SetCookie(stateCookie, state, 600, "/api/auth", "", h.secure, true)
	c.Redirect(http.StatusFound, authURL)
}

// HandlerFrame handles GET /api/auth/{provider}/handler/frame
// @Summary Handle OAuth callback
// @Description Completes the OAuth flow and posts the result to the opener window
// @Tags authentication
// @Produce text/html
// @Param provider path string true "OAuth provider" default(github)
// @Param code query string true "OAuth authorization code from provider"
// @Param state query string true "OAuth state parameter"
// @Param error query string false "OAuth error parameter from provider"
// @Param error_description query string false "OAuth error description from provider"
// @Success 200 {string} string "HTML page that posts authentication result to opener window"
// @Failure 400 {object} map[string]interface{} "Invalid request parameters"
// @Router /api/auth/{provider}/handler/frame [get]
func (h *AuthHandler) HandlerFrame(c *gin.Context) {
	provider := c.Param("provider")
	code := c.Query("code")
	state := c.Query("state")

	if errorParam := c.Query("error"); errorParam != "" {
		frameError(c, "OAuthError", errorParam+": "+c.Query("error_description"))
		return
	}

	if !h.service.HasProvider(provider) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unsupported provider"})
		return
	}
	if code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Authorization code is required"})
		return
	}
	if state == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "State parameter is required"})
		return
	}
	if expected, err := c.Cookie(stateCookie); err == nil && expected != state {
		frameError(c, "OAuthError", "state mismatch")
		return
	}
	c.SetCookie(stateCookie, "", -1, "/api/auth", "", h.secure, true)

	resp, err := h.service.HandleCallback(c.Request.Context(), provider, code)
	if err != nil {
		logger.WithContext(c).Component("auth").WithError(err).Warn("OAuth callback failed")
		frameError(c, "Error", err.Error())
		return
	}

	h.setSessionCookies(c, resp)
	framePage(c, gin.H{"type": "authorization_response", "response": resp})
}

func (h *AuthHandler) setSessionCookies(c *gin.Context, resp *AuthHandlerResponse) {
	c.SetCookie(tokenCookie, resp.AccessToken, int(accessTokenTTL.Seconds()), "/", "", h.secure, true)
	c.SetCookie(refreshCookie, resp.RefreshToken, int(refreshTokenTTL.Seconds()), "/", "", h.secure, true)
}

func (h *AuthHandler) clearSessionCookies(c *gin.Context) {
	c.SetCookie(tokenCookie, "", -1, "/", "", h.secure, true)
	c.SetCookie(refreshCookie, "", -1, "/", "", h.secure, true)
}

// refreshTokenFrom reads the token from the JSON body, falling back to the cookie
func refreshTokenFrom(c *gin.Context) string {
	var req RefreshTokenRequest
	if c.Request.ContentLength != 0 {
		_ = c.ShouldBindJSON(&req)
	}
	if token := strings.TrimSpace(req.RefreshToken); token != "" {
		return token
	}
	token, _ := c.Cookie(refreshCookie)
	return token
}

// Refresh handles POST /api/auth/refresh
// @Summary Refresh authentication token
// @Description Rotates the refresh token from the body or the refresh_token cookie and issues a new access token
// @Tags authentication
// @Accept json
// @Produce json
// @Param request body RefreshTokenRequest false "Refresh token, optional when the cookie is set"
// @Success 200 {object} AuthHandlerResponse "Successfully refreshed token"
// @Failure 401 {object} map[string]interface{} "Missing, invalid or expired refresh token"
// @Failure 500 {object} map[string]interface{} "Token refresh failed"
// @Router /api/auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	token := refreshTokenFrom(c)
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error":   "Authentication required",
			"details": "No valid session found. Please authenticate first.",
		})
		return
	}

	resp, err := h.service.RefreshToken(c.Request.Context(), token)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidRefreshToken) || errors.Is(err, apperrors.ErrRefreshTokenExpired) {
			h.clearSessionCookies(c)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Token refresh failed", "details": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Token refresh failed", "details": err.Error()})
		return
	}

	h.setSessionCookies(c, resp)
	c.JSON(http.StatusOK, resp)
}

// Logout handles POST /api/auth/logout
// @Summary Logout user
// @Description Revokes the refresh token and clears session cookies
// @Tags authentication
// @Accept json
// @Produce json
// @Param request body RefreshTokenRequest false "Refresh token, optional when the cookie is set"
// @Success 200 {object} AuthLogoutResponse "Successfully logged out"
// @Failure 500 {object} map[string]interface{} "Logout failed"
// @Router /api/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.service.Logout(c.Request.Context(), refreshTokenFrom(c)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Logout failed", "details": err.Error()})
		return
	}

	h.clearSessionCookies(c)
	c.JSON(http.StatusOK, AuthLogoutResponse{Message: "Logged out successfully"})
}

// ValidateToken returns the claims of a bearer token
// @Summary Validate JWT token
// @Description Validate JWT token and return token claims
// @Tags authentication
// @Produce json
// @Param Authorization header string true "Bearer token to validate"
// @Success 200 {object} AuthValidateResponse "Token is valid with claims"
// @Failure 401 {object} map[string]interface{} "Authorization header required or token invalid"
// @Router /api/auth/validate [post]
func (h *AuthHandler) ValidateToken(c *gin.Context) {
	tokenString, msg := bearerToken(c)
	if msg != "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": msg})
		return
	}

	claims, err := h.service.ValidateJWT(tokenString)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, AuthValidateResponse{Valid: true, Claims: claims})
}

// bearerToken extracts the token from the Authorization header. A non-empty
// msg describes why it is missing.
func bearerToken(c *gin.Context) (token string, msg string) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", "Authorization header is required"
	}
	token = strings.TrimPrefix(authHeader, "Bearer ")
	if token == authHeader || token == "" {
		return "", "Invalid authorization header format"
	}
	return token, ""
}
