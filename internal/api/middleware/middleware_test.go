package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"onboarding-backend/internal/config"
	"onboarding-backend/internal/metrics"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(r *gin.Engine, method, path string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString("request_id"))
	})

	w := serve(r, http.MethodGet, "/ping", nil)
	generated := w.Header().Get(RequestIDHeader)
	assert.Len(t, generated, 36)
	assert.Equal(t, generated, w.Body.String())

	w = serve(r, http.MethodGet, "/ping", map[string]string{RequestIDHeader: "abc-123"})
	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
	assert.Equal(t, "abc-123", w.Body.String())
}

func TestRecovery(t *testing.T) {
	r := gin.New()
	r.Use(RequestID(), Logger(), Recovery())
	r.GET("/boom", func(c *gin.Context) {
		panic("kaboom")
	})

	w := serve(r, http.MethodGet, "/boom", map[string]string{RequestIDHeader: "req-1"})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Internal server error","request_id":"req-1"}`, w.Body.String())
}

func TestCORS(t *testing.T) {
	t.Run("listed origin", func(t *testing.T) {
		r := gin.New()
		r.Use(CORS(&config.Config{AllowedOrigins: []string{"https://hr.example.com"}}))
		r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

		w := serve(r, http.MethodGet, "/x", map[string]string{"Origin": "https://hr.example.com"})
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "https://hr.example.com", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))

		w = serve(r, http.MethodGet, "/x", map[string]string{"Origin": "https://evil.example.com"})
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("wildcard and preflight", func(t *testing.T) {
		r := gin.New()
		r.Use(CORS(&config.Config{AllowedOrigins: []string{"*"}}))
		r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

		w := serve(r, http.MethodOptions, "/x", map[string]string{"Origin": "https://any.example.com"})
		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Contains(t, w.Header().Get("Access-Control-Allow-Headers"), RequestIDHeader)
	})
}

func TestMetrics(t *testing.T) {
	r := gin.New()
	r.Use(Metrics())
	r.GET("/things/:id", func(c *gin.Context) { c.Status(http.StatusTeapot) })

	serve(r, http.MethodGet, "/things/42", nil)
	serve(r, http.MethodGet, "/things/43", nil)
	serve(r, http.MethodGet, "/nowhere", nil)

	// one series per route template plus one for unmatched paths
	assert.GreaterOrEqual(t, testutil.CollectAndCount(metrics.HTTPRequestDuration), 2)
}
