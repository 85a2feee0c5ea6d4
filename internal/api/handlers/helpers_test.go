package handlers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
)

func assertErr(msg string) error {
	return errors.New(msg)
}

// doJSON sends a request with an optional JSON body
func doJSON(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		if raw, ok := body.(string); ok {
			buf.WriteString(raw)
		} else {
			_ = json.NewEncoder(&buf).Encode(body)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// withUser injects the authenticated user the way the auth middleware does
func withUser(email string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("email", email)
		c.Next()
	}
}
