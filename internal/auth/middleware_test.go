package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthRequiredStoresIdentity(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := NewJWTManager("test-secret", time.Hour)

	token, err := m.GenerateAccessToken("user-123", "pro@padelarena.cm", "coach")
	require.NoError(t, err)

	var gotID, gotEmail, gotRole string
	r := gin.New()
	r.GET("/whoami", AuthRequired(m), func(c *gin.Context) {
		gotID = GetUserID(c)
		gotEmail = GetUserEmail(c)
		gotRole = GetUserRole(c)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest("GET", "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "user-123", gotID)
	assert.Equal(t, "pro@padelarena.cm", gotEmail)
	assert.Equal(t, "coach", gotRole)
}

func TestAuthRequiredRejectsBadHeaders(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := NewJWTManager("test-secret", time.Hour)

	r := gin.New()
	r.GET("/whoami", AuthRequired(m), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	tests := []struct {
		name   string
		header string
	}{
		{name: "missing header", header: ""},
		{name: "not a bearer scheme", header: "Basic abc"},
		{name: "garbage token", header: "Bearer not.a.token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/whoami", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}
