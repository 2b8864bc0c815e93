package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/saranya-m1904/contract-risk-bot/config"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func authTestRouter(cfg *config.AuthConfig) *gin.Engine {
	router := gin.New()
	router.Use(AuthMiddleware(cfg))
	router.GET("/protected", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"username": GetUsername(c),
			"tenant":   GetTenant(c),
		})
	})
	return router
}

func TestGenerateToken(t *testing.T) {
	cfg := &config.AuthConfig{JWTSecret: "secret", TokenExpireHours: 2}

	token, expiresAt, err := GenerateToken("alice", "tenant1", cfg)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}
	if token == "" {
		t.Error("Expected non-empty token")
	}
	if time.Until(expiresAt) < time.Hour {
		t.Errorf("Expected expiry around 2h away, got %v", expiresAt)
	}
}

func TestAuthMiddleware(t *testing.T) {
	cfg := &config.AuthConfig{JWTSecret: "secret", TokenExpireHours: 1}
	token, _, err := GenerateToken("alice", "tenant1", cfg)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	otherSecret := &config.AuthConfig{JWTSecret: "other", TokenExpireHours: 1}
	badToken, _, _ := GenerateToken("alice", "tenant1", otherSecret)

	tests := []struct {
		name           string
		header         string
		expectedStatus int
	}{
		{"valid token", "Bearer " + token, http.StatusOK},
		{"missing header", "", http.StatusUnauthorized},
		{"malformed header", "Token " + token, http.StatusUnauthorized},
		{"wrong secret", "Bearer " + badToken, http.StatusUnauthorized},
		{"garbage token", "Bearer not.a.jwt", http.StatusUnauthorized},
	}

	router := authTestRouter(cfg)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("Expected status %d, got %d", tt.expectedStatus, w.Code)
			}
		})
	}
}

func TestAuthMiddlewareExpiredToken(t *testing.T) {
	// Negative expiry produces an already-expired token
	cfg := &config.AuthConfig{JWTSecret: "secret", TokenExpireHours: -1}
	token, _, err := GenerateToken("alice", "tenant1", cfg)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	router := authTestRouter(cfg)
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected status 401 for expired token, got %d", w.Code)
	}
}
