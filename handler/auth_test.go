package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/saranya-m1904/contract-risk-bot/config"
)

func testAuthConfig() *config.Config {
	return &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:        "test-secret",
			TokenExpireHours: 1,
		},
		Users: []config.User{
			{Username: "alice", Password: "secret", Tenant: "tenant1"},
		},
	}
}

func TestLogin(t *testing.T) {
	handler := NewAuthHandler(testAuthConfig())
	router := gin.New()
	router.POST("/login", handler.Login)

	tests := []struct {
		name           string
		body           map[string]string
		expectedStatus int
	}{
		{"valid credentials", map[string]string{"username": "alice", "password": "secret"}, http.StatusOK},
		{"wrong password", map[string]string{"username": "alice", "password": "nope"}, http.StatusUnauthorized},
		{"unknown user", map[string]string{"username": "mallory", "password": "secret"}, http.StatusUnauthorized},
		{"missing fields", map[string]string{"username": "alice"}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, _ := json.Marshal(tt.body)
			req := httptest.NewRequest("POST", "/login", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("Expected status %d, got %d: %s", tt.expectedStatus, w.Code, w.Body.String())
			}

			if tt.expectedStatus == http.StatusOK {
				var resp LoginResponse
				if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
					t.Fatalf("Failed to parse response: %v", err)
				}
				if resp.Token == "" {
					t.Error("Expected non-empty token")
				}
				if resp.Tenant != "tenant1" {
					t.Errorf("Expected tenant1, got %s", resp.Tenant)
				}
			}
		})
	}
}

func TestGetCurrentUser(t *testing.T) {
	handler := NewAuthHandler(testAuthConfig())
	router := gin.New()
	router.GET("/me", func(c *gin.Context) {
		c.Set("username", "alice")
		c.Set("tenant", "tenant1")
		handler.GetCurrentUser(c)
	})

	req := httptest.NewRequest("GET", "/me", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if resp["username"] != "alice" || resp["tenant"] != "tenant1" {
		t.Errorf("Unexpected response: %+v", resp)
	}
}
