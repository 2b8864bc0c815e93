package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/saranya-m1904/contract-risk-bot/service"
)

func auditRouter(log *service.AuditLog) *gin.Engine {
	router := gin.New()
	router.GET("/audit", NewAuditHandler(log).List)
	return router
}

func TestAuditListEmpty(t *testing.T) {
	log := service.NewAuditLog(filepath.Join(t.TempDir(), "audit_log.json"))
	router := auditRouter(log)

	req := httptest.NewRequest("GET", "/audit", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var response struct {
		Available bool              `json:"available"`
		Entries   []json.RawMessage `json:"entries"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if response.Available {
		t.Error("Expected available=false for missing log")
	}
	if len(response.Entries) != 0 {
		t.Errorf("Expected no entries, got %d", len(response.Entries))
	}
}

func TestAuditListEntries(t *testing.T) {
	log := service.NewAuditLog(filepath.Join(t.TempDir(), "audit_log.json"))
	for _, action := range []string{"Contract analyzed", "PDF report generated"} {
		if err := log.Append(action); err != nil {
			t.Fatalf("Append failed: %v", err)
		}
	}

	router := auditRouter(log)
	req := httptest.NewRequest("GET", "/audit", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var response struct {
		Available bool `json:"available"`
		Entries   []struct {
			Timestamp string `json:"timestamp"`
			Action    string `json:"action"`
		} `json:"entries"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if !response.Available {
		t.Error("Expected available=true")
	}
	if len(response.Entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(response.Entries))
	}
	if response.Entries[0].Action != "Contract analyzed" {
		t.Errorf("Expected entries in append order, got %+v", response.Entries)
	}
}

func TestAuditListCorrupted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audit_log.json")
	if err := os.WriteFile(path, []byte("not json"), 0o644); err != nil {
		t.Fatalf("Failed to seed file: %v", err)
	}

	router := auditRouter(service.NewAuditLog(path))
	req := httptest.NewRequest("GET", "/audit", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("Expected status 500 for corrupted log, got %d", w.Code)
	}
}
