package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"sysconf-keeper/internal/models"
	"sysconf-keeper/services"

	"github.com/gin-gonic/gin"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewAPIController(services.NewSystemService(nil)).RegisterRoutes(router)
	return router
}

/**
 * Test the liveness probe
 */
func TestHealthz(t *testing.T) {
	router := newTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("unexpected status: %v", body["status"])
	}
}

/**
 * Test profile listing
 */
func TestListProfiles(t *testing.T) {
	router := newTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/sysconf/api/v1/profiles", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var profiles []models.Profile
	if err := json.Unmarshal(w.Body.Bytes(), &profiles); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(profiles) != 3 {
		t.Errorf("expected the 3 shipped profiles, got %d", len(profiles))
	}
}

/**
 * Test service listing for an explicit profile
 */
func TestListServices(t *testing.T) {
	router := newTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/sysconf/api/v1/services?profile=server", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var catalog []models.ServiceEntry
	if err := json.Unmarshal(w.Body.Bytes(), &catalog); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	found := false
	for _, svc := range catalog {
		if svc.Name == "backup" && svc.Enabled {
			found = true
		}
	}
	if !found {
		t.Error("server profile should enable backup")
	}
}

/**
 * Test rejecting an unknown profile selector
 */
func TestListServicesUnknownProfile(t *testing.T) {
	router := newTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/sysconf/api/v1/services?profile=desktop", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

/**
 * Test resolving a profile over HTTP
 */
func TestResolveEndpoint(t *testing.T) {
	router := newTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/sysconf/api/v1/resolve",
		strings.NewReader(`{"profile":"workstation"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var resolved models.ResolvedConfig
	if err := json.Unmarshal(w.Body.Bytes(), &resolved); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(resolved.StartupOrder) == 0 {
		t.Error("resolved configuration has no startup order")
	}
}

/**
 * Test the validate endpoint returns the full error list shape
 */
func TestValidateEndpoint(t *testing.T) {
	router := newTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/sysconf/api/v1/validate",
		strings.NewReader(`{"profile":"minimal"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body struct {
		Valid  bool                     `json:"valid"`
		Errors []models.ValidationError `json:"errors"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if !body.Valid || len(body.Errors) != 0 {
		t.Errorf("shipped minimal profile should validate cleanly: %v", body.Errors)
	}
}
