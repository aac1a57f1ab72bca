package api

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func frontendRouter(indexPath string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/", NewFrontendHandler(indexPath).Index)
	return router
}

func TestFrontendServesIndexFile(t *testing.T) {
	indexPath := filepath.Join(t.TempDir(), "index.html")
	page := "<!DOCTYPE html><html><body>diet planner</body></html>"
	if err := os.WriteFile(indexPath, []byte(page), 0o644); err != nil {
		t.Fatalf("write index file: %v", err)
	}

	w := httptest.NewRecorder()
	frontendRouter(indexPath).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if w.Body.String() != page {
		t.Errorf("body = %q, want the index file content", w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("Content-Type = %q, want text/html", ct)
	}
}

func TestFrontendFallbackPage(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope", "index.html")

	w := httptest.NewRecorder()
	frontendRouter(missing).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	body := w.Body.String()
	if !strings.Contains(body, "Everytime Fitness - Setup Required") {
		t.Errorf("fallback page missing setup title:\n%s", body)
	}
	if !strings.Contains(body, "/api/generate-diet-plan") {
		t.Errorf("fallback page does not point at the API endpoint:\n%s", body)
	}
}
