package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/adelitolak-a11y/restaurant-menu-api/internal/generate"
	"github.com/adelitolak-a11y/restaurant-menu-api/internal/history"
)

func TestHealthCheck(t *testing.T) {
	gin.SetMode(gin.TestMode)

	service := generate.NewService(nil, nil, history.NewInMemoryRepository(), nil, "")
	r := NewRouter(generate.NewHandler(service), []string{"http://localhost:3000"})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
}
