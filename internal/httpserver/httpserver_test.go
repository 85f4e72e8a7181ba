package httpserver

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"

	"day-planner/internal/planner"
	"day-planner/pkg/log"
)

func TestNew_Validate(t *testing.T) {
	uc := planner.NewMockUseCase(gomock.NewController(t))

	tests := []struct {
		name string
		l    log.Logger
		cfg  Config
		ok   bool
	}{
		{"valid", log.NewNop(), Config{Port: 8080, Mode: gin.TestMode, PlannerUseCase: uc}, true},
		{"missing logger", nil, Config{Port: 8080, Mode: gin.TestMode, PlannerUseCase: uc}, false},
		{"missing port", log.NewNop(), Config{Mode: gin.TestMode, PlannerUseCase: uc}, false},
		{"missing use case", log.NewNop(), Config{Port: 8080, Mode: gin.TestMode}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.l, tt.cfg)
			if (err == nil) != tt.ok {
				t.Errorf("New() error = %v, want ok=%v", err, tt.ok)
			}
		})
	}
}

func TestRoutes(t *testing.T) {
	uc := planner.NewMockUseCase(gomock.NewController(t))
	srv, err := New(log.NewNop(), Config{Port: 8080, Mode: gin.TestMode, PlannerUseCase: uc, DefaultTimeZone: "UTC"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	srv.mapHandlers()

	for _, path := range []string{"/health", "/ready", "/live"} {
		w := httptest.NewRecorder()
		srv.gin.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		if w.Code != http.StatusOK {
			t.Errorf("GET %s: got %d", path, w.Code)
		}
		if w.Header().Get("X-Request-ID") == "" {
			t.Errorf("GET %s: missing request id header", path)
		}
	}

	w := httptest.NewRecorder()
	srv.gin.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/plans/generate", nil))
	if w.Code != http.StatusNotFound && w.Code != http.StatusMethodNotAllowed {
		t.Errorf("GET on POST-only route: got %d", w.Code)
	}
}
