package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"day-planner/pkg/log"
)

func newRouter(mw Middleware) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(mw.RequestID(), mw.RateLimit())
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, log.RequestIDFromContext(c.Request.Context()))
	})
	return r
}

func TestRequestID(t *testing.T) {
	r := newRouter(New(log.NewNop(), 0))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(HeaderRequestID, "abc-123")
	r.ServeHTTP(w, req)
	if w.Body.String() != "abc-123" || w.Header().Get(HeaderRequestID) != "abc-123" {
		t.Errorf("expected propagated id, got body=%q header=%q", w.Body.String(), w.Header().Get(HeaderRequestID))
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	if len(w.Body.String()) != 36 || w.Header().Get(HeaderRequestID) != w.Body.String() {
		t.Errorf("expected generated uuid, got %q", w.Body.String())
	}
}

func TestRateLimit(t *testing.T) {
	// 10/min gives a burst of one.
	r := newRouter(New(log.NewNop(), 10))

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}
	if codes[0] != http.StatusOK || codes[1] != http.StatusTooManyRequests || codes[2] != http.StatusTooManyRequests {
		t.Errorf("unexpected status codes %v", codes)
	}

	// Other clients have their own bucket.
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = "10.0.0.2:1234"
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("expected 200 for another client, got %d", w.Code)
	}
}

func TestRateLimit_Disabled(t *testing.T) {
	r := newRouter(New(log.NewNop(), 0))
	for i := 0; i < 20; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("request %d: got %d", i, w.Code)
		}
	}
}
