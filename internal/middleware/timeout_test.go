package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/anushka369/Marketing-Mavericks-Agent/internal/middleware"
)

func TestResponseTimeoutPassesThroughFastHandler(t *testing.T) {
	handler := middleware.ResponseTimeout(time.Second)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Fast", "yes")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/", nil))

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.Code)
	}
	if resp.Header().Get("X-Fast") != "yes" {
		t.Fatal("handler headers must be preserved")
	}
	if !strings.Contains(resp.Body.String(), `"ok":true`) {
		t.Fatalf("handler body must be preserved, got %q", resp.Body.String())
	}
}

func TestResponseTimeoutAnswers408WhenDeadlineWins(t *testing.T) {
	handler := middleware.ResponseTimeout(20*time.Millisecond)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, httptest.NewRequest(http.MethodPost, "/", nil))

	if resp.Code != http.StatusRequestTimeout {
		t.Fatalf("expected 408, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), `"success":false`) {
		t.Fatalf("expected failure envelope, got %q", resp.Body.String())
	}
}

func TestCORSPreflight(t *testing.T) {
	wrapped := middleware.CORS(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("preflight must not reach the handler")
	}))

	resp := httptest.NewRecorder()
	wrapped.ServeHTTP(resp, httptest.NewRequest(http.MethodOptions, "/api/chat", nil))

	if resp.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", resp.Code)
	}
	if resp.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Fatal("missing CORS origin header")
	}
}
