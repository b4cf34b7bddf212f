package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/anushka369/Marketing-Mavericks-Agent/internal/model/brand"
)

func TestHealthEndpoint(t *testing.T) {
	router := NewRouter(brand.NewMemoryStore(), nil, Options{})

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var payload map[string]string
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if payload["status"] != "ok" {
		t.Fatalf("unexpected status: %q", payload["status"])
	}
	if payload["service"] != "marketing-mavericks-agent" {
		t.Fatalf("unexpected service name: %q", payload["service"])
	}
	if payload["timestamp"] == "" {
		t.Fatal("missing timestamp")
	}
}

func TestChatUnavailableWithoutGenerator(t *testing.T) {
	router := NewRouter(brand.NewMemoryStore(), nil, Options{})

	resp := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(`{"message":"hi"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), `"success":false`) {
		t.Fatalf("expected failure envelope, got %s", resp.Body.String())
	}
}

func TestSessionRoutesMounted(t *testing.T) {
	store := brand.NewMemoryStore()
	router := NewRouter(store, nil, Options{})

	resp := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/session/s1", strings.NewReader(`{"brandName":"Acme"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	if stored, ok := store.Get("s1"); !ok || stored.BrandName != "Acme" {
		t.Fatalf("context not stored via session route: %+v", stored)
	}
}

func TestUnknownPathWithoutStaticServing(t *testing.T) {
	router := NewRouter(brand.NewMemoryStore(), nil, Options{})

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/anything", nil))

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 outside production mode, got %d", resp.Code)
	}
}
