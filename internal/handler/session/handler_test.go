package session

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/anushka369/Marketing-Mavericks-Agent/internal/model/brand"
)

func setupRouter() (*chi.Mux, *brand.MemoryStore) {
	store := brand.NewMemoryStore()
	handler := New(store)

	r := chi.NewRouter()
	handler.RegisterRoutes(r)
	return r, store
}

func do(t *testing.T, r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewReader([]byte(body)))
		req.Header.Set("Content-Type", "application/json")
	}
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func TestGetMissingSession(t *testing.T) {
	r, _ := setupRouter()

	if resp := do(t, r, http.MethodGet, "/session/nope", ""); resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
}

func TestReplaceThenGet(t *testing.T) {
	r, store := setupRouter()

	resp := do(t, r, http.MethodPut, "/session/s1", `{"brandName": "TechCorp"}`)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	stored, ok := store.Get("s1")
	if !ok || stored.BrandName != "TechCorp" {
		t.Fatalf("unexpected stored context: %+v ok=%v", stored, ok)
	}

	get := do(t, r, http.MethodGet, "/session/s1", "")
	if get.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", get.Code)
	}
	var payload struct {
		BrandContext brand.Context `json:"brandContext"`
	}
	if err := json.Unmarshal(get.Body.Bytes(), &payload); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if payload.BrandContext.BrandName != "TechCorp" {
		t.Fatalf("unexpected context: %+v", payload.BrandContext)
	}
}

func TestMergeKeepsExistingFields(t *testing.T) {
	r, store := setupRouter()
	store.Set("s1", brand.Context{BrandName: "TechCorp", BrandVoice: "bold"})

	resp := do(t, r, http.MethodPatch, "/session/s1", `{"industry": "retail"}`)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	stored, _ := store.Get("s1")
	want := brand.Context{BrandName: "TechCorp", BrandVoice: "bold", Industry: "retail"}
	if stored != want {
		t.Fatalf("unexpected merge result: %+v", stored)
	}
}

func TestDeleteClearsContext(t *testing.T) {
	r, store := setupRouter()
	store.Set("s1", brand.Context{BrandName: "TechCorp"})

	if resp := do(t, r, http.MethodDelete, "/session/s1", ""); resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if store.Has("s1") {
		t.Fatal("record should be gone")
	}
	if resp := do(t, r, http.MethodDelete, "/session/s1", ""); resp.Code != http.StatusNotFound {
		t.Fatalf("second delete should 404, got %d", resp.Code)
	}
}
