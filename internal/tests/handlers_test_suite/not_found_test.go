package handlers_test_suite

import (
	"net/http"
	"strings"
	"testing"
)

func TestNotFoundHandler(t *testing.T) {
	r := newRouter()

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/unknown-path"},
		{http.MethodGet, "/nonexistent"},
		{http.MethodGet, "/api"},
		{http.MethodGet, "/api/products/1"},
		{http.MethodPost, "/nonexistent"},
		{http.MethodPost, "/health"},
		{http.MethodDelete, "/api/products"},
		{http.MethodPut, "/api/login"},
		{http.MethodPost, "/dashboard"},
		{http.MethodPatch, "/"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			w := doRequest(r, tt.method, tt.path, nil)

			if w.Code != http.StatusNotFound {
				t.Fatalf("expected 404 Not Found, got %d", w.Code)
			}

			expected := `{"success":false,"message":"端點未找到"}`
			if strings.TrimSpace(w.Body.String()) != expected {
				t.Errorf("expected body %s, got %s", expected, w.Body.String())
			}
		})
	}
}

func TestSwaggerDisabledByDefault(t *testing.T) {
	r := newRouter()

	if w := get(r, "/swagger/index.html"); w.Code != http.StatusNotFound {
		t.Errorf("expected 404 Not Found, got %d", w.Code)
	}
}
