package handlers_test_suite

import (
	"net/http"
	"testing"
	"time"

	handler "github.com/rogerio-castellano/employee-portal/internal/http/handlers"
)

func TestHealthHandler(t *testing.T) {
	r := newRouter()

	w := get(r, "/health")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var resp handler.HealthResult
	if err := decodeBody(w, &resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}

	if resp.Status != "healthy" {
		t.Errorf("expected status 'healthy', got %q", resp.Status)
	}
	if resp.Version != "3.0.0" {
		t.Errorf("expected version '3.0.0', got %q", resp.Version)
	}

	ts, err := time.Parse(time.RFC3339Nano, resp.Timestamp)
	if err != nil {
		t.Fatalf("timestamp %q is not ISO-8601: %v", resp.Timestamp, err)
	}
	if time.Since(ts) > time.Minute || time.Until(ts) > time.Minute {
		t.Errorf("timestamp %v is not close to now", ts)
	}
}

func TestHealthHandler_Idempotent(t *testing.T) {
	r := newRouter()

	var first, second handler.HealthResult
	if err := decodeBody(get(r, "/health"), &first); err != nil {
		t.Fatalf("error decoding first response: %v", err)
	}
	if err := decodeBody(get(r, "/health"), &second); err != nil {
		t.Fatalf("error decoding second response: %v", err)
	}

	first.Timestamp, second.Timestamp = "", ""
	if first != second {
		t.Errorf("expected identical payloads apart from timestamp, got %+v and %+v", first, second)
	}
}

func TestHealthHandler_TrailingSlashAndHead(t *testing.T) {
	r := newRouter()

	if w := get(r, "/health/"); w.Code != http.StatusOK {
		t.Errorf("expected 200 for trailing slash, got %d", w.Code)
	}
	if w := doRequest(r, http.MethodHead, "/health", nil); w.Code != http.StatusOK {
		t.Errorf("expected 200 for HEAD, got %d", w.Code)
	}
}
