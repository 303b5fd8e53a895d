package server

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rogerio-castellano/employee-portal/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func testConfig() *config.Config {
	return &config.Config{
		Port:            0,
		Version:         "3.0.0",
		LogLevel:        "info",
		ShutdownTimeout: 2 * time.Second,
		RateLimitBurst:  3,
	}
}

func TestServe_ServesUntilCancelled(t *testing.T) {
	app, err := NewApp(testConfig(), zap.NewNop())
	require.NoError(t, err)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.Serve(ctx, ln) }()

	client := &http.Client{Transport: &http.Transport{DisableKeepAlives: true}, Timeout: 2 * time.Second}
	resp, err := client.Get("http://" + ln.Addr().String() + "/health")
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "3.0.0", body["version"])

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop after cancel")
	}
}

func TestRun_FailsWhenPortIsTaken(t *testing.T) {
	taken, err := net.Listen("tcp", ":0")
	require.NoError(t, err)
	defer taken.Close()

	cfg := testConfig()
	cfg.Port = taken.Addr().(*net.TCPAddr).Port

	app, err := NewApp(cfg, zap.NewNop())
	require.NoError(t, err)

	err = app.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "listen")
}

func TestServe_StartsLimiterCleanupAndStops(t *testing.T) {
	cfg := testConfig()
	cfg.RateLimitRPS = 1

	app, err := NewApp(cfg, zap.NewNop())
	require.NoError(t, err)
	require.NotNil(t, app.limiter)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.Serve(ctx, ln) }()

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop after cancel")
	}
}

func TestNewApp_RateLimitEnabled(t *testing.T) {
	cfg := testConfig()
	cfg.RateLimitRPS = 0.001
	cfg.RateLimitBurst = 1

	app, err := NewApp(cfg, zap.NewNop())
	require.NoError(t, err)

	first := httptest.NewRecorder()
	app.Handler().ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, first.Code)

	second := httptest.NewRecorder()
	app.Handler().ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.JSONEq(t, `{"success":false,"message":"請求過於頻繁，請稍後再試"}`, second.Body.String())
}

func TestNewApp_SwaggerToggle(t *testing.T) {
	cfg := testConfig()

	app, err := NewApp(cfg, zap.NewNop())
	require.NoError(t, err)
	w := httptest.NewRecorder()
	app.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	cfg.SwaggerEnabled = true
	app, err = NewApp(cfg, zap.NewNop())
	require.NoError(t, err)
	w = httptest.NewRecorder()
	app.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Employee Portal API")
	assert.Contains(t, w.Body.String(), "/api/login")
}
