// Package server wires the seed repositories, handlers and router together and
// runs the HTTP listener until its context is cancelled.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/rogerio-castellano/employee-portal/internal/config"
	api "github.com/rogerio-castellano/employee-portal/internal/http"
	"github.com/rogerio-castellano/employee-portal/internal/http/handlers"
	rl "github.com/rogerio-castellano/employee-portal/internal/http/rate_limiter"
	"github.com/rogerio-castellano/employee-portal/internal/repo"
	"go.uber.org/zap"
)

const visitorCleanupInterval = time.Minute

type App struct {
	config  *config.Config
	logger  *zap.Logger
	handler http.Handler
	limiter *rl.Limiter
}

// NewApp builds the service from the built-in seed data.
func NewApp(cfg *config.Config, logger *zap.Logger) (*App, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	accounts, products, err := repo.NewSeededRepositories()
	if err != nil {
		return nil, fmt.Errorf("seed data: %w", err)
	}

	h := handlers.NewHandlers(accounts, products, cfg.Version, logger)

	var limiter *rl.Limiter
	if cfg.RateLimitEnabled() {
		limiter = rl.New(cfg.RateLimitRPS, cfg.RateLimitBurst, http.HandlerFunc(handlers.TooManyRequestsHandler))
	}

	router := api.NewRouter(h, api.Options{
		Logger:  logger,
		Limiter: limiter,
		Swagger: cfg.SwaggerEnabled,
	})

	return &App{config: cfg, logger: logger, handler: router, limiter: limiter}, nil
}

// Handler exposes the fully wired router.
func (app *App) Handler() http.Handler {
	return app.handler
}

// Run binds the configured port and serves until ctx is cancelled. A bind
// failure is returned immediately.
func (app *App) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", app.config.Addr())
	if err != nil {
		return fmt.Errorf("listen %s: %w", app.config.Addr(), err)
	}
	return app.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled, then drains
// in-flight requests for up to the configured shutdown timeout.
func (app *App) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           app.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if app.limiter != nil {
		go app.limiter.StartVisitorCleanupLoop(ctx, visitorCleanupInterval)
	}

	errCh := make(chan error, 1)
	go func() {
		app.logger.Info("server running", zap.String("addr", ln.Addr().String()), zap.String("version", app.config.Version))
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	app.logger.Info("shutting down server")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), app.config.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	<-errCh
	return nil
}
