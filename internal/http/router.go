package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	_ "github.com/rogerio-castellano/employee-portal/docs"
	"github.com/rogerio-castellano/employee-portal/internal/http/handlers"
	rl "github.com/rogerio-castellano/employee-portal/internal/http/rate_limiter"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"
)

// Options toggles the optional parts of the router. The zero value serves the
// plain route table without rate limiting or API docs.
type Options struct {
	Logger  *zap.Logger
	Limiter *rl.Limiter
	Swagger bool
}

func NewRouter(h *handlers.Handlers, opts Options) http.Handler {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(RequestLogger(logger))
	r.Use(Recoverer(logger))
	if opts.Limiter != nil {
		r.Use(opts.Limiter.Middleware)
	}
	r.Use(middleware.StripSlashes)
	r.Use(middleware.GetHead)

	r.Get("/health", h.HealthHandler)
	r.Get("/", h.IndexPageHandler)
	r.Get("/dashboard", h.DashboardPageHandler)
	r.Get("/api/products", h.GetProductsHandler)
	r.Get("/api/login", h.LoginPageHandler)
	r.Post("/api/login", h.LoginHandler)

	if opts.Swagger {
		r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	}

	r.NotFound(handlers.NotFoundHandler)
	r.MethodNotAllowed(handlers.NotFoundHandler)
	return r
}
