package httptransport

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"usercards/internal/platform/health"
	"usercards/internal/platform/middleware"
)

// NewRouter wires all public endpoints with the middleware stack.
func NewRouter(users *UsersHandler, healthHandler *health.Handler, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/", users.handlePage)
	r.Post("/users/refresh", users.handleRefresh)

	healthHandler.Register(r)
	r.Handle("/metrics", promhttp.Handler())

	return r
}
