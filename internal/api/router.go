// internal/api/router.go
package api

import (
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/practice-partner/backend/internal/metrics"
)

func RegisterRoutes(mux *http.ServeMux, h *Handler) {
	// Interview
	mux.HandleFunc("POST /start", h.startInterview)
	mux.HandleFunc("POST /answer", h.submitAnswer)

	// Banks
	mux.HandleFunc("GET /roles", h.listRoles)

	// UI
	mux.HandleFunc("GET /{$}", h.index)
	mux.HandleFunc("GET /static/placeholder.png", h.placeholder)

	mux.HandleFunc("GET /health", h.health)
}

// NewRouter builds the full HTTP handler: API routes, Prometheus scrape
// endpoint, Swagger UI, and the middleware chain Metrics → Logging → CORS.
// m and gatherer may be nil to disable metrics.
func NewRouter(h *Handler, m *metrics.Metrics, gatherer prometheus.Gatherer, logger *slog.Logger) http.Handler {
	mux := http.NewServeMux()
	RegisterRoutes(mux, h)

	if gatherer != nil {
		mux.Handle("GET /metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}

	// Swagger UI served at /swagger/
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	return Metrics(m)(Logging(logger)(CORS(mux)))
}
