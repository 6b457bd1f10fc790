package app

import (
	"log/slog"
	"net/http"

	"github.com/heartmarshall/heart-approvals/internal/transport/middleware"
	"github.com/heartmarshall/heart-approvals/internal/transport/rest"
	"github.com/heartmarshall/heart-approvals/internal/transport/webhook"
)

// Routes holds the HTTP handlers served by the application.
// A nil Metrics handler disables the metrics endpoint.
type Routes struct {
	Webhook     *webhook.Handler
	Health      *rest.HealthHandler
	Metrics     http.Handler
	MetricsPath string
}

// NewRouter builds the HTTP handler: the webhook, probes and metrics behind
// the request-id, logging and recovery middleware.
func NewRouter(logger *slog.Logger, r Routes) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /webhook", r.Webhook.Verify)
	mux.HandleFunc("POST /webhook", r.Webhook.Receive)

	mux.HandleFunc("GET /live", r.Health.Live)
	mux.HandleFunc("GET /ready", r.Health.Ready)
	mux.HandleFunc("GET /health", r.Health.Health)

	quiet := []string{"/live", "/ready"}
	if r.Metrics != nil && r.MetricsPath != "" {
		mux.Handle("GET "+r.MetricsPath, r.Metrics)
		quiet = append(quiet, r.MetricsPath)
	}

	return middleware.Chain(
		middleware.RequestID(),
		middleware.Logger(logger, quiet...),
		middleware.Recovery(logger),
	)(mux)
}
