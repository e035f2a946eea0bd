package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/partner-agent/invitecheck/pkg/domain/interfaces"
	"github.com/partner-agent/invitecheck/pkg/utils/apperr"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server represents the HTTP server
type Server struct {
	*http.Server
	router chi.Router
}

// NewServer creates a new HTTP server. gatherer backs /metrics; nil means
// the default prometheus registry.
func NewServer(ctx context.Context, addr string, invitationUC interfaces.Invitation, gatherer prometheus.Gatherer) *Server {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(LoggingMiddleware(ctx))
	router.Use(middleware.Recoverer)

	router.Get("/health", handleHealth)

	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	router.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	invitations := NewInvitationHandler(invitationUC)
	router.Route("/api/invitations", func(r chi.Router) {
		r.Post("/check", invitations.HandleCheck)
		r.Get("/checks", invitations.HandleListChecks)
		r.Get("/checks/{id}", invitations.HandleGetCheck)
	})

	return &Server{
		Server: &http.Server{
			Addr:              addr,
			Handler:           router,
			ReadHeaderTimeout: 15 * time.Second,
		},
		router: router,
	}
}

// handleHealth handles health check requests
func handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "invitecheck",
	})
}

// writeJSON writes v as a JSON response
func writeJSON(ctx context.Context, w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		ctxlog.From(ctx).Error("Failed to encode response", "error", err)
	}
}

// writeError logs err and writes it as a JSON error response with the status
// derived from its tags
func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	apperr.Handle(ctx, err)

	var message string
	if goErr := goerr.Unwrap(err); goErr != nil {
		message = goErr.Error()
	} else {
		message = err.Error()
	}

	writeJSON(ctx, w, apperr.HTTPStatus(err), map[string]string{
		"error": message,
	})
}
