package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/undenfinitematrix/Aerochat-Conversation-Logger/internal/handlers"
)

// NewRouter constructs a ServeMux with collector API routes registered.
func NewRouter(h *handlers.EventsHandler) http.Handler {
	mux := http.NewServeMux()

	// Event API
	mux.HandleFunc("/api/v1/events", h.HandleIngest)
	mux.HandleFunc("/api/v1/events/recent", h.HandleRecent)

	// Health endpoint
	mux.HandleFunc("/healthz", h.Health)

	// Prometheus metrics
	mux.Handle("/metrics", promhttp.Handler())

	return mux
}
