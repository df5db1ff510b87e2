package handlers

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/undenfinitematrix/Aerochat-Conversation-Logger/internal/cache"
	"github.com/undenfinitematrix/Aerochat-Conversation-Logger/internal/fanout"
	"github.com/undenfinitematrix/Aerochat-Conversation-Logger/internal/logging"
	"github.com/undenfinitematrix/Aerochat-Conversation-Logger/internal/metrics"
	"github.com/undenfinitematrix/Aerochat-Conversation-Logger/internal/storage"
	"github.com/undenfinitematrix/Aerochat-Conversation-Logger/pkg/event"
)

// EventsHandler serves the collector's event API.
type EventsHandler struct {
	apiKey       string
	maxEventSize int64
	recentLimit  int
	store        storage.Store
	cache        *cache.RecentCache
	fanout       fanout.Publisher
	log          *logging.Logger
}

type Options struct {
	APIKey       string
	MaxEventSize int64
	RecentLimit  int
	Store        storage.Store
	Cache        *cache.RecentCache
	Fanout       fanout.Publisher
	Logger       *logging.Logger
}

func NewEventsHandler(opts Options) *EventsHandler {
	if opts.MaxEventSize <= 0 {
		opts.MaxEventSize = 1 << 20
	}
	if opts.RecentLimit <= 0 {
		opts.RecentLimit = 100
	}
	if opts.Cache == nil {
		opts.Cache = cache.Disabled()
	}
	if opts.Fanout == nil {
		opts.Fanout = fanout.NoopPublisher{}
	}
	if opts.Logger == nil {
		opts.Logger = logging.Default()
	}

	return &EventsHandler{
		apiKey:       opts.APIKey,
		maxEventSize: opts.MaxEventSize,
		recentLimit:  opts.RecentLimit,
		store:        opts.Store,
		cache:        opts.Cache,
		fanout:       opts.Fanout,
		log:          opts.Logger,
	}
}

// HandleIngest accepts one JSON event record per POST.
func (h *EventsHandler) HandleIngest(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	if r.Method != http.MethodPost {
		h.sendError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	if !h.authorized(r) {
		metrics.EventsTotal.WithLabelValues("unauthorized").Inc()
		h.sendError(w, http.StatusUnauthorized, "invalid or missing bearer token")
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, h.maxEventSize+1))
	if err != nil {
		h.sendError(w, http.StatusBadRequest, "failed to read body")
		return
	}
	defer r.Body.Close()

	if len(body) == 0 {
		metrics.EventsTotal.WithLabelValues("invalid").Inc()
		h.sendError(w, http.StatusBadRequest, "empty body")
		return
	}

	if int64(len(body)) > h.maxEventSize {
		metrics.EventsTotal.WithLabelValues("oversize").Inc()
		h.sendError(w, http.StatusRequestEntityTooLarge, "event too large")
		return
	}

	var rec event.Record
	if err := json.Unmarshal(body, &rec); err != nil {
		metrics.EventsTotal.WithLabelValues("invalid").Inc()
		h.sendError(w, http.StatusBadRequest, "body is not a JSON object")
		return
	}

	stored := event.NewStored(rec, clientIP(r))

	if err := h.store.Insert(r.Context(), stored); err != nil {
		metrics.EventsTotal.WithLabelValues("error").Inc()
		metrics.StorageErrors.Inc()
		h.log.Error("failed to store event", logging.EventID(stored.ID), logging.Error(err))
		h.sendError(w, http.StatusInternalServerError, "failed to store event")
		return
	}

	// Cache and fan-out are best-effort once the event is stored.
	if err := h.cache.Push(r.Context(), stored); err != nil {
		metrics.CacheErrors.Inc()
		h.log.Warn("failed to cache event", logging.EventID(stored.ID), logging.Error(err))
	}
	if err := h.fanout.Publish(r.Context(), stored); err != nil {
		metrics.FanoutErrors.Inc()
		h.log.Warn("failed to fan out event", logging.EventID(stored.ID), logging.Error(err))
	}

	metrics.EventsTotal.WithLabelValues("ok").Inc()
	metrics.EventBytesTotal.Add(float64(len(body)))
	metrics.IngestDuration.Observe(time.Since(start).Seconds())

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{
		"status":   "ok",
		"event_id": stored.ID,
	})
}

// HandleRecent returns the most recently received events, newest first.
func (h *EventsHandler) HandleRecent(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.sendError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	if !h.authorized(r) {
		h.sendError(w, http.StatusUnauthorized, "invalid or missing bearer token")
		return
	}

	limit := h.recentLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			h.sendError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		if parsed < limit {
			limit = parsed
		}
	}

	events, err := h.recent(r.Context(), limit)
	if err != nil {
		h.log.Error("failed to read recent events", logging.Error(err))
		h.sendError(w, http.StatusInternalServerError, "failed to read events")
		return
	}
	if events == nil {
		events = []*event.Stored{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"count":  len(events),
		"events": events,
	})
}

func (h *EventsHandler) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"status": "healthy",
	})
}

// recent prefers the cache when it is enabled and holds data; the store
// is the fallback and the source of truth.
func (h *EventsHandler) recent(ctx context.Context, limit int) ([]*event.Stored, error) {
	if h.cache.Enabled() {
		events, err := h.cache.Recent(ctx, limit)
		if err == nil && len(events) > 0 {
			return events, nil
		}
		if err != nil {
			h.log.Warn("recent cache read failed, falling back to store", logging.Error(err))
		}
	}
	return h.store.Recent(ctx, limit)
}

func (h *EventsHandler) authorized(r *http.Request) bool {
	if h.apiKey == "" {
		return false
	}
	token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
	if token == r.Header.Get("Authorization") {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(token), []byte(h.apiKey)) == 1
}

func (h *EventsHandler) sendError(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{
		"status": "error",
		"error":  msg,
	})
}

func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		if i := strings.Index(fwd, ","); i >= 0 {
			return strings.TrimSpace(fwd[:i])
		}
		return strings.TrimSpace(fwd)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
