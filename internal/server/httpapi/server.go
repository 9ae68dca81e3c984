// Package httpapi exposes the event API over HTTP with JSON bodies.
package httpapi

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/tomocode/my-schedule-app/internal/auth"
	"github.com/tomocode/my-schedule-app/internal/metrics"
	"github.com/tomocode/my-schedule-app/internal/service"
)

// Pinger reports datastore reachability for the health endpoint.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Server wires the event service and the authentication gate into HTTP handlers.
type Server struct {
	log    *zap.Logger
	events service.EventService
	gate   *auth.Gate
	db     Pinger
	met    *metrics.Metrics
}

// New constructs a Server with injected dependencies.
func New(log *zap.Logger, events service.EventService, gate *auth.Gate, db Pinger, met *metrics.Metrics) *Server {
	return &Server{log: log, events: events, gate: gate, db: db, met: met}
}

// Handler builds the full route table. All /api/events routes sit behind the
// authentication gate; /healthz and /metrics do not.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	api := func(h http.HandlerFunc) http.Handler { return s.requireAuth(h) }
	mux.Handle("GET /api/events", api(s.handleList))
	mux.Handle("POST /api/events", api(s.handleCreate))
	mux.Handle("GET /api/events/feed.ics", api(s.handleFeed))
	mux.Handle("GET /api/events/{id}", api(s.handleGet))
	mux.Handle("PUT /api/events/{id}", api(s.handleUpdate))
	mux.Handle("DELETE /api/events/{id}", api(s.handleDelete))

	mux.HandleFunc("GET /healthz", s.handleHealth)
	if s.met != nil {
		mux.Handle("GET /metrics", s.met.Handler())
	}

	return s.recover(s.logging(s.instrument(mux)))
}
