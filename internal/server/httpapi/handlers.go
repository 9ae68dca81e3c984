package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/tomocode/my-schedule-app/internal/auth"
	"github.com/tomocode/my-schedule-app/internal/convert"
	"github.com/tomocode/my-schedule-app/internal/errs"
	"github.com/tomocode/my-schedule-app/internal/ics"
	"github.com/tomocode/my-schedule-app/internal/validate"
)

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}
	events, err := s.events.List(r.Context(), userID)
	if err != nil {
		s.writeFailure(w, r, "list events", err)
		return
	}
	writeData(w, http.StatusOK, convert.ToWireList(events))
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}
	e, err := s.events.Get(r.Context(), userID, r.PathValue("id"))
	if err != nil {
		s.writeFailure(w, r, "get event", err)
		return
	}
	writeData(w, http.StatusOK, convert.ToWire(*e))
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}
	in, ok := decodeInput(w, r)
	if !ok {
		return
	}
	e, err := s.events.Create(r.Context(), userID, in)
	if err != nil {
		s.writeFailure(w, r, "create event", err)
		return
	}
	writeData(w, http.StatusCreated, convert.ToWire(*e))
}

func (s *Server) handleUpdate(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}
	in, ok := decodeInput(w, r)
	if !ok {
		return
	}
	e, err := s.events.Update(r.Context(), userID, r.PathValue("id"), in)
	if err != nil {
		s.writeFailure(w, r, "update event", err)
		return
	}
	writeData(w, http.StatusOK, convert.ToWire(*e))
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}
	e, err := s.events.Delete(r.Context(), userID, r.PathValue("id"))
	if err != nil {
		s.writeFailure(w, r, "delete event", err)
		return
	}
	writeData(w, http.StatusOK, convert.ToWire(*e))
}

// handleFeed renders the caller's events as an iCalendar document so any
// calendar client can subscribe to it.
func (s *Server) handleFeed(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}
	events, err := s.events.List(r.Context(), userID)
	if err != nil {
		s.writeFailure(w, r, "feed events", err)
		return
	}
	body, err := ics.Feed(events)
	if err != nil {
		s.writeFailure(w, r, "render feed", err)
		return
	}
	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if s.db != nil {
		if err := s.db.Ping(r.Context()); err != nil {
			s.log.Warn("health ping failed", zap.Error(err))
			writeError(w, http.StatusServiceUnavailable, "datastore unreachable")
			return
		}
	}
	writeData(w, http.StatusOK, map[string]string{"status": "ok"})
}

// decodeInput parses the JSON body; malformed JSON is a 400.
func decodeInput(w http.ResponseWriter, r *http.Request) (validate.Input, bool) {
	var in validate.Input
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return validate.Input{}, false
	}
	return in, true
}

// writeFailure translates errors to the envelope at the operation boundary.
// Raw datastore errors never reach the client: anything unclassified is
// logged in full and surfaced as a generic 500.
func (s *Server) writeFailure(w http.ResponseWriter, r *http.Request, op string, err error) {
	var verr *validate.Error
	switch {
	case errors.Is(err, errs.ErrUnauthenticated):
		writeError(w, http.StatusUnauthorized, "authentication required")
	case errors.Is(err, errs.ErrNotFound):
		writeError(w, http.StatusNotFound, "event not found")
	case errors.As(err, &verr):
		writeError(w, http.StatusBadRequest, verr.Error())
	default:
		s.log.Error(op,
			zap.Error(err),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
		)
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}
