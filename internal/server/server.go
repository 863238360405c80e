// Package server exposes the resize pipeline over HTTP.
//
// Routes:
//
//	POST /resize   — run (or cache-serve) one resize job
//	GET  /healthz  — liveness, pings the object store
package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/imgfit/imgfit/internal/errs"
	"github.com/imgfit/imgfit/internal/logger"
	"github.com/imgfit/imgfit/internal/objstore"
	"github.com/imgfit/imgfit/internal/resizer"
)

// Server routes resize requests to the orchestrator.
type Server struct {
	router chi.Router
	svc    *resizer.Service
	store  objstore.Store
	log    *logger.Logger
}

// New builds the router around svc. The store is only used by the health
// endpoint; the pipeline reaches it through svc.
func New(svc *resizer.Service, store objstore.Store, log *logger.Logger) *Server {
	if log == nil {
		log = logger.New(nil)
	}

	s := &Server{
		svc:   svc,
		store: store,
		log:   log,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.accessLog)

	r.Post("/resize", s.handleResize)
	r.Get("/healthz", s.handleHealthz)

	s.router = r
	return s
}

// Handler returns the HTTP handler for mounting or serving.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) handleResize(w http.ResponseWriter, r *http.Request) {
	var req resizer.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, r, errs.Wrap(errs.ErrKindInvalidInput, "malformed request body", err))
		return
	}

	result, err := s.svc.Resize(r.Context(), req)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Ping(r.Context()); err != nil {
		s.log.ErrorWith("health check failed", err, nil)
		s.writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// writeError maps the error kind to a status and returns only the error's
// own message; driver-level causes stay in the log.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)

	msg := "internal error"
	var e *errs.Error
	if errors.As(err, &e) {
		msg = e.Message
	}

	if status >= http.StatusInternalServerError {
		s.log.ErrorWith("request failed", err, map[string]any{
			"status":     status,
			"request_id": middleware.GetReqID(r.Context()),
		})
	} else {
		s.log.With().
			Str("request_id", middleware.GetReqID(r.Context())).
			Int("status", status).
			Err(err).
			Logger().
			Debug("request rejected")
	}

	s.writeJSON(w, status, map[string]string{"error": msg})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.log.ErrorWith("failed to encode response", err, nil)
	}
}

// statusFor picks the HTTP status for an error kind. Each pipeline failure
// cause has exactly one kind, so this table is the whole mapping.
func statusFor(err error) int {
	switch errs.KindOf(err) {
	case errs.ErrKindInvalidInput, errs.ErrKindInvalidURL, errs.ErrKindInvalidDimensions:
		return http.StatusBadRequest
	case errs.ErrKindNotFound:
		return http.StatusNotFound
	case errs.ErrKindDecodeFailed, errs.ErrKindEncodeFailed:
		return http.StatusUnprocessableEntity
	case errs.ErrKindStoreFailed, errs.ErrKindPermissionDenied:
		return http.StatusBadGateway
	case errs.ErrKindTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// accessLog writes one structured line per request and attaches the logger
// to the request context.
func (s *Server) accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r.WithContext(s.log.WithContext(r.Context())))

		s.log.HTTPEvent().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Str("request_id", middleware.GetReqID(r.Context())).
			Int("status", ww.Status()).
			Int("bytes", ww.BytesWritten()).
			Dur("duration", time.Since(start)).
			Msg("request")
	})
}
