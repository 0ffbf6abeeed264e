// Package server exposes the assessment over HTTP.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jayvaglio/online-presence-app/internal/common/config"
	"github.com/jayvaglio/online-presence-app/internal/common/errors"
	"github.com/jayvaglio/online-presence-app/internal/common/logger"
	"github.com/jayvaglio/online-presence-app/internal/common/observability"
	"github.com/jayvaglio/online-presence-app/internal/presence/assess"
)

const requestIDHeader = "X-Request-ID"

type Server struct {
	config  config.Config
	handler *assess.Handler
	obs     *observability.Observability
	logger  logger.Logger
	httpSrv *http.Server
}

func New(cfg config.Config, handler *assess.Handler, obs *observability.Observability, log logger.Logger) *Server {
	return &Server{
		config:  cfg,
		handler: handler,
		obs:     obs,
		logger:  log.WithFields(map[string]interface{}{"component": "server"}),
	}
}

// Routes builds the handler tree. Exposed separately so tests can drive the
// server through httptest without binding a port.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/presence/search", s.handleSearch)
	mux.HandleFunc("/healthz", s.handleHealth)
	mux.Handle("/metrics", promhttp.Handler())
	return s.withRequestID(mux)
}

// Start binds the listening socket and serves until Shutdown.
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Server.Host, s.config.Server.Port)
	s.httpSrv = &http.Server{
		Addr:         addr,
		Handler:      s.Routes(),
		ReadTimeout:  msOrDefault(s.config.Server.ReadTimeout, 15*time.Second),
		WriteTimeout: msOrDefault(s.config.Server.WriteTimeout, 30*time.Second),
	}

	s.logger.Info("http server starting", map[string]interface{}{"address": addr})
	if err := s.httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func msOrDefault(ms int, fallback time.Duration) time.Duration {
	if ms <= 0 {
		return fallback
	}
	return time.Duration(ms) * time.Millisecond
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpSrv == nil {
		return nil
	}
	return s.httpSrv.Shutdown(ctx)
}

func (s *Server) withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(requestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		w.Header().Set(requestIDHeader, requestID)
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	start := time.Now()
	requestID := w.Header().Get(requestIDHeader)
	log := s.logger.WithFields(map[string]interface{}{"requestId": requestID})

	var input assess.Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		log.Warn("request body decode failed", map[string]interface{}{"error": err.Error()})
		s.recordRequest(r, http.StatusBadRequest, start)
		s.writeError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	out, err := s.handler.Execute(r.Context(), &input)
	if err != nil {
		status, message := s.mapError(err)
		log.Warn("assessment failed", map[string]interface{}{
			"status": status,
			"error":  err.Error(),
		})
		s.recordRequest(r, status, start)
		s.writeError(w, r, status, message)
		return
	}

	s.recordRequest(r, http.StatusOK, start)
	s.writeJSON(w, http.StatusOK, out.Report)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"service": s.config.App.Name,
		"version": s.config.App.Version,
	})
}

// mapError translates a standard error to its HTTP status and the message
// safe to put on the wire. Anything unrecognized becomes an opaque 500.
func (s *Server) mapError(err error) (int, string) {
	std := errors.AsStandard(err)
	message := std.PublicMessage
	if message == "" {
		message = "internal error"
	}
	return errors.HTTPStatus(std.Code), message
}

func (s *Server) recordRequest(r *http.Request, status int, start time.Time) {
	if s.obs == nil {
		return
	}
	s.obs.RecordRequest(r.Context(), r.URL.Path, fmt.Sprintf("%d", status))
	s.obs.RecordRequestDuration(r.Context(), r.URL.Path, time.Since(start))
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("response encode failed", map[string]interface{}{"error": err.Error()})
	}
}

func (s *Server) writeError(w http.ResponseWriter, _ *http.Request, status int, message string) {
	s.writeJSON(w, status, map[string]string{"error": message})
}
