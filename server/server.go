// Package server exposes the chat orchestrator over HTTP.
//
// Information Hiding:
// - Route wiring and middleware stack hidden
// - Response envelope encoding hidden
// - Error-to-status mapping hidden
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/safar-ai/safar/chat"
	"github.com/safar-ai/safar/model"
)

// Service is the conversational surface the server exposes. Satisfied by
// *chat.Orchestrator.
type Service interface {
	SendMessage(ctx context.Context, req chat.Request) (chat.Result, error)
	ClearConversation(ctx context.Context, conversationID string) error
	ExportItinerary(ctx context.Context, conversationID string) (model.Itinerary, error)
}

// Server is the HTTP front end.
type Server struct {
	service  Service
	logger   zerolog.Logger
	router   chi.Router
	limiters *clientLimiters
}

// Config holds server construction options.
type Config struct {
	// RateLimitPerMin caps requests per client IP per minute. Zero disables
	// rate limiting.
	RateLimitPerMin float64

	// RateLimitBurst is the short-term burst allowance per client IP.
	RateLimitBurst int

	// Logger receives request-level events. The zero value is a nop logger.
	Logger zerolog.Logger
}

// New creates a server over the given service.
func New(service Service, cfg Config) *Server {
	s := &Server{
		service: service,
		logger:  cfg.Logger,
	}

	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)
	if cfg.RateLimitPerMin > 0 {
		s.limiters = newClientLimiters(cfg.RateLimitPerMin, cfg.RateLimitBurst)
		r.Use(s.limiters.middleware(s.logger))
	}

	r.Get("/health", s.handleHealth)
	r.Route("/api", func(r chi.Router) {
		r.Post("/chat", s.handleChat)
		r.Delete("/conversation/{id}", s.handleClearConversation)
		r.Post("/conversation/{id}/export", s.handleExport)
	})
	s.router = r
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Close releases background resources held by the server. Idempotent.
// Run calls it on shutdown; callers that only use ServeHTTP should call
// it themselves.
func (s *Server) Close() {
	if s.limiters != nil {
		s.limiters.Close()
	}
}

// Run serves on the given port until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) Run(ctx context.Context, port int) error {
	defer s.Close()

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info().Int("port", port).Msg("http server listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown failed: %w", err)
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req chat.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := s.service.SendMessage(r.Context(), req)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeSuccess(w, http.StatusOK, result)
}

func (s *Server) handleClearConversation(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := s.service.ClearConversation(r.Context(), id); err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeSuccess(w, http.StatusOK, map[string]string{"conversationId": id, "status": "cleared"})
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	itinerary, err := s.service.ExportItinerary(r.Context(), id)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeSuccess(w, http.StatusOK, itinerary)
}

// writeServiceError maps orchestrator failures to HTTP statuses.
func (s *Server) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var status int
	switch {
	case errors.Is(err, chat.ErrEmptyMessage):
		status = http.StatusBadRequest
	case errors.Is(err, chat.ErrNoConversation):
		status = http.StatusNotFound
	case errors.Is(err, chat.ErrGatewayTimeout):
		status = http.StatusGatewayTimeout
	case errors.Is(err, chat.ErrGateway):
		status = http.StatusBadGateway
	default:
		status = http.StatusInternalServerError
	}

	if status >= 500 {
		s.logger.Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
	}
	writeError(w, status, err.Error())
}

// envelope is the uniform response shape: success carries data, failure
// carries an error string.
type envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

func writeSuccess(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, envelope{Success: true, Data: data})
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, envelope{Success: false, Error: message})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// requestLogger logs each request with latency and status.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		s.logger.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("duration", time.Since(start)).
			Msg("request")
	})
}
