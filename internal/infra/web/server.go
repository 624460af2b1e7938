// File: internal/infra/web/server.go
package web

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"mnogo-rolly-bot/internal/config"
	"mnogo-rolly-bot/internal/usecase"
)

// Server exposes the webhook listener for the storefront backend plus the
// operational endpoints. The backend fires and forgets; delivery problems
// stay on our side of the wire.
type Server struct {
	cfg    *config.WebhookConfig
	relay  usecase.NotifyUseCase
	log    *zerolog.Logger
	server *http.Server
}

func NewServer(cfg *config.WebhookConfig, relay usecase.NotifyUseCase, logger *zerolog.Logger) *Server {
	l := logger.With().Str("component", "WebhookServer").Logger()
	return &Server{
		cfg:   cfg,
		relay: relay,
		log:   &l,
	}
}

// Router builds the handler tree. Kept separate from Start so tests can drive
// it through httptest without binding a port.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Post("/telegram-webhook/new-order", s.handleNewOrder)
	r.Post("/telegram-webhook/status-change", s.handleStatusChange)
	r.Get("/health", s.handleHealth)
	r.Handle("/metrics", promhttp.Handler())

	return Chain(r, TraceID(), RequestLog(s.log), Recover(s.log))
}

func (s *Server) Start() error {
	s.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", s.cfg.Port),
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	s.log.Info().Int("port", s.cfg.Port).Msg("webhook server listening")
	return s.server.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}
