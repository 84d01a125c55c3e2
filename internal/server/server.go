package server

import (
	"context"
	"net/http"

	"github.com/maslahat/backend/internal/config"
)

// Server fronts the gin router for the public API. Timeouts come from
// HttpServer config; they bound slow clients, not handler work, which the
// per-request context covers.
type Server struct {
	httpServer *http.Server
}

func NewServer(cfg *config.Config, handler http.Handler) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:         ":" + cfg.HttpServer.Port,
			Handler:      handler,
			ReadTimeout:  cfg.HttpServer.Timeout,
			WriteTimeout: cfg.HttpServer.Timeout,
			IdleTimeout:  cfg.HttpServer.IdleTimeout,
		},
	}
}

func (s *Server) Run() error {
	return s.httpServer.ListenAndServe()
}

// Stop drains in-flight requests until ctx expires. Queue workers are shut
// down separately so accepted verification codes still get dispatched.
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
