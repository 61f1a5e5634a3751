package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"
)

// Server is the HTTP server for the storefront API
type Server struct {
	app    *App
	server *http.Server
}

// NewServer wires the router into an http.Server listening on cfg.Addr()
func NewServer(app *App) *Server {
	return &Server{
		app: app,
		server: &http.Server{
			Addr:              app.Config.Addr(),
			Handler:           NewRouter(app),
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      30 * time.Second,
			IdleTimeout:       120 * time.Second,
		},
	}
}

// Start listens until Shutdown is called. It returns http.ErrServerClosed
// after a graceful shutdown.
func (s *Server) Start() error {
	slog.Info("starting shop bazar server",
		"addr", s.server.Addr,
		"store", s.app.Config.Store,
		"cart_require_auth", s.app.Config.CartRequireAuth,
	)
	return s.server.ListenAndServe()
}

// Shutdown stops accepting requests, drains in-flight ones and closes the app
func (s *Server) Shutdown(ctx context.Context) error {
	slog.Info("shutting down server...")

	if err := s.server.Shutdown(ctx); err != nil {
		return err
	}
	return s.app.Close(ctx)
}
