// Package server exposes a Bot over HTTP.
package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/ourstudio-se/phonehub"
	"github.com/ourstudio-se/phonehub/session"
	"github.com/ourstudio-se/phonehub/tools"
)

// Bot is the part of *phonehub.Bot the server needs.
type Bot interface {
	Chat(ctx context.Context, req phonehub.ChatRequest) (*phonehub.ChatResponse, error)
	Session(ctx context.Context, id string) (*session.State, error)
	DeleteSession(ctx context.Context, id string) error
	Tools() []tools.Definition
	ExecuteTool(ctx context.Context, name string, input tools.Input) (any, error)
}

// Server is an HTTP server for the bot
type Server struct {
	router *chi.Mux
	bot    Bot
	logger *slog.Logger
}

// Config for the server
type Config struct {
	CORSOrigins []string

	// Logger for handler errors.
	// Optional - defaults to slog.Default().
	Logger *slog.Logger
}

// New creates a new HTTP server
func New(bot Bot, cfg Config) *Server {
	s := &Server{
		router: chi.NewRouter(),
		bot:    bot,
		logger: cfg.Logger,
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}

	s.setupMiddleware(cfg)
	s.setupRoutes()

	return s
}

func (s *Server) setupMiddleware(cfg Config) {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Timeout(60 * time.Second))

	origins := cfg.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
}

func (s *Server) setupRoutes() {
	s.router.Get("/health", s.healthHandler)

	s.router.Route("/api/v1", func(r chi.Router) {
		r.Post("/chat", s.chatHandler)
		r.Get("/sessions/{id}", s.getSessionHandler)
		r.Delete("/sessions/{id}", s.deleteSessionHandler)
		r.Get("/tools", s.listToolsHandler)
		r.Post("/tools/{name}", s.executeToolHandler)
	})
}

// Handler returns the HTTP handler
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe serves on addr until ctx is cancelled, then drains
// in-flight requests.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
