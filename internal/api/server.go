// Copyright (c) 2026 HeroFlicks. All rights reserved.
// Author: vilian.dp@gmail.com

/*
Package api wires together the HTTP router, middleware chain, and all
domain handlers into a runnable [http.Server].

Architecture:

  - This package is the topmost Presentation layer boundary.
  - It acts as the central composition root for the HTTP transport framework (chi router).
  - Only this package and cmd/api are allowed to import net/http server primitives.
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/viliandp/HeroFlicks-BackEnd/internal/catalog/comic"
	"github.com/viliandp/HeroFlicks-BackEnd/internal/catalog/tag"
	"github.com/viliandp/HeroFlicks-BackEnd/internal/library/list"
	"github.com/viliandp/HeroFlicks-BackEnd/internal/platform/config"
	"github.com/viliandp/HeroFlicks-BackEnd/internal/platform/constants"
	"github.com/viliandp/HeroFlicks-BackEnd/internal/platform/middleware"
	"github.com/viliandp/HeroFlicks-BackEnd/internal/social/comment"
	"github.com/viliandp/HeroFlicks-BackEnd/internal/social/like"
	"github.com/viliandp/HeroFlicks-BackEnd/internal/social/pending"
	"github.com/viliandp/HeroFlicks-BackEnd/internal/users/auth"
)

// # Server Definitions

// Server wraps the chi router and the [http.Server].
//
// It is constructed once in main.go with all dependencies injected.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	log        *slog.Logger
}

// # Handler Registry

// Handlers groups all domain-specific HTTP handler sets.
//
// # Usage
//
// New domains add a field here — no other change to server.go is required.
type Handlers struct {
	// Liveness is the /health handler — always returns 200 if process is alive.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler — returns 200 when all deps are healthy.
	Readiness http.HandlerFunc

	// Auth handles registration, login, and session rotation.
	Auth *auth.Handler

	// Comic handles the catalogue, discovery feeds, and uploads.
	Comic *comic.Handler

	// Tag handles the flat taxonomy.
	Tag *tag.Handler

	// Like and Pending handle the per-comic markers.
	Like    *like.Handler
	Pending *pending.Handler

	// Comment handles reviews and ratings.
	Comment *comment.Handler

	// List handles user-owned comic lists.
	List *list.Handler
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups.
func NewServer(context context.Context, cfg *config.Config, log *slog.Logger, verifier middleware.TokenVerifier, h Handlers) *Server {
	r := chi.NewRouter()

	// # Middleware Chain
	// Global middleware applied in order of execution.
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(middleware.RateLimit(context, cfg.RateLimitRPS, cfg.RateLimitBurst))
	r.Use(middleware.PanicRecovery(log))
	r.Use(middleware.CORS(cfg, cfg.ExtraOrigins))
	r.Use(middleware.Authenticate(verifier))
	r.Use(chimw.CleanPath)

	// # Infrastructure Endpoints
	// Unauthenticated health probes for container orchestration.
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)

	// # Application API
	r.Route("/api", func(api chi.Router) {
		api.Mount("/auth", h.Auth.Routes())
		api.Mount("/tags", h.Tag.Routes())
		api.Mount("/comments", h.Comment.Routes())
		api.Mount("/lists", h.List.Routes())

		// The comic, like, pending, and comment handlers share the /comics
		// subtree; each registers its own slice of routes.
		api.Route("/comics", func(comics chi.Router) {
			h.Comic.RegisterRoutes(comics)
			h.Like.RegisterComicRoutes(comics)
			h.Pending.RegisterComicRoutes(comics)
			h.Comment.RegisterComicRoutes(comics)
		})

		// Per-user views of the caller's own activity.
		api.Route("/users/me", func(me chi.Router) {
			me.Use(middleware.RequireAuth)
			me.Get("/", h.Auth.Me)
			me.Get("/likes", h.Like.ListMine)
			me.Get("/pendings", h.Pending.ListMine)
			me.Get("/tags", h.Tag.ListUserTags)
		})
	})

	return &Server{
		router: r,
		log:    log,
		httpServer: &http.Server{
			Addr:              ":" + cfg.ServerPort,
			Handler:           r,
			ReadTimeout:       constants.DefaultReadTimeout,
			WriteTimeout:      constants.DefaultWriteTimeout,
			IdleTimeout:       constants.DefaultIdleTimeout,
			ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
		},
	}
}

// # Server Lifecycle

// ListenAndServe starts the HTTP server.
//
// It blocks until the server is closed or an error occurs.
func (s *Server) ListenAndServe() error {
	s.log.Info("server_started", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	context, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(context)
}
