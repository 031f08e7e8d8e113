package server

import (
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"applinks/internal/handlers"
	"applinks/internal/handlers/api"
	"applinks/internal/store"
)

// RegisterRoutes registers all application routes.
func (s *Server) RegisterRoutes(st store.Store) {
	// Initialize handlers
	linkHandler := handlers.NewLinkHandler(st, s.Cfg)
	redirectHandler := handlers.NewRedirectHandler(st, s.Cfg)
	probeHandler := handlers.NewProbeHandler(st)
	apiLinkHandler := api.NewLinkHandler(st, s.Cfg)
	apiResolveHandler := api.NewResolveHandler()

	// Frontend routes
	s.App.Get("/", linkHandler.Index)
	s.App.Post("/links", linkHandler.Create)
	s.App.Delete("/links/:slug", linkHandler.Delete)

	// Probes and metrics
	s.App.Get("/healthz", probeHandler.Liveness)
	s.App.Get("/readyz", probeHandler.Readiness)
	s.App.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// JSON API
	s.App.Post("/api/links", apiLinkHandler.Create)
	s.App.Get("/api/links/:slug", apiLinkHandler.Get)
	s.App.Delete("/api/links/:slug", apiLinkHandler.Delete)
	s.App.Get("/api/resolve", apiResolveHandler.Resolve)

	// Redirect route - must be last (catch-all for slugs)
	s.App.Get("/:slug", redirectHandler.Redirect)
}
