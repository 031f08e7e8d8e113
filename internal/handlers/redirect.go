package handlers

import (
	"encoding/json"
	"errors"
	"html/template"

	"github.com/gofiber/fiber/v3"

	"applinks/internal/config"
	"applinks/internal/deeplink"
	"applinks/internal/metrics"
	"applinks/internal/store"
	"applinks/internal/validation"
)

// RedirectHandler serves the interstitial page that walks the timed
// app-scheme fallback chain for a stored destination.
type RedirectHandler struct {
	store store.Store
	cfg   *config.Config
}

// NewRedirectHandler creates a new redirect handler.
func NewRedirectHandler(st store.Store, cfg *config.Config) *RedirectHandler {
	return &RedirectHandler{store: st, cfg: cfg}
}

// Redirect looks up a slug, resolves its deep-link descriptor and renders
// the redirect view with the platform-specific navigation plan embedded as
// literals for the inline script.
func (h *RedirectHandler) Redirect(c fiber.Ctx) error {
	slug := validation.NormalizeSlug(c.Params("slug"))
	if !validation.ValidateSlug(slug) {
		return fiber.NewError(fiber.StatusNotFound, "short link not found")
	}

	link, err := h.store.Lookup(c.Context(), slug)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).Render("error", withBranding(fiber.Map{
				"Title":   "Not Found",
				"Message": "The link '" + slug + "' does not exist.",
			}, h.cfg))
		}
		return err
	}

	descriptor := deeplink.Resolve(link.Destination)
	platform := deeplink.DetectPlatform(c.Get(fiber.HeaderUserAgent))
	plan := deeplink.PlanFor(platform, descriptor)

	metrics.RecordRedirect(descriptor.AppName, platform.String())

	steps, err := json.Marshal(plan.Steps)
	if err != nil {
		return err
	}

	return c.Render("redirect", withBranding(fiber.Map{
		"Destination": link.Destination,
		"FallbackURL": descriptor.FallbackURL,
		// template.URL keeps the custom-scheme href from being filtered out.
		"ChromeLink":  template.URL(plan.ChromeLink),
		"Platform":    plan.Platform.String(),
		// Marked as safe JS: the steps are server-built URLs, not user HTML.
		"StepsJSON": template.JS(steps),
	}, h.cfg))
}
