package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v3"

	"applinks/internal/config"
	"applinks/internal/metrics"
	"applinks/internal/store"
	"applinks/internal/validation"
)

// LinkHandler handles short link creation and deletion from the web UI.
type LinkHandler struct {
	store store.Store
	cfg   *config.Config
}

// NewLinkHandler creates a new link handler.
func NewLinkHandler(st store.Store, cfg *config.Config) *LinkHandler {
	return &LinkHandler{store: st, cfg: cfg}
}

// Index renders the home page with the create form.
func (h *LinkHandler) Index(c fiber.Ctx) error {
	return c.Render("index", withBranding(fiber.Map{}, h.cfg))
}

// Create handles the link creation form and re-renders the home page with
// either the new short URL or a validation error.
func (h *LinkHandler) Create(c fiber.Ctx) error {
	destination := strings.TrimSpace(c.FormValue("destination"))
	slug := validation.NormalizeSlug(strings.TrimSpace(c.FormValue("slug")))

	if ok, msg := validation.ValidateDestination(destination); !ok {
		metrics.RecordLinkCreated("invalid")
		return c.Status(fiber.StatusBadRequest).Render("index", withBranding(fiber.Map{
			"Error":       msg,
			"Destination": destination,
			"Slug":        slug,
		}, h.cfg))
	}

	link, err := h.store.Create(c.Context(), destination, slug)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrInvalidSlug):
			metrics.RecordLinkCreated("invalid")
			return c.Status(fiber.StatusBadRequest).Render("index", withBranding(fiber.Map{
				"Error":       "Custom slug may only contain letters, digits, hyphens and underscores",
				"Destination": destination,
			}, h.cfg))
		case errors.Is(err, store.ErrSlugInUse):
			metrics.RecordLinkCreated("conflict")
			return c.Status(fiber.StatusConflict).Render("index", withBranding(fiber.Map{
				"Error":       "That slug is already taken",
				"Destination": destination,
			}, h.cfg))
		}
		return err
	}

	metrics.RecordLinkCreated("ok")
	return c.Render("index", withBranding(fiber.Map{
		"Created":  link,
		"ShortURL": link.ShortURL(h.cfg.BaseURL),
	}, h.cfg))
}

// Delete removes a short link.
func (h *LinkHandler) Delete(c fiber.Ctx) error {
	slug := validation.NormalizeSlug(c.Params("slug"))

	if err := h.store.Delete(c.Context(), slug); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "short link not found")
		}
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}
