package api

import (
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v3"

	"applinks/internal/config"
	"applinks/internal/metrics"
	"applinks/internal/models"
	"applinks/internal/store"
	"applinks/internal/validation"
)

// LinkHandler handles short link CRUD via the JSON API.
type LinkHandler struct {
	store store.Store
	cfg   *config.Config
}

// NewLinkHandler creates a new API link handler.
func NewLinkHandler(st store.Store, cfg *config.Config) *LinkHandler {
	return &LinkHandler{store: st, cfg: cfg}
}

// Create creates a short link from a JSON body.
func (h *LinkHandler) Create(c fiber.Ctx) error {
	var body struct {
		Destination string `json:"destination"`
		Slug        string `json:"slug"`
	}
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid JSON body")
	}

	if ok, msg := validation.ValidateDestination(body.Destination); !ok {
		metrics.RecordLinkCreated("invalid")
		return jsonError(c, fiber.StatusBadRequest, msg)
	}

	slug := validation.NormalizeSlug(body.Slug)
	link, err := h.store.Create(c.Context(), body.Destination, slug)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrInvalidSlug):
			metrics.RecordLinkCreated("invalid")
			return jsonError(c, fiber.StatusBadRequest, "invalid slug")
		case errors.Is(err, store.ErrSlugInUse):
			metrics.RecordLinkCreated("conflict")
			return jsonError(c, fiber.StatusConflict, "slug already in use")
		}
		return jsonError(c, fiber.StatusInternalServerError, "failed to create link")
	}

	metrics.RecordLinkCreated("ok")
	return jsonCreated(c, models.NewLinkResponse(link, h.cfg.BaseURL))
}

// Get returns a short link by slug.
func (h *LinkHandler) Get(c fiber.Ctx) error {
	slug := validation.NormalizeSlug(c.Params("slug"))
	if !validation.ValidateSlug(slug) {
		return jsonError(c, fiber.StatusBadRequest, "invalid slug")
	}

	link, err := h.store.Lookup(c.Context(), slug)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return jsonError(c, fiber.StatusNotFound, "short link not found")
		}
		return jsonError(c, fiber.StatusInternalServerError, "failed to look up link")
	}

	return jsonSuccess(c, models.NewLinkResponse(link, h.cfg.BaseURL))
}

// Delete removes a short link by slug.
func (h *LinkHandler) Delete(c fiber.Ctx) error {
	slug := validation.NormalizeSlug(c.Params("slug"))
	if !validation.ValidateSlug(slug) {
		return jsonError(c, fiber.StatusBadRequest, "invalid slug")
	}

	if err := h.store.Delete(c.Context(), slug); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return jsonError(c, fiber.StatusNotFound, "short link not found")
		}
		return jsonError(c, fiber.StatusInternalServerError, "failed to delete link")
	}

	return jsonSuccess(c, fiber.Map{"deleted": slug})
}
