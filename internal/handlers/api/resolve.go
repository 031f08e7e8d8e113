package api

import (
	"github.com/gofiber/fiber/v3"

	"applinks/internal/deeplink"
	"applinks/internal/models"
	"applinks/internal/validation"
)

// ResolveHandler exposes the deep-link resolver without creating anything.
type ResolveHandler struct{}

// NewResolveHandler creates a new API resolve handler.
func NewResolveHandler() *ResolveHandler {
	return &ResolveHandler{}
}

// Resolve returns the redirect descriptor for a destination URL passed in
// the "url" query parameter.
func (h *ResolveHandler) Resolve(c fiber.Ctx) error {
	raw := c.Query("url")
	if ok, msg := validation.ValidateDestination(raw); !ok {
		return jsonError(c, fiber.StatusBadRequest, msg)
	}

	platform := deeplink.DetectPlatform(c.Get(fiber.HeaderUserAgent))

	return jsonSuccess(c, models.ResolveResponse{
		URL:        raw,
		Platform:   platform.String(),
		Descriptor: deeplink.Resolve(raw),
	})
}
