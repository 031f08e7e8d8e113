package handlers

import (
	"github.com/gofiber/fiber/v3"

	"applinks/internal/config"
)

// withBranding merges the site branding configuration into view data.
func withBranding(data fiber.Map, cfg *config.Config) fiber.Map {
	data["SiteTitle"] = cfg.SiteTitle
	data["SiteFooter"] = cfg.SiteFooter
	data["BaseURL"] = cfg.BaseURL
	return data
}
