package models

import (
	"time"

	"applinks/internal/deeplink"
)

// LinkResponse is the JSON API representation of a short link.
type LinkResponse struct {
	Slug        string    `json:"slug"`
	ShortURL    string    `json:"short_url"`
	Destination string    `json:"destination"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewLinkResponse builds a LinkResponse from a stored link.
func NewLinkResponse(link *ShortLink, baseURL string) LinkResponse {
	return LinkResponse{
		Slug:        link.Slug,
		ShortURL:    link.ShortURL(baseURL),
		Destination: link.Destination,
		CreatedAt:   link.CreatedAt,
	}
}

// ResolveResponse is the JSON API output of the deep-link resolver: the
// redirect descriptor for a destination URL plus the platform the caller
// would be sequenced as.
type ResolveResponse struct {
	URL      string `json:"url"`
	Platform string `json:"platform"`
	deeplink.Descriptor
}
