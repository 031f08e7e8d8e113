package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// ShortLink is a slug-to-destination mapping. The destination is validated
// as http, https or mailto before a record is ever created.
type ShortLink struct {
	ID          uuid.UUID `json:"id"`
	Slug        string    `json:"slug"`
	Destination string    `json:"destination"`
	CreatedAt   time.Time `json:"created_at"`
}

// ShortURL returns the public short URL for this link under the given base.
func (l *ShortLink) ShortURL(baseURL string) string {
	return strings.TrimSuffix(baseURL, "/") + "/" + l.Slug
}
