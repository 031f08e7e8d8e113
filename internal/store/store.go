// Package store provides the slug-to-destination storage backends. The core
// resolver never touches storage; handlers receive a Store as an injected
// capability so the engine stays independently testable.
package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"applinks/internal/config"
	"applinks/internal/models"
	"applinks/internal/validation"
)

// Domain-level storage error sentinels.
var (
	ErrNotFound    = errors.New("short link not found")
	ErrSlugInUse   = errors.New("slug already in use")
	ErrInvalidSlug = errors.New("invalid slug")
)

// Store is the storage capability consumed by the HTTP layer.
type Store interface {
	// Create stores a destination under the given slug, or under a freshly
	// generated one when slug is empty. Collisions on a generated slug are
	// retried; a caller-supplied slug fails immediately with ErrSlugInUse.
	Create(ctx context.Context, destination, slug string) (*models.ShortLink, error)
	Lookup(ctx context.Context, slug string) (*models.ShortLink, error)
	Delete(ctx context.Context, slug string) error
	Ping(ctx context.Context) error
	Close()
}

// Purger is implemented by backends that need an explicit sweep to drop
// expired links. Redis expires keys natively and does not implement it.
type Purger interface {
	PurgeExpired(ctx context.Context) (int, error)
}

// Open creates the store backend selected by the configuration.
func Open(ctx context.Context, cfg *config.Config) (Store, error) {
	switch backend := cfg.StoreBackend(); backend {
	case config.BackendPostgres:
		return NewPostgres(ctx, cfg.DatabaseURL, cfg.LinkTTL)
	case config.BackendRedis:
		return NewRedis(cfg.RedisURL, cfg.LinkTTL)
	case config.BackendMemory:
		return NewMemory(cfg.LinkTTL), nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", backend)
	}
}

// createWithRetry implements the shared create discipline on top of a
// backend's single-attempt insert.
func createWithRetry(ctx context.Context, destination, slug string, insert func(context.Context, *models.ShortLink) error) (*models.ShortLink, error) {
	custom := slug != ""
	if custom && !validation.ValidateSlug(slug) {
		return nil, ErrInvalidSlug
	}

	for attempt := 0; attempt < maxSlugAttempts; attempt++ {
		s := slug
		if !custom {
			s = newSlug()
		}

		link := &models.ShortLink{
			ID:          uuid.New(),
			Slug:        s,
			Destination: destination,
			CreatedAt:   time.Now().UTC(),
		}

		err := insert(ctx, link)
		if err == nil {
			return link, nil
		}
		if errors.Is(err, ErrSlugInUse) && !custom {
			continue
		}
		return nil, err
	}

	return nil, ErrSlugInUse
}
