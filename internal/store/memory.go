package store

import (
	"context"
	"sync"
	"time"

	"applinks/internal/models"
)

// Memory is an in-process store. Entries optionally expire after a TTL;
// expiry is enforced lazily on lookup and eagerly by PurgeExpired.
type Memory struct {
	mu    sync.RWMutex
	links map[string]*models.ShortLink
	ttl   time.Duration
}

// NewMemory creates an in-memory store. A zero TTL means links never expire.
func NewMemory(ttl time.Duration) *Memory {
	return &Memory{
		links: make(map[string]*models.ShortLink),
		ttl:   ttl,
	}
}

func (m *Memory) Create(ctx context.Context, destination, slug string) (*models.ShortLink, error) {
	return createWithRetry(ctx, destination, slug, func(_ context.Context, link *models.ShortLink) error {
		m.mu.Lock()
		defer m.mu.Unlock()

		if existing, ok := m.links[link.Slug]; ok && !m.expired(existing, time.Now()) {
			return ErrSlugInUse
		}
		m.links[link.Slug] = link
		return nil
	})
}

func (m *Memory) Lookup(_ context.Context, slug string) (*models.ShortLink, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	link, ok := m.links[slug]
	if !ok || m.expired(link, time.Now()) {
		return nil, ErrNotFound
	}

	cp := *link
	return &cp, nil
}

func (m *Memory) Delete(_ context.Context, slug string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	link, ok := m.links[slug]
	if !ok || m.expired(link, time.Now()) {
		return ErrNotFound
	}
	delete(m.links, slug)
	return nil
}

func (m *Memory) Ping(context.Context) error { return nil }

func (m *Memory) Close() {}

// PurgeExpired removes all expired links and reports how many were dropped.
func (m *Memory) PurgeExpired(context.Context) (int, error) {
	if m.ttl <= 0 {
		return 0, nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	purged := 0
	for slug, link := range m.links {
		if m.expired(link, now) {
			delete(m.links, slug)
			purged++
		}
	}
	return purged, nil
}

func (m *Memory) expired(link *models.ShortLink, now time.Time) bool {
	return m.ttl > 0 && now.Sub(link.CreatedAt) > m.ttl
}

// SeedDevLinks inserts a few example links for development. Slugs that
// already exist are left alone.
func (m *Memory) SeedDevLinks(ctx context.Context) error {
	seeds := []struct {
		slug        string
		destination string
	}{
		{"yt", "https://youtu.be/dQw4w9WgXcQ"},
		{"chat", "https://wa.me/15551234567?text=hi"},
		{"tg", "https://t.me/golang"},
		{"mail", "mailto:team@example.com?subject=Hello"},
		{"web", "https://example.org"},
	}

	for _, s := range seeds {
		if _, err := m.Create(ctx, s.destination, s.slug); err != nil && err != ErrSlugInUse {
			return err
		}
	}
	return nil
}
