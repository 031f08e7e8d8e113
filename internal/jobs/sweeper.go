// Package jobs contains background maintenance loops.
package jobs

import (
	"context"
	"log"
	"time"

	"applinks/internal/store"
)

// Sweeper periodically purges expired short links from backends that do not
// expire entries on their own.
type Sweeper struct {
	store    store.Purger
	interval time.Duration
}

// NewSweeper creates a new sweeper.
func NewSweeper(st store.Purger, interval time.Duration) *Sweeper {
	return &Sweeper{store: st, interval: interval}
}

// Start begins the background sweep loop. It runs once immediately, then on
// every tick until the context is cancelled.
func (s *Sweeper) Start(ctx context.Context) {
	log.Printf("Link sweeper started (interval: %v)", s.interval)

	s.sweep(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("Link sweeper stopped")
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *Sweeper) sweep(ctx context.Context) {
	purged, err := s.store.PurgeExpired(ctx)
	if err != nil {
		log.Printf("Link sweeper: purge failed: %v", err)
		return
	}
	if purged > 0 {
		log.Printf("Link sweeper: purged %d expired links", purged)
	}
}
