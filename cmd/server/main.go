package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"applinks/internal/config"
	"applinks/internal/jobs"
	"applinks/internal/metrics"
	"applinks/internal/server"
	"applinks/internal/store"
)

func main() {
	ctx := context.Background()
	cfg := config.Load()

	// Initialize the slug store (memory, redis or postgres per config)
	st, err := store.Open(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to open %s store: %v", cfg.StoreBackend(), err)
	}
	defer st.Close()
	log.Printf("Using %s store", cfg.StoreBackend())

	// Seed example links for development
	if cfg.IsDev() {
		if m, ok := st.(*store.Memory); ok {
			if err := m.SeedDevLinks(ctx); err != nil {
				log.Printf("Warning: failed to seed dev links: %v", err)
			}
		}
	}

	metrics.Init()

	srv := server.New(cfg)
	srv.RegisterRoutes(st)

	// Background sweeper for expired links
	sweepCtx, cancelSweep := context.WithCancel(ctx)
	defer cancelSweep()
	if p, ok := st.(store.Purger); ok && cfg.LinkTTL > 0 {
		go jobs.NewSweeper(p, cfg.SweepInterval).Start(sweepCtx)
	}

	// Graceful shutdown
	go func() {
		if err := srv.Start(); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	log.Printf("Server started on %s", cfg.ServerAddr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := srv.Shutdown(); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	log.Println("Server exited")
}
