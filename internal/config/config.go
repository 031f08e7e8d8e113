package config

import (
	"log"
	"os"
	"time"
)

// Store backend identifiers.
const (
	BackendMemory   = "memory"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// Environment
	Env string // "development", "production", etc.

	// Server
	ServerAddr string
	BaseURL    string

	// Storage. DATABASE_URL selects postgres, REDIS_URL selects redis,
	// otherwise links live in process memory.
	DatabaseURL string
	RedisURL    string

	// LinkTTL makes short links expire; zero keeps them forever.
	LinkTTL time.Duration
	// SweepInterval is how often the background sweeper purges expired links.
	SweepInterval time.Duration

	// TLS
	TLSEnabled  bool
	TLSCertFile string
	TLSKeyFile  string

	// CORS
	CORSOrigins string // Comma-separated allowed origins for the JSON API

	// Site Branding
	SiteTitle  string // env: SITE_TITLE, default: "AppLinks"
	SiteFooter string // env: SITE_FOOTER
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		Env:           getEnv("ENV", "development"),
		ServerAddr:    getEnv("SERVER_ADDR", ":3000"),
		BaseURL:       getEnv("BASE_URL", "http://localhost:3000"),
		DatabaseURL:   getEnv("DATABASE_URL", ""),
		RedisURL:      getEnv("REDIS_URL", ""),
		LinkTTL:       getDuration("LINK_TTL", 0),
		SweepInterval: getDuration("SWEEP_INTERVAL", 10*time.Minute),
		TLSEnabled:    getEnv("TLS_ENABLED", "") != "",
		TLSCertFile:   getEnv("TLS_CERT_FILE", ""),
		TLSKeyFile:    getEnv("TLS_KEY_FILE", ""),
		CORSOrigins:   getEnv("CORS_ORIGINS", ""),

		SiteTitle:  getEnv("SITE_TITLE", "AppLinks"),
		SiteFooter: getEnv("SITE_FOOTER", "AppLinks - short links that open the right app"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		log.Printf("Invalid duration in %s: %v (using %v)", key, err, fallback)
		return fallback
	}
	return d
}

// IsDev returns true if the environment is set to development.
func (c *Config) IsDev() bool {
	return c.Env == "development" || c.Env == "dev"
}

// StoreBackend returns which storage backend the configuration selects.
func (c *Config) StoreBackend() string {
	switch {
	case c.DatabaseURL != "":
		return BackendPostgres
	case c.RedisURL != "":
		return BackendRedis
	default:
		return BackendMemory
	}
}
