package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"applinks/internal/models"
	"applinks/migrations"
)

// Postgres stores links in PostgreSQL via a pgx connection pool.
type Postgres struct {
	pool *pgxpool.Pool
	ttl  time.Duration
}

// NewPostgres creates a connection pool and runs the embedded migrations.
func NewPostgres(ctx context.Context, connString string, ttl time.Duration) (*Postgres, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, fmt.Errorf("failed to create pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := runMigrations(connString); err != nil {
		pool.Close()
		return nil, err
	}

	return &Postgres{pool: pool, ttl: ttl}, nil
}

// runMigrations runs all embedded SQL migrations.
func runMigrations(connString string) error {
	sourceDriver, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return fmt.Errorf("failed to create migration source: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", sourceDriver, connString)
	if err != nil {
		return fmt.Errorf("failed to create migrator: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("migration failed: %w", err)
	}
	return nil
}

func (p *Postgres) Create(ctx context.Context, destination, slug string) (*models.ShortLink, error) {
	return createWithRetry(ctx, destination, slug, func(ctx context.Context, link *models.ShortLink) error {
		query := `
			INSERT INTO short_links (id, slug, destination, created_at)
			VALUES ($1, $2, $3, $4)
		`
		_, err := p.pool.Exec(ctx, query, link.ID, link.Slug, link.Destination, link.CreatedAt)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23505" {
				return ErrSlugInUse
			}
			return err
		}
		return nil
	})
}

func (p *Postgres) Lookup(ctx context.Context, slug string) (*models.ShortLink, error) {
	query := `
		SELECT id, slug, destination, created_at
		FROM short_links
		WHERE slug = $1
	`

	var link models.ShortLink
	err := p.pool.QueryRow(ctx, query, slug).Scan(&link.ID, &link.Slug, &link.Destination, &link.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if p.ttl > 0 && time.Since(link.CreatedAt) > p.ttl {
		return nil, ErrNotFound
	}
	return &link, nil
}

func (p *Postgres) Delete(ctx context.Context, slug string) error {
	tag, err := p.pool.Exec(ctx, `DELETE FROM short_links WHERE slug = $1`, slug)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (p *Postgres) Ping(ctx context.Context) error {
	return p.pool.Ping(ctx)
}

func (p *Postgres) Close() {
	p.pool.Close()
}

// PurgeExpired deletes links older than the configured TTL.
func (p *Postgres) PurgeExpired(ctx context.Context) (int, error) {
	if p.ttl <= 0 {
		return 0, nil
	}

	cutoff := time.Now().UTC().Add(-p.ttl)
	tag, err := p.pool.Exec(ctx, `DELETE FROM short_links WHERE created_at < $1`, cutoff)
	if err != nil {
		return 0, err
	}
	return int(tag.RowsAffected()), nil
}
