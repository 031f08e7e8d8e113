package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	fiberredis "github.com/gofiber/storage/redis/v3"
	goredis "github.com/redis/go-redis/v9"

	"applinks/internal/models"
)

const redisKeyPrefix = "link:"

// Redis stores links in Redis. Expiry rides the key TTL, so Redis needs no
// purge sweep.
type Redis struct {
	storage *fiberredis.Storage
	client  goredis.UniversalClient
	ttl     time.Duration
}

// NewRedis connects to Redis using a standard redis:// URL.
func NewRedis(url string, ttl time.Duration) (*Redis, error) {
	storage := fiberredis.New(fiberredis.Config{URL: url})

	r := &Redis{
		storage: storage,
		client:  storage.Conn(),
		ttl:     ttl,
	}

	if err := r.Ping(context.Background()); err != nil {
		storage.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}
	return r, nil
}

func (r *Redis) Create(ctx context.Context, destination, slug string) (*models.ShortLink, error) {
	return createWithRetry(ctx, destination, slug, func(ctx context.Context, link *models.ShortLink) error {
		payload, err := json.Marshal(link)
		if err != nil {
			return err
		}

		// SetNX guarantees at-most-one write per slug even across instances.
		ok, err := r.client.SetNX(ctx, redisKeyPrefix+link.Slug, payload, r.ttl).Result()
		if err != nil {
			return err
		}
		if !ok {
			return ErrSlugInUse
		}
		return nil
	})
}

func (r *Redis) Lookup(ctx context.Context, slug string) (*models.ShortLink, error) {
	payload, err := r.client.Get(ctx, redisKeyPrefix+slug).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var link models.ShortLink
	if err := json.Unmarshal(payload, &link); err != nil {
		return nil, fmt.Errorf("corrupt link record for %q: %w", slug, err)
	}
	return &link, nil
}

func (r *Redis) Delete(ctx context.Context, slug string) error {
	n, err := r.client.Del(ctx, redisKeyPrefix+slug).Result()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *Redis) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *Redis) Close() {
	r.storage.Close()
}
