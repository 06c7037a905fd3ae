package cache

import (
	"context"
	"crypto/sha256"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rotisserie/eris"
)

// Cache provides Redis-backed caching for fetched listing pages.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// New connects to Redis at the given URL and returns a Cache.
// URL format: redis://localhost:6379
func New(ctx context.Context, redisURL string, ttl time.Duration) (*Cache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, eris.Wrap(err, "cache: invalid redis URL")
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, eris.Wrap(err, "cache: redis ping failed")
	}

	return &Cache{client: client, ttl: ttl}, nil
}

// Get retrieves the cached markup for pageURL.
// Returns the markup and true if a valid cache entry exists, or "" and false otherwise.
func (c *Cache) Get(ctx context.Context, pageURL string) (string, bool) {
	markup, err := c.client.Get(ctx, buildKey(pageURL)).Result()
	if err != nil {
		return "", false
	}
	return markup, true
}

// Set stores the markup of pageURL with the configured TTL.
func (c *Cache) Set(ctx context.Context, pageURL, markup string) error {
	if err := c.client.Set(ctx, buildKey(pageURL), markup, c.ttl).Err(); err != nil {
		return eris.Wrap(err, "cache: set")
	}
	return nil
}

// Close closes the Redis connection.
func (c *Cache) Close() error {
	return c.client.Close()
}

func buildKey(pageURL string) string {
	raw := strings.ToLower(strings.TrimSpace(pageURL))
	hash := sha256.Sum256([]byte(raw))
	return fmt.Sprintf("jobsheet:page:%x", hash[:8])
}
