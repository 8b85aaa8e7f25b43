package cache

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/redis/go-redis/v9"
)

const categorySetKey = "ncgames:categories"

// SlugSource is the authoritative category store.
type SlugSource interface {
	ListSlugs(ctx context.Context) ([]string, error)
	Has(ctx context.Context, slug string) (bool, error)
}

// CategoryCache keeps the category allow-list in a Redis set. The set is filled from
// the source on first use and expires after ttl, so a category added to the table is
// visible without a restart. Redis failures fall back to the source.
type CategoryCache struct {
	client *redis.Client
	source SlugSource
	ttl    time.Duration
	log    *slog.Logger
}

// NewRedisClient connects to redisURL and verifies the connection.
func NewRedisClient(ctx context.Context, redisURL, password string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	if password != "" {
		opts.Password = password
	}
	opts.DialTimeout = 5 * time.Second
	opts.ReadTimeout = 3 * time.Second
	opts.WriteTimeout = 3 * time.Second

	rdb := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return rdb, nil
}

func NewCategoryCache(client *redis.Client, source SlugSource, ttl time.Duration, log *slog.Logger) *CategoryCache {
	if log == nil {
		log = slog.Default()
	}
	return &CategoryCache{client: client, source: source, ttl: ttl, log: log}
}

// Has reports whether slug is a known category. Membership and key presence come from one
// MULTI/EXEC, so both describe the same key state; an absent key always refills from source.
func (c *CategoryCache) Has(ctx context.Context, slug string) (bool, error) {
	if c.client == nil {
		return c.source.Has(ctx, slug)
	}

	var member *redis.BoolCmd
	var present *redis.IntCmd
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		member = pipe.SIsMember(ctx, categorySetKey, slug)
		present = pipe.Exists(ctx, categorySetKey)
		return nil
	})
	if err != nil {
		c.log.Warn("category cache unavailable", "error", err)
		return c.source.Has(ctx, slug)
	}
	if present.Val() > 0 {
		return member.Val(), nil
	}

	slugs, err := c.source.ListSlugs(ctx)
	if err != nil {
		return false, err
	}
	if err := c.fill(ctx, slugs); err != nil {
		c.log.Warn("category cache fill failed", "error", err)
	}
	return slices.Contains(slugs, slug), nil
}

func (c *CategoryCache) fill(ctx context.Context, slugs []string) error {
	if len(slugs) == 0 {
		// Redis has no empty sets; leave the key absent and re-read next time.
		return nil
	}
	members := make([]any, len(slugs))
	for i, s := range slugs {
		members[i] = s
	}

	pipe := c.client.TxPipeline()
	pipe.Del(ctx, categorySetKey)
	pipe.SAdd(ctx, categorySetKey, members...)
	pipe.Expire(ctx, categorySetKey, c.ttl)
	_, err := pipe.Exec(ctx)
	return err
}

// Invalidate drops the cached set. Callers that rewrite the categories table call it.
func (c *CategoryCache) Invalidate(ctx context.Context) error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Del(ctx, categorySetKey).Err()
}
