package redisclient

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"bmb-admin/internal/models"

	"github.com/go-redis/redis/v8"
)

// Aggregates are recomputed at most once per TTL while admins poll the
// charts.
const statsCacheTTL = 60 * time.Second

type Client struct {
	rdb *redis.Client
}

// NewClient creates a new Redis client
func NewClient(addr, password string, db int) (*Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return &Client{rdb: rdb}, nil
}

// GetClient returns the underlying Redis client
func (c *Client) GetClient() *redis.Client {
	return c.rdb
}

// Close closes the Redis connection
func (c *Client) Close() error {
	return c.rdb.Close()
}

func statsKey(period string) string {
	return fmt.Sprintf("stats:%s", period)
}

// GetStats returns the cached statistics for a period, or (nil, nil) on a
// cache miss.
func (c *Client) GetStats(ctx context.Context, period string) (*models.OrderStatistics, error) {
	raw, err := c.rdb.Get(ctx, statsKey(period)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("stats cache read failed: %w", err)
	}

	var stats models.OrderStatistics
	if err := json.Unmarshal(raw, &stats); err != nil {
		return nil, fmt.Errorf("stats cache decode failed: %w", err)
	}
	return &stats, nil
}

// SetStats caches the statistics for a period.
func (c *Client) SetStats(ctx context.Context, period string, stats *models.OrderStatistics) error {
	raw, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("stats cache encode failed: %w", err)
	}
	return c.rdb.Set(ctx, statsKey(period), raw, statsCacheTTL).Err()
}

// InvalidateStats drops all cached statistics windows. Called after a status
// update so the distribution charts reflect it promptly.
func (c *Client) InvalidateStats(ctx context.Context, periods ...string) error {
	keys := make([]string, len(periods))
	for i, p := range periods {
		keys[i] = statsKey(p)
	}
	if len(keys) == 0 {
		return nil
	}
	return c.rdb.Del(ctx, keys...).Err()
}
