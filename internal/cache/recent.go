// Package cache keeps a redis-backed window of the most recently received
// events so the recent-events endpoint does not hit the store.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/undenfinitematrix/Aerochat-Conversation-Logger/pkg/event"
)

const recentKey = "aerochat:events:recent"

// RecentCache holds the last capacity events in a redis list, newest first.
// A disabled cache accepts all calls and reports Enabled() == false.
type RecentCache struct {
	client   *redis.Client
	capacity int64
	disabled bool
}

// NewRecentCache connects to redis and verifies the connection.
func NewRecentCache(redisURL string, capacity int) (*RecentCache, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis URL: %w", err)
	}

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis connection failed: %w", err)
	}

	if capacity <= 0 {
		capacity = 100
	}

	return &RecentCache{client: client, capacity: int64(capacity)}, nil
}

// Disabled returns a cache that does nothing.
func Disabled() *RecentCache {
	return &RecentCache{disabled: true}
}

func (c *RecentCache) Enabled() bool {
	return !c.disabled
}

// Push prepends ev and trims the window to capacity.
func (c *RecentCache) Push(ctx context.Context, ev *event.Stored) error {
	if c.disabled {
		return nil
	}

	data, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	pipe := c.client.TxPipeline()
	pipe.LPush(ctx, recentKey, data)
	pipe.LTrim(ctx, recentKey, 0, c.capacity-1)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("cache push failed: %w", err)
	}
	return nil
}

// Recent returns up to limit cached events, newest first.
func (c *RecentCache) Recent(ctx context.Context, limit int) ([]*event.Stored, error) {
	if c.disabled {
		return nil, nil
	}

	if limit <= 0 || int64(limit) > c.capacity {
		limit = int(c.capacity)
	}

	items, err := c.client.LRange(ctx, recentKey, 0, int64(limit)-1).Result()
	if err != nil {
		return nil, fmt.Errorf("cache read failed: %w", err)
	}

	out := make([]*event.Stored, 0, len(items))
	for _, item := range items {
		var ev event.Stored
		if err := json.Unmarshal([]byte(item), &ev); err != nil {
			return nil, fmt.Errorf("decode cached event: %w", err)
		}
		out = append(out, &ev)
	}
	return out, nil
}

func (c *RecentCache) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}
