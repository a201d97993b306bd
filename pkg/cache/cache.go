package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// TagCache is a small redis wrapper supporting plain TTL entries plus
// tag-based invalidation: each Set may register the key under one or
// more tags, and InvalidateTag deletes every key registered under a tag.
// Invalidation is at-least-once and fire-and-forget from callers'
// perspective; every entry still carries a TTL backstop.
type TagCache struct {
	Client *redis.Client
}

func New(client *redis.Client) *TagCache {
	return &TagCache{Client: client}
}

func tagKey(tag string) string { return "tag:" + tag }

func (c *TagCache) SetJSON(ctx context.Context, key string, v any, ttl time.Duration, tags ...string) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	pipe := c.Client.TxPipeline()
	pipe.Set(ctx, key, b, ttl)
	for _, t := range tags {
		pipe.SAdd(ctx, tagKey(t), key)
		// tag set outlives members slightly so a missed cleanup self-heals
		pipe.Expire(ctx, tagKey(t), ttl+time.Minute)
	}
	_, err = pipe.Exec(ctx)
	return err
}

// GetJSON unmarshals the cached entry into v. Returns (false, nil) on miss.
func (c *TagCache) GetJSON(ctx context.Context, key string, v any) (bool, error) {
	b, err := c.Client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(b, v); err != nil {
		return false, err
	}
	return true, nil
}

func (c *TagCache) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return c.Client.Del(ctx, keys...).Err()
}

// InvalidateTag removes every key registered under the tag, then the
// tag set itself.
func (c *TagCache) InvalidateTag(ctx context.Context, tag string) error {
	keys, err := c.Client.SMembers(ctx, tagKey(tag)).Result()
	if err != nil && err != redis.Nil {
		return err
	}
	if len(keys) > 0 {
		if err := c.Client.Del(ctx, keys...).Err(); err != nil {
			return err
		}
	}
	return c.Client.Del(ctx, tagKey(tag)).Err()
}
