package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache TTLs
const (
	TTLList    = 30 * time.Second // content lists (frequently invalidated)
	TTLLatest  = 1 * time.Minute  // latest-N feeds
	TTLDefault = 5 * time.Minute
)

// Cache key prefixes, one namespace per content kind
const (
	PrefixList   = "list:"
	PrefixLatest = "latest:"
)

// ErrMiss cache key not found
var ErrMiss = errors.New("cache miss")

// Service Redis cache for hot read endpoints
type Service interface {
	GetList(ctx context.Context, kind string) ([]byte, error)
	SetList(ctx context.Context, kind string, data interface{}) error
	GetLatest(ctx context.Context, kind string) ([]byte, error)
	SetLatest(ctx context.Context, kind string, data interface{}) error
	Invalidate(ctx context.Context, kind string) error
	IsAvailable() bool
}

type redisCache struct {
	client *redis.Client
}

// NewService creates a new cache service
func NewService(client *redis.Client) Service {
	return &redisCache{client: client}
}

func (c *redisCache) IsAvailable() bool {
	if c.client == nil {
		return false
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	return c.client.Ping(ctx).Err() == nil
}

func (c *redisCache) get(ctx context.Context, key string) ([]byte, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrMiss
		}
		return nil, err
	}
	return data, nil
}

func (c *redisCache) set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, data, ttl).Err()
}

func (c *redisCache) GetList(ctx context.Context, kind string) ([]byte, error) {
	return c.get(ctx, PrefixList+kind)
}

func (c *redisCache) SetList(ctx context.Context, kind string, data interface{}) error {
	return c.set(ctx, PrefixList+kind, data, TTLList)
}

func (c *redisCache) GetLatest(ctx context.Context, kind string) ([]byte, error) {
	return c.get(ctx, PrefixLatest+kind)
}

func (c *redisCache) SetLatest(ctx context.Context, kind string, data interface{}) error {
	return c.set(ctx, PrefixLatest+kind, data, TTLLatest)
}

// Invalidate drops all cached reads for a content kind
func (c *redisCache) Invalidate(ctx context.Context, kind string) error {
	keys := []string{
		fmt.Sprintf("%s%s", PrefixList, kind),
		fmt.Sprintf("%s%s", PrefixLatest, kind),
	}
	return c.client.Del(ctx, keys...).Err()
}
