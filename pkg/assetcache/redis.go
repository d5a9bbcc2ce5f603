package assetcache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/atlo-labs/fuzion-sdk-go/pkg/token"
)

const (
	DefaultRedisKey = "fuzion:trusted-assets"
	DefaultRedisTTL = time.Hour
)

type RedisOptions struct {
	Key string
	TTL time.Duration
}

// Redis stores the asset list as JSON under a single key.
type Redis struct {
	client redis.UniversalClient
	key    string
	ttl    time.Duration
}

func NewRedis(client redis.UniversalClient, options RedisOptions) (*Redis, error) {
	if client == nil {
		return nil, fmt.Errorf("redis client is required")
	}
	key := strings.TrimSpace(options.Key)
	if key == "" {
		key = DefaultRedisKey
	}
	ttl := options.TTL
	if ttl <= 0 {
		ttl = DefaultRedisTTL
	}
	return &Redis{client: client, key: key, ttl: ttl}, nil
}

// NewRedisFromURL parses a redis:// URL and connects a client to it.
func NewRedisFromURL(rawURL string, options RedisOptions) (*Redis, error) {
	parsed, err := redis.ParseURL(rawURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}
	return NewRedis(redis.NewClient(parsed), options)
}

func (r *Redis) Key() string {
	return r.key
}

func (r *Redis) Load(ctx context.Context) ([]token.Properties, error) {
	payload, err := r.client.Get(ctx, r.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", r.key, err)
	}

	var assets []token.Properties
	if err := json.Unmarshal(payload, &assets); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", r.key, err)
	}
	return assets, nil
}

func (r *Redis) Store(ctx context.Context, assets []token.Properties) error {
	payload, err := json.Marshal(assets)
	if err != nil {
		return fmt.Errorf("failed to encode trusted assets: %w", err)
	}
	if err := r.client.Set(ctx, r.key, payload, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write %s: %w", r.key, err)
	}
	return nil
}

// Clear deletes the cached list.
func (r *Redis) Clear(ctx context.Context) error {
	if err := r.client.Del(ctx, r.key).Err(); err != nil {
		return fmt.Errorf("failed to delete %s: %w", r.key, err)
	}
	return nil
}

func (r *Redis) Close() error {
	return r.client.Close()
}
