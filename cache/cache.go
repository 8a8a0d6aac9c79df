// Package cache mirrors produced audio and the provider's voice catalog in
// Redis. The cache is strictly optional: a nil Cache disables mirroring and
// every caller must tolerate that, so the toolkit works with no Redis at
// all. What the cache buys is cheap re-reads: voice listings without a
// round trip to the provider, and artifact bytes that survive temp-dir
// cleanup between tool calls.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/EasterCompany/dex-camb-tools/config"
)

const (
	keyPrefix = "dex-camb-tools:"
	voicesKey = keyPrefix + "voices"
	audioKey  = keyPrefix + "audio:"
)

// Cache is the interface the rest of the toolkit sees.
type Cache interface {
	SaveAudio(ctx context.Context, key string, data []byte, ttl time.Duration) error
	LoadAudio(ctx context.Context, key string) ([]byte, error)
	SaveVoices(ctx context.Context, voices []byte, ttl time.Duration) error
	LoadVoices(ctx context.Context) ([]byte, error)
	RecordInvocation(ctx context.Context, rec InvocationRecord) error
	RecentInvocations(ctx context.Context, n int64) ([]InvocationRecord, error)
	CleanAllAudio(ctx context.Context) (int64, error)
	Ping(ctx context.Context) error
	Close() error
}

// DB is the Redis-backed Cache.
type DB struct {
	rdb *redis.Client
}

// New connects to Redis per cfg. A nil or disabled config returns (nil, nil):
// no cache, no error.
func New(cfg *config.RedisConfig) (*DB, error) {
	if cfg == nil || !cfg.Enabled || cfg.Addr == "" {
		return nil, nil
	}
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("could not connect to cache at %s: %w", cfg.Addr, err)
	}
	return &DB{rdb: rdb}, nil
}

func (db *DB) Ping(ctx context.Context) error {
	return db.rdb.Ping(ctx).Err()
}

func (db *DB) Close() error {
	return db.rdb.Close()
}

// SaveAudio mirrors artifact bytes under the audio namespace.
func (db *DB) SaveAudio(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	return db.rdb.Set(ctx, audioKey+key, data, ttl).Err()
}

// LoadAudio returns mirrored bytes, or nil without error on a miss.
func (db *DB) LoadAudio(ctx context.Context, key string) ([]byte, error) {
	data, err := db.rdb.Get(ctx, audioKey+key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not load cached audio %s: %w", key, err)
	}
	return data, nil
}

// SaveVoices caches the serialized voice catalog.
func (db *DB) SaveVoices(ctx context.Context, voices []byte, ttl time.Duration) error {
	return db.rdb.Set(ctx, voicesKey, voices, ttl).Err()
}

// LoadVoices returns the cached catalog, or nil without error on a miss.
func (db *DB) LoadVoices(ctx context.Context) ([]byte, error) {
	data, err := db.rdb.Get(ctx, voicesKey).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not load cached voices: %w", err)
	}
	return data, nil
}

// CleanAllAudio deletes every mirrored audio entry and reports how many.
func (db *DB) CleanAllAudio(ctx context.Context) (int64, error) {
	var keys []string
	iter := db.rdb.Scan(ctx, 0, audioKey+"*", 0).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return 0, err
	}
	if len(keys) == 0 {
		return 0, nil
	}
	return db.rdb.Del(ctx, keys...).Result()
}

// marshalRecord keeps history entries readable when inspected with redis-cli.
func marshalRecord(rec InvocationRecord) ([]byte, error) {
	data, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("could not marshal invocation record: %w", err)
	}
	return data, nil
}
