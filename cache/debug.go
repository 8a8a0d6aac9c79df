package cache

import (
	"context"
	"fmt"
	"time"
)

// Entry describes one key in the toolkit's namespace, for the debug-cache
// command. Size is bytes for string values and element count for lists.
type Entry struct {
	Key  string
	Type string
	Size int64
	TTL  time.Duration
}

// Entries lists every key under the toolkit's prefix with its type, size and
// remaining TTL. Keys written by other applications sharing the Redis
// instance are never touched.
func (db *DB) Entries(ctx context.Context) ([]Entry, error) {
	var entries []Entry
	iter := db.rdb.Scan(ctx, 0, keyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		entry := Entry{Key: key}

		keyType, err := db.rdb.Type(ctx, key).Result()
		if err != nil {
			return nil, fmt.Errorf("could not read type of %s: %w", key, err)
		}
		entry.Type = keyType

		switch keyType {
		case "string":
			entry.Size, _ = db.rdb.StrLen(ctx, key).Result()
		case "list":
			entry.Size, _ = db.rdb.LLen(ctx, key).Result()
		}
		entry.TTL, _ = db.rdb.TTL(ctx, key).Result()
		entries = append(entries, entry)
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("could not scan cache keys: %w", err)
	}
	return entries, nil
}
