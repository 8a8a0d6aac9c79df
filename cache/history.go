package cache

import (
	"context"
	"encoding/json"
	"time"
)

const (
	historyKey = keyPrefix + "invocations"
	maxHistory = 100
)

// InvocationRecord is one completed tool call, kept for the doctor report.
type InvocationRecord struct {
	ID       string    `json:"id"`
	Tool     string    `json:"tool"`
	Duration string    `json:"duration"`
	Error    string    `json:"error,omitempty"`
	At       time.Time `json:"at"`
}

// RecordInvocation prepends rec to the bounded history list.
func (db *DB) RecordInvocation(ctx context.Context, rec InvocationRecord) error {
	data, err := marshalRecord(rec)
	if err != nil {
		return err
	}
	pipe := db.rdb.Pipeline()
	pipe.LPush(ctx, historyKey, data)
	pipe.LTrim(ctx, historyKey, 0, maxHistory-1)
	_, err = pipe.Exec(ctx)
	return err
}

// RecentInvocations returns up to n most recent records, newest first.
func (db *DB) RecentInvocations(ctx context.Context, n int64) ([]InvocationRecord, error) {
	if n <= 0 {
		n = maxHistory
	}
	raw, err := db.rdb.LRange(ctx, historyKey, 0, n-1).Result()
	if err != nil {
		return nil, err
	}
	records := make([]InvocationRecord, 0, len(raw))
	for _, entry := range raw {
		var rec InvocationRecord
		if err := json.Unmarshal([]byte(entry), &rec); err != nil {
			continue // skip entries written by older versions
		}
		records = append(records, rec)
	}
	return records, nil
}
