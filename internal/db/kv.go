package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
)

// KV is string key-value storage on the kv table. It satisfies state.KV.
type KV struct {
	db *DB
}

// NewKV returns a KV backed by database.
func NewKV(database *DB) *KV {
	return &KV{db: database}
}

// Get returns the value stored under key.
func (k *KV) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := k.db.QueryRowContext(ctx, "SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("reading %s: %w", key, err)
	}
	return value, true, nil
}

// SetMany upserts every pair inside a single transaction, so readers see
// either all of the new values or none of them.
func (k *KV) SetMany(ctx context.Context, pairs map[string]string) error {
	tx, err := k.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	keys := make([]string, 0, len(pairs))
	for key := range pairs {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO kv (key, value, updated_at) VALUES (?, ?, datetime('now'))
			ON CONFLICT(key) DO UPDATE SET
				value = excluded.value,
				updated_at = excluded.updated_at`,
			key, pairs[key],
		)
		if err != nil {
			return fmt.Errorf("writing %s: %w", key, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing: %w", err)
	}
	return nil
}

// Delete removes key. It is used by the CLI reset command; the tracker itself
// never deletes stored state.
func (k *KV) Delete(ctx context.Context, keys ...string) error {
	for _, key := range keys {
		if _, err := k.db.ExecContext(ctx, "DELETE FROM kv WHERE key = ?", key); err != nil {
			return fmt.Errorf("deleting %s: %w", key, err)
		}
	}
	return nil
}
