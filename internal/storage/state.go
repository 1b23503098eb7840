package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
)

// State keys used by the app.
const (
	KeySettings  = "settings"
	KeyInventory = "inventory"
)

// SetState upserts a raw JSON value under a key.
func (db *DB) SetState(ctx context.Context, key string, value []byte) error {
	_, err := db.sql.ExecContext(ctx,
		`INSERT INTO app_state (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		key, string(value))
	if err != nil {
		return fmt.Errorf("saving state %q: %w", key, err)
	}
	return nil
}

// GetState fetches the raw JSON value for a key. The second return value is
// false when the key is absent.
func (db *DB) GetState(ctx context.Context, key string) ([]byte, bool, error) {
	var value string
	err := db.sql.QueryRowContext(ctx,
		`SELECT value FROM app_state WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("reading state %q: %w", key, err)
	}
	return []byte(value), true, nil
}

// LoadState unmarshals the value for a key into out. Returns false when the
// key is absent, leaving out untouched.
func (db *DB) LoadState(ctx context.Context, key string, out any) (bool, error) {
	data, ok, err := db.GetState(ctx, key)
	if err != nil || !ok {
		return false, err
	}
	if err := json.Unmarshal(data, out); err != nil {
		return false, fmt.Errorf("decoding state %q: %w", key, err)
	}
	return true, nil
}
