package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/simaogato/assetly-backend/internal/domain"
)

const createKVTable = `
	CREATE TABLE IF NOT EXISTS kv_store (
		storage_key   TEXT PRIMARY KEY,
		storage_value TEXT NOT NULL,
		updated_at    TIMESTAMP NOT NULL
	)
`

// kvStore implements domain.KeyValueStore on a single table
type kvStore struct {
	db *DB
}

// NewKeyValueStore creates the backing table if needed and returns the store
func NewKeyValueStore(ctx context.Context, db *DB) (domain.KeyValueStore, error) {
	if _, err := db.ExecContext(ctx, createKVTable); err != nil {
		return nil, fmt.Errorf("failed to create kv_store table: %w", err)
	}
	return &kvStore{db: db}, nil
}

// GetItem retrieves the value stored under key
func (s *kvStore) GetItem(ctx context.Context, key string) (string, bool, error) {
	query := fmt.Sprintf(`SELECT storage_value FROM kv_store WHERE storage_key = %s`, s.db.placeholder(1))

	var value string
	err := s.db.QueryRowContext(ctx, query, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to get item %s: %w", key, err)
	}

	return value, true, nil
}

// SetItem upserts the value under key
func (s *kvStore) SetItem(ctx context.Context, key, value string) error {
	query := fmt.Sprintf(`
		INSERT INTO kv_store (storage_key, storage_value, updated_at)
		VALUES (%s, %s, %s)
		ON CONFLICT (storage_key) DO UPDATE SET
			storage_value = excluded.storage_value,
			updated_at = excluded.updated_at
	`, s.db.placeholder(1), s.db.placeholder(2), s.db.placeholder(3))

	if _, err := s.db.ExecContext(ctx, query, key, value, time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to set item %s: %w", key, err)
	}

	return nil
}

// RemoveItem deletes key
func (s *kvStore) RemoveItem(ctx context.Context, key string) error {
	query := fmt.Sprintf(`DELETE FROM kv_store WHERE storage_key = %s`, s.db.placeholder(1))

	if _, err := s.db.ExecContext(ctx, query, key); err != nil {
		return fmt.Errorf("failed to remove item %s: %w", key, err)
	}

	return nil
}
