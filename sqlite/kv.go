package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/fwojciec/lexarchive"
)

// Compile-time interface verification.
var (
	_ lexarchive.KeyValueStore = (*KeyValueStore)(nil)
	_ lexarchive.EntryLister   = (*KeyValueStore)(nil)
)

// KeyValueStore implements lexarchive.KeyValueStore using SQLite.
type KeyValueStore struct {
	db  *DB
	now func() time.Time
}

// NewKeyValueStore creates a new KeyValueStore.
func NewKeyValueStore(db *DB) *KeyValueStore {
	return &KeyValueStore{db: db, now: time.Now}
}

// Keys returns every stored key in ascending order.
func (s *KeyValueStore) Keys(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT key FROM entries ORDER BY key ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	keys := []string{}
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, err
		}
		keys = append(keys, key)
	}

	return keys, rows.Err()
}

// Get returns the value stored under key.
func (s *KeyValueStore) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx, "SELECT value FROM entries WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

// Set inserts or overwrites the value stored under key.
func (s *KeyValueStore) Set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO entries (key, value, content_hash, stored_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			content_hash = excluded.content_hash,
			stored_at = excluded.stored_at
	`, key, value, hashContent(value), s.now().UTC().Format(time.RFC3339))
	return err
}

// Entries returns metadata for every entry, ordered by key.
func (s *KeyValueStore) Entries(ctx context.Context) ([]*lexarchive.Entry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT key, content_hash, length(CAST(value AS BLOB)), stored_at
		FROM entries
		ORDER BY key ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*lexarchive.Entry
	for rows.Next() {
		var e lexarchive.Entry
		var storedAt string
		if err := rows.Scan(&e.Key, &e.ContentHash, &e.Size, &storedAt); err != nil {
			return nil, err
		}
		if e.StoredAt, err = parseRFC3339(storedAt, "stored_at"); err != nil {
			return nil, err
		}
		entries = append(entries, &e)
	}

	return entries, rows.Err()
}
