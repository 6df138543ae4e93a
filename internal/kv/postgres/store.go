package postgres

import (
	"context"
	"database/sql"
	"errors"

	"cmsapi/internal/kv"
)

// Store is a PostgreSQL implementation of kv.Store. Records live in a single
// kv_entries table keyed by text; values are stored as JSONB. It uses
// database/sql with parameterized queries and contains no business logic.
type Store struct {
	db *sql.DB
}

// NewStore creates a new Postgres-backed key-value store.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

var _ kv.Store = (*Store)(nil)

// Get returns the value stored under key.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	const q = `SELECT v FROM kv_entries WHERE k = $1`
	var value []byte
	if err := s.db.QueryRowContext(ctx, q, key).Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, kv.ErrKeyNotFound
		}
		return nil, err
	}
	return value, nil
}

// Put stores value under key, overwriting any existing value.
func (s *Store) Put(ctx context.Context, key string, value []byte) error {
	const q = `
		INSERT INTO kv_entries (k, v, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (k) DO UPDATE SET v = EXCLUDED.v, updated_at = now()
	`
	_, err := s.db.ExecContext(ctx, q, key, value)
	return err
}

// Delete removes the value under key. Deleting an absent key is not an error.
func (s *Store) Delete(ctx context.Context, key string) error {
	const q = `DELETE FROM kv_entries WHERE k = $1`
	res, err := s.db.ExecContext(ctx, q, key)
	if err != nil {
		return err
	}
	_, _ = res.RowsAffected()
	return nil
}

// ListPrefix returns values whose keys start with prefix using LIMIT/OFFSET
// pagination, plus a total count of matching keys.
func (s *Store) ListPrefix(ctx context.Context, prefix string, limit, offset int) (*kv.Page, error) {
	const qCount = `SELECT COUNT(*) FROM kv_entries WHERE k LIKE $1 || '%'`
	var total int
	if err := s.db.QueryRowContext(ctx, qCount, prefix).Scan(&total); err != nil {
		return nil, err
	}

	const qList = `
		SELECT v FROM kv_entries
		WHERE k LIKE $1 || '%'
		ORDER BY k
		LIMIT $2 OFFSET $3
	`
	rows, err := s.db.QueryContext(ctx, qList, prefix, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	values := make([][]byte, 0)
	for rows.Next() {
		var v []byte
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &kv.Page{Values: values, Total: total}, nil
}
