package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore keeps the snapshot as a single JSONB row keyed by the
// snapshot name. It is the durable alternative to RedisStore for operators
// who already run Postgres.
type PostgresStore struct {
	pool *pgxpool.Pool
	key  string
}

// NewPostgresStore builds a PostgresStore and ensures the backing table
// exists.
func NewPostgresStore(ctx context.Context, pool *pgxpool.Pool, key string) (*PostgresStore, error) {
	if key == "" {
		key = DefaultSnapshotKey
	}
	const ddl = `CREATE TABLE IF NOT EXISTS shop_snapshots (
		name TEXT PRIMARY KEY,
		payload JSONB NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`
	if _, err := pool.Exec(ctx, ddl); err != nil {
		return nil, fmt.Errorf("catalog: ensure snapshot table: %w", err)
	}
	return &PostgresStore{pool: pool, key: key}, nil
}

// Load reads the persisted collection. A missing row, a missing table, or
// a server-side error all collapse to ErrNoSnapshot so startup can fall
// back to seeding instead of crashing.
func (s *PostgresStore) Load(ctx context.Context) ([]Product, error) {
	const query = `SELECT payload FROM shop_snapshots WHERE name = $1`
	var raw []byte
	err := s.pool.QueryRow(ctx, query, s.key).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNoSnapshot
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return nil, fmt.Errorf("%w: %s", ErrNoSnapshot, pgErr.Code)
	}
	if err != nil {
		return nil, fmt.Errorf("catalog: load snapshot: %w", err)
	}
	var products []Product
	if err := json.Unmarshal(raw, &products); err != nil {
		return nil, fmt.Errorf("catalog: decode snapshot: %w", err)
	}
	return products, nil
}

// Save upserts the serialized collection under the snapshot name.
func (s *PostgresStore) Save(ctx context.Context, products []Product) error {
	raw, err := json.Marshal(products)
	if err != nil {
		return fmt.Errorf("catalog: encode snapshot: %w", err)
	}
	const query = `INSERT INTO shop_snapshots (name, payload, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (name) DO UPDATE SET payload = EXCLUDED.payload, updated_at = now()`
	if _, err := s.pool.Exec(ctx, query, s.key, raw); err != nil {
		return fmt.Errorf("catalog: save snapshot: %w", err)
	}
	return nil
}
