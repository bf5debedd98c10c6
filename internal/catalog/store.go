package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// DefaultSnapshotKey is the fixed storage key holding the serialized
// collection, carried over from the first version of the app.
const DefaultSnapshotKey = "boku_no_shop_data"

// ErrNoSnapshot signals that no persisted collection exists yet.
// Callers treat it as the cue to seed.
var ErrNoSnapshot = errors.New("catalog: no persisted snapshot")

// SnapshotStore persists the product collection as one serialized value
// under one fixed key. Load happens once at startup; Save after every
// successful mutation. The whole value is swapped atomically, so there is
// nothing transactional to coordinate.
type SnapshotStore interface {
	Load(ctx context.Context) ([]Product, error)
	Save(ctx context.Context, products []Product) error
}

// RedisStore keeps the snapshot as a JSON string in Redis.
type RedisStore struct {
	client *redis.Client
	key    string
}

// NewRedisStore builds a RedisStore. An empty key falls back to
// DefaultSnapshotKey.
func NewRedisStore(client *redis.Client, key string) *RedisStore {
	if key == "" {
		key = DefaultSnapshotKey
	}
	return &RedisStore{client: client, key: key}
}

// Load reads and decodes the persisted collection. A missing key yields
// ErrNoSnapshot; a corrupt payload is reported as an error and left to the
// caller to treat as absent state.
func (s *RedisStore) Load(ctx context.Context) ([]Product, error) {
	raw, err := s.client.Get(ctx, s.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNoSnapshot
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

// Save overwrites the persisted collection with the given snapshot.
func (s *RedisStore) Save(ctx context.Context, products []Product) error {
	raw, err := json.Marshal(products)
	if err != nil {
		return fmt.Errorf("catalog: encode snapshot: %w", err)
	}
	if err := s.client.Set(ctx, s.key, raw, 0).Err(); err != nil {
		return fmt.Errorf("catalog: save snapshot: %w", err)
	}
	return nil
}
