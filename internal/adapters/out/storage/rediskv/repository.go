// Package rediskv stores cart snapshots in Redis. Entries expire on their own,
// so the stale sweep is a no-op.
package rediskv

import (
	"context"
	"errors"
	"time"

	"booking/internal/core/ports"

	"github.com/redis/go-redis/v9"
)

var (
	_ ports.KeyValueStore        = (*Bucket)(nil)
	_ ports.StaleSnapshotSweeper = (*Repository)(nil)
)

// commander is the subset of *redis.Client the repository needs.
type commander interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
}

// Repository keys entries as <prefix>:<namespace>:<key> and refreshes the TTL
// on every write. A zero TTL keeps entries forever.
type Repository struct {
	client commander
	prefix string
	ttl    time.Duration
}

// NewRepository creates a repository over a go-redis client.
//
// Example:
//
//	client := redis.NewClient(&redis.Options{Addr: "localhost:6379"})
//	if err := client.Ping(ctx).Err(); err != nil {
//	    return err
//	}
//	repo := rediskv.NewRepository(client, "booking", 30*24*time.Hour)
func NewRepository(client commander, prefix string, ttl time.Duration) *Repository {
	return &Repository{client: client, prefix: prefix, ttl: ttl}
}

// Bucket returns the key-value view of one namespace.
func (r *Repository) Bucket(namespace string) ports.KeyValueStore {
	return &Bucket{repo: r, namespace: namespace}
}

// DeleteStale always reports zero deletions; Redis expires entries itself.
func (r *Repository) DeleteStale(context.Context, time.Time) (int64, error) {
	return 0, nil
}

func (r *Repository) key(namespace, key string) string {
	if r.prefix == "" {
		return namespace + ":" + key
	}
	return r.prefix + ":" + namespace + ":" + key
}

// Bucket is a namespaced ports.KeyValueStore.
type Bucket struct {
	repo      *Repository
	namespace string
}

// Read returns the value stored under key. redis.Nil is reported as
// ok == false with a nil error.
//
// Example:
//
//	raw, ok, err := repo.Bucket(sessionID.String()).Read(ctx, "iyannar_cart_data")
//	if err != nil {
//	    return err
//	}
func (b *Bucket) Read(ctx context.Context, key string) (string, bool, error) {
	value, err := b.repo.client.Get(ctx, b.repo.key(b.namespace, key)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, err
	}
	return value, true, nil
}

// Write sets the value and restarts its TTL.
func (b *Bucket) Write(ctx context.Context, key string, value string) error {
	return b.repo.client.Set(ctx, b.repo.key(b.namespace, key), value, b.repo.ttl).Err()
}
