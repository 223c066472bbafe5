// Package memorykv keeps cart storage in process memory. Data does not
// survive a restart; it backs development runs and tests.
package memorykv

import (
	"context"
	"sync"
	"time"

	"booking/internal/core/ports"
)

var (
	_ ports.KeyValueStore        = (*Bucket)(nil)
	_ ports.StaleSnapshotSweeper = (*Repository)(nil)
)

type entry struct {
	value     string
	updatedAt time.Time
}

// Repository holds every namespace in one map guarded by a single lock.
type Repository struct {
	mu      sync.RWMutex
	entries map[string]map[string]entry
	now     func() time.Time
}

// NewRepository creates an empty in-memory repository.
//
// Example:
//
//	repo := memorykv.NewRepository()
//	factory := session.NewFactory(repo, logger, nil)
func NewRepository() *Repository {
	return &Repository{
		entries: make(map[string]map[string]entry),
		now:     time.Now,
	}
}

// Bucket returns the key-value view of one namespace.
func (r *Repository) Bucket(namespace string) ports.KeyValueStore {
	return &Bucket{repo: r, namespace: namespace}
}

// DeleteStale removes entries last written before olderThan and drops
// namespaces left empty.
func (r *Repository) DeleteStale(_ context.Context, olderThan time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var deleted int64
	for namespace, bucket := range r.entries {
		for key, e := range bucket {
			if e.updatedAt.Before(olderThan) {
				delete(bucket, key)
				deleted++
			}
		}
		if len(bucket) == 0 {
			delete(r.entries, namespace)
		}
	}
	return deleted, nil
}

// Bucket is a namespaced ports.KeyValueStore.
type Bucket struct {
	repo      *Repository
	namespace string
}

// Read never fails.
//
// Example:
//
//	b := repo.Bucket("visitor")
//	_ = b.Write(ctx, "iyannar_cart_data", `{"items":[]}`)
//	raw, ok, _ := b.Read(ctx, "iyannar_cart_data") // `{"items":[]}`, true
func (b *Bucket) Read(_ context.Context, key string) (string, bool, error) {
	b.repo.mu.RLock()
	defer b.repo.mu.RUnlock()

	e, ok := b.repo.entries[b.namespace][key]
	return e.value, ok, nil
}

// Write stores the value and stamps it with the repository clock.
func (b *Bucket) Write(_ context.Context, key string, value string) error {
	b.repo.mu.Lock()
	defer b.repo.mu.Unlock()

	bucket, ok := b.repo.entries[b.namespace]
	if !ok {
		bucket = make(map[string]entry)
		b.repo.entries[b.namespace] = bucket
	}
	bucket[key] = entry{value: value, updatedAt: b.repo.now()}
	return nil
}
