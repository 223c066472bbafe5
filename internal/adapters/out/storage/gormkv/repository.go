package gormkv

import (
	"context"
	"errors"
	"time"

	"booking/internal/core/ports"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	_ ports.KeyValueStore        = (*Bucket)(nil)
	_ ports.StaleSnapshotSweeper = (*Repository)(nil)
)

// Repository owns the cart_storage table.
type Repository struct {
	db  *gorm.DB
	now func() time.Time
}

// Option customizes a Repository.
type Option func(*Repository)

// WithClock overrides the clock used to stamp writes.
func WithClock(now func() time.Time) Option {
	return func(r *Repository) {
		r.now = now
	}
}

// NewRepository creates a repository over db. Call Migrate once before use.
//
// Example:
//
//	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
//	if err != nil {
//	    return err
//	}
//	repo := gormkv.NewRepository(db)
//	if err := repo.Migrate(ctx); err != nil {
//	    return err
//	}
func NewRepository(db *gorm.DB, opts ...Option) *Repository {
	r := &Repository{db: db, now: time.Now}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Migrate creates or updates the cart_storage table.
func (r *Repository) Migrate(ctx context.Context) error {
	return r.db.WithContext(ctx).AutoMigrate(&EntryDTO{})
}

// Bucket returns the key-value view of one namespace. Buckets are cheap and
// hold no connection of their own.
func (r *Repository) Bucket(namespace string) ports.KeyValueStore {
	return &Bucket{repo: r, namespace: namespace}
}

// DeleteStale removes every entry, in any namespace, last written before olderThan.
func (r *Repository) DeleteStale(ctx context.Context, olderThan time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("updated_at < ?", olderThan.UTC()).
		Delete(&EntryDTO{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// Bucket is a namespaced ports.KeyValueStore. Every row it reads or writes
// carries its namespace, so buckets of different visitors never see each
// other's keys.
type Bucket struct {
	repo      *Repository
	namespace string
}

// Read returns the value stored under key. A missing row is reported as
// ok == false with a nil error.
//
// Example:
//
//	raw, ok, err := repo.Bucket(sessionID.String()).Read(ctx, "iyannar_cart_data")
//	switch {
//	case err != nil:
//	    return err
//	case !ok:
//	    // nothing stored yet
//	}
func (b *Bucket) Read(ctx context.Context, key string) (string, bool, error) {
	var dto EntryDTO
	err := b.repo.db.WithContext(ctx).
		Where(map[string]any{"namespace": b.namespace, "key": key}).
		Take(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, err
	}
	return dto.Value, true, nil
}

// Write upserts the value and refreshes its timestamp.
func (b *Bucket) Write(ctx context.Context, key string, value string) error {
	dto := EntryDTO{
		Namespace: b.namespace,
		Key:       key,
		Value:     value,
		UpdatedAt: b.repo.now().UTC(),
	}
	return b.repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "namespace"}, {Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&dto).Error
}
