// Package ports defines the contracts between the booking core and the
// infrastructure around it: the durable key-value store the cart persists to,
// the per-session unit of work and the record repositories layered on top.
package ports

import (
	"context"
	"time"
)

// KeyValueStore is the durable blob store behind a visitor's cart.
// Values are opaque strings; keys are chosen by the caller.
type KeyValueStore interface {
	// Read returns the value stored under key. found is false when nothing was
	// ever written there; err is reserved for storage failures.
	Read(ctx context.Context, key string) (value string, found bool, err error)

	// Write overwrites the value stored under key.
	Write(ctx context.Context, key string, value string) error
}

// StaleSnapshotSweeper deletes stored values that have not been written since
// a cut-off. Backends with native expiry implement it as a no-op.
type StaleSnapshotSweeper interface {
	DeleteStale(ctx context.Context, olderThan time.Time) (int64, error)
}
