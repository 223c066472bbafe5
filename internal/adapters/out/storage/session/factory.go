// Package session implements the per-visitor unit of work. A session scopes
// one storage namespace, serializes requests against it with a keyed lock and
// exposes the hydrated cart together with the booking and quote records.
package session

import (
	"log/slog"

	"booking/internal/core/domain/model/kernel"
	"booking/internal/core/ports"
	"booking/internal/pkg/metrics"

	"github.com/im7mortal/kmutex"
)

var _ ports.CartSessionFactory = (*Factory)(nil)

// Buckets hands out the key-value store of one namespace.
type Buckets interface {
	Bucket(namespace string) ports.KeyValueStore
}

// Factory creates sessions over one storage backend. All sessions created by
// the same factory share its keyed lock, so the factory must be a process-wide
// singleton for the serialization guarantee to hold.
//
// Example:
//
//	factory := session.NewFactory(memorykv.NewRepository(), logger, cartMetrics)
//	handler := commands.NewAddLineCommandHandler(factory)
type Factory struct {
	buckets Buckets
	locks   *kmutex.Kmutex
	logger  *slog.Logger
	metrics *metrics.CartMetrics
}

// NewFactory creates a session factory. A nil logger falls back to
// slog.Default and nil metrics disable cart instrumentation.
//
// Example:
//
//	client := redis.NewClient(&redis.Options{Addr: "localhost:6379"})
//	factory := session.NewFactory(rediskv.NewRepository(client, "booking", 720*time.Hour), logger, nil)
func NewFactory(buckets Buckets, logger *slog.Logger, m *metrics.CartMetrics) *Factory {
	if logger == nil {
		logger = slog.Default()
	}
	return &Factory{
		buckets: buckets,
		locks:   kmutex.New(),
		logger:  logger,
		metrics: m,
	}
}

// Create returns an idle session. Nothing is locked or read until Begin.
//
// Example:
//
//	s := factory.Create(sessionID)
//	if err := s.Begin(ctx); err != nil {
//	    return err
//	}
//	defer s.End(ctx)
func (f *Factory) Create(sessionID kernel.SessionID) ports.CartSession {
	return &Session{
		id:      sessionID,
		bucket:  f.buckets.Bucket(sessionID.String()),
		factory: f,
	}
}
