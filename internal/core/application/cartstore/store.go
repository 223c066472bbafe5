package cartstore

import (
	"context"
	"log/slog"
	"sync"

	"booking/internal/core/domain/model/cart"
	"booking/internal/core/ports"
	"booking/internal/pkg/metrics"
)

var _ ports.CartStore = (*Store)(nil)

// Store is the write-through cart of one session.
type Store struct {
	mu      sync.RWMutex
	state   cart.State
	kv      ports.KeyValueStore
	logger  *slog.Logger
	metrics *metrics.CartMetrics
}

// New returns a store holding the empty cart. Call Hydrate to restore a
// previously saved snapshot.
func New(kv ports.KeyValueStore, logger *slog.Logger, m *metrics.CartMetrics) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		state:   cart.Empty(),
		kv:      kv,
		logger:  logger.With("component", "cart_store"),
		metrics: m,
	}
}

// Hydrate adopts the stored snapshot when it is non-empty. Read and parse
// errors are logged and leave the current state in place.
func (s *Store) Hydrate(ctx context.Context) {
	raw, found, err := s.kv.Read(ctx, StorageKey)
	if err != nil {
		s.metrics.IncReadFailure()
		s.logger.WarnContext(ctx, "failed to read cart snapshot", "error", err)
		return
	}
	if !found {
		return
	}

	restored, ok, err := DecodeSnapshot(raw)
	if err != nil {
		s.metrics.IncReadFailure()
		s.logger.WarnContext(ctx, "discarding malformed cart snapshot", "error", err)
		return
	}
	if !ok {
		return
	}

	s.mu.Lock()
	s.state = cart.Apply(s.state, cart.LoadSnapshot{State: restored})
	items := s.state.TotalItems()
	s.mu.Unlock()

	s.metrics.IncRestore()
	s.logger.DebugContext(ctx, "cart restored", "total_items", items)
}

func (s *Store) AddLine(ctx context.Context, c cart.Candidate) {
	s.dispatch(ctx, cart.AddLine{Candidate: c})
}

func (s *Store) RemoveLine(ctx context.Context, id string) {
	s.dispatch(ctx, cart.RemoveLine{ID: id})
}

// SetQuantity removes the line when quantity is zero or negative.
func (s *Store) SetQuantity(ctx context.Context, id string, quantity int) {
	s.dispatch(ctx, cart.SetQuantity{ID: id, Quantity: quantity})
}

func (s *Store) UpdateLineDetails(ctx context.Context, id string, d cart.Details) {
	s.dispatch(ctx, cart.UpdateDetails{ID: id, Details: d})
}

func (s *Store) Clear(ctx context.Context) {
	s.dispatch(ctx, cart.Clear{})
}

// Snapshot returns the current state. The value is immutable.
func (s *Store) Snapshot() cart.State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

func (s *Store) dispatch(ctx context.Context, a cart.Action) {
	s.mu.Lock()
	s.state = cart.Apply(s.state, a)
	next := s.state
	s.mu.Unlock()

	s.metrics.IncMutation(a.Kind())
	s.persist(ctx, next)
}

func (s *Store) persist(ctx context.Context, state cart.State) {
	raw, err := EncodeSnapshot(state)
	if err == nil {
		err = s.kv.Write(ctx, StorageKey, raw)
	}
	if err != nil {
		s.metrics.IncWriteFailure()
		s.logger.ErrorContext(ctx, "failed to persist cart snapshot", "error", err)
	}
}
