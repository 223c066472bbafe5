package session

import (
	"context"

	"booking/internal/core/application/cartstore"
	"booking/internal/core/domain/model/kernel"
	"booking/internal/core/ports"
)

var _ ports.CartSession = (*Session)(nil)

// Session is the unit of work of one visitor. Between Begin and End it holds
// the visitor's keyed lock and a cart store hydrated from the visitor's
// bucket, so concurrent requests of the same visitor never interleave their
// read-modify-write cycles. Requests of different visitors do not contend.
//
// Example usage:
//
//	s := factory.Create(sessionID)
//	if err := s.Begin(ctx); err != nil {
//	    return err
//	}
//	defer s.End(ctx)
//
//	s.CartStore().AddLine(ctx, candidate)
//	state := s.CartStore().Snapshot()
type Session struct {
	id      kernel.SessionID
	bucket  ports.KeyValueStore
	factory *Factory

	store  *cartstore.Store
	locked bool
}

// Begin takes the visitor's lock and hydrates the cart from storage.
// Calling Begin on a session that is already begun is a no-op.
//
// Waiting for the lock is not interruptible. Once the lock is held, a
// context that was cancelled or timed out in the meantime releases it again
// and Begin returns the context error without reading storage.
//
// Example:
//
//	ctx, cancel := context.WithTimeout(ctx, time.Second)
//	defer cancel()
//	if err := s.Begin(ctx); err != nil {
//	    return err // invalid session id or ctx.Err()
//	}
//	defer s.End(ctx)
func (s *Session) Begin(ctx context.Context) error {
	if s.locked {
		return nil
	}
	if err := s.id.Validate(); err != nil {
		return err
	}

	key := s.id.String()
	s.factory.locks.Lock(key)
	if err := ctx.Err(); err != nil {
		s.factory.locks.Unlock(key)
		return err
	}
	s.locked = true

	s.store = cartstore.New(s.bucket, s.factory.logger.With("session_id", key), s.factory.metrics)
	s.store.Hydrate(ctx)
	return nil
}

// End drops the hydrated store and releases the visitor's lock. It is safe to
// call End on a session that was never begun.
func (s *Session) End(_ context.Context) {
	if !s.locked {
		return
	}
	s.locked = false
	s.store = nil
	s.factory.locks.Unlock(s.id.String())
}

// CartStore returns the hydrated cart store. It returns nil outside Begin/End.
func (s *Session) CartStore() ports.CartStore {
	if s.store == nil {
		return nil
	}
	return s.store
}

// BookingRepository returns the receipt records of the visitor's bucket.
// It does not require Begin.
func (s *Session) BookingRepository() ports.BookingRepository {
	return &bookingRepository{kv: s.bucket}
}

// QuoteRepository returns the quote records of the visitor's bucket.
// It does not require Begin.
func (s *Session) QuoteRepository() ports.QuoteRepository {
	return &quoteRepository{kv: s.bucket}
}
