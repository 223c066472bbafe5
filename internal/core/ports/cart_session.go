package ports

import (
	"context"

	"booking/internal/core/domain/model/kernel"
)

// CartSessionFactory opens a unit of work over one visitor session.
type CartSessionFactory interface {
	Create(sessionID kernel.SessionID) CartSession
}

// CartSession is the unit of work for one request against a session.
// Client code brackets its work with Begin and End:
//
//	session := factory.Create(sessionID)
//	if err := session.Begin(ctx); err != nil {
//	    return err
//	}
//	defer session.End(ctx)
//
//	session.CartStore().AddLine(ctx, candidate)
type CartSession interface {
	// Begin takes the session lock and hydrates the cart from storage.
	// Calling Begin twice without End is a no-op.
	Begin(ctx context.Context) error

	// End releases the session lock. It is safe to call without Begin.
	End(ctx context.Context)

	// CartStore returns the hydrated cart. Only valid between Begin and End.
	CartStore() CartStore

	BookingRepository() BookingRepository
	QuoteRepository() QuoteRepository
}
