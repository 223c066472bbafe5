package ports

import (
	"context"

	"booking/internal/core/domain/model/cart"
)

// CartStore is the call surface the presentation layer uses to change a cart.
// None of the mutations fail: persistence problems are logged by the store and
// the in-memory state still changes.
type CartStore interface {
	AddLine(ctx context.Context, candidate cart.Candidate)
	RemoveLine(ctx context.Context, id string)
	SetQuantity(ctx context.Context, id string, quantity int)
	UpdateLineDetails(ctx context.Context, id string, details cart.Details)
	Clear(ctx context.Context)

	// Snapshot returns the current state. The returned value is a copy.
	Snapshot() cart.State
}
