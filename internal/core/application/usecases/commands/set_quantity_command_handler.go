package commands

import (
	"context"

	"booking/internal/core/domain/model/cart"
	"booking/internal/core/ports"
)

// SetQuantityCommandHandler replaces a line's quantity. Unknown ids leave the
// cart as is. Totals saturate instead of overflowing.
type SetQuantityCommandHandler struct {
	factory ports.CartSessionFactory
}

// NewSetQuantityCommandHandler creates the handler.
func NewSetQuantityCommandHandler(factory ports.CartSessionFactory) SetQuantityCommandHandler {
	return SetQuantityCommandHandler{factory: factory}
}

func (h SetQuantityCommandHandler) Handle(ctx context.Context, cmd SetQuantityCommand) (cart.State, error) {
	if err := cmd.Validate(); err != nil {
		return cart.State{}, err
	}

	session := h.factory.Create(cmd.SessionID())
	if err := session.Begin(ctx); err != nil {
		return cart.State{}, err
	}
	defer session.End(ctx)

	store := session.CartStore()
	store.SetQuantity(ctx, cmd.LineID(), cmd.Quantity())
	return store.Snapshot(), nil
}
