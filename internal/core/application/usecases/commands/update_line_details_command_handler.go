package commands

import (
	"context"

	"booking/internal/core/domain/model/cart"
	"booking/internal/core/ports"
)

// UpdateLineDetailsCommandHandler merges trip details into a line and
// re-prices it. Unknown ids leave the cart as is.
type UpdateLineDetailsCommandHandler struct {
	factory ports.CartSessionFactory
}

// NewUpdateLineDetailsCommandHandler creates the handler.
func NewUpdateLineDetailsCommandHandler(factory ports.CartSessionFactory) UpdateLineDetailsCommandHandler {
	return UpdateLineDetailsCommandHandler{factory: factory}
}

func (h UpdateLineDetailsCommandHandler) Handle(ctx context.Context, cmd UpdateLineDetailsCommand) (cart.State, error) {
	if err := cmd.Validate(); err != nil {
		return cart.State{}, err
	}

	session := h.factory.Create(cmd.SessionID())
	if err := session.Begin(ctx); err != nil {
		return cart.State{}, err
	}
	defer session.End(ctx)

	store := session.CartStore()
	store.UpdateLineDetails(ctx, cmd.LineID(), cmd.Details())
	return store.Snapshot(), nil
}
