package commands

import (
	"context"

	"booking/internal/core/domain/model/cart"
	"booking/internal/core/ports"
)

// RemoveLineCommandHandler deletes a line. Unknown ids leave the cart as is.
type RemoveLineCommandHandler struct {
	factory ports.CartSessionFactory
}

// NewRemoveLineCommandHandler creates the handler.
func NewRemoveLineCommandHandler(factory ports.CartSessionFactory) RemoveLineCommandHandler {
	return RemoveLineCommandHandler{factory: factory}
}

func (h RemoveLineCommandHandler) Handle(ctx context.Context, cmd RemoveLineCommand) (cart.State, error) {
	if err := cmd.Validate(); err != nil {
		return cart.State{}, err
	}

	session := h.factory.Create(cmd.SessionID())
	if err := session.Begin(ctx); err != nil {
		return cart.State{}, err
	}
	defer session.End(ctx)

	store := session.CartStore()
	store.RemoveLine(ctx, cmd.LineID())
	return store.Snapshot(), nil
}
