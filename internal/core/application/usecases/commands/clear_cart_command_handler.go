package commands

import (
	"context"

	"booking/internal/core/domain/model/cart"
	"booking/internal/core/ports"
)

// ClearCartCommandHandler empties the cart and persists the empty snapshot.
//
// Example:
//
//	handler := NewClearCartCommandHandler(factory)
//	cmd, _ := NewClearCartCommand(sessionID)
//	state, _ := handler.Handle(ctx, cmd)
//	fmt.Println(state.IsEmpty()) // true
type ClearCartCommandHandler struct {
	factory ports.CartSessionFactory
}

// NewClearCartCommandHandler creates the handler.
func NewClearCartCommandHandler(factory ports.CartSessionFactory) ClearCartCommandHandler {
	return ClearCartCommandHandler{factory: factory}
}

func (h ClearCartCommandHandler) Handle(ctx context.Context, cmd ClearCartCommand) (cart.State, error) {
	if err := cmd.Validate(); err != nil {
		return cart.State{}, err
	}

	session := h.factory.Create(cmd.SessionID())
	if err := session.Begin(ctx); err != nil {
		return cart.State{}, err
	}
	defer session.End(ctx)

	store := session.CartStore()
	store.Clear(ctx)
	return store.Snapshot(), nil
}
