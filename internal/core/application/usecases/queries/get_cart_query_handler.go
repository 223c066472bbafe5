package queries

import (
	"context"

	"booking/internal/core/domain/model/cart"
	"booking/internal/core/ports"
)

// GetCartQueryHandler returns the session's cart as restored from storage.
type GetCartQueryHandler struct {
	factory ports.CartSessionFactory
}

// NewGetCartQueryHandler creates the handler.
//
// Example:
//
//	query, _ := NewGetCartQuery(sessionID)
//	state, err := NewGetCartQueryHandler(factory).Handle(ctx, query)
func NewGetCartQueryHandler(factory ports.CartSessionFactory) GetCartQueryHandler {
	return GetCartQueryHandler{factory: factory}
}

// Handle hydrates the cart and returns a copy of its state.
func (h GetCartQueryHandler) Handle(ctx context.Context, query GetCartQuery) (cart.State, error) {
	if err := query.Validate(); err != nil {
		return cart.State{}, err
	}

	session := h.factory.Create(query.SessionID())
	if err := session.Begin(ctx); err != nil {
		return cart.State{}, err
	}
	defer session.End(ctx)

	return session.CartStore().Snapshot(), nil
}
