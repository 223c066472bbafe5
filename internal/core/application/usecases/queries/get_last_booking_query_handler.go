package queries

import (
	"context"

	"booking/internal/core/domain/model/booking"
	"booking/internal/core/ports"
)

// GetLastBookingQueryHandler returns errs.ErrObjectNotFound until the session checks out.
type GetLastBookingQueryHandler struct {
	factory ports.CartSessionFactory
}

// NewGetLastBookingQueryHandler creates the handler.
func NewGetLastBookingQueryHandler(factory ports.CartSessionFactory) GetLastBookingQueryHandler {
	return GetLastBookingQueryHandler{factory: factory}
}

// Handle returns an errs.ObjectNotFoundError when the session never checked out.
func (h GetLastBookingQueryHandler) Handle(ctx context.Context, query GetLastBookingQuery) (*booking.Booking, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	session := h.factory.Create(query.SessionID())
	if err := session.Begin(ctx); err != nil {
		return nil, err
	}
	defer session.End(ctx)

	return session.BookingRepository().GetLast(ctx)
}
