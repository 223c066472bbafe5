package ports

import (
	"context"

	"booking/internal/core/domain/model/booking"
	"booking/internal/core/domain/model/quote"
)

// BookingRepository keeps the most recent receipt of a session.
type BookingRepository interface {
	// SaveLast replaces the session's last booking.
	SaveLast(ctx context.Context, b *booking.Booking) error

	// GetLast returns the last booking, or an errs.ObjectNotFoundError.
	GetLast(ctx context.Context) (*booking.Booking, error)
}

// QuoteRepository keeps the most recent quote request of a session.
type QuoteRepository interface {
	SaveLatest(ctx context.Context, q *quote.Quote) error

	// GetLatest returns the latest quote, or an errs.ObjectNotFoundError.
	GetLatest(ctx context.Context) (*quote.Quote, error)
}
