package commands

import (
	"context"
	"time"

	"booking/internal/core/domain/model/booking"
	"booking/internal/core/ports"
)

// CheckoutCommandHandler places the booking: it freezes the cart into a
// receipt, stores it as the session's last booking and empties the cart.
// The cart is left untouched when the receipt cannot be stored.
type CheckoutCommandHandler struct {
	factory ports.CartSessionFactory
	now     func() time.Time
}

// NewCheckoutCommandHandler creates the handler. Receipts are stamped with
// the wall clock.
func NewCheckoutCommandHandler(factory ports.CartSessionFactory) CheckoutCommandHandler {
	return CheckoutCommandHandler{factory: factory, now: time.Now}
}

// Handle returns booking.ErrCartIsEmpty when there is nothing to book.
//
// Example:
//
//	receipt, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, booking.ErrCartIsEmpty) {
//	    return err
//	}
//	fmt.Println(receipt.OrderID()) // IYE...
func (h CheckoutCommandHandler) Handle(ctx context.Context, cmd CheckoutCommand) (*booking.Booking, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	session := h.factory.Create(cmd.SessionID())
	if err := session.Begin(ctx); err != nil {
		return nil, err
	}
	defer session.End(ctx)

	store := session.CartStore()
	receipt, err := booking.NewBooking(store.Snapshot(), cmd.Address(), cmd.Payment(), h.now())
	if err != nil {
		return nil, err
	}

	if err = session.BookingRepository().SaveLast(ctx, receipt); err != nil {
		return nil, err
	}

	store.Clear(ctx)
	return receipt, nil
}
