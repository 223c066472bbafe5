package booking

import (
	"errors"
	"strconv"
	"time"

	"booking/internal/core/domain/model/cart"
	"booking/internal/pkg/errs"
)

const orderIDPrefix = "IYE"

var (
	ErrBookingIsNotConstructed = errors.New("Booking must be created via NewBooking or RestoreBooking constructor")
	ErrCartIsEmpty             = errs.NewValueIsInvalidErrorWithCause("cart", errors.New("cannot book an empty cart"))
)

// NewOrderID derives the public order number from the confirmation time.
func NewOrderID(at time.Time) string {
	return orderIDPrefix + strconv.FormatInt(at.UnixMilli(), 10)
}

// Booking is the receipt of a confirmed checkout.
type Booking struct {
	orderID   string
	contents  cart.State
	address   Address
	payment   Payment
	timestamp time.Time

	isConstructed bool
}

// NewBooking freezes the cart contents into a receipt.
// The cart must hold at least one line and the address must be complete.
func NewBooking(contents cart.State, address Address, payment Payment, at time.Time) (*Booking, error) {
	if contents.IsEmpty() {
		return nil, ErrCartIsEmpty
	}
	if err := errors.Join(address.Validate(), payment.Method.Validate()); err != nil {
		return nil, err
	}

	return &Booking{
		orderID:       NewOrderID(at),
		contents:      contents,
		address:       address.withDefaults(),
		payment:       payment,
		timestamp:     at.UTC(),
		isConstructed: true,
	}, nil
}

// RestoreBooking rebuilds a receipt read back from storage. Totals are
// re-derived from the stored lines.
func RestoreBooking(orderID string, lines []cart.Line, address Address, payment Payment, at time.Time) (*Booking, error) {
	if orderID == "" {
		return nil, errs.NewValueIsRequiredError("orderId")
	}
	return &Booking{
		orderID:       orderID,
		contents:      cart.NewState(lines),
		address:       address,
		payment:       payment,
		timestamp:     at.UTC(),
		isConstructed: true,
	}, nil
}

func (b *Booking) Validate() error {
	if b == nil || !b.isConstructed {
		return ErrBookingIsNotConstructed
	}
	return nil
}

func (b *Booking) OrderID() string {
	return b.orderID
}

func (b *Booking) Lines() []cart.Line {
	return b.contents.Lines()
}

func (b *Booking) TotalItems() int {
	return b.contents.TotalItems()
}

// TotalPrice is the sum of calculated fares. Manually quoted lines add nothing,
// so a positive quantity with a zero total means the booking awaits a quote.
func (b *Booking) TotalPrice() int {
	return b.contents.TotalPrice()
}

// NeedsQuote reports whether any line is priced manually.
func (b *Booking) NeedsQuote() bool {
	for _, l := range b.contents.Lines() {
		if l.CalculatedPrice == 0 {
			return true
		}
	}
	return false
}

func (b *Booking) Address() Address {
	return b.address
}

func (b *Booking) Payment() Payment {
	return b.payment
}

func (b *Booking) Timestamp() time.Time {
	return b.timestamp
}
