package commands

import (
	"errors"

	"booking/internal/core/domain/model/booking"
	"booking/internal/core/domain/model/kernel"
	"booking/internal/pkg/guard"
)

// ErrCheckoutCommandIsNotConstructed is returned by Validate for a zero-value command.
var ErrCheckoutCommandIsNotConstructed = errors.New(
	"CheckoutCommand must be created via NewCheckoutCommand constructor",
)

// CheckoutCommand turns the session's cart into a booking receipt.
// The payment form is reduced to a booking.Payment on construction, so card
// and account numbers never reach the handler.
type CheckoutCommand struct { //nolint:recvcheck //using for validation
	sessionID kernel.SessionID
	address   booking.Address
	payment   booking.Payment

	guard guard.ConstructorGuard
}

// NewCheckoutCommand validates the address and the payment form. Card
// methods need the card number, expiry, cvv and holder name; net banking
// needs the bank name.
//
// Example:
//
//	cmd, err := NewCheckoutCommand(sessionID, address, booking.PaymentForm{Method: booking.UPI})
//	if err != nil {
//	    return err // every invalid field joined
//	}
func NewCheckoutCommand(
	sessionID kernel.SessionID,
	address booking.Address,
	payment booking.PaymentForm,
) (CheckoutCommand, error) {
	cmd := CheckoutCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setSessionID(sessionID),
		cmd.setAddress(address),
		cmd.setPayment(payment),
	); err != nil {
		return CheckoutCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through NewCheckoutCommand.
func (c CheckoutCommand) Validate() error {
	return c.guard.Validate(ErrCheckoutCommandIsNotConstructed)
}

// SessionID returns the cart owner.
func (c CheckoutCommand) SessionID() kernel.SessionID {
	return c.sessionID
}

// Address returns the delivery address.
func (c CheckoutCommand) Address() booking.Address {
	return c.address
}

// Payment returns the reduced payment details.
func (c CheckoutCommand) Payment() booking.Payment {
	return c.payment
}

func (c *CheckoutCommand) setSessionID(id kernel.SessionID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.sessionID = id
	return nil
}

func (c *CheckoutCommand) setAddress(address booking.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	c.address = address
	return nil
}

func (c *CheckoutCommand) setPayment(form booking.PaymentForm) error {
	payment, err := booking.NewPayment(form)
	if err != nil {
		return err
	}
	c.payment = payment
	return nil
}
