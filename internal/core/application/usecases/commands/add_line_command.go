package commands

import (
	"errors"

	"booking/internal/core/domain/model/kernel"
	"booking/internal/core/domain/services"
	"booking/internal/pkg/errs"
	"booking/internal/pkg/guard"
)

// ErrAddLineCommandIsNotConstructed is returned by Validate for a zero-value command.
var ErrAddLineCommandIsNotConstructed = errors.New(
	"AddLineCommand must be created via NewAddLineCommand constructor",
)

// AddLineCommand puts a catalogue service into the cart. Details are optional:
// without them the service is added with the catalogue defaults, as the
// "Add to cart" button does; with them the booking form's trip is priced in.
type AddLineCommand struct { //nolint:recvcheck //using for validation
	sessionID kernel.SessionID
	serviceID string
	details   *services.BookingDetails

	guard guard.ConstructorGuard
}

// NewAddLineCommand creates a command for the session's cart. Details, when
// given, must describe a complete trip; they are copied.
//
// Example:
//
//	details := services.BookingDetails{
//	    FromLocation: "Chennai",
//	    ToLocation:   "Madurai",
//	    VehicleType:  kernel.MediumTruck,
//	    CargoType:    "textiles",
//	    Weight:       2,
//	    WeightUnit:   kernel.Tons,
//	    DistanceKm:   100,
//	}
//	cmd, err := NewAddLineCommand(sessionID, "cargo-transport", &details)
//	if err != nil {
//	    return err
//	}
func NewAddLineCommand(
	sessionID kernel.SessionID,
	serviceID string,
	details *services.BookingDetails,
) (AddLineCommand, error) {
	cmd := AddLineCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setSessionID(sessionID),
		cmd.setServiceID(serviceID),
		cmd.setDetails(details),
	); err != nil {
		return AddLineCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through NewAddLineCommand.
func (c AddLineCommand) Validate() error {
	return c.guard.Validate(ErrAddLineCommandIsNotConstructed)
}

// SessionID returns the cart owner.
func (c AddLineCommand) SessionID() kernel.SessionID {
	return c.sessionID
}

// ServiceID returns the catalogue id of the service to add.
func (c AddLineCommand) ServiceID() string {
	return c.serviceID
}

// Details returns nil when the line is added without trip details.
func (c AddLineCommand) Details() *services.BookingDetails {
	return c.details
}

func (c *AddLineCommand) setSessionID(id kernel.SessionID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.sessionID = id
	return nil
}

func (c *AddLineCommand) setServiceID(id string) error {
	if id == "" {
		return errs.NewValueIsRequiredError("serviceId")
	}
	c.serviceID = id
	return nil
}

func (c *AddLineCommand) setDetails(details *services.BookingDetails) error {
	if details == nil {
		return nil
	}
	if err := details.Validate(); err != nil {
		return err
	}
	d := *details
	c.details = &d
	return nil
}
