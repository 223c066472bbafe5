package commands

import (
	"errors"
	"fmt"

	"booking/internal/core/domain/model/cart"
	"booking/internal/core/domain/model/kernel"
	"booking/internal/pkg/errs"
	"booking/internal/pkg/guard"
)

// ErrUpdateLineDetailsCommandIsNotConstructed is returned by Validate for a zero-value command.
var ErrUpdateLineDetailsCommandIsNotConstructed = errors.New(
	"UpdateLineDetailsCommand must be created via NewUpdateLineDetailsCommand constructor",
)

// UpdateLineDetailsCommand merges a partial update into a line; the line is
// re-priced afterwards.
type UpdateLineDetailsCommand struct { //nolint:recvcheck //using for validation
	sessionID kernel.SessionID
	lineID    string
	details   cart.Details

	guard guard.ConstructorGuard
}

// NewUpdateLineDetailsCommand validates the fields present in details.
//
// Example:
//
//	distance := 100.0
//	cmd, err := NewUpdateLineDetailsCommand(sessionID, "cargo-transport", cart.Details{DistanceKm: &distance})
func NewUpdateLineDetailsCommand(
	sessionID kernel.SessionID,
	lineID string,
	details cart.Details,
) (UpdateLineDetailsCommand, error) {
	cmd := UpdateLineDetailsCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setSessionID(sessionID),
		cmd.setLineID(lineID),
		cmd.setDetails(details),
	); err != nil {
		return UpdateLineDetailsCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through NewUpdateLineDetailsCommand.
func (c UpdateLineDetailsCommand) Validate() error {
	return c.guard.Validate(ErrUpdateLineDetailsCommandIsNotConstructed)
}

func (c UpdateLineDetailsCommand) SessionID() kernel.SessionID {
	return c.sessionID
}

func (c UpdateLineDetailsCommand) LineID() string {
	return c.lineID
}

// Details returns the partial update. Nil fields are left unchanged.
func (c UpdateLineDetailsCommand) Details() cart.Details {
	return c.details
}

func (c *UpdateLineDetailsCommand) setSessionID(id kernel.SessionID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.sessionID = id
	return nil
}

func (c *UpdateLineDetailsCommand) setLineID(id string) error {
	if id == "" {
		return errs.NewValueIsRequiredError("lineId")
	}
	c.lineID = id
	return nil
}

func (c *UpdateLineDetailsCommand) setDetails(d cart.Details) error {
	if d.VehicleType != nil && *d.VehicleType != "" && !d.VehicleType.IsKnown() {
		return errs.NewValueIsInvalidErrorWithCause("vehicleType",
			fmt.Errorf("%q is not a known vehicle", d.VehicleType.String()))
	}
	if d.WeightUnit != nil && *d.WeightUnit != "" && !d.WeightUnit.IsKnown() {
		return errs.NewValueIsInvalidErrorWithCause("weightUnit",
			fmt.Errorf("%q is not kg or tons", d.WeightUnit.String()))
	}
	c.details = d
	return nil
}
