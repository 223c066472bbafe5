package commands

import (
	"errors"

	"booking/internal/core/domain/model/kernel"
	"booking/internal/pkg/errs"
	"booking/internal/pkg/guard"
)

// ErrSetQuantityCommandIsNotConstructed is returned by Validate for a zero-value command.
var ErrSetQuantityCommandIsNotConstructed = errors.New(
	"SetQuantityCommand must be created via NewSetQuantityCommand constructor",
)

// SetQuantityCommand replaces a line's quantity. Any integer is accepted:
// zero and negative values remove the line.
type SetQuantityCommand struct { //nolint:recvcheck //using for validation
	sessionID kernel.SessionID
	lineID    string
	quantity  int

	guard guard.ConstructorGuard
}

// NewSetQuantityCommand requires a valid session id and a non-empty line id.
//
// Example:
//
//	cmd, _ := NewSetQuantityCommand(sessionID, "vehicle-hire", 3)
//	state, _ := NewSetQuantityCommandHandler(factory).Handle(ctx, cmd)
//	fmt.Println(state.TotalPrice()) // 3636
func NewSetQuantityCommand(sessionID kernel.SessionID, lineID string, quantity int) (SetQuantityCommand, error) {
	cmd := SetQuantityCommand{
		quantity: quantity,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSessionID(sessionID),
		cmd.setLineID(lineID),
	); err != nil {
		return SetQuantityCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through NewSetQuantityCommand.
func (c SetQuantityCommand) Validate() error {
	return c.guard.Validate(ErrSetQuantityCommandIsNotConstructed)
}

func (c SetQuantityCommand) SessionID() kernel.SessionID {
	return c.sessionID
}

func (c SetQuantityCommand) LineID() string {
	return c.lineID
}

// Quantity returns the requested quantity, possibly zero or negative.
func (c SetQuantityCommand) Quantity() int {
	return c.quantity
}

func (c *SetQuantityCommand) setSessionID(id kernel.SessionID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.sessionID = id
	return nil
}

func (c *SetQuantityCommand) setLineID(id string) error {
	if id == "" {
		return errs.NewValueIsRequiredError("lineId")
	}
	c.lineID = id
	return nil
}
