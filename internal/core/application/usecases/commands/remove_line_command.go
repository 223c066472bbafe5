package commands

import (
	"errors"

	"booking/internal/core/domain/model/kernel"
	"booking/internal/pkg/errs"
	"booking/internal/pkg/guard"
)

// ErrRemoveLineCommandIsNotConstructed is returned by Validate for a zero-value command.
var ErrRemoveLineCommandIsNotConstructed = errors.New(
	"RemoveLineCommand must be created via NewRemoveLineCommand constructor",
)

// RemoveLineCommand deletes one line, whatever its quantity.
type RemoveLineCommand struct { //nolint:recvcheck //using for validation
	sessionID kernel.SessionID
	lineID    string

	guard guard.ConstructorGuard
}

// NewRemoveLineCommand requires a valid session id and a non-empty line id.
func NewRemoveLineCommand(sessionID kernel.SessionID, lineID string) (RemoveLineCommand, error) {
	cmd := RemoveLineCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setSessionID(sessionID),
		cmd.setLineID(lineID),
	); err != nil {
		return RemoveLineCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through NewRemoveLineCommand.
func (c RemoveLineCommand) Validate() error {
	return c.guard.Validate(ErrRemoveLineCommandIsNotConstructed)
}

func (c RemoveLineCommand) SessionID() kernel.SessionID {
	return c.sessionID
}

// LineID returns the id of the line to delete.
func (c RemoveLineCommand) LineID() string {
	return c.lineID
}

func (c *RemoveLineCommand) setSessionID(id kernel.SessionID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.sessionID = id
	return nil
}

func (c *RemoveLineCommand) setLineID(id string) error {
	if id == "" {
		return errs.NewValueIsRequiredError("lineId")
	}
	c.lineID = id
	return nil
}
