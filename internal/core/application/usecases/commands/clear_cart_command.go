package commands

import (
	"errors"

	"booking/internal/core/domain/model/kernel"
	"booking/internal/pkg/guard"
)

// ErrClearCartCommandIsNotConstructed is returned by Validate for a zero-value command.
var ErrClearCartCommandIsNotConstructed = errors.New(
	"ClearCartCommand must be created via NewClearCartCommand constructor",
)

// ClearCartCommand empties the session's cart.
type ClearCartCommand struct { //nolint:recvcheck //using for validation
	sessionID kernel.SessionID

	guard guard.ConstructorGuard
}

// NewClearCartCommand requires a valid session id.
func NewClearCartCommand(sessionID kernel.SessionID) (ClearCartCommand, error) {
	if err := sessionID.Validate(); err != nil {
		return ClearCartCommand{}, err
	}
	return ClearCartCommand{sessionID: sessionID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through NewClearCartCommand.
func (c ClearCartCommand) Validate() error {
	return c.guard.Validate(ErrClearCartCommandIsNotConstructed)
}

func (c ClearCartCommand) SessionID() kernel.SessionID {
	return c.sessionID
}
