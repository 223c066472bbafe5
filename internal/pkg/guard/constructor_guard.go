// Package guard marks values that were built through their constructor so the
// zero value of a command, query or value object can be told apart from a
// properly initialised one.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded in types whose zero value is not usable.
//
// Example:
//
//	type RemoveLineCommand struct {
//	    lineID string
//	    guard  guard.ConstructorGuard
//	}
//
//	func NewRemoveLineCommand(lineID string) (RemoveLineCommand, error) {
//	    return RemoveLineCommand{lineID: lineID, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c RemoveLineCommand) Validate() error {
//	    return c.guard.Validate(ErrRemoveLineCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard flagged as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard is the zero value.
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}
