package commands

import (
	"errors"
	"time"

	"booking/internal/pkg/errs"
	"booking/internal/pkg/guard"
)

// ErrSweepSnapshotsCommandIsNotConstructed is returned by Validate for a zero-value command.
var ErrSweepSnapshotsCommandIsNotConstructed = errors.New(
	"SweepSnapshotsCommand must be created via NewSweepSnapshotsCommand constructor",
)

// SweepSnapshotsCommand deletes session storage untouched for longer than MaxAge.
type SweepSnapshotsCommand struct { //nolint:recvcheck //using for validation
	maxAge time.Duration

	guard guard.ConstructorGuard
}

// NewSweepSnapshotsCommand rejects a non-positive maxAge.
func NewSweepSnapshotsCommand(maxAge time.Duration) (SweepSnapshotsCommand, error) {
	if maxAge <= 0 {
		return SweepSnapshotsCommand{}, errs.NewValueIsOutOfRangeError("maxAge", maxAge, time.Nanosecond, "unbounded")
	}
	return SweepSnapshotsCommand{maxAge: maxAge, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through NewSweepSnapshotsCommand.
func (c SweepSnapshotsCommand) Validate() error {
	return c.guard.Validate(ErrSweepSnapshotsCommandIsNotConstructed)
}

func (c SweepSnapshotsCommand) MaxAge() time.Duration {
	return c.maxAge
}
