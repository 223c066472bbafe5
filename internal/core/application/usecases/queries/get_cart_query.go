// Package queries contains the read operations of the booking service: the
// session's cart and records, the service catalogue and fare previews.
package queries

import (
	"errors"

	"booking/internal/core/domain/model/kernel"
	"booking/internal/pkg/guard"
)

var ErrGetCartQueryIsNotConstructed = errors.New(
	"GetCartQuery must be created via NewGetCartQuery constructor",
)

// GetCartQuery reads the session's cart.
type GetCartQuery struct {
	sessionID kernel.SessionID
	guard     guard.ConstructorGuard
}

// NewGetCartQuery requires a valid session id.
func NewGetCartQuery(sessionID kernel.SessionID) (GetCartQuery, error) {
	if err := sessionID.Validate(); err != nil {
		return GetCartQuery{}, err
	}
	return GetCartQuery{sessionID: sessionID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetCartQuery) Validate() error {
	return q.guard.Validate(ErrGetCartQueryIsNotConstructed)
}

func (q GetCartQuery) SessionID() kernel.SessionID {
	return q.sessionID
}
