package queries

import (
	"errors"

	"booking/internal/core/domain/model/kernel"
	"booking/internal/pkg/guard"
)

var ErrGetLastBookingQueryIsNotConstructed = errors.New(
	"GetLastBookingQuery must be created via NewGetLastBookingQuery constructor",
)

// GetLastBookingQuery fetches the receipt shown on the confirmation page.
type GetLastBookingQuery struct {
	sessionID kernel.SessionID
	guard     guard.ConstructorGuard
}

func NewGetLastBookingQuery(sessionID kernel.SessionID) (GetLastBookingQuery, error) {
	if err := sessionID.Validate(); err != nil {
		return GetLastBookingQuery{}, err
	}
	return GetLastBookingQuery{sessionID: sessionID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetLastBookingQuery) Validate() error {
	return q.guard.Validate(ErrGetLastBookingQueryIsNotConstructed)
}

func (q GetLastBookingQuery) SessionID() kernel.SessionID {
	return q.sessionID
}
