package queries

import (
	"errors"

	"booking/internal/core/domain/model/kernel"
	"booking/internal/pkg/guard"
)

var ErrGetLatestQuoteQueryIsNotConstructed = errors.New(
	"GetLatestQuoteQuery must be created via NewGetLatestQuoteQuery constructor",
)

// GetLatestQuoteQuery reads the session's latest quote request.
type GetLatestQuoteQuery struct {
	sessionID kernel.SessionID
	guard     guard.ConstructorGuard
}

func NewGetLatestQuoteQuery(sessionID kernel.SessionID) (GetLatestQuoteQuery, error) {
	if err := sessionID.Validate(); err != nil {
		return GetLatestQuoteQuery{}, err
	}
	return GetLatestQuoteQuery{sessionID: sessionID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetLatestQuoteQuery) Validate() error {
	return q.guard.Validate(ErrGetLatestQuoteQueryIsNotConstructed)
}

func (q GetLatestQuoteQuery) SessionID() kernel.SessionID {
	return q.sessionID
}
