package kernel

import (
	"fmt"

	"booking/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrSessionIDIsNotConstructed is returned when validating a zero-value SessionID.
var ErrSessionIDIsNotConstructed = errs.NewValueIsRequiredError(
	"session id must be created via NewSessionID or SessionIDFromString")

// SessionID identifies one visitor's browsing session. Each session owns exactly
// one cart, one last booking and one latest quote.
//
// The zero value is invalid.
type SessionID struct {
	id uuid.UUID
}

// NewSessionID generates a random (version 4) session identifier.
func NewSessionID() SessionID {
	return SessionID{id: uuid.New()}
}

// SessionIDFromString parses a session identifier received from a client,
// typically the session cookie or the X-Session-ID header.
func SessionIDFromString(s string) (SessionID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return SessionID{}, errs.NewValueIsInvalidErrorWithCause("session id", fmt.Errorf("invalid UUID format: %w", err))
	}
	sessionID := SessionID{id: id}
	if err = sessionID.Validate(); err != nil {
		return SessionID{}, err
	}
	return sessionID, nil
}

// Validate rejects the nil UUID.
func (s SessionID) Validate() error {
	if s.id == uuid.Nil {
		return ErrSessionIDIsNotConstructed
	}
	return nil
}

func (s SessionID) String() string {
	return s.id.String()
}

func (s SessionID) IsEqual(other SessionID) bool {
	return s.id == other.id
}
