package commands

import (
	"errors"

	"booking/internal/core/domain/model/kernel"
	"booking/internal/core/domain/model/quote"
	"booking/internal/pkg/guard"
)

// ErrSubmitQuoteCommandIsNotConstructed is returned by Validate for a zero-value command.
var ErrSubmitQuoteCommandIsNotConstructed = errors.New(
	"SubmitQuoteCommand must be created via NewSubmitQuoteCommand constructor",
)

// SubmitQuoteCommand registers a quote request. A non-empty existing quote id
// re-submits an edited request under the same reference.
type SubmitQuoteCommand struct { //nolint:recvcheck //using for validation
	sessionID  kernel.SessionID
	request    quote.Request
	existingID string

	guard guard.ConstructorGuard
}

// NewSubmitQuoteCommand validates the request's mandatory fields. Pass an
// empty existingID for a first submission.
//
// Example:
//
//	first, _ := NewSubmitQuoteCommand(sessionID, request, "")
//	q, _ := handler.Handle(ctx, first)
//
//	request.Name = "Arun K"
//	edited, _ := NewSubmitQuoteCommand(sessionID, request, q.ID())
//	q, _ = handler.Handle(ctx, edited) // same id, IsUpdated() == true
func NewSubmitQuoteCommand(
	sessionID kernel.SessionID,
	request quote.Request,
	existingID string,
) (SubmitQuoteCommand, error) {
	cmd := SubmitQuoteCommand{
		existingID: existingID,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSessionID(sessionID),
		cmd.setRequest(request),
	); err != nil {
		return SubmitQuoteCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through NewSubmitQuoteCommand.
func (c SubmitQuoteCommand) Validate() error {
	return c.guard.Validate(ErrSubmitQuoteCommandIsNotConstructed)
}

func (c SubmitQuoteCommand) SessionID() kernel.SessionID {
	return c.sessionID
}

func (c SubmitQuoteCommand) Request() quote.Request {
	return c.request
}

// ExistingID returns the quote being re-submitted, or an empty string.
func (c SubmitQuoteCommand) ExistingID() string {
	return c.existingID
}

func (c *SubmitQuoteCommand) setSessionID(id kernel.SessionID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.sessionID = id
	return nil
}

func (c *SubmitQuoteCommand) setRequest(request quote.Request) error {
	if err := request.Validate(); err != nil {
		return err
	}
	c.request = request
	return nil
}
