package commands

import (
	"context"
	"time"

	"booking/internal/core/domain/model/quote"
	"booking/internal/core/ports"
)

// SubmitQuoteCommandHandler stores a quote request as the session's latest.
// It does not touch the cart.
type SubmitQuoteCommandHandler struct {
	factory ports.CartSessionFactory
	now     func() time.Time
}

// NewSubmitQuoteCommandHandler creates the handler.
func NewSubmitQuoteCommandHandler(factory ports.CartSessionFactory) SubmitQuoteCommandHandler {
	return SubmitQuoteCommandHandler{factory: factory, now: time.Now}
}

// Handle stores the quote as the session's latest one and returns it.
func (h SubmitQuoteCommandHandler) Handle(ctx context.Context, cmd SubmitQuoteCommand) (*quote.Quote, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	q, err := quote.NewQuote(cmd.Request(), cmd.ExistingID(), h.now())
	if err != nil {
		return nil, err
	}

	session := h.factory.Create(cmd.SessionID())
	if err = session.Begin(ctx); err != nil {
		return nil, err
	}
	defer session.End(ctx)

	if err = session.QuoteRepository().SaveLatest(ctx, q); err != nil {
		return nil, err
	}
	return q, nil
}
