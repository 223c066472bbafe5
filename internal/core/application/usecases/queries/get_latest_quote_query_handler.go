package queries

import (
	"context"

	"booking/internal/core/domain/model/quote"
	"booking/internal/core/ports"
)

// GetLatestQuoteQueryHandler returns errs.ErrObjectNotFound until a quote is submitted.
type GetLatestQuoteQueryHandler struct {
	factory ports.CartSessionFactory
}

// NewGetLatestQuoteQueryHandler creates the handler.
func NewGetLatestQuoteQueryHandler(factory ports.CartSessionFactory) GetLatestQuoteQueryHandler {
	return GetLatestQuoteQueryHandler{factory: factory}
}

func (h GetLatestQuoteQueryHandler) Handle(ctx context.Context, query GetLatestQuoteQuery) (*quote.Quote, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	session := h.factory.Create(query.SessionID())
	if err := session.Begin(ctx); err != nil {
		return nil, err
	}
	defer session.End(ctx)

	return session.QuoteRepository().GetLatest(ctx)
}
