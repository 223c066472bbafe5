package queries

import (
	"context"

	"booking/internal/core/domain/model/catalog"
)

// GetCatalogQueryHandler lists the bookable services.
type GetCatalogQueryHandler struct{}

// NewGetCatalogQueryHandler creates the handler.
func NewGetCatalogQueryHandler() GetCatalogQueryHandler {
	return GetCatalogQueryHandler{}
}

func (GetCatalogQueryHandler) Handle(_ context.Context, query GetCatalogQuery) ([]catalog.Service, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return catalog.Default(), nil
}
