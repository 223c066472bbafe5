package queries

import (
	"context"

	"booking/internal/core/domain/model/catalog"
	"booking/internal/core/domain/services"
	"booking/internal/pkg/errs"
)

// EstimatePriceQueryHandler prices a trip the same way the cart will once the
// service is added.
type EstimatePriceQueryHandler struct {
	estimator services.BookingEstimator
}

// NewEstimatePriceQueryHandler creates the handler.
func NewEstimatePriceQueryHandler(estimator services.BookingEstimator) EstimatePriceQueryHandler {
	return EstimatePriceQueryHandler{estimator: estimator}
}

func (h EstimatePriceQueryHandler) Handle(
	_ context.Context,
	query EstimatePriceQuery,
) (EstimatePriceQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return EstimatePriceQueryResponse{}, err
	}

	service, ok := catalog.Find(query.ServiceID())
	if !ok {
		return EstimatePriceQueryResponse{}, errs.NewObjectNotFoundError("service", query.ServiceID())
	}

	estimate := h.estimator.Estimate(service, query.Details())
	return EstimatePriceQueryResponse{
		ServiceID:  service.ID,
		Title:      service.Title,
		PriceLabel: service.PriceLabel,
		Estimate:   estimate,
		NeedsQuote: estimate == 0,
	}, nil
}
