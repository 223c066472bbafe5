package queries

import (
	"errors"
	"fmt"

	"booking/internal/core/domain/services"
	"booking/internal/pkg/errs"
	"booking/internal/pkg/guard"
)

var ErrEstimatePriceQueryIsNotConstructed = errors.New(
	"EstimatePriceQuery must be created via NewEstimatePriceQuery constructor",
)

// EstimatePriceQuery previews the fare of a service for a trip. The trip may
// be incomplete, as it is while the booking form is being filled in; missing
// weight and distance fall back to the pricing defaults.
type EstimatePriceQuery struct {
	serviceID string
	details   services.BookingDetails
	guard     guard.ConstructorGuard
}

// NewEstimatePriceQuery accepts a partially filled form; only the service id
// is required.
//
// Example:
//
//	query, _ := NewEstimatePriceQuery("cargo-transport", services.BookingDetails{
//	    VehicleType: kernel.MediumTruck,
//	    Weight:      2,
//	    WeightUnit:  kernel.Tons,
//	    DistanceKm:  100,
//	})
//	estimate, _ := NewEstimatePriceQueryHandler(services.NewBookingEstimator()).Handle(ctx, query)
//	fmt.Println(estimate.Estimate) // 15750
func NewEstimatePriceQuery(serviceID string, details services.BookingDetails) (EstimatePriceQuery, error) {
	var serviceErr, weightErr, distanceErr, unitErr error
	if serviceID == "" {
		serviceErr = errs.NewValueIsRequiredError("serviceId")
	}
	if details.Weight < 0 {
		weightErr = errs.NewValueIsInvalidErrorWithCause("weight", fmt.Errorf("%v is negative", details.Weight))
	}
	if details.DistanceKm < 0 {
		distanceErr = errs.NewValueIsInvalidErrorWithCause("distance", fmt.Errorf("%v is negative", details.DistanceKm))
	}
	if details.WeightUnit != "" && !details.WeightUnit.IsKnown() {
		unitErr = errs.NewValueIsInvalidError("weightUnit")
	}
	if err := errors.Join(serviceErr, weightErr, distanceErr, unitErr); err != nil {
		return EstimatePriceQuery{}, err
	}

	return EstimatePriceQuery{
		serviceID: serviceID,
		details:   details,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through NewEstimatePriceQuery.
func (q EstimatePriceQuery) Validate() error {
	return q.guard.Validate(ErrEstimatePriceQueryIsNotConstructed)
}

func (q EstimatePriceQuery) ServiceID() string {
	return q.serviceID
}

func (q EstimatePriceQuery) Details() services.BookingDetails {
	return q.details
}

// EstimatePriceQueryResponse is the fare preview shown under the booking form.
// Estimate is the per-unit fare in rupees and is zero when NeedsQuote is set.
type EstimatePriceQueryResponse struct {
	ServiceID  string
	Title      string
	PriceLabel string
	Estimate   int
	NeedsQuote bool
}
