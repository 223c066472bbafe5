package services

import (
	"booking/internal/core/domain/model/cart"
	"booking/internal/core/domain/model/catalog"
)

// BookingEstimator prices a service for a trip before it is added to the cart.
type BookingEstimator struct{}

func NewBookingEstimator() BookingEstimator {
	return BookingEstimator{}
}

// Candidate combines a catalogue service with the trip details.
func (BookingEstimator) Candidate(service catalog.Service, details BookingDetails) cart.Candidate {
	return details.Apply(service.Candidate())
}

// Estimate returns the per-unit fare the cart will assign when the same
// service and details are added. Zero means the service is quoted manually.
func (e BookingEstimator) Estimate(service catalog.Service, details BookingDetails) int {
	return cart.Price(e.Candidate(service, details).Line(1))
}
