package services

import (
	"errors"
	"fmt"
	"strings"

	"booking/internal/core/domain/model/cart"
	"booking/internal/core/domain/model/kernel"
	"booking/internal/pkg/errs"
)

// BookingDetails is the trip section of the booking form.
type BookingDetails struct {
	FromLocation        string
	ToLocation          string
	VehicleType         kernel.VehicleType
	CargoType           string
	Weight              float64
	WeightUnit          kernel.WeightUnit
	DistanceKm          float64
	SpecialInstructions string
}

// DefaultBookingDetails is the state of the form when it opens.
func DefaultBookingDetails() BookingDetails {
	return BookingDetails{
		Weight:     cart.DefaultWeight,
		WeightUnit: kernel.Kilograms,
		DistanceKm: cart.DefaultDistanceKm,
	}
}

// Validate applies the form's submit rules: both locations, a vehicle and a
// cargo type are required and weight and distance must be positive.
func (d BookingDetails) Validate() error {
	var weightErr, distanceErr, unitErr error
	if d.Weight <= 0 {
		weightErr = errs.NewValueIsInvalidErrorWithCause("weight", fmt.Errorf("%v is not greater than 0", d.Weight))
	}
	if d.DistanceKm <= 0 {
		distanceErr = errs.NewValueIsInvalidErrorWithCause("distance", fmt.Errorf("%v is not greater than 0", d.DistanceKm))
	}
	if d.WeightUnit != "" && !d.WeightUnit.IsKnown() {
		unitErr = errs.NewValueIsInvalidErrorWithCause("weightUnit", fmt.Errorf("%q is not kg or tons", string(d.WeightUnit)))
	}
	return errors.Join(
		requiredText("fromLocation", d.FromLocation),
		requiredText("toLocation", d.ToLocation),
		requiredText("vehicleType", string(d.VehicleType)),
		requiredText("cargoType", d.CargoType),
		weightErr,
		distanceErr,
		unitErr,
	)
}

// Apply copies the trip details onto a cart candidate.
func (d BookingDetails) Apply(c cart.Candidate) cart.Candidate {
	weight := d.Weight
	distance := d.DistanceKm
	unit := d.WeightUnit
	if unit == "" {
		unit = kernel.Kilograms
	}

	c.FromLocation = d.FromLocation
	c.ToLocation = d.ToLocation
	c.VehicleType = d.VehicleType
	c.CargoType = d.CargoType
	c.Weight = &weight
	c.WeightUnit = unit
	c.DistanceKm = &distance
	return c
}

func requiredText(name, value string) error {
	if strings.TrimSpace(value) == "" {
		return errs.NewValueIsRequiredError(name)
	}
	return nil
}
