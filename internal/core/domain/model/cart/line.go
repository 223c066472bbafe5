package cart

import (
	"math"
	"slices"

	"booking/internal/core/domain/model/kernel"
)

// Line is one selected, possibly repeated, service booking.
type Line struct {
	ID          string
	Title       string
	Description string
	// PriceLabel is the display price shown before trip details are known,
	// e.g. "Starting from ₹5/km" or "Custom pricing".
	PriceLabel  string
	ServiceSlug string
	Quantity    int
	Features    []string

	FromLocation string
	ToLocation   string
	VehicleType  kernel.VehicleType
	CargoType    string
	Weight       *float64
	WeightUnit   kernel.WeightUnit
	DistanceKm   *float64

	// CalculatedPrice is the per-unit fare in whole rupees. Zero means the
	// service is quoted manually.
	CalculatedPrice int
}

// Subtotal is the line's contribution to the cart total. It saturates at
// math.MaxInt instead of wrapping.
func (l Line) Subtotal() int {
	if l.CalculatedPrice <= 0 || l.Quantity <= 0 {
		return 0
	}
	if l.CalculatedPrice > math.MaxInt/l.Quantity {
		return math.MaxInt
	}
	return l.CalculatedPrice * l.Quantity
}

func (l Line) clone() Line {
	c := l
	c.Features = slices.Clone(l.Features)
	if l.Weight != nil {
		w := *l.Weight
		c.Weight = &w
	}
	if l.DistanceKm != nil {
		d := *l.DistanceKm
		c.DistanceKm = &d
	}
	return c
}

// Candidate is a service selection coming from the booking form: every line
// attribute except the quantity and the calculated price, which the cart owns.
type Candidate struct {
	ID          string
	Title       string
	Description string
	PriceLabel  string
	ServiceSlug string
	Features    []string

	FromLocation string
	ToLocation   string
	VehicleType  kernel.VehicleType
	CargoType    string
	Weight       *float64
	WeightUnit   kernel.WeightUnit
	DistanceKm   *float64
}

// Line converts the candidate into an unpriced line with the given quantity.
func (c Candidate) Line(quantity int) Line {
	return Line{
		ID:           c.ID,
		Title:        c.Title,
		Description:  c.Description,
		PriceLabel:   c.PriceLabel,
		ServiceSlug:  c.ServiceSlug,
		Quantity:     quantity,
		Features:     c.Features,
		FromLocation: c.FromLocation,
		ToLocation:   c.ToLocation,
		VehicleType:  c.VehicleType,
		CargoType:    c.CargoType,
		Weight:       c.Weight,
		WeightUnit:   c.WeightUnit,
		DistanceKm:   c.DistanceKm,
	}.clone()
}
