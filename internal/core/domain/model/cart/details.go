package cart

import (
	"slices"

	"booking/internal/core/domain/model/kernel"
)

// Details is a partial update of a line. Nil fields are left untouched.
// The id, quantity and calculated price are deliberately absent: the first is
// the line's key, the other two are owned by the cart.
type Details struct {
	Title        *string
	Description  *string
	PriceLabel   *string
	ServiceSlug  *string
	Features     []string
	FromLocation *string
	ToLocation   *string
	VehicleType  *kernel.VehicleType
	CargoType    *string
	Weight       *float64
	WeightUnit   *kernel.WeightUnit
	DistanceKm   *float64
}

// IsEmpty reports whether the update carries no field at all.
func (d Details) IsEmpty() bool {
	return d.Title == nil && d.Description == nil && d.PriceLabel == nil &&
		d.ServiceSlug == nil && d.Features == nil && d.FromLocation == nil &&
		d.ToLocation == nil && d.VehicleType == nil && d.CargoType == nil &&
		d.Weight == nil && d.WeightUnit == nil && d.DistanceKm == nil
}

// mergeInto returns a copy of l with every non-nil field of d applied.
func (d Details) mergeInto(l Line) Line {
	merged := l.clone()
	setIf(&merged.Title, d.Title)
	setIf(&merged.Description, d.Description)
	setIf(&merged.PriceLabel, d.PriceLabel)
	setIf(&merged.ServiceSlug, d.ServiceSlug)
	setIf(&merged.FromLocation, d.FromLocation)
	setIf(&merged.ToLocation, d.ToLocation)
	setIf(&merged.VehicleType, d.VehicleType)
	setIf(&merged.CargoType, d.CargoType)
	setIf(&merged.WeightUnit, d.WeightUnit)
	if d.Features != nil {
		merged.Features = slices.Clone(d.Features)
	}
	if d.Weight != nil {
		w := *d.Weight
		merged.Weight = &w
	}
	if d.DistanceKm != nil {
		km := *d.DistanceKm
		merged.DistanceKm = &km
	}
	return merged
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
