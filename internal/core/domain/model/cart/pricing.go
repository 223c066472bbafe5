package cart

import "math"

const (
	// CustomPricingLabel marks services that are quoted manually.
	CustomPricingLabel = "Custom pricing"

	SlugCargoTransport   = "cargo-transport"
	SlugLogisticsSupport = "logistics-support"
	SlugVehicleHire      = "vehicle-hire"
	SlugCustomSolutions  = "custom-solutions"

	DefaultDistanceKm = 50.0
	DefaultWeight     = 1.0

	ratePerKm          = 5.0
	vehicleHireFlat    = 1200.0
	customSolutionFlat = 2000.0
	otherServiceFlat   = 1000.0

	perTonFactor = 10.0
	perKgFactor  = 0.01

	// MaxFare is the largest per-unit fare the cart prices automatically.
	// Anything above it, and any non-finite fare, is quoted manually.
	MaxFare = 1_000_000_000_000
)

// Price computes the per-unit fare of a line in whole rupees.
//
// A zero result means "quote required", not a free service. Both the label and
// the slug mark manually quoted services; the two checks are independent.
//
// Missing or zero distance and weight fall back to DefaultDistanceKm and
// DefaultWeight. The fare is base × vehicle multiplier × (1 + weight factor),
// rounded half up. A fare that is negative, not finite or above MaxFare
// prices as zero.
func Price(l Line) int {
	if l.PriceLabel == CustomPricingLabel || l.ServiceSlug == SlugLogisticsSupport {
		return 0
	}

	distance := orDefault(l.DistanceKm, DefaultDistanceKm)
	weight := orDefault(l.Weight, DefaultWeight)

	var base float64
	switch l.ServiceSlug {
	case SlugCargoTransport:
		base = distance * ratePerKm
	case SlugVehicleHire:
		base = vehicleHireFlat
	case SlugCustomSolutions:
		base = customSolutionFlat
	default:
		base = otherServiceFlat
	}

	weightFactor := weight * perKgFactor
	if l.WeightUnit.IsTons() {
		weightFactor = weight * perTonFactor
	}

	fare := math.Floor(base*l.VehicleType.Multiplier()*(1+weightFactor) + 0.5)
	if math.IsNaN(fare) || fare < 0 || fare > MaxFare {
		return 0
	}
	return int(fare)
}

func orDefault(v *float64, fallback float64) float64 {
	if v == nil || *v == 0 || math.IsNaN(*v) {
		return fallback
	}
	return *v
}
