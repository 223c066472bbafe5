package cart_test

import (
	"math"
	"testing"

	"booking/internal/core/domain/model/cart"
	"booking/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
)

func ptr[T any](v T) *T { return &v }

func TestPrice(t *testing.T) {
	tests := []struct {
		name     string
		line     cart.Line
		expected int
	}{
		{
			name: "cargo_transport_medium_truck_two_tons",
			line: cart.Line{
				ServiceSlug: cart.SlugCargoTransport,
				VehicleType: kernel.MediumTruck,
				Weight:      ptr(2.0),
				WeightUnit:  kernel.Tons,
				DistanceKm:  ptr(50.0),
			},
			// round(50*5 * 1.5 * (1+20))
			expected: 7875,
		},
		{
			name:     "cargo_transport_defaults_to_fifty_km_and_one_kg",
			line:     cart.Line{ServiceSlug: cart.SlugCargoTransport},
			expected: 253, // round(250 * 1.0 * 1.01) = round(252.5)
		},
		{
			name:     "cargo_transport_hundred_km",
			line:     cart.Line{ServiceSlug: cart.SlugCargoTransport, DistanceKm: ptr(100.0)},
			expected: 505,
		},
		{
			name:     "zero_distance_and_weight_fall_back_to_defaults",
			line:     cart.Line{ServiceSlug: cart.SlugCargoTransport, DistanceKm: ptr(0.0), Weight: ptr(0.0)},
			expected: 253,
		},
		{
			name:     "vehicle_hire_is_flat",
			line:     cart.Line{ServiceSlug: cart.SlugVehicleHire, DistanceKm: ptr(900.0)},
			expected: 1212, // 1200 * 1.01
		},
		{
			name:     "custom_solutions_trailer",
			line:     cart.Line{ServiceSlug: cart.SlugCustomSolutions, VehicleType: kernel.Trailer, Weight: ptr(500.0)},
			expected: 36000, // 2000 * 3 * (1 + 5)
		},
		{
			name:     "unknown_slug_uses_flat_thousand",
			line:     cart.Line{ServiceSlug: "warehousing", VehicleType: "spaceship"},
			expected: 1010,
		},
		{
			name:     "unknown_weight_unit_is_treated_as_kg",
			line:     cart.Line{ServiceSlug: cart.SlugVehicleHire, Weight: ptr(100.0), WeightUnit: "lbs"},
			expected: 2400,
		},
		{
			name: "logistics_support_is_always_quoted",
			line: cart.Line{
				ServiceSlug: cart.SlugLogisticsSupport,
				PriceLabel:  "Starting from ₹5/km",
				VehicleType: kernel.Trailer,
				Weight:      ptr(40.0),
				WeightUnit:  kernel.Tons,
				DistanceKm:  ptr(1200.0),
			},
			expected: 0,
		},
		{
			name:     "custom_pricing_label_is_always_quoted",
			line:     cart.Line{ServiceSlug: cart.SlugCargoTransport, PriceLabel: cart.CustomPricingLabel},
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, cart.Price(tt.line))
		})
	}
}

func TestPrice_IgnoresQuantityAndPreviousPrice(t *testing.T) {
	line := cart.Line{ServiceSlug: cart.SlugVehicleHire, Quantity: 9, CalculatedPrice: 1}

	assert.Equal(t, 1212, cart.Price(line))
}

func TestPrice_OutOfRangeFaresAreQuoted(t *testing.T) {
	tests := []struct {
		name string
		line cart.Line
	}{
		{
			name: "huge_weight_in_tons",
			line: cart.Line{ServiceSlug: cart.SlugCargoTransport, Weight: ptr(1e20), WeightUnit: kernel.Tons},
		},
		{
			name: "infinite_weight",
			line: cart.Line{ServiceSlug: cart.SlugCargoTransport, Weight: ptr(math.Inf(1))},
		},
		{
			name: "infinite_distance",
			line: cart.Line{ServiceSlug: cart.SlugCargoTransport, DistanceKm: ptr(math.Inf(1))},
		},
		{
			name: "negative_weight",
			line: cart.Line{ServiceSlug: cart.SlugVehicleHire, Weight: ptr(-500.0)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Zero(t, cart.Price(tt.line))
		})
	}
}

func TestPrice_LargestAcceptedTripStaysExact(t *testing.T) {
	line := cart.Line{
		ServiceSlug: cart.SlugCargoTransport,
		VehicleType: kernel.Trailer,
		Weight:      ptr(100000.0),
		WeightUnit:  kernel.Tons,
		DistanceKm:  ptr(20000.0),
	}

	// 20000*5 * 3 * (1 + 1e6)
	assert.Equal(t, 300000300000, cart.Price(line))
}

func TestNewState_TotalsSaturate(t *testing.T) {
	hire := cart.Line{ID: "vehicle-hire", ServiceSlug: cart.SlugVehicleHire, Quantity: math.MaxInt / 1000, CalculatedPrice: 1212}
	cargo := cart.Line{ID: "cargo-transport", ServiceSlug: cart.SlugCargoTransport, Quantity: math.MaxInt, CalculatedPrice: 253}

	s := cart.NewState([]cart.Line{hire, cargo})

	assert.Equal(t, math.MaxInt, s.TotalItems())
	assert.Equal(t, math.MaxInt, s.TotalPrice())
	assert.Equal(t, math.MaxInt, s.Lines()[0].Subtotal())
}
