package kernel_test

import (
	"testing"

	"booking/internal/core/domain/model/kernel"
	"booking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVehicleType_Multiplier(t *testing.T) {
	cases := map[kernel.VehicleType]float64{
		kernel.MiniTruck:   1.0,
		kernel.SmallTruck:  1.2,
		kernel.MediumTruck: 1.5,
		kernel.LargeTruck:  2.0,
		kernel.Container:   2.5,
		kernel.Trailer:     3.0,
		"":                 1.0,
		"hovercraft":       1.0,
	}
	for vehicle, expected := range cases {
		t.Run(string(vehicle), func(t *testing.T) {
			assert.InDelta(t, expected, vehicle.Multiplier(), 1e-9)
		})
	}
}

func TestVehicleType_Label(t *testing.T) {
	assert.Equal(t, "Container (20-40 ft)", kernel.Container.Label())
	assert.Equal(t, "hovercraft", kernel.VehicleType("hovercraft").Label())
	assert.True(t, kernel.Trailer.IsKnown())
	assert.False(t, kernel.VehicleType("").IsKnown())
	assert.Len(t, kernel.VehicleTypes(), 6)
}

func TestWeightUnit(t *testing.T) {
	assert.True(t, kernel.Tons.IsTons())
	assert.False(t, kernel.Kilograms.IsTons())
	assert.False(t, kernel.WeightUnit("lbs").IsTons())
	assert.False(t, kernel.WeightUnit("lbs").IsKnown())
}

func TestCargoTypes(t *testing.T) {
	types := kernel.CargoTypes()
	require.Len(t, types, 10)
	assert.True(t, kernel.IsKnownCargoType("Electronics"))
	assert.False(t, kernel.IsKnownCargoType("Livestock"))

	types[0] = "mutated"
	assert.Equal(t, "General Cargo", kernel.CargoTypes()[0])
}

func TestSessionID(t *testing.T) {
	t.Run("new_session_ids_are_valid_and_distinct", func(t *testing.T) {
		a := kernel.NewSessionID()
		b := kernel.NewSessionID()

		require.NoError(t, a.Validate())
		assert.False(t, a.IsEqual(b))
	})

	t.Run("round_trips_through_string", func(t *testing.T) {
		id := kernel.NewSessionID()

		parsed, err := kernel.SessionIDFromString(id.String())

		require.NoError(t, err)
		assert.True(t, id.IsEqual(parsed))
	})

	t.Run("rejects_garbage", func(t *testing.T) {
		_, err := kernel.SessionIDFromString("not-a-uuid")

		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects_nil_uuid", func(t *testing.T) {
		_, err := kernel.SessionIDFromString("00000000-0000-0000-0000-000000000000")

		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero_value_is_invalid", func(t *testing.T) {
		var id kernel.SessionID

		assert.ErrorIs(t, id.Validate(), kernel.ErrSessionIDIsNotConstructed)
	})
}
