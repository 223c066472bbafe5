package commands_test

import (
	"testing"
	"time"

	"booking/internal/core/application/usecases/commands"
	"booking/internal/core/domain/model/booking"
	"booking/internal/core/domain/model/cart"
	"booking/internal/core/domain/model/kernel"
	"booking/internal/core/domain/services"
	"booking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAddLineCommand_ValidInput(t *testing.T) {
	id := kernel.NewSessionID()
	details := services.BookingDetails{
		FromLocation: "Chennai",
		ToLocation:   "Vellore",
		VehicleType:  kernel.SmallTruck,
		CargoType:    "Electronics",
		Weight:       200,
		DistanceKm:   140,
	}

	cmd, err := commands.NewAddLineCommand(id, "cargo-transport", &details)
	require.NoError(t, err)
	assert.Equal(t, id, cmd.SessionID())
	assert.Equal(t, "cargo-transport", cmd.ServiceID())
	require.NotNil(t, cmd.Details())
	assert.Equal(t, details, *cmd.Details())

	details.Weight = 1
	assert.Equal(t, 200.0, cmd.Details().Weight)
}

func TestNewAddLineCommand_WithoutDetails(t *testing.T) {
	cmd, err := commands.NewAddLineCommand(kernel.NewSessionID(), "vehicle-hire", nil)
	require.NoError(t, err)
	assert.Nil(t, cmd.Details())
}

func TestNewAddLineCommand_InvalidInput(t *testing.T) {
	details := services.DefaultBookingDetails()

	_, err := commands.NewAddLineCommand(kernel.SessionID{}, "", &details)

	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrSessionIDIsNotConstructed)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewSetQuantityCommand_AcceptsNonPositiveQuantity(t *testing.T) {
	cmd, err := commands.NewSetQuantityCommand(kernel.NewSessionID(), "cargo-transport", -2)
	require.NoError(t, err)
	assert.Equal(t, -2, cmd.Quantity())
}

func TestNewRemoveLineCommand_EmptyLineID(t *testing.T) {
	_, err := commands.NewRemoveLineCommand(kernel.NewSessionID(), "")
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewUpdateLineDetailsCommand_RejectsUnknownVehicle(t *testing.T) {
	vehicle := kernel.VehicleType("spaceship")
	_, err := commands.NewUpdateLineDetailsCommand(kernel.NewSessionID(), "cargo-transport", cart.Details{
		VehicleType: &vehicle,
	})
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewClearCartCommand_InvalidSession(t *testing.T) {
	_, err := commands.NewClearCartCommand(kernel.SessionID{})
	assert.ErrorIs(t, err, kernel.ErrSessionIDIsNotConstructed)
}

func TestNewCheckoutCommand_DropsCardNumbers(t *testing.T) {
	cmd, err := commands.NewCheckoutCommand(kernel.NewSessionID(), validAddress(), booking.PaymentForm{
		Method:         booking.CreditCard,
		CardNumber:     "4111111111111111",
		ExpiryDate:     "12/30",
		CVV:            "123",
		CardholderName: "PRIYA",
	})

	require.NoError(t, err)
	assert.Equal(t, booking.Payment{Method: booking.CreditCard, Holder: "PRIYA"}, cmd.Payment())
}

func TestNewCheckoutCommand_InvalidInput(t *testing.T) {
	_, err := commands.NewCheckoutCommand(kernel.NewSessionID(), booking.Address{}, booking.PaymentForm{
		Method: booking.NetBanking,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewSubmitQuoteCommand(t *testing.T) {
	cmd, err := commands.NewSubmitQuoteCommand(kernel.NewSessionID(), validQuoteRequest(), "QT12345678ABCD")
	require.NoError(t, err)
	assert.Equal(t, "QT12345678ABCD", cmd.ExistingID())

	incomplete := validQuoteRequest()
	incomplete.Name = ""
	_, err = commands.NewSubmitQuoteCommand(kernel.NewSessionID(), incomplete, "")
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewSweepSnapshotsCommand(t *testing.T) {
	cmd, err := commands.NewSweepSnapshotsCommand(time.Hour)
	require.NoError(t, err)
	assert.Equal(t, time.Hour, cmd.MaxAge())

	_, err = commands.NewSweepSnapshotsCommand(0)
	assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func TestCommands_ZeroValueIsNotConstructed(t *testing.T) {
	assert.ErrorIs(t, commands.AddLineCommand{}.Validate(), commands.ErrAddLineCommandIsNotConstructed)
	assert.ErrorIs(t, commands.RemoveLineCommand{}.Validate(), commands.ErrRemoveLineCommandIsNotConstructed)
	assert.ErrorIs(t, commands.SetQuantityCommand{}.Validate(), commands.ErrSetQuantityCommandIsNotConstructed)
	assert.ErrorIs(t, commands.UpdateLineDetailsCommand{}.Validate(),
		commands.ErrUpdateLineDetailsCommandIsNotConstructed)
	assert.ErrorIs(t, commands.ClearCartCommand{}.Validate(), commands.ErrClearCartCommandIsNotConstructed)
	assert.ErrorIs(t, commands.CheckoutCommand{}.Validate(), commands.ErrCheckoutCommandIsNotConstructed)
	assert.ErrorIs(t, commands.SubmitQuoteCommand{}.Validate(), commands.ErrSubmitQuoteCommandIsNotConstructed)
	assert.ErrorIs(t, commands.SweepSnapshotsCommand{}.Validate(), commands.ErrSweepSnapshotsCommandIsNotConstructed)
}
