//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"staymarket/internal/domain/booking"
	"staymarket/internal/domain/money"
	"staymarket/internal/infra/memstore"
	"staymarket/internal/pkg/clock"
	"staymarket/internal/pkg/errs"
	"staymarket/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newIntake(t *testing.T) (commands.IntakeCommands, *memstore.BookingStore) {
	t.Helper()
	bookings := memstore.NewBookingStore()
	return commands.NewIntakeCommands(bookings, clock.NewMockClock(testNow)), bookings
}

func validParams(t *testing.T) commands.CreateBookingParams {
	t.Helper()
	checkIn := testNow.AddDate(0, 0, 10)
	checkOut := testNow.AddDate(0, 0, 13)
	return commands.CreateBookingParams{
		GuestID:     uuid.New(),
		HostID:      uuid.New(),
		ListingID:   uuid.New(),
		TotalAmount: usd(t, "5000.00"),
		CheckIn:     &checkIn,
		CheckOut:    &checkOut,
	}
}

func TestCreateBooking(t *testing.T) {
	intake, bookings := newIntake(t)
	ctx := context.Background()
	params := validParams(t)

	snap, err := intake.CreateBooking(ctx, params)
	require.NoError(t, err)
	assert.Equal(t, booking.StatusPending.String(), snap.Status)
	assert.Equal(t, params.GuestID, snap.GuestID)
	assert.True(t, snap.TotalAmount.Equal(usd(t, "5000.00")))
	assert.Nil(t, snap.ServiceFee, "fee is frozen at confirmation, not intake")
	assert.Equal(t, testNow, snap.CreatedAt)

	stored, version, err := bookings.Get(ctx, snap.ID)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), version)
	assert.Equal(t, booking.StatusPending, stored.Status())
}

func TestCreateBookingWithoutDates(t *testing.T) {
	intake, _ := newIntake(t)
	params := validParams(t)
	params.CheckIn = nil
	params.CheckOut = nil

	snap, err := intake.CreateBooking(context.Background(), params)
	require.NoError(t, err)
	assert.Nil(t, snap.CheckIn)
	assert.Nil(t, snap.CheckOut)
}

func TestCreateBookingValidation(t *testing.T) {
	intake, _ := newIntake(t)
	ctx := context.Background()

	t.Run("non-positive total", func(t *testing.T) {
		params := validParams(t)
		params.TotalAmount = money.Zero(money.USD)
		_, err := intake.CreateBooking(ctx, params)
		assert.True(t, errs.Is(err, errs.ErrInvalidAmount))
	})

	t.Run("check-out before check-in", func(t *testing.T) {
		params := validParams(t)
		flipped := params.CheckIn.Add(-time.Hour)
		params.CheckOut = &flipped
		_, err := intake.CreateBooking(ctx, params)
		assert.True(t, errs.Is(err, errs.ErrInvalidAmount))
	})
}
