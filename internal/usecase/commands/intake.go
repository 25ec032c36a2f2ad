package commands

import (
	"context"
	"time"

	"staymarket/internal/domain/booking"
	"staymarket/internal/domain/money"
	"staymarket/internal/pkg/clock"
	"staymarket/internal/pkg/errs"
	"staymarket/internal/usecase/shared"

	"github.com/google/uuid"
)

// IntakeCommands creates bookings in pending. The heavy lifting (listing
// lookup, availability, authorization) lives upstream; this is the narrow
// entry point that puts a record under the settlement engine's control.
type IntakeCommands interface {
	CreateBooking(ctx context.Context, params CreateBookingParams) (*BookingSnapshot, error)
}

type CreateBookingParams struct {
	GuestID     uuid.UUID
	HostID      uuid.UUID
	ListingID   uuid.UUID
	TotalAmount money.Money
	CheckIn     *time.Time
	CheckOut    *time.Time
}

type intakeCommands struct {
	bookings shared.BookingStore
	clock    clock.Clock
}

func NewIntakeCommands(bookings shared.BookingStore, clk clock.Clock) IntakeCommands {
	return &intakeCommands{bookings: bookings, clock: clk}
}

func (c *intakeCommands) CreateBooking(ctx context.Context, params CreateBookingParams) (*BookingSnapshot, error) {
	if !params.TotalAmount.IsPositive() {
		return nil, errs.Mark(errs.New("booking total must be positive"), errs.ErrInvalidAmount)
	}
	if params.CheckIn != nil && params.CheckOut != nil && !params.CheckOut.After(*params.CheckIn) {
		return nil, errs.Mark(errs.New("check-out must follow check-in"), errs.ErrInvalidAmount)
	}

	b, err := booking.New(
		params.GuestID, params.HostID, params.ListingID,
		params.TotalAmount,
		params.CheckIn, params.CheckOut,
		c.clock.Now(),
	)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidAmount)
	}

	if err := c.bookings.Put(ctx, b, shared.InsertVersion); err != nil {
		return nil, err
	}
	return SnapshotFromEntity(b), nil
}
