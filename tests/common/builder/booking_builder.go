//go:build unit || e2e

package builder

import (
	"time"

	dombooking "staymarket/internal/domain/booking"
	"staymarket/internal/domain/money"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BookingBuilder struct {
	GuestID     uuid.UUID
	HostID      uuid.UUID
	ListingID   uuid.UUID
	TotalAmount money.Money
	CheckIn     *time.Time
	CheckOut    *time.Time
	CreatedAt   time.Time
}

func NewBookingBuilder() *BookingBuilder {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	checkIn := now.AddDate(0, 0, 10)
	checkOut := checkIn.AddDate(0, 0, 3)
	return &BookingBuilder{
		GuestID:     uuid.New(),
		HostID:      uuid.New(),
		ListingID:   uuid.New(),
		TotalAmount: money.New(decimal.NewFromInt(5000), money.USD),
		CheckIn:     &checkIn,
		CheckOut:    &checkOut,
		CreatedAt:   now,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) WithTotal(amount string, currency money.Currency) *BookingBuilder {
	m, err := money.Parse(amount, currency)
	if err != nil {
		panic(err)
	}
	b.TotalAmount = m
	return b
}

func (b *BookingBuilder) WithCheckIn(t time.Time) *BookingBuilder {
	b.CheckIn = &t
	return b
}

func (b *BookingBuilder) WithoutDates() *BookingBuilder {
	b.CheckIn = nil
	b.CheckOut = nil
	return b
}

// BuildDomain returns a pending booking.
func (b *BookingBuilder) BuildDomain() (*dombooking.Booking, error) {
	return dombooking.New(b.GuestID, b.HostID, b.ListingID, b.TotalAmount, b.CheckIn, b.CheckOut, b.CreatedAt)
}

// BuildConfirmed returns a confirmed booking with the given fee frozen.
func (b *BookingBuilder) BuildConfirmed(fee money.Money, confirmedAt time.Time) (*dombooking.Booking, error) {
	entity, err := b.BuildDomain()
	if err != nil {
		return nil, err
	}
	if err := entity.Confirm(fee, false, confirmedAt); err != nil {
		return nil, err
	}
	return entity, nil
}

// BuildCompleted returns a completed booking with the given fee frozen,
// eligible for payout.
func (b *BookingBuilder) BuildCompleted(fee money.Money, confirmedAt time.Time) (*dombooking.Booking, error) {
	entity, err := b.BuildConfirmed(fee, confirmedAt)
	if err != nil {
		return nil, err
	}
	if err := entity.Complete(); err != nil {
		return nil, err
	}
	return entity, nil
}
