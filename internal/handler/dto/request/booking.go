package request

import (
	"time"

	"staymarket/internal/domain/money"
	"staymarket/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	HostID      uuid.UUID  `json:"host_id" binding:"required"`
	ListingID   uuid.UUID  `json:"listing_id" binding:"required"`
	TotalAmount string     `json:"total_amount" binding:"required"`
	Currency    string     `json:"currency" binding:"required"`
	CheckIn     *time.Time `json:"check_in,omitempty"`
	CheckOut    *time.Time `json:"check_out,omitempty"`
}

func (r CreateBookingRequest) ToParams(guestID uuid.UUID) (commands.CreateBookingParams, error) {
	total, err := money.Parse(r.TotalAmount, money.Currency(r.Currency))
	if err != nil {
		return commands.CreateBookingParams{}, err
	}
	return commands.CreateBookingParams{
		GuestID:     guestID,
		HostID:      r.HostID,
		ListingID:   r.ListingID,
		TotalAmount: total,
		CheckIn:     r.CheckIn,
		CheckOut:    r.CheckOut,
	}, nil
}
