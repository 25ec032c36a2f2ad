package response

import (
	"time"

	"staymarket/internal/domain/money"
	"staymarket/internal/domain/refund"
	"staymarket/internal/usecase/commands"
	"staymarket/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingResponse struct {
	ID                uuid.UUID      `json:"id"`
	GuestID           uuid.UUID      `json:"guestId"`
	HostID            uuid.UUID      `json:"hostId"`
	ListingID         uuid.UUID      `json:"listingId"`
	TotalAmount       money.Money    `json:"totalAmount"`
	ServiceFee        *money.Money   `json:"serviceFee,omitempty"`
	Status            string         `json:"status"`
	PayoutStatus      string         `json:"payoutStatus"`
	RefundResult      *refund.Result `json:"refundResult,omitempty"`
	AutoConfirmed     bool           `json:"autoConfirmed"`
	CreatedAt         time.Time      `json:"createdAt"`
	CheckIn           *time.Time     `json:"checkIn,omitempty"`
	CheckOut          *time.Time     `json:"checkOut,omitempty"`
	ConfirmedAt       *time.Time     `json:"confirmedAt,omitempty"`
	CancelledAt       *time.Time     `json:"cancelledAt,omitempty"`
	PayoutProcessedAt *time.Time     `json:"payoutProcessedAt,omitempty"`
}

type CancelBookingResponse struct {
	Booking    *BookingResponse `json:"booking"`
	Refund     *refund.Result   `json:"refund"`
	IsReplayed bool             `json:"isReplayed"`
}

type PayoutResponse struct {
	Booking      *BookingResponse `json:"booking"`
	PayoutAmount money.Money      `json:"payoutAmount"`
}

// View and snapshot share field names with the response; copier handles the
// field-for-field mapping.
func FromBookingView(view *queries.BookingView) *BookingResponse {
	var resp BookingResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromBookingSnapshot(snap *commands.BookingSnapshot) *BookingResponse {
	var resp BookingResponse
	_ = copier.Copy(&resp, snap)
	return &resp
}

func FromCancelResult(result *commands.CancelResult) *CancelBookingResponse {
	return &CancelBookingResponse{
		Booking:    FromBookingSnapshot(result.Booking),
		Refund:     result.Refund,
		IsReplayed: result.IsReplayed,
	}
}

func FromPayoutResult(result *commands.PayoutResult) *PayoutResponse {
	return &PayoutResponse{
		Booking:      FromBookingSnapshot(result.Booking),
		PayoutAmount: result.PayoutAmount,
	}
}
