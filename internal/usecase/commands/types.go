package commands

import (
	"time"

	"staymarket/internal/domain/booking"
	"staymarket/internal/domain/money"
	"staymarket/internal/domain/refund"

	"github.com/google/uuid"
)

// Write-side snapshots keep handlers off the domain entities (CQRS
// separation, same shape the read side serves).
type BookingSnapshot struct {
	ID                uuid.UUID      `json:"id"`
	GuestID           uuid.UUID      `json:"guest_id"`
	HostID            uuid.UUID      `json:"host_id"`
	ListingID         uuid.UUID      `json:"listing_id"`
	TotalAmount       money.Money    `json:"total_amount"`
	ServiceFee        *money.Money   `json:"service_fee,omitempty"`
	Status            string         `json:"status"`
	PayoutStatus      string         `json:"payout_status"`
	RefundResult      *refund.Result `json:"refund_result,omitempty"`
	AutoConfirmed     bool           `json:"auto_confirmed"`
	CreatedAt         time.Time      `json:"created_at"`
	CheckIn           *time.Time     `json:"check_in,omitempty"`
	CheckOut          *time.Time     `json:"check_out,omitempty"`
	ConfirmedAt       *time.Time     `json:"confirmed_at,omitempty"`
	CancelledAt       *time.Time     `json:"cancelled_at,omitempty"`
	PayoutProcessedAt *time.Time     `json:"payout_processed_at,omitempty"`
}

func SnapshotFromEntity(b *booking.Booking) *BookingSnapshot {
	return &BookingSnapshot{
		ID:                b.ID(),
		GuestID:           b.GuestID(),
		HostID:            b.HostID(),
		ListingID:         b.ListingID(),
		TotalAmount:       b.TotalAmount(),
		ServiceFee:        b.ServiceFee(),
		Status:            b.Status().String(),
		PayoutStatus:      b.PayoutStatus().String(),
		RefundResult:      b.RefundResult(),
		AutoConfirmed:     b.AutoConfirmed(),
		CreatedAt:         b.CreatedAt(),
		CheckIn:           b.CheckIn(),
		CheckOut:          b.CheckOut(),
		ConfirmedAt:       b.ConfirmedAt(),
		CancelledAt:       b.CancelledAt(),
		PayoutProcessedAt: b.PayoutProcessedAt(),
	}
}

// CancelResult carries the refund math alongside the updated booking.
// IsReplayed marks the idempotent path: the refund was computed and credited
// by an earlier call and is returned unchanged.
type CancelResult struct {
	Booking    *BookingSnapshot `json:"booking"`
	Refund     *refund.Result   `json:"refund"`
	IsReplayed bool             `json:"is_replayed"`
}

type PayoutResult struct {
	Booking      *BookingSnapshot `json:"booking"`
	PayoutAmount money.Money      `json:"payout_amount"`
}

type SlotPurchaseResult struct {
	HostID          uuid.UUID   `json:"host_id"`
	SlotsAdded      int         `json:"slots_added"`
	AmountCharged   money.Money `json:"amount_charged"`
	AdditionalSlots int         `json:"additional_slots"`
	RemainingSlots  int         `json:"remaining_slots"` // capacity - used, -1 when unlimited
}
