package queries

import (
	"context"
	"time"

	"staymarket/internal/domain/booking"
	"staymarket/internal/domain/money"
	"staymarket/internal/domain/refund"
	"staymarket/internal/infra"
	"staymarket/internal/pkg/clock"
	"staymarket/internal/pkg/errs"
	"staymarket/internal/usecase/shared"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type BookingView struct {
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

type BookingQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	// GetRefundPreview computes the refund the guest would receive if they
	// cancelled now, without mutating anything. Already-cancelled bookings
	// return the stored result.
	GetRefundPreview(ctx context.Context, id uuid.UUID) (*refund.Result, error)
}

type bookingQueriesImpl struct {
	bookings     shared.BookingStore
	refundPolicy *refund.Policy
	clock        clock.Clock
}

func NewBookingQueries(bookings shared.BookingStore, refundPolicy *refund.Policy, clk clock.Clock) BookingQueries {
	return &bookingQueriesImpl{
		bookings:     bookings,
		refundPolicy: refundPolicy,
		clock:        clk,
	}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	b, _, err := q.bookings.Get(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrBookingNotFound)
		}
		return nil, err
	}
	return viewFromEntity(b), nil
}

func (q *bookingQueriesImpl) GetRefundPreview(ctx context.Context, id uuid.UUID) (*refund.Result, error) {
	b, _, err := q.bookings.Get(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrBookingNotFound)
		}
		return nil, err
	}

	if stored := b.RefundResult(); stored != nil {
		return stored, nil
	}

	now := q.clock.Now()
	days := refund.DaysUntilCheckIn(b.CheckIn(), now)
	return q.refundPolicy.ComputeRefund(b.TotalAmount(), days)
}

func viewFromEntity(b *booking.Booking) *BookingView {
	return &BookingView{
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
