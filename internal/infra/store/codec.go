// Package store is the PostgreSQL document store driver. Each aggregate is
// one JSONB row with a version column; writes are conditional on the version
// the caller read, so concurrent writers detect each other without row locks
// or multi-statement transactions.
package store

import (
	"time"

	"staymarket/internal/domain/booking"
	"staymarket/internal/domain/ledger"
	"staymarket/internal/domain/money"
	"staymarket/internal/domain/quota"
	"staymarket/internal/domain/refund"

	"github.com/google/uuid"
)

type bookingDoc struct {
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

func encodeBooking(b *booking.Booking) bookingDoc {
	return bookingDoc{
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

func (d bookingDoc) toEntity() *booking.Booking {
	return booking.Reconstruct(
		d.ID, d.GuestID, d.HostID, d.ListingID,
		d.TotalAmount,
		d.ServiceFee,
		booking.Status(d.Status),
		booking.PayoutStatus(d.PayoutStatus),
		d.RefundResult,
		d.AutoConfirmed,
		d.CreatedAt,
		d.CheckIn, d.CheckOut, d.ConfirmedAt, d.CancelledAt, d.PayoutProcessedAt,
	)
}

type ledgerDoc struct {
	OwnerID  uuid.UUID      `json:"owner_id"`
	Currency string         `json:"currency"`
	Balance  money.Money    `json:"balance"`
	Entries  []ledger.Entry `json:"entries"`
}

func encodeLedger(a *ledger.Account) ledgerDoc {
	return ledgerDoc{
		OwnerID:  a.OwnerID(),
		Currency: a.Currency().String(),
		Balance:  a.Balance(),
		Entries:  a.Entries(),
	}
}

func (d ledgerDoc) toEntity() *ledger.Account {
	return ledger.Reconstruct(d.OwnerID, money.Currency(d.Currency), d.Balance, d.Entries)
}

type quotaDoc struct {
	HostID          uuid.UUID `json:"host_id"`
	ListingLimit    int       `json:"listing_limit"`
	AdditionalSlots int       `json:"additional_slots"`
	UsedSlots       int       `json:"used_slots"`
}

func encodeQuota(l *quota.Ledger) quotaDoc {
	return quotaDoc{
		HostID:          l.HostID(),
		ListingLimit:    l.ListingLimit(),
		AdditionalSlots: l.AdditionalSlots(),
		UsedSlots:       l.UsedSlots(),
	}
}

func (d quotaDoc) toEntity() *quota.Ledger {
	return quota.Reconstruct(d.HostID, d.ListingLimit, d.AdditionalSlots, d.UsedSlots)
}
