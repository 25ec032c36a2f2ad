package booking

import (
	"errors"
	"time"

	"staymarket/internal/domain/money"
	"staymarket/internal/domain/refund"

	"github.com/google/uuid"
)

var (
	ErrInvalidTransition = errors.New("invalid transition for current status")
	ErrAlreadyProcessed  = errors.New("settlement step already processed")
	ErrFeeNotFrozen      = errors.New("service fee not frozen")
	ErrFeeAlreadyFrozen  = errors.New("service fee already frozen")
)

// Booking is one reservation on the marketplace. Every mutation goes through
// a guarded transition; the entity never moves money itself, it only decides
// whether the coordinator may.
type Booking struct {
	id        uuid.UUID
	guestID   uuid.UUID
	hostID    uuid.UUID
	listingID uuid.UUID

	totalAmount money.Money
	serviceFee  *money.Money // frozen exactly once, at first confirmation

	status        Status
	payoutStatus  PayoutStatus
	refundResult  *refund.Result // set exactly once, at cancellation
	autoConfirmed bool

	createdAt         time.Time
	checkIn           *time.Time
	checkOut          *time.Time
	confirmedAt       *time.Time
	cancelledAt       *time.Time
	payoutProcessedAt *time.Time
}

// New creates a pending booking. The service fee is not frozen yet; that
// happens at first confirmation so the fee percentage in force at accept
// time governs all later settlement math.
func New(guestID, hostID, listingID uuid.UUID, totalAmount money.Money, checkIn, checkOut *time.Time, now time.Time) (*Booking, error) {
	if totalAmount.IsNegative() {
		return nil, money.ErrNegativeAmount
	}
	return &Booking{
		id:           uuid.New(),
		guestID:      guestID,
		hostID:       hostID,
		listingID:    listingID,
		totalAmount:  totalAmount,
		status:       StatusPending,
		payoutStatus: PayoutNone,
		createdAt:    now,
		checkIn:      checkIn,
		checkOut:     checkOut,
	}, nil
}

// Reconstruct rebuilds an entity from persisted state without invariant
// re-validation; stores are trusted to hand back what transitions wrote.
func Reconstruct(
	id, guestID, hostID, listingID uuid.UUID,
	totalAmount money.Money,
	serviceFee *money.Money,
	status Status,
	payoutStatus PayoutStatus,
	refundResult *refund.Result,
	autoConfirmed bool,
	createdAt time.Time,
	checkIn, checkOut, confirmedAt, cancelledAt, payoutProcessedAt *time.Time,
) *Booking {
	return &Booking{
		id:                id,
		guestID:           guestID,
		hostID:            hostID,
		listingID:         listingID,
		totalAmount:       totalAmount,
		serviceFee:        serviceFee,
		status:            status,
		payoutStatus:      payoutStatus,
		refundResult:      refundResult,
		autoConfirmed:     autoConfirmed,
		createdAt:         createdAt,
		checkIn:           checkIn,
		checkOut:          checkOut,
		confirmedAt:       confirmedAt,
		cancelledAt:       cancelledAt,
		payoutProcessedAt: payoutProcessedAt,
	}
}

func (b *Booking) ID() uuid.UUID                 { return b.id }
func (b *Booking) GuestID() uuid.UUID            { return b.guestID }
func (b *Booking) HostID() uuid.UUID             { return b.hostID }
func (b *Booking) ListingID() uuid.UUID          { return b.listingID }
func (b *Booking) TotalAmount() money.Money      { return b.totalAmount }
func (b *Booking) ServiceFee() *money.Money      { return b.serviceFee }
func (b *Booking) Status() Status                { return b.status }
func (b *Booking) PayoutStatus() PayoutStatus    { return b.payoutStatus }
func (b *Booking) RefundResult() *refund.Result  { return b.refundResult }
func (b *Booking) AutoConfirmed() bool           { return b.autoConfirmed }
func (b *Booking) CreatedAt() time.Time          { return b.createdAt }
func (b *Booking) CheckIn() *time.Time           { return b.checkIn }
func (b *Booking) CheckOut() *time.Time          { return b.checkOut }
func (b *Booking) ConfirmedAt() *time.Time       { return b.confirmedAt }
func (b *Booking) CancelledAt() *time.Time       { return b.cancelledAt }
func (b *Booking) PayoutProcessedAt() *time.Time { return b.payoutProcessedAt }

// IsTerminal reports whether no further settlement action may touch this
// booking: rejected, cancelled, or completed with payout already made.
func (b *Booking) IsTerminal() bool {
	switch b.status {
	case StatusRejected, StatusCancelled:
		return true
	case StatusCompleted:
		return b.payoutStatus == PayoutPaid
	default:
		return false
	}
}

// Confirm moves pending -> confirmed and freezes the service fee if it has
// not been frozen yet. auto records whether the confirmation came from the
// sweep rather than a manual accept.
func (b *Booking) Confirm(serviceFee money.Money, auto bool, now time.Time) error {
	if !b.status.CanTransitionTo(StatusConfirmed) {
		return ErrInvalidTransition
	}
	if b.serviceFee == nil {
		fee := serviceFee
		b.serviceFee = &fee
	}
	b.status = StatusConfirmed
	b.autoConfirmed = auto
	b.confirmedAt = &now
	return nil
}

// Reject moves pending -> rejected. Nothing was captured, so no ledger
// effect follows.
func (b *Booking) Reject() error {
	if !b.status.CanTransitionTo(StatusRejected) {
		return ErrInvalidTransition
	}
	b.status = StatusRejected
	return nil
}

// Cancel moves confirmed -> cancelled and records the refund math. The
// stored result is the idempotency guard: once set it is never recomputed.
func (b *Booking) Cancel(result *refund.Result, now time.Time) error {
	if b.refundResult != nil {
		return ErrAlreadyProcessed
	}
	if !b.status.CanTransitionTo(StatusCancelled) {
		return ErrInvalidTransition
	}
	b.status = StatusCancelled
	b.refundResult = result
	b.cancelledAt = &now
	return nil
}

// Complete moves confirmed -> completed, enabling payout eligibility. It
// does not move money.
func (b *Booking) Complete() error {
	if !b.status.CanTransitionTo(StatusCompleted) {
		return ErrInvalidTransition
	}
	b.status = StatusCompleted
	return nil
}

// MarkPayoutPaid flips the payout flag none -> paid. It requires a completed
// booking and a frozen fee; a second flip is the double-payout guard.
func (b *Booking) MarkPayoutPaid(now time.Time) error {
	if b.status != StatusCompleted {
		return ErrInvalidTransition
	}
	if b.payoutStatus != PayoutNone {
		return ErrAlreadyProcessed
	}
	if b.serviceFee == nil {
		return ErrFeeNotFrozen
	}
	b.payoutStatus = PayoutPaid
	b.payoutProcessedAt = &now
	return nil
}

// AutoConfirmEligible is a pure function of booking state and current time,
// so any reader may evaluate it without coordination. Two overlapping sweeps
// both seeing true is fine; the Confirm guard lets only one through.
func (b *Booking) AutoConfirmEligible(now time.Time, window time.Duration) bool {
	return b.status == StatusPending && now.Sub(b.createdAt) >= window
}

// CompletionDue reports whether a confirmed booking's check-out has passed.
// Bookings without a check-out date complete only manually.
func (b *Booking) CompletionDue(now time.Time) bool {
	return b.status == StatusConfirmed && b.checkOut != nil && now.After(*b.checkOut)
}

// Clone returns a deep copy. Stores hand out clones so callers never mutate
// shared state outside a conditional write.
func (b *Booking) Clone() *Booking {
	cp := *b
	if b.serviceFee != nil {
		fee := *b.serviceFee
		cp.serviceFee = &fee
	}
	if b.refundResult != nil {
		res := *b.refundResult
		cp.refundResult = &res
	}
	cp.checkIn = cloneTime(b.checkIn)
	cp.checkOut = cloneTime(b.checkOut)
	cp.confirmedAt = cloneTime(b.confirmedAt)
	cp.cancelledAt = cloneTime(b.cancelledAt)
	cp.payoutProcessedAt = cloneTime(b.payoutProcessedAt)
	return &cp
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
