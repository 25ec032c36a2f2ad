package commands

import (
	"context"
	"errors"
	"time"

	"staymarket/internal/domain/booking"
	"staymarket/internal/domain/ledger"
	"staymarket/internal/domain/money"
	"staymarket/internal/domain/pricing"
	"staymarket/internal/domain/refund"
	"staymarket/internal/infra"
	"staymarket/internal/pkg/clock"
	"staymarket/internal/pkg/errs"
	"staymarket/internal/usecase/shared"

	"github.com/google/uuid"
)

// SettlementCommands is the coordination surface for every money-moving
// booking transition. Each method is a single idempotent unit of work:
// safe to call concurrently for the same booking, effects equivalent to
// exactly-once even when invoked twice.
type SettlementCommands interface {
	AcceptBooking(ctx context.Context, bookingID uuid.UUID) (*BookingSnapshot, error)
	AutoConfirmBooking(ctx context.Context, bookingID uuid.UUID) (*BookingSnapshot, error)
	RejectBooking(ctx context.Context, bookingID uuid.UUID) (*BookingSnapshot, error)
	CancelBooking(ctx context.Context, bookingID, initiator uuid.UUID) (*CancelResult, error)
	CompleteBooking(ctx context.Context, bookingID uuid.UUID) (*BookingSnapshot, error)
	ProcessPayout(ctx context.Context, bookingID uuid.UUID) (*PayoutResult, error)
}

type settlementCoordinator struct {
	bookings          shared.BookingStore
	ledgers           shared.LedgerStore
	feeConfig         shared.FeeConfigStore
	refundPolicy      *refund.Policy
	notifier          shared.Notifier
	clock             clock.Clock
	retry             shared.RetryConfig
	autoConfirmWindow time.Duration
}

func NewSettlementCommands(
	bookings shared.BookingStore,
	ledgers shared.LedgerStore,
	feeConfig shared.FeeConfigStore,
	refundPolicy *refund.Policy,
	notifier shared.Notifier,
	clk clock.Clock,
	retry shared.RetryConfig,
	autoConfirmWindow time.Duration,
) SettlementCommands {
	return &settlementCoordinator{
		bookings:          bookings,
		ledgers:           ledgers,
		feeConfig:         feeConfig,
		refundPolicy:      refundPolicy,
		notifier:          notifier,
		clock:             clk,
		retry:             retry,
		autoConfirmWindow: autoConfirmWindow,
	}
}

// AcceptBooking confirms a pending booking and freezes the service fee from
// the fee percentage in force right now. No money moves at this stage; funds
// are held upstream.
func (c *settlementCoordinator) AcceptBooking(ctx context.Context, bookingID uuid.UUID) (*BookingSnapshot, error) {
	return c.confirm(ctx, bookingID, false)
}

// AutoConfirmBooking is the sweep path. It confirms only bookings past the
// waiting window; the window check happens against the freshly read record
// so redundant sweepers cannot double-confirm.
func (c *settlementCoordinator) AutoConfirmBooking(ctx context.Context, bookingID uuid.UUID) (*BookingSnapshot, error) {
	return c.confirm(ctx, bookingID, true)
}

func (c *settlementCoordinator) confirm(ctx context.Context, bookingID uuid.UUID, auto bool) (*BookingSnapshot, error) {
	snap, err := shared.WithConflictRetry(ctx, c.retry, func(ctx context.Context) (*BookingSnapshot, error) {
		b, version, err := c.getBooking(ctx, bookingID)
		if err != nil {
			return nil, err
		}

		if auto && !b.AutoConfirmEligible(c.clock.Now(), c.autoConfirmWindow) {
			return nil, errs.Mark(
				errs.Newf("booking %s not eligible for auto-confirm", bookingID),
				errs.ErrInvalidTransition,
			)
		}

		fee := money.Zero(b.TotalAmount().Currency())
		if b.ServiceFee() == nil {
			pct, err := c.feeConfig.FeePercent(ctx)
			if err != nil {
				return nil, errs.Wrap(err, "failed to read fee configuration")
			}
			fee, err = pricing.ComputeServiceFee(b.TotalAmount(), pct)
			if err != nil {
				return nil, err
			}
		}

		if err := b.Confirm(fee, auto, c.clock.Now()); err != nil {
			return nil, mapTransitionErr(err)
		}
		if err := c.bookings.Put(ctx, b, version); err != nil {
			return nil, err
		}
		return SnapshotFromEntity(b), nil
	})
	if err != nil {
		return nil, err
	}

	c.notifier.Dispatch(shared.NotificationEvent{
		Topic:     "booking_confirmed",
		BookingID: snap.ID,
		GuestID:   snap.GuestID,
		HostID:    snap.HostID,
	})
	return snap, nil
}

// RejectBooking resolves a pending booking negatively. Nothing was captured,
// so there is no ledger effect.
func (c *settlementCoordinator) RejectBooking(ctx context.Context, bookingID uuid.UUID) (*BookingSnapshot, error) {
	snap, err := shared.WithConflictRetry(ctx, c.retry, func(ctx context.Context) (*BookingSnapshot, error) {
		b, version, err := c.getBooking(ctx, bookingID)
		if err != nil {
			return nil, err
		}
		if err := b.Reject(); err != nil {
			return nil, mapTransitionErr(err)
		}
		if err := c.bookings.Put(ctx, b, version); err != nil {
			return nil, err
		}
		return SnapshotFromEntity(b), nil
	})
	if err != nil {
		return nil, err
	}

	c.notifier.Dispatch(shared.NotificationEvent{
		Topic:     "booking_rejected",
		BookingID: snap.ID,
		GuestID:   snap.GuestID,
		HostID:    snap.HostID,
	})
	return snap, nil
}

// CancelBooking computes the tiered refund, records it on the booking, and
// credits the guest. The conditional booking write is the decision point:
// only the refund figures that land there are ever credited, so the stored
// result always matches the money that moved even when a retry recomputes
// across a tier boundary. A duplicate request replays the stored result and
// converges the credit if an earlier call recorded the decision but failed
// before the ledger write. The credit itself is deduplicated per
// (reason, booking), so replays and race losers cannot double-credit.
func (c *settlementCoordinator) CancelBooking(ctx context.Context, bookingID, initiator uuid.UUID) (*CancelResult, error) {
	_ = initiator // authorization is enforced upstream; kept for audit logging at the handler

	return shared.WithConflictRetry(ctx, c.retry, func(ctx context.Context) (*CancelResult, error) {
		b, version, err := c.getBooking(ctx, bookingID)
		if err != nil {
			return nil, err
		}

		if stored := b.RefundResult(); stored != nil {
			if err := c.creditRefund(ctx, b.GuestID(), stored, bookingID); err != nil {
				return nil, err
			}
			return &CancelResult{
				Booking:    SnapshotFromEntity(b),
				Refund:     stored,
				IsReplayed: true,
			}, nil
		}

		now := c.clock.Now()
		days := refund.DaysUntilCheckIn(b.CheckIn(), now)
		result, err := c.refundPolicy.ComputeRefund(b.TotalAmount(), days)
		if err != nil {
			return nil, err
		}

		if err := b.Cancel(result, now); err != nil {
			return nil, mapTransitionErr(err)
		}

		// The recorded result must land before any ledger effect; the
		// credit below and every later replay pay out the stored figures.
		if err := c.bookings.Put(ctx, b, version); err != nil {
			return nil, err
		}
		if err := c.creditRefund(ctx, b.GuestID(), result, bookingID); err != nil {
			return nil, err
		}
		return &CancelResult{
			Booking: SnapshotFromEntity(b),
			Refund:  result,
		}, nil
	})
}

func (c *settlementCoordinator) creditRefund(ctx context.Context, guestID uuid.UUID, result *refund.Result, bookingID uuid.UUID) error {
	if !result.FinalRefundAmount.IsPositive() {
		return nil
	}
	return c.creditOnce(ctx, guestID, result.FinalRefundAmount, ledger.ReasonRefund, bookingID)
}

// CompleteBooking moves confirmed -> completed. It does not move money;
// it only opens payout eligibility.
func (c *settlementCoordinator) CompleteBooking(ctx context.Context, bookingID uuid.UUID) (*BookingSnapshot, error) {
	return shared.WithConflictRetry(ctx, c.retry, func(ctx context.Context) (*BookingSnapshot, error) {
		b, version, err := c.getBooking(ctx, bookingID)
		if err != nil {
			return nil, err
		}
		if err := b.Complete(); err != nil {
			return nil, mapTransitionErr(err)
		}
		if err := c.bookings.Put(ctx, b, version); err != nil {
			return nil, err
		}
		return SnapshotFromEntity(b), nil
	})
}

// ProcessPayout credits the host with totalAmount minus the frozen service
// fee and flips the payout flag in the same conditional write that decided
// the credit. The flag is the double-spend guard: once paid, every later
// call fails AlreadyProcessed before the ledger is touched. The credit is
// deduplicated per booking, so the loser of a concurrent race converges to
// exactly one host credit.
func (c *settlementCoordinator) ProcessPayout(ctx context.Context, bookingID uuid.UUID) (*PayoutResult, error) {
	return shared.WithConflictRetry(ctx, c.retry, func(ctx context.Context) (*PayoutResult, error) {
		b, version, err := c.getBooking(ctx, bookingID)
		if err != nil {
			return nil, err
		}

		if b.Status() != booking.StatusCompleted {
			return nil, errs.Mark(
				errs.Newf("payout requires completed status, booking is %s", b.Status()),
				errs.ErrInvalidTransition,
			)
		}
		if b.PayoutStatus() != booking.PayoutNone {
			return nil, errs.Mark(
				errs.Newf("payout already %s for booking %s", b.PayoutStatus(), bookingID),
				errs.ErrAlreadyProcessed,
			)
		}
		if b.ServiceFee() == nil {
			return nil, errs.Mark(errs.New("service fee never frozen"), errs.ErrInvalidTransition)
		}

		payout, err := pricing.ComputeHostPayout(b.TotalAmount(), *b.ServiceFee())
		if err != nil {
			return nil, err
		}

		if payout.IsPositive() {
			if err := c.creditOnce(ctx, b.HostID(), payout, ledger.ReasonHostPayout, bookingID); err != nil {
				return nil, err
			}
		}

		if err := b.MarkPayoutPaid(c.clock.Now()); err != nil {
			return nil, mapTransitionErr(err)
		}
		if err := c.bookings.Put(ctx, b, version); err != nil {
			return nil, err
		}
		return &PayoutResult{
			Booking:      SnapshotFromEntity(b),
			PayoutAmount: payout,
		}, nil
	})
}

func (c *settlementCoordinator) getBooking(ctx context.Context, bookingID uuid.UUID) (*booking.Booking, uint64, error) {
	b, version, err := c.bookings.Get(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, 0, errs.Mark(err, errs.ErrBookingNotFound)
		}
		return nil, 0, err
	}
	return b, version, nil
}

// creditOnce appends a credit unless an entry for (reason, booking) already
// exists on the account. The append and the dedup check share one
// conditional write, so concurrent writers cannot both slip an entry in.
func (c *settlementCoordinator) creditOnce(ctx context.Context, ownerID uuid.UUID, amount money.Money, reason ledger.EntryReason, bookingID uuid.UUID) error {
	account, version, err := c.ledgers.Get(ctx, ownerID)
	if err != nil {
		if !infra.IsKind(err, infra.KindNotFound) {
			return err
		}
		account = ledger.NewAccount(ownerID, amount.Currency())
		version = shared.InsertVersion
	}

	if account.HasEntryFor(reason, bookingID) {
		return nil
	}
	if err := account.Credit(amount, reason, &bookingID, c.clock.Now()); err != nil {
		return err
	}
	return c.ledgers.Put(ctx, account, version)
}

func mapTransitionErr(err error) error {
	switch {
	case errors.Is(err, booking.ErrAlreadyProcessed):
		return errs.Mark(err, errs.ErrAlreadyProcessed)
	case errors.Is(err, booking.ErrInvalidTransition),
		errors.Is(err, booking.ErrFeeNotFrozen):
		return errs.Mark(err, errs.ErrInvalidTransition)
	default:
		return err
	}
}
