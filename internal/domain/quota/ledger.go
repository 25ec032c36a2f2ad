// Package quota tracks per-host listing-slot consumption against the host's
// subscription plan. The coordinator consults it only at listing-activation
// boundaries; slot purchases route their money side through the ledger.
package quota

import (
	"staymarket/internal/pkg/errs"

	"github.com/google/uuid"
)

const Unlimited = -1

type Ledger struct {
	hostID          uuid.UUID
	listingLimit    int // from plan, Unlimited = no cap
	additionalSlots int // purchased add-ons
	usedSlots       int // listings in an active-consuming state
}

func NewLedger(hostID uuid.UUID, listingLimit int) *Ledger {
	return &Ledger{
		hostID:       hostID,
		listingLimit: listingLimit,
	}
}

func Reconstruct(hostID uuid.UUID, listingLimit, additionalSlots, usedSlots int) *Ledger {
	return &Ledger{
		hostID:          hostID,
		listingLimit:    listingLimit,
		additionalSlots: additionalSlots,
		usedSlots:       usedSlots,
	}
}

func (l *Ledger) HostID() uuid.UUID    { return l.hostID }
func (l *Ledger) ListingLimit() int    { return l.listingLimit }
func (l *Ledger) AdditionalSlots() int { return l.additionalSlots }
func (l *Ledger) UsedSlots() int       { return l.usedSlots }

// Capacity returns the total slot entitlement, or Unlimited.
func (l *Ledger) Capacity() int {
	if l.listingLimit == Unlimited {
		return Unlimited
	}
	return l.listingLimit + l.additionalSlots
}

// CanConsume reports whether one more active listing fits the entitlement.
func (l *Ledger) CanConsume() bool {
	cap := l.Capacity()
	return cap == Unlimited || l.usedSlots < cap
}

// Consume takes one slot for a listing activation; vetoed when the
// entitlement is exhausted.
func (l *Ledger) Consume() error {
	if !l.CanConsume() {
		return errs.Mark(
			errs.Newf("host %s at listing capacity %d", l.hostID, l.Capacity()),
			errs.ErrQuotaExceeded,
		)
	}
	l.usedSlots++
	return nil
}

// Release returns one slot on listing deactivation. Releasing below zero is
// a bookkeeping bug upstream and is rejected.
func (l *Ledger) Release() error {
	if l.usedSlots <= 0 {
		return errs.Mark(errs.New("release with no consumed slots"), errs.ErrInvalidAmount)
	}
	l.usedSlots--
	return nil
}

// AddSlots records a slot purchase. The money side (host account debit)
// happens in the coordinator before this is applied.
func (l *Ledger) AddSlots(count int) error {
	if count <= 0 {
		return errs.Mark(errs.Newf("slot count %d must be positive", count), errs.ErrInvalidAmount)
	}
	l.additionalSlots += count
	return nil
}

func (l *Ledger) Clone() *Ledger {
	cp := *l
	return &cp
}
