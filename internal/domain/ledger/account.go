// Package ledger models one party's spendable balance as an append-only
// entry history. The balance is always the replay sum of the history; the
// store layer serializes concurrent mutations with a conditional write on
// the account record.
package ledger

import (
	"time"

	"staymarket/internal/domain/money"
	"staymarket/internal/pkg/errs"

	"github.com/google/uuid"
)

// EntryReason tags why money moved. Reasons participate in idempotency:
// at most one entry per (reason, booking) pair is ever appended.
type EntryReason string

const (
	ReasonRefund       EntryReason = "refund"
	ReasonHostPayout   EntryReason = "host_payout"
	ReasonSlotPurchase EntryReason = "slot_purchase"
	ReasonTopUp        EntryReason = "top_up"
	ReasonAdjustment   EntryReason = "adjustment"
)

// Entry is one immutable ledger line. Amount is signed: positive for
// credits, negative for debits.
type Entry struct {
	Amount           money.Money `json:"amount"`
	Reason           EntryReason `json:"reason"`
	RelatedBookingID *uuid.UUID  `json:"related_booking_id,omitempty"`
	Timestamp        time.Time   `json:"timestamp"`
}

type Account struct {
	ownerID  uuid.UUID
	currency money.Currency
	balance  money.Money
	entries  []Entry
}

func NewAccount(ownerID uuid.UUID, currency money.Currency) *Account {
	return &Account{
		ownerID:  ownerID,
		currency: currency,
		balance:  money.Zero(currency),
	}
}

func Reconstruct(ownerID uuid.UUID, currency money.Currency, balance money.Money, entries []Entry) *Account {
	return &Account{
		ownerID:  ownerID,
		currency: currency,
		balance:  balance,
		entries:  entries,
	}
}

func (a *Account) OwnerID() uuid.UUID       { return a.ownerID }
func (a *Account) Currency() money.Currency { return a.currency }
func (a *Account) Balance() money.Money     { return a.balance }

// Entries returns the history in append order. Callers must not mutate it.
func (a *Account) Entries() []Entry { return a.entries }

// HasEntryFor reports whether an entry with this reason and booking already
// exists. Settlement credits use it to stay idempotent across retries.
func (a *Account) HasEntryFor(reason EntryReason, bookingID uuid.UUID) bool {
	for _, e := range a.entries {
		if e.Reason == reason && e.RelatedBookingID != nil && *e.RelatedBookingID == bookingID {
			return true
		}
	}
	return false
}

// Credit appends a positive entry. Fails only on malformed input.
func (a *Account) Credit(amount money.Money, reason EntryReason, relatedBookingID *uuid.UUID, now time.Time) error {
	if !amount.IsPositive() {
		return errs.Mark(errs.Newf("credit amount %s must be positive", amount), errs.ErrInvalidAmount)
	}
	next, err := a.balance.Add(amount)
	if err != nil {
		return errs.Mark(err, errs.ErrInvalidAmount)
	}
	a.balance = next
	a.entries = append(a.entries, Entry{
		Amount:           amount,
		Reason:           reason,
		RelatedBookingID: relatedBookingID,
		Timestamp:        now,
	})
	return nil
}

// Debit appends a negative entry only if the balance covers it; on rejection
// the account is untouched (debits are rejected, never clamped).
func (a *Account) Debit(amount money.Money, reason EntryReason, relatedBookingID *uuid.UUID, now time.Time) error {
	if !amount.IsPositive() {
		return errs.Mark(errs.Newf("debit amount %s must be positive", amount), errs.ErrInvalidAmount)
	}
	if a.balance.LessThan(amount) {
		return errs.Mark(
			errs.Newf("debit %s exceeds balance %s", amount, a.balance),
			errs.ErrInsufficientBalance,
		)
	}
	next, err := a.balance.Sub(amount)
	if err != nil {
		return errs.Mark(err, errs.ErrInvalidAmount)
	}
	negated := money.Zero(a.currency)
	negated, err = negated.Sub(amount)
	if err != nil {
		return errs.Mark(err, errs.ErrInvalidAmount)
	}
	a.balance = next
	a.entries = append(a.entries, Entry{
		Amount:           negated,
		Reason:           reason,
		RelatedBookingID: relatedBookingID,
		Timestamp:        now,
	})
	return nil
}

// ReplaySum recomputes the balance from the history. Tests use it as the
// consistency check against Balance.
func (a *Account) ReplaySum() (money.Money, error) {
	sum := money.Zero(a.currency)
	for _, e := range a.entries {
		next, err := sum.Add(e.Amount)
		if err != nil {
			return money.Money{}, err
		}
		sum = next
	}
	return sum, nil
}

// Clone returns a deep copy for store handout.
func (a *Account) Clone() *Account {
	entries := make([]Entry, len(a.entries))
	copy(entries, a.entries)
	for i := range entries {
		if entries[i].RelatedBookingID != nil {
			id := *entries[i].RelatedBookingID
			entries[i].RelatedBookingID = &id
		}
	}
	return &Account{
		ownerID:  a.ownerID,
		currency: a.currency,
		balance:  a.balance,
		entries:  entries,
	}
}
