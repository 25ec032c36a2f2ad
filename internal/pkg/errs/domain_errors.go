package errs

import "errors"

// Settlement error taxonomy. Every coordinator failure is marked with one of
// these sentinels so handlers can map outcomes without inspecting ledger state.
var (
	// State machine errors
	ErrInvalidTransition = errors.New("invalid booking transition")
	ErrAlreadyProcessed  = errors.New("settlement already processed")

	// Policy errors
	ErrInvalidConfiguration = errors.New("invalid configuration")
	ErrInvalidAmount        = errors.New("invalid amount")

	// Ledger errors
	ErrInsufficientBalance = errors.New("insufficient balance")

	// Quota errors
	ErrQuotaExceeded = errors.New("listing quota exceeded")

	// Concurrency errors
	ErrSettlementConflict = errors.New("settlement conflict after retries")

	// Lookup errors
	ErrBookingNotFound = errors.New("booking not found")
	ErrAccountNotFound = errors.New("ledger account not found")
	ErrQuotaNotFound   = errors.New("quota ledger not found")
)

// IsExpectedSweepError reports whether a background sweep failure is a
// normal race outcome rather than a fault: the booking moved on, someone
// else already settled it, or the sweep lost a conditional-write race.
func IsExpectedSweepError(err error) bool {
	return Is(err, ErrInvalidTransition) ||
		Is(err, ErrAlreadyProcessed) ||
		Is(err, ErrBookingNotFound) ||
		Is(err, ErrSettlementConflict)
}
