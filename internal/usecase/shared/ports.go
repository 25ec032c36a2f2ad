package shared

import (
	"context"
	"time"

	"staymarket/internal/domain/booking"
	"staymarket/internal/domain/ledger"
	"staymarket/internal/domain/quota"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// The store contract is a document store: per-record versioned reads and
// conditional writes. No port assumes multi-record transactions; every
// cross-record flow in the coordinator is ordered so each single write is
// safe on its own.

// InsertVersion is the expected version that creates a record. A Put with
// any other version succeeds only if the stored version still matches.
const InsertVersion uint64 = 0

type BookingStore interface {
	Get(ctx context.Context, id uuid.UUID) (*booking.Booking, uint64, error)
	Put(ctx context.Context, b *booking.Booking, expectedVersion uint64) error

	// Sweep scans. Eligibility is re-checked per booking under the
	// conditional write, so stale listings are harmless.
	ListAutoConfirmable(ctx context.Context, createdBefore time.Time, limit int) ([]uuid.UUID, error)
	ListCompletionDue(ctx context.Context, now time.Time, limit int) ([]uuid.UUID, error)
	ListPayoutDue(ctx context.Context, limit int) ([]uuid.UUID, error)
}

type LedgerStore interface {
	Get(ctx context.Context, ownerID uuid.UUID) (*ledger.Account, uint64, error)
	Put(ctx context.Context, account *ledger.Account, expectedVersion uint64) error
}

type QuotaStore interface {
	Get(ctx context.Context, hostID uuid.UUID) (*quota.Ledger, uint64, error)
	Put(ctx context.Context, l *quota.Ledger, expectedVersion uint64) error
}

// FeeConfigStore is the single readable/writable global fee percentage. The
// coordinator reads it only at fee-freeze time; frozen bookings never see
// later changes.
type FeeConfigStore interface {
	FeePercent(ctx context.Context) (decimal.Decimal, error)
	SetFeePercent(ctx context.Context, pct decimal.Decimal) error
}

// NotificationEvent is handed to the notifier after accept/reject
// transitions. Dispatch is fire-and-forget; failures never surface into the
// settlement outcome.
type NotificationEvent struct {
	Topic     string
	BookingID uuid.UUID
	GuestID   uuid.UUID
	HostID    uuid.UUID
}

type Notifier interface {
	Dispatch(event NotificationEvent)
}
