package commands

import (
	"context"
	"log/slog"

	"staymarket/internal/domain/ledger"
	"staymarket/internal/domain/money"
	"staymarket/internal/domain/quota"
	"staymarket/internal/infra"
	"staymarket/internal/pkg/clock"
	"staymarket/internal/pkg/errs"
	"staymarket/internal/usecase/shared"

	"github.com/google/uuid"
)

// QuotaCommands manages per-host listing slots. Activation and deactivation
// mutate only the quota record; slot purchases also move money through the
// host's ledger account.
type QuotaCommands interface {
	PurchaseSlots(ctx context.Context, hostID uuid.UUID, count int) (*SlotPurchaseResult, error)
	ActivateListing(ctx context.Context, hostID uuid.UUID) error
	DeactivateListing(ctx context.Context, hostID uuid.UUID) error
}

type quotaCommands struct {
	quotas       shared.QuotaStore
	ledgers      shared.LedgerStore
	clock        clock.Clock
	retry        shared.RetryConfig
	slotPrice    money.Money
	defaultLimit int
}

func NewQuotaCommands(
	quotas shared.QuotaStore,
	ledgers shared.LedgerStore,
	clk clock.Clock,
	retry shared.RetryConfig,
	slotPrice money.Money,
	defaultLimit int,
) QuotaCommands {
	return &quotaCommands{
		quotas:       quotas,
		ledgers:      ledgers,
		clock:        clk,
		retry:        retry,
		slotPrice:    slotPrice,
		defaultLimit: defaultLimit,
	}
}

// PurchaseSlots debits the host account for count slots, then adds the
// slots to the quota record. The two writes are separate documents; when
// the quota write cannot land after retries the debit is compensated with
// an adjustment credit so no money is stranded.
func (c *quotaCommands) PurchaseSlots(ctx context.Context, hostID uuid.UUID, count int) (*SlotPurchaseResult, error) {
	if count <= 0 {
		return nil, errs.Mark(errs.Newf("slot count %d must be positive", count), errs.ErrInvalidAmount)
	}

	total := c.slotPrice
	var err error
	for i := 1; i < count; i++ {
		total, err = total.Add(c.slotPrice)
		if err != nil {
			return nil, errs.Mark(err, errs.ErrInvalidAmount)
		}
	}

	if err := c.debit(ctx, hostID, total, ledger.ReasonSlotPurchase); err != nil {
		return nil, err
	}

	result, err := shared.WithConflictRetry(ctx, c.retry, func(ctx context.Context) (*SlotPurchaseResult, error) {
		l, version, err := c.getOrInitQuota(ctx, hostID)
		if err != nil {
			return nil, err
		}
		if err := l.AddSlots(count); err != nil {
			return nil, err
		}
		if err := c.quotas.Put(ctx, l, version); err != nil {
			return nil, err
		}

		remaining := quota.Unlimited
		if cap := l.Capacity(); cap != quota.Unlimited {
			remaining = cap - l.UsedSlots()
		}
		return &SlotPurchaseResult{
			HostID:          hostID,
			SlotsAdded:      count,
			AmountCharged:   total,
			AdditionalSlots: l.AdditionalSlots(),
			RemainingSlots:  remaining,
		}, nil
	})
	if err != nil {
		c.compensateDebit(ctx, hostID, total)
		return nil, err
	}
	return result, nil
}

// ActivateListing consumes one slot, vetoing activations that would exceed
// the host's entitlement.
func (c *quotaCommands) ActivateListing(ctx context.Context, hostID uuid.UUID) error {
	_, err := shared.WithConflictRetry(ctx, c.retry, func(ctx context.Context) (struct{}, error) {
		l, version, err := c.getOrInitQuota(ctx, hostID)
		if err != nil {
			return struct{}{}, err
		}
		if err := l.Consume(); err != nil {
			return struct{}{}, err
		}
		return struct{}{}, c.quotas.Put(ctx, l, version)
	})
	return err
}

func (c *quotaCommands) DeactivateListing(ctx context.Context, hostID uuid.UUID) error {
	_, err := shared.WithConflictRetry(ctx, c.retry, func(ctx context.Context) (struct{}, error) {
		l, version, err := c.getOrInitQuota(ctx, hostID)
		if err != nil {
			return struct{}{}, err
		}
		if err := l.Release(); err != nil {
			return struct{}{}, err
		}
		return struct{}{}, c.quotas.Put(ctx, l, version)
	})
	return err
}

func (c *quotaCommands) getOrInitQuota(ctx context.Context, hostID uuid.UUID) (*quota.Ledger, uint64, error) {
	l, version, err := c.quotas.Get(ctx, hostID)
	if err != nil {
		if !infra.IsKind(err, infra.KindNotFound) {
			return nil, 0, err
		}
		l = quota.NewLedger(hostID, c.defaultLimit)
		version = shared.InsertVersion
	}
	return l, version, nil
}

func (c *quotaCommands) debit(ctx context.Context, ownerID uuid.UUID, amount money.Money, reason ledger.EntryReason) error {
	_, err := shared.WithConflictRetry(ctx, c.retry, func(ctx context.Context) (struct{}, error) {
		account, version, err := c.ledgers.Get(ctx, ownerID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return struct{}{}, errs.Mark(err, errs.ErrInsufficientBalance)
			}
			return struct{}{}, err
		}
		if err := account.Debit(amount, reason, nil, c.clock.Now()); err != nil {
			return struct{}{}, err
		}
		return struct{}{}, c.ledgers.Put(ctx, account, version)
	})
	return err
}

func (c *quotaCommands) compensateDebit(ctx context.Context, ownerID uuid.UUID, amount money.Money) {
	_, err := shared.WithConflictRetry(ctx, c.retry, func(ctx context.Context) (struct{}, error) {
		account, version, err := c.ledgers.Get(ctx, ownerID)
		if err != nil {
			return struct{}{}, err
		}
		if err := account.Credit(amount, ledger.ReasonAdjustment, nil, c.clock.Now()); err != nil {
			return struct{}{}, err
		}
		return struct{}{}, c.ledgers.Put(ctx, account, version)
	})
	if err != nil {
		slog.Error("failed to compensate slot purchase debit",
			"host_id", ownerID,
			"amount", amount.String(),
			"error", err.Error())
	}
}
