package commands

import (
	"context"

	"staymarket/internal/domain/pricing"
	"staymarket/internal/usecase/shared"

	"github.com/shopspring/decimal"
)

// FeeConfigCommands is the administrative write path for the global fee
// percentage. Changing it only affects bookings whose fee is not yet
// frozen; settled math never moves.
type FeeConfigCommands interface {
	SetFeePercent(ctx context.Context, pct decimal.Decimal) error
}

type feeConfigCommands struct {
	store shared.FeeConfigStore
}

func NewFeeConfigCommands(store shared.FeeConfigStore) FeeConfigCommands {
	return &feeConfigCommands{store: store}
}

func (c *feeConfigCommands) SetFeePercent(ctx context.Context, pct decimal.Decimal) error {
	if err := pricing.ValidateFeePercent(pct); err != nil {
		return err
	}
	return c.store.SetFeePercent(ctx, pct)
}
