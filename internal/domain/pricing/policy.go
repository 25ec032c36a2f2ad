// Package pricing computes the platform service fee and the host payout for a
// booking. Both functions are pure; the fee percentage is read once per
// booking and frozen onto it, so recalculations never see a changed global.
package pricing

import (
	"staymarket/internal/domain/money"
	"staymarket/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	one = decimal.NewFromInt(1)
)

// ValidateFeePercent accepts fractional percentages in [0, 1].
func ValidateFeePercent(feePercent decimal.Decimal) error {
	if feePercent.IsNegative() || feePercent.GreaterThan(one) {
		return errs.Mark(
			errs.Newf("fee percentage %s outside [0, 1]", feePercent),
			errs.ErrInvalidConfiguration,
		)
	}
	return nil
}

// ComputeServiceFee returns totalAmount * feePercent rounded half up to the
// currency minor unit.
func ComputeServiceFee(totalAmount money.Money, feePercent decimal.Decimal) (money.Money, error) {
	if err := ValidateFeePercent(feePercent); err != nil {
		return money.Money{}, err
	}
	if totalAmount.IsNegative() {
		return money.Money{}, errs.Mark(errs.New("total amount is negative"), errs.ErrInvalidAmount)
	}
	return totalAmount.MulPercent(feePercent), nil
}

// ComputeHostPayout returns totalAmount - serviceFee. The fee passed here is
// the frozen per-booking value, never a recomputation from the live global.
func ComputeHostPayout(totalAmount, serviceFee money.Money) (money.Money, error) {
	payout, err := totalAmount.Sub(serviceFee)
	if err != nil {
		return money.Money{}, errs.Mark(err, errs.ErrInvalidAmount)
	}
	if payout.IsNegative() {
		return money.Money{}, errs.Mark(
			errs.Newf("payout %s is negative", payout),
			errs.ErrInvalidAmount,
		)
	}
	return payout, nil
}
