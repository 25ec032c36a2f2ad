// Package refund computes tiered cancellation refunds. The tier breakpoints
// and percentages are a configuration table, not constants; defaults match
// the marketplace policy (free cancellation a week out, 20% fee inside a
// week, 50% same day, 10% handling deduction in every tier).
package refund

import (
	"time"

	"staymarket/internal/domain/money"
	"staymarket/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Result records the refund math for one cancellation. It is stored on the
// booking as settlement metadata so duplicate cancellation requests replay
// the identical figures.
type Result struct {
	OriginalAmount        money.Money `json:"original_amount"`
	CancellationFeeAmount money.Money `json:"cancellation_fee_amount"`
	AdminDeductionAmount  money.Money `json:"admin_deduction_amount"`
	FinalRefundAmount     money.Money `json:"final_refund_amount"`
	DaysUntilCheckIn      int         `json:"days_until_check_in"`
	PolicyDescription     string      `json:"policy_description"`
}

// Policy holds the tier table. FreeCancelDays and LateCancelDays are
// inclusive lower bounds: days >= FreeCancelDays is the free tier,
// LateCancelDays <= days < FreeCancelDays the standard tier, and anything
// below LateCancelDays (same day or past check-in) the late tier.
type Policy struct {
	FreeCancelDays   int
	LateCancelDays   int
	CancelFeePercent decimal.Decimal
	LateFeePercent   decimal.Decimal
	AdminPercent     decimal.Decimal
}

func NewPolicy(freeCancelDays, lateCancelDays int, cancelFeePct, lateFeePct, adminPct decimal.Decimal) (*Policy, error) {
	if freeCancelDays < lateCancelDays {
		return nil, errs.Mark(errs.New("free-cancel breakpoint below late-cancel breakpoint"), errs.ErrInvalidConfiguration)
	}
	for _, pct := range []decimal.Decimal{cancelFeePct, lateFeePct, adminPct} {
		if pct.IsNegative() || pct.GreaterThan(decimal.NewFromInt(1)) {
			return nil, errs.Mark(errs.Newf("refund percentage %s outside [0, 1]", pct), errs.ErrInvalidConfiguration)
		}
	}
	return &Policy{
		FreeCancelDays:   freeCancelDays,
		LateCancelDays:   lateCancelDays,
		CancelFeePercent: cancelFeePct,
		LateFeePercent:   lateFeePct,
		AdminPercent:     adminPct,
	}, nil
}

// DaysUntilCheckIn truncates checkIn - now to whole days. A nil check-in
// (non-dated listing types) is the most conservative tier: zero days.
func DaysUntilCheckIn(checkIn *time.Time, now time.Time) int {
	if checkIn == nil {
		return 0
	}
	diff := checkIn.Sub(now)
	if diff <= 0 {
		return 0
	}
	return int(diff / (24 * time.Hour))
}

// ComputeRefund applies the tier table to the booking total. The admin
// deduction is taken from the post-cancellation-fee remainder in every tier,
// and the final refund is clamped to [0, totalAmount].
func (p *Policy) ComputeRefund(totalAmount money.Money, daysUntilCheckIn int) (*Result, error) {
	if totalAmount.IsNegative() {
		return nil, errs.Mark(errs.New("total amount is negative"), errs.ErrInvalidAmount)
	}

	var (
		feePct      decimal.Decimal
		description string
	)
	switch {
	case daysUntilCheckIn >= p.FreeCancelDays:
		feePct = decimal.Zero
		description = "free cancellation"
	case daysUntilCheckIn >= p.LateCancelDays:
		feePct = p.CancelFeePercent
		description = "standard cancellation fee"
	default:
		feePct = p.LateFeePercent
		description = "late cancellation fee"
	}

	cancellationFee := totalAmount.MulPercent(feePct)

	remainder, err := totalAmount.Sub(cancellationFee)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidAmount)
	}
	remainder = remainder.ClampNonNegative()

	adminDeduction := remainder.MulPercent(p.AdminPercent)

	final, err := remainder.Sub(adminDeduction)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidAmount)
	}
	final = final.ClampNonNegative()
	if totalAmount.LessThan(final) {
		final = totalAmount
	}

	return &Result{
		OriginalAmount:        totalAmount,
		CancellationFeeAmount: cancellationFee,
		AdminDeductionAmount:  adminDeduction,
		FinalRefundAmount:     final,
		DaysUntilCheckIn:      daysUntilCheckIn,
		PolicyDescription:     description,
	}, nil
}
