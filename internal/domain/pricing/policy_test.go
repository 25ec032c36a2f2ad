//go:build unit

package pricing_test

import (
	"testing"

	"staymarket/internal/domain/money"
	"staymarket/internal/domain/pricing"
	"staymarket/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func usd(t *testing.T, s string) money.Money {
	t.Helper()
	m, err := money.Parse(s, money.USD)
	require.NoError(t, err)
	return m
}

func TestValidateFeePercent(t *testing.T) {
	tests := []struct {
		name  string
		pct   string
		errIs error
	}{
		{name: "zero", pct: "0"},
		{name: "ten percent", pct: "0.10"},
		{name: "full amount", pct: "1"},
		{name: "negative", pct: "-0.01", errIs: errs.ErrInvalidConfiguration},
		{name: "above one", pct: "1.01", errIs: errs.ErrInvalidConfiguration},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := pricing.ValidateFeePercent(decimal.RequireFromString(tt.pct))
			if tt.errIs != nil {
				assert.True(t, errs.Is(err, tt.errIs))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestComputeServiceFee(t *testing.T) {
	fee, err := pricing.ComputeServiceFee(usd(t, "5000.00"), decimal.RequireFromString("0.10"))
	require.NoError(t, err)
	assert.True(t, fee.Equal(usd(t, "500.00")))

	// rounding at the minor unit, half up
	fee, err = pricing.ComputeServiceFee(usd(t, "99.99"), decimal.RequireFromString("0.10"))
	require.NoError(t, err)
	assert.True(t, fee.Equal(usd(t, "10.00")))
}

func TestFeeAndPayoutReconcile(t *testing.T) {
	// fee + payout must always equal the original total; rounding may not
	// create or destroy money.
	totals := []string{"5000.00", "99.99", "0.01", "123.45"}
	pct := decimal.RequireFromString("0.10")

	for _, s := range totals {
		total := usd(t, s)
		fee, err := pricing.ComputeServiceFee(total, pct)
		require.NoError(t, err)
		payout, err := pricing.ComputeHostPayout(total, fee)
		require.NoError(t, err)

		sum, err := fee.Add(payout)
		require.NoError(t, err)
		assert.True(t, sum.Equal(total), "total %s: fee %s + payout %s", total, fee, payout)
	}
}

func TestComputeHostPayoutRejectsNegative(t *testing.T) {
	_, err := pricing.ComputeHostPayout(usd(t, "100.00"), usd(t, "150.00"))
	assert.True(t, errs.Is(err, errs.ErrInvalidAmount))
}
