//go:build unit

package refund_test

import (
	"testing"
	"time"

	"staymarket/internal/domain/money"
	"staymarket/internal/domain/refund"
	"staymarket/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultPolicy(t *testing.T) *refund.Policy {
	t.Helper()
	p, err := refund.NewPolicy(
		7, 1,
		decimal.RequireFromString("0.20"),
		decimal.RequireFromString("0.50"),
		decimal.RequireFromString("0.10"),
	)
	require.NoError(t, err)
	return p
}

func usd(t *testing.T, s string) money.Money {
	t.Helper()
	m, err := money.Parse(s, money.USD)
	require.NoError(t, err)
	return m
}

func TestNewPolicyValidation(t *testing.T) {
	_, err := refund.NewPolicy(1, 7, decimal.Zero, decimal.Zero, decimal.Zero)
	assert.True(t, errs.Is(err, errs.ErrInvalidConfiguration))

	_, err = refund.NewPolicy(7, 1, decimal.RequireFromString("1.5"), decimal.Zero, decimal.Zero)
	assert.True(t, errs.Is(err, errs.ErrInvalidConfiguration))
}

func TestDaysUntilCheckIn(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("nil check-in is zero days", func(t *testing.T) {
		assert.Equal(t, 0, refund.DaysUntilCheckIn(nil, now))
	})

	t.Run("truncates partial days", func(t *testing.T) {
		checkIn := now.Add(10*24*time.Hour + 23*time.Hour)
		assert.Equal(t, 10, refund.DaysUntilCheckIn(&checkIn, now))
	})

	t.Run("past check-in is zero days", func(t *testing.T) {
		checkIn := now.Add(-48 * time.Hour)
		assert.Equal(t, 0, refund.DaysUntilCheckIn(&checkIn, now))
	})
}

func TestComputeRefundTiers(t *testing.T) {
	policy := defaultPolicy(t)

	tests := []struct {
		name        string
		total       string
		days        int
		wantFee     string
		wantAdmin   string
		wantRefund  string
		description string
	}{
		{
			name:        "free tier a week or more out",
			total:       "5000.00",
			days:        10,
			wantFee:     "0.00",
			wantAdmin:   "500.00",
			wantRefund:  "4500.00",
			description: "free cancellation",
		},
		{
			name:        "standard tier inside a week",
			total:       "5000.00",
			days:        3,
			wantFee:     "1000.00",
			wantAdmin:   "400.00",
			wantRefund:  "3600.00",
			description: "standard cancellation fee",
		},
		{
			name:        "late tier same day",
			total:       "5000.00",
			days:        0,
			wantFee:     "2500.00",
			wantAdmin:   "250.00",
			wantRefund:  "2250.00",
			description: "late cancellation fee",
		},
		{
			name:        "free tier boundary is inclusive",
			total:       "5000.00",
			days:        7,
			wantFee:     "0.00",
			wantAdmin:   "500.00",
			wantRefund:  "4500.00",
			description: "free cancellation",
		},
		{
			name:        "late tier boundary is exclusive",
			total:       "5000.00",
			days:        1,
			wantFee:     "1000.00",
			wantAdmin:   "400.00",
			wantRefund:  "3600.00",
			description: "standard cancellation fee",
		},
		{
			name:        "zero total refunds zero",
			total:       "0.00",
			days:        0,
			wantFee:     "0.00",
			wantAdmin:   "0.00",
			wantRefund:  "0.00",
			description: "late cancellation fee",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := policy.ComputeRefund(usd(t, tt.total), tt.days)
			require.NoError(t, err)

			assert.True(t, result.CancellationFeeAmount.Equal(usd(t, tt.wantFee)),
				"fee: got %s", result.CancellationFeeAmount)
			assert.True(t, result.AdminDeductionAmount.Equal(usd(t, tt.wantAdmin)),
				"admin: got %s", result.AdminDeductionAmount)
			assert.True(t, result.FinalRefundAmount.Equal(usd(t, tt.wantRefund)),
				"refund: got %s", result.FinalRefundAmount)
			assert.Equal(t, tt.days, result.DaysUntilCheckIn)
			assert.Equal(t, tt.description, result.PolicyDescription)
		})
	}
}

func TestComputeRefundNeverExceedsTotal(t *testing.T) {
	policy := defaultPolicy(t)

	for days := 0; days <= 14; days++ {
		result, err := policy.ComputeRefund(usd(t, "123.45"), days)
		require.NoError(t, err)
		assert.False(t, result.FinalRefundAmount.IsNegative())
		assert.False(t, usd(t, "123.45").LessThan(result.FinalRefundAmount))
	}
}
