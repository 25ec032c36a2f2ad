//go:build unit

package ledger_test

import (
	"testing"
	"time"

	"staymarket/internal/domain/ledger"
	"staymarket/internal/domain/money"
	"staymarket/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func usd(amount int64) money.Money {
	return money.New(decimal.NewFromInt(amount), money.USD)
}

func TestCreditAndDebit(t *testing.T) {
	account := ledger.NewAccount(uuid.New(), money.USD)

	require.NoError(t, account.Credit(usd(100), ledger.ReasonTopUp, nil, now))
	assert.True(t, account.Balance().Equal(usd(100)))

	require.NoError(t, account.Debit(usd(40), ledger.ReasonSlotPurchase, nil, now))
	assert.True(t, account.Balance().Equal(usd(60)))

	require.Len(t, account.Entries(), 2)
	assert.True(t, account.Entries()[1].Amount.IsNegative())
}

func TestDebitIsRejectedNotClamped(t *testing.T) {
	account := ledger.NewAccount(uuid.New(), money.USD)
	require.NoError(t, account.Credit(usd(50), ledger.ReasonTopUp, nil, now))

	err := account.Debit(usd(100), ledger.ReasonSlotPurchase, nil, now)
	assert.True(t, errs.Is(err, errs.ErrInsufficientBalance))

	// the rejected debit leaves no trace
	assert.True(t, account.Balance().Equal(usd(50)))
	assert.Len(t, account.Entries(), 1)
}

func TestNonPositiveAmountsRejected(t *testing.T) {
	account := ledger.NewAccount(uuid.New(), money.USD)

	assert.True(t, errs.Is(account.Credit(usd(0), ledger.ReasonTopUp, nil, now), errs.ErrInvalidAmount))
	assert.True(t, errs.Is(account.Debit(usd(0), ledger.ReasonTopUp, nil, now), errs.ErrInvalidAmount))
}

func TestHasEntryFor(t *testing.T) {
	account := ledger.NewAccount(uuid.New(), money.USD)
	bookingID := uuid.New()

	assert.False(t, account.HasEntryFor(ledger.ReasonRefund, bookingID))

	require.NoError(t, account.Credit(usd(100), ledger.ReasonRefund, &bookingID, now))
	assert.True(t, account.HasEntryFor(ledger.ReasonRefund, bookingID))

	// same booking, different reason
	assert.False(t, account.HasEntryFor(ledger.ReasonHostPayout, bookingID))
	// same reason, different booking
	assert.False(t, account.HasEntryFor(ledger.ReasonRefund, uuid.New()))
}

func TestReplaySumMatchesBalance(t *testing.T) {
	account := ledger.NewAccount(uuid.New(), money.USD)
	bookingID := uuid.New()

	require.NoError(t, account.Credit(usd(500), ledger.ReasonTopUp, nil, now))
	require.NoError(t, account.Credit(usd(250), ledger.ReasonRefund, &bookingID, now))
	require.NoError(t, account.Debit(usd(100), ledger.ReasonSlotPurchase, nil, now))

	sum, err := account.ReplaySum()
	require.NoError(t, err)
	assert.True(t, sum.Equal(account.Balance()), "replay %s vs balance %s", sum, account.Balance())
}

func TestCloneIsDeep(t *testing.T) {
	account := ledger.NewAccount(uuid.New(), money.USD)
	require.NoError(t, account.Credit(usd(100), ledger.ReasonTopUp, nil, now))

	clone := account.Clone()
	require.NoError(t, clone.Debit(usd(100), ledger.ReasonSlotPurchase, nil, now))

	assert.True(t, account.Balance().Equal(usd(100)))
	assert.Len(t, account.Entries(), 1)
}
