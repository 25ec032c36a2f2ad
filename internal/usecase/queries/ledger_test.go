//go:build unit

package queries_test

import (
	"context"
	"testing"

	"staymarket/internal/domain/ledger"
	"staymarket/internal/domain/money"
	"staymarket/internal/infra/memstore"
	"staymarket/internal/pkg/errs"
	"staymarket/internal/usecase/queries"
	"staymarket/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetBalanceAndHistory(t *testing.T) {
	store := memstore.NewLedgerStore()
	q := queries.NewLedgerQueries(store)
	ctx := context.Background()

	ownerID := uuid.New()
	bookingID := uuid.New()
	account := ledger.NewAccount(ownerID, money.USD)
	require.NoError(t, account.Credit(usd(t, "100.00"), ledger.ReasonTopUp, nil, queryNow))
	require.NoError(t, account.Credit(usd(t, "4500.00"), ledger.ReasonRefund, &bookingID, queryNow.Add(1)))
	require.NoError(t, account.Debit(usd(t, "50.00"), ledger.ReasonSlotPurchase, nil, queryNow.Add(2)))
	require.NoError(t, store.Put(ctx, account, shared.InsertVersion))

	balance, err := q.GetBalance(ctx, ownerID)
	require.NoError(t, err)
	assert.Equal(t, ownerID, balance.OwnerID)
	assert.True(t, balance.Balance.Equal(usd(t, "4550.00")))
	assert.Equal(t, "USD", balance.Currency)

	history, err := q.GetHistory(ctx, ownerID)
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.Equal(t, "top_up", history[0].Reason)
	assert.Equal(t, "refund", history[1].Reason)
	require.NotNil(t, history[1].RelatedBookingID)
	assert.Equal(t, bookingID, *history[1].RelatedBookingID)
	// debits are stored signed
	assert.True(t, history[2].Amount.Equal(usd(t, "-50.00")))
}

func TestLedgerQueriesUnknownAccount(t *testing.T) {
	q := queries.NewLedgerQueries(memstore.NewLedgerStore())
	ctx := context.Background()

	_, err := q.GetBalance(ctx, uuid.New())
	assert.True(t, errs.Is(err, errs.ErrAccountNotFound))

	_, err = q.GetHistory(ctx, uuid.New())
	assert.True(t, errs.Is(err, errs.ErrAccountNotFound))
}
