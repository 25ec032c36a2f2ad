//go:build unit

package queries_test

import (
	"context"
	"testing"

	"staymarket/internal/domain/quota"
	"staymarket/internal/infra/memstore"
	"staymarket/internal/pkg/errs"
	"staymarket/internal/usecase/queries"
	"staymarket/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetQuotaByHost(t *testing.T) {
	store := memstore.NewQuotaStore()
	q := queries.NewQuotaQueries(store)
	ctx := context.Background()

	hostID := uuid.New()
	l := quota.NewLedger(hostID, 1)
	require.NoError(t, l.AddSlots(2))
	require.NoError(t, l.Consume())
	require.NoError(t, store.Put(ctx, l, shared.InsertVersion))

	view, err := q.GetByHost(ctx, hostID)
	require.NoError(t, err)
	assert.Equal(t, hostID, view.HostID)
	assert.Equal(t, 1, view.ListingLimit)
	assert.Equal(t, 2, view.AdditionalSlots)
	assert.Equal(t, 1, view.UsedSlots)
	assert.True(t, view.CanActivate)

	_, err = q.GetByHost(ctx, uuid.New())
	assert.True(t, errs.Is(err, errs.ErrQuotaNotFound))
}

func TestGetFeePercent(t *testing.T) {
	store := memstore.NewFeeConfigStore(decimal.RequireFromString("0.10"))
	q := queries.NewFeeConfigQueries(store)
	ctx := context.Background()

	pct, err := q.GetFeePercent(ctx)
	require.NoError(t, err)
	assert.True(t, pct.Equal(decimal.RequireFromString("0.10")))

	require.NoError(t, store.SetFeePercent(ctx, decimal.RequireFromString("0.25")))
	pct, err = q.GetFeePercent(ctx)
	require.NoError(t, err)
	assert.True(t, pct.Equal(decimal.RequireFromString("0.25")))
}
