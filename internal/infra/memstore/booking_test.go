//go:build unit

package memstore_test

import (
	"context"
	"testing"
	"time"

	"staymarket/internal/domain/booking"
	"staymarket/internal/domain/money"
	"staymarket/internal/infra"
	"staymarket/internal/infra/memstore"
	"staymarket/internal/usecase/shared"
	"staymarket/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPending(t *testing.T, mutate ...func(*builder.BookingBuilder)) *booking.Booking {
	t.Helper()
	b := builder.NewBookingBuilder()
	for _, m := range mutate {
		b.With(m)
	}
	entity, err := b.BuildDomain()
	require.NoError(t, err)
	return entity
}

func TestPutInsertAndGet(t *testing.T) {
	store := memstore.NewBookingStore()
	ctx := context.Background()
	b := newPending(t)

	require.NoError(t, store.Put(ctx, b, shared.InsertVersion))

	got, version, err := store.Get(ctx, b.ID())
	require.NoError(t, err)
	assert.Equal(t, uint64(1), version)
	assert.Equal(t, b.ID(), got.ID())

	err = store.Put(ctx, b, shared.InsertVersion)
	assert.True(t, infra.IsKind(err, infra.KindDuplicate))
}

func TestPutStaleVersionConflicts(t *testing.T) {
	store := memstore.NewBookingStore()
	ctx := context.Background()
	b := newPending(t)
	require.NoError(t, store.Put(ctx, b, shared.InsertVersion))

	first, v1, err := store.Get(ctx, b.ID())
	require.NoError(t, err)
	second, v2, err := store.Get(ctx, b.ID())
	require.NoError(t, err)
	require.Equal(t, v1, v2)

	require.NoError(t, first.Reject())
	require.NoError(t, store.Put(ctx, first, v1))

	err = store.Put(ctx, second, v2)
	assert.True(t, infra.IsKind(err, infra.KindConflict), "stale writer must lose")

	got, version, err := store.Get(ctx, b.ID())
	require.NoError(t, err)
	assert.Equal(t, uint64(2), version)
	assert.Equal(t, booking.StatusRejected, got.Status())
}

func TestGetReturnsClone(t *testing.T) {
	store := memstore.NewBookingStore()
	ctx := context.Background()
	b := newPending(t)
	require.NoError(t, store.Put(ctx, b, shared.InsertVersion))

	got, _, err := store.Get(ctx, b.ID())
	require.NoError(t, err)
	require.NoError(t, got.Reject())

	// mutating the returned copy must not leak into the store
	fresh, _, err := store.Get(ctx, b.ID())
	require.NoError(t, err)
	assert.Equal(t, booking.StatusPending, fresh.Status())
}

func TestListAutoConfirmable(t *testing.T) {
	store := memstore.NewBookingStore()
	ctx := context.Background()

	old := newPending(t)
	require.NoError(t, store.Put(ctx, old, shared.InsertVersion))

	cutoff := old.CreatedAt().Add(time.Minute)

	young := newPending(t, func(b *builder.BookingBuilder) {
		b.CreatedAt = cutoff.Add(time.Hour)
	})
	require.NoError(t, store.Put(ctx, young, shared.InsertVersion))

	ids, err := store.ListAutoConfirmable(ctx, cutoff, 10)
	require.NoError(t, err)
	require.Len(t, ids, 1)
	assert.Equal(t, old.ID(), ids[0])
}

func TestListPayoutDue(t *testing.T) {
	store := memstore.NewBookingStore()
	ctx := context.Background()

	fee, err := money.Parse("500.00", money.USD)
	require.NoError(t, err)

	completed, err := builder.NewBookingBuilder().BuildCompleted(fee, time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.NoError(t, store.Put(ctx, completed, shared.InsertVersion))

	pending := newPending(t)
	require.NoError(t, store.Put(ctx, pending, shared.InsertVersion))

	ids, err := store.ListPayoutDue(ctx, 10)
	require.NoError(t, err)
	require.Len(t, ids, 1)
	assert.Equal(t, completed.ID(), ids[0])
}
