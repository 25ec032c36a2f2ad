package components

import (
	"staymarket/internal/infra/memstore"
	"staymarket/internal/infra/store"
	"staymarket/internal/pkg/config"
	"staymarket/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// PersistenceModule binds the document store ports to the configured
// driver. Both drivers expose the same versioned conditional-write
// contract; the coordinator never knows which one it runs on.
var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewBookingStore,
		NewLedgerStore,
		NewQuotaStore,
		NewFeeConfigStore,
	),
)

func NewBookingStore(cfg config.Config, pool *pgxpool.Pool) shared.BookingStore {
	if cfg.Store.Driver == "memory" {
		return memstore.NewBookingStore()
	}
	return store.NewBookingStore(pool)
}

func NewLedgerStore(cfg config.Config, pool *pgxpool.Pool) shared.LedgerStore {
	if cfg.Store.Driver == "memory" {
		return memstore.NewLedgerStore()
	}
	return store.NewLedgerStore(pool)
}

func NewQuotaStore(cfg config.Config, pool *pgxpool.Pool) shared.QuotaStore {
	if cfg.Store.Driver == "memory" {
		return memstore.NewQuotaStore()
	}
	return store.NewQuotaStore(pool)
}

func NewFeeConfigStore(cfg config.Config, pool *pgxpool.Pool) (shared.FeeConfigStore, error) {
	defaultPct, err := decimal.NewFromString(cfg.Settlement.DefaultFeePercent)
	if err != nil {
		return nil, err
	}
	if cfg.Store.Driver == "memory" {
		return memstore.NewFeeConfigStore(defaultPct), nil
	}
	return store.NewFeeConfigStore(pool, defaultPct), nil
}
