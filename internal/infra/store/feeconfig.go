package store

import (
	"context"
	"errors"

	"staymarket/internal/infra"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const feePercentKey = "service_fee_percent"

// FeeConfigStore reads and writes the single global fee percentage. A
// missing row falls back to the configured default; SetFeePercent is an
// upsert and last writer wins, which is acceptable for an admin knob.
type FeeConfigStore struct {
	pool       *pgxpool.Pool
	defaultPct decimal.Decimal
}

func NewFeeConfigStore(pool *pgxpool.Pool, defaultPct decimal.Decimal) *FeeConfigStore {
	return &FeeConfigStore{pool: pool, defaultPct: defaultPct}
}

func (s *FeeConfigStore) FeePercent(ctx context.Context) (decimal.Decimal, error) {
	const q = `SELECT value FROM settings WHERE key = $1`

	var value string
	if err := s.pool.QueryRow(ctx, q, feePercentKey).Scan(&value); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return s.defaultPct, nil
		}
		return decimal.Zero, infra.WrapStoreErr(infra.KindDBFailure, "query fee percent", err)
	}

	pct, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, infra.WrapStoreErr(infra.KindDBFailure, "parse stored fee percent", err)
	}
	return pct, nil
}

func (s *FeeConfigStore) SetFeePercent(ctx context.Context, pct decimal.Decimal) error {
	const q = `
		INSERT INTO settings (key, value) VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value`
	if _, err := s.pool.Exec(ctx, q, feePercentKey, pct.String()); err != nil {
		return infra.WrapStoreErr(infra.KindDBFailure, "upsert fee percent", err)
	}
	return nil
}
