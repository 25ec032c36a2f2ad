package memstore

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"
)

// FeeConfigStore holds the single global fee percentage. The default seeds
// the value until an administrator writes one.
type FeeConfigStore struct {
	mu  sync.RWMutex
	pct decimal.Decimal
}

func NewFeeConfigStore(defaultPct decimal.Decimal) *FeeConfigStore {
	return &FeeConfigStore{pct: defaultPct}
}

func (s *FeeConfigStore) FeePercent(_ context.Context) (decimal.Decimal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.pct, nil
}

func (s *FeeConfigStore) SetFeePercent(_ context.Context, pct decimal.Decimal) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pct = pct
	return nil
}
