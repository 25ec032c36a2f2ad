package memstore

import (
	"context"
	"sync"

	"staymarket/internal/domain/ledger"
	"staymarket/internal/infra"
	"staymarket/internal/usecase/shared"

	"github.com/google/uuid"
)

type ledgerRecord struct {
	account *ledger.Account
	version uint64
}

type LedgerStore struct {
	mu      sync.RWMutex
	records map[uuid.UUID]ledgerRecord
}

func NewLedgerStore() *LedgerStore {
	return &LedgerStore{records: make(map[uuid.UUID]ledgerRecord)}
}

func (s *LedgerStore) Get(_ context.Context, ownerID uuid.UUID) (*ledger.Account, uint64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.records[ownerID]
	if !ok {
		return nil, 0, infra.NewStoreErr(infra.KindNotFound, "ledger account "+ownerID.String())
	}
	return rec.account.Clone(), rec.version, nil
}

func (s *LedgerStore) Put(_ context.Context, account *ledger.Account, expectedVersion uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, exists := s.records[account.OwnerID()]
	if expectedVersion == shared.InsertVersion {
		if exists {
			return infra.NewStoreErr(infra.KindConflict, "ledger account "+account.OwnerID().String()+" already exists")
		}
		s.records[account.OwnerID()] = ledgerRecord{account: account.Clone(), version: 1}
		return nil
	}

	if !exists {
		return infra.NewStoreErr(infra.KindNotFound, "ledger account "+account.OwnerID().String())
	}
	if rec.version != expectedVersion {
		return infra.NewStoreErr(infra.KindConflict, "ledger account "+account.OwnerID().String()+" version changed")
	}
	s.records[account.OwnerID()] = ledgerRecord{account: account.Clone(), version: rec.version + 1}
	return nil
}
