package memstore

import (
	"context"
	"sync"

	"staymarket/internal/domain/quota"
	"staymarket/internal/infra"
	"staymarket/internal/usecase/shared"

	"github.com/google/uuid"
)

type quotaRecord struct {
	ledger  *quota.Ledger
	version uint64
}

type QuotaStore struct {
	mu      sync.RWMutex
	records map[uuid.UUID]quotaRecord
}

func NewQuotaStore() *QuotaStore {
	return &QuotaStore{records: make(map[uuid.UUID]quotaRecord)}
}

func (s *QuotaStore) Get(_ context.Context, hostID uuid.UUID) (*quota.Ledger, uint64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.records[hostID]
	if !ok {
		return nil, 0, infra.NewStoreErr(infra.KindNotFound, "quota ledger "+hostID.String())
	}
	return rec.ledger.Clone(), rec.version, nil
}

func (s *QuotaStore) Put(_ context.Context, l *quota.Ledger, expectedVersion uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, exists := s.records[l.HostID()]
	if expectedVersion == shared.InsertVersion {
		if exists {
			return infra.NewStoreErr(infra.KindConflict, "quota ledger "+l.HostID().String()+" already exists")
		}
		s.records[l.HostID()] = quotaRecord{ledger: l.Clone(), version: 1}
		return nil
	}

	if !exists {
		return infra.NewStoreErr(infra.KindNotFound, "quota ledger "+l.HostID().String())
	}
	if rec.version != expectedVersion {
		return infra.NewStoreErr(infra.KindConflict, "quota ledger "+l.HostID().String()+" version changed")
	}
	s.records[l.HostID()] = quotaRecord{ledger: l.Clone(), version: rec.version + 1}
	return nil
}
