// Package memstore is the in-process document store driver. Each record
// carries a version counter; Put succeeds only when the caller's expected
// version still matches, which is the same conditional-write contract the
// postgres driver exposes. Used for development and as the test substrate
// for concurrency properties.
package memstore

import (
	"context"
	"sort"
	"sync"
	"time"

	"staymarket/internal/domain/booking"
	"staymarket/internal/infra"
	"staymarket/internal/usecase/shared"

	"github.com/google/uuid"
)

type bookingRecord struct {
	entity  *booking.Booking
	version uint64
}

type BookingStore struct {
	mu      sync.RWMutex
	records map[uuid.UUID]bookingRecord
}

func NewBookingStore() *BookingStore {
	return &BookingStore{records: make(map[uuid.UUID]bookingRecord)}
}

func (s *BookingStore) Get(_ context.Context, id uuid.UUID) (*booking.Booking, uint64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.records[id]
	if !ok {
		return nil, 0, infra.NewStoreErr(infra.KindNotFound, "booking "+id.String())
	}
	return rec.entity.Clone(), rec.version, nil
}

func (s *BookingStore) Put(_ context.Context, b *booking.Booking, expectedVersion uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, exists := s.records[b.ID()]
	if expectedVersion == shared.InsertVersion {
		if exists {
			return infra.NewStoreErr(infra.KindDuplicate, "booking "+b.ID().String()+" already exists")
		}
		s.records[b.ID()] = bookingRecord{entity: b.Clone(), version: 1}
		return nil
	}

	if !exists {
		return infra.NewStoreErr(infra.KindNotFound, "booking "+b.ID().String())
	}
	if rec.version != expectedVersion {
		return infra.NewStoreErr(infra.KindConflict, "booking "+b.ID().String()+" version changed")
	}
	s.records[b.ID()] = bookingRecord{entity: b.Clone(), version: rec.version + 1}
	return nil
}

func (s *BookingStore) ListAutoConfirmable(_ context.Context, createdBefore time.Time, limit int) ([]uuid.UUID, error) {
	return s.scan(limit, func(b *booking.Booking) bool {
		return b.Status() == booking.StatusPending && !b.CreatedAt().After(createdBefore)
	})
}

func (s *BookingStore) ListCompletionDue(_ context.Context, now time.Time, limit int) ([]uuid.UUID, error) {
	return s.scan(limit, func(b *booking.Booking) bool {
		return b.CompletionDue(now)
	})
}

func (s *BookingStore) ListPayoutDue(_ context.Context, limit int) ([]uuid.UUID, error) {
	return s.scan(limit, func(b *booking.Booking) bool {
		return b.Status() == booking.StatusCompleted && b.PayoutStatus() == booking.PayoutNone
	})
}

func (s *BookingStore) scan(limit int, match func(*booking.Booking) bool) ([]uuid.UUID, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var ids []uuid.UUID
	for id, rec := range s.records {
		if match(rec.entity) {
			ids = append(ids, id)
		}
	}
	// Deterministic order keeps sweep behavior reproducible in tests.
	sort.Slice(ids, func(i, j int) bool { return ids[i].String() < ids[j].String() })
	if limit > 0 && len(ids) > limit {
		ids = ids[:limit]
	}
	return ids, nil
}
