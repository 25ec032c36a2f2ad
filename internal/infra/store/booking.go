package store

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"staymarket/internal/domain/booking"
	"staymarket/internal/infra"
	"staymarket/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Sweep predicates are indexed columns denormalized from the document at
// write time; the document itself stays the source of truth on read.
type BookingStore struct {
	pool *pgxpool.Pool
}

func NewBookingStore(pool *pgxpool.Pool) *BookingStore {
	return &BookingStore{pool: pool}
}

func (s *BookingStore) Get(ctx context.Context, id uuid.UUID) (*booking.Booking, uint64, error) {
	const q = `SELECT doc, version FROM bookings WHERE id = $1`

	var raw []byte
	var version uint64
	if err := s.pool.QueryRow(ctx, q, id).Scan(&raw, &version); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, 0, infra.NewStoreErr(infra.KindNotFound, "booking "+id.String())
		}
		return nil, 0, infra.WrapStoreErr(infra.KindDBFailure, "query booking", err)
	}

	var doc bookingDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, 0, infra.WrapStoreErr(infra.KindDBFailure, "decode booking document", err)
	}
	return doc.toEntity(), version, nil
}

func (s *BookingStore) Put(ctx context.Context, b *booking.Booking, expectedVersion uint64) error {
	raw, err := json.Marshal(encodeBooking(b))
	if err != nil {
		return infra.WrapStoreErr(infra.KindDBFailure, "encode booking document", err)
	}

	if expectedVersion == shared.InsertVersion {
		const q = `
			INSERT INTO bookings (id, doc, version, status, payout_status, created_at, check_out)
			VALUES ($1, $2, 1, $3, $4, $5, $6)`
		if _, err := s.pool.Exec(ctx, q, b.ID(), raw, b.Status().String(), b.PayoutStatus().String(), b.CreatedAt(), b.CheckOut()); err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
				return infra.NewStoreErr(infra.KindDuplicate, "booking "+b.ID().String()+" already exists")
			}
			return infra.WrapStoreErr(infra.KindDBFailure, "insert booking", err)
		}
		return nil
	}

	const q = `
		UPDATE bookings
		SET doc = $2, version = version + 1, status = $3, payout_status = $4, check_out = $5
		WHERE id = $1 AND version = $6`
	tag, err := s.pool.Exec(ctx, q, b.ID(), raw, b.Status().String(), b.PayoutStatus().String(), b.CheckOut(), expectedVersion)
	if err != nil {
		return infra.WrapStoreErr(infra.KindDBFailure, "update booking", err)
	}
	if tag.RowsAffected() == 0 {
		// Either the row vanished or another writer advanced the version.
		// Conflict is the safe answer: retries re-read and surface NotFound
		// from Get if the row truly is gone.
		return infra.NewStoreErr(infra.KindConflict, "booking "+b.ID().String()+" version changed")
	}
	return nil
}

func (s *BookingStore) ListAutoConfirmable(ctx context.Context, createdBefore time.Time, limit int) ([]uuid.UUID, error) {
	const q = `
		SELECT id FROM bookings
		WHERE status = $1 AND created_at <= $2
		ORDER BY created_at
		LIMIT $3`
	return s.listIDs(ctx, q, booking.StatusPending.String(), createdBefore, limit)
}

func (s *BookingStore) ListCompletionDue(ctx context.Context, now time.Time, limit int) ([]uuid.UUID, error) {
	const q = `
		SELECT id FROM bookings
		WHERE status = $1 AND check_out IS NOT NULL AND check_out <= $2
		ORDER BY check_out
		LIMIT $3`
	return s.listIDs(ctx, q, booking.StatusConfirmed.String(), now, limit)
}

func (s *BookingStore) ListPayoutDue(ctx context.Context, limit int) ([]uuid.UUID, error) {
	const q = `
		SELECT id FROM bookings
		WHERE status = $1 AND payout_status = $2
		ORDER BY created_at
		LIMIT $3`
	return s.listIDs(ctx, q, booking.StatusCompleted.String(), booking.PayoutNone.String(), limit)
}

func (s *BookingStore) listIDs(ctx context.Context, query string, args ...any) ([]uuid.UUID, error) {
	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapStoreErr(infra.KindDBFailure, "list bookings", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, infra.WrapStoreErr(infra.KindDBFailure, "scan booking id", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapStoreErr(infra.KindDBFailure, "iterate bookings", err)
	}
	return ids, nil
}
