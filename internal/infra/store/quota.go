package store

import (
	"context"
	"encoding/json"
	"errors"

	"staymarket/internal/domain/quota"
	"staymarket/internal/infra"
	"staymarket/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type QuotaStore struct {
	pool *pgxpool.Pool
}

func NewQuotaStore(pool *pgxpool.Pool) *QuotaStore {
	return &QuotaStore{pool: pool}
}

func (s *QuotaStore) Get(ctx context.Context, hostID uuid.UUID) (*quota.Ledger, uint64, error) {
	const q = `SELECT doc, version FROM quota_ledgers WHERE host_id = $1`

	var raw []byte
	var version uint64
	if err := s.pool.QueryRow(ctx, q, hostID).Scan(&raw, &version); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, 0, infra.NewStoreErr(infra.KindNotFound, "quota ledger "+hostID.String())
		}
		return nil, 0, infra.WrapStoreErr(infra.KindDBFailure, "query quota ledger", err)
	}

	var doc quotaDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, 0, infra.WrapStoreErr(infra.KindDBFailure, "decode quota document", err)
	}
	return doc.toEntity(), version, nil
}

func (s *QuotaStore) Put(ctx context.Context, l *quota.Ledger, expectedVersion uint64) error {
	raw, err := json.Marshal(encodeQuota(l))
	if err != nil {
		return infra.WrapStoreErr(infra.KindDBFailure, "encode quota document", err)
	}

	if expectedVersion == shared.InsertVersion {
		const q = `INSERT INTO quota_ledgers (host_id, doc, version) VALUES ($1, $2, 1)`
		if _, err := s.pool.Exec(ctx, q, l.HostID(), raw); err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
				return infra.NewStoreErr(infra.KindConflict, "quota ledger "+l.HostID().String()+" created concurrently")
			}
			return infra.WrapStoreErr(infra.KindDBFailure, "insert quota ledger", err)
		}
		return nil
	}

	const q = `
		UPDATE quota_ledgers
		SET doc = $2, version = version + 1
		WHERE host_id = $1 AND version = $3`
	tag, err := s.pool.Exec(ctx, q, l.HostID(), raw, expectedVersion)
	if err != nil {
		return infra.WrapStoreErr(infra.KindDBFailure, "update quota ledger", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewStoreErr(infra.KindConflict, "quota ledger "+l.HostID().String()+" version changed")
	}
	return nil
}
