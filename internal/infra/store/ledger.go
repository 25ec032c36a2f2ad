package store

import (
	"context"
	"encoding/json"
	"errors"

	"staymarket/internal/domain/ledger"
	"staymarket/internal/infra"
	"staymarket/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// uniqueViolationCode is PostgreSQL's duplicate-key SQLSTATE.
const uniqueViolationCode = "23505"

type LedgerStore struct {
	pool *pgxpool.Pool
}

func NewLedgerStore(pool *pgxpool.Pool) *LedgerStore {
	return &LedgerStore{pool: pool}
}

func (s *LedgerStore) Get(ctx context.Context, ownerID uuid.UUID) (*ledger.Account, uint64, error) {
	const q = `SELECT doc, version FROM ledger_accounts WHERE owner_id = $1`

	var raw []byte
	var version uint64
	if err := s.pool.QueryRow(ctx, q, ownerID).Scan(&raw, &version); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, 0, infra.NewStoreErr(infra.KindNotFound, "ledger account "+ownerID.String())
		}
		return nil, 0, infra.WrapStoreErr(infra.KindDBFailure, "query ledger account", err)
	}

	var doc ledgerDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, 0, infra.WrapStoreErr(infra.KindDBFailure, "decode ledger document", err)
	}
	return doc.toEntity(), version, nil
}

func (s *LedgerStore) Put(ctx context.Context, account *ledger.Account, expectedVersion uint64) error {
	raw, err := json.Marshal(encodeLedger(account))
	if err != nil {
		return infra.WrapStoreErr(infra.KindDBFailure, "encode ledger document", err)
	}

	if expectedVersion == shared.InsertVersion {
		const q = `INSERT INTO ledger_accounts (owner_id, doc, version) VALUES ($1, $2, 1)`
		if _, err := s.pool.Exec(ctx, q, account.OwnerID(), raw); err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
				// A concurrent writer created the account first. Conflict,
				// not Duplicate: retry loops re-read and credit on top.
				return infra.NewStoreErr(infra.KindConflict, "ledger account "+account.OwnerID().String()+" created concurrently")
			}
			return infra.WrapStoreErr(infra.KindDBFailure, "insert ledger account", err)
		}
		return nil
	}

	const q = `
		UPDATE ledger_accounts
		SET doc = $2, version = version + 1
		WHERE owner_id = $1 AND version = $3`
	tag, err := s.pool.Exec(ctx, q, account.OwnerID(), raw, expectedVersion)
	if err != nil {
		return infra.WrapStoreErr(infra.KindDBFailure, "update ledger account", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewStoreErr(infra.KindConflict, "ledger account "+account.OwnerID().String()+" version changed")
	}
	return nil
}
