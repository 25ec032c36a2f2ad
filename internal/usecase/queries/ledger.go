package queries

import (
	"context"
	"time"

	"staymarket/internal/domain/money"
	"staymarket/internal/infra"
	"staymarket/internal/pkg/errs"
	"staymarket/internal/usecase/shared"

	"github.com/google/uuid"
)

type BalanceView struct {
	OwnerID  uuid.UUID   `json:"owner_id"`
	Balance  money.Money `json:"balance"`
	Currency string      `json:"currency"`
}

type LedgerEntryView struct {
	Amount           money.Money `json:"amount"`
	Reason           string      `json:"reason"`
	RelatedBookingID *uuid.UUID  `json:"related_booking_id,omitempty"`
	Timestamp        time.Time   `json:"timestamp"`
}

type LedgerQueries interface {
	GetBalance(ctx context.Context, ownerID uuid.UUID) (*BalanceView, error)
	GetHistory(ctx context.Context, ownerID uuid.UUID) ([]*LedgerEntryView, error)
}

type ledgerQueriesImpl struct {
	ledgers shared.LedgerStore
}

func NewLedgerQueries(ledgers shared.LedgerStore) LedgerQueries {
	return &ledgerQueriesImpl{ledgers: ledgers}
}

func (q *ledgerQueriesImpl) GetBalance(ctx context.Context, ownerID uuid.UUID) (*BalanceView, error) {
	account, _, err := q.ledgers.Get(ctx, ownerID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrAccountNotFound)
		}
		return nil, err
	}
	return &BalanceView{
		OwnerID:  account.OwnerID(),
		Balance:  account.Balance(),
		Currency: account.Currency().String(),
	}, nil
}

func (q *ledgerQueriesImpl) GetHistory(ctx context.Context, ownerID uuid.UUID) ([]*LedgerEntryView, error) {
	account, _, err := q.ledgers.Get(ctx, ownerID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrAccountNotFound)
		}
		return nil, err
	}

	entries := account.Entries()
	views := make([]*LedgerEntryView, len(entries))
	for i, e := range entries {
		views[i] = &LedgerEntryView{
			Amount:           e.Amount,
			Reason:           string(e.Reason),
			RelatedBookingID: e.RelatedBookingID,
			Timestamp:        e.Timestamp,
		}
	}
	return views, nil
}
