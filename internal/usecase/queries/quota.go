package queries

import (
	"context"

	"staymarket/internal/infra"
	"staymarket/internal/pkg/errs"
	"staymarket/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type QuotaView struct {
	HostID          uuid.UUID `json:"host_id"`
	ListingLimit    int       `json:"listing_limit"` // -1 = unlimited
	AdditionalSlots int       `json:"additional_slots"`
	UsedSlots       int       `json:"used_slots"`
	CanActivate     bool      `json:"can_activate"`
}

type QuotaQueries interface {
	GetByHost(ctx context.Context, hostID uuid.UUID) (*QuotaView, error)
}

type quotaQueriesImpl struct {
	quotas shared.QuotaStore
}

func NewQuotaQueries(quotas shared.QuotaStore) QuotaQueries {
	return &quotaQueriesImpl{quotas: quotas}
}

func (q *quotaQueriesImpl) GetByHost(ctx context.Context, hostID uuid.UUID) (*QuotaView, error) {
	l, _, err := q.quotas.Get(ctx, hostID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrQuotaNotFound)
		}
		return nil, err
	}
	return &QuotaView{
		HostID:          l.HostID(),
		ListingLimit:    l.ListingLimit(),
		AdditionalSlots: l.AdditionalSlots(),
		UsedSlots:       l.UsedSlots(),
		CanActivate:     l.CanConsume(),
	}, nil
}

type FeeConfigQueries interface {
	GetFeePercent(ctx context.Context) (decimal.Decimal, error)
}

type feeConfigQueriesImpl struct {
	store shared.FeeConfigStore
}

func NewFeeConfigQueries(store shared.FeeConfigStore) FeeConfigQueries {
	return &feeConfigQueriesImpl{store: store}
}

func (q *feeConfigQueriesImpl) GetFeePercent(ctx context.Context) (decimal.Decimal, error) {
	return q.store.FeePercent(ctx)
}
