package response

import (
	"time"

	"staymarket/internal/domain/money"
	"staymarket/internal/usecase/queries"

	"github.com/google/uuid"
)

type BalanceResponse struct {
	OwnerID  uuid.UUID   `json:"ownerId"`
	Balance  money.Money `json:"balance"`
	Currency string      `json:"currency"`
}

type LedgerEntryResponse struct {
	Amount           money.Money `json:"amount"`
	Reason           string      `json:"reason"`
	RelatedBookingID *uuid.UUID  `json:"relatedBookingId,omitempty"`
	Timestamp        time.Time   `json:"timestamp"`
}

func FromBalanceView(view *queries.BalanceView) *BalanceResponse {
	return &BalanceResponse{
		OwnerID:  view.OwnerID,
		Balance:  view.Balance,
		Currency: view.Currency,
	}
}

func FromLedgerEntryViews(views []*queries.LedgerEntryView) []*LedgerEntryResponse {
	entries := make([]*LedgerEntryResponse, len(views))
	for i, v := range views {
		entries[i] = &LedgerEntryResponse{
			Amount:           v.Amount,
			Reason:           v.Reason,
			RelatedBookingID: v.RelatedBookingID,
			Timestamp:        v.Timestamp,
		}
	}
	return entries
}
