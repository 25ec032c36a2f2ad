package response

import (
	"staymarket/internal/domain/money"
	"staymarket/internal/usecase/commands"
	"staymarket/internal/usecase/queries"

	"github.com/google/uuid"
)

type QuotaResponse struct {
	HostID          uuid.UUID `json:"hostId"`
	ListingLimit    int       `json:"listingLimit"` // -1 = unlimited
	AdditionalSlots int       `json:"additionalSlots"`
	UsedSlots       int       `json:"usedSlots"`
	CanActivate     bool      `json:"canActivate"`
}

type SlotPurchaseResponse struct {
	HostID          uuid.UUID   `json:"hostId"`
	SlotsAdded      int         `json:"slotsAdded"`
	AmountCharged   money.Money `json:"amountCharged"`
	AdditionalSlots int         `json:"additionalSlots"`
	RemainingSlots  int         `json:"remainingSlots"`
}

type FeePercentResponse struct {
	FeePercent string `json:"feePercent"`
}

func FromQuotaView(view *queries.QuotaView) *QuotaResponse {
	return &QuotaResponse{
		HostID:          view.HostID,
		ListingLimit:    view.ListingLimit,
		AdditionalSlots: view.AdditionalSlots,
		UsedSlots:       view.UsedSlots,
		CanActivate:     view.CanActivate,
	}
}

func FromSlotPurchaseResult(result *commands.SlotPurchaseResult) *SlotPurchaseResponse {
	return &SlotPurchaseResponse{
		HostID:          result.HostID,
		SlotsAdded:      result.SlotsAdded,
		AmountCharged:   result.AmountCharged,
		AdditionalSlots: result.AdditionalSlots,
		RemainingSlots:  result.RemainingSlots,
	}
}
