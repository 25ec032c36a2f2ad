package request

type PurchaseSlotsRequest struct {
	Count int `json:"count" binding:"required,min=1"`
}
