package request

type SetFeePercentRequest struct {
	// Decimal fraction, e.g. "0.10" for a 10% service fee.
	FeePercent string `json:"fee_percent" binding:"required"`
}
