package api

import (
	"net/http"

	resdto "staymarket/internal/handler/dto/response"
	"staymarket/internal/handler/middleware"
	"staymarket/internal/pkg/errs"
	"staymarket/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

// SettlementHandler exposes the booking lifecycle transitions. Each action
// is safe to retry: replays either return the recorded outcome or a 409.
type SettlementHandler struct {
	settlement commands.SettlementCommands
}

func NewSettlementHandler(settlement commands.SettlementCommands) *SettlementHandler {
	return &SettlementHandler{settlement: settlement}
}

// @Summary Accept booking
// @Description Host accepts a pending booking; the service fee freezes here
// @Tags settlement
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{id}/accept [post]
func (h *SettlementHandler) AcceptBooking(c *gin.Context) {
	id, ok := parseBookingID(c)
	if !ok {
		return
	}

	snapshot, err := h.settlement.AcceptBooking(c.Request.Context(), id)
	if err != nil {
		respondSettlementError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingSnapshot(snapshot))
}

// @Summary Reject booking
// @Description Host rejects a pending booking; no money moves
// @Tags settlement
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{id}/reject [post]
func (h *SettlementHandler) RejectBooking(c *gin.Context) {
	id, ok := parseBookingID(c)
	if !ok {
		return
	}

	snapshot, err := h.settlement.RejectBooking(c.Request.Context(), id)
	if err != nil {
		respondSettlementError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingSnapshot(snapshot))
}

// @Summary Cancel booking
// @Description Cancel a booking and credit the tiered refund to the guest. Replays return the recorded result.
// @Tags settlement
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.CancelBookingResponse
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{id}/cancel [post]
func (h *SettlementHandler) CancelBooking(c *gin.Context) {
	id, ok := parseBookingID(c)
	if !ok {
		return
	}

	initiator, ok := middleware.GetActorID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	result, err := h.settlement.CancelBooking(c.Request.Context(), id, initiator)
	if err != nil {
		respondSettlementError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromCancelResult(result))
}

// @Summary Complete booking
// @Description Mark a confirmed booking as completed after the stay
// @Tags settlement
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{id}/complete [post]
func (h *SettlementHandler) CompleteBooking(c *gin.Context) {
	id, ok := parseBookingID(c)
	if !ok {
		return
	}

	snapshot, err := h.settlement.CompleteBooking(c.Request.Context(), id)
	if err != nil {
		respondSettlementError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingSnapshot(snapshot))
}

// @Summary Process payout
// @Description Credit the host with total minus the frozen service fee. At most one payout per booking.
// @Tags settlement
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.PayoutResponse
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{id}/payout [post]
func (h *SettlementHandler) ProcessPayout(c *gin.Context) {
	id, ok := parseBookingID(c)
	if !ok {
		return
	}

	result, err := h.settlement.ProcessPayout(c.Request.Context(), id)
	if err != nil {
		respondSettlementError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromPayoutResult(result))
}

func respondSettlementError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, errs.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Booking not found",
		})
	case errs.Is(err, errs.ErrInvalidTransition):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Booking state does not allow this action",
		})
	case errs.Is(err, errs.ErrAlreadyProcessed):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Settlement already processed",
		})
	case errs.Is(err, errs.ErrSettlementConflict):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Concurrent update, retry the request",
		})
	case errs.Is(err, errs.ErrInvalidAmount), errs.Is(err, errs.ErrInvalidConfiguration):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Settlement validation failed",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
