package api

import (
	"net/http"

	reqdto "staymarket/internal/handler/dto/request"
	resdto "staymarket/internal/handler/dto/response"
	"staymarket/internal/pkg/errs"
	"staymarket/internal/usecase/commands"
	"staymarket/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type QuotaHandler struct {
	quotaCommands commands.QuotaCommands
	quotaQueries  queries.QuotaQueries
}

func NewQuotaHandler(quotaCommands commands.QuotaCommands, quotaQueries queries.QuotaQueries) *QuotaHandler {
	return &QuotaHandler{
		quotaCommands: quotaCommands,
		quotaQueries:  quotaQueries,
	}
}

// @Summary Purchase listing slots
// @Description Buy additional listing slots, charged against the host's ledger account
// @Tags quota
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Host ID"
// @Param request body reqdto.PurchaseSlotsRequest true "Slot purchase request"
// @Success 200 {object} resdto.SlotPurchaseResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /hosts/{id}/slots [post]
func (h *QuotaHandler) PurchaseSlots(c *gin.Context) {
	hostID, ok := parseHostID(c)
	if !ok {
		return
	}

	var req reqdto.PurchaseSlotsRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.quotaCommands.PurchaseSlots(c.Request.Context(), hostID, req.Count)
	if err != nil {
		switch {
		case errs.Is(err, errs.ErrInvalidAmount):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid slot count",
			})
		case errs.Is(err, errs.ErrInsufficientBalance):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Insufficient balance for slot purchase",
			})
		case errs.Is(err, errs.ErrAccountNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Host account not found",
			})
		case errs.Is(err, errs.ErrSettlementConflict):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Concurrent update, retry the request",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromSlotPurchaseResult(result))
}

// @Summary Get host quota
// @Description Listing quota and slot usage for a host
// @Tags quota
// @Produce json
// @Security BearerAuth
// @Param id path string true "Host ID"
// @Success 200 {object} resdto.QuotaResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /hosts/{id}/quota [get]
func (h *QuotaHandler) GetQuota(c *gin.Context) {
	hostID, ok := parseHostID(c)
	if !ok {
		return
	}

	view, err := h.quotaQueries.GetByHost(c.Request.Context(), hostID)
	if err != nil {
		switch {
		case errs.Is(err, errs.ErrQuotaNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Quota not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromQuotaView(view))
}

// @Summary Activate listing
// @Description Consume one listing slot for an activation
// @Tags quota
// @Produce json
// @Security BearerAuth
// @Param id path string true "Host ID"
// @Success 204
// @Failure 409 {object} map[string]string
// @Router /hosts/{id}/listings/activate [post]
func (h *QuotaHandler) ActivateListing(c *gin.Context) {
	hostID, ok := parseHostID(c)
	if !ok {
		return
	}

	if err := h.quotaCommands.ActivateListing(c.Request.Context(), hostID); err != nil {
		switch {
		case errs.Is(err, errs.ErrQuotaExceeded):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Listing quota exceeded",
			})
		case errs.Is(err, errs.ErrSettlementConflict):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Concurrent update, retry the request",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Deactivate listing
// @Description Release one consumed listing slot
// @Tags quota
// @Produce json
// @Security BearerAuth
// @Param id path string true "Host ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /hosts/{id}/listings/deactivate [post]
func (h *QuotaHandler) DeactivateListing(c *gin.Context) {
	hostID, ok := parseHostID(c)
	if !ok {
		return
	}

	if err := h.quotaCommands.DeactivateListing(c.Request.Context(), hostID); err != nil {
		switch {
		case errs.Is(err, errs.ErrQuotaNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Quota not found",
			})
		case errs.Is(err, errs.ErrInvalidAmount):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "No active listing to deactivate",
			})
		case errs.Is(err, errs.ErrSettlementConflict):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Concurrent update, retry the request",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

func parseHostID(c *gin.Context) (uuid.UUID, bool) {
	hostID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid host ID format",
		})
		return uuid.Nil, false
	}
	return hostID, true
}
