package api

import (
	"net/http"

	resdto "staymarket/internal/handler/dto/response"
	"staymarket/internal/pkg/errs"
	"staymarket/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type LedgerHandler struct {
	ledgers queries.LedgerQueries
}

func NewLedgerHandler(ledgers queries.LedgerQueries) *LedgerHandler {
	return &LedgerHandler{ledgers: ledgers}
}

// @Summary Get account balance
// @Description Current balance of a ledger account
// @Tags ledger
// @Produce json
// @Security BearerAuth
// @Param id path string true "Account owner ID"
// @Success 200 {object} resdto.BalanceResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /accounts/{id}/balance [get]
func (h *LedgerHandler) GetBalance(c *gin.Context) {
	ownerID, ok := parseOwnerID(c)
	if !ok {
		return
	}

	view, err := h.ledgers.GetBalance(c.Request.Context(), ownerID)
	if err != nil {
		respondLedgerError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBalanceView(view))
}

// @Summary Get account history
// @Description Append-only entry history of a ledger account
// @Tags ledger
// @Produce json
// @Security BearerAuth
// @Param id path string true "Account owner ID"
// @Success 200 {array} resdto.LedgerEntryResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /accounts/{id}/history [get]
func (h *LedgerHandler) GetHistory(c *gin.Context) {
	ownerID, ok := parseOwnerID(c)
	if !ok {
		return
	}

	views, err := h.ledgers.GetHistory(c.Request.Context(), ownerID)
	if err != nil {
		respondLedgerError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromLedgerEntryViews(views))
}

func parseOwnerID(c *gin.Context) (uuid.UUID, bool) {
	ownerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid account ID format",
		})
		return uuid.Nil, false
	}
	return ownerID, true
}

func respondLedgerError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, errs.ErrAccountNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Account not found",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
