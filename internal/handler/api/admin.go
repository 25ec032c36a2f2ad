package api

import (
	"net/http"

	reqdto "staymarket/internal/handler/dto/request"
	resdto "staymarket/internal/handler/dto/response"
	"staymarket/internal/pkg/errs"
	"staymarket/internal/usecase/commands"
	"staymarket/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// AdminHandler is the administrative surface: the global service fee knob.
// Changes only affect bookings whose fee is not yet frozen.
type AdminHandler struct {
	feeCommands commands.FeeConfigCommands
	feeQueries  queries.FeeConfigQueries
}

func NewAdminHandler(feeCommands commands.FeeConfigCommands, feeQueries queries.FeeConfigQueries) *AdminHandler {
	return &AdminHandler{
		feeCommands: feeCommands,
		feeQueries:  feeQueries,
	}
}

// @Summary Get service fee percent
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.FeePercentResponse
// @Router /admin/fee-percent [get]
func (h *AdminHandler) GetFeePercent(c *gin.Context) {
	pct, err := h.feeQueries.GetFeePercent(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FeePercentResponse{FeePercent: pct.String()})
}

// @Summary Set service fee percent
// @Description Update the global service fee fraction applied at confirmation time
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.SetFeePercentRequest true "Fee percent"
// @Success 200 {object} resdto.FeePercentResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /admin/fee-percent [put]
func (h *AdminHandler) SetFeePercent(c *gin.Context) {
	var req reqdto.SetFeePercentRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	pct, err := decimal.NewFromString(req.FeePercent)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Fee percent must be a decimal fraction",
		})
		return
	}

	if err := h.feeCommands.SetFeePercent(c.Request.Context(), pct); err != nil {
		switch {
		case errs.Is(err, errs.ErrInvalidConfiguration):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Fee percent must be between 0 and 1",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FeePercentResponse{FeePercent: pct.String()})
}
