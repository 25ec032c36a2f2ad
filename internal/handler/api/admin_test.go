//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"staymarket/internal/handler/api"
	"staymarket/internal/pkg/errs"
	"staymarket/tests/common/httptest"
	commandsmock "staymarket/tests/mock/commands"
	queriesmock "staymarket/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AdminHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockFeeConfigCommands
	mockQueries  *queriesmock.MockFeeConfigQueries
	handler      *api.AdminHandler
}

func (s *AdminHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockFeeConfigCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockFeeConfigQueries(s.mockCtrl)
	s.handler = api.NewAdminHandler(s.mockCommands, s.mockQueries)

	s.router.GET("/admin/fee-percent", s.handler.GetFeePercent)
	s.router.PUT("/admin/fee-percent", s.handler.SetFeePercent)
}

func (s *AdminHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAdminHandlerSuite(t *testing.T) {
	suite.Run(t, new(AdminHandlerTestSuite))
}

func (s *AdminHandlerTestSuite) TestGetFeePercent() {
	s.mockQueries.EXPECT().GetFeePercent(gomock.Any()).
		Return(decimal.RequireFromString("0.10"), nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/fee-percent", nil, "token")
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"feePercent":"0.1"`)
}

func (s *AdminHandlerTestSuite) TestSetFeePercent() {
	url := "/admin/fee-percent"

	s.Run("success: returns 200 with new value", func() {
		s.mockCommands.EXPECT().SetFeePercent(gomock.Any(), gomock.Any()).
			Return(nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"fee_percent": "0.25"}, "token")
		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), "0.25")
	})

	s.Run("not a decimal: returns 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"fee_percent": "ten percent"}, "token")
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("out of range: returns 422", func() {
		s.mockCommands.EXPECT().SetFeePercent(gomock.Any(), gomock.Any()).
			Return(errs.Mark(errs.New("percentage outside [0, 1]"), errs.ErrInvalidConfiguration)).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"fee_percent": "1.5"}, "token")
		s.Equal(http.StatusUnprocessableEntity, rec.Code)
	})

	s.Run("missing field: returns 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{}, "token")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}
