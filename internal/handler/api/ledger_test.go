//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"staymarket/internal/domain/money"
	"staymarket/internal/handler/api"
	"staymarket/internal/handler/dto/response"
	"staymarket/internal/pkg/errs"
	"staymarket/internal/usecase/queries"
	"staymarket/tests/common/httptest"
	queriesmock "staymarket/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type LedgerHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockLedgerQueries
	handler     *api.LedgerHandler
	ownerID     uuid.UUID
}

func (s *LedgerHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockLedgerQueries(s.mockCtrl)
	s.handler = api.NewLedgerHandler(s.mockQueries)
	s.ownerID = uuid.New()

	s.router.GET("/accounts/:id/balance", s.handler.GetBalance)
	s.router.GET("/accounts/:id/history", s.handler.GetHistory)
}

func (s *LedgerHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestLedgerHandlerSuite(t *testing.T) {
	suite.Run(t, new(LedgerHandlerTestSuite))
}

func (s *LedgerHandlerTestSuite) TestGetBalance() {
	url := "/accounts/" + s.ownerID.String() + "/balance"

	s.Run("success: returns 200 with balance", func() {
		view := &queries.BalanceView{
			OwnerID:  s.ownerID,
			Balance:  money.New(decimal.RequireFromString("4550.00"), money.USD),
			Currency: "USD",
		}
		s.mockQueries.EXPECT().
			GetBalance(gomock.Any(), s.ownerID).
			Return(view, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var resp response.BalanceResponse
		httptest.DecodeResponse(s.T(), w, http.StatusOK, &resp)
		s.Equal(s.ownerID, resp.OwnerID)
		s.True(resp.Balance.Equal(view.Balance))
		s.Equal("USD", resp.Currency)
	})

	s.Run("error: unknown account returns 404", func() {
		s.mockQueries.EXPECT().
			GetBalance(gomock.Any(), s.ownerID).
			Return(nil, errs.Mark(errs.New("no such account"), errs.ErrAccountNotFound))

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Account not found")
	})

	s.Run("error: malformed account ID returns 400", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/accounts/not-a-uuid/balance", nil, "")

		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid account ID format")
	})
}

func (s *LedgerHandlerTestSuite) TestGetHistory() {
	url := "/accounts/" + s.ownerID.String() + "/history"

	s.Run("success: returns entries with signed amounts", func() {
		bookingID := uuid.New()
		now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
		views := []*queries.LedgerEntryView{
			{
				Amount:    money.New(decimal.RequireFromString("5000.00"), money.USD),
				Reason:    "top_up",
				Timestamp: now,
			},
			{
				Amount:           money.New(decimal.RequireFromString("-450.00"), money.USD),
				Reason:           "slot_purchase",
				RelatedBookingID: &bookingID,
				Timestamp:        now.Add(time.Hour),
			},
		}
		s.mockQueries.EXPECT().
			GetHistory(gomock.Any(), s.ownerID).
			Return(views, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var resp []*response.LedgerEntryResponse
		httptest.DecodeResponse(s.T(), w, http.StatusOK, &resp)
		s.Require().Len(resp, 2)
		s.Equal("top_up", resp[0].Reason)
		s.True(resp[1].Amount.IsNegative())
		s.Equal(bookingID, *resp[1].RelatedBookingID)
	})

	s.Run("error: unknown account returns 404", func() {
		s.mockQueries.EXPECT().
			GetHistory(gomock.Any(), s.ownerID).
			Return(nil, errs.Mark(errs.New("no such account"), errs.ErrAccountNotFound))

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Account not found")
	})
}
