//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"staymarket/internal/domain/money"
	"staymarket/internal/domain/refund"
	"staymarket/internal/handler/api"
	"staymarket/internal/pkg/errs"
	"staymarket/internal/usecase/commands"
	"staymarket/internal/usecase/queries"
	"staymarket/tests/common/builder"
	"staymarket/tests/common/httptest"
	commandsmock "staymarket/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// snapshotToView mirrors the read-side projection for handler tests that
// stub queries with command output.
func snapshotToView(snap *commands.BookingSnapshot) *queries.BookingView {
	return &queries.BookingView{
		ID:                snap.ID,
		GuestID:           snap.GuestID,
		HostID:            snap.HostID,
		ListingID:         snap.ListingID,
		TotalAmount:       snap.TotalAmount,
		ServiceFee:        snap.ServiceFee,
		Status:            snap.Status,
		PayoutStatus:      snap.PayoutStatus,
		RefundResult:      snap.RefundResult,
		AutoConfirmed:     snap.AutoConfirmed,
		CreatedAt:         snap.CreatedAt,
		CheckIn:           snap.CheckIn,
		CheckOut:          snap.CheckOut,
		ConfirmedAt:       snap.ConfirmedAt,
		CancelledAt:       snap.CancelledAt,
		PayoutProcessedAt: snap.PayoutProcessedAt,
	}
}

type SettlementHandlerTestSuite struct {
	suite.Suite
	router         *gin.Engine
	mockCtrl       *gomock.Controller
	mockSettlement *commandsmock.MockSettlementCommands
	handler        *api.SettlementHandler
	actorID        uuid.UUID
}

func (s *SettlementHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockSettlement = commandsmock.NewMockSettlementCommands(s.mockCtrl)
	s.handler = api.NewSettlementHandler(s.mockSettlement)
	s.actorID = uuid.New()

	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}
		c.Set("actor_id", s.actorID)
		c.Set("actor_role", "host")
		c.Next()
	}

	s.router.POST("/bookings/:id/accept", authMiddleware, s.handler.AcceptBooking)
	s.router.POST("/bookings/:id/reject", authMiddleware, s.handler.RejectBooking)
	s.router.POST("/bookings/:id/cancel", authMiddleware, s.handler.CancelBooking)
	s.router.POST("/bookings/:id/complete", authMiddleware, s.handler.CompleteBooking)
	s.router.POST("/bookings/:id/payout", authMiddleware, s.handler.ProcessPayout)
}

func (s *SettlementHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSettlementHandlerSuite(t *testing.T) {
	suite.Run(t, new(SettlementHandlerTestSuite))
}

func (s *SettlementHandlerTestSuite) confirmedSnapshot() *commands.BookingSnapshot {
	b := builder.NewBookingBuilder()
	fee := money.New(decimal.RequireFromString("500"), money.USD)
	confirmed, err := b.BuildConfirmed(fee, b.CreatedAt)
	s.Require().NoError(err)
	return commands.SnapshotFromEntity(confirmed)
}

func (s *SettlementHandlerTestSuite) TestAcceptBooking() {
	snapshot := s.confirmedSnapshot()
	url := "/bookings/" + snapshot.ID.String() + "/accept"

	s.Run("success: returns 200 with frozen fee", func() {
		s.mockSettlement.EXPECT().AcceptBooking(gomock.Any(), snapshot.ID).
			Return(snapshot, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "token")
		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), `"status":"confirmed"`)
		s.Contains(rec.Body.String(), `"serviceFee"`)
	})

	s.Run("already decided: returns 409", func() {
		s.mockSettlement.EXPECT().AcceptBooking(gomock.Any(), snapshot.ID).
			Return(nil, errs.Mark(errs.New("status does not allow it"), errs.ErrInvalidTransition)).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "token")
		s.Equal(http.StatusConflict, rec.Code)
	})

	s.Run("unknown booking: returns 404", func() {
		s.mockSettlement.EXPECT().AcceptBooking(gomock.Any(), snapshot.ID).
			Return(nil, errs.Mark(errs.New("no such booking"), errs.ErrBookingNotFound)).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "token")
		s.Equal(http.StatusNotFound, rec.Code)
	})

	s.Run("retries exhausted: returns 409", func() {
		s.mockSettlement.EXPECT().AcceptBooking(gomock.Any(), snapshot.ID).
			Return(nil, errs.Mark(errs.New("version changed after retries"), errs.ErrSettlementConflict)).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "token")
		s.Equal(http.StatusConflict, rec.Code)
	})
}

func (s *SettlementHandlerTestSuite) TestCancelBooking() {
	snapshot := s.confirmedSnapshot()
	url := "/bookings/" + snapshot.ID.String() + "/cancel"

	result := &commands.CancelResult{
		Booking: snapshot,
		Refund: &refund.Result{
			OriginalAmount:    snapshot.TotalAmount,
			FinalRefundAmount: snapshot.TotalAmount,
			DaysUntilCheckIn:  10,
			PolicyDescription: "free cancellation",
		},
		IsReplayed: false,
	}

	s.Run("success: returns 200 with refund math", func() {
		s.mockSettlement.EXPECT().CancelBooking(gomock.Any(), snapshot.ID, s.actorID).
			Return(result, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "token")
		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), `"isReplayed":false`)
		s.Contains(rec.Body.String(), "free cancellation")
	})

	s.Run("replay: returns 200 with isReplayed", func() {
		replayed := *result
		replayed.IsReplayed = true
		s.mockSettlement.EXPECT().CancelBooking(gomock.Any(), snapshot.ID, s.actorID).
			Return(&replayed, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "token")
		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), `"isReplayed":true`)
	})

	s.Run("pending booking: returns 409", func() {
		s.mockSettlement.EXPECT().CancelBooking(gomock.Any(), snapshot.ID, s.actorID).
			Return(nil, errs.Mark(errs.New("status does not allow it"), errs.ErrInvalidTransition)).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "token")
		s.Equal(http.StatusConflict, rec.Code)
	})
}

func (s *SettlementHandlerTestSuite) TestProcessPayout() {
	snapshot := s.confirmedSnapshot()
	url := "/bookings/" + snapshot.ID.String() + "/payout"

	payout := &commands.PayoutResult{
		Booking:      snapshot,
		PayoutAmount: money.New(decimal.RequireFromString("4500"), money.USD),
	}

	s.Run("success: returns 200 with amount", func() {
		s.mockSettlement.EXPECT().ProcessPayout(gomock.Any(), snapshot.ID).
			Return(payout, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "token")
		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), `"payoutAmount"`)
	})

	s.Run("double payout: returns 409", func() {
		s.mockSettlement.EXPECT().ProcessPayout(gomock.Any(), snapshot.ID).
			Return(nil, errs.Mark(errs.New("payout already paid"), errs.ErrAlreadyProcessed)).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "token")
		s.Equal(http.StatusConflict, rec.Code)
	})

	s.Run("unauthenticated: returns 401", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})
}
