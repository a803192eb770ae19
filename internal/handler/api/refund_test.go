//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"lodgekeeper/internal/domain/refund"
	"lodgekeeper/internal/handler/api"
	reqdto "lodgekeeper/internal/handler/dto/request"
	resdto "lodgekeeper/internal/handler/dto/response"
	"lodgekeeper/internal/pkg/errs"
	"lodgekeeper/internal/usecase/commands"
	"lodgekeeper/internal/usecase/queries"
	"lodgekeeper/tests/common/httptest"
	"lodgekeeper/tests/common/testutil"
	commandsmock "lodgekeeper/tests/mock/commands"
	queriesmock "lodgekeeper/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RefundHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockRefundCommands
	mockQueries  *queriesmock.MockRefundQueries
	handler      *api.RefundHandler
}

func (s *RefundHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockRefundCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockRefundQueries(s.mockCtrl)
	s.handler = api.NewRefundHandler(s.mockCommands, s.mockQueries)

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set("admin_id", uuid.New())
		c.Next()
	}

	// Setup routes
	s.router.GET("/refunds", authMiddleware, s.handler.ListRefunds)
	s.router.GET("/refunds/:id", authMiddleware, s.handler.GetRefund)
	s.router.POST("/refunds/:id/approve", authMiddleware, s.handler.ApproveRefund)
	s.router.POST("/refunds/:id/reject", authMiddleware, s.handler.RejectRefund)
}

func (s *RefundHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRefundHandlerSuite(t *testing.T) {
	suite.Run(t, new(RefundHandlerTestSuite))
}

func (s *RefundHandlerTestSuite) newPendingRefund() *refund.PendingRefund {
	threshold := 14
	return refund.NewPendingRefund(uuid.New(), "pay_456", 20000, &threshold, 50)
}

// ================================================================================
// TestListRefunds
// ================================================================================

func (s *RefundHandlerTestSuite) TestListRefunds() {
	s.Run("success: defaults to the pending inbox", func() {
		views := []queries.PendingRefundView{
			{ID: uuid.New(), BookingID: uuid.New(), PaymentRef: "pay_456", PolicyAmountCents: 20000, Status: "pending"},
		}
		s.mockQueries.EXPECT().ListPending(gomock.Any()).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/refunds", nil, "bearer-token")

		var body []resdto.PendingRefundResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 1)
		s.Equal("pending", body[0].Status)
		s.Equal(int64(20000), body[0].PolicyAmountCents)
	})

	s.Run("success: status filter is passed through", func() {
		s.mockQueries.EXPECT().ListByStatus(gomock.Any(), "rejected").
			Return([]queries.PendingRefundView{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/refunds?status=rejected", nil, "bearer-token")

		var body []resdto.PendingRefundResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Empty(body)
	})

	s.Run("error: 500 when the read store fails", func() {
		s.mockQueries.EXPECT().ListPending(gomock.Any()).
			Return(nil, errs.ErrDatabaseOperationFailed).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/refunds", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

// ================================================================================
// TestGetRefund
// ================================================================================

func (s *RefundHandlerTestSuite) TestGetRefund() {
	refundID := uuid.New()

	s.Run("success: returns 200 OK with refund", func() {
		view := &queries.PendingRefundView{
			ID:               refundID,
			BookingID:        uuid.New(),
			BookingReference: "AB23CD45",
			PaymentRef:       "pay_456",
			Status:           "pending",
			CreatedAt:        time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC),
		}
		s.mockQueries.EXPECT().GetByID(gomock.Any(), refundID).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/refunds/"+refundID.String(), nil, "bearer-token")

		var body resdto.PendingRefundResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(refundID, body.ID)
		s.Equal("AB23CD45", body.BookingReference)
	})

	s.Run("error: 400 Bad Request for malformed ID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/refunds/nope", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid refund ID format")
	})

	s.Run("error: 404 Not Found for unknown refund", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), refundID).
			Return(nil, errs.ErrPendingRefundNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/refunds/"+refundID.String(), nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Pending refund not found")
	})
}

// ================================================================================
// TestApproveRefund
// ================================================================================

func (s *RefundHandlerTestSuite) TestApproveRefund() {
	refundID := uuid.New()
	url := "/refunds/" + refundID.String() + "/approve"
	reqBody := reqdto.ApproveRefundRequest{Reason: "guest canceled in time"}

	s.Run("success: returns 200 OK with processed refund", func() {
		pending := s.newPendingRefund()
		s.Require().NoError(pending.Approve(20000, "re_789", time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)))

		s.mockCommands.EXPECT().Approve(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, cmd commands.ApproveRefundCommand) (*commands.ApproveRefundResult, error) {
				s.Equal(refundID, cmd.PendingRefundID)
				s.Nil(cmd.CustomAmountCents)
				s.Equal("guest canceled in time", cmd.Reason)
				return &commands.ApproveRefundResult{
					PendingRefund:      pending,
					RefundedCents:      20000,
					ProcessorRefundRef: "re_789",
				}, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body resdto.ApproveRefundResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(int64(20000), body.RefundedCents)
		s.Equal("re_789", body.ProcessorRefundRef)
		s.Equal("approved", body.PendingRefund.Status)
	})

	s.Run("success: custom amount override is forwarded", func() {
		override := int64(15000)
		pending := s.newPendingRefund()
		s.Require().NoError(pending.Approve(override, "re_790", time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)))

		s.mockCommands.EXPECT().Approve(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, cmd commands.ApproveRefundCommand) (*commands.ApproveRefundResult, error) {
				s.Require().NotNil(cmd.CustomAmountCents)
				s.Equal(override, *cmd.CustomAmountCents)
				return &commands.ApproveRefundResult{
					PendingRefund:      pending,
					RefundedCents:      override,
					ProcessorRefundRef: "re_790",
				}, nil
			}).Times(1)

		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("amount_cents", override))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")

		var body resdto.ApproveRefundResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(override, body.RefundedCents)
	})

	s.Run("error: 400 Bad Request for malformed ID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/refunds/nope/approve", reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid refund ID format")
	})

	s.Run("error: command failures map to HTTP statuses", func() {
		cases := []struct {
			name         string
			err          error
			expectCode   int
			expectInBody string
		}{
			{name: "unknown refund", err: errs.ErrPendingRefundNotFound, expectCode: http.StatusNotFound, expectInBody: "Pending refund not found"},
			{name: "already processed", err: errs.ErrAlreadyProcessed, expectCode: http.StatusConflict, expectInBody: "Refund has already been processed"},
			{name: "charge already refunded upstream", err: errs.ErrAlreadyRefunded, expectCode: http.StatusConflict, expectInBody: "Charge was already refunded"},
			{name: "no chargeable payment", err: errs.ErrNoChargeablePayment, expectCode: http.StatusConflict, expectInBody: "No chargeable payment for this booking"},
			{name: "gateway failure leaves refund pending", err: errs.ErrProcessorFailure, expectCode: http.StatusBadGateway, expectInBody: "Payment processor error; refund left pending"},
			{name: "override exceeds the charge", err: errs.ErrDomainValidation, expectCode: http.StatusUnprocessableEntity, expectInBody: "Domain validation failed"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Approve(gomock.Any(), gomock.Any()).
					Return(nil, tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectInBody)
			})
		}
	})

	s.Run("error: 401 Unauthorized without token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

// ================================================================================
// TestRejectRefund
// ================================================================================

func (s *RefundHandlerTestSuite) TestRejectRefund() {
	refundID := uuid.New()
	url := "/refunds/" + refundID.String() + "/reject"
	reqBody := reqdto.RejectRefundRequest{Note: "stay already consumed"}

	s.Run("success: returns 200 OK with closed refund", func() {
		pending := s.newPendingRefund()
		s.Require().NoError(pending.Reject("stay already consumed", time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)))

		s.mockCommands.EXPECT().Reject(gomock.Any(), refundID, "stay already consumed").
			Return(pending, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body resdto.PendingRefundResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("rejected", body.Status)
		s.Equal("stay already consumed", body.AdminNote)
	})

	s.Run("error: 400 Bad Request when the note is missing", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("note", nil))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Rejection note is required")
	})

	s.Run("error: 400 Bad Request when the note is empty", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("note", ""))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Rejection note is required")
	})

	s.Run("error: 409 Conflict on double reject", func() {
		s.mockCommands.EXPECT().Reject(gomock.Any(), refundID, "stay already consumed").
			Return(nil, errs.ErrAlreadyProcessed).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Refund has already been processed")
	})

	s.Run("error: 404 Not Found for unknown refund", func() {
		s.mockCommands.EXPECT().Reject(gomock.Any(), refundID, "stay already consumed").
			Return(nil, errs.ErrPendingRefundNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Pending refund not found")
	})
}
