//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"lodgekeeper/internal/domain/booking"
	"lodgekeeper/internal/domain/property"
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

type BookingHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockCtrl         *gomock.Controller
	mockCommands     *commandsmock.MockBookingCommands
	mockQueries      *queriesmock.MockBookingQueries
	mockAvailability *queriesmock.MockAvailabilityQueries
	handler          *api.BookingHandler
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.mockAvailability = queriesmock.NewMockAvailabilityQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries, s.mockAvailability)

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
	s.router.POST("/bookings", authMiddleware, s.handler.CreateBooking)
	s.router.GET("/bookings/:id", authMiddleware, s.handler.GetBooking)
	s.router.DELETE("/bookings/:id", authMiddleware, s.handler.DeleteBooking)
	s.router.PATCH("/bookings/:id/dates", authMiddleware, s.handler.ChangeDates)
	s.router.POST("/bookings/:id/cancel", authMiddleware, s.handler.CancelBooking)
	s.router.GET("/bookings/reference/:reference", authMiddleware, s.handler.GetBookingByReference)
	s.router.GET("/properties/:property/bookings", authMiddleware, s.handler.ListBookings)
	s.router.GET("/properties/:property/availability", authMiddleware, s.handler.CheckAvailability)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

type testCaseBooking struct {
	name         string
	mutate       func(m map[string]any)
	expectCode   int
	expectInBody string
}

func (s *BookingHandlerTestSuite) newCreateRequest() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		Property: "cedar_lodge",
		Mode:     "room",
		Checkin:  "2026-07-10",
		Checkout: "2026-07-13",
		Guests:   2,
		Children: 0,
		UserID:   uuid.New(),
		RoomIDs:  []uuid.UUID{uuid.New()},
	}
}

func (s *BookingHandlerTestSuite) newBookingEntity() *booking.Booking {
	dates, err := booking.NewDateRange(
		time.Date(2026, 7, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 7, 13, 0, 0, 0, 0, time.UTC),
	)
	s.Require().NoError(err)
	price, err := booking.NewMoney(60000)
	s.Require().NoError(err)

	b, err := booking.NewBooking(
		property.CedarLodge, booking.ModeRoom, dates,
		2, 0, uuid.New(), []uuid.UUID{uuid.New()}, price,
	)
	s.Require().NoError(err)
	return b
}

// ================================================================================
// TestCreateBooking
// ================================================================================

func (s *BookingHandlerTestSuite) TestCreateBooking() {
	url := "/bookings"

	reqBody := s.newCreateRequest()

	missing := []testCaseBooking{
		{name: "missing field: property (required)", mutate: testutil.Field("property", nil), expectCode: http.StatusBadRequest, expectInBody: "Invalid request format"},
		{name: "missing field: mode (required)", mutate: testutil.Field("mode", nil), expectCode: http.StatusBadRequest, expectInBody: "Invalid request format"},
		{name: "missing field: checkin (required)", mutate: testutil.Field("checkin", nil), expectCode: http.StatusBadRequest, expectInBody: "Invalid request format"},
		{name: "missing field: checkout (required)", mutate: testutil.Field("checkout", nil), expectCode: http.StatusBadRequest, expectInBody: "Invalid request format"},
		{name: "missing field: user_id (required)", mutate: testutil.Field("user_id", nil), expectCode: http.StatusBadRequest, expectInBody: "Invalid request format"},
	}

	invalid := []testCaseBooking{
		{name: "guests below minimum (0)", mutate: testutil.Field("guests", 0), expectCode: http.StatusBadRequest, expectInBody: "Invalid request format"},
		{name: "negative children", mutate: testutil.Field("children", -1), expectCode: http.StatusBadRequest, expectInBody: "Invalid request format"},
		{name: "unknown property", mutate: testutil.Field("property", "grand_hotel"), expectCode: http.StatusBadRequest},
		{name: "unknown mode", mutate: testutil.Field("mode", "timeshare"), expectCode: http.StatusBadRequest},
		{name: "unparseable checkin date", mutate: testutil.Field("checkin", "2026-13-40"), expectCode: http.StatusBadRequest},
	}

	allValidationTestCases := [][]testCaseBooking{missing, invalid}

	s.Run("success: returns 201 Created for valid request", func() {
		entity := s.newBookingEntity()
		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).
			Return(&commands.CreateBookingResult{Booking: entity}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body resdto.CreateBookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(entity.ID(), body.Booking.ID)
		s.Equal(entity.Reference(), body.Booking.Reference)
		s.Equal("cedar_lodge", body.Booking.Property)
		s.Equal(int64(60000), body.Booking.PriceCents)
		s.Empty(body.Warnings)
	})

	s.Run("success: surfaces advisory warnings", func() {
		entity := s.newBookingEntity()
		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).
			Return(&commands.CreateBookingResult{
				Booking:  entity,
				Warnings: []string{"stay exceeds the season's maximum nights"},
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body resdto.CreateBookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Len(body.Warnings, 1)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		for _, testCaseGroup := range allValidationTestCases {
			for _, tc := range testCaseGroup {
				s.Run(tc.name, func() {
					requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)

					rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
					httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectInBody)
				})
			}
		}
	})

	s.Run("error: command failures map to HTTP statuses", func() {
		cases := []struct {
			name         string
			err          error
			expectCode   int
			expectInBody string
		}{
			{name: "dates unavailable", err: errs.ErrBookingConflict, expectCode: http.StatusConflict, expectInBody: "Requested dates are not available"},
			{name: "room not found", err: errs.ErrRoomNotFound, expectCode: http.StatusNotFound, expectInBody: "Room not found"},
			{name: "room inactive", err: errs.ErrRoomInactive, expectCode: http.StatusUnprocessableEntity, expectInBody: "Room is not active"},
			{name: "no pricing rule", err: errs.ErrNoPricingRuleFound, expectCode: http.StatusUnprocessableEntity, expectInBody: "No pricing rule covers this stay"},
			{name: "invalid date range", err: errs.ErrInvalidRange, expectCode: http.StatusBadRequest, expectInBody: "Checkout must be after checkin"},
			{name: "domain validation", err: errs.ErrDomainValidation, expectCode: http.StatusUnprocessableEntity, expectInBody: "Domain validation failed"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).
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
// TestGetBooking
// ================================================================================

func (s *BookingHandlerTestSuite) TestGetBooking() {
	bookingID := uuid.New()
	view := &queries.BookingView{
		ID:         bookingID,
		Reference:  "AB23CD45",
		Property:   "cedar_lodge",
		Mode:       "room",
		Checkin:    time.Date(2026, 7, 10, 0, 0, 0, 0, time.UTC),
		Checkout:   time.Date(2026, 7, 13, 0, 0, 0, 0, time.UTC),
		Guests:     2,
		UserID:     uuid.New(),
		Status:     "complete",
		PriceCents: 60000,
	}

	s.Run("success: returns 200 OK with booking", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), bookingID).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+bookingID.String(), nil, "bearer-token")

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(bookingID, body.ID)
		s.Equal("AB23CD45", body.Reference)
		s.Equal(int64(60000), body.PriceCents)
	})

	s.Run("error: 400 Bad Request for malformed ID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/not-a-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid booking ID format")
	})

	s.Run("error: 404 Not Found for unknown booking", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), bookingID).
			Return(nil, errs.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+bookingID.String(), nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})
}

// ================================================================================
// TestGetBookingByReference
// ================================================================================

func (s *BookingHandlerTestSuite) TestGetBookingByReference() {
	view := &queries.BookingView{ID: uuid.New(), Reference: "AB23CD45", Property: "cedar_lodge", Status: "complete"}

	s.Run("success: reference is normalized to upper case", func() {
		s.mockQueries.EXPECT().GetByReference(gomock.Any(), "AB23CD45").
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/reference/ab23cd45", nil, "bearer-token")

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("AB23CD45", body.Reference)
	})

	s.Run("error: 404 Not Found for unknown reference", func() {
		s.mockQueries.EXPECT().GetByReference(gomock.Any(), "ZZZZZZZZ").
			Return(nil, errs.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/reference/ZZZZZZZZ", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})
}

// ================================================================================
// TestChangeDates
// ================================================================================

func (s *BookingHandlerTestSuite) TestChangeDates() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String() + "/dates"
	reqBody := reqdto.ChangeBookingDatesRequest{Checkin: "2026-07-15", Checkout: "2026-07-17"}

	s.Run("success: returns 200 OK with repriced booking", func() {
		entity := s.newBookingEntity()
		s.mockCommands.EXPECT().ChangeDates(gomock.Any(), gomock.Any()).
			Return(&commands.CreateBookingResult{Booking: entity}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "bearer-token")

		var body resdto.CreateBookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(entity.ID(), body.Booking.ID)
	})

	s.Run("error: 400 Bad Request for malformed ID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/bookings/nope/dates", reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid booking ID format")
	})

	s.Run("error: 400 Bad Request on missing checkout", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("checkout", nil))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, requestMap, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: 409 Conflict when the new dates are taken", func() {
		s.mockCommands.EXPECT().ChangeDates(gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrBookingConflict).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Requested dates are not available")
	})

	s.Run("error: 404 Not Found for unknown booking", func() {
		s.mockCommands.EXPECT().ChangeDates(gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})
}

// ================================================================================
// TestCancelBooking
// ================================================================================

func (s *BookingHandlerTestSuite) TestCancelBooking() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String() + "/cancel"

	s.Run("success: returns 200 OK with pending refund", func() {
		entity := s.newBookingEntity()
		s.Require().NoError(entity.Cancel())
		threshold := 14
		pending := refund.NewPendingRefund(entity.ID(), "pay_456", 30000, &threshold, 50)

		s.mockCommands.EXPECT().CancelBooking(gomock.Any(), bookingID).
			Return(&commands.CancelBookingResult{Booking: entity, PendingRefund: pending}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")

		var body resdto.CancelBookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("canceled", body.Booking.Status)
		s.Require().NotNil(body.PendingRefund)
		s.Equal(int64(30000), body.PendingRefund.PolicyAmountCents)
		s.Equal("pending", body.PendingRefund.Status)
	})

	s.Run("success: cancellation without a charge has no refund", func() {
		entity := s.newBookingEntity()
		s.Require().NoError(entity.Cancel())

		s.mockCommands.EXPECT().CancelBooking(gomock.Any(), bookingID).
			Return(&commands.CancelBookingResult{Booking: entity}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")

		var body resdto.CancelBookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Nil(body.PendingRefund)
	})

	s.Run("error: 422 on double cancel", func() {
		s.mockCommands.EXPECT().CancelBooking(gomock.Any(), bookingID).
			Return(nil, errs.ErrDomainValidation).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Domain validation failed")
	})
}

// ================================================================================
// TestDeleteBooking
// ================================================================================

func (s *BookingHandlerTestSuite) TestDeleteBooking() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String()

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().DeleteBooking(gomock.Any(), bookingID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 404 Not Found for unknown booking", func() {
		s.mockCommands.EXPECT().DeleteBooking(gomock.Any(), bookingID).
			Return(errs.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})
}

// ================================================================================
// TestListBookings
// ================================================================================

func (s *BookingHandlerTestSuite) TestListBookings() {
	s.Run("success: returns 200 OK with bookings in the window", func() {
		views := []queries.BookingView{
			{ID: uuid.New(), Reference: "AB23CD45", Property: "cedar_lodge", Status: "complete"},
			{ID: uuid.New(), Reference: "EF67GH89", Property: "cedar_lodge", Status: "canceled"},
		}
		s.mockQueries.EXPECT().ListByProperty(gomock.Any(), property.CedarLodge, gomock.Any(), gomock.Any()).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/properties/cedar_lodge/bookings?from=2026-07-01&to=2026-07-31", nil, "bearer-token")

		var body []resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 2)
		s.Equal("AB23CD45", body[0].Reference)
	})

	s.Run("error: 400 Bad Request for unknown property", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/properties/grand_hotel/bookings?from=2026-07-01&to=2026-07-31", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Unknown property")
	})

	s.Run("error: 400 Bad Request when the window is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/properties/cedar_lodge/bookings?to=2026-07-31", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid from date")
	})
}

// ================================================================================
// TestCheckAvailability
// ================================================================================

func (s *BookingHandlerTestSuite) TestCheckAvailability() {
	base := "/properties/clear_lake/availability"

	s.Run("success: returns availability verdict", func() {
		s.mockAvailability.EXPECT().IsAvailable(gomock.Any(), gomock.Any()).
			Return(true, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			base+"?mode=day&checkin=2026-07-10&checkout=2026-07-11&guests=3", nil, "bearer-token")

		var body map[string]bool
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body["available"])
	})

	s.Run("success: room IDs are forwarded to the check", func() {
		roomID := uuid.New()
		s.mockAvailability.EXPECT().IsAvailable(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, chk queries.AvailabilityCheck) (bool, error) {
				s.Equal([]uuid.UUID{roomID}, chk.RoomIDs)
				s.Equal(booking.ModeRoom, chk.Mode)
				return false, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/properties/cedar_lodge/availability?mode=room&checkin=2026-07-10&checkout=2026-07-13&room_ids="+roomID.String(), nil, "bearer-token")

		var body map[string]bool
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.False(body["available"])
	})

	s.Run("error: 400 Bad Request on malformed query", func() {
		cases := []struct {
			name  string
			query string
		}{
			{name: "missing mode", query: "?checkin=2026-07-10&checkout=2026-07-11"},
			{name: "bad checkin", query: "?mode=day&checkin=July&checkout=2026-07-11"},
			{name: "checkout before checkin", query: "?mode=day&checkin=2026-07-11&checkout=2026-07-10"},
			{name: "zero guests", query: "?mode=day&checkin=2026-07-10&checkout=2026-07-11&guests=0"},
			{name: "bad room ID", query: "?mode=room&checkin=2026-07-10&checkout=2026-07-11&room_ids=nope"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, base+tc.query, nil, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})
}
