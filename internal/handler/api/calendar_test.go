//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"lodgekeeper/internal/domain/calendar"
	"lodgekeeper/internal/domain/property"
	"lodgekeeper/internal/handler/api"
	resdto "lodgekeeper/internal/handler/dto/response"
	"lodgekeeper/internal/usecase/queries"
	"lodgekeeper/tests/common/httptest"
	queriesmock "lodgekeeper/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CalendarHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockCalendarQueries
	handler     *api.CalendarHandler
}

func (s *CalendarHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockCalendarQueries(s.mockCtrl)
	s.handler = api.NewCalendarHandler(s.mockQueries)

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
	s.router.GET("/properties/:property/calendar", authMiddleware, s.handler.GetCalendar)
}

func (s *CalendarHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCalendarHandlerSuite(t *testing.T) {
	suite.Run(t, new(CalendarHandlerTestSuite))
}

// ================================================================================
// TestGetCalendar
// ================================================================================

func (s *CalendarHandlerTestSuite) TestGetCalendar() {
	windowStart := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	s.Run("success: returns the occupancy grid", func() {
		view := &queries.CalendarView{
			Property:    "cedar_lodge",
			WindowStart: windowStart,
			WindowDays:  30,
			Rooms: []queries.RoomLane{
				{
					RoomID:   uuid.NewString(),
					RoomName: "Pine",
					Entries: []queries.GridEntry{
						{ID: uuid.NewString(), Reference: "AB23CD45", Span: calendar.Span{StartCol: 4, EndCol: 6}},
					},
				},
			},
			Buyouts:   []queries.GridEntry{},
			Blackouts: []queries.GridEntry{},
		}
		s.mockQueries.EXPECT().PropertyCalendar(gomock.Any(), property.CedarLodge, windowStart, 30).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/properties/cedar_lodge/calendar?start=2026-06-01", nil, "bearer-token")

		var body resdto.CalendarResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("cedar_lodge", body.Property)
		s.Equal(30, body.WindowDays)
		s.Require().Len(body.Rooms, 1)
		s.Equal("Pine", body.Rooms[0].RoomName)
		s.Require().Len(body.Rooms[0].Entries, 1)
		s.Equal("AB23CD45", body.Rooms[0].Entries[0].Reference)
	})

	s.Run("success: explicit window length is passed through", func() {
		s.mockQueries.EXPECT().PropertyCalendar(gomock.Any(), property.ClearLake, windowStart, 7).
			Return(&queries.CalendarView{Property: "clear_lake", WindowStart: windowStart, WindowDays: 7}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/properties/clear_lake/calendar?start=2026-06-01&days=7", nil, "bearer-token")

		var body resdto.CalendarResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(7, body.WindowDays)
	})

	s.Run("error: 400 Bad Request on malformed query", func() {
		cases := []struct {
			name         string
			path         string
			expectInBody string
		}{
			{name: "unknown property", path: "/properties/grand_hotel/calendar?start=2026-06-01", expectInBody: "Unknown property"},
			{name: "missing start", path: "/properties/cedar_lodge/calendar", expectInBody: "Invalid start date"},
			{name: "window too long", path: "/properties/cedar_lodge/calendar?start=2026-06-01&days=365", expectInBody: "Invalid window length"},
			{name: "zero-day window", path: "/properties/cedar_lodge/calendar?start=2026-06-01&days=0", expectInBody: "Invalid window length"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, tc.path, nil, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, tc.expectInBody)
			})
		}
	})
}
