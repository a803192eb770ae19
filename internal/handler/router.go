package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"lodgekeeper/internal/handler/api"
	"lodgekeeper/internal/handler/middleware"
	"lodgekeeper/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	bookingHandler *api.BookingHandler,
	refundHandler *api.RefundHandler,
	blackoutHandler *api.BlackoutHandler,
	doorCodeHandler *api.DoorCodeHandler,
	calendarHandler *api.CalendarHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, bookingHandler, refundHandler, blackoutHandler, doorCodeHandler, calendarHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	bookingHandler *api.BookingHandler,
	refundHandler *api.RefundHandler,
	blackoutHandler *api.BlackoutHandler,
	doorCodeHandler *api.DoorCodeHandler,
	calendarHandler *api.CalendarHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// The whole surface is an admin tool; every route requires an admin token.
	apiGroup := engine.Group("/api")
	apiGroup.Use(authMiddleware.RequireAdmin())
	{
		bookings := apiGroup.Group("/bookings")
		{
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "", Handler: bookingHandler.CreateBooking},
				{Method: http.MethodGet, Path: "/:id", Handler: bookingHandler.GetBooking},
				{Method: http.MethodDelete, Path: "/:id", Handler: bookingHandler.DeleteBooking},
				{Method: http.MethodPatch, Path: "/:id/dates", Handler: bookingHandler.ChangeDates},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: bookingHandler.CancelBooking},
				{Method: http.MethodGet, Path: "/reference/:reference", Handler: bookingHandler.GetBookingByReference},
			})
		}

		refunds := apiGroup.Group("/refunds")
		{
			addRoutes(refunds, []route{
				{Method: http.MethodGet, Path: "", Handler: refundHandler.ListRefunds},
				{Method: http.MethodGet, Path: "/:id", Handler: refundHandler.GetRefund},
				{Method: http.MethodPost, Path: "/:id/approve", Handler: refundHandler.ApproveRefund},
				{Method: http.MethodPost, Path: "/:id/reject", Handler: refundHandler.RejectRefund},
			})
		}

		blackouts := apiGroup.Group("/blackouts")
		{
			addRoutes(blackouts, []route{
				{Method: http.MethodPost, Path: "", Handler: blackoutHandler.CreateBlackout},
				{Method: http.MethodDelete, Path: "/:id", Handler: blackoutHandler.RemoveBlackout},
			})
		}

		properties := apiGroup.Group("/properties/:property")
		{
			addRoutes(properties, []route{
				{Method: http.MethodGet, Path: "/calendar", Handler: calendarHandler.GetCalendar},
				{Method: http.MethodGet, Path: "/bookings", Handler: bookingHandler.ListBookings},
				{Method: http.MethodGet, Path: "/availability", Handler: bookingHandler.CheckAvailability},
				{Method: http.MethodPut, Path: "/door-code", Handler: doorCodeHandler.SetDoorCode},
				{Method: http.MethodGet, Path: "/door-code/recent", Handler: doorCodeHandler.RecentDoorCodes},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
