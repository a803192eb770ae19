package api

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"lodgekeeper/internal/domain/booking"
	"lodgekeeper/internal/domain/property"
	reqdto "lodgekeeper/internal/handler/dto/request"
	resdto "lodgekeeper/internal/handler/dto/response"
	"lodgekeeper/internal/pkg/errs"
	"lodgekeeper/internal/usecase/commands"
	"lodgekeeper/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	commands     commands.BookingCommands
	queries      queries.BookingQueries
	availability queries.AvailabilityQueries
}

func NewBookingHandler(cmds commands.BookingCommands, qs queries.BookingQueries, availability queries.AvailabilityQueries) *BookingHandler {
	return &BookingHandler{
		commands:     cmds,
		queries:      qs,
		availability: availability,
	}
}

// @Summary Create booking
// @Description Reserve rooms, a whole-property buyout or Clear Lake day use
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.CreateBookingResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req reqdto.CreateBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	cmd, err := req.ToCommand()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	result, err := h.commands.CreateBooking(c.Request.Context(), cmd)
	if err != nil {
		h.writeBookingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromCreateBookingResult(result))
}

// @Summary Change booking dates
// @Description Move a booking to new dates, re-checking availability and price
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.ChangeBookingDatesRequest true "New dates"
// @Success 200 {object} resdto.CreateBookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{id}/dates [patch]
func (h *BookingHandler) ChangeDates(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return
	}

	var req reqdto.ChangeBookingDatesRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	cmd, err := req.ToCommand(id)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	result, err := h.commands.ChangeDates(c.Request.Context(), cmd)
	if err != nil {
		h.writeBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromCreateBookingResult(result))
}

// @Summary Cancel booking
// @Description Release inventory and file a pending refund when a charge exists
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.CancelBookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id}/cancel [post]
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return
	}

	result, err := h.commands.CancelBooking(c.Request.Context(), id)
	if err != nil {
		h.writeBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromCancelBookingResult(result))
}

// @Summary Delete booking
// @Description Hard-delete a booking; admin escape hatch
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [delete]
func (h *BookingHandler) DeleteBooking(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return
	}

	if err := h.commands.DeleteBooking(c.Request.Context(), id); err != nil {
		h.writeBookingError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Get booking
// @Description Get booking by ID
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [get]
func (h *BookingHandler) GetBooking(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return
	}

	view, err := h.queries.GetByID(c.Request.Context(), id)
	if err != nil {
		h.writeBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Get booking by reference
// @Description Look up a booking by its short reference code
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param reference path string true "Booking reference"
// @Success 200 {object} resdto.BookingResponse
// @Failure 404 {object} map[string]string
// @Router /bookings/reference/{reference} [get]
func (h *BookingHandler) GetBookingByReference(c *gin.Context) {
	reference := strings.ToUpper(strings.TrimSpace(c.Param("reference")))

	view, err := h.queries.GetByReference(c.Request.Context(), reference)
	if err != nil {
		h.writeBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary List bookings
// @Description List bookings on a property intersecting a date window
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param property path string true "Property key"
// @Param from query string true "Window start (YYYY-MM-DD)"
// @Param to query string true "Window end (YYYY-MM-DD)"
// @Success 200 {array} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Router /properties/{property}/bookings [get]
func (h *BookingHandler) ListBookings(c *gin.Context) {
	prop, err := property.Parse(c.Param("property"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Unknown property",
		})
		return
	}
	from, err := time.Parse(time.DateOnly, c.Query("from"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid from date",
		})
		return
	}
	to, err := time.Parse(time.DateOnly, c.Query("to"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid to date",
		})
		return
	}

	views, err := h.queries.ListByProperty(c.Request.Context(), prop, from, to)
	if err != nil {
		h.writeBookingError(c, err)
		return
	}

	response := make([]*resdto.BookingResponse, len(views))
	for i := range views {
		response[i] = resdto.FromBookingView(&views[i])
	}
	c.JSON(http.StatusOK, response)
}

// @Summary Check availability
// @Description Display-side availability probe for the booking form
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param property path string true "Property key"
// @Param mode query string true "Booking mode"
// @Param checkin query string true "Checkin date (YYYY-MM-DD)"
// @Param checkout query string true "Checkout date (YYYY-MM-DD)"
// @Param guests query int false "Guest count"
// @Param room_ids query string false "Comma-separated room IDs"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} map[string]string
// @Router /properties/{property}/availability [get]
func (h *BookingHandler) CheckAvailability(c *gin.Context) {
	chk, err := h.parseAvailabilityQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	available, err := h.availability.IsAvailable(c.Request.Context(), chk)
	if err != nil {
		h.writeBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"available": available})
}

func (h *BookingHandler) parseAvailabilityQuery(c *gin.Context) (queries.AvailabilityCheck, error) {
	var chk queries.AvailabilityCheck

	prop, err := property.Parse(c.Param("property"))
	if err != nil {
		return chk, err
	}
	mode, err := booking.ParseMode(c.Query("mode"))
	if err != nil {
		return chk, err
	}
	checkin, err := time.Parse(time.DateOnly, c.Query("checkin"))
	if err != nil {
		return chk, err
	}
	checkout, err := time.Parse(time.DateOnly, c.Query("checkout"))
	if err != nil {
		return chk, err
	}
	dates, err := booking.NewDateRange(checkin, checkout)
	if err != nil {
		return chk, err
	}

	guests := 1
	if g := c.Query("guests"); g != "" {
		guests, err = strconv.Atoi(g)
		if err != nil || guests < 1 {
			return chk, errors.New("invalid guest count")
		}
	}

	var roomIDs []uuid.UUID
	if raw := c.Query("room_ids"); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			id, err := uuid.Parse(strings.TrimSpace(part))
			if err != nil {
				return chk, errors.New("invalid room ID")
			}
			roomIDs = append(roomIDs, id)
		}
	}

	chk.Property = prop
	chk.Mode = mode
	chk.Dates = dates
	chk.Guests = guests
	chk.RoomIDs = roomIDs
	return chk, nil
}

func (h *BookingHandler) writeBookingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Booking not found",
		})
	case errors.Is(err, errs.ErrRoomNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Room not found",
		})
	case errors.Is(err, errs.ErrRoomInactive):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Room is not active",
		})
	case errors.Is(err, errs.ErrBookingConflict):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Requested dates are not available",
		})
	case errors.Is(err, errs.ErrInvalidRange):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Checkout must be after checkin",
		})
	case errors.Is(err, errs.ErrNoPricingRuleFound):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "No pricing rule covers this stay",
		})
	case errors.Is(err, errs.ErrDomainValidation):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Domain validation failed",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
