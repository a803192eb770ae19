package api

import (
	"net/http"
	"strconv"
	"time"

	"lodgekeeper/internal/domain/property"
	resdto "lodgekeeper/internal/handler/dto/response"
	"lodgekeeper/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const (
	defaultWindowDays = 30
	maxWindowDays     = 92
)

type CalendarHandler struct {
	queries queries.CalendarQueries
}

func NewCalendarHandler(qs queries.CalendarQueries) *CalendarHandler {
	return &CalendarHandler{queries: qs}
}

// @Summary Property calendar
// @Description Occupancy grid for a property over a date window
// @Tags calendar
// @Produce json
// @Security BearerAuth
// @Param property path string true "Property key"
// @Param start query string true "Window start (YYYY-MM-DD)"
// @Param days query int false "Window length in days (default 30, max 92)"
// @Success 200 {object} resdto.CalendarResponse
// @Failure 400 {object} map[string]string
// @Router /properties/{property}/calendar [get]
func (h *CalendarHandler) GetCalendar(c *gin.Context) {
	prop, err := property.Parse(c.Param("property"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Unknown property",
		})
		return
	}

	start, err := time.Parse(time.DateOnly, c.Query("start"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid start date",
		})
		return
	}

	days := defaultWindowDays
	if raw := c.Query("days"); raw != "" {
		days, err = strconv.Atoi(raw)
		if err != nil || days < 1 || days > maxWindowDays {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid window length",
			})
			return
		}
	}

	view, err := h.queries.PropertyCalendar(c.Request.Context(), prop, start, days)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromCalendarView(view))
}
