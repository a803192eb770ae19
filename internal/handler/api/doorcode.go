package api

import (
	"net/http"
	"strconv"

	"lodgekeeper/internal/domain/property"
	reqdto "lodgekeeper/internal/handler/dto/request"
	resdto "lodgekeeper/internal/handler/dto/response"
	"lodgekeeper/internal/usecase/commands"
	"lodgekeeper/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type DoorCodeHandler struct {
	commands commands.DoorCodeCommands
	queries  queries.DoorCodeQueries
}

func NewDoorCodeHandler(cmds commands.DoorCodeCommands, qs queries.DoorCodeQueries) *DoorCodeHandler {
	return &DoorCodeHandler{commands: cmds, queries: qs}
}

// @Summary Set door code
// @Description Rotate the property's door code; exactly one code stays active
// @Tags door-codes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param property path string true "Property key"
// @Param request body reqdto.SetDoorCodeRequest true "New code"
// @Success 200 {object} resdto.SetDoorCodeResponse
// @Failure 400 {object} map[string]string
// @Router /properties/{property}/door-code [put]
func (h *DoorCodeHandler) SetDoorCode(c *gin.Context) {
	prop, err := property.Parse(c.Param("property"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Unknown property",
		})
		return
	}

	var req reqdto.SetDoorCodeRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Door code is required",
		})
		return
	}

	result, err := h.commands.SetNewCode(c.Request.Context(), prop, req.Code)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromSetDoorCodeResult(result))
}

// @Summary Recent door codes
// @Description The property's code history, newest first
// @Tags door-codes
// @Produce json
// @Security BearerAuth
// @Param property path string true "Property key"
// @Param n query int false "Number of codes (default 3)"
// @Success 200 {array} resdto.DoorCodeResponse
// @Failure 400 {object} map[string]string
// @Router /properties/{property}/door-code/recent [get]
func (h *DoorCodeHandler) RecentDoorCodes(c *gin.Context) {
	prop, err := property.Parse(c.Param("property"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Unknown property",
		})
		return
	}

	n := 0
	if raw := c.Query("n"); raw != "" {
		n, err = strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid count",
			})
			return
		}
	}

	views, err := h.queries.RecentCodes(c.Request.Context(), prop, n)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.DoorCodeResponse, len(views))
	for i := range views {
		response[i] = resdto.FromDoorCodeView(&views[i])
	}
	c.JSON(http.StatusOK, response)
}
