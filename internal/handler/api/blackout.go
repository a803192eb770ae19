package api

import (
	"errors"
	"net/http"

	reqdto "lodgekeeper/internal/handler/dto/request"
	resdto "lodgekeeper/internal/handler/dto/response"
	"lodgekeeper/internal/pkg/errs"
	"lodgekeeper/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BlackoutHandler struct {
	commands commands.BlackoutCommands
}

func NewBlackoutHandler(cmds commands.BlackoutCommands) *BlackoutHandler {
	return &BlackoutHandler{commands: cmds}
}

// @Summary Create blackout
// @Description Close a property for a full-day-inclusive date range
// @Tags blackouts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBlackoutRequest true "Blackout request"
// @Success 201 {object} resdto.CreateBlackoutResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /blackouts [post]
func (h *BlackoutHandler) CreateBlackout(c *gin.Context) {
	var req reqdto.CreateBlackoutRequest
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

	result, err := h.commands.CreateBlackout(c.Request.Context(), cmd)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrDomainValidation):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Domain validation failed",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromCreateBlackoutResult(result))
}

// @Summary Remove blackout
// @Description Reopen the dates a blackout was covering
// @Tags blackouts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Blackout ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /blackouts/{id} [delete]
func (h *BlackoutHandler) RemoveBlackout(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid blackout ID format",
		})
		return
	}

	if err := h.commands.RemoveBlackout(c.Request.Context(), id); err != nil {
		if errors.Is(err, errs.ErrBlackoutNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Blackout not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.Status(http.StatusNoContent)
}
