package api

import (
	"errors"
	"net/http"

	reqdto "lodgekeeper/internal/handler/dto/request"
	resdto "lodgekeeper/internal/handler/dto/response"
	"lodgekeeper/internal/pkg/errs"
	"lodgekeeper/internal/usecase/commands"
	"lodgekeeper/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RefundHandler struct {
	commands commands.RefundCommands
	queries  queries.RefundQueries
}

func NewRefundHandler(cmds commands.RefundCommands, qs queries.RefundQueries) *RefundHandler {
	return &RefundHandler{commands: cmds, queries: qs}
}

// @Summary List pending refunds
// @Description The admin approval inbox
// @Tags refunds
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status (default pending)"
// @Success 200 {array} resdto.PendingRefundResponse
// @Router /refunds [get]
func (h *RefundHandler) ListRefunds(c *gin.Context) {
	var (
		views []queries.PendingRefundView
		err   error
	)
	if status := c.Query("status"); status != "" {
		views, err = h.queries.ListByStatus(c.Request.Context(), status)
	} else {
		views, err = h.queries.ListPending(c.Request.Context())
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.PendingRefundResponse, len(views))
	for i := range views {
		response[i] = resdto.FromPendingRefundView(&views[i])
	}
	c.JSON(http.StatusOK, response)
}

// @Summary Get pending refund
// @Description Get a refund request by ID
// @Tags refunds
// @Produce json
// @Security BearerAuth
// @Param id path string true "Pending refund ID"
// @Success 200 {object} resdto.PendingRefundResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /refunds/{id} [get]
func (h *RefundHandler) GetRefund(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid refund ID format",
		})
		return
	}

	view, err := h.queries.GetByID(c.Request.Context(), id)
	if err != nil {
		h.writeRefundError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromPendingRefundView(view))
}

// @Summary Approve refund
// @Description Charge the payment processor and mark the refund approved
// @Tags refunds
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Pending refund ID"
// @Param request body reqdto.ApproveRefundRequest true "Approval request"
// @Success 200 {object} resdto.ApproveRefundResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /refunds/{id}/approve [post]
func (h *RefundHandler) ApproveRefund(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid refund ID format",
		})
		return
	}

	var req reqdto.ApproveRefundRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.commands.Approve(c.Request.Context(), commands.ApproveRefundCommand{
		PendingRefundID:   id,
		CustomAmountCents: req.AmountCents,
		Reason:            req.Reason,
	})
	if err != nil {
		h.writeRefundError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromApproveRefundResult(result))
}

// @Summary Reject refund
// @Description Close the refund without moving money; note is mandatory
// @Tags refunds
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Pending refund ID"
// @Param request body reqdto.RejectRefundRequest true "Rejection request"
// @Success 200 {object} resdto.PendingRefundResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /refunds/{id}/reject [post]
func (h *RefundHandler) RejectRefund(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid refund ID format",
		})
		return
	}

	var req reqdto.RejectRefundRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Rejection note is required",
		})
		return
	}

	rejected, err := h.commands.Reject(c.Request.Context(), id, req.Note)
	if err != nil {
		h.writeRefundError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromRejectedRefund(rejected))
}

func (h *RefundHandler) writeRefundError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrPendingRefundNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Pending refund not found",
		})
	case errors.Is(err, errs.ErrAlreadyProcessed):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Refund has already been processed",
		})
	case errors.Is(err, errs.ErrAlreadyRefunded):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Charge was already refunded",
		})
	case errors.Is(err, errs.ErrNoChargeablePayment):
		c.JSON(http.StatusConflict, gin.H{
			"error": "No chargeable payment for this booking",
		})
	case errors.Is(err, errs.ErrRejectionNoteMissing):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Rejection note is required",
		})
	case errors.Is(err, errs.ErrProcessorFailure):
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Payment processor error; refund left pending",
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
