package response

import (
	"log/slog"
	"time"

	"lodgekeeper/internal/domain/refund"
	"lodgekeeper/internal/usecase/commands"
	"lodgekeeper/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type PendingRefundResponse struct {
	ID                  uuid.UUID  `json:"id"`
	BookingID           uuid.UUID  `json:"bookingId"`
	BookingReference    string     `json:"bookingReference,omitempty"`
	PaymentRef          string     `json:"paymentRef"`
	PolicyAmountCents   int64      `json:"policyAmountCents"`
	MatchedThreshold    *int       `json:"matchedThreshold,omitempty"`
	MatchedPercent      int        `json:"matchedPercent"`
	Status              string     `json:"status"`
	ApprovedAmountCents *int64     `json:"approvedAmountCents,omitempty"`
	AdminNote           string     `json:"adminNote,omitempty"`
	ProcessorRefundRef  *string    `json:"processorRefundRef,omitempty"`
	CreatedAt           time.Time  `json:"createdAt"`
	ProcessedAt         *time.Time `json:"processedAt,omitempty"`
}

func FromPendingRefundView(v *queries.PendingRefundView) *PendingRefundResponse {
	var resp PendingRefundResponse
	if err := copier.Copy(&resp, v); err != nil {
		slog.Error("failed to map pending refund view", "error", err.Error())
	}
	return &resp
}

func fromPendingRefundEntity(p *refund.PendingRefund) PendingRefundResponse {
	return PendingRefundResponse{
		ID:                  p.ID(),
		BookingID:           p.BookingID(),
		PaymentRef:          p.PaymentRef(),
		PolicyAmountCents:   p.PolicyAmountCents(),
		MatchedThreshold:    p.MatchedThreshold(),
		MatchedPercent:      p.MatchedPercent(),
		Status:              p.Status().String(),
		ApprovedAmountCents: p.ApprovedAmountCents(),
		AdminNote:           p.AdminNote(),
		ProcessorRefundRef:  p.ProcessorRefundRef(),
		CreatedAt:           p.CreatedAt(),
		ProcessedAt:         p.ProcessedAt(),
	}
}

type ApproveRefundResponse struct {
	PendingRefund      PendingRefundResponse `json:"pendingRefund"`
	RefundedCents      int64                 `json:"refundedCents"`
	ProcessorRefundRef string                `json:"processorRefundRef"`
}

func FromApproveRefundResult(res *commands.ApproveRefundResult) *ApproveRefundResponse {
	return &ApproveRefundResponse{
		PendingRefund:      fromPendingRefundEntity(res.PendingRefund),
		RefundedCents:      res.RefundedCents,
		ProcessorRefundRef: res.ProcessorRefundRef,
	}
}

func FromRejectedRefund(p *refund.PendingRefund) *PendingRefundResponse {
	resp := fromPendingRefundEntity(p)
	return &resp
}
