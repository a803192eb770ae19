package request

type ApproveRefundRequest struct {
	// AmountCents overrides the policy-computed amount when set.
	AmountCents *int64 `json:"amount_cents,omitempty"`
	Reason      string `json:"reason"`
}

type RejectRefundRequest struct {
	Note string `json:"note" binding:"required"`
}
