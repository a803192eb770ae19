package external

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"lodgekeeper/internal/pkg/config"
	"lodgekeeper/internal/pkg/errs"
	"lodgekeeper/internal/usecase/shared"
)

// GatewayClient talks to the payment gateway's refund endpoint. The gateway
// owns the money movement; this client only classifies its answers.
type GatewayClient struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewGatewayClient(cfg config.PaymentConfig) *GatewayClient {
	return &GatewayClient{
		baseURL: cfg.GatewayURL,
		apiKey:  cfg.APIKey,
		client:  &http.Client{Timeout: cfg.Timeout},
	}
}

type refundRequest struct {
	PaymentRef  string `json:"payment_ref"`
	AmountCents int64  `json:"amount_cents"`
	Reason      string `json:"reason"`
}

type refundResponse struct {
	RefundRef string `json:"refund_ref"`
}

func (c *GatewayClient) Refund(ctx context.Context, externalPaymentRef string, amountCents int64, reason string) (string, error) {
	body, err := json.Marshal(refundRequest{
		PaymentRef:  externalPaymentRef,
		AmountCents: amountCents,
		Reason:      reason,
	})
	if err != nil {
		return "", &shared.ProcessorError{Outcome: shared.OutcomeGatewayError, Cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/refunds", bytes.NewReader(body))
	if err != nil {
		return "", &shared.ProcessorError{Outcome: shared.OutcomeGatewayError, Cause: err}
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return "", &shared.ProcessorError{Outcome: shared.OutcomeGatewayError, Cause: err}
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		var out refundResponse
		if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
			return "", &shared.ProcessorError{Outcome: shared.OutcomeGatewayError, Cause: err}
		}
		return out.RefundRef, nil
	case http.StatusConflict:
		// The gateway already refunded this charge out of band.
		return "", &shared.ProcessorError{Outcome: shared.OutcomeAlreadyRefunded}
	default:
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", &shared.ProcessorError{
			Outcome: shared.OutcomeGatewayError,
			Cause:   errs.Newf("gateway returned %d: %s", resp.StatusCode, string(msg)),
		}
	}
}
