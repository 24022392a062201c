package handler

import (
	"bytes"
	"errors"
	"io"
	"net/http"

	"github.com/stpnv0/CarBooker/internal/domain"
	"github.com/stpnv0/CarBooker/internal/handler/dto"
	"github.com/stripe/stripe-go/v76/webhook"
	"github.com/wb-go/wbf/ginext"
)

const (
	HeaderSignature = "Stripe-Signature"

	maxWebhookBody = 64 << 10

	eventPaymentCompleted = "payment.completed"
	eventPaymentFailed    = "payment.failed"
)

// PaymentWebhook applies a gateway notification. Unknown transactions and
// redeliveries are acknowledged so the gateway stops retrying.
func (h *Handler) PaymentWebhook(c *ginext.Context) {
	payload, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBody))
	if err != nil {
		badRequest(c, "read body")
		return
	}

	if h.cfg.WebhookSecret != "" {
		if err = webhook.ValidatePayload(payload, c.GetHeader(HeaderSignature), h.cfg.WebhookSecret); err != nil {
			c.Set("error", err.Error())
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "invalid signature"})
			return
		}
	}

	c.Request.Body = io.NopCloser(bytes.NewReader(payload))

	var req dto.PaymentWebhookRequest
	if err = c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	var status domain.PaymentStatus
	switch req.EventType {
	case eventPaymentCompleted:
		status = domain.PaymentStatusCompleted
	case eventPaymentFailed:
		status = domain.PaymentStatusFailed
	}

	res, err := h.paymentService.HandleNotification(c.Request.Context(), req.ProviderTransactionID, status)
	if err != nil {
		if errors.Is(err, domain.ErrPaymentNotFound) {
			c.Set("error", err.Error())
			c.JSON(http.StatusOK, dto.WebhookResponse{Received: true})
			return
		}
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.WebhookResponse{Received: true, Outcome: string(res.Outcome)})
}
