package handler

import (
	"io"
	"log/slog"
	"net/http"

	"app/internal/config"
	"app/internal/observability"
	"app/internal/paystack"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// WebhookHandler receives signed gateway events. The contract with the
// provider: non-200 only for a bad signature or an unparseable body;
// everything past the dispatch is acked with 200 so the provider does
// not redeliver for our internal failures.
type WebhookHandler struct {
	secretKey string
	finalizer *usecase.OrderFinalizer
	metrics   *observability.AppMetrics
}

func NewWebhookHandler(cfg config.Config, finalizer *usecase.OrderFinalizer, metrics *observability.AppMetrics) *WebhookHandler {
	return &WebhookHandler{
		secretKey: cfg.PaystackSecretKey,
		finalizer: finalizer,
		metrics:   metrics,
	}
}

type WebhookAck struct {
	Received bool `json:"received"`
}

func (h *WebhookHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/webhooks/paystack", h.handle)
}

func (h *WebhookHandler) handle(c echo.Context) error {
	// signature is over the raw bytes; read before any binding
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Webhook processing failed"})
	}

	signature := c.Request().Header.Get(paystack.SignatureHeader)
	if signature == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Missing signature"})
	}
	if !paystack.VerifySignature(h.secretKey, body, signature) {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid signature"})
	}

	ev, err := paystack.ParseEvent(body)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Webhook processing failed"})
	}

	ctx := c.Request().Context()

	if h.metrics != nil {
		h.metrics.WebhookEvents.Add(ctx, 1, observability.WithEvent(ev.Event))
	}

	switch ev.Event {
	case paystack.EventChargeSuccess:
		h.finalizer.HandleChargeSuccess(ctx, ev.Data.Reference, ev.Data.Metadata.CartID)
	case paystack.EventChargeFailed:
		h.finalizer.HandleChargeFailed(ctx, ev.Data.Reference)
	case paystack.EventTransferSuccess, paystack.EventTransferFailed:
		// payout confirmations are observed, not acted on
		slog.Info("transfer event received", "event", ev.Event, "reference", ev.Data.Reference)
	default:
		slog.Info("unhandled webhook event ignored", "event", ev.Event)
	}

	return c.JSON(http.StatusOK, WebhookAck{Received: true})
}
