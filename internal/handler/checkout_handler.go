package handler

import (
	"net/http"

	"app/internal/config"
	"app/internal/middleware"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

type CheckoutHandler struct {
	uc        *usecase.CheckoutUsecase
	publicKey string
}

func NewCheckoutHandler(uc *usecase.CheckoutUsecase, publicKey string) *CheckoutHandler {
	return &CheckoutHandler{uc: uc, publicKey: publicKey}
}

type CheckoutRequest struct {
	IdempotencyKey string `json:"idempotencyKey"`
}

// ClientConfigResponse carries the publishable values the checkout page
// needs before it has a session.
type ClientConfigResponse struct {
	PaystackPublicKey string `json:"paystackPublicKey"`
}

func (h *CheckoutHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	e.GET("/checkout/config", h.clientConfig)

	g := e.Group("/checkout")
	g.Use(middleware.AuthJWT(cfg))

	g.POST("", h.checkout)
}

func (h *CheckoutHandler) clientConfig(c echo.Context) error {
	return c.JSON(http.StatusOK, ClientConfigResponse{PaystackPublicKey: h.publicKey})
}

func (h *CheckoutHandler) checkout(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Not authenticated"})
	}

	var req CheckoutRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.Checkout(c.Request().Context(), userID, usecase.CheckoutInput{
		IdempotencyKey: req.IdempotencyKey,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}
