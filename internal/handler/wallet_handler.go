package handler

import (
	"net/http"

	"app/internal/config"
	"app/internal/domain/model"
	"app/internal/middleware"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

type WalletHandler struct {
	uc *usecase.WalletUsecase
}

func NewWalletHandler(uc *usecase.WalletUsecase) *WalletHandler {
	return &WalletHandler{uc: uc}
}

type WithdrawalRequest struct {
	Amount int64 `json:"amount"`
}

func (h *WalletHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	g := e.Group("/wallet")
	g.Use(middleware.AuthJWT(cfg))

	g.GET("", h.getWallet)
	g.POST("/withdrawals", h.requestWithdrawal)
}

func (h *WalletHandler) getWallet(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Not authenticated"})
	}

	out, err := h.uc.GetWallet(c.Request().Context(), userID)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *WalletHandler) requestWithdrawal(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Not authenticated"})
	}

	// only creators accrue earnings to withdraw
	if role, ok := getUserRoleFromContext(c); !ok || role != string(model.RoleCreator) {
		return c.JSON(http.StatusForbidden, ErrorResponse{Error: "creator role required"})
	}

	var req WithdrawalRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.RequestWithdrawal(c.Request().Context(), userID, usecase.WithdrawalInput{
		Amount: req.Amount,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, out)
}
