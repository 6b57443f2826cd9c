package server

import (
	"app/internal/config"
	"app/internal/handler"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

type Handlers struct {
	Auth         *handler.AuthHandler
	Artworks     *handler.ArtworkHandler
	Cart         *handler.CartHandler
	Checkout     *handler.CheckoutHandler
	Wallet       *handler.WalletHandler
	Notification *handler.NotificationHandler
	Webhook      *handler.WebhookHandler
}

func Start(addr string, cfg config.Config, h Handlers) error {
	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())

	RegisterRoutes(e, cfg, h)

	return e.Start(addr)
}

func RegisterRoutes(e *echo.Echo, cfg config.Config, h Handlers) {
	h.Auth.RegisterRoutes(e)
	h.Artworks.RegisterRoutes(e)
	h.Cart.RegisterRoutes(e, cfg)
	h.Checkout.RegisterRoutes(e, cfg)
	h.Wallet.RegisterRoutes(e, cfg)
	h.Notification.RegisterRoutes(e, cfg)
	h.Webhook.RegisterRoutes(e)
}
