package server

import (
	"app/internal/handler"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type Handlers struct {
	Cart       *handler.CartHandler
	Config     *handler.ConfigHandler
	Provider   *handler.ProviderHandler
	Template   *handler.TemplateHandler
	Generation *handler.GenerationHandler
}

// New はecho本体を組み立ててルートを登録する。
func New(h Handlers) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	h.Cart.RegisterRoutes(e)
	h.Config.RegisterRoutes(e)
	h.Provider.RegisterRoutes(e)
	h.Template.RegisterRoutes(e)
	h.Generation.RegisterRoutes(e)

	return e
}

// Start はサーバーを起動する。
func Start(addr string, h Handlers) error {
	return New(h).Start(addr)
}
