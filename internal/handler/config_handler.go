package handler

import (
	"net/http"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /api/v1/config/product-service のHTTP
type ConfigHandler struct {
	uc *usecase.ConfigUsecase
}

// DI
func NewConfigHandler(uc *usecase.ConfigUsecase) *ConfigHandler {
	return &ConfigHandler{uc: uc}
}

type ConfigureRequest struct {
	Endpoint string            `json:"endpoint"`
	APIKey   string            `json:"api_key"`
	Headers  map[string]string `json:"headers"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func (h *ConfigHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/v1/config/product-service")

	g.POST("", h.configure)
	g.GET("", h.getConfig)
}

func (h *ConfigHandler) configure(c echo.Context) error {
	var req ConfigureRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	err := h.uc.Configure(c.Request().Context(), usecase.ConfigureInput{
		Endpoint: req.Endpoint,
		APIKey:   req.APIKey,
		Headers:  req.Headers,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: "Product service configured successfully"})
}

func (h *ConfigHandler) getConfig(c echo.Context) error {
	out, err := h.uc.GetConfig(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}
