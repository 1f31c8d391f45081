package handler

import (
	"net/http"
	"strconv"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /api/v1/cart のHTTP
// セッションはCookieではなくsession_idクエリで受け渡す。
type CartHandler struct {
	uc *usecase.CartUsecase
}

// DI
func NewCartHandler(uc *usecase.CartUsecase) *CartHandler {
	return &CartHandler{uc: uc}
}

type AddCartItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int64  `json:"quantity"`
}

type UpdateCartItemRequest struct {
	Quantity int64 `json:"quantity"`
}

type DiscountCodeRequest struct {
	Code string `json:"code"`
}

// /api/v1/cart 以下を登録
func (h *CartHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/v1/cart")

	g.GET("", h.getCart)
	g.DELETE("", h.clearCart)
	g.POST("/items", h.addItem)
	g.PUT("/items/:item_id", h.updateItem)
	g.DELETE("/items/:item_id", h.removeItem)
	g.POST("/discount", h.applyDiscount)
	g.DELETE("/discount", h.removeDiscount)
}

// session_idクエリを解決（未指定なら唯一のセッション）
func (h *CartHandler) resolveSession(c echo.Context) (string, error) {
	return h.uc.ResolveSession(c.Request().Context(), c.QueryParam("session_id"))
}

func (h *CartHandler) getCart(c echo.Context) error {
	sessionID, err := h.resolveSession(c)
	if err != nil {
		return writeError(c, err)
	}

	//割引を効かせたいときはdiscount_codeを毎回渡す
	out, err := h.uc.GetCart(c.Request().Context(), sessionID, c.QueryParam("discount_code"))
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *CartHandler) addItem(c echo.Context) error {
	sessionID, err := h.resolveSession(c)
	if err != nil {
		return writeError(c, err)
	}

	var req AddCartItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	out, err := h.uc.AddItem(c.Request().Context(), sessionID, usecase.AddItemInput{
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *CartHandler) updateItem(c echo.Context) error {
	sessionID, err := h.resolveSession(c)
	if err != nil {
		return writeError(c, err)
	}

	itemID, err := strconv.ParseInt(c.Param("item_id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid item_id"})
	}

	var req UpdateCartItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.UpdateQuantity(c.Request().Context(), sessionID, itemID, req.Quantity)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *CartHandler) removeItem(c echo.Context) error {
	sessionID, err := h.resolveSession(c)
	if err != nil {
		return writeError(c, err)
	}

	itemID, err := strconv.ParseInt(c.Param("item_id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid item_id"})
	}

	out, err := h.uc.RemoveItem(c.Request().Context(), sessionID, itemID)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *CartHandler) clearCart(c echo.Context) error {
	sessionID, err := h.resolveSession(c)
	if err != nil {
		return writeError(c, err)
	}

	out, err := h.uc.ClearCart(c.Request().Context(), sessionID)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *CartHandler) applyDiscount(c echo.Context) error {
	sessionID, err := h.resolveSession(c)
	if err != nil {
		return writeError(c, err)
	}

	var req DiscountCodeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.ApplyDiscount(c.Request().Context(), sessionID, req.Code)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *CartHandler) removeDiscount(c echo.Context) error {
	sessionID, err := h.resolveSession(c)
	if err != nil {
		return writeError(c, err)
	}

	out := h.uc.RemoveDiscount(c.Request().Context(), sessionID)
	return c.JSON(http.StatusOK, out)
}
