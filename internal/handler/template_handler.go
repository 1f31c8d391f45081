package handler

import (
	"net/http"
	"strconv"

	"app/internal/domain/model"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /api/v1/templates のHTTP
type TemplateHandler struct {
	uc *usecase.TemplateUsecase
}

// DI
func NewTemplateHandler(uc *usecase.TemplateUsecase) *TemplateHandler {
	return &TemplateHandler{uc: uc}
}

type TemplateRequest struct {
	Name         string             `json:"name"`
	Description  string             `json:"description"`
	Content      string             `json:"content"`
	Variables    []string           `json:"variables"`
	QualityRules model.QualityRules `json:"quality_rules"`
}

type RenderRequest struct {
	Variables map[string]string `json:"variables"`
}

type RenderResponse struct {
	Rendered string `json:"rendered"`
}

func (h *TemplateHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/v1/templates")

	g.POST("", h.create)
	g.GET("", h.list)
	g.GET("/:id", h.get)
	g.PUT("/:id", h.update)
	g.DELETE("/:id", h.delete)
	g.POST("/:id/render", h.render)
}

func (h *TemplateHandler) create(c echo.Context) error {
	var req TemplateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.Create(c.Request().Context(), templateInput(req))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *TemplateHandler) list(c echo.Context) error {
	out, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *TemplateHandler) get(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	out, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *TemplateHandler) update(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	var req TemplateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.Update(c.Request().Context(), id, templateInput(req))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *TemplateHandler) delete(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "Template deleted"})
}

func (h *TemplateHandler) render(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	var req RenderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	rendered, err := h.uc.Render(c.Request().Context(), id, req.Variables)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, RenderResponse{Rendered: rendered})
}

func templateInput(req TemplateRequest) usecase.TemplateInput {
	return usecase.TemplateInput{
		Name:         req.Name,
		Description:  req.Description,
		Content:      req.Content,
		Variables:    req.Variables,
		QualityRules: req.QualityRules,
	}
}
