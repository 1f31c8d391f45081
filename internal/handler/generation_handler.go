package handler

import (
	"net/http"
	"strconv"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /api/v1/generate のHTTP
type GenerationHandler struct {
	uc *usecase.GenerationUsecase
}

// DI
func NewGenerationHandler(uc *usecase.GenerationUsecase) *GenerationHandler {
	return &GenerationHandler{uc: uc}
}

type GenerateRequest struct {
	TemplateID int64             `json:"template_id"`
	ProviderID int64             `json:"provider_id"`
	Variables  map[string]string `json:"variables"`
}

type BatchGenerateRequest struct {
	TemplateID int64               `json:"template_id"`
	ProviderID int64               `json:"provider_id"`
	Inputs     []map[string]string `json:"inputs"`
}

func (h *GenerationHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/v1/generate")

	g.POST("", h.generate)
	g.POST("/async", h.generateAsync)
	g.POST("/batch", h.generateBatch)
	g.GET("/tasks", h.listTasks)
	g.GET("/tasks/:id", h.getTask)
}

func (h *GenerationHandler) generate(c echo.Context) error {
	var req GenerateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.Generate(c.Request().Context(), usecase.GenerateInput{
		TemplateID: req.TemplateID,
		ProviderID: req.ProviderID,
		Variables:  req.Variables,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *GenerationHandler) generateAsync(c echo.Context) error {
	var req GenerateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.GenerateAsync(c.Request().Context(), usecase.GenerateInput{
		TemplateID: req.TemplateID,
		ProviderID: req.ProviderID,
		Variables:  req.Variables,
	})
	if err != nil {
		return writeError(c, err)
	}

	//202で受け付けて、結果は /tasks/:id で見る
	return c.JSON(http.StatusAccepted, out)
}

func (h *GenerationHandler) generateBatch(c echo.Context) error {
	var req BatchGenerateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.GenerateBatch(c.Request().Context(), usecase.BatchGenerateInput{
		TemplateID: req.TemplateID,
		ProviderID: req.ProviderID,
		Inputs:     req.Inputs,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *GenerationHandler) listTasks(c echo.Context) error {
	limit := 50
	if v := c.QueryParam("limit"); v != "" {
		l, err := strconv.Atoi(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid limit"})
		}
		limit = l
	}

	out, err := h.uc.ListTasks(c.Request().Context(), limit)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *GenerationHandler) getTask(c echo.Context) error {
	out, err := h.uc.GetTask(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
