package calculator

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Handler provides HTTP handlers for the clinical calculators.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/calc/anthropometry", h.Anthropometry)
	api.POST("/calc/nutritional-indicator", h.NutritionalIndicator)
	api.POST("/calc/fluid-plan", h.FluidPlan)
	api.GET("/calc/scores/:rubric/criteria", h.RubricCriteria)
	api.POST("/calc/scores/:rubric", h.Score)
	api.POST("/calc/blood-pressure", h.BloodPressure)
}

func (h *Handler) Anthropometry(c echo.Context) error {
	var req AnthropometryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, h.svc.Anthropometry(req))
}

func (h *Handler) NutritionalIndicator(c echo.Context) error {
	var req NutritionalIndicatorRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, h.svc.NutritionalIndicator(req))
}

func (h *Handler) FluidPlan(c echo.Context) error {
	var req FluidPlanRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	plan := h.svc.FluidPlan(req)
	if plan == nil {
		return c.JSON(http.StatusOK, pending("se requiere el peso del paciente"))
	}
	return c.JSON(http.StatusOK, plan)
}

func (h *Handler) RubricCriteria(c echo.Context) error {
	def, err := h.svc.RubricCriteria(c.Param("rubric"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	return c.JSON(http.StatusOK, def)
}

func (h *Handler) Score(c echo.Context) error {
	var req ScoreRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	result, err := h.svc.Score(c.Param("rubric"), req.Selection)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if result == nil {
		return c.JSON(http.StatusOK, pending("faltan criterios por seleccionar"))
	}
	return c.JSON(http.StatusOK, result)
}

func (h *Handler) BloodPressure(c echo.Context) error {
	var req BloodPressureRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, h.svc.BloodPressure(req))
}
