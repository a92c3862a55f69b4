package api

import (
	"net/http"

	"RendaFixa/internal/domain/models"
	domrepo "RendaFixa/internal/domain/repository"
	"RendaFixa/internal/usecase"
	xhttp "RendaFixa/pkg/http"
	xlogger "RendaFixa/pkg/logger"

	"github.com/labstack/echo/v4"
)

// staleHeader flags responses built from an expired cache entry after a
// failed refresh.
const staleHeader = "X-Stale-Data"

// IndicatorsEchoHandler exposes the indicator bundle and the projection
// endpoints over Echo.
type IndicatorsEchoHandler struct {
	logger *xlogger.Logger
	cache  domrepo.IndicatorProvider
	engine *usecase.ProjectionEngine
}

func NewIndicatorsEchoHandler(logger *xlogger.Logger, cache domrepo.IndicatorProvider, engine *usecase.ProjectionEngine) *IndicatorsEchoHandler {
	return &IndicatorsEchoHandler{logger: logger, cache: cache, engine: engine}
}

func (h *IndicatorsEchoHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/", h.Root)
	e.GET("/healthz", h.Health)
	e.GET("/indicators", h.Indicators)
	e.POST("/indicators/refresh", h.Refresh)
	e.POST("/calculate", h.Calculate)
	e.POST("/compare", h.Compare)
}

func (h *IndicatorsEchoHandler) Root(c echo.Context) error {
	return xhttp.SuccessResponse(c, map[string]string{
		"status":  "ok",
		"service": "rendafixa-api",
		"version": "1.0.0",
	})
}

func (h *IndicatorsEchoHandler) Health(c echo.Context) error {
	return xhttp.SuccessResponse(c, map[string]string{"status": "ok"})
}

func (h *IndicatorsEchoHandler) Indicators(c echo.Context) error {
	bundle, stale, err := h.cache.Get(c.Request().Context())
	if err != nil {
		h.logger.Error("indicators unavailable", xlogger.Error(err))
		return xhttp.AppErrorResponse(c,
			xhttp.BadGatewayError("could not fetch central bank indicators").WithError(err))
	}
	if stale {
		c.Response().Header().Set(staleHeader, "true")
	}
	return xhttp.SuccessResponse(c, bundle)
}

func (h *IndicatorsEchoHandler) Refresh(c echo.Context) error {
	h.cache.Invalidate()

	bundle, stale, err := h.cache.Get(c.Request().Context())
	if err != nil {
		h.logger.Error("forced refresh failed", xlogger.Error(err))
		return xhttp.ActionResponse(c, http.StatusBadGateway, false,
			"could not refresh central bank indicators", nil)
	}
	if stale {
		c.Response().Header().Set(staleHeader, "true")
	}
	return xhttp.ActionResponse(c, http.StatusOK, true, "indicators refreshed", bundle)
}

func (h *IndicatorsEchoHandler) Calculate(c echo.Context) error {
	req := &models.SimulationRequest{}
	if verrs := xhttp.ReadAndValidateRequest(c, req); verrs != nil {
		return xhttp.BadRequestResponse(c, verrs)
	}

	evolution := h.engine.Project(
		*req.InitialBalance,
		*req.MonthlyContribution,
		*req.AnnualRatePercent,
		*req.HorizonMonths,
	)
	return xhttp.SuccessResponse(c, models.CalculateResponse{Evolution: evolution})
}

func (h *IndicatorsEchoHandler) Compare(c echo.Context) error {
	req := &models.SimulationRequest{}
	if verrs := xhttp.ReadAndValidateRequest(c, req); verrs != nil {
		return xhttp.BadRequestResponse(c, verrs)
	}

	bundle, stale, err := h.cache.Get(c.Request().Context())
	if err != nil {
		h.logger.Error("compare: indicators unavailable", xlogger.Error(err))
		return xhttp.AppErrorResponse(c,
			xhttp.BadGatewayError("could not fetch central bank indicators").WithError(err))
	}
	if stale {
		c.Response().Header().Set(staleHeader, "true")
	}

	project := func(annualRate float64) []models.ProjectionPoint {
		return h.engine.Project(*req.InitialBalance, *req.MonthlyContribution, annualRate, *req.HorizonMonths)
	}

	return xhttp.SuccessResponse(c, models.CompareResponse{
		User:          project(*req.AnnualRatePercent),
		PolicyRate:    project(bundle.PolicyRate.AnnualRate),
		InterbankRate: project(bundle.InterbankRate.AnnualRate),
		SavingsYield:  project(bundle.SavingsYield.AnnualRate),
	})
}
