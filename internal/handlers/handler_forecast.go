package handlers

import (
	"net/http"

	portssvc "github.com/finhaus/home_finance_app/internal/core/ports/services"
	"github.com/finhaus/home_finance_app/internal/dto"
	"github.com/finhaus/home_finance_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// forecastHandler handles the cash-flow forecast request.
type forecastHandler struct {
	forecastService portssvc.ForecastSvcFacade
}

func newForecastHandler(fs portssvc.ForecastSvcFacade) *forecastHandler {
	return &forecastHandler{forecastService: fs}
}

// registerForecastRoutes registers the forecast route.
func registerForecastRoutes(rg *gin.RouterGroup, forecastService portssvc.ForecastSvcFacade) {
	h := newForecastHandler(forecastService)

	rg.GET("/forecast", h.forecast)
}

// forecast godoc
// @Summary Project household cash flow
// @Description Projects income, fixed expenses and installment outflow month by month from the current balance.
// @Tags forecast
// @Produce json
// @Param months query int false "Months to project (1-60)" default(12)
// @Success 200 {object} dto.ForecastResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /forecast [get]
func (h *forecastHandler) forecast(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ForecastParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	res, err := h.forecastService.Forecast(c.Request.Context(), params)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to build forecast")
		return
	}

	c.JSON(http.StatusOK, res)
}
