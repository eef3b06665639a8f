package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/finhaus/home_finance_app/internal/apperrors"
	portssvc "github.com/finhaus/home_finance_app/internal/core/ports/services"
	"github.com/finhaus/home_finance_app/internal/dto"
	"github.com/finhaus/home_finance_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// balanceHandler handles HTTP requests related to the balance history.
type balanceHandler struct {
	balanceService portssvc.BalanceSvcFacade
}

func newBalanceHandler(bs portssvc.BalanceSvcFacade) *balanceHandler {
	return &balanceHandler{balanceService: bs}
}

// registerBalanceRoutes registers routes related to the balance history.
func registerBalanceRoutes(rg *gin.RouterGroup, balanceService portssvc.BalanceSvcFacade) {
	h := newBalanceHandler(balanceService)

	balance := rg.Group("/balance")
	{
		balance.POST("", h.appendEntry)
		balance.GET("/current", h.getCurrent)
		balance.GET("/history", h.listHistory)
		balance.GET("/trend", h.getTrend)
		balance.GET("/chart", h.getChart)
	}
}

// appendEntry godoc
// @Summary Record a balance reading
// @Description Appends a new row to the balance history. The history is append-only.
// @Tags balance
// @Accept json
// @Produce json
// @Param entry body dto.CreateBalanceEntryRequest true "Balance reading"
// @Success 201 {object} dto.BalanceEntryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /balance [post]
func (h *balanceHandler) appendEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateBalanceEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AppendBalanceEntry", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	entry, err := h.balanceService.AppendBalanceEntry(c.Request.Context(), req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to record balance entry")
		return
	}

	c.JSON(http.StatusCreated, dto.ToBalanceEntryResponse(entry))
}

// getCurrent godoc
// @Summary Get the current balance
// @Description Returns the most recent reading, by effective date with creation time as tie-break.
// @Tags balance
// @Produce json
// @Param accountID query string false "Account ID; empty for the household total"
// @Success 200 {object} dto.BalanceEntryResponse
// @Failure 404 {object} ErrorResponse "No readings recorded yet"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /balance/current [get]
func (h *balanceHandler) getCurrent(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	entry, err := h.balanceService.GetCurrentBalance(c.Request.Context(), c.Query("accountID"))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "No balance recorded yet"})
			return
		}
		respondServiceError(c, logger, err, "Failed to retrieve current balance")
		return
	}

	c.JSON(http.StatusOK, dto.ToBalanceEntryResponse(entry))
}

// listHistory godoc
// @Summary List the balance history
// @Description Returns history rows newest first, with cursor pagination.
// @Tags balance
// @Produce json
// @Param accountID query string false "Account ID; empty for the household total"
// @Param limit query int false "Page size" default(50)
// @Param nextToken query string false "Cursor from a previous page"
// @Success 200 {object} dto.ListBalanceHistoryResponse
// @Failure 400 {object} ErrorResponse "Invalid pagination token"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /balance/history [get]
func (h *balanceHandler) listHistory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListBalanceHistoryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	res, err := h.balanceService.ListBalanceHistory(c.Request.Context(), params)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list balance history")
		return
	}

	c.JSON(http.StatusOK, res)
}

// getTrend godoc
// @Summary Get the balance trend
// @Description Compares the two most recent readings.
// @Tags balance
// @Produce json
// @Param accountID query string false "Account ID; empty for the household total"
// @Success 200 {object} dto.BalanceTrendResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /balance/trend [get]
func (h *balanceHandler) getTrend(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	trend, err := h.balanceService.GetBalanceTrend(c.Request.Context(), c.Query("accountID"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to compute balance trend")
		return
	}

	c.JSON(http.StatusOK, dto.ToBalanceTrendResponse(trend))
}

// getChart godoc
// @Summary Get the balance chart series
// @Description Returns recent readings shaped for plotting, including the zero-crossing gradient offset.
// @Tags balance
// @Produce json
// @Param accountID query string false "Account ID; empty for the household total"
// @Success 200 {object} dto.BalanceChartResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /balance/chart [get]
func (h *balanceHandler) getChart(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	series, err := h.balanceService.GetBalanceChart(c.Request.Context(), c.Query("accountID"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to build balance chart")
		return
	}

	c.JSON(http.StatusOK, dto.ToBalanceChartResponse(series))
}
