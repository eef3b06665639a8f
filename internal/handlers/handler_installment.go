package handlers

import (
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/finhaus/home_finance_app/internal/core/ports/services"
	"github.com/finhaus/home_finance_app/internal/dto"
	"github.com/finhaus/home_finance_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// installmentHandler handles HTTP requests related to installment plans.
type installmentHandler struct {
	installmentService portssvc.InstallmentSvcFacade
}

func newInstallmentHandler(is portssvc.InstallmentSvcFacade) *installmentHandler {
	return &installmentHandler{installmentService: is}
}

// registerInstallmentRoutes registers routes related to installment plans.
func registerInstallmentRoutes(rg *gin.RouterGroup, installmentService portssvc.InstallmentSvcFacade) {
	h := newInstallmentHandler(installmentService)

	installments := rg.Group("/installments")
	{
		installments.POST("", h.createInstallment)
		installments.GET("", h.listInstallments)
		installments.GET("/:id", h.getInstallment)
		installments.PATCH("/:id", h.updateInstallment)
		installments.DELETE("/:id", h.deleteInstallment)
		installments.POST("/:id/mark-paid", h.markPaid)
		installments.GET("/:id/payments", h.listPayments)
	}
}

// createInstallment godoc
// @Summary Create an installment plan
// @Description Creates a plan. The monthly amount is derived from the total when omitted.
// @Tags installments
// @Accept json
// @Produce json
// @Param plan body dto.CreateInstallmentRequest true "Plan details"
// @Success 201 {object} dto.InstallmentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /installments [post]
func (h *installmentHandler) createInstallment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateInstallmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateInstallment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	installment, err := h.installmentService.CreateInstallment(c.Request.Context(), req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create installment")
		return
	}

	c.JSON(http.StatusCreated, dto.ToInstallmentResponse(installment, time.Now()))
}

// listInstallments godoc
// @Summary List installment plans
// @Tags installments
// @Produce json
// @Param status query string false "Filter by status" Enums(PENDING, ACTIVE, COMPLETED, OVERDUE)
// @Param limit query int false "Page size" default(50)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {object} dto.ListInstallmentsResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /installments [get]
func (h *installmentHandler) listInstallments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListInstallmentsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	installments, err := h.installmentService.ListInstallments(c.Request.Context(), params)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list installments")
		return
	}

	c.JSON(http.StatusOK, dto.ToListInstallmentsResponse(installments, time.Now()))
}

// getInstallment godoc
// @Summary Get an installment plan by ID
// @Description Returns the plan with its server-computed progress view-model.
// @Tags installments
// @Produce json
// @Param id path string true "Installment ID"
// @Success 200 {object} dto.InstallmentResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /installments/{id} [get]
func (h *installmentHandler) getInstallment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	installment, err := h.installmentService.GetInstallmentByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve installment")
		return
	}

	c.JSON(http.StatusOK, dto.ToInstallmentResponse(installment, time.Now()))
}

// updateInstallment godoc
// @Summary Update an installment plan
// @Tags installments
// @Accept json
// @Produce json
// @Param id path string true "Installment ID"
// @Param plan body dto.UpdateInstallmentRequest true "Fields to update"
// @Success 200 {object} dto.InstallmentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /installments/{id} [patch]
func (h *installmentHandler) updateInstallment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpdateInstallmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	installment, err := h.installmentService.UpdateInstallment(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update installment")
		return
	}

	c.JSON(http.StatusOK, dto.ToInstallmentResponse(installment, time.Now()))
}

// deleteInstallment godoc
// @Summary Delete an installment plan
// @Description Deletes the plan and its payment history.
// @Tags installments
// @Produce json
// @Param id path string true "Installment ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /installments/{id} [delete]
func (h *installmentHandler) deleteInstallment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.installmentService.DeleteInstallment(c.Request.Context(), c.Param("id"), userID); err != nil {
		respondServiceError(c, logger, err, "Failed to delete installment")
		return
	}

	c.Status(http.StatusNoContent)
}

// markPaid godoc
// @Summary Record the next payment of a plan
// @Description Increments the paid counter and records the payment. Completed plans are rejected.
// @Tags installments
// @Produce json
// @Param id path string true "Installment ID"
// @Success 200 {object} dto.InstallmentResponse
// @Failure 400 {object} ErrorResponse "Plan already completed"
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /installments/{id}/mark-paid [post]
func (h *installmentHandler) markPaid(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	installment, err := h.installmentService.MarkPaid(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to record payment")
		return
	}

	c.JSON(http.StatusOK, dto.ToInstallmentResponse(installment, time.Now()))
}

// listPayments godoc
// @Summary List the payment history of a plan
// @Tags installments
// @Produce json
// @Param id path string true "Installment ID"
// @Success 200 {object} dto.ListInstallmentPaymentsResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /installments/{id}/payments [get]
func (h *installmentHandler) listPayments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	payments, err := h.installmentService.ListPayments(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list payments")
		return
	}

	c.JSON(http.StatusOK, dto.ToListInstallmentPaymentsResponse(payments))
}
