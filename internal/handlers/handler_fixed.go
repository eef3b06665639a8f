package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/finhaus/home_finance_app/internal/core/ports/services"
	"github.com/finhaus/home_finance_app/internal/dto"
	"github.com/finhaus/home_finance_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// fixedEntryHandler handles HTTP requests related to recurring entries.
type fixedEntryHandler struct {
	fixedService portssvc.FixedEntrySvcFacade
}

func newFixedEntryHandler(fs portssvc.FixedEntrySvcFacade) *fixedEntryHandler {
	return &fixedEntryHandler{fixedService: fs}
}

// registerFixedEntryRoutes registers routes related to recurring entries.
func registerFixedEntryRoutes(rg *gin.RouterGroup, fixedService portssvc.FixedEntrySvcFacade) {
	h := newFixedEntryHandler(fixedService)

	fixed := rg.Group("/fixed")
	{
		fixed.POST("", h.createFixedEntry)
		fixed.GET("", h.listFixedEntries)
		fixed.GET("/:id", h.getFixedEntry)
		fixed.PATCH("/:id", h.updateFixedEntry)
		fixed.DELETE("/:id", h.deleteFixedEntry)
		fixed.POST("/:id/pause", h.pauseFixedEntry)
		fixed.POST("/:id/resume", h.resumeFixedEntry)
	}
}

// createFixedEntry godoc
// @Summary Create a recurring entry
// @Tags fixed
// @Accept json
// @Produce json
// @Param entry body dto.CreateFixedEntryRequest true "Entry details"
// @Success 201 {object} dto.FixedEntryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /fixed [post]
func (h *fixedEntryHandler) createFixedEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateFixedEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateFixedEntry", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	entry, err := h.fixedService.CreateFixedEntry(c.Request.Context(), req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create fixed entry")
		return
	}

	c.JSON(http.StatusCreated, dto.ToFixedEntryResponse(entry))
}

// listFixedEntries godoc
// @Summary List recurring entries
// @Tags fixed
// @Produce json
// @Param includePaused query bool false "Include paused entries" default(true)
// @Param limit query int false "Page size" default(50)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {object} dto.ListFixedEntriesResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /fixed [get]
func (h *fixedEntryHandler) listFixedEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListFixedEntriesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	entries, err := h.fixedService.ListFixedEntries(c.Request.Context(), params)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list fixed entries")
		return
	}

	c.JSON(http.StatusOK, dto.ToListFixedEntriesResponse(entries))
}

// getFixedEntry godoc
// @Summary Get a recurring entry by ID
// @Tags fixed
// @Produce json
// @Param id path string true "Fixed Entry ID"
// @Success 200 {object} dto.FixedEntryResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /fixed/{id} [get]
func (h *fixedEntryHandler) getFixedEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	entry, err := h.fixedService.GetFixedEntryByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve fixed entry")
		return
	}

	c.JSON(http.StatusOK, dto.ToFixedEntryResponse(entry))
}

// updateFixedEntry godoc
// @Summary Update a recurring entry
// @Tags fixed
// @Accept json
// @Produce json
// @Param id path string true "Fixed Entry ID"
// @Param entry body dto.UpdateFixedEntryRequest true "Fields to update"
// @Success 200 {object} dto.FixedEntryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /fixed/{id} [patch]
func (h *fixedEntryHandler) updateFixedEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpdateFixedEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	entry, err := h.fixedService.UpdateFixedEntry(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update fixed entry")
		return
	}

	c.JSON(http.StatusOK, dto.ToFixedEntryResponse(entry))
}

// deleteFixedEntry godoc
// @Summary Delete a recurring entry
// @Tags fixed
// @Produce json
// @Param id path string true "Fixed Entry ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /fixed/{id} [delete]
func (h *fixedEntryHandler) deleteFixedEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.fixedService.DeleteFixedEntry(c.Request.Context(), c.Param("id"), userID); err != nil {
		respondServiceError(c, logger, err, "Failed to delete fixed entry")
		return
	}

	c.Status(http.StatusNoContent)
}

// pauseFixedEntry godoc
// @Summary Pause a recurring entry
// @Description Excludes the entry from forecasts without deleting it. Idempotent.
// @Tags fixed
// @Produce json
// @Param id path string true "Fixed Entry ID"
// @Success 200 {object} dto.FixedEntryResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /fixed/{id}/pause [post]
func (h *fixedEntryHandler) pauseFixedEntry(c *gin.Context) {
	h.toggleFixedEntry(c, false)
}

// resumeFixedEntry godoc
// @Summary Resume a paused recurring entry
// @Description Re-includes the entry in forecasts. Idempotent.
// @Tags fixed
// @Produce json
// @Param id path string true "Fixed Entry ID"
// @Success 200 {object} dto.FixedEntryResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /fixed/{id}/resume [post]
func (h *fixedEntryHandler) resumeFixedEntry(c *gin.Context) {
	h.toggleFixedEntry(c, true)
}

func (h *fixedEntryHandler) toggleFixedEntry(c *gin.Context, active bool) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	toggle := h.fixedService.PauseFixedEntry
	if active {
		toggle = h.fixedService.ResumeFixedEntry
	}

	entry, err := toggle(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to toggle fixed entry")
		return
	}

	c.JSON(http.StatusOK, dto.ToFixedEntryResponse(entry))
}
