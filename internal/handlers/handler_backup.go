package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/finhaus/home_finance_app/internal/core/ports/services"
	"github.com/finhaus/home_finance_app/internal/dto"
	"github.com/finhaus/home_finance_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// backupHandler handles HTTP requests related to backups.
type backupHandler struct {
	backupService portssvc.BackupSvcFacade
}

func newBackupHandler(bs portssvc.BackupSvcFacade) *backupHandler {
	return &backupHandler{backupService: bs}
}

// registerBackupRoutes registers backup routes. Reads are open to all
// members; everything that mutates or triggers work is admin-only.
func registerBackupRoutes(rg *gin.RouterGroup, backupService portssvc.BackupSvcFacade) {
	h := newBackupHandler(backupService)

	backups := rg.Group("/backups")
	{
		backups.GET("", h.listBackups)
		backups.GET("/:id", h.getBackup)
		backups.POST("", middleware.RequireAdmin(), h.createBackup)
		backups.DELETE("/:id", middleware.RequireAdmin(), h.deleteBackup)
		backups.POST("/:id/verify", middleware.RequireAdmin(), h.verifyBackup)
		backups.GET("/schedule", h.getSchedule)
		backups.PUT("/schedule", middleware.RequireAdmin(), h.updateSchedule)
	}
}

// createBackup godoc
// @Summary Create a backup
// @Description Exports all tables into a checksummed archive (admin only).
// @Tags backups
// @Produce json
// @Success 201 {object} dto.BackupResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /backups [post]
func (h *backupHandler) createBackup(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	backup, err := h.backupService.CreateBackup(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create backup")
		return
	}

	c.JSON(http.StatusCreated, dto.ToBackupResponse(backup))
}

// listBackups godoc
// @Summary List backups
// @Tags backups
// @Produce json
// @Success 200 {object} dto.ListBackupsResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /backups [get]
func (h *backupHandler) listBackups(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	backups, err := h.backupService.ListBackups(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list backups")
		return
	}

	c.JSON(http.StatusOK, dto.ToListBackupsResponse(backups))
}

// getBackup godoc
// @Summary Get a backup by ID
// @Tags backups
// @Produce json
// @Param id path string true "Backup ID"
// @Success 200 {object} dto.BackupResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /backups/{id} [get]
func (h *backupHandler) getBackup(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	backup, err := h.backupService.GetBackupByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve backup")
		return
	}

	c.JSON(http.StatusOK, dto.ToBackupResponse(backup))
}

// deleteBackup godoc
// @Summary Delete a backup
// @Description Deletes the backup record and its archive file (admin only).
// @Tags backups
// @Produce json
// @Param id path string true "Backup ID"
// @Success 204 "No Content"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /backups/{id} [delete]
func (h *backupHandler) deleteBackup(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.backupService.DeleteBackup(c.Request.Context(), c.Param("id"), userID); err != nil {
		respondServiceError(c, logger, err, "Failed to delete backup")
		return
	}

	c.Status(http.StatusNoContent)
}

// verifyBackup godoc
// @Summary Verify a backup archive
// @Description Recomputes the archive checksum. A mismatch marks the backup corrupt (admin only).
// @Tags backups
// @Produce json
// @Param id path string true "Backup ID"
// @Success 200 {object} dto.VerifyBackupResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /backups/{id}/verify [post]
func (h *backupHandler) verifyBackup(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	valid, backup, err := h.backupService.VerifyBackup(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to verify backup")
		return
	}

	c.JSON(http.StatusOK, dto.VerifyBackupResponse{
		BackupID: backup.BackupID,
		Valid:    valid,
		Status:   string(backup.Status),
	})
}

// getSchedule godoc
// @Summary Get the backup schedule
// @Tags backups
// @Produce json
// @Success 200 {object} dto.BackupScheduleResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /backups/schedule [get]
func (h *backupHandler) getSchedule(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	schedule, err := h.backupService.GetSchedule(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve backup schedule")
		return
	}

	c.JSON(http.StatusOK, dto.ToBackupScheduleResponse(schedule))
}

// updateSchedule godoc
// @Summary Update the backup schedule
// @Description Sets the cron schedule for unattended backups (admin only).
// @Tags backups
// @Accept json
// @Produce json
// @Param schedule body dto.UpdateBackupScheduleRequest true "Schedule"
// @Success 200 {object} dto.BackupScheduleResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /backups/schedule [put]
func (h *backupHandler) updateSchedule(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpdateBackupScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateBackupSchedule", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	schedule, err := h.backupService.UpdateSchedule(c.Request.Context(), req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update backup schedule")
		return
	}

	c.JSON(http.StatusOK, dto.ToBackupScheduleResponse(schedule))
}
