package dto

import (
	"time"

	"github.com/finhaus/home_finance_app/internal/core/domain"
)

// BackupResponse defines the data returned for a backup archive.
type BackupResponse struct {
	BackupID  string    `json:"backupID"`
	FileName  string    `json:"fileName"`
	SizeBytes int64     `json:"sizeBytes"`
	Checksum  string    `json:"checksum"`
	Tables    []string  `json:"tables"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	CreatedBy string    `json:"createdBy"`
}

// ListBackupsResponse wraps the list of backups.
type ListBackupsResponse struct {
	Backups []BackupResponse `json:"backups"`
}

// VerifyBackupResponse reports the outcome of a verification run.
type VerifyBackupResponse struct {
	BackupID string `json:"backupID"`
	Valid    bool   `json:"valid"`
	Status   string `json:"status"`
}

// UpdateBackupScheduleRequest sets the cron schedule for unattended backups.
// CronSpec is validated against the robfig/cron standard parser.
type UpdateBackupScheduleRequest struct {
	CronSpec string `json:"cronSpec" binding:"required,cronspec"`
	Enabled  bool   `json:"enabled"`
}

// BackupScheduleResponse defines the data returned for the backup schedule.
type BackupScheduleResponse struct {
	CronSpec  string    `json:"cronSpec"`
	Enabled   bool      `json:"enabled"`
	UpdatedAt time.Time `json:"updatedAt"`
	UpdatedBy string    `json:"updatedBy"`
}

// ToBackupResponse converts a domain.Backup to its DTO
func ToBackupResponse(b *domain.Backup) BackupResponse {
	return BackupResponse{
		BackupID:  b.BackupID,
		FileName:  b.FileName,
		SizeBytes: b.SizeBytes,
		Checksum:  b.Checksum,
		Tables:    b.Tables,
		Status:    string(b.Status),
		CreatedAt: b.CreatedAt,
		CreatedBy: b.CreatedBy,
	}
}

// ToListBackupsResponse converts a slice of domain.Backup to the list DTO
func ToListBackupsResponse(backups []domain.Backup) ListBackupsResponse {
	res := make([]BackupResponse, len(backups))
	for i, b := range backups {
		res[i] = ToBackupResponse(&b)
	}
	return ListBackupsResponse{Backups: res}
}

// ToBackupScheduleResponse converts a domain.BackupSchedule to its DTO
func ToBackupScheduleResponse(s *domain.BackupSchedule) BackupScheduleResponse {
	return BackupScheduleResponse{
		CronSpec:  s.CronSpec,
		Enabled:   s.Enabled,
		UpdatedAt: s.UpdatedAt,
		UpdatedBy: s.UpdatedBy,
	}
}
