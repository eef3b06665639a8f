package services

import (
	"context"

	"github.com/finhaus/home_finance_app/internal/core/domain"
	"github.com/finhaus/home_finance_app/internal/dto"
)

// BackupSvcFacade defines the service operations for backups and their
// schedule.
type BackupSvcFacade interface {
	// CreateBackup exports all tables into a checksummed archive under the
	// configured backup directory. createdBy is a user ID or "scheduler".
	CreateBackup(ctx context.Context, createdBy string) (*domain.Backup, error)
	ListBackups(ctx context.Context) ([]domain.Backup, error)
	GetBackupByID(ctx context.Context, backupID string) (*domain.Backup, error)
	DeleteBackup(ctx context.Context, backupID string, userID string) error
	// VerifyBackup recomputes the archive checksum. A mismatch marks the
	// backup corrupt and triggers a notification when a mailer is configured.
	VerifyBackup(ctx context.Context, backupID string) (bool, *domain.Backup, error)

	GetSchedule(ctx context.Context) (*domain.BackupSchedule, error)
	UpdateSchedule(ctx context.Context, req dto.UpdateBackupScheduleRequest, userID string) (*domain.BackupSchedule, error)
}
