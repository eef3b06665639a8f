package repositories

import (
	"context"
	"encoding/json"

	"github.com/finhaus/home_finance_app/internal/core/domain"
)

// BackupRepository defines persistence operations for backup records, the
// backup schedule, and raw table export used to build snapshot archives.
type BackupRepository interface {
	SaveBackup(ctx context.Context, backup domain.Backup) error
	FindBackupByID(ctx context.Context, backupID string) (*domain.Backup, error)
	ListBackups(ctx context.Context) ([]domain.Backup, error)
	UpdateBackupStatus(ctx context.Context, backupID string, status domain.BackupStatus) error
	DeleteBackup(ctx context.Context, backupID string) error

	GetSchedule(ctx context.Context) (*domain.BackupSchedule, error)
	SaveSchedule(ctx context.Context, schedule domain.BackupSchedule) error

	// ExportTable dumps every row of the named table as a JSON array.
	// Only tables named by the backup service are ever passed in.
	ExportTable(ctx context.Context, table string) (json.RawMessage, error)
}
