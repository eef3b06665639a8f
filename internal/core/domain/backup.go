package domain

import "time"

// BackupStatus is the verification state of a backup archive.
type BackupStatus string

const (
	BackupCompleted BackupStatus = "COMPLETED"
	BackupCorrupt   BackupStatus = "CORRUPT"
)

// Backup describes one snapshot archive written to the backup directory.
type Backup struct {
	BackupID  string       `json:"backupID"` // Primary Key (e.g., UUID)
	FileName  string       `json:"fileName"`
	SizeBytes int64        `json:"sizeBytes"`
	Checksum  string       `json:"checksum"` // sha256 of the archive, hex encoded
	Tables    []string     `json:"tables"`
	Status    BackupStatus `json:"status"`
	CreatedAt time.Time    `json:"createdAt"`
	CreatedBy string       `json:"createdBy"` // UserID or "scheduler"
}

// BackupSchedule is the single cron schedule driving unattended backups.
type BackupSchedule struct {
	CronSpec  string    `json:"cronSpec"` // robfig/cron format, e.g. "0 3 * * *"
	Enabled   bool      `json:"enabled"`
	UpdatedAt time.Time `json:"updatedAt"`
	UpdatedBy string    `json:"updatedBy"`
}
