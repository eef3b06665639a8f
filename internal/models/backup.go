package models

import "time"

// Backup represents a backup archive row. Tables is stored as a
// comma-separated list.
type Backup struct {
	BackupID  string    `db:"backup_id"`
	FileName  string    `db:"file_name"`
	SizeBytes int64     `db:"size_bytes"`
	Checksum  string    `db:"checksum"`
	Tables    string    `db:"tables"`
	Status    string    `db:"status"`
	CreatedAt time.Time `db:"created_at"`
	CreatedBy string    `db:"created_by"`
}

// BackupSchedule represents the single-row backup schedule.
type BackupSchedule struct {
	ID        int       `db:"id"` // Always 1
	CronSpec  string    `db:"cron_spec"`
	Enabled   bool      `db:"enabled"`
	UpdatedAt time.Time `db:"updated_at"`
	UpdatedBy string    `db:"updated_by"`
}
