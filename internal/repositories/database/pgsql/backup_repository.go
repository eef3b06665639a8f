package pgsql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/finhaus/home_finance_app/internal/apperrors"
	"github.com/finhaus/home_finance_app/internal/core/domain"
	portsrepo "github.com/finhaus/home_finance_app/internal/core/ports/repositories"
	"github.com/finhaus/home_finance_app/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// exportableTables whitelists table names accepted by ExportTable; the name
// is interpolated into the query and must never come from user input.
var exportableTables = map[string]struct{}{
	"users":                {},
	"bank_accounts":        {},
	"balance_entries":      {},
	"fixed_entries":        {},
	"installments":         {},
	"installment_payments": {},
	"categories":           {},
}

type PgxBackupRepository struct {
	db *pgxpool.Pool
}

func newPgxBackupRepository(db *pgxpool.Pool) portsrepo.BackupRepository {
	return &PgxBackupRepository{db: db}
}

// Ensure PgxBackupRepository implements portsrepo.BackupRepository
var _ portsrepo.BackupRepository = (*PgxBackupRepository)(nil)

func toDomainBackup(m models.Backup) domain.Backup {
	tables := []string{}
	if m.Tables != "" {
		tables = strings.Split(m.Tables, ",")
	}
	return domain.Backup{
		BackupID:  m.BackupID,
		FileName:  m.FileName,
		SizeBytes: m.SizeBytes,
		Checksum:  m.Checksum,
		Tables:    tables,
		Status:    domain.BackupStatus(m.Status),
		CreatedAt: m.CreatedAt,
		CreatedBy: m.CreatedBy,
	}
}

func scanBackupRow(row pgx.Row, m *models.Backup) error {
	return row.Scan(
		&m.BackupID,
		&m.FileName,
		&m.SizeBytes,
		&m.Checksum,
		&m.Tables,
		&m.Status,
		&m.CreatedAt,
		&m.CreatedBy,
	)
}

const backupColumns = `backup_id, file_name, size_bytes, checksum, tables, status, created_at, created_by`

func (r *PgxBackupRepository) SaveBackup(ctx context.Context, backup domain.Backup) error {
	query := `
        INSERT INTO backups (backup_id, file_name, size_bytes, checksum, tables, status, created_at, created_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
    `
	_, err := r.db.Exec(ctx, query,
		backup.BackupID,
		backup.FileName,
		backup.SizeBytes,
		backup.Checksum,
		strings.Join(backup.Tables, ","),
		string(backup.Status),
		backup.CreatedAt,
		backup.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save backup record: %w", err)
	}
	return nil
}

func (r *PgxBackupRepository) FindBackupByID(ctx context.Context, backupID string) (*domain.Backup, error) {
	query := `SELECT ` + backupColumns + ` FROM backups WHERE backup_id = $1;`
	var m models.Backup
	if err := scanBackupRow(r.db.QueryRow(ctx, query, backupID), &m); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find backup %s: %w", backupID, err)
	}
	backup := toDomainBackup(m)
	return &backup, nil
}

func (r *PgxBackupRepository) ListBackups(ctx context.Context) ([]domain.Backup, error) {
	query := `SELECT ` + backupColumns + ` FROM backups ORDER BY created_at DESC;`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query backups: %w", err)
	}
	defer rows.Close()

	backups := []domain.Backup{}
	for rows.Next() {
		var m models.Backup
		if err := scanBackupRow(rows, &m); err != nil {
			return nil, fmt.Errorf("failed to scan backup row: %w", err)
		}
		backups = append(backups, toDomainBackup(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating backup rows: %w", rows.Err())
	}
	return backups, nil
}

func (r *PgxBackupRepository) UpdateBackupStatus(ctx context.Context, backupID string, status domain.BackupStatus) error {
	tag, err := r.db.Exec(ctx, `UPDATE backups SET status = $2 WHERE backup_id = $1;`, backupID, string(status))
	if err != nil {
		return fmt.Errorf("failed to update backup status %s: %w", backupID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxBackupRepository) DeleteBackup(ctx context.Context, backupID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM backups WHERE backup_id = $1;`, backupID)
	if err != nil {
		return fmt.Errorf("failed to delete backup %s: %w", backupID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxBackupRepository) GetSchedule(ctx context.Context) (*domain.BackupSchedule, error) {
	query := `SELECT cron_spec, enabled, updated_at, updated_by FROM backup_schedule WHERE id = 1;`
	var m models.BackupSchedule
	err := r.db.QueryRow(ctx, query).Scan(&m.CronSpec, &m.Enabled, &m.UpdatedAt, &m.UpdatedBy)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to load backup schedule: %w", err)
	}
	return &domain.BackupSchedule{
		CronSpec:  m.CronSpec,
		Enabled:   m.Enabled,
		UpdatedAt: m.UpdatedAt,
		UpdatedBy: m.UpdatedBy,
	}, nil
}

func (r *PgxBackupRepository) SaveSchedule(ctx context.Context, schedule domain.BackupSchedule) error {
	query := `
        INSERT INTO backup_schedule (id, cron_spec, enabled, updated_at, updated_by)
        VALUES (1, $1, $2, $3, $4)
        ON CONFLICT (id) DO UPDATE SET
            cron_spec = EXCLUDED.cron_spec,
            enabled = EXCLUDED.enabled,
            updated_at = EXCLUDED.updated_at,
            updated_by = EXCLUDED.updated_by;
    `
	_, err := r.db.Exec(ctx, query,
		schedule.CronSpec,
		schedule.Enabled,
		schedule.UpdatedAt,
		schedule.UpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save backup schedule: %w", err)
	}
	return nil
}

func (r *PgxBackupRepository) ExportTable(ctx context.Context, table string) (json.RawMessage, error) {
	if _, ok := exportableTables[table]; !ok {
		return nil, fmt.Errorf("%w: table %s is not exportable", apperrors.ErrValidation, table)
	}

	query := fmt.Sprintf(`SELECT COALESCE(json_agg(t), '[]'::json) FROM %s t;`, table)
	var dump json.RawMessage
	if err := r.db.QueryRow(ctx, query).Scan(&dump); err != nil {
		return nil, fmt.Errorf("failed to export table %s: %w", table, err)
	}
	return dump, nil
}
