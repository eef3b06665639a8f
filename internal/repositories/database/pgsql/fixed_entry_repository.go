package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/finhaus/home_finance_app/internal/apperrors"
	"github.com/finhaus/home_finance_app/internal/core/domain"
	portsrepo "github.com/finhaus/home_finance_app/internal/core/ports/repositories"
	"github.com/finhaus/home_finance_app/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxFixedEntryRepository struct {
	db *pgxpool.Pool
}

func newPgxFixedEntryRepository(db *pgxpool.Pool) portsrepo.FixedEntryRepository {
	return &PgxFixedEntryRepository{db: db}
}

// Ensure PgxFixedEntryRepository implements portsrepo.FixedEntryRepository
var _ portsrepo.FixedEntryRepository = (*PgxFixedEntryRepository)(nil)

func toModelFixedEntry(d domain.FixedEntry) models.FixedEntry {
	return models.FixedEntry{
		FixedID:    d.FixedID,
		Name:       d.Name,
		CategoryID: d.CategoryID,
		EntryType:  string(d.EntryType),
		Amount:     d.Amount,
		DayOfMonth: d.DayOfMonth,
		StartDate:  d.StartDate,
		EndDate:    d.EndDate,
		IsActive:   d.IsActive,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

func toDomainFixedEntry(m models.FixedEntry) domain.FixedEntry {
	return domain.FixedEntry{
		FixedID:    m.FixedID,
		Name:       m.Name,
		CategoryID: m.CategoryID,
		EntryType:  domain.EntryType(m.EntryType),
		Amount:     m.Amount,
		DayOfMonth: m.DayOfMonth,
		StartDate:  m.StartDate,
		EndDate:    m.EndDate,
		IsActive:   m.IsActive,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

func scanFixedEntryRow(row pgx.Row, m *models.FixedEntry) error {
	return row.Scan(
		&m.FixedID,
		&m.Name,
		&m.CategoryID,
		&m.EntryType,
		&m.Amount,
		&m.DayOfMonth,
		&m.StartDate,
		&m.EndDate,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
}

const fixedEntryColumns = `fixed_id, name, category_id, entry_type, amount, day_of_month, start_date, end_date, is_active, created_at, created_by, last_updated_at, last_updated_by`

func (r *PgxFixedEntryRepository) SaveFixedEntry(ctx context.Context, entry domain.FixedEntry) error {
	m := toModelFixedEntry(entry)
	query := `
        INSERT INTO fixed_entries (fixed_id, name, category_id, entry_type, amount, day_of_month, start_date, end_date, is_active, created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
    `
	_, err := r.db.Exec(ctx, query,
		m.FixedID,
		m.Name,
		m.CategoryID,
		m.EntryType,
		m.Amount,
		m.DayOfMonth,
		m.StartDate,
		m.EndDate,
		m.IsActive,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save fixed entry: %w", err)
	}
	return nil
}

func (r *PgxFixedEntryRepository) FindFixedEntryByID(ctx context.Context, fixedID string) (*domain.FixedEntry, error) {
	query := `SELECT ` + fixedEntryColumns + ` FROM fixed_entries WHERE fixed_id = $1;`
	var m models.FixedEntry
	if err := scanFixedEntryRow(r.db.QueryRow(ctx, query, fixedID), &m); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find fixed entry %s: %w", fixedID, err)
	}
	entry := toDomainFixedEntry(m)
	return &entry, nil
}

func (r *PgxFixedEntryRepository) ListFixedEntries(ctx context.Context, includePaused bool, limit int, offset int) ([]domain.FixedEntry, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	query := `
        SELECT ` + fixedEntryColumns + `
        FROM fixed_entries
        WHERE ($1 OR is_active)
        ORDER BY day_of_month ASC, name ASC
        LIMIT $2 OFFSET $3;
    `
	rows, err := r.db.Query(ctx, query, includePaused, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query fixed entries: %w", err)
	}
	defer rows.Close()

	entries := []domain.FixedEntry{}
	for rows.Next() {
		var m models.FixedEntry
		if err := scanFixedEntryRow(rows, &m); err != nil {
			return nil, fmt.Errorf("failed to scan fixed entry row: %w", err)
		}
		entries = append(entries, toDomainFixedEntry(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating fixed entry rows: %w", rows.Err())
	}
	return entries, nil
}

func (r *PgxFixedEntryRepository) UpdateFixedEntry(ctx context.Context, entry domain.FixedEntry) error {
	m := toModelFixedEntry(entry)
	query := `
        UPDATE fixed_entries
        SET name = $2, category_id = $3, amount = $4, day_of_month = $5, end_date = $6, is_active = $7, last_updated_at = $8, last_updated_by = $9
        WHERE fixed_id = $1;
    `
	tag, err := r.db.Exec(ctx, query,
		m.FixedID,
		m.Name,
		m.CategoryID,
		m.Amount,
		m.DayOfMonth,
		m.EndDate,
		m.IsActive,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update fixed entry %s: %w", entry.FixedID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxFixedEntryRepository) DeleteFixedEntry(ctx context.Context, fixedID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM fixed_entries WHERE fixed_id = $1;`, fixedID)
	if err != nil {
		return fmt.Errorf("failed to delete fixed entry %s: %w", fixedID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
