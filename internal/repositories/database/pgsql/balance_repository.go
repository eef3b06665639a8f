package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/finhaus/home_finance_app/internal/apperrors"
	"github.com/finhaus/home_finance_app/internal/core/domain"
	portsrepo "github.com/finhaus/home_finance_app/internal/core/ports/repositories"
	"github.com/finhaus/home_finance_app/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxBalanceRepository struct {
	db *pgxpool.Pool
}

func newPgxBalanceRepository(db *pgxpool.Pool) portsrepo.BalanceRepository {
	return &PgxBalanceRepository{db: db}
}

// Ensure PgxBalanceRepository implements portsrepo.BalanceRepository
var _ portsrepo.BalanceRepository = (*PgxBalanceRepository)(nil)

func toDomainBalanceEntry(m models.BalanceEntry) domain.BalanceEntry {
	return domain.BalanceEntry{
		EntryID:       m.EntryID,
		AccountID:     m.AccountID,
		Balance:       m.Balance,
		EffectiveDate: m.EffectiveDate,
		Notes:         m.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

func scanBalanceEntryRow(row pgx.Row, m *models.BalanceEntry) error {
	return row.Scan(
		&m.EntryID,
		&m.AccountID,
		&m.Balance,
		&m.EffectiveDate,
		&m.Notes,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
}

// account_id is NULL for household-total entries; it travels as an empty
// string in the domain.
const balanceEntryColumns = `entry_id, COALESCE(account_id, ''), balance, effective_date, notes, created_at, created_by, last_updated_at, last_updated_by`

func (r *PgxBalanceRepository) SaveBalanceEntry(ctx context.Context, entry domain.BalanceEntry) error {
	query := `
        INSERT INTO balance_entries (entry_id, account_id, balance, effective_date, notes, created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, NULLIF($2, ''), $3, $4, $5, $6, $7, $8, $9);
    `
	_, err := r.db.Exec(ctx, query,
		entry.EntryID,
		entry.AccountID,
		entry.Balance,
		entry.EffectiveDate,
		entry.Notes,
		entry.CreatedAt,
		entry.CreatedBy,
		entry.LastUpdatedAt,
		entry.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save balance entry: %w", err)
	}
	return nil
}

func (r *PgxBalanceRepository) FindLatestEntry(ctx context.Context, accountID string) (*domain.BalanceEntry, error) {
	query := `
        SELECT ` + balanceEntryColumns + `
        FROM balance_entries
        WHERE ($1 = '' AND account_id IS NULL) OR account_id = NULLIF($1, '')
        ORDER BY effective_date DESC, created_at DESC
        LIMIT 1;
    `
	var m models.BalanceEntry
	if err := scanBalanceEntryRow(r.db.QueryRow(ctx, query, accountID), &m); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find latest balance entry: %w", err)
	}
	entry := toDomainBalanceEntry(m)
	return &entry, nil
}

func (r *PgxBalanceRepository) ListBalanceHistory(ctx context.Context, accountID string, before time.Time, beforeCreated time.Time, limit int) ([]domain.BalanceEntry, error) {
	if limit <= 0 {
		limit = 50
	}

	// Compound keyset comparison matches the ORDER BY, so entries sharing an
	// effective_date paginate without gaps.
	query := `
        SELECT ` + balanceEntryColumns + `
        FROM balance_entries
        WHERE (($1 = '' AND account_id IS NULL) OR account_id = NULLIF($1, ''))
          AND ($2::timestamptz IS NULL OR (effective_date, created_at) < ($2, $3))
        ORDER BY effective_date DESC, created_at DESC
        LIMIT $4;
    `
	var cursorDate, cursorCreated *time.Time
	if !before.IsZero() {
		cursorDate = &before
		cursorCreated = &beforeCreated
	}
	rows, err := r.db.Query(ctx, query, accountID, cursorDate, cursorCreated, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query balance history: %w", err)
	}
	defer rows.Close()

	return collectBalanceEntries(rows)
}

func (r *PgxBalanceRepository) ListRecentEntries(ctx context.Context, accountID string, limit int) ([]domain.BalanceEntry, error) {
	if limit <= 0 {
		limit = 50
	}

	query := `
        SELECT ` + balanceEntryColumns + `
        FROM balance_entries
        WHERE ($1 = '' AND account_id IS NULL) OR account_id = NULLIF($1, '')
        ORDER BY effective_date DESC, created_at DESC
        LIMIT $2;
    `
	rows, err := r.db.Query(ctx, query, accountID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent balance entries: %w", err)
	}
	defer rows.Close()

	return collectBalanceEntries(rows)
}

func collectBalanceEntries(rows pgx.Rows) ([]domain.BalanceEntry, error) {
	entries := []domain.BalanceEntry{}
	for rows.Next() {
		var m models.BalanceEntry
		if err := scanBalanceEntryRow(rows, &m); err != nil {
			return nil, fmt.Errorf("failed to scan balance entry row: %w", err)
		}
		entries = append(entries, toDomainBalanceEntry(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating balance entry rows: %w", rows.Err())
	}
	return entries, nil
}
