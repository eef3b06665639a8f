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

type PgxBankAccountRepository struct {
	db *pgxpool.Pool
}

func newPgxBankAccountRepository(db *pgxpool.Pool) portsrepo.BankAccountRepository {
	return &PgxBankAccountRepository{db: db}
}

// Ensure PgxBankAccountRepository implements portsrepo.BankAccountRepository
var _ portsrepo.BankAccountRepository = (*PgxBankAccountRepository)(nil)

func toModelBankAccount(d domain.BankAccount) models.BankAccount {
	return models.BankAccount{
		AccountID:      d.AccountID,
		Name:           d.Name,
		Institution:    d.Institution,
		AccountType:    models.BankAccountType(d.AccountType),
		OverdraftLimit: d.OverdraftLimit,
		Notes:          d.Notes,
		IsActive:       d.IsActive,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

func toDomainBankAccount(m models.BankAccount) domain.BankAccount {
	return domain.BankAccount{
		AccountID:      m.AccountID,
		Name:           m.Name,
		Institution:    m.Institution,
		AccountType:    domain.BankAccountType(m.AccountType),
		OverdraftLimit: m.OverdraftLimit,
		Notes:          m.Notes,
		IsActive:       m.IsActive,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

func scanBankAccountRow(row pgx.Row, m *models.BankAccount) error {
	return row.Scan(
		&m.AccountID,
		&m.Name,
		&m.Institution,
		&m.AccountType,
		&m.OverdraftLimit,
		&m.Notes,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
}

const bankAccountColumns = `account_id, name, institution, account_type, overdraft_limit, notes, is_active, created_at, created_by, last_updated_at, last_updated_by`

func (r *PgxBankAccountRepository) SaveBankAccount(ctx context.Context, account domain.BankAccount) error {
	m := toModelBankAccount(account)
	query := `
        INSERT INTO bank_accounts (account_id, name, institution, account_type, overdraft_limit, notes, is_active, created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
    `
	_, err := r.db.Exec(ctx, query,
		m.AccountID,
		m.Name,
		m.Institution,
		m.AccountType,
		m.OverdraftLimit,
		m.Notes,
		m.IsActive,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save bank account: %w", err)
	}
	return nil
}

func (r *PgxBankAccountRepository) FindBankAccountByID(ctx context.Context, accountID string) (*domain.BankAccount, error) {
	query := `SELECT ` + bankAccountColumns + ` FROM bank_accounts WHERE account_id = $1;`
	var m models.BankAccount
	if err := scanBankAccountRow(r.db.QueryRow(ctx, query, accountID), &m); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find bank account %s: %w", accountID, err)
	}
	account := toDomainBankAccount(m)
	return &account, nil
}

func (r *PgxBankAccountRepository) ListBankAccounts(ctx context.Context, includeInactive bool, limit int, offset int) ([]domain.BankAccount, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	query := `
        SELECT ` + bankAccountColumns + `
        FROM bank_accounts
        WHERE ($1 OR is_active)
        ORDER BY name ASC
        LIMIT $2 OFFSET $3;
    `
	rows, err := r.db.Query(ctx, query, includeInactive, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query bank accounts: %w", err)
	}
	defer rows.Close()

	accounts := []domain.BankAccount{}
	for rows.Next() {
		var m models.BankAccount
		if err := scanBankAccountRow(rows, &m); err != nil {
			return nil, fmt.Errorf("failed to scan bank account row: %w", err)
		}
		accounts = append(accounts, toDomainBankAccount(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating bank account rows: %w", rows.Err())
	}
	return accounts, nil
}

func (r *PgxBankAccountRepository) UpdateBankAccount(ctx context.Context, account domain.BankAccount) error {
	m := toModelBankAccount(account)
	query := `
        UPDATE bank_accounts
        SET name = $2, institution = $3, overdraft_limit = $4, notes = $5, last_updated_at = $6, last_updated_by = $7
        WHERE account_id = $1;
    `
	tag, err := r.db.Exec(ctx, query,
		m.AccountID,
		m.Name,
		m.Institution,
		m.OverdraftLimit,
		m.Notes,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update bank account %s: %w", account.AccountID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxBankAccountRepository) DeactivateBankAccount(ctx context.Context, accountID string, userID string, now time.Time) error {
	query := `
        UPDATE bank_accounts
        SET is_active = FALSE, last_updated_at = $2, last_updated_by = $3
        WHERE account_id = $1 AND is_active;
    `
	tag, err := r.db.Exec(ctx, query, accountID, now, userID)
	if err != nil {
		return fmt.Errorf("failed to deactivate bank account %s: %w", accountID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
