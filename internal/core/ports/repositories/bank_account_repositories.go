package repositories

import (
	"context"
	"time"

	"github.com/finhaus/home_finance_app/internal/core/domain"
)

// BankAccountRepository defines persistence operations for bank accounts.
type BankAccountRepository interface {
	SaveBankAccount(ctx context.Context, account domain.BankAccount) error
	FindBankAccountByID(ctx context.Context, accountID string) (*domain.BankAccount, error)
	ListBankAccounts(ctx context.Context, includeInactive bool, limit int, offset int) ([]domain.BankAccount, error)
	UpdateBankAccount(ctx context.Context, account domain.BankAccount) error
	DeactivateBankAccount(ctx context.Context, accountID string, userID string, now time.Time) error
}
