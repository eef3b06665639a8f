package services

import (
	"context"

	"github.com/finhaus/home_finance_app/internal/core/domain"
	"github.com/finhaus/home_finance_app/internal/dto"
)

// BankAccountSvcFacade defines the service operations for bank accounts.
type BankAccountSvcFacade interface {
	CreateBankAccount(ctx context.Context, req dto.CreateBankAccountRequest, userID string) (*domain.BankAccount, error)
	GetBankAccountByID(ctx context.Context, accountID string) (*domain.BankAccount, error)
	ListBankAccounts(ctx context.Context, params dto.ListBankAccountsParams) ([]domain.BankAccount, error)
	UpdateBankAccount(ctx context.Context, accountID string, req dto.UpdateBankAccountRequest, userID string) (*domain.BankAccount, error)
	DeactivateBankAccount(ctx context.Context, accountID string, userID string) error
	// RecordBalance is the balance-update sub-action: it appends a balance
	// entry bound to the account.
	RecordBalance(ctx context.Context, accountID string, req dto.CreateBalanceEntryRequest, userID string) (*domain.BalanceEntry, error)
}
