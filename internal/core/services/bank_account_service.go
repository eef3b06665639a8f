package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/finhaus/home_finance_app/internal/apperrors"
	"github.com/finhaus/home_finance_app/internal/core/domain"
	portsrepo "github.com/finhaus/home_finance_app/internal/core/ports/repositories"
	portssvc "github.com/finhaus/home_finance_app/internal/core/ports/services"
	"github.com/finhaus/home_finance_app/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// bankAccountServiceImpl implements the BankAccountSvcFacade interface
type bankAccountServiceImpl struct {
	BaseService
	accountRepo portsrepo.BankAccountRepository
	balanceRepo portsrepo.BalanceRepository
}

// NewBankAccountService creates a new bank account service.
func NewBankAccountService(accountRepo portsrepo.BankAccountRepository, balanceRepo portsrepo.BalanceRepository) portssvc.BankAccountSvcFacade {
	return &bankAccountServiceImpl{accountRepo: accountRepo, balanceRepo: balanceRepo}
}

// Ensure bankAccountServiceImpl implements the BankAccountSvcFacade interface
var _ portssvc.BankAccountSvcFacade = (*bankAccountServiceImpl)(nil)

// parseOverdraftLimit validates the overdraft limit field: optional, decimal,
// never negative.
func parseOverdraftLimit(value string) (decimal.Decimal, error) {
	if value == "" {
		return decimal.Zero, nil
	}
	limit, err := parseAmount("overdraftLimit", value)
	if err != nil {
		return decimal.Zero, err
	}
	if limit.Sign() < 0 {
		return decimal.Zero, fmt.Errorf("%w: overdraftLimit must be >= 0", apperrors.ErrValidation)
	}
	return limit, nil
}

func (s *bankAccountServiceImpl) CreateBankAccount(ctx context.Context, req dto.CreateBankAccountRequest, userID string) (*domain.BankAccount, error) {
	limit, err := parseOverdraftLimit(req.OverdraftLimit)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	account := domain.BankAccount{
		AccountID:      uuid.NewString(),
		Name:           req.Name,
		Institution:    req.Institution,
		AccountType:    domain.BankAccountType(req.AccountType),
		OverdraftLimit: limit,
		Notes:          req.Notes,
		IsActive:       true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.accountRepo.SaveBankAccount(ctx, account); err != nil {
		s.LogError(ctx, err, "Failed to save bank account", slog.String("account_id", account.AccountID))
		return nil, err
	}

	s.LogInfo(ctx, "Bank account created successfully", slog.String("account_id", account.AccountID))
	return &account, nil
}

func (s *bankAccountServiceImpl) GetBankAccountByID(ctx context.Context, accountID string) (*domain.BankAccount, error) {
	account, err := s.accountRepo.FindBankAccountByID(ctx, accountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find bank account", slog.String("account_id", accountID))
		}
		return nil, err
	}
	return account, nil
}

func (s *bankAccountServiceImpl) ListBankAccounts(ctx context.Context, params dto.ListBankAccountsParams) ([]domain.BankAccount, error) {
	accounts, err := s.accountRepo.ListBankAccounts(ctx, params.IncludeInactive, params.Limit, params.Offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list bank accounts")
		return nil, fmt.Errorf("failed to list bank accounts: %w", err)
	}
	if accounts == nil {
		return []domain.BankAccount{}, nil
	}
	return accounts, nil
}

func (s *bankAccountServiceImpl) UpdateBankAccount(ctx context.Context, accountID string, req dto.UpdateBankAccountRequest, userID string) (*domain.BankAccount, error) {
	account, err := s.accountRepo.FindBankAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		account.Name = *req.Name
	}
	if req.Institution != nil {
		account.Institution = *req.Institution
	}
	if req.OverdraftLimit != nil {
		limit, err := parseOverdraftLimit(*req.OverdraftLimit)
		if err != nil {
			return nil, err
		}
		account.OverdraftLimit = limit
	}
	if req.Notes != nil {
		account.Notes = *req.Notes
	}

	account.LastUpdatedAt = time.Now()
	account.LastUpdatedBy = userID

	if err := s.accountRepo.UpdateBankAccount(ctx, *account); err != nil {
		s.LogError(ctx, err, "Failed to update bank account", slog.String("account_id", accountID))
		return nil, err
	}

	s.LogInfo(ctx, "Bank account updated successfully", slog.String("account_id", accountID))
	return account, nil
}

func (s *bankAccountServiceImpl) DeactivateBankAccount(ctx context.Context, accountID string, userID string) error {
	if err := s.accountRepo.DeactivateBankAccount(ctx, accountID, userID, time.Now()); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to deactivate bank account", slog.String("account_id", accountID))
		}
		return err
	}
	s.LogInfo(ctx, "Bank account deactivated", slog.String("account_id", accountID))
	return nil
}

// RecordBalance appends a balance entry bound to the account. The account
// must exist and be active.
func (s *bankAccountServiceImpl) RecordBalance(ctx context.Context, accountID string, req dto.CreateBalanceEntryRequest, userID string) (*domain.BalanceEntry, error) {
	account, err := s.accountRepo.FindBankAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if !account.IsActive {
		return nil, fmt.Errorf("%w: account %s is inactive", apperrors.ErrValidation, accountID)
	}

	balance, err := parseAmount("balance", req.Balance)
	if err != nil {
		return nil, err
	}
	effectiveDate, err := parseDate("effectiveDate", req.EffectiveDate)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	entry := domain.BalanceEntry{
		EntryID:       uuid.NewString(),
		AccountID:     accountID,
		Balance:       balance,
		EffectiveDate: effectiveDate,
		Notes:         req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.balanceRepo.SaveBalanceEntry(ctx, entry); err != nil {
		s.LogError(ctx, err, "Failed to record account balance", slog.String("account_id", accountID))
		return nil, err
	}

	s.LogInfo(ctx, "Account balance recorded", slog.String("account_id", accountID), slog.String("entry_id", entry.EntryID))
	return &entry, nil
}
