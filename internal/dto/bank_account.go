package dto

import (
	"time"

	"github.com/finhaus/home_finance_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateBankAccountRequest defines the data needed to track a new bank account.
// OverdraftLimit travels as a decimal string; the service validates it is >= 0.
type CreateBankAccountRequest struct {
	Name           string `json:"name" binding:"required"`
	Institution    string `json:"institution"`
	AccountType    string `json:"accountType" binding:"required,oneof=CHECKING SAVINGS CREDIT"`
	OverdraftLimit string `json:"overdraftLimit"`
	Notes          string `json:"notes"`
}

// UpdateBankAccountRequest defines the data allowed for updating a bank account.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateBankAccountRequest struct {
	Name           *string `json:"name"`
	Institution    *string `json:"institution"`
	OverdraftLimit *string `json:"overdraftLimit"`
	Notes          *string `json:"notes"`
}

// ListBankAccountsParams defines query parameters for listing bank accounts.
type ListBankAccountsParams struct {
	Limit           int  `form:"limit,default=20"`
	Offset          int  `form:"offset,default=0"`
	IncludeInactive bool `form:"includeInactive,default=false"`
}

// BankAccountResponse defines the data returned for a bank account.
type BankAccountResponse struct {
	AccountID      string          `json:"accountID"`
	Name           string          `json:"name"`
	Institution    string          `json:"institution"`
	AccountType    string          `json:"accountType"`
	OverdraftLimit decimal.Decimal `json:"overdraftLimit"`
	Notes          string          `json:"notes"`
	IsActive       bool            `json:"isActive"`
	CreatedAt      time.Time       `json:"createdAt"`
	LastUpdatedAt  time.Time       `json:"lastUpdatedAt"`
}

// ListBankAccountsResponse wraps the list of bank accounts.
type ListBankAccountsResponse struct {
	Accounts []BankAccountResponse `json:"accounts"`
}

// ToBankAccountResponse converts a domain.BankAccount to BankAccountResponse DTO
func ToBankAccountResponse(acc *domain.BankAccount) BankAccountResponse {
	return BankAccountResponse{
		AccountID:      acc.AccountID,
		Name:           acc.Name,
		Institution:    acc.Institution,
		AccountType:    string(acc.AccountType),
		OverdraftLimit: acc.OverdraftLimit,
		Notes:          acc.Notes,
		IsActive:       acc.IsActive,
		CreatedAt:      acc.CreatedAt,
		LastUpdatedAt:  acc.LastUpdatedAt,
	}
}

// ToListBankAccountsResponse converts a slice of domain.BankAccount to the list DTO
func ToListBankAccountsResponse(accounts []domain.BankAccount) ListBankAccountsResponse {
	res := make([]BankAccountResponse, len(accounts))
	for i, acc := range accounts {
		res[i] = ToBankAccountResponse(&acc)
	}
	return ListBankAccountsResponse{Accounts: res}
}
