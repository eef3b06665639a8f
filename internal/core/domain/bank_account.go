package domain

import (
	"github.com/shopspring/decimal"
)

// BankAccountType classifies a tracked bank account.
type BankAccountType string

const (
	Checking BankAccountType = "CHECKING"
	Savings  BankAccountType = "SAVINGS"
	Credit   BankAccountType = "CREDIT"
)

// BankAccount represents a real-world account whose balance is tracked.
type BankAccount struct {
	AccountID      string          `json:"accountID"` // Primary Key (e.g., UUID)
	Name           string          `json:"name"`
	Institution    string          `json:"institution"`
	AccountType    BankAccountType `json:"accountType"`
	OverdraftLimit decimal.Decimal `json:"overdraftLimit"` // Must be >= 0
	Notes          string          `json:"notes"`
	IsActive       bool            `json:"isActive"`
	AuditFields
}
