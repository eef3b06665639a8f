package models

import "github.com/shopspring/decimal"

// BankAccountType mirrors domain.BankAccountType at the storage layer.
type BankAccountType string

// BankAccount represents a bank account row.
type BankAccount struct {
	AccountID      string          `db:"account_id"`
	Name           string          `db:"name"`
	Institution    string          `db:"institution"`
	AccountType    BankAccountType `db:"account_type"`
	OverdraftLimit decimal.Decimal `db:"overdraft_limit"`
	Notes          string          `db:"notes"`
	IsActive       bool            `db:"is_active"`
	AuditFields
}
