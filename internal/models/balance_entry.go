package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// BalanceEntry represents one row of the append-only balance history.
type BalanceEntry struct {
	EntryID       string          `db:"entry_id"`
	AccountID     string          `db:"account_id"` // Empty for the household total
	Balance       decimal.Decimal `db:"balance"`
	EffectiveDate time.Time       `db:"effective_date"`
	Notes         string          `db:"notes"`
	AuditFields
}
