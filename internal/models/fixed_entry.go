package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// FixedEntry represents a fixed recurring entry row.
type FixedEntry struct {
	FixedID    string          `db:"fixed_id"`
	Name       string          `db:"name"`
	CategoryID string          `db:"category_id"`
	EntryType  string          `db:"entry_type"`
	Amount     decimal.Decimal `db:"amount"`
	DayOfMonth int             `db:"day_of_month"`
	StartDate  time.Time       `db:"start_date"`
	EndDate    *time.Time      `db:"end_date"`
	IsActive   bool            `db:"is_active"`
	AuditFields
}
