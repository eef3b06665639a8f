package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryType is the direction of a fixed recurring entry.
type EntryType string

const (
	IncomeEntry  EntryType = "INCOME"
	ExpenseEntry EntryType = "EXPENSE"
)

// FixedEntry is a recurring income or expense posted on a fixed day of
// month. Pausing toggles IsActive; a paused entry is never deleted.
type FixedEntry struct {
	FixedID    string          `json:"fixedID"` // Primary Key (e.g., UUID)
	Name       string          `json:"name"`
	CategoryID string          `json:"categoryID"`
	EntryType  EntryType       `json:"entryType"`
	Amount     decimal.Decimal `json:"amount"`     // Always positive; EntryType carries the sign
	DayOfMonth int             `json:"dayOfMonth"` // 1-31, clamped to month length when posting
	StartDate  time.Time       `json:"startDate"`
	EndDate    *time.Time      `json:"endDate,omitempty"`
	IsActive   bool            `json:"isActive"`
	AuditFields
}

// PostingDay returns the day the entry posts in the given month, clamping
// DayOfMonth to the month's length (e.g. 31 posts on Feb 28).
func (f FixedEntry) PostingDay(year int, month time.Month) int {
	daysInMonth := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
	if f.DayOfMonth > daysInMonth {
		return daysInMonth
	}
	if f.DayOfMonth < 1 {
		return 1
	}
	return f.DayOfMonth
}

// OccursIn reports whether the entry posts in the given month: it must be
// active and the month must fall within [StartDate, EndDate].
func (f FixedEntry) OccursIn(year int, month time.Month) bool {
	if !f.IsActive {
		return false
	}

	monthStart := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	monthEnd := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC)

	if f.StartDate.After(monthEnd) {
		return false
	}
	if f.EndDate != nil && f.EndDate.Before(monthStart) {
		return false
	}
	return true
}

// SignedAmount returns the amount with its ledger sign: positive for income,
// negative for expense.
func (f FixedEntry) SignedAmount() decimal.Decimal {
	if f.EntryType == ExpenseEntry {
		return f.Amount.Neg()
	}
	return f.Amount
}
