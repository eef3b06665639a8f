package repositories

import (
	"context"
	"time"

	"github.com/finhaus/home_finance_app/internal/core/domain"
)

// BalanceRepository defines persistence operations for the append-only
// balance history. There is deliberately no update or delete.
type BalanceRepository interface {
	SaveBalanceEntry(ctx context.Context, entry domain.BalanceEntry) error
	FindLatestEntry(ctx context.Context, accountID string) (*domain.BalanceEntry, error)
	// ListBalanceHistory returns entries newest-first. A zero 'before' time
	// means no cursor; otherwise only entries strictly older than the
	// (before, beforeCreated) pair under the (effective_date, created_at)
	// ordering are returned.
	ListBalanceHistory(ctx context.Context, accountID string, before time.Time, beforeCreated time.Time, limit int) ([]domain.BalanceEntry, error)
	// ListRecentEntries returns up to limit newest entries for trend and
	// chart computation.
	ListRecentEntries(ctx context.Context, accountID string, limit int) ([]domain.BalanceEntry, error)
}
