package repositories

import (
	"context"

	"github.com/finhaus/home_finance_app/internal/core/domain"
)

// FixedEntryRepository defines persistence operations for recurring entries.
type FixedEntryRepository interface {
	SaveFixedEntry(ctx context.Context, entry domain.FixedEntry) error
	FindFixedEntryByID(ctx context.Context, fixedID string) (*domain.FixedEntry, error)
	ListFixedEntries(ctx context.Context, includePaused bool, limit int, offset int) ([]domain.FixedEntry, error)
	UpdateFixedEntry(ctx context.Context, entry domain.FixedEntry) error
	DeleteFixedEntry(ctx context.Context, fixedID string) error
}
