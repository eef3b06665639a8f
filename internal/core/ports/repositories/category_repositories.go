package repositories

import (
	"context"
	"time"

	"github.com/finhaus/home_finance_app/internal/core/domain"
)

// CategoryRepository defines persistence operations for categories.
// There is no hard delete; ArchiveCategory is the only removal.
type CategoryRepository interface {
	SaveCategory(ctx context.Context, category domain.Category) error
	FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error)
	ListCategories(ctx context.Context, includeArchived bool) ([]domain.Category, error)
	UpdateCategory(ctx context.Context, category domain.Category) error
	ArchiveCategory(ctx context.Context, categoryID string, userID string, now time.Time) error
}
