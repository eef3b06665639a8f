package services

import (
	"context"

	"github.com/finhaus/home_finance_app/internal/core/domain"
	"github.com/finhaus/home_finance_app/internal/dto"
)

// CategorySvcFacade defines the service operations for categories.
type CategorySvcFacade interface {
	CreateCategory(ctx context.Context, req dto.CreateCategoryRequest, userID string) (*domain.Category, error)
	GetCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error)
	ListCategories(ctx context.Context, includeArchived bool) ([]domain.Category, error)
	// PartitionCategories returns the active categories split into income
	// and expense subsets.
	PartitionCategories(ctx context.Context) (domain.CategoryPartition, error)
	UpdateCategory(ctx context.Context, categoryID string, req dto.UpdateCategoryRequest, userID string) (*domain.Category, error)
	// ArchiveCategory is the delete operation; categories are never hard
	// deleted.
	ArchiveCategory(ctx context.Context, categoryID string, userID string) error
}
