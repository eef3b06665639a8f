package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/finhaus/home_finance_app/internal/apperrors"
	"github.com/finhaus/home_finance_app/internal/core/domain"
	portsrepo "github.com/finhaus/home_finance_app/internal/core/ports/repositories"
	portssvc "github.com/finhaus/home_finance_app/internal/core/ports/services"
	"github.com/finhaus/home_finance_app/internal/dto"
	"github.com/google/uuid"
)

const defaultCategoryColor = "#9E9E9E"

// categoryServiceImpl implements the CategorySvcFacade interface
type categoryServiceImpl struct {
	BaseService
	categoryRepo portsrepo.CategoryRepository
}

// NewCategoryService creates a new category service.
func NewCategoryService(categoryRepo portsrepo.CategoryRepository) portssvc.CategorySvcFacade {
	return &categoryServiceImpl{categoryRepo: categoryRepo}
}

// Ensure categoryServiceImpl implements the CategorySvcFacade interface
var _ portssvc.CategorySvcFacade = (*categoryServiceImpl)(nil)

func (s *categoryServiceImpl) CreateCategory(ctx context.Context, req dto.CreateCategoryRequest, userID string) (*domain.Category, error) {
	color := req.Color
	if color == "" {
		color = defaultCategoryColor
	}

	now := time.Now()
	category := domain.Category{
		CategoryID: uuid.NewString(),
		Name:       req.Name,
		Type:       domain.CategoryType(req.Type),
		Color:      color,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.categoryRepo.SaveCategory(ctx, category); err != nil {
		s.LogError(ctx, err, "Failed to save category", slog.String("category_id", category.CategoryID))
		return nil, err
	}

	s.LogInfo(ctx, "Category created successfully", slog.String("category_id", category.CategoryID))
	return &category, nil
}

func (s *categoryServiceImpl) GetCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	category, err := s.categoryRepo.FindCategoryByID(ctx, categoryID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find category", slog.String("category_id", categoryID))
		}
		return nil, err
	}
	return category, nil
}

func (s *categoryServiceImpl) ListCategories(ctx context.Context, includeArchived bool) ([]domain.Category, error) {
	categories, err := s.categoryRepo.ListCategories(ctx, includeArchived)
	if err != nil {
		s.LogError(ctx, err, "Failed to list categories")
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	if categories == nil {
		return []domain.Category{}, nil
	}
	return categories, nil
}

func (s *categoryServiceImpl) PartitionCategories(ctx context.Context) (domain.CategoryPartition, error) {
	categories, err := s.ListCategories(ctx, false)
	if err != nil {
		return domain.CategoryPartition{}, err
	}
	return domain.PartitionCategories(categories), nil
}

func (s *categoryServiceImpl) UpdateCategory(ctx context.Context, categoryID string, req dto.UpdateCategoryRequest, userID string) (*domain.Category, error) {
	category, err := s.categoryRepo.FindCategoryByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		category.Name = *req.Name
	}
	if req.Color != nil {
		category.Color = *req.Color
	}

	category.LastUpdatedAt = time.Now()
	category.LastUpdatedBy = userID

	if err := s.categoryRepo.UpdateCategory(ctx, *category); err != nil {
		s.LogError(ctx, err, "Failed to update category", slog.String("category_id", categoryID))
		return nil, err
	}

	s.LogInfo(ctx, "Category updated successfully", slog.String("category_id", categoryID))
	return category, nil
}

func (s *categoryServiceImpl) ArchiveCategory(ctx context.Context, categoryID string, userID string) error {
	if err := s.categoryRepo.ArchiveCategory(ctx, categoryID, userID, time.Now()); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to archive category", slog.String("category_id", categoryID))
		}
		return err
	}
	s.LogInfo(ctx, "Category archived", slog.String("category_id", categoryID))
	return nil
}
