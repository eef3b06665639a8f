package dto

import (
	"time"

	"github.com/finhaus/home_finance_app/internal/core/domain"
)

// CreateCategoryRequest defines the data needed to create a category.
type CreateCategoryRequest struct {
	Name  string `json:"name" binding:"required"`
	Type  string `json:"type" binding:"required,oneof=INCOME EXPENSE"`
	Color string `json:"color" binding:"omitempty,hexcolor"`
}

// UpdateCategoryRequest defines the data allowed for updating a category.
// Type is immutable once set; historical entries depend on it.
type UpdateCategoryRequest struct {
	Name  *string `json:"name"`
	Color *string `json:"color" binding:"omitempty,hexcolor"`
}

// ListCategoriesParams defines query parameters for listing categories.
type ListCategoriesParams struct {
	IncludeArchived bool `form:"includeArchived,default=false"`
	Grouped         bool `form:"grouped,default=false"`
}

// CategoryResponse defines the data returned for a category.
type CategoryResponse struct {
	CategoryID    string    `json:"categoryID"`
	Name          string    `json:"name"`
	Type          string    `json:"type"`
	Color         string    `json:"color"`
	IsArchived    bool      `json:"isArchived"`
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// ListCategoriesResponse wraps a flat category list.
type ListCategoriesResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

// GroupedCategoriesResponse is the two-column income/expense partition.
type GroupedCategoriesResponse struct {
	Income  []CategoryResponse `json:"income"`
	Expense []CategoryResponse `json:"expense"`
}

// ToCategoryResponse converts a domain.Category to its DTO
func ToCategoryResponse(cat *domain.Category) CategoryResponse {
	return CategoryResponse{
		CategoryID:    cat.CategoryID,
		Name:          cat.Name,
		Type:          string(cat.Type),
		Color:         cat.Color,
		IsArchived:    cat.IsArchived,
		CreatedAt:     cat.CreatedAt,
		LastUpdatedAt: cat.LastUpdatedAt,
	}
}

// ToListCategoriesResponse converts a slice of domain.Category to the flat list DTO
func ToListCategoriesResponse(categories []domain.Category) ListCategoriesResponse {
	res := make([]CategoryResponse, len(categories))
	for i, cat := range categories {
		res[i] = ToCategoryResponse(&cat)
	}
	return ListCategoriesResponse{Categories: res}
}

// ToGroupedCategoriesResponse converts a domain.CategoryPartition to its DTO
func ToGroupedCategoriesResponse(p domain.CategoryPartition) GroupedCategoriesResponse {
	income := make([]CategoryResponse, len(p.Income))
	for i, cat := range p.Income {
		income[i] = ToCategoryResponse(&cat)
	}
	expense := make([]CategoryResponse, len(p.Expense))
	for i, cat := range p.Expense {
		expense[i] = ToCategoryResponse(&cat)
	}
	return GroupedCategoriesResponse{Income: income, Expense: expense}
}
