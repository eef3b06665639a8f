package domain_test

import (
	"testing"

	"github.com/finhaus/home_finance_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestPartitionCategories(t *testing.T) {
	categories := []domain.Category{
		{CategoryID: "c1", Name: "Salary", Type: domain.IncomeCategory},
		{CategoryID: "c2", Name: "Groceries", Type: domain.ExpenseCategory},
		{CategoryID: "c3", Name: "Rent", Type: domain.ExpenseCategory},
		{CategoryID: "c4", Name: "Old side gig", Type: domain.IncomeCategory, IsArchived: true},
		{CategoryID: "c5", Name: "Dividends", Type: domain.IncomeCategory},
	}

	got := domain.PartitionCategories(categories)

	assert.Len(t, got.Income, 2)
	assert.Len(t, got.Expense, 2)

	// Disjoint and exhaustive over non-archived categories.
	seen := map[string]bool{}
	for _, c := range got.Income {
		assert.Equal(t, domain.IncomeCategory, c.Type)
		assert.False(t, c.IsArchived)
		seen[c.CategoryID] = true
	}
	for _, c := range got.Expense {
		assert.Equal(t, domain.ExpenseCategory, c.Type)
		assert.False(t, c.IsArchived)
		assert.False(t, seen[c.CategoryID], "category %s appeared in both partitions", c.CategoryID)
		seen[c.CategoryID] = true
	}
	assert.Len(t, seen, 4)

	// Server order preserved within each subset.
	assert.Equal(t, "c1", got.Income[0].CategoryID)
	assert.Equal(t, "c5", got.Income[1].CategoryID)
	assert.Equal(t, "c2", got.Expense[0].CategoryID)
	assert.Equal(t, "c3", got.Expense[1].CategoryID)
}

func TestPartitionCategories_Empty(t *testing.T) {
	got := domain.PartitionCategories(nil)
	assert.NotNil(t, got.Income)
	assert.NotNil(t, got.Expense)
	assert.Empty(t, got.Income)
	assert.Empty(t, got.Expense)
}
