package domain

// CategoryType partitions categories into the two ledger sides.
type CategoryType string

const (
	IncomeCategory  CategoryType = "INCOME"
	ExpenseCategory CategoryType = "EXPENSE"
)

// Category labels fixed entries and installments. Categories are never hard
// deleted; archiving removes them from active pickers while keeping them
// available for historical display.
type Category struct {
	CategoryID string       `json:"categoryID"` // Primary Key (e.g., UUID)
	Name       string       `json:"name"`
	Type       CategoryType `json:"type"`
	Color      string       `json:"color"` // Hex color for display
	IsArchived bool         `json:"isArchived"`
	AuditFields
}

// CategoryPartition is the two-column split of active categories.
type CategoryPartition struct {
	Income  []Category `json:"income"`
	Expense []Category `json:"expense"`
}

// PartitionCategories splits a flat category list into disjoint income and
// expense subsets, excluding archived categories. Server-provided order is
// preserved within each subset.
func PartitionCategories(categories []Category) CategoryPartition {
	partition := CategoryPartition{
		Income:  []Category{},
		Expense: []Category{},
	}
	for _, cat := range categories {
		if cat.IsArchived {
			continue
		}
		switch cat.Type {
		case IncomeCategory:
			partition.Income = append(partition.Income, cat)
		case ExpenseCategory:
			partition.Expense = append(partition.Expense, cat)
		}
	}
	return partition
}
