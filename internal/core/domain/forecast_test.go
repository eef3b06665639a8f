package domain_test

import (
	"testing"
	"time"

	"github.com/finhaus/home_finance_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectCashFlow(t *testing.T) {
	from := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	fixed := []domain.FixedEntry{
		{
			Name:       "Salary",
			EntryType:  domain.IncomeEntry,
			Amount:     decimal.NewFromInt(3000),
			DayOfMonth: 25,
			StartDate:  time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
			IsActive:   true,
		},
		{
			Name:       "Rent",
			EntryType:  domain.ExpenseEntry,
			Amount:     decimal.NewFromInt(1200),
			DayOfMonth: 1,
			StartDate:  time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
			IsActive:   true,
		},
	}

	plans := []domain.Installment{
		{
			Description:       "Laptop",
			TotalAmount:       decimal.NewFromInt(1200),
			NumberOfPayments:  12,
			PaymentsCompleted: 10, // two payments left
			MonthlyAmount:     decimal.NewFromInt(100),
			FirstPaymentDate:  time.Date(2023, 6, 5, 0, 0, 0, 0, time.UTC),
			Status:            domain.InstallmentActive,
		},
	}

	got := domain.ProjectCashFlow(decimal.NewFromInt(500), from, 3, fixed, plans)
	require.Len(t, got, 3)

	// April: 3000 - 1200 - 100 = +1700
	assert.Equal(t, time.April, got[0].Month)
	assert.True(t, got[0].Net.Equal(decimal.NewFromInt(1700)), "april net %s", got[0].Net)
	assert.True(t, got[0].ProjectedBalance.Equal(decimal.NewFromInt(2200)))

	// May: 3000 - 1200 - 100 = +1700, last installment payment still due.
	assert.True(t, got[1].Installments.Equal(decimal.NewFromInt(100)))
	assert.True(t, got[1].Net.Equal(decimal.NewFromInt(1700)), "may net %s", got[1].Net)
	assert.True(t, got[1].ProjectedBalance.Equal(decimal.NewFromInt(3900)))

	// June: installments exhausted, only fixed entries remain.
	assert.True(t, got[2].Installments.IsZero())
	assert.True(t, got[2].Net.Equal(decimal.NewFromInt(1800)))
	assert.True(t, got[2].ProjectedBalance.Equal(decimal.NewFromInt(5700)))
}

func TestProjectCashFlow_SkipsPausedAndExpiredEntries(t *testing.T) {
	from := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 4, 30, 0, 0, 0, 0, time.UTC)

	fixed := []domain.FixedEntry{
		{
			Name:      "Paused gym",
			EntryType: domain.ExpenseEntry,
			Amount:    decimal.NewFromInt(50),
			StartDate: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
			IsActive:  false,
		},
		{
			Name:      "Ends in April",
			EntryType: domain.ExpenseEntry,
			Amount:    decimal.NewFromInt(80),
			StartDate: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
			EndDate:   &end,
			IsActive:  true,
		},
	}

	got := domain.ProjectCashFlow(decimal.Zero, from, 2, fixed, nil)
	require.Len(t, got, 2)

	assert.True(t, got[0].Expenses.Equal(decimal.NewFromInt(80)), "april should only have the ending entry")
	assert.True(t, got[1].Expenses.IsZero(), "may should have no expenses")
}

func TestProjectCashFlow_CompletedPlansDoNotPost(t *testing.T) {
	from := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	plans := []domain.Installment{
		{
			TotalAmount:       decimal.NewFromInt(600),
			NumberOfPayments:  6,
			PaymentsCompleted: 6,
			MonthlyAmount:     decimal.NewFromInt(100),
			FirstPaymentDate:  time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
			Status:            domain.InstallmentCompleted,
		},
	}

	got := domain.ProjectCashFlow(decimal.NewFromInt(100), from, 1, nil, plans)
	require.Len(t, got, 1)
	assert.True(t, got[0].Installments.IsZero())
	assert.True(t, got[0].ProjectedBalance.Equal(decimal.NewFromInt(100)))
}

func TestProjectCashFlow_FuturePlansWaitForFirstPayment(t *testing.T) {
	from := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	plans := []domain.Installment{
		{
			TotalAmount:      decimal.NewFromInt(300),
			NumberOfPayments: 3,
			MonthlyAmount:    decimal.NewFromInt(100),
			FirstPaymentDate: time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
			Status:           domain.InstallmentPending,
		},
	}

	got := domain.ProjectCashFlow(decimal.Zero, from, 4, nil, plans)
	require.Len(t, got, 4)
	assert.True(t, got[0].Installments.IsZero(), "april")
	assert.True(t, got[1].Installments.IsZero(), "may")
	assert.True(t, got[2].Installments.Equal(decimal.NewFromInt(100)), "june")
	assert.True(t, got[3].Installments.Equal(decimal.NewFromInt(100)), "july")
}

func TestProjectCashFlow_NoMonths(t *testing.T) {
	assert.Empty(t, domain.ProjectCashFlow(decimal.Zero, time.Now(), 0, nil, nil))
}
