package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ForecastMonth is one projected month of household cash flow.
type ForecastMonth struct {
	Year             int             `json:"year"`
	Month            time.Month      `json:"month"`
	Income           decimal.Decimal `json:"income"`
	Expenses         decimal.Decimal `json:"expenses"`     // Fixed expenses, positive magnitude
	Installments     decimal.Decimal `json:"installments"` // Installment outflow, positive magnitude
	Net              decimal.Decimal `json:"net"`
	ProjectedBalance decimal.Decimal `json:"projectedBalance"`
}

// ProjectCashFlow builds a month-by-month cash-flow forecast starting the
// month after 'from'. Each month nets the fixed entries whose window covers
// it and subtracts the monthly amount of every installment plan that still
// has payments remaining. The running balance starts at 'opening'.
func ProjectCashFlow(opening decimal.Decimal, from time.Time, months int, fixed []FixedEntry, plans []Installment) []ForecastMonth {
	if months <= 0 {
		return []ForecastMonth{}
	}

	// Remaining payment counters, consumed as the projection advances.
	remaining := make([]int, len(plans))
	for idx, plan := range plans {
		if plan.Status == InstallmentCompleted {
			continue
		}
		r := plan.NumberOfPayments - plan.PaymentsCompleted
		if r > 0 {
			remaining[idx] = r
		}
	}

	running := opening
	result := make([]ForecastMonth, 0, months)

	cursor := time.Date(from.Year(), from.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0)
	for m := 0; m < months; m++ {
		year, month := cursor.Year(), cursor.Month()

		income := decimal.Zero
		expenses := decimal.Zero
		for _, entry := range fixed {
			if !entry.OccursIn(year, month) {
				continue
			}
			if entry.EntryType == IncomeEntry {
				income = income.Add(entry.Amount)
			} else {
				expenses = expenses.Add(entry.Amount)
			}
		}

		installments := decimal.Zero
		for idx, plan := range plans {
			if remaining[idx] == 0 {
				continue
			}
			// Plans don't post before their first payment month.
			if plan.FirstPaymentDate.After(time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC)) {
				continue
			}
			installments = installments.Add(plan.MonthlyAmount)
			remaining[idx]--
		}

		net := income.Sub(expenses).Sub(installments)
		running = running.Add(net)

		result = append(result, ForecastMonth{
			Year:             year,
			Month:            month,
			Income:           income,
			Expenses:         expenses,
			Installments:     installments,
			Net:              net,
			ProjectedBalance: running,
		})

		cursor = cursor.AddDate(0, 1, 0)
	}

	return result
}
