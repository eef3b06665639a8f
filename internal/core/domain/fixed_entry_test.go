package domain_test

import (
	"testing"
	"time"

	"github.com/finhaus/home_finance_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFixedEntry_PostingDay(t *testing.T) {
	tests := []struct {
		name  string
		day   int
		year  int
		month time.Month
		want  int
	}{
		{name: "regular day", day: 15, year: 2024, month: time.March, want: 15},
		{name: "31st clamps to 30-day month", day: 31, year: 2024, month: time.April, want: 30},
		{name: "31st clamps to leap february", day: 31, year: 2024, month: time.February, want: 29},
		{name: "31st clamps to non-leap february", day: 31, year: 2023, month: time.February, want: 28},
		{name: "31st stays in long month", day: 31, year: 2024, month: time.January, want: 31},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := domain.FixedEntry{DayOfMonth: tt.day}
			assert.Equal(t, tt.want, entry.PostingDay(tt.year, tt.month))
		})
	}
}

func TestFixedEntry_OccursIn(t *testing.T) {
	end := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)
	entry := domain.FixedEntry{
		Amount:     decimal.NewFromInt(100),
		DayOfMonth: 1,
		StartDate:  time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		EndDate:    &end,
		IsActive:   true,
	}

	assert.False(t, entry.OccursIn(2024, time.January), "before start")
	assert.True(t, entry.OccursIn(2024, time.February), "start month")
	assert.True(t, entry.OccursIn(2024, time.April), "mid window")
	assert.True(t, entry.OccursIn(2024, time.June), "end month")
	assert.False(t, entry.OccursIn(2024, time.July), "after end")

	entry.IsActive = false
	assert.False(t, entry.OccursIn(2024, time.April), "paused entries never post")

	entry.IsActive = true
	entry.EndDate = nil
	assert.True(t, entry.OccursIn(2030, time.December), "open-ended entry")
}

func TestFixedEntry_SignedAmount(t *testing.T) {
	income := domain.FixedEntry{EntryType: domain.IncomeEntry, Amount: decimal.NewFromInt(250)}
	expense := domain.FixedEntry{EntryType: domain.ExpenseEntry, Amount: decimal.NewFromInt(250)}

	assert.True(t, income.SignedAmount().Equal(decimal.NewFromInt(250)))
	assert.True(t, expense.SignedAmount().Equal(decimal.NewFromInt(-250)))
}
