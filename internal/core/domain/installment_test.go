package domain_test

import (
	"testing"
	"time"

	"github.com/finhaus/home_finance_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestInstallment_Progress_Percentage(t *testing.T) {
	now := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		completed int
		total     int
		want      float64
	}{
		{name: "zero of twelve", completed: 0, total: 12, want: 0},
		{name: "half way", completed: 6, total: 12, want: 50},
		{name: "exactly complete", completed: 3, total: 3, want: 100},
		{name: "zero total guards at 0", completed: 0, total: 0, want: 0},
		{name: "over-complete capped at 100", completed: 5, total: 3, want: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := domain.Installment{
				NumberOfPayments:  tt.total,
				PaymentsCompleted: tt.completed,
				TotalAmount:       decimal.NewFromInt(1200),
				MonthlyAmount:     decimal.NewFromInt(100),
				FirstPaymentDate:  now.AddDate(0, -tt.completed, 0),
				Status:            domain.InstallmentActive,
			}
			got := plan.Progress(now)
			assert.InDelta(t, tt.want, got.Percentage, 1e-9)
			assert.GreaterOrEqual(t, got.Percentage, 0.0)
			assert.LessOrEqual(t, got.Percentage, 100.0)
		})
	}
}

func TestInstallment_Progress_RemainingAmount(t *testing.T) {
	now := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	plan := domain.Installment{
		TotalAmount:       decimal.NewFromInt(1200),
		NumberOfPayments:  12,
		PaymentsCompleted: 5,
		MonthlyAmount:     decimal.NewFromInt(100),
		FirstPaymentDate:  time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		Status:            domain.InstallmentActive,
	}

	got := plan.Progress(now)
	assert.True(t, got.RemainingAmount.Equal(decimal.NewFromInt(700)), "got %s", got.RemainingAmount)
	assert.Equal(t, 7, got.RemainingPayments)

	// Remaining never goes negative even with rounding drift in MonthlyAmount.
	plan.PaymentsCompleted = 12
	plan.MonthlyAmount = decimal.RequireFromString("100.01")
	got = plan.Progress(now)
	assert.True(t, got.RemainingAmount.IsZero(), "got %s", got.RemainingAmount)
}

func TestInstallment_Progress_OnTrack(t *testing.T) {
	now := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		first     time.Time
		completed int
		total     int
		want      bool
	}{
		{
			// Payments due for Jan..Jun = 6.
			name:      "keeping pace",
			first:     time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
			completed: 6,
			total:     12,
			want:      true,
		},
		{
			name:      "behind by two",
			first:     time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
			completed: 4,
			total:     12,
			want:      false,
		},
		{
			name:      "completed plan is always on track",
			first:     time.Date(2022, 1, 10, 0, 0, 0, 0, time.UTC),
			completed: 12,
			total:     12,
			want:      true,
		},
		{
			name:      "not started and not yet due",
			first:     time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC),
			completed: 0,
			total:     12,
			want:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := domain.Installment{
				TotalAmount:       decimal.NewFromInt(1200),
				NumberOfPayments:  tt.total,
				PaymentsCompleted: tt.completed,
				MonthlyAmount:     decimal.NewFromInt(100),
				FirstPaymentDate:  tt.first,
				Status:            domain.InstallmentActive,
			}
			assert.Equal(t, tt.want, plan.Progress(now).OnTrack)
		})
	}
}

func TestInstallmentStatus_Color(t *testing.T) {
	assert.Equal(t, "success", domain.InstallmentCompleted.Color())
	assert.Equal(t, "danger", domain.InstallmentOverdue.Color())
	assert.Equal(t, "neutral", domain.InstallmentPending.Color())
	assert.Equal(t, "brand", domain.InstallmentActive.Color())
	assert.Equal(t, "neutral", domain.InstallmentStatus("bogus").Color())
}
