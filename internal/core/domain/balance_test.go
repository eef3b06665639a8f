package domain_test

import (
	"testing"
	"time"

	"github.com/finhaus/home_finance_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entry(balance string, date string) domain.BalanceEntry {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic(err)
	}
	return domain.BalanceEntry{
		Balance:       decimal.RequireFromString(balance),
		EffectiveDate: d,
	}
}

func TestComputeTrend(t *testing.T) {
	tests := []struct {
		name          string
		entries       []domain.BalanceEntry
		wantDirection domain.TrendDirection
		wantAmount    string
		wantPercent   string
	}{
		{
			name: "documented scenario 100 then 150 is up 50 at 50 percent",
			entries: []domain.BalanceEntry{
				entry("100", "2024-01-01"),
				entry("150", "2024-02-01"),
			},
			wantDirection: domain.TrendUp,
			wantAmount:    "50",
			wantPercent:   "50",
		},
		{
			name: "unordered input is sorted before comparison",
			entries: []domain.BalanceEntry{
				entry("150", "2024-02-01"),
				entry("100", "2024-01-01"),
				entry("80", "2023-12-01"),
			},
			wantDirection: domain.TrendUp,
			wantAmount:    "50",
			wantPercent:   "50",
		},
		{
			name: "downward trend",
			entries: []domain.BalanceEntry{
				entry("200", "2024-01-01"),
				entry("150", "2024-02-01"),
			},
			wantDirection: domain.TrendDown,
			wantAmount:    "-50",
			wantPercent:   "25",
		},
		{
			name: "flat when balances equal",
			entries: []domain.BalanceEntry{
				entry("100", "2024-01-01"),
				entry("100", "2024-02-01"),
			},
			wantDirection: domain.TrendFlat,
			wantAmount:    "0",
			wantPercent:   "0",
		},
		{
			name: "previous zero guards percent at 0",
			entries: []domain.BalanceEntry{
				entry("0", "2024-01-01"),
				entry("75", "2024-02-01"),
			},
			wantDirection: domain.TrendUp,
			wantAmount:    "75",
			wantPercent:   "0",
		},
		{
			name: "negative previous uses absolute value",
			entries: []domain.BalanceEntry{
				entry("-100", "2024-01-01"),
				entry("-50", "2024-02-01"),
			},
			wantDirection: domain.TrendUp,
			wantAmount:    "50",
			wantPercent:   "50",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.ComputeTrend(tt.entries)
			assert.Equal(t, tt.wantDirection, got.Direction)
			assert.True(t, got.Amount.Equal(decimal.RequireFromString(tt.wantAmount)),
				"amount: got %s want %s", got.Amount, tt.wantAmount)
			assert.True(t, got.Percent.Equal(decimal.RequireFromString(tt.wantPercent)),
				"percent: got %s want %s", got.Percent, tt.wantPercent)
		})
	}
}

func TestComputeTrend_DirectionMatchesSign(t *testing.T) {
	// For any two-entry history, direction must match sign(latest - previous).
	balances := []string{"-50", "0", "10", "99.99", "150"}
	for _, prev := range balances {
		for _, cur := range balances {
			got := domain.ComputeTrend([]domain.BalanceEntry{
				entry(prev, "2024-01-01"),
				entry(cur, "2024-02-01"),
			})
			diff := decimal.RequireFromString(cur).Sub(decimal.RequireFromString(prev))
			switch diff.Sign() {
			case 1:
				assert.Equal(t, domain.TrendUp, got.Direction, "prev=%s cur=%s", prev, cur)
			case -1:
				assert.Equal(t, domain.TrendDown, got.Direction, "prev=%s cur=%s", prev, cur)
			default:
				assert.Equal(t, domain.TrendFlat, got.Direction, "prev=%s cur=%s", prev, cur)
			}
		}
	}
}

func TestComputeTrend_FewerThanTwoEntries(t *testing.T) {
	got := domain.ComputeTrend(nil)
	assert.Equal(t, domain.TrendFlat, got.Direction)
	assert.True(t, got.Amount.IsZero())
	assert.Nil(t, got.Current)

	single := domain.ComputeTrend([]domain.BalanceEntry{entry("42", "2024-01-01")})
	assert.Equal(t, domain.TrendFlat, single.Direction)
	require.NotNil(t, single.Current)
	assert.True(t, single.Current.Balance.Equal(decimal.RequireFromString("42")))
	assert.Nil(t, single.Previous)
}

func TestComputeTrend_SameDayTieBreaksOnCreatedAt(t *testing.T) {
	older := entry("100", "2024-03-01")
	older.CreatedAt = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	newer := entry("120", "2024-03-01")
	newer.CreatedAt = time.Date(2024, 3, 1, 17, 0, 0, 0, time.UTC)

	got := domain.ComputeTrend([]domain.BalanceEntry{older, newer})
	assert.Equal(t, domain.TrendUp, got.Direction)
	assert.True(t, got.Amount.Equal(decimal.NewFromInt(20)))
}

func TestBuildChartSeries(t *testing.T) {
	tests := []struct {
		name            string
		entries         []domain.BalanceEntry
		wantOffset      float64
		wantCrossesZero bool
	}{
		{
			name: "all positive yields offset 1 and no split",
			entries: []domain.BalanceEntry{
				entry("100", "2024-01-01"),
				entry("200", "2024-02-01"),
			},
			wantOffset:      1,
			wantCrossesZero: false,
		},
		{
			name: "all negative yields offset 0 and no split",
			entries: []domain.BalanceEntry{
				entry("-100", "2024-01-01"),
				entry("-200", "2024-02-01"),
			},
			wantOffset:      0,
			wantCrossesZero: false,
		},
		{
			name: "crossing zero splits proportionally",
			entries: []domain.BalanceEntry{
				entry("-50", "2024-01-01"),
				entry("150", "2024-02-01"),
			},
			wantOffset:      0.75, // 150 / (150 - (-50))
			wantCrossesZero: true,
		},
		{
			name: "flat positive series",
			entries: []domain.BalanceEntry{
				entry("100", "2024-01-01"),
				entry("100", "2024-02-01"),
			},
			wantOffset:      1,
			wantCrossesZero: false,
		},
		{
			name: "flat negative series",
			entries: []domain.BalanceEntry{
				entry("-100", "2024-01-01"),
				entry("-100", "2024-02-01"),
			},
			wantOffset:      0,
			wantCrossesZero: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.BuildChartSeries(tt.entries)
			assert.InDelta(t, tt.wantOffset, got.SplitOffset, 1e-9)
			assert.Equal(t, tt.wantCrossesZero, got.CrossesZero)
			assert.GreaterOrEqual(t, got.SplitOffset, 0.0)
			assert.LessOrEqual(t, got.SplitOffset, 1.0)
		})
	}
}

func TestBuildChartSeries_SortsAscendingByDate(t *testing.T) {
	got := domain.BuildChartSeries([]domain.BalanceEntry{
		entry("300", "2024-03-01"),
		entry("100", "2024-01-01"),
		entry("200", "2024-02-01"),
	})
	require.Len(t, got.Points, 3)
	assert.True(t, got.Points[0].Date.Before(got.Points[1].Date))
	assert.True(t, got.Points[1].Date.Before(got.Points[2].Date))
	assert.True(t, got.Points[0].Balance.Equal(decimal.NewFromInt(100)))
}

func TestBuildChartSeries_FewerThanTwoPoints(t *testing.T) {
	assert.Empty(t, domain.BuildChartSeries(nil).Points)
	assert.Empty(t, domain.BuildChartSeries([]domain.BalanceEntry{entry("10", "2024-01-01")}).Points)
}

func TestLatestEntry(t *testing.T) {
	assert.Nil(t, domain.LatestEntry(nil))

	latest := domain.LatestEntry([]domain.BalanceEntry{
		entry("100", "2024-01-01"),
		entry("300", "2024-03-01"),
		entry("200", "2024-02-01"),
	})
	require.NotNil(t, latest)
	assert.True(t, latest.Balance.Equal(decimal.NewFromInt(300)))
}
