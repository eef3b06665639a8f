package domain

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// BalanceEntry is one reading of the household (or a single account's)
// balance. Entries form an append-only log ordered by effective date;
// corrections are modeled as new rows, never as updates.
type BalanceEntry struct {
	EntryID       string          `json:"entryID"`             // Primary Key (e.g., UUID)
	AccountID     string          `json:"accountID,omitempty"` // Empty for the household total
	Balance       decimal.Decimal `json:"balance"`
	EffectiveDate time.Time       `json:"effectiveDate"`
	Notes         string          `json:"notes"`
	AuditFields
}

// TrendDirection indicates how the balance moved between the two most
// recent readings.
type TrendDirection string

const (
	TrendUp   TrendDirection = "up"
	TrendDown TrendDirection = "down"
	TrendFlat TrendDirection = "flat"
)

// BalanceTrend is the comparison between the two most recent balance entries.
type BalanceTrend struct {
	Direction TrendDirection  `json:"direction"`
	Amount    decimal.Decimal `json:"amount"`  // current - previous
	Percent   decimal.Decimal `json:"percent"` // |amount| / |previous| * 100, 0 when previous is 0
	Current   *BalanceEntry   `json:"current,omitempty"`
	Previous  *BalanceEntry   `json:"previous,omitempty"`
}

// sortEntriesDesc orders entries newest-first by effective date, breaking
// ties on creation time so same-day corrections win.
func sortEntriesDesc(entries []BalanceEntry) []BalanceEntry {
	sorted := make([]BalanceEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		if !sorted[i].EffectiveDate.Equal(sorted[j].EffectiveDate) {
			return sorted[i].EffectiveDate.After(sorted[j].EffectiveDate)
		}
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})
	return sorted
}

// LatestEntry returns the most recent entry of an unordered history, or nil
// when the history is empty.
func LatestEntry(entries []BalanceEntry) *BalanceEntry {
	if len(entries) == 0 {
		return nil
	}
	sorted := sortEntriesDesc(entries)
	return &sorted[0]
}

// ComputeTrend derives the direction and magnitude of change between the two
// most recent entries of an unordered balance history. With fewer than two
// entries the trend is flat with zero amount and percent.
func ComputeTrend(entries []BalanceEntry) BalanceTrend {
	if len(entries) < 2 {
		trend := BalanceTrend{
			Direction: TrendFlat,
			Amount:    decimal.Zero,
			Percent:   decimal.Zero,
		}
		if latest := LatestEntry(entries); latest != nil {
			trend.Current = latest
		}
		return trend
	}

	sorted := sortEntriesDesc(entries)
	current := sorted[0]
	previous := sorted[1]

	diff := current.Balance.Sub(previous.Balance)

	direction := TrendFlat
	switch diff.Sign() {
	case 1:
		direction = TrendUp
	case -1:
		direction = TrendDown
	}

	// Guard against divide-by-zero when the previous reading is 0.
	percent := decimal.Zero
	if !previous.Balance.IsZero() {
		percent = diff.Abs().Div(previous.Balance.Abs()).Mul(decimal.NewFromInt(100)).Round(2)
	}

	return BalanceTrend{
		Direction: direction,
		Amount:    diff,
		Percent:   percent,
		Current:   &current,
		Previous:  &previous,
	}
}

// ChartPoint is a single plotted balance reading.
type ChartPoint struct {
	Date    time.Time       `json:"date"`
	Balance decimal.Decimal `json:"balance"`
}

// ChartSeries is the balance history shaped for plotting: points sorted
// ascending by date plus the vertical offset at which a two-color gradient
// fill should split when the series crosses zero.
type ChartSeries struct {
	Points []ChartPoint `json:"points"`
	// SplitOffset is the fraction of the vertical chart area above the zero
	// line, clamped to [0,1]. 1 when no point is negative, 0 when all are.
	SplitOffset float64 `json:"splitOffset"`
	// CrossesZero reports whether the series has both positive and negative
	// points; when false a single solid gradient is used.
	CrossesZero bool `json:"crossesZero"`
}

// BuildChartSeries shapes an unordered balance history for chart display.
// Fewer than two entries produce an empty series (no chart rendered).
func BuildChartSeries(entries []BalanceEntry) ChartSeries {
	if len(entries) < 2 {
		return ChartSeries{SplitOffset: 1}
	}

	sorted := make([]BalanceEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		if !sorted[i].EffectiveDate.Equal(sorted[j].EffectiveDate) {
			return sorted[i].EffectiveDate.Before(sorted[j].EffectiveDate)
		}
		return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
	})

	points := make([]ChartPoint, len(sorted))
	minBalance := sorted[0].Balance
	maxBalance := sorted[0].Balance
	for i, e := range sorted {
		points[i] = ChartPoint{Date: e.EffectiveDate, Balance: e.Balance}
		if e.Balance.LessThan(minBalance) {
			minBalance = e.Balance
		}
		if e.Balance.GreaterThan(maxBalance) {
			maxBalance = e.Balance
		}
	}

	return ChartSeries{
		Points:      points,
		SplitOffset: gradientSplitOffset(minBalance, maxBalance),
		CrossesZero: minBalance.Sign() < 0 && maxBalance.Sign() > 0,
	}
}

// gradientSplitOffset computes max / (max - min) clamped to [0,1]. A flat
// series (max == min) sits entirely on one side of zero, so the offset
// collapses to 1 or 0 by sign.
func gradientSplitOffset(minBalance, maxBalance decimal.Decimal) float64 {
	span := maxBalance.Sub(minBalance)
	if span.IsZero() {
		if maxBalance.Sign() < 0 {
			return 0
		}
		return 1
	}

	offset, _ := maxBalance.Div(span).Float64()
	if offset < 0 {
		return 0
	}
	if offset > 1 {
		return 1
	}
	return offset
}
