package dto

import (
	"time"

	"github.com/finhaus/home_finance_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateBalanceEntryRequest appends a new reading to the balance history.
// Updates are modeled as new rows; there is no update request.
type CreateBalanceEntryRequest struct {
	AccountID     string `json:"accountID"` // Optional; empty means household total
	Balance       string `json:"balance" binding:"required"`
	EffectiveDate string `json:"effectiveDate" binding:"required,datetime=2006-01-02"`
	Notes         string `json:"notes"`
}

// ListBalanceHistoryParams defines query parameters for the balance history.
// NextToken is an opaque cursor from a previous page.
type ListBalanceHistoryParams struct {
	AccountID string `form:"accountID"`
	Limit     int    `form:"limit,default=50"`
	NextToken string `form:"nextToken"`
}

// BalanceEntryResponse defines the data returned for one history row.
type BalanceEntryResponse struct {
	EntryID       string          `json:"entryID"`
	AccountID     string          `json:"accountID,omitempty"`
	Balance       decimal.Decimal `json:"balance"`
	EffectiveDate time.Time       `json:"effectiveDate"`
	Notes         string          `json:"notes"`
	CreatedAt     time.Time       `json:"createdAt"`
	CreatedBy     string          `json:"createdBy"`
}

// ListBalanceHistoryResponse wraps a page of balance history.
type ListBalanceHistoryResponse struct {
	Entries   []BalanceEntryResponse `json:"entries"`
	NextToken string                 `json:"nextToken,omitempty"`
}

// BalanceTrendResponse is the trend between the two most recent readings.
type BalanceTrendResponse struct {
	Direction string                `json:"direction"`
	Amount    decimal.Decimal       `json:"amount"`
	Percent   decimal.Decimal       `json:"percent"`
	Current   *BalanceEntryResponse `json:"current,omitempty"`
	Previous  *BalanceEntryResponse `json:"previous,omitempty"`
}

// ChartPointResponse is one plotted reading.
type ChartPointResponse struct {
	Date    time.Time       `json:"date"`
	Balance decimal.Decimal `json:"balance"`
}

// BalanceChartResponse is the history shaped for plotting.
type BalanceChartResponse struct {
	Points      []ChartPointResponse `json:"points"`
	SplitOffset float64              `json:"splitOffset"`
	CrossesZero bool                 `json:"crossesZero"`
}

// ToBalanceEntryResponse converts a domain.BalanceEntry to its DTO
func ToBalanceEntryResponse(e *domain.BalanceEntry) BalanceEntryResponse {
	return BalanceEntryResponse{
		EntryID:       e.EntryID,
		AccountID:     e.AccountID,
		Balance:       e.Balance,
		EffectiveDate: e.EffectiveDate,
		Notes:         e.Notes,
		CreatedAt:     e.CreatedAt,
		CreatedBy:     e.CreatedBy,
	}
}

// ToBalanceTrendResponse converts a domain.BalanceTrend to its DTO
func ToBalanceTrendResponse(t domain.BalanceTrend) BalanceTrendResponse {
	res := BalanceTrendResponse{
		Direction: string(t.Direction),
		Amount:    t.Amount,
		Percent:   t.Percent,
	}
	if t.Current != nil {
		cur := ToBalanceEntryResponse(t.Current)
		res.Current = &cur
	}
	if t.Previous != nil {
		prev := ToBalanceEntryResponse(t.Previous)
		res.Previous = &prev
	}
	return res
}

// ToBalanceChartResponse converts a domain.ChartSeries to its DTO
func ToBalanceChartResponse(s domain.ChartSeries) BalanceChartResponse {
	points := make([]ChartPointResponse, len(s.Points))
	for i, p := range s.Points {
		points[i] = ChartPointResponse{Date: p.Date, Balance: p.Balance}
	}
	return BalanceChartResponse{
		Points:      points,
		SplitOffset: s.SplitOffset,
		CrossesZero: s.CrossesZero,
	}
}
