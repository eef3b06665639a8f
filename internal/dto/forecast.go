package dto

import (
	"time"

	"github.com/finhaus/home_finance_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ForecastParams defines query parameters for the cash-flow forecast.
type ForecastParams struct {
	Months int `form:"months,default=12" binding:"omitempty,min=1,max=60"`
}

// ForecastMonthResponse is one projected month.
type ForecastMonthResponse struct {
	Year             int             `json:"year"`
	Month            int             `json:"month"` // 1-12
	Income           decimal.Decimal `json:"income"`
	Expenses         decimal.Decimal `json:"expenses"`
	Installments     decimal.Decimal `json:"installments"`
	Net              decimal.Decimal `json:"net"`
	ProjectedBalance decimal.Decimal `json:"projectedBalance"`
}

// ForecastResponse wraps the projection and its starting point.
type ForecastResponse struct {
	OpeningBalance decimal.Decimal         `json:"openingBalance"`
	AsOf           time.Time               `json:"asOf"`
	Months         []ForecastMonthResponse `json:"months"`
}

// ToForecastResponse converts projected months to the forecast DTO
func ToForecastResponse(opening decimal.Decimal, asOf time.Time, months []domain.ForecastMonth) ForecastResponse {
	res := make([]ForecastMonthResponse, len(months))
	for i, m := range months {
		res[i] = ForecastMonthResponse{
			Year:             m.Year,
			Month:            int(m.Month),
			Income:           m.Income,
			Expenses:         m.Expenses,
			Installments:     m.Installments,
			Net:              m.Net,
			ProjectedBalance: m.ProjectedBalance,
		}
	}
	return ForecastResponse{
		OpeningBalance: opening,
		AsOf:           asOf,
		Months:         res,
	}
}
