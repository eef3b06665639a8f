package services

import (
	"context"

	"github.com/finhaus/home_finance_app/internal/dto"
)

// ForecastSvcFacade defines the cash-flow forecast operation.
type ForecastSvcFacade interface {
	// Forecast projects household cash flow month by month, starting from
	// the current balance.
	Forecast(ctx context.Context, params dto.ForecastParams) (*dto.ForecastResponse, error)
}
