package services

import (
	"context"

	"github.com/finhaus/home_finance_app/internal/core/domain"
	"github.com/finhaus/home_finance_app/internal/dto"
)

// BalanceSvcFacade defines the service operations for the balance history.
type BalanceSvcFacade interface {
	AppendBalanceEntry(ctx context.Context, req dto.CreateBalanceEntryRequest, userID string) (*domain.BalanceEntry, error)
	GetCurrentBalance(ctx context.Context, accountID string) (*domain.BalanceEntry, error)
	ListBalanceHistory(ctx context.Context, params dto.ListBalanceHistoryParams) (*dto.ListBalanceHistoryResponse, error)
	GetBalanceTrend(ctx context.Context, accountID string) (domain.BalanceTrend, error)
	GetBalanceChart(ctx context.Context, accountID string) (domain.ChartSeries, error)
}
