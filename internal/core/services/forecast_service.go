package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/finhaus/home_finance_app/internal/apperrors"
	"github.com/finhaus/home_finance_app/internal/core/domain"
	portsrepo "github.com/finhaus/home_finance_app/internal/core/ports/repositories"
	portssvc "github.com/finhaus/home_finance_app/internal/core/ports/services"
	"github.com/finhaus/home_finance_app/internal/dto"
	"github.com/shopspring/decimal"
)

// forecastMaxListSize bounds the fixed entry and installment fetches that
// feed a projection.
const forecastMaxListSize = 1000

// forecastServiceImpl implements the ForecastSvcFacade interface
type forecastServiceImpl struct {
	BaseService
	balanceRepo     portsrepo.BalanceRepository
	fixedRepo       portsrepo.FixedEntryRepository
	installmentRepo portsrepo.InstallmentRepository
}

// NewForecastService creates a new forecast service.
func NewForecastService(balanceRepo portsrepo.BalanceRepository, fixedRepo portsrepo.FixedEntryRepository, installmentRepo portsrepo.InstallmentRepository) portssvc.ForecastSvcFacade {
	return &forecastServiceImpl{
		balanceRepo:     balanceRepo,
		fixedRepo:       fixedRepo,
		installmentRepo: installmentRepo,
	}
}

// Ensure forecastServiceImpl implements the ForecastSvcFacade interface
var _ portssvc.ForecastSvcFacade = (*forecastServiceImpl)(nil)

// Forecast projects household cash flow from the latest recorded balance.
// With no balance history the projection starts from zero as of now.
func (s *forecastServiceImpl) Forecast(ctx context.Context, params dto.ForecastParams) (*dto.ForecastResponse, error) {
	months := params.Months
	if months <= 0 {
		months = 12
	}

	opening := decimal.Zero
	asOf := time.Now()
	latest, err := s.balanceRepo.FindLatestEntry(ctx, "")
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to load latest balance for forecast")
		return nil, fmt.Errorf("failed to build forecast: %w", err)
	}
	if latest != nil {
		opening = latest.Balance
		asOf = latest.EffectiveDate
	}

	// Paused entries are excluded; the projection only counts what will
	// actually post.
	fixed, err := s.fixedRepo.ListFixedEntries(ctx, false, forecastMaxListSize, 0)
	if err != nil {
		s.LogError(ctx, err, "Failed to load fixed entries for forecast")
		return nil, fmt.Errorf("failed to build forecast: %w", err)
	}

	installments, err := s.installmentRepo.ListInstallments(ctx, "", forecastMaxListSize, 0)
	if err != nil {
		s.LogError(ctx, err, "Failed to load installments for forecast")
		return nil, fmt.Errorf("failed to build forecast: %w", err)
	}

	projection := domain.ProjectCashFlow(opening, asOf, months, fixed, installments)
	res := dto.ToForecastResponse(opening, asOf, projection)
	return &res, nil
}
