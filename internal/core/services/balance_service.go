package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/finhaus/home_finance_app/internal/apperrors"
	"github.com/finhaus/home_finance_app/internal/core/domain"
	portsrepo "github.com/finhaus/home_finance_app/internal/core/ports/repositories"
	portssvc "github.com/finhaus/home_finance_app/internal/core/ports/services"
	"github.com/finhaus/home_finance_app/internal/dto"
	"github.com/finhaus/home_finance_app/internal/utils/pagination"
	"github.com/google/uuid"
)

const (
	maxHistoryPageSize = 100
	// chartWindowSize bounds how many readings feed the trend and chart.
	chartWindowSize = 90
)

// balanceServiceImpl implements the BalanceSvcFacade interface
type balanceServiceImpl struct {
	BaseService
	balanceRepo portsrepo.BalanceRepository
}

// NewBalanceService creates a new balance service.
func NewBalanceService(balanceRepo portsrepo.BalanceRepository) portssvc.BalanceSvcFacade {
	return &balanceServiceImpl{balanceRepo: balanceRepo}
}

// Ensure balanceServiceImpl implements the BalanceSvcFacade interface
var _ portssvc.BalanceSvcFacade = (*balanceServiceImpl)(nil)

// AppendBalanceEntry records a new balance reading. The history is
// append-only; corrections are new rows, never edits.
func (s *balanceServiceImpl) AppendBalanceEntry(ctx context.Context, req dto.CreateBalanceEntryRequest, userID string) (*domain.BalanceEntry, error) {
	balance, err := parseAmount("balance", req.Balance)
	if err != nil {
		return nil, err
	}
	effectiveDate, err := parseDate("effectiveDate", req.EffectiveDate)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	entry := domain.BalanceEntry{
		EntryID:       uuid.NewString(),
		AccountID:     req.AccountID,
		Balance:       balance,
		EffectiveDate: effectiveDate,
		Notes:         req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.balanceRepo.SaveBalanceEntry(ctx, entry); err != nil {
		s.LogError(ctx, err, "Failed to save balance entry")
		return nil, err
	}

	s.LogInfo(ctx, "Balance entry recorded", slog.String("entry_id", entry.EntryID))
	return &entry, nil
}

// GetCurrentBalance returns the most recent reading, by effective date with
// creation time as the tie-break.
func (s *balanceServiceImpl) GetCurrentBalance(ctx context.Context, accountID string) (*domain.BalanceEntry, error) {
	entry, err := s.balanceRepo.FindLatestEntry(ctx, accountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find latest balance entry")
		}
		return nil, err
	}
	return entry, nil
}

func (s *balanceServiceImpl) ListBalanceHistory(ctx context.Context, params dto.ListBalanceHistoryParams) (*dto.ListBalanceHistoryResponse, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = 50
	}
	if limit > maxHistoryPageSize {
		limit = maxHistoryPageSize
	}

	var before, beforeCreated time.Time
	if params.NextToken != "" {
		decodedDate, decodedCreated, err := pagination.DecodeToken(params.NextToken)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
		before = decodedDate
		beforeCreated = decodedCreated
	}

	// Fetch one extra row to learn whether another page exists.
	entries, err := s.balanceRepo.ListBalanceHistory(ctx, params.AccountID, before, beforeCreated, limit+1)
	if err != nil {
		s.LogError(ctx, err, "Failed to list balance history")
		return nil, fmt.Errorf("failed to list balance history: %w", err)
	}

	res := &dto.ListBalanceHistoryResponse{Entries: []dto.BalanceEntryResponse{}}
	if len(entries) > limit {
		entries = entries[:limit]
		last := entries[len(entries)-1]
		res.NextToken = pagination.EncodeToken(last.EffectiveDate, last.CreatedAt)
	}
	for i := range entries {
		res.Entries = append(res.Entries, dto.ToBalanceEntryResponse(&entries[i]))
	}
	return res, nil
}

func (s *balanceServiceImpl) GetBalanceTrend(ctx context.Context, accountID string) (domain.BalanceTrend, error) {
	entries, err := s.balanceRepo.ListRecentEntries(ctx, accountID, 2)
	if err != nil {
		s.LogError(ctx, err, "Failed to load entries for trend")
		return domain.BalanceTrend{}, fmt.Errorf("failed to compute balance trend: %w", err)
	}
	return domain.ComputeTrend(entries), nil
}

func (s *balanceServiceImpl) GetBalanceChart(ctx context.Context, accountID string) (domain.ChartSeries, error) {
	entries, err := s.balanceRepo.ListRecentEntries(ctx, accountID, chartWindowSize)
	if err != nil {
		s.LogError(ctx, err, "Failed to load entries for chart")
		return domain.ChartSeries{}, fmt.Errorf("failed to build balance chart: %w", err)
	}
	return domain.BuildChartSeries(entries), nil
}
