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
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// fixedEntryServiceImpl implements the FixedEntrySvcFacade interface
type fixedEntryServiceImpl struct {
	BaseService
	fixedRepo    portsrepo.FixedEntryRepository
	categoryRepo portsrepo.CategoryRepository
}

// NewFixedEntryService creates a new fixed entry service.
func NewFixedEntryService(fixedRepo portsrepo.FixedEntryRepository, categoryRepo portsrepo.CategoryRepository) portssvc.FixedEntrySvcFacade {
	return &fixedEntryServiceImpl{fixedRepo: fixedRepo, categoryRepo: categoryRepo}
}

// Ensure fixedEntryServiceImpl implements the FixedEntrySvcFacade interface
var _ portssvc.FixedEntrySvcFacade = (*fixedEntryServiceImpl)(nil)

// parsePositiveAmount parses an amount that must be strictly greater than
// zero. Direction comes from the entry type, never from the sign.
func parsePositiveAmount(field, value string) (decimal.Decimal, error) {
	amount, err := parseAmount(field, value)
	if err != nil {
		return decimal.Zero, err
	}
	if amount.Sign() <= 0 {
		return decimal.Zero, fmt.Errorf("%w: %s must be > 0", apperrors.ErrValidation, field)
	}
	return amount, nil
}

func (s *fixedEntryServiceImpl) checkCategoryExists(ctx context.Context, categoryID string) error {
	if _, err := s.categoryRepo.FindCategoryByID(ctx, categoryID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("%w: category %s does not exist", apperrors.ErrValidation, categoryID)
		}
		return err
	}
	return nil
}

func (s *fixedEntryServiceImpl) CreateFixedEntry(ctx context.Context, req dto.CreateFixedEntryRequest, userID string) (*domain.FixedEntry, error) {
	if err := s.checkCategoryExists(ctx, req.CategoryID); err != nil {
		return nil, err
	}

	amount, err := parsePositiveAmount("amount", req.Amount)
	if err != nil {
		return nil, err
	}
	startDate, err := parseDate("startDate", req.StartDate)
	if err != nil {
		return nil, err
	}
	var endDate *time.Time
	if req.EndDate != "" {
		parsed, err := parseDate("endDate", req.EndDate)
		if err != nil {
			return nil, err
		}
		if parsed.Before(startDate) {
			return nil, fmt.Errorf("%w: endDate must not be before startDate", apperrors.ErrValidation)
		}
		endDate = &parsed
	}

	now := time.Now()
	entry := domain.FixedEntry{
		FixedID:    uuid.NewString(),
		Name:       req.Name,
		CategoryID: req.CategoryID,
		EntryType:  domain.EntryType(req.EntryType),
		Amount:     amount,
		DayOfMonth: req.DayOfMonth,
		StartDate:  startDate,
		EndDate:    endDate,
		IsActive:   true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.fixedRepo.SaveFixedEntry(ctx, entry); err != nil {
		s.LogError(ctx, err, "Failed to save fixed entry", slog.String("fixed_id", entry.FixedID))
		return nil, err
	}

	s.LogInfo(ctx, "Fixed entry created successfully", slog.String("fixed_id", entry.FixedID))
	return &entry, nil
}

func (s *fixedEntryServiceImpl) GetFixedEntryByID(ctx context.Context, fixedID string) (*domain.FixedEntry, error) {
	entry, err := s.fixedRepo.FindFixedEntryByID(ctx, fixedID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find fixed entry", slog.String("fixed_id", fixedID))
		}
		return nil, err
	}
	return entry, nil
}

func (s *fixedEntryServiceImpl) ListFixedEntries(ctx context.Context, params dto.ListFixedEntriesParams) ([]domain.FixedEntry, error) {
	entries, err := s.fixedRepo.ListFixedEntries(ctx, params.IncludePaused, params.Limit, params.Offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list fixed entries")
		return nil, fmt.Errorf("failed to list fixed entries: %w", err)
	}
	if entries == nil {
		return []domain.FixedEntry{}, nil
	}
	return entries, nil
}

func (s *fixedEntryServiceImpl) UpdateFixedEntry(ctx context.Context, fixedID string, req dto.UpdateFixedEntryRequest, userID string) (*domain.FixedEntry, error) {
	entry, err := s.fixedRepo.FindFixedEntryByID(ctx, fixedID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		entry.Name = *req.Name
	}
	if req.CategoryID != nil {
		if err := s.checkCategoryExists(ctx, *req.CategoryID); err != nil {
			return nil, err
		}
		entry.CategoryID = *req.CategoryID
	}
	if req.Amount != nil {
		amount, err := parsePositiveAmount("amount", *req.Amount)
		if err != nil {
			return nil, err
		}
		entry.Amount = amount
	}
	if req.DayOfMonth != nil {
		entry.DayOfMonth = *req.DayOfMonth
	}
	if req.EndDate != nil {
		if *req.EndDate == "" {
			entry.EndDate = nil
		} else {
			parsed, err := parseDate("endDate", *req.EndDate)
			if err != nil {
				return nil, err
			}
			if parsed.Before(entry.StartDate) {
				return nil, fmt.Errorf("%w: endDate must not be before startDate", apperrors.ErrValidation)
			}
			entry.EndDate = &parsed
		}
	}

	entry.LastUpdatedAt = time.Now()
	entry.LastUpdatedBy = userID

	if err := s.fixedRepo.UpdateFixedEntry(ctx, *entry); err != nil {
		s.LogError(ctx, err, "Failed to update fixed entry", slog.String("fixed_id", fixedID))
		return nil, err
	}

	s.LogInfo(ctx, "Fixed entry updated successfully", slog.String("fixed_id", fixedID))
	return entry, nil
}

func (s *fixedEntryServiceImpl) DeleteFixedEntry(ctx context.Context, fixedID string, userID string) error {
	if _, err := s.fixedRepo.FindFixedEntryByID(ctx, fixedID); err != nil {
		return err
	}
	if err := s.fixedRepo.DeleteFixedEntry(ctx, fixedID); err != nil {
		s.LogError(ctx, err, "Failed to delete fixed entry", slog.String("fixed_id", fixedID))
		return err
	}
	s.LogInfo(ctx, "Fixed entry deleted", slog.String("fixed_id", fixedID))
	return nil
}

func (s *fixedEntryServiceImpl) PauseFixedEntry(ctx context.Context, fixedID string, userID string) (*domain.FixedEntry, error) {
	return s.setActive(ctx, fixedID, userID, false)
}

func (s *fixedEntryServiceImpl) ResumeFixedEntry(ctx context.Context, fixedID string, userID string) (*domain.FixedEntry, error) {
	return s.setActive(ctx, fixedID, userID, true)
}

// setActive flips IsActive. Re-applying the current state is a no-op that
// still returns the entry.
func (s *fixedEntryServiceImpl) setActive(ctx context.Context, fixedID string, userID string, active bool) (*domain.FixedEntry, error) {
	entry, err := s.fixedRepo.FindFixedEntryByID(ctx, fixedID)
	if err != nil {
		return nil, err
	}
	if entry.IsActive == active {
		return entry, nil
	}

	entry.IsActive = active
	entry.LastUpdatedAt = time.Now()
	entry.LastUpdatedBy = userID

	if err := s.fixedRepo.UpdateFixedEntry(ctx, *entry); err != nil {
		s.LogError(ctx, err, "Failed to toggle fixed entry", slog.String("fixed_id", fixedID), slog.Bool("active", active))
		return nil, err
	}

	s.LogInfo(ctx, "Fixed entry state changed", slog.String("fixed_id", fixedID), slog.Bool("active", active))
	return entry, nil
}
