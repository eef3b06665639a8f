package services

import (
	"context"

	"github.com/finhaus/home_finance_app/internal/core/domain"
	"github.com/finhaus/home_finance_app/internal/dto"
)

// FixedEntrySvcFacade defines the service operations for recurring entries.
type FixedEntrySvcFacade interface {
	CreateFixedEntry(ctx context.Context, req dto.CreateFixedEntryRequest, userID string) (*domain.FixedEntry, error)
	GetFixedEntryByID(ctx context.Context, fixedID string) (*domain.FixedEntry, error)
	ListFixedEntries(ctx context.Context, params dto.ListFixedEntriesParams) ([]domain.FixedEntry, error)
	UpdateFixedEntry(ctx context.Context, fixedID string, req dto.UpdateFixedEntryRequest, userID string) (*domain.FixedEntry, error)
	DeleteFixedEntry(ctx context.Context, fixedID string, userID string) error
	// PauseFixedEntry and ResumeFixedEntry toggle IsActive. Pausing never
	// deletes; both are idempotent.
	PauseFixedEntry(ctx context.Context, fixedID string, userID string) (*domain.FixedEntry, error)
	ResumeFixedEntry(ctx context.Context, fixedID string, userID string) (*domain.FixedEntry, error)
}
