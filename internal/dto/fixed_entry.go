package dto

import (
	"time"

	"github.com/finhaus/home_finance_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateFixedEntryRequest defines the data needed to create a recurring entry.
// Amount travels as a decimal string; the service validates it is > 0.
type CreateFixedEntryRequest struct {
	Name       string `json:"name" binding:"required"`
	CategoryID string `json:"categoryID" binding:"required"`
	EntryType  string `json:"entryType" binding:"required,oneof=INCOME EXPENSE"`
	Amount     string `json:"amount" binding:"required"`
	DayOfMonth int    `json:"dayOfMonth" binding:"required,min=1,max=31"`
	StartDate  string `json:"startDate" binding:"required,datetime=2006-01-02"`
	EndDate    string `json:"endDate" binding:"omitempty,datetime=2006-01-02"`
}

// UpdateFixedEntryRequest defines the data allowed for updating a recurring entry.
type UpdateFixedEntryRequest struct {
	Name       *string `json:"name"`
	CategoryID *string `json:"categoryID"`
	Amount     *string `json:"amount"`
	DayOfMonth *int    `json:"dayOfMonth" binding:"omitempty,min=1,max=31"`
	EndDate    *string `json:"endDate" binding:"omitempty,datetime=2006-01-02"`
}

// ListFixedEntriesParams defines query parameters for listing recurring entries.
type ListFixedEntriesParams struct {
	Limit         int  `form:"limit,default=50"`
	Offset        int  `form:"offset,default=0"`
	IncludePaused bool `form:"includePaused,default=true"`
}

// FixedEntryResponse defines the data returned for a recurring entry.
type FixedEntryResponse struct {
	FixedID       string          `json:"fixedID"`
	Name          string          `json:"name"`
	CategoryID    string          `json:"categoryID"`
	EntryType     string          `json:"entryType"`
	Amount        decimal.Decimal `json:"amount"`
	DayOfMonth    int             `json:"dayOfMonth"`
	StartDate     time.Time       `json:"startDate"`
	EndDate       *time.Time      `json:"endDate,omitempty"`
	IsActive      bool            `json:"isActive"`
	CreatedAt     time.Time       `json:"createdAt"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
}

// ListFixedEntriesResponse wraps the list of recurring entries.
type ListFixedEntriesResponse struct {
	Entries []FixedEntryResponse `json:"entries"`
}

// ToFixedEntryResponse converts a domain.FixedEntry to its DTO
func ToFixedEntryResponse(f *domain.FixedEntry) FixedEntryResponse {
	return FixedEntryResponse{
		FixedID:       f.FixedID,
		Name:          f.Name,
		CategoryID:    f.CategoryID,
		EntryType:     string(f.EntryType),
		Amount:        f.Amount,
		DayOfMonth:    f.DayOfMonth,
		StartDate:     f.StartDate,
		EndDate:       f.EndDate,
		IsActive:      f.IsActive,
		CreatedAt:     f.CreatedAt,
		LastUpdatedAt: f.LastUpdatedAt,
	}
}

// ToListFixedEntriesResponse converts a slice of domain.FixedEntry to the list DTO
func ToListFixedEntriesResponse(entries []domain.FixedEntry) ListFixedEntriesResponse {
	res := make([]FixedEntryResponse, len(entries))
	for i, f := range entries {
		res[i] = ToFixedEntryResponse(&f)
	}
	return ListFixedEntriesResponse{Entries: res}
}
