package services

import (
	"fmt"
	"time"

	"github.com/finhaus/home_finance_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// parseAmount parses a decimal string from a request payload. Amounts travel
// as strings on the wire to avoid floating-point drift.
func parseAmount(field, value string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %s must be a decimal number", apperrors.ErrValidation, field)
	}
	return d, nil
}

// parseDate parses a YYYY-MM-DD date from a request payload.
func parseDate(field, value string) (time.Time, error) {
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s must be a date in YYYY-MM-DD format", apperrors.ErrValidation, field)
	}
	return t, nil
}
