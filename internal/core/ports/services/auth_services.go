package services

import (
	"context"

	"github.com/finhaus/home_finance_app/internal/dto"
)

// AuthSvcFacade defines authentication operations.
type AuthSvcFacade interface {
	// Login verifies credentials and returns a signed JWT on success.
	// Returns apperrors.ErrUnauthorized for unknown users or bad passwords.
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
}
