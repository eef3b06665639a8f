package services

import (
	"context"
	"errors"
	"time"

	"github.com/finhaus/home_finance_app/internal/apperrors"
	portssvc "github.com/finhaus/home_finance_app/internal/core/ports/services"
	"github.com/finhaus/home_finance_app/internal/dto"
	"github.com/finhaus/home_finance_app/internal/platform/config"
	"github.com/finhaus/home_finance_app/internal/utils"
)

// authServiceImpl implements the AuthSvcFacade interface
type authServiceImpl struct {
	BaseService
	cfg         *config.Config
	userService portssvc.UserSvcFacade
}

// NewAuthService creates a new auth service.
func NewAuthService(cfg *config.Config, userService portssvc.UserSvcFacade) portssvc.AuthSvcFacade {
	return &authServiceImpl{cfg: cfg, userService: userService}
}

// Ensure authServiceImpl implements the AuthSvcFacade interface
var _ portssvc.AuthSvcFacade = (*authServiceImpl)(nil)

func (s *authServiceImpl) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userService.GetUserByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// Same error as a bad password so usernames can't be probed.
			return nil, apperrors.ErrUnauthorized
		}
		return nil, err
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.LogWarn(ctx, "Login failed: password mismatch")
		return nil, apperrors.ErrUnauthorized
	}

	expiresAt := time.Now().Add(s.cfg.JWTExpiryDuration)
	token, err := utils.GenerateJWT(user.UserID, string(user.Role), s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		s.LogError(ctx, err, "Failed to generate JWT")
		return nil, err
	}

	s.LogInfo(ctx, "Login successful")
	return &dto.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      dto.ToUserResponse(user),
	}, nil
}
