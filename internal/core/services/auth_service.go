package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/edinstair/property_transition_app/internal/apperrors"
	"github.com/edinstair/property_transition_app/internal/platform/config"
	"github.com/edinstair/property_transition_app/internal/utils"
)

// authService gates the API behind the single operator credential. The
// password is held as a bcrypt hash in configuration; a successful
// login yields a short-lived JWT.
type authService struct {
	BaseService
	cfg *config.Config
}

// NewAuthService creates the operator auth service.
func NewAuthService(cfg *config.Config) *authService {
	return &authService{cfg: cfg}
}

func (s *authService) Login(ctx context.Context, operator, password string) (string, time.Time, error) {
	if operator != s.cfg.OperatorName || !utils.CheckPasswordHash(password, s.cfg.OperatorPasswordHash) {
		s.LogWarn(ctx, "Failed login attempt", slog.String("operator", operator))
		return "", time.Time{}, fmt.Errorf("%w: invalid operator credentials", apperrors.ErrUnauthorized)
	}

	expiresAt := time.Now().Add(s.cfg.JWTExpiryDuration)
	token, err := utils.GenerateJWT(operator, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to issue session token: %w", err)
	}

	s.LogInfo(ctx, "Operator logged in", slog.String("operator", operator))
	return token, expiresAt, nil
}
