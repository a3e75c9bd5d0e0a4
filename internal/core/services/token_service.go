package services

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	portssvc "github.com/tempora-hq/timesheet-backend/internal/core/ports/services"
	"github.com/tempora-hq/timesheet-backend/internal/platform/config"
)

// tokenService mints principal tokens for the user switcher. The token only
// identifies the acting user; there are no credentials or sessions behind it.
type tokenService struct {
	BaseService
	cfg     *config.Config
	userSvc portssvc.UserReaderSvc
}

// NewTokenService creates a new token service.
func NewTokenService(cfg *config.Config, userSvc portssvc.UserReaderSvc) portssvc.TokenSvcFacade {
	return &tokenService{cfg: cfg, userSvc: userSvc}
}

var _ portssvc.TokenSvcFacade = (*tokenService)(nil)

func (s *tokenService) MintToken(ctx context.Context, userID string) (string, time.Time, error) {
	// Verify the subject exists before vouching for it.
	if _, err := s.userSvc.GetUserByID(ctx, userID); err != nil {
		return "", time.Time{}, err
	}

	now := time.Now()
	expiresAt := now.Add(s.cfg.JWTExpiryDuration)
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		Issuer:    s.cfg.JWTIssuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, expiresAt, nil
}
