package service

import (
	"context"
	"strings"
	"time"

	"carrental-backend/internal/config"
	"carrental-backend/internal/domain"
	"carrental-backend/internal/logger"
	"carrental-backend/internal/security"
)

type authService struct {
	admins       map[string]string // email -> bcrypt hash
	tokenManager security.TokenManager
}

// NewAuthService backs the local admin login. tokenManager is nil when admins
// sign in through Firebase, in which case Login is refused.
func NewAuthService(admins []config.AdminAccount, tokenManager security.TokenManager) AuthService {
	byEmail := make(map[string]string, len(admins))
	for _, a := range admins {
		byEmail[strings.ToLower(strings.TrimSpace(a.Email))] = a.PasswordHash
	}
	return &authService{admins: byEmail, tokenManager: tokenManager}
}

func (s *authService) Login(ctx context.Context, email, password string) (string, time.Time, error) {
	if s.tokenManager == nil {
		return "", time.Time{}, domain.ErrUnauthorized
	}
	email = strings.ToLower(strings.TrimSpace(email))
	hash, ok := s.admins[email]
	if !ok {
		logger.WarnContext(ctx, "Admin login for unknown account", "email", email)
		return "", time.Time{}, security.ErrBadCredentials
	}
	if err := security.CheckPassword(hash, password); err != nil {
		logger.WarnContext(ctx, "Admin login with wrong password", "email", email)
		return "", time.Time{}, err
	}

	token, expires, err := s.tokenManager.GenerateAccessToken(email)
	if err != nil {
		return "", time.Time{}, err
	}
	logger.InfoContext(ctx, "Admin logged in", "email", email)
	return token, expires, nil
}
