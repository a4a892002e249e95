package services

import (
	"context"
	"crypto/subtle"
	"fmt"
	"time"

	"techtalks/internal/domain"
)

type adminAuthService struct {
	username     string
	passwordHash string
	hasher       domain.PasswordHasher
	tokenIssuer  domain.TokenIssuer
	tokenExpiry  time.Duration
}

// NewAdminAuthService returns the login service for the single configured admin account.
// An empty passwordHash disables login.
func NewAdminAuthService(username, passwordHash string, hasher domain.PasswordHasher, tokenIssuer domain.TokenIssuer, tokenExpiry time.Duration) domain.AdminAuthService {
	return &adminAuthService{
		username:     username,
		passwordHash: passwordHash,
		hasher:       hasher,
		tokenIssuer:  tokenIssuer,
		tokenExpiry:  tokenExpiry,
	}
}

func (s *adminAuthService) Login(ctx context.Context, username, password string) (string, error) {
	if s.passwordHash == "" {
		return "", domain.ErrUnauthorized
	}
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.username)) == 1
	// Compare even on a wrong username so both failures take the same time.
	passErr := s.hasher.Compare(s.passwordHash, password)
	if !userOK || passErr != nil {
		return "", domain.ErrUnauthorized
	}
	token, err := s.tokenIssuer.Issue(s.username, s.tokenExpiry)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return token, nil
}
