package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"techtalks/internal/domain"
)

type verificationService struct {
	registrationRepo domain.RegistrationRepository
	contextTimeout   time.Duration
}

// NewVerificationService returns the engine that confirms e-mailed tokens against event capacity.
func NewVerificationService(registrationRepo domain.RegistrationRepository, timeout time.Duration) domain.VerificationService {
	return &verificationService{
		registrationRepo: registrationRepo,
		contextTimeout:   timeout,
	}
}

// Verify confirms token. A full event returns StatusFull with ErrCapacityExceeded and leaves the
// registration pending; a confirmed token returns StatusRepeat whether or not the event is full.
func (s *verificationService) Verify(ctx context.Context, token string) (domain.Status, error) {
	if token == "" {
		return domain.StatusFailed, domain.ErrNotFound
	}
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := s.registrationRepo.GetByToken(ctx, token); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.StatusFailed, domain.ErrNotFound
		}
		return domain.StatusFailed, fmt.Errorf("get registration: %w", err)
	}

	status, err := s.registrationRepo.Confirm(ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.StatusFailed, domain.ErrNotFound
		}
		return domain.StatusFailed, fmt.Errorf("confirm registration: %w", err)
	}
	if status == domain.StatusFull {
		return domain.StatusFull, domain.ErrCapacityExceeded
	}
	return status, nil
}
