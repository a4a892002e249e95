package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"techtalks/internal/domain"
)

// maxTokenAttempts bounds the insert retries on a token collision.
const maxTokenAttempts = 3

type registrationService struct {
	registrationRepo    domain.RegistrationRepository
	emailService        domain.EmailService
	logger              *slog.Logger
	verifyURL           string
	contextTimeout      time.Duration
	notificationTimeout time.Duration

	newToken func() (string, error)
	now      func() time.Time
	inflight sync.WaitGroup
}

// NewRegistrationService returns the signup engine. emailService may be nil, in which case no
// confirmation e-mail is sent.
func NewRegistrationService(
	registrationRepo domain.RegistrationRepository,
	emailService domain.EmailService,
	logger *slog.Logger,
	verifyURL string,
	timeout time.Duration,
	notificationTimeout time.Duration,
) domain.RegistrationService {
	return &registrationService{
		registrationRepo:    registrationRepo,
		emailService:        emailService,
		logger:              logger,
		verifyURL:           verifyURL,
		contextTimeout:      timeout,
		notificationTimeout: notificationTimeout,
		newToken:            newRegistrationToken,
		now:                 time.Now,
	}
}

func newRegistrationToken() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

// validateRegistration checks the input in a fixed order and returns the first failure.
func validateRegistration(in domain.RegistrationInput) error {
	if strings.Count(in.Email, "@") != 1 {
		return domain.ErrInvalidEmail
	}
	if in.Age < domain.MinAge || in.Age > domain.MaxAge {
		return domain.ErrInvalidAge
	}
	if in.StudyYear < domain.MinStudyYear || in.StudyYear > domain.MaxStudyYear {
		return domain.ErrInvalidStudyYear
	}
	if strings.TrimSpace(in.Name) == "" {
		return domain.ErrInvalidName
	}
	return nil
}

func (s *registrationService) Submit(ctx context.Context, event *domain.Event, in domain.RegistrationInput) (domain.Status, error) {
	if event == nil {
		return domain.StatusFailed, domain.ErrNotFound
	}
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Affiliation = strings.TrimSpace(in.Affiliation)
	in.Allergies = strings.TrimSpace(in.Allergies)
	if err := validateRegistration(in); err != nil {
		return domain.StatusFailed, err
	}
	now := s.now()
	if !event.RegistrationOpen(now) {
		return domain.StatusFailed, domain.ErrRegistrationNotOpen
	}

	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	var reg *domain.Registration
	for attempt := 1; ; attempt++ {
		token, err := s.newToken()
		if err != nil {
			return domain.StatusFailed, fmt.Errorf("generate token: %w", err)
		}
		reg = domain.NewRegistration(token, event.ID, in, now)
		err = s.registrationRepo.Create(ctx, reg)
		if err == nil {
			break
		}
		if errors.Is(err, domain.ErrDuplicateToken) && attempt < maxTokenAttempts {
			s.logger.WarnContext(ctx, "registration token collision, retrying", "attempt", attempt)
			continue
		}
		return domain.StatusFailed, fmt.Errorf("create registration: %w", err)
	}

	s.notify(ctx, reg)
	return domain.StatusSucceeded, nil
}

// notify sends the confirmation e-mail in the background. The send outlives the request.
func (s *registrationService) notify(ctx context.Context, reg *domain.Registration) {
	if s.emailService == nil {
		return
	}
	data := &domain.RegistrationConfirmationEmailData{
		Email:     reg.Email,
		Name:      reg.Name,
		Token:     reg.Token,
		VerifyURL: s.verifyURL,
	}
	sendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.notificationTimeout)
	s.inflight.Add(1)
	go func() {
		defer s.inflight.Done()
		defer cancel()
		if err := s.emailService.SendRegistrationConfirmation(sendCtx, data); err != nil {
			s.logger.ErrorContext(sendCtx, "send registration confirmation", "event_id", reg.EventID, "err", err)
		}
	}()
}

func (s *registrationService) Wait() {
	s.inflight.Wait()
}

func (s *registrationService) ListParticipants(ctx context.Context, eventID string, params domain.PaginationParams) ([]*domain.Registration, int, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	regs, total, err := s.registrationRepo.ListByEventID(ctx, eventID, params)
	if err != nil {
		return nil, 0, fmt.Errorf("list registrations: %w", err)
	}
	return regs, total, nil
}

func (s *registrationService) DeleteParticipant(ctx context.Context, token string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.registrationRepo.Delete(ctx, token); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete registration: %w", err)
	}
	return nil
}
