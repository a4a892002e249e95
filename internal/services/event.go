package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"techtalks/internal/domain"
)

type eventService struct {
	eventRepo        domain.EventRepository
	registrationRepo domain.RegistrationRepository
	sponsorRepo      domain.SponsorRepository
	programRepo      domain.ProgramRepository
	contextTimeout   time.Duration
}

func NewEventService(eventRepo domain.EventRepository,
	registrationRepo domain.RegistrationRepository,
	sponsorRepo domain.SponsorRepository,
	programRepo domain.ProgramRepository,
	timeout time.Duration,
) domain.EventService {
	return &eventService{
		eventRepo:        eventRepo,
		registrationRepo: registrationRepo,
		sponsorRepo:      sponsorRepo,
		programRepo:      programRepo,
		contextTimeout:   timeout,
	}
}

func validateEvent(event *domain.Event) error {
	event.Description = strings.TrimSpace(event.Description)
	if event.Description == "" {
		return fmt.Errorf("%w: description is required", domain.ErrInvalidInput)
	}
	if event.Capacity < 0 {
		return fmt.Errorf("%w: capacity must not be negative", domain.ErrInvalidInput)
	}
	if event.Date.IsZero() {
		return fmt.Errorf("%w: date is required", domain.ErrInvalidInput)
	}
	return nil
}

func (s *eventService) GetCurrentEvent(ctx context.Context) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetCurrent(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get current event: %w", err)
	}
	return event, nil
}

// GetHome returns the landing data for the current event. With no events the page is empty.
func (s *eventService) GetHome(ctx context.Context) (*domain.HomePage, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	home := &domain.HomePage{
		Partners: []*domain.SponsorView{},
		Program:  []*domain.ProgramEntryView{},
	}
	latest, err := s.latest(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return home, nil
		}
		return nil, err
	}
	home.Event = latest

	partners, err := s.sponsorRepo.ListByEventID(ctx, latest.ID)
	if err != nil {
		return nil, fmt.Errorf("list sponsors: %w", err)
	}
	if partners != nil {
		home.Partners = partners
	}
	program, err := s.programRepo.ListByEventID(ctx, latest.ID)
	if err != nil {
		return nil, fmt.Errorf("list program: %w", err)
	}
	if program != nil {
		home.Program = program
	}
	return home, nil
}

func (s *eventService) ListEvents(ctx context.Context) ([]*domain.EventSummary, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	events, err := s.eventRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	if events == nil {
		events = []*domain.EventSummary{}
	}
	return events, nil
}

func (s *eventService) GetLatestEvent(ctx context.Context) (*domain.EventSummary, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	return s.latest(ctx)
}

// latest relies on List returning events newest first.
func (s *eventService) latest(ctx context.Context) (*domain.EventSummary, error) {
	events, err := s.eventRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	if len(events) == 0 {
		return nil, domain.ErrNotFound
	}
	return events[0], nil
}

func (s *eventService) GetEventDetail(ctx context.Context, eventID string, params domain.PaginationParams) (*domain.EventDetail, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	confirmed, err := s.registrationRepo.CountConfirmed(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("count confirmed: %w", err)
	}
	sponsors, err := s.sponsorRepo.ListByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list sponsors: %w", err)
	}
	program, err := s.programRepo.ListByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list program: %w", err)
	}
	participants, total, err := s.registrationRepo.ListByEventID(ctx, eventID, params)
	if err != nil {
		return nil, fmt.Errorf("list registrations: %w", err)
	}
	if sponsors == nil {
		sponsors = []*domain.SponsorView{}
	}
	if program == nil {
		program = []*domain.ProgramEntryView{}
	}
	if participants == nil {
		participants = []*domain.Registration{}
	}
	return &domain.EventDetail{
		Event:          event,
		ConfirmedCount: confirmed,
		Sponsors:       sponsors,
		Program:        program,
		Participants:   participants,
		Total:          total,
	}, nil
}

func (s *eventService) CreateEvent(ctx context.Context, event *domain.Event) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := validateEvent(event); err != nil {
		return err
	}
	event.CreatedAt = time.Now()
	if err := s.eventRepo.Create(ctx, event); err != nil {
		return fmt.Errorf("create event: %w", err)
	}
	return nil
}

func (s *eventService) UpdateEvent(ctx context.Context, event *domain.Event) (domain.Status, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := validateEvent(event); err != nil {
		return domain.StatusFailed, err
	}
	changed, err := s.eventRepo.Update(ctx, event)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.StatusFailed, domain.ErrNotFound
		}
		return domain.StatusFailed, fmt.Errorf("update event: %w", err)
	}
	return domain.WriteResult(changed), nil
}

func (s *eventService) DeleteEvent(ctx context.Context, eventID string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.eventRepo.Delete(ctx, eventID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete event: %w", err)
	}
	return nil
}
